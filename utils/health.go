package utils

import (
	"context"
	"sync"
	"time"
)

// HealthStatus represents current status of external services.
type HealthStatus struct {
	QueueEnabled bool      `json:"queueEnabled"`
	Queue        bool      `json:"queue"`
	CheckedAt    time.Time `json:"checkedAt,omitempty"`
}

var (
	currentHealth HealthStatus
	mu            sync.RWMutex
)

// GetHealthStatus returns latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	mu.RLock()
	defer mu.RUnlock()
	return currentHealth
}

// RecordQueueHealth stores the outcome of one queue check.
func RecordQueueHealth(err error, at time.Time) {
	mu.Lock()
	defer mu.Unlock()
	currentHealth = HealthStatus{
		QueueEnabled: true,
		Queue:        err == nil,
		CheckedAt:    at,
	}
}

// StartHealthMonitor pings the queue database periodically until ctx is done.
func StartHealthMonitor(ctx context.Context, ping func(context.Context) error, every time.Duration) {
	check := func() {
		pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()
		err := ping(pingCtx)
		if err != nil {
			GetLogger().Sugar().Warnf("health: queue redis unreachable: %v", err)
		}
		RecordQueueHealth(err, time.Now())
	}

	go func() {
		ticker := time.NewTicker(every)
		defer ticker.Stop()

		check()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				check()
			}
		}
	}()
}
