// File: utils/cache.go
package utils

import (
	"context"
	"time"

	"staypay/config"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

// QueueClient is the Redis client for the webhook side-effect queue database.
var QueueClient *redis.Client

// QueueRedisOpt returns the asynq connection options for the queue database.
func QueueRedisOpt() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
}

// InitQueueClient connects to the queue database and checks it answers.
func InitQueueClient() error {
	QueueClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return QueueClient.Ping(ctx).Err()
}

// GetQueueClient returns the queue Redis client, nil when the queue is disabled.
func GetQueueClient() *redis.Client {
	return QueueClient
}
