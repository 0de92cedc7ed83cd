package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
	"go.uber.org/zap"
)

// EventDispatcher consumes decoded processor events.
type EventDispatcher interface {
	Dispatch(ctx context.Context, event stripe.Event)
}

type WebhookHandler struct {
	Dispatcher EventDispatcher
	Logger     *zap.Logger
}

func NewWebhookHandler(d EventDispatcher, logger *zap.Logger) *WebhookHandler {
	return &WebhookHandler{Dispatcher: d, Logger: logger}
}

// Receive handles POST /stripe-webhook. Every delivery is acknowledged.
func (h *WebhookHandler) Receive(c *gin.Context) {
	logger := getLogger(c, h.Logger)
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		logger.Warn("Failed to read webhook body", zap.Error(err))
		c.JSON(http.StatusOK, gin.H{"received": true})
		return
	}

	var event stripe.Event
	if err := json.Unmarshal(body, &event); err != nil {
		logger.Warn("Malformed webhook event", zap.Error(err))
		c.JSON(http.StatusOK, gin.H{"received": true})
		return
	}

	h.Dispatcher.Dispatch(c.Request.Context(), event)
	c.JSON(http.StatusOK, gin.H{"received": true})
}
