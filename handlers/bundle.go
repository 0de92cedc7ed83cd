package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Pages
	IndexHandler   gin.HandlerFunc
	SuccessHandler gin.HandlerFunc

	// Payment Element endpoints
	CreatePaymentIntentHandler gin.HandlerFunc
	CreateSetupIntentHandler   gin.HandlerFunc
	UpdateCustomerHandler      gin.HandlerFunc

	// Payment Links endpoint
	CreatePaymentLinkHandler gin.HandlerFunc

	// Processor events
	WebhookHandler gin.HandlerFunc

	AssetsDir string
}
