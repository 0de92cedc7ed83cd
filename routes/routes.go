package routes

import (
	"net/http"
	"time"

	"staypay/handlers"
	"staypay/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterPageRoutes registers the browser-facing pages and static assets.
func RegisterPageRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/", hb.IndexHandler)
	r.GET("/checkout", hb.IndexHandler)
	r.GET("/success", hb.SuccessHandler)
	if hb.AssetsDir != "" {
		r.Static("/assets", hb.AssetsDir)
	}
}

// RegisterPaymentRoutes registers the Payment Element and Payment Links endpoints.
func RegisterPaymentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/create-payment-intent", hb.CreatePaymentIntentHandler)
	r.POST("/create-setup-intent", hb.CreateSetupIntentHandler)
	r.POST("/update-customer", hb.UpdateCustomerHandler)
	r.POST("/create-payment-link", hb.CreatePaymentLinkHandler)
}

// RegisterWebhookRoute registers the processor event receiver.
func RegisterWebhookRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/stripe-webhook", hb.WebhookHandler)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		health := utils.GetHealthStatus()
		queue := "disabled"
		if health.QueueEnabled {
			queue = "down"
			if health.Queue {
				queue = "up"
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "queue": queue})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Stripe-Signature"},
		ExposeHeaders:   []string{"Content-Length"},
		MaxAge:          12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterPageRoutes(r, hb)
	RegisterPaymentRoutes(r, hb)
	RegisterWebhookRoute(r, hb)
}
