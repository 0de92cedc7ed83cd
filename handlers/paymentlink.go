package handlers

import (
	"net/http"

	"staypay/models"
	"staypay/services/paymentlink"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type PaymentLinkHandler struct {
	Links  paymentlink.PaymentLinkService
	Logger *zap.Logger
}

func NewPaymentLinkHandler(links paymentlink.PaymentLinkService, logger *zap.Logger) *PaymentLinkHandler {
	return &PaymentLinkHandler{Links: links, Logger: logger}
}

// CreatePaymentLink handles POST /create-payment-link.
func (h *PaymentLinkHandler) CreatePaymentLink(c *gin.Context) {
	logger := getLogger(c, h.Logger)
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid payment link request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request: " + err.Error()})
		return
	}

	res, err := h.Links.CreatePaymentLink(c.Request.Context(), req, c.GetHeader("Origin"))
	if err != nil {
		if models.IsValidationError(err) {
			logger.Warn("Rejected payment link booking", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}
		logger.Error("Error creating payment link", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": processorMessage(err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"paymentLink": res.URL,
		"bookingId":   res.BookingID,
	})
}
