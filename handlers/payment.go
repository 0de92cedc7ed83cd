package handlers

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"staypay/models"
	"staypay/services/customer"
	"staypay/services/intent"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PaymentHandler serves the Payment Element flows.
type PaymentHandler struct {
	Intents   intent.IntentService
	Customers customer.CustomerService
	Logger    *zap.Logger
}

func NewPaymentHandler(intents intent.IntentService, customers customer.CustomerService, logger *zap.Logger) *PaymentHandler {
	return &PaymentHandler{Intents: intents, Customers: customers, Logger: logger}
}

type createPaymentIntentRequest struct {
	Amount       float64              `json:"amount"`
	Currency     string               `json:"currency"`
	CustomerInfo *models.CustomerInfo `json:"customer_info"`
}

type createSetupIntentRequest struct {
	Currency     string               `json:"currency"`
	CustomerInfo *models.CustomerInfo `json:"customer_info"`
}

type updateCustomerRequest struct {
	CustomerID     string                 `json:"customer_id"`
	BillingDetails *models.BillingDetails `json:"billing_details"`
}

// CreatePaymentIntent handles POST /create-payment-intent.
func (h *PaymentHandler) CreatePaymentIntent(c *gin.Context) {
	logger := getLogger(c, h.Logger)
	var req createPaymentIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid payment intent request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	res, err := h.Intents.CreatePaymentIntent(c.Request.Context(), req.Amount, req.Currency, req.CustomerInfo)
	if err != nil {
		respondServiceError(c, logger, "Error creating PaymentIntent", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"clientSecret":    res.ClientSecret,
		"paymentIntentId": res.IntentID,
		"customerId":      res.CustomerID,
	})
}

// CreateSetupIntent handles POST /create-setup-intent.
func (h *PaymentHandler) CreateSetupIntent(c *gin.Context) {
	logger := getLogger(c, h.Logger)
	var req createSetupIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		logger.Warn("Invalid setup intent request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	res, err := h.Intents.CreateSetupIntent(c.Request.Context(), req.CustomerInfo, req.Currency)
	if err != nil {
		respondServiceError(c, logger, "Error creating SetupIntent", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"clientSecret":  res.ClientSecret,
		"setupIntentId": res.IntentID,
		"customerId":    res.CustomerID,
	})
}

// UpdateCustomer handles POST /update-customer.
func (h *PaymentHandler) UpdateCustomer(c *gin.Context) {
	logger := getLogger(c, h.Logger)
	var req updateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		logger.Warn("Invalid update customer request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	if strings.TrimSpace(req.CustomerID) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Customer ID is required"})
		return
	}

	res, err := h.Customers.Update(c.Request.Context(), req.CustomerID, req.BillingDetails)
	if err != nil {
		respondServiceError(c, logger, "Error updating customer", err)
		return
	}

	fields := res.UpdatedFields
	if fields == nil {
		fields = []string{}
	}
	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"customer_id":    res.CustomerID,
		"updated_fields": fields,
	})
}

// respondServiceError maps validation failures to 400 and everything else to 500.
func respondServiceError(c *gin.Context, logger *zap.Logger, msg string, err error) {
	if models.IsValidationError(err) {
		logger.Warn(msg, zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": validationMessage(err)})
		return
	}
	logger.Error(msg, zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": processorMessage(err)})
}
