package success

import (
	"strings"

	"staypay/models"
)

// ParseCallback matches the success redirect query against the known
// references in precedence order: session, payment intent, setup intent.
func ParseCallback(sessionID, paymentIntentID, setupIntentID string) models.SuccessCallback {
	candidates := []models.SuccessCallback{
		{Kind: models.CallbackSession, ID: sessionID},
		{Kind: models.CallbackPaymentIntent, ID: paymentIntentID},
		{Kind: models.CallbackSetupIntent, ID: setupIntentID},
	}
	for _, cb := range candidates {
		if id := strings.TrimSpace(cb.ID); id != "" {
			cb.ID = id
			return cb
		}
	}
	return models.SuccessCallback{Kind: models.CallbackNone}
}
