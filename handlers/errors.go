package handlers

import (
	"errors"

	"staypay/models"

	"github.com/stripe/stripe-go/v76"
)

func validationMessage(err error) string {
	var ve *models.ValidationError
	if errors.As(err, &ve) {
		return ve.Message
	}
	return err.Error()
}

// processorMessage surfaces the processor's own message when there is one.
func processorMessage(err error) string {
	var se *stripe.Error
	if errors.As(err, &se) && se.Msg != "" {
		return se.Msg
	}
	return err.Error()
}
