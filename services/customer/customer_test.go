package customer

import (
	"context"
	"errors"
	"testing"

	"staypay/models"
	"staypay/services/processor/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v76"
	"go.uber.org/zap"
)

func newService(t *testing.T) (*DefaultCustomerService, *mocks.MockProcessor) {
	t.Helper()
	p := mocks.NewMockProcessor(t)
	return NewCustomerService(p, zap.NewNop()), p
}

func TestCreateProvisional_Success(t *testing.T) {
	svc, p := newService(t)
	p.On("CreateCustomer", mock.Anything, &stripe.CustomerParams{}).
		Return(&stripe.Customer{ID: "cus_123"}, nil)

	c, err := svc.CreateProvisional(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "cus_123", c.ID)
	assert.Equal(t, models.CustomerProvisional, c.State)
	assert.True(t, c.CanEnrich())
}

func TestCreateProvisional_Failure(t *testing.T) {
	svc, p := newService(t)
	p.On("CreateCustomer", mock.Anything, mock.Anything).Return(nil, errors.New("api down"))

	c, err := svc.CreateProvisional(context.Background())
	require.Error(t, err)
	assert.Nil(t, c)
	assert.Contains(t, err.Error(), "api down")
}

func TestUpdate_MissingIDSkipsRemoteCall(t *testing.T) {
	svc, p := newService(t)

	for _, id := range []string{"", "   "} {
		res, err := svc.Update(context.Background(), id, &models.BillingDetails{Name: "Ada"})
		require.Error(t, err)
		assert.Nil(t, res)
		assert.True(t, models.IsValidationError(err))
	}
	p.AssertNotCalled(t, "UpdateCustomer", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdate_MergesOnlyPresentFields(t *testing.T) {
	svc, p := newService(t)

	billing := &models.BillingDetails{
		Name:  "Ada Lovelace",
		Phone: "+44 20 7946 0000",
		Address: &models.Address{
			Line1:      "1 St James's Square",
			City:       "London",
			PostalCode: "SW1Y 4JH",
			Country:    "GB",
		},
	}

	p.On("UpdateCustomer", mock.Anything, "cus_123", mock.MatchedBy(func(params *stripe.CustomerParams) bool {
		return params.Name != nil && *params.Name == "Ada Lovelace" &&
			params.Email == nil &&
			params.Phone != nil &&
			params.Address != nil && *params.Address.City == "London" && params.Address.Line2 == nil
	})).Return(&stripe.Customer{ID: "cus_123"}, nil)

	res, err := svc.Update(context.Background(), "cus_123", billing)
	require.NoError(t, err)
	assert.Equal(t, "cus_123", res.CustomerID)
	assert.Equal(t, []string{"name", "phone", "address"}, res.UpdatedFields)
}

func TestUpdate_ProcessorError(t *testing.T) {
	svc, p := newService(t)
	p.On("UpdateCustomer", mock.Anything, "cus_404", mock.Anything).
		Return(nil, errors.New("No such customer: 'cus_404'"))

	_, err := svc.Update(context.Background(), "cus_404", &models.BillingDetails{Email: "a@b.c"})
	require.Error(t, err)
	assert.False(t, models.IsValidationError(err))
	assert.Contains(t, err.Error(), "No such customer")
}

func TestBuildUpdateParams_NilBilling(t *testing.T) {
	params, fields := BuildUpdateParams(nil)
	assert.NotNil(t, params)
	assert.Empty(t, fields)
}
