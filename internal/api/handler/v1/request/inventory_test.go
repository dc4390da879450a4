package request

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRestockRequest_Validate(t *testing.T) {
	price := decimal.RequireFromString("2.50")

	assert.NoError(t, (&RestockRequest{Quantity: 20, UnitPrice: &price}).Validate())
	assert.Error(t, (&RestockRequest{Quantity: 0, UnitPrice: &price}).Validate())
	assert.Error(t, (&RestockRequest{Quantity: -5, UnitPrice: &price}).Validate())
	assert.Error(t, (&RestockRequest{Quantity: 20}).Validate())
}

func TestUsageRequest_Validate(t *testing.T) {
	assert.NoError(t, (&UsageRequest{Quantity: 7}).Validate())
	assert.Error(t, (&UsageRequest{Quantity: 0}).Validate())
	assert.Error(t, (&UsageRequest{Quantity: -7}).Validate())
}
