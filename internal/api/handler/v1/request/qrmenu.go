package request

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"
)

type OrderItemRequest struct {
	ItemID    uint            `json:"item_id"`
	VariantID *uint           `json:"variant_id"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
	Notes     string          `json:"notes"`
	AddonIDs  []uint          `json:"addon_ids"`
}

func (req OrderItemRequest) Validate() error {
	return validation.ValidateStruct(
		&req,
		validation.Field(&req.ItemID, validation.Required),
		validation.Field(&req.Quantity, validation.Required, validation.Min(1)),
		validation.Field(&req.Notes, validation.Length(0, 200)),
	)
}

type PlaceOrderRequest struct {
	DeliveryType  string             `json:"delivery_type"`
	CustomerType  string             `json:"customer_type"`
	CustomerPhone string             `json:"customer_phone"`
	CustomerName  string             `json:"customer_name"`
	TableID       string             `json:"table_id"`
	PayOnline     bool               `json:"pay_online"`
	Items         []OrderItemRequest `json:"items"`
}

func (req *PlaceOrderRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.DeliveryType, validation.Required, validation.In("dinein", "pickup", "delivery")),
		validation.Field(&req.CustomerType, validation.In("", "WALKIN", "CUSTOMER")),
		validation.Field(&req.CustomerName, validation.Length(0, 100)),
		validation.Field(&req.Items, validation.Required, validation.Length(1, 0)),
	)
}
