package request

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"
)

type CreateInventoryItemRequest struct {
	Title             string `json:"title"`
	MinimumStockLevel int    `json:"minimum_stock_level"`
	UnitID            *uint  `json:"unit_id"`
}

func (req *CreateInventoryItemRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Title, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.MinimumStockLevel, validation.Min(0)),
	)
}

type UpdateInventoryItemRequest struct {
	Title             string `json:"title"`
	MinimumStockLevel int    `json:"minimum_stock_level"`
	UnitID            *uint  `json:"unit_id"`
}

func (req *UpdateInventoryItemRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Title, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.MinimumStockLevel, validation.Min(0)),
	)
}

// RestockRequest adds stock. Quantity is the absolute amount added, always
// positive; OccurredAt backdates the movement and defaults to now.
type RestockRequest struct {
	Quantity   int              `json:"quantity"`
	UnitPrice  *decimal.Decimal `json:"unit_price"`
	Remarks    string           `json:"remarks"`
	OccurredAt *time.Time       `json:"occurred_at"`
}

func (req *RestockRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Quantity, validation.Required, validation.Min(1)),
		validation.Field(&req.UnitPrice, validation.Required),
		validation.Field(&req.Remarks, validation.Length(0, 500)),
	)
}

// UsageRequest removes stock. Quantity is the absolute amount consumed.
type UsageRequest struct {
	Quantity   int        `json:"quantity"`
	Remarks    string     `json:"remarks"`
	OccurredAt *time.Time `json:"occurred_at"`
}

func (req *UsageRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Quantity, validation.Required, validation.Min(1)),
		validation.Field(&req.Remarks, validation.Length(0, 500)),
	)
}

type CreateInventoryUnitRequest struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
}

func (req *CreateInventoryUnitRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Title, validation.Required, validation.Length(1, 50)),
		validation.Field(&req.Description, validation.Length(0, 200)),
	)
}

type UpdateInventoryUnitRequest struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
}

func (req *UpdateInventoryUnitRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Title, validation.Required, validation.Length(1, 50)),
		validation.Field(&req.Description, validation.Length(0, 200)),
	)
}
