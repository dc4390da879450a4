package request

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"
)

type CreateMenuItemRequest struct {
	Title      string          `json:"title"`
	NetPrice   decimal.Decimal `json:"net_price"`
	TaxGroupID *uint           `json:"tax_group_id"`
	CategoryID *uint           `json:"category_id"`
}

func (req *CreateMenuItemRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Title, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.NetPrice, validation.By(validatePrice)),
	)
}

type UpdateMenuItemRequest struct {
	Title      string          `json:"title"`
	NetPrice   decimal.Decimal `json:"net_price"`
	TaxGroupID *uint           `json:"tax_group_id"`
	CategoryID *uint           `json:"category_id"`
}

func (req *UpdateMenuItemRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Title, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.NetPrice, validation.By(validatePrice)),
	)
}

type MenuItemAddonRequest struct {
	Title    string          `json:"title"`
	NetPrice decimal.Decimal `json:"net_price"`
}

func (req *MenuItemAddonRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Title, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.NetPrice, validation.By(validatePrice)),
	)
}

type MenuItemVariantRequest struct {
	Title    string          `json:"title"`
	NetPrice decimal.Decimal `json:"net_price"`
}

func (req *MenuItemVariantRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Title, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.NetPrice, validation.By(validatePrice)),
	)
}

func validatePrice(value interface{}) error {
	price, ok := value.(decimal.Decimal)
	if !ok || price.IsNegative() {
		return validation.NewError("validation_price", "price must be zero or positive")
	}

	return nil
}
