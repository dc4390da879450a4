package request

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/shopspring/decimal"
)

type StoreDetailsRequest struct {
	StoreName        string `json:"store_name"`
	Address          string `json:"address"`
	Phone            string `json:"phone"`
	Email            string `json:"email"`
	Currency         string `json:"currency"`
	IsQRMenuEnabled  bool   `json:"is_qr_menu_enabled"`
	IsQROrderEnabled bool   `json:"is_qr_order_enabled"`
}

func (req *StoreDetailsRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.StoreName, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.Email, is.Email),
		validation.Field(&req.Currency, validation.Length(0, 10)),
	)
}

type PrintSettingsRequest struct {
	PageFormat          string `json:"page_format"`
	Header              string `json:"header"`
	Footer              string `json:"footer"`
	ShowNotes           bool   `json:"show_notes"`
	IsEnablePrint       bool   `json:"is_enable_print"`
	ShowStoreDetails    bool   `json:"show_store_details"`
	ShowCustomerDetails bool   `json:"show_customer_details"`
	PrintToken          bool   `json:"print_token"`
}

func (req *PrintSettingsRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.PageFormat, validation.In("", "A4", "57mm", "80mm")),
		validation.Field(&req.Header, validation.Length(0, 500)),
		validation.Field(&req.Footer, validation.Length(0, 500)),
	)
}

type TaxRequest struct {
	Title      string          `json:"title"`
	Rate       decimal.Decimal `json:"rate"`
	Type       string          `json:"type"`
	TaxGroupID uint            `json:"tax_group_id"`
}

func (req *TaxRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Title, validation.Required, validation.Length(1, 50)),
		validation.Field(&req.Rate, validation.By(validateTaxRate)),
		validation.Field(&req.Type, validation.Required, validation.In("inclusive", "exclusive")),
		validation.Field(&req.TaxGroupID, validation.Required),
	)
}

func validateTaxRate(value interface{}) error {
	rate, ok := value.(decimal.Decimal)
	if !ok || rate.IsNegative() || rate.GreaterThan(decimal.NewFromInt(100)) {
		return validation.NewError("validation_tax_rate", "rate must be between 0 and 100")
	}

	return nil
}

type TaxGroupRequest struct {
	Title string `json:"title"`
}

func (req *TaxGroupRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Title, validation.Required, validation.Length(1, 50)),
	)
}

type PaymentTypeRequest struct {
	Title    string `json:"title"`
	IsActive bool   `json:"is_active"`
}

func (req *PaymentTypeRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Title, validation.Required, validation.Length(1, 50)),
	)
}

type TogglePaymentTypeRequest struct {
	IsActive bool `json:"is_active"`
}

type StoreTableRequest struct {
	TableTitle      string `json:"table_title"`
	Floor           string `json:"floor"`
	SeatingCapacity int    `json:"seating_capacity"`
}

func (req *StoreTableRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.TableTitle, validation.Required, validation.Length(1, 50)),
		validation.Field(&req.Floor, validation.Length(0, 50)),
		validation.Field(&req.SeatingCapacity, validation.Min(0)),
	)
}

type CategoryRequest struct {
	Title string `json:"title"`
}

func (req *CategoryRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Title, validation.Required, validation.Length(1, 50)),
	)
}
