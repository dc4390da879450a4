package domain

import "github.com/shopspring/decimal"

type StoreDetails struct {
	StoreName        string  `json:"store_name"`
	Address          string  `json:"address"`
	Phone            string  `json:"phone"`
	Email            string  `json:"email"`
	Currency         string  `json:"currency"`
	ImageURL         *string `json:"image_url"`
	IsQRMenuEnabled  bool    `json:"is_qr_menu_enabled"`
	IsQROrderEnabled bool    `json:"is_qr_order_enabled"`
	UniqueQRCode     string  `json:"unique_qr_code"`
}

type PrintSettings struct {
	PageFormat          string `json:"page_format"`
	Header              string `json:"header"`
	Footer              string `json:"footer"`
	ShowNotes           bool   `json:"show_notes"`
	IsEnablePrint       bool   `json:"is_enable_print"`
	ShowStoreDetails    bool   `json:"show_store_details"`
	ShowCustomerDetails bool   `json:"show_customer_details"`
	PrintToken          bool   `json:"print_token"`
}

type Tax struct {
	ID            uint            `json:"id"`
	Title         string          `json:"title"`
	Rate          decimal.Decimal `json:"rate"`
	Type          string          `json:"type"` // "inclusive" or "exclusive"
	TaxGroupID    *uint           `json:"tax_group_id,omitempty"`
	TaxGroupTitle *string         `json:"tax_group_title,omitempty"`
}

type TaxGroup struct {
	ID    uint   `json:"id"`
	Title string `json:"title"`
	Taxes []Tax  `json:"taxes,omitempty"`
}

type PaymentType struct {
	ID       uint   `json:"id"`
	Title    string `json:"title"`
	IsActive bool   `json:"is_active"`
}

// StoreTable carries an opaque encrypted id alongside the numeric one;
// QR ordering references tables only through the encrypted form.
type StoreTable struct {
	ID              uint   `json:"id"`
	EncryptedID     string `json:"encrypted_id,omitempty"`
	Title           string `json:"table_title"`
	Floor           string `json:"floor"`
	SeatingCapacity int    `json:"seating_capacity"`
}

type Category struct {
	ID    uint   `json:"id"`
	Title string `json:"title"`
}
