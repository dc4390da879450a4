package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type CartItem struct {
	ItemID    uint            `json:"item_id"`
	VariantID *uint           `json:"variant_id"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
	Notes     string          `json:"notes"`
	AddonIDs  []uint          `json:"addon_ids"`
}

type QROrder struct {
	ID            uint       `json:"id"`
	DeliveryType  string     `json:"delivery_type"`
	CustomerType  string     `json:"customer_type"`
	CustomerPhone string     `json:"customer_phone"`
	CustomerName  string     `json:"customer_name"`
	TableID       *uint      `json:"table_id"`
	PaymentStatus string     `json:"payment_status"`
	Items         []CartItem `json:"items"`
	CreatedAt     time.Time  `json:"created_at"`
}

// QRMenu is the public menu a guest sees after scanning the store's QR code.
type QRMenu struct {
	Store StoreDetails `json:"store"`
	Items []MenuItem   `json:"items"`
}
