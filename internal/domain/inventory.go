package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type MovementType string

const (
	MovementRestock MovementType = "restock"
	MovementUsage   MovementType = "usage"
)

type InventoryUnit struct {
	ID          uint            `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
}

// InventoryItem is the joined catalog view: the item with its cached stock
// balance and the referenced unit's fields. Unit fields stay nil when the
// item has no unit or the unit was deleted.
type InventoryItem struct {
	ID                uint             `json:"id"`
	Title             string           `json:"title"`
	StockQuantity     int              `json:"stock_quantity"`
	MinimumStockLevel int              `json:"minimum_stock_level"`
	ImageURL          *string          `json:"image_url"`
	UnitID            *uint            `json:"unit_id"`
	UnitTitle         *string          `json:"unit_title"`
	UnitQuantity      *decimal.Decimal `json:"unit_quantity"`
}

// StockMovement is one append-only ledger entry. Movements are never
// updated or deleted; corrections are compensating movements.
type StockMovement struct {
	ID              uint             `json:"id"`
	InventoryItemID uint             `json:"inventory_item_id"`
	Username        string           `json:"username"`
	UnitPrice       *decimal.Decimal `json:"unit_price"`
	ChangeQuantity  int              `json:"change_quantity"`
	ChangeType      MovementType     `json:"change_type"`
	Remarks         string           `json:"remarks"`
	CreatedAt       time.Time        `json:"created_at"`
}
