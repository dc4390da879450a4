package domain

import "github.com/shopspring/decimal"

type MenuItem struct {
	ID            uint            `json:"id"`
	Title         string          `json:"title"`
	NetPrice      decimal.Decimal `json:"net_price"`
	TaxGroupID    *uint           `json:"tax_group_id"`
	TaxGroupTitle *string         `json:"tax_group_title"`
	CategoryID    *uint           `json:"category_id"`
	CategoryTitle *string         `json:"category_title"`
	ImageURL      *string         `json:"image_url"`

	Addons   []MenuItemAddon   `json:"addons,omitempty"`
	Variants []MenuItemVariant `json:"variants,omitempty"`
}

type MenuItemAddon struct {
	ID       uint            `json:"id"`
	ItemID   uint            `json:"item_id"`
	Title    string          `json:"title"`
	NetPrice decimal.Decimal `json:"net_price"`
}

type MenuItemVariant struct {
	ID       uint            `json:"id"`
	ItemID   uint            `json:"item_id"`
	Title    string          `json:"title"`
	NetPrice decimal.Decimal `json:"net_price"`
}
