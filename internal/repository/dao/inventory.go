package dao

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrItemNotFound = errors.New("inventory item not found")
	ErrUnitNotFound = errors.New("inventory unit not found")
)

type InventoryUnit struct {
	ID          uint            `gorm:"primaryKey"`
	Title       string          `gorm:"not null"`
	Description string
	Quantity    decimal.Decimal `gorm:"type:numeric(12,3);not null"`
	TenantID    uint            `gorm:"index;not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

type InventoryItem struct {
	ID                uint   `gorm:"primaryKey"`
	Title             string `gorm:"not null"`
	StockQuantity     int    `gorm:"not null;default:0"`
	MinimumStockLevel int    `gorm:"not null;default:0"`
	ImageURL          *string
	UnitID            *uint `gorm:"index"`
	TenantID          uint  `gorm:"index;not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// StockMovement rows are append-only. Nothing in this package updates or
// deletes them once written.
type StockMovement struct {
	ID              uint             `gorm:"primaryKey"`
	InventoryItemID uint             `gorm:"index;not null"`
	Username        string           `gorm:"not null"`
	UnitPrice       *decimal.Decimal `gorm:"type:numeric(12,2)"`
	ChangeQuantity  int              `gorm:"not null"`
	ChangeType      string           `gorm:"not null"`
	Remarks         string
	TenantID        uint      `gorm:"index;not null"`
	CreatedAt       time.Time `gorm:"not null"`
}

func (StockMovement) TableName() string {
	return "inventory_movements"
}

// InventoryItemRow is the joined item + unit projection.
type InventoryItemRow struct {
	ID                uint
	Title             string
	StockQuantity     int
	MinimumStockLevel int
	ImageURL          *string
	UnitID            *uint
	UnitTitle         *string
	UnitQuantity      *decimal.Decimal
}

type InventoryDAO struct {
	db *gorm.DB
}

func NewInventoryDAO(db *gorm.DB) *InventoryDAO {
	return &InventoryDAO{
		db: db,
	}
}

// RecordMovement appends a ledger entry and applies its delta to the item's
// cached balance in one transaction. The balance update is a relative
// ("stock_quantity + ?") statement so concurrent writers serialize on the
// item row instead of overwriting each other. Zero rows affected means the
// item doesn't exist for this tenant; the returned error rolls the movement
// insert back with it.
func (d *InventoryDAO) RecordMovement(ctx context.Context, movement StockMovement) (uint, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&movement).Error; err != nil {
			return err
		}

		result := tx.Model(&InventoryItem{}).
			Where("id = ? AND tenant_id = ?", movement.InventoryItemID, movement.TenantID).
			Update("stock_quantity", gorm.Expr("stock_quantity + ?", movement.ChangeQuantity))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrItemNotFound
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	return movement.ID, nil
}

func (d *InventoryDAO) FindMovementsByItem(ctx context.Context, itemID, tenantID uint) ([]StockMovement, error) {
	var movements []StockMovement

	result := d.db.WithContext(ctx).
		Where("inventory_item_id = ? AND tenant_id = ?", itemID, tenantID).
		Order("created_at DESC, id DESC").
		Find(&movements)
	if result.Error != nil {
		return nil, result.Error
	}

	return movements, nil
}

func (d *InventoryDAO) InsertItem(ctx context.Context, item InventoryItem) (InventoryItem, error) {
	result := d.db.WithContext(ctx).Create(&item)
	if result.Error != nil {
		return InventoryItem{}, result.Error
	}

	return item, nil
}

func (d *InventoryDAO) UpdateItem(ctx context.Context, item InventoryItem) error {
	result := d.db.WithContext(ctx).Model(&InventoryItem{}).
		Where("id = ? AND tenant_id = ?", item.ID, item.TenantID).
		Updates(map[string]interface{}{
			"title":               item.Title,
			"minimum_stock_level": item.MinimumStockLevel,
			"image_url":           item.ImageURL,
			"unit_id":             item.UnitID,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrItemNotFound
	}

	return nil
}

func (d *InventoryDAO) UpdateItemImage(ctx context.Context, id, tenantID uint, imageURL *string) error {
	result := d.db.WithContext(ctx).Model(&InventoryItem{}).
		Where("id = ? AND tenant_id = ?", id, tenantID).
		Update("image_url", imageURL)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrItemNotFound
	}

	return nil
}

func (d *InventoryDAO) DeleteItem(ctx context.Context, id, tenantID uint) error {
	result := d.db.WithContext(ctx).
		Where("id = ? AND tenant_id = ?", id, tenantID).
		Delete(&InventoryItem{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrItemNotFound
	}

	return nil
}

const itemColumns = "i.id, i.title, i.stock_quantity, i.minimum_stock_level, i.image_url, " +
	"u.id AS unit_id, u.title AS unit_title, u.quantity AS unit_quantity"

// FindAllItems lists the tenant's items joined with their units. The join is
// a LEFT JOIN on purpose: an item whose unit is missing or deleted must
// still appear, with null unit fields.
func (d *InventoryDAO) FindAllItems(ctx context.Context, tenantID uint) ([]InventoryItemRow, error) {
	var rows []InventoryItemRow

	result := d.db.WithContext(ctx).
		Table("inventory_items AS i").
		Select(itemColumns).
		Joins("LEFT JOIN inventory_units u ON u.id = i.unit_id AND u.tenant_id = i.tenant_id").
		Where("i.tenant_id = ?", tenantID).
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	return rows, nil
}

func (d *InventoryDAO) FindItemByID(ctx context.Context, id, tenantID uint) (InventoryItemRow, error) {
	var rows []InventoryItemRow

	result := d.db.WithContext(ctx).
		Table("inventory_items AS i").
		Select(itemColumns).
		Joins("LEFT JOIN inventory_units u ON u.id = i.unit_id AND u.tenant_id = i.tenant_id").
		Where("i.id = ? AND i.tenant_id = ?", id, tenantID).
		Limit(1).
		Scan(&rows)
	if result.Error != nil {
		return InventoryItemRow{}, result.Error
	}
	if len(rows) == 0 {
		return InventoryItemRow{}, ErrItemNotFound
	}

	return rows[0], nil
}

func (d *InventoryDAO) InsertUnit(ctx context.Context, unit InventoryUnit) (InventoryUnit, error) {
	result := d.db.WithContext(ctx).Create(&unit)
	if result.Error != nil {
		return InventoryUnit{}, result.Error
	}

	return unit, nil
}

func (d *InventoryDAO) UpdateUnit(ctx context.Context, unit InventoryUnit) error {
	result := d.db.WithContext(ctx).Model(&InventoryUnit{}).
		Where("id = ? AND tenant_id = ?", unit.ID, unit.TenantID).
		Updates(map[string]interface{}{
			"title":       unit.Title,
			"description": unit.Description,
			"quantity":    unit.Quantity,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUnitNotFound
	}

	return nil
}

func (d *InventoryDAO) FindAllUnits(ctx context.Context, tenantID uint) ([]InventoryUnit, error) {
	var units []InventoryUnit

	result := d.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Find(&units)
	if result.Error != nil {
		return nil, result.Error
	}

	return units, nil
}
