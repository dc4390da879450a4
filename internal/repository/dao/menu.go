package dao

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrMenuItemNotFound = errors.New("menu item not found")
	ErrAddonNotFound    = errors.New("menu item addon not found")
	ErrVariantNotFound  = errors.New("menu item variant not found")
)

type MenuItem struct {
	ID         uint            `gorm:"primaryKey"`
	Title      string          `gorm:"not null"`
	NetPrice   decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	TaxGroupID *uint           `gorm:"index"`
	CategoryID *uint           `gorm:"index"`
	ImageURL   *string
	TenantID   uint `gorm:"index;not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

type MenuItemAddon struct {
	ID       uint            `gorm:"primaryKey"`
	ItemID   uint            `gorm:"index;not null"`
	Title    string          `gorm:"not null"`
	NetPrice decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	TenantID uint            `gorm:"index;not null"`
}

type MenuItemVariant struct {
	ID       uint            `gorm:"primaryKey"`
	ItemID   uint            `gorm:"index;not null"`
	Title    string          `gorm:"not null"`
	NetPrice decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	TenantID uint            `gorm:"index;not null"`
}

// MenuItemRow joins the item with its tax group and category titles.
type MenuItemRow struct {
	ID            uint
	Title         string
	NetPrice      decimal.Decimal
	TaxGroupID    *uint
	TaxGroupTitle *string
	CategoryID    *uint
	CategoryTitle *string
	ImageURL      *string
}

type MenuDAO struct {
	db *gorm.DB
}

func NewMenuDAO(db *gorm.DB) *MenuDAO {
	return &MenuDAO{
		db: db,
	}
}

func (d *MenuDAO) InsertItem(ctx context.Context, item MenuItem) (MenuItem, error) {
	result := d.db.WithContext(ctx).Create(&item)
	if result.Error != nil {
		return MenuItem{}, result.Error
	}

	return item, nil
}

func (d *MenuDAO) UpdateItem(ctx context.Context, item MenuItem) error {
	result := d.db.WithContext(ctx).Model(&MenuItem{}).
		Where("id = ? AND tenant_id = ?", item.ID, item.TenantID).
		Updates(map[string]interface{}{
			"title":        item.Title,
			"net_price":    item.NetPrice,
			"tax_group_id": item.TaxGroupID,
			"category_id":  item.CategoryID,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrMenuItemNotFound
	}

	return nil
}

func (d *MenuDAO) UpdateItemImage(ctx context.Context, id, tenantID uint, imageURL *string) error {
	result := d.db.WithContext(ctx).Model(&MenuItem{}).
		Where("id = ? AND tenant_id = ?", id, tenantID).
		Update("image_url", imageURL)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrMenuItemNotFound
	}

	return nil
}

// DeleteItem removes the item together with its addons and variants.
func (d *MenuDAO) DeleteItem(ctx context.Context, id, tenantID uint) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("item_id = ? AND tenant_id = ?", id, tenantID).
			Delete(&MenuItemAddon{}).Error; err != nil {
			return err
		}
		if err := tx.Where("item_id = ? AND tenant_id = ?", id, tenantID).
			Delete(&MenuItemVariant{}).Error; err != nil {
			return err
		}

		result := tx.Where("id = ? AND tenant_id = ?", id, tenantID).Delete(&MenuItem{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrMenuItemNotFound
		}

		return nil
	})
}

const menuItemColumns = "i.id, i.title, i.net_price, i.tax_group_id, t.title AS tax_group_title, " +
	"i.category_id, c.title AS category_title, i.image_url"

func (d *MenuDAO) FindAllItems(ctx context.Context, tenantID uint) ([]MenuItemRow, error) {
	var rows []MenuItemRow

	result := d.db.WithContext(ctx).
		Table("menu_items AS i").
		Select(menuItemColumns).
		Joins("LEFT JOIN tax_groups t ON t.id = i.tax_group_id AND t.tenant_id = i.tenant_id").
		Joins("LEFT JOIN categories c ON c.id = i.category_id AND c.tenant_id = i.tenant_id").
		Where("i.tenant_id = ?", tenantID).
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	return rows, nil
}

func (d *MenuDAO) FindItemByID(ctx context.Context, id, tenantID uint) (MenuItemRow, error) {
	var rows []MenuItemRow

	result := d.db.WithContext(ctx).
		Table("menu_items AS i").
		Select(menuItemColumns).
		Joins("LEFT JOIN tax_groups t ON t.id = i.tax_group_id AND t.tenant_id = i.tenant_id").
		Joins("LEFT JOIN categories c ON c.id = i.category_id AND c.tenant_id = i.tenant_id").
		Where("i.id = ? AND i.tenant_id = ?", id, tenantID).
		Limit(1).
		Scan(&rows)
	if result.Error != nil {
		return MenuItemRow{}, result.Error
	}
	if len(rows) == 0 {
		return MenuItemRow{}, ErrMenuItemNotFound
	}

	return rows[0], nil
}

func (d *MenuDAO) InsertAddon(ctx context.Context, addon MenuItemAddon) (MenuItemAddon, error) {
	result := d.db.WithContext(ctx).Create(&addon)
	if result.Error != nil {
		return MenuItemAddon{}, result.Error
	}

	return addon, nil
}

func (d *MenuDAO) UpdateAddon(ctx context.Context, addon MenuItemAddon) error {
	result := d.db.WithContext(ctx).Model(&MenuItemAddon{}).
		Where("id = ? AND item_id = ? AND tenant_id = ?", addon.ID, addon.ItemID, addon.TenantID).
		Updates(map[string]interface{}{
			"title":     addon.Title,
			"net_price": addon.NetPrice,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAddonNotFound
	}

	return nil
}

func (d *MenuDAO) DeleteAddon(ctx context.Context, itemID, addonID, tenantID uint) error {
	result := d.db.WithContext(ctx).
		Where("id = ? AND item_id = ? AND tenant_id = ?", addonID, itemID, tenantID).
		Delete(&MenuItemAddon{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAddonNotFound
	}

	return nil
}

func (d *MenuDAO) FindAddonsByItem(ctx context.Context, itemID, tenantID uint) ([]MenuItemAddon, error) {
	var addons []MenuItemAddon

	result := d.db.WithContext(ctx).
		Where("item_id = ? AND tenant_id = ?", itemID, tenantID).
		Find(&addons)
	if result.Error != nil {
		return nil, result.Error
	}

	return addons, nil
}

func (d *MenuDAO) FindAllAddons(ctx context.Context, tenantID uint) ([]MenuItemAddon, error) {
	var addons []MenuItemAddon

	result := d.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Find(&addons)
	if result.Error != nil {
		return nil, result.Error
	}

	return addons, nil
}

func (d *MenuDAO) InsertVariant(ctx context.Context, variant MenuItemVariant) (MenuItemVariant, error) {
	result := d.db.WithContext(ctx).Create(&variant)
	if result.Error != nil {
		return MenuItemVariant{}, result.Error
	}

	return variant, nil
}

func (d *MenuDAO) UpdateVariant(ctx context.Context, variant MenuItemVariant) error {
	result := d.db.WithContext(ctx).Model(&MenuItemVariant{}).
		Where("id = ? AND item_id = ? AND tenant_id = ?", variant.ID, variant.ItemID, variant.TenantID).
		Updates(map[string]interface{}{
			"title":     variant.Title,
			"net_price": variant.NetPrice,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrVariantNotFound
	}

	return nil
}

func (d *MenuDAO) DeleteVariant(ctx context.Context, itemID, variantID, tenantID uint) error {
	result := d.db.WithContext(ctx).
		Where("id = ? AND item_id = ? AND tenant_id = ?", variantID, itemID, tenantID).
		Delete(&MenuItemVariant{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrVariantNotFound
	}

	return nil
}

func (d *MenuDAO) FindVariantsByItem(ctx context.Context, itemID, tenantID uint) ([]MenuItemVariant, error) {
	var variants []MenuItemVariant

	result := d.db.WithContext(ctx).
		Where("item_id = ? AND tenant_id = ?", itemID, tenantID).
		Find(&variants)
	if result.Error != nil {
		return nil, result.Error
	}

	return variants, nil
}

func (d *MenuDAO) FindAllVariants(ctx context.Context, tenantID uint) ([]MenuItemVariant, error) {
	var variants []MenuItemVariant

	result := d.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Find(&variants)
	if result.Error != nil {
		return nil, result.Error
	}

	return variants, nil
}
