package repository

import (
	"context"
	"fmt"

	"github.com/restrohq/restro-api/internal/domain"
	"github.com/restrohq/restro-api/internal/repository/dao"
)

var (
	ErrMenuItemNotFound = dao.ErrMenuItemNotFound
	ErrAddonNotFound    = dao.ErrAddonNotFound
	ErrVariantNotFound  = dao.ErrVariantNotFound
)

type MenuDAO interface {
	InsertItem(ctx context.Context, item dao.MenuItem) (dao.MenuItem, error)
	UpdateItem(ctx context.Context, item dao.MenuItem) error
	UpdateItemImage(ctx context.Context, id, tenantID uint, imageURL *string) error
	DeleteItem(ctx context.Context, id, tenantID uint) error
	FindAllItems(ctx context.Context, tenantID uint) ([]dao.MenuItemRow, error)
	FindItemByID(ctx context.Context, id, tenantID uint) (dao.MenuItemRow, error)
	InsertAddon(ctx context.Context, addon dao.MenuItemAddon) (dao.MenuItemAddon, error)
	UpdateAddon(ctx context.Context, addon dao.MenuItemAddon) error
	DeleteAddon(ctx context.Context, itemID, addonID, tenantID uint) error
	FindAddonsByItem(ctx context.Context, itemID, tenantID uint) ([]dao.MenuItemAddon, error)
	FindAllAddons(ctx context.Context, tenantID uint) ([]dao.MenuItemAddon, error)
	InsertVariant(ctx context.Context, variant dao.MenuItemVariant) (dao.MenuItemVariant, error)
	UpdateVariant(ctx context.Context, variant dao.MenuItemVariant) error
	DeleteVariant(ctx context.Context, itemID, variantID, tenantID uint) error
	FindVariantsByItem(ctx context.Context, itemID, tenantID uint) ([]dao.MenuItemVariant, error)
	FindAllVariants(ctx context.Context, tenantID uint) ([]dao.MenuItemVariant, error)
}

type MenuRepository struct {
	dao MenuDAO
}

func NewMenuRepository(dao MenuDAO) *MenuRepository {
	return &MenuRepository{
		dao: dao,
	}
}

func (r *MenuRepository) CreateItem(ctx context.Context, tenantID uint, item domain.MenuItem) (domain.MenuItem, error) {
	created, err := r.dao.InsertItem(ctx, dao.MenuItem{
		Title:      item.Title,
		NetPrice:   item.NetPrice,
		TaxGroupID: item.TaxGroupID,
		CategoryID: item.CategoryID,
		ImageURL:   item.ImageURL,
		TenantID:   tenantID,
	})
	if err != nil {
		return domain.MenuItem{}, fmt.Errorf("r.dao.InsertItem -> %w", err)
	}

	return r.FindItemByID(ctx, created.ID, tenantID)
}

func (r *MenuRepository) UpdateItem(ctx context.Context, tenantID uint, item domain.MenuItem) error {
	err := r.dao.UpdateItem(ctx, dao.MenuItem{
		ID:         item.ID,
		Title:      item.Title,
		NetPrice:   item.NetPrice,
		TaxGroupID: item.TaxGroupID,
		CategoryID: item.CategoryID,
		TenantID:   tenantID,
	})
	if err != nil {
		return fmt.Errorf("r.dao.UpdateItem -> %w", err)
	}

	return nil
}

func (r *MenuRepository) UpdateItemImage(ctx context.Context, id, tenantID uint, imageURL *string) error {
	if err := r.dao.UpdateItemImage(ctx, id, tenantID, imageURL); err != nil {
		return fmt.Errorf("r.dao.UpdateItemImage -> %w", err)
	}

	return nil
}

func (r *MenuRepository) DeleteItem(ctx context.Context, id, tenantID uint) error {
	if err := r.dao.DeleteItem(ctx, id, tenantID); err != nil {
		return fmt.Errorf("r.dao.DeleteItem -> %w", err)
	}

	return nil
}

// FindAllItems returns every menu item with its addons and variants attached.
// Addons and variants are fetched once per tenant and grouped in memory to
// avoid an N+1 query per item.
func (r *MenuRepository) FindAllItems(ctx context.Context, tenantID uint) ([]domain.MenuItem, error) {
	rows, err := r.dao.FindAllItems(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAllItems -> %w", err)
	}

	addons, err := r.dao.FindAllAddons(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAllAddons -> %w", err)
	}

	variants, err := r.dao.FindAllVariants(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAllVariants -> %w", err)
	}

	addonsByItem := make(map[uint][]domain.MenuItemAddon)
	for _, a := range addons {
		addonsByItem[a.ItemID] = append(addonsByItem[a.ItemID], r.addonDaoToDomain(a))
	}

	variantsByItem := make(map[uint][]domain.MenuItemVariant)
	for _, v := range variants {
		variantsByItem[v.ItemID] = append(variantsByItem[v.ItemID], r.variantDaoToDomain(v))
	}

	items := make([]domain.MenuItem, 0, len(rows))
	for _, row := range rows {
		item := r.rowToDomain(row)
		item.Addons = addonsByItem[row.ID]
		item.Variants = variantsByItem[row.ID]
		items = append(items, item)
	}

	return items, nil
}

func (r *MenuRepository) FindItemByID(ctx context.Context, id, tenantID uint) (domain.MenuItem, error) {
	row, err := r.dao.FindItemByID(ctx, id, tenantID)
	if err != nil {
		return domain.MenuItem{}, fmt.Errorf("r.dao.FindItemByID -> %w", err)
	}

	item := r.rowToDomain(row)

	addons, err := r.dao.FindAddonsByItem(ctx, id, tenantID)
	if err != nil {
		return domain.MenuItem{}, fmt.Errorf("r.dao.FindAddonsByItem -> %w", err)
	}
	for _, a := range addons {
		item.Addons = append(item.Addons, r.addonDaoToDomain(a))
	}

	variants, err := r.dao.FindVariantsByItem(ctx, id, tenantID)
	if err != nil {
		return domain.MenuItem{}, fmt.Errorf("r.dao.FindVariantsByItem -> %w", err)
	}
	for _, v := range variants {
		item.Variants = append(item.Variants, r.variantDaoToDomain(v))
	}

	return item, nil
}

func (r *MenuRepository) CreateAddon(ctx context.Context, tenantID uint, addon domain.MenuItemAddon) (domain.MenuItemAddon, error) {
	created, err := r.dao.InsertAddon(ctx, dao.MenuItemAddon{
		ItemID:   addon.ItemID,
		Title:    addon.Title,
		NetPrice: addon.NetPrice,
		TenantID: tenantID,
	})
	if err != nil {
		return domain.MenuItemAddon{}, fmt.Errorf("r.dao.InsertAddon -> %w", err)
	}

	return r.addonDaoToDomain(created), nil
}

func (r *MenuRepository) UpdateAddon(ctx context.Context, tenantID uint, addon domain.MenuItemAddon) error {
	err := r.dao.UpdateAddon(ctx, dao.MenuItemAddon{
		ID:       addon.ID,
		ItemID:   addon.ItemID,
		Title:    addon.Title,
		NetPrice: addon.NetPrice,
		TenantID: tenantID,
	})
	if err != nil {
		return fmt.Errorf("r.dao.UpdateAddon -> %w", err)
	}

	return nil
}

func (r *MenuRepository) DeleteAddon(ctx context.Context, itemID, addonID, tenantID uint) error {
	if err := r.dao.DeleteAddon(ctx, itemID, addonID, tenantID); err != nil {
		return fmt.Errorf("r.dao.DeleteAddon -> %w", err)
	}

	return nil
}

func (r *MenuRepository) FindAddonsByItem(ctx context.Context, itemID, tenantID uint) ([]domain.MenuItemAddon, error) {
	found, err := r.dao.FindAddonsByItem(ctx, itemID, tenantID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAddonsByItem -> %w", err)
	}

	addons := make([]domain.MenuItemAddon, 0, len(found))
	for _, a := range found {
		addons = append(addons, r.addonDaoToDomain(a))
	}

	return addons, nil
}

func (r *MenuRepository) CreateVariant(ctx context.Context, tenantID uint, variant domain.MenuItemVariant) (domain.MenuItemVariant, error) {
	created, err := r.dao.InsertVariant(ctx, dao.MenuItemVariant{
		ItemID:   variant.ItemID,
		Title:    variant.Title,
		NetPrice: variant.NetPrice,
		TenantID: tenantID,
	})
	if err != nil {
		return domain.MenuItemVariant{}, fmt.Errorf("r.dao.InsertVariant -> %w", err)
	}

	return r.variantDaoToDomain(created), nil
}

func (r *MenuRepository) UpdateVariant(ctx context.Context, tenantID uint, variant domain.MenuItemVariant) error {
	err := r.dao.UpdateVariant(ctx, dao.MenuItemVariant{
		ID:       variant.ID,
		ItemID:   variant.ItemID,
		Title:    variant.Title,
		NetPrice: variant.NetPrice,
		TenantID: tenantID,
	})
	if err != nil {
		return fmt.Errorf("r.dao.UpdateVariant -> %w", err)
	}

	return nil
}

func (r *MenuRepository) DeleteVariant(ctx context.Context, itemID, variantID, tenantID uint) error {
	if err := r.dao.DeleteVariant(ctx, itemID, variantID, tenantID); err != nil {
		return fmt.Errorf("r.dao.DeleteVariant -> %w", err)
	}

	return nil
}

func (r *MenuRepository) FindVariantsByItem(ctx context.Context, itemID, tenantID uint) ([]domain.MenuItemVariant, error) {
	found, err := r.dao.FindVariantsByItem(ctx, itemID, tenantID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindVariantsByItem -> %w", err)
	}

	variants := make([]domain.MenuItemVariant, 0, len(found))
	for _, v := range found {
		variants = append(variants, r.variantDaoToDomain(v))
	}

	return variants, nil
}

func (r *MenuRepository) rowToDomain(row dao.MenuItemRow) domain.MenuItem {
	return domain.MenuItem{
		ID:            row.ID,
		Title:         row.Title,
		NetPrice:      row.NetPrice,
		TaxGroupID:    row.TaxGroupID,
		TaxGroupTitle: row.TaxGroupTitle,
		CategoryID:    row.CategoryID,
		CategoryTitle: row.CategoryTitle,
		ImageURL:      row.ImageURL,
	}
}

func (r *MenuRepository) addonDaoToDomain(a dao.MenuItemAddon) domain.MenuItemAddon {
	return domain.MenuItemAddon{
		ID:       a.ID,
		ItemID:   a.ItemID,
		Title:    a.Title,
		NetPrice: a.NetPrice,
	}
}

func (r *MenuRepository) variantDaoToDomain(v dao.MenuItemVariant) domain.MenuItemVariant {
	return domain.MenuItemVariant{
		ID:       v.ID,
		ItemID:   v.ItemID,
		Title:    v.Title,
		NetPrice: v.NetPrice,
	}
}
