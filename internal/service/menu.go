package service

import (
	"context"
	"fmt"

	"github.com/restrohq/restro-api/internal/domain"
	"github.com/restrohq/restro-api/internal/repository"
)

var (
	ErrMenuItemNotFound = repository.ErrMenuItemNotFound
	ErrAddonNotFound    = repository.ErrAddonNotFound
	ErrVariantNotFound  = repository.ErrVariantNotFound
)

type MenuRepository interface {
	CreateItem(ctx context.Context, tenantID uint, item domain.MenuItem) (domain.MenuItem, error)
	UpdateItem(ctx context.Context, tenantID uint, item domain.MenuItem) error
	UpdateItemImage(ctx context.Context, id, tenantID uint, imageURL *string) error
	DeleteItem(ctx context.Context, id, tenantID uint) error
	FindAllItems(ctx context.Context, tenantID uint) ([]domain.MenuItem, error)
	FindItemByID(ctx context.Context, id, tenantID uint) (domain.MenuItem, error)
	CreateAddon(ctx context.Context, tenantID uint, addon domain.MenuItemAddon) (domain.MenuItemAddon, error)
	UpdateAddon(ctx context.Context, tenantID uint, addon domain.MenuItemAddon) error
	DeleteAddon(ctx context.Context, itemID, addonID, tenantID uint) error
	FindAddonsByItem(ctx context.Context, itemID, tenantID uint) ([]domain.MenuItemAddon, error)
	CreateVariant(ctx context.Context, tenantID uint, variant domain.MenuItemVariant) (domain.MenuItemVariant, error)
	UpdateVariant(ctx context.Context, tenantID uint, variant domain.MenuItemVariant) error
	DeleteVariant(ctx context.Context, itemID, variantID, tenantID uint) error
	FindVariantsByItem(ctx context.Context, itemID, tenantID uint) ([]domain.MenuItemVariant, error)
}

type MenuService struct {
	repo MenuRepository
}

func NewMenuService(repo MenuRepository) *MenuService {
	return &MenuService{
		repo: repo,
	}
}

func (s *MenuService) CreateItem(ctx context.Context, tenantID uint, item domain.MenuItem) (domain.MenuItem, error) {
	created, err := s.repo.CreateItem(ctx, tenantID, item)
	if err != nil {
		return domain.MenuItem{}, fmt.Errorf("s.repo.CreateItem -> %w", err)
	}

	return created, nil
}

func (s *MenuService) UpdateItem(ctx context.Context, tenantID uint, item domain.MenuItem) error {
	if err := s.repo.UpdateItem(ctx, tenantID, item); err != nil {
		return fmt.Errorf("s.repo.UpdateItem -> %w", err)
	}

	return nil
}

func (s *MenuService) UpdateItemImage(ctx context.Context, id, tenantID uint, imageURL *string) error {
	if err := s.repo.UpdateItemImage(ctx, id, tenantID, imageURL); err != nil {
		return fmt.Errorf("s.repo.UpdateItemImage -> %w", err)
	}

	return nil
}

func (s *MenuService) DeleteItem(ctx context.Context, id, tenantID uint) error {
	if err := s.repo.DeleteItem(ctx, id, tenantID); err != nil {
		return fmt.Errorf("s.repo.DeleteItem -> %w", err)
	}

	return nil
}

func (s *MenuService) ListItems(ctx context.Context, tenantID uint) ([]domain.MenuItem, error) {
	items, err := s.repo.FindAllItems(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAllItems -> %w", err)
	}

	return items, nil
}

func (s *MenuService) GetItem(ctx context.Context, id, tenantID uint) (domain.MenuItem, error) {
	item, err := s.repo.FindItemByID(ctx, id, tenantID)
	if err != nil {
		return domain.MenuItem{}, fmt.Errorf("s.repo.FindItemByID -> %w", err)
	}

	return item, nil
}

func (s *MenuService) CreateAddon(ctx context.Context, tenantID uint, addon domain.MenuItemAddon) (domain.MenuItemAddon, error) {
	if _, err := s.repo.FindItemByID(ctx, addon.ItemID, tenantID); err != nil {
		return domain.MenuItemAddon{}, fmt.Errorf("s.repo.FindItemByID -> %w", err)
	}

	created, err := s.repo.CreateAddon(ctx, tenantID, addon)
	if err != nil {
		return domain.MenuItemAddon{}, fmt.Errorf("s.repo.CreateAddon -> %w", err)
	}

	return created, nil
}

func (s *MenuService) UpdateAddon(ctx context.Context, tenantID uint, addon domain.MenuItemAddon) error {
	if err := s.repo.UpdateAddon(ctx, tenantID, addon); err != nil {
		return fmt.Errorf("s.repo.UpdateAddon -> %w", err)
	}

	return nil
}

func (s *MenuService) DeleteAddon(ctx context.Context, itemID, addonID, tenantID uint) error {
	if err := s.repo.DeleteAddon(ctx, itemID, addonID, tenantID); err != nil {
		return fmt.Errorf("s.repo.DeleteAddon -> %w", err)
	}

	return nil
}

func (s *MenuService) ListAddons(ctx context.Context, itemID, tenantID uint) ([]domain.MenuItemAddon, error) {
	addons, err := s.repo.FindAddonsByItem(ctx, itemID, tenantID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAddonsByItem -> %w", err)
	}

	return addons, nil
}

func (s *MenuService) CreateVariant(ctx context.Context, tenantID uint, variant domain.MenuItemVariant) (domain.MenuItemVariant, error) {
	if _, err := s.repo.FindItemByID(ctx, variant.ItemID, tenantID); err != nil {
		return domain.MenuItemVariant{}, fmt.Errorf("s.repo.FindItemByID -> %w", err)
	}

	created, err := s.repo.CreateVariant(ctx, tenantID, variant)
	if err != nil {
		return domain.MenuItemVariant{}, fmt.Errorf("s.repo.CreateVariant -> %w", err)
	}

	return created, nil
}

func (s *MenuService) UpdateVariant(ctx context.Context, tenantID uint, variant domain.MenuItemVariant) error {
	if err := s.repo.UpdateVariant(ctx, tenantID, variant); err != nil {
		return fmt.Errorf("s.repo.UpdateVariant -> %w", err)
	}

	return nil
}

func (s *MenuService) DeleteVariant(ctx context.Context, itemID, variantID, tenantID uint) error {
	if err := s.repo.DeleteVariant(ctx, itemID, variantID, tenantID); err != nil {
		return fmt.Errorf("s.repo.DeleteVariant -> %w", err)
	}

	return nil
}

func (s *MenuService) ListVariants(ctx context.Context, itemID, tenantID uint) ([]domain.MenuItemVariant, error) {
	variants, err := s.repo.FindVariantsByItem(ctx, itemID, tenantID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindVariantsByItem -> %w", err)
	}

	return variants, nil
}
