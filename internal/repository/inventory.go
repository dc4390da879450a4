package repository

import (
	"context"
	"fmt"

	"github.com/restrohq/restro-api/internal/domain"
	"github.com/restrohq/restro-api/internal/repository/dao"
)

var (
	ErrItemNotFound = dao.ErrItemNotFound
	ErrUnitNotFound = dao.ErrUnitNotFound
)

type InventoryDAO interface {
	RecordMovement(ctx context.Context, movement dao.StockMovement) (uint, error)
	FindMovementsByItem(ctx context.Context, itemID, tenantID uint) ([]dao.StockMovement, error)
	InsertItem(ctx context.Context, item dao.InventoryItem) (dao.InventoryItem, error)
	UpdateItem(ctx context.Context, item dao.InventoryItem) error
	UpdateItemImage(ctx context.Context, id, tenantID uint, imageURL *string) error
	DeleteItem(ctx context.Context, id, tenantID uint) error
	FindAllItems(ctx context.Context, tenantID uint) ([]dao.InventoryItemRow, error)
	FindItemByID(ctx context.Context, id, tenantID uint) (dao.InventoryItemRow, error)
	InsertUnit(ctx context.Context, unit dao.InventoryUnit) (dao.InventoryUnit, error)
	UpdateUnit(ctx context.Context, unit dao.InventoryUnit) error
	FindAllUnits(ctx context.Context, tenantID uint) ([]dao.InventoryUnit, error)
}

type InventoryRepository struct {
	dao InventoryDAO
}

func NewInventoryRepository(dao InventoryDAO) *InventoryRepository {
	return &InventoryRepository{
		dao: dao,
	}
}

// RecordMovement appends the ledger entry and applies its delta to the item
// balance atomically. The movement's ChangeQuantity must already carry the
// sign of the change.
func (r *InventoryRepository) RecordMovement(ctx context.Context, tenantID uint, movement domain.StockMovement) (uint, error) {
	id, err := r.dao.RecordMovement(ctx, dao.StockMovement{
		InventoryItemID: movement.InventoryItemID,
		Username:        movement.Username,
		UnitPrice:       movement.UnitPrice,
		ChangeQuantity:  movement.ChangeQuantity,
		ChangeType:      string(movement.ChangeType),
		Remarks:         movement.Remarks,
		TenantID:        tenantID,
		CreatedAt:       movement.CreatedAt,
	})
	if err != nil {
		return 0, fmt.Errorf("r.dao.RecordMovement -> %w", err)
	}

	return id, nil
}

func (r *InventoryRepository) FindMovementsByItem(ctx context.Context, itemID, tenantID uint) ([]domain.StockMovement, error) {
	found, err := r.dao.FindMovementsByItem(ctx, itemID, tenantID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindMovementsByItem -> %w", err)
	}

	movements := make([]domain.StockMovement, 0, len(found))
	for _, m := range found {
		movements = append(movements, domain.StockMovement{
			ID:              m.ID,
			InventoryItemID: m.InventoryItemID,
			Username:        m.Username,
			UnitPrice:       m.UnitPrice,
			ChangeQuantity:  m.ChangeQuantity,
			ChangeType:      domain.MovementType(m.ChangeType),
			Remarks:         m.Remarks,
			CreatedAt:       m.CreatedAt,
		})
	}

	return movements, nil
}

func (r *InventoryRepository) CreateItem(ctx context.Context, tenantID uint, item domain.InventoryItem) (domain.InventoryItem, error) {
	created, err := r.dao.InsertItem(ctx, dao.InventoryItem{
		Title:             item.Title,
		StockQuantity:     item.StockQuantity,
		MinimumStockLevel: item.MinimumStockLevel,
		ImageURL:          item.ImageURL,
		UnitID:            item.UnitID,
		TenantID:          tenantID,
	})
	if err != nil {
		return domain.InventoryItem{}, fmt.Errorf("r.dao.InsertItem -> %w", err)
	}

	return r.FindItemByID(ctx, created.ID, tenantID)
}

func (r *InventoryRepository) UpdateItem(ctx context.Context, tenantID uint, item domain.InventoryItem) error {
	err := r.dao.UpdateItem(ctx, dao.InventoryItem{
		ID:                item.ID,
		Title:             item.Title,
		MinimumStockLevel: item.MinimumStockLevel,
		ImageURL:          item.ImageURL,
		UnitID:            item.UnitID,
		TenantID:          tenantID,
	})
	if err != nil {
		return fmt.Errorf("r.dao.UpdateItem -> %w", err)
	}

	return nil
}

func (r *InventoryRepository) UpdateItemImage(ctx context.Context, id, tenantID uint, imageURL *string) error {
	if err := r.dao.UpdateItemImage(ctx, id, tenantID, imageURL); err != nil {
		return fmt.Errorf("r.dao.UpdateItemImage -> %w", err)
	}

	return nil
}

func (r *InventoryRepository) DeleteItem(ctx context.Context, id, tenantID uint) error {
	if err := r.dao.DeleteItem(ctx, id, tenantID); err != nil {
		return fmt.Errorf("r.dao.DeleteItem -> %w", err)
	}

	return nil
}

func (r *InventoryRepository) FindAllItems(ctx context.Context, tenantID uint) ([]domain.InventoryItem, error) {
	rows, err := r.dao.FindAllItems(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAllItems -> %w", err)
	}

	items := make([]domain.InventoryItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, r.rowToDomain(row))
	}

	return items, nil
}

func (r *InventoryRepository) FindItemByID(ctx context.Context, id, tenantID uint) (domain.InventoryItem, error) {
	row, err := r.dao.FindItemByID(ctx, id, tenantID)
	if err != nil {
		return domain.InventoryItem{}, fmt.Errorf("r.dao.FindItemByID -> %w", err)
	}

	return r.rowToDomain(row), nil
}

func (r *InventoryRepository) CreateUnit(ctx context.Context, tenantID uint, unit domain.InventoryUnit) (domain.InventoryUnit, error) {
	created, err := r.dao.InsertUnit(ctx, dao.InventoryUnit{
		Title:       unit.Title,
		Description: unit.Description,
		Quantity:    unit.Quantity,
		TenantID:    tenantID,
	})
	if err != nil {
		return domain.InventoryUnit{}, fmt.Errorf("r.dao.InsertUnit -> %w", err)
	}

	return r.unitDaoToDomain(created), nil
}

func (r *InventoryRepository) UpdateUnit(ctx context.Context, tenantID uint, unit domain.InventoryUnit) error {
	err := r.dao.UpdateUnit(ctx, dao.InventoryUnit{
		ID:          unit.ID,
		Title:       unit.Title,
		Description: unit.Description,
		Quantity:    unit.Quantity,
		TenantID:    tenantID,
	})
	if err != nil {
		return fmt.Errorf("r.dao.UpdateUnit -> %w", err)
	}

	return nil
}

func (r *InventoryRepository) FindAllUnits(ctx context.Context, tenantID uint) ([]domain.InventoryUnit, error) {
	found, err := r.dao.FindAllUnits(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAllUnits -> %w", err)
	}

	units := make([]domain.InventoryUnit, 0, len(found))
	for _, u := range found {
		units = append(units, r.unitDaoToDomain(u))
	}

	return units, nil
}

func (r *InventoryRepository) rowToDomain(row dao.InventoryItemRow) domain.InventoryItem {
	return domain.InventoryItem{
		ID:                row.ID,
		Title:             row.Title,
		StockQuantity:     row.StockQuantity,
		MinimumStockLevel: row.MinimumStockLevel,
		ImageURL:          row.ImageURL,
		UnitID:            row.UnitID,
		UnitTitle:         row.UnitTitle,
		UnitQuantity:      row.UnitQuantity,
	}
}

func (r *InventoryRepository) unitDaoToDomain(u dao.InventoryUnit) domain.InventoryUnit {
	return domain.InventoryUnit{
		ID:          u.ID,
		Title:       u.Title,
		Description: u.Description,
		Quantity:    u.Quantity,
	}
}
