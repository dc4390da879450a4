package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/xuri/excelize/v2"

	"github.com/restrohq/restro-api/internal/domain"
	"github.com/restrohq/restro-api/internal/repository"
)

var (
	ErrItemNotFound      = repository.ErrItemNotFound
	ErrUnitNotFound      = repository.ErrUnitNotFound
	ErrInvalidQuantity   = errors.New("quantity must be a positive integer")
	ErrUnitPriceRequired = errors.New("unit price is required for restock")
)

var movementsRecorded = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "restro_stock_movements_total",
	Help: "Stock movements recorded, by movement type.",
}, []string{"type"})

type InventoryRepository interface {
	RecordMovement(ctx context.Context, tenantID uint, movement domain.StockMovement) (uint, error)
	FindMovementsByItem(ctx context.Context, itemID, tenantID uint) ([]domain.StockMovement, error)
	CreateItem(ctx context.Context, tenantID uint, item domain.InventoryItem) (domain.InventoryItem, error)
	UpdateItem(ctx context.Context, tenantID uint, item domain.InventoryItem) error
	UpdateItemImage(ctx context.Context, id, tenantID uint, imageURL *string) error
	DeleteItem(ctx context.Context, id, tenantID uint) error
	FindAllItems(ctx context.Context, tenantID uint) ([]domain.InventoryItem, error)
	FindItemByID(ctx context.Context, id, tenantID uint) (domain.InventoryItem, error)
	CreateUnit(ctx context.Context, tenantID uint, unit domain.InventoryUnit) (domain.InventoryUnit, error)
	UpdateUnit(ctx context.Context, tenantID uint, unit domain.InventoryUnit) error
	FindAllUnits(ctx context.Context, tenantID uint) ([]domain.InventoryUnit, error)
}

type InventoryService struct {
	repo InventoryRepository
}

func NewInventoryService(repo InventoryRepository) *InventoryService {
	return &InventoryService{
		repo: repo,
	}
}

// RecordRestock appends a positive movement to the item's ledger. Quantity is
// the absolute amount added; the occurredAt override is optional and defaults
// to now when zero.
func (s *InventoryService) RecordRestock(ctx context.Context, tenantID uint, movement domain.StockMovement) (uint, error) {
	if movement.ChangeQuantity <= 0 {
		return 0, ErrInvalidQuantity
	}
	if movement.UnitPrice == nil {
		return 0, ErrUnitPriceRequired
	}
	movement.ChangeType = domain.MovementRestock

	id, err := s.repo.RecordMovement(ctx, tenantID, movement)
	if err != nil {
		return 0, fmt.Errorf("s.repo.RecordMovement -> %w", err)
	}

	movementsRecorded.WithLabelValues(string(domain.MovementRestock)).Inc()

	return id, nil
}

// RecordUsage appends a negative movement. The caller passes the absolute
// quantity consumed; the sign flip happens here. Balances may go negative,
// usage is never rejected for insufficient stock.
func (s *InventoryService) RecordUsage(ctx context.Context, tenantID uint, movement domain.StockMovement) (uint, error) {
	if movement.ChangeQuantity <= 0 {
		return 0, ErrInvalidQuantity
	}
	movement.ChangeQuantity = -movement.ChangeQuantity
	movement.ChangeType = domain.MovementUsage
	movement.UnitPrice = nil

	id, err := s.repo.RecordMovement(ctx, tenantID, movement)
	if err != nil {
		return 0, fmt.Errorf("s.repo.RecordMovement -> %w", err)
	}

	movementsRecorded.WithLabelValues(string(domain.MovementUsage)).Inc()

	return id, nil
}

func (s *InventoryService) GetMovements(ctx context.Context, itemID, tenantID uint) ([]domain.StockMovement, error) {
	if _, err := s.repo.FindItemByID(ctx, itemID, tenantID); err != nil {
		return nil, fmt.Errorf("s.repo.FindItemByID -> %w", err)
	}

	movements, err := s.repo.FindMovementsByItem(ctx, itemID, tenantID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindMovementsByItem -> %w", err)
	}

	return movements, nil
}

func (s *InventoryService) CreateItem(ctx context.Context, tenantID uint, item domain.InventoryItem) (domain.InventoryItem, error) {
	created, err := s.repo.CreateItem(ctx, tenantID, item)
	if err != nil {
		return domain.InventoryItem{}, fmt.Errorf("s.repo.CreateItem -> %w", err)
	}

	return created, nil
}

func (s *InventoryService) UpdateItem(ctx context.Context, tenantID uint, item domain.InventoryItem) error {
	if err := s.repo.UpdateItem(ctx, tenantID, item); err != nil {
		return fmt.Errorf("s.repo.UpdateItem -> %w", err)
	}

	return nil
}

func (s *InventoryService) UpdateItemImage(ctx context.Context, id, tenantID uint, imageURL *string) error {
	if err := s.repo.UpdateItemImage(ctx, id, tenantID, imageURL); err != nil {
		return fmt.Errorf("s.repo.UpdateItemImage -> %w", err)
	}

	return nil
}

func (s *InventoryService) DeleteItem(ctx context.Context, id, tenantID uint) error {
	if err := s.repo.DeleteItem(ctx, id, tenantID); err != nil {
		return fmt.Errorf("s.repo.DeleteItem -> %w", err)
	}

	return nil
}

func (s *InventoryService) ListItems(ctx context.Context, tenantID uint) ([]domain.InventoryItem, error) {
	items, err := s.repo.FindAllItems(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAllItems -> %w", err)
	}

	return items, nil
}

func (s *InventoryService) GetItem(ctx context.Context, id, tenantID uint) (domain.InventoryItem, error) {
	item, err := s.repo.FindItemByID(ctx, id, tenantID)
	if err != nil {
		return domain.InventoryItem{}, fmt.Errorf("s.repo.FindItemByID -> %w", err)
	}

	return item, nil
}

func (s *InventoryService) CreateUnit(ctx context.Context, tenantID uint, unit domain.InventoryUnit) (domain.InventoryUnit, error) {
	created, err := s.repo.CreateUnit(ctx, tenantID, unit)
	if err != nil {
		return domain.InventoryUnit{}, fmt.Errorf("s.repo.CreateUnit -> %w", err)
	}

	return created, nil
}

func (s *InventoryService) UpdateUnit(ctx context.Context, tenantID uint, unit domain.InventoryUnit) error {
	if err := s.repo.UpdateUnit(ctx, tenantID, unit); err != nil {
		return fmt.Errorf("s.repo.UpdateUnit -> %w", err)
	}

	return nil
}

func (s *InventoryService) ListUnits(ctx context.Context, tenantID uint) ([]domain.InventoryUnit, error) {
	units, err := s.repo.FindAllUnits(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAllUnits -> %w", err)
	}

	return units, nil
}

// ExportMovements renders an item's full ledger as an xlsx workbook, newest
// entries first, for download from the dashboard.
func (s *InventoryService) ExportMovements(ctx context.Context, itemID, tenantID uint) (*bytes.Buffer, error) {
	item, err := s.repo.FindItemByID(ctx, itemID, tenantID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindItemByID -> %w", err)
	}

	movements, err := s.repo.FindMovementsByItem(ctx, itemID, tenantID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindMovementsByItem -> %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Movements"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, fmt.Errorf("f.NewSheet -> %w", err)
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headers := []interface{}{"Date", "Item", "Type", "Quantity", "Unit Price", "Recorded By", "Remarks"}
	if err = f.SetSheetRow(sheet, "A1", &headers); err != nil {
		return nil, fmt.Errorf("f.SetSheetRow -> %w", err)
	}

	for i, m := range movements {
		unitPrice := ""
		if m.UnitPrice != nil {
			unitPrice = m.UnitPrice.StringFixed(2)
		}

		row := []interface{}{
			m.CreatedAt.Format(time.RFC3339),
			item.Title,
			string(m.ChangeType),
			m.ChangeQuantity,
			unitPrice,
			m.Username,
			m.Remarks,
		}

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("excelize.CoordinatesToCellName -> %w", err)
		}
		if err = f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, fmt.Errorf("f.SetSheetRow -> %w", err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("f.WriteToBuffer -> %w", err)
	}

	return buf, nil
}
