package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/restrohq/restro-api/internal/domain"
)

type mockInventoryRepo struct {
	items     map[uint]domain.InventoryItem
	movements []domain.StockMovement

	recordedTenantID uint
	nextMovementID   uint
}

func newMockInventoryRepo(items ...domain.InventoryItem) *mockInventoryRepo {
	m := &mockInventoryRepo{
		items: make(map[uint]domain.InventoryItem),
	}
	for _, item := range items {
		m.items[item.ID] = item
	}

	return m
}

func (m *mockInventoryRepo) RecordMovement(ctx context.Context, tenantID uint, movement domain.StockMovement) (uint, error) {
	if _, ok := m.items[movement.InventoryItemID]; !ok {
		return 0, ErrItemNotFound
	}

	m.nextMovementID++
	movement.ID = m.nextMovementID
	m.movements = append(m.movements, movement)
	m.recordedTenantID = tenantID

	item := m.items[movement.InventoryItemID]
	item.StockQuantity += movement.ChangeQuantity
	m.items[movement.InventoryItemID] = item

	return movement.ID, nil
}

func (m *mockInventoryRepo) FindMovementsByItem(ctx context.Context, itemID, tenantID uint) ([]domain.StockMovement, error) {
	var found []domain.StockMovement
	for _, movement := range m.movements {
		if movement.InventoryItemID == itemID {
			found = append(found, movement)
		}
	}

	return found, nil
}

func (m *mockInventoryRepo) CreateItem(ctx context.Context, tenantID uint, item domain.InventoryItem) (domain.InventoryItem, error) {
	item.ID = uint(len(m.items) + 1)
	m.items[item.ID] = item

	return item, nil
}

func (m *mockInventoryRepo) UpdateItem(ctx context.Context, tenantID uint, item domain.InventoryItem) error {
	if _, ok := m.items[item.ID]; !ok {
		return ErrItemNotFound
	}
	m.items[item.ID] = item

	return nil
}

func (m *mockInventoryRepo) UpdateItemImage(ctx context.Context, id, tenantID uint, imageURL *string) error {
	item, ok := m.items[id]
	if !ok {
		return ErrItemNotFound
	}
	item.ImageURL = imageURL
	m.items[id] = item

	return nil
}

func (m *mockInventoryRepo) DeleteItem(ctx context.Context, id, tenantID uint) error {
	if _, ok := m.items[id]; !ok {
		return ErrItemNotFound
	}
	delete(m.items, id)

	return nil
}

func (m *mockInventoryRepo) FindAllItems(ctx context.Context, tenantID uint) ([]domain.InventoryItem, error) {
	items := make([]domain.InventoryItem, 0, len(m.items))
	for _, item := range m.items {
		items = append(items, item)
	}

	return items, nil
}

func (m *mockInventoryRepo) FindItemByID(ctx context.Context, id, tenantID uint) (domain.InventoryItem, error) {
	item, ok := m.items[id]
	if !ok {
		return domain.InventoryItem{}, ErrItemNotFound
	}

	return item, nil
}

func (m *mockInventoryRepo) CreateUnit(ctx context.Context, tenantID uint, unit domain.InventoryUnit) (domain.InventoryUnit, error) {
	unit.ID = 1

	return unit, nil
}

func (m *mockInventoryRepo) UpdateUnit(ctx context.Context, tenantID uint, unit domain.InventoryUnit) error {
	return nil
}

func (m *mockInventoryRepo) FindAllUnits(ctx context.Context, tenantID uint) ([]domain.InventoryUnit, error) {
	return nil, nil
}

func TestRecordRestock(t *testing.T) {
	repo := newMockInventoryRepo(domain.InventoryItem{ID: 1, StockQuantity: 10})
	svc := NewInventoryService(repo)

	price := decimal.RequireFromString("2.50")
	id, err := svc.RecordRestock(context.Background(), 42, domain.StockMovement{
		InventoryItemID: 1,
		Username:        "alice",
		UnitPrice:       &price,
		ChangeQuantity:  20,
	})
	require.NoError(t, err)
	assert.NotZero(t, id)

	require.Len(t, repo.movements, 1)
	recorded := repo.movements[0]
	assert.Equal(t, 20, recorded.ChangeQuantity)
	assert.Equal(t, domain.MovementRestock, recorded.ChangeType)
	require.NotNil(t, recorded.UnitPrice)
	assert.Equal(t, uint(42), repo.recordedTenantID)
	assert.Equal(t, 30, repo.items[1].StockQuantity)
}

func TestRecordRestock_Validation(t *testing.T) {
	repo := newMockInventoryRepo(domain.InventoryItem{ID: 1})
	svc := NewInventoryService(repo)
	price := decimal.RequireFromString("1.00")

	tests := []struct {
		name     string
		movement domain.StockMovement
		wantErr  error
	}{
		{
			name:     "zero quantity",
			movement: domain.StockMovement{InventoryItemID: 1, UnitPrice: &price},
			wantErr:  ErrInvalidQuantity,
		},
		{
			name:     "negative quantity",
			movement: domain.StockMovement{InventoryItemID: 1, UnitPrice: &price, ChangeQuantity: -5},
			wantErr:  ErrInvalidQuantity,
		},
		{
			name:     "missing unit price",
			movement: domain.StockMovement{InventoryItemID: 1, ChangeQuantity: 5},
			wantErr:  ErrUnitPriceRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.RecordRestock(context.Background(), 42, tt.movement)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	assert.Empty(t, repo.movements)
}

func TestRecordUsage(t *testing.T) {
	repo := newMockInventoryRepo(domain.InventoryItem{ID: 1, StockQuantity: 10})
	svc := NewInventoryService(repo)

	// A unit price slipping in from the request must not survive; usage
	// entries carry no price.
	price := decimal.RequireFromString("9.99")
	_, err := svc.RecordUsage(context.Background(), 42, domain.StockMovement{
		InventoryItemID: 1,
		Username:        "alice",
		UnitPrice:       &price,
		ChangeQuantity:  7,
	})
	require.NoError(t, err)

	require.Len(t, repo.movements, 1)
	recorded := repo.movements[0]
	assert.Equal(t, -7, recorded.ChangeQuantity)
	assert.Equal(t, domain.MovementUsage, recorded.ChangeType)
	assert.Nil(t, recorded.UnitPrice)
	assert.Equal(t, 3, repo.items[1].StockQuantity)
}

func TestRecordUsage_InvalidQuantity(t *testing.T) {
	repo := newMockInventoryRepo(domain.InventoryItem{ID: 1})
	svc := NewInventoryService(repo)

	_, err := svc.RecordUsage(context.Background(), 42, domain.StockMovement{
		InventoryItemID: 1,
		ChangeQuantity:  0,
	})
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	// The caller passes the absolute amount; negatives are rejected, not
	// interpreted.
	_, err = svc.RecordUsage(context.Background(), 42, domain.StockMovement{
		InventoryItemID: 1,
		ChangeQuantity:  -7,
	})
	assert.ErrorIs(t, err, ErrInvalidQuantity)
}

func TestRecordUsage_AllowsOverdraft(t *testing.T) {
	repo := newMockInventoryRepo(domain.InventoryItem{ID: 1, StockQuantity: 2})
	svc := NewInventoryService(repo)

	_, err := svc.RecordUsage(context.Background(), 42, domain.StockMovement{
		InventoryItemID: 1,
		ChangeQuantity:  5,
	})
	require.NoError(t, err)
	assert.Equal(t, -3, repo.items[1].StockQuantity)
}

func TestGetMovements_UnknownItem(t *testing.T) {
	repo := newMockInventoryRepo()
	svc := NewInventoryService(repo)

	_, err := svc.GetMovements(context.Background(), 99, 42)
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestExportMovements(t *testing.T) {
	repo := newMockInventoryRepo(domain.InventoryItem{ID: 1, Title: "Tomatoes", StockQuantity: 10})
	svc := NewInventoryService(repo)

	price := decimal.RequireFromString("2.50")
	_, err := svc.RecordRestock(context.Background(), 42, domain.StockMovement{
		InventoryItemID: 1,
		Username:        "alice",
		UnitPrice:       &price,
		ChangeQuantity:  20,
	})
	require.NoError(t, err)

	buf, err := svc.ExportMovements(context.Background(), 1, 42)
	require.NoError(t, err)
	assert.NotZero(t, buf.Len())

	// xlsx files are zip archives.
	assert.Equal(t, []byte{'P', 'K'}, buf.Bytes()[:2])
}

func TestExportMovements_UnknownItem(t *testing.T) {
	repo := newMockInventoryRepo()
	svc := NewInventoryService(repo)

	_, err := svc.ExportMovements(context.Background(), 99, 42)
	assert.ErrorIs(t, err, ErrItemNotFound)
}
