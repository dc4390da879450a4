package dao

import (
	"context"
	"math/rand"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Tenant ids are unique per test so tests can share one database without
// stepping on each other.
func createTestItem(t *testing.T, tenantID uint, stock int) InventoryItem {
	t.Helper()

	d := NewInventoryDAO(testDB)
	item, err := d.InsertItem(context.Background(), InventoryItem{
		Title:         "Tomatoes",
		StockQuantity: stock,
		TenantID:      tenantID,
	})
	require.NoError(t, err)

	return item
}

func currentStock(t *testing.T, itemID, tenantID uint) int {
	t.Helper()

	var item InventoryItem
	err := testDB.Where("id = ? AND tenant_id = ?", itemID, tenantID).First(&item).Error
	require.NoError(t, err)

	return item.StockQuantity
}

func decimalPtr(v string) *decimal.Decimal {
	d := decimal.RequireFromString(v)

	return &d
}

func TestRecordMovement(t *testing.T) {
	const tenantID = 1001

	d := NewInventoryDAO(testDB)
	item := createTestItem(t, tenantID, 10)

	restockID, err := d.RecordMovement(context.Background(), StockMovement{
		InventoryItemID: item.ID,
		Username:        "alice",
		UnitPrice:       decimalPtr("2.50"),
		ChangeQuantity:  20,
		ChangeType:      "restock",
		TenantID:        tenantID,
	})
	require.NoError(t, err)
	assert.NotZero(t, restockID)
	assert.Equal(t, 30, currentStock(t, item.ID, tenantID))

	usageID, err := d.RecordMovement(context.Background(), StockMovement{
		InventoryItemID: item.ID,
		Username:        "alice",
		ChangeQuantity:  -7,
		ChangeType:      "usage",
		TenantID:        tenantID,
	})
	require.NoError(t, err)
	assert.NotZero(t, usageID)
	assert.Equal(t, 23, currentStock(t, item.ID, tenantID))

	movements, err := d.FindMovementsByItem(context.Background(), item.ID, tenantID)
	require.NoError(t, err)
	require.Len(t, movements, 2)

	// Newest first.
	assert.Equal(t, usageID, movements[0].ID)
	assert.Equal(t, -7, movements[0].ChangeQuantity)
	assert.Nil(t, movements[0].UnitPrice)
	assert.Equal(t, restockID, movements[1].ID)
	assert.Equal(t, 20, movements[1].ChangeQuantity)
	require.NotNil(t, movements[1].UnitPrice)
	assert.True(t, movements[1].UnitPrice.Equal(decimal.RequireFromString("2.50")))
}

func TestRecordMovement_BalanceEqualsLedgerSum(t *testing.T) {
	const tenantID = 1011

	d := NewInventoryDAO(testDB)
	item := createTestItem(t, tenantID, 0)

	// Random signed deltas; after every commit the cached balance must
	// equal the sum of all recorded movements.
	sum := 0
	for i := 0; i < 50; i++ {
		delta := rand.Intn(41) - 20
		if delta == 0 {
			delta = 1
		}

		changeType := "restock"
		if delta < 0 {
			changeType = "usage"
		}

		_, err := d.RecordMovement(context.Background(), StockMovement{
			InventoryItemID: item.ID,
			Username:        "alice",
			ChangeQuantity:  delta,
			ChangeType:      changeType,
			TenantID:        tenantID,
		})
		require.NoError(t, err)

		sum += delta
		require.Equal(t, sum, currentStock(t, item.ID, tenantID))
	}

	movements, err := d.FindMovementsByItem(context.Background(), item.ID, tenantID)
	require.NoError(t, err)
	assert.Len(t, movements, 50)
}

func TestRecordMovement_UnknownItemRollsBack(t *testing.T) {
	const tenantID = 1002
	const missingItemID = 999999

	d := NewInventoryDAO(testDB)

	_, err := d.RecordMovement(context.Background(), StockMovement{
		InventoryItemID: missingItemID,
		Username:        "alice",
		ChangeQuantity:  5,
		ChangeType:      "restock",
		TenantID:        tenantID,
	})
	require.ErrorIs(t, err, ErrItemNotFound)

	// The movement insert must not survive the rollback.
	movements, err := d.FindMovementsByItem(context.Background(), missingItemID, tenantID)
	require.NoError(t, err)
	assert.Empty(t, movements)
}

func TestRecordMovement_WrongTenant(t *testing.T) {
	const ownerTenantID = 1003
	const otherTenantID = 1004

	d := NewInventoryDAO(testDB)
	item := createTestItem(t, ownerTenantID, 10)

	_, err := d.RecordMovement(context.Background(), StockMovement{
		InventoryItemID: item.ID,
		Username:        "mallory",
		ChangeQuantity:  -10,
		ChangeType:      "usage",
		TenantID:        otherTenantID,
	})
	require.ErrorIs(t, err, ErrItemNotFound)

	assert.Equal(t, 10, currentStock(t, item.ID, ownerTenantID))

	movements, err := d.FindMovementsByItem(context.Background(), item.ID, otherTenantID)
	require.NoError(t, err)
	assert.Empty(t, movements)
}

func TestRecordMovement_ConcurrentUsage(t *testing.T) {
	const tenantID = 1005
	const writers = 20

	d := NewInventoryDAO(testDB)
	item := createTestItem(t, tenantID, 100)

	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			_, err := d.RecordMovement(context.Background(), StockMovement{
				InventoryItemID: item.ID,
				Username:        "alice",
				ChangeQuantity:  -3,
				ChangeType:      "usage",
				TenantID:        tenantID,
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	// Relative updates serialize on the item row, so no decrement is lost.
	assert.Equal(t, 100-writers*3, currentStock(t, item.ID, tenantID))

	movements, err := d.FindMovementsByItem(context.Background(), item.ID, tenantID)
	require.NoError(t, err)
	assert.Len(t, movements, writers)
}

func TestRecordMovement_AllowsNegativeBalance(t *testing.T) {
	const tenantID = 1006

	d := NewInventoryDAO(testDB)
	item := createTestItem(t, tenantID, 2)

	_, err := d.RecordMovement(context.Background(), StockMovement{
		InventoryItemID: item.ID,
		Username:        "alice",
		ChangeQuantity:  -5,
		ChangeType:      "usage",
		TenantID:        tenantID,
	})
	require.NoError(t, err)

	assert.Equal(t, -3, currentStock(t, item.ID, tenantID))
}

func TestFindItemByID(t *testing.T) {
	const tenantID = 1007

	d := NewInventoryDAO(testDB)

	unit, err := d.InsertUnit(context.Background(), InventoryUnit{
		Title:    "kg",
		Quantity: decimal.RequireFromString("1"),
		TenantID: tenantID,
	})
	require.NoError(t, err)

	item, err := d.InsertItem(context.Background(), InventoryItem{
		Title:         "Flour",
		StockQuantity: 5,
		UnitID:        &unit.ID,
		TenantID:      tenantID,
	})
	require.NoError(t, err)

	row, err := d.FindItemByID(context.Background(), item.ID, tenantID)
	require.NoError(t, err)
	assert.Equal(t, "Flour", row.Title)
	require.NotNil(t, row.UnitID)
	assert.Equal(t, unit.ID, *row.UnitID)
	require.NotNil(t, row.UnitTitle)
	assert.Equal(t, "kg", *row.UnitTitle)

	_, err = d.FindItemByID(context.Background(), item.ID, tenantID+1)
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestFindItemByID_DanglingUnit(t *testing.T) {
	const tenantID = 1008

	d := NewInventoryDAO(testDB)

	missingUnitID := uint(888888)
	item, err := d.InsertItem(context.Background(), InventoryItem{
		Title:         "Sugar",
		StockQuantity: 3,
		UnitID:        &missingUnitID,
		TenantID:      tenantID,
	})
	require.NoError(t, err)

	// The unit reference dangles, but the item must still come back with
	// null unit fields.
	row, err := d.FindItemByID(context.Background(), item.ID, tenantID)
	require.NoError(t, err)
	assert.Equal(t, "Sugar", row.Title)
	assert.Nil(t, row.UnitID)
	assert.Nil(t, row.UnitTitle)
	assert.Nil(t, row.UnitQuantity)
}

func TestFindAllItems_TenantIsolation(t *testing.T) {
	const tenantA = 1009
	const tenantB = 1010

	d := NewInventoryDAO(testDB)
	createTestItem(t, tenantA, 1)
	createTestItem(t, tenantA, 2)
	createTestItem(t, tenantB, 3)

	rowsA, err := d.FindAllItems(context.Background(), tenantA)
	require.NoError(t, err)
	assert.Len(t, rowsA, 2)

	rowsB, err := d.FindAllItems(context.Background(), tenantB)
	require.NoError(t, err)
	assert.Len(t, rowsB, 1)
}
