package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/restrohq/restro-api/internal/api/middleware"
	"github.com/restrohq/restro-api/internal/domain"
	"github.com/restrohq/restro-api/internal/service"
)

type mockInventoryService struct {
	restockTenantID uint
	restocked       *domain.StockMovement
	used            *domain.StockMovement
	recordErr       error
}

func (m *mockInventoryService) RecordRestock(ctx context.Context, tenantID uint, movement domain.StockMovement) (uint, error) {
	if m.recordErr != nil {
		return 0, m.recordErr
	}
	m.restockTenantID = tenantID
	m.restocked = &movement

	return 11, nil
}

func (m *mockInventoryService) RecordUsage(ctx context.Context, tenantID uint, movement domain.StockMovement) (uint, error) {
	if m.recordErr != nil {
		return 0, m.recordErr
	}
	m.used = &movement

	return 12, nil
}

func (m *mockInventoryService) GetMovements(ctx context.Context, itemID, tenantID uint) ([]domain.StockMovement, error) {
	return nil, nil
}

func (m *mockInventoryService) CreateItem(ctx context.Context, tenantID uint, item domain.InventoryItem) (domain.InventoryItem, error) {
	item.ID = 1

	return item, nil
}

func (m *mockInventoryService) UpdateItem(ctx context.Context, tenantID uint, item domain.InventoryItem) error {
	return nil
}

func (m *mockInventoryService) UpdateItemImage(ctx context.Context, id, tenantID uint, imageURL *string) error {
	return nil
}

func (m *mockInventoryService) DeleteItem(ctx context.Context, id, tenantID uint) error {
	return nil
}

func (m *mockInventoryService) ListItems(ctx context.Context, tenantID uint) ([]domain.InventoryItem, error) {
	return []domain.InventoryItem{{ID: 1, Title: "Tomatoes", StockQuantity: 23}}, nil
}

func (m *mockInventoryService) GetItem(ctx context.Context, id, tenantID uint) (domain.InventoryItem, error) {
	return domain.InventoryItem{}, nil
}

func (m *mockInventoryService) CreateUnit(ctx context.Context, tenantID uint, unit domain.InventoryUnit) (domain.InventoryUnit, error) {
	return unit, nil
}

func (m *mockInventoryService) UpdateUnit(ctx context.Context, tenantID uint, unit domain.InventoryUnit) error {
	return nil
}

func (m *mockInventoryService) ListUnits(ctx context.Context, tenantID uint) ([]domain.InventoryUnit, error) {
	return nil, nil
}

func (m *mockInventoryService) ExportMovements(ctx context.Context, itemID, tenantID uint) (*bytes.Buffer, error) {
	return bytes.NewBufferString("PKfake"), nil
}

// fakeIdentity plays the role of the JWT middleware in tests.
func fakeIdentity(tenantID uint, username string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.Set(middleware.ContextKeyUserID, tenantID)
		ctx.Set(middleware.ContextKeyTenantID, tenantID)
		ctx.Set(middleware.ContextKeyUsername, username)
		ctx.Next()
	}
}

func newInventoryTestRouter(svc *mockInventoryService) *gin.Engine {
	gin.SetMode(gin.TestMode)

	handler := NewInventoryHandler(svc)

	router := gin.New()
	group := router.Group("/api/v1", fakeIdentity(42, "alice"))
	group.GET("/inventory/items", handler.HandleListItems)
	group.POST("/inventory/items/:itemID/restock", handler.HandleRestock)
	group.POST("/inventory/items/:itemID/usage", handler.HandleUsage)
	group.GET("/inventory/items/:itemID/movements/export", handler.HandleExportMovements)

	return router
}

func TestHandleRestock(t *testing.T) {
	svc := &mockInventoryService{}
	router := newInventoryTestRouter(svc)

	body := `{"quantity": 20, "unit_price": "2.50", "remarks": "weekly delivery"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/inventory/items/5/restock", strings.NewReader(body))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusCreated, resp.Code)

	var got map[string]uint
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &got))
	assert.Equal(t, uint(11), got["movement_id"])

	require.NotNil(t, svc.restocked)
	assert.Equal(t, uint(42), svc.restockTenantID)
	assert.Equal(t, uint(5), svc.restocked.InventoryItemID)
	assert.Equal(t, "alice", svc.restocked.Username)
	assert.Equal(t, 20, svc.restocked.ChangeQuantity)
	require.NotNil(t, svc.restocked.UnitPrice)
	assert.Equal(t, "weekly delivery", svc.restocked.Remarks)
}

func TestHandleRestock_MissingUnitPrice(t *testing.T) {
	svc := &mockInventoryService{}
	router := newInventoryTestRouter(svc)

	body := `{"quantity": 20}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/inventory/items/5/restock", strings.NewReader(body))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Nil(t, svc.restocked)
}

func TestHandleRestock_UnknownItem(t *testing.T) {
	svc := &mockInventoryService{recordErr: service.ErrItemNotFound}
	router := newInventoryTestRouter(svc)

	body := `{"quantity": 20, "unit_price": "2.50"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/inventory/items/999/restock", strings.NewReader(body))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestHandleUsage(t *testing.T) {
	svc := &mockInventoryService{}
	router := newInventoryTestRouter(svc)

	body := `{"quantity": 7, "remarks": "dinner service"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/inventory/items/5/usage", strings.NewReader(body))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusCreated, resp.Code)

	require.NotNil(t, svc.used)
	assert.Equal(t, uint(5), svc.used.InventoryItemID)
	// The handler passes the absolute amount; the sign flip is the
	// service's job.
	assert.Equal(t, 7, svc.used.ChangeQuantity)
}

func TestHandleUsage_InvalidQuantity(t *testing.T) {
	svc := &mockInventoryService{}
	router := newInventoryTestRouter(svc)

	body := `{"quantity": 0}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/inventory/items/5/usage", strings.NewReader(body))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Nil(t, svc.used)
}

func TestHandleListItems(t *testing.T) {
	svc := &mockInventoryService{}
	router := newInventoryTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/inventory/items", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var items []domain.InventoryItem
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &items))
	require.Len(t, items, 1)
	assert.Equal(t, 23, items[0].StockQuantity)
}

func TestHandleExportMovements(t *testing.T) {
	svc := &mockInventoryService{}
	router := newInventoryTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/inventory/items/5/movements/export", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Header().Get("Content-Disposition"), "attachment")
	assert.Contains(t, resp.Header().Get("Content-Type"), "spreadsheetml")
}
