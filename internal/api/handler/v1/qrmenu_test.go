package v1

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/restrohq/restro-api/internal/domain"
	"github.com/restrohq/restro-api/internal/service"
)

type mockQRMenuService struct {
	menu     domain.QRMenu
	menuErr  error
	orderErr error

	placedQRCode  string
	placedOrder   *domain.QROrder
	placedTableID string
	placedOnline  bool
}

func (m *mockQRMenuService) GetMenu(ctx context.Context, qrCode string) (domain.QRMenu, error) {
	if m.menuErr != nil {
		return domain.QRMenu{}, m.menuErr
	}

	return m.menu, nil
}

func (m *mockQRMenuService) PlaceOrder(ctx context.Context, qrCode string, order domain.QROrder, encryptedTableID string, payOnline bool) (uint, string, error) {
	if m.orderErr != nil {
		return 0, "", m.orderErr
	}
	m.placedQRCode = qrCode
	m.placedOrder = &order
	m.placedTableID = encryptedTableID
	m.placedOnline = payOnline

	return 77, "pi_secret", nil
}

func (m *mockQRMenuService) GetOrder(ctx context.Context, id, tenantID uint) (domain.QROrder, error) {
	return domain.QROrder{}, service.ErrOrderNotFound
}

func (m *mockQRMenuService) ListOrders(ctx context.Context, tenantID uint) ([]domain.QROrder, error) {
	return nil, nil
}

func newQRMenuTestRouter(svc *mockQRMenuService) *gin.Engine {
	gin.SetMode(gin.TestMode)

	handler := NewQRMenuHandler(svc)

	router := gin.New()
	router.GET("/api/v1/qr/:qrCode/menu", handler.HandleGetMenu)
	router.POST("/api/v1/qr/:qrCode/orders", handler.HandlePlaceOrder)

	authed := router.Group("/api/v1", fakeIdentity(42, "alice"))
	authed.GET("/orders/:orderID", handler.HandleGetOrder)

	return router
}

func TestHandleGetMenu(t *testing.T) {
	svc := &mockQRMenuService{menu: domain.QRMenu{
		Store: domain.StoreDetails{StoreName: "Mario's"},
		Items: []domain.MenuItem{{ID: 1, Title: "Margherita"}},
	}}
	router := newQRMenuTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/qr/qr-123/menu", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var menu domain.QRMenu
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &menu))
	assert.Equal(t, "Mario's", menu.Store.StoreName)
	require.Len(t, menu.Items, 1)
}

func TestHandleGetMenu_Errors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{name: "unknown store", err: service.ErrStoreNotFound, wantCode: http.StatusNotFound},
		{name: "menu disabled", err: service.ErrQRMenuDisabled, wantCode: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newQRMenuTestRouter(&mockQRMenuService{menuErr: tt.err})

			req := httptest.NewRequest(http.MethodGet, "/api/v1/qr/qr-123/menu", nil)
			resp := httptest.NewRecorder()
			router.ServeHTTP(resp, req)

			assert.Equal(t, tt.wantCode, resp.Code)
		})
	}
}

func TestHandlePlaceOrder(t *testing.T) {
	svc := &mockQRMenuService{}
	router := newQRMenuTestRouter(svc)

	body := `{
		"delivery_type": "dinein",
		"customer_name": "Bob",
		"customer_phone": "555-0101",
		"table_id": "abc123",
		"pay_online": true,
		"items": [{"item_id": 1, "price": "9.50", "quantity": 2}]
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/qr/qr-123/orders", strings.NewReader(body))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusCreated, resp.Code)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &got))
	assert.EqualValues(t, 77, got["order_id"])
	assert.Equal(t, "pi_secret", got["client_secret"])

	assert.Equal(t, "qr-123", svc.placedQRCode)
	assert.Equal(t, "abc123", svc.placedTableID)
	assert.True(t, svc.placedOnline)
	require.NotNil(t, svc.placedOrder)
	assert.Equal(t, "dinein", svc.placedOrder.DeliveryType)
	require.Len(t, svc.placedOrder.Items, 1)
	assert.Equal(t, 2, svc.placedOrder.Items[0].Quantity)
}

func TestHandlePlaceOrder_Validation(t *testing.T) {
	svc := &mockQRMenuService{}
	router := newQRMenuTestRouter(svc)

	tests := []struct {
		name string
		body string
	}{
		{
			name: "no items",
			body: `{"delivery_type": "dinein", "items": []}`,
		},
		{
			name: "bad delivery type",
			body: `{"delivery_type": "teleport", "items": [{"item_id": 1, "quantity": 1}]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/qr/qr-123/orders", strings.NewReader(tt.body))
			resp := httptest.NewRecorder()
			router.ServeHTTP(resp, req)

			assert.Equal(t, http.StatusBadRequest, resp.Code)
			assert.Nil(t, svc.placedOrder)
		})
	}
}

func TestHandlePlaceOrder_OrderingDisabled(t *testing.T) {
	router := newQRMenuTestRouter(&mockQRMenuService{orderErr: service.ErrQROrderDisabled})

	body := `{"delivery_type": "pickup", "items": [{"item_id": 1, "quantity": 1}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/qr/qr-123/orders", strings.NewReader(body))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusForbidden, resp.Code)
}

func TestHandleGetOrder_NotFound(t *testing.T) {
	router := newQRMenuTestRouter(&mockQRMenuService{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/orders/999", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusNotFound, resp.Code)
}
