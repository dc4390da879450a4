package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/restrohq/restro-api/internal/domain"
	"github.com/restrohq/restro-api/internal/pkg/idcrypt"
)

type mockQRSettingsRepo struct {
	qrCode   string
	tenantID uint
	store    domain.StoreDetails
	tables   map[uint]domain.StoreTable
}

func (m *mockQRSettingsRepo) FindTenantIDByQRCode(ctx context.Context, qrCode string) (uint, error) {
	if qrCode != m.qrCode {
		return 0, ErrStoreNotFound
	}

	return m.tenantID, nil
}

func (m *mockQRSettingsRepo) FindStoreDetails(ctx context.Context, tenantID uint) (domain.StoreDetails, error) {
	return m.store, nil
}

func (m *mockQRSettingsRepo) FindStoreTableByID(ctx context.Context, id, tenantID uint) (domain.StoreTable, error) {
	table, ok := m.tables[id]
	if !ok {
		return domain.StoreTable{}, ErrTableNotFound
	}

	return table, nil
}

type mockQRMenuRepo struct {
	items []domain.MenuItem
}

func (m *mockQRMenuRepo) FindAllItems(ctx context.Context, tenantID uint) ([]domain.MenuItem, error) {
	return m.items, nil
}

type mockQROrderRepo struct {
	placed *domain.QROrder
}

func (m *mockQROrderRepo) PlaceOrder(ctx context.Context, tenantID uint, order domain.QROrder) (uint, error) {
	m.placed = &order

	return 77, nil
}

func (m *mockQROrderRepo) FindOrderByID(ctx context.Context, id, tenantID uint) (domain.QROrder, error) {
	if m.placed == nil {
		return domain.QROrder{}, ErrOrderNotFound
	}

	return *m.placed, nil
}

func (m *mockQROrderRepo) FindOrders(ctx context.Context, tenantID uint) ([]domain.QROrder, error) {
	return nil, nil
}

func newQRMenuTestService(t *testing.T, store domain.StoreDetails, tables map[uint]domain.StoreTable) (*QRMenuService, *mockQROrderRepo, *idcrypt.Codec) {
	t.Helper()

	codec, err := idcrypt.NewCodec([]byte("0123456789abcdef0123456789abcdef"))
	require.NoError(t, err)

	orderRepo := &mockQROrderRepo{}
	svc := NewQRMenuService(
		&mockQRSettingsRepo{qrCode: "qr-123", tenantID: 42, store: store, tables: tables},
		&mockQRMenuRepo{items: []domain.MenuItem{{ID: 1, Title: "Margherita"}}},
		orderRepo,
		codec,
		"", // no Stripe key, payment stays offline
	)

	return svc, orderRepo, codec
}

func cartWithOneItem() []domain.CartItem {
	return []domain.CartItem{{
		ItemID:   1,
		Price:    decimal.RequireFromString("9.50"),
		Quantity: 2,
	}}
}

func TestGetMenu(t *testing.T) {
	svc, _, _ := newQRMenuTestService(t, domain.StoreDetails{StoreName: "Mario's", IsQRMenuEnabled: true}, nil)

	menu, err := svc.GetMenu(context.Background(), "qr-123")
	require.NoError(t, err)
	assert.Equal(t, "Mario's", menu.Store.StoreName)
	require.Len(t, menu.Items, 1)
	assert.Equal(t, "Margherita", menu.Items[0].Title)
}

func TestGetMenu_Disabled(t *testing.T) {
	svc, _, _ := newQRMenuTestService(t, domain.StoreDetails{IsQRMenuEnabled: false}, nil)

	_, err := svc.GetMenu(context.Background(), "qr-123")
	assert.ErrorIs(t, err, ErrQRMenuDisabled)
}

func TestGetMenu_UnknownQRCode(t *testing.T) {
	svc, _, _ := newQRMenuTestService(t, domain.StoreDetails{IsQRMenuEnabled: true}, nil)

	_, err := svc.GetMenu(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrStoreNotFound)
}

func TestPlaceOrder(t *testing.T) {
	svc, orderRepo, codec := newQRMenuTestService(t,
		domain.StoreDetails{IsQROrderEnabled: true},
		map[uint]domain.StoreTable{5: {ID: 5, Title: "T5"}})

	encryptedTableID, err := codec.EncryptID(5)
	require.NoError(t, err)

	orderID, clientSecret, err := svc.PlaceOrder(context.Background(), "qr-123", domain.QROrder{
		DeliveryType: "dinein",
		Items:        cartWithOneItem(),
	}, encryptedTableID, false)
	require.NoError(t, err)
	assert.Equal(t, uint(77), orderID)
	assert.Empty(t, clientSecret)

	require.NotNil(t, orderRepo.placed)
	assert.Equal(t, "pending", orderRepo.placed.PaymentStatus)
	require.NotNil(t, orderRepo.placed.TableID)
	assert.Equal(t, uint(5), *orderRepo.placed.TableID)
}

func TestPlaceOrder_NoTable(t *testing.T) {
	svc, orderRepo, _ := newQRMenuTestService(t, domain.StoreDetails{IsQROrderEnabled: true}, nil)

	orderID, _, err := svc.PlaceOrder(context.Background(), "qr-123", domain.QROrder{
		DeliveryType: "pickup",
		Items:        cartWithOneItem(),
	}, "", false)
	require.NoError(t, err)
	assert.Equal(t, uint(77), orderID)
	assert.Nil(t, orderRepo.placed.TableID)
}

func TestPlaceOrder_EmptyCart(t *testing.T) {
	svc, _, _ := newQRMenuTestService(t, domain.StoreDetails{IsQROrderEnabled: true}, nil)

	_, _, err := svc.PlaceOrder(context.Background(), "qr-123", domain.QROrder{}, "", false)
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestPlaceOrder_OrderingDisabled(t *testing.T) {
	svc, _, _ := newQRMenuTestService(t, domain.StoreDetails{IsQROrderEnabled: false}, nil)

	_, _, err := svc.PlaceOrder(context.Background(), "qr-123", domain.QROrder{
		Items: cartWithOneItem(),
	}, "", false)
	assert.ErrorIs(t, err, ErrQROrderDisabled)
}

func TestPlaceOrder_TamperedTableToken(t *testing.T) {
	svc, _, _ := newQRMenuTestService(t,
		domain.StoreDetails{IsQROrderEnabled: true},
		map[uint]domain.StoreTable{5: {ID: 5}})

	_, _, err := svc.PlaceOrder(context.Background(), "qr-123", domain.QROrder{
		Items: cartWithOneItem(),
	}, "deadbeef", false)
	assert.ErrorIs(t, err, ErrInvalidTableID)
}

func TestPlaceOrder_UnknownTable(t *testing.T) {
	svc, _, codec := newQRMenuTestService(t, domain.StoreDetails{IsQROrderEnabled: true}, nil)

	encryptedTableID, err := codec.EncryptID(99)
	require.NoError(t, err)

	_, _, err = svc.PlaceOrder(context.Background(), "qr-123", domain.QROrder{
		Items: cartWithOneItem(),
	}, encryptedTableID, false)
	assert.ErrorIs(t, err, ErrTableNotFound)
}
