package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v72"
	"github.com/stripe/stripe-go/v72/paymentintent"
	"go.uber.org/zap"

	"github.com/restrohq/restro-api/internal/domain"
	"github.com/restrohq/restro-api/internal/pkg/idcrypt"
	"github.com/restrohq/restro-api/internal/repository"
)

var (
	ErrQRMenuDisabled  = errors.New("qr menu is disabled for this store")
	ErrQROrderDisabled = errors.New("qr ordering is disabled for this store")
	ErrEmptyCart       = errors.New("order must contain at least one item")
	ErrInvalidTableID  = idcrypt.ErrInvalidToken
	ErrOrderNotFound   = repository.ErrOrderNotFound
)

type QRMenuSettingsRepository interface {
	FindTenantIDByQRCode(ctx context.Context, qrCode string) (uint, error)
	FindStoreDetails(ctx context.Context, tenantID uint) (domain.StoreDetails, error)
	FindStoreTableByID(ctx context.Context, id, tenantID uint) (domain.StoreTable, error)
}

type QRMenuMenuRepository interface {
	FindAllItems(ctx context.Context, tenantID uint) ([]domain.MenuItem, error)
}

type QRMenuOrderRepository interface {
	PlaceOrder(ctx context.Context, tenantID uint, order domain.QROrder) (uint, error)
	FindOrderByID(ctx context.Context, id, tenantID uint) (domain.QROrder, error)
	FindOrders(ctx context.Context, tenantID uint) ([]domain.QROrder, error)
}

type QRMenuService struct {
	settingsRepo QRMenuSettingsRepository
	menuRepo     QRMenuMenuRepository
	orderRepo    QRMenuOrderRepository
	codec        *idcrypt.Codec
	stripeKey    string
}

func NewQRMenuService(
	settingsRepo QRMenuSettingsRepository,
	menuRepo QRMenuMenuRepository,
	orderRepo QRMenuOrderRepository,
	codec *idcrypt.Codec,
	stripeKey string,
) *QRMenuService {
	return &QRMenuService{
		settingsRepo: settingsRepo,
		menuRepo:     menuRepo,
		orderRepo:    orderRepo,
		codec:        codec,
		stripeKey:    stripeKey,
	}
}

// GetMenu resolves a store from its public QR code and returns the guest
// facing menu. Requires the store to have QR menu enabled.
func (s *QRMenuService) GetMenu(ctx context.Context, qrCode string) (domain.QRMenu, error) {
	tenantID, err := s.settingsRepo.FindTenantIDByQRCode(ctx, qrCode)
	if err != nil {
		return domain.QRMenu{}, fmt.Errorf("s.settingsRepo.FindTenantIDByQRCode -> %w", err)
	}

	store, err := s.settingsRepo.FindStoreDetails(ctx, tenantID)
	if err != nil {
		return domain.QRMenu{}, fmt.Errorf("s.settingsRepo.FindStoreDetails -> %w", err)
	}
	if !store.IsQRMenuEnabled {
		return domain.QRMenu{}, ErrQRMenuDisabled
	}

	items, err := s.menuRepo.FindAllItems(ctx, tenantID)
	if err != nil {
		return domain.QRMenu{}, fmt.Errorf("s.menuRepo.FindAllItems -> %w", err)
	}

	return domain.QRMenu{
		Store: store,
		Items: items,
	}, nil
}

// PlaceOrder accepts a guest order against a store's QR code. The table, if
// any, arrives as an encrypted id from the table's QR sticker. When the
// store has a Stripe key configured and the guest pays online, a
// PaymentIntent is opened and its client secret returned alongside the
// order id.
func (s *QRMenuService) PlaceOrder(ctx context.Context, qrCode string, order domain.QROrder, encryptedTableID string, payOnline bool) (uint, string, error) {
	if len(order.Items) == 0 {
		return 0, "", ErrEmptyCart
	}

	tenantID, err := s.settingsRepo.FindTenantIDByQRCode(ctx, qrCode)
	if err != nil {
		return 0, "", fmt.Errorf("s.settingsRepo.FindTenantIDByQRCode -> %w", err)
	}

	store, err := s.settingsRepo.FindStoreDetails(ctx, tenantID)
	if err != nil {
		return 0, "", fmt.Errorf("s.settingsRepo.FindStoreDetails -> %w", err)
	}
	if !store.IsQROrderEnabled {
		return 0, "", ErrQROrderDisabled
	}

	if encryptedTableID != "" {
		tableID, err := s.codec.DecryptID(encryptedTableID)
		if err != nil {
			return 0, "", ErrInvalidTableID
		}
		if _, err = s.settingsRepo.FindStoreTableByID(ctx, tableID, tenantID); err != nil {
			return 0, "", fmt.Errorf("s.settingsRepo.FindStoreTableByID -> %w", err)
		}
		order.TableID = &tableID
	}

	order.PaymentStatus = "pending"

	orderID, err := s.orderRepo.PlaceOrder(ctx, tenantID, order)
	if err != nil {
		return 0, "", fmt.Errorf("s.orderRepo.PlaceOrder -> %w", err)
	}

	if !payOnline || s.stripeKey == "" {
		return orderID, "", nil
	}

	clientSecret, err := s.createPaymentIntent(order, store.Currency, orderID)
	if err != nil {
		// The order is already committed; payment can be retried or settled
		// at the counter.
		zap.L().Error("failed to create payment intent",
			zap.Uint("order_id", orderID),
			zap.Error(err))

		return orderID, "", nil
	}

	return orderID, clientSecret, nil
}

func (s *QRMenuService) GetOrder(ctx context.Context, id, tenantID uint) (domain.QROrder, error) {
	order, err := s.orderRepo.FindOrderByID(ctx, id, tenantID)
	if err != nil {
		return domain.QROrder{}, fmt.Errorf("s.orderRepo.FindOrderByID -> %w", err)
	}

	return order, nil
}

func (s *QRMenuService) ListOrders(ctx context.Context, tenantID uint) ([]domain.QROrder, error) {
	orders, err := s.orderRepo.FindOrders(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("s.orderRepo.FindOrders -> %w", err)
	}

	return orders, nil
}

func (s *QRMenuService) createPaymentIntent(order domain.QROrder, currency string, orderID uint) (string, error) {
	stripe.Key = s.stripeKey

	total := decimal.Zero
	for _, item := range order.Items {
		total = total.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	if currency == "" {
		currency = string(stripe.CurrencyUSD)
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(total.Shift(2).IntPart()),
		Currency: stripe.String(currency),
	}
	params.AddMetadata("order_id", fmt.Sprintf("%d", orderID))

	intent, err := paymentintent.New(params)
	if err != nil {
		return "", fmt.Errorf("paymentintent.New -> %w", err)
	}

	return intent.ClientSecret, nil
}
