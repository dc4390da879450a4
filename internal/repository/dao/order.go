package dao

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var ErrOrderNotFound = errors.New("order not found")

type Customer struct {
	ID       uint   `gorm:"primaryKey"`
	Phone    string `gorm:"index;not null"`
	Name     string
	TenantID uint `gorm:"index;not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

type QROrder struct {
	ID            uint   `gorm:"primaryKey"`
	DeliveryType  string `gorm:"not null"`
	CustomerType  string `gorm:"not null"`
	CustomerPhone string
	CustomerName  string
	TableID       *uint
	PaymentStatus string `gorm:"not null"`
	TenantID      uint   `gorm:"index;not null"`

	CreatedAt time.Time `gorm:"not null"`
}

type QROrderItem struct {
	ID        uint            `gorm:"primaryKey"`
	OrderID   uint            `gorm:"index;not null"`
	ItemID    uint            `gorm:"not null"`
	VariantID *uint
	Price     decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Quantity  int             `gorm:"not null"`
	Notes     string
	AddonIDs  string // comma separated addon ids, empty when none
	TenantID  uint   `gorm:"index;not null"`
}

type OrderDAO struct {
	db *gorm.DB
}

func NewOrderDAO(db *gorm.DB) *OrderDAO {
	return &OrderDAO{
		db: db,
	}
}

// PlaceOrder writes the order, its items, and the customer record together.
// Any failure rolls everything back so no half-written order survives.
func (d *OrderDAO) PlaceOrder(ctx context.Context, order QROrder, items []QROrderItem) (uint, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		for i := range items {
			items[i].OrderID = order.ID
			items[i].TenantID = order.TenantID
		}
		if err := tx.Create(&items).Error; err != nil {
			return err
		}

		if order.CustomerPhone == "" {
			return nil
		}

		customer := Customer{
			Phone:    order.CustomerPhone,
			Name:     order.CustomerName,
			TenantID: order.TenantID,
		}

		return tx.Where("phone = ? AND tenant_id = ?", order.CustomerPhone, order.TenantID).
			FirstOrCreate(&customer).Error
	})
	if err != nil {
		return 0, err
	}

	return order.ID, nil
}

func (d *OrderDAO) FindOrderByID(ctx context.Context, id, tenantID uint) (QROrder, []QROrderItem, error) {
	var order QROrder

	result := d.db.WithContext(ctx).
		Where("id = ? AND tenant_id = ?", id, tenantID).
		First(&order)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return QROrder{}, nil, ErrOrderNotFound
		}

		return QROrder{}, nil, result.Error
	}

	var items []QROrderItem

	result = d.db.WithContext(ctx).
		Where("order_id = ? AND tenant_id = ?", id, tenantID).
		Find(&items)
	if result.Error != nil {
		return QROrder{}, nil, result.Error
	}

	return order, items, nil
}

func (d *OrderDAO) FindOrders(ctx context.Context, tenantID uint) ([]QROrder, error) {
	var orders []QROrder

	result := d.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("created_at DESC, id DESC").
		Find(&orders)
	if result.Error != nil {
		return nil, result.Error
	}

	return orders, nil
}
