package repository

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/restrohq/restro-api/internal/domain"
	"github.com/restrohq/restro-api/internal/repository/dao"
)

var ErrOrderNotFound = dao.ErrOrderNotFound

type OrderDAO interface {
	PlaceOrder(ctx context.Context, order dao.QROrder, items []dao.QROrderItem) (uint, error)
	FindOrderByID(ctx context.Context, id, tenantID uint) (dao.QROrder, []dao.QROrderItem, error)
	FindOrders(ctx context.Context, tenantID uint) ([]dao.QROrder, error)
}

type OrderRepository struct {
	dao OrderDAO
}

func NewOrderRepository(dao OrderDAO) *OrderRepository {
	return &OrderRepository{
		dao: dao,
	}
}

func (r *OrderRepository) PlaceOrder(ctx context.Context, tenantID uint, order domain.QROrder) (uint, error) {
	daoItems := make([]dao.QROrderItem, 0, len(order.Items))
	for _, item := range order.Items {
		daoItems = append(daoItems, dao.QROrderItem{
			ItemID:    item.ItemID,
			VariantID: item.VariantID,
			Price:     item.Price,
			Quantity:  item.Quantity,
			Notes:     item.Notes,
			AddonIDs:  encodeAddonIDs(item.AddonIDs),
		})
	}

	id, err := r.dao.PlaceOrder(ctx, dao.QROrder{
		DeliveryType:  order.DeliveryType,
		CustomerType:  order.CustomerType,
		CustomerPhone: order.CustomerPhone,
		CustomerName:  order.CustomerName,
		TableID:       order.TableID,
		PaymentStatus: order.PaymentStatus,
		TenantID:      tenantID,
	}, daoItems)
	if err != nil {
		return 0, fmt.Errorf("r.dao.PlaceOrder -> %w", err)
	}

	return id, nil
}

func (r *OrderRepository) FindOrderByID(ctx context.Context, id, tenantID uint) (domain.QROrder, error) {
	order, items, err := r.dao.FindOrderByID(ctx, id, tenantID)
	if err != nil {
		return domain.QROrder{}, fmt.Errorf("r.dao.FindOrderByID -> %w", err)
	}

	result := r.daoToDomain(order)
	for _, item := range items {
		result.Items = append(result.Items, domain.CartItem{
			ItemID:    item.ItemID,
			VariantID: item.VariantID,
			Price:     item.Price,
			Quantity:  item.Quantity,
			Notes:     item.Notes,
			AddonIDs:  decodeAddonIDs(item.AddonIDs),
		})
	}

	return result, nil
}

func (r *OrderRepository) FindOrders(ctx context.Context, tenantID uint) ([]domain.QROrder, error) {
	found, err := r.dao.FindOrders(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindOrders -> %w", err)
	}

	orders := make([]domain.QROrder, 0, len(found))
	for _, o := range found {
		orders = append(orders, r.daoToDomain(o))
	}

	return orders, nil
}

func (r *OrderRepository) daoToDomain(o dao.QROrder) domain.QROrder {
	return domain.QROrder{
		ID:            o.ID,
		DeliveryType:  o.DeliveryType,
		CustomerType:  o.CustomerType,
		CustomerPhone: o.CustomerPhone,
		CustomerName:  o.CustomerName,
		TableID:       o.TableID,
		PaymentStatus: o.PaymentStatus,
		CreatedAt:     o.CreatedAt,
	}
}

func encodeAddonIDs(ids []uint) string {
	if len(ids) == 0 {
		return ""
	}

	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, strconv.FormatUint(uint64(id), 10))
	}

	return strings.Join(parts, ",")
}

func decodeAddonIDs(encoded string) []uint {
	if encoded == "" {
		return nil
	}

	var ids []uint
	for _, part := range strings.Split(encoded, ",") {
		id, err := strconv.ParseUint(part, 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, uint(id))
	}

	return ids
}
