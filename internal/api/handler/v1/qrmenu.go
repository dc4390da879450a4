package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/restrohq/restro-api/internal/api/handler/v1/request"
	"github.com/restrohq/restro-api/internal/api/handler/v1/response"
	"github.com/restrohq/restro-api/internal/domain"
	"github.com/restrohq/restro-api/internal/service"
)

type QRMenuService interface {
	GetMenu(ctx context.Context, qrCode string) (domain.QRMenu, error)
	PlaceOrder(ctx context.Context, qrCode string, order domain.QROrder, encryptedTableID string, payOnline bool) (uint, string, error)
	GetOrder(ctx context.Context, id, tenantID uint) (domain.QROrder, error)
	ListOrders(ctx context.Context, tenantID uint) ([]domain.QROrder, error)
}

type QRMenuHandler struct {
	svc QRMenuService
}

func NewQRMenuHandler(svc QRMenuService) *QRMenuHandler {
	return &QRMenuHandler{
		svc: svc,
	}
}

// HandleGetMenu godoc
// @Summary      Get the public menu for a store QR code
// @Tags         qr
// @Produce      json
// @Param        qrCode   path       string  true  "store QR code"
// @Success      200      {object}   domain.QRMenu
// @Failure      403      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /qr/{qrCode}/menu [get]
func (h *QRMenuHandler) HandleGetMenu(ctx *gin.Context) {
	qrCode := ctx.Param("qrCode")

	menu, err := h.svc.GetMenu(ctx.Request.Context(), qrCode)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrStoreNotFound):
			response.RenderErr(ctx, response.ErrNotFound("store", "QR code", qrCode, err))
		case errors.Is(err, service.ErrQRMenuDisabled):
			response.RenderErr(ctx, response.ErrForbidden(err))
		default:
			err = fmt.Errorf("v1.HandleGetMenu -> h.svc.GetMenu -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}

		return
	}

	ctx.JSON(http.StatusOK, menu)
}

// HandlePlaceOrder godoc
// @Summary      Place a guest order against a store QR code
// @Tags         qr
// @Produce      json
// @Param        qrCode   path       string  true  "store QR code"
// @Param        request  body       request.PlaceOrderRequest true "request body"
// @Success      201      {object}   response.OrderPlacedResponse
// @Failure      400      {object}   response.Err
// @Failure      403      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /qr/{qrCode}/orders [post]
func (h *QRMenuHandler) HandlePlaceOrder(ctx *gin.Context) {
	qrCode := ctx.Param("qrCode")

	var req request.PlaceOrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	items := make([]domain.CartItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, domain.CartItem{
			ItemID:    item.ItemID,
			VariantID: item.VariantID,
			Price:     item.Price,
			Quantity:  item.Quantity,
			Notes:     item.Notes,
			AddonIDs:  item.AddonIDs,
		})
	}

	order := domain.QROrder{
		DeliveryType:  req.DeliveryType,
		CustomerType:  req.CustomerType,
		CustomerPhone: req.CustomerPhone,
		CustomerName:  req.CustomerName,
		Items:         items,
	}

	orderID, clientSecret, err := h.svc.PlaceOrder(ctx.Request.Context(), qrCode, order, req.TableID, req.PayOnline)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrStoreNotFound):
			response.RenderErr(ctx, response.ErrNotFound("store", "QR code", qrCode, err))
		case errors.Is(err, service.ErrTableNotFound):
			response.RenderErr(ctx, response.ErrNotFound("table", "encrypted ID", req.TableID, err))
		case errors.Is(err, service.ErrQROrderDisabled):
			response.RenderErr(ctx, response.ErrForbidden(err))
		case errors.Is(err, service.ErrEmptyCart), errors.Is(err, service.ErrInvalidTableID):
			response.RenderErr(ctx, response.ErrBadRequest(err))
		default:
			err = fmt.Errorf("v1.HandlePlaceOrder -> h.svc.PlaceOrder -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}

		return
	}

	ctx.JSON(http.StatusCreated, response.OrderPlacedResponse{
		OrderID:      orderID,
		ClientSecret: clientSecret,
	})
}

// HandleListOrders godoc
// @Summary      List guest orders for the caller's store
// @Tags         orders
// @Produce      json
// @Success      200      {array}    domain.QROrder
// @Failure      500      {object}   response.Err
// @Router       /orders [get]
func (h *QRMenuHandler) HandleListOrders(ctx *gin.Context) {
	tenantID, _, err := callerIdentity(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	orders, err := h.svc.ListOrders(ctx.Request.Context(), tenantID)
	if err != nil {
		err = fmt.Errorf("v1.HandleListOrders -> h.svc.ListOrders -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, orders)
}

// HandleGetOrder godoc
// @Summary      Get a guest order with its items
// @Tags         orders
// @Produce      json
// @Param        orderID  path       int  true  "order ID"
// @Success      200      {object}   domain.QROrder
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /orders/{orderID} [get]
func (h *QRMenuHandler) HandleGetOrder(ctx *gin.Context) {
	tenantID, _, err := callerIdentity(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	orderID, err := parseIDParam(ctx, "orderID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	order, err := h.svc.GetOrder(ctx.Request.Context(), orderID, tenantID)
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("order", "ID", orderID, err))

			return
		}

		err = fmt.Errorf("v1.HandleGetOrder -> h.svc.GetOrder -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, order)
}
