package v1

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/restrohq/restro-api/internal/api/handler/v1/request"
	"github.com/restrohq/restro-api/internal/api/handler/v1/response"
	"github.com/restrohq/restro-api/internal/domain"
	"github.com/restrohq/restro-api/internal/service"
)

type InventoryService interface {
	RecordRestock(ctx context.Context, tenantID uint, movement domain.StockMovement) (uint, error)
	RecordUsage(ctx context.Context, tenantID uint, movement domain.StockMovement) (uint, error)
	GetMovements(ctx context.Context, itemID, tenantID uint) ([]domain.StockMovement, error)
	CreateItem(ctx context.Context, tenantID uint, item domain.InventoryItem) (domain.InventoryItem, error)
	UpdateItem(ctx context.Context, tenantID uint, item domain.InventoryItem) error
	UpdateItemImage(ctx context.Context, id, tenantID uint, imageURL *string) error
	DeleteItem(ctx context.Context, id, tenantID uint) error
	ListItems(ctx context.Context, tenantID uint) ([]domain.InventoryItem, error)
	GetItem(ctx context.Context, id, tenantID uint) (domain.InventoryItem, error)
	CreateUnit(ctx context.Context, tenantID uint, unit domain.InventoryUnit) (domain.InventoryUnit, error)
	UpdateUnit(ctx context.Context, tenantID uint, unit domain.InventoryUnit) error
	ListUnits(ctx context.Context, tenantID uint) ([]domain.InventoryUnit, error)
	ExportMovements(ctx context.Context, itemID, tenantID uint) (*bytes.Buffer, error)
}

type InventoryHandler struct {
	svc InventoryService
}

func NewInventoryHandler(svc InventoryService) *InventoryHandler {
	return &InventoryHandler{
		svc: svc,
	}
}

// HandleListItems godoc
// @Summary      List inventory items with stock balances
// @Tags         inventory
// @Produce      json
// @Success      200      {array}    domain.InventoryItem
// @Failure      500      {object}   response.Err
// @Router       /inventory/items [get]
func (h *InventoryHandler) HandleListItems(ctx *gin.Context) {
	tenantID, _, err := callerIdentity(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	items, err := h.svc.ListItems(ctx.Request.Context(), tenantID)
	if err != nil {
		err = fmt.Errorf("v1.HandleListItems -> h.svc.ListItems -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, items)
}

// HandleGetItem godoc
// @Summary      Get one inventory item
// @Tags         inventory
// @Produce      json
// @Param        itemID   path       int  true  "item ID"
// @Success      200      {object}   domain.InventoryItem
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /inventory/items/{itemID} [get]
func (h *InventoryHandler) HandleGetItem(ctx *gin.Context) {
	tenantID, _, err := callerIdentity(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	itemID, err := parseIDParam(ctx, "itemID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	item, err := h.svc.GetItem(ctx.Request.Context(), itemID, tenantID)
	if err != nil {
		if errors.Is(err, service.ErrItemNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("item", "ID", itemID, err))

			return
		}

		err = fmt.Errorf("v1.HandleGetItem -> h.svc.GetItem -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, item)
}

// HandleCreateItem godoc
// @Summary      Create an inventory item
// @Tags         inventory
// @Produce      json
// @Param        request  body       request.CreateInventoryItemRequest true "request body"
// @Success      201      {object}   domain.InventoryItem
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /inventory/items [post]
func (h *InventoryHandler) HandleCreateItem(ctx *gin.Context) {
	tenantID, _, err := callerIdentity(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	var req request.CreateInventoryItemRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	item, err := h.svc.CreateItem(ctx.Request.Context(), tenantID, domain.InventoryItem{
		Title:             req.Title,
		MinimumStockLevel: req.MinimumStockLevel,
		UnitID:            req.UnitID,
	})
	if err != nil {
		err = fmt.Errorf("v1.HandleCreateItem -> h.svc.CreateItem -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, item)
}

// HandleUpdateItem godoc
// @Summary      Update an inventory item
// @Tags         inventory
// @Produce      json
// @Param        itemID   path       int  true  "item ID"
// @Param        request  body       request.UpdateInventoryItemRequest true "request body"
// @Success      200      {object}   domain.InventoryItem
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /inventory/items/{itemID} [put]
func (h *InventoryHandler) HandleUpdateItem(ctx *gin.Context) {
	tenantID, _, err := callerIdentity(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	itemID, err := parseIDParam(ctx, "itemID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	var req request.UpdateInventoryItemRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	err = h.svc.UpdateItem(ctx.Request.Context(), tenantID, domain.InventoryItem{
		ID:                itemID,
		Title:             req.Title,
		MinimumStockLevel: req.MinimumStockLevel,
		UnitID:            req.UnitID,
	})
	if err != nil {
		if errors.Is(err, service.ErrItemNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("item", "ID", itemID, err))

			return
		}

		err = fmt.Errorf("v1.HandleUpdateItem -> h.svc.UpdateItem -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	item, err := h.svc.GetItem(ctx.Request.Context(), itemID, tenantID)
	if err != nil {
		err = fmt.Errorf("v1.HandleUpdateItem -> h.svc.GetItem -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, item)
}

// HandleDeleteItem godoc
// @Summary      Delete an inventory item
// @Tags         inventory
// @Produce      json
// @Param        itemID   path       int  true  "item ID"
// @Success      204      "No Content"
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /inventory/items/{itemID} [delete]
func (h *InventoryHandler) HandleDeleteItem(ctx *gin.Context) {
	tenantID, _, err := callerIdentity(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	itemID, err := parseIDParam(ctx, "itemID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = h.svc.DeleteItem(ctx.Request.Context(), itemID, tenantID); err != nil {
		if errors.Is(err, service.ErrItemNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("item", "ID", itemID, err))

			return
		}

		err = fmt.Errorf("v1.HandleDeleteItem -> h.svc.DeleteItem -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleRestock godoc
// @Summary      Record a restock movement for an item
// @Tags         inventory
// @Produce      json
// @Param        itemID   path       int  true  "item ID"
// @Param        request  body       request.RestockRequest true "request body"
// @Success      201      {object}   response.MovementCreatedResponse
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /inventory/items/{itemID}/restock [post]
func (h *InventoryHandler) HandleRestock(ctx *gin.Context) {
	tenantID, username, err := callerIdentity(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	itemID, err := parseIDParam(ctx, "itemID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	var req request.RestockRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	movementID, err := h.svc.RecordRestock(ctx.Request.Context(), tenantID, domain.StockMovement{
		InventoryItemID: itemID,
		Username:        username,
		UnitPrice:       req.UnitPrice,
		ChangeQuantity:  req.Quantity,
		Remarks:         req.Remarks,
		CreatedAt:       occurredAtOrZero(req.OccurredAt),
	})
	if err != nil {
		h.renderMovementErr(ctx, itemID, err, "v1.HandleRestock -> h.svc.RecordRestock")

		return
	}

	ctx.JSON(http.StatusCreated, response.MovementCreatedResponse{MovementID: movementID})
}

// HandleUsage godoc
// @Summary      Record a usage movement for an item
// @Tags         inventory
// @Produce      json
// @Param        itemID   path       int  true  "item ID"
// @Param        request  body       request.UsageRequest true "request body"
// @Success      201      {object}   response.MovementCreatedResponse
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /inventory/items/{itemID}/usage [post]
func (h *InventoryHandler) HandleUsage(ctx *gin.Context) {
	tenantID, username, err := callerIdentity(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	itemID, err := parseIDParam(ctx, "itemID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	var req request.UsageRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	movementID, err := h.svc.RecordUsage(ctx.Request.Context(), tenantID, domain.StockMovement{
		InventoryItemID: itemID,
		Username:        username,
		ChangeQuantity:  req.Quantity,
		Remarks:         req.Remarks,
		CreatedAt:       occurredAtOrZero(req.OccurredAt),
	})
	if err != nil {
		h.renderMovementErr(ctx, itemID, err, "v1.HandleUsage -> h.svc.RecordUsage")

		return
	}

	ctx.JSON(http.StatusCreated, response.MovementCreatedResponse{MovementID: movementID})
}

// HandleGetMovements godoc
// @Summary      List an item's stock movements, newest first
// @Tags         inventory
// @Produce      json
// @Param        itemID   path       int  true  "item ID"
// @Success      200      {array}    domain.StockMovement
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /inventory/items/{itemID}/movements [get]
func (h *InventoryHandler) HandleGetMovements(ctx *gin.Context) {
	tenantID, _, err := callerIdentity(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	itemID, err := parseIDParam(ctx, "itemID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	movements, err := h.svc.GetMovements(ctx.Request.Context(), itemID, tenantID)
	if err != nil {
		if errors.Is(err, service.ErrItemNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("item", "ID", itemID, err))

			return
		}

		err = fmt.Errorf("v1.HandleGetMovements -> h.svc.GetMovements -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, movements)
}

// HandleExportMovements godoc
// @Summary      Download an item's movements as an xlsx file
// @Tags         inventory
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        itemID   path       int  true  "item ID"
// @Success      200      {file}     binary
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /inventory/items/{itemID}/movements/export [get]
func (h *InventoryHandler) HandleExportMovements(ctx *gin.Context) {
	tenantID, _, err := callerIdentity(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	itemID, err := parseIDParam(ctx, "itemID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	buf, err := h.svc.ExportMovements(ctx.Request.Context(), itemID, tenantID)
	if err != nil {
		if errors.Is(err, service.ErrItemNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("item", "ID", itemID, err))

			return
		}

		err = fmt.Errorf("v1.HandleExportMovements -> h.svc.ExportMovements -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	filename := fmt.Sprintf("movements-%d-%s.xlsx", itemID, time.Now().Format("2006-01-02"))
	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	ctx.Data(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		buf.Bytes())
}

// HandleListUnits godoc
// @Summary      List inventory units
// @Tags         inventory
// @Produce      json
// @Success      200      {array}    domain.InventoryUnit
// @Failure      500      {object}   response.Err
// @Router       /inventory/units [get]
func (h *InventoryHandler) HandleListUnits(ctx *gin.Context) {
	tenantID, _, err := callerIdentity(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	units, err := h.svc.ListUnits(ctx.Request.Context(), tenantID)
	if err != nil {
		err = fmt.Errorf("v1.HandleListUnits -> h.svc.ListUnits -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, units)
}

// HandleCreateUnit godoc
// @Summary      Create an inventory unit
// @Tags         inventory
// @Produce      json
// @Param        request  body       request.CreateInventoryUnitRequest true "request body"
// @Success      201      {object}   domain.InventoryUnit
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /inventory/units [post]
func (h *InventoryHandler) HandleCreateUnit(ctx *gin.Context) {
	tenantID, _, err := callerIdentity(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	var req request.CreateInventoryUnitRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	unit, err := h.svc.CreateUnit(ctx.Request.Context(), tenantID, domain.InventoryUnit{
		Title:       req.Title,
		Description: req.Description,
		Quantity:    req.Quantity,
	})
	if err != nil {
		err = fmt.Errorf("v1.HandleCreateUnit -> h.svc.CreateUnit -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, unit)
}

// HandleUpdateUnit godoc
// @Summary      Update an inventory unit
// @Tags         inventory
// @Produce      json
// @Param        unitID   path       int  true  "unit ID"
// @Param        request  body       request.UpdateInventoryUnitRequest true "request body"
// @Success      200      {object}   domain.InventoryUnit
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /inventory/units/{unitID} [put]
func (h *InventoryHandler) HandleUpdateUnit(ctx *gin.Context) {
	tenantID, _, err := callerIdentity(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	unitID, err := parseIDParam(ctx, "unitID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	var req request.UpdateInventoryUnitRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	unit := domain.InventoryUnit{
		ID:          unitID,
		Title:       req.Title,
		Description: req.Description,
		Quantity:    req.Quantity,
	}

	if err = h.svc.UpdateUnit(ctx.Request.Context(), tenantID, unit); err != nil {
		if errors.Is(err, service.ErrUnitNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("unit", "ID", unitID, err))

			return
		}

		err = fmt.Errorf("v1.HandleUpdateUnit -> h.svc.UpdateUnit -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, unit)
}

// HandleUpdateItemImage godoc
// @Summary      Set or clear an inventory item's image
// @Tags         inventory
// @Produce      json
// @Param        itemID   path       int  true  "item ID"
// @Param        request  body       request.UpdateImageRequest true "request body"
// @Success      204      "No Content"
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /inventory/items/{itemID}/image [put]
func (h *InventoryHandler) HandleUpdateItemImage(ctx *gin.Context) {
	tenantID, _, err := callerIdentity(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	itemID, err := parseIDParam(ctx, "itemID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	var req request.UpdateImageRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = h.svc.UpdateItemImage(ctx.Request.Context(), itemID, tenantID, req.ImageURL); err != nil {
		if errors.Is(err, service.ErrItemNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("item", "ID", itemID, err))

			return
		}

		err = fmt.Errorf("v1.HandleUpdateItemImage -> h.svc.UpdateItemImage -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.Status(http.StatusNoContent)
}

func (h *InventoryHandler) renderMovementErr(ctx *gin.Context, itemID uint, err error, op string) {
	switch {
	case errors.Is(err, service.ErrItemNotFound):
		response.RenderErr(ctx, response.ErrNotFound("item", "ID", itemID, err))
	case errors.Is(err, service.ErrInvalidQuantity), errors.Is(err, service.ErrUnitPriceRequired):
		response.RenderErr(ctx, response.ErrBadRequest(err))
	default:
		err = fmt.Errorf("%v -> %w", op, err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
	}
}

func occurredAtOrZero(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}

	return *t
}
