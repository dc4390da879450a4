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

type MenuService interface {
	CreateItem(ctx context.Context, tenantID uint, item domain.MenuItem) (domain.MenuItem, error)
	UpdateItem(ctx context.Context, tenantID uint, item domain.MenuItem) error
	UpdateItemImage(ctx context.Context, id, tenantID uint, imageURL *string) error
	DeleteItem(ctx context.Context, id, tenantID uint) error
	ListItems(ctx context.Context, tenantID uint) ([]domain.MenuItem, error)
	GetItem(ctx context.Context, id, tenantID uint) (domain.MenuItem, error)
	CreateAddon(ctx context.Context, tenantID uint, addon domain.MenuItemAddon) (domain.MenuItemAddon, error)
	UpdateAddon(ctx context.Context, tenantID uint, addon domain.MenuItemAddon) error
	DeleteAddon(ctx context.Context, itemID, addonID, tenantID uint) error
	ListAddons(ctx context.Context, itemID, tenantID uint) ([]domain.MenuItemAddon, error)
	CreateVariant(ctx context.Context, tenantID uint, variant domain.MenuItemVariant) (domain.MenuItemVariant, error)
	UpdateVariant(ctx context.Context, tenantID uint, variant domain.MenuItemVariant) error
	DeleteVariant(ctx context.Context, itemID, variantID, tenantID uint) error
	ListVariants(ctx context.Context, itemID, tenantID uint) ([]domain.MenuItemVariant, error)
}

type MenuHandler struct {
	svc MenuService
}

func NewMenuHandler(svc MenuService) *MenuHandler {
	return &MenuHandler{
		svc: svc,
	}
}

// HandleListItems godoc
// @Summary      List menu items with addons and variants
// @Tags         menu
// @Produce      json
// @Success      200      {array}    domain.MenuItem
// @Failure      500      {object}   response.Err
// @Router       /menu/items [get]
func (h *MenuHandler) HandleListItems(ctx *gin.Context) {
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
// @Summary      Get one menu item
// @Tags         menu
// @Produce      json
// @Param        itemID   path       int  true  "item ID"
// @Success      200      {object}   domain.MenuItem
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /menu/items/{itemID} [get]
func (h *MenuHandler) HandleGetItem(ctx *gin.Context) {
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
		if errors.Is(err, service.ErrMenuItemNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("menu item", "ID", itemID, err))

			return
		}

		err = fmt.Errorf("v1.HandleGetItem -> h.svc.GetItem -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, item)
}

// HandleCreateItem godoc
// @Summary      Create a menu item
// @Tags         menu
// @Produce      json
// @Param        request  body       request.CreateMenuItemRequest true "request body"
// @Success      201      {object}   domain.MenuItem
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /menu/items [post]
func (h *MenuHandler) HandleCreateItem(ctx *gin.Context) {
	tenantID, _, err := callerIdentity(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	var req request.CreateMenuItemRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	item, err := h.svc.CreateItem(ctx.Request.Context(), tenantID, domain.MenuItem{
		Title:      req.Title,
		NetPrice:   req.NetPrice,
		TaxGroupID: req.TaxGroupID,
		CategoryID: req.CategoryID,
	})
	if err != nil {
		err = fmt.Errorf("v1.HandleCreateItem -> h.svc.CreateItem -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, item)
}

// HandleUpdateItem godoc
// @Summary      Update a menu item
// @Tags         menu
// @Produce      json
// @Param        itemID   path       int  true  "item ID"
// @Param        request  body       request.UpdateMenuItemRequest true "request body"
// @Success      200      {object}   domain.MenuItem
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /menu/items/{itemID} [put]
func (h *MenuHandler) HandleUpdateItem(ctx *gin.Context) {
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

	var req request.UpdateMenuItemRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	err = h.svc.UpdateItem(ctx.Request.Context(), tenantID, domain.MenuItem{
		ID:         itemID,
		Title:      req.Title,
		NetPrice:   req.NetPrice,
		TaxGroupID: req.TaxGroupID,
		CategoryID: req.CategoryID,
	})
	if err != nil {
		if errors.Is(err, service.ErrMenuItemNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("menu item", "ID", itemID, err))

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

// HandleUpdateItemImage godoc
// @Summary      Set or clear a menu item's image
// @Tags         menu
// @Produce      json
// @Param        itemID   path       int  true  "item ID"
// @Param        request  body       request.UpdateImageRequest true "request body"
// @Success      204      "No Content"
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /menu/items/{itemID}/image [put]
func (h *MenuHandler) HandleUpdateItemImage(ctx *gin.Context) {
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
		if errors.Is(err, service.ErrMenuItemNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("menu item", "ID", itemID, err))

			return
		}

		err = fmt.Errorf("v1.HandleUpdateItemImage -> h.svc.UpdateItemImage -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleDeleteItem godoc
// @Summary      Delete a menu item with its addons and variants
// @Tags         menu
// @Produce      json
// @Param        itemID   path       int  true  "item ID"
// @Success      204      "No Content"
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /menu/items/{itemID} [delete]
func (h *MenuHandler) HandleDeleteItem(ctx *gin.Context) {
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
		if errors.Is(err, service.ErrMenuItemNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("menu item", "ID", itemID, err))

			return
		}

		err = fmt.Errorf("v1.HandleDeleteItem -> h.svc.DeleteItem -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleListAddons godoc
// @Summary      List an item's addons
// @Tags         menu
// @Produce      json
// @Param        itemID   path       int  true  "item ID"
// @Success      200      {array}    domain.MenuItemAddon
// @Failure      500      {object}   response.Err
// @Router       /menu/items/{itemID}/addons [get]
func (h *MenuHandler) HandleListAddons(ctx *gin.Context) {
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

	addons, err := h.svc.ListAddons(ctx.Request.Context(), itemID, tenantID)
	if err != nil {
		err = fmt.Errorf("v1.HandleListAddons -> h.svc.ListAddons -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, addons)
}

// HandleCreateAddon godoc
// @Summary      Add an addon to a menu item
// @Tags         menu
// @Produce      json
// @Param        itemID   path       int  true  "item ID"
// @Param        request  body       request.MenuItemAddonRequest true "request body"
// @Success      201      {object}   domain.MenuItemAddon
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /menu/items/{itemID}/addons [post]
func (h *MenuHandler) HandleCreateAddon(ctx *gin.Context) {
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

	var req request.MenuItemAddonRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	addon, err := h.svc.CreateAddon(ctx.Request.Context(), tenantID, domain.MenuItemAddon{
		ItemID:   itemID,
		Title:    req.Title,
		NetPrice: req.NetPrice,
	})
	if err != nil {
		if errors.Is(err, service.ErrMenuItemNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("menu item", "ID", itemID, err))

			return
		}

		err = fmt.Errorf("v1.HandleCreateAddon -> h.svc.CreateAddon -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, addon)
}

// HandleUpdateAddon godoc
// @Summary      Update a menu item addon
// @Tags         menu
// @Produce      json
// @Param        itemID   path       int  true  "item ID"
// @Param        addonID  path       int  true  "addon ID"
// @Param        request  body       request.MenuItemAddonRequest true "request body"
// @Success      200      {object}   domain.MenuItemAddon
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /menu/items/{itemID}/addons/{addonID} [put]
func (h *MenuHandler) HandleUpdateAddon(ctx *gin.Context) {
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

	addonID, err := parseIDParam(ctx, "addonID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	var req request.MenuItemAddonRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	addon := domain.MenuItemAddon{
		ID:       addonID,
		ItemID:   itemID,
		Title:    req.Title,
		NetPrice: req.NetPrice,
	}

	if err = h.svc.UpdateAddon(ctx.Request.Context(), tenantID, addon); err != nil {
		if errors.Is(err, service.ErrAddonNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("addon", "ID", addonID, err))

			return
		}

		err = fmt.Errorf("v1.HandleUpdateAddon -> h.svc.UpdateAddon -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, addon)
}

// HandleDeleteAddon godoc
// @Summary      Delete a menu item addon
// @Tags         menu
// @Produce      json
// @Param        itemID   path       int  true  "item ID"
// @Param        addonID  path       int  true  "addon ID"
// @Success      204      "No Content"
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /menu/items/{itemID}/addons/{addonID} [delete]
func (h *MenuHandler) HandleDeleteAddon(ctx *gin.Context) {
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

	addonID, err := parseIDParam(ctx, "addonID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = h.svc.DeleteAddon(ctx.Request.Context(), itemID, addonID, tenantID); err != nil {
		if errors.Is(err, service.ErrAddonNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("addon", "ID", addonID, err))

			return
		}

		err = fmt.Errorf("v1.HandleDeleteAddon -> h.svc.DeleteAddon -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleListVariants godoc
// @Summary      List an item's variants
// @Tags         menu
// @Produce      json
// @Param        itemID   path       int  true  "item ID"
// @Success      200      {array}    domain.MenuItemVariant
// @Failure      500      {object}   response.Err
// @Router       /menu/items/{itemID}/variants [get]
func (h *MenuHandler) HandleListVariants(ctx *gin.Context) {
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

	variants, err := h.svc.ListVariants(ctx.Request.Context(), itemID, tenantID)
	if err != nil {
		err = fmt.Errorf("v1.HandleListVariants -> h.svc.ListVariants -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, variants)
}

// HandleCreateVariant godoc
// @Summary      Add a variant to a menu item
// @Tags         menu
// @Produce      json
// @Param        itemID   path       int  true  "item ID"
// @Param        request  body       request.MenuItemVariantRequest true "request body"
// @Success      201      {object}   domain.MenuItemVariant
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /menu/items/{itemID}/variants [post]
func (h *MenuHandler) HandleCreateVariant(ctx *gin.Context) {
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

	var req request.MenuItemVariantRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	variant, err := h.svc.CreateVariant(ctx.Request.Context(), tenantID, domain.MenuItemVariant{
		ItemID:   itemID,
		Title:    req.Title,
		NetPrice: req.NetPrice,
	})
	if err != nil {
		if errors.Is(err, service.ErrMenuItemNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("menu item", "ID", itemID, err))

			return
		}

		err = fmt.Errorf("v1.HandleCreateVariant -> h.svc.CreateVariant -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, variant)
}

// HandleUpdateVariant godoc
// @Summary      Update a menu item variant
// @Tags         menu
// @Produce      json
// @Param        itemID     path       int  true  "item ID"
// @Param        variantID  path       int  true  "variant ID"
// @Param        request    body       request.MenuItemVariantRequest true "request body"
// @Success      200        {object}   domain.MenuItemVariant
// @Failure      400        {object}   response.Err
// @Failure      404        {object}   response.Err
// @Failure      500        {object}   response.Err
// @Router       /menu/items/{itemID}/variants/{variantID} [put]
func (h *MenuHandler) HandleUpdateVariant(ctx *gin.Context) {
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

	variantID, err := parseIDParam(ctx, "variantID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	var req request.MenuItemVariantRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	variant := domain.MenuItemVariant{
		ID:       variantID,
		ItemID:   itemID,
		Title:    req.Title,
		NetPrice: req.NetPrice,
	}

	if err = h.svc.UpdateVariant(ctx.Request.Context(), tenantID, variant); err != nil {
		if errors.Is(err, service.ErrVariantNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("variant", "ID", variantID, err))

			return
		}

		err = fmt.Errorf("v1.HandleUpdateVariant -> h.svc.UpdateVariant -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, variant)
}

// HandleDeleteVariant godoc
// @Summary      Delete a menu item variant
// @Tags         menu
// @Produce      json
// @Param        itemID     path       int  true  "item ID"
// @Param        variantID  path       int  true  "variant ID"
// @Success      204        "No Content"
// @Failure      404        {object}   response.Err
// @Failure      500        {object}   response.Err
// @Router       /menu/items/{itemID}/variants/{variantID} [delete]
func (h *MenuHandler) HandleDeleteVariant(ctx *gin.Context) {
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

	variantID, err := parseIDParam(ctx, "variantID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = h.svc.DeleteVariant(ctx.Request.Context(), itemID, variantID, tenantID); err != nil {
		if errors.Is(err, service.ErrVariantNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("variant", "ID", variantID, err))

			return
		}

		err = fmt.Errorf("v1.HandleDeleteVariant -> h.svc.DeleteVariant -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.Status(http.StatusNoContent)
}
