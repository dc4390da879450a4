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

type SettingsService interface {
	GetStoreDetails(ctx context.Context, tenantID uint) (domain.StoreDetails, error)
	SaveStoreDetails(ctx context.Context, tenantID uint, details domain.StoreDetails) error
	RegenerateQRCode(ctx context.Context, tenantID uint) (string, error)
	GetPrintSettings(ctx context.Context, tenantID uint) (domain.PrintSettings, error)
	SavePrintSettings(ctx context.Context, tenantID uint, settings domain.PrintSettings) error
	CreateTax(ctx context.Context, tenantID uint, tax domain.Tax, taxGroupID uint) (domain.Tax, error)
	UpdateTax(ctx context.Context, tenantID uint, tax domain.Tax, taxGroupID uint) error
	DeleteTax(ctx context.Context, id, tenantID uint) error
	ListTaxes(ctx context.Context, tenantID uint) ([]domain.Tax, error)
	CreateTaxGroup(ctx context.Context, tenantID uint, group domain.TaxGroup) (domain.TaxGroup, error)
	UpdateTaxGroup(ctx context.Context, tenantID uint, group domain.TaxGroup) error
	DeleteTaxGroup(ctx context.Context, id, tenantID uint) error
	ListTaxGroups(ctx context.Context, tenantID uint) ([]domain.TaxGroup, error)
	CreatePaymentType(ctx context.Context, tenantID uint, paymentType domain.PaymentType) (domain.PaymentType, error)
	UpdatePaymentType(ctx context.Context, tenantID uint, paymentType domain.PaymentType) error
	TogglePaymentType(ctx context.Context, id, tenantID uint, isActive bool) error
	DeletePaymentType(ctx context.Context, id, tenantID uint) error
	ListPaymentTypes(ctx context.Context, tenantID uint, activeOnly bool) ([]domain.PaymentType, error)
	CreateStoreTable(ctx context.Context, tenantID uint, table domain.StoreTable) (domain.StoreTable, error)
	UpdateStoreTable(ctx context.Context, tenantID uint, table domain.StoreTable) error
	DeleteStoreTable(ctx context.Context, id, tenantID uint) error
	ListStoreTables(ctx context.Context, tenantID uint) ([]domain.StoreTable, error)
	CreateCategory(ctx context.Context, tenantID uint, category domain.Category) (domain.Category, error)
	UpdateCategory(ctx context.Context, tenantID uint, category domain.Category) error
	DeleteCategory(ctx context.Context, id, tenantID uint) error
	ListCategories(ctx context.Context, tenantID uint) ([]domain.Category, error)
}

type SettingsHandler struct {
	svc SettingsService
}

func NewSettingsHandler(svc SettingsService) *SettingsHandler {
	return &SettingsHandler{
		svc: svc,
	}
}

// HandleGetStoreDetails godoc
// @Summary      Get the store profile
// @Tags         settings
// @Produce      json
// @Success      200      {object}   domain.StoreDetails
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /settings/store [get]
func (h *SettingsHandler) HandleGetStoreDetails(ctx *gin.Context) {
	tenantID, _, err := callerIdentity(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	details, err := h.svc.GetStoreDetails(ctx.Request.Context(), tenantID)
	if err != nil {
		if errors.Is(err, service.ErrStoreNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("store", "tenant", tenantID, err))

			return
		}

		err = fmt.Errorf("v1.HandleGetStoreDetails -> h.svc.GetStoreDetails -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, details)
}

// HandleSaveStoreDetails godoc
// @Summary      Create or update the store profile
// @Tags         settings
// @Produce      json
// @Param        request  body       request.StoreDetailsRequest true "request body"
// @Success      200      {object}   domain.StoreDetails
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /settings/store [put]
func (h *SettingsHandler) HandleSaveStoreDetails(ctx *gin.Context) {
	tenantID, _, err := callerIdentity(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	var req request.StoreDetailsRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	err = h.svc.SaveStoreDetails(ctx.Request.Context(), tenantID, domain.StoreDetails{
		StoreName:        req.StoreName,
		Address:          req.Address,
		Phone:            req.Phone,
		Email:            req.Email,
		Currency:         req.Currency,
		IsQRMenuEnabled:  req.IsQRMenuEnabled,
		IsQROrderEnabled: req.IsQROrderEnabled,
	})
	if err != nil {
		err = fmt.Errorf("v1.HandleSaveStoreDetails -> h.svc.SaveStoreDetails -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	details, err := h.svc.GetStoreDetails(ctx.Request.Context(), tenantID)
	if err != nil {
		err = fmt.Errorf("v1.HandleSaveStoreDetails -> h.svc.GetStoreDetails -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, details)
}

// HandleRegenerateQRCode godoc
// @Summary      Rotate the store's public QR code
// @Tags         settings
// @Produce      json
// @Success      200      {object}   response.QRCodeResponse
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /settings/store/qr-code [post]
func (h *SettingsHandler) HandleRegenerateQRCode(ctx *gin.Context) {
	tenantID, _, err := callerIdentity(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	qrCode, err := h.svc.RegenerateQRCode(ctx.Request.Context(), tenantID)
	if err != nil {
		if errors.Is(err, service.ErrStoreNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("store", "tenant", tenantID, err))

			return
		}

		err = fmt.Errorf("v1.HandleRegenerateQRCode -> h.svc.RegenerateQRCode -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.QRCodeResponse{QRCode: qrCode})
}

// HandleGetPrintSettings godoc
// @Summary      Get receipt print settings
// @Tags         settings
// @Produce      json
// @Success      200      {object}   domain.PrintSettings
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /settings/print [get]
func (h *SettingsHandler) HandleGetPrintSettings(ctx *gin.Context) {
	tenantID, _, err := callerIdentity(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	settings, err := h.svc.GetPrintSettings(ctx.Request.Context(), tenantID)
	if err != nil {
		if errors.Is(err, service.ErrStoreNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("print settings", "tenant", tenantID, err))

			return
		}

		err = fmt.Errorf("v1.HandleGetPrintSettings -> h.svc.GetPrintSettings -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, settings)
}

// HandleSavePrintSettings godoc
// @Summary      Create or update receipt print settings
// @Tags         settings
// @Produce      json
// @Param        request  body       request.PrintSettingsRequest true "request body"
// @Success      200      {object}   domain.PrintSettings
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /settings/print [put]
func (h *SettingsHandler) HandleSavePrintSettings(ctx *gin.Context) {
	tenantID, _, err := callerIdentity(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	var req request.PrintSettingsRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	settings := domain.PrintSettings{
		PageFormat:          req.PageFormat,
		Header:              req.Header,
		Footer:              req.Footer,
		ShowNotes:           req.ShowNotes,
		IsEnablePrint:       req.IsEnablePrint,
		ShowStoreDetails:    req.ShowStoreDetails,
		ShowCustomerDetails: req.ShowCustomerDetails,
		PrintToken:          req.PrintToken,
	}

	if err = h.svc.SavePrintSettings(ctx.Request.Context(), tenantID, settings); err != nil {
		err = fmt.Errorf("v1.HandleSavePrintSettings -> h.svc.SavePrintSettings -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, settings)
}

// HandleListTaxes godoc
// @Summary      List taxes with their groups
// @Tags         settings
// @Produce      json
// @Success      200      {array}    domain.Tax
// @Failure      500      {object}   response.Err
// @Router       /settings/taxes [get]
func (h *SettingsHandler) HandleListTaxes(ctx *gin.Context) {
	tenantID, _, err := callerIdentity(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	taxes, err := h.svc.ListTaxes(ctx.Request.Context(), tenantID)
	if err != nil {
		err = fmt.Errorf("v1.HandleListTaxes -> h.svc.ListTaxes -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, taxes)
}

// HandleCreateTax godoc
// @Summary      Create a tax inside a tax group
// @Tags         settings
// @Produce      json
// @Param        request  body       request.TaxRequest true "request body"
// @Success      201      {object}   domain.Tax
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /settings/taxes [post]
func (h *SettingsHandler) HandleCreateTax(ctx *gin.Context) {
	tenantID, _, err := callerIdentity(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	var req request.TaxRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	tax, err := h.svc.CreateTax(ctx.Request.Context(), tenantID, domain.Tax{
		Title: req.Title,
		Rate:  req.Rate,
		Type:  req.Type,
	}, req.TaxGroupID)
	if err != nil {
		err = fmt.Errorf("v1.HandleCreateTax -> h.svc.CreateTax -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, tax)
}

// HandleUpdateTax godoc
// @Summary      Update a tax and its group link
// @Tags         settings
// @Produce      json
// @Param        taxID    path       int  true  "tax ID"
// @Param        request  body       request.TaxRequest true "request body"
// @Success      204      "No Content"
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /settings/taxes/{taxID} [put]
func (h *SettingsHandler) HandleUpdateTax(ctx *gin.Context) {
	tenantID, _, err := callerIdentity(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	taxID, err := parseIDParam(ctx, "taxID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	var req request.TaxRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	err = h.svc.UpdateTax(ctx.Request.Context(), tenantID, domain.Tax{
		ID:    taxID,
		Title: req.Title,
		Rate:  req.Rate,
		Type:  req.Type,
	}, req.TaxGroupID)
	if err != nil {
		if errors.Is(err, service.ErrTaxNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("tax", "ID", taxID, err))

			return
		}

		err = fmt.Errorf("v1.HandleUpdateTax -> h.svc.UpdateTax -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleDeleteTax godoc
// @Summary      Delete a tax
// @Tags         settings
// @Produce      json
// @Param        taxID    path       int  true  "tax ID"
// @Success      204      "No Content"
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /settings/taxes/{taxID} [delete]
func (h *SettingsHandler) HandleDeleteTax(ctx *gin.Context) {
	tenantID, _, err := callerIdentity(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	taxID, err := parseIDParam(ctx, "taxID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = h.svc.DeleteTax(ctx.Request.Context(), taxID, tenantID); err != nil {
		if errors.Is(err, service.ErrTaxNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("tax", "ID", taxID, err))

			return
		}

		err = fmt.Errorf("v1.HandleDeleteTax -> h.svc.DeleteTax -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleListTaxGroups godoc
// @Summary      List tax groups with nested taxes
// @Tags         settings
// @Produce      json
// @Success      200      {array}    domain.TaxGroup
// @Failure      500      {object}   response.Err
// @Router       /settings/tax-groups [get]
func (h *SettingsHandler) HandleListTaxGroups(ctx *gin.Context) {
	tenantID, _, err := callerIdentity(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	groups, err := h.svc.ListTaxGroups(ctx.Request.Context(), tenantID)
	if err != nil {
		err = fmt.Errorf("v1.HandleListTaxGroups -> h.svc.ListTaxGroups -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, groups)
}

// HandleCreateTaxGroup godoc
// @Summary      Create a tax group
// @Tags         settings
// @Produce      json
// @Param        request  body       request.TaxGroupRequest true "request body"
// @Success      201      {object}   domain.TaxGroup
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /settings/tax-groups [post]
func (h *SettingsHandler) HandleCreateTaxGroup(ctx *gin.Context) {
	tenantID, _, err := callerIdentity(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	var req request.TaxGroupRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	group, err := h.svc.CreateTaxGroup(ctx.Request.Context(), tenantID, domain.TaxGroup{
		Title: req.Title,
	})
	if err != nil {
		err = fmt.Errorf("v1.HandleCreateTaxGroup -> h.svc.CreateTaxGroup -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, group)
}

// HandleUpdateTaxGroup godoc
// @Summary      Rename a tax group
// @Tags         settings
// @Produce      json
// @Param        groupID  path       int  true  "group ID"
// @Param        request  body       request.TaxGroupRequest true "request body"
// @Success      204      "No Content"
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /settings/tax-groups/{groupID} [put]
func (h *SettingsHandler) HandleUpdateTaxGroup(ctx *gin.Context) {
	tenantID, _, err := callerIdentity(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	groupID, err := parseIDParam(ctx, "groupID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	var req request.TaxGroupRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	err = h.svc.UpdateTaxGroup(ctx.Request.Context(), tenantID, domain.TaxGroup{
		ID:    groupID,
		Title: req.Title,
	})
	if err != nil {
		if errors.Is(err, service.ErrTaxGroupNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("tax group", "ID", groupID, err))

			return
		}

		err = fmt.Errorf("v1.HandleUpdateTaxGroup -> h.svc.UpdateTaxGroup -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleDeleteTaxGroup godoc
// @Summary      Delete a tax group and its tax links
// @Tags         settings
// @Produce      json
// @Param        groupID  path       int  true  "group ID"
// @Success      204      "No Content"
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /settings/tax-groups/{groupID} [delete]
func (h *SettingsHandler) HandleDeleteTaxGroup(ctx *gin.Context) {
	tenantID, _, err := callerIdentity(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	groupID, err := parseIDParam(ctx, "groupID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = h.svc.DeleteTaxGroup(ctx.Request.Context(), groupID, tenantID); err != nil {
		if errors.Is(err, service.ErrTaxGroupNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("tax group", "ID", groupID, err))

			return
		}

		err = fmt.Errorf("v1.HandleDeleteTaxGroup -> h.svc.DeleteTaxGroup -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleListPaymentTypes godoc
// @Summary      List payment types
// @Tags         settings
// @Produce      json
// @Param        active   query      bool false "only active payment types"
// @Success      200      {array}    domain.PaymentType
// @Failure      500      {object}   response.Err
// @Router       /settings/payment-types [get]
func (h *SettingsHandler) HandleListPaymentTypes(ctx *gin.Context) {
	tenantID, _, err := callerIdentity(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	activeOnly := ctx.Query("active") == "true"

	paymentTypes, err := h.svc.ListPaymentTypes(ctx.Request.Context(), tenantID, activeOnly)
	if err != nil {
		err = fmt.Errorf("v1.HandleListPaymentTypes -> h.svc.ListPaymentTypes -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, paymentTypes)
}

// HandleCreatePaymentType godoc
// @Summary      Create a payment type
// @Tags         settings
// @Produce      json
// @Param        request  body       request.PaymentTypeRequest true "request body"
// @Success      201      {object}   domain.PaymentType
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /settings/payment-types [post]
func (h *SettingsHandler) HandleCreatePaymentType(ctx *gin.Context) {
	tenantID, _, err := callerIdentity(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	var req request.PaymentTypeRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	paymentType, err := h.svc.CreatePaymentType(ctx.Request.Context(), tenantID, domain.PaymentType{
		Title:    req.Title,
		IsActive: req.IsActive,
	})
	if err != nil {
		err = fmt.Errorf("v1.HandleCreatePaymentType -> h.svc.CreatePaymentType -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, paymentType)
}

// HandleUpdatePaymentType godoc
// @Summary      Update a payment type
// @Tags         settings
// @Produce      json
// @Param        paymentTypeID  path  int  true  "payment type ID"
// @Param        request  body       request.PaymentTypeRequest true "request body"
// @Success      204      "No Content"
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /settings/payment-types/{paymentTypeID} [put]
func (h *SettingsHandler) HandleUpdatePaymentType(ctx *gin.Context) {
	tenantID, _, err := callerIdentity(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	paymentTypeID, err := parseIDParam(ctx, "paymentTypeID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	var req request.PaymentTypeRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	err = h.svc.UpdatePaymentType(ctx.Request.Context(), tenantID, domain.PaymentType{
		ID:       paymentTypeID,
		Title:    req.Title,
		IsActive: req.IsActive,
	})
	if err != nil {
		if errors.Is(err, service.ErrPaymentTypeNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("payment type", "ID", paymentTypeID, err))

			return
		}

		err = fmt.Errorf("v1.HandleUpdatePaymentType -> h.svc.UpdatePaymentType -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleTogglePaymentType godoc
// @Summary      Enable or disable a payment type
// @Tags         settings
// @Produce      json
// @Param        paymentTypeID  path  int  true  "payment type ID"
// @Param        request  body       request.TogglePaymentTypeRequest true "request body"
// @Success      204      "No Content"
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /settings/payment-types/{paymentTypeID}/toggle [patch]
func (h *SettingsHandler) HandleTogglePaymentType(ctx *gin.Context) {
	tenantID, _, err := callerIdentity(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	paymentTypeID, err := parseIDParam(ctx, "paymentTypeID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	var req request.TogglePaymentTypeRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = h.svc.TogglePaymentType(ctx.Request.Context(), paymentTypeID, tenantID, req.IsActive); err != nil {
		if errors.Is(err, service.ErrPaymentTypeNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("payment type", "ID", paymentTypeID, err))

			return
		}

		err = fmt.Errorf("v1.HandleTogglePaymentType -> h.svc.TogglePaymentType -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleDeletePaymentType godoc
// @Summary      Delete a payment type
// @Tags         settings
// @Produce      json
// @Param        paymentTypeID  path  int  true  "payment type ID"
// @Success      204      "No Content"
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /settings/payment-types/{paymentTypeID} [delete]
func (h *SettingsHandler) HandleDeletePaymentType(ctx *gin.Context) {
	tenantID, _, err := callerIdentity(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	paymentTypeID, err := parseIDParam(ctx, "paymentTypeID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = h.svc.DeletePaymentType(ctx.Request.Context(), paymentTypeID, tenantID); err != nil {
		if errors.Is(err, service.ErrPaymentTypeNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("payment type", "ID", paymentTypeID, err))

			return
		}

		err = fmt.Errorf("v1.HandleDeletePaymentType -> h.svc.DeletePaymentType -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleListStoreTables godoc
// @Summary      List store tables with encrypted ids
// @Tags         settings
// @Produce      json
// @Success      200      {array}    domain.StoreTable
// @Failure      500      {object}   response.Err
// @Router       /settings/tables [get]
func (h *SettingsHandler) HandleListStoreTables(ctx *gin.Context) {
	tenantID, _, err := callerIdentity(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	tables, err := h.svc.ListStoreTables(ctx.Request.Context(), tenantID)
	if err != nil {
		err = fmt.Errorf("v1.HandleListStoreTables -> h.svc.ListStoreTables -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, tables)
}

// HandleCreateStoreTable godoc
// @Summary      Create a store table
// @Tags         settings
// @Produce      json
// @Param        request  body       request.StoreTableRequest true "request body"
// @Success      201      {object}   domain.StoreTable
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /settings/tables [post]
func (h *SettingsHandler) HandleCreateStoreTable(ctx *gin.Context) {
	tenantID, _, err := callerIdentity(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	var req request.StoreTableRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	table, err := h.svc.CreateStoreTable(ctx.Request.Context(), tenantID, domain.StoreTable{
		Title:           req.TableTitle,
		Floor:           req.Floor,
		SeatingCapacity: req.SeatingCapacity,
	})
	if err != nil {
		err = fmt.Errorf("v1.HandleCreateStoreTable -> h.svc.CreateStoreTable -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, table)
}

// HandleUpdateStoreTable godoc
// @Summary      Update a store table
// @Tags         settings
// @Produce      json
// @Param        tableID  path       int  true  "table ID"
// @Param        request  body       request.StoreTableRequest true "request body"
// @Success      204      "No Content"
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /settings/tables/{tableID} [put]
func (h *SettingsHandler) HandleUpdateStoreTable(ctx *gin.Context) {
	tenantID, _, err := callerIdentity(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	tableID, err := parseIDParam(ctx, "tableID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	var req request.StoreTableRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	err = h.svc.UpdateStoreTable(ctx.Request.Context(), tenantID, domain.StoreTable{
		ID:              tableID,
		Title:           req.TableTitle,
		Floor:           req.Floor,
		SeatingCapacity: req.SeatingCapacity,
	})
	if err != nil {
		if errors.Is(err, service.ErrTableNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("table", "ID", tableID, err))

			return
		}

		err = fmt.Errorf("v1.HandleUpdateStoreTable -> h.svc.UpdateStoreTable -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleDeleteStoreTable godoc
// @Summary      Delete a store table
// @Tags         settings
// @Produce      json
// @Param        tableID  path       int  true  "table ID"
// @Success      204      "No Content"
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /settings/tables/{tableID} [delete]
func (h *SettingsHandler) HandleDeleteStoreTable(ctx *gin.Context) {
	tenantID, _, err := callerIdentity(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	tableID, err := parseIDParam(ctx, "tableID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = h.svc.DeleteStoreTable(ctx.Request.Context(), tableID, tenantID); err != nil {
		if errors.Is(err, service.ErrTableNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("table", "ID", tableID, err))

			return
		}

		err = fmt.Errorf("v1.HandleDeleteStoreTable -> h.svc.DeleteStoreTable -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleListCategories godoc
// @Summary      List menu categories
// @Tags         settings
// @Produce      json
// @Success      200      {array}    domain.Category
// @Failure      500      {object}   response.Err
// @Router       /settings/categories [get]
func (h *SettingsHandler) HandleListCategories(ctx *gin.Context) {
	tenantID, _, err := callerIdentity(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	categories, err := h.svc.ListCategories(ctx.Request.Context(), tenantID)
	if err != nil {
		err = fmt.Errorf("v1.HandleListCategories -> h.svc.ListCategories -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, categories)
}

// HandleCreateCategory godoc
// @Summary      Create a menu category
// @Tags         settings
// @Produce      json
// @Param        request  body       request.CategoryRequest true "request body"
// @Success      201      {object}   domain.Category
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /settings/categories [post]
func (h *SettingsHandler) HandleCreateCategory(ctx *gin.Context) {
	tenantID, _, err := callerIdentity(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	var req request.CategoryRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	category, err := h.svc.CreateCategory(ctx.Request.Context(), tenantID, domain.Category{
		Title: req.Title,
	})
	if err != nil {
		err = fmt.Errorf("v1.HandleCreateCategory -> h.svc.CreateCategory -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, category)
}

// HandleUpdateCategory godoc
// @Summary      Rename a menu category
// @Tags         settings
// @Produce      json
// @Param        categoryID  path    int  true  "category ID"
// @Param        request  body       request.CategoryRequest true "request body"
// @Success      204      "No Content"
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /settings/categories/{categoryID} [put]
func (h *SettingsHandler) HandleUpdateCategory(ctx *gin.Context) {
	tenantID, _, err := callerIdentity(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	categoryID, err := parseIDParam(ctx, "categoryID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	var req request.CategoryRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	err = h.svc.UpdateCategory(ctx.Request.Context(), tenantID, domain.Category{
		ID:    categoryID,
		Title: req.Title,
	})
	if err != nil {
		if errors.Is(err, service.ErrCategoryNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("category", "ID", categoryID, err))

			return
		}

		err = fmt.Errorf("v1.HandleUpdateCategory -> h.svc.UpdateCategory -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleDeleteCategory godoc
// @Summary      Delete a menu category
// @Tags         settings
// @Produce      json
// @Param        categoryID  path    int  true  "category ID"
// @Success      204      "No Content"
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /settings/categories/{categoryID} [delete]
func (h *SettingsHandler) HandleDeleteCategory(ctx *gin.Context) {
	tenantID, _, err := callerIdentity(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	categoryID, err := parseIDParam(ctx, "categoryID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = h.svc.DeleteCategory(ctx.Request.Context(), categoryID, tenantID); err != nil {
		if errors.Is(err, service.ErrCategoryNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("category", "ID", categoryID, err))

			return
		}

		err = fmt.Errorf("v1.HandleDeleteCategory -> h.svc.DeleteCategory -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.Status(http.StatusNoContent)
}
