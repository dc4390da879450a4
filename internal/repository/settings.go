package repository

import (
	"context"
	"fmt"

	"github.com/restrohq/restro-api/internal/domain"
	"github.com/restrohq/restro-api/internal/repository/dao"
)

var (
	ErrStoreNotFound       = dao.ErrStoreNotFound
	ErrTaxNotFound         = dao.ErrTaxNotFound
	ErrTaxGroupNotFound    = dao.ErrTaxGroupNotFound
	ErrPaymentTypeNotFound = dao.ErrPaymentTypeNotFound
	ErrTableNotFound       = dao.ErrTableNotFound
	ErrCategoryNotFound    = dao.ErrCategoryNotFound
)

type SettingsDAO interface {
	FindTenantIDByQRCode(ctx context.Context, qrCode string) (uint, error)
	FindStoreDetail(ctx context.Context, tenantID uint) (dao.StoreDetail, error)
	UpsertStoreDetail(ctx context.Context, detail dao.StoreDetail) error
	UpdateQRCode(ctx context.Context, tenantID uint, qrCode string) error
	FindPrintSetting(ctx context.Context, tenantID uint) (dao.PrintSetting, error)
	UpsertPrintSetting(ctx context.Context, setting dao.PrintSetting) error
	InsertTax(ctx context.Context, tax dao.Tax, taxGroupID uint) (dao.Tax, error)
	UpdateTax(ctx context.Context, tax dao.Tax, taxGroupID uint) error
	DeleteTax(ctx context.Context, id, tenantID uint) error
	FindTaxes(ctx context.Context, tenantID uint) ([]dao.TaxRow, error)
	InsertTaxGroup(ctx context.Context, group dao.TaxGroup) (dao.TaxGroup, error)
	UpdateTaxGroup(ctx context.Context, group dao.TaxGroup) error
	DeleteTaxGroup(ctx context.Context, id, tenantID uint) error
	FindTaxGroups(ctx context.Context, tenantID uint) ([]dao.TaxGroup, error)
	InsertPaymentType(ctx context.Context, paymentType dao.PaymentType) (dao.PaymentType, error)
	UpdatePaymentType(ctx context.Context, paymentType dao.PaymentType) error
	TogglePaymentType(ctx context.Context, id, tenantID uint, isActive bool) error
	DeletePaymentType(ctx context.Context, id, tenantID uint) error
	FindPaymentTypes(ctx context.Context, tenantID uint, activeOnly bool) ([]dao.PaymentType, error)
	InsertStoreTable(ctx context.Context, table dao.StoreTable) (dao.StoreTable, error)
	UpdateStoreTable(ctx context.Context, table dao.StoreTable) error
	DeleteStoreTable(ctx context.Context, id, tenantID uint) error
	FindStoreTables(ctx context.Context, tenantID uint) ([]dao.StoreTable, error)
	FindStoreTableByID(ctx context.Context, id, tenantID uint) (dao.StoreTable, error)
	InsertCategory(ctx context.Context, category dao.Category) (dao.Category, error)
	UpdateCategory(ctx context.Context, category dao.Category) error
	DeleteCategory(ctx context.Context, id, tenantID uint) error
	FindCategories(ctx context.Context, tenantID uint) ([]dao.Category, error)
}

type SettingsRepository struct {
	dao SettingsDAO
}

func NewSettingsRepository(dao SettingsDAO) *SettingsRepository {
	return &SettingsRepository{
		dao: dao,
	}
}

func (r *SettingsRepository) FindTenantIDByQRCode(ctx context.Context, qrCode string) (uint, error) {
	tenantID, err := r.dao.FindTenantIDByQRCode(ctx, qrCode)
	if err != nil {
		return 0, fmt.Errorf("r.dao.FindTenantIDByQRCode -> %w", err)
	}

	return tenantID, nil
}

func (r *SettingsRepository) FindStoreDetails(ctx context.Context, tenantID uint) (domain.StoreDetails, error) {
	found, err := r.dao.FindStoreDetail(ctx, tenantID)
	if err != nil {
		return domain.StoreDetails{}, fmt.Errorf("r.dao.FindStoreDetail -> %w", err)
	}

	return domain.StoreDetails{
		StoreName:        found.StoreName,
		Address:          found.Address,
		Phone:            found.Phone,
		Email:            found.Email,
		Currency:         found.Currency,
		ImageURL:         found.ImageURL,
		IsQRMenuEnabled:  found.IsQRMenuEnabled,
		IsQROrderEnabled: found.IsQROrderEnabled,
		UniqueQRCode:     found.UniqueQRCode,
	}, nil
}

func (r *SettingsRepository) SaveStoreDetails(ctx context.Context, tenantID uint, details domain.StoreDetails) error {
	err := r.dao.UpsertStoreDetail(ctx, dao.StoreDetail{
		StoreName:        details.StoreName,
		Address:          details.Address,
		Phone:            details.Phone,
		Email:            details.Email,
		Currency:         details.Currency,
		IsQRMenuEnabled:  details.IsQRMenuEnabled,
		IsQROrderEnabled: details.IsQROrderEnabled,
		UniqueQRCode:     details.UniqueQRCode,
		TenantID:         tenantID,
	})
	if err != nil {
		return fmt.Errorf("r.dao.UpsertStoreDetail -> %w", err)
	}

	return nil
}

func (r *SettingsRepository) UpdateQRCode(ctx context.Context, tenantID uint, qrCode string) error {
	if err := r.dao.UpdateQRCode(ctx, tenantID, qrCode); err != nil {
		return fmt.Errorf("r.dao.UpdateQRCode -> %w", err)
	}

	return nil
}

func (r *SettingsRepository) FindPrintSettings(ctx context.Context, tenantID uint) (domain.PrintSettings, error) {
	found, err := r.dao.FindPrintSetting(ctx, tenantID)
	if err != nil {
		return domain.PrintSettings{}, fmt.Errorf("r.dao.FindPrintSetting -> %w", err)
	}

	return domain.PrintSettings{
		PageFormat:          found.PageFormat,
		Header:              found.Header,
		Footer:              found.Footer,
		ShowNotes:           found.ShowNotes,
		IsEnablePrint:       found.IsEnablePrint,
		ShowStoreDetails:    found.ShowStoreDetails,
		ShowCustomerDetails: found.ShowCustomerDetails,
		PrintToken:          found.PrintToken,
	}, nil
}

func (r *SettingsRepository) SavePrintSettings(ctx context.Context, tenantID uint, settings domain.PrintSettings) error {
	err := r.dao.UpsertPrintSetting(ctx, dao.PrintSetting{
		PageFormat:          settings.PageFormat,
		Header:              settings.Header,
		Footer:              settings.Footer,
		ShowNotes:           settings.ShowNotes,
		IsEnablePrint:       settings.IsEnablePrint,
		ShowStoreDetails:    settings.ShowStoreDetails,
		ShowCustomerDetails: settings.ShowCustomerDetails,
		PrintToken:          settings.PrintToken,
		TenantID:            tenantID,
	})
	if err != nil {
		return fmt.Errorf("r.dao.UpsertPrintSetting -> %w", err)
	}

	return nil
}

func (r *SettingsRepository) CreateTax(ctx context.Context, tenantID uint, tax domain.Tax, taxGroupID uint) (domain.Tax, error) {
	created, err := r.dao.InsertTax(ctx, dao.Tax{
		Title:    tax.Title,
		Rate:     tax.Rate,
		Type:     tax.Type,
		TenantID: tenantID,
	}, taxGroupID)
	if err != nil {
		return domain.Tax{}, fmt.Errorf("r.dao.InsertTax -> %w", err)
	}

	return domain.Tax{
		ID:    created.ID,
		Title: created.Title,
		Rate:  created.Rate,
		Type:  created.Type,
	}, nil
}

func (r *SettingsRepository) UpdateTax(ctx context.Context, tenantID uint, tax domain.Tax, taxGroupID uint) error {
	err := r.dao.UpdateTax(ctx, dao.Tax{
		ID:       tax.ID,
		Title:    tax.Title,
		Rate:     tax.Rate,
		Type:     tax.Type,
		TenantID: tenantID,
	}, taxGroupID)
	if err != nil {
		return fmt.Errorf("r.dao.UpdateTax -> %w", err)
	}

	return nil
}

func (r *SettingsRepository) DeleteTax(ctx context.Context, id, tenantID uint) error {
	if err := r.dao.DeleteTax(ctx, id, tenantID); err != nil {
		return fmt.Errorf("r.dao.DeleteTax -> %w", err)
	}

	return nil
}

func (r *SettingsRepository) FindTaxes(ctx context.Context, tenantID uint) ([]domain.Tax, error) {
	rows, err := r.dao.FindTaxes(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindTaxes -> %w", err)
	}

	taxes := make([]domain.Tax, 0, len(rows))
	for _, row := range rows {
		taxes = append(taxes, domain.Tax{
			ID:            row.ID,
			Title:         row.Title,
			Rate:          row.Rate,
			Type:          row.Type,
			TaxGroupID:    row.TaxGroupID,
			TaxGroupTitle: row.TaxGroupTitle,
		})
	}

	return taxes, nil
}

func (r *SettingsRepository) CreateTaxGroup(ctx context.Context, tenantID uint, group domain.TaxGroup) (domain.TaxGroup, error) {
	created, err := r.dao.InsertTaxGroup(ctx, dao.TaxGroup{
		Title:    group.Title,
		TenantID: tenantID,
	})
	if err != nil {
		return domain.TaxGroup{}, fmt.Errorf("r.dao.InsertTaxGroup -> %w", err)
	}

	return domain.TaxGroup{
		ID:    created.ID,
		Title: created.Title,
	}, nil
}

func (r *SettingsRepository) UpdateTaxGroup(ctx context.Context, tenantID uint, group domain.TaxGroup) error {
	err := r.dao.UpdateTaxGroup(ctx, dao.TaxGroup{
		ID:       group.ID,
		Title:    group.Title,
		TenantID: tenantID,
	})
	if err != nil {
		return fmt.Errorf("r.dao.UpdateTaxGroup -> %w", err)
	}

	return nil
}

func (r *SettingsRepository) DeleteTaxGroup(ctx context.Context, id, tenantID uint) error {
	if err := r.dao.DeleteTaxGroup(ctx, id, tenantID); err != nil {
		return fmt.Errorf("r.dao.DeleteTaxGroup -> %w", err)
	}

	return nil
}

// FindTaxGroups returns each group with its member taxes nested. Groups and
// taxes are fetched in two queries and joined in memory.
func (r *SettingsRepository) FindTaxGroups(ctx context.Context, tenantID uint) ([]domain.TaxGroup, error) {
	found, err := r.dao.FindTaxGroups(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindTaxGroups -> %w", err)
	}

	rows, err := r.dao.FindTaxes(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindTaxes -> %w", err)
	}

	taxesByGroup := make(map[uint][]domain.Tax)
	for _, row := range rows {
		if row.TaxGroupID == nil {
			continue
		}
		taxesByGroup[*row.TaxGroupID] = append(taxesByGroup[*row.TaxGroupID], domain.Tax{
			ID:    row.ID,
			Title: row.Title,
			Rate:  row.Rate,
			Type:  row.Type,
		})
	}

	groups := make([]domain.TaxGroup, 0, len(found))
	for _, g := range found {
		groups = append(groups, domain.TaxGroup{
			ID:    g.ID,
			Title: g.Title,
			Taxes: taxesByGroup[g.ID],
		})
	}

	return groups, nil
}

func (r *SettingsRepository) CreatePaymentType(ctx context.Context, tenantID uint, paymentType domain.PaymentType) (domain.PaymentType, error) {
	created, err := r.dao.InsertPaymentType(ctx, dao.PaymentType{
		Title:    paymentType.Title,
		IsActive: paymentType.IsActive,
		TenantID: tenantID,
	})
	if err != nil {
		return domain.PaymentType{}, fmt.Errorf("r.dao.InsertPaymentType -> %w", err)
	}

	return domain.PaymentType{
		ID:       created.ID,
		Title:    created.Title,
		IsActive: created.IsActive,
	}, nil
}

func (r *SettingsRepository) UpdatePaymentType(ctx context.Context, tenantID uint, paymentType domain.PaymentType) error {
	err := r.dao.UpdatePaymentType(ctx, dao.PaymentType{
		ID:       paymentType.ID,
		Title:    paymentType.Title,
		IsActive: paymentType.IsActive,
		TenantID: tenantID,
	})
	if err != nil {
		return fmt.Errorf("r.dao.UpdatePaymentType -> %w", err)
	}

	return nil
}

func (r *SettingsRepository) TogglePaymentType(ctx context.Context, id, tenantID uint, isActive bool) error {
	if err := r.dao.TogglePaymentType(ctx, id, tenantID, isActive); err != nil {
		return fmt.Errorf("r.dao.TogglePaymentType -> %w", err)
	}

	return nil
}

func (r *SettingsRepository) DeletePaymentType(ctx context.Context, id, tenantID uint) error {
	if err := r.dao.DeletePaymentType(ctx, id, tenantID); err != nil {
		return fmt.Errorf("r.dao.DeletePaymentType -> %w", err)
	}

	return nil
}

func (r *SettingsRepository) FindPaymentTypes(ctx context.Context, tenantID uint, activeOnly bool) ([]domain.PaymentType, error) {
	found, err := r.dao.FindPaymentTypes(ctx, tenantID, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindPaymentTypes -> %w", err)
	}

	paymentTypes := make([]domain.PaymentType, 0, len(found))
	for _, p := range found {
		paymentTypes = append(paymentTypes, domain.PaymentType{
			ID:       p.ID,
			Title:    p.Title,
			IsActive: p.IsActive,
		})
	}

	return paymentTypes, nil
}

func (r *SettingsRepository) CreateStoreTable(ctx context.Context, tenantID uint, table domain.StoreTable) (domain.StoreTable, error) {
	created, err := r.dao.InsertStoreTable(ctx, dao.StoreTable{
		TableTitle:      table.Title,
		Floor:           table.Floor,
		SeatingCapacity: table.SeatingCapacity,
		TenantID:        tenantID,
	})
	if err != nil {
		return domain.StoreTable{}, fmt.Errorf("r.dao.InsertStoreTable -> %w", err)
	}

	return r.tableDaoToDomain(created), nil
}

func (r *SettingsRepository) UpdateStoreTable(ctx context.Context, tenantID uint, table domain.StoreTable) error {
	err := r.dao.UpdateStoreTable(ctx, dao.StoreTable{
		ID:              table.ID,
		TableTitle:      table.Title,
		Floor:           table.Floor,
		SeatingCapacity: table.SeatingCapacity,
		TenantID:        tenantID,
	})
	if err != nil {
		return fmt.Errorf("r.dao.UpdateStoreTable -> %w", err)
	}

	return nil
}

func (r *SettingsRepository) DeleteStoreTable(ctx context.Context, id, tenantID uint) error {
	if err := r.dao.DeleteStoreTable(ctx, id, tenantID); err != nil {
		return fmt.Errorf("r.dao.DeleteStoreTable -> %w", err)
	}

	return nil
}

func (r *SettingsRepository) FindStoreTables(ctx context.Context, tenantID uint) ([]domain.StoreTable, error) {
	found, err := r.dao.FindStoreTables(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindStoreTables -> %w", err)
	}

	tables := make([]domain.StoreTable, 0, len(found))
	for _, t := range found {
		tables = append(tables, r.tableDaoToDomain(t))
	}

	return tables, nil
}

func (r *SettingsRepository) FindStoreTableByID(ctx context.Context, id, tenantID uint) (domain.StoreTable, error) {
	found, err := r.dao.FindStoreTableByID(ctx, id, tenantID)
	if err != nil {
		return domain.StoreTable{}, fmt.Errorf("r.dao.FindStoreTableByID -> %w", err)
	}

	return r.tableDaoToDomain(found), nil
}

func (r *SettingsRepository) CreateCategory(ctx context.Context, tenantID uint, category domain.Category) (domain.Category, error) {
	created, err := r.dao.InsertCategory(ctx, dao.Category{
		Title:    category.Title,
		TenantID: tenantID,
	})
	if err != nil {
		return domain.Category{}, fmt.Errorf("r.dao.InsertCategory -> %w", err)
	}

	return domain.Category{
		ID:    created.ID,
		Title: created.Title,
	}, nil
}

func (r *SettingsRepository) UpdateCategory(ctx context.Context, tenantID uint, category domain.Category) error {
	err := r.dao.UpdateCategory(ctx, dao.Category{
		ID:       category.ID,
		Title:    category.Title,
		TenantID: tenantID,
	})
	if err != nil {
		return fmt.Errorf("r.dao.UpdateCategory -> %w", err)
	}

	return nil
}

func (r *SettingsRepository) DeleteCategory(ctx context.Context, id, tenantID uint) error {
	if err := r.dao.DeleteCategory(ctx, id, tenantID); err != nil {
		return fmt.Errorf("r.dao.DeleteCategory -> %w", err)
	}

	return nil
}

func (r *SettingsRepository) FindCategories(ctx context.Context, tenantID uint) ([]domain.Category, error) {
	found, err := r.dao.FindCategories(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindCategories -> %w", err)
	}

	categories := make([]domain.Category, 0, len(found))
	for _, c := range found {
		categories = append(categories, domain.Category{
			ID:    c.ID,
			Title: c.Title,
		})
	}

	return categories, nil
}

func (r *SettingsRepository) tableDaoToDomain(t dao.StoreTable) domain.StoreTable {
	return domain.StoreTable{
		ID:              t.ID,
		Title:           t.TableTitle,
		Floor:           t.Floor,
		SeatingCapacity: t.SeatingCapacity,
	}
}
