package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/restrohq/restro-api/internal/domain"
	"github.com/restrohq/restro-api/internal/pkg/idcrypt"
	"github.com/restrohq/restro-api/internal/repository"
)

var (
	ErrStoreNotFound       = repository.ErrStoreNotFound
	ErrTaxNotFound         = repository.ErrTaxNotFound
	ErrTaxGroupNotFound    = repository.ErrTaxGroupNotFound
	ErrPaymentTypeNotFound = repository.ErrPaymentTypeNotFound
	ErrTableNotFound       = repository.ErrTableNotFound
	ErrCategoryNotFound    = repository.ErrCategoryNotFound
)

type SettingsRepository interface {
	FindTenantIDByQRCode(ctx context.Context, qrCode string) (uint, error)
	FindStoreDetails(ctx context.Context, tenantID uint) (domain.StoreDetails, error)
	SaveStoreDetails(ctx context.Context, tenantID uint, details domain.StoreDetails) error
	UpdateQRCode(ctx context.Context, tenantID uint, qrCode string) error
	FindPrintSettings(ctx context.Context, tenantID uint) (domain.PrintSettings, error)
	SavePrintSettings(ctx context.Context, tenantID uint, settings domain.PrintSettings) error
	CreateTax(ctx context.Context, tenantID uint, tax domain.Tax, taxGroupID uint) (domain.Tax, error)
	UpdateTax(ctx context.Context, tenantID uint, tax domain.Tax, taxGroupID uint) error
	DeleteTax(ctx context.Context, id, tenantID uint) error
	FindTaxes(ctx context.Context, tenantID uint) ([]domain.Tax, error)
	CreateTaxGroup(ctx context.Context, tenantID uint, group domain.TaxGroup) (domain.TaxGroup, error)
	UpdateTaxGroup(ctx context.Context, tenantID uint, group domain.TaxGroup) error
	DeleteTaxGroup(ctx context.Context, id, tenantID uint) error
	FindTaxGroups(ctx context.Context, tenantID uint) ([]domain.TaxGroup, error)
	CreatePaymentType(ctx context.Context, tenantID uint, paymentType domain.PaymentType) (domain.PaymentType, error)
	UpdatePaymentType(ctx context.Context, tenantID uint, paymentType domain.PaymentType) error
	TogglePaymentType(ctx context.Context, id, tenantID uint, isActive bool) error
	DeletePaymentType(ctx context.Context, id, tenantID uint) error
	FindPaymentTypes(ctx context.Context, tenantID uint, activeOnly bool) ([]domain.PaymentType, error)
	CreateStoreTable(ctx context.Context, tenantID uint, table domain.StoreTable) (domain.StoreTable, error)
	UpdateStoreTable(ctx context.Context, tenantID uint, table domain.StoreTable) error
	DeleteStoreTable(ctx context.Context, id, tenantID uint) error
	FindStoreTables(ctx context.Context, tenantID uint) ([]domain.StoreTable, error)
	FindStoreTableByID(ctx context.Context, id, tenantID uint) (domain.StoreTable, error)
	CreateCategory(ctx context.Context, tenantID uint, category domain.Category) (domain.Category, error)
	UpdateCategory(ctx context.Context, tenantID uint, category domain.Category) error
	DeleteCategory(ctx context.Context, id, tenantID uint) error
	FindCategories(ctx context.Context, tenantID uint) ([]domain.Category, error)
}

type SettingsService struct {
	repo  SettingsRepository
	codec *idcrypt.Codec
}

func NewSettingsService(repo SettingsRepository, codec *idcrypt.Codec) *SettingsService {
	return &SettingsService{
		repo:  repo,
		codec: codec,
	}
}

func (s *SettingsService) GetStoreDetails(ctx context.Context, tenantID uint) (domain.StoreDetails, error) {
	details, err := s.repo.FindStoreDetails(ctx, tenantID)
	if err != nil {
		return domain.StoreDetails{}, fmt.Errorf("s.repo.FindStoreDetails -> %w", err)
	}

	return details, nil
}

// SaveStoreDetails upserts the store profile. A store that has never been
// saved gets a fresh QR code; an existing one keeps its code so printed
// QR stickers stay valid.
func (s *SettingsService) SaveStoreDetails(ctx context.Context, tenantID uint, details domain.StoreDetails) error {
	existing, err := s.repo.FindStoreDetails(ctx, tenantID)
	if err == nil {
		details.UniqueQRCode = existing.UniqueQRCode
	} else {
		details.UniqueQRCode = uuid.NewString()
	}

	if err := s.repo.SaveStoreDetails(ctx, tenantID, details); err != nil {
		return fmt.Errorf("s.repo.SaveStoreDetails -> %w", err)
	}

	return nil
}

// RegenerateQRCode rotates the store's public QR code, invalidating every
// previously printed code.
func (s *SettingsService) RegenerateQRCode(ctx context.Context, tenantID uint) (string, error) {
	qrCode := uuid.NewString()

	if err := s.repo.UpdateQRCode(ctx, tenantID, qrCode); err != nil {
		return "", fmt.Errorf("s.repo.UpdateQRCode -> %w", err)
	}

	return qrCode, nil
}

func (s *SettingsService) GetPrintSettings(ctx context.Context, tenantID uint) (domain.PrintSettings, error) {
	settings, err := s.repo.FindPrintSettings(ctx, tenantID)
	if err != nil {
		return domain.PrintSettings{}, fmt.Errorf("s.repo.FindPrintSettings -> %w", err)
	}

	return settings, nil
}

func (s *SettingsService) SavePrintSettings(ctx context.Context, tenantID uint, settings domain.PrintSettings) error {
	if err := s.repo.SavePrintSettings(ctx, tenantID, settings); err != nil {
		return fmt.Errorf("s.repo.SavePrintSettings -> %w", err)
	}

	return nil
}

func (s *SettingsService) CreateTax(ctx context.Context, tenantID uint, tax domain.Tax, taxGroupID uint) (domain.Tax, error) {
	created, err := s.repo.CreateTax(ctx, tenantID, tax, taxGroupID)
	if err != nil {
		return domain.Tax{}, fmt.Errorf("s.repo.CreateTax -> %w", err)
	}

	return created, nil
}

func (s *SettingsService) UpdateTax(ctx context.Context, tenantID uint, tax domain.Tax, taxGroupID uint) error {
	if err := s.repo.UpdateTax(ctx, tenantID, tax, taxGroupID); err != nil {
		return fmt.Errorf("s.repo.UpdateTax -> %w", err)
	}

	return nil
}

func (s *SettingsService) DeleteTax(ctx context.Context, id, tenantID uint) error {
	if err := s.repo.DeleteTax(ctx, id, tenantID); err != nil {
		return fmt.Errorf("s.repo.DeleteTax -> %w", err)
	}

	return nil
}

func (s *SettingsService) ListTaxes(ctx context.Context, tenantID uint) ([]domain.Tax, error) {
	taxes, err := s.repo.FindTaxes(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindTaxes -> %w", err)
	}

	return taxes, nil
}

func (s *SettingsService) CreateTaxGroup(ctx context.Context, tenantID uint, group domain.TaxGroup) (domain.TaxGroup, error) {
	created, err := s.repo.CreateTaxGroup(ctx, tenantID, group)
	if err != nil {
		return domain.TaxGroup{}, fmt.Errorf("s.repo.CreateTaxGroup -> %w", err)
	}

	return created, nil
}

func (s *SettingsService) UpdateTaxGroup(ctx context.Context, tenantID uint, group domain.TaxGroup) error {
	if err := s.repo.UpdateTaxGroup(ctx, tenantID, group); err != nil {
		return fmt.Errorf("s.repo.UpdateTaxGroup -> %w", err)
	}

	return nil
}

func (s *SettingsService) DeleteTaxGroup(ctx context.Context, id, tenantID uint) error {
	if err := s.repo.DeleteTaxGroup(ctx, id, tenantID); err != nil {
		return fmt.Errorf("s.repo.DeleteTaxGroup -> %w", err)
	}

	return nil
}

func (s *SettingsService) ListTaxGroups(ctx context.Context, tenantID uint) ([]domain.TaxGroup, error) {
	groups, err := s.repo.FindTaxGroups(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindTaxGroups -> %w", err)
	}

	return groups, nil
}

func (s *SettingsService) CreatePaymentType(ctx context.Context, tenantID uint, paymentType domain.PaymentType) (domain.PaymentType, error) {
	created, err := s.repo.CreatePaymentType(ctx, tenantID, paymentType)
	if err != nil {
		return domain.PaymentType{}, fmt.Errorf("s.repo.CreatePaymentType -> %w", err)
	}

	return created, nil
}

func (s *SettingsService) UpdatePaymentType(ctx context.Context, tenantID uint, paymentType domain.PaymentType) error {
	if err := s.repo.UpdatePaymentType(ctx, tenantID, paymentType); err != nil {
		return fmt.Errorf("s.repo.UpdatePaymentType -> %w", err)
	}

	return nil
}

func (s *SettingsService) TogglePaymentType(ctx context.Context, id, tenantID uint, isActive bool) error {
	if err := s.repo.TogglePaymentType(ctx, id, tenantID, isActive); err != nil {
		return fmt.Errorf("s.repo.TogglePaymentType -> %w", err)
	}

	return nil
}

func (s *SettingsService) DeletePaymentType(ctx context.Context, id, tenantID uint) error {
	if err := s.repo.DeletePaymentType(ctx, id, tenantID); err != nil {
		return fmt.Errorf("s.repo.DeletePaymentType -> %w", err)
	}

	return nil
}

func (s *SettingsService) ListPaymentTypes(ctx context.Context, tenantID uint, activeOnly bool) ([]domain.PaymentType, error) {
	paymentTypes, err := s.repo.FindPaymentTypes(ctx, tenantID, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindPaymentTypes -> %w", err)
	}

	return paymentTypes, nil
}

func (s *SettingsService) CreateStoreTable(ctx context.Context, tenantID uint, table domain.StoreTable) (domain.StoreTable, error) {
	created, err := s.repo.CreateStoreTable(ctx, tenantID, table)
	if err != nil {
		return domain.StoreTable{}, fmt.Errorf("s.repo.CreateStoreTable -> %w", err)
	}

	created.EncryptedID, err = s.codec.EncryptID(created.ID)
	if err != nil {
		return domain.StoreTable{}, fmt.Errorf("s.codec.EncryptID -> %w", err)
	}

	return created, nil
}

func (s *SettingsService) UpdateStoreTable(ctx context.Context, tenantID uint, table domain.StoreTable) error {
	if err := s.repo.UpdateStoreTable(ctx, tenantID, table); err != nil {
		return fmt.Errorf("s.repo.UpdateStoreTable -> %w", err)
	}

	return nil
}

func (s *SettingsService) DeleteStoreTable(ctx context.Context, id, tenantID uint) error {
	if err := s.repo.DeleteStoreTable(ctx, id, tenantID); err != nil {
		return fmt.Errorf("s.repo.DeleteStoreTable -> %w", err)
	}

	return nil
}

// ListStoreTables returns every table with its encrypted id attached, ready
// to be embedded in per-table QR links.
func (s *SettingsService) ListStoreTables(ctx context.Context, tenantID uint) ([]domain.StoreTable, error) {
	tables, err := s.repo.FindStoreTables(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindStoreTables -> %w", err)
	}

	for i := range tables {
		tables[i].EncryptedID, err = s.codec.EncryptID(tables[i].ID)
		if err != nil {
			return nil, fmt.Errorf("s.codec.EncryptID -> %w", err)
		}
	}

	return tables, nil
}

func (s *SettingsService) CreateCategory(ctx context.Context, tenantID uint, category domain.Category) (domain.Category, error) {
	created, err := s.repo.CreateCategory(ctx, tenantID, category)
	if err != nil {
		return domain.Category{}, fmt.Errorf("s.repo.CreateCategory -> %w", err)
	}

	return created, nil
}

func (s *SettingsService) UpdateCategory(ctx context.Context, tenantID uint, category domain.Category) error {
	if err := s.repo.UpdateCategory(ctx, tenantID, category); err != nil {
		return fmt.Errorf("s.repo.UpdateCategory -> %w", err)
	}

	return nil
}

func (s *SettingsService) DeleteCategory(ctx context.Context, id, tenantID uint) error {
	if err := s.repo.DeleteCategory(ctx, id, tenantID); err != nil {
		return fmt.Errorf("s.repo.DeleteCategory -> %w", err)
	}

	return nil
}

func (s *SettingsService) ListCategories(ctx context.Context, tenantID uint) ([]domain.Category, error) {
	categories, err := s.repo.FindCategories(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindCategories -> %w", err)
	}

	return categories, nil
}
