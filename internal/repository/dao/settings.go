package dao

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrStoreNotFound       = errors.New("store not found")
	ErrTaxNotFound         = errors.New("tax not found")
	ErrTaxGroupNotFound    = errors.New("tax group not found")
	ErrPaymentTypeNotFound = errors.New("payment type not found")
	ErrTableNotFound       = errors.New("store table not found")
	ErrCategoryNotFound    = errors.New("category not found")
)

type StoreDetail struct {
	ID               uint   `gorm:"primaryKey"`
	StoreName        string `gorm:"not null"`
	Address          string
	Phone            string
	Email            string
	Currency         string
	ImageURL         *string
	IsQRMenuEnabled  bool   `gorm:"not null;default:false"`
	IsQROrderEnabled bool   `gorm:"not null;default:false"`
	UniqueQRCode     string `gorm:"uniqueIndex"`
	TenantID         uint   `gorm:"uniqueIndex;not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

type PrintSetting struct {
	ID                  uint `gorm:"primaryKey"`
	PageFormat          string
	Header              string
	Footer              string
	ShowNotes           bool
	IsEnablePrint       bool
	ShowStoreDetails    bool
	ShowCustomerDetails bool
	PrintToken          bool
	TenantID            uint `gorm:"uniqueIndex;not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

type Tax struct {
	ID       uint            `gorm:"primaryKey"`
	Title    string          `gorm:"not null"`
	Rate     decimal.Decimal `gorm:"type:numeric(7,3);not null"`
	Type     string          `gorm:"not null"`
	TenantID uint            `gorm:"index;not null"`
}

func (Tax) TableName() string {
	return "taxes"
}

type TaxGroup struct {
	ID       uint   `gorm:"primaryKey"`
	Title    string `gorm:"not null"`
	TenantID uint   `gorm:"index;not null"`
}

// TaxTaxGroup links a tax to its group. A tax belongs to at most one group;
// updates replace the link rather than editing it.
type TaxTaxGroup struct {
	ID         uint `gorm:"primaryKey"`
	TaxID      uint `gorm:"index;not null"`
	TaxGroupID uint `gorm:"index;not null"`
	TenantID   uint `gorm:"index;not null"`
}

func (TaxTaxGroup) TableName() string {
	return "taxes_tax_groups"
}

type PaymentType struct {
	ID       uint   `gorm:"primaryKey"`
	Title    string `gorm:"not null"`
	IsActive bool   `gorm:"not null;default:true"`
	TenantID uint   `gorm:"index;not null"`
}

type StoreTable struct {
	ID              uint   `gorm:"primaryKey"`
	TableTitle      string `gorm:"not null"`
	Floor           string
	SeatingCapacity int
	TenantID        uint `gorm:"index;not null"`
}

type Category struct {
	ID       uint   `gorm:"primaryKey"`
	Title    string `gorm:"not null"`
	TenantID uint   `gorm:"index;not null"`
}

// TaxRow joins a tax with the title of the group it belongs to.
type TaxRow struct {
	ID            uint
	Title         string
	Rate          decimal.Decimal
	Type          string
	TaxGroupID    *uint
	TaxGroupTitle *string
}

type SettingsDAO struct {
	db *gorm.DB
}

func NewSettingsDAO(db *gorm.DB) *SettingsDAO {
	return &SettingsDAO{
		db: db,
	}
}

// FindTenantIDByQRCode resolves a store's tenant from its public QR code.
func (d *SettingsDAO) FindTenantIDByQRCode(ctx context.Context, qrCode string) (uint, error) {
	var detail StoreDetail

	result := d.db.WithContext(ctx).
		Where("unique_qr_code = ?", qrCode).
		First(&detail)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return 0, ErrStoreNotFound
		}

		return 0, result.Error
	}

	return detail.TenantID, nil
}

func (d *SettingsDAO) FindStoreDetail(ctx context.Context, tenantID uint) (StoreDetail, error) {
	var detail StoreDetail

	result := d.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		First(&detail)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return StoreDetail{}, ErrStoreNotFound
		}

		return StoreDetail{}, result.Error
	}

	return detail, nil
}

func (d *SettingsDAO) UpsertStoreDetail(ctx context.Context, detail StoreDetail) error {
	result := d.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "tenant_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"store_name", "address", "phone", "email", "currency",
			"is_qr_menu_enabled", "is_qr_order_enabled", "unique_qr_code", "updated_at",
		}),
	}).Create(&detail)

	return result.Error
}

func (d *SettingsDAO) UpdateQRCode(ctx context.Context, tenantID uint, qrCode string) error {
	result := d.db.WithContext(ctx).Model(&StoreDetail{}).
		Where("tenant_id = ?", tenantID).
		Update("unique_qr_code", qrCode)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrStoreNotFound
	}

	return nil
}

func (d *SettingsDAO) FindPrintSetting(ctx context.Context, tenantID uint) (PrintSetting, error) {
	var setting PrintSetting

	result := d.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		First(&setting)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return PrintSetting{}, ErrStoreNotFound
		}

		return PrintSetting{}, result.Error
	}

	return setting, nil
}

func (d *SettingsDAO) UpsertPrintSetting(ctx context.Context, setting PrintSetting) error {
	result := d.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "tenant_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"page_format", "header", "footer", "show_notes", "is_enable_print",
			"show_store_details", "show_customer_details", "print_token", "updated_at",
		}),
	}).Create(&setting)

	return result.Error
}

// InsertTax creates the tax and its group link together.
func (d *SettingsDAO) InsertTax(ctx context.Context, tax Tax, taxGroupID uint) (Tax, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&tax).Error; err != nil {
			return err
		}

		link := TaxTaxGroup{
			TaxID:      tax.ID,
			TaxGroupID: taxGroupID,
			TenantID:   tax.TenantID,
		}

		return tx.Create(&link).Error
	})
	if err != nil {
		return Tax{}, err
	}

	return tax, nil
}

func (d *SettingsDAO) UpdateTax(ctx context.Context, tax Tax, taxGroupID uint) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&Tax{}).
			Where("id = ? AND tenant_id = ?", tax.ID, tax.TenantID).
			Updates(map[string]interface{}{
				"title": tax.Title,
				"rate":  tax.Rate,
				"type":  tax.Type,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrTaxNotFound
		}

		if err := tx.Where("tax_id = ? AND tenant_id = ?", tax.ID, tax.TenantID).
			Delete(&TaxTaxGroup{}).Error; err != nil {
			return err
		}

		link := TaxTaxGroup{
			TaxID:      tax.ID,
			TaxGroupID: taxGroupID,
			TenantID:   tax.TenantID,
		}

		return tx.Create(&link).Error
	})
}

func (d *SettingsDAO) DeleteTax(ctx context.Context, id, tenantID uint) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("tax_id = ? AND tenant_id = ?", id, tenantID).
			Delete(&TaxTaxGroup{}).Error; err != nil {
			return err
		}

		result := tx.Where("id = ? AND tenant_id = ?", id, tenantID).Delete(&Tax{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrTaxNotFound
		}

		return nil
	})
}

func (d *SettingsDAO) FindTaxes(ctx context.Context, tenantID uint) ([]TaxRow, error) {
	var rows []TaxRow

	result := d.db.WithContext(ctx).
		Table("taxes AS t").
		Select("t.id, t.title, t.rate, t.type, g.id AS tax_group_id, g.title AS tax_group_title").
		Joins("LEFT JOIN taxes_tax_groups l ON l.tax_id = t.id AND l.tenant_id = t.tenant_id").
		Joins("LEFT JOIN tax_groups g ON g.id = l.tax_group_id AND g.tenant_id = t.tenant_id").
		Where("t.tenant_id = ?", tenantID).
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	return rows, nil
}

func (d *SettingsDAO) FindTaxByID(ctx context.Context, id, tenantID uint) (Tax, error) {
	var tax Tax

	result := d.db.WithContext(ctx).
		Where("id = ? AND tenant_id = ?", id, tenantID).
		First(&tax)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Tax{}, ErrTaxNotFound
		}

		return Tax{}, result.Error
	}

	return tax, nil
}

func (d *SettingsDAO) InsertTaxGroup(ctx context.Context, group TaxGroup) (TaxGroup, error) {
	result := d.db.WithContext(ctx).Create(&group)
	if result.Error != nil {
		return TaxGroup{}, result.Error
	}

	return group, nil
}

func (d *SettingsDAO) UpdateTaxGroup(ctx context.Context, group TaxGroup) error {
	result := d.db.WithContext(ctx).Model(&TaxGroup{}).
		Where("id = ? AND tenant_id = ?", group.ID, group.TenantID).
		Update("title", group.Title)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTaxGroupNotFound
	}

	return nil
}

func (d *SettingsDAO) DeleteTaxGroup(ctx context.Context, id, tenantID uint) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("tax_group_id = ? AND tenant_id = ?", id, tenantID).
			Delete(&TaxTaxGroup{}).Error; err != nil {
			return err
		}

		result := tx.Where("id = ? AND tenant_id = ?", id, tenantID).Delete(&TaxGroup{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrTaxGroupNotFound
		}

		return nil
	})
}

func (d *SettingsDAO) FindTaxGroups(ctx context.Context, tenantID uint) ([]TaxGroup, error) {
	var groups []TaxGroup

	result := d.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Find(&groups)
	if result.Error != nil {
		return nil, result.Error
	}

	return groups, nil
}

func (d *SettingsDAO) FindTaxGroupByID(ctx context.Context, id, tenantID uint) (TaxGroup, error) {
	var group TaxGroup

	result := d.db.WithContext(ctx).
		Where("id = ? AND tenant_id = ?", id, tenantID).
		First(&group)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return TaxGroup{}, ErrTaxGroupNotFound
		}

		return TaxGroup{}, result.Error
	}

	return group, nil
}

func (d *SettingsDAO) InsertPaymentType(ctx context.Context, paymentType PaymentType) (PaymentType, error) {
	result := d.db.WithContext(ctx).Create(&paymentType)
	if result.Error != nil {
		return PaymentType{}, result.Error
	}

	return paymentType, nil
}

func (d *SettingsDAO) UpdatePaymentType(ctx context.Context, paymentType PaymentType) error {
	result := d.db.WithContext(ctx).Model(&PaymentType{}).
		Where("id = ? AND tenant_id = ?", paymentType.ID, paymentType.TenantID).
		Updates(map[string]interface{}{
			"title":     paymentType.Title,
			"is_active": paymentType.IsActive,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPaymentTypeNotFound
	}

	return nil
}

func (d *SettingsDAO) TogglePaymentType(ctx context.Context, id, tenantID uint, isActive bool) error {
	result := d.db.WithContext(ctx).Model(&PaymentType{}).
		Where("id = ? AND tenant_id = ?", id, tenantID).
		Update("is_active", isActive)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPaymentTypeNotFound
	}

	return nil
}

func (d *SettingsDAO) DeletePaymentType(ctx context.Context, id, tenantID uint) error {
	result := d.db.WithContext(ctx).
		Where("id = ? AND tenant_id = ?", id, tenantID).
		Delete(&PaymentType{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPaymentTypeNotFound
	}

	return nil
}

func (d *SettingsDAO) FindPaymentTypes(ctx context.Context, tenantID uint, activeOnly bool) ([]PaymentType, error) {
	var paymentTypes []PaymentType

	query := d.db.WithContext(ctx).Where("tenant_id = ?", tenantID)
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	result := query.Find(&paymentTypes)
	if result.Error != nil {
		return nil, result.Error
	}

	return paymentTypes, nil
}

func (d *SettingsDAO) InsertStoreTable(ctx context.Context, table StoreTable) (StoreTable, error) {
	result := d.db.WithContext(ctx).Create(&table)
	if result.Error != nil {
		return StoreTable{}, result.Error
	}

	return table, nil
}

func (d *SettingsDAO) UpdateStoreTable(ctx context.Context, table StoreTable) error {
	result := d.db.WithContext(ctx).Model(&StoreTable{}).
		Where("id = ? AND tenant_id = ?", table.ID, table.TenantID).
		Updates(map[string]interface{}{
			"table_title":      table.TableTitle,
			"floor":            table.Floor,
			"seating_capacity": table.SeatingCapacity,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTableNotFound
	}

	return nil
}

func (d *SettingsDAO) DeleteStoreTable(ctx context.Context, id, tenantID uint) error {
	result := d.db.WithContext(ctx).
		Where("id = ? AND tenant_id = ?", id, tenantID).
		Delete(&StoreTable{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTableNotFound
	}

	return nil
}

func (d *SettingsDAO) FindStoreTables(ctx context.Context, tenantID uint) ([]StoreTable, error) {
	var tables []StoreTable

	result := d.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Find(&tables)
	if result.Error != nil {
		return nil, result.Error
	}

	return tables, nil
}

func (d *SettingsDAO) FindStoreTableByID(ctx context.Context, id, tenantID uint) (StoreTable, error) {
	var table StoreTable

	result := d.db.WithContext(ctx).
		Where("id = ? AND tenant_id = ?", id, tenantID).
		First(&table)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return StoreTable{}, ErrTableNotFound
		}

		return StoreTable{}, result.Error
	}

	return table, nil
}

func (d *SettingsDAO) InsertCategory(ctx context.Context, category Category) (Category, error) {
	result := d.db.WithContext(ctx).Create(&category)
	if result.Error != nil {
		return Category{}, result.Error
	}

	return category, nil
}

func (d *SettingsDAO) UpdateCategory(ctx context.Context, category Category) error {
	result := d.db.WithContext(ctx).Model(&Category{}).
		Where("id = ? AND tenant_id = ?", category.ID, category.TenantID).
		Update("title", category.Title)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCategoryNotFound
	}

	return nil
}

func (d *SettingsDAO) DeleteCategory(ctx context.Context, id, tenantID uint) error {
	result := d.db.WithContext(ctx).
		Where("id = ? AND tenant_id = ?", id, tenantID).
		Delete(&Category{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCategoryNotFound
	}

	return nil
}

func (d *SettingsDAO) FindCategories(ctx context.Context, tenantID uint) ([]Category, error) {
	var categories []Category

	result := d.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Find(&categories)
	if result.Error != nil {
		return nil, result.Error
	}

	return categories, nil
}
