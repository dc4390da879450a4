package dao

import "gorm.io/gorm"

func InitTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&InventoryUnit{},
		&InventoryItem{},
		&StockMovement{},
		&MenuItem{},
		&MenuItemAddon{},
		&MenuItemVariant{},
		&StoreDetail{},
		&PrintSetting{},
		&Tax{},
		&TaxGroup{},
		&TaxTaxGroup{},
		&PaymentType{},
		&StoreTable{},
		&Category{},
		&Customer{},
		&QROrder{},
		&QROrderItem{},
	)
}
