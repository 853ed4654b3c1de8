package persistence

import (
	"fmt"

	"github.com/erp/partners/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// PartnerModels lists the tables owned by the partner repository
func PartnerModels() []any {
	return []any{
		&models.TradingPartnerModel{},
		&models.PartnerContactModel{},
		&models.PartnerAddressModel{},
		&models.FinancialEntryModel{},
	}
}

// AutoMigrate creates the partner tables through gorm. It backs the sqlite
// driver, where SQL migrations are not applied; postgres uses cmd/migrate.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(PartnerModels()...); err != nil {
		return fmt.Errorf("failed to migrate partner tables: %w", err)
	}
	return nil
}
