package persistence

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/erp/partners/internal/domain/partner"
	"github.com/erp/partners/internal/domain/shared"
	"github.com/erp/partners/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormPartnerRepository implements partner.PartnerRepository using GORM
type GormPartnerRepository struct {
	db *gorm.DB
}

// NewGormPartnerRepository creates a new GormPartnerRepository
func NewGormPartnerRepository(db *gorm.DB) *GormPartnerRepository {
	return &GormPartnerRepository{db: db}
}

func byPosition(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC")
}

// FindByID loads a partner with contacts, addresses and entries
func (r *GormPartnerRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.TradingPartner, error) {
	var model models.TradingPartnerModel
	err := r.db.WithContext(ctx).
		Preload("Addresses", byPosition).
		Preload("Contacts", byPosition).
		Preload("Entries", byPosition).
		First(&model, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll lists partners matching the filter. Only entries are loaded, which
// is enough for the open totals shown in listings.
func (r *GormPartnerRepository) FindAll(ctx context.Context, filter partner.PartnerFilter) ([]partner.TradingPartner, error) {
	var rows []models.TradingPartnerModel
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&models.TradingPartnerModel{}).Preload("Entries", byPosition),
		filter,
	)
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}

	partners := make([]partner.TradingPartner, len(rows))
	for i := range rows {
		partners[i] = *rows[i].ToDomain()
	}
	return partners, nil
}

// Count counts partners matching the filter
func (r *GormPartnerRepository) Count(ctx context.Context, filter partner.PartnerFilter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&models.TradingPartnerModel{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save writes the partner and replaces its owned rows in one transaction.
// An existing row is only updated when its version matches; the stored and
// in-memory versions then move forward by one. A partner not yet stored is
// inserted at version 1. Saving a loaded partner whose row was deleted
// returns shared.ErrNotFound.
func (r *GormPartnerRepository) Save(ctx context.Context, p *partner.TradingPartner) error {
	var model models.TradingPartnerModel
	model.FromDomain(p)

	updated := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.TradingPartnerModel{}).
			Where("id = ? AND version = ?", model.ID, model.Version).
			Updates(map[string]any{
				"name":                model.Name,
				"type":                string(model.Type),
				"status":              string(model.Status),
				"tax_id":              model.TaxID,
				"payment_terms":       model.PaymentTerms,
				"about":               model.About,
				"corporate_image_url": model.CorporateImageURL,
				"open_claims":         model.OpenClaims,
				"open_payables":       model.OpenPayables,
				"updated_at":          model.UpdatedAt,
				"version":             model.Version + 1,
			})
		if result.Error != nil {
			return fmt.Errorf("update trading partner: %w", result.Error)
		}

		if result.RowsAffected == 0 {
			var existing int64
			if err := tx.Model(&models.TradingPartnerModel{}).Where("id = ?", model.ID).Count(&existing).Error; err != nil {
				return fmt.Errorf("check trading partner: %w", err)
			}
			if existing > 0 {
				return shared.ErrConcurrencyConflict
			}
			// the row is gone: only a partner never stored may be inserted
			if p.IsStored() || model.Version != 1 {
				return shared.ErrNotFound
			}
			if err := tx.Omit(clause.Associations).Create(&model).Error; err != nil {
				return fmt.Errorf("insert trading partner: %w", err)
			}
		} else {
			updated = true
		}

		return replaceChildren(tx, &model)
	})
	if err != nil {
		return err
	}

	if updated {
		p.IncrementVersion()
	}
	p.MarkStored()
	return nil
}

func replaceChildren(tx *gorm.DB, model *models.TradingPartnerModel) error {
	if err := deleteChildren(tx, model.ID); err != nil {
		return err
	}
	if len(model.Addresses) > 0 {
		if err := tx.Create(&model.Addresses).Error; err != nil {
			return fmt.Errorf("insert partner addresses: %w", err)
		}
	}
	if len(model.Contacts) > 0 {
		if err := tx.Create(&model.Contacts).Error; err != nil {
			return fmt.Errorf("insert partner contacts: %w", err)
		}
	}
	if len(model.Entries) > 0 {
		if err := tx.Create(&model.Entries).Error; err != nil {
			return fmt.Errorf("insert financial entries: %w", err)
		}
	}
	return nil
}

func deleteChildren(tx *gorm.DB, partnerID uuid.UUID) error {
	if err := tx.Where("partner_id = ?", partnerID).Delete(&models.PartnerAddressModel{}).Error; err != nil {
		return fmt.Errorf("delete partner addresses: %w", err)
	}
	if err := tx.Where("partner_id = ?", partnerID).Delete(&models.PartnerContactModel{}).Error; err != nil {
		return fmt.Errorf("delete partner contacts: %w", err)
	}
	if err := tx.Where("partner_id = ?", partnerID).Delete(&models.FinancialEntryModel{}).Error; err != nil {
		return fmt.Errorf("delete financial entries: %w", err)
	}
	return nil
}

// Delete removes a partner and its owned rows.
// Returns shared.ErrNotFound when nothing was deleted.
func (r *GormPartnerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := deleteChildren(tx, id); err != nil {
			return err
		}
		result := tx.Delete(&models.TradingPartnerModel{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

// ExistsByID checks whether a partner exists
func (r *GormPartnerRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.TradingPartnerModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GormPartnerRepository) applyFilter(query *gorm.DB, filter partner.PartnerFilter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		query = query.Offset(filter.Offset()).Limit(filter.PageSize)
	}

	orderBy := ValidateSortField(filter.OrderBy, PartnerSortFields, "updated_at")
	orderDir := ValidateSortOrder(filter.OrderDir)
	return query.Order(orderBy + " " + orderDir).Order("id ASC")
}

// applyFilterWithoutPagination applies search, type and status filters.
// Search is case-insensitive over name, tax ID and the about text.
func (r *GormPartnerRepository) applyFilterWithoutPagination(query *gorm.DB, filter partner.PartnerFilter) *gorm.DB {
	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(tax_id) LIKE ? OR LOWER(about) LIKE ?",
			pattern, pattern, pattern)
	}
	if filter.Type != "" {
		query = query.Where("type = ?", string(filter.Type))
	}
	if filter.Status != "" {
		query = query.Where("status = ?", string(filter.Status))
	}
	return query
}

// Ensure GormPartnerRepository implements PartnerRepository
var _ partner.PartnerRepository = (*GormPartnerRepository)(nil)
