package partner

import (
	"context"

	"github.com/erp/partners/internal/domain/shared"
	"github.com/google/uuid"
)

// PartnerFilter narrows a partner listing. Zero values mean "no filter".
type PartnerFilter struct {
	shared.Filter
	Type   PartnerType
	Status PartnerStatus
}

// PartnerRepository defines the interface for trading partner persistence
type PartnerRepository interface {
	// FindByID loads a partner with its contacts, addresses and entries
	FindByID(ctx context.Context, id uuid.UUID) (*TradingPartner, error)

	// FindAll lists partners matching the filter, most recently modified first
	FindAll(ctx context.Context, filter PartnerFilter) ([]TradingPartner, error)

	// Count counts partners matching the filter
	Count(ctx context.Context, filter PartnerFilter) (int64, error)

	// Save creates or updates a partner and replaces its owned collections.
	// Updates are checked against the stored version.
	Save(ctx context.Context, partner *TradingPartner) error

	// Delete removes a partner and everything it owns.
	// Returns shared.ErrNotFound if no such partner exists.
	Delete(ctx context.Context, id uuid.UUID) error

	// ExistsByID checks whether a partner exists
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
}
