package event

import (
	"context"

	"github.com/erp/partners/internal/domain/partner"
	"github.com/erp/partners/internal/domain/shared"
	"github.com/erp/partners/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// LedgerAuditHandler writes an audit log line for every partner and ledger event
type LedgerAuditHandler struct {
	logger *zap.Logger
}

// NewLedgerAuditHandler creates a new LedgerAuditHandler
func NewLedgerAuditHandler(l *zap.Logger) *LedgerAuditHandler {
	return &LedgerAuditHandler{logger: l.Named("audit")}
}

// EventTypes returns the partner event types
func (h *LedgerAuditHandler) EventTypes() []string {
	return []string{
		partner.EventTypePartnerCreated,
		partner.EventTypePartnerUpdated,
		partner.EventTypePartnerDeleted,
		partner.EventTypeEntryAdded,
		partner.EventTypeEntryStatusChanged,
	}
}

// Handle logs the event
func (h *LedgerAuditHandler) Handle(ctx context.Context, event shared.DomainEvent) error {
	log := logger.Enrich(ctx, h.logger).With(
		zap.String("event_id", event.EventID().String()),
		zap.String("event_type", event.EventType()),
		zap.String("partner_id", event.AggregateID().String()),
		zap.Time("occurred_at", event.OccurredAt()),
	)

	switch e := event.(type) {
	case *partner.PartnerCreatedEvent:
		log.Info("partner created",
			zap.String("name", e.Name),
			zap.String("type", string(e.Type)),
			zap.String("status", string(e.Status)),
		)
	case *partner.PartnerUpdatedEvent:
		log.Info("partner updated",
			zap.String("name", e.Name),
			zap.String("status", string(e.Status)),
		)
	case *partner.PartnerDeletedEvent:
		log.Info("partner deleted", zap.String("name", e.Name))
	case *partner.EntryAddedEvent:
		log.Info("ledger entry added",
			zap.String("entry_id", e.EntryID.String()),
			zap.String("kind", string(e.Kind)),
			zap.String("status", string(e.Status)),
			zap.String("amount", e.Amount),
			zap.String("open_claims", e.OpenClaims),
			zap.String("open_payables", e.OpenPayables),
		)
	case *partner.EntryStatusChangedEvent:
		log.Info("ledger entry status changed",
			zap.String("entry_id", e.EntryID.String()),
			zap.String("previous_status", string(e.PreviousStatus)),
			zap.String("new_status", string(e.NewStatus)),
			zap.String("open_claims", e.OpenClaims),
			zap.String("open_payables", e.OpenPayables),
		)
	default:
		log.Debug("unrecognized partner event")
	}
	return nil
}

var _ shared.EventHandler = (*LedgerAuditHandler)(nil)
