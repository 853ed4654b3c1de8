package partner

import (
	"github.com/erp/partners/internal/domain/shared"
	"github.com/google/uuid"
)

// AggregateTypeTradingPartner is the aggregate type of trading partner events
const AggregateTypeTradingPartner = "TradingPartner"

// Event type constants for TradingPartner
const (
	EventTypePartnerCreated     = "PartnerCreated"
	EventTypePartnerUpdated     = "PartnerUpdated"
	EventTypePartnerDeleted     = "PartnerDeleted"
	EventTypeEntryAdded         = "FinancialEntryAdded"
	EventTypeEntryStatusChanged = "FinancialEntryStatusChanged"
)

// PartnerCreatedEvent is published when a new partner is created
type PartnerCreatedEvent struct {
	shared.BaseDomainEvent
	PartnerID uuid.UUID     `json:"partner_id"`
	Name      string        `json:"name"`
	Type      PartnerType   `json:"type"`
	Status    PartnerStatus `json:"status"`
}

// NewPartnerCreatedEvent creates a new PartnerCreatedEvent
func NewPartnerCreatedEvent(p *TradingPartner) *PartnerCreatedEvent {
	return &PartnerCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypePartnerCreated, AggregateTypeTradingPartner, p.ID),
		PartnerID:       p.ID,
		Name:            p.Name,
		Type:            p.Type,
		Status:          p.Status,
	}
}

// PartnerUpdatedEvent is published when partner attributes, contacts or
// addresses change
type PartnerUpdatedEvent struct {
	shared.BaseDomainEvent
	PartnerID uuid.UUID     `json:"partner_id"`
	Name      string        `json:"name"`
	Status    PartnerStatus `json:"status"`
}

// NewPartnerUpdatedEvent creates a new PartnerUpdatedEvent
func NewPartnerUpdatedEvent(p *TradingPartner) *PartnerUpdatedEvent {
	return &PartnerUpdatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypePartnerUpdated, AggregateTypeTradingPartner, p.ID),
		PartnerID:       p.ID,
		Name:            p.Name,
		Status:          p.Status,
	}
}

// PartnerDeletedEvent is published after a partner has been removed
type PartnerDeletedEvent struct {
	shared.BaseDomainEvent
	PartnerID uuid.UUID `json:"partner_id"`
	Name      string    `json:"name"`
}

// NewPartnerDeletedEvent creates a new PartnerDeletedEvent
func NewPartnerDeletedEvent(p *TradingPartner) *PartnerDeletedEvent {
	return &PartnerDeletedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypePartnerDeleted, AggregateTypeTradingPartner, p.ID),
		PartnerID:       p.ID,
		Name:            p.Name,
	}
}

// EntryAddedEvent is published when a ledger entry is added
type EntryAddedEvent struct {
	shared.BaseDomainEvent
	PartnerID    uuid.UUID   `json:"partner_id"`
	EntryID      uuid.UUID   `json:"entry_id"`
	Kind         EntryKind   `json:"kind"`
	Status       EntryStatus `json:"status"`
	Amount       string      `json:"amount,omitempty"`
	OpenClaims   string      `json:"open_claims"`
	OpenPayables string      `json:"open_payables"`
}

// NewEntryAddedEvent creates a new EntryAddedEvent
func NewEntryAddedEvent(p *TradingPartner, e FinancialEntry) *EntryAddedEvent {
	evt := &EntryAddedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeEntryAdded, AggregateTypeTradingPartner, p.ID),
		PartnerID:       p.ID,
		EntryID:         e.ID,
		Kind:            e.Kind,
		Status:          e.Status,
		OpenClaims:      p.openClaims.String(),
		OpenPayables:    p.openPayables.String(),
	}
	if e.Amount != nil {
		evt.Amount = e.Amount.String()
	}
	return evt
}

// EntryStatusChangedEvent is published when a ledger entry is settled or reopened
type EntryStatusChangedEvent struct {
	shared.BaseDomainEvent
	PartnerID      uuid.UUID   `json:"partner_id"`
	EntryID        uuid.UUID   `json:"entry_id"`
	PreviousStatus EntryStatus `json:"previous_status"`
	NewStatus      EntryStatus `json:"new_status"`
	OpenClaims     string      `json:"open_claims"`
	OpenPayables   string      `json:"open_payables"`
}

// NewEntryStatusChangedEvent creates a new EntryStatusChangedEvent
func NewEntryStatusChangedEvent(p *TradingPartner, e FinancialEntry, previous EntryStatus) *EntryStatusChangedEvent {
	return &EntryStatusChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeEntryStatusChanged, AggregateTypeTradingPartner, p.ID),
		PartnerID:       p.ID,
		EntryID:         e.ID,
		PreviousStatus:  previous,
		NewStatus:       e.Status,
		OpenClaims:      p.openClaims.String(),
		OpenPayables:    p.openPayables.String(),
	}
}
