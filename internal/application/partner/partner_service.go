package partner

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/erp/partners/internal/domain/partner"
	"github.com/erp/partners/internal/domain/shared"
	"github.com/erp/partners/internal/infrastructure/telemetry"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// PartnerService handles trading partner use cases
type PartnerService struct {
	partnerRepo    partner.PartnerRepository
	eventPublisher shared.EventPublisher
	logger         *zap.Logger
}

// NewPartnerService creates a new PartnerService
func NewPartnerService(partnerRepo partner.PartnerRepository) *PartnerService {
	return &PartnerService{
		partnerRepo: partnerRepo,
		logger:      zap.NewNop(),
	}
}

// SetEventPublisher sets the event publisher for publishing domain events
func (s *PartnerService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// SetLogger sets the logger used for non-fatal failures
func (s *PartnerService) SetLogger(logger *zap.Logger) {
	if logger != nil {
		s.logger = logger
	}
}

// Create creates a new trading partner
func (s *PartnerService) Create(ctx context.Context, req CreatePartnerRequest) (*PartnerResponse, error) {
	partnerType, ok := partner.ParsePartnerType(req.Type)
	if !ok {
		return nil, invalidInput("Unbekannter Partnertyp: " + req.Type)
	}

	p, err := partner.NewTradingPartner(req.Name, partnerType, partner.PartnerDetails{
		TaxID:             req.TaxID,
		PaymentTerms:      req.PaymentTerms,
		About:             req.About,
		CorporateImageURL: req.CorporateImageURL,
	})
	if err != nil {
		return nil, err
	}

	if err := s.save(ctx, p); err != nil {
		return nil, err
	}

	response := ToPartnerResponse(p)
	return &response, nil
}

// GetByID retrieves a trading partner by ID
func (s *PartnerService) GetByID(ctx context.Context, id uuid.UUID) (*PartnerResponse, error) {
	p, err := s.partnerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := ToPartnerResponse(p)
	return &response, nil
}

// List retrieves partners with filtering and pagination
func (s *PartnerService) List(ctx context.Context, filter PartnerListFilter) ([]PartnerListResponse, int64, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}

	domainFilter := partner.PartnerFilter{
		Filter: shared.Filter{
			Page:     filter.Page,
			PageSize: filter.PageSize,
			OrderBy:  "updated_at",
			OrderDir: "desc",
			Search:   strings.TrimSpace(filter.Search),
		},
	}
	if t, ok := partner.ParsePartnerType(filter.Type); ok {
		domainFilter.Type = t
	}
	if st, ok := partner.ParsePartnerStatus(filter.Status); ok {
		domainFilter.Status = st
	}

	partners, err := s.partnerRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.partnerRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToPartnerListResponses(partners), total, nil
}

// Update applies a partial update to a trading partner
func (s *PartnerService) Update(ctx context.Context, id uuid.UUID, req UpdatePartnerRequest) (*PartnerResponse, error) {
	p, err := s.partnerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	patch := partner.PartnerPatch{
		Name:              req.Name,
		TaxID:             req.TaxID,
		PaymentTerms:      req.PaymentTerms,
		About:             req.About,
		CorporateImageURL: req.CorporateImageURL,
	}
	if req.Type != nil {
		t, ok := partner.ParsePartnerType(*req.Type)
		if !ok {
			return nil, invalidInput("Unbekannter Partnertyp: " + *req.Type)
		}
		patch.Type = &t
	}
	if req.Status != nil {
		st, ok := partner.ParsePartnerStatus(*req.Status)
		if !ok {
			return nil, invalidInput("Unbekannter Status: " + *req.Status)
		}
		patch.Status = &st
	}

	if err := p.Update(patch); err != nil {
		return nil, err
	}

	if err := s.save(ctx, p); err != nil {
		return nil, err
	}

	response := ToPartnerResponse(p)
	return &response, nil
}

// Delete removes a trading partner and everything it owns.
// Deleting a partner that does not exist succeeds without effect.
func (s *PartnerService) Delete(ctx context.Context, id uuid.UUID) error {
	p, err := s.partnerRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil
		}
		return err
	}

	if err := s.partnerRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil
		}
		return err
	}

	s.publish(ctx, partner.NewPartnerDeletedEvent(p))
	return nil
}

// =============================================================================
// Contacts
// =============================================================================

// ListContacts returns the contacts of a partner
func (s *PartnerService) ListContacts(ctx context.Context, id uuid.UUID) ([]ContactResponse, error) {
	p, err := s.partnerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToContactResponses(p.Contacts()), nil
}

// AddContact appends a contact and returns the updated list
func (s *PartnerService) AddContact(ctx context.Context, id uuid.UUID, req ContactRequest) ([]ContactResponse, error) {
	return s.mutateContacts(ctx, id, func(p *partner.TradingPartner) error {
		_, err := p.AddContact(req.ToInput())
		return err
	})
}

// UpdateContact replaces the contact at index and returns the updated list
func (s *PartnerService) UpdateContact(ctx context.Context, id uuid.UUID, index int, req ContactRequest) ([]ContactResponse, error) {
	return s.mutateContacts(ctx, id, func(p *partner.TradingPartner) error {
		_, err := p.UpdateContact(index, req.ToInput())
		return err
	})
}

// DeleteContact removes the contact at index and returns the updated list
func (s *PartnerService) DeleteContact(ctx context.Context, id uuid.UUID, index int) ([]ContactResponse, error) {
	return s.mutateContacts(ctx, id, func(p *partner.TradingPartner) error {
		return p.DeleteContact(index)
	})
}

// ReplaceContacts swaps the full contact list and returns it
func (s *PartnerService) ReplaceContacts(ctx context.Context, id uuid.UUID, inputs []partner.ContactInput) ([]ContactResponse, error) {
	return s.mutateContacts(ctx, id, func(p *partner.TradingPartner) error {
		return p.ReplaceContacts(inputs)
	})
}

func (s *PartnerService) mutateContacts(ctx context.Context, id uuid.UUID, mutate func(*partner.TradingPartner) error) ([]ContactResponse, error) {
	p, err := s.load(ctx, id, mutate)
	if err != nil {
		return nil, err
	}
	return ToContactResponses(p.Contacts()), nil
}

// =============================================================================
// Addresses
// =============================================================================

// ListAddresses returns the addresses of a partner
func (s *PartnerService) ListAddresses(ctx context.Context, id uuid.UUID) ([]AddressResponse, error) {
	p, err := s.partnerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToAddressResponses(p.Addresses()), nil
}

// AddAddress appends an address and returns the updated list
func (s *PartnerService) AddAddress(ctx context.Context, id uuid.UUID, req AddressRequest) ([]AddressResponse, error) {
	return s.mutateAddresses(ctx, id, func(p *partner.TradingPartner) error {
		_, err := p.AddAddress(req.ToInput())
		return err
	})
}

// UpdateAddress replaces the address at index and returns the updated list
func (s *PartnerService) UpdateAddress(ctx context.Context, id uuid.UUID, index int, req AddressRequest) ([]AddressResponse, error) {
	return s.mutateAddresses(ctx, id, func(p *partner.TradingPartner) error {
		_, err := p.UpdateAddress(index, req.ToInput())
		return err
	})
}

// DeleteAddress removes the address at index and returns the updated list
func (s *PartnerService) DeleteAddress(ctx context.Context, id uuid.UUID, index int) ([]AddressResponse, error) {
	return s.mutateAddresses(ctx, id, func(p *partner.TradingPartner) error {
		return p.DeleteAddress(index)
	})
}

// ReplaceAddresses swaps the full address list and returns it
func (s *PartnerService) ReplaceAddresses(ctx context.Context, id uuid.UUID, inputs []partner.AddressInput) ([]AddressResponse, error) {
	return s.mutateAddresses(ctx, id, func(p *partner.TradingPartner) error {
		return p.ReplaceAddresses(inputs)
	})
}

func (s *PartnerService) mutateAddresses(ctx context.Context, id uuid.UUID, mutate func(*partner.TradingPartner) error) ([]AddressResponse, error) {
	p, err := s.load(ctx, id, mutate)
	if err != nil {
		return nil, err
	}
	return ToAddressResponses(p.Addresses()), nil
}

// =============================================================================
// Ledger
// =============================================================================

// AddEntry books a claim or payable and returns the refreshed ledger
func (s *PartnerService) AddEntry(ctx context.Context, id uuid.UUID, req AddEntryRequest) (_ *LedgerResponse, err error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "partner", "add_entry",
		attribute.String("partner_id", id.String()),
		attribute.String("entry_type", req.Type),
	)
	defer func() {
		telemetry.RecordError(span, err)
		span.End()
	}()

	kind, ok := partner.ParseEntryKind(req.Type)
	if !ok {
		return nil, invalidInput("Unbekannter Buchungstyp: " + req.Type)
	}

	entry := partner.FinancialEntry{
		Kind:      kind,
		Amount:    req.Amount,
		Purpose:   strings.TrimSpace(req.Purpose),
		Reference: strings.TrimSpace(req.Reference),
	}
	if req.Status != "" {
		st, ok := partner.ParseEntryStatus(req.Status)
		if !ok {
			return nil, invalidInput("Unbekannter Status: " + req.Status)
		}
		entry.Status = st
	}
	if strings.TrimSpace(req.Date) != "" {
		d, err := time.Parse(ISODate, strings.TrimSpace(req.Date))
		if err != nil {
			return nil, invalidInput("Ungültiges Datum: " + req.Date)
		}
		entry.Date = &d
	}

	p, err := s.load(ctx, id, func(p *partner.TradingPartner) error {
		_, err := p.AddEntry(entry)
		return err
	})
	if err != nil {
		return nil, err
	}

	response := ToLedgerResponse(p)
	return &response, nil
}

// UpdateEntryStatus settles or reopens a ledger entry and returns the refreshed ledger
func (s *PartnerService) UpdateEntryStatus(ctx context.Context, id, entryID uuid.UUID, req UpdateEntryStatusRequest) (_ *LedgerResponse, err error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "partner", "update_entry_status",
		attribute.String("partner_id", id.String()),
		attribute.String("entry_id", entryID.String()),
	)
	defer func() {
		telemetry.RecordError(span, err)
		span.End()
	}()

	status, ok := partner.ParseEntryStatus(req.Status)
	if !ok {
		return nil, invalidInput("Unbekannter Status: " + req.Status)
	}

	p, err := s.load(ctx, id, func(p *partner.TradingPartner) error {
		_, err := p.UpdateEntryStatus(entryID, status)
		return err
	})
	if err != nil {
		return nil, err
	}

	response := ToLedgerResponse(p)
	return &response, nil
}

// GetLedger returns the ledger overview and all transactions of a partner
func (s *PartnerService) GetLedger(ctx context.Context, id uuid.UUID) (*LedgerResponse, error) {
	p, err := s.partnerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := ToLedgerResponse(p)
	return &response, nil
}

// GetBalance returns the net position towards a partner
func (s *PartnerService) GetBalance(ctx context.Context, id uuid.UUID) (*BalanceResponse, error) {
	p, err := s.partnerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := ToBalanceResponse(p)
	return &response, nil
}

// load fetches a partner, applies mutate and saves the result
func (s *PartnerService) load(ctx context.Context, id uuid.UUID, mutate func(*partner.TradingPartner) error) (*partner.TradingPartner, error) {
	p, err := s.partnerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := mutate(p); err != nil {
		return nil, err
	}
	if err := s.save(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *PartnerService) save(ctx context.Context, p *partner.TradingPartner) error {
	if err := s.partnerRepo.Save(ctx, p); err != nil {
		return err
	}
	s.publishDomainEvents(ctx, p)
	return nil
}

// publishDomainEvents publishes all pending events of the partner
func (s *PartnerService) publishDomainEvents(ctx context.Context, p *partner.TradingPartner) {
	events := p.GetDomainEvents()
	if len(events) == 0 {
		return
	}
	s.publish(ctx, events...)
	p.ClearDomainEvents()
}

func (s *PartnerService) publish(ctx context.Context, events ...shared.DomainEvent) {
	if s.eventPublisher == nil {
		return
	}
	if err := s.eventPublisher.Publish(ctx, events...); err != nil {
		s.logger.Warn("Failed to publish partner events",
			zap.Int("count", len(events)),
			zap.Error(err))
	}
}

func invalidInput(message string) error {
	return shared.NewDomainError(shared.CodeInvalidInput, message)
}
