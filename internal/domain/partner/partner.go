package partner

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/erp/partners/internal/domain/shared"
	"github.com/erp/partners/internal/domain/shared/valueobject"
	"github.com/google/uuid"
)

// PartnerType classifies a trading partner
type PartnerType string

const (
	PartnerTypeSupplier PartnerType = "SUPPLIER"
	PartnerTypeCustomer PartnerType = "CUSTOMER"
	PartnerTypePartner  PartnerType = "PARTNER"
)

// PartnerStatus is the business status of a trading partner
type PartnerStatus string

const (
	PartnerStatusActive          PartnerStatus = "ACTIVE"
	PartnerStatusPendingApproval PartnerStatus = "PENDING_APPROVAL"
	PartnerStatusInactive        PartnerStatus = "INACTIVE"
	PartnerStatusSuspended       PartnerStatus = "SUSPENDED"
)

// DefaultPartnerStatus is assigned to newly created partners
const DefaultPartnerStatus = PartnerStatusActive

// DefaultPaymentTerms is used when a partner is created without payment terms
const DefaultPaymentTerms = "30 Tage"

const placeholderImageURL = "https://picsum.photos/60/60?random=%s"

// AllPartnerTypes lists the partner types in display order
func AllPartnerTypes() []PartnerType {
	return []PartnerType{PartnerTypeSupplier, PartnerTypeCustomer, PartnerTypePartner}
}

// AllPartnerStatuses lists the partner statuses in display order
func AllPartnerStatuses() []PartnerStatus {
	return []PartnerStatus{PartnerStatusActive, PartnerStatusPendingApproval, PartnerStatusInactive, PartnerStatusSuspended}
}

// IsValid returns true if the type is a known value
func (t PartnerType) IsValid() bool {
	return slices.Contains(AllPartnerTypes(), t)
}

// Label returns the display label of the type
func (t PartnerType) Label() string {
	switch t {
	case PartnerTypeSupplier:
		return "Lieferant"
	case PartnerTypeCustomer:
		return "Kunde"
	case PartnerTypePartner:
		return "Partner"
	default:
		return string(t)
	}
}

// ParsePartnerType parses type text case-insensitively.
// The second result is false for unknown text.
func ParsePartnerType(s string) (PartnerType, bool) {
	t := PartnerType(strings.ToUpper(strings.TrimSpace(s)))
	return t, t.IsValid()
}

// IsValid returns true if the status is a known value
func (s PartnerStatus) IsValid() bool {
	return slices.Contains(AllPartnerStatuses(), s)
}

// Label returns the display label of the status
func (s PartnerStatus) Label() string {
	switch s {
	case PartnerStatusActive:
		return "Aktiv"
	case PartnerStatusPendingApproval:
		return "Wartend"
	case PartnerStatusInactive:
		return "Inaktiv"
	case PartnerStatusSuspended:
		return "Gesperrt"
	default:
		return string(s)
	}
}

// ParsePartnerStatus parses status text case-insensitively.
// The second result is false for unknown text.
func ParsePartnerStatus(s string) (PartnerStatus, bool) {
	st := PartnerStatus(strings.ToUpper(strings.TrimSpace(s)))
	return st, st.IsValid()
}

// PlaceholderImageURL is the image shown for partners without a corporate image
func PlaceholderImageURL(id uuid.UUID) string {
	return fmt.Sprintf(placeholderImageURL, id.String())
}

// TradingPartner is the aggregate root owning contacts, addresses and the
// financial ledger of a supplier, customer or partner.
//
// The owned lists are only reachable through copies. Every change to the
// entries goes through a method that refreshes the cached open totals.
type TradingPartner struct {
	shared.BaseAggregateRoot
	Name              string
	Type              PartnerType
	Status            PartnerStatus
	TaxID             string
	PaymentTerms      string
	About             string
	CorporateImageURL string

	contacts     []Contact
	addresses    []Address
	entries      []FinancialEntry
	openClaims   valueobject.Amount
	openPayables valueobject.Amount
	stored       bool
}

// PartnerDetails holds the optional attributes given at creation
type PartnerDetails struct {
	TaxID             string
	PaymentTerms      string
	About             string
	CorporateImageURL string
}

// NewTradingPartner creates a partner with DefaultPartnerStatus
func NewTradingPartner(name string, partnerType PartnerType, details PartnerDetails) (*TradingPartner, error) {
	name = strings.TrimSpace(name)
	if err := validateName(name); err != nil {
		return nil, err
	}
	if err := validateType(partnerType); err != nil {
		return nil, err
	}

	paymentTerms := strings.TrimSpace(details.PaymentTerms)
	if paymentTerms == "" {
		paymentTerms = DefaultPaymentTerms
	}

	p := &TradingPartner{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Type:              partnerType,
		Status:            DefaultPartnerStatus,
		TaxID:             strings.TrimSpace(details.TaxID),
		PaymentTerms:      paymentTerms,
		About:             strings.TrimSpace(details.About),
		CorporateImageURL: strings.TrimSpace(details.CorporateImageURL),
		openClaims:        valueobject.ZeroAmount(),
		openPayables:      valueobject.ZeroAmount(),
	}

	p.AddDomainEvent(NewPartnerCreatedEvent(p))

	return p, nil
}

// Restore attaches owned collections loaded from storage and recalculates
// the open totals. It raises no events and leaves UpdatedAt untouched.
func (p *TradingPartner) Restore(contacts []Contact, addresses []Address, entries []FinancialEntry) {
	p.contacts = slices.Clone(contacts)
	p.addresses = slices.Clone(addresses)
	p.entries = slices.Clone(entries)
	p.stored = true
	p.Recalculate()
}

// IsStored reports whether the partner was loaded from or written to storage
func (p *TradingPartner) IsStored() bool {
	return p.stored
}

// MarkStored records that the partner now exists in storage
func (p *TradingPartner) MarkStored() {
	p.stored = true
}

// PartnerPatch carries a partial update. Nil fields are left untouched.
type PartnerPatch struct {
	Name              *string
	Type              *PartnerType
	Status            *PartnerStatus
	TaxID             *string
	PaymentTerms      *string
	About             *string
	CorporateImageURL *string
}

// Update applies the fields present in patch and bumps UpdatedAt
func (p *TradingPartner) Update(patch PartnerPatch) error {
	if patch.Name != nil {
		if err := validateName(strings.TrimSpace(*patch.Name)); err != nil {
			return err
		}
	}
	if patch.Type != nil {
		if err := validateType(*patch.Type); err != nil {
			return err
		}
	}
	if patch.Status != nil && !patch.Status.IsValid() {
		return shared.NewDomainError(shared.CodeInvalidInput, "Unknown partner status: "+string(*patch.Status))
	}

	if patch.Name != nil {
		p.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.Type != nil {
		p.Type = *patch.Type
	}
	if patch.Status != nil {
		p.Status = *patch.Status
	}
	if patch.TaxID != nil {
		p.TaxID = strings.TrimSpace(*patch.TaxID)
	}
	if patch.PaymentTerms != nil {
		p.PaymentTerms = strings.TrimSpace(*patch.PaymentTerms)
	}
	if patch.About != nil {
		p.About = strings.TrimSpace(*patch.About)
	}
	if patch.CorporateImageURL != nil {
		p.CorporateImageURL = strings.TrimSpace(*patch.CorporateImageURL)
	}

	p.Touch()
	p.AddDomainEvent(NewPartnerUpdatedEvent(p))

	return nil
}

// DisplayImageURL returns the corporate image or the deterministic placeholder
func (p *TradingPartner) DisplayImageURL() string {
	if p.CorporateImageURL != "" {
		return p.CorporateImageURL
	}
	return PlaceholderImageURL(p.ID)
}

// Contacts returns a copy of the contact list
func (p *TradingPartner) Contacts() []Contact {
	return slices.Clone(p.contacts)
}

// Addresses returns a copy of the address list
func (p *TradingPartner) Addresses() []Address {
	return slices.Clone(p.addresses)
}

// Entries returns a copy of the ledger entries in insertion order
func (p *TradingPartner) Entries() []FinancialEntry {
	return slices.Clone(p.entries)
}

// OpenClaims returns the cached sum of open claims
func (p *TradingPartner) OpenClaims() valueobject.Amount {
	return p.openClaims
}

// OpenPayables returns the cached sum of open payables
func (p *TradingPartner) OpenPayables() valueobject.Amount {
	return p.openPayables
}

// Ledger computes the overview of the partner's entries
func (p *TradingPartner) Ledger() LedgerOverview {
	return ComputeLedger(p.entries)
}

// Recalculate refreshes the cached open totals from the entry list
func (p *TradingPartner) Recalculate() {
	p.openClaims, p.openPayables = OpenTotals(p.entries)
}

// AddContact normalizes and appends a contact
func (p *TradingPartner) AddContact(in ContactInput) (Contact, error) {
	c, ok := NormalizeContact(in)
	if !ok {
		return Contact{}, errInvalidContact()
	}
	p.contacts = append(p.contacts, c)
	p.touchWithEvent()
	return c, nil
}

// UpdateContact replaces the contact at index
func (p *TradingPartner) UpdateContact(index int, in ContactInput) (Contact, error) {
	if err := checkIndex("Contact", index, len(p.contacts)); err != nil {
		return Contact{}, err
	}
	c, ok := NormalizeContact(in)
	if !ok {
		return Contact{}, errInvalidContact()
	}
	p.contacts[index] = c
	p.touchWithEvent()
	return c, nil
}

// DeleteContact removes the contact at index
func (p *TradingPartner) DeleteContact(index int) error {
	if err := checkIndex("Contact", index, len(p.contacts)); err != nil {
		return err
	}
	p.contacts = slices.Delete(p.contacts, index, index+1)
	p.touchWithEvent()
	return nil
}

// ReplaceContacts swaps the whole contact list. Every input must normalize.
func (p *TradingPartner) ReplaceContacts(in []ContactInput) error {
	contacts := make([]Contact, 0, len(in))
	for _, raw := range in {
		c, ok := NormalizeContact(raw)
		if !ok {
			return errInvalidContact()
		}
		contacts = append(contacts, c)
	}
	p.contacts = contacts
	p.touchWithEvent()
	return nil
}

// AddAddress normalizes and appends an address
func (p *TradingPartner) AddAddress(in AddressInput) (Address, error) {
	a, ok := NormalizeAddress(in)
	if !ok {
		return Address{}, errInvalidAddress()
	}
	p.addresses = append(p.addresses, a)
	p.touchWithEvent()
	return a, nil
}

// UpdateAddress replaces the address at index
func (p *TradingPartner) UpdateAddress(index int, in AddressInput) (Address, error) {
	if err := checkIndex("Address", index, len(p.addresses)); err != nil {
		return Address{}, err
	}
	a, ok := NormalizeAddress(in)
	if !ok {
		return Address{}, errInvalidAddress()
	}
	p.addresses[index] = a
	p.touchWithEvent()
	return a, nil
}

// DeleteAddress removes the address at index
func (p *TradingPartner) DeleteAddress(index int) error {
	if err := checkIndex("Address", index, len(p.addresses)); err != nil {
		return err
	}
	p.addresses = slices.Delete(p.addresses, index, index+1)
	p.touchWithEvent()
	return nil
}

// ReplaceAddresses swaps the whole address list. Every input must normalize.
func (p *TradingPartner) ReplaceAddresses(in []AddressInput) error {
	addresses := make([]Address, 0, len(in))
	for _, raw := range in {
		a, ok := NormalizeAddress(raw)
		if !ok {
			return errInvalidAddress()
		}
		addresses = append(addresses, a)
	}
	p.addresses = addresses
	p.touchWithEvent()
	return nil
}

// AddEntry appends a ledger entry. Missing identity, date, status and
// creation time are filled in before the open totals are recalculated.
func (p *TradingPartner) AddEntry(entry FinancialEntry) (FinancialEntry, error) {
	if !entry.Kind.IsValid() {
		return FinancialEntry{}, shared.NewDomainError(shared.CodeInvalidInput, "Unknown entry type: "+string(entry.Kind))
	}
	if entry.Status == "" {
		entry.Status = EntryStatusOpen
	}
	if !entry.Status.IsValid() {
		return FinancialEntry{}, shared.NewDomainError(shared.CodeInvalidInput, "Unknown entry status: "+string(entry.Status))
	}
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	if entry.Date == nil {
		today := Today()
		entry.Date = &today
	} else {
		d := CalendarDate(*entry.Date)
		entry.Date = &d
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}

	p.entries = append(p.entries, entry)
	p.Recalculate()
	p.Touch()
	p.AddDomainEvent(NewEntryAddedEvent(p, entry))

	return entry, nil
}

// UpdateEntryStatus moves the entry with entryID to status. An unknown id
// returns ErrNotFound and leaves the ledger untouched.
func (p *TradingPartner) UpdateEntryStatus(entryID uuid.UUID, status EntryStatus) (FinancialEntry, error) {
	if !status.IsValid() {
		return FinancialEntry{}, shared.NewDomainError(shared.CodeInvalidInput, "Unknown entry status: "+string(status))
	}
	idx := slices.IndexFunc(p.entries, func(e FinancialEntry) bool { return e.ID == entryID })
	if idx < 0 {
		return FinancialEntry{}, shared.NewDomainError(shared.CodeNotFound, "Financial entry not found")
	}

	previous := p.entries[idx].Status
	p.entries[idx].Status = status
	p.Recalculate()
	p.Touch()
	p.AddDomainEvent(NewEntryStatusChangedEvent(p, p.entries[idx], previous))

	return p.entries[idx], nil
}

// FindEntry returns the entry with the given id
func (p *TradingPartner) FindEntry(entryID uuid.UUID) (FinancialEntry, bool) {
	idx := slices.IndexFunc(p.entries, func(e FinancialEntry) bool { return e.ID == entryID })
	if idx < 0 {
		return FinancialEntry{}, false
	}
	return p.entries[idx], true
}

func (p *TradingPartner) touchWithEvent() {
	p.Touch()
	p.AddDomainEvent(NewPartnerUpdatedEvent(p))
}

func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError(shared.CodeInvalidInput, "Name darf nicht leer sein.")
	}
	if len(name) > 200 {
		return shared.NewDomainError(shared.CodeInvalidInput, "Name cannot exceed 200 characters")
	}
	return nil
}

func validateType(t PartnerType) error {
	if t == "" {
		return shared.NewDomainError(shared.CodeInvalidInput, "Partner type is required")
	}
	if !t.IsValid() {
		return shared.NewDomainError(shared.CodeInvalidInput, "Unknown partner type: "+string(t))
	}
	return nil
}

func checkIndex(what string, index, length int) error {
	if index < 0 || index >= length {
		return shared.NewDomainError(shared.CodeIndexOutOfRange, fmt.Sprintf("%s index %d out of range", what, index))
	}
	return nil
}

func errInvalidContact() error {
	return shared.NewDomainError(shared.CodeInvalidInput, "Kontakt benötigt Name, E-Mail oder Telefon.")
}

func errInvalidAddress() error {
	return shared.NewDomainError(shared.CodeInvalidInput, "Adresse benötigt Straße und Stadt.")
}
