package models

import (
	"time"

	"github.com/erp/partners/internal/domain/partner"
	"github.com/erp/partners/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TradingPartnerModel is the persistence model for the TradingPartner aggregate.
// OpenClaims and OpenPayables are written on every save for reporting queries;
// the domain recomputes them from the entries when loading.
type TradingPartnerModel struct {
	AggregateModel
	Name              string                `gorm:"type:varchar(200);not null"`
	Type              partner.PartnerType   `gorm:"type:varchar(20);not null;index"`
	Status            partner.PartnerStatus `gorm:"type:varchar(20);not null;index"`
	TaxID             string                `gorm:"type:varchar(50)"`
	PaymentTerms      string                `gorm:"type:varchar(100)"`
	About             string                `gorm:"type:text"`
	CorporateImageURL string                `gorm:"type:text"`
	OpenClaims        decimal.Decimal       `gorm:"type:numeric;not null"`
	OpenPayables      decimal.Decimal       `gorm:"type:numeric;not null"`

	Contacts  []PartnerContactModel `gorm:"foreignKey:PartnerID;constraint:OnDelete:CASCADE"`
	Addresses []PartnerAddressModel `gorm:"foreignKey:PartnerID;constraint:OnDelete:CASCADE"`
	Entries   []FinancialEntryModel `gorm:"foreignKey:PartnerID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (TradingPartnerModel) TableName() string {
	return "trading_partners"
}

// ToDomain converts the model and any loaded children to a TradingPartner
func (m *TradingPartnerModel) ToDomain() *partner.TradingPartner {
	p := &partner.TradingPartner{
		BaseAggregateRoot: m.AggregateModel.ToDomain(),
		Name:              m.Name,
		Type:              m.Type,
		Status:            m.Status,
		TaxID:             m.TaxID,
		PaymentTerms:      m.PaymentTerms,
		About:             m.About,
		CorporateImageURL: m.CorporateImageURL,
	}

	contacts := make([]partner.Contact, len(m.Contacts))
	for i := range m.Contacts {
		contacts[i] = m.Contacts[i].ToDomain()
	}
	addresses := make([]partner.Address, len(m.Addresses))
	for i := range m.Addresses {
		addresses[i] = m.Addresses[i].ToDomain()
	}
	entries := make([]partner.FinancialEntry, len(m.Entries))
	for i := range m.Entries {
		entries[i] = m.Entries[i].ToDomain()
	}
	p.Restore(contacts, addresses, entries)

	return p
}

// FromDomain populates the model and its children from a TradingPartner.
// Children get their position in the owning list.
func (m *TradingPartnerModel) FromDomain(p *partner.TradingPartner) {
	m.FromDomainAggregateRoot(p.BaseAggregateRoot)
	m.Name = p.Name
	m.Type = p.Type
	m.Status = p.Status
	m.TaxID = p.TaxID
	m.PaymentTerms = p.PaymentTerms
	m.About = p.About
	m.CorporateImageURL = p.CorporateImageURL
	m.OpenClaims = p.OpenClaims().Decimal()
	m.OpenPayables = p.OpenPayables().Decimal()

	contacts := p.Contacts()
	m.Contacts = make([]PartnerContactModel, len(contacts))
	for i, c := range contacts {
		m.Contacts[i] = ContactModelFromDomain(p.ID, i, c)
	}
	addresses := p.Addresses()
	m.Addresses = make([]PartnerAddressModel, len(addresses))
	for i, a := range addresses {
		m.Addresses[i] = AddressModelFromDomain(p.ID, i, a)
	}
	entries := p.Entries()
	m.Entries = make([]FinancialEntryModel, len(entries))
	for i, e := range entries {
		m.Entries[i] = EntryModelFromDomain(p.ID, i, e)
	}
}

// PartnerContactModel is one row of a partner's contact list
type PartnerContactModel struct {
	PartnerID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Position  int       `gorm:"primaryKey;autoIncrement:false"`
	Name      string    `gorm:"type:varchar(200)"`
	Email     string    `gorm:"type:varchar(200)"`
	Phone     string    `gorm:"type:varchar(50)"`
	Role      string    `gorm:"type:varchar(100)"`
}

// TableName returns the table name for GORM
func (PartnerContactModel) TableName() string {
	return "partner_contacts"
}

// ToDomain converts the row to a Contact
func (m *PartnerContactModel) ToDomain() partner.Contact {
	return partner.Contact{Name: m.Name, Email: m.Email, Phone: m.Phone, Role: m.Role}
}

// ContactModelFromDomain builds the row for the contact at position
func ContactModelFromDomain(partnerID uuid.UUID, position int, c partner.Contact) PartnerContactModel {
	return PartnerContactModel{
		PartnerID: partnerID,
		Position:  position,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Role:      c.Role,
	}
}

// PartnerAddressModel is one row of a partner's address list
type PartnerAddressModel struct {
	PartnerID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Position  int       `gorm:"primaryKey;autoIncrement:false"`
	Type      string    `gorm:"type:varchar(100);not null"`
	Street    string    `gorm:"type:varchar(200);not null"`
	ZipCode   string    `gorm:"type:varchar(20)"`
	City      string    `gorm:"type:varchar(100);not null"`
	Country   string    `gorm:"type:varchar(100);not null"`
}

// TableName returns the table name for GORM
func (PartnerAddressModel) TableName() string {
	return "partner_addresses"
}

// ToDomain converts the row to an Address
func (m *PartnerAddressModel) ToDomain() partner.Address {
	return partner.Address{
		Type:    m.Type,
		Street:  m.Street,
		ZipCode: m.ZipCode,
		City:    m.City,
		Country: m.Country,
	}
}

// AddressModelFromDomain builds the row for the address at position
func AddressModelFromDomain(partnerID uuid.UUID, position int, a partner.Address) PartnerAddressModel {
	return PartnerAddressModel{
		PartnerID: partnerID,
		Position:  position,
		Type:      a.Type,
		Street:    a.Street,
		ZipCode:   a.ZipCode,
		City:      a.City,
		Country:   a.Country,
	}
}

// FinancialEntryModel is one claim or payable of a partner's ledger
type FinancialEntryModel struct {
	ID        uuid.UUID           `gorm:"type:uuid;primary_key"`
	PartnerID uuid.UUID           `gorm:"type:uuid;not null;index"`
	Position  int                 `gorm:"not null"`
	Kind      partner.EntryKind   `gorm:"type:varchar(20);not null"`
	Status    partner.EntryStatus `gorm:"type:varchar(20);not null"`
	Amount    *decimal.Decimal    `gorm:"type:numeric"`
	Purpose   string              `gorm:"type:text"`
	Reference string              `gorm:"type:varchar(200)"`
	EntryDate *time.Time          `gorm:"type:date"`
	CreatedAt time.Time           `gorm:"not null"`
}

// TableName returns the table name for GORM
func (FinancialEntryModel) TableName() string {
	return "financial_entries"
}

// ToDomain converts the row to a FinancialEntry. Dates come back as UTC
// calendar dates whatever the driver's time zone handling.
func (m *FinancialEntryModel) ToDomain() partner.FinancialEntry {
	e := partner.FinancialEntry{
		ID:        m.ID,
		Kind:      m.Kind,
		Status:    m.Status,
		Purpose:   m.Purpose,
		Reference: m.Reference,
		CreatedAt: m.CreatedAt,
	}
	if m.Amount != nil {
		a := valueobject.NewAmount(*m.Amount)
		e.Amount = &a
	}
	if m.EntryDate != nil {
		d := partner.CalendarDate(*m.EntryDate)
		e.Date = &d
	}
	return e
}

// EntryModelFromDomain builds the row for the entry at position
func EntryModelFromDomain(partnerID uuid.UUID, position int, e partner.FinancialEntry) FinancialEntryModel {
	m := FinancialEntryModel{
		ID:        e.ID,
		PartnerID: partnerID,
		Position:  position,
		Kind:      e.Kind,
		Status:    e.Status,
		Purpose:   e.Purpose,
		Reference: e.Reference,
		CreatedAt: e.CreatedAt,
	}
	if e.Amount != nil {
		d := e.Amount.Decimal()
		m.Amount = &d
	}
	if e.Date != nil {
		d := partner.CalendarDate(*e.Date)
		m.EntryDate = &d
	}
	return m
}
