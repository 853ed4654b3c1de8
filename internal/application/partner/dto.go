package partner

import (
	"time"

	"github.com/erp/partners/internal/domain/partner"
	"github.com/erp/partners/internal/domain/shared/valueobject"
	"github.com/google/uuid"
)

// ISODate is the wire layout of entry dates
const ISODate = "2006-01-02"

// =============================================================================
// Partner DTOs
// =============================================================================

// CreatePartnerRequest represents a request to create a trading partner
type CreatePartnerRequest struct {
	Name              string `json:"name" binding:"required,max=200" example:"Acme GmbH"`
	Type              string `json:"type" binding:"required" example:"SUPPLIER"`
	TaxID             string `json:"taxId" binding:"max=50" example:"DE123456789"`
	PaymentTerms      string `json:"paymentTerms" binding:"max=100" example:"30 Tage"`
	About             string `json:"about" binding:"max=2000"`
	CorporateImageURL string `json:"corporateImageUrl" binding:"omitempty,url,max=500"`
}

// UpdatePartnerRequest represents a partial update. Absent fields are untouched.
type UpdatePartnerRequest struct {
	Name              *string `json:"name" binding:"omitempty,max=200"`
	Type              *string `json:"type"`
	Status            *string `json:"status"`
	TaxID             *string `json:"taxId" binding:"omitempty,max=50"`
	PaymentTerms      *string `json:"paymentTerms" binding:"omitempty,max=100"`
	About             *string `json:"about" binding:"omitempty,max=2000"`
	CorporateImageURL *string `json:"corporateImageUrl" binding:"omitempty,url,max=500"`
}

// PartnerListFilter represents listing options. Unknown type or status
// text is ignored rather than rejected.
type PartnerListFilter struct {
	Search   string `form:"search"`
	Type     string `form:"type"`
	Status   string `form:"status"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// PartnerResponse represents a trading partner with its owned lists
type PartnerResponse struct {
	ID                uuid.UUID          `json:"id"`
	Name              string             `json:"name"`
	Type              string             `json:"type"`
	TypeLabel         string             `json:"typeLabel"`
	Status            string             `json:"status"`
	StatusLabel       string             `json:"statusLabel"`
	TaxID             string             `json:"taxId"`
	PaymentTerms      string             `json:"paymentTerms"`
	About             string             `json:"about"`
	CorporateImageURL string             `json:"corporateImageUrl,omitempty"`
	ImageURL          string             `json:"imageUrl"`
	OpenClaims        valueobject.Amount `json:"openClaims"`
	OpenPayables      valueobject.Amount `json:"openPayables"`
	Contacts          []ContactResponse  `json:"contacts"`
	Addresses         []AddressResponse  `json:"addresses"`
	Version           int                `json:"version"`
	CreatedAt         time.Time          `json:"createdAt"`
	UpdatedAt         time.Time          `json:"updatedAt"`
}

// PartnerListResponse is the list-view projection of a trading partner
type PartnerListResponse struct {
	ID           uuid.UUID          `json:"id"`
	Name         string             `json:"name"`
	Type         string             `json:"type"`
	TypeLabel    string             `json:"typeLabel"`
	Status       string             `json:"status"`
	StatusLabel  string             `json:"statusLabel"`
	TaxID        string             `json:"taxId"`
	About        string             `json:"about"`
	ImageURL     string             `json:"imageUrl"`
	OpenClaims   valueobject.Amount `json:"openClaims"`
	OpenPayables valueobject.Amount `json:"openPayables"`
	UpdatedAt    time.Time          `json:"updatedAt"`
}

// PartnerSummary identifies a partner inside ledger responses
type PartnerSummary struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	TypeLabel   string    `json:"typeLabel"`
	StatusLabel string    `json:"statusLabel"`
}

// =============================================================================
// Contact and address DTOs
// =============================================================================

// ContactRequest carries contact fields. They are trimmed and validated
// by the domain normalizer.
type ContactRequest struct {
	Name  string `json:"name" binding:"max=200" example:"Anna Schmidt"`
	Email string `json:"email" binding:"max=200" example:"anna@acme.de"`
	Phone string `json:"phone" binding:"max=50" example:"+49 30 123456"`
	Role  string `json:"role" binding:"max=100" example:"Einkauf"`
}

// ToInput converts the request into domain input
func (r ContactRequest) ToInput() partner.ContactInput {
	return partner.ContactInput{Name: r.Name, Email: r.Email, Phone: r.Phone, Role: r.Role}
}

// ContactResponse represents a contact in API responses
type ContactResponse struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
	Role  string `json:"role,omitempty"`
}

// ToDomain converts the response back into a canonical contact
func (r ContactResponse) ToDomain() partner.Contact {
	return partner.Contact{Name: r.Name, Email: r.Email, Phone: r.Phone, Role: r.Role}
}

// AddressRequest carries address fields
type AddressRequest struct {
	Type    string `json:"type" binding:"max=100" example:"Hauptadresse"`
	Street  string `json:"street" binding:"max=200" example:"Hauptstraße 1"`
	ZipCode string `json:"zipCode" binding:"max=20" example:"10115"`
	City    string `json:"city" binding:"max=100" example:"Berlin"`
	Country string `json:"country" binding:"max=100" example:"Deutschland"`
}

// ToInput converts the request into domain input
func (r AddressRequest) ToInput() partner.AddressInput {
	return partner.AddressInput{Type: r.Type, Street: r.Street, ZipCode: r.ZipCode, City: r.City, Country: r.Country}
}

// AddressResponse represents an address in API responses
type AddressResponse struct {
	Type    string `json:"type"`
	Street  string `json:"street"`
	ZipCode string `json:"zipCode,omitempty"`
	City    string `json:"city"`
	Country string `json:"country"`
}

// ToDomain converts the response back into a canonical address
func (r AddressResponse) ToDomain() partner.Address {
	return partner.Address{Type: r.Type, Street: r.Street, ZipCode: r.ZipCode, City: r.City, Country: r.Country}
}

// =============================================================================
// Ledger DTOs
// =============================================================================

// AddEntryRequest represents a request to book a claim or payable.
// The HTTP layer rejects non-positive amounts before this reaches the service.
type AddEntryRequest struct {
	Type      string              `json:"type" binding:"required" example:"CLAIM"`
	Amount    *valueobject.Amount `json:"amount" swaggertype:"number" example:"150.00"`
	Status    string              `json:"status" example:"OPEN"`
	Purpose   string              `json:"purpose" binding:"max=500" example:"Rechnung 2024-001"`
	Reference string              `json:"reference" binding:"max=200" example:"RE-2024-001"`
	Date      string              `json:"date" example:"2024-05-17"`
}

// UpdateEntryStatusRequest represents a status change of a ledger entry
type UpdateEntryStatusRequest struct {
	Status string `json:"status" binding:"required" example:"SETTLED"`
}

// TransactionResponse represents a ledger entry in API responses
type TransactionResponse struct {
	ID            uuid.UUID           `json:"id"`
	Type          string              `json:"type"`
	TypeLabel     string              `json:"typeLabel"`
	Status        string              `json:"status"`
	StatusLabel   string              `json:"statusLabel"`
	Amount        *valueobject.Amount `json:"amount"`
	SignedAmount  valueobject.Amount  `json:"signedAmount"`
	Purpose       string              `json:"purpose"`
	Reference     string              `json:"reference"`
	Date          *string             `json:"date"`
	FormattedDate string              `json:"formattedDate"`
	CreatedAt     *time.Time          `json:"createdAt,omitempty"`
}

// FinancialOverviewResponse represents the ledger totals of a partner
type FinancialOverviewResponse struct {
	OpenClaims         valueobject.Amount    `json:"openClaims"`
	SettledClaims      valueobject.Amount    `json:"settledClaims"`
	OpenPayables       valueobject.Amount    `json:"openPayables"`
	SettledPayables    valueobject.Amount    `json:"settledPayables"`
	TotalClaims        valueobject.Amount    `json:"totalClaims"`
	TotalPayables      valueobject.Amount    `json:"totalPayables"`
	NetBalance         valueobject.Amount    `json:"netBalance"`
	TransactionCount   int                   `json:"transactionCount"`
	RecentTransactions []TransactionResponse `json:"recentTransactions"`
}

// LedgerResponse bundles the overview with the full sorted transaction list
type LedgerResponse struct {
	Partner           PartnerSummary            `json:"partner"`
	FinancialOverview FinancialOverviewResponse `json:"financialOverview"`
	Transactions      []TransactionResponse     `json:"transactions"`
}

// BalanceResponse represents the net position towards a partner
type BalanceResponse struct {
	PartnerID     uuid.UUID          `json:"partnerId"`
	NetBalance    valueobject.Amount `json:"netBalance"`
	TotalClaims   valueobject.Amount `json:"totalClaims"`
	TotalPayables valueobject.Amount `json:"totalPayables"`
	OpenClaims    valueobject.Amount `json:"openClaims"`
	OpenPayables  valueobject.Amount `json:"openPayables"`
}

// =============================================================================
// Mappers
// =============================================================================

// ToPartnerResponse converts a domain partner to a response DTO
func ToPartnerResponse(p *partner.TradingPartner) PartnerResponse {
	return PartnerResponse{
		ID:                p.ID,
		Name:              p.Name,
		Type:              string(p.Type),
		TypeLabel:         p.Type.Label(),
		Status:            string(p.Status),
		StatusLabel:       p.Status.Label(),
		TaxID:             p.TaxID,
		PaymentTerms:      p.PaymentTerms,
		About:             p.About,
		CorporateImageURL: p.CorporateImageURL,
		ImageURL:          p.DisplayImageURL(),
		OpenClaims:        p.OpenClaims(),
		OpenPayables:      p.OpenPayables(),
		Contacts:          ToContactResponses(p.Contacts()),
		Addresses:         ToAddressResponses(p.Addresses()),
		Version:           p.GetVersion(),
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}

// ToPartnerListResponse converts a domain partner to a list response DTO
func ToPartnerListResponse(p *partner.TradingPartner) PartnerListResponse {
	return PartnerListResponse{
		ID:           p.ID,
		Name:         p.Name,
		Type:         string(p.Type),
		TypeLabel:    p.Type.Label(),
		Status:       string(p.Status),
		StatusLabel:  p.Status.Label(),
		TaxID:        p.TaxID,
		About:        p.About,
		ImageURL:     p.DisplayImageURL(),
		OpenClaims:   p.OpenClaims(),
		OpenPayables: p.OpenPayables(),
		UpdatedAt:    p.UpdatedAt,
	}
}

// ToPartnerListResponses converts a slice of domain partners to list responses
func ToPartnerListResponses(partners []partner.TradingPartner) []PartnerListResponse {
	responses := make([]PartnerListResponse, len(partners))
	for i := range partners {
		responses[i] = ToPartnerListResponse(&partners[i])
	}
	return responses
}

// ToPartnerSummary converts a domain partner to a summary
func ToPartnerSummary(p *partner.TradingPartner) PartnerSummary {
	return PartnerSummary{
		ID:          p.ID,
		Name:        p.Name,
		Type:        string(p.Type),
		TypeLabel:   p.Type.Label(),
		StatusLabel: p.Status.Label(),
	}
}

// ToContactResponses converts contacts to response DTOs
func ToContactResponses(contacts []partner.Contact) []ContactResponse {
	responses := make([]ContactResponse, len(contacts))
	for i, c := range contacts {
		responses[i] = ContactResponse{Name: c.Name, Email: c.Email, Phone: c.Phone, Role: c.Role}
	}
	return responses
}

// ToAddressResponses converts addresses to response DTOs
func ToAddressResponses(addresses []partner.Address) []AddressResponse {
	responses := make([]AddressResponse, len(addresses))
	for i, a := range addresses {
		responses[i] = AddressResponse{Type: a.Type, Street: a.Street, ZipCode: a.ZipCode, City: a.City, Country: a.Country}
	}
	return responses
}

// ToTransactionResponse converts a ledger entry to a response DTO
func ToTransactionResponse(e partner.FinancialEntry) TransactionResponse {
	r := TransactionResponse{
		ID:            e.ID,
		Type:          string(e.Kind),
		TypeLabel:     e.KindLabel(),
		Status:        string(e.Status),
		StatusLabel:   e.StatusLabel(),
		Amount:        e.Amount,
		SignedAmount:  e.SignedAmount(),
		Purpose:       e.Purpose,
		Reference:     e.Reference,
		FormattedDate: e.FormattedDate(),
	}
	if e.Date != nil {
		d := e.Date.Format(ISODate)
		r.Date = &d
	}
	if !e.CreatedAt.IsZero() {
		createdAt := e.CreatedAt
		r.CreatedAt = &createdAt
	}
	return r
}

// ToTransactionViewResponse converts a ledger display projection to a response DTO
func ToTransactionViewResponse(v partner.TransactionView) TransactionResponse {
	return TransactionResponse{
		ID:            v.ID,
		Type:          string(v.Kind),
		TypeLabel:     v.KindLabel,
		Status:        string(v.Status),
		StatusLabel:   v.StatusLabel,
		Amount:        v.Amount,
		SignedAmount:  v.SignedAmount,
		Purpose:       v.Purpose,
		Reference:     v.Reference,
		FormattedDate: v.FormattedDate,
	}
}

// ToFinancialOverviewResponse converts a ledger overview to a response DTO
func ToFinancialOverviewResponse(o partner.LedgerOverview) FinancialOverviewResponse {
	recent := make([]TransactionResponse, len(o.RecentTransactions))
	for i, v := range o.RecentTransactions {
		recent[i] = ToTransactionViewResponse(v)
	}
	return FinancialOverviewResponse{
		OpenClaims:         o.OpenClaims,
		SettledClaims:      o.SettledClaims,
		OpenPayables:       o.OpenPayables,
		SettledPayables:    o.SettledPayables,
		TotalClaims:        o.TotalClaims,
		TotalPayables:      o.TotalPayables,
		NetBalance:         o.NetBalance,
		TransactionCount:   o.TransactionCount,
		RecentTransactions: recent,
	}
}

// ToLedgerResponse builds the ledger view of a partner
func ToLedgerResponse(p *partner.TradingPartner) LedgerResponse {
	sorted := partner.SortTransactions(p.Entries())
	transactions := make([]TransactionResponse, len(sorted))
	for i, e := range sorted {
		transactions[i] = ToTransactionResponse(e)
	}
	return LedgerResponse{
		Partner:           ToPartnerSummary(p),
		FinancialOverview: ToFinancialOverviewResponse(p.Ledger()),
		Transactions:      transactions,
	}
}

// ToBalanceResponse builds the balance view of a partner
func ToBalanceResponse(p *partner.TradingPartner) BalanceResponse {
	o := p.Ledger()
	return BalanceResponse{
		PartnerID:     p.ID,
		NetBalance:    o.NetBalance,
		TotalClaims:   o.TotalClaims,
		TotalPayables: o.TotalPayables,
		OpenClaims:    o.OpenClaims,
		OpenPayables:  o.OpenPayables,
	}
}
