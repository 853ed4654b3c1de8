package handler

import (
	partnerapp "github.com/erp/partners/internal/application/partner"
	"github.com/erp/partners/internal/interfaces/http/dto"
)

// The types below only describe response envelopes for the OpenAPI document.

// PartnerEnvelope wraps a single partner
type PartnerEnvelope struct {
	Success bool                       `json:"success" example:"true"`
	Message string                     `json:"message" example:"Handelspartner erstellt"`
	Partner partnerapp.PartnerResponse `json:"partner"`
}

// PartnerListEnvelope wraps one page of partners
type PartnerListEnvelope struct {
	Success    bool                             `json:"success" example:"true"`
	Message    string                           `json:"message"`
	Partners   []partnerapp.PartnerListResponse `json:"partners"`
	Pagination dto.Pagination                   `json:"pagination"`
}

// ContactsEnvelope wraps the contact list of a partner
type ContactsEnvelope struct {
	Success  bool                         `json:"success" example:"true"`
	Message  string                       `json:"message"`
	Contacts []partnerapp.ContactResponse `json:"contacts"`
}

// AddressesEnvelope wraps the address list of a partner
type AddressesEnvelope struct {
	Success   bool                         `json:"success" example:"true"`
	Message   string                       `json:"message"`
	Addresses []partnerapp.AddressResponse `json:"addresses"`
}

// LedgerEnvelope wraps the ledger overview and transactions
type LedgerEnvelope struct {
	Success           bool                                 `json:"success" example:"true"`
	Message           string                               `json:"message"`
	Partner           *partnerapp.PartnerSummary           `json:"partner,omitempty"`
	FinancialOverview partnerapp.FinancialOverviewResponse `json:"financialOverview"`
	Transactions      []partnerapp.TransactionResponse     `json:"transactions"`
}

// BalanceEnvelope wraps the balance of a partner
type BalanceEnvelope struct {
	Success bool                       `json:"success" example:"true"`
	Message string                     `json:"message"`
	Balance partnerapp.BalanceResponse `json:"balance"`
}

// TextEnvelope wraps contacts or addresses in the legacy text format
type TextEnvelope struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message"`
	Text    string `json:"text" example:"Anna Schmidt\nE-Mail: anna@acme.de"`
}

// MessageEnvelope carries only success and message
type MessageEnvelope struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message" example:"Handelspartner gelöscht"`
}
