// Package models contains the GORM persistence models for trading partners.
// Domain types stay free of ORM tags; each model converts to and from its
// domain counterpart with ToDomain / FromDomain.
//
// Tables:
// - trading_partners: the aggregate root, including denormalized open totals
// - partner_contacts, partner_addresses: ordered by position
// - financial_entries: the ledger, ordered by position
package models
