package partner

import (
	"slices"

	"github.com/erp/partners/internal/domain/shared/valueobject"
	"github.com/google/uuid"
)

// RecentTransactionLimit caps LedgerOverview.RecentTransactions
const RecentTransactionLimit = 5

// TransactionView is the display projection of a ledger entry
type TransactionView struct {
	ID            uuid.UUID
	Kind          EntryKind
	KindLabel     string
	Status        EntryStatus
	StatusLabel   string
	Amount        *valueobject.Amount
	SignedAmount  valueobject.Amount
	Purpose       string
	Reference     string
	FormattedDate string
}

// LedgerOverview aggregates a partner's entries into open and settled totals
type LedgerOverview struct {
	OpenClaims         valueobject.Amount
	SettledClaims      valueobject.Amount
	OpenPayables       valueobject.Amount
	SettledPayables    valueobject.Amount
	TotalClaims        valueobject.Amount
	TotalPayables      valueobject.Amount
	NetBalance         valueobject.Amount
	TransactionCount   int
	RecentTransactions []TransactionView
}

// NewTransactionView projects an entry for display
func NewTransactionView(e FinancialEntry) TransactionView {
	return TransactionView{
		ID:            e.ID,
		Kind:          e.Kind,
		KindLabel:     e.KindLabel(),
		Status:        e.Status,
		StatusLabel:   e.StatusLabel(),
		Amount:        e.Amount,
		SignedAmount:  e.SignedAmount(),
		Purpose:       e.Purpose,
		Reference:     e.Reference,
		FormattedDate: e.FormattedDate(),
	}
}

// ComputeLedger sums entries by kind and status. It does not modify entries.
func ComputeLedger(entries []FinancialEntry) LedgerOverview {
	o := LedgerOverview{
		OpenClaims:       valueobject.ZeroAmount(),
		SettledClaims:    valueobject.ZeroAmount(),
		OpenPayables:     valueobject.ZeroAmount(),
		SettledPayables:  valueobject.ZeroAmount(),
		TransactionCount: len(entries),
	}

	for _, e := range entries {
		if e.Amount == nil {
			continue
		}
		switch {
		case e.Kind == EntryKindClaim && e.Status == EntryStatusOpen:
			o.OpenClaims = o.OpenClaims.Add(*e.Amount)
		case e.Kind == EntryKindClaim && e.Status == EntryStatusSettled:
			o.SettledClaims = o.SettledClaims.Add(*e.Amount)
		case e.Kind == EntryKindPayable && e.Status == EntryStatusOpen:
			o.OpenPayables = o.OpenPayables.Add(*e.Amount)
		case e.Kind == EntryKindPayable && e.Status == EntryStatusSettled:
			o.SettledPayables = o.SettledPayables.Add(*e.Amount)
		}
	}

	o.TotalClaims = o.OpenClaims.Add(o.SettledClaims)
	o.TotalPayables = o.OpenPayables.Add(o.SettledPayables)
	o.NetBalance = o.TotalClaims.Sub(o.TotalPayables)

	recent := slices.Clone(entries)
	slices.SortStableFunc(recent, compareByDateDesc)
	if len(recent) > RecentTransactionLimit {
		recent = recent[:RecentTransactionLimit]
	}
	o.RecentTransactions = make([]TransactionView, 0, len(recent))
	for _, e := range recent {
		o.RecentTransactions = append(o.RecentTransactions, NewTransactionView(e))
	}

	return o
}

// OpenTotals returns the sums of open claims and open payables
func OpenTotals(entries []FinancialEntry) (claims, payables valueobject.Amount) {
	claims, payables = valueobject.ZeroAmount(), valueobject.ZeroAmount()
	for _, e := range entries {
		if e.Amount == nil || !e.IsOpen() {
			continue
		}
		switch e.Kind {
		case EntryKindClaim:
			claims = claims.Add(*e.Amount)
		case EntryKindPayable:
			payables = payables.Add(*e.Amount)
		}
	}
	return claims, payables
}

// SortTransactions returns a copy of entries ordered by date desc, then
// createdAt desc. Undated entries come last.
func SortTransactions(entries []FinancialEntry) []FinancialEntry {
	sorted := slices.Clone(entries)
	slices.SortStableFunc(sorted, func(a, b FinancialEntry) int {
		if c := compareByDateDesc(a, b); c != 0 {
			return c
		}
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return sorted
}

func compareByDateDesc(a, b FinancialEntry) int {
	switch {
	case a.Date == nil && b.Date == nil:
		return 0
	case a.Date == nil:
		return 1
	case b.Date == nil:
		return -1
	}
	return b.Date.Compare(*a.Date)
}
