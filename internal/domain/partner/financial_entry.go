package partner

import (
	"strings"
	"time"

	"github.com/erp/partners/internal/domain/shared/valueobject"
	"github.com/google/uuid"
)

// EntryKind distinguishes receivables from obligations
type EntryKind string

const (
	EntryKindClaim   EntryKind = "CLAIM"
	EntryKindPayable EntryKind = "PAYABLE"
)

// EntryStatus is the settlement state of a ledger entry
type EntryStatus string

const (
	EntryStatusOpen    EntryStatus = "OPEN"
	EntryStatusSettled EntryStatus = "SETTLED"
)

// DateLayout is the display layout for entry dates
const DateLayout = "02.01.2006"

// UnknownDateLabel is shown for entries without a date
const UnknownDateLabel = "Unbekannt"

// IsValid returns true if the kind is a known value
func (k EntryKind) IsValid() bool {
	return k == EntryKindClaim || k == EntryKindPayable
}

// Label returns the display label of the kind
func (k EntryKind) Label() string {
	switch k {
	case EntryKindClaim:
		return "Forderung"
	case EntryKindPayable:
		return "Verbindlichkeit"
	default:
		return string(k)
	}
}

// ParseEntryKind parses kind text case-insensitively
func ParseEntryKind(s string) (EntryKind, bool) {
	k := EntryKind(strings.ToUpper(strings.TrimSpace(s)))
	return k, k.IsValid()
}

// IsValid returns true if the status is a known value
func (s EntryStatus) IsValid() bool {
	return s == EntryStatusOpen || s == EntryStatusSettled
}

// Label returns the display label of the status
func (s EntryStatus) Label() string {
	switch s {
	case EntryStatusOpen:
		return "Offen"
	case EntryStatusSettled:
		return "Beglichen"
	default:
		return string(s)
	}
}

// ParseEntryStatus parses status text case-insensitively
func ParseEntryStatus(s string) (EntryStatus, bool) {
	st := EntryStatus(strings.ToUpper(strings.TrimSpace(s)))
	return st, st.IsValid()
}

// FinancialEntry is a single claim or payable owned by a trading partner.
// Amount and Date are optional; a nil Amount contributes nothing to sums
// and a nil Date ranks after every dated entry.
type FinancialEntry struct {
	ID        uuid.UUID
	Kind      EntryKind
	Status    EntryStatus
	Amount    *valueobject.Amount
	Purpose   string
	Reference string
	Date      *time.Time
	CreatedAt time.Time
}

// NewFinancialEntry builds an entry ready to be passed to AddEntry
func NewFinancialEntry(kind EntryKind, amount valueobject.Amount, purpose, reference string, date *time.Time) FinancialEntry {
	return FinancialEntry{
		Kind:      kind,
		Amount:    &amount,
		Purpose:   purpose,
		Reference: reference,
		Date:      date,
	}
}

// SignedAmount is +amount for claims and -amount for payables
func (e FinancialEntry) SignedAmount() valueobject.Amount {
	if e.Amount == nil {
		return valueobject.ZeroAmount()
	}
	if e.Kind == EntryKindPayable {
		return e.Amount.Neg()
	}
	return *e.Amount
}

// IsOpen returns true if the entry is not yet settled
func (e FinancialEntry) IsOpen() bool {
	return e.Status == EntryStatusOpen
}

// KindLabel returns the display label of the entry kind
func (e FinancialEntry) KindLabel() string {
	return e.Kind.Label()
}

// StatusLabel returns the display label of the entry status
func (e FinancialEntry) StatusLabel() string {
	return e.Status.Label()
}

// FormattedDate returns the date as dd.MM.yyyy, or UnknownDateLabel
func (e FinancialEntry) FormattedDate() string {
	if e.Date == nil {
		return UnknownDateLabel
	}
	return e.Date.Format(DateLayout)
}

// CalendarDate strips the clock from t, keeping its calendar day
func CalendarDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Today returns the current calendar date
func Today() time.Time {
	return CalendarDate(time.Now())
}
