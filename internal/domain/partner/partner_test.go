package partner

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/erp/partners/internal/domain/shared"
	"github.com/erp/partners/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPartner(t *testing.T) *TradingPartner {
	t.Helper()
	p, err := NewTradingPartner("Acme GmbH", PartnerTypeSupplier, PartnerDetails{})
	require.NoError(t, err)
	p.ClearDomainEvents()
	return p
}

func amountPtr(s string) *valueobject.Amount {
	a := valueobject.MustAmount(s)
	return &a
}

func TestNewTradingPartner(t *testing.T) {
	t.Run("creates partner with defaults", func(t *testing.T) {
		p, err := NewTradingPartner("  Acme GmbH ", PartnerTypeSupplier, PartnerDetails{TaxID: " DE123 "})
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, p.ID)
		assert.Equal(t, "Acme GmbH", p.Name)
		assert.Equal(t, PartnerTypeSupplier, p.Type)
		assert.Equal(t, PartnerStatusActive, p.Status)
		assert.Equal(t, "DE123", p.TaxID)
		assert.Equal(t, DefaultPaymentTerms, p.PaymentTerms)
		assert.Equal(t, 1, p.GetVersion())
		assert.True(t, p.OpenClaims().IsZero())
		assert.True(t, p.OpenPayables().IsZero())
		assert.Empty(t, p.Contacts())

		events := p.GetDomainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, EventTypePartnerCreated, events[0].EventType())
		assert.Equal(t, p.ID, events[0].AggregateID())
	})

	t.Run("rejects blank name", func(t *testing.T) {
		_, err := NewTradingPartner("   ", PartnerTypeCustomer, PartnerDetails{})
		require.Error(t, err)
		assert.True(t, errors.Is(err, shared.ErrInvalidInput))
	})

	t.Run("rejects overly long name", func(t *testing.T) {
		_, err := NewTradingPartner(strings.Repeat("x", 201), PartnerTypeCustomer, PartnerDetails{})
		assert.True(t, errors.Is(err, shared.ErrInvalidInput))
	})

	t.Run("rejects missing type", func(t *testing.T) {
		_, err := NewTradingPartner("Acme", "", PartnerDetails{})
		assert.True(t, errors.Is(err, shared.ErrInvalidInput))
	})

	t.Run("rejects unknown type", func(t *testing.T) {
		_, err := NewTradingPartner("Acme", PartnerType("VENDOR"), PartnerDetails{})
		assert.True(t, errors.Is(err, shared.ErrInvalidInput))
	})
}

func TestTradingPartner_DisplayImageURL(t *testing.T) {
	p := newTestPartner(t)
	assert.Equal(t, "https://picsum.photos/60/60?random="+p.ID.String(), p.DisplayImageURL())
	assert.Equal(t, p.DisplayImageURL(), PlaceholderImageURL(p.ID), "placeholder is stable")

	p.CorporateImageURL = "https://cdn.example.com/acme.png"
	assert.Equal(t, "https://cdn.example.com/acme.png", p.DisplayImageURL())
}

func TestTradingPartner_Update(t *testing.T) {
	t.Run("applies only present fields", func(t *testing.T) {
		p := newTestPartner(t)
		p.About = "Schrauben"
		before := p.UpdatedAt

		name := "Acme AG"
		status := PartnerStatusSuspended
		require.NoError(t, p.Update(PartnerPatch{Name: &name, Status: &status}))

		assert.Equal(t, "Acme AG", p.Name)
		assert.Equal(t, PartnerStatusSuspended, p.Status)
		assert.Equal(t, "Schrauben", p.About)
		assert.Equal(t, PartnerTypeSupplier, p.Type)
		assert.False(t, p.UpdatedAt.Before(before))
		require.Len(t, p.GetDomainEvents(), 1)
		assert.Equal(t, EventTypePartnerUpdated, p.GetDomainEvents()[0].EventType())
	})

	t.Run("empty patch still bumps updatedAt", func(t *testing.T) {
		p := newTestPartner(t)
		p.UpdatedAt = time.Now().Add(-time.Hour)
		stale := p.UpdatedAt
		require.NoError(t, p.Update(PartnerPatch{}))
		assert.True(t, p.UpdatedAt.After(stale))
	})

	t.Run("rejects blank name and leaves partner untouched", func(t *testing.T) {
		p := newTestPartner(t)
		blank := " "
		about := "changed"
		err := p.Update(PartnerPatch{Name: &blank, About: &about})
		assert.True(t, errors.Is(err, shared.ErrInvalidInput))
		assert.Equal(t, "Acme GmbH", p.Name)
		assert.Empty(t, p.About)
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		p := newTestPartner(t)
		status := PartnerStatus("ARCHIVED")
		assert.Error(t, p.Update(PartnerPatch{Status: &status}))
	})
}

func TestTradingPartner_Contacts(t *testing.T) {
	p := newTestPartner(t)

	c, err := p.AddContact(ContactInput{Name: " Anna ", Role: "Einkauf"})
	require.NoError(t, err)
	assert.Equal(t, "Anna", c.Name)

	_, err = p.AddContact(ContactInput{Role: "only role"})
	assert.True(t, errors.Is(err, shared.ErrInvalidInput))
	assert.Len(t, p.Contacts(), 1)

	_, err = p.AddContact(ContactInput{Email: "bob@acme.de"})
	require.NoError(t, err)

	updated, err := p.UpdateContact(1, ContactInput{Email: "robert@acme.de", Phone: "0170"})
	require.NoError(t, err)
	assert.Equal(t, "robert@acme.de", updated.Email)
	assert.Equal(t, "robert@acme.de", p.Contacts()[1].Email)

	_, err = p.UpdateContact(2, ContactInput{Name: "X"})
	assert.True(t, errors.Is(err, shared.ErrIndexOutOfRange))
	_, err = p.UpdateContact(-1, ContactInput{Name: "X"})
	assert.True(t, errors.Is(err, shared.ErrIndexOutOfRange))

	require.NoError(t, p.DeleteContact(0))
	require.Len(t, p.Contacts(), 1)
	assert.Equal(t, "robert@acme.de", p.Contacts()[0].Email)

	assert.True(t, errors.Is(p.DeleteContact(1), shared.ErrIndexOutOfRange))

	t.Run("returned slice is a copy", func(t *testing.T) {
		cs := p.Contacts()
		cs[0].Email = "mutated"
		assert.Equal(t, "robert@acme.de", p.Contacts()[0].Email)
	})
}

func TestTradingPartner_ReplaceContacts(t *testing.T) {
	p := newTestPartner(t)
	_, _ = p.AddContact(ContactInput{Name: "Old"})

	err := p.ReplaceContacts([]ContactInput{{Name: "A"}, {Role: "nope"}})
	assert.True(t, errors.Is(err, shared.ErrInvalidInput))
	assert.Equal(t, "Old", p.Contacts()[0].Name)

	require.NoError(t, p.ReplaceContacts([]ContactInput{{Name: "A"}, {Phone: "1"}}))
	assert.Len(t, p.Contacts(), 2)
}

func TestTradingPartner_Addresses(t *testing.T) {
	p := newTestPartner(t)

	a, err := p.AddAddress(AddressInput{Street: "Hauptstraße 1", ZipCode: "10115", City: "Berlin"})
	require.NoError(t, err)
	assert.Equal(t, DefaultAddressType, a.Type)
	assert.Equal(t, DefaultCountry, a.Country)

	_, err = p.AddAddress(AddressInput{Street: "Main St", Country: "DE"})
	assert.True(t, errors.Is(err, shared.ErrInvalidInput))

	_, err = p.UpdateAddress(0, AddressInput{Street: "Nebenweg 2", City: "Hamburg"})
	require.NoError(t, err)
	assert.Equal(t, "Hamburg", p.Addresses()[0].City)

	_, err = p.UpdateAddress(1, AddressInput{Street: "x", City: "y"})
	assert.True(t, errors.Is(err, shared.ErrIndexOutOfRange))

	assert.True(t, errors.Is(p.DeleteAddress(5), shared.ErrIndexOutOfRange))
	require.NoError(t, p.DeleteAddress(0))
	assert.Empty(t, p.Addresses())

	require.NoError(t, p.ReplaceAddresses([]AddressInput{{Street: "a", City: "b"}}))
	assert.Len(t, p.Addresses(), 1)
	assert.Error(t, p.ReplaceAddresses([]AddressInput{{Street: "a"}}))
}

func TestTradingPartner_AddEntry(t *testing.T) {
	t.Run("fills id date and status", func(t *testing.T) {
		p := newTestPartner(t)

		e, err := p.AddEntry(FinancialEntry{Kind: EntryKindClaim, Amount: amountPtr("150.00")})
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, e.ID)
		assert.Equal(t, EntryStatusOpen, e.Status)
		require.NotNil(t, e.Date)
		assert.Equal(t, Today(), *e.Date)
		assert.False(t, e.CreatedAt.IsZero())

		o := p.Ledger()
		assert.Equal(t, "150.00", o.OpenClaims.String())
		assert.Equal(t, "0.00", o.SettledClaims.String())
		assert.Equal(t, 1, o.TransactionCount)
		assert.Equal(t, "150.00", p.OpenClaims().String())

		events := p.GetDomainEvents()
		require.Len(t, events, 1)
		added, ok := events[0].(*EntryAddedEvent)
		require.True(t, ok)
		assert.Equal(t, e.ID, added.EntryID)
		assert.Equal(t, "150.00", added.OpenClaims)
	})

	t.Run("keeps given id and truncates date", func(t *testing.T) {
		p := newTestPartner(t)
		id := uuid.New()
		at := time.Date(2024, 5, 17, 15, 30, 0, 0, time.UTC)

		e, err := p.AddEntry(FinancialEntry{ID: id, Kind: EntryKindPayable, Amount: amountPtr("20"), Date: &at})
		require.NoError(t, err)
		assert.Equal(t, id, e.ID)
		assert.Equal(t, "17.05.2024", e.FormattedDate())
		assert.Equal(t, "20.00", p.OpenPayables().String())
	})

	t.Run("settled entry leaves open totals unchanged", func(t *testing.T) {
		p := newTestPartner(t)
		_, err := p.AddEntry(FinancialEntry{Kind: EntryKindClaim, Amount: amountPtr("10")})
		require.NoError(t, err)

		_, err = p.AddEntry(FinancialEntry{Kind: EntryKindClaim, Status: EntryStatusSettled, Amount: amountPtr("99")})
		require.NoError(t, err)
		assert.Equal(t, "10.00", p.OpenClaims().String())
	})

	t.Run("zero and negative amounts are accepted", func(t *testing.T) {
		p := newTestPartner(t)
		_, err := p.AddEntry(FinancialEntry{Kind: EntryKindClaim, Amount: amountPtr("0")})
		require.NoError(t, err)
		_, err = p.AddEntry(FinancialEntry{Kind: EntryKindClaim, Amount: amountPtr("-5")})
		require.NoError(t, err)
		assert.Equal(t, "-5.00", p.OpenClaims().String())
	})

	t.Run("rejects unknown kind", func(t *testing.T) {
		p := newTestPartner(t)
		_, err := p.AddEntry(FinancialEntry{Kind: "GIFT"})
		assert.True(t, errors.Is(err, shared.ErrInvalidInput))
		assert.Empty(t, p.Entries())
	})
}

func TestTradingPartner_UpdateEntryStatus(t *testing.T) {
	t.Run("settle and reopen", func(t *testing.T) {
		p := newTestPartner(t)
		e, err := p.AddEntry(FinancialEntry{Kind: EntryKindClaim, Amount: amountPtr("100")})
		require.NoError(t, err)
		_, err = p.AddEntry(FinancialEntry{Kind: EntryKindPayable, Amount: amountPtr("40")})
		require.NoError(t, err)

		settled, err := p.UpdateEntryStatus(e.ID, EntryStatusSettled)
		require.NoError(t, err)
		assert.Equal(t, EntryStatusSettled, settled.Status)
		assert.True(t, p.OpenClaims().IsZero())
		assert.Equal(t, "40.00", p.OpenPayables().String())
		assert.Equal(t, "100.00", p.Ledger().SettledClaims.String())

		_, err = p.UpdateEntryStatus(e.ID, EntryStatusOpen)
		require.NoError(t, err)
		assert.Equal(t, "100.00", p.OpenClaims().String())
	})

	t.Run("unknown entry is not found and changes nothing", func(t *testing.T) {
		p := newTestPartner(t)
		_, err := p.AddEntry(FinancialEntry{Kind: EntryKindClaim, Amount: amountPtr("100")})
		require.NoError(t, err)
		p.ClearDomainEvents()
		before := p.Ledger()

		_, err = p.UpdateEntryStatus(uuid.New(), EntryStatusSettled)
		assert.True(t, errors.Is(err, shared.ErrNotFound))
		assert.Equal(t, before.OpenClaims.String(), p.Ledger().OpenClaims.String())
		assert.Equal(t, before.SettledClaims.String(), p.Ledger().SettledClaims.String())
		assert.Empty(t, p.GetDomainEvents())
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		p := newTestPartner(t)
		e, _ := p.AddEntry(FinancialEntry{Kind: EntryKindClaim, Amount: amountPtr("1")})
		_, err := p.UpdateEntryStatus(e.ID, "PAID")
		assert.True(t, errors.Is(err, shared.ErrInvalidInput))
	})
}

func TestTradingPartner_LedgerScenario(t *testing.T) {
	p := newTestPartner(t)
	_, err := p.AddEntry(FinancialEntry{Kind: EntryKindClaim, Status: EntryStatusOpen, Amount: amountPtr("100.00")})
	require.NoError(t, err)
	_, err = p.AddEntry(FinancialEntry{Kind: EntryKindClaim, Status: EntryStatusSettled, Amount: amountPtr("50.00")})
	require.NoError(t, err)

	o := p.Ledger()
	assert.Equal(t, "100.00", o.OpenClaims.String())
	assert.Equal(t, "50.00", o.SettledClaims.String())
	assert.Equal(t, "150.00", o.TotalClaims.Sub(o.TotalPayables).String())
	assert.Equal(t, "150.00", o.NetBalance.String())
}

func TestTradingPartner_Restore(t *testing.T) {
	p := newTestPartner(t)
	assert.False(t, p.IsStored())
	stamp := p.UpdatedAt
	p.Restore(
		[]Contact{{Name: "Anna"}},
		[]Address{{Street: "a", City: "b"}},
		[]FinancialEntry{entry(EntryKindClaim, EntryStatusOpen, "12.5", day(1)), entry(EntryKindPayable, EntryStatusOpen, "2.5", day(2))},
	)

	assert.Equal(t, "12.50", p.OpenClaims().String())
	assert.Equal(t, "2.50", p.OpenPayables().String())
	assert.Len(t, p.Contacts(), 1)
	assert.Len(t, p.Addresses(), 1)
	assert.Equal(t, stamp, p.UpdatedAt)
	assert.Empty(t, p.GetDomainEvents())
	assert.True(t, p.IsStored())
}

func TestTradingPartner_Recalculate_Idempotent(t *testing.T) {
	p := newTestPartner(t)
	_, _ = p.AddEntry(FinancialEntry{Kind: EntryKindClaim, Amount: amountPtr("7")})
	p.Recalculate()
	first := p.OpenClaims()
	p.Recalculate()
	assert.True(t, first.Equal(p.OpenClaims()))
}

func TestParsePartnerTypeAndStatus(t *testing.T) {
	pt, ok := ParsePartnerType("customer")
	assert.True(t, ok)
	assert.Equal(t, PartnerTypeCustomer, pt)
	assert.Equal(t, "Kunde", pt.Label())

	_, ok = ParsePartnerType("unknown")
	assert.False(t, ok)

	st, ok := ParsePartnerStatus(" pending_approval ")
	assert.True(t, ok)
	assert.Equal(t, "Wartend", st.Label())

	assert.Equal(t, "Lieferant", PartnerTypeSupplier.Label())
	assert.Equal(t, "Gesperrt", PartnerStatusSuspended.Label())
}
