package partner

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/erp/partners/internal/domain/partner"
	"github.com/erp/partners/internal/domain/shared"
	"github.com/erp/partners/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Mocks
// =============================================================================

// MockPartnerRepository is a mock implementation of PartnerRepository
type MockPartnerRepository struct {
	mock.Mock
}

func (m *MockPartnerRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.TradingPartner, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.TradingPartner), args.Error(1)
}

func (m *MockPartnerRepository) FindAll(ctx context.Context, filter partner.PartnerFilter) ([]partner.TradingPartner, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]partner.TradingPartner), args.Error(1)
}

func (m *MockPartnerRepository) Count(ctx context.Context, filter partner.PartnerFilter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPartnerRepository) Save(ctx context.Context, p *partner.TradingPartner) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPartnerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPartnerRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// MockEventPublisher records published events
type MockEventPublisher struct {
	mu     sync.Mutex
	events []shared.DomainEvent
	err    error
}

func (m *MockEventPublisher) Publish(ctx context.Context, events ...shared.DomainEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, events...)
	return m.err
}

func (m *MockEventPublisher) Types() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	types := make([]string, len(m.events))
	for i, e := range m.events {
		types[i] = e.EventType()
	}
	return types
}

// =============================================================================
// Helpers
// =============================================================================

func setupService() (*PartnerService, *MockPartnerRepository, *MockEventPublisher) {
	repo := new(MockPartnerRepository)
	publisher := &MockEventPublisher{}
	svc := NewPartnerService(repo)
	svc.SetEventPublisher(publisher)
	return svc, repo, publisher
}

func existingPartner(t *testing.T) *partner.TradingPartner {
	t.Helper()
	p, err := partner.NewTradingPartner("Acme GmbH", partner.PartnerTypeSupplier, partner.PartnerDetails{About: "Schrauben"})
	require.NoError(t, err)
	p.ClearDomainEvents()
	return p
}

func amount(s string) *valueobject.Amount {
	a := valueobject.MustAmount(s)
	return &a
}

// =============================================================================
// Tests
// =============================================================================

func TestPartnerService_Create(t *testing.T) {
	t.Run("creates partner with default status", func(t *testing.T) {
		svc, repo, publisher := setupService()
		repo.On("Save", mock.Anything, mock.AnythingOfType("*partner.TradingPartner")).Return(nil)

		resp, err := svc.Create(context.Background(), CreatePartnerRequest{Name: "Acme GmbH", Type: "supplier"})

		require.NoError(t, err)
		assert.Equal(t, "Acme GmbH", resp.Name)
		assert.Equal(t, "SUPPLIER", resp.Type)
		assert.Equal(t, "Lieferant", resp.TypeLabel)
		assert.Equal(t, "ACTIVE", resp.Status)
		assert.Equal(t, "Aktiv", resp.StatusLabel)
		assert.Equal(t, partner.PlaceholderImageURL(resp.ID), resp.ImageURL)
		assert.Equal(t, []string{partner.EventTypePartnerCreated}, publisher.Types())
		repo.AssertExpectations(t)
	})

	t.Run("unknown type is invalid input", func(t *testing.T) {
		svc, repo, _ := setupService()

		_, err := svc.Create(context.Background(), CreatePartnerRequest{Name: "Acme", Type: "VENDOR"})

		assert.True(t, errors.Is(err, shared.ErrInvalidInput))
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("blank name is invalid input", func(t *testing.T) {
		svc, _, _ := setupService()
		_, err := svc.Create(context.Background(), CreatePartnerRequest{Name: "  ", Type: "CUSTOMER"})
		assert.True(t, errors.Is(err, shared.ErrInvalidInput))
	})

	t.Run("save failure is returned and nothing is published", func(t *testing.T) {
		svc, repo, publisher := setupService()
		repo.On("Save", mock.Anything, mock.Anything).Return(errors.New("db down"))

		_, err := svc.Create(context.Background(), CreatePartnerRequest{Name: "Acme", Type: "PARTNER"})

		assert.EqualError(t, err, "db down")
		assert.Empty(t, publisher.Types())
	})
}

func TestPartnerService_GetByID(t *testing.T) {
	svc, repo, _ := setupService()
	p := existingPartner(t)
	repo.On("FindByID", mock.Anything, p.ID).Return(p, nil)
	missing := uuid.New()
	repo.On("FindByID", mock.Anything, missing).Return(nil, shared.ErrNotFound)

	resp, err := svc.GetByID(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, p.ID, resp.ID)
	assert.Empty(t, resp.Contacts)

	_, err = svc.GetByID(context.Background(), missing)
	assert.True(t, errors.Is(err, shared.ErrNotFound))
}

func TestPartnerService_List(t *testing.T) {
	t.Run("applies defaults and parsed filters", func(t *testing.T) {
		svc, repo, _ := setupService()
		p := existingPartner(t)

		expected := partner.PartnerFilter{
			Filter: shared.Filter{Page: 1, PageSize: 20, OrderBy: "updated_at", OrderDir: "desc", Search: "acme"},
			Type:   partner.PartnerTypeSupplier,
			Status: partner.PartnerStatusActive,
		}
		repo.On("FindAll", mock.Anything, expected).Return([]partner.TradingPartner{*p}, nil)
		repo.On("Count", mock.Anything, expected).Return(int64(1), nil)

		items, total, err := svc.List(context.Background(), PartnerListFilter{Search: " acme ", Type: "supplier", Status: "active"})

		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, items, 1)
		assert.Equal(t, "Acme GmbH", items[0].Name)
		repo.AssertExpectations(t)
	})

	t.Run("unknown enum text falls back to no filter", func(t *testing.T) {
		svc, repo, _ := setupService()
		matchNoEnum := mock.MatchedBy(func(f partner.PartnerFilter) bool {
			return f.Type == "" && f.Status == ""
		})
		repo.On("FindAll", mock.Anything, matchNoEnum).Return([]partner.TradingPartner{}, nil)
		repo.On("Count", mock.Anything, matchNoEnum).Return(int64(0), nil)

		items, total, err := svc.List(context.Background(), PartnerListFilter{Type: "alien", Status: "gone"})

		require.NoError(t, err)
		assert.Empty(t, items)
		assert.Zero(t, total)
	})

	t.Run("repository error", func(t *testing.T) {
		svc, repo, _ := setupService()
		repo.On("FindAll", mock.Anything, mock.Anything).Return(nil, errors.New("boom"))

		_, _, err := svc.List(context.Background(), PartnerListFilter{})
		assert.Error(t, err)
	})
}

func TestPartnerService_Update(t *testing.T) {
	t.Run("partial update", func(t *testing.T) {
		svc, repo, publisher := setupService()
		p := existingPartner(t)
		repo.On("FindByID", mock.Anything, p.ID).Return(p, nil)
		repo.On("Save", mock.Anything, p).Return(nil)

		status := "suspended"
		resp, err := svc.Update(context.Background(), p.ID, UpdatePartnerRequest{Status: &status})

		require.NoError(t, err)
		assert.Equal(t, "SUSPENDED", resp.Status)
		assert.Equal(t, "Acme GmbH", resp.Name)
		assert.Equal(t, "Schrauben", resp.About)
		assert.Equal(t, []string{partner.EventTypePartnerUpdated}, publisher.Types())
	})

	t.Run("unknown status is invalid input", func(t *testing.T) {
		svc, repo, _ := setupService()
		p := existingPartner(t)
		repo.On("FindByID", mock.Anything, p.ID).Return(p, nil)

		status := "archived"
		_, err := svc.Update(context.Background(), p.ID, UpdatePartnerRequest{Status: &status})
		assert.True(t, errors.Is(err, shared.ErrInvalidInput))
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("version conflict is returned", func(t *testing.T) {
		svc, repo, publisher := setupService()
		p := existingPartner(t)
		repo.On("FindByID", mock.Anything, p.ID).Return(p, nil)
		repo.On("Save", mock.Anything, p).Return(shared.ErrConcurrencyConflict)

		name := "Neu"
		_, err := svc.Update(context.Background(), p.ID, UpdatePartnerRequest{Name: &name})
		assert.True(t, errors.Is(err, shared.ErrConcurrencyConflict))
		assert.Empty(t, publisher.Types())
	})
}

func TestPartnerService_Delete(t *testing.T) {
	t.Run("deletes and publishes", func(t *testing.T) {
		svc, repo, publisher := setupService()
		p := existingPartner(t)
		repo.On("FindByID", mock.Anything, p.ID).Return(p, nil)
		repo.On("Delete", mock.Anything, p.ID).Return(nil)

		require.NoError(t, svc.Delete(context.Background(), p.ID))
		assert.Equal(t, []string{partner.EventTypePartnerDeleted}, publisher.Types())
	})

	t.Run("missing partner is a no-op", func(t *testing.T) {
		svc, repo, publisher := setupService()
		id := uuid.New()
		repo.On("FindByID", mock.Anything, id).Return(nil, shared.ErrNotFound)

		assert.NoError(t, svc.Delete(context.Background(), id))
		repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
		assert.Empty(t, publisher.Types())
	})

	t.Run("concurrently deleted partner is a no-op", func(t *testing.T) {
		svc, repo, _ := setupService()
		p := existingPartner(t)
		repo.On("FindByID", mock.Anything, p.ID).Return(p, nil)
		repo.On("Delete", mock.Anything, p.ID).Return(shared.ErrNotFound)

		assert.NoError(t, svc.Delete(context.Background(), p.ID))
	})

	t.Run("storage error is returned", func(t *testing.T) {
		svc, repo, _ := setupService()
		id := uuid.New()
		repo.On("FindByID", mock.Anything, id).Return(nil, errors.New("db down"))

		assert.Error(t, svc.Delete(context.Background(), id))
	})
}

func TestPartnerService_Contacts(t *testing.T) {
	svc, repo, _ := setupService()
	p := existingPartner(t)
	repo.On("FindByID", mock.Anything, p.ID).Return(p, nil)
	repo.On("Save", mock.Anything, p).Return(nil)
	ctx := context.Background()

	contacts, err := svc.AddContact(ctx, p.ID, ContactRequest{Name: " Anna ", Role: "Einkauf"})
	require.NoError(t, err)
	require.Len(t, contacts, 1)
	assert.Equal(t, "Anna", contacts[0].Name)

	_, err = svc.AddContact(ctx, p.ID, ContactRequest{Role: "only"})
	assert.True(t, errors.Is(err, shared.ErrInvalidInput))

	contacts, err = svc.UpdateContact(ctx, p.ID, 0, ContactRequest{Email: "anna@acme.de"})
	require.NoError(t, err)
	assert.Equal(t, "anna@acme.de", contacts[0].Email)
	assert.Empty(t, contacts[0].Name)

	_, err = svc.UpdateContact(ctx, p.ID, 3, ContactRequest{Email: "x@y.de"})
	assert.True(t, errors.Is(err, shared.ErrIndexOutOfRange))

	_, err = svc.DeleteContact(ctx, p.ID, 1)
	assert.True(t, errors.Is(err, shared.ErrIndexOutOfRange))

	contacts, err = svc.DeleteContact(ctx, p.ID, 0)
	require.NoError(t, err)
	assert.Empty(t, contacts)

	contacts, err = svc.ReplaceContacts(ctx, p.ID, []partner.ContactInput{{Name: "A"}, {Phone: "1"}})
	require.NoError(t, err)
	assert.Len(t, contacts, 2)

	listed, err := svc.ListContacts(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, contacts, listed)
}

func TestPartnerService_Addresses(t *testing.T) {
	svc, repo, _ := setupService()
	p := existingPartner(t)
	repo.On("FindByID", mock.Anything, p.ID).Return(p, nil)
	repo.On("Save", mock.Anything, p).Return(nil)
	ctx := context.Background()

	addresses, err := svc.AddAddress(ctx, p.ID, AddressRequest{Street: "Hauptstraße 1", City: "Berlin"})
	require.NoError(t, err)
	require.Len(t, addresses, 1)
	assert.Equal(t, partner.DefaultAddressType, addresses[0].Type)
	assert.Equal(t, partner.DefaultCountry, addresses[0].Country)

	_, err = svc.AddAddress(ctx, p.ID, AddressRequest{Street: "Main St", Country: "DE"})
	assert.True(t, errors.Is(err, shared.ErrInvalidInput))

	addresses, err = svc.UpdateAddress(ctx, p.ID, 0, AddressRequest{Street: "Nebenweg 2", City: "Hamburg", ZipCode: "20095"})
	require.NoError(t, err)
	assert.Equal(t, "20095", addresses[0].ZipCode)

	_, err = svc.DeleteAddress(ctx, p.ID, -1)
	assert.True(t, errors.Is(err, shared.ErrIndexOutOfRange))

	addresses, err = svc.ReplaceAddresses(ctx, p.ID, []partner.AddressInput{{Street: "a", City: "b"}, {Street: "c", City: "d"}})
	require.NoError(t, err)
	assert.Len(t, addresses, 2)

	addresses, err = svc.DeleteAddress(ctx, p.ID, 0)
	require.NoError(t, err)
	require.Len(t, addresses, 1)
	assert.Equal(t, "c", addresses[0].Street)

	listed, err := svc.ListAddresses(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, addresses, listed)
}

func TestPartnerService_Ledger(t *testing.T) {
	t.Run("add entry returns refreshed ledger", func(t *testing.T) {
		svc, repo, publisher := setupService()
		p := existingPartner(t)
		repo.On("FindByID", mock.Anything, p.ID).Return(p, nil)
		repo.On("Save", mock.Anything, p).Return(nil)

		ledger, err := svc.AddEntry(context.Background(), p.ID, AddEntryRequest{Type: "CLAIM", Amount: amount("150.00"), Purpose: " Rechnung 1 "})

		require.NoError(t, err)
		assert.Equal(t, "150.00", ledger.FinancialOverview.OpenClaims.String())
		assert.Equal(t, "0.00", ledger.FinancialOverview.SettledClaims.String())
		assert.Equal(t, 1, ledger.FinancialOverview.TransactionCount)
		require.Len(t, ledger.Transactions, 1)
		assert.Equal(t, "OPEN", ledger.Transactions[0].Status)
		assert.Equal(t, "Rechnung 1", ledger.Transactions[0].Purpose)
		require.NotNil(t, ledger.Transactions[0].Date)
		assert.Equal(t, partner.Today().Format(ISODate), *ledger.Transactions[0].Date)
		assert.Equal(t, p.ID, ledger.Partner.ID)
		assert.Equal(t, []string{partner.EventTypeEntryAdded}, publisher.Types())
	})

	t.Run("explicit date and status", func(t *testing.T) {
		svc, repo, _ := setupService()
		p := existingPartner(t)
		repo.On("FindByID", mock.Anything, p.ID).Return(p, nil)
		repo.On("Save", mock.Anything, p).Return(nil)

		ledger, err := svc.AddEntry(context.Background(), p.ID, AddEntryRequest{Type: "payable", Status: "settled", Amount: amount("80"), Date: "2024-02-29"})

		require.NoError(t, err)
		assert.Equal(t, "80.00", ledger.FinancialOverview.SettledPayables.String())
		assert.Equal(t, "29.02.2024", ledger.Transactions[0].FormattedDate)
		assert.Equal(t, "-80.00", ledger.FinancialOverview.NetBalance.String())
	})

	t.Run("invalid inputs", func(t *testing.T) {
		svc, repo, _ := setupService()
		p := existingPartner(t)
		repo.On("FindByID", mock.Anything, p.ID).Return(p, nil)

		_, err := svc.AddEntry(context.Background(), p.ID, AddEntryRequest{Type: "GIFT", Amount: amount("1")})
		assert.True(t, errors.Is(err, shared.ErrInvalidInput))

		_, err = svc.AddEntry(context.Background(), p.ID, AddEntryRequest{Type: "CLAIM", Amount: amount("1"), Date: "17.05.2024"})
		assert.True(t, errors.Is(err, shared.ErrInvalidInput))

		_, err = svc.AddEntry(context.Background(), p.ID, AddEntryRequest{Type: "CLAIM", Amount: amount("1"), Status: "PAID"})
		assert.True(t, errors.Is(err, shared.ErrInvalidInput))
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("update entry status", func(t *testing.T) {
		svc, repo, publisher := setupService()
		p := existingPartner(t)
		e, err := p.AddEntry(partner.FinancialEntry{Kind: partner.EntryKindClaim, Amount: amount("100")})
		require.NoError(t, err)
		p.ClearDomainEvents()
		repo.On("FindByID", mock.Anything, p.ID).Return(p, nil)
		repo.On("Save", mock.Anything, p).Return(nil)

		ledger, err := svc.UpdateEntryStatus(context.Background(), p.ID, e.ID, UpdateEntryStatusRequest{Status: "SETTLED"})

		require.NoError(t, err)
		assert.Equal(t, "0.00", ledger.FinancialOverview.OpenClaims.String())
		assert.Equal(t, "100.00", ledger.FinancialOverview.SettledClaims.String())
		assert.Equal(t, []string{partner.EventTypeEntryStatusChanged}, publisher.Types())
	})

	t.Run("update unknown entry is not found", func(t *testing.T) {
		svc, repo, _ := setupService()
		p := existingPartner(t)
		repo.On("FindByID", mock.Anything, p.ID).Return(p, nil)

		_, err := svc.UpdateEntryStatus(context.Background(), p.ID, uuid.New(), UpdateEntryStatusRequest{Status: "SETTLED"})
		assert.True(t, errors.Is(err, shared.ErrNotFound))
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("ledger and balance", func(t *testing.T) {
		svc, repo, _ := setupService()
		p := existingPartner(t)
		_, _ = p.AddEntry(partner.FinancialEntry{Kind: partner.EntryKindClaim, Amount: amount("100")})
		_, _ = p.AddEntry(partner.FinancialEntry{Kind: partner.EntryKindClaim, Status: partner.EntryStatusSettled, Amount: amount("50")})
		_, _ = p.AddEntry(partner.FinancialEntry{Kind: partner.EntryKindPayable, Amount: amount("30")})
		repo.On("FindByID", mock.Anything, p.ID).Return(p, nil)

		ledger, err := svc.GetLedger(context.Background(), p.ID)
		require.NoError(t, err)
		assert.Len(t, ledger.Transactions, 3)
		assert.Len(t, ledger.FinancialOverview.RecentTransactions, 3)

		balance, err := svc.GetBalance(context.Background(), p.ID)
		require.NoError(t, err)
		assert.Equal(t, "150.00", balance.TotalClaims.String())
		assert.Equal(t, "30.00", balance.TotalPayables.String())
		assert.Equal(t, "120.00", balance.NetBalance.String())
		assert.Equal(t, "100.00", balance.OpenClaims.String())
	})
}

func TestPartnerService_PublishFailureIsNotFatal(t *testing.T) {
	svc, repo, publisher := setupService()
	publisher.err = errors.New("bus closed")
	repo.On("Save", mock.Anything, mock.Anything).Return(nil)

	_, err := svc.Create(context.Background(), CreatePartnerRequest{Name: "Acme", Type: "CUSTOMER"})
	assert.NoError(t, err)
}
