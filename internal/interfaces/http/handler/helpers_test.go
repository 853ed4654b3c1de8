package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	partnerapp "github.com/erp/partners/internal/application/partner"
	"github.com/erp/partners/internal/domain/partner"
	"github.com/erp/partners/internal/infrastructure/persistence"
	"github.com/erp/partners/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func init() {
	gin.SetMode(gin.TestMode)
	middleware.SetupValidator()
}

// newTestService returns a service backed by an in-memory sqlite database
func newTestService(t *testing.T) *partnerapp.PartnerService {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, persistence.AutoMigrate(db))
	return partnerapp.NewPartnerService(persistence.NewGormPartnerRepository(db))
}

// newPartnerAPI mounts the partner endpoints the same way the router does
func newPartnerAPI(svc *partnerapp.PartnerService) *gin.Engine {
	h := NewPartnerHandler(svc)
	engine := gin.New()
	engine.Use(middleware.RequestID())

	g := engine.Group("/api/v1/partners")
	g.GET("", h.List)
	g.POST("", h.Create)
	g.GET("/:id", h.GetByID)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
	g.GET("/:id/transactions", h.GetTransactions)
	g.POST("/:id/transactions", h.AddTransaction)
	g.PATCH("/:id/transactions/:entryId/status", h.UpdateTransactionStatus)
	g.GET("/:id/balance", h.GetBalance)
	g.GET("/:id/contacts", h.ListContacts)
	g.POST("/:id/contacts", h.AddContact)
	g.GET("/:id/contacts/legacy-text", h.GetContactsText)
	g.PUT("/:id/contacts/legacy-text", h.ReplaceContactsText)
	g.PUT("/:id/contacts/:index", h.UpdateContact)
	g.DELETE("/:id/contacts/:index", h.DeleteContact)
	g.GET("/:id/addresses", h.ListAddresses)
	g.POST("/:id/addresses", h.AddAddress)
	g.GET("/:id/addresses/legacy-text", h.GetAddressesText)
	g.PUT("/:id/addresses/legacy-text", h.ReplaceAddressesText)
	g.PUT("/:id/addresses/:index", h.UpdateAddress)
	g.DELETE("/:id/addresses/:index", h.DeleteAddress)
	return engine
}

func performJSON(engine *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		data, _ := json.Marshal(b)
		reader = bytes.NewBuffer(data)
	}
	req := httptest.NewRequest(method, path, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), w.Body.String())
	return body
}

// createPartner creates a partner through the API and returns its id
func createPartner(t *testing.T, engine *gin.Engine, name, partnerType string) string {
	t.Helper()
	w := performJSON(engine, http.MethodPost, "/api/v1/partners", map[string]any{
		"name": name,
		"type": partnerType,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decodeBody(t, w)["partner"].(map[string]any)["id"].(string)
}

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
