package integration

import (
	"context"
	"net/http"
	"testing"

	partnerapp "github.com/erp/partners/internal/application/partner"
	"github.com/erp/partners/internal/domain/partner"
	"github.com/erp/partners/internal/infrastructure/config"
	"github.com/erp/partners/internal/infrastructure/event"
	"github.com/erp/partners/internal/infrastructure/persistence"
	"github.com/erp/partners/internal/interfaces/http/handler"
	"github.com/erp/partners/internal/interfaces/http/router"
	"github.com/erp/partners/tests/testutil"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type envelope map[string]any

func TestPartnerAPI_LedgerFlow(t *testing.T) {
	gin.SetMode(gin.TestMode)
	tdb := NewTestDB(t)
	tdb.Truncate(t)

	recorder := testutil.NewRecordingEventHandler(
		partner.EventTypePartnerCreated,
		partner.EventTypePartnerUpdated,
		partner.EventTypePartnerDeleted,
		partner.EventTypeEntryAdded,
		partner.EventTypeEntryStatusChanged,
	)
	bus := event.NewInMemoryEventBus(zap.NewNop())
	bus.Subscribe(recorder)
	require.NoError(t, bus.Start(context.Background()))
	t.Cleanup(func() { _ = bus.Stop(context.Background()) })

	svc := partnerapp.NewPartnerService(persistence.NewGormPartnerRepository(tdb.DB))
	svc.SetEventPublisher(bus)

	engine := router.NewEngine(router.EngineConfig{
		HTTP:     config.HTTPConfig{MaxBodySize: 1 << 20},
		Logger:   zap.NewNop(),
		Partners: handler.NewPartnerHandler(svc),
	})

	w := testutil.DoJSON(t, engine, http.MethodPost, "/api/v1/partners", map[string]any{"name": "Acme GmbH", "type": "SUPPLIER"}, nil)
	testutil.RequireStatus(t, w, http.StatusCreated)
	id := testutil.DecodeJSON[envelope](t, w)["partner"].(map[string]any)["id"].(string)
	base := "/api/v1/partners/" + id

	w = testutil.DoJSON(t, engine, http.MethodPost, base+"/transactions", map[string]any{
		"type": "CLAIM", "amount": "1250.50", "purpose": "Rechnung", "reference": "R-2024-001", "date": "2024-05-17",
	}, nil)
	testutil.RequireStatus(t, w, http.StatusCreated)
	tx := testutil.DecodeJSON[envelope](t, w)["transactions"].([]any)[0].(map[string]any)
	assert.Equal(t, 1250.5, tx["amount"])
	entryID := tx["id"].(string)

	w = testutil.DoJSON(t, engine, http.MethodPost, base+"/transactions", map[string]any{"type": "PAYABLE", "amount": 250}, nil)
	testutil.RequireStatus(t, w, http.StatusCreated)

	w = testutil.DoJSON(t, engine, http.MethodPatch, base+"/transactions/"+entryID+"/status", map[string]any{"status": "SETTLED"}, nil)
	testutil.RequireStatus(t, w, http.StatusOK)

	w = testutil.DoJSON(t, engine, http.MethodGet, base+"/balance", nil, nil)
	testutil.RequireStatus(t, w, http.StatusOK)
	balance := testutil.DecodeJSON[envelope](t, w)["balance"].(map[string]any)
	assert.Equal(t, 0.0, balance["openClaims"])
	assert.Equal(t, 250.0, balance["openPayables"])
	assert.Equal(t, 1000.5, balance["netBalance"])

	w = testutil.DoJSON(t, engine, http.MethodDelete, base, nil, nil)
	testutil.RequireStatus(t, w, http.StatusOK)

	assert.Equal(t, []string{
		partner.EventTypePartnerCreated,
		partner.EventTypeEntryAdded,
		partner.EventTypeEntryAdded,
		partner.EventTypeEntryStatusChanged,
		partner.EventTypePartnerDeleted,
	}, recorder.Types())
}
