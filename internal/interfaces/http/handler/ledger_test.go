package handler

import (
	"net/http"
	"testing"

	"github.com/erp/partners/internal/interfaces/http/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPartnerHandler_AddTransaction(t *testing.T) {
	engine := newPartnerAPI(newTestService(t))
	id := createPartner(t, engine, "Acme GmbH", "CUSTOMER")
	path := "/api/v1/partners/" + id + "/transactions"

	for _, tc := range []struct {
		name string
		body map[string]any
	}{
		{"missing amount", map[string]any{"type": "CLAIM"}},
		{"zero amount", map[string]any{"type": "CLAIM", "amount": 0}},
		{"negative amount", map[string]any{"type": "CLAIM", "amount": -5}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			w := performJSON(engine, http.MethodPost, path, tc.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			body := decodeBody(t, w)
			assert.Equal(t, dto.ErrCodeInvalidInput, body["code"])
			assert.Equal(t, "Betrag muss größer als 0 sein.", body["message"])
		})
	}

	t.Run("unknown kind", func(t *testing.T) {
		w := performJSON(engine, http.MethodPost, path, map[string]any{"type": "REFUND", "amount": 10})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("malformed date", func(t *testing.T) {
		w := performJSON(engine, http.MethodPost, path, map[string]any{"type": "CLAIM", "amount": 10, "date": "17.05.2024"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown partner", func(t *testing.T) {
		w := performJSON(engine, http.MethodPost, "/api/v1/partners/"+uuid.NewString()+"/transactions",
			map[string]any{"type": "CLAIM", "amount": 10})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("books claim and payable", func(t *testing.T) {
		w := performJSON(engine, http.MethodPost, path, map[string]any{
			"type":      "CLAIM",
			"amount":    "150.00",
			"purpose":   "Rechnung 2024-001",
			"reference": "RE-2024-001",
			"date":      "2024-05-17",
		})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		w = performJSON(engine, http.MethodPost, path, map[string]any{"type": "PAYABLE", "amount": 50.5})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		body := decodeBody(t, w)
		assert.Equal(t, "Transaktion hinzugefügt", body["message"])
		overview := body["financialOverview"].(map[string]any)
		assert.Equal(t, 150.0, overview["openClaims"])
		assert.Equal(t, 50.5, overview["openPayables"])
		assert.Equal(t, 99.5, overview["netBalance"])
		assert.Equal(t, float64(2), overview["transactionCount"])
		assert.Len(t, body["transactions"], 2)
	})
}

func TestPartnerHandler_LedgerReadsAndStatus(t *testing.T) {
	engine := newPartnerAPI(newTestService(t))
	id := createPartner(t, engine, "Acme GmbH", "SUPPLIER")
	base := "/api/v1/partners/" + id

	w := performJSON(engine, http.MethodPost, base+"/transactions", map[string]any{"type": "CLAIM", "amount": 200})
	require.Equal(t, http.StatusCreated, w.Code)
	entryID := decodeBody(t, w)["transactions"].([]any)[0].(map[string]any)["id"].(string)

	t.Run("get transactions", func(t *testing.T) {
		w := performJSON(engine, http.MethodGet, base+"/transactions", nil)

		require.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, "Acme GmbH", body["partner"].(map[string]any)["name"])
		tx := body["transactions"].([]any)[0].(map[string]any)
		assert.Equal(t, "CLAIM", tx["type"])
		assert.Equal(t, "OPEN", tx["status"])
		assert.Equal(t, 200.0, tx["amount"])
	})

	t.Run("settle entry", func(t *testing.T) {
		w := performJSON(engine, http.MethodPatch, base+"/transactions/"+entryID+"/status", map[string]any{"status": "SETTLED"})

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		overview := decodeBody(t, w)["financialOverview"].(map[string]any)
		assert.Equal(t, 0.0, overview["openClaims"])
		assert.Equal(t, 200.0, overview["settledClaims"])
		assert.Equal(t, 200.0, overview["totalClaims"])
	})

	t.Run("balance", func(t *testing.T) {
		w := performJSON(engine, http.MethodGet, base+"/balance", nil)

		require.Equal(t, http.StatusOK, w.Code)
		balance := decodeBody(t, w)["balance"].(map[string]any)
		assert.Equal(t, id, balance["partnerId"])
		assert.Equal(t, 200.0, balance["netBalance"])
		assert.Equal(t, 0.0, balance["openClaims"])
	})

	t.Run("unknown entry", func(t *testing.T) {
		w := performJSON(engine, http.MethodPatch, base+"/transactions/"+uuid.NewString()+"/status", map[string]any{"status": "OPEN"})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("malformed entry id", func(t *testing.T) {
		w := performJSON(engine, http.MethodPatch, base+"/transactions/abc/status", map[string]any{"status": "OPEN"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Ungültige Transaktions-ID", decodeBody(t, w)["message"])
	})

	t.Run("unknown status", func(t *testing.T) {
		w := performJSON(engine, http.MethodPatch, base+"/transactions/"+entryID+"/status", map[string]any{"status": "PAID"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
