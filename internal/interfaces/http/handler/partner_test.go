package handler

import (
	"errors"
	"net/http"
	"testing"

	partnerapp "github.com/erp/partners/internal/application/partner"
	"github.com/erp/partners/internal/interfaces/http/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPartnerHandler_Create(t *testing.T) {
	engine := newPartnerAPI(newTestService(t))

	t.Run("creates partner with defaults", func(t *testing.T) {
		w := performJSON(engine, http.MethodPost, "/api/v1/partners", map[string]any{
			"name":  "  Acme GmbH ",
			"type":  "SUPPLIER",
			"taxId": "DE123456789",
		})

		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		body := decodeBody(t, w)
		assert.Equal(t, true, body["success"])
		assert.Equal(t, "Handelspartner erstellt", body["message"])

		p := body["partner"].(map[string]any)
		assert.Equal(t, "Acme GmbH", p["name"])
		assert.Equal(t, "SUPPLIER", p["type"])
		assert.Equal(t, "ACTIVE", p["status"])
		assert.Equal(t, "30 Tage", p["paymentTerms"])
		assert.Equal(t, float64(0), p["openClaims"])
		assert.NotEmpty(t, p["imageUrl"])
		_, err := uuid.Parse(p["id"].(string))
		assert.NoError(t, err)
	})

	t.Run("missing name fails binding", func(t *testing.T) {
		w := performJSON(engine, http.MethodPost, "/api/v1/partners", map[string]any{"type": "SUPPLIER"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, false, body["success"])
		assert.Equal(t, dto.ErrCodeValidation, body["code"])
		assert.Contains(t, body["message"], "name")
		assert.NotEmpty(t, body["requestId"])
	})

	t.Run("blank name is rejected by the domain", func(t *testing.T) {
		w := performJSON(engine, http.MethodPost, "/api/v1/partners", map[string]any{"name": "   ", "type": "CUSTOMER"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, dto.ErrCodeInvalidInput, body["code"])
		assert.Equal(t, "Name darf nicht leer sein.", body["message"])
	})

	t.Run("unknown type", func(t *testing.T) {
		w := performJSON(engine, http.MethodPost, "/api/v1/partners", map[string]any{"name": "X", "type": "VENDOR"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, dto.ErrCodeInvalidInput, decodeBody(t, w)["code"])
	})

	t.Run("malformed json", func(t *testing.T) {
		w := performJSON(engine, http.MethodPost, "/api/v1/partners", `{"name":`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, dto.ErrCodeInvalidJSON, decodeBody(t, w)["code"])
	})
}

func TestPartnerHandler_GetByID(t *testing.T) {
	engine := newPartnerAPI(newTestService(t))
	id := createPartner(t, engine, "Acme GmbH", "SUPPLIER")

	t.Run("found", func(t *testing.T) {
		w := performJSON(engine, http.MethodGet, "/api/v1/partners/"+id, nil)

		require.Equal(t, http.StatusOK, w.Code)
		p := decodeBody(t, w)["partner"].(map[string]any)
		assert.Equal(t, id, p["id"])
		assert.Empty(t, p["contacts"])
		assert.Empty(t, p["addresses"])
	})

	t.Run("unknown id", func(t *testing.T) {
		w := performJSON(engine, http.MethodGet, "/api/v1/partners/"+uuid.NewString(), nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, dto.ErrCodeNotFound, decodeBody(t, w)["code"])
	})

	t.Run("malformed id", func(t *testing.T) {
		w := performJSON(engine, http.MethodGet, "/api/v1/partners/not-a-uuid", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, dto.ErrCodeBadRequest, body["code"])
		assert.Equal(t, "Ungültige Partner-ID", body["message"])
	})
}

func TestPartnerHandler_Update(t *testing.T) {
	engine := newPartnerAPI(newTestService(t))
	id := createPartner(t, engine, "Acme GmbH", "SUPPLIER")

	t.Run("applies present fields only", func(t *testing.T) {
		w := performJSON(engine, http.MethodPut, "/api/v1/partners/"+id, map[string]any{
			"status":       "SUSPENDED",
			"paymentTerms": "14 Tage netto",
		})

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		p := decodeBody(t, w)["partner"].(map[string]any)
		assert.Equal(t, "Acme GmbH", p["name"])
		assert.Equal(t, "SUPPLIER", p["type"])
		assert.Equal(t, "SUSPENDED", p["status"])
		assert.Equal(t, "14 Tage netto", p["paymentTerms"])
	})

	t.Run("unknown status", func(t *testing.T) {
		w := performJSON(engine, http.MethodPut, "/api/v1/partners/"+id, map[string]any{"status": "ARCHIVED"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, dto.ErrCodeInvalidInput, decodeBody(t, w)["code"])
	})

	t.Run("image url must be a url", func(t *testing.T) {
		w := performJSON(engine, http.MethodPut, "/api/v1/partners/"+id, map[string]any{"corporateImageUrl": "kein link"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, dto.ErrCodeValidation, decodeBody(t, w)["code"])

		w = performJSON(engine, http.MethodPut, "/api/v1/partners/"+id, map[string]any{"corporateImageUrl": "https://cdn.acme.de/logo.png"})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Equal(t, "https://cdn.acme.de/logo.png", decodeBody(t, w)["partner"].(map[string]any)["corporateImageUrl"])
	})

	t.Run("unknown partner", func(t *testing.T) {
		w := performJSON(engine, http.MethodPut, "/api/v1/partners/"+uuid.NewString(), map[string]any{"name": "X"})

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestPartnerHandler_Delete(t *testing.T) {
	engine := newPartnerAPI(newTestService(t))
	id := createPartner(t, engine, "Acme GmbH", "SUPPLIER")

	w := performJSON(engine, http.MethodDelete, "/api/v1/partners/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Handelspartner gelöscht", body["message"])
	assert.NotContains(t, body, "partner")

	w = performJSON(engine, http.MethodGet, "/api/v1/partners/"+id, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	t.Run("deleting again is a no-op", func(t *testing.T) {
		w := performJSON(engine, http.MethodDelete, "/api/v1/partners/"+id, nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestPartnerHandler_List(t *testing.T) {
	engine := newPartnerAPI(newTestService(t))
	createPartner(t, engine, "Acme GmbH", "SUPPLIER")
	createPartner(t, engine, "Beta AG", "CUSTOMER")
	createPartner(t, engine, "Gamma KG", "CUSTOMER")

	t.Run("all partners with pagination", func(t *testing.T) {
		w := performJSON(engine, http.MethodGet, "/api/v1/partners", nil)

		require.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.Len(t, body["partners"], 3)
		pagination := body["pagination"].(map[string]any)
		assert.Equal(t, float64(3), pagination["total"])
		assert.Equal(t, float64(1), pagination["page"])
		assert.Equal(t, float64(20), pagination["pageSize"])
	})

	t.Run("filters by type", func(t *testing.T) {
		w := performJSON(engine, http.MethodGet, "/api/v1/partners?type=CUSTOMER", nil)

		require.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.Len(t, body["partners"], 2)
		for _, p := range body["partners"].([]any) {
			assert.Equal(t, "CUSTOMER", p.(map[string]any)["type"])
		}
	})

	t.Run("unknown type is ignored", func(t *testing.T) {
		w := performJSON(engine, http.MethodGet, "/api/v1/partners?type=ALIEN", nil)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, decodeBody(t, w)["partners"], 3)
	})

	t.Run("page size above limit", func(t *testing.T) {
		w := performJSON(engine, http.MethodGet, "/api/v1/partners?page_size=500", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, dto.ErrCodeValidation, decodeBody(t, w)["code"])
	})
}

func TestPartnerHandler_UnexpectedError(t *testing.T) {
	repo := new(MockPartnerRepository)
	repo.On("FindByID", mock.Anything, mock.Anything).Return(nil, errors.New("connection reset"))
	engine := newPartnerAPI(partnerapp.NewPartnerService(repo))

	w := performJSON(engine, http.MethodGet, "/api/v1/partners/"+uuid.NewString(), nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, dto.ErrCodeInternal, body["code"])
	assert.Equal(t, dto.MessageInternal, body["message"])
	assert.NotContains(t, w.Body.String(), "connection reset")
	repo.AssertExpectations(t)
}
