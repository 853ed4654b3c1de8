package testutil

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/erp/partners/internal/domain/shared"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type stubEvent struct {
	shared.BaseDomainEvent
}

func newStubEvent(eventType string) *stubEvent {
	return &stubEvent{shared.NewBaseDomainEvent(eventType, "TradingPartner", uuid.New())}
}

func TestRecordingEventHandler(t *testing.T) {
	h := NewRecordingEventHandler("A", "B")
	assert.Equal(t, []string{"A", "B"}, h.EventTypes())

	assert.NoError(t, h.Handle(context.Background(), newStubEvent("A")))
	assert.NoError(t, h.Handle(context.Background(), newStubEvent("B")))
	assert.Equal(t, []string{"A", "B"}, h.Types())

	h.SetError(errors.New("boom"))
	assert.Error(t, h.Handle(context.Background(), newStubEvent("A")))

	h.Reset()
	assert.Empty(t, h.Types())
}

func TestDoJSON(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.POST("/echo", func(c *gin.Context) {
		var body map[string]any
		_ = c.ShouldBindJSON(&body)
		body["header"] = c.GetHeader("X-Test")
		c.JSON(http.StatusCreated, body)
	})

	w := DoJSON(t, engine, http.MethodPost, "/echo", map[string]any{"name": "Acme"}, map[string]string{"X-Test": "1"})

	RequireStatus(t, w, http.StatusCreated)
	body := DecodeJSON[map[string]any](t, w)
	assert.Equal(t, "Acme", body["name"])
	assert.Equal(t, "1", body["header"])
}
