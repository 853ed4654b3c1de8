package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(engine *gin.Engine, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(method, path, nil))
	return w
}

func TestNewRouter(t *testing.T) {
	r := NewRouter(gin.New())
	assert.Equal(t, "v1", r.apiVersion)
	assert.Empty(t, r.registrars)

	r = NewRouter(gin.New(), WithAPIVersion("v2"))
	assert.Equal(t, "v2", r.apiVersion)
}

func TestRouterSetup(t *testing.T) {
	engine := gin.New()

	ping := NewDomainGroup("ping", "/ping")
	ping.GET("", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	other := NewDomainGroup("other", "/other")
	other.GET("/x", func(c *gin.Context) { c.String(http.StatusOK, "x") })

	NewRouter(engine, WithAPIVersion("v3")).Register(ping).Register(other).Setup()

	w := serve(engine, http.MethodGet, "/api/v3/ping")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pong", w.Body.String())
	assert.Equal(t, http.StatusOK, serve(engine, http.MethodGet, "/api/v3/other/x").Code)
	assert.Equal(t, http.StatusNotFound, serve(engine, http.MethodGet, "/api/v1/ping").Code)
}

func TestDomainGroup(t *testing.T) {
	t.Run("name and prefix", func(t *testing.T) {
		g := NewDomainGroup("partners", "/partners")
		assert.Equal(t, "partners", g.Name())
		assert.Equal(t, "/partners", g.Prefix())
	})

	t.Run("registers every method", func(t *testing.T) {
		engine := gin.New()
		ok := func(c *gin.Context) { c.String(http.StatusOK, c.Request.Method) }
		g := NewDomainGroup("items", "/items")
		g.GET("", ok).POST("", ok).PUT("/:id", ok).PATCH("/:id", ok).DELETE("/:id", ok)
		g.RegisterRoutes(engine.Group("/api/v1"))

		for _, tc := range []struct{ method, path string }{
			{http.MethodGet, "/api/v1/items"},
			{http.MethodPost, "/api/v1/items"},
			{http.MethodPut, "/api/v1/items/1"},
			{http.MethodPatch, "/api/v1/items/1"},
			{http.MethodDelete, "/api/v1/items/1"},
		} {
			w := serve(engine, tc.method, tc.path)
			assert.Equal(t, http.StatusOK, w.Code, "%s %s", tc.method, tc.path)
			assert.Equal(t, tc.method, w.Body.String())
		}
	})

	t.Run("middleware and subgroups", func(t *testing.T) {
		engine := gin.New()
		g := NewDomainGroup("partners", "/partners")
		g.Use(func(c *gin.Context) {
			c.Header("X-Group", "partners")
			c.Next()
		})
		g.Group("ledger", "/ledger").GET("", func(c *gin.Context) { c.String(http.StatusOK, "ledger") })
		g.RegisterRoutes(engine.Group("/api/v1"))

		w := serve(engine, http.MethodGet, "/api/v1/partners/ledger")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "ledger", w.Body.String())
		assert.Equal(t, "partners", w.Header().Get("X-Group"))
	})
}
