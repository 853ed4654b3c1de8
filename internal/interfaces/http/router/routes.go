package router

import (
	"github.com/erp/partners/internal/interfaces/http/handler"
	"github.com/gin-gonic/gin"
)

// PartnerRoutes builds the /partners API group. idempotency guards entry
// creation and may be nil.
func PartnerRoutes(h *handler.PartnerHandler, idempotency gin.HandlerFunc) *DomainGroup {
	partners := NewDomainGroup("partners", "/partners")
	partners.
		GET("", h.List).
		POST("", h.Create).
		GET("/:id", h.GetByID).
		PUT("/:id", h.Update).
		DELETE("/:id", h.Delete)

	addEntry := []gin.HandlerFunc{h.AddTransaction}
	if idempotency != nil {
		addEntry = append([]gin.HandlerFunc{idempotency}, addEntry...)
	}
	partners.
		GET("/:id/transactions", h.GetTransactions).
		POST("/:id/transactions", addEntry...).
		PATCH("/:id/transactions/:entryId/status", h.UpdateTransactionStatus).
		GET("/:id/balance", h.GetBalance)

	partners.
		GET("/:id/contacts", h.ListContacts).
		POST("/:id/contacts", h.AddContact).
		GET("/:id/contacts/legacy-text", h.GetContactsText).
		PUT("/:id/contacts/legacy-text", h.ReplaceContactsText).
		PUT("/:id/contacts/:index", h.UpdateContact).
		DELETE("/:id/contacts/:index", h.DeleteContact)

	partners.
		GET("/:id/addresses", h.ListAddresses).
		POST("/:id/addresses", h.AddAddress).
		GET("/:id/addresses/legacy-text", h.GetAddressesText).
		PUT("/:id/addresses/legacy-text", h.ReplaceAddressesText).
		PUT("/:id/addresses/:index", h.UpdateAddress).
		DELETE("/:id/addresses/:index", h.DeleteAddress)

	return partners
}

// RegisterPages mounts the HTML pages and fragments at the root
func RegisterPages(engine *gin.Engine, h *handler.PageHandler) {
	engine.GET("/", h.Index)
	engine.GET("/partners", h.Partners)
	engine.POST("/partners", h.SubmitCreate)
	engine.GET("/partners/new", h.NewForm)
	engine.GET("/partners/:id", h.Detail)
	engine.POST("/partners/:id", h.SubmitUpdate)
	engine.GET("/partners/:id/edit", h.EditForm)
	engine.POST("/partners/:id/delete", h.SubmitDelete)
	engine.POST("/partners/:id/financial", h.SubmitEntry)
	engine.POST("/partners/:id/financial/:entryId/status", h.SubmitEntryStatus)

	fragments := engine.Group("/fragments")
	fragments.GET("/partner-list", h.PartnerListFragment)
	fragments.GET("/partner/:id", h.DetailFragment)
}

// RegisterHealth mounts the probes
func RegisterHealth(engine *gin.Engine, h *handler.HealthHandler) {
	engine.GET("/health", h.Health)
	engine.GET("/health/ready", h.Ready)
}
