package handler

import (
	partnerapp "github.com/erp/partners/internal/application/partner"
	"github.com/erp/partners/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

const (
	defaultPage     = 1
	defaultPageSize = 20
)

// PartnerHandler handles trading partner API endpoints
type PartnerHandler struct {
	BaseHandler
	partnerService *partnerapp.PartnerService
}

// NewPartnerHandler creates a new PartnerHandler
func NewPartnerHandler(partnerService *partnerapp.PartnerService) *PartnerHandler {
	return &PartnerHandler{
		partnerService: partnerService,
	}
}

// List godoc
// @ID           listPartners
// @Summary      List trading partners
// @Description  Lists partners ordered by last modification. Unknown type or status values are ignored.
// @Tags         partners
// @Produce      json
// @Param        type      query string false "Partner type" Enums(SUPPLIER, CUSTOMER, PARTNER)
// @Param        status    query string false "Partner status" Enums(ACTIVE, PENDING_APPROVAL, INACTIVE, SUSPENDED)
// @Param        search    query string false "Search in name, tax id and description"
// @Param        page      query int    false "Page number" default(1)
// @Param        page_size query int    false "Page size" default(20)
// @Success      200 {object} PartnerListEnvelope
// @Failure      400 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /partners [get]
func (h *PartnerHandler) List(c *gin.Context) {
	var filter partnerapp.PartnerListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindingError(c, err)
		return
	}
	if filter.Page <= 0 {
		filter.Page = defaultPage
	}
	if filter.PageSize <= 0 {
		filter.PageSize = defaultPageSize
	}

	partners, total, err := h.partnerService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWith(c, dto.NewSuccessResponse("Handelspartner geladen").
		With("partners", partners).
		With("pagination", dto.NewPagination(total, filter.Page, filter.PageSize)))
}

// Create godoc
// @ID           createPartner
// @Summary      Create a trading partner
// @Description  Creates a partner. Status defaults to ACTIVE and payment terms to "30 Tage".
// @Tags         partners
// @Accept       json
// @Produce      json
// @Param        request body partnerapp.CreatePartnerRequest true "Partner"
// @Success      201 {object} PartnerEnvelope
// @Failure      400 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /partners [post]
func (h *PartnerHandler) Create(c *gin.Context) {
	var req partnerapp.CreatePartnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	p, err := h.partnerService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, "Handelspartner erstellt", "partner", p)
}

// GetByID godoc
// @ID           getPartner
// @Summary      Get a trading partner
// @Tags         partners
// @Produce      json
// @Param        id path string true "Partner ID" format(uuid)
// @Success      200 {object} PartnerEnvelope
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Router       /partners/{id} [get]
func (h *PartnerHandler) GetByID(c *gin.Context) {
	id, ok := h.partnerID(c)
	if !ok {
		return
	}

	p, err := h.partnerService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, "Handelspartner geladen", "partner", p)
}

// Update godoc
// @ID           updatePartner
// @Summary      Update a trading partner
// @Description  Applies the fields present in the body and leaves the rest untouched
// @Tags         partners
// @Accept       json
// @Produce      json
// @Param        id      path string                          true "Partner ID" format(uuid)
// @Param        request body partnerapp.UpdatePartnerRequest true "Fields to change"
// @Success      200 {object} PartnerEnvelope
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      409 {object} dto.ErrorResponse
// @Router       /partners/{id} [put]
func (h *PartnerHandler) Update(c *gin.Context) {
	id, ok := h.partnerID(c)
	if !ok {
		return
	}

	var req partnerapp.UpdatePartnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	p, err := h.partnerService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, "Handelspartner aktualisiert", "partner", p)
}

// Delete godoc
// @ID           deletePartner
// @Summary      Delete a trading partner
// @Description  Removes the partner with its contacts, addresses and entries. Deleting an unknown id succeeds.
// @Tags         partners
// @Produce      json
// @Param        id path string true "Partner ID" format(uuid)
// @Success      200 {object} MessageEnvelope
// @Failure      400 {object} dto.ErrorResponse
// @Router       /partners/{id} [delete]
func (h *PartnerHandler) Delete(c *gin.Context) {
	id, ok := h.partnerID(c)
	if !ok {
		return
	}

	if err := h.partnerService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, "Handelspartner gelöscht", "", nil)
}
