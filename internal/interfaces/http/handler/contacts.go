package handler

import (
	partnerapp "github.com/erp/partners/internal/application/partner"
	"github.com/erp/partners/internal/domain/partner"
	"github.com/erp/partners/internal/infrastructure/legacytext"
	"github.com/erp/partners/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// ListContacts godoc
// @ID           listPartnerContacts
// @Summary      List the contacts of a partner
// @Tags         contacts
// @Produce      json
// @Param        id path string true "Partner ID" format(uuid)
// @Success      200 {object} ContactsEnvelope
// @Failure      404 {object} dto.ErrorResponse
// @Router       /partners/{id}/contacts [get]
func (h *PartnerHandler) ListContacts(c *gin.Context) {
	id, ok := h.partnerID(c)
	if !ok {
		return
	}

	contacts, err := h.partnerService.ListContacts(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, "Kontakte geladen", "contacts", contacts)
}

// AddContact godoc
// @ID           addPartnerContact
// @Summary      Add a contact
// @Description  Appends a contact. At least one of name, email or phone is required.
// @Tags         contacts
// @Accept       json
// @Produce      json
// @Param        id      path string                    true "Partner ID" format(uuid)
// @Param        request body partnerapp.ContactRequest true "Contact"
// @Success      201 {object} ContactsEnvelope
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Router       /partners/{id}/contacts [post]
func (h *PartnerHandler) AddContact(c *gin.Context) {
	id, ok := h.partnerID(c)
	if !ok {
		return
	}

	var req partnerapp.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	contacts, err := h.partnerService.AddContact(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, "Kontakt hinzugefügt", "contacts", contacts)
}

// UpdateContact godoc
// @ID           updatePartnerContact
// @Summary      Replace the contact at an index
// @Tags         contacts
// @Accept       json
// @Produce      json
// @Param        id      path string                    true "Partner ID" format(uuid)
// @Param        index   path int                       true "Zero-based position"
// @Param        request body partnerapp.ContactRequest true "Contact"
// @Success      200 {object} ContactsEnvelope
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Router       /partners/{id}/contacts/{index} [put]
func (h *PartnerHandler) UpdateContact(c *gin.Context) {
	id, ok := h.partnerID(c)
	if !ok {
		return
	}
	index, ok := h.listIndex(c)
	if !ok {
		return
	}

	var req partnerapp.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	contacts, err := h.partnerService.UpdateContact(c.Request.Context(), id, index, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, "Kontakt aktualisiert", "contacts", contacts)
}

// DeleteContact godoc
// @ID           deletePartnerContact
// @Summary      Remove the contact at an index
// @Tags         contacts
// @Produce      json
// @Param        id    path string true "Partner ID" format(uuid)
// @Param        index path int    true "Zero-based position"
// @Success      200 {object} ContactsEnvelope
// @Failure      404 {object} dto.ErrorResponse
// @Router       /partners/{id}/contacts/{index} [delete]
func (h *PartnerHandler) DeleteContact(c *gin.Context) {
	id, ok := h.partnerID(c)
	if !ok {
		return
	}
	index, ok := h.listIndex(c)
	if !ok {
		return
	}

	contacts, err := h.partnerService.DeleteContact(c.Request.Context(), id, index)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, "Kontakt gelöscht", "contacts", contacts)
}

// GetContactsText godoc
// @ID           getPartnerContactsText
// @Summary      Contacts in the legacy text format
// @Tags         contacts
// @Produce      json
// @Param        id path string true "Partner ID" format(uuid)
// @Success      200 {object} TextEnvelope
// @Failure      404 {object} dto.ErrorResponse
// @Router       /partners/{id}/contacts/legacy-text [get]
func (h *PartnerHandler) GetContactsText(c *gin.Context) {
	id, ok := h.partnerID(c)
	if !ok {
		return
	}

	contacts, err := h.partnerService.ListContacts(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	domain := make([]partner.Contact, 0, len(contacts))
	for _, ct := range contacts {
		domain = append(domain, ct.ToDomain())
	}
	h.Success(c, "Kontakte geladen", "text", legacytext.SerializeContacts(domain))
}

// ReplaceContactsText godoc
// @ID           replacePartnerContactsText
// @Summary      Replace contacts from the legacy text format
// @Description  Parses blank-line separated blocks and replaces the whole contact list. Blocks without name, email or phone are dropped.
// @Tags         contacts
// @Accept       json
// @Produce      json
// @Param        id      path string                true "Partner ID" format(uuid)
// @Param        request body dto.LegacyTextRequest true "Legacy text"
// @Success      200 {object} ContactsEnvelope
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Router       /partners/{id}/contacts/legacy-text [put]
func (h *PartnerHandler) ReplaceContactsText(c *gin.Context) {
	id, ok := h.partnerID(c)
	if !ok {
		return
	}

	var req dto.LegacyTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	inputs := legacytext.ContactInputs(legacytext.DeserializeContacts(req.Text))
	contacts, err := h.partnerService.ReplaceContacts(c.Request.Context(), id, inputs)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, "Kontakte ersetzt", "contacts", contacts)
}
