package handler

import (
	partnerapp "github.com/erp/partners/internal/application/partner"
	"github.com/erp/partners/internal/domain/partner"
	"github.com/erp/partners/internal/infrastructure/legacytext"
	"github.com/erp/partners/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// ListAddresses godoc
// @ID           listPartnerAddresses
// @Summary      List the addresses of a partner
// @Tags         addresses
// @Produce      json
// @Param        id path string true "Partner ID" format(uuid)
// @Success      200 {object} AddressesEnvelope
// @Failure      404 {object} dto.ErrorResponse
// @Router       /partners/{id}/addresses [get]
func (h *PartnerHandler) ListAddresses(c *gin.Context) {
	id, ok := h.partnerID(c)
	if !ok {
		return
	}

	addresses, err := h.partnerService.ListAddresses(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, "Adressen geladen", "addresses", addresses)
}

// AddAddress godoc
// @ID           addPartnerAddress
// @Summary      Add an address
// @Description  Appends an address. Street and city are required; type and country fall back to "Hauptadresse" and "Deutschland".
// @Tags         addresses
// @Accept       json
// @Produce      json
// @Param        id      path string                    true "Partner ID" format(uuid)
// @Param        request body partnerapp.AddressRequest true "Address"
// @Success      201 {object} AddressesEnvelope
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Router       /partners/{id}/addresses [post]
func (h *PartnerHandler) AddAddress(c *gin.Context) {
	id, ok := h.partnerID(c)
	if !ok {
		return
	}

	var req partnerapp.AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	addresses, err := h.partnerService.AddAddress(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, "Adresse hinzugefügt", "addresses", addresses)
}

// UpdateAddress godoc
// @ID           updatePartnerAddress
// @Summary      Replace the address at an index
// @Tags         addresses
// @Accept       json
// @Produce      json
// @Param        id      path string                    true "Partner ID" format(uuid)
// @Param        index   path int                       true "Zero-based position"
// @Param        request body partnerapp.AddressRequest true "Address"
// @Success      200 {object} AddressesEnvelope
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Router       /partners/{id}/addresses/{index} [put]
func (h *PartnerHandler) UpdateAddress(c *gin.Context) {
	id, ok := h.partnerID(c)
	if !ok {
		return
	}
	index, ok := h.listIndex(c)
	if !ok {
		return
	}

	var req partnerapp.AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	addresses, err := h.partnerService.UpdateAddress(c.Request.Context(), id, index, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, "Adresse aktualisiert", "addresses", addresses)
}

// DeleteAddress godoc
// @ID           deletePartnerAddress
// @Summary      Remove the address at an index
// @Tags         addresses
// @Produce      json
// @Param        id    path string true "Partner ID" format(uuid)
// @Param        index path int    true "Zero-based position"
// @Success      200 {object} AddressesEnvelope
// @Failure      404 {object} dto.ErrorResponse
// @Router       /partners/{id}/addresses/{index} [delete]
func (h *PartnerHandler) DeleteAddress(c *gin.Context) {
	id, ok := h.partnerID(c)
	if !ok {
		return
	}
	index, ok := h.listIndex(c)
	if !ok {
		return
	}

	addresses, err := h.partnerService.DeleteAddress(c.Request.Context(), id, index)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, "Adresse gelöscht", "addresses", addresses)
}

// GetAddressesText godoc
// @ID           getPartnerAddressesText
// @Summary      Addresses in the legacy text format
// @Tags         addresses
// @Produce      json
// @Param        id path string true "Partner ID" format(uuid)
// @Success      200 {object} TextEnvelope
// @Failure      404 {object} dto.ErrorResponse
// @Router       /partners/{id}/addresses/legacy-text [get]
func (h *PartnerHandler) GetAddressesText(c *gin.Context) {
	id, ok := h.partnerID(c)
	if !ok {
		return
	}

	addresses, err := h.partnerService.ListAddresses(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	domain := make([]partner.Address, 0, len(addresses))
	for _, a := range addresses {
		domain = append(domain, a.ToDomain())
	}
	h.Success(c, "Adressen geladen", "text", legacytext.SerializeAddresses(domain))
}

// ReplaceAddressesText godoc
// @ID           replacePartnerAddressesText
// @Summary      Replace addresses from the legacy text format
// @Tags         addresses
// @Accept       json
// @Produce      json
// @Param        id      path string                true "Partner ID" format(uuid)
// @Param        request body dto.LegacyTextRequest true "Legacy text"
// @Success      200 {object} AddressesEnvelope
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Router       /partners/{id}/addresses/legacy-text [put]
func (h *PartnerHandler) ReplaceAddressesText(c *gin.Context) {
	id, ok := h.partnerID(c)
	if !ok {
		return
	}

	var req dto.LegacyTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	inputs := legacytext.AddressInputs(legacytext.DeserializeAddresses(req.Text))
	addresses, err := h.partnerService.ReplaceAddresses(c.Request.Context(), id, inputs)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, "Adressen ersetzt", "addresses", addresses)
}
