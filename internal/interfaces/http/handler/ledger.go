package handler

import (
	"net/http"

	partnerapp "github.com/erp/partners/internal/application/partner"
	"github.com/erp/partners/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// GetTransactions godoc
// @ID           getPartnerTransactions
// @Summary      Get the ledger of a partner
// @Description  Returns the ledger overview, all transactions newest first and the partner summary
// @Tags         ledger
// @Produce      json
// @Param        id path string true "Partner ID" format(uuid)
// @Success      200 {object} LedgerEnvelope
// @Failure      404 {object} dto.ErrorResponse
// @Router       /partners/{id}/transactions [get]
func (h *PartnerHandler) GetTransactions(c *gin.Context) {
	id, ok := h.partnerID(c)
	if !ok {
		return
	}

	ledger, err := h.partnerService.GetLedger(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWith(c, dto.NewSuccessResponse("Transaktionen geladen").
		With("partner", ledger.Partner).
		With("financialOverview", ledger.FinancialOverview).
		With("transactions", ledger.Transactions))
}

// GetBalance godoc
// @ID           getPartnerBalance
// @Summary      Get the balance of a partner
// @Tags         ledger
// @Produce      json
// @Param        id path string true "Partner ID" format(uuid)
// @Success      200 {object} BalanceEnvelope
// @Failure      404 {object} dto.ErrorResponse
// @Router       /partners/{id}/balance [get]
func (h *PartnerHandler) GetBalance(c *gin.Context) {
	id, ok := h.partnerID(c)
	if !ok {
		return
	}

	balance, err := h.partnerService.GetBalance(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, "Saldo geladen", "balance", balance)
}

// AddTransaction godoc
// @ID           addPartnerTransaction
// @Summary      Book a claim or payable
// @Description  Adds a ledger entry. The amount must be greater than zero. A repeated Idempotency-Key is rejected with 409.
// @Tags         ledger
// @Accept       json
// @Produce      json
// @Param        id              path   string                     true  "Partner ID" format(uuid)
// @Param        Idempotency-Key header string                     false "Client key for safe retries"
// @Param        request         body   partnerapp.AddEntryRequest true  "Entry"
// @Success      201 {object} LedgerEnvelope
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      409 {object} dto.ErrorResponse
// @Router       /partners/{id}/transactions [post]
func (h *PartnerHandler) AddTransaction(c *gin.Context) {
	id, ok := h.partnerID(c)
	if !ok {
		return
	}

	var req partnerapp.AddEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}
	if req.Amount == nil || !req.Amount.IsPositive() {
		h.InvalidInput(c, "Betrag muss größer als 0 sein.")
		return
	}

	ledger, err := h.partnerService.AddEntry(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ledgerResponse("Transaktion hinzugefügt", ledger))
}

// UpdateTransactionStatus godoc
// @ID           updatePartnerTransactionStatus
// @Summary      Settle or reopen a ledger entry
// @Tags         ledger
// @Accept       json
// @Produce      json
// @Param        id      path string                              true "Partner ID" format(uuid)
// @Param        entryId path string                              true "Entry ID" format(uuid)
// @Param        request body partnerapp.UpdateEntryStatusRequest true "New status"
// @Success      200 {object} LedgerEnvelope
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      409 {object} dto.ErrorResponse
// @Router       /partners/{id}/transactions/{entryId}/status [patch]
func (h *PartnerHandler) UpdateTransactionStatus(c *gin.Context) {
	id, ok := h.partnerID(c)
	if !ok {
		return
	}
	entryID, ok := h.uuidParam(c, "entryId", "Ungültige Transaktions-ID")
	if !ok {
		return
	}

	var req partnerapp.UpdateEntryStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	ledger, err := h.partnerService.UpdateEntryStatus(c.Request.Context(), id, entryID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ledgerResponse("Status aktualisiert", ledger))
}

func ledgerResponse(message string, ledger *partnerapp.LedgerResponse) dto.Response {
	return dto.NewSuccessResponse(message).
		With("financialOverview", ledger.FinancialOverview).
		With("transactions", ledger.Transactions)
}
