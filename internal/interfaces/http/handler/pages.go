package handler

import (
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"strings"

	partnerapp "github.com/erp/partners/internal/application/partner"
	"github.com/erp/partners/internal/domain/partner"
	"github.com/erp/partners/internal/domain/shared"
	"github.com/erp/partners/internal/domain/shared/valueobject"
	"github.com/erp/partners/internal/infrastructure/logger"
	"github.com/erp/partners/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:embed templates/*.html
var templateFS embed.FS

// ParseTemplates parses the embedded page and fragment templates
func ParseTemplates() (*template.Template, error) {
	return template.ParseFS(templateFS, "templates/*.html")
}

// PageHandler renders the HTML pages and fragments
type PageHandler struct {
	BaseHandler
	partnerService *partnerapp.PartnerService
	templates      *template.Template
}

// NewPageHandler creates a new PageHandler
func NewPageHandler(partnerService *partnerapp.PartnerService) (*PageHandler, error) {
	tmpl, err := ParseTemplates()
	if err != nil {
		return nil, fmt.Errorf("failed to parse page templates: %w", err)
	}
	return &PageHandler{
		partnerService: partnerService,
		templates:      tmpl,
	}, nil
}

// option is one entry of a select element
type option struct {
	Value    string
	Label    string
	Selected bool
}

func typeOptions(selected string) []option {
	types := partner.AllPartnerTypes()
	opts := make([]option, len(types))
	for i, t := range types {
		opts[i] = option{Value: string(t), Label: t.Label(), Selected: string(t) == selected}
	}
	return opts
}

func statusOptions(selected string) []option {
	statuses := partner.AllPartnerStatuses()
	opts := make([]option, len(statuses))
	for i, s := range statuses {
		opts[i] = option{Value: string(s), Label: s.Label(), Selected: string(s) == selected}
	}
	return opts
}

func entryKindOptions() []option {
	return []option{
		{Value: string(partner.EntryKindClaim), Label: partner.EntryKindClaim.Label(), Selected: true},
		{Value: string(partner.EntryKindPayable), Label: partner.EntryKindPayable.Label()},
	}
}

func entryStatusOptions() []option {
	return []option{
		{Value: string(partner.EntryStatusOpen), Label: partner.EntryStatusOpen.Label()},
		{Value: string(partner.EntryStatusSettled), Label: partner.EntryStatusSettled.Label()},
	}
}

type listPage struct {
	Title    string
	Search   string
	Types    []option
	Statuses []option
	Partners []partnerapp.PartnerListResponse
	Total    int64
}

type detailPage struct {
	Title         string
	Partner       *partnerapp.PartnerResponse
	Ledger        *partnerapp.LedgerResponse
	EntryKinds    []option
	EntryStatuses []option
}

// partnerForm holds the values shown in the create and edit form
type partnerForm struct {
	Name              string
	TaxID             string
	PaymentTerms      string
	About             string
	CorporateImageURL string
}

type formPage struct {
	Title    string
	IsNew    bool
	Action   string
	Form     partnerForm
	Types    []option
	Statuses []option
	Error    string
}

// Index renders the start page with all partners
func (h *PageHandler) Index(c *gin.Context) {
	h.renderList(c, "index", "Übersicht")
}

// Partners renders the overview honoring the type, status and search filters
func (h *PageHandler) Partners(c *gin.Context) {
	h.renderList(c, "index", "Handelspartner")
}

// PartnerListFragment renders only the filtered partner table
func (h *PageHandler) PartnerListFragment(c *gin.Context) {
	h.renderList(c, "partner-list", "")
}

func (h *PageHandler) renderList(c *gin.Context, name, title string) {
	filter := partnerapp.PartnerListFilter{
		Search:   c.Query("search"),
		Type:     c.Query("type"),
		Status:   c.Query("status"),
		Page:     1,
		PageSize: 100,
	}
	partners, total, err := h.partnerService.List(c.Request.Context(), filter)
	if err != nil {
		h.renderError(c, err)
		return
	}

	h.render(c, http.StatusOK, name, listPage{
		Title:    title,
		Search:   filter.Search,
		Types:    typeOptions(filter.Type),
		Statuses: statusOptions(filter.Status),
		Partners: partners,
		Total:    total,
	})
}

// Detail renders the partner page with its ledger
func (h *PageHandler) Detail(c *gin.Context) {
	h.renderDetail(c, "detail-page")
}

// DetailFragment renders the partner section without the page frame
func (h *PageHandler) DetailFragment(c *gin.Context) {
	h.renderDetail(c, "partner-detail")
}

func (h *PageHandler) renderDetail(c *gin.Context, name string) {
	id, ok := h.pageID(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	p, err := h.partnerService.GetByID(ctx, id)
	if err != nil {
		h.renderError(c, err)
		return
	}
	ledger, err := h.partnerService.GetLedger(ctx, id)
	if err != nil {
		h.renderError(c, err)
		return
	}

	h.render(c, http.StatusOK, name, detailPage{
		Title:         p.Name,
		Partner:       p,
		Ledger:        ledger,
		EntryKinds:    entryKindOptions(),
		EntryStatuses: entryStatusOptions(),
	})
}

// NewForm renders the empty create form
func (h *PageHandler) NewForm(c *gin.Context) {
	h.render(c, http.StatusOK, "form-page", formPage{
		Title:  "Neuer Partner",
		IsNew:  true,
		Action: "/partners",
		Form:   partnerForm{PaymentTerms: partner.DefaultPaymentTerms},
		Types:  typeOptions(string(partner.PartnerTypeCustomer)),
	})
}

// EditForm renders the edit form filled with the stored values
func (h *PageHandler) EditForm(c *gin.Context) {
	id, ok := h.pageID(c)
	if !ok {
		return
	}

	p, err := h.partnerService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.renderError(c, err)
		return
	}

	h.render(c, http.StatusOK, "form-page", formPage{
		Title:  p.Name,
		Action: "/partners/" + p.ID.String(),
		Form: partnerForm{
			Name:              p.Name,
			TaxID:             p.TaxID,
			PaymentTerms:      p.PaymentTerms,
			About:             p.About,
			CorporateImageURL: p.CorporateImageURL,
		},
		Types:    typeOptions(p.Type),
		Statuses: statusOptions(p.Status),
	})
}

// SubmitCreate creates a partner from the form and redirects to it
func (h *PageHandler) SubmitCreate(c *gin.Context) {
	form := partnerForm{
		Name:              c.PostForm("name"),
		TaxID:             c.PostForm("taxId"),
		PaymentTerms:      c.PostForm("paymentTerms"),
		About:             c.PostForm("about"),
		CorporateImageURL: c.PostForm("corporateImageUrl"),
	}
	partnerType := c.PostForm("type")

	p, err := h.partnerService.Create(c.Request.Context(), partnerapp.CreatePartnerRequest{
		Name:              form.Name,
		Type:              partnerType,
		TaxID:             form.TaxID,
		PaymentTerms:      form.PaymentTerms,
		About:             form.About,
		CorporateImageURL: form.CorporateImageURL,
	})
	if err != nil {
		if msg, ok := invalidInputMessage(err); ok {
			h.render(c, http.StatusBadRequest, "form-page", formPage{
				Title:  "Neuer Partner",
				IsNew:  true,
				Action: "/partners",
				Form:   form,
				Types:  typeOptions(partnerType),
				Error:  msg,
			})
			return
		}
		h.renderError(c, err)
		return
	}

	c.Redirect(http.StatusSeeOther, "/partners/"+p.ID.String())
}

// SubmitUpdate applies the posted form fields to a partner
func (h *PageHandler) SubmitUpdate(c *gin.Context) {
	id, ok := h.pageID(c)
	if !ok {
		return
	}

	var req partnerapp.UpdatePartnerRequest
	req.Name = postedField(c, "name")
	req.Type = postedField(c, "type")
	req.Status = postedField(c, "status")
	req.TaxID = postedField(c, "taxId")
	req.PaymentTerms = postedField(c, "paymentTerms")
	req.About = postedField(c, "about")
	req.CorporateImageURL = postedField(c, "corporateImageUrl")

	if _, err := h.partnerService.Update(c.Request.Context(), id, req); err != nil {
		if msg, ok := invalidInputMessage(err); ok {
			h.render(c, http.StatusBadRequest, "form-page", formPage{
				Title:  c.PostForm("name"),
				Action: "/partners/" + id.String(),
				Form: partnerForm{
					Name:              c.PostForm("name"),
					TaxID:             c.PostForm("taxId"),
					PaymentTerms:      c.PostForm("paymentTerms"),
					About:             c.PostForm("about"),
					CorporateImageURL: c.PostForm("corporateImageUrl"),
				},
				Types:    typeOptions(c.PostForm("type")),
				Statuses: statusOptions(c.PostForm("status")),
				Error:    msg,
			})
			return
		}
		h.renderError(c, err)
		return
	}

	c.Redirect(http.StatusSeeOther, "/partners/"+id.String())
}

// SubmitDelete removes a partner and returns to the overview
func (h *PageHandler) SubmitDelete(c *gin.Context) {
	id, ok := h.pageID(c)
	if !ok {
		return
	}
	if err := h.partnerService.Delete(c.Request.Context(), id); err != nil {
		h.renderError(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}

// SubmitEntry books a ledger entry from the detail page form. Amounts
// accept a decimal comma.
func (h *PageHandler) SubmitEntry(c *gin.Context) {
	id, ok := h.pageID(c)
	if !ok {
		return
	}

	amount, err := valueobject.NewAmountFromString(strings.ReplaceAll(strings.TrimSpace(c.PostForm("amount")), ",", "."))
	if err != nil || !amount.IsPositive() {
		h.renderPlainError(c, http.StatusBadRequest, "Betrag muss größer als 0 sein.")
		return
	}

	_, err = h.partnerService.AddEntry(c.Request.Context(), id, partnerapp.AddEntryRequest{
		Type:      c.PostForm("type"),
		Amount:    &amount,
		Status:    c.PostForm("status"),
		Purpose:   c.PostForm("purpose"),
		Reference: c.PostForm("reference"),
		Date:      c.PostForm("date"),
	})
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.Redirect(http.StatusSeeOther, "/partners/"+id.String())
}

// SubmitEntryStatus settles or reopens an entry from the detail page
func (h *PageHandler) SubmitEntryStatus(c *gin.Context) {
	id, ok := h.pageID(c)
	if !ok {
		return
	}
	entryID, err := uuid.Parse(c.Param("entryId"))
	if err != nil {
		h.renderPlainError(c, http.StatusBadRequest, "Ungültige Transaktions-ID")
		return
	}

	_, err = h.partnerService.UpdateEntryStatus(c.Request.Context(), id, entryID, partnerapp.UpdateEntryStatusRequest{
		Status: c.PostForm("status"),
	})
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.Redirect(http.StatusSeeOther, "/partners/"+id.String())
}

func (h *PageHandler) pageID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.renderPlainError(c, http.StatusBadRequest, "Ungültige Partner-ID")
		return uuid.Nil, false
	}
	return id, true
}

func (h *PageHandler) render(c *gin.Context, status int, name string, data any) {
	c.Render(status, render.HTML{Template: h.templates, Name: name, Data: data})
}

// renderError maps an error the same way the JSON API does, as plain text
func (h *PageHandler) renderError(c *gin.Context, err error) {
	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		code := dto.NormalizeErrorCode(domainErr.Code)
		h.renderPlainError(c, dto.GetHTTPStatus(code), domainErr.Message)
		return
	}

	_ = c.Error(err)
	logger.GetGinLogger(c).Error("Unexpected error", zap.Error(err))
	h.renderPlainError(c, http.StatusInternalServerError, "Ein unerwarteter Fehler ist aufgetreten.")
}

func (h *PageHandler) renderPlainError(c *gin.Context, status int, message string) {
	c.String(status, message)
}

// postedField returns the form value when the field was submitted
func postedField(c *gin.Context, name string) *string {
	if v, ok := c.GetPostForm(name); ok {
		return &v
	}
	return nil
}

func invalidInputMessage(err error) (string, bool) {
	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) && domainErr.Code == shared.CodeInvalidInput {
		return domainErr.Message, true
	}
	return "", false
}
