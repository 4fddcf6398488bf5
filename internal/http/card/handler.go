package card

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/studiodesk/studiodesk/internal/apperr"
	"github.com/studiodesk/studiodesk/internal/card"
	"github.com/studiodesk/studiodesk/internal/document"
	"github.com/studiodesk/studiodesk/internal/http/respond"
)

type Handler struct {
	svc      *card.Service
	renderer *document.Renderer
	debug    bool
}

func NewHandler(svc *card.Service, renderer *document.Renderer, debug bool) *Handler {
	return &Handler{svc: svc, renderer: renderer, debug: debug}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.resolve)
	r.Get("/{id}", h.get)
	r.Get("/{id}/document", h.document)
}

type issueRequest struct {
	CustomerIdentifier string          `json:"customerIdentifier"`
	TemplateType       string          `json:"templateType"`
	FormData           json.RawMessage `json:"formData"`
	DesignID           string          `json:"designId"`
	DesignColors       json.RawMessage `json:"designColors"`
	ShareableLink      string          `json:"shareableLink"`
	CreatedAt          *time.Time      `json:"createdAt,omitempty"`
}

type issueResponse struct {
	Success       bool      `json:"success"`
	CardID        uuid.UUID `json:"cardId"`
	ShareableLink string    `json:"shareableLink"`
	CustomerSlug  string    `json:"customerSlug"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req issueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, apperr.Wrap(apperr.KindValidation, "invalid request body", err), h.debug)
		return
	}

	params := card.IssueParams{
		CustomerIdentifier: req.CustomerIdentifier,
		TemplateType:       req.TemplateType,
		FormData:           normalizeJSON(req.FormData),
		DesignID:           req.DesignID,
		DesignColors:       normalizeJSON(req.DesignColors),
		ShareableLink:      req.ShareableLink,
	}

	if req.CreatedAt != nil {
		params.CreatedAt = *req.CreatedAt
	}

	c, err := h.svc.Issue(r.Context(), params)
	if err != nil {
		respond.Error(w, err, h.debug)
		return
	}

	respond.JSON(w, http.StatusCreated, issueResponse{
		Success:       true,
		CardID:        c.ID,
		ShareableLink: c.ShareableLink,
		CustomerSlug:  c.CustomerSlug,
	})
}

func (h *Handler) resolve(w http.ResponseWriter, r *http.Request) {
	c, err := h.svc.Resolve(r.Context(), r.URL.Query().Get("slug"))
	if err != nil {
		respond.Error(w, err, h.debug)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(c))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond.Error(w, apperr.InvalidArgument("invalid card id"), h.debug)
		return
	}

	c, err := h.svc.Get(r.Context(), id)
	if err != nil {
		respond.Error(w, err, h.debug)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(c))
}

func (h *Handler) document(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond.Error(w, apperr.InvalidArgument("invalid card id"), h.debug)
		return
	}

	c, err := h.svc.Get(r.Context(), id)
	if err != nil {
		respond.Error(w, err, h.debug)
		return
	}

	fields, err := document.FieldsFromJSON(c.FormData)
	if err != nil {
		respond.Error(w, apperr.Wrap(apperr.KindRender, "card form data is not renderable", err), h.debug)
		return
	}

	pdf, err := h.renderer.Render(fields, c.TemplateType)
	if err != nil {
		respond.Error(w, apperr.Wrap(apperr.KindRender, "failed to render document", err), h.debug)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=card-%s.pdf", c.ID))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdf)
}

// normalizeJSON treats a JSON null literal the same as an absent value.
func normalizeJSON(raw json.RawMessage) json.RawMessage {
	if len(raw) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return nil
	}

	return raw
}
