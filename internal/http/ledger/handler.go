package ledger

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/studiodesk/studiodesk/internal/apperr"
	"github.com/studiodesk/studiodesk/internal/http/respond"
	"github.com/studiodesk/studiodesk/internal/ledger"
)

type Handler struct {
	svc   *ledger.Service
	debug bool
}

func NewHandler(svc *ledger.Service, debug bool) *Handler {
	return &Handler{svc: svc, debug: debug}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Put("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

// recordRequest accepts partial records. Amounts are typed any on purpose:
// callers send numbers, numeric strings, or garbage, and anything non-numeric
// coerces to 0 downstream.
type recordRequest struct {
	Studio   string `json:"studio"`
	Person   string `json:"person"`
	Phone    string `json:"phone"`
	Date     string `json:"date"`
	Camera   string `json:"camera"`
	Location string `json:"location"`
	Advance  any    `json:"advance"`
	Total    any    `json:"total"`
}

func (r recordRequest) toParams() ledger.CreateParams {
	return ledger.CreateParams{
		Studio:    r.Studio,
		Person:    r.Person,
		Phone:     r.Phone,
		ShootDate: r.Date,
		Camera:    r.Camera,
		Location:  r.Location,
		Advance:   r.Advance,
		Total:     r.Total,
	}
}

// decode uses UseNumber so amounts survive as json.Number instead of lossy
// floats.
func decode(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()

	return dec.Decode(v)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	recs, err := h.svc.List(r.Context())
	if err != nil {
		respond.Error(w, err, h.debug)
		return
	}

	respond.JSON(w, http.StatusOK, toResponseList(recs))
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req recordRequest
	if err := decode(r, &req); err != nil {
		respond.Error(w, apperr.Wrap(apperr.KindValidation, "invalid request body", err), h.debug)
		return
	}

	rec, err := h.svc.Create(r.Context(), req.toParams())
	if err != nil {
		respond.Error(w, err, h.debug)
		return
	}

	respond.JSON(w, http.StatusCreated, toResponse(rec))
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond.Error(w, apperr.InvalidArgument("invalid ledger record id"), h.debug)
		return
	}

	var req recordRequest
	if err := decode(r, &req); err != nil {
		respond.Error(w, apperr.Wrap(apperr.KindValidation, "invalid request body", err), h.debug)
		return
	}

	if _, err := h.svc.Update(r.Context(), id, req.toParams()); err != nil {
		respond.Error(w, err, h.debug)
		return
	}

	respond.Success(w)
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond.Error(w, apperr.InvalidArgument("invalid ledger record id"), h.debug)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		respond.Error(w, err, h.debug)
		return
	}

	respond.Success(w)
}
