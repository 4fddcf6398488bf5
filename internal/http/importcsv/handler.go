package importcsv

import (
	"net/http"

	"github.com/studiodesk/studiodesk/internal/apperr"
	"github.com/studiodesk/studiodesk/internal/http/respond"
	"github.com/studiodesk/studiodesk/internal/importer"
	"github.com/studiodesk/studiodesk/internal/ledger"
)

const maxUploadBytes = 10 << 20

type Handler struct {
	importSvc *importer.Service
	ledgerSvc *ledger.Service
	debug     bool
}

func NewHandler(importSvc *importer.Service, ledgerSvc *ledger.Service, debug bool) *Handler {
	return &Handler{
		importSvc: importSvc,
		ledgerSvc: ledgerSvc,
		debug:     debug,
	}
}

type importedRecord struct {
	ID      string `json:"id"`
	Person  string `json:"person"`
	Studio  string `json:"studio"`
	Balance string `json:"balance"`
	Status  string `json:"status"`
}

type importResponse struct {
	Imported int              `json:"imported"`
	Records  []importedRecord `json:"records"`
}

// ImportSheet accepts a multipart billing-sheet upload and creates one ledger
// record per row, with the same coercion and derivation rules as the JSON API.
func (h *Handler) ImportSheet(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		respond.Error(w, apperr.Wrap(apperr.KindValidation, "failed to parse form", err), h.debug)
		return
	}

	source := importer.Source(r.FormValue("source"))
	if source == "" {
		source = importer.SourceSheet
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		respond.Error(w, apperr.Validation("file field is required", "file"), h.debug)
		return
	}
	defer file.Close()

	params, err := h.importSvc.Import(source, file)
	if err != nil {
		respond.Error(w, apperr.Wrap(apperr.KindValidation, "failed to parse sheet", err), h.debug)
		return
	}

	records := make([]importedRecord, 0, len(params))

	for _, p := range params {
		rec, err := h.ledgerSvc.Create(r.Context(), p)
		if err != nil {
			respond.Error(w, err, h.debug)
			return
		}

		records = append(records, importedRecord{
			ID:      rec.ID.String(),
			Person:  rec.Person,
			Studio:  rec.Studio,
			Balance: rec.Balance.String(),
			Status:  string(rec.Status),
		})
	}

	respond.JSON(w, http.StatusCreated, importResponse{
		Imported: len(records),
		Records:  records,
	})
}
