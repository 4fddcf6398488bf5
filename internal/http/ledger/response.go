package ledger

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/studiodesk/studiodesk/internal/ledger"
)

// recordResponse mirrors the record with amounts emitted as JSON numbers.
type recordResponse struct {
	ID        uuid.UUID     `json:"id"`
	Studio    string        `json:"studio"`
	Person    string        `json:"person"`
	Phone     string        `json:"phone"`
	Date      string        `json:"date"`
	Camera    string        `json:"camera"`
	Location  string        `json:"location"`
	Advance   json.Number   `json:"advance"`
	Total     json.Number   `json:"total"`
	Balance   json.Number   `json:"balance"`
	Status    ledger.Status `json:"status"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

func amount(d decimal.Decimal) json.Number {
	return json.Number(d.String())
}

func toResponse(rec *ledger.Record) recordResponse {
	return recordResponse{
		ID:        rec.ID,
		Studio:    rec.Studio,
		Person:    rec.Person,
		Phone:     rec.Phone,
		Date:      rec.ShootDate,
		Camera:    rec.Camera,
		Location:  rec.Location,
		Advance:   amount(rec.Advance),
		Total:     amount(rec.Total),
		Balance:   amount(rec.Balance),
		Status:    rec.Status,
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
	}
}

func toResponseList(recs []*ledger.Record) []recordResponse {
	resp := make([]recordResponse, len(recs))
	for i, rec := range recs {
		resp[i] = toResponse(rec)
	}

	return resp
}
