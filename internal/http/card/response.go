package card

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/studiodesk/studiodesk/internal/card"
)

type cardResponse struct {
	ID                 uuid.UUID       `json:"id"`
	CustomerIdentifier string          `json:"customerIdentifier"`
	TemplateType       string          `json:"templateType"`
	FormData           json.RawMessage `json:"formData"`
	DesignID           string          `json:"designId"`
	DesignColors       json.RawMessage `json:"designColors,omitempty"`
	ShareableLink      string          `json:"shareableLink"`
	CustomerSlug       string          `json:"customerSlug"`
	ImageURL           *string         `json:"imageUrl,omitempty"`
	Status             card.Status     `json:"status"`
	CreatedAt          time.Time       `json:"createdAt"`
}

func toResponse(c *card.Card) cardResponse {
	return cardResponse{
		ID:                 c.ID,
		CustomerIdentifier: c.CustomerIdentifier,
		TemplateType:       c.TemplateType,
		FormData:           c.FormData,
		DesignID:           c.DesignID,
		DesignColors:       c.DesignColors,
		ShareableLink:      c.ShareableLink,
		CustomerSlug:       c.CustomerSlug,
		ImageURL:           c.ImageURL,
		Status:             c.Status,
		CreatedAt:          c.CreatedAt,
	}
}
