// Package card issues shareable digital-card records and resolves them by
// their public slug.
package card

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Status is the lifecycle state of a card. Only "active" is assigned here;
// transitions, if any, belong to external tooling.
type Status string

const StatusActive Status = "active"

// Card is an issued, shareable document descriptor. CustomerIdentifier and
// TemplateType are immutable after issuance. FormData is opaque here and only
// interpreted by the document renderer; it stays raw JSON so the author's
// field order survives.
type Card struct {
	ID                 uuid.UUID
	CustomerIdentifier string
	TemplateType       string
	FormData           json.RawMessage
	DesignID           string
	DesignColors       json.RawMessage
	ShareableLink      string
	CustomerSlug       string
	ImageURL           *string
	Status             Status
	CreatedAt          time.Time
}

// slugMarker is the fixed segment of a shareable link that precedes the slug.
const slugMarker = "/card/"

// SlugFromLink extracts the public lookup slug: everything after the first
// /card/ segment. Returns "" when the marker is absent.
func SlugFromLink(link string) string {
	i := strings.Index(link, slugMarker)
	if i < 0 {
		return ""
	}

	return link[i+len(slugMarker):]
}
