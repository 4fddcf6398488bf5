package card_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/studiodesk/studiodesk/internal/card"
)

func TestSlugFromLink(t *testing.T) {
	tests := []struct {
		name string
		link string
		want string
	}{
		{"SimpleLink", "https://x/card/jane-doe-42", "jane-doe-42"},
		{"NestedPath", "https://studio.example/share/card/wedding-set-7", "wedding-set-7"},
		{"MarkerAbsent", "https://x/jane-doe-42", ""},
		{"MarkerAtEnd", "https://x/card/", ""},
		{"Empty", "", ""},
		{"SlugWithQuery", "https://x/card/abc?ref=mail", "abc?ref=mail"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, card.SlugFromLink(tt.link))
		})
	}
}
