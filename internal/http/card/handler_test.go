package card_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/studiodesk/studiodesk/internal/card"
	"github.com/studiodesk/studiodesk/internal/document"
	cardHandler "github.com/studiodesk/studiodesk/internal/http/card"
)

func newRouter(t *testing.T) (*card.MockRepository, http.Handler) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := card.NewMockRepository(ctrl)
	renderer := document.NewRenderer(document.Config{
		BusinessName: "StudioDesk Photography",
		ContactLine:  "bookings@studiodesk.example",
	})
	h := cardHandler.NewHandler(card.NewService(repo), renderer, true)

	router := chi.NewRouter()
	router.Route("/cards", h.Routes)

	return repo, router
}

func do(t *testing.T, router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestHandler_Create(t *testing.T) {
	repo, router := newRouter(t)

	repo.EXPECT().
		CreateCard(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c *card.Card) error {
			c.ID = uuid.New()
			c.CreatedAt = time.Now()
			return nil
		})

	rec := do(t, router, http.MethodPost, "/cards", `{
		"customerIdentifier": "jane-doe",
		"templateType": "Wedding Confirmation",
		"formData": {"customerName": "Jane Doe"},
		"designId": "classic-01",
		"shareableLink": "https://studio.example/card/jane-doe-42"
	}`)

	require.Equal(t, http.StatusCreated, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
	assert.NotEmpty(t, body["cardId"])
	assert.Equal(t, "https://studio.example/card/jane-doe-42", body["shareableLink"])
	assert.Equal(t, "jane-doe-42", body["customerSlug"])
}

func TestHandler_Create_MissingFields(t *testing.T) {
	_, router := newRouter(t)

	rec := do(t, router, http.MethodPost, "/cards", `{"templateType":"Quote"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	errObj := decodeBody(t, rec)["error"].(map[string]any)
	assert.Equal(t, "validation_error", errObj["kind"])
	assert.Len(t, errObj["fields"], 3)
}

func TestHandler_Resolve(t *testing.T) {
	repo, router := newRouter(t)

	want := &card.Card{
		ID:            uuid.New(),
		CustomerSlug:  "jane-doe-42",
		ShareableLink: "https://studio.example/card/jane-doe-42",
		FormData:      json.RawMessage(`{"a":"b"}`),
		Status:        card.StatusActive,
	}
	repo.EXPECT().FindBySlug(gomock.Any(), "jane-doe-42").Return(want, nil)

	rec := do(t, router, http.MethodGet, "/cards?slug=jane-doe-42", "")
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "jane-doe-42", body["customerSlug"])
	assert.Equal(t, "active", body["status"])
}

func TestHandler_Resolve_MissingSlug(t *testing.T) {
	_, router := newRouter(t)

	rec := do(t, router, http.MethodGet, "/cards", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	errObj := decodeBody(t, rec)["error"].(map[string]any)
	assert.Equal(t, "validation_error", errObj["kind"])
}

func TestHandler_Resolve_NotFoundIncludesDebugDetail(t *testing.T) {
	repo, router := newRouter(t)

	repo.EXPECT().FindBySlug(gomock.Any(), "ghost").Return(nil, card.ErrNotFound)
	repo.EXPECT().FindBySlugPattern(gomock.Any(), "ghost").Return(nil, card.ErrNotFound)
	repo.EXPECT().SampleLinks(gomock.Any(), gomock.Any()).Return([]string{"https://x/card/a"}, nil)

	rec := do(t, router, http.MethodGet, "/cards?slug=ghost", "")
	require.Equal(t, http.StatusNotFound, rec.Code)

	errObj := decodeBody(t, rec)["error"].(map[string]any)
	assert.Equal(t, "not_found", errObj["kind"])
	assert.Contains(t, errObj, "detail")
}

func TestHandler_Document(t *testing.T) {
	repo, router := newRouter(t)

	id := uuid.New()
	repo.EXPECT().GetCard(gomock.Any(), id).Return(&card.Card{
		ID:           id,
		TemplateType: "Quote",
		FormData:     json.RawMessage(`{"customerName":"Jane","unused":""}`),
		Status:       card.StatusActive,
	}, nil)

	rec := do(t, router, http.MethodGet, "/cards/"+id.String()+"/document", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(rec.Body.String(), "%PDF"), "body should be a PDF stream")
	assert.Contains(t, rec.Body.String(), "Customer Name:  Jane")
}

func TestHandler_Document_BadID(t *testing.T) {
	_, router := newRouter(t)

	rec := do(t, router, http.MethodGet, "/cards/junk/document", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	errObj := decodeBody(t, rec)["error"].(map[string]any)
	assert.Equal(t, "invalid_argument", errObj["kind"])
}
