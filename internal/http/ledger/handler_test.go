package ledger_test

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

	ledgerHandler "github.com/studiodesk/studiodesk/internal/http/ledger"
	"github.com/studiodesk/studiodesk/internal/ledger"
)

func newRouter(t *testing.T) (*ledger.MockRepository, http.Handler) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := ledger.NewMockRepository(ctrl)
	h := ledgerHandler.NewHandler(ledger.NewService(repo), true)

	router := chi.NewRouter()
	router.Route("/ledger", h.Routes)

	return repo, router
}

func doJSON(t *testing.T, router http.Handler, method, path, body string) *httptest.ResponseRecorder {
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

func TestHandler_Create_CoercesGarbageAmounts(t *testing.T) {
	repo, router := newRouter(t)

	repo.EXPECT().
		CreateRecord(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, rec *ledger.Record) error {
			rec.ID = uuid.New()
			rec.CreatedAt = time.Now()
			rec.UpdatedAt = rec.CreatedAt
			return nil
		})

	rec := doJSON(t, router, http.MethodPost, "/ledger",
		`{"person":"Jane Doe","advance":"garbage","total":10000}`)

	require.Equal(t, http.StatusCreated, rec.Code)

	body := decodeBody(t, rec)
	assert.EqualValues(t, 0, body["advance"])
	assert.EqualValues(t, 10000, body["total"])
	assert.EqualValues(t, 10000, body["balance"])
	assert.Equal(t, "pending", body["status"])
}

func TestHandler_Update_MalformedIDIsInvalidArgument(t *testing.T) {
	_, router := newRouter(t)

	rec := doJSON(t, router, http.MethodPut, "/ledger/not-a-uuid", `{"advance":1}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	body := decodeBody(t, rec)
	errObj := body["error"].(map[string]any)
	assert.Equal(t, "invalid_argument", errObj["kind"])
}

func TestHandler_Update_NotFound(t *testing.T) {
	repo, router := newRouter(t)

	repo.EXPECT().UpdateRecord(gomock.Any(), gomock.Any()).Return(ledger.ErrNotFound)

	rec := doJSON(t, router, http.MethodPut, "/ledger/"+uuid.NewString(), `{"advance":1,"total":2}`)

	require.Equal(t, http.StatusNotFound, rec.Code)

	body := decodeBody(t, rec)
	errObj := body["error"].(map[string]any)
	assert.Equal(t, "not_found", errObj["kind"])
}

func TestHandler_Update_Success(t *testing.T) {
	repo, router := newRouter(t)

	repo.EXPECT().UpdateRecord(gomock.Any(), gomock.Any()).Return(nil)

	rec := doJSON(t, router, http.MethodPut, "/ledger/"+uuid.NewString(),
		`{"advance":10000,"total":10000}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, decodeBody(t, rec)["success"])
}

func TestHandler_Delete(t *testing.T) {
	repo, router := newRouter(t)

	id := uuid.New()
	repo.EXPECT().DeleteRecord(gomock.Any(), id).Return(nil)

	rec := doJSON(t, router, http.MethodDelete, "/ledger/"+id.String(), "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, decodeBody(t, rec)["success"])

	rec = doJSON(t, router, http.MethodDelete, "/ledger/junk", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_List(t *testing.T) {
	repo, router := newRouter(t)

	repo.EXPECT().
		ListRecords(gomock.Any()).
		Return([]*ledger.Record{{ID: uuid.New(), Person: "Jane"}}, nil)

	rec := doJSON(t, router, http.MethodGet, "/ledger", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var list []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, "Jane", list[0]["person"])
}
