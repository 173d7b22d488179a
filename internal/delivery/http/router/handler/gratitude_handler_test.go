package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"regain/internal/delivery/http/validator"
	"regain/internal/domain/entity"
	mockUC "regain/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()

	return e
}

// newAuthedContext builds an echo context carrying the authenticated user ID,
// as the auth middleware would have set it.
func newAuthedContext(e *echo.Echo, req *http.Request, rec *httptest.ResponseRecorder, userID uuid.UUID) echo.Context {
	c := e.NewContext(req, rec)
	c.Set("userID", userID)

	return c
}

func TestGratitudeHandler_ToggleChecked_ReadsIDFromBody(t *testing.T) {
	e := newTestEcho()
	uc := mockUC.NewMockGratitudeUsecase(t)
	h := NewGratitudeHandler(uc, slog.New(slog.DiscardHandler))

	userID := uuid.New()
	entryID := uuid.New()

	uc.EXPECT().
		ToggleChecked(mock.Anything, userID, entryID).
		Return(&entity.GratitudeEntry{ID: entryID, UserID: userID, IsChecked: true}, nil)

	body, err := json.Marshal(map[string]string{"id": entryID.String()})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPut, "/api/gratitude", strings.NewReader(string(body)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, h.ToggleChecked(newAuthedContext(e, req, rec, userID)))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), entryID.String())
}

func TestGratitudeHandler_ToggleChecked_MissingIDFails(t *testing.T) {
	e := newTestEcho()
	uc := mockUC.NewMockGratitudeUsecase(t)
	h := NewGratitudeHandler(uc, slog.New(slog.DiscardHandler))

	req := httptest.NewRequest(http.MethodPut, "/api/gratitude", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	err := h.ToggleChecked(newAuthedContext(e, req, rec, uuid.New()))

	require.Error(t, err)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestGratitudeHandler_DeleteEntry_ReadsIDFromQuery(t *testing.T) {
	e := newTestEcho()
	uc := mockUC.NewMockGratitudeUsecase(t)
	h := NewGratitudeHandler(uc, slog.New(slog.DiscardHandler))

	userID := uuid.New()
	entryID := uuid.New()

	uc.EXPECT().
		DeleteEntry(mock.Anything, userID, entryID).
		Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/gratitude?id="+entryID.String(), nil)
	rec := httptest.NewRecorder()

	require.NoError(t, h.DeleteEntry(newAuthedContext(e, req, rec, userID)))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGratitudeHandler_DeleteEntry_InvalidQueryID(t *testing.T) {
	e := newTestEcho()
	uc := mockUC.NewMockGratitudeUsecase(t)
	h := NewGratitudeHandler(uc, slog.New(slog.DiscardHandler))

	req := httptest.NewRequest(http.MethodDelete, "/api/gratitude?id=not-a-uuid", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, h.DeleteEntry(newAuthedContext(e, req, rec, uuid.New())))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGratitudeHandler_ListEntries_HistoryMode(t *testing.T) {
	e := newTestEcho()
	uc := mockUC.NewMockGratitudeUsecase(t)
	h := NewGratitudeHandler(uc, slog.New(slog.DiscardHandler))

	userID := uuid.New()

	uc.EXPECT().
		ListHistory(mock.Anything, userID).
		Return([]*entity.GratitudeEntry{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/gratitude?mode=history", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, h.ListEntries(newAuthedContext(e, req, rec, userID)))
	assert.Equal(t, http.StatusOK, rec.Code)
}
