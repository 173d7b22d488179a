package handler

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"regain/internal/domain/entity"
	mockUC "regain/internal/mocks/usecase"
	"regain/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestHabitHandler_ToggleDay_ReadsIDAndDateFromBody(t *testing.T) {
	e := newTestEcho()
	uc := mockUC.NewMockHabitUsecase(t)
	h := NewHabitHandler(uc, slog.New(slog.DiscardHandler))

	userID := uuid.New()
	habitID := uuid.New()
	day := time.Date(2026, 3, 1, 15, 30, 0, 0, time.UTC)

	uc.EXPECT().
		ToggleDay(mock.Anything, userID, mock.MatchedBy(func(input *usecase.ToggleHabitInput) bool {
			return input.HabitID == habitID && input.Date.Equal(day)
		})).
		Return(&usecase.HabitView{Habit: &entity.Habit{ID: habitID, UserID: userID}}, nil)

	body := `{"id":"` + habitID.String() + `","date":"2026-03-01T15:30:00Z"}`
	req := httptest.NewRequest(http.MethodPut, "/api/habits", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, h.ToggleDay(newAuthedContext(e, req, rec, userID)))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), habitID.String())
}

func TestHabitHandler_ToggleDay_MissingIDFails(t *testing.T) {
	e := newTestEcho()
	uc := mockUC.NewMockHabitUsecase(t)
	h := NewHabitHandler(uc, slog.New(slog.DiscardHandler))

	req := httptest.NewRequest(http.MethodPut, "/api/habits", strings.NewReader(`{"date":"2026-03-01T00:00:00Z"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	err := h.ToggleDay(newAuthedContext(e, req, rec, uuid.New()))

	require.Error(t, err)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}
