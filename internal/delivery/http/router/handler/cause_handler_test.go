package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"causes/internal/delivery/http/middleware"
	"causes/internal/domain/entity"
	domainerrors "causes/internal/domain/errors"
	mockUC "causes/internal/mocks/usecase"
	"causes/internal/presenter"
	"causes/internal/usecase"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newCauseContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestCauseHandler_GetCause(t *testing.T) {
	mockCauseUC := mockUC.NewMockCauseUsecase(t)
	h := NewCauseHandler(mockCauseUC, testLogger())

	causeID := uuid.New()
	mockCauseUC.EXPECT().
		GetCausePresentation(mock.Anything, causeID, "de").
		Return(&usecase.CausePresentation{
			Cause: &entity.Cause{ID: causeID, Title: "Weekly soup kitchen surplus"},
			Sections: []presenter.Section{
				{Title: "Basics", Rows: []presenter.Row{{Label: "Food type", Value: "Cooked meal"}}},
			},
		}, nil)

	c, rec := newCauseContext(http.MethodGet, "/api/v1/causes/"+causeID.String()+"?locale=de", "")
	c.SetParamNames("id")
	c.SetParamValues(causeID.String())

	require.NoError(t, h.GetCause(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Weekly soup kitchen surplus")
	assert.Contains(t, rec.Body.String(), "Cooked meal")
}

func TestCauseHandler_GetCause_InvalidID(t *testing.T) {
	h := NewCauseHandler(mockUC.NewMockCauseUsecase(t), testLogger())

	c, rec := newCauseContext(http.MethodGet, "/api/v1/causes/not-a-uuid", "")
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	require.NoError(t, h.GetCause(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCauseHandler_GetCause_NotFound(t *testing.T) {
	mockCauseUC := mockUC.NewMockCauseUsecase(t)
	h := NewCauseHandler(mockCauseUC, testLogger())

	causeID := uuid.New()
	mockCauseUC.EXPECT().
		GetCausePresentation(mock.Anything, causeID, "").
		Return(nil, domainerrors.ErrCauseNotFound)

	c, rec := newCauseContext(http.MethodGet, "/api/v1/causes/"+causeID.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(causeID.String())

	require.NoError(t, h.GetCause(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "CAUSE_NOT_FOUND")
}

func TestCauseHandler_CreateCause_RequiresAuth(t *testing.T) {
	h := NewCauseHandler(mockUC.NewMockCauseUsecase(t), testLogger())

	c, rec := newCauseContext(http.MethodPost, "/api/v1/causes", `{"title":"x"}`)

	require.NoError(t, h.CreateCause(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCauseHandler_CreateCause_DecodesDetailVariant(t *testing.T) {
	mockCauseUC := mockUC.NewMockCauseUsecase(t)
	h := NewCauseHandler(mockCauseUC, testLogger())

	userID := uuid.New()
	causeID := uuid.New()

	mockCauseUC.EXPECT().
		CreateCause(mock.Anything, entity.Creator{ID: userID, DisplayName: "Amira Haddad"}, mock.MatchedBy(func(input *usecase.CreateCauseInput) bool {
			detail, ok := input.Details.(*entity.FoodDetail)
			return ok && detail.FoodType == "cooked-meal" && input.Category == entity.CategoryFood
		})).
		Return(&entity.Cause{ID: causeID}, nil)

	body := `{
		"title": "Weekly soup kitchen surplus",
		"description": "Twenty portions of hot soup left over from the community kitchen.",
		"category": "food",
		"cause_type": "offered",
		"location": "Riverside community center",
		"priority": "high",
		"contact_email": "kitchen@example.org",
		"category_details": {"food_type": "cooked-meal", "quantity": 20, "unit": "portions", "temperature_requirements": "hot"}
	}`
	c, rec := newCauseContext(http.MethodPost, "/api/v1/causes", body)
	c.Set(middleware.ContextKeyUserID, userID)
	c.Set(middleware.ContextKeyDisplayName, "Amira Haddad")

	require.NoError(t, h.CreateCause(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), causeID.String())
}

func TestCauseHandler_CreateCause_RejectsMalformedDetail(t *testing.T) {
	h := NewCauseHandler(mockUC.NewMockCauseUsecase(t), testLogger())

	body := `{
		"title": "Broken detail payload",
		"category": "food",
		"category_details": {"quantity": "not-even-a-shape", "food_type": ["wrong"]}
	}`
	c, rec := newCauseContext(http.MethodPost, "/api/v1/causes", body)
	c.Set(middleware.ContextKeyUserID, uuid.New())

	require.NoError(t, h.CreateCause(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCauseHandler_ListCauses(t *testing.T) {
	mockCauseUC := mockUC.NewMockCauseUsecase(t)
	h := NewCauseHandler(mockCauseUC, testLogger())

	mockCauseUC.EXPECT().
		ListCauses(mock.Anything, &usecase.ListCausesInput{
			Category: entity.CategoryFood,
			Page:     2,
			PerPage:  10,
		}).
		Return(&usecase.CauseList{
			Causes: []*entity.Cause{{Title: "Weekly soup kitchen surplus"}},
			Total:  11,
		}, nil)

	c, rec := newCauseContext(http.MethodGet, "/api/v1/causes?category=food&page=2&per_page=10", "")

	require.NoError(t, h.ListCauses(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total":11`)
}

func TestCauseHandler_ShareQR(t *testing.T) {
	mockCauseUC := mockUC.NewMockCauseUsecase(t)
	h := NewCauseHandler(mockCauseUC, testLogger())

	causeID := uuid.New()
	mockCauseUC.EXPECT().
		GenerateShareQR(mock.Anything, causeID).
		Return([]byte{0x89, 0x50, 0x4E, 0x47}, nil)

	c, rec := newCauseContext(http.MethodGet, "/api/v1/causes/"+causeID.String()+"/qr", "")
	c.SetParamNames("id")
	c.SetParamValues(causeID.String())

	require.NoError(t, h.ShareQR(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, rec.Body.Bytes())
}

func TestCauseHandler_LikeCause(t *testing.T) {
	mockCauseUC := mockUC.NewMockCauseUsecase(t)
	h := NewCauseHandler(mockCauseUC, testLogger())

	causeID := uuid.New()
	mockCauseUC.EXPECT().LikeCause(mock.Anything, causeID).Return(nil)

	c, rec := newCauseContext(http.MethodPost, "/api/v1/causes/"+causeID.String()+"/like", "")
	c.SetParamNames("id")
	c.SetParamValues(causeID.String())

	require.NoError(t, h.LikeCause(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
