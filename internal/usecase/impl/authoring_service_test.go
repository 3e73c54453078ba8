package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"causes/config"
	"causes/internal/authoring"
	"causes/internal/domain/entity"
	domainerrors "causes/internal/domain/errors"
	"causes/internal/domain/schema"
	mockUC "causes/internal/mocks/usecase"
	"causes/internal/usecase"
)

func newAuthoringService(t *testing.T, authCfg *config.AuthoringConfig) (usecase.AuthoringUsecase, *mockUC.MockCauseUsecase) {
	t.Helper()

	mockCauseUC := mockUC.NewMockCauseUsecase(t)
	svc := NewAuthoringService(AuthoringServiceParams{
		CauseUsecase: mockCauseUC,
		Config:       &config.Config{Authoring: authCfg},
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return svc, mockCauseUC
}

func sessionCommonValues() map[string]any {
	return map[string]any{
		"title":         "Weekly soup kitchen surplus",
		"description":   "Twenty portions of hot soup left over from the community kitchen.",
		"location":      "Riverside community center",
		"priority":      "high",
		"contact_email": "kitchen@example.org",
	}
}

func sessionFoodValues() map[string]any {
	return map[string]any{
		"food_type":                "cooked-meal",
		"quantity":                 20,
		"unit":                     "portions",
		"temperature_requirements": "hot",
	}
}

func TestAuthoringService_StartSession(t *testing.T) {
	svc, _ := newAuthoringService(t, nil)

	view, err := svc.StartSession(context.Background(), entity.Creator{ID: uuid.New()})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, view.SessionID)
	assert.Equal(t, authoring.StateSelectCategory, view.State)
	assert.Empty(t, view.Form)
}

func TestAuthoringService_GetSession_Unknown(t *testing.T) {
	svc, _ := newAuthoringService(t, nil)

	_, err := svc.GetSession(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrSessionNotFound)
}

func TestAuthoringService_HappyPathSubmit(t *testing.T) {
	svc, mockCauseUC := newAuthoringService(t, nil)
	ctx := context.Background()
	creator := entity.Creator{ID: uuid.New(), DisplayName: "Amira Haddad"}
	causeID := uuid.New()

	start, err := svc.StartSession(ctx, creator)
	require.NoError(t, err)
	sessionID := start.SessionID

	view, err := svc.SelectCategory(ctx, sessionID, entity.CategoryFood)
	require.NoError(t, err)
	assert.Equal(t, authoring.StateSelectDirection, view.State)

	view, err = svc.SelectDirection(ctx, sessionID, entity.CauseTypeOffered)
	require.NoError(t, err)
	assert.Equal(t, authoring.StateBasicInfo, view.State)
	require.NotEmpty(t, view.Form)
	assert.Equal(t, "title", view.Form[0].Name)

	view, err = svc.SetCommonFields(ctx, sessionID, sessionCommonValues())
	require.NoError(t, err)
	assert.Empty(t, view.FieldErrors)

	view, err = svc.Advance(ctx, sessionID)
	require.NoError(t, err)
	assert.Equal(t, authoring.StateCategoryDetails, view.State)
	require.NotEmpty(t, view.Form)
	assert.Equal(t, "food_type", view.Form[0].Name)

	_, err = svc.SetDetailFields(ctx, sessionID, sessionFoodValues())
	require.NoError(t, err)

	_, err = svc.SetImages(ctx, sessionID, []string{"soup.jpg"})
	require.NoError(t, err)

	mockCauseUC.EXPECT().
		CreateCause(mock.Anything, creator, mock.MatchedBy(func(input *usecase.CreateCauseInput) bool {
			detail, ok := input.Details.(*entity.FoodDetail)
			return ok &&
				input.Title == "Weekly soup kitchen surplus" &&
				input.Category == entity.CategoryFood &&
				input.CauseType == entity.CauseTypeOffered &&
				input.Priority == entity.PriorityHigh &&
				len(input.Images) == 1 &&
				detail.FoodType == "cooked-meal" &&
				detail.Quantity == 20
		})).
		Return(&entity.Cause{ID: causeID}, nil)

	view, err = svc.Submit(ctx, sessionID)
	require.NoError(t, err)
	assert.Equal(t, authoring.StateSucceeded, view.State)
	assert.Equal(t, causeID, view.CauseID)
	assert.Empty(t, view.SubmitError)
}

func TestAuthoringService_AdvanceValidationFailureInView(t *testing.T) {
	svc, _ := newAuthoringService(t, nil)
	ctx := context.Background()

	start, err := svc.StartSession(ctx, entity.Creator{ID: uuid.New()})
	require.NoError(t, err)
	sessionID := start.SessionID

	_, err = svc.SelectCategory(ctx, sessionID, entity.CategoryTraining)
	require.NoError(t, err)
	_, err = svc.SelectDirection(ctx, sessionID, entity.CauseTypeWanted)
	require.NoError(t, err)

	// No common fields entered yet, so the gate reports every required field.
	view, err := svc.Advance(ctx, sessionID)
	require.NoError(t, err)
	assert.Equal(t, authoring.StateBasicInfo, view.State)
	assert.NotEmpty(t, view.FieldErrors)
}

func TestAuthoringService_InvalidStepIsRejected(t *testing.T) {
	svc, _ := newAuthoringService(t, nil)
	ctx := context.Background()

	start, err := svc.StartSession(ctx, entity.Creator{ID: uuid.New()})
	require.NoError(t, err)

	_, err = svc.Advance(ctx, start.SessionID)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrWorkflowStep.ErrorCode(), appErr.ErrorCode())
}

func TestAuthoringService_SubmitFailureKeepsSession(t *testing.T) {
	svc, mockCauseUC := newAuthoringService(t, nil)
	ctx := context.Background()
	creator := entity.Creator{ID: uuid.New()}
	causeID := uuid.New()

	start, err := svc.StartSession(ctx, creator)
	require.NoError(t, err)
	sessionID := start.SessionID

	_, err = svc.SelectCategory(ctx, sessionID, entity.CategoryFood)
	require.NoError(t, err)
	_, err = svc.SelectDirection(ctx, sessionID, entity.CauseTypeOffered)
	require.NoError(t, err)
	_, err = svc.SetCommonFields(ctx, sessionID, sessionCommonValues())
	require.NoError(t, err)
	_, err = svc.Advance(ctx, sessionID)
	require.NoError(t, err)
	_, err = svc.SetDetailFields(ctx, sessionID, sessionFoodValues())
	require.NoError(t, err)

	mockCauseUC.EXPECT().
		CreateCause(mock.Anything, creator, mock.AnythingOfType("*usecase.CreateCauseInput")).
		Return(nil, errors.New("connection refused")).
		Once()

	view, err := svc.Submit(ctx, sessionID)
	require.NoError(t, err)
	assert.Equal(t, authoring.StateFailed, view.State)
	assert.Contains(t, view.SubmitError, "connection refused")
	require.NotEmpty(t, view.Form, "failed state still shows the detail form for edits")

	mockCauseUC.EXPECT().
		CreateCause(mock.Anything, creator, mock.AnythingOfType("*usecase.CreateCauseInput")).
		Return(&entity.Cause{ID: causeID}, nil).
		Once()

	view, err = svc.Submit(ctx, sessionID)
	require.NoError(t, err)
	assert.Equal(t, authoring.StateSucceeded, view.State)
	assert.Equal(t, causeID, view.CauseID)
}

func TestAuthoringService_EditSubRecords(t *testing.T) {
	svc, _ := newAuthoringService(t, nil)
	ctx := context.Background()

	start, err := svc.StartSession(ctx, entity.Creator{ID: uuid.New()})
	require.NoError(t, err)
	sessionID := start.SessionID

	_, err = svc.SelectCategory(ctx, sessionID, entity.CategoryTraining)
	require.NoError(t, err)
	_, err = svc.SelectDirection(ctx, sessionID, entity.CauseTypeOffered)
	require.NoError(t, err)
	_, err = svc.SetCommonFields(ctx, sessionID, map[string]any{
		"title":         "Beginner sewing circle at the hub",
		"description":   "Weekly hands-on sewing basics for newcomers to the neighbourhood.",
		"location":      "Community hub, room 2",
		"priority":      "medium",
		"contact_email": "courses@example.org",
	})
	require.NoError(t, err)
	_, err = svc.Advance(ctx, sessionID)
	require.NoError(t, err)

	view, err := svc.EditSubRecords(ctx, sessionID, &usecase.SubRecordEdit{
		Field:  "instructors",
		Change: authoring.ListChange{Op: authoring.ListOpAdd, Value: schema.ValueBag{"name": "Amira Haddad"}},
	})
	require.NoError(t, err)

	var instructors *authoring.Control
	for i := range view.Form {
		if view.Form[i].Name == "instructors" {
			instructors = &view.Form[i]
		}
	}
	require.NotNil(t, instructors)
	require.Len(t, instructors.Entries, 1)
}

func TestAuthoringService_CloseSession(t *testing.T) {
	svc, _ := newAuthoringService(t, nil)
	ctx := context.Background()

	start, err := svc.StartSession(ctx, entity.Creator{ID: uuid.New()})
	require.NoError(t, err)

	require.NoError(t, svc.CloseSession(ctx, start.SessionID))

	_, err = svc.GetSession(ctx, start.SessionID)
	assert.ErrorIs(t, err, domainerrors.ErrSessionNotFound)

	assert.ErrorIs(t, svc.CloseSession(ctx, start.SessionID), domainerrors.ErrSessionNotFound)
}

func TestAuthoringService_SessionLimit(t *testing.T) {
	svc, _ := newAuthoringService(t, &config.AuthoringConfig{MaxSessions: 1})
	ctx := context.Background()

	_, err := svc.StartSession(ctx, entity.Creator{ID: uuid.New()})
	require.NoError(t, err)

	_, err = svc.StartSession(ctx, entity.Creator{ID: uuid.New()})
	assert.ErrorIs(t, err, domainerrors.ErrSessionLimitExceeded)
}

func TestAuthoringService_SessionExpiry(t *testing.T) {
	svc, _ := newAuthoringService(t, &config.AuthoringConfig{SessionTTL: time.Millisecond})
	ctx := context.Background()

	start, err := svc.StartSession(ctx, entity.Creator{ID: uuid.New()})
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	_, err = svc.GetSession(ctx, start.SessionID)
	assert.ErrorIs(t, err, domainerrors.ErrSessionNotFound)
}

func TestAuthoringService_BackKeepsEnteredValues(t *testing.T) {
	svc, _ := newAuthoringService(t, nil)
	ctx := context.Background()

	start, err := svc.StartSession(ctx, entity.Creator{ID: uuid.New()})
	require.NoError(t, err)
	sessionID := start.SessionID

	_, err = svc.SelectCategory(ctx, sessionID, entity.CategoryFood)
	require.NoError(t, err)
	_, err = svc.SelectDirection(ctx, sessionID, entity.CauseTypeOffered)
	require.NoError(t, err)
	_, err = svc.SetCommonFields(ctx, sessionID, sessionCommonValues())
	require.NoError(t, err)
	_, err = svc.Advance(ctx, sessionID)
	require.NoError(t, err)

	view, err := svc.Back(ctx, sessionID, authoring.StateBasicInfo)
	require.NoError(t, err)
	assert.Equal(t, authoring.StateBasicInfo, view.State)

	require.NotEmpty(t, view.Form)
	assert.Equal(t, "Weekly soup kitchen surplus", view.Form[0].Value)
}
