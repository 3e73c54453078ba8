package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"causes/internal/domain/entity"
	domainerrors "causes/internal/domain/errors"
	"causes/internal/domain/repository"
	"causes/internal/domain/service"
	mockRepo "causes/internal/mocks/repository"
	mockSvc "causes/internal/mocks/service"
	"causes/internal/usecase"
)

type causeServiceMocks struct {
	causeRepo *mockRepo.MockCauseRepository
	txManager *mockRepo.MockTransactionManager
	publisher *mockSvc.MockEventPublisher
	share     *mockSvc.MockShareService
}

func newCauseService(t *testing.T) (usecase.CauseUsecase, *causeServiceMocks) {
	t.Helper()

	m := &causeServiceMocks{
		causeRepo: mockRepo.NewMockCauseRepository(t),
		txManager: mockRepo.NewMockTransactionManager(t),
		publisher: mockSvc.NewMockEventPublisher(t),
		share:     mockSvc.NewMockShareService(t),
	}

	svc := NewCauseService(CauseServiceParams{
		CauseRepo:    m.causeRepo,
		TxManager:    m.txManager,
		Publisher:    m.publisher,
		ShareService: m.share,
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return svc, m
}

// expectTransaction routes Execute through a factory backed by the cause
// repository mock, so repository expectations apply inside the transaction.
func (m *causeServiceMocks) expectTransaction(t *testing.T, ctx context.Context) {
	t.Helper()

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewCauseRepository().Return(m.causeRepo).Maybe()

	m.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func validFoodInput() *usecase.CreateCauseInput {
	return &usecase.CreateCauseInput{
		Title:        "Weekly soup kitchen surplus",
		Description:  "Twenty portions of hot soup left over from the community kitchen.",
		Category:     entity.CategoryFood,
		CauseType:    entity.CauseTypeOffered,
		Location:     "Riverside community center",
		Priority:     entity.PriorityHigh,
		ContactEmail: "kitchen@example.org",
		Tags:         []string{"soup", "hot-meal"},
		Images:       []string{"soup.jpg"},
		Details: &entity.FoodDetail{
			FoodType:                "cooked-meal",
			Quantity:                20,
			Unit:                    "portions",
			TemperatureRequirements: "hot",
		},
	}
}

func TestCauseService_CreateCause_Success(t *testing.T) {
	svc, m := newCauseService(t)
	ctx := context.Background()
	creator := entity.Creator{ID: uuid.New(), DisplayName: "Amira Haddad"}
	causeID := uuid.New()

	m.expectTransaction(t, ctx)
	m.causeRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Cause")).
		Run(func(_ context.Context, cause *entity.Cause) {
			cause.ID = causeID
		}).
		Return(nil)
	m.publisher.EXPECT().
		PublishCauseEvent(ctx, mock.MatchedBy(func(event *service.CauseEvent) bool {
			return event.EventType == service.CauseEventCreated && event.CauseID == causeID.String()
		})).
		Return(nil)

	cause, err := svc.CreateCause(ctx, creator, validFoodInput())
	require.NoError(t, err)
	require.NotNil(t, cause)
	assert.Equal(t, causeID, cause.ID)
	assert.Equal(t, creator, cause.Creator)
	assert.Equal(t, entity.CategoryFood, cause.Category)
	assert.Equal(t, "Weekly soup kitchen surplus", cause.Title)
}

func TestCauseService_CreateCause_UnknownCategory(t *testing.T) {
	svc, _ := newCauseService(t)

	input := validFoodInput()
	input.Category = "toys"

	_, err := svc.CreateCause(context.Background(), entity.Creator{ID: uuid.New()}, input)
	assert.ErrorIs(t, err, domainerrors.ErrUnknownCategory)
}

func TestCauseService_CreateCause_ValidationFailure(t *testing.T) {
	svc, _ := newCauseService(t)

	input := validFoodInput()
	input.Title = "Short"
	input.Details = &entity.FoodDetail{FoodType: "cooked-meal"}

	_, err := svc.CreateCause(context.Background(), entity.Creator{ID: uuid.New()}, input)
	require.Error(t, err)

	var fieldErr *domainerrors.FieldValidationError
	require.ErrorAs(t, err, &fieldErr)

	fields := make(map[string]bool)
	for _, issue := range fieldErr.Fields() {
		fields[issue.Field] = true
	}
	assert.True(t, fields["title"], "short title should be reported")
	assert.True(t, fields["quantity"], "missing required detail field should be reported")
}

func TestCauseService_CreateCause_TrainingMustBeOffered(t *testing.T) {
	svc, _ := newCauseService(t)

	input := validFoodInput()
	input.Category = entity.CategoryTraining
	input.CauseType = entity.CauseTypeWanted
	input.Details = &entity.TrainingDetail{
		TrainingType:   "workshop",
		SkillLevel:     "beginner",
		Topics:         []string{"cooking"},
		MaxTrainees:    10,
		DurationHours:  2,
		StartDate:      "2026-09-01",
		EndDate:        "2026-09-30",
		DeliveryMethod: "in-person",
		Instructors:    []entity.Instructor{{Name: "Amira Haddad", Email: "amira@example.org"}},
		IsFree:         true,
	}

	_, err := svc.CreateCause(context.Background(), entity.Creator{ID: uuid.New()}, input)
	require.Error(t, err)

	var fieldErr *domainerrors.FieldValidationError
	require.ErrorAs(t, err, &fieldErr)

	fields := make(map[string]string)
	for _, issue := range fieldErr.Fields() {
		fields[issue.Field] = issue.Reason
	}
	assert.Equal(t, "training causes are always offered", fields["cause_type"])
}

func TestCauseService_CreateCause_UnknownDirection(t *testing.T) {
	svc, _ := newCauseService(t)

	input := validFoodInput()
	input.CauseType = "giving"

	_, err := svc.CreateCause(context.Background(), entity.Creator{ID: uuid.New()}, input)
	require.Error(t, err)

	var fieldErr *domainerrors.FieldValidationError
	require.ErrorAs(t, err, &fieldErr)
	require.Len(t, fieldErr.Fields(), 1)
	assert.Equal(t, "cause_type", fieldErr.Fields()[0].Field)
}

func TestCauseService_CreateCause_PublishFailureDoesNotFail(t *testing.T) {
	svc, m := newCauseService(t)
	ctx := context.Background()

	m.expectTransaction(t, ctx)
	m.causeRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Cause")).Return(nil)
	m.publisher.EXPECT().
		PublishCauseEvent(ctx, mock.AnythingOfType("*service.CauseEvent")).
		Return(errors.New("broker unavailable"))

	cause, err := svc.CreateCause(ctx, entity.Creator{ID: uuid.New()}, validFoodInput())
	require.NoError(t, err)
	assert.NotNil(t, cause)
}

func TestCauseService_GetCause_Success(t *testing.T) {
	svc, m := newCauseService(t)
	ctx := context.Background()
	causeID := uuid.New()

	m.causeRepo.EXPECT().
		FindByID(ctx, causeID).
		Return(&entity.Cause{ID: causeID, ViewCount: 10}, nil)
	m.causeRepo.EXPECT().IncrementViewCount(ctx, causeID).Return(nil)

	cause, err := svc.GetCause(ctx, causeID)
	require.NoError(t, err)
	assert.Equal(t, int64(11), cause.ViewCount)
}

func TestCauseService_GetCause_NotFound(t *testing.T) {
	svc, m := newCauseService(t)
	ctx := context.Background()
	causeID := uuid.New()

	m.causeRepo.EXPECT().FindByID(ctx, causeID).Return(nil, repository.ErrCauseNotFound)

	_, err := svc.GetCause(ctx, causeID)
	assert.ErrorIs(t, err, domainerrors.ErrCauseNotFound)
}

func TestCauseService_GetCause_ViewCountFailureDoesNotBlock(t *testing.T) {
	svc, m := newCauseService(t)
	ctx := context.Background()
	causeID := uuid.New()

	m.causeRepo.EXPECT().
		FindByID(ctx, causeID).
		Return(&entity.Cause{ID: causeID, ViewCount: 10}, nil)
	m.causeRepo.EXPECT().
		IncrementViewCount(ctx, causeID).
		Return(errors.New("connection reset"))

	cause, err := svc.GetCause(ctx, causeID)
	require.NoError(t, err)
	assert.Equal(t, int64(10), cause.ViewCount)
}

func TestCauseService_GetCausePresentation(t *testing.T) {
	svc, m := newCauseService(t)
	ctx := context.Background()
	causeID := uuid.New()

	m.causeRepo.EXPECT().
		FindByID(ctx, causeID).
		Return(&entity.Cause{
			ID:       causeID,
			Category: entity.CategoryFood,
			Details: &entity.FoodDetail{
				FoodType: "cooked-meal",
				Quantity: 20,
				Unit:     "portions",
			},
		}, nil)
	m.causeRepo.EXPECT().IncrementViewCount(ctx, causeID).Return(nil)

	presentation, err := svc.GetCausePresentation(ctx, causeID, "en")
	require.NoError(t, err)
	require.NotEmpty(t, presentation.Sections)

	basics := presentation.Sections[0]
	assert.Equal(t, "Basics", basics.Title)
	require.NotEmpty(t, basics.Rows)
	assert.Equal(t, "Food type", basics.Rows[0].Label)
	assert.Equal(t, "Cooked meal", basics.Rows[0].Value)
}

func TestCauseService_ListCauses_DefaultsPaging(t *testing.T) {
	svc, m := newCauseService(t)
	ctx := context.Background()

	m.causeRepo.EXPECT().
		List(ctx, repository.ListCausesFilter{Category: entity.CategoryFood, Limit: 20, Offset: 0}).
		Return([]*entity.Cause{{Title: "Soup"}}, int64(1), nil)

	list, err := svc.ListCauses(ctx, &usecase.ListCausesInput{Category: entity.CategoryFood})
	require.NoError(t, err)
	assert.Equal(t, int64(1), list.Total)
	assert.Len(t, list.Causes, 1)
}

func TestCauseService_ListCauses_PagingOffset(t *testing.T) {
	svc, m := newCauseService(t)
	ctx := context.Background()

	m.causeRepo.EXPECT().
		List(ctx, repository.ListCausesFilter{Limit: 10, Offset: 20}).
		Return(nil, int64(0), nil)

	_, err := svc.ListCauses(ctx, &usecase.ListCausesInput{Page: 3, PerPage: 10})
	require.NoError(t, err)
}

// storedCause builds a persisted cause that passes the field rules, so update
// tests only trip validation on the edit under test.
func storedCause(causeID, userID uuid.UUID, category entity.Category) *entity.Cause {
	return &entity.Cause{
		ID:           causeID,
		Title:        "Old title for the stored cause",
		Description:  "A long-standing community cause with a full description.",
		Category:     category,
		CauseType:    entity.CauseTypeOffered,
		Location:     "Riverside community center",
		Priority:     entity.PriorityMedium,
		ContactEmail: "causes@example.org",
		Creator:      entity.Creator{ID: userID},
	}
}

func TestCauseService_UpdateCause_Success(t *testing.T) {
	svc, m := newCauseService(t)
	ctx := context.Background()
	userID := uuid.New()
	causeID := uuid.New()

	existing := storedCause(causeID, userID, entity.CategoryFood)

	m.expectTransaction(t, ctx)
	m.causeRepo.EXPECT().FindByID(ctx, causeID).Return(existing, nil)
	m.causeRepo.EXPECT().Update(ctx, existing).Return(nil)
	m.publisher.EXPECT().
		PublishCauseEvent(ctx, mock.MatchedBy(func(event *service.CauseEvent) bool {
			return event.EventType == service.CauseEventUpdated
		})).
		Return(nil)

	newTitle := "Updated title for the food cause"
	cause, err := svc.UpdateCause(ctx, userID, causeID, &usecase.UpdateCauseInput{Title: &newTitle})
	require.NoError(t, err)
	assert.Equal(t, newTitle, cause.Title)
}

func TestCauseService_UpdateCause_ShortTitleRejected(t *testing.T) {
	svc, m := newCauseService(t)
	ctx := context.Background()
	userID := uuid.New()
	causeID := uuid.New()

	m.expectTransaction(t, ctx)
	m.causeRepo.EXPECT().
		FindByID(ctx, causeID).
		Return(storedCause(causeID, userID, entity.CategoryFood), nil)

	newTitle := "Soup"
	_, err := svc.UpdateCause(ctx, userID, causeID, &usecase.UpdateCauseInput{Title: &newTitle})
	require.Error(t, err)

	var fieldErr *domainerrors.FieldValidationError
	require.ErrorAs(t, err, &fieldErr)
	require.Len(t, fieldErr.Fields(), 1)
	assert.Equal(t, "title", fieldErr.Fields()[0].Field)
}

func TestCauseService_UpdateCause_OwnershipViolation(t *testing.T) {
	svc, m := newCauseService(t)
	ctx := context.Background()
	causeID := uuid.New()

	m.expectTransaction(t, ctx)
	m.causeRepo.EXPECT().
		FindByID(ctx, causeID).
		Return(&entity.Cause{ID: causeID, Creator: entity.Creator{ID: uuid.New()}}, nil)

	newTitle := "Someone else rewriting this cause"
	_, err := svc.UpdateCause(ctx, uuid.New(), causeID, &usecase.UpdateCauseInput{Title: &newTitle})
	assert.ErrorIs(t, err, domainerrors.ErrCauseOwnershipViolation)
}

func TestCauseService_UpdateCause_DetailCategoryMismatch(t *testing.T) {
	svc, m := newCauseService(t)
	ctx := context.Background()
	userID := uuid.New()
	causeID := uuid.New()

	m.expectTransaction(t, ctx)
	m.causeRepo.EXPECT().
		FindByID(ctx, causeID).
		Return(storedCause(causeID, userID, entity.CategoryClothes), nil)

	_, err := svc.UpdateCause(ctx, userID, causeID, &usecase.UpdateCauseInput{
		Details: &entity.FoodDetail{FoodType: "cooked-meal"},
	})
	require.Error(t, err)

	var fieldErr *domainerrors.FieldValidationError
	require.ErrorAs(t, err, &fieldErr)
	require.Len(t, fieldErr.Fields(), 1)
	assert.Equal(t, "category_details", fieldErr.Fields()[0].Field)
}

func TestCauseService_LikeCause(t *testing.T) {
	svc, m := newCauseService(t)
	ctx := context.Background()
	causeID := uuid.New()

	m.causeRepo.EXPECT().IncrementLikeCount(ctx, causeID, 1).Return(nil)
	m.publisher.EXPECT().
		PublishCauseEvent(ctx, mock.MatchedBy(func(event *service.CauseEvent) bool {
			return event.EventType == service.CauseEventLiked && event.CauseID == causeID.String()
		})).
		Return(nil)

	require.NoError(t, svc.LikeCause(ctx, causeID))
}

func TestCauseService_LikeCause_NotFound(t *testing.T) {
	svc, m := newCauseService(t)
	ctx := context.Background()
	causeID := uuid.New()

	m.causeRepo.EXPECT().IncrementLikeCount(ctx, causeID, 1).Return(repository.ErrCauseNotFound)

	assert.ErrorIs(t, svc.LikeCause(ctx, causeID), domainerrors.ErrCauseNotFound)
}

func TestCauseService_GenerateShareQR(t *testing.T) {
	svc, m := newCauseService(t)
	ctx := context.Background()
	causeID := uuid.New()

	m.causeRepo.EXPECT().FindByID(ctx, causeID).Return(&entity.Cause{ID: causeID}, nil)
	m.share.EXPECT().GenerateShareQR(causeID).Return([]byte{0x89, 0x50}, nil)

	png, err := svc.GenerateShareQR(ctx, causeID)
	require.NoError(t, err)
	assert.NotEmpty(t, png)
}

func TestCauseService_GenerateShareQR_NotFound(t *testing.T) {
	svc, m := newCauseService(t)
	ctx := context.Background()
	causeID := uuid.New()

	m.causeRepo.EXPECT().FindByID(ctx, causeID).Return(nil, repository.ErrCauseNotFound)

	_, err := svc.GenerateShareQR(ctx, causeID)
	assert.ErrorIs(t, err, domainerrors.ErrCauseNotFound)
}
