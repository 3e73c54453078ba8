package impl

import (
	"context"
	"log/slog"

	"causes/internal/authoring"
	"causes/internal/domain/entity"
	domainerrors "causes/internal/domain/errors"
	"causes/internal/domain/repository"
	"causes/internal/domain/schema"
	"causes/internal/domain/service"
	"causes/internal/presenter"
	"causes/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type causeService struct {
	causeRepo    repository.CauseRepository
	txManager    repository.TransactionManager
	publisher    service.EventPublisher
	shareService service.ShareService
	logger       *slog.Logger
}

// CauseServiceParams holds dependencies for CauseService, injected by Fx.
type CauseServiceParams struct {
	fx.In

	CauseRepo    repository.CauseRepository
	TxManager    repository.TransactionManager
	Publisher    service.EventPublisher
	ShareService service.ShareService
	Logger       *slog.Logger
}

// NewCauseService creates a new cause service instance
func NewCauseService(params CauseServiceParams) usecase.CauseUsecase {
	return &causeService{
		causeRepo:    params.CauseRepo,
		txManager:    params.TxManager,
		publisher:    params.Publisher,
		shareService: params.ShareService,
		logger:       params.Logger,
	}
}

// CreateCause validates and publishes a new cause for the creator
func (s *causeService) CreateCause(ctx context.Context, creator entity.Creator, input *usecase.CreateCauseInput) (*entity.Cause, error) {
	if !input.Category.IsValid() {
		return nil, domainerrors.ErrUnknownCategory.WrapMessage(string(input.Category))
	}
	if err := validateCauseInput(input); err != nil {
		return nil, err
	}

	cause := &entity.Cause{
		Title:        input.Title,
		Description:  input.Description,
		Category:     input.Category,
		CauseType:    input.CauseType,
		Location:     input.Location,
		Priority:     input.Priority,
		ContactEmail: input.ContactEmail,
		ContactPhone: input.ContactPhone,
		Tags:         input.Tags,
		Images:       input.Images,
		Details:      input.Details,
		Creator:      creator,
	}

	err := s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		return factory.NewCauseRepository().Create(ctx, cause)
	})
	if err != nil {
		return nil, err
	}

	s.publishEvent(ctx, service.CauseEventCreated, cause)

	return cause, nil
}

// GetCause retrieves a cause and records the view
func (s *causeService) GetCause(ctx context.Context, id uuid.UUID) (*entity.Cause, error) {
	cause, err := s.causeRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCauseNotFound) {
			return nil, domainerrors.ErrCauseNotFound
		}

		return nil, errors.Wrap(err, "failed to find cause")
	}

	// The view counter is best-effort; a failed bump never blocks the read.
	if err := s.causeRepo.IncrementViewCount(ctx, id); err != nil {
		s.logger.Warn("failed to increment view count",
			slog.String("cause_id", id.String()),
			slog.Any("error", err),
		)
	} else {
		cause.ViewCount++
	}

	return cause, nil
}

// GetCausePresentation retrieves a cause with display sections for a locale
func (s *causeService) GetCausePresentation(ctx context.Context, id uuid.UUID, locale string) (*usecase.CausePresentation, error) {
	cause, err := s.GetCause(ctx, id)
	if err != nil {
		return nil, err
	}

	return &usecase.CausePresentation{
		Cause:    cause,
		Sections: presenter.ForLocale(locale).Present(cause.Category, cause.Details),
	}, nil
}

// ListCauses retrieves a filtered page of causes
func (s *causeService) ListCauses(ctx context.Context, input *usecase.ListCausesInput) (*usecase.CauseList, error) {
	perPage := input.PerPage
	if perPage <= 0 || perPage > 100 {
		perPage = 20
	}
	page := input.Page
	if page < 1 {
		page = 1
	}

	filter := repository.ListCausesFilter{
		Category:  input.Category,
		CauseType: input.CauseType,
		Priority:  input.Priority,
		CreatorID: input.CreatorID,
		Limit:     perPage,
		Offset:    (page - 1) * perPage,
	}

	causes, total, err := s.causeRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list causes")
	}

	return &usecase.CauseList{Causes: causes, Total: total}, nil
}

// UpdateCause applies a partial update; only the creator may modify a cause
func (s *causeService) UpdateCause(ctx context.Context, userID, causeID uuid.UUID, input *usecase.UpdateCauseInput) (*entity.Cause, error) {
	var updated *entity.Cause

	err := s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		repo := factory.NewCauseRepository()

		cause, err := repo.FindByID(ctx, causeID)
		if err != nil {
			if errors.Is(err, repository.ErrCauseNotFound) {
				return domainerrors.ErrCauseNotFound
			}

			return errors.Wrap(err, "failed to find cause")
		}
		if cause.Creator.ID != userID {
			return domainerrors.ErrCauseOwnershipViolation
		}

		applyCauseUpdate(cause, input)

		issues := validateCommonFields(cause)
		if cause.Details != nil {
			issues = append(issues, validateDetail(cause.Category, cause.Details)...)
		}
		if len(issues) > 0 {
			return domainerrors.NewFieldValidationError(issues)
		}

		if err := repo.Update(ctx, cause); err != nil {
			return err
		}
		updated = cause

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publishEvent(ctx, service.CauseEventUpdated, updated)

	return updated, nil
}

// LikeCause records a like on a cause
func (s *causeService) LikeCause(ctx context.Context, id uuid.UUID) error {
	if err := s.causeRepo.IncrementLikeCount(ctx, id, 1); err != nil {
		if errors.Is(err, repository.ErrCauseNotFound) {
			return domainerrors.ErrCauseNotFound
		}

		return errors.Wrap(err, "failed to like cause")
	}

	s.publishEvent(ctx, service.CauseEventLiked, &entity.Cause{ID: id})

	return nil
}

// GenerateShareQR renders a QR code image linking to the cause's public page
func (s *causeService) GenerateShareQR(ctx context.Context, id uuid.UUID) ([]byte, error) {
	// Confirm the cause exists before handing out a share image.
	if _, err := s.causeRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrCauseNotFound) {
			return nil, domainerrors.ErrCauseNotFound
		}

		return nil, errors.Wrap(err, "failed to find cause")
	}

	qrCode, err := s.shareService.GenerateShareQR(id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate share QR")
	}

	return qrCode, nil
}

// publishEvent emits a cause lifecycle event. Publishing is best-effort:
// the cause is already persisted, so a broker failure only logs.
func (s *causeService) publishEvent(ctx context.Context, eventType string, cause *entity.Cause) {
	if cause == nil {
		return
	}

	event := &service.CauseEvent{
		EventType: eventType,
		CauseID:   cause.ID.String(),
		CreatorID: cause.Creator.ID.String(),
		Category:  cause.Category.String(),
		CauseType: cause.CauseType.String(),
		Title:     cause.Title,
	}

	if err := s.publisher.PublishCauseEvent(ctx, event); err != nil {
		s.logger.Warn("failed to publish cause event",
			slog.String("event_type", eventType),
			slog.String("cause_id", event.CauseID),
			slog.Any("error", err),
		)
	}
}

// validateCauseInput runs the same field rules the authoring workflow gates
// on, so causes published directly through the API meet the same bar.
func validateCauseInput(input *usecase.CreateCauseInput) error {
	issues := validateDirection(input.Category, input.CauseType)

	common := schema.ValueBag{
		"title":         input.Title,
		"description":   input.Description,
		"location":      input.Location,
		"priority":      string(input.Priority),
		"contact_email": input.ContactEmail,
	}
	if input.ContactPhone != "" {
		common["contact_phone"] = input.ContactPhone
	}
	if len(input.Tags) > 0 {
		common["tags"] = input.Tags
	}

	issues = append(issues, toFieldIssues(authoring.ValidateCommon(common))...)
	issues = append(issues, validateDetail(input.Category, input.Details)...)

	if len(issues) > 0 {
		return domainerrors.NewFieldValidationError(issues)
	}

	return nil
}

// validateDirection rejects unknown directions and enforces that training
// causes are always offerings.
func validateDirection(category entity.Category, causeType entity.CauseType) []domainerrors.FieldIssue {
	if !causeType.IsValid() {
		return []domainerrors.FieldIssue{{Field: "cause_type", Reason: "must be offered or wanted"}}
	}
	if category == entity.CategoryTraining && causeType != entity.CauseTypeOffered {
		return []domainerrors.FieldIssue{{Field: "cause_type", Reason: "training causes are always offered"}}
	}

	return nil
}

// validateCommonFields re-checks the shared field rules against a cause's
// current values, so a partial edit cannot drop a field below the bar it
// cleared at publication.
func validateCommonFields(cause *entity.Cause) []domainerrors.FieldIssue {
	common := schema.ValueBag{
		"title":         cause.Title,
		"description":   cause.Description,
		"location":      cause.Location,
		"priority":      string(cause.Priority),
		"contact_email": cause.ContactEmail,
	}
	if cause.ContactPhone != "" {
		common["contact_phone"] = cause.ContactPhone
	}
	if len(cause.Tags) > 0 {
		common["tags"] = cause.Tags
	}

	return toFieldIssues(authoring.ValidateCommon(common))
}

func validateDetail(category entity.Category, detail entity.CategoryDetail) []domainerrors.FieldIssue {
	if detail != nil && detail.DetailCategory() != category {
		return []domainerrors.FieldIssue{{Field: "category_details", Reason: "does not match the cause category"}}
	}

	bag := schema.NewValueBag()
	if detail != nil {
		converted, err := schema.StructToBag(detail)
		if err != nil {
			return []domainerrors.FieldIssue{{Field: "category_details", Reason: "could not be read"}}
		}
		bag = converted
	}

	return toFieldIssues(authoring.ValidateCategory(category, bag))
}

func toFieldIssues(errs []authoring.FieldError) []domainerrors.FieldIssue {
	if len(errs) == 0 {
		return nil
	}

	issues := make([]domainerrors.FieldIssue, 0, len(errs))
	for _, e := range errs {
		issues = append(issues, domainerrors.FieldIssue{Field: e.Field, Reason: e.Reason})
	}

	return issues
}

// applyCauseUpdate merges non-nil input fields into the cause.
func applyCauseUpdate(cause *entity.Cause, input *usecase.UpdateCauseInput) {
	if input.Title != nil {
		cause.Title = *input.Title
	}
	if input.Description != nil {
		cause.Description = *input.Description
	}
	if input.Location != nil {
		cause.Location = *input.Location
	}
	if input.Priority != nil {
		cause.Priority = *input.Priority
	}
	if input.ContactEmail != nil {
		cause.ContactEmail = *input.ContactEmail
	}
	if input.ContactPhone != nil {
		cause.ContactPhone = *input.ContactPhone
	}
	if input.Tags != nil {
		cause.Tags = input.Tags
	}
	if input.Images != nil {
		cause.Images = input.Images
	}
	if input.Details != nil {
		cause.Details = input.Details
	}
}
