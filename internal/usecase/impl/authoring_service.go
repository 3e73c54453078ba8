package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"causes/config"
	"causes/internal/authoring"
	"causes/internal/domain/entity"
	domainerrors "causes/internal/domain/errors"
	"causes/internal/domain/schema"
	"causes/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultSessionTTL  = 30 * time.Minute
	defaultMaxSessions = 1000
)

// authoringSession pairs one workflow with its owner and idle timestamp.
type authoringSession struct {
	id       uuid.UUID
	creator  entity.Creator
	workflow *authoring.Workflow
	lastSeen time.Time
}

type authoringService struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*authoringSession

	causeUsecase usecase.CauseUsecase
	ttl          time.Duration
	maxSessions  int
	logger       *slog.Logger
}

// AuthoringServiceParams holds dependencies for AuthoringService, injected by Fx.
type AuthoringServiceParams struct {
	fx.In

	CauseUsecase usecase.CauseUsecase
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAuthoringService creates a new authoring session service instance
func NewAuthoringService(params AuthoringServiceParams) usecase.AuthoringUsecase {
	ttl := defaultSessionTTL
	maxSessions := defaultMaxSessions
	if cfg := params.Config.Authoring; cfg != nil {
		if cfg.SessionTTL > 0 {
			ttl = cfg.SessionTTL
		}
		if cfg.MaxSessions > 0 {
			maxSessions = cfg.MaxSessions
		}
	}

	return &authoringService{
		sessions:     make(map[uuid.UUID]*authoringSession),
		causeUsecase: params.CauseUsecase,
		ttl:          ttl,
		maxSessions:  maxSessions,
		logger:       params.Logger,
	}
}

// workflowSubmitter adapts the cause use case to the workflow's persistence
// collaborator interface, carrying the session creator along.
type workflowSubmitter struct {
	causeUsecase usecase.CauseUsecase
	creator      entity.Creator
}

// SubmitCause converts the assembled submission into a create input and
// persists it through the cause use case.
func (s *workflowSubmitter) SubmitCause(ctx context.Context, submission *authoring.Submission) (uuid.UUID, error) {
	input, err := submissionToInput(submission)
	if err != nil {
		return uuid.Nil, err
	}

	cause, err := s.causeUsecase.CreateCause(ctx, s.creator, input)
	if err != nil {
		return uuid.Nil, err
	}

	return cause.ID, nil
}

// submissionToInput maps the workflow's value bags onto the create input.
func submissionToInput(submission *authoring.Submission) (*usecase.CreateCauseInput, error) {
	detail, err := detailFromBag(submission.Category, submission.Details)
	if err != nil {
		return nil, err
	}

	return &usecase.CreateCauseInput{
		Title:        submission.Common.String("title"),
		Description:  submission.Common.String("description"),
		Category:     submission.Category,
		CauseType:    submission.CauseType,
		Location:     submission.Common.String("location"),
		Priority:     entity.Priority(submission.Common.String("priority")),
		ContactEmail: submission.Common.String("contact_email"),
		ContactPhone: submission.Common.String("contact_phone"),
		Tags:         submission.Common.Strings("tags"),
		Images:       submission.Images,
		Details:      detail,
	}, nil
}

// detailFromBag decodes a validated detail value bag into the category's
// detail variant.
func detailFromBag(category entity.Category, bag schema.ValueBag) (entity.CategoryDetail, error) {
	raw, err := json.Marshal(bag)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode detail values")
	}

	return entity.DecodeDetail(category, raw)
}

// StartSession opens a new authoring session for the creator
func (s *authoringService) StartSession(_ context.Context, creator entity.Creator) (*usecase.SessionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.evictExpiredLocked()
	if len(s.sessions) >= s.maxSessions {
		return nil, domainerrors.ErrSessionLimitExceeded
	}

	session := &authoringSession{
		id:       uuid.New(),
		creator:  creator,
		lastSeen: time.Now(),
	}
	session.workflow = authoring.NewWorkflow(&workflowSubmitter{
		causeUsecase: s.causeUsecase,
		creator:      creator,
	})
	s.sessions[session.id] = session

	s.logger.Info("authoring session started",
		slog.String("session_id", session.id.String()),
		slog.String("creator_id", creator.ID.String()),
	)

	return viewOf(session), nil
}

// GetSession returns the current state of a session
func (s *authoringService) GetSession(_ context.Context, sessionID uuid.UUID) (*usecase.SessionView, error) {
	session, err := s.lookup(sessionID)
	if err != nil {
		return nil, err
	}

	return viewOf(session), nil
}

// SelectCategory picks or switches the session's category
func (s *authoringService) SelectCategory(_ context.Context, sessionID uuid.UUID, category entity.Category) (*usecase.SessionView, error) {
	return s.apply(sessionID, func(w *authoring.Workflow) error {
		return w.SelectCategory(category)
	})
}

// SelectDirection records the offer/request direction
func (s *authoringService) SelectDirection(_ context.Context, sessionID uuid.UUID, causeType entity.CauseType) (*usecase.SessionView, error) {
	return s.apply(sessionID, func(w *authoring.Workflow) error {
		return w.SelectDirection(causeType)
	})
}

// SetCommonFields applies edits to the shared basic info fields
func (s *authoringService) SetCommonFields(_ context.Context, sessionID uuid.UUID, values map[string]any) (*usecase.SessionView, error) {
	return s.apply(sessionID, func(w *authoring.Workflow) error {
		return w.SetCommonFields(values)
	})
}

// SetDetailFields applies edits to the category detail fields
func (s *authoringService) SetDetailFields(_ context.Context, sessionID uuid.UUID, values map[string]any) (*usecase.SessionView, error) {
	return s.apply(sessionID, func(w *authoring.Workflow) error {
		return w.SetDetailFields(values)
	})
}

// EditSubRecords applies one add/update/remove operation to a repeatable field
func (s *authoringService) EditSubRecords(_ context.Context, sessionID uuid.UUID, edit *usecase.SubRecordEdit) (*usecase.SessionView, error) {
	return s.apply(sessionID, func(w *authoring.Workflow) error {
		return w.EditSubRecords(edit.Field, edit.Change)
	})
}

// SetImages replaces the session's ordered image references
func (s *authoringService) SetImages(_ context.Context, sessionID uuid.UUID, images []string) (*usecase.SessionView, error) {
	return s.apply(sessionID, func(w *authoring.Workflow) error {
		return w.SetImages(images)
	})
}

// Advance moves from basic info to category details, gated by validation
func (s *authoringService) Advance(_ context.Context, sessionID uuid.UUID) (*usecase.SessionView, error) {
	return s.apply(sessionID, func(w *authoring.Workflow) error {
		return w.Advance()
	})
}

// Back navigates to an earlier step, keeping entered values
func (s *authoringService) Back(_ context.Context, sessionID uuid.UUID, target authoring.State) (*usecase.SessionView, error) {
	return s.apply(sessionID, func(w *authoring.Workflow) error {
		return w.Back(target)
	})
}

// Submit validates and persists the cause. Validation failures are reported
// through the returned view, not as an error.
func (s *authoringService) Submit(ctx context.Context, sessionID uuid.UUID) (*usecase.SessionView, error) {
	session, err := s.lookup(sessionID)
	if err != nil {
		return nil, err
	}

	// The workflow releases its own lock around the persistence call, so the
	// session map lock must not be held here.
	submitErr := session.workflow.Submit(ctx)
	switch {
	case submitErr == nil,
		errors.Is(submitErr, authoring.ErrValidationFailed):
		// Outcome is carried in the snapshot.
	case errors.Is(submitErr, authoring.ErrSubmissionInFlight):
		return nil, domainerrors.ErrSubmissionInFlight
	case errors.Is(submitErr, authoring.ErrWorkflowClosed):
		return nil, domainerrors.ErrSessionNotFound
	case errors.Is(submitErr, authoring.ErrInvalidTransition):
		return nil, domainerrors.ErrWorkflowStep.WithDetails(submitErr.Error())
	default:
		// Persistence failed; the workflow kept the entered data and the
		// failure state, so the view lets the client retry.
		s.logger.Warn("cause submission failed",
			slog.String("session_id", sessionID.String()),
			slog.Any("error", submitErr),
		)
	}

	return viewOf(session), nil
}

// CloseSession disposes a session; an in-flight submission is discarded
func (s *authoringService) CloseSession(_ context.Context, sessionID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return domainerrors.ErrSessionNotFound
	}

	session.workflow.Close()
	delete(s.sessions, sessionID)

	return nil
}

// apply runs one workflow operation and returns the refreshed view.
// Transition errors map onto the API error surface; validation failures are
// part of the view.
func (s *authoringService) apply(sessionID uuid.UUID, op func(*authoring.Workflow) error) (*usecase.SessionView, error) {
	session, err := s.lookup(sessionID)
	if err != nil {
		return nil, err
	}

	if err := op(session.workflow); err != nil {
		switch {
		case errors.Is(err, authoring.ErrValidationFailed):
			// Field errors are in the snapshot.
		case errors.Is(err, authoring.ErrWorkflowClosed):
			return nil, domainerrors.ErrSessionNotFound
		case errors.Is(err, authoring.ErrInvalidTransition):
			return nil, domainerrors.ErrWorkflowStep.WithDetails(err.Error())
		default:
			return nil, domainerrors.ErrValidationFailed.WithDetails(err.Error())
		}
	}

	return viewOf(session), nil
}

// lookup fetches a live session and refreshes its idle timer.
func (s *authoringService) lookup(sessionID uuid.UUID) (*authoringSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.evictExpiredLocked()

	session, ok := s.sessions[sessionID]
	if !ok {
		return nil, domainerrors.ErrSessionNotFound
	}
	session.lastSeen = time.Now()

	return session, nil
}

// evictExpiredLocked disposes sessions idle past the TTL. Callers hold the lock.
func (s *authoringService) evictExpiredLocked() {
	cutoff := time.Now().Add(-s.ttl)
	for id, session := range s.sessions {
		if session.lastSeen.Before(cutoff) {
			session.workflow.Close()
			delete(s.sessions, id)
			s.logger.Info("authoring session expired",
				slog.String("session_id", id.String()),
			)
		}
	}
}

// viewOf renders the session snapshot into the transport-facing view.
func viewOf(session *authoringSession) *usecase.SessionView {
	snap := session.workflow.Snapshot()

	view := &usecase.SessionView{
		SessionID:   session.id,
		State:       snap.State,
		Category:    snap.Category,
		CauseType:   snap.CauseType,
		Images:      snap.Images,
		FieldErrors: snap.FieldErrors,
		SubmitError: snap.SubmitError,
		CauseID:     snap.CauseID,
	}

	switch snap.State {
	case authoring.StateBasicInfo:
		view.Form = authoring.RenderForm(schema.CommonSchema(), snap.Common)
	case authoring.StateCategoryDetails, authoring.StateFailed:
		view.Form = authoring.RenderForm(schema.SchemaFor(snap.Category), snap.Details)
	}

	return view
}
