package usecase

import (
	"context"

	"causes/internal/authoring"
	"causes/internal/domain/entity"

	"github.com/google/uuid"
)

// SessionView is the render-ready state of one authoring session: the current
// step, its form controls, and any errors from the last gated transition.
type SessionView struct {
	SessionID   uuid.UUID              `json:"session_id"`
	State       authoring.State        `json:"state"`
	Category    entity.Category        `json:"category,omitempty"`
	CauseType   entity.CauseType       `json:"cause_type,omitempty"`
	Form        []authoring.Control    `json:"form,omitempty"`
	Images      []string               `json:"images,omitempty"`
	FieldErrors []authoring.FieldError `json:"field_errors,omitempty"`
	SubmitError string                 `json:"submit_error,omitempty"`
	CauseID     uuid.UUID              `json:"cause_id,omitempty"`
}

// SubRecordEdit addresses one reducer operation on a repeatable field
type SubRecordEdit struct {
	Field  string               `json:"field"`
	Change authoring.ListChange `json:"change"`
}

// AuthoringUsecase drives the step-by-step cause authoring workflow. Each
// session belongs to one creator and is addressed by its session ID.
type AuthoringUsecase interface {
	// StartSession opens a new authoring session for the creator
	StartSession(ctx context.Context, creator entity.Creator) (*SessionView, error)

	// GetSession returns the current state of a session
	GetSession(ctx context.Context, sessionID uuid.UUID) (*SessionView, error)

	// SelectCategory picks or switches the session's category
	SelectCategory(ctx context.Context, sessionID uuid.UUID, category entity.Category) (*SessionView, error)

	// SelectDirection records the offer/request direction
	SelectDirection(ctx context.Context, sessionID uuid.UUID, causeType entity.CauseType) (*SessionView, error)

	// SetCommonFields applies edits to the shared basic info fields
	SetCommonFields(ctx context.Context, sessionID uuid.UUID, values map[string]any) (*SessionView, error)

	// SetDetailFields applies edits to the category detail fields
	SetDetailFields(ctx context.Context, sessionID uuid.UUID, values map[string]any) (*SessionView, error)

	// EditSubRecords applies one add/update/remove operation to a repeatable field
	EditSubRecords(ctx context.Context, sessionID uuid.UUID, edit *SubRecordEdit) (*SessionView, error)

	// SetImages replaces the session's ordered image references
	SetImages(ctx context.Context, sessionID uuid.UUID, images []string) (*SessionView, error)

	// Advance moves from basic info to category details, gated by validation
	Advance(ctx context.Context, sessionID uuid.UUID) (*SessionView, error)

	// Back navigates to an earlier step, keeping entered values
	Back(ctx context.Context, sessionID uuid.UUID, target authoring.State) (*SessionView, error)

	// Submit validates and persists the cause
	Submit(ctx context.Context, sessionID uuid.UUID) (*SessionView, error)

	// CloseSession disposes a session; an in-flight submission is discarded
	CloseSession(ctx context.Context, sessionID uuid.UUID) error
}
