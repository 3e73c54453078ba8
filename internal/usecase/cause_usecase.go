package usecase

import (
	"context"

	"causes/internal/domain/entity"
	"causes/internal/presenter"

	"github.com/google/uuid"
)

// CreateCauseInput represents the input for publishing a new cause
type CreateCauseInput struct {
	Title        string                `json:"title"`
	Description  string                `json:"description"`
	Category     entity.Category       `json:"category"`
	CauseType    entity.CauseType      `json:"cause_type"`
	Location     string                `json:"location"`
	Priority     entity.Priority       `json:"priority"`
	ContactEmail string                `json:"contact_email"`
	ContactPhone string                `json:"contact_phone,omitempty"`
	Tags         []string              `json:"tags,omitempty"`
	Images       []string              `json:"images,omitempty"`
	Details      entity.CategoryDetail `json:"category_details,omitempty"`
}

// UpdateCauseInput represents the input for updating an existing cause.
// Nil fields are left unchanged; Details replaces the whole detail record.
type UpdateCauseInput struct {
	Title        *string               `json:"title,omitempty"`
	Description  *string               `json:"description,omitempty"`
	Location     *string               `json:"location,omitempty"`
	Priority     *entity.Priority      `json:"priority,omitempty"`
	ContactEmail *string               `json:"contact_email,omitempty"`
	ContactPhone *string               `json:"contact_phone,omitempty"`
	Tags         []string              `json:"tags,omitempty"`
	Images       []string              `json:"images,omitempty"`
	Details      entity.CategoryDetail `json:"category_details,omitempty"`
}

// ListCausesInput narrows and pages a cause listing
type ListCausesInput struct {
	Category  entity.Category  `json:"category,omitempty"`
	CauseType entity.CauseType `json:"cause_type,omitempty"`
	Priority  entity.Priority  `json:"priority,omitempty"`
	CreatorID uuid.UUID        `json:"creator_id,omitempty"`
	Page      int              `json:"page"`
	PerPage   int              `json:"per_page"`
}

// CauseList is a page of causes plus the total match count
type CauseList struct {
	Causes []*entity.Cause `json:"causes"`
	Total  int64           `json:"total"`
}

// CausePresentation is a cause together with its rendered display sections
type CausePresentation struct {
	Cause    *entity.Cause       `json:"cause"`
	Sections []presenter.Section `json:"sections"`
}

// CauseUsecase defines the interface for cause management use cases
type CauseUsecase interface {
	// CreateCause validates and publishes a new cause for the creator
	CreateCause(ctx context.Context, creator entity.Creator, input *CreateCauseInput) (*entity.Cause, error)

	// GetCause retrieves a cause and records the view
	GetCause(ctx context.Context, id uuid.UUID) (*entity.Cause, error)

	// GetCausePresentation retrieves a cause with display sections for a locale
	GetCausePresentation(ctx context.Context, id uuid.UUID, locale string) (*CausePresentation, error)

	// ListCauses retrieves a filtered page of causes
	ListCauses(ctx context.Context, input *ListCausesInput) (*CauseList, error)

	// UpdateCause applies a partial update; only the creator may modify a cause
	UpdateCause(ctx context.Context, userID, causeID uuid.UUID, input *UpdateCauseInput) (*entity.Cause, error)

	// LikeCause records a like on a cause
	LikeCause(ctx context.Context, id uuid.UUID) error

	// GenerateShareQR renders a QR code image linking to the cause's public page
	GenerateShareQR(ctx context.Context, id uuid.UUID) ([]byte, error)
}
