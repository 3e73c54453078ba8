// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"causes/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCauseNotFound is a domain-specific error returned when a cause is not found.
var ErrCauseNotFound = errors.New("cause not found")

// ListCausesFilter narrows a cause listing. Zero values mean "no filter".
type ListCausesFilter struct {
	Category  entity.Category
	CauseType entity.CauseType
	Priority  entity.Priority
	CreatorID uuid.UUID
	Limit     int
	Offset    int
}

// CauseRepository defines the standard operations for cause persistence.
// The application layer will depend on this interface, not the concrete implementation.
type CauseRepository interface {
	// FindByID retrieves a single cause by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Cause, error)

	// List retrieves causes matching the filter, newest first, and the total
	// match count before paging.
	List(ctx context.Context, filter ListCausesFilter) ([]*entity.Cause, int64, error)

	// Create persists a new cause entity to the storage.
	Create(ctx context.Context, cause *entity.Cause) error

	// Update modifies an existing cause entity in the storage.
	Update(ctx context.Context, cause *entity.Cause) error

	// IncrementViewCount atomically bumps the view counter.
	IncrementViewCount(ctx context.Context, id uuid.UUID) error

	// IncrementLikeCount atomically adjusts the like counter by delta.
	IncrementLikeCount(ctx context.Context, id uuid.UUID, delta int) error
}
