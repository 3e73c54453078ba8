// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"encoding/json"

	"causes/internal/domain/entity"
	domainerrors "causes/internal/domain/errors"
	"causes/internal/domain/repository"
	"causes/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// causeRepository implements the domain.CauseRepository interface using GORM.
type causeRepository struct {
	db *gorm.DB
}

// NewCauseRepository is the constructor for causeRepository.
// It returns the repository as a domain.CauseRepository interface, adhering to dependency inversion.
func NewCauseRepository(db *gorm.DB) repository.CauseRepository {
	return &causeRepository{db: db}
}

// FindByID retrieves a single cause by its unique ID.
func (repo *causeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Cause, error) {
	var causeM model.CauseModel
	err := repo.db.WithContext(ctx).
		Where("id = ? AND deleted_at IS NULL", id).
		First(&causeM).Error

	if err != nil {
		// If the error is 'record not found', return a domain-specific error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCauseNotFound
		}
		// Otherwise, return the original database error.
		return nil, errors.Wrap(err, "failed to find cause by id")
	}

	// Map the persistence model back to a pure domain entity before returning.
	return toCauseDomain(&causeM), nil
}

// List retrieves causes matching the filter, newest first, with the total count.
func (repo *causeRepository) List(ctx context.Context, filter repository.ListCausesFilter) ([]*entity.Cause, int64, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.CauseModel{}).
		Where("deleted_at IS NULL")

	if filter.Category != "" {
		query = query.Where("category = ?", string(filter.Category))
	}
	if filter.CauseType != "" {
		query = query.Where("cause_type = ?", string(filter.CauseType))
	}
	if filter.Priority != "" {
		query = query.Where("priority = ?", string(filter.Priority))
	}
	if filter.CreatorID != uuid.Nil {
		query = query.Where("creator_id = ?", filter.CreatorID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count causes")
	}

	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var models []model.CauseModel
	if err := query.Order("created_at DESC").Find(&models).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list causes")
	}

	causes := make([]*entity.Cause, 0, len(models))
	for i := range models {
		causes = append(causes, toCauseDomain(&models[i]))
	}

	return causes, total, nil
}

// Create persists a new cause entity, including its detail document, to the database.
func (repo *causeRepository) Create(ctx context.Context, cause *entity.Cause) error {
	causeM, err := fromCauseDomain(cause)
	if err != nil {
		return domainerrors.ErrCauseCreationFailed.WrapMessage("failed to encode cause")
	}

	if err := repo.db.WithContext(ctx).Create(causeM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrCauseCreationFailed.WrapMessage("missing required cause information")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrCauseCreationFailed.WrapMessage("invalid foreign key reference")
		}
		// For other database errors, return a generic database error
		return domainerrors.NewDatabaseExecuteError(err, "failed to create cause")
	}

	// Update the cause entity with the generated ID and timestamps
	cause.ID = causeM.ID
	cause.CreatedAt = causeM.CreatedAt
	cause.UpdatedAt = causeM.UpdatedAt

	return nil
}

// Update modifies an existing cause entity in the database.
func (repo *causeRepository) Update(ctx context.Context, cause *entity.Cause) error {
	causeM, err := fromCauseDomain(cause)
	if err != nil {
		return domainerrors.ErrCauseUpdateFailed.WrapMessage("failed to encode cause")
	}

	if err := repo.db.WithContext(ctx).Save(causeM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrCauseUpdateFailed.WrapMessage("missing required cause information")
		}
		// For other database errors, return a generic database error
		return domainerrors.NewDatabaseExecuteError(err, "failed to update cause")
	}

	cause.UpdatedAt = causeM.UpdatedAt

	return nil
}

// IncrementViewCount atomically bumps the view counter.
func (repo *causeRepository) IncrementViewCount(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CauseModel{}).
		Where("id = ? AND deleted_at IS NULL", id).
		UpdateColumn("view_count", gorm.Expr("view_count + 1"))

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to increment view count")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCauseNotFound
	}

	return nil
}

// IncrementLikeCount atomically adjusts the like counter by delta.
func (repo *causeRepository) IncrementLikeCount(ctx context.Context, id uuid.UUID, delta int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CauseModel{}).
		Where("id = ? AND deleted_at IS NULL", id).
		UpdateColumn("like_count", gorm.Expr("GREATEST(like_count + ?, 0)", delta))

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to adjust like count")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCauseNotFound
	}

	return nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toCauseDomain converts a GORM CauseModel to a domain Cause entity.
// A detail document that no longer decodes (schema drift, manual edits) maps
// to a nil Details rather than failing the whole read.
func toCauseDomain(data *model.CauseModel) *entity.Cause {
	if data == nil {
		return nil
	}

	cause := &entity.Cause{
		ID:           data.ID,
		Title:        data.Title,
		Description:  data.Description,
		Category:     entity.Category(data.Category),
		CauseType:    entity.CauseType(data.CauseType),
		Location:     data.Location,
		Priority:     entity.Priority(data.Priority),
		ContactEmail: data.ContactEmail,
		ContactPhone: data.ContactPhone,
		ViewCount:    data.ViewCount,
		LikeCount:    data.LikeCount,
		Creator: entity.Creator{
			ID:          data.CreatorID,
			DisplayName: data.CreatorName,
			AvatarURL:   data.CreatorAvatar,
		},
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}

	if len(data.Tags) > 0 {
		_ = json.Unmarshal(data.Tags, &cause.Tags)
	}
	if len(data.Images) > 0 {
		_ = json.Unmarshal(data.Images, &cause.Images)
	}
	if detail, err := entity.DecodeDetail(cause.Category, data.CategoryDetails); err == nil {
		cause.Details = detail
	}

	return cause
}

// fromCauseDomain converts a domain Cause entity to a GORM CauseModel for persistence.
func fromCauseDomain(data *entity.Cause) (*model.CauseModel, error) {
	if data == nil {
		return nil, errors.New("cannot persist a nil cause")
	}

	causeM := &model.CauseModel{
		ID:            data.ID,
		Title:         data.Title,
		Description:   data.Description,
		Category:      string(data.Category),
		CauseType:     string(data.CauseType),
		Location:      data.Location,
		Priority:      string(data.Priority),
		ContactEmail:  data.ContactEmail,
		ContactPhone:  data.ContactPhone,
		ViewCount:     data.ViewCount,
		LikeCount:     data.LikeCount,
		CreatorID:     data.Creator.ID,
		CreatorName:   data.Creator.DisplayName,
		CreatorAvatar: data.Creator.AvatarURL,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}

	if len(data.Tags) > 0 {
		raw, err := json.Marshal(data.Tags)
		if err != nil {
			return nil, errors.Wrap(err, "failed to encode tags")
		}
		causeM.Tags = raw
	}
	if len(data.Images) > 0 {
		raw, err := json.Marshal(data.Images)
		if err != nil {
			return nil, errors.Wrap(err, "failed to encode images")
		}
		causeM.Images = raw
	}
	if data.Details != nil {
		raw, err := json.Marshal(data.Details)
		if err != nil {
			return nil, errors.Wrap(err, "failed to encode category details")
		}
		causeM.CategoryDetails = raw
	}

	return causeM, nil
}
