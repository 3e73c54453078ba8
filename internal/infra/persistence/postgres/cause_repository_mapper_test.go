package postgres

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"causes/internal/domain/entity"
	"causes/internal/infra/persistence/model"
)

func TestCauseMapper_RoundTrip(t *testing.T) {
	cause := &entity.Cause{
		ID:           uuid.New(),
		Title:        "Weekly soup kitchen surplus",
		Description:  "Twenty portions of hot soup left over from the community kitchen.",
		Category:     entity.CategoryFood,
		CauseType:    entity.CauseTypeOffered,
		Location:     "Riverside community center",
		Priority:     entity.PriorityHigh,
		ContactEmail: "kitchen@example.org",
		Tags:         []string{"soup", "hot-meal"},
		Images:       []string{"img-1.jpg", "img-2.jpg"},
		Details: &entity.FoodDetail{
			FoodType:                "cooked-meal",
			Quantity:                20,
			Unit:                    "portions",
			TemperatureRequirements: "hot",
			Allergens:               []string{"gluten"},
		},
		ViewCount: 7,
		LikeCount: 3,
		Creator: entity.Creator{
			ID:          uuid.New(),
			DisplayName: "Amira Haddad",
		},
		CreatedAt: time.Now().Add(-time.Hour),
		UpdatedAt: time.Now(),
	}

	causeM, err := fromCauseDomain(cause)
	require.NoError(t, err)
	assert.Equal(t, "food", causeM.Category)
	assert.NotEmpty(t, causeM.CategoryDetails)

	back := toCauseDomain(causeM)
	require.NotNil(t, back)
	assert.Equal(t, cause.ID, back.ID)
	assert.Equal(t, cause.Title, back.Title)
	assert.Equal(t, cause.Tags, back.Tags)
	assert.Equal(t, cause.Images, back.Images)
	assert.Equal(t, cause.Creator, back.Creator)

	detail, ok := back.Details.(*entity.FoodDetail)
	require.True(t, ok, "details should decode to the food variant")
	assert.Equal(t, "cooked-meal", detail.FoodType)
	assert.Equal(t, float64(20), detail.Quantity)
	assert.Equal(t, []string{"gluten"}, detail.Allergens)
}

func TestCauseMapper_PrimaryImage(t *testing.T) {
	cause := &entity.Cause{Images: []string{"cover.jpg", "extra.jpg"}}
	assert.Equal(t, "cover.jpg", cause.PrimaryImage())

	empty := &entity.Cause{}
	assert.Empty(t, empty.PrimaryImage())
}

func TestCauseMapper_MalformedDetailDocumentIsTolerated(t *testing.T) {
	causeM := &model.CauseModel{
		ID:        uuid.New(),
		Title:     "Old record with a broken detail blob",
		Category:  "food",
		CauseType: "offered",
	}
	causeM.CategoryDetails = []byte("{not json")

	back := toCauseDomain(causeM)
	require.NotNil(t, back)
	assert.Nil(t, back.Details)
	assert.Equal(t, entity.CategoryFood, back.Category)
}

func TestCauseMapper_EmptyDetailDocument(t *testing.T) {
	causeM := &model.CauseModel{
		ID:       uuid.New(),
		Category: "clothes",
	}

	back := toCauseDomain(causeM)
	require.NotNil(t, back)
	assert.Nil(t, back.Details)
}

func TestCauseMapper_NilCause(t *testing.T) {
	_, err := fromCauseDomain(nil)
	assert.Error(t, err)
	assert.Nil(t, toCauseDomain(nil))
}
