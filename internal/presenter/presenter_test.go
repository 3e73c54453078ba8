package presenter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"causes/internal/domain/entity"
)

func findSection(sections []Section, title string) *Section {
	for i := range sections {
		if sections[i].Title == title {
			return &sections[i]
		}
	}

	return nil
}

func findRow(sections []Section, label string) *Row {
	for i := range sections {
		for j := range sections[i].Rows {
			if sections[i].Rows[j].Label == label {
				return &sections[i].Rows[j]
			}
		}
	}

	return nil
}

func TestPresent_FoodDetailRoundTrip(t *testing.T) {
	detail := &entity.FoodDetail{
		FoodType:                "cooked-meal",
		Quantity:                20,
		Unit:                    "portions",
		TemperatureRequirements: "hot",
		ExpirationDate:          "2026-09-05",
		Allergens:               []string{"nuts", "dairy"},
		PickupInstructions:      "Ring the side door bell between 5 and 7pm.",
		DeliveryAvailable:       true,
	}

	sections := New(language.English).Present(entity.CategoryFood, detail)
	require.NotEmpty(t, sections)

	row := findRow(sections, "Food type")
	require.NotNil(t, row)
	assert.Equal(t, "Cooked meal", row.Value)

	row = findRow(sections, "Quantity")
	require.NotNil(t, row)
	assert.Equal(t, "20", row.Value)

	row = findRow(sections, "Expires")
	require.NotNil(t, row)
	assert.Equal(t, "September 5, 2026", row.Value)

	row = findRow(sections, "Allergens")
	require.NotNil(t, row)
	assert.Equal(t, "Nuts, Dairy", row.Value)

	row = findRow(sections, "Pickup instructions")
	require.NotNil(t, row)
	assert.Equal(t, "Ring the side door bell between 5 and 7pm.", row.Value)
}

func TestPresent_SetBooleansBecomeBadges(t *testing.T) {
	detail := &entity.FoodDetail{
		FoodType:                "fresh-produce",
		Quantity:                10,
		Unit:                    "kg",
		TemperatureRequirements: "room-temperature",
		DeliveryAvailable:       true,
		IsUrgent:                true,
	}

	sections := New(language.English).Present(entity.CategoryFood, detail)
	require.NotEmpty(t, sections)

	assert.Contains(t, sections[0].Badges, "Delivery available")
	assert.Contains(t, sections[0].Badges, "Urgent")

	// Boolean flags never surface as label/value rows.
	assert.Nil(t, findRow(sections, "Delivery available"))
	assert.Nil(t, findRow(sections, "Urgent"))
}

func TestPresent_UnsetBooleanProducesNothing(t *testing.T) {
	detail := &entity.FoodDetail{
		FoodType:                "fresh-produce",
		Quantity:                10,
		Unit:                    "kg",
		TemperatureRequirements: "room-temperature",
	}

	sections := New(language.English).Present(entity.CategoryFood, detail)
	for _, s := range sections {
		assert.NotContains(t, s.Badges, "Urgent")
	}
}

func TestPresent_AbsentFieldsProduceNoRows(t *testing.T) {
	detail := &entity.ClothesDetail{
		ClothesType: "tops",
		AgeGroup:    "kids",
		Sizes:       []string{"s", "m"},
		Condition:   "good",
		Quantity:    4,
	}

	sections := New(language.English).Present(entity.CategoryClothes, detail)
	require.NotEmpty(t, sections)

	assert.Nil(t, findRow(sections, "Material"))
	assert.Nil(t, findRow(sections, "Care instructions"))
	for _, s := range sections {
		for _, r := range s.Rows {
			assert.NotEmpty(t, r.Value, "section %q renders a blank value for %q", s.Title, r.Label)
		}
	}
}

func TestPresent_MalformedDateRendersNotSpecified(t *testing.T) {
	detail := &entity.FoodDetail{
		FoodType:                "cooked-meal",
		Quantity:                20,
		Unit:                    "portions",
		TemperatureRequirements: "hot",
		ExpirationDate:          "soonish",
	}

	sections := New(language.English).Present(entity.CategoryFood, detail)
	row := findRow(sections, "Expires")
	require.NotNil(t, row)
	assert.Equal(t, NotSpecified, row.Value)
}

func TestPresent_TrainingEnrollmentIsClampedAndAppended(t *testing.T) {
	detail := &entity.TrainingDetail{
		TrainingType:    "workshop",
		SkillLevel:      "beginner",
		Topics:          []string{"computer-skills"},
		MaxTrainees:     10,
		CurrentTrainees: 15,
		DurationHours:   2,
		StartDate:       "2026-09-01",
		EndDate:         "2026-09-15",
		DeliveryMethod:  "in-person",
		IsFree:          true,
		Instructors: []entity.Instructor{
			{Name: "Amira Haddad", Email: "amira@example.org", Qualifications: []string{"Certified trainer"}},
		},
	}

	sections := New(language.English).Present(entity.CategoryTraining, detail)

	enrollment := findSection(sections, "Enrollment")
	require.NotNil(t, enrollment)
	require.Len(t, enrollment.Rows, 1)
	assert.Equal(t, "15 of 10 (100% full)", enrollment.Rows[0].Value)

	row := findRow(sections, "Instructors")
	require.NotNil(t, row)
	assert.Equal(t, "Amira Haddad (amira@example.org): Certified trainer", row.Value)
}

func TestPresent_TrainingWithoutMaxHasNoEnrollment(t *testing.T) {
	detail := &entity.TrainingDetail{
		TrainingType:   "workshop",
		SkillLevel:     "beginner",
		Topics:         []string{"computer-skills"},
		DurationHours:  2,
		StartDate:      "2026-09-01",
		EndDate:        "2026-09-15",
		DeliveryMethod: "in-person",
	}

	sections := New(language.English).Present(entity.CategoryTraining, detail)
	assert.Nil(t, findSection(sections, "Enrollment"))
}

func TestPresent_NilDetail(t *testing.T) {
	assert.Nil(t, New(language.English).Present(entity.CategoryFood, nil))
}

func TestForLocale_FallsBackToEnglish(t *testing.T) {
	p := ForLocale("not-a-locale")
	require.NotNil(t, p)

	detail := &entity.FoodDetail{
		FoodType:                "fresh-produce",
		Quantity:                1200,
		Unit:                    "kg",
		TemperatureRequirements: "room-temperature",
	}
	row := findRow(p.Present(entity.CategoryFood, detail), "Quantity")
	require.NotNil(t, row)
	assert.Equal(t, "1,200", row.Value)
}
