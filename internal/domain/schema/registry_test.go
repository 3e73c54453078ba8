package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"causes/internal/domain/entity"
)

func TestSchemaFor_AllCategoriesHaveSchemas(t *testing.T) {
	for _, category := range entity.Categories() {
		defs := SchemaFor(category)
		require.NotEmpty(t, defs, "category %s has no schema", category)

		seen := map[string]bool{}
		for _, def := range defs {
			assert.NotEmpty(t, def.Name, "category %s has an unnamed field", category)
			assert.NotEmpty(t, def.Label, "field %s has no label", def.Name)
			assert.True(t, def.Kind.IsValid(), "field %s has invalid kind %s", def.Name, def.Kind)
			assert.False(t, seen[def.Name], "field %s declared twice in %s", def.Name, category)
			seen[def.Name] = true

			if def.Kind == KindSingleSelect || def.Kind == KindMultiSelect {
				assert.NotEmpty(t, def.Options, "select field %s has no options", def.Name)
			}
			if def.Kind == KindSubRecordList {
				assert.NotEmpty(t, def.SubSchema, "sub-record field %s has no sub-schema", def.Name)
			}
			if def.ShowIf != nil {
				assert.True(t, seen[def.ShowIf.Field],
					"field %s is conditioned on %s which is not declared before it", def.Name, def.ShowIf.Field)
			}
		}
	}
}

func TestSchemaFor_UnknownCategory(t *testing.T) {
	assert.Nil(t, SchemaFor(entity.Category("furniture")))
}

func TestSchemaFor_RequiredFieldsPerCategory(t *testing.T) {
	tests := []struct {
		category entity.Category
		required []string
	}{
		{entity.CategoryFood, []string{"food_type", "quantity", "unit", "temperature_requirements"}},
		{entity.CategoryClothes, []string{"clothes_type", "age_group", "sizes", "condition", "quantity"}},
		{entity.CategoryTraining, []string{
			"training_type", "skill_level", "topics", "max_trainees",
			"duration_hours", "start_date", "end_date", "delivery_method", "instructors",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.category.String(), func(t *testing.T) {
			required := map[string]bool{}
			for _, def := range SchemaFor(tt.category) {
				if def.Required {
					required[def.Name] = true
				}
			}
			for _, name := range tt.required {
				assert.True(t, required[name], "%s should be required for %s", name, tt.category)
			}
		})
	}
}

func TestCommonSchema_CoversBasicInfo(t *testing.T) {
	byName := map[string]FieldDefinition{}
	for _, def := range CommonSchema() {
		byName[def.Name] = def
	}

	require.Contains(t, byName, "title")
	assert.Equal(t, 10, byName["title"].MinLength)
	require.Contains(t, byName, "description")
	assert.Equal(t, 20, byName["description"].MinLength)
	require.Contains(t, byName, "contact_email")
	assert.True(t, byName["contact_email"].Required)
	assert.Equal(t, FormatEmail, byName["contact_email"].Format)
	require.Contains(t, byName, "contact_phone")
	assert.False(t, byName["contact_phone"].Required)
}

func TestFieldDefinition_OptionLabel(t *testing.T) {
	def := FieldDefinition{Options: []Option{{Value: "kg", Label: "Kilograms"}}}

	assert.Equal(t, "Kilograms", def.OptionLabel("kg"))
	// Unknown values fall back to the raw value so old records still render.
	assert.Equal(t, "stone", def.OptionLabel("stone"))
}
