package authoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"causes/internal/domain/entity"
	"causes/internal/domain/schema"
)

func TestRenderForm_ControlsMirrorSchema(t *testing.T) {
	defs := schema.SchemaFor(entity.CategoryFood)
	bag := schema.ValueBag{"food_type": "baked-goods"}

	controls := RenderForm(defs, bag)
	require.Len(t, controls, len(defs))

	byName := map[string]Control{}
	for _, c := range controls {
		byName[c.Name] = c
	}

	foodType := byName["food_type"]
	assert.Equal(t, schema.KindSingleSelect, foodType.Kind)
	assert.True(t, foodType.Required)
	assert.Equal(t, "baked-goods", foodType.Value)
	assert.NotEmpty(t, foodType.Options)

	// Conditionally hidden until its gate flag is set.
	assert.False(t, byName["delivery_radius"].Visible)

	bag["delivery_available"] = true
	controls = RenderForm(defs, bag)
	for _, c := range controls {
		if c.Name == "delivery_radius" {
			assert.True(t, c.Visible)
		}
	}
}

func TestRenderField_SubRecordEntries(t *testing.T) {
	defs := schema.SchemaFor(entity.CategoryTraining)
	def := findField(defs, "instructors")
	require.NotNil(t, def)

	bag := schema.ValueBag{
		"instructors": []schema.ValueBag{
			{"name": "Amira Haddad", "email": "amira@example.org"},
			{},
		},
	}

	control := RenderField(def, bag)
	require.Len(t, control.Entries, 2)
	assert.Equal(t, "Amira Haddad", control.Entries[0][0].Value)
	assert.Nil(t, control.Entries[1][0].Value)
	assert.NotEmpty(t, control.SubSchema)
}

func TestApply_PreservesSiblingValues(t *testing.T) {
	defs := schema.SchemaFor(entity.CategoryFood)
	bag := schema.ValueBag{
		"food_type": "cooked-meal",
		"quantity":  float64(20),
		"allergens": []string{"nuts"},
	}

	require.NoError(t, Apply(defs, bag, "quantity", float64(25)))

	n, _ := bag.Number("quantity")
	assert.Equal(t, float64(25), n)
	assert.Equal(t, "cooked-meal", bag.String("food_type"))
	assert.Equal(t, []string{"nuts"}, bag.Strings("allergens"))
}

func TestApply_CoercesBoundShapes(t *testing.T) {
	defs := schema.SchemaFor(entity.CategoryFood)
	bag := schema.NewValueBag()

	// JSON binding produces []any for lists and int for whole numbers.
	require.NoError(t, Apply(defs, bag, "allergens", []any{"nuts", "dairy"}))
	require.NoError(t, Apply(defs, bag, "quantity", 12))

	assert.Equal(t, []string{"nuts", "dairy"}, bag.Strings("allergens"))
	n, ok := bag.Number("quantity")
	require.True(t, ok)
	assert.Equal(t, float64(12), n)
}

func TestApply_RejectsUndeclaredField(t *testing.T) {
	defs := schema.SchemaFor(entity.CategoryFood)
	bag := schema.NewValueBag()

	err := Apply(defs, bag, "smuggled", "value")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownField)
	assert.Empty(t, bag)
}

func TestApply_NilClearsField(t *testing.T) {
	defs := schema.SchemaFor(entity.CategoryFood)
	bag := schema.ValueBag{"cuisine": "asian"}

	require.NoError(t, Apply(defs, bag, "cuisine", nil))
	_, present := bag["cuisine"]
	assert.False(t, present)
}
