package authoring

import (
	"github.com/pkg/errors"

	"causes/internal/domain/schema"
)

// ErrUnknownField is returned when an edit addresses a field the active
// schema does not declare.
var ErrUnknownField = errors.New("unknown field")

// Control is the rendered form of one field definition against a value bag:
// everything a client needs to draw the input and nothing more. Rendering is
// a pure function of (definition, bag); edits flow back through Apply.
type Control struct {
	Name        string                   `json:"name"`
	Label       string                   `json:"label"`
	Kind        schema.FieldKind         `json:"kind"`
	Required    bool                     `json:"required"`
	Value       any                      `json:"value,omitempty"`
	Options     []schema.Option          `json:"options,omitempty"`
	Min         *float64                 `json:"min,omitempty"`
	Max         *float64                 `json:"max,omitempty"`
	Placeholder string                   `json:"placeholder,omitempty"`
	Group       string                   `json:"group,omitempty"`
	Visible     bool                     `json:"visible"`
	Entries     [][]Control              `json:"entries,omitempty"`    // One control row per sub-record entry.
	SubSchema   []schema.FieldDefinition `json:"sub_schema,omitempty"` // Blank-entry template for sub-record lists.
}

// RenderField produces the control for a single field definition given the
// current value bag.
func RenderField(def *schema.FieldDefinition, bag schema.ValueBag) Control {
	control := Control{
		Name:        def.Name,
		Label:       def.Label,
		Kind:        def.Kind,
		Required:    def.Required,
		Value:       bag[def.Name],
		Options:     def.Options,
		Min:         def.Min,
		Max:         def.Max,
		Placeholder: def.Placeholder,
		Group:       def.Group,
		Visible:     FieldVisible(def, bag),
	}

	if def.Kind == schema.KindSubRecordList {
		control.Value = nil
		control.SubSchema = def.SubSchema
		for _, record := range bag.SubRecords(def.Name) {
			control.Entries = append(control.Entries, RenderForm(def.SubSchema, record))
		}
	}

	return control
}

// RenderForm renders every definition in order against one value bag.
func RenderForm(defs []schema.FieldDefinition, bag schema.ValueBag) []Control {
	controls := make([]Control, 0, len(defs))
	for i := range defs {
		controls = append(controls, RenderField(&defs[i], bag))
	}

	return controls
}

// Apply wires one user edit back into the value bag. Only the named field
// changes; sibling values are never discarded. The value is coerced to the
// bag shape for the field's kind, and edits to undeclared fields are
// rejected so a client cannot smuggle keys past the schema.
func Apply(defs []schema.FieldDefinition, bag schema.ValueBag, name string, value any) error {
	def := findField(defs, name)
	if def == nil {
		return errors.Wrap(ErrUnknownField, name)
	}

	if value == nil {
		delete(bag, name)

		return nil
	}

	coerced, err := coerceValue(def, value)
	if err != nil {
		return err
	}
	bag[name] = coerced

	return nil
}

func findField(defs []schema.FieldDefinition, name string) *schema.FieldDefinition {
	for i := range defs {
		if defs[i].Name == name {
			return &defs[i]
		}
	}

	return nil
}

// coerceValue normalizes a bound JSON value to the canonical bag shape for
// the field kind. It deliberately does not validate: a malformed value must
// land in the bag so the validator can report it against the field.
func coerceValue(def *schema.FieldDefinition, value any) (any, error) {
	switch def.Kind {
	case schema.KindNumber:
		switch v := value.(type) {
		case float64:
			return v, nil
		case int:
			return float64(v), nil
		case int64:
			return float64(v), nil
		default:
			return value, nil
		}

	case schema.KindMultiSelect, schema.KindTags:
		switch v := value.(type) {
		case []string:
			return v, nil
		case []any:
			out := make([]string, 0, len(v))
			for _, item := range v {
				s, ok := item.(string)
				if !ok {
					return nil, errors.Errorf("field %s: list entries must be strings", def.Name)
				}
				out = append(out, s)
			}

			return out, nil
		default:
			return value, nil
		}

	case schema.KindSubRecordList:
		records := schema.ValueBag{def.Name: value}.SubRecords(def.Name)
		if records == nil {
			return nil, errors.Errorf("field %s: must be a list of records", def.Name)
		}

		return records, nil

	default:
		return value, nil
	}
}
