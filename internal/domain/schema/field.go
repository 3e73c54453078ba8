// Package schema is the Field Schema Registry: declarative, data-only
// definitions of the attributes each cause category requires. It is the
// single source of truth for "what must be asked" during authoring and
// "what may be shown" during presentation; both sides walk the same tables.
package schema

// FieldKind classifies how a field is captured and displayed. Components
// dispatch on kind; nothing outside this package branches per category
// beyond the closed-union dispatch in the entity and presenter layers.
type FieldKind string

const (
	KindText          FieldKind = "text"
	KindNumber        FieldKind = "number"
	KindSingleSelect  FieldKind = "singleSelect"
	KindMultiSelect   FieldKind = "multiSelect"
	KindTags          FieldKind = "tags"
	KindDate          FieldKind = "date"
	KindTime          FieldKind = "time"
	KindBoolean       FieldKind = "boolean"
	KindRichText      FieldKind = "richText"
	KindSubRecordList FieldKind = "repeatableSubRecord"
)

// IsValid checks if the FieldKind is a valid value.
func (k FieldKind) IsValid() bool {
	switch k {
	case KindText, KindNumber, KindSingleSelect, KindMultiSelect, KindTags,
		KindDate, KindTime, KindBoolean, KindRichText, KindSubRecordList:
		return true
	default:
		return false
	}
}

// Option is one enumerated choice for a select field.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Condition gates a field's visibility on the current value of a sibling
// field. A hidden field is neither validated nor displayed.
type Condition struct {
	Field  string `json:"field"`
	Equals any    `json:"equals"`
}

// FieldFormat names a well-known text format the validator checks.
type FieldFormat string

const (
	// FormatEmail requires an RFC-5322-ish address.
	FormatEmail FieldFormat = "email"
)

// FieldDefinition is the pure-data description of one authorable attribute.
// Field names are snake_case and match the JSON keys of the persisted
// category detail record; that naming is the shared contract between the
// authoring write path and the presentation read path.
type FieldDefinition struct {
	Name        string            `json:"name"`
	Label       string            `json:"label"`
	Kind        FieldKind         `json:"kind"`
	Required    bool              `json:"required"`
	Options     []Option          `json:"options,omitempty"`
	Min         *float64          `json:"min,omitempty"`
	Max         *float64          `json:"max,omitempty"`
	MinLength   int               `json:"min_length,omitempty"`
	Placeholder string            `json:"placeholder,omitempty"`
	Format      FieldFormat       `json:"format,omitempty"`
	Group       string            `json:"group,omitempty"` // Presentation section this field belongs to.
	ShowIf      *Condition        `json:"show_if,omitempty"`
	SubSchema   []FieldDefinition `json:"sub_schema,omitempty"` // For KindSubRecordList entries.
	MinItems    int               `json:"min_items,omitempty"`  // For KindSubRecordList.
}

// HasOption reports whether value is one of the field's enumerated options.
func (f *FieldDefinition) HasOption(value string) bool {
	for _, opt := range f.Options {
		if opt.Value == value {
			return true
		}
	}

	return false
}

// OptionLabel returns the display label for an option value, falling back to
// the raw value when the option is not declared (tolerates persisted records
// written before an option set changed).
func (f *FieldDefinition) OptionLabel(value string) string {
	for _, opt := range f.Options {
		if opt.Value == value {
			return opt.Label
		}
	}

	return value
}

func ptr(v float64) *float64 {
	return &v
}
