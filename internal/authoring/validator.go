// Package authoring implements the cause authoring engine: schema-driven
// validation, field rendering, the repeatable sub-record reducer and the
// multi-step workflow state machine. Everything here is pure in-memory
// logic; persistence happens only through the workflow's Submitter.
package authoring

import (
	"fmt"
	"regexp"
	"time"

	"causes/internal/domain/entity"
	"causes/internal/domain/schema"
)

// DateLayout is the wire format for date fields in value bags and persisted
// detail records.
const DateLayout = "2006-01-02"

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// FieldError reports one validation failure, addressed by field name.
// Sub-record entries are addressed as "instructors[2].email".
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

func (e FieldError) Error() string {
	return e.Field + ": " + e.Reason
}

// ValidateCommon checks the value bag of the BasicInfo step against the
// common field schema. An empty result means the step may advance.
func ValidateCommon(bag schema.ValueBag) []FieldError {
	return validateFields(schema.CommonSchema(), bag, "")
}

// ValidateCategory checks a category detail value bag against the
// category's registry schema, running the presence pass, the shape pass and
// the category's cross-field rules. It must be re-run on every attempted
// workflow transition; stale validity is never trusted.
func ValidateCategory(category entity.Category, bag schema.ValueBag) []FieldError {
	defs := schema.SchemaFor(category)
	if defs == nil {
		return []FieldError{{Field: "category", Reason: "unknown category"}}
	}

	errs := validateFields(defs, bag, "")
	errs = append(errs, crossFieldRules(category, bag)...)

	return errs
}

// FieldVisible reports whether a field is currently shown given the bag.
// Hidden fields are neither validated nor rendered.
func FieldVisible(def *schema.FieldDefinition, bag schema.ValueBag) bool {
	if def.ShowIf == nil {
		return true
	}

	switch want := def.ShowIf.Equals.(type) {
	case bool:
		return bag.Bool(def.ShowIf.Field) == want
	case string:
		return bag.String(def.ShowIf.Field) == want
	default:
		return true
	}
}

func validateFields(defs []schema.FieldDefinition, bag schema.ValueBag, prefix string) []FieldError {
	var errs []FieldError
	for i := range defs {
		def := &defs[i]
		if !FieldVisible(def, bag) {
			continue
		}

		name := def.Name
		if prefix != "" {
			name = prefix + "." + def.Name
		}

		value := bag[def.Name]
		if schema.IsEmptyValue(value) {
			if def.Required {
				errs = append(errs, FieldError{Field: name, Reason: "is required"})
			}

			continue
		}

		errs = append(errs, validateShape(def, name, value, bag)...)
	}

	return errs
}

// validateShape runs the per-kind well-formedness checks for a non-empty value.
func validateShape(def *schema.FieldDefinition, name string, value any, bag schema.ValueBag) []FieldError {
	var errs []FieldError

	switch def.Kind {
	case schema.KindText, schema.KindRichText:
		s, ok := value.(string)
		if !ok {
			return []FieldError{{Field: name, Reason: "must be text"}}
		}
		if def.MinLength > 0 && len([]rune(s)) < def.MinLength {
			errs = append(errs, FieldError{Field: name, Reason: fmt.Sprintf("must be at least %d characters", def.MinLength)})
		}
		if def.Format == schema.FormatEmail && !emailPattern.MatchString(s) {
			errs = append(errs, FieldError{Field: name, Reason: "must be a valid email address"})
		}

	case schema.KindNumber:
		n, ok := bag.Number(def.Name)
		if !ok {
			if _, isNum := value.(float64); !isNum {
				return []FieldError{{Field: name, Reason: "must be a number"}}
			}
		}
		if def.Min != nil && n < *def.Min {
			errs = append(errs, FieldError{Field: name, Reason: fmt.Sprintf("must be at least %v", *def.Min)})
		}
		if def.Max != nil && n > *def.Max {
			errs = append(errs, FieldError{Field: name, Reason: fmt.Sprintf("must be at most %v", *def.Max)})
		}

	case schema.KindSingleSelect:
		s, ok := value.(string)
		if !ok || (len(def.Options) > 0 && !def.HasOption(s)) {
			errs = append(errs, FieldError{Field: name, Reason: "is not a valid option"})
		}

	case schema.KindMultiSelect:
		for _, s := range bag.Strings(def.Name) {
			if len(def.Options) > 0 && !def.HasOption(s) {
				errs = append(errs, FieldError{Field: name, Reason: fmt.Sprintf("%q is not a valid option", s)})
			}
		}

	case schema.KindDate:
		s, ok := value.(string)
		if !ok {
			return []FieldError{{Field: name, Reason: "must be a date"}}
		}
		if _, err := time.Parse(DateLayout, s); err != nil {
			errs = append(errs, FieldError{Field: name, Reason: "must be a valid date (YYYY-MM-DD)"})
		}

	case schema.KindTime:
		s, ok := value.(string)
		if !ok {
			return []FieldError{{Field: name, Reason: "must be a time"}}
		}
		if _, err := time.Parse("15:04", s); err != nil {
			errs = append(errs, FieldError{Field: name, Reason: "must be a valid time (HH:MM)"})
		}

	case schema.KindBoolean:
		if _, ok := value.(bool); !ok {
			errs = append(errs, FieldError{Field: name, Reason: "must be a boolean"})
		}

	case schema.KindTags:
		if bag.Strings(def.Name) == nil {
			errs = append(errs, FieldError{Field: name, Reason: "must be a list of strings"})
		}

	case schema.KindSubRecordList:
		records := bag.SubRecords(def.Name)
		if def.MinItems > 0 && len(records) < def.MinItems {
			errs = append(errs, FieldError{Field: name, Reason: fmt.Sprintf("requires at least %d entry", def.MinItems)})
		}
		for i, record := range records {
			errs = append(errs, validateFields(def.SubSchema, record, fmt.Sprintf("%s[%d]", name, i))...)
		}
	}

	return errs
}

// crossFieldRules enforces the invariants that span multiple fields of one
// category. The switch is exhaustive over the closed category set.
func crossFieldRules(category entity.Category, bag schema.ValueBag) []FieldError {
	var errs []FieldError

	switch category {
	case entity.CategoryFood, entity.CategoryClothes:
		// All invariants for these categories are single-field.

	case entity.CategoryTraining:
		if current, ok := bag.Number("current_trainees"); ok {
			if maximum, ok := bag.Number("max_trainees"); ok && current > maximum {
				errs = append(errs, FieldError{Field: "current_trainees", Reason: "cannot exceed maximum participants"})
			}
		}

		start, startOK := parseBagDate(bag, "start_date")
		if end, ok := parseBagDate(bag, "end_date"); ok && startOK && end.Before(start) {
			errs = append(errs, FieldError{Field: "end_date", Reason: "must not be before the start date"})
		}
		if deadline, ok := parseBagDate(bag, "registration_deadline"); ok && startOK && deadline.After(start) {
			errs = append(errs, FieldError{Field: "registration_deadline", Reason: "must not be after the start date"})
		}

		if price, ok := bag.Number("price"); ok && bag.Bool("is_free") && price > 0 {
			errs = append(errs, FieldError{Field: "price", Reason: "cannot be set for a free offering"})
		}
	}

	return errs
}

func parseBagDate(bag schema.ValueBag, name string) (time.Time, bool) {
	s := bag.String(name)
	if s == "" {
		return time.Time{}, false
	}

	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, false
	}

	return t, true
}
