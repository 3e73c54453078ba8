// Package presenter is the read-side mirror of the authoring engine: it
// reconstructs a grouped, human-readable presentation from a persisted
// category detail record. It walks the same Field Schema Registry the
// authoring form does, so a field cannot be displayed that was never
// authorable and the two sides cannot drift apart.
package presenter

import (
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"causes/internal/authoring"
	"causes/internal/domain/entity"
	"causes/internal/domain/schema"
)

// NotSpecified is rendered for a date value that is present but malformed.
// Missing values produce no row at all.
const NotSpecified = "Not specified"

const displayDateLayout = "January 2, 2006"

// Row is one label/value pair of a section.
type Row struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Section groups related rows under a title. A section with no rows and no
// badges is never emitted: absent data produces no visual row and no blank
// label.
type Section struct {
	Title  string   `json:"title"`
	Rows   []Row    `json:"rows,omitempty"`
	Badges []string `json:"badges,omitempty"`
}

// Presenter renders detail records for one viewer locale.
type Presenter struct {
	printer *message.Printer
}

// New creates a presenter for the given locale tag.
func New(tag language.Tag) *Presenter {
	return &Presenter{printer: message.NewPrinter(tag)}
}

// ForLocale parses a BCP 47 locale string, falling back to English.
func ForLocale(locale string) *Presenter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}

	return New(tag)
}

// Present builds the grouped display sections for a category detail record.
// A nil record yields no sections; a record missing fields the schema knows
// about simply omits those rows. Shape mismatches are never fatal.
func (p *Presenter) Present(category entity.Category, detail entity.CategoryDetail) []Section {
	if detail == nil {
		return nil
	}

	bag, err := schema.StructToBag(detail)
	if err != nil {
		return nil
	}

	sections := p.sectionsFromSchema(category, bag)

	// Per-category decoration: computed values that are not authorable
	// fields. Exhaustive over the closed category set.
	switch category {
	case entity.CategoryFood, entity.CategoryClothes:
		// All display data for these categories comes from the schema walk.
	case entity.CategoryTraining:
		sections = p.appendEnrollment(sections, bag)
	}

	return sections
}

// sectionsFromSchema walks the registry schema in declared order and fills
// sections keyed by each field's presentation group. Set boolean flags
// surface as badges on the first section rather than as "Yes" rows.
func (p *Presenter) sectionsFromSchema(category entity.Category, bag schema.ValueBag) []Section {
	defs := schema.SchemaFor(category)

	var order []string
	var badges []string
	rows := map[string][]Row{}

	for i := range defs {
		def := &defs[i]
		if !authoring.FieldVisible(def, bag) {
			continue
		}
		if schema.IsEmptyValue(bag[def.Name]) {
			continue
		}

		if def.Kind == schema.KindBoolean {
			badges = append(badges, def.Label)

			continue
		}

		value, ok := p.formatValue(def, bag)
		if !ok {
			continue
		}

		group := def.Group
		if group == "" {
			group = schema.GroupBasics
		}
		if _, seen := rows[group]; !seen {
			order = append(order, group)
		}
		rows[group] = append(rows[group], Row{Label: def.Label, Value: value})
	}

	sections := make([]Section, 0, len(order))
	for _, title := range order {
		sections = append(sections, Section{Title: title, Rows: rows[title]})
	}

	if len(badges) > 0 {
		if len(sections) == 0 {
			sections = []Section{{Title: schema.GroupBasics}}
		}
		sections[0].Badges = badges
	}

	return sections
}

// formatValue renders one non-empty field value for display. The second
// return is false when the field should produce no row after all.
func (p *Presenter) formatValue(def *schema.FieldDefinition, bag schema.ValueBag) (string, bool) {
	switch def.Kind {
	case schema.KindText, schema.KindRichText:
		return bag.String(def.Name), true

	case schema.KindSingleSelect:
		return def.OptionLabel(bag.String(def.Name)), true

	case schema.KindMultiSelect:
		values := bag.Strings(def.Name)
		labels := make([]string, 0, len(values))
		for _, v := range values {
			labels = append(labels, def.OptionLabel(v))
		}

		return strings.Join(labels, ", "), len(labels) > 0

	case schema.KindTags:
		return strings.Join(bag.Strings(def.Name), ", "), true

	case schema.KindNumber:
		n, ok := bag.Number(def.Name)
		if !ok {
			return "", false
		}

		return p.printer.Sprint(number.Decimal(n)), true

	case schema.KindDate:
		t, err := time.Parse(authoring.DateLayout, bag.String(def.Name))
		if err != nil {
			return NotSpecified, true
		}

		return t.Format(displayDateLayout), true

	case schema.KindTime:
		return bag.String(def.Name), true

	case schema.KindSubRecordList:
		summary := p.formatSubRecords(def, bag)

		return summary, summary != ""

	case schema.KindBoolean:
		// Handled as a badge by the caller.
		return "", false
	}

	return "", false
}

// formatSubRecords summarizes a sub-record list, one clause per entry.
func (p *Presenter) formatSubRecords(def *schema.FieldDefinition, bag schema.ValueBag) string {
	records := bag.SubRecords(def.Name)
	parts := make([]string, 0, len(records))
	for _, record := range records {
		name := record.String("name")
		if name == "" {
			continue
		}
		if email := record.String("email"); email != "" {
			name = name + " (" + email + ")"
		}
		if quals := record.Strings("qualifications"); len(quals) > 0 {
			name = name + ": " + strings.Join(quals, ", ")
		}
		parts = append(parts, name)
	}

	return strings.Join(parts, "; ")
}

// appendEnrollment adds the computed enrollment progress section for
// training causes.
func (p *Presenter) appendEnrollment(sections []Section, bag schema.ValueBag) []Section {
	maximum, ok := bag.Number("max_trainees")
	if !ok || maximum <= 0 {
		return sections
	}

	current, _ := bag.Number("current_trainees")
	ratio := current / maximum * 100
	// Persisted records may carry out-of-range counts; the displayed
	// completion ratio is always clamped to [0,100].
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 100 {
		ratio = 100
	}

	row := Row{
		Label: "Participants",
		Value: p.printer.Sprintf("%v of %v (%v%% full)",
			number.Decimal(current), number.Decimal(maximum), number.Decimal(int(ratio+0.5))),
	}

	return append(sections, Section{Title: "Enrollment", Rows: []Row{row}})
}
