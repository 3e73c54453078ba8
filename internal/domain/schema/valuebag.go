package schema

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// ValueBag is the in-progress, mutable collection of field values during
// authoring. Keys are field names as declared in the registry; values are
// the JSON-shaped types produced by binding (string, float64, bool,
// []string/[]any, []ValueBag for sub-record lists).
type ValueBag map[string]any

// NewValueBag returns an empty value bag.
func NewValueBag() ValueBag {
	return ValueBag{}
}

// Clone returns a deep copy of the bag via a JSON round trip. Used when a
// snapshot must not observe later edits (e.g. a submission payload).
func (b ValueBag) Clone() ValueBag {
	if b == nil {
		return nil
	}

	raw, err := json.Marshal(b)
	if err != nil {
		// A bag only ever holds JSON-shaped values, so this cannot fail in
		// practice; fall back to a shallow copy rather than panic.
		clone := make(ValueBag, len(b))
		for k, v := range b {
			clone[k] = v
		}

		return clone
	}

	var clone ValueBag
	if err := json.Unmarshal(raw, &clone); err != nil {
		clone = make(ValueBag, len(b))
		for k, v := range b {
			clone[k] = v
		}
	}

	return clone
}

// String returns the string value for a field, or empty when absent or not
// a string.
func (b ValueBag) String(name string) string {
	s, _ := b[name].(string)

	return s
}

// Number returns the numeric value for a field. The second return reports
// whether a numeric value was present (ints and json float64s both count).
func (b ValueBag) Number(name string) (float64, bool) {
	switch v := b[name].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()

		return f, err == nil
	default:
		return 0, false
	}
}

// Bool returns the boolean value for a field, false when absent.
func (b ValueBag) Bool(name string) bool {
	v, _ := b[name].(bool)

	return v
}

// Strings returns the string-slice value for a field, normalizing the
// []any shape produced by JSON unmarshalling.
func (b ValueBag) Strings(name string) []string {
	switch v := b[name].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}

		return out
	default:
		return nil
	}
}

// SubRecords returns the sub-record list for a field, normalizing the
// []any/map[string]any shapes produced by JSON unmarshalling.
func (b ValueBag) SubRecords(name string) []ValueBag {
	switch v := b[name].(type) {
	case []ValueBag:
		return v
	case []map[string]any:
		out := make([]ValueBag, 0, len(v))
		for _, item := range v {
			out = append(out, ValueBag(item))
		}

		return out
	case []any:
		out := make([]ValueBag, 0, len(v))
		for _, item := range v {
			switch rec := item.(type) {
			case map[string]any:
				out = append(out, ValueBag(rec))
			case ValueBag:
				out = append(out, rec)
			}
		}

		return out
	default:
		return nil
	}
}

// IsEmptyValue reports whether a bag value counts as "not provided".
// Zero-valued booleans and empty collections are absent: a false flag or an
// empty list never renders a row and never satisfies a required field.
func IsEmptyValue(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return val == ""
	case bool:
		return !val
	case []string:
		return len(val) == 0
	case []any:
		return len(val) == 0
	case []ValueBag:
		return len(val) == 0
	case []map[string]any:
		return len(val) == 0
	case map[string]any:
		return len(val) == 0
	case ValueBag:
		return len(val) == 0
	default:
		return false
	}
}

// BagToStruct decodes a value bag into a typed record (a category detail
// variant) through its JSON representation. This is the write-side half of
// the shared authoring/presentation contract.
func BagToStruct(bag ValueBag, out any) error {
	raw, err := json.Marshal(bag)
	if err != nil {
		return errors.Wrap(err, "failed to marshal value bag")
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return errors.Wrap(err, "failed to decode value bag into record")
	}

	return nil
}

// StructToBag encodes a typed record into a value bag through its JSON
// representation. This is the read-side half of the shared contract: the
// presenter walks registry fields over the resulting bag.
func StructToBag(in any) (ValueBag, error) {
	if in == nil {
		return nil, nil
	}

	raw, err := json.Marshal(in)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal record")
	}

	var bag ValueBag
	if err := json.Unmarshal(raw, &bag); err != nil {
		return nil, errors.Wrap(err, "failed to decode record into value bag")
	}

	return bag, nil
}
