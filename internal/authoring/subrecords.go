package authoring

import (
	"github.com/pkg/errors"

	"causes/internal/domain/schema"
)

// ListOp identifies one mutation of a repeatable sub-record list.
type ListOp string

const (
	// ListOpAdd appends a new entry at the end of the list.
	ListOpAdd ListOp = "add"
	// ListOpUpdate merges field values into the entry at Index.
	ListOpUpdate ListOp = "update"
	// ListOpRemove deletes the entry at Index.
	ListOpRemove ListOp = "remove"
)

// ListChange describes one reducer operation. Value carries the new entry
// for add (nil means a blank entry) or the fields to merge for update.
type ListChange struct {
	Op    ListOp          `json:"op"`
	Index int             `json:"index,omitempty"`
	Value schema.ValueBag `json:"value,omitempty"`
}

// ReduceSubRecords applies one change to a sub-record list and returns the
// new list, leaving the input untouched. It is a pure function so the
// repeatable-entry behavior is testable without any rendering surface.
// Minimum-length rules (training requires one instructor) belong to the
// validator, not here: removal down to zero entries is allowed mid-edit.
func ReduceSubRecords(list []schema.ValueBag, change ListChange) ([]schema.ValueBag, error) {
	next := make([]schema.ValueBag, 0, len(list)+1)
	for _, record := range list {
		next = append(next, record.Clone())
	}

	switch change.Op {
	case ListOpAdd:
		entry := change.Value
		if entry == nil {
			entry = schema.NewValueBag()
		}
		next = append(next, entry.Clone())

	case ListOpUpdate:
		if change.Index < 0 || change.Index >= len(next) {
			return nil, errors.Errorf("sub-record index %d out of range", change.Index)
		}
		for k, v := range change.Value {
			next[change.Index][k] = v
		}

	case ListOpRemove:
		if change.Index < 0 || change.Index >= len(next) {
			return nil, errors.Errorf("sub-record index %d out of range", change.Index)
		}
		next = append(next[:change.Index], next[change.Index+1:]...)

	default:
		return nil, errors.Errorf("unknown sub-record operation: %s", change.Op)
	}

	return next, nil
}
