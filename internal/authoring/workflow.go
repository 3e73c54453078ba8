package authoring

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"causes/internal/domain/entity"
	"causes/internal/domain/schema"
)

// State names one step of the authoring workflow.
type State string

const (
	StateSelectCategory  State = "select_category"
	StateSelectDirection State = "select_direction"
	StateBasicInfo       State = "basic_info"
	StateCategoryDetails State = "category_details"
	StateSubmitting      State = "submitting"
	StateSucceeded       State = "succeeded"
	StateFailed          State = "failed"
)

// transitions is the allowed-transition table. Backward moves are listed
// explicitly; anything absent is rejected. There is no terminal state that
// forbids restarting.
var transitions = map[State][]State{
	StateSelectCategory:  {StateSelectDirection, StateBasicInfo},
	StateSelectDirection: {StateBasicInfo, StateSelectCategory},
	StateBasicInfo:       {StateCategoryDetails, StateSelectDirection, StateSelectCategory},
	StateCategoryDetails: {StateSubmitting, StateBasicInfo, StateSelectDirection, StateSelectCategory},
	StateSubmitting:      {StateSucceeded, StateFailed},
	StateFailed:          {StateSubmitting, StateCategoryDetails, StateBasicInfo, StateSelectDirection, StateSelectCategory},
	StateSucceeded:       {StateSelectCategory},
}

// Workflow-level errors. Validation failures are carried separately through
// FieldErrors so entered data and per-field messages survive the failure.
var (
	// ErrValidationFailed is returned when a gated transition is blocked;
	// details are available from FieldErrors.
	ErrValidationFailed = errors.New("validation failed")
	// ErrInvalidTransition is returned for a step change the table forbids.
	ErrInvalidTransition = errors.New("invalid workflow transition")
	// ErrSubmissionInFlight is returned when a submission is already outstanding.
	ErrSubmissionInFlight = errors.New("a submission is already in progress")
	// ErrWorkflowClosed is returned after the authoring surface was torn down.
	ErrWorkflowClosed = errors.New("authoring session is closed")
	// ErrNoCategory is returned when an operation needs a selected category.
	ErrNoCategory = errors.New("no category selected")
)

// Submission is the payload assembled by the final workflow transition:
// common fields, category tag, direction, detail value bag and image
// references, exactly as the persistence collaborator expects them.
type Submission struct {
	Category  entity.Category
	CauseType entity.CauseType
	Common    schema.ValueBag
	Details   schema.ValueBag
	Images    []string
}

// Submitter is the external persistence collaborator. The call may block on
// the network; the workflow stays in StateSubmitting for its duration.
type Submitter interface {
	SubmitCause(ctx context.Context, submission *Submission) (uuid.UUID, error)
}

// Workflow is the finite-state authoring machine for one session. A session
// owns its value bags exclusively; the mutex only serializes the session's
// own HTTP requests, there is no cross-session shared state.
type Workflow struct {
	mu sync.Mutex

	state     State
	category  entity.Category
	causeType entity.CauseType
	common    schema.ValueBag
	details   schema.ValueBag
	images    []string

	fieldErrors []FieldError
	submitError string
	causeID     uuid.UUID

	submitter  Submitter
	submitting bool
	closed     bool
}

// NewWorkflow creates a workflow in the initial SelectCategory state.
func NewWorkflow(submitter Submitter) *Workflow {
	return &Workflow{
		state:     StateSelectCategory,
		common:    schema.NewValueBag(),
		details:   schema.NewValueBag(),
		submitter: submitter,
	}
}

// Snapshot is a read-only view of the workflow for rendering.
type Snapshot struct {
	State       State
	Category    entity.Category
	CauseType   entity.CauseType
	Common      schema.ValueBag
	Details     schema.ValueBag
	Images      []string
	FieldErrors []FieldError
	SubmitError string
	CauseID     uuid.UUID
}

// Snapshot returns a consistent copy of the workflow's observable state.
func (w *Workflow) Snapshot() Snapshot {
	w.mu.Lock()
	defer w.mu.Unlock()

	return Snapshot{
		State:       w.state,
		Category:    w.category,
		CauseType:   w.causeType,
		Common:      w.common.Clone(),
		Details:     w.details.Clone(),
		Images:      append([]string(nil), w.images...),
		FieldErrors: append([]FieldError(nil), w.fieldErrors...),
		SubmitError: w.submitError,
		CauseID:     w.causeID,
	}
}

// SelectCategory picks or switches the category. Switching discards the
// previously entered detail bag and direction: the schemas are disjoint, so
// carrying values across categories would leak incompatible data.
func (w *Workflow) SelectCategory(category entity.Category) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return ErrWorkflowClosed
	}
	if w.state != StateSelectCategory {
		return errors.Wrapf(ErrInvalidTransition, "cannot select category in state %s", w.state)
	}
	if !category.IsValid() {
		return errors.Errorf("unknown category: %s", category)
	}

	if category != w.category {
		w.details = schema.NewValueBag()
		w.causeType = ""
		w.fieldErrors = nil
	}
	w.category = category

	// Training is always an offering; the direction step is skipped.
	if category == entity.CategoryTraining {
		w.causeType = entity.CauseTypeOffered

		return w.moveTo(StateBasicInfo)
	}

	return w.moveTo(StateSelectDirection)
}

// SelectDirection records the offer/request direction for non-training
// categories.
func (w *Workflow) SelectDirection(causeType entity.CauseType) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return ErrWorkflowClosed
	}
	if w.state != StateSelectDirection {
		return errors.Wrapf(ErrInvalidTransition, "cannot select direction in state %s", w.state)
	}
	if !causeType.IsValid() {
		return errors.Errorf("unknown cause type: %s", causeType)
	}

	w.causeType = causeType

	return w.moveTo(StateBasicInfo)
}

// SetCommonFields applies edits to the BasicInfo value bag. Each edit
// touches exactly one field; sibling values survive.
func (w *Workflow) SetCommonFields(values map[string]any) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return ErrWorkflowClosed
	}
	if w.state != StateBasicInfo {
		return errors.Wrapf(ErrInvalidTransition, "cannot edit basic info in state %s", w.state)
	}

	for name, value := range values {
		if err := Apply(schema.CommonSchema(), w.common, name, value); err != nil {
			return err
		}
	}

	return nil
}

// SetDetailFields applies edits to the category detail value bag.
func (w *Workflow) SetDetailFields(values map[string]any) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return ErrWorkflowClosed
	}
	if w.state != StateCategoryDetails && w.state != StateFailed {
		return errors.Wrapf(ErrInvalidTransition, "cannot edit details in state %s", w.state)
	}

	for name, value := range values {
		if err := Apply(schema.SchemaFor(w.category), w.details, name, value); err != nil {
			return err
		}
	}

	return nil
}

// EditSubRecords applies one reducer operation to a repeatable sub-record
// field (training instructors).
func (w *Workflow) EditSubRecords(field string, change ListChange) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return ErrWorkflowClosed
	}
	if w.state != StateCategoryDetails && w.state != StateFailed {
		return errors.Wrapf(ErrInvalidTransition, "cannot edit details in state %s", w.state)
	}

	def := findField(schema.SchemaFor(w.category), field)
	if def == nil || def.Kind != schema.KindSubRecordList {
		return errors.Wrap(ErrUnknownField, field)
	}

	next, err := ReduceSubRecords(w.details.SubRecords(field), change)
	if err != nil {
		return err
	}
	w.details[field] = next

	return nil
}

// SetImages replaces the ordered image reference list. The first entry is
// the primary image.
func (w *Workflow) SetImages(images []string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return ErrWorkflowClosed
	}
	w.images = append([]string(nil), images...)

	return nil
}

// Advance moves from BasicInfo to CategoryDetails, gated by validation of
// the common fields. Validation always re-runs; a previously valid bag that
// was edited since is re-checked.
func (w *Workflow) Advance() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return ErrWorkflowClosed
	}
	if w.state != StateBasicInfo {
		return errors.Wrapf(ErrInvalidTransition, "cannot advance from state %s", w.state)
	}

	if errs := ValidateCommon(w.common); len(errs) > 0 {
		w.fieldErrors = errs

		return ErrValidationFailed
	}
	w.fieldErrors = nil

	return w.moveTo(StateCategoryDetails)
}

// Back navigates to an earlier step. Entered values are kept; validity is
// not, since advancing again re-validates.
func (w *Workflow) Back(target State) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return ErrWorkflowClosed
	}

	switch target {
	case StateSelectCategory, StateSelectDirection, StateBasicInfo, StateCategoryDetails:
	default:
		return errors.Wrapf(ErrInvalidTransition, "cannot navigate back to %s", target)
	}
	if target == StateSelectDirection && w.category == entity.CategoryTraining {
		return errors.Wrap(ErrInvalidTransition, "training has no direction step")
	}
	if target == StateCategoryDetails && w.state != StateFailed {
		return errors.Wrapf(ErrInvalidTransition, "cannot navigate forward to %s", target)
	}

	return w.moveTo(target)
}

// Submit runs the final gated transition: CategoryDetails -> Submitting ->
// Succeeded|Failed. The category schema is re-validated, the payload is
// assembled from snapshots of the bags, and exactly one submission may be
// outstanding. If the session is closed while the call is in flight, the
// resolution is discarded and no state is updated.
func (w *Workflow) Submit(ctx context.Context) error {
	w.mu.Lock()

	if w.closed {
		w.mu.Unlock()

		return ErrWorkflowClosed
	}
	if w.submitting || w.state == StateSubmitting {
		w.mu.Unlock()

		return ErrSubmissionInFlight
	}
	if w.state != StateCategoryDetails && w.state != StateFailed {
		w.mu.Unlock()

		return errors.Wrapf(ErrInvalidTransition, "cannot submit from state %s", w.state)
	}
	if w.category == "" {
		w.mu.Unlock()

		return ErrNoCategory
	}

	if errs := ValidateCategory(w.category, w.details); len(errs) > 0 {
		w.fieldErrors = errs
		w.mu.Unlock()

		return ErrValidationFailed
	}
	w.fieldErrors = nil
	w.submitError = ""

	submission := &Submission{
		Category:  w.category,
		CauseType: w.causeType,
		Common:    w.common.Clone(),
		Details:   w.details.Clone(),
		Images:    append([]string(nil), w.images...),
	}

	w.state = StateSubmitting
	w.submitting = true
	w.mu.Unlock()

	causeID, err := w.submitter.SubmitCause(ctx, submission)

	w.mu.Lock()
	defer w.mu.Unlock()
	w.submitting = false

	if w.closed {
		// The authoring surface is gone; a state update now would be a
		// write against a disposed session.
		return ErrWorkflowClosed
	}

	if err != nil {
		w.state = StateFailed
		w.submitError = err.Error()

		return err
	}

	w.state = StateSucceeded
	w.causeID = causeID

	return nil
}

// Close tears the session down. An in-flight submission keeps running but
// its eventual resolution is ignored.
func (w *Workflow) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.closed = true
}

// Closed reports whether the session has been torn down.
func (w *Workflow) Closed() bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.closed
}

// moveTo performs a table-checked state change. Callers hold the mutex.
func (w *Workflow) moveTo(target State) error {
	if err := validateTransition(transitions, w.state, target); err != nil {
		return err
	}
	w.state = target

	return nil
}

// validateTransition checks a state change against an allowed-transition
// table and returns a descriptive error when the move is not declared.
func validateTransition(table map[State][]State, current, target State) error {
	allowed, ok := table[current]
	if !ok {
		return errors.Wrapf(ErrInvalidTransition, "unknown current state: %s", current)
	}
	for _, s := range allowed {
		if s == target {
			return nil
		}
	}

	return errors.Wrapf(ErrInvalidTransition, "from %s to %s", current, target)
}
