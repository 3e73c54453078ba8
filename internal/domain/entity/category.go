// Package entity contains the core business objects of the project.
package entity

// Category determines which detail schema applies to a cause.
// The set is closed: adding a category means adding a schema entry,
// a detail variant and a presenter case, all checked at compile time.
type Category string

const (
	// CategoryFood is a cause offering or requesting food.
	CategoryFood Category = "food"
	// CategoryClothes is a cause offering or requesting clothing.
	CategoryClothes Category = "clothes"
	// CategoryTraining is a cause offering training. Training is always an offering.
	CategoryTraining Category = "training"
)

// Categories returns all valid categories in display order.
func Categories() []Category {
	return []Category{CategoryFood, CategoryClothes, CategoryTraining}
}

// String returns the string representation of the Category.
func (c Category) String() string {
	return string(c)
}

// IsValid checks if the Category is a valid value.
func (c Category) IsValid() bool {
	switch c {
	case CategoryFood, CategoryClothes, CategoryTraining:
		return true
	default:
		return false
	}
}

// CauseType represents the offer/request direction of a cause.
type CauseType string

const (
	// CauseTypeOffered indicates the creator is offering the resource.
	CauseTypeOffered CauseType = "offered"
	// CauseTypeWanted indicates the creator is requesting the resource.
	CauseTypeWanted CauseType = "wanted"
)

// String returns the string representation of the CauseType.
func (t CauseType) String() string {
	return string(t)
}

// IsValid checks if the CauseType is a valid value.
func (t CauseType) IsValid() bool {
	switch t {
	case CauseTypeOffered, CauseTypeWanted:
		return true
	default:
		return false
	}
}

// Priority represents the urgency level of a cause.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// String returns the string representation of the Priority.
func (p Priority) String() string {
	return string(p)
}

// IsValid checks if the Priority is a valid value.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	default:
		return false
	}
}
