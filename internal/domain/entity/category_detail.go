package entity

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// CategoryDetail is the closed tagged union of category-specific detail
// records. Exactly one variant exists per cause, keyed by the cause's
// category tag. Dates are carried as YYYY-MM-DD strings so that a persisted
// record with a malformed date can still be loaded and presented.
type CategoryDetail interface {
	// DetailCategory returns the category tag this variant belongs to.
	DetailCategory() Category
}

// FoodDetail holds the category-specific attributes of a food cause.
type FoodDetail struct {
	FoodType                string   `json:"food_type"`
	Cuisine                 string   `json:"cuisine,omitempty"`
	Quantity                float64  `json:"quantity"`
	Unit                    string   `json:"unit"`
	ServingSize             float64  `json:"serving_size,omitempty"`
	TemperatureRequirements string   `json:"temperature_requirements"`
	ExpirationDate          string   `json:"expiration_date,omitempty"`
	PreparationDate         string   `json:"preparation_date,omitempty"`
	DietaryRestrictions     []string `json:"dietary_restrictions,omitempty"`
	Allergens               []string `json:"allergens,omitempty"`
	DeliveryAvailable       bool     `json:"delivery_available,omitempty"`
	DeliveryRadius          float64  `json:"delivery_radius,omitempty"`
	IsUrgent                bool     `json:"is_urgent,omitempty"`
	PickupInstructions      string   `json:"pickup_instructions,omitempty"`
}

// DetailCategory implements CategoryDetail.
func (*FoodDetail) DetailCategory() Category { return CategoryFood }

// ClothesDetail holds the category-specific attributes of a clothing cause.
type ClothesDetail struct {
	ClothesType        string   `json:"clothes_type"`
	AgeGroup           string   `json:"age_group"`
	Sizes              []string `json:"sizes"`
	Condition          string   `json:"condition"`
	Season             string   `json:"season,omitempty"`
	Quantity           int      `json:"quantity"`
	Colors             []string `json:"colors,omitempty"`
	Brands             []string `json:"brands,omitempty"`
	Material           string   `json:"material,omitempty"`
	CareInstructions   string   `json:"care_instructions,omitempty"`
	PickupInstructions string   `json:"pickup_instructions,omitempty"`
	IsCleaned          bool     `json:"is_cleaned,omitempty"`
	IsUrgent           bool     `json:"is_urgent,omitempty"`
	DonationReceipt    bool     `json:"donation_receipt,omitempty"`
}

// DetailCategory implements CategoryDetail.
func (*ClothesDetail) DetailCategory() Category { return CategoryClothes }

// Instructor is a sub-record owned exclusively by its parent TrainingDetail.
// The list supports zero or more entries during authoring; the validator
// requires at least one before submission.
type Instructor struct {
	Name           string   `json:"name"`
	Email          string   `json:"email"`
	Bio            string   `json:"bio,omitempty"`
	Qualifications []string `json:"qualifications,omitempty"`
}

// TrainingDetail holds the category-specific attributes of a training cause.
type TrainingDetail struct {
	TrainingType         string       `json:"training_type"`
	SkillLevel           string       `json:"skill_level"`
	Topics               []string     `json:"topics"`
	MaxTrainees          int          `json:"max_trainees"`
	CurrentTrainees      int          `json:"current_trainees,omitempty"`
	DurationHours        float64      `json:"duration_hours"`
	NumberOfSessions     int          `json:"number_of_sessions,omitempty"`
	StartDate            string       `json:"start_date"`
	EndDate              string       `json:"end_date"`
	RegistrationDeadline string       `json:"registration_deadline,omitempty"`
	Schedule             string       `json:"schedule,omitempty"`
	DeliveryMethod       string       `json:"delivery_method"`
	Instructors          []Instructor `json:"instructors"`
	Certification        bool         `json:"certification,omitempty"`
	CertificationBody    string       `json:"certification_body,omitempty"`
	IsFree               bool         `json:"is_free,omitempty"`
	Price                float64      `json:"price,omitempty"`
	Language             string       `json:"language,omitempty"`
	Difficulty           int          `json:"difficulty,omitempty"`
}

// DetailCategory implements CategoryDetail.
func (*TrainingDetail) DetailCategory() Category { return CategoryTraining }

// DecodeDetail unmarshals a raw detail record into the variant matching the
// category tag. The switch is exhaustive over the closed category set.
func DecodeDetail(category Category, raw []byte) (CategoryDetail, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	var detail CategoryDetail
	switch category {
	case CategoryFood:
		detail = &FoodDetail{}
	case CategoryClothes:
		detail = &ClothesDetail{}
	case CategoryTraining:
		detail = &TrainingDetail{}
	default:
		return nil, errors.Errorf("unknown category: %s", category)
	}

	if err := json.Unmarshal(raw, detail); err != nil {
		return nil, errors.Wrapf(err, "failed to decode %s detail record", category)
	}

	return detail, nil
}
