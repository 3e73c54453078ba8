package schema

import "causes/internal/domain/entity"

// Presentation group titles. Groups double as the section layout of the
// detail view, so authoring fields and display sections cannot drift apart.
const (
	GroupBasics      = "Basics"
	GroupDietary     = "Dietary Information"
	GroupStorage     = "Storage & Timing"
	GroupDelivery    = "Delivery & Pickup"
	GroupSizing      = "Sizing & Condition"
	GroupAppearance  = "Appearance & Care"
	GroupCurriculum  = "Curriculum"
	GroupScheduling  = "Scheduling"
	GroupInstructors = "Instructors"
	GroupPricing     = "Pricing & Certification"
)

// CommonSchema returns the ordered field definitions shared by every
// category: the BasicInfo step of the authoring workflow.
func CommonSchema() []FieldDefinition {
	return commonFields
}

// SchemaFor returns the ordered field definitions for a category's detail
// step, or nil for an unknown category. Callers must treat the returned
// slice as read-only.
func SchemaFor(category entity.Category) []FieldDefinition {
	switch category {
	case entity.CategoryFood:
		return foodFields
	case entity.CategoryClothes:
		return clothesFields
	case entity.CategoryTraining:
		return trainingFields
	default:
		return nil
	}
}

var commonFields = []FieldDefinition{
	{Name: "title", Label: "Title", Kind: KindText, Required: true, MinLength: 10,
		Placeholder: "Give your cause a clear title"},
	{Name: "description", Label: "Description", Kind: KindRichText, Required: true, MinLength: 20,
		Placeholder: "Describe what you are offering or looking for"},
	{Name: "location", Label: "Location", Kind: KindText, Required: true,
		Placeholder: "Neighbourhood, city or pickup point"},
	{Name: "priority", Label: "Priority", Kind: KindSingleSelect, Required: true, Options: []Option{
		{Value: "low", Label: "Low"},
		{Value: "medium", Label: "Medium"},
		{Value: "high", Label: "High"},
		{Value: "urgent", Label: "Urgent"},
	}},
	{Name: "contact_email", Label: "Contact email", Kind: KindText, Required: true, Format: FormatEmail},
	{Name: "contact_phone", Label: "Contact phone", Kind: KindText},
	{Name: "tags", Label: "Tags", Kind: KindTags, Placeholder: "Free-form keywords"},
}

var foodFields = []FieldDefinition{
	{Name: "food_type", Label: "Food type", Kind: KindSingleSelect, Required: true, Group: GroupBasics, Options: []Option{
		{Value: "cooked-meal", Label: "Cooked meal"},
		{Value: "fresh-produce", Label: "Fresh produce"},
		{Value: "baked-goods", Label: "Baked goods"},
		{Value: "canned-goods", Label: "Canned goods"},
		{Value: "packaged-food", Label: "Packaged food"},
		{Value: "beverages", Label: "Beverages"},
	}},
	{Name: "cuisine", Label: "Cuisine", Kind: KindSingleSelect, Group: GroupBasics, Options: []Option{
		{Value: "local", Label: "Local"},
		{Value: "mediterranean", Label: "Mediterranean"},
		{Value: "asian", Label: "Asian"},
		{Value: "middle-eastern", Label: "Middle Eastern"},
		{Value: "latin", Label: "Latin American"},
		{Value: "other", Label: "Other"},
	}},
	{Name: "quantity", Label: "Quantity", Kind: KindNumber, Required: true, Min: ptr(1), Group: GroupBasics},
	{Name: "unit", Label: "Unit", Kind: KindSingleSelect, Required: true, Group: GroupBasics, Options: []Option{
		{Value: "portions", Label: "Portions"},
		{Value: "kg", Label: "Kilograms"},
		{Value: "liters", Label: "Liters"},
		{Value: "boxes", Label: "Boxes"},
		{Value: "pieces", Label: "Pieces"},
	}},
	{Name: "serving_size", Label: "Serving size", Kind: KindNumber, Min: ptr(0), Group: GroupBasics,
		Placeholder: "People served per portion"},
	{Name: "temperature_requirements", Label: "Temperature", Kind: KindSingleSelect, Required: true, Group: GroupStorage, Options: []Option{
		{Value: "hot", Label: "Keep hot"},
		{Value: "room-temperature", Label: "Room temperature"},
		{Value: "refrigerated", Label: "Refrigerated"},
		{Value: "frozen", Label: "Frozen"},
	}},
	{Name: "expiration_date", Label: "Expires", Kind: KindDate, Group: GroupStorage},
	{Name: "preparation_date", Label: "Prepared", Kind: KindDate, Group: GroupStorage},
	{Name: "dietary_restrictions", Label: "Dietary", Kind: KindMultiSelect, Group: GroupDietary, Options: []Option{
		{Value: "vegetarian", Label: "Vegetarian"},
		{Value: "vegan", Label: "Vegan"},
		{Value: "halal", Label: "Halal"},
		{Value: "kosher", Label: "Kosher"},
		{Value: "gluten-free", Label: "Gluten-free"},
		{Value: "dairy-free", Label: "Dairy-free"},
	}},
	{Name: "allergens", Label: "Allergens", Kind: KindMultiSelect, Group: GroupDietary, Options: []Option{
		{Value: "nuts", Label: "Nuts"},
		{Value: "dairy", Label: "Dairy"},
		{Value: "eggs", Label: "Eggs"},
		{Value: "gluten", Label: "Gluten"},
		{Value: "soy", Label: "Soy"},
		{Value: "shellfish", Label: "Shellfish"},
	}},
	{Name: "delivery_available", Label: "Delivery available", Kind: KindBoolean, Group: GroupDelivery},
	{Name: "delivery_radius", Label: "Delivery radius (km)", Kind: KindNumber, Min: ptr(0), Group: GroupDelivery,
		ShowIf: &Condition{Field: "delivery_available", Equals: true}},
	{Name: "is_urgent", Label: "Urgent", Kind: KindBoolean, Group: GroupDelivery},
	{Name: "pickup_instructions", Label: "Pickup instructions", Kind: KindRichText, Group: GroupDelivery},
}

var clothesFields = []FieldDefinition{
	{Name: "clothes_type", Label: "Clothing type", Kind: KindSingleSelect, Required: true, Group: GroupBasics, Options: []Option{
		{Value: "tops", Label: "Tops & shirts"},
		{Value: "bottoms", Label: "Pants & skirts"},
		{Value: "dresses", Label: "Dresses"},
		{Value: "outerwear", Label: "Jackets & coats"},
		{Value: "shoes", Label: "Shoes"},
		{Value: "accessories", Label: "Accessories"},
		{Value: "mixed", Label: "Mixed lot"},
	}},
	{Name: "age_group", Label: "Age group", Kind: KindSingleSelect, Required: true, Group: GroupSizing, Options: []Option{
		{Value: "infant", Label: "Infant"},
		{Value: "toddler", Label: "Toddler"},
		{Value: "kids", Label: "Kids"},
		{Value: "teens", Label: "Teens"},
		{Value: "adults", Label: "Adults"},
		{Value: "seniors", Label: "Seniors"},
	}},
	{Name: "sizes", Label: "Sizes", Kind: KindMultiSelect, Required: true, Group: GroupSizing, Options: []Option{
		{Value: "xs", Label: "XS"},
		{Value: "s", Label: "S"},
		{Value: "m", Label: "M"},
		{Value: "l", Label: "L"},
		{Value: "xl", Label: "XL"},
		{Value: "xxl", Label: "XXL"},
		{Value: "various", Label: "Various"},
	}},
	{Name: "condition", Label: "Condition", Kind: KindSingleSelect, Required: true, Group: GroupSizing, Options: []Option{
		{Value: "new", Label: "New with tags"},
		{Value: "like-new", Label: "Like new"},
		{Value: "good", Label: "Good"},
		{Value: "fair", Label: "Fair"},
	}},
	{Name: "season", Label: "Season", Kind: KindSingleSelect, Group: GroupSizing, Options: []Option{
		{Value: "spring", Label: "Spring"},
		{Value: "summer", Label: "Summer"},
		{Value: "fall", Label: "Fall"},
		{Value: "winter", Label: "Winter"},
		{Value: "all-season", Label: "All season"},
	}},
	{Name: "quantity", Label: "Number of items", Kind: KindNumber, Required: true, Min: ptr(1), Group: GroupBasics},
	{Name: "colors", Label: "Colors", Kind: KindMultiSelect, Group: GroupAppearance, Options: []Option{
		{Value: "black", Label: "Black"},
		{Value: "white", Label: "White"},
		{Value: "grey", Label: "Grey"},
		{Value: "blue", Label: "Blue"},
		{Value: "red", Label: "Red"},
		{Value: "green", Label: "Green"},
		{Value: "multicolor", Label: "Multicolor"},
	}},
	{Name: "brands", Label: "Brands", Kind: KindTags, Group: GroupAppearance},
	{Name: "material", Label: "Material", Kind: KindText, Group: GroupAppearance},
	{Name: "care_instructions", Label: "Care instructions", Kind: KindRichText, Group: GroupAppearance},
	{Name: "pickup_instructions", Label: "Pickup instructions", Kind: KindRichText, Group: GroupDelivery},
	{Name: "is_cleaned", Label: "Freshly cleaned", Kind: KindBoolean, Group: GroupDelivery},
	{Name: "is_urgent", Label: "Urgent", Kind: KindBoolean, Group: GroupDelivery},
	{Name: "donation_receipt", Label: "Donation receipt available", Kind: KindBoolean, Group: GroupDelivery},
}

var trainingFields = []FieldDefinition{
	{Name: "training_type", Label: "Training type", Kind: KindSingleSelect, Required: true, Group: GroupCurriculum, Options: []Option{
		{Value: "workshop", Label: "Workshop"},
		{Value: "course", Label: "Course"},
		{Value: "bootcamp", Label: "Bootcamp"},
		{Value: "seminar", Label: "Seminar"},
		{Value: "mentorship", Label: "Mentorship"},
	}},
	{Name: "skill_level", Label: "Skill level", Kind: KindSingleSelect, Required: true, Group: GroupCurriculum, Options: []Option{
		{Value: "beginner", Label: "Beginner"},
		{Value: "intermediate", Label: "Intermediate"},
		{Value: "advanced", Label: "Advanced"},
		{Value: "all-levels", Label: "All levels"},
	}},
	{Name: "topics", Label: "Topics", Kind: KindMultiSelect, Required: true, Group: GroupCurriculum, Options: []Option{
		{Value: "computer-skills", Label: "Computer skills"},
		{Value: "languages", Label: "Languages"},
		{Value: "crafts", Label: "Crafts & trades"},
		{Value: "cooking", Label: "Cooking"},
		{Value: "financial-literacy", Label: "Financial literacy"},
		{Value: "job-readiness", Label: "Job readiness"},
		{Value: "health", Label: "Health & wellbeing"},
	}},
	{Name: "difficulty", Label: "Difficulty (1-5)", Kind: KindNumber, Min: ptr(1), Max: ptr(5), Group: GroupCurriculum},
	{Name: "max_trainees", Label: "Maximum participants", Kind: KindNumber, Required: true, Min: ptr(1), Group: GroupScheduling},
	{Name: "current_trainees", Label: "Current participants", Kind: KindNumber, Min: ptr(0), Group: GroupScheduling},
	{Name: "duration_hours", Label: "Duration (hours)", Kind: KindNumber, Required: true, Min: ptr(0.5), Group: GroupScheduling},
	{Name: "number_of_sessions", Label: "Sessions", Kind: KindNumber, Min: ptr(1), Group: GroupScheduling},
	{Name: "start_date", Label: "Starts", Kind: KindDate, Required: true, Group: GroupScheduling},
	{Name: "end_date", Label: "Ends", Kind: KindDate, Required: true, Group: GroupScheduling},
	{Name: "registration_deadline", Label: "Registration deadline", Kind: KindDate, Group: GroupScheduling},
	{Name: "schedule", Label: "Schedule", Kind: KindText, Group: GroupScheduling,
		Placeholder: "e.g. Tuesdays 18:00-20:00"},
	{Name: "delivery_method", Label: "Delivery method", Kind: KindSingleSelect, Required: true, Group: GroupScheduling, Options: []Option{
		{Value: "in-person", Label: "In person"},
		{Value: "online", Label: "Online"},
		{Value: "hybrid", Label: "Hybrid"},
	}},
	{Name: "instructors", Label: "Instructors", Kind: KindSubRecordList, Required: true, MinItems: 1, Group: GroupInstructors,
		SubSchema: []FieldDefinition{
			{Name: "name", Label: "Name", Kind: KindText, Required: true},
			{Name: "email", Label: "Email", Kind: KindText, Required: true, Format: FormatEmail},
			{Name: "bio", Label: "Bio", Kind: KindRichText},
			{Name: "qualifications", Label: "Qualifications", Kind: KindTags},
		}},
	{Name: "certification", Label: "Certification offered", Kind: KindBoolean, Group: GroupPricing},
	{Name: "certification_body", Label: "Certifying body", Kind: KindText, Group: GroupPricing,
		ShowIf: &Condition{Field: "certification", Equals: true}},
	{Name: "is_free", Label: "Free of charge", Kind: KindBoolean, Group: GroupPricing},
	{Name: "price", Label: "Price", Kind: KindNumber, Required: true, Min: ptr(0.01), Group: GroupPricing,
		ShowIf: &Condition{Field: "is_free", Equals: false}},
	{Name: "language", Label: "Language", Kind: KindSingleSelect, Group: GroupCurriculum, Options: []Option{
		{Value: "en", Label: "English"},
		{Value: "es", Label: "Spanish"},
		{Value: "fr", Label: "French"},
		{Value: "ar", Label: "Arabic"},
		{Value: "zh", Label: "Chinese"},
		{Value: "other", Label: "Other"},
	}},
}
