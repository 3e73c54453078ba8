package entity

import (
	"time"

	"github.com/google/uuid"
)

// Creator is a weak reference to the user who authored a cause: an ID plus
// cached display fields. The user aggregate itself lives in the account
// subsystem and is not owned by the cause.
type Creator struct {
	ID          uuid.UUID `json:"id"`
	DisplayName string    `json:"display_name,omitempty"`
	AvatarURL   string    `json:"avatar_url,omitempty"`
}

// Cause is the core content aggregate representing one offer or request.
// It owns its category detail record 1:1; the detail has no independent
// lifecycle and is created, updated and deleted together with the cause.
type Cause struct {
	ID           uuid.UUID      `json:"id"`
	Title        string         `json:"title"`
	Description  string         `json:"description"`
	Category     Category       `json:"category"`
	CauseType    CauseType      `json:"cause_type"`
	Location     string         `json:"location"`
	Priority     Priority       `json:"priority"`
	ContactEmail string         `json:"contact_email"`
	ContactPhone string         `json:"contact_phone,omitempty"`
	Tags         []string       `json:"tags,omitempty"`
	Images       []string       `json:"images,omitempty"` // Ordered; the first entry is the primary image.
	Details      CategoryDetail `json:"category_details,omitempty"`
	ViewCount    int64          `json:"view_count"`
	LikeCount    int64          `json:"like_count"`
	Creator      Creator        `json:"creator"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

// PrimaryImage returns the first image reference, or empty if none exist.
func (c *Cause) PrimaryImage() string {
	if len(c.Images) == 0 {
		return ""
	}

	return c.Images[0]
}
