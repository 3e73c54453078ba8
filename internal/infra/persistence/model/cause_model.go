package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// CauseModel mirrors the 'causes' table. PostgreSQL generates UUIDs via uuid_generate_v7().
// It is an exported type so it can be used by the GORM Gen tool from other packages.
// The category-specific detail record is stored as a JSONB document keyed by
// the category column; its shape is owned by the domain layer.
type CauseModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Title           string    `gorm:"type:varchar(255);not null"`
	Description     string    `gorm:"type:text;not null"`
	Category        string    `gorm:"type:varchar(20);not null;index"`
	CauseType       string    `gorm:"type:varchar(10);not null;index"`
	Location        string    `gorm:"type:varchar(255);not null"`
	Priority        string    `gorm:"type:varchar(10);not null"`
	ContactEmail    string    `gorm:"type:varchar(255);not null"`
	ContactPhone    string    `gorm:"type:varchar(50)"`
	Tags            datatypes.JSON
	Images          datatypes.JSON
	CategoryDetails datatypes.JSON `gorm:"type:jsonb"`
	ViewCount       int64          `gorm:"not null;default:0"`
	LikeCount       int64          `gorm:"not null;default:0"`
	CreatorID       uuid.UUID      `gorm:"type:uuid;not null;index"`
	CreatorName     string         `gorm:"type:varchar(100)"`
	CreatorAvatar   string         `gorm:"type:varchar(512)"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeletedAt       *time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (CauseModel) TableName() string {
	return "causes"
}
