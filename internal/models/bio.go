package models

import (
	"time"

	"github.com/google/uuid"
)

// Bio is a singleton: the write path always updates the existing row if one
// exists, so at most one is ever intended to live in the table.
type Bio struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Subtitle    string    `gorm:"not null" json:"subtitle"`
	Description string    `gorm:"not null" json:"description"`

	ProfileImage string `json:"profileImage"`
	ResumeLink   string `json:"resumeLink"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
