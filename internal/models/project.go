package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type ProjectStatus string

const (
	StatusCompleted  ProjectStatus = "Completed"
	StatusInProgress ProjectStatus = "In Progress"
	StatusPlanned    ProjectStatus = "Planned"
)

type Project struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Title       string    `gorm:"not null" json:"title"` // unique case-insensitively
	Description string    `gorm:"not null" json:"description"`

	ShortDescription string                     `json:"shortDescription"`
	Technologies     datatypes.JSONSlice[string] `json:"technologies"`
	GithubURL        string                     `json:"githubUrl"`
	LiveURL          string                     `json:"liveUrl"`
	Image            string                     `json:"image"`

	Featured bool          `gorm:"default:false" json:"featured"`
	Status   ProjectStatus `gorm:"type:varchar(20);default:'Completed'" json:"status"`
	Order    int           `gorm:"column:sort_order;default:0" json:"order"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
