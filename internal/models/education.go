package models

import (
	"time"

	"github.com/google/uuid"
)

type Education struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Institution string    `gorm:"not null" json:"institution"`
	Degree      string    `gorm:"not null" json:"degree"`
	Field       string    `json:"field"`

	StartDate time.Time  `gorm:"not null" json:"startDate"`
	EndDate   *time.Time `json:"endDate"`
	Current   bool       `gorm:"default:false" json:"current"`

	Grade       string `json:"grade"`
	Description string `json:"description"`
	Logo        string `json:"logo"`
	Order       int    `gorm:"column:sort_order;default:0" json:"order"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
