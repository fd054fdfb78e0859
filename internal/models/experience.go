package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Experience struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Company  string    `gorm:"not null" json:"company"`
	Position string    `gorm:"not null" json:"position"`
	Location string    `json:"location"`

	StartDate time.Time  `gorm:"not null" json:"startDate"`
	EndDate   *time.Time `json:"endDate"` // nil while current
	Current   bool       `gorm:"default:false" json:"current"`

	Description  string                      `gorm:"not null" json:"description"`
	Technologies datatypes.JSONSlice[string] `json:"technologies"`
	Achievements datatypes.JSONSlice[string] `json:"achievements"`
	CompanyLogo  string                      `json:"companyLogo"`
	Order        int                         `gorm:"column:sort_order;default:0" json:"order"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
