package models

import (
	"time"

	"github.com/google/uuid"
)

type Availability string

const (
	AvailabilityAvailable    Availability = "Available"
	AvailabilityBusy         Availability = "Busy"
	AvailabilityNotAvailable Availability = "Not Available"
)

// ContactInfo is a singleton, same upsert rules as Bio.
type ContactInfo struct {
	ID    uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Email string    `gorm:"not null" json:"email"`

	Phone    string `json:"phone"`
	Location string `json:"location"`
	Linkedin string `json:"linkedin"`
	Github   string `json:"github"`
	Twitter  string `json:"twitter"`
	Website  string `json:"website"`

	Availability Availability `gorm:"type:varchar(20);default:'Available'" json:"availability"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
