package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Certification struct {
	ID     uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name   string    `gorm:"not null" json:"name"`
	Issuer string    `gorm:"not null" json:"issuer"`

	IssueDate  time.Time  `gorm:"not null" json:"issueDate"`
	ExpiryDate *time.Time `json:"expiryDate"`

	CredentialID  string                      `json:"credentialId"`
	CredentialURL string                      `json:"credentialUrl"`
	Image         string                      `json:"image"`
	Skills        datatypes.JSONSlice[string] `json:"skills"`
	Order         int                         `gorm:"column:sort_order;default:0" json:"order"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
