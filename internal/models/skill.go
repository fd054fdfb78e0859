package models

import (
	"time"

	"github.com/google/uuid"
)

type SkillCategory string

const (
	CategoryFrontend SkillCategory = "Frontend"
	CategoryBackend  SkillCategory = "Backend"
	CategoryDatabase SkillCategory = "Database"
	CategoryTools    SkillCategory = "Tools"
	CategoryOther    SkillCategory = "Other"
)

type SkillLevel string

const (
	LevelBeginner     SkillLevel = "Beginner"
	LevelIntermediate SkillLevel = "Intermediate"
	LevelAdvanced     SkillLevel = "Advanced"
	LevelExpert       SkillLevel = "Expert"
)

type Skill struct {
	ID       uuid.UUID     `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name     string        `gorm:"not null" json:"name"` // unique case-insensitively
	Category SkillCategory `gorm:"type:varchar(20);not null" json:"category"`
	Level    SkillLevel    `gorm:"type:varchar(20);default:'Intermediate'" json:"level"`

	Icon  string `json:"icon"` // icon class or image URL
	Order int    `gorm:"column:sort_order;default:0" json:"order"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
