// Package store declares the data-access contracts the handlers depend on.
// The postgres subpackage is the production implementation; the memory
// subpackage backs the handler tests. Handlers never see *gorm.DB directly.
package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/akshit1742/portfolio-api/internal/models"
)

type UserStore interface {
	CreateUser(ctx context.Context, u *models.User) error
	UserByEmail(ctx context.Context, email string) (*models.User, error)
	UserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	// AdminExists reports whether any user holds the admin role.
	AdminExists(ctx context.Context) (bool, error)
}

// BioStore and ContactInfoStore manage singleton rows: Latest returns the
// most recently created row (nil, no error, when the table is empty) and the
// write path updates that row in place.
type BioStore interface {
	LatestBio(ctx context.Context) (*models.Bio, error)
	CreateBio(ctx context.Context, b *models.Bio) error
	UpdateBio(ctx context.Context, b *models.Bio) error
}

type ContactInfoStore interface {
	LatestContactInfo(ctx context.Context) (*models.ContactInfo, error)
	CreateContactInfo(ctx context.Context, ci *models.ContactInfo) error
	UpdateContactInfo(ctx context.Context, ci *models.ContactInfo) error
}

type SkillStore interface {
	ListSkills(ctx context.Context) ([]models.Skill, error)
	SkillByID(ctx context.Context, id uuid.UUID) (*models.Skill, error)
	// SkillNameTaken matches names case-insensitively, excluding exclude
	// (pass uuid.Nil on create).
	SkillNameTaken(ctx context.Context, name string, exclude uuid.UUID) (bool, error)
	CreateSkill(ctx context.Context, s *models.Skill) error
	UpdateSkill(ctx context.Context, s *models.Skill) error
	DeleteSkill(ctx context.Context, id uuid.UUID) error
}

type ProjectStore interface {
	ListProjects(ctx context.Context) ([]models.Project, error)
	ProjectByID(ctx context.Context, id uuid.UUID) (*models.Project, error)
	ProjectTitleTaken(ctx context.Context, title string, exclude uuid.UUID) (bool, error)
	CreateProject(ctx context.Context, p *models.Project) error
	UpdateProject(ctx context.Context, p *models.Project) error
	DeleteProject(ctx context.Context, id uuid.UUID) error
}

type ExperienceStore interface {
	ListExperience(ctx context.Context) ([]models.Experience, error)
	ExperienceByID(ctx context.Context, id uuid.UUID) (*models.Experience, error)
	CreateExperience(ctx context.Context, e *models.Experience) error
	UpdateExperience(ctx context.Context, e *models.Experience) error
	DeleteExperience(ctx context.Context, id uuid.UUID) error
}

type EducationStore interface {
	ListEducation(ctx context.Context) ([]models.Education, error)
	EducationByID(ctx context.Context, id uuid.UUID) (*models.Education, error)
	CreateEducation(ctx context.Context, e *models.Education) error
	UpdateEducation(ctx context.Context, e *models.Education) error
	DeleteEducation(ctx context.Context, id uuid.UUID) error
}

type CertificationStore interface {
	ListCertifications(ctx context.Context) ([]models.Certification, error)
	CertificationByID(ctx context.Context, id uuid.UUID) (*models.Certification, error)
	CreateCertification(ctx context.Context, cert *models.Certification) error
	UpdateCertification(ctx context.Context, cert *models.Certification) error
	DeleteCertification(ctx context.Context, id uuid.UUID) error
}

// Store is everything the composition root wires at once.
type Store interface {
	UserStore
	BioStore
	ContactInfoStore
	SkillStore
	ProjectStore
	ExperienceStore
	EducationStore
	CertificationStore
}
