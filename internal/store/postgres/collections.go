package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/akshit1742/portfolio-api/internal/models"
)

// ---- skills ----

func (s *Store) ListSkills(ctx context.Context) ([]models.Skill, error) {
	var skills []models.Skill
	err := s.db.WithContext(ctx).
		Order("sort_order ASC, created_at ASC").
		Find(&skills).Error
	return skills, err
}

func (s *Store) SkillByID(ctx context.Context, id uuid.UUID) (*models.Skill, error) {
	var sk models.Skill
	err := s.db.WithContext(ctx).First(&sk, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &sk, nil
}

func (s *Store) SkillNameTaken(ctx context.Context, name string, exclude uuid.UUID) (bool, error) {
	var count int64
	q := s.db.WithContext(ctx).Model(&models.Skill{}).
		Where("LOWER(name) = LOWER(?)", name)
	if exclude != uuid.Nil {
		q = q.Where("id <> ?", exclude)
	}
	err := q.Count(&count).Error
	return count > 0, err
}

func (s *Store) CreateSkill(ctx context.Context, sk *models.Skill) error {
	if sk.ID == uuid.Nil {
		sk.ID = uuid.New()
	}
	return s.db.WithContext(ctx).Create(sk).Error
}

func (s *Store) UpdateSkill(ctx context.Context, sk *models.Skill) error {
	return s.db.WithContext(ctx).Save(sk).Error
}

func (s *Store) DeleteSkill(ctx context.Context, id uuid.UUID) error {
	return s.db.WithContext(ctx).Delete(&models.Skill{}, "id = ?", id).Error
}

// ---- projects ----

func (s *Store) ListProjects(ctx context.Context) ([]models.Project, error) {
	var projects []models.Project
	err := s.db.WithContext(ctx).
		Order("sort_order ASC, created_at DESC").
		Find(&projects).Error
	return projects, err
}

func (s *Store) ProjectByID(ctx context.Context, id uuid.UUID) (*models.Project, error) {
	var p models.Project
	err := s.db.WithContext(ctx).First(&p, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *Store) ProjectTitleTaken(ctx context.Context, title string, exclude uuid.UUID) (bool, error) {
	var count int64
	q := s.db.WithContext(ctx).Model(&models.Project{}).
		Where("LOWER(title) = LOWER(?)", title)
	if exclude != uuid.Nil {
		q = q.Where("id <> ?", exclude)
	}
	err := q.Count(&count).Error
	return count > 0, err
}

func (s *Store) CreateProject(ctx context.Context, p *models.Project) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return s.db.WithContext(ctx).Create(p).Error
}

func (s *Store) UpdateProject(ctx context.Context, p *models.Project) error {
	return s.db.WithContext(ctx).Save(p).Error
}

func (s *Store) DeleteProject(ctx context.Context, id uuid.UUID) error {
	return s.db.WithContext(ctx).Delete(&models.Project{}, "id = ?", id).Error
}

// ---- experience ----

func (s *Store) ListExperience(ctx context.Context) ([]models.Experience, error) {
	var entries []models.Experience
	err := s.db.WithContext(ctx).
		Order("sort_order ASC, start_date DESC").
		Find(&entries).Error
	return entries, err
}

func (s *Store) ExperienceByID(ctx context.Context, id uuid.UUID) (*models.Experience, error) {
	var e models.Experience
	err := s.db.WithContext(ctx).First(&e, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (s *Store) CreateExperience(ctx context.Context, e *models.Experience) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return s.db.WithContext(ctx).Create(e).Error
}

func (s *Store) UpdateExperience(ctx context.Context, e *models.Experience) error {
	return s.db.WithContext(ctx).Save(e).Error
}

func (s *Store) DeleteExperience(ctx context.Context, id uuid.UUID) error {
	return s.db.WithContext(ctx).Delete(&models.Experience{}, "id = ?", id).Error
}

// ---- education ----

func (s *Store) ListEducation(ctx context.Context) ([]models.Education, error) {
	var entries []models.Education
	err := s.db.WithContext(ctx).
		Order("sort_order ASC, start_date DESC").
		Find(&entries).Error
	return entries, err
}

func (s *Store) EducationByID(ctx context.Context, id uuid.UUID) (*models.Education, error) {
	var e models.Education
	err := s.db.WithContext(ctx).First(&e, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (s *Store) CreateEducation(ctx context.Context, e *models.Education) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return s.db.WithContext(ctx).Create(e).Error
}

func (s *Store) UpdateEducation(ctx context.Context, e *models.Education) error {
	return s.db.WithContext(ctx).Save(e).Error
}

func (s *Store) DeleteEducation(ctx context.Context, id uuid.UUID) error {
	return s.db.WithContext(ctx).Delete(&models.Education{}, "id = ?", id).Error
}

// ---- certifications ----

func (s *Store) ListCertifications(ctx context.Context) ([]models.Certification, error) {
	var certs []models.Certification
	err := s.db.WithContext(ctx).
		Order("sort_order ASC, issue_date DESC").
		Find(&certs).Error
	return certs, err
}

func (s *Store) CertificationByID(ctx context.Context, id uuid.UUID) (*models.Certification, error) {
	var cert models.Certification
	err := s.db.WithContext(ctx).First(&cert, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cert, nil
}

func (s *Store) CreateCertification(ctx context.Context, cert *models.Certification) error {
	if cert.ID == uuid.Nil {
		cert.ID = uuid.New()
	}
	return s.db.WithContext(ctx).Create(cert).Error
}

func (s *Store) UpdateCertification(ctx context.Context, cert *models.Certification) error {
	return s.db.WithContext(ctx).Save(cert).Error
}

func (s *Store) DeleteCertification(ctx context.Context, id uuid.UUID) error {
	return s.db.WithContext(ctx).Delete(&models.Certification{}, "id = ?", id).Error
}
