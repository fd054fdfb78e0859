// Package memory is an in-memory store used by the handler tests. It mirrors
// the postgres implementation's contracts: lookups return (nil, nil) when no
// row matches, and list ordering matches the SQL ORDER BY clauses.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/akshit1742/portfolio-api/internal/models"
)

type Store struct {
	mu sync.Mutex

	users          []models.User
	bios           []models.Bio
	contactInfos   []models.ContactInfo
	skills         []models.Skill
	projects       []models.Project
	experience     []models.Experience
	education      []models.Education
	certifications []models.Certification

	seq int64 // insertion counter, tiebreaker for equal timestamps
	ord map[uuid.UUID]int64
}

func New() *Store {
	return &Store{ord: make(map[uuid.UUID]int64)}
}

func (s *Store) stamp(id uuid.UUID) {
	s.seq++
	s.ord[id] = s.seq
}

// ---- users ----

func (s *Store) CreateUser(_ context.Context, u *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	s.stamp(u.ID)
	s.users = append(s.users, *u)
	return nil
}

func (s *Store) UserByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].Email == strings.ToLower(email) {
			u := s.users[i]
			return &u, nil
		}
	}
	return nil, nil
}

func (s *Store) UserByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].ID == id {
			u := s.users[i]
			return &u, nil
		}
	}
	return nil, nil
}

func (s *Store) AdminExists(_ context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].Role == models.RoleAdmin {
			return true, nil
		}
	}
	return false, nil
}

// ---- bio ----

func (s *Store) LatestBio(_ context.Context) (*models.Bio, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.bios) == 0 {
		return nil, nil
	}
	b := s.bios[len(s.bios)-1]
	return &b, nil
}

func (s *Store) CreateBio(_ context.Context, b *models.Bio) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	b.CreatedAt = time.Now()
	b.UpdatedAt = b.CreatedAt
	s.stamp(b.ID)
	s.bios = append(s.bios, *b)
	return nil
}

func (s *Store) UpdateBio(_ context.Context, b *models.Bio) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.bios {
		if s.bios[i].ID == b.ID {
			b.UpdatedAt = time.Now()
			s.bios[i] = *b
			return nil
		}
	}
	return nil
}

// ---- contact info ----

func (s *Store) LatestContactInfo(_ context.Context) (*models.ContactInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.contactInfos) == 0 {
		return nil, nil
	}
	ci := s.contactInfos[len(s.contactInfos)-1]
	return &ci, nil
}

func (s *Store) CreateContactInfo(_ context.Context, ci *models.ContactInfo) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if ci.ID == uuid.Nil {
		ci.ID = uuid.New()
	}
	ci.CreatedAt = time.Now()
	ci.UpdatedAt = ci.CreatedAt
	s.stamp(ci.ID)
	s.contactInfos = append(s.contactInfos, *ci)
	return nil
}

func (s *Store) UpdateContactInfo(_ context.Context, ci *models.ContactInfo) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.contactInfos {
		if s.contactInfos[i].ID == ci.ID {
			ci.UpdatedAt = time.Now()
			s.contactInfos[i] = *ci
			return nil
		}
	}
	return nil
}

// ---- skills ----

func (s *Store) ListSkills(_ context.Context) ([]models.Skill, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := append([]models.Skill(nil), s.skills...)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Order != out[j].Order {
			return out[i].Order < out[j].Order
		}
		return s.ord[out[i].ID] < s.ord[out[j].ID] // created_at ASC
	})
	return out, nil
}

func (s *Store) SkillByID(_ context.Context, id uuid.UUID) (*models.Skill, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.skills {
		if s.skills[i].ID == id {
			sk := s.skills[i]
			return &sk, nil
		}
	}
	return nil, nil
}

func (s *Store) SkillNameTaken(_ context.Context, name string, exclude uuid.UUID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.skills {
		if s.skills[i].ID != exclude && strings.EqualFold(s.skills[i].Name, name) {
			return true, nil
		}
	}
	return false, nil
}

func (s *Store) CreateSkill(_ context.Context, sk *models.Skill) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sk.ID == uuid.Nil {
		sk.ID = uuid.New()
	}
	sk.CreatedAt = time.Now()
	sk.UpdatedAt = sk.CreatedAt
	s.stamp(sk.ID)
	s.skills = append(s.skills, *sk)
	return nil
}

func (s *Store) UpdateSkill(_ context.Context, sk *models.Skill) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.skills {
		if s.skills[i].ID == sk.ID {
			sk.UpdatedAt = time.Now()
			s.skills[i] = *sk
			return nil
		}
	}
	return nil
}

func (s *Store) DeleteSkill(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.skills {
		if s.skills[i].ID == id {
			s.skills = append(s.skills[:i], s.skills[i+1:]...)
			return nil
		}
	}
	return nil
}

// ---- projects ----

func (s *Store) ListProjects(_ context.Context) ([]models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := append([]models.Project(nil), s.projects...)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Order != out[j].Order {
			return out[i].Order < out[j].Order
		}
		return s.ord[out[i].ID] > s.ord[out[j].ID] // created_at DESC
	})
	return out, nil
}

func (s *Store) ProjectByID(_ context.Context, id uuid.UUID) (*models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.projects {
		if s.projects[i].ID == id {
			p := s.projects[i]
			return &p, nil
		}
	}
	return nil, nil
}

func (s *Store) ProjectTitleTaken(_ context.Context, title string, exclude uuid.UUID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.projects {
		if s.projects[i].ID != exclude && strings.EqualFold(s.projects[i].Title, title) {
			return true, nil
		}
	}
	return false, nil
}

func (s *Store) CreateProject(_ context.Context, p *models.Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt
	s.stamp(p.ID)
	s.projects = append(s.projects, *p)
	return nil
}

func (s *Store) UpdateProject(_ context.Context, p *models.Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.projects {
		if s.projects[i].ID == p.ID {
			p.UpdatedAt = time.Now()
			s.projects[i] = *p
			return nil
		}
	}
	return nil
}

func (s *Store) DeleteProject(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.projects {
		if s.projects[i].ID == id {
			s.projects = append(s.projects[:i], s.projects[i+1:]...)
			return nil
		}
	}
	return nil
}

// ---- experience ----

func (s *Store) ListExperience(_ context.Context) ([]models.Experience, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := append([]models.Experience(nil), s.experience...)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Order != out[j].Order {
			return out[i].Order < out[j].Order
		}
		return out[i].StartDate.After(out[j].StartDate) // start_date DESC
	})
	return out, nil
}

func (s *Store) ExperienceByID(_ context.Context, id uuid.UUID) (*models.Experience, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.experience {
		if s.experience[i].ID == id {
			e := s.experience[i]
			return &e, nil
		}
	}
	return nil, nil
}

func (s *Store) CreateExperience(_ context.Context, e *models.Experience) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	e.CreatedAt = time.Now()
	e.UpdatedAt = e.CreatedAt
	s.stamp(e.ID)
	s.experience = append(s.experience, *e)
	return nil
}

func (s *Store) UpdateExperience(_ context.Context, e *models.Experience) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.experience {
		if s.experience[i].ID == e.ID {
			e.UpdatedAt = time.Now()
			s.experience[i] = *e
			return nil
		}
	}
	return nil
}

func (s *Store) DeleteExperience(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.experience {
		if s.experience[i].ID == id {
			s.experience = append(s.experience[:i], s.experience[i+1:]...)
			return nil
		}
	}
	return nil
}

// ---- education ----

func (s *Store) ListEducation(_ context.Context) ([]models.Education, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := append([]models.Education(nil), s.education...)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Order != out[j].Order {
			return out[i].Order < out[j].Order
		}
		return out[i].StartDate.After(out[j].StartDate)
	})
	return out, nil
}

func (s *Store) EducationByID(_ context.Context, id uuid.UUID) (*models.Education, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.education {
		if s.education[i].ID == id {
			e := s.education[i]
			return &e, nil
		}
	}
	return nil, nil
}

func (s *Store) CreateEducation(_ context.Context, e *models.Education) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	e.CreatedAt = time.Now()
	e.UpdatedAt = e.CreatedAt
	s.stamp(e.ID)
	s.education = append(s.education, *e)
	return nil
}

func (s *Store) UpdateEducation(_ context.Context, e *models.Education) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.education {
		if s.education[i].ID == e.ID {
			e.UpdatedAt = time.Now()
			s.education[i] = *e
			return nil
		}
	}
	return nil
}

func (s *Store) DeleteEducation(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.education {
		if s.education[i].ID == id {
			s.education = append(s.education[:i], s.education[i+1:]...)
			return nil
		}
	}
	return nil
}

// ---- certifications ----

func (s *Store) ListCertifications(_ context.Context) ([]models.Certification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := append([]models.Certification(nil), s.certifications...)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Order != out[j].Order {
			return out[i].Order < out[j].Order
		}
		return out[i].IssueDate.After(out[j].IssueDate)
	})
	return out, nil
}

func (s *Store) CertificationByID(_ context.Context, id uuid.UUID) (*models.Certification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.certifications {
		if s.certifications[i].ID == id {
			cert := s.certifications[i]
			return &cert, nil
		}
	}
	return nil, nil
}

func (s *Store) CreateCertification(_ context.Context, cert *models.Certification) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if cert.ID == uuid.Nil {
		cert.ID = uuid.New()
	}
	cert.CreatedAt = time.Now()
	cert.UpdatedAt = cert.CreatedAt
	s.stamp(cert.ID)
	s.certifications = append(s.certifications, *cert)
	return nil
}

func (s *Store) UpdateCertification(_ context.Context, cert *models.Certification) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.certifications {
		if s.certifications[i].ID == cert.ID {
			cert.UpdatedAt = time.Now()
			s.certifications[i] = *cert
			return nil
		}
	}
	return nil
}

func (s *Store) DeleteCertification(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.certifications {
		if s.certifications[i].ID == id {
			s.certifications = append(s.certifications[:i], s.certifications[i+1:]...)
			return nil
		}
	}
	return nil
}
