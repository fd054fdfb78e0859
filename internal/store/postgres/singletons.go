package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/akshit1742/portfolio-api/internal/models"
)

// Bio and ContactInfo are singletons. Reads take the most recently created
// row so a stray duplicate can never shadow newer content.

func (s *Store) LatestBio(ctx context.Context) (*models.Bio, error) {
	var b models.Bio
	err := s.db.WithContext(ctx).Order("created_at DESC").First(&b).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (s *Store) CreateBio(ctx context.Context, b *models.Bio) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return s.db.WithContext(ctx).Create(b).Error
}

func (s *Store) UpdateBio(ctx context.Context, b *models.Bio) error {
	return s.db.WithContext(ctx).Save(b).Error
}

func (s *Store) LatestContactInfo(ctx context.Context) (*models.ContactInfo, error) {
	var ci models.ContactInfo
	err := s.db.WithContext(ctx).Order("created_at DESC").First(&ci).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ci, nil
}

func (s *Store) CreateContactInfo(ctx context.Context, ci *models.ContactInfo) error {
	if ci.ID == uuid.Nil {
		ci.ID = uuid.New()
	}
	return s.db.WithContext(ctx).Create(ci).Error
}

func (s *Store) UpdateContactInfo(ctx context.Context, ci *models.ContactInfo) error {
	return s.db.WithContext(ctx).Save(ci).Error
}
