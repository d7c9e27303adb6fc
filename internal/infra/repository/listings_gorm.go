package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	domain "github.com/adotapet/adota-pet-api/internal/domain/listings"
	"github.com/adotapet/adota-pet-api/internal/models"
)

type ListingsGormRepository struct {
	db *gorm.DB
}

func NewListingsGormRepository(db *gorm.DB) *ListingsGormRepository {
	return &ListingsGormRepository{db: db}
}

func (r *ListingsGormRepository) List(ctx context.Context, f domain.Filter) ([]models.Service, error) {
	q := r.db.WithContext(ctx)

	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if f.Search != "" {
		like := "%" + strings.ToLower(f.Search) + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(professional) LIKE ?", like, like)
	}

	var services []models.Service
	if err := q.
		Order("created_at DESC").
		Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

func (r *ListingsGormRepository) GetByID(ctx context.Context, id uint) (*models.Service, error) {
	var svc models.Service
	if err := r.db.WithContext(ctx).First(&svc, id).Error; err != nil {
		return nil, translate(err, domain.ErrNotFound)
	}
	return &svc, nil
}

func (r *ListingsGormRepository) Create(ctx context.Context, s *models.Service) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *ListingsGormRepository) Update(ctx context.Context, s *models.Service) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *ListingsGormRepository) DeleteOwned(ctx context.Context, id, ownerID uint) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Delete(&models.Service{})
	return res.RowsAffected, res.Error
}
