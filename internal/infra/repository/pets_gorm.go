package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	domain "github.com/adotapet/adota-pet-api/internal/domain/pets"
	"github.com/adotapet/adota-pet-api/internal/models"
)

type PetsGormRepository struct {
	db *gorm.DB
}

func NewPetsGormRepository(db *gorm.DB) *PetsGormRepository {
	return &PetsGormRepository{db: db}
}

// --------------------------------------------------
// Listing
// --------------------------------------------------

func (r *PetsGormRepository) ListAdoption(
	ctx context.Context,
	f domain.AdoptionFilter,
) ([]models.Pet, error) {

	q := r.db.WithContext(ctx).
		Where("type = ? AND status = ?", domain.TypeAdoption, domain.StatusAvailable)

	if f.Species != "" {
		q = q.Where("species = ?", f.Species)
	}
	if f.Size != "" {
		q = q.Where("size = ?", f.Size)
	}
	if f.Age != "" {
		q = q.Where("age = ?", f.Age)
	}
	if f.Search != "" {
		like := "%" + strings.ToLower(f.Search) + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(breed) LIKE ?", like, like)
	}

	var pets []models.Pet
	if err := q.
		Preload("Vaccines", vaccinesNewestFirst).
		Order("created_at DESC").
		Find(&pets).Error; err != nil {
		return nil, err
	}
	return pets, nil
}

func (r *PetsGormRepository) ListByOwner(ctx context.Context, ownerID uint) ([]models.Pet, error) {
	var pets []models.Pet
	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Preload("Vaccines", vaccinesNewestFirst).
		Order("created_at DESC").
		Find(&pets).Error; err != nil {
		return nil, err
	}
	return pets, nil
}

func (r *PetsGormRepository) GetByID(ctx context.Context, id uint) (*models.Pet, error) {
	var pet models.Pet
	if err := r.db.WithContext(ctx).
		Preload("Vaccines", vaccinesNewestFirst).
		First(&pet, id).Error; err != nil {
		return nil, translate(err, domain.ErrNotFound)
	}
	return &pet, nil
}

// One IN-query per page of pets instead of one query per pet; output shape
// and per-pet ordering are identical.
func vaccinesNewestFirst(db *gorm.DB) *gorm.DB {
	return db.Order("date DESC")
}

// --------------------------------------------------
// Mutations
// --------------------------------------------------

func (r *PetsGormRepository) Create(ctx context.Context, p *models.Pet) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PetsGormRepository) Update(ctx context.Context, p *models.Pet) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *PetsGormRepository) DeleteOwned(ctx context.Context, id, ownerID uint) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Delete(&models.Pet{})
	return res.RowsAffected, res.Error
}

func (r *PetsGormRepository) MarkAdopted(ctx context.Context, id, ownerID uint) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Pet{}).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Update("status", string(domain.StatusAdopted))
	return res.RowsAffected, res.Error
}

func (r *PetsGormRepository) AddVaccine(ctx context.Context, v *models.Vaccine) error {
	return r.db.WithContext(ctx).Create(v).Error
}
