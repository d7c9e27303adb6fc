package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/adotapet/adota-pet-api/internal/domain/users"
	"github.com/adotapet/adota-pet-api/internal/models"
)

type UsersGormRepository struct {
	db *gorm.DB
}

func NewUsersGormRepository(db *gorm.DB) *UsersGormRepository {
	return &UsersGormRepository{db: db}
}

func (r *UsersGormRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, translate(err, domain.ErrNotFound)
	}
	return &user, nil
}

func (r *UsersGormRepository) GetByAuthID(ctx context.Context, authID string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).
		Where("auth_id = ?", authID).
		First(&user).Error; err != nil {
		return nil, translate(err, domain.ErrNotFound)
	}
	return &user, nil
}

func (r *UsersGormRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&user).Error; err != nil {
		return nil, translate(err, domain.ErrNotFound)
	}
	return &user, nil
}

func (r *UsersGormRepository) EmailTaken(ctx context.Context, email string, excludeID uint) (bool, error) {
	q := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("email = ?", email)

	if excludeID > 0 {
		q = q.Where("id <> ?", excludeID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *UsersGormRepository) Create(ctx context.Context, u *models.User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *UsersGormRepository) Update(ctx context.Context, u *models.User) error {
	return r.db.WithContext(ctx).Save(u).Error
}

// translate maps gorm's not-found onto the domain sentinel so usecases never
// import gorm.
func translate(err, notFound error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	return err
}
