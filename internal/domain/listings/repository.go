package listings

import (
	"context"
	"errors"

	"github.com/adotapet/adota-pet-api/internal/models"
)

var ErrNotFound = errors.New("service not found")

type Filter struct {
	Category string
	Search   string
}

type Repository interface {
	List(ctx context.Context, f Filter) ([]models.Service, error)

	GetByID(ctx context.Context, id uint) (*models.Service, error)

	Create(ctx context.Context, s *models.Service) error

	Update(ctx context.Context, s *models.Service) error

	DeleteOwned(ctx context.Context, id, ownerID uint) (int64, error)
}
