package users

import (
	"context"
	"errors"

	"github.com/adotapet/adota-pet-api/internal/models"
)

var ErrNotFound = errors.New("user not found")

type Repository interface {
	GetByID(ctx context.Context, id uint) (*models.User, error)

	GetByAuthID(ctx context.Context, authID string) (*models.User, error)

	GetByEmail(ctx context.Context, email string) (*models.User, error)

	// EmailTaken reports whether another user (id != excludeID) already owns
	// the address. excludeID 0 checks against everyone.
	EmailTaken(ctx context.Context, email string, excludeID uint) (bool, error)

	Create(ctx context.Context, u *models.User) error

	Update(ctx context.Context, u *models.User) error
}
