package pets

import (
	"context"
	"errors"

	"github.com/adotapet/adota-pet-api/internal/models"
)

var ErrNotFound = errors.New("pet not found")

// AdoptionFilter narrows the public adoption feed. Empty fields are ignored;
// Search matches name or breed case-insensitively.
type AdoptionFilter struct {
	Species string
	Size    string
	Age     string
	Search  string
}

type Repository interface {
	// ListAdoption returns available adoption pets, newest first, vaccines
	// attached newest-first.
	ListAdoption(ctx context.Context, f AdoptionFilter) ([]models.Pet, error)

	// ListByOwner returns every pet of one owner regardless of status.
	ListByOwner(ctx context.Context, ownerID uint) ([]models.Pet, error)

	GetByID(ctx context.Context, id uint) (*models.Pet, error)

	Create(ctx context.Context, p *models.Pet) error

	Update(ctx context.Context, p *models.Pet) error

	// DeleteOwned removes the pet only when owned by ownerID; the affected
	// row count is the authorization signal.
	DeleteOwned(ctx context.Context, id, ownerID uint) (int64, error)

	// MarkAdopted flips status to adopted under the same ownership scoping.
	MarkAdopted(ctx context.Context, id, ownerID uint) (int64, error)

	AddVaccine(ctx context.Context, v *models.Vaccine) error
}
