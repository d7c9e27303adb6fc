package pets

import (
	"context"

	domain "github.com/adotapet/adota-pet-api/internal/domain/pets"
	"github.com/adotapet/adota-pet-api/internal/models"
)

type ListMyPets struct {
	repo domain.Repository
}

func NewListMyPets(repo domain.Repository) *ListMyPets {
	return &ListMyPets{repo: repo}
}

// Execute returns every pet of the caller, no status filter.
func (uc *ListMyPets) Execute(ctx context.Context, ownerID uint) ([]models.Pet, error) {
	pets, err := uc.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	ensureVaccineSlices(pets)
	return pets, nil
}
