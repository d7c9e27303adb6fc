package pets

import (
	"context"

	domain "github.com/adotapet/adota-pet-api/internal/domain/pets"
	"github.com/adotapet/adota-pet-api/internal/models"
)

type ListAdoptionPets struct {
	repo domain.Repository
}

func NewListAdoptionPets(repo domain.Repository) *ListAdoptionPets {
	return &ListAdoptionPets{repo: repo}
}

// Execute returns available adoption pets, newest first, each with its
// vaccine history attached.
func (uc *ListAdoptionPets) Execute(
	ctx context.Context,
	f domain.AdoptionFilter,
) ([]models.Pet, error) {

	pets, err := uc.repo.ListAdoption(ctx, f)
	if err != nil {
		return nil, err
	}

	ensureVaccineSlices(pets)
	return pets, nil
}

// Pets without vaccines serialize as "vaccines": [] rather than null.
func ensureVaccineSlices(pets []models.Pet) {
	for i := range pets {
		if pets[i].Vaccines == nil {
			pets[i].Vaccines = []models.Vaccine{}
		}
	}
}
