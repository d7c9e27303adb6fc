package pets

import (
	"context"
	"errors"

	domain "github.com/adotapet/adota-pet-api/internal/domain/pets"
	"github.com/adotapet/adota-pet-api/internal/httperr"
	"github.com/adotapet/adota-pet-api/internal/models"
)

type GetPet struct {
	repo domain.Repository
}

func NewGetPet(repo domain.Repository) *GetPet {
	return &GetPet{repo: repo}
}

func (uc *GetPet) Execute(ctx context.Context, petID uint) (*models.Pet, error) {
	pet, err := uc.repo.GetByID(ctx, petID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, httperr.NotFound("pet_not_found", "Pet not found.")
		}
		return nil, err
	}

	if pet.Vaccines == nil {
		pet.Vaccines = []models.Vaccine{}
	}
	return pet, nil
}
