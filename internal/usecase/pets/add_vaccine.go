package pets

import (
	"context"
	"errors"
	"time"

	"github.com/adotapet/adota-pet-api/internal/audit"
	domain "github.com/adotapet/adota-pet-api/internal/domain/pets"
	"github.com/adotapet/adota-pet-api/internal/httperr"
	"github.com/adotapet/adota-pet-api/internal/models"
)

type AddVaccineInput struct {
	PetID   uint
	OwnerID uint

	Name     string
	Date     time.Time
	NextDate *time.Time
	Vet      *string
	Notes    *string
}

type AddVaccineToPet struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewAddVaccineToPet(repo domain.Repository, audit *audit.Dispatcher) *AddVaccineToPet {
	return &AddVaccineToPet{repo: repo, audit: audit}
}

// Execute is an explicit check-then-act: load the pet, verify ownership, then
// insert. Not transactional; only the owner can race themselves here.
func (uc *AddVaccineToPet) Execute(ctx context.Context, in AddVaccineInput) (*models.Vaccine, error) {

	pet, err := uc.repo.GetByID(ctx, in.PetID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, httperr.NotFound("pet_not_found", "Pet not found.")
		}
		return nil, err
	}

	if pet.OwnerID != in.OwnerID {
		return nil, httperr.Forbidden("not_pet_owner", "You do not own this pet.")
	}

	vaccine := &models.Vaccine{
		PetID:    in.PetID,
		Name:     in.Name,
		Date:     in.Date,
		NextDate: in.NextDate,
		Vet:      in.Vet,
		Notes:    in.Notes,
	}

	if err := uc.repo.AddVaccine(ctx, vaccine); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.OwnerID,
		Action:   "vaccine_added",
		Entity:   "vaccine",
		EntityID: &vaccine.ID,
		Metadata: map[string]any{"petId": in.PetID},
	})

	return vaccine, nil
}
