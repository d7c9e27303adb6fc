package pets

import (
	"context"

	"github.com/adotapet/adota-pet-api/internal/audit"
	domain "github.com/adotapet/adota-pet-api/internal/domain/pets"
	"github.com/adotapet/adota-pet-api/internal/httperr"
)

type DeletePet struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeletePet(repo domain.Repository, audit *audit.Dispatcher) *DeletePet {
	return &DeletePet{repo: repo, audit: audit}
}

// Execute deletes in one ownership-scoped statement. Zero affected rows means
// "not found" whether the pet is missing or owned by someone else; the two
// are indistinguishable on purpose.
func (uc *DeletePet) Execute(ctx context.Context, petID, ownerID uint) error {
	rows, err := uc.repo.DeleteOwned(ctx, petID, ownerID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return httperr.NotFound("pet_not_found", "Pet not found.")
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &ownerID,
		Action:   "pet_deleted",
		Entity:   "pet",
		EntityID: &petID,
	})

	return nil
}
