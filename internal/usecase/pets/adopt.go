package pets

import (
	"context"

	"github.com/adotapet/adota-pet-api/internal/audit"
	domain "github.com/adotapet/adota-pet-api/internal/domain/pets"
	"github.com/adotapet/adota-pet-api/internal/httperr"
)

type MarkPetAsAdopted struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewMarkPetAsAdopted(repo domain.Repository, audit *audit.Dispatcher) *MarkPetAsAdopted {
	return &MarkPetAsAdopted{repo: repo, audit: audit}
}

// Execute sets status to adopted, scoped on (id, owner). Repeated calls by
// the owner stay successful: the statement does not predicate on the current
// status.
func (uc *MarkPetAsAdopted) Execute(ctx context.Context, petID, ownerID uint) error {
	rows, err := uc.repo.MarkAdopted(ctx, petID, ownerID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return httperr.NotFound("pet_not_found", "Pet not found.")
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &ownerID,
		Action:   "pet_adopted",
		Entity:   "pet",
		EntityID: &petID,
	})

	return nil
}
