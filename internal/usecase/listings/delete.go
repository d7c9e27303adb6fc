package listings

import (
	"context"

	"github.com/adotapet/adota-pet-api/internal/audit"
	domain "github.com/adotapet/adota-pet-api/internal/domain/listings"
	"github.com/adotapet/adota-pet-api/internal/httperr"
)

type DeleteService struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteService(repo domain.Repository, audit *audit.Dispatcher) *DeleteService {
	return &DeleteService{repo: repo, audit: audit}
}

func (uc *DeleteService) Execute(ctx context.Context, serviceID, ownerID uint) error {
	rows, err := uc.repo.DeleteOwned(ctx, serviceID, ownerID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return httperr.NotFound("service_not_found", "Service not found.")
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &ownerID,
		Action:   "service_deleted",
		Entity:   "service",
		EntityID: &serviceID,
	})

	return nil
}
