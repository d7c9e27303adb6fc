package listings

import (
	"context"
	"errors"

	"github.com/adotapet/adota-pet-api/internal/audit"
	domain "github.com/adotapet/adota-pet-api/internal/domain/listings"
	"github.com/adotapet/adota-pet-api/internal/httperr"
	"github.com/adotapet/adota-pet-api/internal/models"
)

type UpdateServiceInput struct {
	ServiceID uint
	OwnerID   uint

	Category     *string
	Name         *string
	Professional *string
	Phone        *string
	Address      *string
	Description  *string
	Latitude     *float64
	Longitude    *float64
}

type UpdateService struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateService(repo domain.Repository, audit *audit.Dispatcher) *UpdateService {
	return &UpdateService{repo: repo, audit: audit}
}

func (uc *UpdateService) Execute(ctx context.Context, in UpdateServiceInput) (*models.Service, error) {

	svc, err := uc.repo.GetByID(ctx, in.ServiceID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, httperr.NotFound("service_not_found", "Service not found.")
		}
		return nil, err
	}

	if svc.OwnerID != in.OwnerID {
		return nil, httperr.Forbidden("not_service_owner", "You do not own this service.")
	}

	if in.Category != nil {
		svc.Category = *in.Category
	}
	if in.Name != nil {
		svc.Name = *in.Name
	}
	if in.Professional != nil {
		svc.Professional = *in.Professional
	}
	if in.Phone != nil {
		svc.Phone = *in.Phone
	}
	if in.Address != nil {
		svc.Address = *in.Address
	}
	if in.Description != nil {
		svc.Description = *in.Description
	}
	if in.Latitude != nil {
		svc.Latitude = in.Latitude
	}
	if in.Longitude != nil {
		svc.Longitude = in.Longitude
	}

	if err := uc.repo.Update(ctx, svc); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.OwnerID,
		Action:   "service_updated",
		Entity:   "service",
		EntityID: &svc.ID,
	})

	return svc, nil
}
