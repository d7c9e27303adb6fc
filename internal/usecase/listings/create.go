package listings

import (
	"context"

	"github.com/adotapet/adota-pet-api/internal/audit"
	domain "github.com/adotapet/adota-pet-api/internal/domain/listings"
	"github.com/adotapet/adota-pet-api/internal/models"
)

type AddServiceInput struct {
	OwnerID uint

	Category     string
	Name         string
	Professional string
	Phone        string
	Address      string
	Description  string
	Latitude     *float64
	Longitude    *float64
}

type AddService struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewAddService(repo domain.Repository, audit *audit.Dispatcher) *AddService {
	return &AddService{repo: repo, audit: audit}
}

func (uc *AddService) Execute(ctx context.Context, in AddServiceInput) (*models.Service, error) {

	svc := &models.Service{
		OwnerID:      in.OwnerID,
		Category:     in.Category,
		Name:         in.Name,
		Professional: in.Professional,
		Phone:        in.Phone,
		Address:      in.Address,
		Description:  in.Description,
		Latitude:     in.Latitude,
		Longitude:    in.Longitude,
	}

	if err := uc.repo.Create(ctx, svc); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.OwnerID,
		Action:   "service_created",
		Entity:   "service",
		EntityID: &svc.ID,
	})

	return svc, nil
}
