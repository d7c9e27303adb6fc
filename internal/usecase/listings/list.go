package listings

import (
	"context"

	domain "github.com/adotapet/adota-pet-api/internal/domain/listings"
	"github.com/adotapet/adota-pet-api/internal/models"
)

type ListServices struct {
	repo domain.Repository
}

func NewListServices(repo domain.Repository) *ListServices {
	return &ListServices{repo: repo}
}

// Execute returns every matching listing. Callers without a well-formed
// Bearer header get contact fields redacted; header presence is the gate, not
// token validity (documented product behavior).
func (uc *ListServices) Execute(
	ctx context.Context,
	f domain.Filter,
	bearerPresent bool,
) ([]models.Service, error) {

	services, err := uc.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	if services == nil {
		services = []models.Service{}
	}

	if !bearerPresent {
		domain.RedactContact(services)
	}

	return services, nil
}
