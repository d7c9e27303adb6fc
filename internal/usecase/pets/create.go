package pets

import (
	"context"

	"github.com/adotapet/adota-pet-api/internal/audit"
	domain "github.com/adotapet/adota-pet-api/internal/domain/pets"
	"github.com/adotapet/adota-pet-api/internal/httperr"
	"github.com/adotapet/adota-pet-api/internal/models"
	"github.com/adotapet/adota-pet-api/internal/storage"
)

type AddNewPetInput struct {
	OwnerID uint

	Name        string
	Species     string
	Breed       string
	Age         string
	Size        string
	Gender      string
	Type        string
	Description string

	Photo *storage.Upload
}

type AddNewPet struct {
	repo     domain.Repository
	uploader storage.Uploader
	audit    *audit.Dispatcher
}

func NewAddNewPet(
	repo domain.Repository,
	uploader storage.Uploader,
	audit *audit.Dispatcher,
) *AddNewPet {
	return &AddNewPet{
		repo:     repo,
		uploader: uploader,
		audit:    audit,
	}
}

func (uc *AddNewPet) Execute(ctx context.Context, in AddNewPetInput) (*models.Pet, error) {

	// Upload first: a failed upload must not leave a pet behind.
	var photoURL *string
	if in.Photo != nil {
		url, err := uc.uploader.Upload(ctx, in.Photo.Data, in.Photo.Name, in.Photo.MimeType)
		if err != nil {
			return nil, httperr.Internal("upload_failed", "Photo upload failed.", err)
		}
		photoURL = &url
	}

	pet := &models.Pet{
		OwnerID:     in.OwnerID,
		Name:        in.Name,
		Species:     in.Species,
		Breed:       in.Breed,
		Age:         in.Age,
		Size:        in.Size,
		Gender:      in.Gender,
		Type:        in.Type,
		Status:      domain.DeriveStatus(in.Type),
		Description: in.Description,
		PhotoURL:    photoURL,
		Vaccines:    []models.Vaccine{},
	}

	if err := uc.repo.Create(ctx, pet); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.OwnerID,
		Action:   "pet_created",
		Entity:   "pet",
		EntityID: &pet.ID,
	})

	return pet, nil
}
