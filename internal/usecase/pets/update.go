package pets

import (
	"context"
	"errors"

	"github.com/adotapet/adota-pet-api/internal/audit"
	domain "github.com/adotapet/adota-pet-api/internal/domain/pets"
	"github.com/adotapet/adota-pet-api/internal/httperr"
	"github.com/adotapet/adota-pet-api/internal/models"
	"github.com/adotapet/adota-pet-api/internal/storage"
)

// UpdatePetDetailsInput carries a partial update: nil fields keep their
// current value.
type UpdatePetDetailsInput struct {
	PetID   uint
	OwnerID uint

	Name        *string
	Species     *string
	Breed       *string
	Age         *string
	Size        *string
	Gender      *string
	Type        *string
	Description *string

	// PhotoURL lets a client keep or clear the stored photo without
	// re-uploading; a new Photo always wins.
	PhotoURL *string
	Photo    *storage.Upload
}

type UpdatePetDetails struct {
	repo     domain.Repository
	uploader storage.Uploader
	audit    *audit.Dispatcher
}

func NewUpdatePetDetails(
	repo domain.Repository,
	uploader storage.Uploader,
	audit *audit.Dispatcher,
) *UpdatePetDetails {
	return &UpdatePetDetails{
		repo:     repo,
		uploader: uploader,
		audit:    audit,
	}
}

func (uc *UpdatePetDetails) Execute(ctx context.Context, in UpdatePetDetailsInput) (*models.Pet, error) {

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

	// --------------------------------------------------
	// Merge-by-fallback
	// --------------------------------------------------

	if in.Name != nil {
		pet.Name = *in.Name
	}
	if in.Species != nil {
		pet.Species = *in.Species
	}
	if in.Breed != nil {
		pet.Breed = *in.Breed
	}
	if in.Age != nil {
		pet.Age = *in.Age
	}
	if in.Size != nil {
		pet.Size = *in.Size
	}
	if in.Gender != nil {
		pet.Gender = *in.Gender
	}
	if in.Description != nil {
		pet.Description = *in.Description
	}

	// Status only re-derives when the listing type itself changes.
	if in.Type != nil {
		pet.Type = *in.Type
		pet.Status = domain.DeriveStatus(*in.Type)
	}

	switch {
	case in.Photo != nil:
		url, err := uc.uploader.Upload(ctx, in.Photo.Data, in.Photo.Name, in.Photo.MimeType)
		if err != nil {
			return nil, httperr.Internal("upload_failed", "Photo upload failed.", err)
		}
		pet.PhotoURL = &url
	case in.PhotoURL != nil:
		pet.PhotoURL = in.PhotoURL
	}

	if err := uc.repo.Update(ctx, pet); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.OwnerID,
		Action:   "pet_updated",
		Entity:   "pet",
		EntityID: &pet.ID,
	})

	return pet, nil
}
