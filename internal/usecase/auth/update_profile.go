package auth

import (
	"context"
	"errors"
	"strings"

	domain "github.com/adotapet/adota-pet-api/internal/domain/users"
	"github.com/adotapet/adota-pet-api/internal/httperr"
	"github.com/adotapet/adota-pet-api/internal/models"
	"github.com/adotapet/adota-pet-api/internal/storage"
)

type UpdateProfileInput struct {
	UserID uint

	Name  *string
	Email *string
	Phone *string
	Photo *storage.Upload
}

type UpdateProfile struct {
	repo     domain.Repository
	uploader storage.Uploader
}

func NewUpdateProfile(repo domain.Repository, uploader storage.Uploader) *UpdateProfile {
	return &UpdateProfile{repo: repo, uploader: uploader}
}

func (uc *UpdateProfile) Execute(ctx context.Context, in UpdateProfileInput) (*models.User, error) {

	user, err := uc.repo.GetByID(ctx, in.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, httperr.NotFound("user_not_found", "User not found.")
		}
		return nil, err
	}

	if in.Name != nil {
		user.Name = *in.Name
	}
	if in.Phone != nil {
		user.Phone = *in.Phone
	}

	if in.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*in.Email))
		if email != user.Email {
			taken, err := uc.repo.EmailTaken(ctx, email, user.ID)
			if err != nil {
				return nil, err
			}
			if taken {
				return nil, httperr.BadRequest("email_taken", "Email is already registered.")
			}
			user.Email = email
		}
	}

	if in.Photo != nil {
		url, err := uc.uploader.Upload(ctx, in.Photo.Data, in.Photo.Name, in.Photo.MimeType)
		if err != nil {
			return nil, httperr.Internal("upload_failed", "Photo upload failed.", err)
		}
		user.PhotoURL = &url
	}

	if err := uc.repo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}
