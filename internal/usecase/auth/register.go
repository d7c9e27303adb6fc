package auth

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/adotapet/adota-pet-api/internal/audit"
	domain "github.com/adotapet/adota-pet-api/internal/domain/users"
	"github.com/adotapet/adota-pet-api/internal/httperr"
	"github.com/adotapet/adota-pet-api/internal/models"
	"github.com/adotapet/adota-pet-api/internal/storage"
)

type RegisterUserInput struct {
	Name   string
	Email  string
	Phone  string
	AuthID string

	// Password is optional: identity is provider-delegated, a local password
	// only enables the email/password login endpoint.
	Password *string
	Photo    *storage.Upload
}

type RegisterUser struct {
	repo     domain.Repository
	uploader storage.Uploader
	audit    *audit.Dispatcher
}

func NewRegisterUser(
	repo domain.Repository,
	uploader storage.Uploader,
	audit *audit.Dispatcher,
) *RegisterUser {
	return &RegisterUser{
		repo:     repo,
		uploader: uploader,
		audit:    audit,
	}
}

func (uc *RegisterUser) Execute(ctx context.Context, in RegisterUserInput) (*models.User, error) {

	email := strings.ToLower(strings.TrimSpace(in.Email))

	taken, err := uc.repo.EmailTaken(ctx, email, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, httperr.BadRequest("email_taken", "Email is already registered.")
	}

	var photoURL *string
	if in.Photo != nil {
		url, err := uc.uploader.Upload(ctx, in.Photo.Data, in.Photo.Name, in.Photo.MimeType)
		if err != nil {
			return nil, httperr.Internal("upload_failed", "Photo upload failed.", err)
		}
		photoURL = &url
	}

	var passwordHash *string
	if in.Password != nil && *in.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, httperr.Internal("hash_failed", "Could not process the password.", err)
		}
		h := string(hashed)
		passwordHash = &h
	}

	user := &models.User{
		AuthID:       in.AuthID,
		Name:         in.Name,
		Email:        email,
		Phone:        in.Phone,
		PasswordHash: passwordHash,
		PhotoURL:     photoURL,
		Role:         "user",
	}

	if err := uc.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &user.ID,
		Action:   "user_registered",
		Entity:   "user",
		EntityID: &user.ID,
	})

	return user, nil
}
