package blog

import (
	"context"
	"errors"

	"github.com/adotapet/adota-pet-api/internal/audit"
	domain "github.com/adotapet/adota-pet-api/internal/domain/blog"
	"github.com/adotapet/adota-pet-api/internal/httperr"
	"github.com/adotapet/adota-pet-api/internal/models"
	"github.com/adotapet/adota-pet-api/internal/storage"
)

type UpdatePostDetailsInput struct {
	PostID  uint
	OwnerID uint

	Content  *string
	Location *string

	PhotoURL *string
	Photo    *storage.Upload
}

type UpdatePostDetails struct {
	repo     domain.Repository
	uploader storage.Uploader
	audit    *audit.Dispatcher
}

func NewUpdatePostDetails(
	repo domain.Repository,
	uploader storage.Uploader,
	audit *audit.Dispatcher,
) *UpdatePostDetails {
	return &UpdatePostDetails{
		repo:     repo,
		uploader: uploader,
		audit:    audit,
	}
}

func (uc *UpdatePostDetails) Execute(ctx context.Context, in UpdatePostDetailsInput) (*models.Post, error) {

	post, err := uc.repo.GetByID(ctx, in.PostID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, httperr.NotFound("post_not_found", "Post not found.")
		}
		return nil, err
	}

	// Ownership compares the stored owner id, never anything the client sent.
	if post.OwnerID != in.OwnerID {
		return nil, httperr.Forbidden("not_post_owner", "You do not own this post.")
	}

	if in.Content != nil {
		post.Content = *in.Content
	}
	if in.Location != nil {
		post.Location = in.Location
	}

	switch {
	case in.Photo != nil:
		url, err := uc.uploader.Upload(ctx, in.Photo.Data, in.Photo.Name, in.Photo.MimeType)
		if err != nil {
			return nil, httperr.Internal("upload_failed", "Photo upload failed.", err)
		}
		post.PhotoURL = &url
	case in.PhotoURL != nil:
		post.PhotoURL = in.PhotoURL
	}

	if err := uc.repo.Update(ctx, post); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.OwnerID,
		Action:   "post_updated",
		Entity:   "post",
		EntityID: &post.ID,
	})

	return post, nil
}
