package blog

import (
	"context"

	"github.com/adotapet/adota-pet-api/internal/audit"
	domain "github.com/adotapet/adota-pet-api/internal/domain/blog"
	"github.com/adotapet/adota-pet-api/internal/httperr"
	"github.com/adotapet/adota-pet-api/internal/models"
	"github.com/adotapet/adota-pet-api/internal/storage"
)

type AddNewPostInput struct {
	OwnerID uint

	Content  string
	Location *string
	Photo    *storage.Upload
}

type AddNewPost struct {
	repo     domain.Repository
	uploader storage.Uploader
	audit    *audit.Dispatcher
}

func NewAddNewPost(
	repo domain.Repository,
	uploader storage.Uploader,
	audit *audit.Dispatcher,
) *AddNewPost {
	return &AddNewPost{
		repo:     repo,
		uploader: uploader,
		audit:    audit,
	}
}

func (uc *AddNewPost) Execute(ctx context.Context, in AddNewPostInput) (*models.Post, error) {

	var photoURL *string
	if in.Photo != nil {
		url, err := uc.uploader.Upload(ctx, in.Photo.Data, in.Photo.Name, in.Photo.MimeType)
		if err != nil {
			return nil, httperr.Internal("upload_failed", "Photo upload failed.", err)
		}
		photoURL = &url
	}

	post := &models.Post{
		OwnerID:     in.OwnerID,
		Content:     in.Content,
		Location:    in.Location,
		PhotoURL:    photoURL,
		Comments:    []models.Comment{},
		LikeUserIDs: []uint{},
	}

	if err := uc.repo.Create(ctx, post); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.OwnerID,
		Action:   "post_created",
		Entity:   "post",
		EntityID: &post.ID,
	})

	return post, nil
}
