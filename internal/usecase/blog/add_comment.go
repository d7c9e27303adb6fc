package blog

import (
	"context"
	"errors"

	domain "github.com/adotapet/adota-pet-api/internal/domain/blog"
	"github.com/adotapet/adota-pet-api/internal/httperr"
	"github.com/adotapet/adota-pet-api/internal/models"
)

type AddCommentInput struct {
	PostID  uint
	OwnerID uint
	Content string
}

type AddComment struct {
	repo domain.Repository
}

func NewAddComment(repo domain.Repository) *AddComment {
	return &AddComment{repo: repo}
}

func (uc *AddComment) Execute(ctx context.Context, in AddCommentInput) (*models.Comment, error) {

	if _, err := uc.repo.GetByID(ctx, in.PostID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, httperr.NotFound("post_not_found", "Post not found.")
		}
		return nil, err
	}

	comment := &models.Comment{
		PostID:  in.PostID,
		OwnerID: in.OwnerID,
		Content: in.Content,
	}

	if err := uc.repo.AddComment(ctx, comment); err != nil {
		return nil, err
	}

	return comment, nil
}
