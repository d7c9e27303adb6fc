package blog

import (
	"context"

	"github.com/adotapet/adota-pet-api/internal/audit"
	domain "github.com/adotapet/adota-pet-api/internal/domain/blog"
	"github.com/adotapet/adota-pet-api/internal/httperr"
)

type DeletePost struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeletePost(repo domain.Repository, audit *audit.Dispatcher) *DeletePost {
	return &DeletePost{repo: repo, audit: audit}
}

func (uc *DeletePost) Execute(ctx context.Context, postID, ownerID uint) error {
	rows, err := uc.repo.DeleteOwned(ctx, postID, ownerID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return httperr.NotFound("post_not_found", "Post not found.")
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &ownerID,
		Action:   "post_deleted",
		Entity:   "post",
		EntityID: &postID,
	})

	return nil
}
