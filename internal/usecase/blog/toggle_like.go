package blog

import (
	"context"
	"errors"

	domain "github.com/adotapet/adota-pet-api/internal/domain/blog"
	"github.com/adotapet/adota-pet-api/internal/httperr"
)

type TogglePostLike struct {
	repo domain.Repository
}

func NewTogglePostLike(repo domain.Repository) *TogglePostLike {
	return &TogglePostLike{repo: repo}
}

// Execute flips the (post, user) like membership: insert when absent, delete
// when present. Returns whether the post is liked afterwards. Lookup and
// write are two steps, which is fine for a user toggling their own like.
func (uc *TogglePostLike) Execute(ctx context.Context, postID, userID uint) (bool, error) {

	if _, err := uc.repo.GetByID(ctx, postID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return false, httperr.NotFound("post_not_found", "Post not found.")
		}
		return false, err
	}

	liked, err := uc.repo.HasLike(ctx, postID, userID)
	if err != nil {
		return false, err
	}

	if liked {
		if err := uc.repo.RemoveLike(ctx, postID, userID); err != nil {
			return false, err
		}
		return false, nil
	}

	if err := uc.repo.AddLike(ctx, postID, userID); err != nil {
		return false, err
	}
	return true, nil
}
