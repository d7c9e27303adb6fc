package blog

import (
	"context"
	"errors"

	"github.com/adotapet/adota-pet-api/internal/models"
)

var ErrNotFound = errors.New("post not found")

type Repository interface {
	// ListPage returns one page of posts (newest first) plus the total count.
	ListPage(ctx context.Context, offset, limit int) ([]models.Post, int64, error)

	GetByID(ctx context.Context, id uint) (*models.Post, error)

	Create(ctx context.Context, p *models.Post) error

	Update(ctx context.Context, p *models.Post) error

	DeleteOwned(ctx context.Context, id, ownerID uint) (int64, error)

	// -------- Comments --------

	// ListComments returns a post's comments oldest first.
	ListComments(ctx context.Context, postID uint) ([]models.Comment, error)

	AddComment(ctx context.Context, cm *models.Comment) error

	// -------- Likes --------

	ListLikeUserIDs(ctx context.Context, postID uint) ([]uint, error)

	HasLike(ctx context.Context, postID, userID uint) (bool, error)

	AddLike(ctx context.Context, postID, userID uint) error

	RemoveLike(ctx context.Context, postID, userID uint) error
}
