package blog

import (
	"context"

	"golang.org/x/sync/errgroup"

	domain "github.com/adotapet/adota-pet-api/internal/domain/blog"
	"github.com/adotapet/adota-pet-api/internal/models"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 50
)

type PostPage struct {
	Data       []models.Post
	Total      int64
	Page       int
	TotalPages int
}

type ListPosts struct {
	repo domain.Repository
}

func NewListPosts(repo domain.Repository) *ListPosts {
	return &ListPosts{repo: repo}
}

// Execute returns one page of posts with comments and like-user-id lists
// attached. The per-post fetches run concurrently; ordering inside each post
// (comments oldest first, likes in storage order) is preserved because every
// goroutine writes only its own index.
func (uc *ListPosts) Execute(ctx context.Context, page, limit int) (*PostPage, error) {

	if page < 1 {
		page = defaultPage
	}
	if limit < 1 || limit > maxLimit {
		limit = defaultLimit
	}

	posts, total, err := uc.repo.ListPage(ctx, (page-1)*limit, limit)
	if err != nil {
		return nil, err
	}
	if posts == nil {
		posts = []models.Post{}
	}

	g, gctx := errgroup.WithContext(ctx)
	for i := range posts {
		g.Go(func() error {
			comments, err := uc.repo.ListComments(gctx, posts[i].ID)
			if err != nil {
				return err
			}
			if comments == nil {
				comments = []models.Comment{}
			}
			posts[i].Comments = comments
			posts[i].CommentCount = len(comments)
			return nil
		})
		g.Go(func() error {
			likes, err := uc.repo.ListLikeUserIDs(gctx, posts[i].ID)
			if err != nil {
				return err
			}
			if likes == nil {
				likes = []uint{}
			}
			posts[i].LikeUserIDs = likes
			posts[i].LikeCount = len(likes)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))

	return &PostPage{
		Data:       posts,
		Total:      total,
		Page:       page,
		TotalPages: totalPages,
	}, nil
}
