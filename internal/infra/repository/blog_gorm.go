package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/adotapet/adota-pet-api/internal/domain/blog"
	"github.com/adotapet/adota-pet-api/internal/models"
)

type BlogGormRepository struct {
	db *gorm.DB
}

func NewBlogGormRepository(db *gorm.DB) *BlogGormRepository {
	return &BlogGormRepository{db: db}
}

// --------------------------------------------------
// Posts
// --------------------------------------------------

func (r *BlogGormRepository) ListPage(
	ctx context.Context,
	offset, limit int,
) ([]models.Post, int64, error) {

	var total int64
	if err := r.db.WithContext(ctx).
		Model(&models.Post{}).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var posts []models.Post
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error; err != nil {
		return nil, 0, err
	}

	return posts, total, nil
}

func (r *BlogGormRepository) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	if err := r.db.WithContext(ctx).First(&post, id).Error; err != nil {
		return nil, translate(err, domain.ErrNotFound)
	}
	return &post, nil
}

func (r *BlogGormRepository) Create(ctx context.Context, p *models.Post) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *BlogGormRepository) Update(ctx context.Context, p *models.Post) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *BlogGormRepository) DeleteOwned(ctx context.Context, id, ownerID uint) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Delete(&models.Post{})
	return res.RowsAffected, res.Error
}

// --------------------------------------------------
// Comments
// --------------------------------------------------

func (r *BlogGormRepository) ListComments(ctx context.Context, postID uint) ([]models.Comment, error) {
	var comments []models.Comment
	if err := r.db.WithContext(ctx).
		Where("post_id = ?", postID).
		Order("created_at ASC").
		Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *BlogGormRepository) AddComment(ctx context.Context, cm *models.Comment) error {
	return r.db.WithContext(ctx).Create(cm).Error
}

// --------------------------------------------------
// Likes
// --------------------------------------------------

func (r *BlogGormRepository) ListLikeUserIDs(ctx context.Context, postID uint) ([]uint, error) {
	var ids []uint
	if err := r.db.WithContext(ctx).
		Model(&models.Like{}).
		Where("post_id = ?", postID).
		Pluck("user_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *BlogGormRepository) HasLike(ctx context.Context, postID, userID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Like{}).
		Where("post_id = ? AND user_id = ?", postID, userID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *BlogGormRepository) AddLike(ctx context.Context, postID, userID uint) error {
	return r.db.WithContext(ctx).Create(&models.Like{
		PostID: postID,
		UserID: userID,
	}).Error
}

func (r *BlogGormRepository) RemoveLike(ctx context.Context, postID, userID uint) error {
	return r.db.WithContext(ctx).
		Where("post_id = ? AND user_id = ?", postID, userID).
		Delete(&models.Like{}).Error
}
