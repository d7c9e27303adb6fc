package models

import "time"

type Post struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	OwnerID uint `gorm:"index;not null;column:owner_id" json:"ownerId"`

	Content  string  `gorm:"size:280;not null" json:"content"`
	Location *string `gorm:"size:100" json:"location"`
	PhotoURL *string `gorm:"size:500;column:photo_url" json:"photoUrl"`

	// Computed at query time, never persisted.
	CommentCount int       `gorm:"-" json:"commentCount"`
	LikeCount    int       `gorm:"-" json:"likeCount"`
	Comments     []Comment `gorm:"-" json:"comments"`
	LikeUserIDs  []uint    `gorm:"-" json:"likes"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"-"`
}

type Comment struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	PostID  uint `gorm:"index;not null;column:post_id" json:"postId"`
	OwnerID uint `gorm:"not null;column:owner_id" json:"ownerId"`

	Content string `gorm:"size:500;not null" json:"content"`

	CreatedAt time.Time `json:"createdAt"`
}

// Like is a bare membership row: (post, user) pairs.
type Like struct {
	PostID uint `gorm:"primaryKey;autoIncrement:false;column:post_id" json:"postId"`
	UserID uint `gorm:"primaryKey;autoIncrement:false;column:user_id" json:"userId"`

	CreatedAt time.Time `json:"-"`
}
