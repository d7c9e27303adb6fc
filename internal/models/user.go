package models

import "time"

type User struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	AuthID string `gorm:"size:64;uniqueIndex;not null" json:"authId"`

	Name  string `gorm:"size:100;not null" json:"name"`
	Email string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Phone string `gorm:"size:20" json:"phone"`

	// Null when credentials are fully delegated to the identity provider.
	PasswordHash *string `gorm:"size:255" json:"-"`

	PhotoURL *string `gorm:"size:500;column:photo_url" json:"photoUrl"`
	Role     string  `gorm:"size:20;default:'user'" json:"role"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"-"`
}
