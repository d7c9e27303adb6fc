package models

import "time"

type Service struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	OwnerID uint `gorm:"index;not null;column:owner_id" json:"ownerId"`

	Category     string `gorm:"size:20;not null" json:"category"`
	Name         string `gorm:"size:100;not null" json:"name"`
	Professional string `gorm:"size:100;not null" json:"professional"`
	Description  string `gorm:"size:1000" json:"description"`

	// Contact fields; redacted for unauthenticated readers.
	Phone     string   `gorm:"size:20" json:"phone"`
	Address   string   `gorm:"size:200" json:"address"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"-"`
}
