package models

import "time"

type Pet struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	OwnerID uint `gorm:"index;not null;column:owner_id" json:"ownerId"`

	Name    string `gorm:"size:100;not null" json:"name"`
	Species string `gorm:"size:10;not null" json:"species"`
	Breed   string `gorm:"size:100" json:"breed"`
	Age     string `gorm:"size:10;not null" json:"age"`
	Size    string `gorm:"size:10;not null" json:"size"`
	Gender  string `gorm:"size:10;not null" json:"gender"`

	Type        string  `gorm:"size:10;not null" json:"type"`
	Status      string  `gorm:"size:10;not null" json:"status"`
	Description string  `gorm:"size:1000" json:"description"`
	PhotoURL    *string `gorm:"size:500;column:photo_url" json:"photoUrl"`

	Vaccines []Vaccine `gorm:"constraint:OnDelete:CASCADE" json:"vaccines"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"-"`
}

type Vaccine struct {
	ID    uint `gorm:"primaryKey" json:"id"`
	PetID uint `gorm:"index;not null;column:pet_id" json:"petId"`

	Name     string     `gorm:"size:100;not null" json:"name"`
	Date     time.Time  `gorm:"not null" json:"date"`
	NextDate *time.Time `gorm:"column:next_date" json:"nextDate"`
	Vet      *string    `gorm:"size:100" json:"vet"`
	Notes    *string    `gorm:"size:500" json:"notes"`

	CreatedAt time.Time `json:"-"`
}
