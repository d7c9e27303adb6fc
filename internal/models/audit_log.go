package models

import "time"

type AuditLog struct {
	ID     uint  `gorm:"primaryKey" json:"id"`
	UserID *uint `gorm:"index;column:user_id" json:"userId"`

	Action   string `gorm:"size:50;not null" json:"action"`
	Entity   string `gorm:"size:30;not null" json:"entity"`
	EntityID *uint  `gorm:"column:entity_id" json:"entityId"`
	Metadata string `gorm:"type:text" json:"metadata"`

	CreatedAt time.Time `json:"createdAt"`
}
