package models

import (
	"encoding/json"

	"github.com/google/uuid"
)

// Notification is a message delivered to a single recipient
type Notification struct {
	BaseModel
	UserID  uuid.UUID        `json:"user_id" gorm:"type:uuid;not null;index:idx_notifications_user_read"`
	Type    NotificationType `json:"type" gorm:"type:varchar(50);not null"`
	Title   string           `json:"title" gorm:"not null;size:200"`
	Message string           `json:"message" gorm:"type:text"`
	Data    json.RawMessage  `json:"data" gorm:"type:jsonb"`
	Read    bool             `json:"read" gorm:"not null;default:false;index:idx_notifications_user_read"`
}

// TableName returns the table name for Notification
func (Notification) TableName() string {
	return "notifications"
}
