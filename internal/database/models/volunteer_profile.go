package models

import (
	"encoding/json"

	"github.com/google/uuid"
)

// VolunteerProfile holds the volunteer-specific data of a user.
// Only profiles with IsVerified receive emergency alerts.
type VolunteerProfile struct {
	BaseModel
	UserID          uuid.UUID       `json:"user_id" gorm:"type:uuid;not null;uniqueIndex"`
	IsVerified      bool            `json:"is_verified" gorm:"not null;default:false;index"`
	Skills          json.RawMessage `json:"skills" gorm:"type:jsonb"`
	Bio             string          `json:"bio" gorm:"type:text"`
	Rating          float64         `json:"rating" gorm:"default:0"`
	TotalResponses  int             `json:"total_responses" gorm:"default:0"`
	SuccessfulHelps int             `json:"successful_helps" gorm:"default:0"`
}

// TableName returns the table name for VolunteerProfile
func (VolunteerProfile) TableName() string {
	return "volunteer_profiles"
}
