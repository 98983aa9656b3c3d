package models

import (
	"github.com/google/uuid"
)

// EmergencyResponse is a volunteer's offer to help with an emergency
type EmergencyResponse struct {
	BaseModel
	EmergencyID uuid.UUID      `json:"emergency_id" gorm:"type:uuid;not null;index"`
	VolunteerID uuid.UUID      `json:"volunteer_id" gorm:"type:uuid;not null;index"`
	Message     string         `json:"message" gorm:"type:text"`
	Status      ResponseStatus `json:"status" gorm:"type:varchar(20);not null;default:'PENDING'"`
}

// TableName returns the table name for EmergencyResponse
func (EmergencyResponse) TableName() string {
	return "emergency_responses"
}
