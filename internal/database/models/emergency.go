package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Emergency represents a reported crisis
type Emergency struct {
	BaseModel
	UserID      uuid.UUID         `json:"user_id" gorm:"type:uuid;not null;index"`
	Type        EmergencyType     `json:"type" gorm:"type:varchar(50);not null;index"`
	Title       string            `json:"title" gorm:"not null;size:200"`
	Description string            `json:"description" gorm:"type:text"`
	Location    json.RawMessage   `json:"location" gorm:"type:jsonb"`
	Priority    EmergencyPriority `json:"priority" gorm:"type:varchar(20);not null;default:'MEDIUM'"`
	Status      EmergencyStatus   `json:"status" gorm:"type:varchar(20);not null;default:'PENDING';index"`
	AssignedTo  *uuid.UUID        `json:"assigned_to" gorm:"type:uuid;index"`
	ResolvedAt  *time.Time        `json:"resolved_at"`

	// Relationships
	Reporter  *ReporterSummary    `json:"user,omitempty" gorm:"-:migration;foreignKey:UserID"`
	Responses []EmergencyResponse `json:"responses" gorm:"foreignKey:EmergencyID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Emergency
func (Emergency) TableName() string {
	return "emergencies"
}

// ReporterSummary is the public view of the reporting user embedded in emergency reads
type ReporterSummary struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Phone     string    `json:"phone"`
}

// TableName returns the table name for ReporterSummary
func (ReporterSummary) TableName() string {
	return "users"
}

// IsOwnedBy reports whether userID reported the emergency
func (e *Emergency) IsOwnedBy(userID uuid.UUID) bool {
	return e.UserID == userID
}

// IsAssignedTo reports whether userID is the assigned volunteer
func (e *Emergency) IsAssignedTo(userID uuid.UUID) bool {
	return e.AssignedTo != nil && *e.AssignedTo == userID
}
