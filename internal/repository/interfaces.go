package repository

import (
	"time"

	"crowdaid-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// EmergencyRepositoryInterface defines the interface for emergency store operations
type EmergencyRepositoryInterface interface {
	Create(emergency *models.Emergency) error
	GetByID(id uuid.UUID) (*models.Emergency, error)
	List(filter EmergencyFilter) ([]models.Emergency, error)
	Update(id uuid.UUID, updates map[string]interface{}) error
	TransitionStatus(id uuid.UUID, from []models.EmergencyStatus, updates map[string]interface{}) (bool, error)
	AddResponse(response *models.EmergencyResponse) (bool, error)
	Resolve(id uuid.UUID, resolvedAt time.Time) (bool, error)
	CountByStatus() (map[models.EmergencyStatus]int64, error)
}

// NotificationRepositoryInterface defines the interface for notification repository operations
type NotificationRepositoryInterface interface {
	Create(notification *models.Notification) error
	CreateBatch(notifications []models.Notification) error
	ListForUser(userID uuid.UUID, unreadOnly bool, limit int) ([]models.Notification, error)
	MarkRead(id, userID uuid.UUID) (int64, error)
	MarkAllRead(userID uuid.UUID) (int64, error)
	CountUnread(userID uuid.UUID) (int64, error)
}

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
}

// VolunteerDirectory lists the users eligible to receive emergency alerts
type VolunteerDirectory interface {
	ListVerifiedVolunteers() ([]VolunteerContact, error)
	CountVerified() (int64, error)
}
