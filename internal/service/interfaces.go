package service

import (
	"context"

	"crowdaid-backend/internal/auth"
	"crowdaid-backend/internal/database/models"
	"crowdaid-backend/internal/notify"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// EmergencyServiceInterface defines the interface for the emergency lifecycle service
type EmergencyServiceInterface interface {
	CreateEmergency(principal *auth.Principal, req *CreateEmergencyRequest) (*models.Emergency, error)
	ListEmergencies(principal *auth.Principal, req *ListEmergenciesRequest) ([]models.Emergency, error)
	GetEmergency(principal *auth.Principal, id uuid.UUID) (*models.Emergency, error)
	UpdateEmergency(principal *auth.Principal, id uuid.UUID, req *UpdateEmergencyRequest) (*models.Emergency, error)
	RespondToEmergency(principal *auth.Principal, id uuid.UUID, req *RespondRequest) (*models.EmergencyResponse, error)
	ResolveEmergency(principal *auth.Principal, id uuid.UUID) (*models.Emergency, error)
	GetStats(principal *auth.Principal) (*EmergencyStats, error)
}

// NotificationServiceInterface defines the interface for notification fan-out and inbox operations
type NotificationServiceInterface interface {
	NotifyVolunteers(ctx context.Context, emergency *models.Emergency) (int, error)
	Notify(ctx context.Context, req *NotifyRequest) (*models.Notification, error)
	ListForUser(userID uuid.UUID, unreadOnly bool) ([]models.Notification, error)
	MarkRead(id, userID uuid.UUID) error
	MarkAllRead(userID uuid.UUID) (int64, error)
	UnreadCount(userID uuid.UUID) (int64, error)
}

// TaskDispatcher hands notification work to a background worker
type TaskDispatcher interface {
	Dispatch(task notify.Task) error
}
