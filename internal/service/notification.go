package service

import (
	"context"
	"encoding/json"
	"fmt"

	"crowdaid-backend/internal/database/models"
	apperrors "crowdaid-backend/internal/errors"
	"crowdaid-backend/internal/logger"
	"crowdaid-backend/internal/notify"
	"crowdaid-backend/internal/repository"

	"github.com/google/uuid"
)

const (
	emergencyAlertTitle   = "New Emergency Request"
	emergencyAlertMessage = "A new emergency request has been made nearby."

	volunteerResponseTitle   = "Volunteer Response"
	volunteerResponseMessage = "A volunteer has responded to your emergency request."

	defaultNotificationPageSize = 50
)

// NotificationService fans domain events out to per-recipient notifications
// and serves each user's notification inbox
type NotificationService struct {
	repo       repository.NotificationRepositoryInterface
	users      repository.UserRepositoryInterface
	volunteers repository.VolunteerDirectory
	mailer     notify.Mailer
	pageSize   int
}

// NewNotificationService creates a new notification service
func NewNotificationService(
	repo repository.NotificationRepositoryInterface,
	users repository.UserRepositoryInterface,
	volunteers repository.VolunteerDirectory,
	mailer notify.Mailer,
	pageSize int,
) *NotificationService {
	if pageSize <= 0 {
		pageSize = defaultNotificationPageSize
	}
	return &NotificationService{
		repo:       repo,
		users:      users,
		volunteers: volunteers,
		mailer:     mailer,
		pageSize:   pageSize,
	}
}

// NotifyRequest describes a single-recipient notification
type NotifyRequest struct {
	UserID  uuid.UUID
	Type    models.NotificationType
	Title   string
	Message string
	Data    map[string]interface{}
}

// NotifyVolunteers creates one EMERGENCY_ALERT per verified volunteer and emails
// each of them. Email failures are logged and skipped; the returned count is the
// number of notifications stored.
func (s *NotificationService) NotifyVolunteers(ctx context.Context, emergency *models.Emergency) (int, error) {
	volunteers, err := s.volunteers.ListVerifiedVolunteers()
	if err != nil {
		return 0, apperrors.NewDependencyError("volunteer directory", err)
	}
	if len(volunteers) == 0 {
		logger.WithContext(ctx).WithField("emergency_id", emergency.ID).Info("No verified volunteers to notify")
		return 0, nil
	}

	data, err := json.Marshal(map[string]interface{}{
		"emergency_id": emergency.ID,
		"type":         emergency.Type,
		"priority":     emergency.Priority,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to encode notification data: %w", err)
	}

	notifications := make([]models.Notification, 0, len(volunteers))
	for _, v := range volunteers {
		notifications = append(notifications, models.Notification{
			UserID:  v.UserID,
			Type:    models.NotificationTypeEmergencyAlert,
			Title:   emergencyAlertTitle,
			Message: emergencyAlertMessage,
			Data:    data,
		})
	}
	if err := s.repo.CreateBatch(notifications); err != nil {
		return 0, apperrors.NewDependencyError("notification store", err)
	}

	failed := 0
	for _, v := range volunteers {
		if ctx.Err() != nil {
			logger.WithContext(ctx).WithField("emergency_id", emergency.ID).Warn("Stopped emailing volunteers: task deadline reached")
			break
		}
		if v.Email == "" {
			continue
		}
		if err := s.mailer.Send(v.Email, emergencyAlertTitle, notify.NotificationEmailBody(v.FirstName, emergencyAlertMessage)); err != nil {
			failed++
			logger.WithContext(ctx).WithFields(map[string]interface{}{
				"emergency_id": emergency.ID,
				"user_id":      v.UserID,
				"error":        err.Error(),
			}).Warn("Failed to email volunteer")
		}
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"emergency_id": emergency.ID,
		"notified":     len(notifications),
		"email_failed": failed,
	}).Info("Volunteers notified of emergency")

	return len(notifications), nil
}

// Notify creates a notification for one user and emails them when an address is known
func (s *NotificationService) Notify(ctx context.Context, req *NotifyRequest) (*models.Notification, error) {
	notification := &models.Notification{
		UserID:  req.UserID,
		Type:    req.Type,
		Title:   req.Title,
		Message: req.Message,
	}
	if req.Data != nil {
		data, err := json.Marshal(req.Data)
		if err != nil {
			return nil, fmt.Errorf("failed to encode notification data: %w", err)
		}
		notification.Data = data
	}

	if err := s.repo.Create(notification); err != nil {
		return nil, apperrors.NewDependencyError("notification store", err)
	}

	if ctx.Err() != nil {
		return notification, nil
	}

	user, err := s.users.GetByID(req.UserID)
	if err != nil {
		logger.WithContext(ctx).WithFields(map[string]interface{}{
			"user_id": req.UserID,
			"error":   err.Error(),
		}).Warn("Skipping notification email: recipient lookup failed")
		return notification, nil
	}
	if user.Email == "" {
		return notification, nil
	}

	if err := s.mailer.Send(user.Email, req.Title, notify.NotificationEmailBody(user.FullName(), req.Message)); err != nil {
		logger.WithContext(ctx).WithFields(map[string]interface{}{
			"user_id":         req.UserID,
			"notification_id": notification.ID,
			"error":           err.Error(),
		}).Warn("Failed to email notification")
	}

	return notification, nil
}

// ListForUser returns the newest notifications of a user, capped at the page size
func (s *NotificationService) ListForUser(userID uuid.UUID, unreadOnly bool) ([]models.Notification, error) {
	notifications, err := s.repo.ListForUser(userID, unreadOnly, s.pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	return notifications, nil
}

// MarkRead marks a notification read. Unknown or foreign ids are silently ignored.
func (s *NotificationService) MarkRead(id, userID uuid.UUID) error {
	affected, err := s.repo.MarkRead(id, userID)
	if err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	if affected == 0 {
		logger.New().WithFields(map[string]interface{}{
			"notification_id": id,
			"user_id":         userID,
		}).Debug("Mark read matched no notification")
	}
	return nil
}

// MarkAllRead marks every unread notification of a user read and returns how many changed
func (s *NotificationService) MarkAllRead(userID uuid.UUID) (int64, error) {
	affected, err := s.repo.MarkAllRead(userID)
	if err != nil {
		return 0, fmt.Errorf("failed to mark notifications read: %w", err)
	}
	return affected, nil
}

// UnreadCount returns the number of unread notifications of a user
func (s *NotificationService) UnreadCount(userID uuid.UUID) (int64, error) {
	count, err := s.repo.CountUnread(userID)
	if err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}
	return count, nil
}
