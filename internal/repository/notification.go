package repository

import (
	"crowdaid-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const notificationBatchSize = 500

// NotificationRepository handles database operations for notifications
type NotificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository creates a new notification repository
func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

// Create creates a single notification
func (r *NotificationRepository) Create(notification *models.Notification) error {
	return r.db.Create(notification).Error
}

// CreateBatch inserts notifications in batches
func (r *NotificationRepository) CreateBatch(notifications []models.Notification) error {
	if len(notifications) == 0 {
		return nil
	}
	return r.db.CreateInBatches(notifications, notificationBatchSize).Error
}

// ListForUser retrieves the newest notifications of a user, at most limit
func (r *NotificationRepository) ListForUser(userID uuid.UUID, unreadOnly bool, limit int) ([]models.Notification, error) {
	query := r.db.Where("user_id = ?", userID)
	if unreadOnly {
		query = query.Where("read = ?", false)
	}

	notifications := []models.Notification{}
	err := query.Order("created_at DESC").Limit(limit).Find(&notifications).Error
	if err != nil {
		return nil, err
	}
	return notifications, nil
}

// MarkRead marks one notification as read. A notification owned by someone
// else matches zero rows and is not an error.
func (r *NotificationRepository) MarkRead(id, userID uuid.UUID) (int64, error) {
	result := r.db.Model(&models.Notification{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("read", true)
	return result.RowsAffected, result.Error
}

// MarkAllRead marks every unread notification of a user as read
func (r *NotificationRepository) MarkAllRead(userID uuid.UUID) (int64, error) {
	result := r.db.Model(&models.Notification{}).
		Where("user_id = ? AND read = ?", userID, false).
		Update("read", true)
	return result.RowsAffected, result.Error
}

// CountUnread returns the number of unread notifications of a user
func (r *NotificationRepository) CountUnread(userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.Notification{}).
		Where("user_id = ? AND read = ?", userID, false).
		Count(&count).Error
	return count, err
}
