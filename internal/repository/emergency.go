package repository

import (
	"time"

	"crowdaid-backend/internal/database/models"
	apperrors "crowdaid-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// EmergencyFilter narrows List; zero values are ignored
type EmergencyFilter struct {
	OwnerID *uuid.UUID
	Status  models.EmergencyStatus
	Type    models.EmergencyType
}

// EmergencyRepository handles database operations for emergencies and their responses
type EmergencyRepository struct {
	db *gorm.DB
}

// NewEmergencyRepository creates a new emergency repository
func NewEmergencyRepository(db *gorm.DB) *EmergencyRepository {
	return &EmergencyRepository{db: db}
}

// Create creates a new emergency
func (r *EmergencyRepository) Create(emergency *models.Emergency) error {
	return r.db.Omit(clause.Associations).Create(emergency).Error
}

// GetByID retrieves an emergency with its reporter and responses
func (r *EmergencyRepository) GetByID(id uuid.UUID) (*models.Emergency, error) {
	var emergency models.Emergency
	err := r.withRelations(r.db).First(&emergency, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &emergency, nil
}

// List retrieves emergencies matching filter, newest first. There is no pagination.
func (r *EmergencyRepository) List(filter EmergencyFilter) ([]models.Emergency, error) {
	query := r.withRelations(r.db.Model(&models.Emergency{}))
	if filter.OwnerID != nil {
		query = query.Where("user_id = ?", *filter.OwnerID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}

	emergencies := []models.Emergency{}
	if err := query.Order("created_at DESC").Find(&emergencies).Error; err != nil {
		return nil, err
	}
	return emergencies, nil
}

// Update merges updates into the emergency. No authorization happens here.
func (r *EmergencyRepository) Update(id uuid.UUID, updates map[string]interface{}) error {
	result := r.db.Model(&models.Emergency{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// TransitionStatus applies updates only while the emergency is in one of the from statuses.
// It reports whether the row was changed.
func (r *EmergencyRepository) TransitionStatus(id uuid.UUID, from []models.EmergencyStatus, updates map[string]interface{}) (bool, error) {
	if len(from) == 0 {
		return false, nil
	}
	result := r.db.Model(&models.Emergency{}).
		Where("id = ? AND status IN ?", id, from).
		Updates(updates)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

// AddResponse records a volunteer response and assigns the emergency to the
// volunteer when nobody holds it yet. The emergency row is locked for the
// duration so concurrent responders serialize; the boolean reports whether
// this response won the assignment.
func (r *EmergencyRepository) AddResponse(response *models.EmergencyResponse) (bool, error) {
	assigned := false
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var current models.Emergency
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Select("id", "status", "assigned_to").
			First(&current, "id = ?", response.EmergencyID).Error
		if err != nil {
			return err
		}
		if current.Status.IsTerminal() {
			return apperrors.ErrEmergencyClosed
		}

		if err := tx.Create(response).Error; err != nil {
			return err
		}

		result := tx.Model(&models.Emergency{}).
			Where("id = ? AND assigned_to IS NULL AND status = ?", response.EmergencyID, models.EmergencyStatusPending).
			Updates(map[string]interface{}{
				"assigned_to": response.VolunteerID,
				"status":      models.EmergencyStatusAssigned,
			})
		if result.Error != nil {
			return result.Error
		}
		assigned = result.RowsAffected == 1
		return nil
	})
	if err != nil {
		return false, err
	}
	return assigned, nil
}

// Resolve marks a non-terminal emergency RESOLVED. It reports false when the
// emergency was already resolved or cancelled.
func (r *EmergencyRepository) Resolve(id uuid.UUID, resolvedAt time.Time) (bool, error) {
	result := r.db.Model(&models.Emergency{}).
		Where("id = ? AND status NOT IN ?", id, []models.EmergencyStatus{
			models.EmergencyStatusResolved,
			models.EmergencyStatusCancelled,
		}).
		Updates(map[string]interface{}{
			"status":      models.EmergencyStatusResolved,
			"resolved_at": resolvedAt,
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

// CountByStatus returns the number of emergencies per status
func (r *EmergencyRepository) CountByStatus() (map[models.EmergencyStatus]int64, error) {
	var rows []struct {
		Status models.EmergencyStatus
		Count  int64
	}
	err := r.db.Model(&models.Emergency{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[models.EmergencyStatus]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

func (r *EmergencyRepository) withRelations(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Reporter").
		Preload("Responses", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		})
}
