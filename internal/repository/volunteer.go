package repository

import (
	"crowdaid-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VolunteerContact is the part of a verified volunteer the fan-out needs
type VolunteerContact struct {
	UserID    uuid.UUID
	Email     string
	FirstName string
}

// VolunteerRepository reads volunteer profiles. It serves as the volunteer
// directory: eligibility is exactly is_verified = true.
type VolunteerRepository struct {
	db *gorm.DB
}

// NewVolunteerRepository creates a new volunteer repository
func NewVolunteerRepository(db *gorm.DB) *VolunteerRepository {
	return &VolunteerRepository{db: db}
}

// CreateProfile creates a volunteer profile for an existing user
func (r *VolunteerRepository) CreateProfile(profile *models.VolunteerProfile) error {
	return r.db.Create(profile).Error
}

// SetVerified flips the verification flag of a user's profile
func (r *VolunteerRepository) SetVerified(userID uuid.UUID, verified bool) error {
	result := r.db.Model(&models.VolunteerProfile{}).
		Where("user_id = ?", userID).
		Update("is_verified", verified)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ListVerifiedVolunteers returns every user whose volunteer profile is verified
func (r *VolunteerRepository) ListVerifiedVolunteers() ([]VolunteerContact, error) {
	contacts := []VolunteerContact{}
	err := r.db.Model(&models.VolunteerProfile{}).
		Select("volunteer_profiles.user_id AS user_id, users.email AS email, users.first_name AS first_name").
		Joins("JOIN users ON users.id = volunteer_profiles.user_id").
		Where("volunteer_profiles.is_verified = ?", true).
		Order("volunteer_profiles.created_at ASC").
		Scan(&contacts).Error
	if err != nil {
		return nil, err
	}
	return contacts, nil
}

// CountVerified returns the number of verified volunteers
func (r *VolunteerRepository) CountVerified() (int64, error) {
	var count int64
	err := r.db.Model(&models.VolunteerProfile{}).
		Where("is_verified = ?", true).
		Count(&count).Error
	return count, err
}
