package testutils

import (
	"encoding/json"
	"fmt"

	"crowdaid-backend/internal/database/models"

	"github.com/google/uuid"
)

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values and a unique email
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	return &models.User{
		BaseModel: models.BaseModel{ID: id},
		Email:     fmt.Sprintf("user-%s@test.crowdaid.in", id.String()[:8]),
		FirstName: "Asha",
		LastName:  "Rao",
		Phone:     "+91-98765-43210",
		Role:      models.UserRoleUser,
		IsActive:  true,
	}
}

// WithRole creates a test User holding the given role
func (f *UserFactory) WithRole(role models.UserRole) *models.User {
	user := f.Create()
	user.Role = role
	return user
}

// Anonymous creates a reporter without an account
func (f *UserFactory) Anonymous() *models.User {
	user := f.Create()
	user.Email = ""
	user.FirstName = "Anonymous"
	user.LastName = ""
	user.IsAnonymous = true
	return user
}

// VolunteerProfileFactory provides methods to create test VolunteerProfile data
type VolunteerProfileFactory struct{}

// NewVolunteerProfileFactory creates a new VolunteerProfileFactory
func NewVolunteerProfileFactory() *VolunteerProfileFactory {
	return &VolunteerProfileFactory{}
}

// Create creates a verified volunteer profile for userID
func (f *VolunteerProfileFactory) Create(userID uuid.UUID) *models.VolunteerProfile {
	return &models.VolunteerProfile{
		BaseModel:  models.BaseModel{ID: uuid.New()},
		UserID:     userID,
		IsVerified: true,
		Skills:     json.RawMessage(`["First Aid","CPR"]`),
		Bio:        "Test volunteer",
	}
}

// Unverified creates a profile still awaiting verification
func (f *VolunteerProfileFactory) Unverified(userID uuid.UUID) *models.VolunteerProfile {
	profile := f.Create(userID)
	profile.IsVerified = false
	return profile
}

// EmergencyFactory provides methods to create test Emergency data
type EmergencyFactory struct{}

// NewEmergencyFactory creates a new EmergencyFactory
func NewEmergencyFactory() *EmergencyFactory {
	return &EmergencyFactory{}
}

// Create creates a pending medical emergency owned by ownerID
func (f *EmergencyFactory) Create(ownerID uuid.UUID) *models.Emergency {
	return &models.Emergency{
		BaseModel:   models.BaseModel{ID: uuid.New()},
		UserID:      ownerID,
		Type:        models.EmergencyTypeMedical,
		Title:       "Person collapsed",
		Description: "Elderly man collapsed near the bus stop",
		Location:    json.RawMessage(`{"lat":12.9716,"lng":77.5946,"address":"MG Road, Bengaluru"}`),
		Priority:    models.EmergencyPriorityMedium,
		Status:      models.EmergencyStatusPending,
	}
}

// WithStatus creates an emergency in the given status
func (f *EmergencyFactory) WithStatus(ownerID uuid.UUID, status models.EmergencyStatus) *models.Emergency {
	emergency := f.Create(ownerID)
	emergency.Status = status
	return emergency
}

// WithType creates an emergency of the given type
func (f *EmergencyFactory) WithType(ownerID uuid.UUID, emergencyType models.EmergencyType) *models.Emergency {
	emergency := f.Create(ownerID)
	emergency.Type = emergencyType
	return emergency
}

// NotificationFactory provides methods to create test Notification data
type NotificationFactory struct{}

// NewNotificationFactory creates a new NotificationFactory
func NewNotificationFactory() *NotificationFactory {
	return &NotificationFactory{}
}

// Create creates an unread emergency alert for userID
func (f *NotificationFactory) Create(userID uuid.UUID) *models.Notification {
	return &models.Notification{
		BaseModel: models.BaseModel{ID: uuid.New()},
		UserID:    userID,
		Type:      models.NotificationTypeEmergencyAlert,
		Title:     "New Emergency Request",
		Message:   "A new emergency request has been made nearby.",
		Data:      json.RawMessage(fmt.Sprintf(`{"emergency_id":%q}`, uuid.New())),
	}
}

// FactorySet provides all factories in one place
type FactorySet struct {
	User             *UserFactory
	VolunteerProfile *VolunteerProfileFactory
	Emergency        *EmergencyFactory
	Notification     *NotificationFactory
}

// NewFactorySet creates a new set of all factories
func NewFactorySet() *FactorySet {
	return &FactorySet{
		User:             NewUserFactory(),
		VolunteerProfile: NewVolunteerProfileFactory(),
		Emergency:        NewEmergencyFactory(),
		Notification:     NewNotificationFactory(),
	}
}
