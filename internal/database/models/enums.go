package models

// UserRole is the platform-wide role carried by the identity context
type UserRole string

const (
	UserRoleUser      UserRole = "USER"
	UserRoleVolunteer UserRole = "VOLUNTEER"
	UserRoleAdmin     UserRole = "ADMIN"
)

// EmergencyStatus represents the lifecycle state of an emergency
type EmergencyStatus string

const (
	EmergencyStatusPending    EmergencyStatus = "PENDING"
	EmergencyStatusAssigned   EmergencyStatus = "ASSIGNED"
	EmergencyStatusInProgress EmergencyStatus = "IN_PROGRESS"
	EmergencyStatusResolved   EmergencyStatus = "RESOLVED"
	EmergencyStatusCancelled  EmergencyStatus = "CANCELLED"
)

// EmergencyPriority represents how urgent an emergency is
type EmergencyPriority string

const (
	EmergencyPriorityLow      EmergencyPriority = "LOW"
	EmergencyPriorityMedium   EmergencyPriority = "MEDIUM"
	EmergencyPriorityHigh     EmergencyPriority = "HIGH"
	EmergencyPriorityCritical EmergencyPriority = "CRITICAL"
)

// EmergencyType is an open category; the constants below are the ones the clients know about
type EmergencyType string

const (
	EmergencyTypeMedical  EmergencyType = "medical"
	EmergencyTypeFire     EmergencyType = "fire"
	EmergencyTypeVehicle  EmergencyType = "vehicle"
	EmergencyTypeSafety   EmergencyType = "safety"
	EmergencyTypeDisaster EmergencyType = "disaster"
	EmergencyTypeOther    EmergencyType = "other"
)

// ResponseStatus is the status of a volunteer's offer to help.
// Only PENDING exists; responses are never accepted or rejected.
type ResponseStatus string

const (
	ResponseStatusPending ResponseStatus = "PENDING"
)

// NotificationType defines the kinds of notifications delivered to users
type NotificationType string

const (
	NotificationTypeEmergencyAlert    NotificationType = "EMERGENCY_ALERT"
	NotificationTypeVolunteerAssigned NotificationType = "VOLUNTEER_ASSIGNED"
)

// IsValid checks if the UserRole is valid
func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleUser, UserRoleVolunteer, UserRoleAdmin:
		return true
	}
	return false
}

// IsValid checks if the EmergencyStatus is valid
func (s EmergencyStatus) IsValid() bool {
	switch s {
	case EmergencyStatusPending, EmergencyStatusAssigned, EmergencyStatusInProgress,
		EmergencyStatusResolved, EmergencyStatusCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether no further transitions are possible
func (s EmergencyStatus) IsTerminal() bool {
	return s == EmergencyStatusResolved || s == EmergencyStatusCancelled
}

var emergencyTransitions = map[EmergencyStatus][]EmergencyStatus{
	EmergencyStatusPending:    {EmergencyStatusAssigned, EmergencyStatusResolved, EmergencyStatusCancelled},
	EmergencyStatusAssigned:   {EmergencyStatusInProgress, EmergencyStatusResolved, EmergencyStatusCancelled},
	EmergencyStatusInProgress: {EmergencyStatusResolved},
}

// CanTransitionTo reports whether the state machine allows moving from s to next
func (s EmergencyStatus) CanTransitionTo(next EmergencyStatus) bool {
	for _, allowed := range emergencyTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// ActiveEmergencyStatuses lists the non-terminal statuses
func ActiveEmergencyStatuses() []EmergencyStatus {
	return []EmergencyStatus{EmergencyStatusPending, EmergencyStatusAssigned, EmergencyStatusInProgress}
}

// IsValid checks if the EmergencyPriority is valid
func (p EmergencyPriority) IsValid() bool {
	switch p {
	case EmergencyPriorityLow, EmergencyPriorityMedium, EmergencyPriorityHigh, EmergencyPriorityCritical:
		return true
	}
	return false
}
