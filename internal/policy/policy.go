// Package policy holds the authorization rules for emergency records.
// The predicates are pure and take no dependencies beyond the models.
package policy

import (
	"crowdaid-backend/internal/auth"
	"crowdaid-backend/internal/database/models"
)

// CanView reports whether principal may read emergency. A nil principal is
// treated as an unauthenticated internal caller and is allowed; the HTTP
// boundary never reaches this path without a token.
func CanView(principal *auth.Principal, emergency *models.Emergency) bool {
	if principal == nil {
		return true
	}
	if emergency.IsOwnedBy(principal.UserID) {
		return true
	}
	return principal.Role == models.UserRoleAdmin || principal.Role == models.UserRoleVolunteer
}

// CanEdit reports whether principal may change the free-form fields of emergency.
// Only the original reporter may edit.
func CanEdit(principal *auth.Principal, emergency *models.Emergency) bool {
	return principal != nil && emergency.IsOwnedBy(principal.UserID)
}

// CanResolve reports whether principal may resolve emergency: its owner or its assigned volunteer.
func CanResolve(principal *auth.Principal, emergency *models.Emergency) bool {
	if principal == nil {
		return false
	}
	return emergency.IsOwnedBy(principal.UserID) || emergency.IsAssignedTo(principal.UserID)
}

// CanListAll reports whether principal may list emergencies across every owner.
func CanListAll(principal *auth.Principal) bool {
	return principal.IsAdmin()
}

// CanViewStats reports whether principal may read platform statistics.
func CanViewStats(principal *auth.Principal) bool {
	return principal.IsAdmin()
}
