package policy

import (
	"testing"

	"crowdaid-backend/internal/auth"
	"crowdaid-backend/internal/database/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestPolicy(t *testing.T) {
	owner := uuid.New()
	assignee := uuid.New()
	stranger := uuid.New()

	emergency := &models.Emergency{UserID: owner, AssignedTo: &assignee, Status: models.EmergencyStatusAssigned}
	unassigned := &models.Emergency{UserID: owner, Status: models.EmergencyStatusPending}

	principal := func(id uuid.UUID, role models.UserRole) *auth.Principal {
		return &auth.Principal{UserID: id, Role: role}
	}

	tests := []struct {
		name       string
		principal  *auth.Principal
		emergency  *models.Emergency
		canView    bool
		canEdit    bool
		canResolve bool
	}{
		{"owner", principal(owner, models.UserRoleUser), emergency, true, true, true},
		{"assigned volunteer", principal(assignee, models.UserRoleVolunteer), emergency, true, false, true},
		{"other volunteer", principal(stranger, models.UserRoleVolunteer), emergency, true, false, false},
		{"admin", principal(stranger, models.UserRoleAdmin), emergency, true, false, false},
		{"plain user", principal(stranger, models.UserRoleUser), emergency, false, false, false},
		{"assignee of nothing", principal(assignee, models.UserRoleVolunteer), unassigned, true, false, false},
		{"no principal", nil, emergency, true, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.canView, CanView(tt.principal, tt.emergency), "CanView")
			assert.Equal(t, tt.canEdit, CanEdit(tt.principal, tt.emergency), "CanEdit")
			assert.Equal(t, tt.canResolve, CanResolve(tt.principal, tt.emergency), "CanResolve")
		})
	}
}

func TestCanListAll(t *testing.T) {
	assert.True(t, CanListAll(&auth.Principal{UserID: uuid.New(), Role: models.UserRoleAdmin}))
	assert.False(t, CanListAll(&auth.Principal{UserID: uuid.New(), Role: models.UserRoleVolunteer}))
	assert.False(t, CanListAll(nil))
	assert.True(t, CanViewStats(&auth.Principal{Role: models.UserRoleAdmin}))
	assert.False(t, CanViewStats(&auth.Principal{Role: models.UserRoleUser}))
}
