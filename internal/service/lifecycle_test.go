//go:build integration
// +build integration

package service_test

import (
	"encoding/json"
	"testing"

	"crowdaid-backend/internal/auth"
	"crowdaid-backend/internal/database/models"
	apperrors "crowdaid-backend/internal/errors"
	"crowdaid-backend/internal/notify"
	"crowdaid-backend/internal/repository"
	"crowdaid-backend/internal/service"
	"crowdaid-backend/internal/testutils"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/suite"
)

// EmergencyLifecycleTestSuite runs the emergency lifecycle against a real database
type EmergencyLifecycleTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	factories     *testutils.FactorySet

	users         *repository.UserRepository
	volunteers    *repository.VolunteerRepository
	notifications *service.NotificationService
	emergencies   *service.EmergencyService
}

// SetupSuite runs before all tests in the suite
func (suite *EmergencyLifecycleTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.factories = testutils.NewFactorySet()

	db := suite.baseTestSuite.DB
	suite.users = repository.NewUserRepository(db)
	suite.volunteers = repository.NewVolunteerRepository(db)
	suite.notifications = service.NewNotificationService(
		repository.NewNotificationRepository(db),
		suite.users,
		suite.volunteers,
		notify.NewLogMailer(),
		suite.baseTestSuite.Config.NotificationPageSize,
	)
	suite.emergencies = service.NewEmergencyService(
		repository.NewEmergencyRepository(db),
		suite.users,
		suite.volunteers,
		suite.notifications,
		notify.NewInlineDispatcher(),
		validator.New(),
	)
}

// TearDownSuite runs after all tests in the suite
func (suite *EmergencyLifecycleTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
	testutils.CleanupSharedContainer()
}

// SetupTest runs before each test
func (suite *EmergencyLifecycleTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

func (suite *EmergencyLifecycleTestSuite) principal(role models.UserRole, verified bool) *auth.Principal {
	user := suite.factories.User.WithRole(role)
	suite.Require().NoError(suite.users.Create(user))
	if role == models.UserRoleVolunteer {
		profile := suite.factories.VolunteerProfile.Create(user.ID)
		profile.IsVerified = verified
		suite.Require().NoError(suite.volunteers.CreateProfile(profile))
	}
	return &auth.Principal{UserID: user.ID, Email: user.Email, Role: user.Role}
}

func (suite *EmergencyLifecycleTestSuite) notificationsOf(p *auth.Principal, kind models.NotificationType) []models.Notification {
	all, err := suite.notifications.ListForUser(p.UserID, false)
	suite.Require().NoError(err)
	var matching []models.Notification
	for _, n := range all {
		if n.Type == kind {
			matching = append(matching, n)
		}
	}
	return matching
}

// TestLifecycle walks an emergency from report to resolution
func (suite *EmergencyLifecycleTestSuite) TestLifecycle() {
	reporter := suite.principal(models.UserRoleUser, false)
	first := suite.principal(models.UserRoleVolunteer, true)
	second := suite.principal(models.UserRoleVolunteer, true)
	unverified := suite.principal(models.UserRoleVolunteer, false)

	emergency, err := suite.emergencies.CreateEmergency(reporter, &service.CreateEmergencyRequest{
		Type:        models.EmergencyTypeMedical,
		Title:       "Collapsed at the bus stop",
		Description: "Elderly man not responding",
		Location:    json.RawMessage(`{"lat":12.97,"lng":77.59,"address":"MG Road"}`),
		Priority:    models.EmergencyPriorityCritical,
	})
	suite.Require().NoError(err)
	suite.Equal(models.EmergencyStatusPending, emergency.Status)

	// verified volunteers are alerted, unverified ones are not
	suite.Len(suite.notificationsOf(first, models.NotificationTypeEmergencyAlert), 1)
	suite.Len(suite.notificationsOf(second, models.NotificationTypeEmergencyAlert), 1)
	suite.Empty(suite.notificationsOf(unverified, models.NotificationTypeEmergencyAlert))

	_, err = suite.emergencies.RespondToEmergency(first, emergency.ID, &service.RespondRequest{Message: "Two minutes away"})
	suite.Require().NoError(err)

	current, err := suite.emergencies.GetEmergency(reporter, emergency.ID)
	suite.Require().NoError(err)
	suite.Equal(models.EmergencyStatusAssigned, current.Status)
	suite.Require().NotNil(current.AssignedTo)
	suite.Equal(first.UserID, *current.AssignedTo)

	_, err = suite.emergencies.RespondToEmergency(second, emergency.ID, &service.RespondRequest{Message: "Also nearby"})
	suite.Require().NoError(err)

	current, err = suite.emergencies.GetEmergency(second, emergency.ID)
	suite.Require().NoError(err)
	suite.Equal(first.UserID, *current.AssignedTo)
	suite.Len(current.Responses, 2)
	suite.Equal(first.UserID, current.Responses[0].VolunteerID)

	suite.Len(suite.notificationsOf(reporter, models.NotificationTypeVolunteerAssigned), 2)

	_, err = suite.emergencies.ResolveEmergency(second, emergency.ID)
	suite.ErrorIs(err, apperrors.ErrNotAuthorizedToResolve)

	resolved, err := suite.emergencies.ResolveEmergency(first, emergency.ID)
	suite.Require().NoError(err)
	suite.Equal(models.EmergencyStatusResolved, resolved.Status)
	suite.NotNil(resolved.ResolvedAt)

	_, err = suite.emergencies.RespondToEmergency(second, emergency.ID, &service.RespondRequest{})
	suite.ErrorIs(err, apperrors.ErrEmergencyClosed)

	_, err = suite.emergencies.ResolveEmergency(reporter, emergency.ID)
	suite.ErrorIs(err, apperrors.ErrEmergencyClosed)

	unread, err := suite.notifications.UnreadCount(reporter.UserID)
	suite.Require().NoError(err)
	suite.Equal(int64(2), unread)

	changed, err := suite.notifications.MarkAllRead(reporter.UserID)
	suite.Require().NoError(err)
	suite.Equal(int64(2), changed)
	changed, err = suite.notifications.MarkAllRead(reporter.UserID)
	suite.Require().NoError(err)
	suite.Zero(changed)
}

// TestScopes tests the mine and all listing scopes
func (suite *EmergencyLifecycleTestSuite) TestScopes() {
	reporter := suite.principal(models.UserRoleUser, false)
	other := suite.principal(models.UserRoleUser, false)
	admin := suite.principal(models.UserRoleAdmin, false)

	for _, p := range []*auth.Principal{reporter, other} {
		_, err := suite.emergencies.CreateEmergency(p, &service.CreateEmergencyRequest{
			Type:        models.EmergencyTypeFire,
			Title:       "Kitchen fire",
			Description: "Smoke from the second floor",
			Location:    json.RawMessage(`{"lat":1,"lng":2}`),
		})
		suite.Require().NoError(err)
	}

	mine, err := suite.emergencies.ListEmergencies(reporter, &service.ListEmergenciesRequest{})
	suite.Require().NoError(err)
	suite.Len(mine, 1)

	_, err = suite.emergencies.ListEmergencies(reporter, &service.ListEmergenciesRequest{Scope: service.ScopeAll})
	suite.ErrorIs(err, apperrors.ErrAdminRequired)

	all, err := suite.emergencies.ListEmergencies(admin, &service.ListEmergenciesRequest{Scope: service.ScopeAll})
	suite.Require().NoError(err)
	suite.Len(all, 2)
}

// TestEmergencyLifecycleTestSuite runs the test suite
func TestEmergencyLifecycleTestSuite(t *testing.T) {
	suite.Run(t, new(EmergencyLifecycleTestSuite))
}
