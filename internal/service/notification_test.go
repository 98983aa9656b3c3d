package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"crowdaid-backend/internal/database/models"
	apperrors "crowdaid-backend/internal/errors"
	"crowdaid-backend/internal/mocks"
	"crowdaid-backend/internal/repository"
	"crowdaid-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// fakeMailer records sent messages and fails for the configured recipients
type fakeMailer struct {
	mu      sync.Mutex
	sent    []string
	bodies  map[string]string
	failFor map[string]bool
}

func (m *fakeMailer) Send(to, subject, htmlBody string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failFor[to] {
		return apperrors.NewDependencyError("smtp", errors.New("mailbox unavailable"))
	}
	m.sent = append(m.sent, to)
	m.bodies[to] = htmlBody
	return nil
}

// NotificationServiceTestSuite defines the test suite for NotificationService
type NotificationServiceTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockRepo       *mocks.MockNotificationRepositoryInterface
	mockUsers      *mocks.MockUserRepositoryInterface
	mockVolunteers *mocks.MockVolunteerDirectory
	mailer         *fakeMailer
	service        *service.NotificationService
	emergency      *models.Emergency
}

// SetupTest sets up the test suite
func (suite *NotificationServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockNotificationRepositoryInterface(suite.ctrl)
	suite.mockUsers = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.mockVolunteers = mocks.NewMockVolunteerDirectory(suite.ctrl)
	suite.mailer = &fakeMailer{bodies: map[string]string{}, failFor: map[string]bool{}}
	suite.service = service.NewNotificationService(suite.mockRepo, suite.mockUsers, suite.mockVolunteers, suite.mailer, 20)
	suite.emergency = &models.Emergency{
		BaseModel: models.BaseModel{ID: uuid.New()},
		UserID:    uuid.New(),
		Type:      models.EmergencyTypeFire,
		Priority:  models.EmergencyPriorityCritical,
		Status:    models.EmergencyStatusPending,
	}
}

// TearDownTest cleans up after each test
func (suite *NotificationServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestNotifyVolunteers tests that every verified volunteer gets one alert
func (suite *NotificationServiceTestSuite) TestNotifyVolunteers() {
	volunteers := []repository.VolunteerContact{
		{UserID: uuid.New(), Email: "a@example.com", FirstName: "A"},
		{UserID: uuid.New(), Email: "b@example.com", FirstName: "B"},
		{UserID: uuid.New(), FirstName: "C"},
	}
	suite.mockVolunteers.EXPECT().ListVerifiedVolunteers().Return(volunteers, nil)
	suite.mockRepo.EXPECT().
		CreateBatch(gomock.Any()).
		DoAndReturn(func(notifications []models.Notification) error {
			suite.Require().Len(notifications, 3)
			for i, n := range notifications {
				suite.Equal(volunteers[i].UserID, n.UserID)
				suite.Equal(models.NotificationTypeEmergencyAlert, n.Type)
				suite.Equal("New Emergency Request", n.Title)
				suite.False(n.Read)

				var data map[string]string
				suite.Require().NoError(json.Unmarshal(n.Data, &data))
				suite.Equal(suite.emergency.ID.String(), data["emergency_id"])
				suite.Equal("fire", data["type"])
				suite.Equal("CRITICAL", data["priority"])
			}
			return nil
		})

	count, err := suite.service.NotifyVolunteers(context.Background(), suite.emergency)

	suite.Require().NoError(err)
	suite.Equal(3, count)
	suite.ElementsMatch([]string{"a@example.com", "b@example.com"}, suite.mailer.sent)
	suite.Contains(suite.mailer.bodies["a@example.com"], "<p>Hello A,</p>")
}

// TestNotifyVolunteersNoneVerified tests the empty directory case
func (suite *NotificationServiceTestSuite) TestNotifyVolunteersNoneVerified() {
	suite.mockVolunteers.EXPECT().ListVerifiedVolunteers().Return([]repository.VolunteerContact{}, nil)

	count, err := suite.service.NotifyVolunteers(context.Background(), suite.emergency)

	suite.NoError(err)
	suite.Zero(count)
	suite.Empty(suite.mailer.sent)
}

// TestNotifyVolunteersEmailFailure tests that a failed email does not drop the alerts
func (suite *NotificationServiceTestSuite) TestNotifyVolunteersEmailFailure() {
	volunteers := []repository.VolunteerContact{
		{UserID: uuid.New(), Email: "broken@example.com"},
		{UserID: uuid.New(), Email: "ok@example.com"},
	}
	suite.mailer.failFor["broken@example.com"] = true
	suite.mockVolunteers.EXPECT().ListVerifiedVolunteers().Return(volunteers, nil)
	suite.mockRepo.EXPECT().CreateBatch(gomock.Len(2)).Return(nil)

	count, err := suite.service.NotifyVolunteers(context.Background(), suite.emergency)

	suite.Require().NoError(err)
	suite.Equal(2, count)
	suite.Equal([]string{"ok@example.com"}, suite.mailer.sent)
}

// TestNotifyVolunteersDependencyFailures tests directory and store failures
func (suite *NotificationServiceTestSuite) TestNotifyVolunteersDependencyFailures() {
	suite.mockVolunteers.EXPECT().ListVerifiedVolunteers().Return(nil, errors.New("connection reset"))

	_, err := suite.service.NotifyVolunteers(context.Background(), suite.emergency)
	suite.True(apperrors.IsDependency(err))

	suite.mockVolunteers.EXPECT().ListVerifiedVolunteers().Return([]repository.VolunteerContact{{UserID: uuid.New()}}, nil)
	suite.mockRepo.EXPECT().CreateBatch(gomock.Any()).Return(errors.New("disk full"))

	count, err := suite.service.NotifyVolunteers(context.Background(), suite.emergency)
	suite.True(apperrors.IsDependency(err))
	suite.Zero(count)
}

// TestNotifyVolunteersCancelledContext tests that emailing stops once the deadline passes
func (suite *NotificationServiceTestSuite) TestNotifyVolunteersCancelledContext() {
	suite.mockVolunteers.EXPECT().ListVerifiedVolunteers().Return([]repository.VolunteerContact{
		{UserID: uuid.New(), Email: "a@example.com"},
	}, nil)
	suite.mockRepo.EXPECT().CreateBatch(gomock.Any()).Return(nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	count, err := suite.service.NotifyVolunteers(ctx, suite.emergency)

	suite.NoError(err)
	suite.Equal(1, count)
	suite.Empty(suite.mailer.sent)
}

// TestNotify tests a single-recipient notification with email
func (suite *NotificationServiceTestSuite) TestNotify() {
	recipient := &models.User{
		BaseModel: models.BaseModel{ID: suite.emergency.UserID},
		Email:     "reporter@example.com",
		FirstName: "Priya",
		LastName:  "Shah",
	}
	suite.mockRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(n *models.Notification) error {
			n.ID = uuid.New()
			return nil
		})
	suite.mockUsers.EXPECT().GetByID(recipient.ID).Return(recipient, nil)

	notification, err := suite.service.Notify(context.Background(), &service.NotifyRequest{
		UserID:  recipient.ID,
		Type:    models.NotificationTypeVolunteerAssigned,
		Title:   "Volunteer Response",
		Message: "A volunteer has responded to your emergency request.",
		Data:    map[string]interface{}{"emergency_id": suite.emergency.ID},
	})

	suite.Require().NoError(err)
	suite.Equal(models.NotificationTypeVolunteerAssigned, notification.Type)
	suite.JSONEq(`{"emergency_id":"`+suite.emergency.ID.String()+`"}`, string(notification.Data))
	suite.Equal([]string{"reporter@example.com"}, suite.mailer.sent)
	suite.Equal("<p>Hello Priya Shah,</p><p>A volunteer has responded to your emergency request.</p>", suite.mailer.bodies["reporter@example.com"])
}

// TestNotifyAnonymousRecipient tests that recipients without email only get the in-app notification
func (suite *NotificationServiceTestSuite) TestNotifyAnonymousRecipient() {
	userID := uuid.New()
	suite.mockRepo.EXPECT().Create(gomock.Any()).Return(nil)
	suite.mockUsers.EXPECT().GetByID(userID).Return(&models.User{BaseModel: models.BaseModel{ID: userID}, IsAnonymous: true}, nil)

	_, err := suite.service.Notify(context.Background(), &service.NotifyRequest{UserID: userID, Type: models.NotificationTypeVolunteerAssigned})

	suite.NoError(err)
	suite.Empty(suite.mailer.sent)

	// recipient lookup failures are not fatal either
	suite.mockRepo.EXPECT().Create(gomock.Any()).Return(nil)
	suite.mockUsers.EXPECT().GetByID(userID).Return(nil, gorm.ErrRecordNotFound)

	_, err = suite.service.Notify(context.Background(), &service.NotifyRequest{UserID: userID, Type: models.NotificationTypeVolunteerAssigned})
	suite.NoError(err)
}

// TestNotifyStoreFailure tests that a failed insert is reported
func (suite *NotificationServiceTestSuite) TestNotifyStoreFailure() {
	suite.mockRepo.EXPECT().Create(gomock.Any()).Return(errors.New("connection refused"))

	notification, err := suite.service.Notify(context.Background(), &service.NotifyRequest{UserID: uuid.New()})

	suite.True(apperrors.IsDependency(err))
	suite.Nil(notification)
}

// TestListForUser tests the page size cap
func (suite *NotificationServiceTestSuite) TestListForUser() {
	userID := uuid.New()
	suite.mockRepo.EXPECT().ListForUser(userID, true, 20).Return([]models.Notification{{UserID: userID}}, nil)

	notifications, err := suite.service.ListForUser(userID, true)

	suite.Require().NoError(err)
	suite.Len(notifications, 1)
}

// TestMarkRead tests that unknown or foreign notifications are ignored
func (suite *NotificationServiceTestSuite) TestMarkRead() {
	userID := uuid.New()
	id := uuid.New()
	suite.mockRepo.EXPECT().MarkRead(id, userID).Return(int64(0), nil)

	suite.NoError(suite.service.MarkRead(id, userID))

	suite.mockRepo.EXPECT().MarkRead(id, userID).Return(int64(0), errors.New("timeout"))
	suite.Error(suite.service.MarkRead(id, userID))
}

// TestMarkAllReadIsIdempotent tests that a second call changes nothing
func (suite *NotificationServiceTestSuite) TestMarkAllReadIsIdempotent() {
	userID := uuid.New()
	gomock.InOrder(
		suite.mockRepo.EXPECT().MarkAllRead(userID).Return(int64(2), nil),
		suite.mockRepo.EXPECT().MarkAllRead(userID).Return(int64(0), nil),
	)

	first, err := suite.service.MarkAllRead(userID)
	suite.Require().NoError(err)
	suite.Equal(int64(2), first)

	second, err := suite.service.MarkAllRead(userID)
	suite.Require().NoError(err)
	suite.Zero(second)
}

// TestUnreadCount tests the unread counter
func (suite *NotificationServiceTestSuite) TestUnreadCount() {
	userID := uuid.New()
	suite.mockRepo.EXPECT().CountUnread(userID).Return(int64(4), nil)

	count, err := suite.service.UnreadCount(userID)

	suite.Require().NoError(err)
	suite.Equal(int64(4), count)
}

// TestNotificationServiceTestSuite runs the test suite
func TestNotificationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(NotificationServiceTestSuite))
}
