//go:build integration
// +build integration

package repository

import (
	"testing"

	"crowdaid-backend/internal/database/models"
	"crowdaid-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// UserRepositoryTestSuite tests the UserRepository
type UserRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *UserRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *UserRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewUserRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *UserRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *UserRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *UserRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreate tests creating a new user
func (suite *UserRepositoryTestSuite) TestCreate() {
	user := suite.factories.User.Create()

	err := suite.repo.Create(user)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, user.ID)
	suite.NotZero(user.CreatedAt)
	suite.Equal(models.UserRoleUser, user.Role)
}

// TestCreateWithVolunteerProfile tests that a nested profile is persisted
func (suite *UserRepositoryTestSuite) TestCreateWithVolunteerProfile() {
	user := suite.factories.User.WithRole(models.UserRoleVolunteer)
	user.VolunteerProfile = suite.factories.VolunteerProfile.Create(user.ID)

	suite.Require().NoError(suite.repo.Create(user))

	found, err := suite.repo.GetByID(user.ID)
	suite.NoError(err)
	suite.Require().NotNil(found.VolunteerProfile)
	suite.True(found.VolunteerProfile.IsVerified)
}

// TestCreateDuplicateEmail tests creating a user with duplicate email
func (suite *UserRepositoryTestSuite) TestCreateDuplicateEmail() {
	first := suite.factories.User.Create()
	suite.Require().NoError(suite.repo.Create(first))

	second := suite.factories.User.Create()
	second.Email = first.Email

	err := suite.repo.Create(second)
	suite.Error(err)
}

// TestAnonymousUsersShareEmptyEmail tests that many anonymous reporters can exist
func (suite *UserRepositoryTestSuite) TestAnonymousUsersShareEmptyEmail() {
	suite.NoError(suite.repo.Create(suite.factories.User.Anonymous()))
	suite.NoError(suite.repo.Create(suite.factories.User.Anonymous()))
}

// TestGetByEmail tests case-insensitive email lookup
func (suite *UserRepositoryTestSuite) TestGetByEmail() {
	user := suite.factories.User.Create()
	user.Email = "Volunteer@CrowdAid.in"
	suite.Require().NoError(suite.repo.Create(user))

	found, err := suite.repo.GetByEmail("volunteer@crowdaid.in")
	suite.NoError(err)
	suite.Equal(user.ID, found.ID)
}

// TestGetByIDNotFound tests retrieving a non-existent user
func (suite *UserRepositoryTestSuite) TestGetByIDNotFound() {
	found, err := suite.repo.GetByID(uuid.New())

	suite.ErrorIs(err, gorm.ErrRecordNotFound)
	suite.Nil(found)
}

// TestUserRepositoryTestSuite runs the test suite
func TestUserRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(UserRepositoryTestSuite))
}
