package repository

import (
	"testing"

	"github.com/Niraj123466/saas-notes-backend/internal/database/models"
	"github.com/Niraj123466/saas-notes-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// UserRepositoryTestSuite tests the UserRepository
type UserRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *UserRepository
	noteRepo      *NoteRepository
	tenantRepo    *TenantRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *UserRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewUserRepository(suite.baseTestSuite.DB)
	suite.noteRepo = NewNoteRepository(suite.baseTestSuite.DB)
	suite.tenantRepo = NewTenantRepository(suite.baseTestSuite.DB)
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

// createTenant persists a fresh tenant for foreign keys
func (suite *UserRepositoryTestSuite) createTenant() *models.Tenant {
	tenant := suite.factories.Tenant.Create()
	suite.NoError(suite.tenantRepo.Create(tenant))
	return tenant
}

// TestCreate tests creating a new user
func (suite *UserRepositoryTestSuite) TestCreate() {
	tenant := suite.createTenant()
	user := suite.factories.User.ForTenant(tenant.ID)

	err := suite.repo.Create(user)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, user.ID)
	suite.Equal(tenant.ID, user.TenantID)
}

// TestCreateDuplicateEmail tests that the email is unique at the database level
func (suite *UserRepositoryTestSuite) TestCreateDuplicateEmail() {
	tenant := suite.createTenant()

	user1 := suite.factories.User.ForTenant(tenant.ID)
	user1.Email = "admin@acme.test"
	suite.NoError(suite.repo.Create(user1))

	user2 := suite.factories.User.ForTenant(tenant.ID)
	user2.Email = "admin@acme.test"
	err := suite.repo.Create(user2)

	suite.Error(err)
	suite.Contains(err.Error(), "duplicate key value")
}

// TestGetByEmail tests retrieving a user by exact email
func (suite *UserRepositoryTestSuite) TestGetByEmail() {
	tenant := suite.createTenant()
	user := suite.factories.User.ForTenant(tenant.ID)
	suite.NoError(suite.repo.Create(user))

	retrieved, err := suite.repo.GetByEmail(user.Email)

	suite.NoError(err)
	suite.Equal(user.ID, retrieved.ID)
	suite.Equal(user.Password, retrieved.Password)
}

// TestGetByEmailNotFound tests retrieving an unknown email
func (suite *UserRepositoryTestSuite) TestGetByEmailNotFound() {
	retrieved, err := suite.repo.GetByEmail("nobody@acme.test")

	suite.ErrorIs(err, gorm.ErrRecordNotFound)
	suite.Nil(retrieved)
}

// TestGetByID tests retrieving a user by ID
func (suite *UserRepositoryTestSuite) TestGetByID() {
	tenant := suite.createTenant()
	user := suite.factories.User.ForTenant(tenant.ID)
	suite.NoError(suite.repo.Create(user))

	retrieved, err := suite.repo.GetByID(user.ID)

	suite.NoError(err)
	suite.Equal(user.Email, retrieved.Email)
}

// TestDeleteKeepsNotesWithNullOwner tests that deleting a user nulls the
// owner on their notes instead of removing them
func (suite *UserRepositoryTestSuite) TestDeleteKeepsNotesWithNullOwner() {
	tenant := suite.createTenant()
	user := suite.factories.User.ForTenant(tenant.ID)
	suite.NoError(suite.repo.Create(user))

	note := suite.factories.Note.ForTenantAndOwner(tenant.ID, user.ID)
	suite.NoError(suite.noteRepo.Create(note))

	err := suite.repo.Delete(user.ID)
	suite.NoError(err)

	_, err = suite.repo.GetByID(user.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)

	retrieved, err := suite.noteRepo.GetByIDAndTenant(note.ID, tenant.ID)
	suite.NoError(err)
	suite.Nil(retrieved.OwnerID)
	suite.Equal(note.Title, retrieved.Title)
}

// TestUserRepositoryTestSuite runs the test suite
func TestUserRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(UserRepositoryTestSuite))
}
