package repository

import (
	"testing"

	"github.com/Niraj123466/saas-notes-backend/internal/database/models"
	"github.com/Niraj123466/saas-notes-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// TenantRepositoryTestSuite tests the TenantRepository
type TenantRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *TenantRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *TenantRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewTenantRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *TenantRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *TenantRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *TenantRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreate tests creating a new tenant
func (suite *TenantRepositoryTestSuite) TestCreate() {
	tenant := suite.factories.Tenant.Create()

	err := suite.repo.Create(tenant)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, tenant.ID)
	suite.Equal(models.TenantPlanFree, tenant.Plan)
	suite.NotZero(tenant.CreatedAt)
}

// TestCreateDuplicateSlug tests that the slug is unique at the database level
func (suite *TenantRepositoryTestSuite) TestCreateDuplicateSlug() {
	tenant1 := suite.factories.Tenant.WithSlug("acme")
	err := suite.repo.Create(tenant1)
	suite.NoError(err)

	tenant2 := suite.factories.Tenant.WithSlug("acme")
	err = suite.repo.Create(tenant2)

	suite.Error(err)
	suite.Contains(err.Error(), "duplicate key value")
}

// TestGetByID tests retrieving a tenant by ID
func (suite *TenantRepositoryTestSuite) TestGetByID() {
	tenant := suite.factories.Tenant.Create()
	err := suite.repo.Create(tenant)
	suite.NoError(err)

	retrieved, err := suite.repo.GetByID(tenant.ID)

	suite.NoError(err)
	suite.Equal(tenant.ID, retrieved.ID)
	suite.Equal(tenant.Slug, retrieved.Slug)
	suite.Equal(tenant.Plan, retrieved.Plan)
}

// TestGetByIDNotFound tests retrieving a non-existent tenant
func (suite *TenantRepositoryTestSuite) TestGetByIDNotFound() {
	retrieved, err := suite.repo.GetByID(uuid.New())

	suite.ErrorIs(err, gorm.ErrRecordNotFound)
	suite.Nil(retrieved)
}

// TestGetBySlug tests retrieving a tenant by its slug
func (suite *TenantRepositoryTestSuite) TestGetBySlug() {
	tenant := suite.factories.Tenant.WithSlug("globex")
	err := suite.repo.Create(tenant)
	suite.NoError(err)

	retrieved, err := suite.repo.GetBySlug("globex")

	suite.NoError(err)
	suite.Equal(tenant.ID, retrieved.ID)
}

// TestGetBySlugNotFound tests retrieving an unknown slug
func (suite *TenantRepositoryTestSuite) TestGetBySlugNotFound() {
	retrieved, err := suite.repo.GetBySlug("missing")

	suite.ErrorIs(err, gorm.ErrRecordNotFound)
	suite.Nil(retrieved)
}

// TestUpdate tests that a plan change persists
func (suite *TenantRepositoryTestSuite) TestUpdate() {
	tenant := suite.factories.Tenant.Create()
	err := suite.repo.Create(tenant)
	suite.NoError(err)

	tenant.Plan = models.TenantPlanPro
	err = suite.repo.Update(tenant)
	suite.NoError(err)

	retrieved, err := suite.repo.GetByID(tenant.ID)
	suite.NoError(err)
	suite.Equal(models.TenantPlanPro, retrieved.Plan)
}

// TestTenantRepositoryTestSuite runs the test suite
func TestTenantRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(TenantRepositoryTestSuite))
}
