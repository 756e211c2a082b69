package service_test

import (
	"strings"
	"testing"

	"github.com/Niraj123466/saas-notes-backend/internal/database/models"
	apperrors "github.com/Niraj123466/saas-notes-backend/internal/errors"
	"github.com/Niraj123466/saas-notes-backend/internal/mocks"
	"github.com/Niraj123466/saas-notes-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// NoteServiceTestSuite defines the test suite for NoteService
type NoteServiceTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockNoteRepo   *mocks.MockNoteRepositoryInterface
	mockTenantRepo *mocks.MockTenantRepositoryInterface
	noteService    *service.NoteService
	validator      *validator.Validate

	userID   uuid.UUID
	tenantID uuid.UUID
}

// SetupTest sets up the test suite
func (suite *NoteServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockNoteRepo = mocks.NewMockNoteRepositoryInterface(suite.ctrl)
	suite.mockTenantRepo = mocks.NewMockTenantRepositoryInterface(suite.ctrl)
	suite.validator = validator.New()

	suite.noteService = service.NewNoteService(suite.mockNoteRepo, suite.mockTenantRepo, suite.validator, 3)

	suite.userID = uuid.New()
	suite.tenantID = uuid.New()
}

// TearDownTest cleans up after each test
func (suite *NoteServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *NoteServiceTestSuite) tenant(plan models.TenantPlan) *models.Tenant {
	return &models.Tenant{
		BaseModel: models.BaseModel{ID: suite.tenantID},
		Name:      "Acme",
		Slug:      "acme",
		Plan:      plan,
	}
}

// TestCreateNote tests creating a note under the cap on a FREE tenant
func (suite *NoteServiceTestSuite) TestCreateNote() {
	req := &service.CreateNoteRequest{
		Title:   "Meeting notes",
		Content: "Discussed roadmap",
	}

	suite.mockTenantRepo.EXPECT().
		GetByID(suite.tenantID).
		Return(suite.tenant(models.TenantPlanFree), nil).
		Times(1)

	suite.mockNoteRepo.EXPECT().
		CountByTenant(suite.tenantID).
		Return(int64(2), nil).
		Times(1)

	suite.mockNoteRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(note *models.Note) error {
			note.ID = uuid.New()
			return nil
		}).
		Times(1)

	response, err := suite.noteService.Create(suite.userID, suite.tenantID, req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.Equal(suite.T(), req.Title, response.Title)
	assert.Equal(suite.T(), req.Content, response.Content)
	assert.Equal(suite.T(), suite.tenantID, response.TenantID)
	assert.NotNil(suite.T(), response.OwnerID)
	assert.Equal(suite.T(), suite.userID, *response.OwnerID)
}

// TestCreateNoteQuotaExceeded tests that the third live note exhausts a FREE plan
func (suite *NoteServiceTestSuite) TestCreateNoteQuotaExceeded() {
	suite.mockTenantRepo.EXPECT().
		GetByID(suite.tenantID).
		Return(suite.tenant(models.TenantPlanFree), nil).
		Times(1)

	suite.mockNoteRepo.EXPECT().
		CountByTenant(suite.tenantID).
		Return(int64(3), nil).
		Times(1)

	response, err := suite.noteService.Create(suite.userID, suite.tenantID, &service.CreateNoteRequest{
		Title:   "One too many",
		Content: "Should be rejected",
	})

	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsQuotaExceeded(err))
}

// TestCreateNoteQuotaFreedByDelete tests that the cap is evaluated against the
// live count, so a creation after a delete succeeds again
func (suite *NoteServiceTestSuite) TestCreateNoteQuotaFreedByDelete() {
	suite.mockTenantRepo.EXPECT().
		GetByID(suite.tenantID).
		Return(suite.tenant(models.TenantPlanFree), nil).
		Times(2)

	gomock.InOrder(
		suite.mockNoteRepo.EXPECT().
			CountByTenant(suite.tenantID).
			Return(int64(3), nil),
		suite.mockNoteRepo.EXPECT().
			CountByTenant(suite.tenantID).
			Return(int64(2), nil),
	)

	suite.mockNoteRepo.EXPECT().
		Create(gomock.Any()).
		Return(nil).
		Times(1)

	req := &service.CreateNoteRequest{Title: "Retry", Content: "After a delete"}

	_, err := suite.noteService.Create(suite.userID, suite.tenantID, req)
	assert.True(suite.T(), apperrors.IsQuotaExceeded(err))

	response, err := suite.noteService.Create(suite.userID, suite.tenantID, req)
	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
}

// TestCreateNoteProPlanUnlimited tests that PRO tenants skip the count entirely
func (suite *NoteServiceTestSuite) TestCreateNoteProPlanUnlimited() {
	suite.mockTenantRepo.EXPECT().
		GetByID(suite.tenantID).
		Return(suite.tenant(models.TenantPlanPro), nil).
		Times(1)

	// No CountByTenant expectation: PRO creation never counts

	suite.mockNoteRepo.EXPECT().
		Create(gomock.Any()).
		Return(nil).
		Times(1)

	response, err := suite.noteService.Create(suite.userID, suite.tenantID, &service.CreateNoteRequest{
		Title:   "Note four",
		Content: "No cap on PRO",
	})

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
}

// TestCreateNoteLongTitle tests that title length is not capped
func (suite *NoteServiceTestSuite) TestCreateNoteLongTitle() {
	suite.mockTenantRepo.EXPECT().
		GetByID(suite.tenantID).
		Return(suite.tenant(models.TenantPlanFree), nil).
		Times(1)

	suite.mockNoteRepo.EXPECT().
		CountByTenant(suite.tenantID).
		Return(int64(0), nil).
		Times(1)

	suite.mockNoteRepo.EXPECT().
		Create(gomock.Any()).
		Return(nil).
		Times(1)

	longTitle := strings.Repeat("t", 201)
	response, err := suite.noteService.Create(suite.userID, suite.tenantID, &service.CreateNoteRequest{
		Title:   longTitle,
		Content: "content",
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), longTitle, response.Title)
}

// TestCreateNoteValidationError tests creating a note with missing fields
func (suite *NoteServiceTestSuite) TestCreateNoteValidationError() {
	response, err := suite.noteService.Create(suite.userID, suite.tenantID, &service.CreateNoteRequest{
		Title: "Missing content",
	})

	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

// TestCreateNoteTenantNotFound tests creating a note for a vanished tenant
func (suite *NoteServiceTestSuite) TestCreateNoteTenantNotFound() {
	suite.mockTenantRepo.EXPECT().
		GetByID(suite.tenantID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	response, err := suite.noteService.Create(suite.userID, suite.tenantID, &service.CreateNoteRequest{
		Title:   "Orphaned",
		Content: "Tenant row is gone",
	})

	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsNotFound(err))
}

// TestListNotes tests listing notes for a tenant
func (suite *NoteServiceTestSuite) TestListNotes() {
	notes := []models.Note{
		{BaseModel: models.BaseModel{ID: uuid.New()}, Title: "Second", TenantID: suite.tenantID},
		{BaseModel: models.BaseModel{ID: uuid.New()}, Title: "First", TenantID: suite.tenantID},
	}

	suite.mockNoteRepo.EXPECT().
		ListByTenant(suite.tenantID).
		Return(notes, nil).
		Times(1)

	response, err := suite.noteService.List(suite.tenantID)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.Equal(suite.T(), 2, response.Total)
	assert.Equal(suite.T(), "Second", response.Notes[0].Title)
	assert.Equal(suite.T(), "First", response.Notes[1].Title)
}

// TestListNotesEmpty tests listing when the tenant has no notes
func (suite *NoteServiceTestSuite) TestListNotesEmpty() {
	suite.mockNoteRepo.EXPECT().
		ListByTenant(suite.tenantID).
		Return([]models.Note{}, nil).
		Times(1)

	response, err := suite.noteService.List(suite.tenantID)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 0, response.Total)
	assert.NotNil(suite.T(), response.Notes)
	assert.Len(suite.T(), response.Notes, 0)
}

// TestGetNote tests retrieving a note scoped to its tenant
func (suite *NoteServiceTestSuite) TestGetNote() {
	noteID := uuid.New()
	note := &models.Note{
		BaseModel: models.BaseModel{ID: noteID},
		Title:     "Found",
		Content:   "Scoped lookup",
		TenantID:  suite.tenantID,
	}

	suite.mockNoteRepo.EXPECT().
		GetByIDAndTenant(noteID, suite.tenantID).
		Return(note, nil).
		Times(1)

	response, err := suite.noteService.Get(noteID, suite.tenantID)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), noteID, response.ID)
	assert.Equal(suite.T(), "Found", response.Title)
}

// TestGetNoteCrossTenant tests that another tenant's note id resolves to not found
func (suite *NoteServiceTestSuite) TestGetNoteCrossTenant() {
	noteID := uuid.New()

	suite.mockNoteRepo.EXPECT().
		GetByIDAndTenant(noteID, suite.tenantID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	response, err := suite.noteService.Get(noteID, suite.tenantID)

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrNoteNotFound)
}

// TestUpdateNote tests overwriting a note's title and content
func (suite *NoteServiceTestSuite) TestUpdateNote() {
	noteID := uuid.New()
	ownerID := uuid.New() // another member's note: edit is still allowed
	note := &models.Note{
		BaseModel: models.BaseModel{ID: noteID},
		Title:     "Old title",
		Content:   "Old content",
		TenantID:  suite.tenantID,
		OwnerID:   &ownerID,
	}

	suite.mockNoteRepo.EXPECT().
		GetByIDAndTenant(noteID, suite.tenantID).
		Return(note, nil).
		Times(1)

	suite.mockNoteRepo.EXPECT().
		Update(note).
		Return(nil).
		Times(1)

	response, err := suite.noteService.Update(noteID, suite.tenantID, &service.UpdateNoteRequest{
		Title:   "New title",
		Content: "New content",
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "New title", response.Title)
	assert.Equal(suite.T(), "New content", response.Content)
	assert.Equal(suite.T(), &ownerID, response.OwnerID)
}

// TestUpdateNoteNotFound tests updating a missing note
func (suite *NoteServiceTestSuite) TestUpdateNoteNotFound() {
	noteID := uuid.New()

	suite.mockNoteRepo.EXPECT().
		GetByIDAndTenant(noteID, suite.tenantID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	response, err := suite.noteService.Update(noteID, suite.tenantID, &service.UpdateNoteRequest{
		Title:   "New title",
		Content: "New content",
	})

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrNoteNotFound)
}

// TestUpdateNoteValidationError tests updating with missing fields
func (suite *NoteServiceTestSuite) TestUpdateNoteValidationError() {
	response, err := suite.noteService.Update(uuid.New(), suite.tenantID, &service.UpdateNoteRequest{})

	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

// TestDeleteNote tests deleting a tenant-scoped note
func (suite *NoteServiceTestSuite) TestDeleteNote() {
	noteID := uuid.New()
	note := &models.Note{
		BaseModel: models.BaseModel{ID: noteID},
		TenantID:  suite.tenantID,
	}

	suite.mockNoteRepo.EXPECT().
		GetByIDAndTenant(noteID, suite.tenantID).
		Return(note, nil).
		Times(1)

	suite.mockNoteRepo.EXPECT().
		Delete(note).
		Return(nil).
		Times(1)

	err := suite.noteService.Delete(noteID, suite.tenantID)
	assert.NoError(suite.T(), err)
}

// TestDeleteNoteCrossTenant tests that deleting another tenant's note resolves
// to not found
func (suite *NoteServiceTestSuite) TestDeleteNoteCrossTenant() {
	noteID := uuid.New()

	suite.mockNoteRepo.EXPECT().
		GetByIDAndTenant(noteID, suite.tenantID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	err := suite.noteService.Delete(noteID, suite.tenantID)
	assert.ErrorIs(suite.T(), err, apperrors.ErrNoteNotFound)
}

// TestNoteServiceTestSuite runs the test suite
func TestNoteServiceTestSuite(t *testing.T) {
	suite.Run(t, new(NoteServiceTestSuite))
}
