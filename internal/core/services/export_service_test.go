package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mindfulhq/mindful_journal_app/internal/apperrors"
	"github.com/mindfulhq/mindful_journal_app/internal/core/domain"
	portssvc "github.com/mindfulhq/mindful_journal_app/internal/core/ports/services"
	"github.com/mindfulhq/mindful_journal_app/internal/core/services"
	"github.com/mindfulhq/mindful_journal_app/internal/export"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type ExportServiceTestSuite struct {
	suite.Suite
	mockEntryRepo *MockEntryRepository
	mockPhotoRepo *MockPhotoRepository
	service       portssvc.ExportSvcFacade
}

func (suite *ExportServiceTestSuite) SetupTest() {
	suite.mockEntryRepo = new(MockEntryRepository)
	suite.mockPhotoRepo = new(MockPhotoRepository)
	suite.service = services.NewExportService(suite.mockEntryRepo, suite.mockPhotoRepo, export.DefaultPageConfig())
}

func storedEntry(entryID string) *domain.JournalEntry {
	created := time.Date(2025, 6, 15, 9, 30, 0, 0, time.UTC)
	return &domain.JournalEntry{
		EntryID:    entryID,
		Title:      "Picnic",
		Content:    "We spent the afternoon outside.",
		CreatedAt:  created,
		ModifiedAt: created,
		WordCount:  5,
		Tags:       []domain.Tag{},
		Photos:     []domain.Photo{},
	}
}

func (suite *ExportServiceTestSuite) TestExportEntry_JSON() {
	ctx := context.Background()
	entryID := uuid.NewString()

	suite.mockEntryRepo.On("FindEntryByID", ctx, entryID).Return(storedEntry(entryID), nil).Once()

	result, err := suite.service.ExportEntry(ctx, entryID, export.FormatJSON)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "application/json; charset=utf-8", result.ContentType)
	assert.Contains(suite.T(), string(result.Bytes), `"title": "Picnic"`)
	suite.mockPhotoRepo.AssertNotCalled(suite.T(), "FindPhotosByEntryID", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ExportServiceTestSuite) TestExportEntry_PDFLoadsPhotoData() {
	ctx := context.Background()
	entryID := uuid.NewString()
	entry := storedEntry(entryID)
	entry.Photos = []domain.Photo{{PhotoID: uuid.NewString(), TakenAt: entry.CreatedAt}}

	withData := []domain.Photo{{
		PhotoID:   entry.Photos[0].PhotoID,
		TakenAt:   entry.CreatedAt,
		ImageData: encodedImage(suite.T(), 24, 16),
		Width:     24,
		Height:    16,
		FileSize:  512,
	}}

	suite.mockEntryRepo.On("FindEntryByID", ctx, entryID).Return(entry, nil).Once()
	suite.mockPhotoRepo.On("FindPhotosByEntryID", ctx, entryID, true).Return(withData, nil).Once()

	result, err := suite.service.ExportEntry(ctx, entryID, export.FormatPDF)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "application/pdf", result.ContentType)
	assert.True(suite.T(), len(result.Bytes) > 0)
	suite.mockPhotoRepo.AssertExpectations(suite.T())
}

func (suite *ExportServiceTestSuite) TestExportEntry_PDFWithoutPhotosSkipsLoad() {
	ctx := context.Background()
	entryID := uuid.NewString()

	suite.mockEntryRepo.On("FindEntryByID", ctx, entryID).Return(storedEntry(entryID), nil).Once()

	_, err := suite.service.ExportEntry(ctx, entryID, export.FormatPDF)

	require.NoError(suite.T(), err)
	suite.mockPhotoRepo.AssertNotCalled(suite.T(), "FindPhotosByEntryID", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ExportServiceTestSuite) TestExportEntry_NotFound() {
	ctx := context.Background()
	entryID := uuid.NewString()

	suite.mockEntryRepo.On("FindEntryByID", ctx, entryID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.ExportEntry(ctx, entryID, export.FormatMarkdown)

	assert.ErrorIs(suite.T(), err, apperrors.ErrNotFound)
}

func TestExportService(t *testing.T) {
	suite.Run(t, new(ExportServiceTestSuite))
}
