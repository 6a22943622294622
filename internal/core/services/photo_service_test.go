package services_test

import (
	"bytes"
	"context"
	"image"
	"testing"
	"time"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	"github.com/mindfulhq/mindful_journal_app/internal/apperrors"
	"github.com/mindfulhq/mindful_journal_app/internal/core/domain"
	portssvc "github.com/mindfulhq/mindful_journal_app/internal/core/ports/services"
	"github.com/mindfulhq/mindful_journal_app/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// --- Mock PhotoRepository ---
type MockPhotoRepository struct {
	mock.Mock
}

func (m *MockPhotoRepository) SavePhoto(ctx context.Context, photo domain.Photo, entryID string) error {
	args := m.Called(ctx, photo, entryID)
	return args.Error(0)
}

func (m *MockPhotoRepository) FindPhotoByID(ctx context.Context, photoID string) (*domain.Photo, error) {
	args := m.Called(ctx, photoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Photo), args.Error(1)
}

func (m *MockPhotoRepository) FindPhotosByEntryID(ctx context.Context, entryID string, includeData bool) ([]domain.Photo, error) {
	args := m.Called(ctx, entryID, includeData)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Photo), args.Error(1)
}

func (m *MockPhotoRepository) UpdateCaption(ctx context.Context, photoID string, caption *string) error {
	args := m.Called(ctx, photoID, caption)
	return args.Error(0)
}

func (m *MockPhotoRepository) DeletePhoto(ctx context.Context, photoID string) error {
	args := m.Called(ctx, photoID)
	return args.Error(0)
}

func (m *MockPhotoRepository) CountPhotos(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// encodedImage renders a solid image of the given size as PNG bytes.
func encodedImage(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	var buf bytes.Buffer
	require.NoError(t, imaging.Encode(&buf, img, imaging.PNG))
	return buf.Bytes()
}

// --- Test Suite ---
type PhotoServiceTestSuite struct {
	suite.Suite
	mockPhotoRepo *MockPhotoRepository
	mockEntryRepo *MockEntryRepository
	service       portssvc.PhotoSvcFacade
}

func (suite *PhotoServiceTestSuite) SetupTest() {
	suite.mockPhotoRepo = new(MockPhotoRepository)
	suite.mockEntryRepo = new(MockEntryRepository)
	suite.service = services.NewPhotoService(suite.mockPhotoRepo, suite.mockEntryRepo)
}

// --- Test Cases ---

func (suite *PhotoServiceTestSuite) TestAttachPhoto_Success() {
	ctx := context.Background()
	entryID := uuid.NewString()
	entry := &domain.JournalEntry{EntryID: entryID}
	caption := "Sunset"
	takenAt := time.Date(2025, 6, 15, 19, 30, 0, 0, time.UTC)

	suite.mockEntryRepo.On("FindEntryByID", ctx, entryID).Return(entry, nil).Once()
	suite.mockPhotoRepo.On("SavePhoto", ctx, mock.AnythingOfType("domain.Photo"), entryID).Return(nil).Once()

	photo, err := suite.service.AttachPhoto(ctx, entryID, encodedImage(suite.T(), 40, 30), &caption, takenAt)

	require.NoError(suite.T(), err)
	assert.NotEmpty(suite.T(), photo.PhotoID)
	assert.Equal(suite.T(), 40, photo.Width)
	assert.Equal(suite.T(), 30, photo.Height)
	assert.Equal(suite.T(), "Sunset", *photo.Caption)
	assert.Equal(suite.T(), takenAt, photo.TakenAt)
	assert.NotEmpty(suite.T(), photo.ImageData)
	assert.NotEmpty(suite.T(), photo.ThumbnailData)
	assert.Equal(suite.T(), int64(len(photo.ImageData)), photo.FileSize)

	// Stored bytes are JPEG regardless of the upload format.
	_, format, err := image.DecodeConfig(bytes.NewReader(photo.ImageData))
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "jpeg", format)

	suite.mockPhotoRepo.AssertExpectations(suite.T())
}

func (suite *PhotoServiceTestSuite) TestAttachPhoto_DownscalesLargeImages() {
	ctx := context.Background()
	entryID := uuid.NewString()
	entry := &domain.JournalEntry{EntryID: entryID}

	suite.mockEntryRepo.On("FindEntryByID", ctx, entryID).Return(entry, nil).Once()
	suite.mockPhotoRepo.On("SavePhoto", ctx, mock.AnythingOfType("domain.Photo"), entryID).Return(nil).Once()

	photo, err := suite.service.AttachPhoto(ctx, entryID, encodedImage(suite.T(), 4096, 2048), nil, time.Time{})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 2048, photo.Width)
	assert.Equal(suite.T(), 1024, photo.Height)
	assert.False(suite.T(), photo.TakenAt.IsZero())
}

func (suite *PhotoServiceTestSuite) TestAttachPhoto_UndecodableData() {
	ctx := context.Background()
	entryID := uuid.NewString()
	entry := &domain.JournalEntry{EntryID: entryID}

	suite.mockEntryRepo.On("FindEntryByID", ctx, entryID).Return(entry, nil).Once()

	_, err := suite.service.AttachPhoto(ctx, entryID, []byte("not an image"), nil, time.Time{})

	assert.ErrorIs(suite.T(), err, apperrors.ErrValidation)
	suite.mockPhotoRepo.AssertNotCalled(suite.T(), "SavePhoto", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PhotoServiceTestSuite) TestAttachPhoto_EmptyData() {
	ctx := context.Background()

	_, err := suite.service.AttachPhoto(ctx, uuid.NewString(), nil, nil, time.Time{})

	assert.ErrorIs(suite.T(), err, apperrors.ErrValidation)
	suite.mockEntryRepo.AssertNotCalled(suite.T(), "FindEntryByID", mock.Anything, mock.Anything)
}

func (suite *PhotoServiceTestSuite) TestAttachPhoto_MissingEntry() {
	ctx := context.Background()
	entryID := uuid.NewString()

	suite.mockEntryRepo.On("FindEntryByID", ctx, entryID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.AttachPhoto(ctx, entryID, encodedImage(suite.T(), 10, 10), nil, time.Time{})

	assert.ErrorIs(suite.T(), err, apperrors.ErrNotFound)
}

func (suite *PhotoServiceTestSuite) TestGetThumbnail() {
	ctx := context.Background()
	photoID := uuid.NewString()
	photo := &domain.Photo{PhotoID: photoID, ThumbnailData: []byte{0x01, 0x02}}

	suite.mockPhotoRepo.On("FindPhotoByID", ctx, photoID).Return(photo, nil).Once()

	thumb, err := suite.service.GetThumbnail(ctx, photoID)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), []byte{0x01, 0x02}, thumb)
}

func (suite *PhotoServiceTestSuite) TestGetThumbnail_FallsBackToFullImage() {
	ctx := context.Background()
	photoID := uuid.NewString()
	photo := &domain.Photo{PhotoID: photoID, ImageData: []byte{0x0A, 0x0B}}

	suite.mockPhotoRepo.On("FindPhotoByID", ctx, photoID).Return(photo, nil).Once()

	thumb, err := suite.service.GetThumbnail(ctx, photoID)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), []byte{0x0A, 0x0B}, thumb)
}

func (suite *PhotoServiceTestSuite) TestUpdateCaption_Clears() {
	ctx := context.Background()
	photoID := uuid.NewString()
	photo := &domain.Photo{PhotoID: photoID}

	suite.mockPhotoRepo.On("UpdateCaption", ctx, photoID, (*string)(nil)).Return(nil).Once()
	suite.mockPhotoRepo.On("FindPhotoByID", ctx, photoID).Return(photo, nil).Once()

	updated, err := suite.service.UpdateCaption(ctx, photoID, nil)

	require.NoError(suite.T(), err)
	assert.Nil(suite.T(), updated.Caption)
	suite.mockPhotoRepo.AssertExpectations(suite.T())
}

func TestPhotoService(t *testing.T) {
	suite.Run(t, new(PhotoServiceTestSuite))
}
