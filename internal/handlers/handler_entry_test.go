package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/mindfulhq/mindful_journal_app/internal/apperrors"
	"github.com/mindfulhq/mindful_journal_app/internal/core/domain"
	portssvc "github.com/mindfulhq/mindful_journal_app/internal/core/ports/services"
	"github.com/mindfulhq/mindful_journal_app/internal/dto"
	"github.com/mindfulhq/mindful_journal_app/internal/handlers"
	"github.com/mindfulhq/mindful_journal_app/internal/middleware"
)

// --- Mock EntryService ---
type MockEntryService struct {
	mock.Mock
}

func (m *MockEntryService) GetEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}
func (m *MockEntryService) ListEntries(ctx context.Context, sortBy domain.EntrySortOrder, limit int, nextToken *string) ([]domain.JournalEntry, *string, error) {
	args := m.Called(ctx, sortBy, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return args.Get(0).([]domain.JournalEntry), token, args.Error(2)
}
func (m *MockEntryService) SearchEntries(ctx context.Context, query string, limit int) ([]domain.JournalEntry, error) {
	args := m.Called(ctx, query, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalEntry), args.Error(1)
}
func (m *MockEntryService) GetEntriesByMood(ctx context.Context, mood domain.Mood, limit int) ([]domain.JournalEntry, error) {
	args := m.Called(ctx, mood, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalEntry), args.Error(1)
}
func (m *MockEntryService) GetEntriesByDateRange(ctx context.Context, from, to time.Time) ([]domain.JournalEntry, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalEntry), args.Error(1)
}
func (m *MockEntryService) GetFavoriteEntries(ctx context.Context) ([]domain.JournalEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalEntry), args.Error(1)
}
func (m *MockEntryService) CreateEntry(ctx context.Context, req dto.CreateEntryRequest) (*domain.JournalEntry, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}
func (m *MockEntryService) UpdateEntry(ctx context.Context, entryID string, req dto.UpdateEntryRequest) (*domain.JournalEntry, error) {
	args := m.Called(ctx, entryID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}
func (m *MockEntryService) DeleteEntry(ctx context.Context, entryID string) error {
	args := m.Called(ctx, entryID)
	return args.Error(0)
}
func (m *MockEntryService) SetFavorite(ctx context.Context, entryID string, favorite bool) (*domain.JournalEntry, error) {
	args := m.Called(ctx, entryID, favorite)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}
func (m *MockEntryService) AddTag(ctx context.Context, entryID, tagID string) error {
	args := m.Called(ctx, entryID, tagID)
	return args.Error(0)
}
func (m *MockEntryService) RemoveTag(ctx context.Context, entryID, tagID string) error {
	args := m.Called(ctx, entryID, tagID)
	return args.Error(0)
}

// Ensure mock implements the interface
var _ portssvc.EntrySvcFacade = (*MockEntryService)(nil)

// --- Test Suite ---
type EntryHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockEntryService *MockEntryService
	jwtSecret        string
}

// generateTestToken creates a dummy JWT for testing.
func (suite *EntryHandlerTestSuite) generateTestToken() string {
	claims := jwt.RegisteredClaims{
		Issuer:    "mja-test",
		Subject:   "journal-owner",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *EntryHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockEntryService = new(MockEntryService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterEntryRoutes(v1, suite.mockEntryService)
}

func (suite *EntryHandlerTestSuite) serve(req *http.Request) *httptest.ResponseRecorder {
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken())
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func sampleEntry(entryID string) *domain.JournalEntry {
	mood := domain.MoodHappy
	return &domain.JournalEntry{
		EntryID:    entryID,
		Title:      "Morning pages",
		Content:    "Slept well and went for a long walk before breakfast.",
		CreatedAt:  time.Date(2025, 6, 12, 7, 30, 0, 0, time.UTC),
		ModifiedAt: time.Date(2025, 6, 12, 7, 45, 0, 0, time.UTC),
		Mood:       &mood,
		WordCount:  10,
	}
}

// --- Test Cases ---

func (suite *EntryHandlerTestSuite) TestCreateEntry_Success() {
	entryID := uuid.NewString()
	expected := sampleEntry(entryID)

	suite.mockEntryService.On("CreateEntry",
		mock.Anything,
		mock.MatchedBy(func(req dto.CreateEntryRequest) bool {
			return req.Title == "Morning pages" && req.Mood != nil && *req.Mood == "happy"
		}),
	).Return(expected, nil).Once()

	body := map[string]any{
		"title":   "Morning pages",
		"content": "Slept well and went for a long walk before breakfast.",
		"mood":    "happy",
	}
	payload, _ := json.Marshal(body)
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/entries", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	w := suite.serve(req)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.EntryResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(entryID, resp.EntryID)
	suite.Equal("Morning pages", resp.Title)
	suite.NotNil(resp.Mood)
	suite.Equal("happy", *resp.Mood)
	suite.NotNil(resp.MoodEmoji)

	suite.mockEntryService.AssertExpectations(suite.T())
}

func (suite *EntryHandlerTestSuite) TestCreateEntry_ValidationError() {
	suite.mockEntryService.On("CreateEntry", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("invalid mood %q: %w", "ecstatic", apperrors.ErrValidation)).Once()

	payload, _ := json.Marshal(map[string]any{"content": "hello", "mood": "ecstatic"})
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/entries", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	w := suite.serve(req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "invalid mood")
}

func (suite *EntryHandlerTestSuite) TestCreateEntry_MalformedJSON() {
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/entries", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")

	w := suite.serve(req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockEntryService.AssertNotCalled(suite.T(), "CreateEntry")
}

func (suite *EntryHandlerTestSuite) TestListEntries_Success() {
	next := "dG9rZW4"
	entries := []domain.JournalEntry{*sampleEntry(uuid.NewString()), *sampleEntry(uuid.NewString())}

	suite.mockEntryService.On("ListEntries",
		mock.Anything, domain.SortDateDescending, 10, (*string)(nil),
	).Return(entries, &next, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/entries?limit=10", nil)
	w := suite.serve(req)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListEntriesResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.Entries, 2)
	suite.NotNil(resp.NextToken)
	suite.Equal(next, *resp.NextToken)

	suite.mockEntryService.AssertExpectations(suite.T())
}

func (suite *EntryHandlerTestSuite) TestListEntries_UnknownSortOrder() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/entries?sortBy=alphabetical", nil)
	w := suite.serve(req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockEntryService.AssertNotCalled(suite.T(), "ListEntries")
}

func (suite *EntryHandlerTestSuite) TestGetEntry_NotFound() {
	entryID := uuid.NewString()
	suite.mockEntryService.On("GetEntryByID", mock.Anything, entryID).
		Return(nil, apperrors.ErrNotFound).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/entries/"+entryID, nil)
	w := suite.serve(req)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *EntryHandlerTestSuite) TestGetEntry_Unauthorized() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/entries/"+uuid.NewString(), nil)
	w := httptest.NewRecorder()

	// No Authorization header at all.
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockEntryService.AssertNotCalled(suite.T(), "GetEntryByID")
}

func (suite *EntryHandlerTestSuite) TestUpdateEntry_Success() {
	entryID := uuid.NewString()
	updated := sampleEntry(entryID)
	updated.Title = "Evening pages"

	suite.mockEntryService.On("UpdateEntry",
		mock.Anything, entryID,
		mock.MatchedBy(func(req dto.UpdateEntryRequest) bool {
			return req.Title != nil && *req.Title == "Evening pages" && req.Content == nil
		}),
	).Return(updated, nil).Once()

	payload, _ := json.Marshal(map[string]any{"title": "Evening pages"})
	req, _ := http.NewRequest(http.MethodPatch, "/api/v1/entries/"+entryID, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	w := suite.serve(req)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.EntryResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("Evening pages", resp.Title)
}

func (suite *EntryHandlerTestSuite) TestDeleteEntry_Success() {
	entryID := uuid.NewString()
	suite.mockEntryService.On("DeleteEntry", mock.Anything, entryID).Return(nil).Once()

	req, _ := http.NewRequest(http.MethodDelete, "/api/v1/entries/"+entryID, nil)
	w := suite.serve(req)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.mockEntryService.AssertExpectations(suite.T())
}

func (suite *EntryHandlerTestSuite) TestSetFavorite_Success() {
	entryID := uuid.NewString()
	favorited := sampleEntry(entryID)
	favorited.IsFavorite = true

	suite.mockEntryService.On("SetFavorite", mock.Anything, entryID, true).
		Return(favorited, nil).Once()

	payload, _ := json.Marshal(map[string]any{"favorite": true})
	req, _ := http.NewRequest(http.MethodPut, "/api/v1/entries/"+entryID+"/favorite", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	w := suite.serve(req)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.EntryResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.IsFavorite)
}

func (suite *EntryHandlerTestSuite) TestListByDateRange_InvalidTimestamp() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/entries/by-date?from=yesterday&to=2025-06-12T00:00:00Z", nil)
	w := suite.serve(req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockEntryService.AssertNotCalled(suite.T(), "GetEntriesByDateRange")
}

func (suite *EntryHandlerTestSuite) TestAddTag_TagNotFound() {
	entryID := uuid.NewString()
	tagID := uuid.NewString()
	suite.mockEntryService.On("AddTag", mock.Anything, entryID, tagID).
		Return(fmt.Errorf("tag %s: %w", tagID, apperrors.ErrNotFound)).Once()

	req, _ := http.NewRequest(http.MethodPost, fmt.Sprintf("/api/v1/entries/%s/tags/%s", entryID, tagID), nil)
	w := suite.serve(req)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *EntryHandlerTestSuite) TestSearchEntries_PassesQuery() {
	entries := []domain.JournalEntry{*sampleEntry(uuid.NewString())}
	suite.mockEntryService.On("SearchEntries", mock.Anything, "walk", 5).
		Return(entries, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/entries/search?q=walk&limit=5", nil)
	w := suite.serve(req)

	suite.Equal(http.StatusOK, w.Code)
	var resp []dto.EntryResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp, 1)
}

// --- Run Test Suite ---
func TestEntryHandler(t *testing.T) {
	suite.Run(t, new(EntryHandlerTestSuite))
}
