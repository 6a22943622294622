package handlers_test

import (
	"context"
	"errors"
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
	portssvc "github.com/mindfulhq/mindful_journal_app/internal/core/ports/services"
	"github.com/mindfulhq/mindful_journal_app/internal/export"
	"github.com/mindfulhq/mindful_journal_app/internal/handlers"
	"github.com/mindfulhq/mindful_journal_app/internal/middleware"
)

// --- Mock ExportService ---
type MockExportService struct {
	mock.Mock
}

func (m *MockExportService) ExportEntry(ctx context.Context, entryID string, format export.Format) (*export.Result, error) {
	args := m.Called(ctx, entryID, format)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*export.Result), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.ExportSvcFacade = (*MockExportService)(nil)

// --- Test Suite ---
type ExportHandlerTestSuite struct {
	suite.Suite
	router            *gin.Engine
	mockExportService *MockExportService
	jwtSecret         string
}

func (suite *ExportHandlerTestSuite) generateTestToken() string {
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

func (suite *ExportHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockExportService = new(MockExportService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterExportRoutes(v1, suite.mockExportService)
}

func (suite *ExportHandlerTestSuite) serve(req *http.Request) *httptest.ResponseRecorder {
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken())
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *ExportHandlerTestSuite) TestExportEntry_Markdown() {
	entryID := uuid.NewString()
	result := &export.Result{
		Bytes:       []byte("# Morning pages\n"),
		ContentType: "text/markdown; charset=utf-8",
	}

	suite.mockExportService.On("ExportEntry", mock.Anything, entryID, export.FormatMarkdown).
		Return(result, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, fmt.Sprintf("/api/v1/entries/%s/export?format=md", entryID), nil)
	w := suite.serve(req)

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("text/markdown; charset=utf-8", w.Header().Get("Content-Type"))
	suite.Equal(fmt.Sprintf("attachment; filename=%q", "entry-"+entryID+".md"), w.Header().Get("Content-Disposition"))
	suite.Empty(w.Header().Get("X-Export-Warning"))
	suite.Equal("# Morning pages\n", w.Body.String())

	suite.mockExportService.AssertExpectations(suite.T())
}

func (suite *ExportHandlerTestSuite) TestExportEntry_PDFWithWarnings() {
	entryID := uuid.NewString()
	result := &export.Result{
		Bytes:       []byte("%PDF-1.3"),
		ContentType: "application/pdf",
		Warnings:    []string{"photo 1 skipped: undecodable image data", "photo 3 skipped: undecodable image data"},
	}

	suite.mockExportService.On("ExportEntry", mock.Anything, entryID, export.FormatPDF).
		Return(result, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, fmt.Sprintf("/api/v1/entries/%s/export?format=pdf", entryID), nil)
	w := suite.serve(req)

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("application/pdf", w.Header().Get("Content-Type"))
	suite.Equal(fmt.Sprintf("attachment; filename=%q", "entry-"+entryID+".pdf"), w.Header().Get("Content-Disposition"))
	suite.Equal("photo 1 skipped: undecodable image data; photo 3 skipped: undecodable image data", w.Header().Get("X-Export-Warning"))
}

func (suite *ExportHandlerTestSuite) TestExportEntry_UnsupportedFormat() {
	entryID := uuid.NewString()

	req, _ := http.NewRequest(http.MethodGet, fmt.Sprintf("/api/v1/entries/%s/export?format=docx", entryID), nil)
	w := suite.serve(req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "unsupported export format")
	suite.mockExportService.AssertNotCalled(suite.T(), "ExportEntry")
}

func (suite *ExportHandlerTestSuite) TestExportEntry_NotFound() {
	entryID := uuid.NewString()
	suite.mockExportService.On("ExportEntry", mock.Anything, entryID, export.FormatJSON).
		Return(nil, fmt.Errorf("entry %s: %w", entryID, apperrors.ErrNotFound)).Once()

	req, _ := http.NewRequest(http.MethodGet, fmt.Sprintf("/api/v1/entries/%s/export?format=json", entryID), nil)
	w := suite.serve(req)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *ExportHandlerTestSuite) TestExportEntry_RenderFailure() {
	entryID := uuid.NewString()
	renderErr := &export.RenderError{Stage: export.StageDraw, Err: errors.New("context canceled")}
	suite.mockExportService.On("ExportEntry", mock.Anything, entryID, export.FormatPDF).
		Return(nil, renderErr).Once()

	req, _ := http.NewRequest(http.MethodGet, fmt.Sprintf("/api/v1/entries/%s/export?format=pdf", entryID), nil)
	w := suite.serve(req)

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.Contains(w.Body.String(), "Failed to render document")
}

func (suite *ExportHandlerTestSuite) TestExportEntry_MissingFormatParam() {
	entryID := uuid.NewString()

	req, _ := http.NewRequest(http.MethodGet, fmt.Sprintf("/api/v1/entries/%s/export", entryID), nil)
	w := suite.serve(req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockExportService.AssertNotCalled(suite.T(), "ExportEntry")
}

// --- Run Test Suite ---
func TestExportHandler(t *testing.T) {
	suite.Run(t, new(ExportHandlerTestSuite))
}
