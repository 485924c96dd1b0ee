package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SscSPs/journal_backend/internal/apperrors"
	"github.com/SscSPs/journal_backend/internal/core/domain"
	portssvc "github.com/SscSPs/journal_backend/internal/core/ports/services"
	"github.com/SscSPs/journal_backend/internal/dto"
	"github.com/SscSPs/journal_backend/internal/handlers"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock JournalService ---
type MockJournalService struct {
	mock.Mock
}

func (m *MockJournalService) ListEntries(ctx context.Context) []domain.JournalEntry {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]domain.JournalEntry)
}

func (m *MockJournalService) CreateEntry(ctx context.Context, req dto.CreateEntryRequest) (*domain.JournalEntry, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalService) UpdateEntry(ctx context.Context, entryID string, req dto.UpdateEntryRequest) (*domain.JournalEntry, error) {
	args := m.Called(ctx, entryID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalService) DeleteEntry(ctx context.Context, entryID string) error {
	args := m.Called(ctx, entryID)
	return args.Error(0)
}

// Ensure mock implements the interface
var _ portssvc.JournalSvcFacade = (*MockJournalService)(nil)

// --- Test Suite ---
type EntryHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockJournalService *MockJournalService
}

func (suite *EntryHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.mockJournalService = new(MockJournalService)

	api := suite.router.Group("/api")
	handlers.RegisterEntryRoutes(api, suite.mockJournalService)
}

func (suite *EntryHandlerTestSuite) do(method, url, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, url, nil)
	} else {
		req = httptest.NewRequest(method, url, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *EntryHandlerTestSuite) errorBody(w *httptest.ResponseRecorder) string {
	var resp map[string]string
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp, 1)
	return resp["error"]
}

// --- List ---

func (suite *EntryHandlerTestSuite) TestListEntries_Success() {
	entries := []domain.JournalEntry{
		{ID: "2", Text: "b", Date: "2024-01-02", CreatedAt: "2024-01-02T00:00:00.000Z", UpdatedAt: "2024-01-03T00:00:00.000Z"},
		{ID: "1", Text: "a", Date: "2024-01-01", CreatedAt: "2024-01-01T00:00:00.000Z"},
	}
	suite.mockJournalService.On("ListEntries", mock.Anything).Return(entries).Once()

	w := suite.do(http.MethodGet, "/api/entries", "")

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`[
		{"id":"2","text":"b","date":"2024-01-02","createdAt":"2024-01-02T00:00:00.000Z","updatedAt":"2024-01-03T00:00:00.000Z"},
		{"id":"1","text":"a","date":"2024-01-01","createdAt":"2024-01-01T00:00:00.000Z"}
	]`, w.Body.String())
	suite.mockJournalService.AssertExpectations(suite.T())
}

func (suite *EntryHandlerTestSuite) TestListEntries_EmptyIsArray() {
	suite.mockJournalService.On("ListEntries", mock.Anything).Return(nil).Once()

	w := suite.do(http.MethodGet, "/api/entries", "")

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`[]`, w.Body.String())
}

// --- Create ---

func (suite *EntryHandlerTestSuite) TestCreateEntry_Success() {
	req := dto.CreateEntryRequest{Text: "hello", Date: "2024-01-01"}
	created := &domain.JournalEntry{ID: "1704067200000", Text: "hello", Date: "2024-01-01", CreatedAt: "2024-01-01T00:00:00.000Z"}
	suite.mockJournalService.On("CreateEntry", mock.Anything, req).Return(created, nil).Once()

	w := suite.do(http.MethodPost, "/api/entries", `{"text":"hello","date":"2024-01-01"}`)

	suite.Equal(http.StatusCreated, w.Code)
	suite.JSONEq(`{"id":"1704067200000","text":"hello","date":"2024-01-01","createdAt":"2024-01-01T00:00:00.000Z"}`, w.Body.String())
	suite.mockJournalService.AssertExpectations(suite.T())
}

func (suite *EntryHandlerTestSuite) TestCreateEntry_ValidationError() {
	suite.mockJournalService.On("CreateEntry", mock.Anything, dto.CreateEntryRequest{Text: "hello"}).
		Return(nil, fmt.Errorf("text and date are required: %w", apperrors.ErrValidation)).Once()

	w := suite.do(http.MethodPost, "/api/entries", `{"text":"hello"}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("Text and date are required", suite.errorBody(w))
}

func (suite *EntryHandlerTestSuite) TestCreateEntry_EmptyBodyFallsThroughToValidation() {
	suite.mockJournalService.On("CreateEntry", mock.Anything, dto.CreateEntryRequest{}).
		Return(nil, apperrors.ErrValidation).Once()

	w := suite.do(http.MethodPost, "/api/entries", "")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("Text and date are required", suite.errorBody(w))
}

func (suite *EntryHandlerTestSuite) TestCreateEntry_MalformedJSON() {
	w := suite.do(http.MethodPost, "/api/entries", `{"text":`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("Invalid request format", suite.errorBody(w))
	suite.mockJournalService.AssertNotCalled(suite.T(), "CreateEntry", mock.Anything, mock.Anything)
}

func (suite *EntryHandlerTestSuite) TestCreateEntry_NonStringField() {
	w := suite.do(http.MethodPost, "/api/entries", `{"text":42,"date":"2024-01-01"}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("Invalid request format", suite.errorBody(w))
}

func (suite *EntryHandlerTestSuite) TestCreateEntry_PersistenceError() {
	suite.mockJournalService.On("CreateEntry", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("failed to save journal entry: %w: %w", apperrors.ErrPersistence, errors.New("/data/journal-entries.json: no space left on device"))).Once()

	w := suite.do(http.MethodPost, "/api/entries", `{"text":"hello","date":"2024-01-01"}`)

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.Equal("Failed to save journal entry", suite.errorBody(w))
	suite.NotContains(w.Body.String(), "no space left")
}

// --- Update ---

func (suite *EntryHandlerTestSuite) TestUpdateEntry_Success() {
	req := dto.UpdateEntryRequest{Text: "goodbye"}
	updated := &domain.JournalEntry{ID: "1", Text: "goodbye", Date: "2024-01-01", CreatedAt: "2024-01-01T00:00:00.000Z", UpdatedAt: "2024-01-02T00:00:00.000Z"}
	suite.mockJournalService.On("UpdateEntry", mock.Anything, "1", req).Return(updated, nil).Once()

	w := suite.do(http.MethodPut, "/api/entries/1", `{"text":"goodbye"}`)

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"id":"1","text":"goodbye","date":"2024-01-01","createdAt":"2024-01-01T00:00:00.000Z","updatedAt":"2024-01-02T00:00:00.000Z"}`, w.Body.String())
	suite.mockJournalService.AssertExpectations(suite.T())
}

func (suite *EntryHandlerTestSuite) TestUpdateEntry_ValidationError() {
	suite.mockJournalService.On("UpdateEntry", mock.Anything, "1", dto.UpdateEntryRequest{}).
		Return(nil, apperrors.ErrValidation).Once()

	w := suite.do(http.MethodPut, "/api/entries/1", `{}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("Text or date is required for update", suite.errorBody(w))
}

func (suite *EntryHandlerTestSuite) TestUpdateEntry_NotFound() {
	suite.mockJournalService.On("UpdateEntry", mock.Anything, "missing", dto.UpdateEntryRequest{Date: "2024-01-05"}).
		Return(nil, fmt.Errorf("journal entry missing: %w", apperrors.ErrNotFound)).Once()

	w := suite.do(http.MethodPut, "/api/entries/missing", `{"date":"2024-01-05"}`)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.Equal("Entry not found", suite.errorBody(w))
}

func (suite *EntryHandlerTestSuite) TestUpdateEntry_PersistenceError() {
	suite.mockJournalService.On("UpdateEntry", mock.Anything, "1", mock.Anything).
		Return(nil, apperrors.ErrPersistence).Once()

	w := suite.do(http.MethodPut, "/api/entries/1", `{"text":"x"}`)

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.Equal("Failed to update journal entry", suite.errorBody(w))
}

// --- Delete ---

func (suite *EntryHandlerTestSuite) TestDeleteEntry_Success() {
	suite.mockJournalService.On("DeleteEntry", mock.Anything, "1").Return(nil).Once()

	w := suite.do(http.MethodDelete, "/api/entries/1", "")

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"message":"Entry deleted successfully"}`, w.Body.String())
	suite.mockJournalService.AssertExpectations(suite.T())
}

func (suite *EntryHandlerTestSuite) TestDeleteEntry_NotFound() {
	suite.mockJournalService.On("DeleteEntry", mock.Anything, "1").Return(apperrors.ErrNotFound).Once()

	w := suite.do(http.MethodDelete, "/api/entries/1", "")

	suite.Equal(http.StatusNotFound, w.Code)
	suite.Equal("Entry not found", suite.errorBody(w))
}

func (suite *EntryHandlerTestSuite) TestDeleteEntry_PersistenceError() {
	suite.mockJournalService.On("DeleteEntry", mock.Anything, "1").Return(apperrors.ErrPersistence).Once()

	w := suite.do(http.MethodDelete, "/api/entries/1", "")

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.Equal("Failed to delete journal entry", suite.errorBody(w))
}

// --- Run Test Suite ---
func TestEntryHandler(t *testing.T) {
	suite.Run(t, new(EntryHandlerTestSuite))
}
