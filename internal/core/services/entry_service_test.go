package services_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/devanshg03/personal_journal_app/internal/apperrors"
	"github.com/devanshg03/personal_journal_app/internal/core/domain"
	portssvc "github.com/devanshg03/personal_journal_app/internal/core/ports/services"
	"github.com/devanshg03/personal_journal_app/internal/core/services"
	"github.com/devanshg03/personal_journal_app/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock EntryRepository ---
type MockEntryRepository struct {
	mock.Mock
}

func (m *MockEntryRepository) CreateEntry(ctx context.Context, title string, content string) (*domain.Entry, error) {
	args := m.Called(ctx, title, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Entry), args.Error(1)
}

func (m *MockEntryRepository) FindEntryByID(ctx context.Context, entryID int64) (*domain.Entry, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Entry), args.Error(1)
}

func (m *MockEntryRepository) FindEntries(ctx context.Context) ([]domain.Entry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Entry), args.Error(1)
}

func (m *MockEntryRepository) UpdateEntry(ctx context.Context, entryID int64, title string, content string) (*domain.Entry, error) {
	args := m.Called(ctx, entryID, title, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Entry), args.Error(1)
}

func (m *MockEntryRepository) DeleteEntry(ctx context.Context, entryID int64) error {
	args := m.Called(ctx, entryID)
	return args.Error(0)
}

// --- Test Suite ---
type EntryServiceTestSuite struct {
	suite.Suite
	mockEntryRepo *MockEntryRepository
	service       portssvc.EntrySvcFacade
}

func (suite *EntryServiceTestSuite) SetupTest() {
	suite.mockEntryRepo = new(MockEntryRepository)
	suite.service = services.NewEntryService(suite.mockEntryRepo)
}

// --- CreateEntry Tests ---

func (suite *EntryServiceTestSuite) TestCreateEntry_Success() {
	ctx := context.Background()
	now := time.Now()
	expected := &domain.Entry{
		ID:        1,
		Title:     "Day 1",
		Content:   "Sunny",
		CreatedAt: now,
		UpdatedAt: now,
	}

	suite.mockEntryRepo.On("CreateEntry", ctx, "Day 1", "Sunny").Return(expected, nil).Once()

	entry, err := suite.service.CreateEntry(ctx, dto.CreateEntryRequest{Title: "Day 1", Content: "Sunny"})

	suite.Require().NoError(err)
	suite.Require().NotNil(entry)
	suite.Equal("Day 1", entry.Title)
	suite.Equal("Sunny", entry.Content)
	suite.Equal(entry.CreatedAt, entry.UpdatedAt)
	suite.mockEntryRepo.AssertExpectations(suite.T())
}

func (suite *EntryServiceTestSuite) TestCreateEntry_TrimsInput() {
	ctx := context.Background()
	expected := &domain.Entry{ID: 2, Title: "Day 2", Content: "Rainy"}

	// The repository must receive trimmed values
	suite.mockEntryRepo.On("CreateEntry", ctx, "Day 2", "Rainy").Return(expected, nil).Once()

	entry, err := suite.service.CreateEntry(ctx, dto.CreateEntryRequest{Title: "  Day 2  ", Content: "\tRainy\n"})

	suite.Require().NoError(err)
	suite.Equal("Day 2", entry.Title)
	suite.mockEntryRepo.AssertExpectations(suite.T())
}

func (suite *EntryServiceTestSuite) TestCreateEntry_EmptyTitle() {
	ctx := context.Background()

	entry, err := suite.service.CreateEntry(ctx, dto.CreateEntryRequest{Title: "", Content: "x"})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(entry)
	suite.mockEntryRepo.AssertNotCalled(suite.T(), "CreateEntry", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *EntryServiceTestSuite) TestCreateEntry_EmptyContent() {
	ctx := context.Background()

	entry, err := suite.service.CreateEntry(ctx, dto.CreateEntryRequest{Title: "x", Content: ""})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(entry)
	suite.mockEntryRepo.AssertNotCalled(suite.T(), "CreateEntry", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *EntryServiceTestSuite) TestCreateEntry_BlankAfterTrim() {
	ctx := context.Background()

	entry, err := suite.service.CreateEntry(ctx, dto.CreateEntryRequest{Title: "   ", Content: "\n\t "})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(entry)
	suite.mockEntryRepo.AssertNotCalled(suite.T(), "CreateEntry", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *EntryServiceTestSuite) TestCreateEntry_TitleTooLong() {
	ctx := context.Background()
	longTitle := strings.Repeat("a", 256)

	entry, err := suite.service.CreateEntry(ctx, dto.CreateEntryRequest{Title: longTitle, Content: "x"})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(entry)
	suite.mockEntryRepo.AssertNotCalled(suite.T(), "CreateEntry", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *EntryServiceTestSuite) TestCreateEntry_TitleAtLimit() {
	ctx := context.Background()
	title := strings.Repeat("a", 255)
	expected := &domain.Entry{ID: 3, Title: title, Content: "x"}

	suite.mockEntryRepo.On("CreateEntry", ctx, title, "x").Return(expected, nil).Once()

	entry, err := suite.service.CreateEntry(ctx, dto.CreateEntryRequest{Title: title, Content: "x"})

	suite.Require().NoError(err)
	suite.Equal(title, entry.Title)
	suite.mockEntryRepo.AssertExpectations(suite.T())
}

func (suite *EntryServiceTestSuite) TestCreateEntry_RepoError() {
	ctx := context.Background()
	expectedErr := assert.AnError

	suite.mockEntryRepo.On("CreateEntry", ctx, "Day 1", "Sunny").Return(nil, expectedErr).Once()

	entry, err := suite.service.CreateEntry(ctx, dto.CreateEntryRequest{Title: "Day 1", Content: "Sunny"})

	suite.Require().Error(err)
	suite.Nil(entry)
	suite.ErrorIs(err, expectedErr)
	suite.mockEntryRepo.AssertExpectations(suite.T())
}

// --- GetEntryByID Tests ---

func (suite *EntryServiceTestSuite) TestGetEntryByID_Success() {
	ctx := context.Background()
	expected := &domain.Entry{ID: 42, Title: "Found", Content: "Entry"}

	suite.mockEntryRepo.On("FindEntryByID", ctx, int64(42)).Return(expected, nil).Once()

	entry, err := suite.service.GetEntryByID(ctx, 42)

	suite.Require().NoError(err)
	suite.Equal(expected, entry)
	suite.mockEntryRepo.AssertExpectations(suite.T())
}

func (suite *EntryServiceTestSuite) TestGetEntryByID_NotFound() {
	ctx := context.Background()

	suite.mockEntryRepo.On("FindEntryByID", ctx, int64(99)).Return(nil, apperrors.ErrNotFound).Once()

	entry, err := suite.service.GetEntryByID(ctx, 99)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(entry)
	suite.mockEntryRepo.AssertExpectations(suite.T())
}

// --- ListEntries Tests ---

func (suite *EntryServiceTestSuite) TestListEntries_OrderPassthrough() {
	ctx := context.Background()
	base := time.Now()
	// Repository returns most recent first; the service must not reorder
	expected := []domain.Entry{
		{ID: 3, Title: "C", CreatedAt: base.Add(3 * time.Second)},
		{ID: 2, Title: "B", CreatedAt: base.Add(2 * time.Second)},
		{ID: 1, Title: "A", CreatedAt: base.Add(1 * time.Second)},
	}

	suite.mockEntryRepo.On("FindEntries", ctx).Return(expected, nil).Once()

	entries, err := suite.service.ListEntries(ctx)

	suite.Require().NoError(err)
	suite.Equal(expected, entries)
	suite.mockEntryRepo.AssertExpectations(suite.T())
}

func (suite *EntryServiceTestSuite) TestListEntries_Empty() {
	ctx := context.Background()

	suite.mockEntryRepo.On("FindEntries", ctx).Return([]domain.Entry{}, nil).Once()

	entries, err := suite.service.ListEntries(ctx)

	suite.Require().NoError(err)
	suite.Empty(entries)
	suite.NotNil(entries)
	suite.mockEntryRepo.AssertExpectations(suite.T())
}

// --- UpdateEntry Tests ---

func (suite *EntryServiceTestSuite) TestUpdateEntry_Success() {
	ctx := context.Background()
	created := time.Now().Add(-time.Hour)
	expected := &domain.Entry{
		ID:        1,
		Title:     "Day 1",
		Content:   "Rainy",
		CreatedAt: created,
		UpdatedAt: time.Now(),
	}

	suite.mockEntryRepo.On("UpdateEntry", ctx, int64(1), "Day 1", "Rainy").Return(expected, nil).Once()

	entry, err := suite.service.UpdateEntry(ctx, 1, dto.UpdateEntryRequest{Title: "Day 1", Content: "Rainy"})

	suite.Require().NoError(err)
	suite.Equal("Rainy", entry.Content)
	suite.Equal(created, entry.CreatedAt)
	suite.True(entry.UpdatedAt.After(entry.CreatedAt))
	suite.mockEntryRepo.AssertExpectations(suite.T())
}

func (suite *EntryServiceTestSuite) TestUpdateEntry_NotFound() {
	ctx := context.Background()

	suite.mockEntryRepo.On("UpdateEntry", ctx, int64(99), "x", "y").Return(nil, apperrors.ErrNotFound).Once()

	entry, err := suite.service.UpdateEntry(ctx, 99, dto.UpdateEntryRequest{Title: "x", Content: "y"})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(entry)
	suite.mockEntryRepo.AssertExpectations(suite.T())
}

func (suite *EntryServiceTestSuite) TestUpdateEntry_EmptyContent() {
	ctx := context.Background()

	entry, err := suite.service.UpdateEntry(ctx, 1, dto.UpdateEntryRequest{Title: "x", Content: "  "})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(entry)
	suite.mockEntryRepo.AssertNotCalled(suite.T(), "UpdateEntry", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// --- DeleteEntry Tests ---

func (suite *EntryServiceTestSuite) TestDeleteEntry_Success() {
	ctx := context.Background()

	suite.mockEntryRepo.On("DeleteEntry", ctx, int64(1)).Return(nil).Once()

	err := suite.service.DeleteEntry(ctx, 1)

	suite.Require().NoError(err)
	suite.mockEntryRepo.AssertExpectations(suite.T())
}

func (suite *EntryServiceTestSuite) TestDeleteEntry_RepeatedDeleteIsNotFound() {
	ctx := context.Background()

	suite.mockEntryRepo.On("DeleteEntry", ctx, int64(1)).Return(nil).Once()
	suite.mockEntryRepo.On("DeleteEntry", ctx, int64(1)).Return(apperrors.ErrNotFound).Once()

	suite.Require().NoError(suite.service.DeleteEntry(ctx, 1))

	err := suite.service.DeleteEntry(ctx, 1)
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockEntryRepo.AssertExpectations(suite.T())
}

func TestEntryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(EntryServiceTestSuite))
}
