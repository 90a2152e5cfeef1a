package services

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/devanshg03/personal_journal_app/internal/apperrors"
	"github.com/devanshg03/personal_journal_app/internal/core/domain"
	portsrepo "github.com/devanshg03/personal_journal_app/internal/core/ports/repositories"
	"github.com/devanshg03/personal_journal_app/internal/dto"
)

// maxTitleLength matches the VARCHAR(255) bound on journal_entries.title.
// Over-long titles are rejected rather than truncated.
const maxTitleLength = 255

type entryService struct {
	entryRepo portsrepo.EntryRepositoryFacade
}

func NewEntryService(entryRepo portsrepo.EntryRepositoryFacade) *entryService {
	return &entryService{entryRepo: entryRepo}
}

// validateEntryInput trims both fields and enforces the non-blank and
// title-length rules shared by create and update.
func validateEntryInput(title, content string) (string, string, error) {
	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)

	if title == "" || content == "" {
		return "", "", fmt.Errorf("%w: title and content are required", apperrors.ErrValidation)
	}
	if utf8.RuneCountInString(title) > maxTitleLength {
		return "", "", fmt.Errorf("%w: title must be at most %d characters", apperrors.ErrValidation, maxTitleLength)
	}
	return title, content, nil
}

func (s *entryService) CreateEntry(ctx context.Context, req dto.CreateEntryRequest) (*domain.Entry, error) {
	title, content, err := validateEntryInput(req.Title, req.Content)
	if err != nil {
		return nil, err
	}

	entry, err := s.entryRepo.CreateEntry(ctx, title, content)
	if err != nil {
		return nil, fmt.Errorf("failed to create entry in service: %w", err)
	}
	return entry, nil
}

func (s *entryService) GetEntryByID(ctx context.Context, entryID int64) (*domain.Entry, error) {
	entry, err := s.entryRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *entryService) ListEntries(ctx context.Context) ([]domain.Entry, error) {
	entries, err := s.entryRepo.FindEntries(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list entries in service: %w", err)
	}
	return entries, nil
}

func (s *entryService) UpdateEntry(ctx context.Context, entryID int64, req dto.UpdateEntryRequest) (*domain.Entry, error) {
	title, content, err := validateEntryInput(req.Title, req.Content)
	if err != nil {
		return nil, err
	}

	entry, err := s.entryRepo.UpdateEntry(ctx, entryID, title, content)
	if err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *entryService) DeleteEntry(ctx context.Context, entryID int64) error {
	return s.entryRepo.DeleteEntry(ctx, entryID)
}
