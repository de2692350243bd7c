package service

import (
	"errors"
	"log/slog"
	"time"

	"github.com/bancoideias/backend-go/internal/database/models"
	"github.com/bancoideias/backend-go/internal/database/repository"
)

// DateLayout is the canonical persisted form of an idea's scheduled date.
const DateLayout = "2006-01-02 15:04:05"

// Accepted input layouts, tried in order. RFC3339 inputs are converted to
// server local time before formatting.
var inputLayouts = []string{
	time.RFC3339,
	DateLayout,
	"2006-01-02",
}

// IdeaService defines the interface for idea business logic
type IdeaService interface {
	Create(idea *models.Idea) (uint, error)
	List() ([]models.Idea, error)
	GetByID(id uint) (*models.Idea, error)
	Update(id uint, idea *models.Idea) error
	Delete(id uint) error
}

type ideaService struct {
	ideaRepo repository.IdeaRepository
	logger   *slog.Logger
}

// NewIdeaService creates a new idea service instance
func NewIdeaService(ideaRepo repository.IdeaRepository, logger *slog.Logger) IdeaService {
	return &ideaService{
		ideaRepo: ideaRepo,
		logger:   logger,
	}
}

// NormalizeDate parses any accepted date format and renders the canonical
// persisted form in server local time.
func NormalizeDate(raw string) (string, error) {
	for _, layout := range inputLayouts {
		if t, err := time.ParseInLocation(layout, raw, time.Local); err == nil {
			return t.Local().Format(DateLayout), nil
		}
	}
	return "", ErrInvalidDate
}

func (s *ideaService) Create(idea *models.Idea) (uint, error) {
	normalized, err := NormalizeDate(idea.Data)
	if err != nil {
		s.logger.Warn("⚠️ [IdeaService] Unparseable date", "data", idea.Data)
		return 0, err
	}
	idea.Data = normalized

	if err := s.ideaRepo.Create(idea); err != nil {
		s.logger.Error("❌ [IdeaService] Failed to create idea", "error", err)
		return 0, err
	}

	s.logger.Info("✅ [IdeaService] Idea created", "idea_id", idea.ID)
	return idea.ID, nil
}

func (s *ideaService) List() ([]models.Idea, error) {
	ideas, err := s.ideaRepo.FindAll()
	if err != nil {
		s.logger.Error("❌ [IdeaService] Failed to list ideas", "error", err)
		return nil, err
	}
	return ideas, nil
}

func (s *ideaService) GetByID(id uint) (*models.Idea, error) {
	idea, err := s.ideaRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrIdeaNotFound) {
			return nil, repository.ErrIdeaNotFound
		}
		s.logger.Error("❌ [IdeaService] Failed to fetch idea", "error", err, "idea_id", id)
		return nil, err
	}
	return idea, nil
}

// Update is a full replace of every column, not a partial patch.
func (s *ideaService) Update(id uint, idea *models.Idea) error {
	normalized, err := NormalizeDate(idea.Data)
	if err != nil {
		s.logger.Warn("⚠️ [IdeaService] Unparseable date", "data", idea.Data)
		return err
	}
	idea.Data = normalized
	idea.ID = id

	if err := s.ideaRepo.Update(idea); err != nil {
		if errors.Is(err, repository.ErrIdeaNotFound) {
			return repository.ErrIdeaNotFound
		}
		s.logger.Error("❌ [IdeaService] Failed to update idea", "error", err, "idea_id", id)
		return err
	}

	s.logger.Info("✅ [IdeaService] Idea updated", "idea_id", id)
	return nil
}

func (s *ideaService) Delete(id uint) error {
	if err := s.ideaRepo.Delete(id); err != nil {
		if errors.Is(err, repository.ErrIdeaNotFound) {
			return repository.ErrIdeaNotFound
		}
		s.logger.Error("❌ [IdeaService] Failed to delete idea", "error", err, "idea_id", id)
		return err
	}

	s.logger.Info("✅ [IdeaService] Idea deleted", "idea_id", id)
	return nil
}

// Service errors
var (
	ErrInvalidDate = errors.New("invalid date format")
)
