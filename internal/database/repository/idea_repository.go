package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/bancoideias/backend-go/internal/database/models"
)

// IdeaRepository defines the interface for idea data operations
type IdeaRepository interface {
	Create(idea *models.Idea) error
	FindAll() ([]models.Idea, error)
	FindByID(id uint) (*models.Idea, error)
	Update(idea *models.Idea) error
	Delete(id uint) error
}

type ideaRepository struct {
	db *gorm.DB
}

// NewIdeaRepository creates a new idea repository instance
func NewIdeaRepository(db *gorm.DB) IdeaRepository {
	return &ideaRepository{db: db}
}

func (r *ideaRepository) Create(idea *models.Idea) error {
	return r.db.Create(idea).Error
}

func (r *ideaRepository) FindAll() ([]models.Idea, error) {
	var ideas []models.Idea
	if err := r.db.Find(&ideas).Error; err != nil {
		return nil, err
	}
	return ideas, nil
}

func (r *ideaRepository) FindByID(id uint) (*models.Idea, error) {
	var idea models.Idea
	err := r.db.First(&idea, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrIdeaNotFound
		}
		return nil, err
	}
	return &idea, nil
}

// Update overwrites every column of the row. Zero rows affected means the
// id does not exist.
func (r *ideaRepository) Update(idea *models.Idea) error {
	result := r.db.Model(&models.Idea{}).Where("id = ?", idea.ID).
		Select("*").Omit("id").Updates(idea)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrIdeaNotFound
	}
	return nil
}

func (r *ideaRepository) Delete(id uint) error {
	result := r.db.Delete(&models.Idea{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrIdeaNotFound
	}
	return nil
}

// Repository errors
var (
	ErrIdeaNotFound = errors.New("idea not found")
)
