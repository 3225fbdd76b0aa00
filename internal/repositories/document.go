package repositories

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"alfredoptarigan/cv-agent/internal/models"
)

type DocumentRepository interface {
	UpsertCV(doc *models.CVDocument) error
	FindCV(filename string) (*models.CVDocument, error)
	CreateTailored(doc *models.TailoredDocument) error
	FindTailored(filename string) (*models.TailoredDocument, error)
	ListTailored(limit int) ([]models.TailoredDocument, error)
	FindTailoredOlderThan(cutoff time.Time, limit int) ([]models.TailoredDocument, error)
	DeleteTailored(id uuid.UUID) error
}

type documentRepository struct {
	db *gorm.DB
}

func NewDocumentRepository(db *gorm.DB) DocumentRepository {
	return &documentRepository{db: db}
}

// UpsertCV implements DocumentRepository. Re-uploads under the same name
// replace the previous row, mirroring the file overwrite on disk.
func (d *documentRepository) UpsertCV(doc *models.CVDocument) error {
	err := d.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "filename"}},
		DoUpdates: clause.AssignmentColumns([]string{"size_bytes", "content_type", "updated_at"}),
	}).Create(doc).Error
	if err != nil {
		return fmt.Errorf("failed to upsert cv document: %w", err)
	}

	return nil
}

// FindCV implements DocumentRepository.
func (d *documentRepository) FindCV(filename string) (*models.CVDocument, error) {
	var doc models.CVDocument
	if err := d.db.Where("filename = ?", filename).First(&doc).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("cv document not found: %w", err)
		}

		return nil, fmt.Errorf("failed to find cv document: %w", err)
	}

	return &doc, nil
}

// CreateTailored implements DocumentRepository.
func (d *documentRepository) CreateTailored(doc *models.TailoredDocument) error {
	if doc.ID == uuid.Nil {
		doc.ID = uuid.New()
	}

	if err := d.db.Create(doc).Error; err != nil {
		return fmt.Errorf("failed to create tailored document: %w", err)
	}

	return nil
}

// FindTailored implements DocumentRepository.
func (d *documentRepository) FindTailored(filename string) (*models.TailoredDocument, error) {
	var doc models.TailoredDocument
	if err := d.db.Where("filename = ?", filename).First(&doc).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("tailored document not found: %w", err)
		}

		return nil, fmt.Errorf("failed to find tailored document: %w", err)
	}

	return &doc, nil
}

// ListTailored implements DocumentRepository.
func (d *documentRepository) ListTailored(limit int) ([]models.TailoredDocument, error) {
	var docs []models.TailoredDocument
	err := d.db.
		Order("created_at DESC").
		Limit(limit).
		Find(&docs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list tailored documents: %w", err)
	}

	return docs, nil
}

// FindTailoredOlderThan implements DocumentRepository.
func (d *documentRepository) FindTailoredOlderThan(cutoff time.Time, limit int) ([]models.TailoredDocument, error) {
	var docs []models.TailoredDocument
	err := d.db.
		Where("created_at < ?", cutoff).
		Order("created_at ASC").
		Limit(limit).
		Find(&docs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find expired tailored documents: %w", err)
	}

	return docs, nil
}

// DeleteTailored implements DocumentRepository.
func (d *documentRepository) DeleteTailored(id uuid.UUID) error {
	result := d.db.Where("id = ?", id).Delete(&models.TailoredDocument{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete tailored document: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("tailored document not found")
	}

	return nil
}
