package services

import (
	"errors"
	"time"

	"urban-renewal-api/models"
	"urban-renewal-api/utils"

	"gorm.io/gorm"
)

type DocumentService struct {
	db *gorm.DB
}

func NewDocumentService(db *gorm.DB) *DocumentService {
	return &DocumentService{db: db}
}

func (s *DocumentService) GetAll() ([]models.Document, error) {
	var documents []models.Document
	if err := s.db.Find(&documents).Error; err != nil {
		return nil, err
	}
	return documents, nil
}

func (s *DocumentService) GetByID(id uint) (*models.Document, error) {
	var document models.Document
	if err := s.db.First(&document, id).Error; err != nil {
		return nil, err
	}
	return &document, nil
}

func (s *DocumentService) GetByProject(projectID uint) ([]models.Document, error) {
	var documents []models.Document
	if err := s.db.Where("project_id = ?", projectID).Find(&documents).Error; err != nil {
		return nil, err
	}
	return documents, nil
}

func (s *DocumentService) GetByType(documentType string) ([]models.Document, error) {
	var documents []models.Document
	if err := s.db.Where("document_type = ?", documentType).Find(&documents).Error; err != nil {
		return nil, err
	}
	return documents, nil
}

// GetExpiring returns documents whose expiry date falls within the next
// daysAhead days. Documents without an expiry date never expire.
func (s *DocumentService) GetExpiring(daysAhead int) ([]models.Document, error) {
	now := time.Now()
	cutoff := now.AddDate(0, 0, daysAhead)

	var documents []models.Document
	err := s.db.Where("expiry_date IS NOT NULL AND expiry_date > ? AND expiry_date <= ?", now, cutoff).
		Order("expiry_date ASC").
		Find(&documents).Error
	if err != nil {
		return nil, err
	}
	return documents, nil
}

// Create persists the document row. The caller is responsible for having
// written the file to document.FilePath first; the row insert failing after
// the file write is compensated for at the handler level.
func (s *DocumentService) Create(document *models.Document) error {
	document.UploadDate = time.Now()
	return s.db.Create(document).Error
}

func (s *DocumentService) Update(document *models.Document) error {
	var existing models.Document
	if err := s.db.First(&existing, document.DocumentID).Error; err != nil {
		return err
	}

	// The stored file is immutable through update; only metadata changes.
	document.FilePath = existing.FilePath
	document.FileType = existing.FileType
	document.FileSize = existing.FileSize
	document.UploadDate = existing.UploadDate
	document.UploadedBy = existing.UploadedBy

	if err := s.db.Save(document).Error; err != nil {
		var check models.Document
		if checkErr := s.db.First(&check, document.DocumentID).Error; errors.Is(checkErr, gorm.ErrRecordNotFound) {
			return gorm.ErrRecordNotFound
		}
		return err
	}
	return nil
}

// Delete removes the row and then the stored file, best effort. A file that
// is already gone is not an error.
func (s *DocumentService) Delete(id uint) (bool, error) {
	var document models.Document
	if err := s.db.First(&document, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}

	if err := s.db.Delete(&models.Document{}, id).Error; err != nil {
		return false, err
	}

	utils.RemoveStoredFile(document.FilePath)
	return true, nil
}
