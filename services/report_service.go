package services

import (
	"errors"
	"time"

	"urban-renewal-api/models"
	"urban-renewal-api/utils"

	"gorm.io/gorm"
)

type ReportService struct {
	db *gorm.DB
}

func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{db: db}
}

func (s *ReportService) GetAll() ([]models.Report, error) {
	var reports []models.Report
	if err := s.db.Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}

func (s *ReportService) GetByID(id uint) (*models.Report, error) {
	var report models.Report
	if err := s.db.First(&report, id).Error; err != nil {
		return nil, err
	}
	return &report, nil
}

func (s *ReportService) GetByStatus(status string) ([]models.Report, error) {
	var reports []models.Report
	if err := s.db.Where("status = ?", status).Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}

func (s *ReportService) GetByType(reportType string) ([]models.Report, error) {
	var reports []models.Report
	if err := s.db.Where("report_type = ?", reportType).Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}

func (s *ReportService) GetByProject(projectID uint) ([]models.Report, error) {
	var reports []models.Report
	if err := s.db.Where("project_id = ?", projectID).Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}

func (s *ReportService) Create(report *models.Report) error {
	if report.Status == "" {
		report.Status = models.ReportStatusDraft
	}
	report.CreatedAt = time.Now()
	report.UpdatedAt = nil
	return s.db.Create(report).Error
}

func (s *ReportService) Update(report *models.Report) error {
	var existing models.Report
	if err := s.db.First(&existing, report.ReportID).Error; err != nil {
		return err
	}

	now := time.Now()
	report.CreatedAt = existing.CreatedAt
	report.CreatedBy = existing.CreatedBy
	report.UpdatedAt = &now

	// Attachment fields only change through a new upload.
	report.FilePath = existing.FilePath
	report.FileType = existing.FileType
	report.FileSize = existing.FileSize

	if err := s.db.Save(report).Error; err != nil {
		var check models.Report
		if checkErr := s.db.First(&check, report.ReportID).Error; errors.Is(checkErr, gorm.ErrRecordNotFound) {
			return gorm.ErrRecordNotFound
		}
		return err
	}
	return nil
}

// Delete removes the row and any attached file, best effort.
func (s *ReportService) Delete(id uint) (bool, error) {
	var report models.Report
	if err := s.db.First(&report, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}

	if err := s.db.Delete(&models.Report{}, id).Error; err != nil {
		return false, err
	}

	if report.FilePath != nil {
		utils.RemoveStoredFile(*report.FilePath)
	}
	return true, nil
}
