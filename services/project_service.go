package services

import (
	"errors"
	"time"

	"urban-renewal-api/models"

	"gorm.io/gorm"
)

type ProjectService struct {
	db *gorm.DB
}

func NewProjectService(db *gorm.DB) *ProjectService {
	return &ProjectService{db: db}
}

func (s *ProjectService) GetAll() ([]models.Project, error) {
	var projects []models.Project
	if err := s.db.Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

func (s *ProjectService) GetByID(id uint) (*models.Project, error) {
	var project models.Project
	if err := s.db.First(&project, id).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

func (s *ProjectService) GetByStatus(status string) ([]models.Project, error) {
	var projects []models.Project
	if err := s.db.Where("status = ?", status).Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// GetByLocation matches the free-text location and the structured city field
// with a case-insensitive substring search.
func (s *ProjectService) GetByLocation(location string) ([]models.Project, error) {
	var projects []models.Project
	pattern := "%" + location + "%"
	err := s.db.Where("location LIKE ? OR city LIKE ?", pattern, pattern).Find(&projects).Error
	if err != nil {
		return nil, err
	}
	return projects, nil
}

func (s *ProjectService) Create(project *models.Project) error {
	if project.Status == "" {
		project.Status = models.ProjectStatusPlanning
	}
	project.CreatedAt = time.Now()
	project.UpdatedAt = nil
	return s.db.Create(project).Error
}

func (s *ProjectService) Update(project *models.Project) error {
	var existing models.Project
	if err := s.db.First(&existing, project.ProjectID).Error; err != nil {
		return err
	}

	now := time.Now()
	project.CreatedAt = existing.CreatedAt
	project.UpdatedAt = &now

	if err := s.db.Save(project).Error; err != nil {
		var check models.Project
		if checkErr := s.db.First(&check, project.ProjectID).Error; errors.Is(checkErr, gorm.ErrRecordNotFound) {
			return gorm.ErrRecordNotFound
		}
		return err
	}
	return nil
}

// Delete removes a project; owned documents, tenders and valuations go with
// it through the cascade constraints. Missing rows are a negative result.
func (s *ProjectService) Delete(id uint) (bool, error) {
	res := s.db.Select("Documents", "Tenders", "Valuations", "Customers").Delete(&models.Project{ProjectID: id})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// TotalValue sums post_renewal_estimated_value across the project's
// valuations; a project without valuations totals zero.
func (s *ProjectService) TotalValue(projectID uint) (float64, error) {
	var total float64
	err := s.db.Model(&models.PropertyValuation{}).
		Where("project_id = ?", projectID).
		Select("COALESCE(SUM(post_renewal_estimated_value), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}
