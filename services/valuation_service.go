package services

import (
	"errors"
	"time"

	"urban-renewal-api/models"

	"gorm.io/gorm"
)

type ValuationService struct {
	db *gorm.DB
}

func NewValuationService(db *gorm.DB) *ValuationService {
	return &ValuationService{db: db}
}

func (s *ValuationService) GetAll() ([]models.PropertyValuation, error) {
	var valuations []models.PropertyValuation
	if err := s.db.Find(&valuations).Error; err != nil {
		return nil, err
	}
	return valuations, nil
}

func (s *ValuationService) GetByID(id uint) (*models.PropertyValuation, error) {
	var valuation models.PropertyValuation
	if err := s.db.First(&valuation, id).Error; err != nil {
		return nil, err
	}
	return &valuation, nil
}

func (s *ValuationService) GetByProject(projectID uint) ([]models.PropertyValuation, error) {
	var valuations []models.PropertyValuation
	if err := s.db.Where("project_id = ?", projectID).Find(&valuations).Error; err != nil {
		return nil, err
	}
	return valuations, nil
}

func (s *ValuationService) Create(valuation *models.PropertyValuation) error {
	valuation.CreatedAt = time.Now()
	valuation.UpdatedAt = nil
	return s.db.Create(valuation).Error
}

func (s *ValuationService) Update(valuation *models.PropertyValuation) error {
	var existing models.PropertyValuation
	if err := s.db.First(&existing, valuation.ValuationID).Error; err != nil {
		return err
	}

	now := time.Now()
	valuation.CreatedAt = existing.CreatedAt
	valuation.UpdatedAt = &now

	if err := s.db.Save(valuation).Error; err != nil {
		var check models.PropertyValuation
		if checkErr := s.db.First(&check, valuation.ValuationID).Error; errors.Is(checkErr, gorm.ErrRecordNotFound) {
			return gorm.ErrRecordNotFound
		}
		return err
	}
	return nil
}

func (s *ValuationService) Delete(id uint) (bool, error) {
	res := s.db.Delete(&models.PropertyValuation{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// AverageValuation returns the mean market value across the project's
// valuations, zero when there are none.
func (s *ValuationService) AverageValuation(projectID uint) (float64, error) {
	var avg float64
	err := s.db.Model(&models.PropertyValuation{}).
		Where("project_id = ?", projectID).
		Select("COALESCE(AVG(market_value), 0)").
		Scan(&avg).Error
	if err != nil {
		return 0, err
	}
	return avg, nil
}

// GrowthPercentage computes (post-renewal sum - market sum) / market sum *
// 100 for the project. Defined as zero when the project has no valuations or
// the market sum is zero, so there is never a division by zero.
func (s *ValuationService) GrowthPercentage(projectID uint) (float64, error) {
	type sums struct {
		Market      float64
		PostRenewal float64
	}

	var result sums
	err := s.db.Model(&models.PropertyValuation{}).
		Where("project_id = ?", projectID).
		Select("COALESCE(SUM(market_value), 0) AS market, COALESCE(SUM(post_renewal_estimated_value), 0) AS post_renewal").
		Scan(&result).Error
	if err != nil {
		return 0, err
	}

	if result.Market == 0 {
		return 0, nil
	}
	return (result.PostRenewal - result.Market) / result.Market * 100, nil
}
