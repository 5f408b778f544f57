package services

import (
	"errors"
	"fmt"
	"time"

	"urban-renewal-api/models"

	"gorm.io/gorm"
)

var (
	// ErrInvalidTransition is returned when a tender status change is not
	// allowed by the lifecycle table.
	ErrInvalidTransition = errors.New("invalid tender status transition")

	// ErrDeadlineBeforeRelease is returned when a tender's submission
	// deadline precedes its release date.
	ErrDeadlineBeforeRelease = errors.New("submission deadline must not precede release date")
)

// tenderTransitions is the lifecycle table: Draft -> Published -> Closed or
// Awarded, with Cancelled reachable until a tender is resolved. Awarded,
// Closed and Cancelled are terminal.
var tenderTransitions = map[string][]string{
	models.TenderStatusDraft:     {models.TenderStatusPublished, models.TenderStatusCancelled},
	models.TenderStatusPublished: {models.TenderStatusClosed, models.TenderStatusAwarded, models.TenderStatusCancelled},
	models.TenderStatusClosed:    {},
	models.TenderStatusAwarded:   {},
	models.TenderStatusCancelled: {},
}

// CanTransitionTender reports whether a tender may move between the two
// statuses. Keeping the same status is always allowed.
func CanTransitionTender(from, to string) bool {
	if from == to {
		return true
	}
	for _, allowed := range tenderTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// IsValidTenderStatus reports whether the value is a known lifecycle status.
func IsValidTenderStatus(status string) bool {
	_, ok := tenderTransitions[status]
	return ok
}

type TenderService struct {
	db *gorm.DB
}

func NewTenderService(db *gorm.DB) *TenderService {
	return &TenderService{db: db}
}

// Create persists a new tender. Status defaults to Draft; the submission
// deadline must not precede the release date.
func (s *TenderService) Create(tender *models.Tender) error {
	if tender.Status == "" {
		tender.Status = models.TenderStatusDraft
	}
	if !IsValidTenderStatus(tender.Status) {
		return fmt.Errorf("unknown tender status %q", tender.Status)
	}
	if tender.SubmissionDeadline.Before(tender.ReleaseDate) {
		return ErrDeadlineBeforeRelease
	}

	tender.CreatedAt = time.Now()
	tender.UpdatedAt = nil
	return s.db.Create(tender).Error
}

// GetByID returns the tender with its parent project preloaded.
func (s *TenderService) GetByID(id uint) (*models.Tender, error) {
	var tender models.Tender
	if err := s.db.Preload("Project").First(&tender, id).Error; err != nil {
		return nil, err
	}
	return &tender, nil
}

// GetAll returns every tender with the parent project preloaded.
func (s *TenderService) GetAll() ([]models.Tender, error) {
	var tenders []models.Tender
	if err := s.db.Preload("Project").Find(&tenders).Error; err != nil {
		return nil, err
	}
	return tenders, nil
}

// GetByStatus returns tenders in the given lifecycle status.
func (s *TenderService) GetByStatus(status string) ([]models.Tender, error) {
	var tenders []models.Tender
	if err := s.db.Preload("Project").Where("status = ?", status).Find(&tenders).Error; err != nil {
		return nil, err
	}
	return tenders, nil
}

// GetByProject returns the tenders belonging to one project.
func (s *TenderService) GetByProject(projectID uint) ([]models.Tender, error) {
	var tenders []models.Tender
	if err := s.db.Preload("Project").Where("project_id = ?", projectID).Find(&tenders).Error; err != nil {
		return nil, err
	}
	return tenders, nil
}

// GetOpen returns published tenders whose submission deadline has not yet
// passed, soonest deadline first. Openness is a pure time filter; no stored
// transition moves a tender out of this set.
func (s *TenderService) GetOpen() ([]models.Tender, error) {
	var tenders []models.Tender
	err := s.db.Preload("Project").
		Where("status = ? AND submission_deadline > ?", models.TenderStatusPublished, time.Now()).
		Order("submission_deadline ASC").
		Find(&tenders).Error
	if err != nil {
		return nil, err
	}
	return tenders, nil
}

// GetClosingSoon returns published tenders whose deadline falls within the
// next daysToDeadline days. The window rolls with the clock.
func (s *TenderService) GetClosingSoon(daysToDeadline int) ([]models.Tender, error) {
	now := time.Now()
	cutoff := now.AddDate(0, 0, daysToDeadline)

	var tenders []models.Tender
	err := s.db.Preload("Project").
		Where("status = ? AND submission_deadline > ? AND submission_deadline <= ?",
			models.TenderStatusPublished, now, cutoff).
		Order("submission_deadline ASC").
		Find(&tenders).Error
	if err != nil {
		return nil, err
	}
	return tenders, nil
}

// Update replaces the mutable fields of an existing tender. The status change
// implied by the update must be allowed by the lifecycle table.
func (s *TenderService) Update(tender *models.Tender) error {
	var existing models.Tender
	if err := s.db.First(&existing, tender.TenderID).Error; err != nil {
		return err
	}

	if tender.Status == "" {
		tender.Status = existing.Status
	}
	if !IsValidTenderStatus(tender.Status) {
		return fmt.Errorf("unknown tender status %q", tender.Status)
	}
	if !CanTransitionTender(existing.Status, tender.Status) {
		return ErrInvalidTransition
	}
	if tender.SubmissionDeadline.Before(tender.ReleaseDate) {
		return ErrDeadlineBeforeRelease
	}

	now := time.Now()
	tender.CreatedAt = existing.CreatedAt
	tender.CreatedBy = existing.CreatedBy
	tender.UpdatedAt = &now

	if err := s.db.Save(tender).Error; err != nil {
		// A concurrent delete surfaces as a generic save error; re-check
		// existence so the caller can map it to not-found.
		var check models.Tender
		if checkErr := s.db.First(&check, tender.TenderID).Error; errors.Is(checkErr, gorm.ErrRecordNotFound) {
			return gorm.ErrRecordNotFound
		}
		return err
	}
	return nil
}

// Award marks a published tender as awarded to the given bidder. Tenders in
// any other status are rejected with ErrInvalidTransition; an unknown id
// returns gorm.ErrRecordNotFound and mutates nothing.
func (s *TenderService) Award(id uint, awardedTo string, awardedAmount *float64) (*models.Tender, error) {
	var tender models.Tender
	if err := s.db.First(&tender, id).Error; err != nil {
		return nil, err
	}

	if tender.Status != models.TenderStatusPublished {
		return nil, ErrInvalidTransition
	}

	now := time.Now()
	tender.Status = models.TenderStatusAwarded
	tender.AwardedTo = &awardedTo
	tender.AwardedAmount = awardedAmount
	tender.AwardedDate = &now
	tender.UpdatedAt = &now

	if err := s.db.Save(&tender).Error; err != nil {
		return nil, err
	}
	return &tender, nil
}

// Delete removes a tender. A missing row is a negative result, not an error.
func (s *TenderService) Delete(id uint) (bool, error) {
	res := s.db.Delete(&models.Tender{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
