package services

import (
	"errors"
	"fmt"
	"time"

	"urban-renewal-api/models"

	"gorm.io/gorm"
)

type CustomerService struct {
	db *gorm.DB
}

func NewCustomerService(db *gorm.DB) *CustomerService {
	return &CustomerService{db: db}
}

func (s *CustomerService) GetAll() ([]models.Customer, error) {
	var customers []models.Customer
	if err := s.db.Find(&customers).Error; err != nil {
		return nil, err
	}
	return customers, nil
}

func (s *CustomerService) GetByID(id uint) (*models.Customer, error) {
	var customer models.Customer
	if err := s.db.First(&customer, id).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

func (s *CustomerService) GetByType(customerType string) ([]models.Customer, error) {
	var customers []models.Customer
	if err := s.db.Where("customer_type = ?", customerType).Find(&customers).Error; err != nil {
		return nil, err
	}
	return customers, nil
}

// GetProjects returns the projects the customer is a stakeholder in.
func (s *CustomerService) GetProjects(customerID uint) ([]models.Project, error) {
	var customer models.Customer
	if err := s.db.First(&customer, customerID).Error; err != nil {
		return nil, err
	}

	var projects []models.Project
	if err := s.db.Model(&customer).Association("Projects").Find(&projects); err != nil {
		return nil, err
	}
	return projects, nil
}

func (s *CustomerService) Create(customer *models.Customer) error {
	customer.CreatedAt = time.Now()
	customer.UpdatedAt = nil
	return s.db.Create(customer).Error
}

func (s *CustomerService) Update(customer *models.Customer) error {
	var existing models.Customer
	if err := s.db.First(&existing, customer.CustomerID).Error; err != nil {
		return err
	}

	now := time.Now()
	customer.CreatedAt = existing.CreatedAt
	customer.UpdatedAt = &now

	if err := s.db.Save(customer).Error; err != nil {
		var check models.Customer
		if checkErr := s.db.First(&check, customer.CustomerID).Error; errors.Is(checkErr, gorm.ErrRecordNotFound) {
			return gorm.ErrRecordNotFound
		}
		return err
	}
	return nil
}

func (s *CustomerService) Delete(id uint) (bool, error) {
	res := s.db.Select("Projects").Delete(&models.Customer{CustomerID: id})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// AddToProject links a customer to a project as a stakeholder. Linking an
// already linked pair is a no-op; a missing customer or project is an
// argument error.
func (s *CustomerService) AddToProject(customerID, projectID uint) error {
	var customer models.Customer
	if err := s.db.First(&customer, customerID).Error; err != nil {
		return fmt.Errorf("customer %d does not exist", customerID)
	}

	var project models.Project
	if err := s.db.First(&project, projectID).Error; err != nil {
		return fmt.Errorf("project %d does not exist", projectID)
	}

	// Association append upserts the join row, so a duplicate link never
	// produces a second row.
	return s.db.Model(&customer).Association("Projects").Append(&project)
}

// RemoveFromProject unlinks a customer from a project. Removing a pair that
// was never linked is a no-op.
func (s *CustomerService) RemoveFromProject(customerID, projectID uint) error {
	var customer models.Customer
	if err := s.db.First(&customer, customerID).Error; err != nil {
		return fmt.Errorf("customer %d does not exist", customerID)
	}

	var project models.Project
	if err := s.db.First(&project, projectID).Error; err != nil {
		return fmt.Errorf("project %d does not exist", projectID)
	}

	return s.db.Model(&customer).Association("Projects").Delete(&project)
}
