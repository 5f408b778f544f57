package controllers

import (
	"errors"
	"net/http"
	"strings"

	"urban-renewal-api/config"
	"urban-renewal-api/models"
	"urban-renewal-api/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetCustomers returns all customers, optionally filtered by ?type=
func GetCustomers(c *gin.Context) {
	svc := services.NewCustomerService(config.DB)

	var (
		customers []models.Customer
		err       error
	)

	if customerType := c.Query("type"); customerType != "" {
		customers, err = svc.GetByType(customerType)
	} else {
		customers, err = svc.GetAll()
	}

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch customers"})
		return
	}

	c.JSON(http.StatusOK, customers)
}

// GetCustomer returns one customer by id
func GetCustomer(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	customer, err := services.NewCustomerService(config.DB).GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch customer"})
		return
	}

	c.JSON(http.StatusOK, customer)
}

// GetCustomerProjects lists the projects a customer is a stakeholder in
func GetCustomerProjects(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	projects, err := services.NewCustomerService(config.DB).GetProjects(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch projects"})
		return
	}

	c.JSON(http.StatusOK, projects)
}

// CreateCustomer creates a new customer
func CreateCustomer(c *gin.Context) {
	var customer models.Customer
	if err := c.ShouldBindJSON(&customer); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if strings.TrimSpace(customer.FirstName) == "" || strings.TrimSpace(customer.LastName) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "First and last name are required"})
		return
	}

	if err := services.NewCustomerService(config.DB).Create(&customer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create customer"})
		return
	}

	c.JSON(http.StatusCreated, customer)
}

// UpdateCustomer replaces a customer. The path id must match the body id.
func UpdateCustomer(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var customer models.Customer
	if err := c.ShouldBindJSON(&customer); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if customer.CustomerID != 0 && customer.CustomerID != id {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Path id does not match body id"})
		return
	}
	customer.CustomerID = id

	if err := services.NewCustomerService(config.DB).Update(&customer); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update customer"})
		return
	}

	c.JSON(http.StatusOK, customer)
}

// DeleteCustomer removes a customer and its project links
func DeleteCustomer(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	found, err := services.NewCustomerService(config.DB).Delete(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete customer"})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
		return
	}

	c.Status(http.StatusNoContent)
}

// AddCustomerToProject links a customer to a project (idempotent)
func AddCustomerToProject(c *gin.Context) {
	customerID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	projectID, ok := parseIDParam(c, "projectId")
	if !ok {
		return
	}

	if err := services.NewCustomerService(config.DB).AddToProject(customerID, projectID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// RemoveCustomerFromProject unlinks a customer from a project
func RemoveCustomerFromProject(c *gin.Context) {
	customerID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	projectID, ok := parseIDParam(c, "projectId")
	if !ok {
		return
	}

	if err := services.NewCustomerService(config.DB).RemoveFromProject(customerID, projectID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
