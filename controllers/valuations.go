package controllers

import (
	"errors"
	"net/http"

	"urban-renewal-api/config"
	"urban-renewal-api/models"
	"urban-renewal-api/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetValuations returns all property valuations
func GetValuations(c *gin.Context) {
	valuations, err := services.NewValuationService(config.DB).GetAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch valuations"})
		return
	}

	c.JSON(http.StatusOK, valuations)
}

// GetValuation returns one valuation by id
func GetValuation(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	valuation, err := services.NewValuationService(config.DB).GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Valuation not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch valuation"})
		return
	}

	c.JSON(http.StatusOK, valuation)
}

// GetProjectAverageValuation returns the mean market value for a project
func GetProjectAverageValuation(c *gin.Context) {
	projectID, ok := parseIDParam(c, "projectId")
	if !ok {
		return
	}

	average, err := services.NewValuationService(config.DB).AverageValuation(projectID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute average"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"project_id": projectID, "average_valuation": average})
}

// GetProjectGrowthPercentage returns the projected value growth for a project
func GetProjectGrowthPercentage(c *gin.Context) {
	projectID, ok := parseIDParam(c, "projectId")
	if !ok {
		return
	}

	growth, err := services.NewValuationService(config.DB).GrowthPercentage(projectID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute growth"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"project_id": projectID, "growth_percentage": growth})
}

// CreateValuation creates a new property valuation under a project
func CreateValuation(c *gin.Context) {
	var valuation models.PropertyValuation
	if err := c.ShouldBindJSON(&valuation); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if valuation.PropertyAddress == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Property address is required"})
		return
	}
	if valuation.ValuationDate.IsZero() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Valuation date is required"})
		return
	}
	if valuation.ProjectID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Project id is required"})
		return
	}

	var project models.Project
	if err := config.DB.First(&project, valuation.ProjectID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Project does not exist"})
		return
	}

	if err := services.NewValuationService(config.DB).Create(&valuation); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create valuation"})
		return
	}

	c.JSON(http.StatusCreated, valuation)
}

// UpdateValuation replaces a valuation. The path id must match the body id.
func UpdateValuation(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var valuation models.PropertyValuation
	if err := c.ShouldBindJSON(&valuation); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if valuation.ValuationID != 0 && valuation.ValuationID != id {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Path id does not match body id"})
		return
	}
	valuation.ValuationID = id

	if err := services.NewValuationService(config.DB).Update(&valuation); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Valuation not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update valuation"})
		return
	}

	c.JSON(http.StatusOK, valuation)
}

// DeleteValuation removes a valuation
func DeleteValuation(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	found, err := services.NewValuationService(config.DB).Delete(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete valuation"})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Valuation not found"})
		return
	}

	c.Status(http.StatusNoContent)
}
