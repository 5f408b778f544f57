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

// GetProjects returns all projects, optionally filtered by ?status= or
// ?location= (substring match).
func GetProjects(c *gin.Context) {
	svc := services.NewProjectService(config.DB)

	var (
		projects []models.Project
		err      error
	)

	switch {
	case c.Query("status") != "":
		projects, err = svc.GetByStatus(c.Query("status"))
	case c.Query("location") != "":
		projects, err = svc.GetByLocation(c.Query("location"))
	default:
		projects, err = svc.GetAll()
	}

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch projects"})
		return
	}

	c.JSON(http.StatusOK, projects)
}

// GetProject returns one project by id
func GetProject(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	project, err := services.NewProjectService(config.DB).GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch project"})
		return
	}

	c.JSON(http.StatusOK, project)
}

// GetProjectTotalValue returns the summed post-renewal estimated value of
// the project's valuations.
func GetProjectTotalValue(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	svc := services.NewProjectService(config.DB)

	if _, err := svc.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch project"})
		return
	}

	total, err := svc.TotalValue(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute total value"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"project_id": id, "total_value": total})
}

// GetProjectTenders returns the tenders of one project, flattened.
func GetProjectTenders(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	tenders, err := services.NewTenderService(config.DB).GetByProject(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch tenders"})
		return
	}

	c.JSON(http.StatusOK, toTenderResponses(tenders))
}

// GetProjectDocuments returns the documents of one project.
func GetProjectDocuments(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	documents, err := services.NewDocumentService(config.DB).GetByProject(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch documents"})
		return
	}

	c.JSON(http.StatusOK, documents)
}

// GetProjectValuations returns the valuations of one project.
func GetProjectValuations(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	valuations, err := services.NewValuationService(config.DB).GetByProject(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch valuations"})
		return
	}

	c.JSON(http.StatusOK, valuations)
}

// CreateProject creates a new project
func CreateProject(c *gin.Context) {
	var project models.Project
	if err := c.ShouldBindJSON(&project); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if project.ProjectName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Project name is required"})
		return
	}

	if err := services.NewProjectService(config.DB).Create(&project); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create project"})
		return
	}

	c.JSON(http.StatusCreated, project)
}

// UpdateProject replaces a project. The path id must match the body id.
func UpdateProject(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var project models.Project
	if err := c.ShouldBindJSON(&project); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if project.ProjectID != 0 && project.ProjectID != id {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Path id does not match body id"})
		return
	}
	project.ProjectID = id

	if err := services.NewProjectService(config.DB).Update(&project); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update project"})
		return
	}

	c.JSON(http.StatusOK, project)
}

// DeleteProject removes a project and everything it owns
func DeleteProject(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	found, err := services.NewProjectService(config.DB).Delete(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete project"})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}

	c.Status(http.StatusNoContent)
}
