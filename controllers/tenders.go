package controllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"urban-renewal-api/config"
	"urban-renewal-api/models"
	"urban-renewal-api/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// TenderResponse flattens the circular tender <-> project graph into a
// projection carrying the project id and a denormalized project name. Raw
// entity graphs are never serialized.
type TenderResponse struct {
	models.Tender
	ProjectName string `json:"project_name"`
}

func toTenderResponse(tender models.Tender) TenderResponse {
	projectName := "Unknown"
	if tender.Project.ProjectID != 0 {
		projectName = tender.Project.ProjectName
	}
	return TenderResponse{Tender: tender, ProjectName: projectName}
}

func toTenderResponses(tenders []models.Tender) []TenderResponse {
	out := make([]TenderResponse, 0, len(tenders))
	for _, tender := range tenders {
		out = append(out, toTenderResponse(tender))
	}
	return out
}

// GetTenders returns all tenders, flattened
func GetTenders(c *gin.Context) {
	tenders, err := services.NewTenderService(config.DB).GetAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch tenders"})
		return
	}

	c.JSON(http.StatusOK, toTenderResponses(tenders))
}

// GetTender returns one tender by id
func GetTender(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	tender, err := services.NewTenderService(config.DB).GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Tender not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch tender"})
		return
	}

	c.JSON(http.StatusOK, toTenderResponse(*tender))
}

// GetTendersByStatus filters tenders by lifecycle status
func GetTendersByStatus(c *gin.Context) {
	status := c.Param("status")
	if !services.IsValidTenderStatus(status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown tender status"})
		return
	}

	tenders, err := services.NewTenderService(config.DB).GetByStatus(status)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch tenders"})
		return
	}

	c.JSON(http.StatusOK, toTenderResponses(tenders))
}

// GetOpenTenders returns published tenders still accepting submissions,
// soonest deadline first.
func GetOpenTenders(c *gin.Context) {
	tenders, err := services.NewTenderService(config.DB).GetOpen()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch tenders"})
		return
	}

	c.JSON(http.StatusOK, toTenderResponses(tenders))
}

// GetClosingSoonTenders returns published tenders closing within ?days=N
// (default 7).
func GetClosingSoonTenders(c *gin.Context) {
	days := 7
	if raw := c.Query("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid days parameter"})
			return
		}
		days = parsed
	}

	tenders, err := services.NewTenderService(config.DB).GetClosingSoon(days)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch tenders"})
		return
	}

	c.JSON(http.StatusOK, toTenderResponses(tenders))
}

// CreateTender creates a new tender under a project
func CreateTender(c *gin.Context) {
	var tender models.Tender
	if err := c.ShouldBindJSON(&tender); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if tender.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title is required"})
		return
	}
	if tender.ProjectID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Project id is required"})
		return
	}

	var project models.Project
	if err := config.DB.First(&project, tender.ProjectID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Project does not exist"})
		return
	}

	tender.CreatedBy = currentUserID(c)

	if err := services.NewTenderService(config.DB).Create(&tender); err != nil {
		if errors.Is(err, services.ErrDeadlineBeforeRelease) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create tender"})
		return
	}

	tender.Project = project
	c.JSON(http.StatusCreated, toTenderResponse(tender))
}

// UpdateTender replaces a tender. The path id must match the body id and the
// implied status change must be a legal lifecycle transition.
func UpdateTender(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var tender models.Tender
	if err := c.ShouldBindJSON(&tender); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if tender.TenderID != 0 && tender.TenderID != id {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Path id does not match body id"})
		return
	}
	tender.TenderID = id

	if err := services.NewTenderService(config.DB).Update(&tender); err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Tender not found"})
		case errors.Is(err, services.ErrInvalidTransition):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrDeadlineBeforeRelease):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update tender"})
		}
		return
	}

	c.JSON(http.StatusOK, tender)
}

type AwardRequest struct {
	AwardedTo     string   `json:"awarded_to" binding:"required"`
	AwardedAmount *float64 `json:"awarded_amount"`
}

// AwardTender marks a published tender as awarded
func AwardTender(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req AwardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tender, err := services.NewTenderService(config.DB).Award(id, req.AwardedTo, req.AwardedAmount)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Tender not found"})
		case errors.Is(err, services.ErrInvalidTransition):
			c.JSON(http.StatusConflict, gin.H{"error": "Only published tenders can be awarded"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to award tender"})
		}
		return
	}

	notifyTenderAwarded(tender)

	c.Status(http.StatusNoContent)
}

// DeleteTender removes a tender
func DeleteTender(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	found, err := services.NewTenderService(config.DB).Delete(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete tender"})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Tender not found"})
		return
	}

	c.Status(http.StatusNoContent)
}

// notifyTenderAwarded emails the tender's creator, best effort. Award
// responses never fail because of mail problems.
func notifyTenderAwarded(tender *models.Tender) {
	if tender.CreatedBy == nil {
		return
	}

	var creator models.User
	if err := config.DB.First(&creator, *tender.CreatedBy).Error; err != nil {
		return
	}

	subject := fmt.Sprintf("Tender awarded: %s", tender.Title)
	body := fmt.Sprintf("<p>Tender <b>%s</b> was awarded to %s.</p>", tender.Title, *tender.AwardedTo)

	if err := config.SendMail([]string{creator.Email}, subject, body); err != nil {
		log.Printf("Warning: Failed to send award notification: %v", err)
	}
}
