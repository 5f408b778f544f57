package controllers

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"urban-renewal-api/config"
	"urban-renewal-api/models"
	"urban-renewal-api/services"
	"urban-renewal-api/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetReports returns all reports, optionally filtered by ?status=, ?type=
// or ?project_id=.
func GetReports(c *gin.Context) {
	svc := services.NewReportService(config.DB)

	var (
		reports []models.Report
		err     error
	)

	switch {
	case c.Query("status") != "":
		reports, err = svc.GetByStatus(c.Query("status"))
	case c.Query("type") != "":
		reports, err = svc.GetByType(c.Query("type"))
	case c.Query("project_id") != "":
		projectID, parseErr := strconv.ParseUint(c.Query("project_id"), 10, 64)
		if parseErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project_id parameter"})
			return
		}
		reports, err = svc.GetByProject(uint(projectID))
	default:
		reports, err = svc.GetAll()
	}

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reports"})
		return
	}

	c.JSON(http.StatusOK, reports)
}

// GetReportsByStatus filters reports by lifecycle status
func GetReportsByStatus(c *gin.Context) {
	status := c.Param("status")
	if !validReportStatus(status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown report status"})
		return
	}

	reports, err := services.NewReportService(config.DB).GetByStatus(status)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reports"})
		return
	}

	c.JSON(http.StatusOK, reports)
}

// GetReportsByType filters reports by business type
func GetReportsByType(c *gin.Context) {
	reports, err := services.NewReportService(config.DB).GetByType(c.Param("type"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reports"})
		return
	}

	c.JSON(http.StatusOK, reports)
}

// GetReport returns one report by id
func GetReport(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	report, err := services.NewReportService(config.DB).GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Report not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch report"})
		return
	}

	c.JSON(http.StatusOK, report)
}

// CreateReport creates a report from a multipart form. The file part is
// optional; when present it is stored like a document upload.
func CreateReport(c *gin.Context) {
	title := c.PostForm("title")
	if title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title is required"})
		return
	}

	rawDate := c.PostForm("report_date")
	if rawDate == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Report date is required"})
		return
	}
	reportDate, err := parseDate(rawDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid report_date"})
		return
	}

	report := models.Report{
		Title:      title,
		ReportType: c.PostForm("report_type"),
		ReportDate: reportDate,
		Status:     c.PostForm("status"),
		CreatedBy:  currentUserID(c),
	}

	if report.Status != "" && !validReportStatus(report.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown report status"})
		return
	}

	if description := c.PostForm("description"); description != "" {
		report.Description = &description
	}
	if content := c.PostForm("content"); content != "" {
		report.Content = &content
	}
	if author := c.PostForm("author"); author != "" {
		report.Author = &author
	}
	if raw := c.PostForm("project_id"); raw != "" {
		projectID, parseErr := strconv.ParseUint(raw, 10, 64)
		if parseErr != nil || projectID == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project_id"})
			return
		}
		var project models.Project
		if err := config.DB.First(&project, projectID).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Project does not exist"})
			return
		}
		id := uint(projectID)
		report.ProjectID = &id
	}

	// Optional attachment
	file, err := c.FormFile("file")
	if err == nil && file.Size > 0 {
		storageDir, storageErr := utils.StoragePath()
		if storageErr != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to prepare storage directory"})
			return
		}

		fullPath := filepath.Join(storageDir, utils.StoredFilename(file.Filename))
		if err := c.SaveUploadedFile(file, fullPath); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save file"})
			return
		}

		fileType := file.Header.Get("Content-Type")
		report.FilePath = &fullPath
		report.FileType = &fileType
		report.FileSize = &file.Size
	}

	if err := services.NewReportService(config.DB).Create(&report); err != nil {
		if report.FilePath != nil {
			os.Remove(*report.FilePath)
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save report"})
		return
	}

	c.JSON(http.StatusCreated, report)
}

// DownloadReport streams the report attachment
func DownloadReport(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	report, err := services.NewReportService(config.DB).GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Report not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch report"})
		return
	}

	if report.FilePath == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Report has no attachment"})
		return
	}
	if _, err := os.Stat(*report.FilePath); os.IsNotExist(err) {
		c.JSON(http.StatusNotFound, gin.H{"error": "File not found"})
		return
	}

	if report.FileType != nil {
		c.Header("Content-Type", *report.FileType)
	}
	c.FileAttachment(*report.FilePath, sanitizeAttachmentName(report.Title)+filepath.Ext(*report.FilePath))
}

// UpdateReport replaces report fields. The attachment is untouched.
func UpdateReport(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var report models.Report
	if err := c.ShouldBindJSON(&report); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if report.ReportID != 0 && report.ReportID != id {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Path id does not match body id"})
		return
	}
	report.ReportID = id

	if err := services.NewReportService(config.DB).Update(&report); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Report not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update report"})
		return
	}

	c.JSON(http.StatusOK, report)
}

// DeleteReport removes the row and any attachment
func DeleteReport(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	found, err := services.NewReportService(config.DB).Delete(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete report"})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Report not found"})
		return
	}

	c.Status(http.StatusNoContent)
}

func validReportStatus(status string) bool {
	switch status {
	case models.ReportStatusDraft, models.ReportStatusPublished, models.ReportStatusArchived:
		return true
	}
	return false
}

func sanitizeAttachmentName(name string) string {
	name = strings.ReplaceAll(name, "/", "-")
	name = strings.ReplaceAll(name, "\\", "-")
	if name == "" {
		name = "report"
	}
	return name
}
