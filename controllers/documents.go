package controllers

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"urban-renewal-api/config"
	"urban-renewal-api/models"
	"urban-renewal-api/services"
	"urban-renewal-api/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetDocuments returns all documents, optionally filtered by ?project_id=,
// ?type= or ?expiring_within= (days).
func GetDocuments(c *gin.Context) {
	svc := services.NewDocumentService(config.DB)

	var (
		documents []models.Document
		err       error
	)

	switch {
	case c.Query("project_id") != "":
		projectID, parseErr := strconv.ParseUint(c.Query("project_id"), 10, 64)
		if parseErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project_id parameter"})
			return
		}
		documents, err = svc.GetByProject(uint(projectID))
	case c.Query("type") != "":
		documents, err = svc.GetByType(c.Query("type"))
	case c.Query("expiring_within") != "":
		days, parseErr := strconv.Atoi(c.Query("expiring_within"))
		if parseErr != nil || days < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid expiring_within parameter"})
			return
		}
		documents, err = svc.GetExpiring(days)
	default:
		documents, err = svc.GetAll()
	}

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch documents"})
		return
	}

	c.JSON(http.StatusOK, documents)
}

// GetDocument returns one document by id
func GetDocument(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	document, err := services.NewDocumentService(config.DB).GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Document not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch document"})
		return
	}

	c.JSON(http.StatusOK, document)
}

// UploadDocument handles multipart document upload. The file part is
// required and must not be empty.
func UploadDocument(c *gin.Context) {
	name := c.PostForm("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Document name is required"})
		return
	}

	projectID, err := strconv.ParseUint(c.PostForm("project_id"), 10, 64)
	if err != nil || projectID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project_id"})
		return
	}

	var project models.Project
	if err := config.DB.First(&project, projectID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Project does not exist"})
		return
	}

	// Get uploaded file
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}
	if file.Size == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Uploaded file is empty"})
		return
	}

	document := models.Document{
		DocumentName: name,
		DocumentType: c.PostForm("document_type"),
		ProjectID:    uint(projectID),
		FileType:     file.Header.Get("Content-Type"),
		FileSize:     file.Size,
		UploadedBy:   currentUserID(c),
	}

	if description := c.PostForm("description"); description != "" {
		document.Description = &description
	}
	if raw := c.PostForm("expiry_date"); raw != "" {
		expiry, parseErr := parseDate(raw)
		if parseErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid expiry_date"})
			return
		}
		document.ExpiryDate = &expiry
	}

	storageDir, err := utils.StoragePath()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to prepare storage directory"})
		return
	}

	fullPath := filepath.Join(storageDir, utils.StoredFilename(file.Filename))

	// Save file
	if err := c.SaveUploadedFile(file, fullPath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save file"})
		return
	}
	document.FilePath = fullPath

	if err := services.NewDocumentService(config.DB).Create(&document); err != nil {
		// Delete uploaded file if database save fails
		os.Remove(fullPath)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save document record"})
		return
	}

	c.JSON(http.StatusCreated, document)
}

// DownloadDocument streams the stored file with its recorded content type
func DownloadDocument(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	document, err := services.NewDocumentService(config.DB).GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Document not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch document"})
		return
	}

	// Check if file exists
	if _, err := os.Stat(document.FilePath); os.IsNotExist(err) {
		c.JSON(http.StatusNotFound, gin.H{"error": "File not found"})
		return
	}

	c.Header("Content-Type", document.FileType)
	c.FileAttachment(document.FilePath, document.DocumentName+filepath.Ext(document.FilePath))
}

// UpdateDocument replaces document metadata. The stored file is untouched.
func UpdateDocument(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var document models.Document
	if err := c.ShouldBindJSON(&document); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if document.DocumentID != 0 && document.DocumentID != id {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Path id does not match body id"})
		return
	}
	document.DocumentID = id

	if err := services.NewDocumentService(config.DB).Update(&document); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Document not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update document"})
		return
	}

	c.JSON(http.StatusOK, document)
}

// DeleteDocument removes the row and its stored file
func DeleteDocument(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	found, err := services.NewDocumentService(config.DB).Delete(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete document"})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Document not found"})
		return
	}

	c.Status(http.StatusNoContent)
}
