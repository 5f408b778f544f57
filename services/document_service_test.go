package services

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"urban-renewal-api/models"
)

func seedDocument(t *testing.T, svc *DocumentService, projectID uint, name string, expiry *time.Time) models.Document {
	t.Helper()

	document := models.Document{
		DocumentName: name,
		FilePath:     filepath.Join(t.TempDir(), "stored.pdf"),
		FileType:     "application/pdf",
		FileSize:     128,
		DocumentType: "Permit",
		ExpiryDate:   expiry,
		ProjectID:    projectID,
	}
	if err := svc.Create(&document); err != nil {
		t.Fatalf("create document: %v", err)
	}
	return document
}

func TestGetExpiringWindow(t *testing.T) {
	db := newTestDB(t)
	svc := NewDocumentService(db)
	project := seedProject(t, db, "Permits")

	soon := time.Now().Add(3 * 24 * time.Hour)
	far := time.Now().Add(90 * 24 * time.Hour)
	past := time.Now().Add(-24 * time.Hour)

	within := seedDocument(t, svc, project.ProjectID, "Expiring permit", &soon)
	seedDocument(t, svc, project.ProjectID, "Fresh permit", &far)
	seedDocument(t, svc, project.ProjectID, "Lapsed permit", &past)
	seedDocument(t, svc, project.ProjectID, "Evergreen permit", nil)

	expiring, err := svc.GetExpiring(7)
	if err != nil {
		t.Fatalf("GetExpiring returned error: %v", err)
	}
	if len(expiring) != 1 || expiring[0].DocumentID != within.DocumentID {
		t.Fatalf("expected only the document expiring within 7 days, got %#v", expiring)
	}
}

func TestDocumentUpdatePreservesFileFields(t *testing.T) {
	db := newTestDB(t)
	svc := NewDocumentService(db)
	project := seedProject(t, db, "Stable files")

	document := seedDocument(t, svc, project.ProjectID, "Original", nil)
	originalPath := document.FilePath

	updated := models.Document{
		DocumentID:   document.DocumentID,
		DocumentName: "Renamed",
		FilePath:     "/tmp/attacker-controlled",
		FileType:     "text/evil",
		FileSize:     1,
		DocumentType: "Contract",
		ProjectID:    project.ProjectID,
	}
	if err := svc.Update(&updated); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}

	stored, err := svc.GetByID(document.DocumentID)
	if err != nil {
		t.Fatalf("GetByID returned error: %v", err)
	}
	if stored.DocumentName != "Renamed" {
		t.Fatalf("expected metadata updated, got %q", stored.DocumentName)
	}
	if stored.FilePath != originalPath || stored.FileType != "application/pdf" || stored.FileSize != 128 {
		t.Fatalf("expected file fields preserved, got %#v", stored)
	}
}

func TestDocumentDeleteRemovesStoredFile(t *testing.T) {
	db := newTestDB(t)
	svc := NewDocumentService(db)
	project := seedProject(t, db, "Cleanup")

	path := filepath.Join(t.TempDir(), "doomed.pdf")
	if err := os.WriteFile(path, []byte("bytes"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	document := models.Document{
		DocumentName: "Doomed",
		FilePath:     path,
		FileType:     "application/pdf",
		FileSize:     5,
		ProjectID:    project.ProjectID,
	}
	if err := svc.Create(&document); err != nil {
		t.Fatalf("create document: %v", err)
	}

	found, err := svc.Delete(document.DocumentID)
	if err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if !found {
		t.Fatal("expected positive result")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatal("expected stored file removed")
	}

	found, err = svc.Delete(document.DocumentID)
	if err != nil {
		t.Fatalf("second Delete returned error: %v", err)
	}
	if found {
		t.Fatal("expected negative result for missing document")
	}
}
