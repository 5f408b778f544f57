package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"urban-renewal-api/models"

	"github.com/stretchr/testify/require"
)

func TestCreateReportWithAttachment(t *testing.T) {
	router := setupAPI(t)
	t.Setenv("UPLOAD_PATH", t.TempDir())

	manager := registerUser(t, router, "mgr", "Manager")
	projectID := createProject(t, router, manager, "Reported")

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	require.NoError(t, writer.WriteField("title", "Q1 progress"))
	require.NoError(t, writer.WriteField("report_type", "Progress"))
	require.NoError(t, writer.WriteField("report_date", "2026-03-31"))
	require.NoError(t, writer.WriteField("project_id", fmt.Sprint(projectID)))

	part, err := writer.CreateFormFile("file", "q1.pdf")
	require.NoError(t, err)
	_, err = part.Write([]byte("report-bytes"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/reports", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+manager)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var report models.Report
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))
	require.Equal(t, "Draft", report.Status)
	require.NotNil(t, report.FilePath)
	require.NotNil(t, report.ProjectID)
	require.NotNil(t, report.CreatedBy)

	// Download round trip
	dl := doJSON(router, http.MethodGet, fmt.Sprintf("/api/v1/reports/%d/download", report.ReportID), "", "")
	require.Equal(t, http.StatusOK, dl.Code)
	require.Equal(t, "report-bytes", dl.Body.String())
}

func TestCreateReportValidation(t *testing.T) {
	router := setupAPI(t)
	manager := registerUser(t, router, "mgr", "Manager")

	form := func(fields map[string]string) *httptest.ResponseRecorder {
		var buf bytes.Buffer
		writer := multipart.NewWriter(&buf)
		for k, v := range fields {
			require.NoError(t, writer.WriteField(k, v))
		}
		require.NoError(t, writer.Close())

		req := httptest.NewRequest(http.MethodPost, "/api/v1/reports", &buf)
		req.Header.Set("Content-Type", writer.FormDataContentType())
		req.Header.Set("Authorization", "Bearer "+manager)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	// Missing title
	w := form(map[string]string{"report_date": "2026-03-31"})
	require.Equal(t, http.StatusBadRequest, w.Code)

	// Missing date
	w = form(map[string]string{"title": "No date"})
	require.Equal(t, http.StatusBadRequest, w.Code)

	// Unknown status
	w = form(map[string]string{"title": "Bad status", "report_date": "2026-03-31", "status": "Final"})
	require.Equal(t, http.StatusBadRequest, w.Code)

	// Unknown project
	w = form(map[string]string{"title": "Orphan", "report_date": "2026-03-31", "project_id": "9999"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "Project does not exist")

	// No attachment is fine
	w = form(map[string]string{"title": "Plain", "report_date": "2026-03-31"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var report models.Report
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))

	// Download of a report without attachment is a 404
	dl := doJSON(router, http.MethodGet, fmt.Sprintf("/api/v1/reports/%d/download", report.ReportID), "", "")
	require.Equal(t, http.StatusNotFound, dl.Code)
}
