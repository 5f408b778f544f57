package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProjectWritesRequireAuth(t *testing.T) {
	router := setupAPI(t)

	// No token at all
	w := doJSON(router, http.MethodPost, "/api/v1/projects", `{"project_name":"X"}`, "")
	require.Equal(t, http.StatusUnauthorized, w.Code)

	// Professional may read but not write
	professional := registerUser(t, router, "pro", "Professional")
	w = doJSON(router, http.MethodPost, "/api/v1/projects", `{"project_name":"X"}`, professional)
	require.Equal(t, http.StatusForbidden, w.Code)

	// Manager may write
	manager := registerUser(t, router, "mgr", "Manager")
	w = doJSON(router, http.MethodPost, "/api/v1/projects", `{"project_name":"X","status":"Planning"}`, manager)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// Garbage token
	w = doJSON(router, http.MethodPost, "/api/v1/projects", `{"project_name":"X"}`, "not-a-jwt")
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProjectReadsArePublic(t *testing.T) {
	router := setupAPI(t)
	manager := registerUser(t, router, "mgr", "Manager")
	id := createProject(t, router, manager, "Public read")

	w := doJSON(router, http.MethodGet, "/api/v1/projects", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "Public read")

	w = doJSON(router, http.MethodGet, fmt.Sprintf("/api/v1/projects/%d", id), "", "")
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, http.MethodGet, "/api/v1/projects/9999", "", "")
	require.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(router, http.MethodGet, "/api/v1/projects/abc", "", "")
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateProjectIDMismatch(t *testing.T) {
	router := setupAPI(t)
	manager := registerUser(t, router, "mgr", "Manager")
	id := createProject(t, router, manager, "Mismatch")

	body := fmt.Sprintf(`{"project_id":%d,"project_name":"Renamed","status":"Planning"}`, id+1)
	w := doJSON(router, http.MethodPut, fmt.Sprintf("/api/v1/projects/%d", id), body, manager)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "does not match")

	// Matching body id succeeds
	body = fmt.Sprintf(`{"project_id":%d,"project_name":"Renamed","status":"Planning"}`, id)
	w = doJSON(router, http.MethodPut, fmt.Sprintf("/api/v1/projects/%d", id), body, manager)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// Updating a missing project
	w = doJSON(router, http.MethodPut, "/api/v1/projects/9999", `{"project_name":"Ghost"}`, manager)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteProjectRequiresAdministrator(t *testing.T) {
	router := setupAPI(t)
	manager := registerUser(t, router, "mgr", "Manager")
	admin := registerUser(t, router, "adm", "Administrator")
	id := createProject(t, router, manager, "Doomed")

	// Manager cannot delete
	w := doJSON(router, http.MethodDelete, fmt.Sprintf("/api/v1/projects/%d", id), "", manager)
	require.Equal(t, http.StatusForbidden, w.Code)

	// Administrator can
	w = doJSON(router, http.MethodDelete, fmt.Sprintf("/api/v1/projects/%d", id), "", admin)
	require.Equal(t, http.StatusNoContent, w.Code)

	// Second delete reports not found
	w = doJSON(router, http.MethodDelete, fmt.Sprintf("/api/v1/projects/%d", id), "", admin)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestProjectTotalValueEndpoint(t *testing.T) {
	router := setupAPI(t)
	manager := registerUser(t, router, "mgr", "Manager")
	id := createProject(t, router, manager, "Valued")

	body := fmt.Sprintf(`{"property_address":"Herzl 1","property_type":"Apartment","market_value":1000000,"post_renewal_estimated_value":1500000,"valuation_date":"2026-01-15T00:00:00Z","project_id":%d}`, id)
	w := doJSON(router, http.MethodPost, "/api/v1/valuations", body, manager)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(router, http.MethodGet, fmt.Sprintf("/api/v1/projects/%d/total-value", id), "", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"total_value":1500000`)

	w = doJSON(router, http.MethodGet, "/api/v1/projects/9999/total-value", "", "")
	require.Equal(t, http.StatusNotFound, w.Code)
}
