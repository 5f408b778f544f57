package controllers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHealthEndpoint(t *testing.T) {
	router := setupAPI(t)

	w := doJSON(router, http.MethodGet, "/api/v1/health", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestCapabilitiesTable(t *testing.T) {
	router := setupAPI(t)

	w := doJSON(router, http.MethodGet, "/api/v1/capabilities", "", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Roles        []string            `json:"roles"`
		Capabilities map[string][]string `json:"capabilities"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Roles, 8)
	require.Contains(t, resp.Roles, "localAuthority")

	require.Contains(t, resp.Capabilities["localAuthority"], "tenders.create")
	require.Contains(t, resp.Capabilities["developer"], "tenders.apply")
	require.NotContains(t, resp.Capabilities["developer"], "tenders.create")
	require.NotContains(t, resp.Capabilities["resident"], "tenders")

	// Every role sees the dashboard
	for role, caps := range resp.Capabilities {
		require.Contains(t, caps, "dashboard", "role %s", role)
	}
}

func TestRoleCapabilitiesEndpoint(t *testing.T) {
	router := setupAPI(t)

	w := doJSON(router, http.MethodGet, "/api/v1/capabilities/appraiser", "", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Role         string   `json:"role"`
		Capabilities []string `json:"capabilities"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "appraiser", resp.Role)
	require.Contains(t, resp.Capabilities, "valuations")
	require.NotContains(t, resp.Capabilities, "tenders")

	w = doJSON(router, http.MethodGet, "/api/v1/capabilities/wizard", "", "")
	require.Equal(t, http.StatusNotFound, w.Code)
}
