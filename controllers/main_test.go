package controllers_test

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"urban-renewal-api/config"
	"urban-renewal-api/models"
	"urban-renewal-api/routes"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupAPI wires the full router against a throwaway sqlite database.
func setupAPI(t *testing.T) *gin.Engine {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	gin.SetMode(gin.TestMode)

	dsn := filepath.Join(t.TempDir(), "test.db") + "?_foreign_keys=on"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Project{},
		&models.Customer{},
		&models.Document{},
		&models.Tender{},
		&models.PropertyValuation{},
		&models.Report{},
	)
	require.NoError(t, err)

	config.DB = db

	router := gin.New()
	routes.SetupRoutes(router)
	return router
}

// doJSON performs a request with an optional JSON body and bearer token.
func doJSON(router *gin.Engine, method, path, body, token string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// registerUser creates an account through the API and returns its token.
func registerUser(t *testing.T, router *gin.Engine, username, role string) string {
	t.Helper()

	body := fmt.Sprintf(`{"username":%q,"email":"%s@example.com","password":"super-secret","role":%q}`,
		username, username, role)
	w := doJSON(router, http.MethodPost, "/api/v1/auth/register", body, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

// createProject inserts a project through the API and returns its id.
func createProject(t *testing.T, router *gin.Engine, token, name string) uint {
	t.Helper()

	body := fmt.Sprintf(`{"project_name":%q,"status":"Planning","budget":1000000}`, name)
	w := doJSON(router, http.MethodPost, "/api/v1/projects", body, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		ProjectID uint `json:"project_id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotZero(t, resp.ProjectID)
	return resp.ProjectID
}
