package controllers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegisterAndLoginFlow(t *testing.T) {
	router := setupAPI(t)

	w := doJSON(router, http.MethodPost, "/api/v1/auth/register",
		`{"username":"yael","email":"yael@example.com","password":"super-secret"}`, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created struct {
		Token string `json:"token"`
		User  struct {
			ID       uint   `json:"id"`
			Username string `json:"username"`
			Email    string `json:"email"`
			Role     string `json:"role"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotEmpty(t, created.Token)
	require.Equal(t, "yael", created.User.Username)
	require.Equal(t, "Professional", created.User.Role)

	// The response never carries the password, hashed or otherwise
	require.NotContains(t, w.Body.String(), "password")

	w = doJSON(router, http.MethodPost, "/api/v1/auth/login",
		`{"username":"yael","password":"super-secret"}`, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var logged struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &logged))
	require.NotEmpty(t, logged.Token)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	router := setupAPI(t)
	registerUser(t, router, "yael", "Professional")

	w := doJSON(router, http.MethodPost, "/api/v1/auth/login",
		`{"username":"yael","password":"wrong-pass"}`, "")
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(router, http.MethodPost, "/api/v1/auth/login",
		`{"username":"nobody","password":"super-secret"}`, "")
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(router, http.MethodPost, "/api/v1/auth/login", `{"username":"yael"}`, "")
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegisterValidation(t *testing.T) {
	router := setupAPI(t)

	// Bad email
	w := doJSON(router, http.MethodPost, "/api/v1/auth/register",
		`{"username":"a","email":"not-an-email","password":"super-secret"}`, "")
	require.Equal(t, http.StatusBadRequest, w.Code)

	// Short password
	w = doJSON(router, http.MethodPost, "/api/v1/auth/register",
		`{"username":"a","email":"a@example.com","password":"short"}`, "")
	require.Equal(t, http.StatusBadRequest, w.Code)

	// Unknown role
	w = doJSON(router, http.MethodPost, "/api/v1/auth/register",
		`{"username":"a","email":"a@example.com","password":"super-secret","role":"Root"}`, "")
	require.Equal(t, http.StatusBadRequest, w.Code)

	// Duplicate username
	registerUser(t, router, "dup", "Professional")
	w = doJSON(router, http.MethodPost, "/api/v1/auth/register",
		`{"username":"dup","email":"fresh@example.com","password":"super-secret"}`, "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "already exists")
}
