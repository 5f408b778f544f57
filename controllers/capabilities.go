package controllers

import (
	"net/http"

	"urban-renewal-api/services"

	"github.com/gin-gonic/gin"
)

// GetCapabilities returns the full role -> capability table the front-end
// uses to gate its navigation and actions.
func GetCapabilities(c *gin.Context) {
	capabilities := make(map[string][]string)
	for _, role := range services.FrontendRoles() {
		caps := services.CapabilitiesFor(role)
		names := make([]string, 0, len(caps))
		for _, capability := range caps {
			names = append(names, string(capability))
		}
		capabilities[role] = names
	}

	c.JSON(http.StatusOK, gin.H{
		"roles":        services.FrontendRoles(),
		"capabilities": capabilities,
	})
}

// GetRoleCapabilities returns the capabilities of a single front-end role
func GetRoleCapabilities(c *gin.Context) {
	role := c.Param("role")
	if !services.IsFrontendRole(role) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown role"})
		return
	}

	caps := services.CapabilitiesFor(role)
	names := make([]string, 0, len(caps))
	for _, capability := range caps {
		names = append(names, string(capability))
	}

	c.JSON(http.StatusOK, gin.H{
		"role":         role,
		"capabilities": names,
	})
}
