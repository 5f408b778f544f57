package routes

import (
	"urban-renewal-api/controllers"
	"urban-renewal-api/middleware"
	"urban-renewal-api/models"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(router *gin.Engine) {
	// API v1 group
	v1 := router.Group("/api/v1")
	{
		// Public routes
		public := v1.Group("")
		{
			// Authentication
			public.POST("/auth/login", controllers.Login)
			public.POST("/auth/register", controllers.Register)

			// Health check
			public.GET("/health", func(c *gin.Context) {
				c.JSON(200, gin.H{
					"status":  "ok",
					"message": "Urban Renewal API is running",
				})
			})

			// Role capability table consumed by the front-end shell
			public.GET("/capabilities", controllers.GetCapabilities)
			public.GET("/capabilities/:role", controllers.GetRoleCapabilities)

			// Reads are unauthenticated in current scope
			public.GET("/projects", controllers.GetProjects)
			public.GET("/projects/:id", controllers.GetProject)
			public.GET("/projects/:id/total-value", controllers.GetProjectTotalValue)
			public.GET("/projects/:id/tenders", controllers.GetProjectTenders)
			public.GET("/projects/:id/documents", controllers.GetProjectDocuments)
			public.GET("/projects/:id/valuations", controllers.GetProjectValuations)

			public.GET("/customers", controllers.GetCustomers)
			public.GET("/customers/:id", controllers.GetCustomer)
			public.GET("/customers/:id/projects", controllers.GetCustomerProjects)

			public.GET("/documents", controllers.GetDocuments)
			public.GET("/documents/:id", controllers.GetDocument)
			public.GET("/documents/:id/download", controllers.DownloadDocument)

			public.GET("/tenders", controllers.GetTenders)
			public.GET("/tenders/open", controllers.GetOpenTenders)
			public.GET("/tenders/closing-soon", controllers.GetClosingSoonTenders)
			public.GET("/tenders/status/:status", controllers.GetTendersByStatus)
			public.GET("/tenders/:id", controllers.GetTender)

			public.GET("/valuations", controllers.GetValuations)
			public.GET("/valuations/:id", controllers.GetValuation)
			public.GET("/valuations/project/:projectId/average", controllers.GetProjectAverageValuation)
			public.GET("/valuations/project/:projectId/growth", controllers.GetProjectGrowthPercentage)

			public.GET("/reports", controllers.GetReports)
			public.GET("/reports/status/:status", controllers.GetReportsByStatus)
			public.GET("/reports/type/:type", controllers.GetReportsByType)
			public.GET("/reports/:id", controllers.GetReport)
			public.GET("/reports/:id/download", controllers.DownloadReport)
		}

		// Create and update require Administrator or Manager
		editors := v1.Group("")
		editors.Use(middleware.AuthMiddleware(), middleware.RequireRole(models.RoleAdministrator, models.RoleManager))
		{
			editors.POST("/projects", controllers.CreateProject)
			editors.PUT("/projects/:id", controllers.UpdateProject)

			editors.POST("/customers", controllers.CreateCustomer)
			editors.PUT("/customers/:id", controllers.UpdateCustomer)
			editors.POST("/customers/:id/projects/:projectId", controllers.AddCustomerToProject)
			editors.DELETE("/customers/:id/projects/:projectId", controllers.RemoveCustomerFromProject)

			editors.POST("/documents", controllers.UploadDocument)
			editors.PUT("/documents/:id", controllers.UpdateDocument)

			editors.POST("/tenders", controllers.CreateTender)
			editors.PUT("/tenders/:id", controllers.UpdateTender)
			editors.PUT("/tenders/:id/award", controllers.AwardTender)

			editors.POST("/valuations", controllers.CreateValuation)
			editors.PUT("/valuations/:id", controllers.UpdateValuation)

			editors.POST("/reports", controllers.CreateReport)
			editors.PUT("/reports/:id", controllers.UpdateReport)
		}

		// Delete requires Administrator
		admins := v1.Group("")
		admins.Use(middleware.AuthMiddleware(), middleware.RequireRole(models.RoleAdministrator))
		{
			admins.DELETE("/projects/:id", controllers.DeleteProject)
			admins.DELETE("/customers/:id", controllers.DeleteCustomer)
			admins.DELETE("/documents/:id", controllers.DeleteDocument)
			admins.DELETE("/tenders/:id", controllers.DeleteTender)
			admins.DELETE("/valuations/:id", controllers.DeleteValuation)
			admins.DELETE("/reports/:id", controllers.DeleteReport)
		}
	}
}
