package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/yusuf/campushub/internal/app/controllers"
	"github.com/yusuf/campushub/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	reportController *controllers.ReportController,
	catalogController *controllers.CatalogController,
	dashboardController *controllers.DashboardController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/login", authController.Login)
	}

	// Download links are opened directly by the browser, which cannot attach
	// a bearer token, so this route stays public.
	router.GET("/download/:filename", reportController.DownloadReport)

	// --- Authenticated Routes Group ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		reports := authenticated.Group("/reports")
		{
			reports.GET("/students", reportController.GetStudentReport)
			reports.GET("/faculty", reportController.GetFacultyReport)
		}

		authenticated.GET("/departments", catalogController.GetDepartments)
		authenticated.GET("/departments/:id", catalogController.GetDepartmentByID)
		authenticated.GET("/courses", catalogController.GetCourses)
		authenticated.GET("/academic-years", catalogController.GetAcademicYears)

		authenticated.GET("/dashboard/summary", dashboardController.GetSummary)
	}
}
