package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yusuf/campushub/internal/app/models/dto"
	"github.com/yusuf/campushub/internal/app/services"
	"github.com/yusuf/campushub/internal/middleware"
	"github.com/yusuf/campushub/internal/pkg/apperrors"
)

// CatalogController serves the lookup data used to build report filters
type CatalogController struct {
	catalogService *services.CatalogService
}

// NewCatalogController creates a new CatalogController
func NewCatalogController(catalogService *services.CatalogService) *CatalogController {
	return &CatalogController{catalogService: catalogService}
}

// GetDepartments lists all departments
// @Summary List departments
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse "Departments"
// @Router /departments [get]
func (c *CatalogController) GetDepartments(ctx *gin.Context) {
	departments, err := c.catalogService.GetAllDepartments(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(departments))
}

// GetDepartmentByID returns a single department
// @Summary Get department
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Param id path int true "Department ID"
// @Success 200 {object} dto.APIResponse "Department"
// @Failure 404 {object} dto.ErrorResponse "Department not found"
// @Router /departments/{id} [get]
func (c *CatalogController) GetDepartmentByID(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("Invalid department ID"))
		return
	}

	department, err := c.catalogService.GetDepartmentByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(department))
}

// GetCourses lists courses, optionally filtered by department
// @Summary List courses
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Param department_id query int false "Filter by department ID"
// @Success 200 {object} dto.APIResponse "Courses"
// @Router /courses [get]
func (c *CatalogController) GetCourses(ctx *gin.Context) {
	var departmentID *int64
	if raw := ctx.Query("department_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err == nil && id > 0 {
			departmentID = &id
		}
	}

	courses, err := c.catalogService.GetAllCourses(ctx, departmentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(courses))
}

// GetAcademicYears lists all academic years
// @Summary List academic years
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse "Academic years"
// @Router /academic-years [get]
func (c *CatalogController) GetAcademicYears(ctx *gin.Context) {
	years, err := c.catalogService.GetAllAcademicYears(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(years))
}
