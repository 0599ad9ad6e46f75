package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yusuf/campushub/internal/app/models"
	"github.com/yusuf/campushub/internal/app/models/dto"
	"github.com/yusuf/campushub/internal/app/services"
	"github.com/yusuf/campushub/internal/middleware"
	"github.com/yusuf/campushub/internal/pkg/artifacts"
)

// ReportController handles report generation and artifact downloads
type ReportController struct {
	reportService *services.ReportService
	store         *artifacts.Store
}

// NewReportController creates a new ReportController
func NewReportController(reportService *services.ReportService, store *artifacts.Store) *ReportController {
	return &ReportController{
		reportService: reportService,
		store:         store,
	}
}

// GetStudentReport generates the student report
// @Summary Generate student report
// @Description Builds the filtered student report preview; format=pdf|excel additionally produces a downloadable document
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param department_id query int false "Filter by department ID"
// @Param course_id query int false "Filter by course ID"
// @Param academic_year query string false "Academic year substring, e.g. 2024"
// @Param format query string false "Export format" Enums(pdf, excel)
// @Success 200 {object} dto.StudentReportResponse "Report generated"
// @Failure 400 {object} dto.ErrorResponse "Unsupported format"
// @Failure 500 {object} dto.ErrorResponse "Report generation failed"
// @Router /reports/students [get]
func (c *ReportController) GetStudentReport(ctx *gin.Context) {
	format, ok := exportFormat(ctx)
	if !ok {
		return
	}

	response, err := c.reportService.GenerateStudentReport(ctx, ctx.Request.URL.Query(), format)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// GetFacultyReport generates the faculty report
// @Summary Generate faculty report
// @Description Builds the filtered faculty report preview; format=pdf|excel additionally produces a downloadable document
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param department_id query int false "Filter by department ID"
// @Param employment_type query string false "Employment type, or 'all'"
// @Param format query string false "Export format" Enums(pdf, excel)
// @Success 200 {object} dto.FacultyReportResponse "Report generated"
// @Failure 400 {object} dto.ErrorResponse "Unsupported format"
// @Failure 500 {object} dto.ErrorResponse "Report generation failed"
// @Router /reports/faculty [get]
func (c *ReportController) GetFacultyReport(ctx *gin.Context) {
	format, ok := exportFormat(ctx)
	if !ok {
		return
	}

	response, err := c.reportService.GenerateFacultyReport(ctx, ctx.Request.URL.Query(), format)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// DownloadReport streams a generated report document
// @Summary Download a generated report
// @Description Streams a previously generated report document as an attachment
// @Tags reports
// @Produce application/octet-stream
// @Param filename path string true "Report filename"
// @Success 200 {file} binary "Report document"
// @Failure 400 {object} dto.ErrorResponse "Invalid filename"
// @Failure 404 {object} dto.ErrorResponse "File not found"
// @Router /download/{filename} [get]
func (c *ReportController) DownloadReport(ctx *gin.Context) {
	filename := ctx.Param("filename")

	artifact, err := c.store.Open(filename)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	defer artifact.Close()

	extraHeaders := map[string]string{
		"Content-Disposition": fmt.Sprintf("attachment; filename=%q", artifact.Name),
	}
	ctx.DataFromReader(http.StatusOK, artifact.Size, artifact.ContentType, artifact, extraHeaders)
}

// exportFormat validates the optional format query parameter. An unsupported
// value is rejected before any data is fetched.
func exportFormat(ctx *gin.Context) (string, bool) {
	format := ctx.Query("format")
	switch format {
	case "", string(models.ReportFormatPDF), string(models.ReportFormatExcel):
		return format, true
	default:
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Unsupported report format").
			WithDetails("format must be 'pdf' or 'excel'")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return "", false
	}
}
