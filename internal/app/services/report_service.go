package services

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/yusuf/campushub/internal/app/models"
	"github.com/yusuf/campushub/internal/app/models/dto"
	"github.com/yusuf/campushub/internal/app/report"
	"github.com/yusuf/campushub/internal/pkg/apperrors"
)

// fetchPageSize is the single page pulled from the data layer per report; the
// post-fetch filters and statistics run over this snapshot.
const fetchPageSize = 1000

// renderFailedWarning is surfaced when the preview succeeded but the export
// document could not be produced.
const renderFailedWarning = "Report preview generated but file download failed. Please try again."

// StudentDataSource is the data access collaborator for student rows
type StudentDataSource interface {
	FindAll(ctx context.Context, page, pageSize int, search string, departmentID, courseID *int64) ([]models.StudentRow, int, error)
}

// FacultyDataSource is the data access collaborator for faculty rows
type FacultyDataSource interface {
	FindAll(ctx context.Context, page, pageSize int, search string, departmentID *int64) ([]models.FacultyRow, int, error)
}

// DocumentRenderer renders a filtered row set plus its statistics into a
// binary document
type DocumentRenderer interface {
	RenderStudentReport(rows []models.StudentRow, stats report.StudentStatistics, filters report.StudentFilters) ([]byte, error)
	RenderFacultyReport(rows []models.FacultyRow, stats report.FacultyStatistics, filters report.FacultyFilters) ([]byte, error)
}

// ArtifactStore persists rendered documents for download
type ArtifactStore interface {
	Persist(data []byte, kind models.ReportKind, format models.ReportFormat) (string, error)
}

// ReportService orchestrates the report pipeline: normalize filters, fetch
// rows, apply post-fetch filters, aggregate, and optionally render an export
// document. Only a fetch failure aborts the request; a render failure
// degrades to a preview with a warning.
type ReportService struct {
	students StudentDataSource
	faculty  FacultyDataSource
	pdf      DocumentRenderer
	excel    DocumentRenderer
	store    ArtifactStore
	logger   zerolog.Logger
}

// NewReportService creates a new report service
func NewReportService(
	students StudentDataSource,
	faculty FacultyDataSource,
	pdf DocumentRenderer,
	excel DocumentRenderer,
	store ArtifactStore,
	logger zerolog.Logger,
) *ReportService {
	return &ReportService{
		students: students,
		faculty:  faculty,
		pdf:      pdf,
		excel:    excel,
		store:    store,
		logger:   logger,
	}
}

// GenerateStudentReport builds the student report for the given raw query.
// With an empty format only the JSON preview is produced; "pdf" or "excel"
// additionally renders and persists an export document.
func (s *ReportService) GenerateStudentReport(ctx context.Context, query url.Values, format string) (*dto.StudentReportResponse, error) {
	filters := report.NormalizeStudentFilters(query)

	rows, _, err := s.students.FindAll(ctx, 1, fetchPageSize, "", filters.DepartmentID, filters.CourseID)
	if err != nil {
		s.logger.Error().Err(err).Msg("Student report fetch failed")
		return nil, fmt.Errorf("%w: %v", apperrors.ErrReportFetchFailed, err)
	}

	rows = report.ApplyStudentFilters(rows, filters)
	sortStudentRows(rows)

	stats := report.GroupStudents(rows)

	response := &dto.StudentReportResponse{
		Success: true,
		Data: dto.StudentReportData{
			Students:   previewStudents(rows),
			Statistics: dto.NewStudentStatisticsData(stats),
			Filters: dto.StudentFiltersData{
				DepartmentID: filters.DepartmentID,
				CourseID:     filters.CourseID,
				AcademicYear: filters.AcademicYear,
			},
		},
	}

	if format == "" {
		return response, nil
	}

	renderer, reportFormat, err := s.rendererFor(format)
	if err != nil {
		return nil, err
	}

	// The export renders the full filtered row set, not the preview slice.
	data, err := renderer.RenderStudentReport(rows, stats, filters)
	if err == nil {
		var filename string
		filename, err = s.store.Persist(data, models.ReportKindStudent, reportFormat)
		if err == nil {
			response.DownloadURL = "/download/" + filename
			response.Message = fmt.Sprintf("%s report generated successfully with %d students", strings.ToUpper(format), stats.Total)
			return response, nil
		}
	}

	// Render or persist failure is partial success: the preview stands.
	s.logger.Error().Err(err).Str("format", format).Msg("Student report export failed")
	response.Warning = renderFailedWarning
	return response, nil
}

// GenerateFacultyReport builds the faculty report for the given raw query.
func (s *ReportService) GenerateFacultyReport(ctx context.Context, query url.Values, format string) (*dto.FacultyReportResponse, error) {
	filters := report.NormalizeFacultyFilters(query)

	rows, _, err := s.faculty.FindAll(ctx, 1, fetchPageSize, "", filters.DepartmentID)
	if err != nil {
		s.logger.Error().Err(err).Msg("Faculty report fetch failed")
		return nil, fmt.Errorf("%w: %v", apperrors.ErrReportFetchFailed, err)
	}

	rows = report.ApplyFacultyFilters(rows, filters)
	sortFacultyRows(rows)

	stats := report.GroupFaculty(rows)

	response := &dto.FacultyReportResponse{
		Success: true,
		Data: dto.FacultyReportData{
			Faculty:    previewFaculty(rows),
			Statistics: dto.NewFacultyStatisticsData(stats),
			Filters: dto.FacultyFiltersData{
				DepartmentID:   filters.DepartmentID,
				EmploymentType: filters.EmploymentType,
			},
		},
	}

	if format == "" {
		return response, nil
	}

	renderer, reportFormat, err := s.rendererFor(format)
	if err != nil {
		return nil, err
	}

	data, err := renderer.RenderFacultyReport(rows, stats, filters)
	if err == nil {
		var filename string
		filename, err = s.store.Persist(data, models.ReportKindFaculty, reportFormat)
		if err == nil {
			response.DownloadURL = "/download/" + filename
			response.Message = fmt.Sprintf("%s report generated successfully with %d faculty members", strings.ToUpper(format), stats.Total)
			return response, nil
		}
	}

	s.logger.Error().Err(err).Str("format", format).Msg("Faculty report export failed")
	response.Warning = renderFailedWarning
	return response, nil
}

func (s *ReportService) rendererFor(format string) (DocumentRenderer, models.ReportFormat, error) {
	switch format {
	case string(models.ReportFormatPDF):
		return s.pdf, models.ReportFormatPDF, nil
	case string(models.ReportFormatExcel):
		return s.excel, models.ReportFormatExcel, nil
	default:
		return nil, "", fmt.Errorf("%w: %s", apperrors.ErrUnsupportedFormat, format)
	}
}

// sortStudentRows orders rows by numeric identity ascending, stable, so the
// preview is reproducible across repeated calls over the same snapshot.
func sortStudentRows(rows []models.StudentRow) {
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].ID < rows[j].ID
	})
}

func sortFacultyRows(rows []models.FacultyRow) {
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].ID < rows[j].ID
	})
}

func previewStudents(rows []models.StudentRow) []models.StudentRow {
	if len(rows) > report.PreviewRowLimit {
		rows = rows[:report.PreviewRowLimit]
	}
	preview := make([]models.StudentRow, len(rows))
	copy(preview, rows)
	return preview
}

func previewFaculty(rows []models.FacultyRow) []models.FacultyRow {
	if len(rows) > report.PreviewRowLimit {
		rows = rows[:report.PreviewRowLimit]
	}
	preview := make([]models.FacultyRow, len(rows))
	copy(preview, rows)
	return preview
}
