package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yusuf/campushub/internal/app/models"
	"github.com/yusuf/campushub/internal/app/models/dto"
	"github.com/yusuf/campushub/internal/app/report"
	"github.com/yusuf/campushub/internal/app/services"
	"github.com/yusuf/campushub/internal/pkg/artifacts"
)

type stubStudentSource struct {
	rows []models.StudentRow
	err  error
}

func (s *stubStudentSource) FindAll(ctx context.Context, page, pageSize int, search string, departmentID, courseID *int64) ([]models.StudentRow, int, error) {
	return s.rows, len(s.rows), s.err
}

type stubFacultySource struct {
	rows []models.FacultyRow
	err  error
}

func (s *stubFacultySource) FindAll(ctx context.Context, page, pageSize int, search string, departmentID *int64) ([]models.FacultyRow, int, error) {
	return s.rows, len(s.rows), s.err
}

func newTestRouter(t *testing.T, students services.StudentDataSource, faculty services.FacultyDataSource) (*gin.Engine, *artifacts.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store, err := artifacts.NewStore(t.TempDir(), time.Minute, time.Hour)
	require.NoError(t, err)
	t.Cleanup(store.Close)

	service := services.NewReportService(students, faculty, report.NewPDFRenderer(), report.NewExcelRenderer(), store, zerolog.Nop())
	controller := NewReportController(service, store)

	router := gin.New()
	router.GET("/api/v1/reports/students", controller.GetStudentReport)
	router.GET("/api/v1/reports/faculty", controller.GetFacultyReport)
	router.GET("/download/:filename", controller.DownloadReport)
	return router, store
}

func performRequest(router *gin.Engine, path string) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, path, nil)
	router.ServeHTTP(recorder, request)
	return recorder
}

func TestReportController_GetStudentReport(t *testing.T) {
	rows := make([]models.StudentRow, 12)
	for i := range rows {
		rows[i] = models.StudentRow{
			ID:             int64(i + 1),
			StudentID:      fmt.Sprintf("S-%03d", i+1),
			Name:           fmt.Sprintf("Student %d", i+1),
			CourseCode:     "BSIT",
			DepartmentName: "Computer Studies",
			AcademicYear:   "2024-2025",
		}
	}

	t.Run("preview envelope", func(t *testing.T) {
		router, _ := newTestRouter(t, &stubStudentSource{rows: rows}, &stubFacultySource{})

		recorder := performRequest(router, "/api/v1/reports/students")
		require.Equal(t, http.StatusOK, recorder.Code)

		var response dto.StudentReportResponse
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))

		assert.True(t, response.Success)
		assert.Len(t, response.Data.Students, report.PreviewRowLimit)
		assert.Equal(t, 12, response.Data.Statistics.Total)
		assert.Empty(t, response.DownloadURL)
	})

	t.Run("pdf export produces a working download link", func(t *testing.T) {
		router, _ := newTestRouter(t, &stubStudentSource{rows: rows}, &stubFacultySource{})

		recorder := performRequest(router, "/api/v1/reports/students?format=pdf")
		require.Equal(t, http.StatusOK, recorder.Code)

		var response dto.StudentReportResponse
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
		require.NotEmpty(t, response.DownloadURL)

		download := performRequest(router, response.DownloadURL)
		require.Equal(t, http.StatusOK, download.Code)
		assert.Equal(t, "application/pdf", download.Header().Get("Content-Type"))
		assert.Contains(t, download.Header().Get("Content-Disposition"), "attachment")
		assert.Equal(t, "%PDF", download.Body.String()[:4])
	})

	t.Run("unsupported format is rejected before fetching", func(t *testing.T) {
		source := &stubStudentSource{err: errors.New("should not be called")}
		router, _ := newTestRouter(t, source, &stubFacultySource{})

		recorder := performRequest(router, "/api/v1/reports/students?format=docx")
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("fetch failure returns 500", func(t *testing.T) {
		source := &stubStudentSource{err: errors.New("connection refused")}
		router, _ := newTestRouter(t, source, &stubFacultySource{})

		recorder := performRequest(router, "/api/v1/reports/students")
		require.Equal(t, http.StatusInternalServerError, recorder.Code)

		var response dto.ErrorResponse
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
		assert.False(t, response.Success)
		assert.Equal(t, dto.ErrorCodeReportFailed, response.Error.Code)
	})
}

func TestReportController_GetFacultyReport(t *testing.T) {
	rows := []models.FacultyRow{
		{ID: 1, Name: "A", DepartmentName: "Engineering", Position: "Professor", EmploymentType: "Full-Time", Salary: "50000"},
		{ID: 2, Name: "B", DepartmentName: "Engineering", Position: "Lecturer", EmploymentType: "Part-Time", Salary: "60000"},
	}

	router, _ := newTestRouter(t, &stubStudentSource{}, &stubFacultySource{rows: rows})

	recorder := performRequest(router, "/api/v1/reports/faculty?employment_type=Full-Time&format=excel")
	require.Equal(t, http.StatusOK, recorder.Code)

	var response dto.FacultyReportResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))

	assert.True(t, response.Success)
	assert.Equal(t, 1, response.Data.Statistics.Total)
	assert.Equal(t, 50000, response.Data.Statistics.AverageSalary)
	assert.NotEmpty(t, response.DownloadURL)
	assert.Contains(t, response.Message, "1 faculty members")
}

func TestReportController_DownloadReport(t *testing.T) {
	router, store := newTestRouter(t, &stubStudentSource{}, &stubFacultySource{})

	t.Run("missing file", func(t *testing.T) {
		recorder := performRequest(router, "/download/student-report-1.pdf")
		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})

	t.Run("traversal filename", func(t *testing.T) {
		recorder := performRequest(router, "/download/student-report-..1.pdf")
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("streams stored artifact", func(t *testing.T) {
		filename, err := store.Persist([]byte("workbook-bytes"), models.ReportKindFaculty, models.ReportFormatExcel)
		require.NoError(t, err)

		recorder := performRequest(router, "/download/"+filename)
		require.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "workbook-bytes", recorder.Body.String())
		assert.Contains(t, recorder.Header().Get("Content-Type"), "spreadsheetml")
	})
}
