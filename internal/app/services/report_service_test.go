package services

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/yusuf/campushub/internal/app/models"
	"github.com/yusuf/campushub/internal/app/report"
	"github.com/yusuf/campushub/internal/pkg/apperrors"
)

type mockStudentSource struct {
	mock.Mock
}

func (m *mockStudentSource) FindAll(ctx context.Context, page, pageSize int, search string, departmentID, courseID *int64) ([]models.StudentRow, int, error) {
	args := m.Called(ctx, page, pageSize, search, departmentID, courseID)
	rows, _ := args.Get(0).([]models.StudentRow)
	return rows, args.Int(1), args.Error(2)
}

type mockFacultySource struct {
	mock.Mock
}

func (m *mockFacultySource) FindAll(ctx context.Context, page, pageSize int, search string, departmentID *int64) ([]models.FacultyRow, int, error) {
	args := m.Called(ctx, page, pageSize, search, departmentID)
	rows, _ := args.Get(0).([]models.FacultyRow)
	return rows, args.Int(1), args.Error(2)
}

type mockRenderer struct {
	mock.Mock
}

func (m *mockRenderer) RenderStudentReport(rows []models.StudentRow, stats report.StudentStatistics, filters report.StudentFilters) ([]byte, error) {
	args := m.Called(rows, stats, filters)
	data, _ := args.Get(0).([]byte)
	return data, args.Error(1)
}

func (m *mockRenderer) RenderFacultyReport(rows []models.FacultyRow, stats report.FacultyStatistics, filters report.FacultyFilters) ([]byte, error) {
	args := m.Called(rows, stats, filters)
	data, _ := args.Get(0).([]byte)
	return data, args.Error(1)
}

type mockStore struct {
	mock.Mock
}

func (m *mockStore) Persist(data []byte, kind models.ReportKind, format models.ReportFormat) (string, error) {
	args := m.Called(data, kind, format)
	return args.String(0), args.Error(1)
}

func studentRows(n int) []models.StudentRow {
	rows := make([]models.StudentRow, n)
	for i := range rows {
		rows[i] = models.StudentRow{
			ID:             int64(n - i), // reversed so sorting is observable
			StudentID:      fmt.Sprintf("S-%03d", n-i),
			Name:           fmt.Sprintf("Student %d", n-i),
			CourseCode:     "BSIT",
			DepartmentName: "Computer Studies",
			AcademicYear:   "2024-2025",
		}
	}
	return rows
}

func newStudentService(students *mockStudentSource, pdf *mockRenderer, store *mockStore) *ReportService {
	return NewReportService(students, &mockFacultySource{}, pdf, &mockRenderer{}, store, zerolog.Nop())
}

func TestReportService_GenerateStudentReport(t *testing.T) {
	ctx := context.Background()

	t.Run("preview only without format", func(t *testing.T) {
		students := &mockStudentSource{}
		students.On("FindAll", mock.Anything, 1, 1000, "", (*int64)(nil), (*int64)(nil)).
			Return(studentRows(25), 25, nil)

		service := newStudentService(students, &mockRenderer{}, &mockStore{})

		response, err := service.GenerateStudentReport(ctx, url.Values{}, "")
		require.NoError(t, err)

		assert.True(t, response.Success)
		assert.Len(t, response.Data.Students, report.PreviewRowLimit)
		assert.Equal(t, 25, response.Data.Statistics.Total)
		assert.Empty(t, response.DownloadURL)
		assert.Empty(t, response.Warning)
		students.AssertExpectations(t)
	})

	t.Run("preview rows are sorted by id", func(t *testing.T) {
		students := &mockStudentSource{}
		students.On("FindAll", mock.Anything, 1, 1000, "", (*int64)(nil), (*int64)(nil)).
			Return(studentRows(12), 12, nil)

		service := newStudentService(students, &mockRenderer{}, &mockStore{})

		response, err := service.GenerateStudentReport(ctx, url.Values{}, "")
		require.NoError(t, err)

		require.Len(t, response.Data.Students, report.PreviewRowLimit)
		for i, row := range response.Data.Students {
			assert.Equal(t, int64(i+1), row.ID)
		}
	})

	t.Run("repeated calls over the same snapshot agree", func(t *testing.T) {
		students := &mockStudentSource{}
		students.On("FindAll", mock.Anything, 1, 1000, "", (*int64)(nil), (*int64)(nil)).
			Return(studentRows(40), 40, nil)

		service := newStudentService(students, &mockRenderer{}, &mockStore{})

		first, err := service.GenerateStudentReport(ctx, url.Values{}, "")
		require.NoError(t, err)
		second, err := service.GenerateStudentReport(ctx, url.Values{}, "")
		require.NoError(t, err)

		assert.Equal(t, first.Data, second.Data)
	})

	t.Run("invalid filter ids fetch without restriction", func(t *testing.T) {
		students := &mockStudentSource{}
		students.On("FindAll", mock.Anything, 1, 1000, "", (*int64)(nil), (*int64)(nil)).
			Return(studentRows(3), 3, nil)

		service := newStudentService(students, &mockRenderer{}, &mockStore{})

		query := url.Values{"department_id": {"abc"}, "course_id": {"-4"}}
		response, err := service.GenerateStudentReport(ctx, query, "")
		require.NoError(t, err)

		assert.Equal(t, 3, response.Data.Statistics.Total)
		students.AssertExpectations(t)
	})

	t.Run("academic year filters the fetched snapshot", func(t *testing.T) {
		rows := []models.StudentRow{
			{ID: 1, AcademicYear: "2023-2024"},
			{ID: 2, AcademicYear: "2024-2025"},
		}
		students := &mockStudentSource{}
		students.On("FindAll", mock.Anything, 1, 1000, "", (*int64)(nil), (*int64)(nil)).
			Return(rows, 2, nil)

		service := newStudentService(students, &mockRenderer{}, &mockStore{})

		response, err := service.GenerateStudentReport(ctx, url.Values{"academic_year": {"2023"}}, "")
		require.NoError(t, err)

		require.Len(t, response.Data.Students, 1)
		assert.Equal(t, int64(1), response.Data.Students[0].ID)
		assert.Equal(t, 1, response.Data.Statistics.Total)
		assert.Equal(t, "2023", response.Data.Filters.AcademicYear)
	})

	t.Run("pdf export renders the full row set", func(t *testing.T) {
		rows := studentRows(30)
		students := &mockStudentSource{}
		students.On("FindAll", mock.Anything, 1, 1000, "", (*int64)(nil), (*int64)(nil)).
			Return(rows, 30, nil)

		pdf := &mockRenderer{}
		pdf.On("RenderStudentReport", mock.MatchedBy(func(rendered []models.StudentRow) bool {
			return len(rendered) == 30
		}), mock.Anything, mock.Anything).Return([]byte("%PDF"), nil)

		store := &mockStore{}
		store.On("Persist", []byte("%PDF"), models.ReportKindStudent, models.ReportFormatPDF).
			Return("student-report-1700000000000.pdf", nil)

		service := newStudentService(students, pdf, store)

		response, err := service.GenerateStudentReport(ctx, url.Values{}, "pdf")
		require.NoError(t, err)

		assert.Equal(t, "/download/student-report-1700000000000.pdf", response.DownloadURL)
		assert.Contains(t, response.Message, "PDF report generated successfully with 30 students")
		assert.Empty(t, response.Warning)
		assert.Len(t, response.Data.Students, report.PreviewRowLimit)
		pdf.AssertExpectations(t)
		store.AssertExpectations(t)
	})

	t.Run("render failure degrades to preview with warning", func(t *testing.T) {
		students := &mockStudentSource{}
		students.On("FindAll", mock.Anything, 1, 1000, "", (*int64)(nil), (*int64)(nil)).
			Return(studentRows(5), 5, nil)

		pdf := &mockRenderer{}
		pdf.On("RenderStudentReport", mock.Anything, mock.Anything, mock.Anything).
			Return(nil, errors.New("render boom"))

		service := newStudentService(students, pdf, &mockStore{})

		response, err := service.GenerateStudentReport(ctx, url.Values{}, "pdf")
		require.NoError(t, err)

		assert.True(t, response.Success)
		assert.Empty(t, response.DownloadURL)
		assert.NotEmpty(t, response.Warning)
		assert.Len(t, response.Data.Students, 5)
	})

	t.Run("persist failure degrades to preview with warning", func(t *testing.T) {
		students := &mockStudentSource{}
		students.On("FindAll", mock.Anything, 1, 1000, "", (*int64)(nil), (*int64)(nil)).
			Return(studentRows(5), 5, nil)

		pdf := &mockRenderer{}
		pdf.On("RenderStudentReport", mock.Anything, mock.Anything, mock.Anything).
			Return([]byte("%PDF"), nil)

		store := &mockStore{}
		store.On("Persist", mock.Anything, models.ReportKindStudent, models.ReportFormatPDF).
			Return("", errors.New("disk full"))

		service := newStudentService(students, pdf, store)

		response, err := service.GenerateStudentReport(ctx, url.Values{}, "pdf")
		require.NoError(t, err)

		assert.True(t, response.Success)
		assert.Empty(t, response.DownloadURL)
		assert.NotEmpty(t, response.Warning)
	})

	t.Run("fetch failure aborts the request", func(t *testing.T) {
		students := &mockStudentSource{}
		students.On("FindAll", mock.Anything, 1, 1000, "", (*int64)(nil), (*int64)(nil)).
			Return(nil, 0, errors.New("connection refused"))

		service := newStudentService(students, &mockRenderer{}, &mockStore{})

		response, err := service.GenerateStudentReport(ctx, url.Values{}, "")

		assert.Nil(t, response)
		assert.True(t, errors.Is(err, apperrors.ErrReportFetchFailed))
	})

	t.Run("unsupported format", func(t *testing.T) {
		students := &mockStudentSource{}
		students.On("FindAll", mock.Anything, 1, 1000, "", (*int64)(nil), (*int64)(nil)).
			Return(studentRows(2), 2, nil)

		service := newStudentService(students, &mockRenderer{}, &mockStore{})

		_, err := service.GenerateStudentReport(ctx, url.Values{}, "csv")
		assert.True(t, errors.Is(err, apperrors.ErrUnsupportedFormat))
	})
}

func TestReportService_GenerateFacultyReport(t *testing.T) {
	ctx := context.Background()

	rows := []models.FacultyRow{
		{ID: 1, Name: "A", EmploymentType: "Full-Time", Salary: "50000"},
		{ID: 2, Name: "B", EmploymentType: "Part-Time", Salary: "60000"},
		{ID: 3, Name: "C", EmploymentType: "Full-Time", Salary: ""},
	}

	t.Run("employment type all means no restriction", func(t *testing.T) {
		faculty := &mockFacultySource{}
		faculty.On("FindAll", mock.Anything, 1, 1000, "", (*int64)(nil)).
			Return(rows, 3, nil)

		service := NewReportService(&mockStudentSource{}, faculty, &mockRenderer{}, &mockRenderer{}, &mockStore{}, zerolog.Nop())

		response, err := service.GenerateFacultyReport(ctx, url.Values{"employment_type": {"all"}}, "")
		require.NoError(t, err)

		assert.Equal(t, 3, response.Data.Statistics.Total)
		assert.Empty(t, response.Data.Filters.EmploymentType)
		assert.Equal(t, 55000, response.Data.Statistics.AverageSalary)
	})

	t.Run("employment type exact match", func(t *testing.T) {
		faculty := &mockFacultySource{}
		faculty.On("FindAll", mock.Anything, 1, 1000, "", (*int64)(nil)).
			Return(rows, 3, nil)

		service := NewReportService(&mockStudentSource{}, faculty, &mockRenderer{}, &mockRenderer{}, &mockStore{}, zerolog.Nop())

		response, err := service.GenerateFacultyReport(ctx, url.Values{"employment_type": {"Full-Time"}}, "")
		require.NoError(t, err)

		assert.Equal(t, 2, response.Data.Statistics.Total)
		assert.Len(t, response.Data.Faculty, 2)
	})

	t.Run("excel export", func(t *testing.T) {
		faculty := &mockFacultySource{}
		faculty.On("FindAll", mock.Anything, 1, 1000, "", (*int64)(nil)).
			Return(rows, 3, nil)

		excel := &mockRenderer{}
		excel.On("RenderFacultyReport", mock.Anything, mock.Anything, mock.Anything).
			Return([]byte("workbook"), nil)

		store := &mockStore{}
		store.On("Persist", []byte("workbook"), models.ReportKindFaculty, models.ReportFormatExcel).
			Return("faculty-report-1700000000000.xlsx", nil)

		service := NewReportService(&mockStudentSource{}, faculty, &mockRenderer{}, excel, store, zerolog.Nop())

		response, err := service.GenerateFacultyReport(ctx, url.Values{}, "excel")
		require.NoError(t, err)

		assert.Equal(t, "/download/faculty-report-1700000000000.xlsx", response.DownloadURL)
		assert.Contains(t, response.Message, "EXCEL report generated successfully with 3 faculty members")
		excel.AssertExpectations(t)
		store.AssertExpectations(t)
	})

	t.Run("fetch failure aborts the request", func(t *testing.T) {
		faculty := &mockFacultySource{}
		faculty.On("FindAll", mock.Anything, 1, 1000, "", (*int64)(nil)).
			Return(nil, 0, errors.New("timeout"))

		service := NewReportService(&mockStudentSource{}, faculty, &mockRenderer{}, &mockRenderer{}, &mockStore{}, zerolog.Nop())

		_, err := service.GenerateFacultyReport(ctx, url.Values{}, "")
		assert.True(t, errors.Is(err, apperrors.ErrReportFetchFailed))
	})
}
