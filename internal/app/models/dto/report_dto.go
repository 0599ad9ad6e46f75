package dto

import (
	"github.com/yusuf/campushub/internal/app/models"
	"github.com/yusuf/campushub/internal/app/report"
)

// CourseCount is one "by course" statistics entry
type CourseCount struct {
	Course string `json:"course" example:"BSIT"`
	Count  int    `json:"count" example:"12"`
}

// DepartmentCount is one "by department" statistics entry
type DepartmentCount struct {
	Department string `json:"department" example:"Computer Science"`
	Count      int    `json:"count" example:"8"`
}

// YearCount is one "by academic year" statistics entry
type YearCount struct {
	Year  string `json:"year" example:"2024-2025"`
	Count int    `json:"count" example:"5"`
}

// EmploymentTypeCount is one "by employment type" statistics entry
type EmploymentTypeCount struct {
	Type  string `json:"type" example:"Full-Time"`
	Count int    `json:"count" example:"4"`
}

// PositionCount is one "by position" statistics entry
type PositionCount struct {
	Position string `json:"position" example:"Professor"`
	Count    int    `json:"count" example:"3"`
}

// StudentStatisticsData is the statistics block of the student report payload
type StudentStatisticsData struct {
	Total          int               `json:"total"`
	ByCourse       []CourseCount     `json:"byCourse"`
	ByDepartment   []DepartmentCount `json:"byDepartment"`
	ByAcademicYear []YearCount       `json:"byAcademicYear"`
}

// FacultyStatisticsData is the statistics block of the faculty report payload
type FacultyStatisticsData struct {
	Total            int                   `json:"total"`
	ByDepartment     []DepartmentCount     `json:"byDepartment"`
	ByEmploymentType []EmploymentTypeCount `json:"byEmploymentType"`
	ByPosition       []PositionCount       `json:"byPosition"`
	AverageSalary    int                   `json:"averageSalary"`
}

// StudentFiltersData echoes the filters actually applied to a student report
type StudentFiltersData struct {
	DepartmentID *int64 `json:"department_id,omitempty"`
	CourseID     *int64 `json:"course_id,omitempty"`
	AcademicYear string `json:"academic_year,omitempty"`
}

// FacultyFiltersData echoes the filters actually applied to a faculty report
type FacultyFiltersData struct {
	DepartmentID   *int64 `json:"department_id,omitempty"`
	EmploymentType string `json:"employment_type,omitempty"`
}

// StudentReportData carries the preview payload of a student report
type StudentReportData struct {
	Students   []models.StudentRow   `json:"students"`
	Statistics StudentStatisticsData `json:"statistics"`
	Filters    StudentFiltersData    `json:"filters"`
}

// FacultyReportData carries the preview payload of a faculty report
type FacultyReportData struct {
	Faculty    []models.FacultyRow   `json:"faculty"`
	Statistics FacultyStatisticsData `json:"statistics"`
	Filters    FacultyFiltersData    `json:"filters"`
}

// StudentReportResponse is the full student report envelope. DownloadURL and
// Message are set only after a successful export; Warning is set when the
// export failed but the preview is still usable.
type StudentReportResponse struct {
	Success     bool              `json:"success"`
	Data        StudentReportData `json:"data"`
	DownloadURL string            `json:"download_url,omitempty"`
	Message     string            `json:"message,omitempty"`
	Warning     string            `json:"warning,omitempty"`
}

// FacultyReportResponse is the full faculty report envelope
type FacultyReportResponse struct {
	Success     bool              `json:"success"`
	Data        FacultyReportData `json:"data"`
	DownloadURL string            `json:"download_url,omitempty"`
	Message     string            `json:"message,omitempty"`
	Warning     string            `json:"warning,omitempty"`
}

// NewStudentStatisticsData converts aggregator output to the JSON shape
func NewStudentStatisticsData(stats report.StudentStatistics) StudentStatisticsData {
	data := StudentStatisticsData{
		Total:          stats.Total,
		ByCourse:       make([]CourseCount, 0, len(stats.ByCourse)),
		ByDepartment:   make([]DepartmentCount, 0, len(stats.ByDepartment)),
		ByAcademicYear: make([]YearCount, 0, len(stats.ByAcademicYear)),
	}

	for _, b := range stats.ByCourse {
		data.ByCourse = append(data.ByCourse, CourseCount{Course: b.Label, Count: b.Count})
	}
	for _, b := range stats.ByDepartment {
		data.ByDepartment = append(data.ByDepartment, DepartmentCount{Department: b.Label, Count: b.Count})
	}
	for _, b := range stats.ByAcademicYear {
		data.ByAcademicYear = append(data.ByAcademicYear, YearCount{Year: b.Label, Count: b.Count})
	}

	return data
}

// NewFacultyStatisticsData converts aggregator output to the JSON shape
func NewFacultyStatisticsData(stats report.FacultyStatistics) FacultyStatisticsData {
	data := FacultyStatisticsData{
		Total:            stats.Total,
		ByDepartment:     make([]DepartmentCount, 0, len(stats.ByDepartment)),
		ByEmploymentType: make([]EmploymentTypeCount, 0, len(stats.ByEmploymentType)),
		ByPosition:       make([]PositionCount, 0, len(stats.ByPosition)),
		AverageSalary:    stats.RoundedAverageSalary(),
	}

	for _, b := range stats.ByDepartment {
		data.ByDepartment = append(data.ByDepartment, DepartmentCount{Department: b.Label, Count: b.Count})
	}
	for _, b := range stats.ByEmploymentType {
		data.ByEmploymentType = append(data.ByEmploymentType, EmploymentTypeCount{Type: b.Label, Count: b.Count})
	}
	for _, b := range stats.ByPosition {
		data.ByPosition = append(data.ByPosition, PositionCount{Position: b.Label, Count: b.Count})
	}

	return data
}
