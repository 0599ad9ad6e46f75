package report

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/yusuf/campushub/internal/app/models"
)

// EmploymentTypeAll is the query value treated the same as an absent filter.
const EmploymentTypeAll = "all"

// StudentFilters is the canonical filter set for student reports. Nil or empty
// fields mean "no restriction on that dimension".
type StudentFilters struct {
	DepartmentID *int64
	CourseID     *int64
	// AcademicYear is matched as a substring of the row's resolved academic
	// year label, not as an equality filter: "2024" matches "2024-2025".
	AcademicYear string
}

// FacultyFilters is the canonical filter set for faculty reports.
type FacultyFilters struct {
	DepartmentID   *int64
	EmploymentType string
}

// NormalizeStudentFilters parses query-style filter input into a canonical
// filter set. Invalid input degrades to "no restriction", it never errors.
func NormalizeStudentFilters(query url.Values) StudentFilters {
	return StudentFilters{
		DepartmentID: parseOptionalID(query.Get("department_id")),
		CourseID:     parseOptionalID(query.Get("course_id")),
		AcademicYear: strings.TrimSpace(query.Get("academic_year")),
	}
}

// NormalizeFacultyFilters parses query-style filter input into a canonical
// filter set. The literal employment type "all" is equivalent to absent.
func NormalizeFacultyFilters(query url.Values) FacultyFilters {
	employmentType := strings.TrimSpace(query.Get("employment_type"))
	if employmentType == EmploymentTypeAll {
		employmentType = ""
	}

	return FacultyFilters{
		DepartmentID:   parseOptionalID(query.Get("department_id")),
		EmploymentType: employmentType,
	}
}

// parseOptionalID treats empty or unparsable values as absent so that a bad
// query parameter can never leak a zero or negative restriction downstream.
func parseOptionalID(raw string) *int64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return nil
	}

	return &id
}

// ApplyStudentFilters applies the filters the data layer cannot evaluate
// natively: the academic year substring match.
func ApplyStudentFilters(rows []models.StudentRow, filters StudentFilters) []models.StudentRow {
	if filters.AcademicYear == "" {
		return rows
	}

	filtered := make([]models.StudentRow, 0, len(rows))
	for _, row := range rows {
		if strings.Contains(row.AcademicYear, filters.AcademicYear) {
			filtered = append(filtered, row)
		}
	}
	return filtered
}

// ApplyFacultyFilters applies the post-fetch employment type exact match.
func ApplyFacultyFilters(rows []models.FacultyRow, filters FacultyFilters) []models.FacultyRow {
	if filters.EmploymentType == "" {
		return rows
	}

	filtered := make([]models.FacultyRow, 0, len(rows))
	for _, row := range rows {
		if row.EmploymentType == filters.EmploymentType {
			filtered = append(filtered, row)
		}
	}
	return filtered
}
