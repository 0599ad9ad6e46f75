package report

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yusuf/campushub/internal/app/models"
)

func TestGroupStudents(t *testing.T) {
	t.Run("bucket counts partition the row set", func(t *testing.T) {
		rows := []models.StudentRow{
			{ID: 1, CourseCode: "BSIT", DepartmentName: "CS", AcademicYear: "2023-2024"},
			{ID: 2, CourseCode: "BSIT", DepartmentName: "CS", AcademicYear: "2024-2025"},
			{ID: 3, CourseCode: "BSCS", DepartmentName: "CS", AcademicYear: "2024-2025"},
			{ID: 4, CourseCode: "", DepartmentName: "", AcademicYear: ""},
		}

		stats := GroupStudents(rows)

		assert.Equal(t, 4, stats.Total)

		for _, buckets := range [][]Bucket{stats.ByCourse, stats.ByDepartment, stats.ByAcademicYear} {
			sum := 0
			for _, bucket := range buckets {
				sum += bucket.Count
			}
			assert.Equal(t, stats.Total, sum)
		}

		assert.Equal(t, []Bucket{
			{Label: "BSIT", Count: 2},
			{Label: "BSCS", Count: 1},
			{Label: "Unknown", Count: 1},
		}, stats.ByCourse)

		assert.Equal(t, []Bucket{
			{Label: "CS", Count: 3},
			{Label: "Unknown", Count: 1},
		}, stats.ByDepartment)
	})

	t.Run("empty row set", func(t *testing.T) {
		stats := GroupStudents(nil)

		assert.Zero(t, stats.Total)
		assert.Empty(t, stats.ByCourse)
		assert.Empty(t, stats.ByDepartment)
		assert.Empty(t, stats.ByAcademicYear)
	})
}

func TestGroupFaculty(t *testing.T) {
	t.Run("average ignores missing and non-positive salaries", func(t *testing.T) {
		rows := []models.FacultyRow{
			{ID: 1, Salary: "50000"},
			{ID: 2, Salary: "60000"},
			{ID: 3, Salary: "0"},
			{ID: 4, Salary: ""},
			{ID: 5, Salary: "-10"},
		}

		stats := GroupFaculty(rows)

		assert.Equal(t, 5, stats.Total)
		assert.InDelta(t, 55000, stats.AverageSalary, 0.001)
		assert.Equal(t, 55000, stats.RoundedAverageSalary())
	})

	t.Run("non-numeric salaries are excluded", func(t *testing.T) {
		rows := []models.FacultyRow{
			{ID: 1, Salary: "N/A"},
			{ID: 2, Salary: "not a number"},
			{ID: 3, Salary: "45000.50"},
		}

		stats := GroupFaculty(rows)

		assert.InDelta(t, 45000.50, stats.AverageSalary, 0.001)
		assert.Equal(t, 45001, stats.RoundedAverageSalary())
	})

	t.Run("no contributing salary yields zero", func(t *testing.T) {
		rows := []models.FacultyRow{
			{ID: 1, Salary: ""},
			{ID: 2, Salary: "0"},
		}

		stats := GroupFaculty(rows)

		assert.Zero(t, stats.AverageSalary)
		assert.Zero(t, stats.RoundedAverageSalary())
	})

	t.Run("grouping with defaults", func(t *testing.T) {
		rows := []models.FacultyRow{
			{ID: 1, DepartmentName: "Engineering", EmploymentType: "Full-Time", Position: "Professor"},
			{ID: 2, DepartmentName: "Engineering", EmploymentType: "", Position: ""},
		}

		stats := GroupFaculty(rows)

		assert.Equal(t, []Bucket{{Label: "Engineering", Count: 2}}, stats.ByDepartment)
		assert.Equal(t, []Bucket{
			{Label: "Full-Time", Count: 1},
			{Label: "Unknown", Count: 1},
		}, stats.ByEmploymentType)
		assert.Equal(t, []Bucket{
			{Label: "Professor", Count: 1},
			{Label: "Unknown", Count: 1},
		}, stats.ByPosition)
	})
}
