package report

import (
	"math"
	"strconv"
	"strings"

	"github.com/yusuf/campushub/internal/app/models"
)

// Bucket is one grouping entry: a resolved dimension label and the number of
// rows that carry it.
type Bucket struct {
	Label string
	Count int
}

// StudentStatistics holds the grouped counts for a filtered student row set.
// Bucket order is first-seen insertion order of the grouping pass.
type StudentStatistics struct {
	Total          int
	ByCourse       []Bucket
	ByDepartment   []Bucket
	ByAcademicYear []Bucket
}

// FacultyStatistics holds the grouped counts and the salary aggregate for a
// filtered faculty row set.
type FacultyStatistics struct {
	Total            int
	ByDepartment     []Bucket
	ByEmploymentType []Bucket
	ByPosition       []Bucket
	// AverageSalary is computed only over rows with a positive numeric
	// salary; rows with missing, non-numeric or non-positive values count
	// toward neither the sum nor the divisor. Zero when no row contributes.
	AverageSalary float64
}

// RoundedAverageSalary returns the salary average rounded to the nearest
// integer, the precision surfaced in the JSON preview.
func (s FacultyStatistics) RoundedAverageSalary() int {
	return int(math.Round(s.AverageSalary))
}

// grouper accumulates counts per label while remembering first-seen order.
type grouper struct {
	counts map[string]int
	order  []string
}

func newGrouper() *grouper {
	return &grouper{counts: make(map[string]int)}
}

func (g *grouper) add(label string) {
	if label == "" {
		label = models.UnknownLabel
	}
	if _, seen := g.counts[label]; !seen {
		g.order = append(g.order, label)
	}
	g.counts[label]++
}

func (g *grouper) buckets() []Bucket {
	buckets := make([]Bucket, 0, len(g.order))
	for _, label := range g.order {
		buckets = append(buckets, Bucket{Label: label, Count: g.counts[label]})
	}
	return buckets
}

// GroupStudents computes the per-dimension counts for a fully filtered
// student row set. Every row falls into exactly one bucket per dimension,
// missing labels grouped under "Unknown".
func GroupStudents(rows []models.StudentRow) StudentStatistics {
	byCourse := newGrouper()
	byDepartment := newGrouper()
	byAcademicYear := newGrouper()

	for _, row := range rows {
		byCourse.add(row.CourseCode)
		byDepartment.add(row.DepartmentName)
		byAcademicYear.add(row.AcademicYear)
	}

	return StudentStatistics{
		Total:          len(rows),
		ByCourse:       byCourse.buckets(),
		ByDepartment:   byDepartment.buckets(),
		ByAcademicYear: byAcademicYear.buckets(),
	}
}

// GroupFaculty computes the per-dimension counts and the salary average for a
// fully filtered faculty row set. This single routine feeds the JSON preview,
// the PDF renderer and the spreadsheet renderer so the three never disagree.
func GroupFaculty(rows []models.FacultyRow) FacultyStatistics {
	byDepartment := newGrouper()
	byEmploymentType := newGrouper()
	byPosition := newGrouper()

	var totalSalary float64
	var salaryCount int

	for _, row := range rows {
		byDepartment.add(row.DepartmentName)
		byEmploymentType.add(row.EmploymentType)
		byPosition.add(row.Position)

		if salary, ok := parseSalary(row.Salary); ok {
			totalSalary += salary
			salaryCount++
		}
	}

	var average float64
	if salaryCount > 0 {
		average = totalSalary / float64(salaryCount)
	}

	return FacultyStatistics{
		Total:            len(rows),
		ByDepartment:     byDepartment.buckets(),
		ByEmploymentType: byEmploymentType.buckets(),
		ByPosition:       byPosition.buckets(),
		AverageSalary:    average,
	}
}

// parseSalary coerces a salary column value to a number. Missing, non-numeric
// and non-positive values are excluded from the average entirely.
func parseSalary(raw string) (float64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == models.NotAvailable {
		return 0, false
	}

	salary, err := strconv.ParseFloat(raw, 64)
	if err != nil || salary <= 0 {
		return 0, false
	}

	return salary, true
}
