package models

// Default labels used when a row's relation is missing. Aggregation keys and
// rendered cells never carry empty strings; the repositories resolve missing
// joins to these values at the scan boundary.
const (
	UnknownLabel = "Unknown"
	NotAvailable = "N/A"
)

// ReportKind selects the entity stream and dimension set for a report
type ReportKind string

const (
	ReportKindStudent ReportKind = "student"
	ReportKindFaculty ReportKind = "faculty"
)

// ReportFormat selects the export document type
type ReportFormat string

const (
	ReportFormatPDF   ReportFormat = "pdf"
	ReportFormatExcel ReportFormat = "excel"
)

// StudentRow is a denormalized student record with display labels already
// joined by the repository.
type StudentRow struct {
	ID             int64  `json:"id"`
	StudentID      string `json:"student_id"`
	Name           string `json:"name"`
	CourseCode     string `json:"course_code"`
	DepartmentName string `json:"department_name"`
	AcademicYear   string `json:"academic_year"`
	ContactNumber  string `json:"contact_number"`
}

// FacultyRow is a denormalized faculty record with display labels already
// joined by the repository. Salary is kept as the raw column text; the
// statistics aggregator owns the numeric coercion rules.
type FacultyRow struct {
	ID             int64  `json:"id"`
	EmployeeID     string `json:"employee_id"`
	Name           string `json:"name"`
	DepartmentName string `json:"department_name"`
	Position       string `json:"position"`
	EmploymentType string `json:"employment_type"`
	Salary         string `json:"salary"`
}
