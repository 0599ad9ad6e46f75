package report

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/rs/zerolog"

	"github.com/yusuf/campushub/internal/app/models"
	"github.com/yusuf/campushub/internal/pkg/logger"
)

// PDFRenderer writes page-flow report documents. The detail table is capped
// at PDFDetailRowCap rows; overflow onto additional pages is left to the
// page-flow engine.
type PDFRenderer struct {
	logger zerolog.Logger
}

// NewPDFRenderer creates a new PDFRenderer
func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{
		logger: logger.WithComponent("pdf_renderer"),
	}
}

// RenderStudentReport produces the student report PDF document.
func (r *PDFRenderer) RenderStudentReport(rows []models.StudentRow, stats StudentStatistics, filters StudentFilters) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	writeTitle(pdf, "Student Report")

	pdf.SetFont("Helvetica", "", 10)
	writeLine(pdf, "Report Generated: "+time.Now().Format("2006-01-02 15:04:05"))
	if filters.DepartmentID != nil {
		writeLine(pdf, fmt.Sprintf("Department ID: %d", *filters.DepartmentID))
	}
	if filters.CourseID != nil {
		writeLine(pdf, fmt.Sprintf("Course ID: %d", *filters.CourseID))
	}
	if filters.AcademicYear != "" {
		writeLine(pdf, "Academic Year: "+filters.AcademicYear)
	}
	pdf.Ln(4)

	writeSectionHeader(pdf, "Summary Statistics", 12)
	pdf.SetFont("Helvetica", "", 10)
	writeLine(pdf, fmt.Sprintf("Total Students: %d", stats.Total))
	pdf.Ln(2)

	writeBucketSection(pdf, "By Department:", stats.ByDepartment)
	writeBucketSection(pdf, "By Course:", stats.ByCourse)
	writeBucketSection(pdf, "By Academic Year:", stats.ByAcademicYear)

	if len(rows) > 0 {
		writeSectionHeader(pdf, "Student Details", 12)
		r.writeStudentTable(pdf, rows)
	}

	return pdfBytes(pdf)
}

// RenderFacultyReport produces the faculty report PDF document.
func (r *PDFRenderer) RenderFacultyReport(rows []models.FacultyRow, stats FacultyStatistics, filters FacultyFilters) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	writeTitle(pdf, "Faculty Report")

	pdf.SetFont("Helvetica", "", 10)
	writeLine(pdf, "Report Generated: "+time.Now().Format("2006-01-02 15:04:05"))
	if filters.DepartmentID != nil {
		writeLine(pdf, fmt.Sprintf("Department ID: %d", *filters.DepartmentID))
	}
	if filters.EmploymentType != "" {
		writeLine(pdf, "Employment Type: "+filters.EmploymentType)
	}
	pdf.Ln(4)

	writeSectionHeader(pdf, "Summary Statistics", 12)
	pdf.SetFont("Helvetica", "", 10)
	writeLine(pdf, fmt.Sprintf("Total Faculty: %d", stats.Total))
	writeLine(pdf, fmt.Sprintf("Average Salary: %.2f", stats.AverageSalary))
	pdf.Ln(2)

	writeBucketSection(pdf, "By Department:", stats.ByDepartment)
	writeBucketSection(pdf, "By Employment Type:", stats.ByEmploymentType)
	writeBucketSection(pdf, "By Position:", stats.ByPosition)

	if len(rows) > 0 {
		writeSectionHeader(pdf, "Faculty Details", 12)
		r.writeFacultyTable(pdf, rows)
	}

	return pdfBytes(pdf)
}

func (r *PDFRenderer) writeStudentTable(pdf *fpdf.Fpdf, rows []models.StudentRow) {
	widths := []float64{18, 38, 48, 48, 28}
	headers := []string{"ID", "Name", "Department", "Course", "Year"}
	writeTableHeader(pdf, headers, widths)

	pdf.SetFont("Helvetica", "", 7)
	for i, row := range rows {
		if i >= PDFDetailRowCap {
			break
		}
		cells := []string{
			fmt.Sprintf("%d", row.ID),
			truncate(row.Name, studentNameChars),
			truncate(row.DepartmentName, studentDeptChars),
			truncate(row.CourseCode, studentCourseChars),
			truncate(row.AcademicYear, studentYearChars),
		}
		writeTableRow(pdf, cells, widths)
	}
}

func (r *PDFRenderer) writeFacultyTable(pdf *fpdf.Fpdf, rows []models.FacultyRow) {
	widths := []float64{15, 35, 48, 52, 30}
	headers := []string{"ID", "Name", "Department", "Position", "Type"}
	writeTableHeader(pdf, headers, widths)

	pdf.SetFont("Helvetica", "", 7)
	for i, row := range rows {
		if i >= PDFDetailRowCap {
			break
		}
		cells := []string{
			fmt.Sprintf("%d", row.ID),
			truncate(row.Name, facultyNameChars),
			truncate(row.DepartmentName, facultyDeptChars),
			truncate(row.Position, facultyPositionChars),
			truncate(row.EmploymentType, facultyTypeChars),
		}
		writeTableRow(pdf, cells, widths)
	}
}

func writeTitle(pdf *fpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(0, 12, title, "", 1, "C", false, 0, "")
	pdf.Ln(4)
}

func writeSectionHeader(pdf *fpdf.Fpdf, title string, size float64) {
	pdf.SetFont("Helvetica", "B", size)
	pdf.CellFormat(0, 7, title, "", 1, "L", false, 0, "")
}

func writeLine(pdf *fpdf.Fpdf, text string) {
	pdf.CellFormat(0, 5, text, "", 1, "L", false, 0, "")
}

func writeBucketSection(pdf *fpdf.Fpdf, title string, buckets []Bucket) {
	if len(buckets) == 0 {
		return
	}

	writeSectionHeader(pdf, title, 11)
	pdf.SetFont("Helvetica", "", 10)
	for _, bucket := range buckets {
		writeLine(pdf, fmt.Sprintf("  %s: %d", bucket.Label, bucket.Count))
	}
	pdf.Ln(2)
}

func writeTableHeader(pdf *fpdf.Fpdf, headers []string, widths []float64) {
	pdf.SetFont("Helvetica", "B", 9)
	for i, header := range headers {
		pdf.CellFormat(widths[i], 6, header, "B", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)
}

func writeTableRow(pdf *fpdf.Fpdf, cells []string, widths []float64) {
	for i, cell := range cells {
		pdf.CellFormat(widths[i], 5, cell, "", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)
}

// truncate cuts s to at most max runes. Short and empty strings pass through
// unchanged.
func truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}

	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}

func pdfBytes(pdf *fpdf.Fpdf) ([]byte, error) {
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to write pdf document: %w", err)
	}
	return buf.Bytes(), nil
}
