package report

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"

	"github.com/yusuf/campushub/internal/app/models"
	"github.com/yusuf/campushub/internal/pkg/logger"
)

// Sheet names shared by both report kinds
const (
	summarySheetName        = "Summary"
	byDepartmentSheetName   = "By Department"
	byCourseSheetName       = "By Course"
	byAcademicYearSheetName = "By Academic Year"
	byEmploymentSheetName   = "By Employment Type"
	byPositionSheetName     = "By Position"
)

// ExcelRenderer writes workbook exports. Unlike the PDF detail table and the
// JSON preview, the detail sheet carries every filtered row: this renderer is
// the canonical complete export.
type ExcelRenderer struct {
	logger zerolog.Logger
}

// NewExcelRenderer creates a new ExcelRenderer
func NewExcelRenderer() *ExcelRenderer {
	return &ExcelRenderer{
		logger: logger.WithComponent("excel_renderer"),
	}
}

// RenderStudentReport produces the student report workbook.
func (r *ExcelRenderer) RenderStudentReport(rows []models.StudentRow, stats StudentStatistics, filters StudentFilters) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetDocProps(&excelize.DocProperties{
		Title:   "Student Report",
		Subject: "Student enrollment data",
		Creator: "CampusHub",
		Created: time.Now().String(),
	})

	if err := r.createStudentSheet(f, rows); err != nil {
		return nil, fmt.Errorf("failed to create detail sheet: %w", err)
	}

	summaryRows := []summaryRow{{"Total Students", stats.Total}, {"Report Generated", time.Now().Format("2006-01-02 15:04:05")}}
	if filters.DepartmentID != nil {
		summaryRows = append(summaryRows, summaryRow{"Department ID", *filters.DepartmentID})
	}
	if filters.CourseID != nil {
		summaryRows = append(summaryRows, summaryRow{"Course ID", *filters.CourseID})
	}
	if filters.AcademicYear != "" {
		summaryRows = append(summaryRows, summaryRow{"Academic Year", filters.AcademicYear})
	}
	if err := createSummarySheet(f, summaryRows); err != nil {
		return nil, fmt.Errorf("failed to create summary sheet: %w", err)
	}

	bucketSheets := []bucketSheet{
		{byDepartmentSheetName, "Department", stats.ByDepartment},
		{byCourseSheetName, "Course Code", stats.ByCourse},
		{byAcademicYearSheetName, "Academic Year", stats.ByAcademicYear},
	}
	if err := createBucketSheets(f, bucketSheets); err != nil {
		return nil, err
	}

	return workbookBytes(f, r.logger, len(rows))
}

// RenderFacultyReport produces the faculty report workbook.
func (r *ExcelRenderer) RenderFacultyReport(rows []models.FacultyRow, stats FacultyStatistics, filters FacultyFilters) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetDocProps(&excelize.DocProperties{
		Title:   "Faculty Report",
		Subject: "Faculty employment data",
		Creator: "CampusHub",
		Created: time.Now().String(),
	})

	if err := r.createFacultySheet(f, rows); err != nil {
		return nil, fmt.Errorf("failed to create detail sheet: %w", err)
	}

	summaryRows := []summaryRow{
		{"Total Faculty", stats.Total},
		{"Average Salary", stats.AverageSalary},
		{"Report Generated", time.Now().Format("2006-01-02 15:04:05")},
	}
	if filters.DepartmentID != nil {
		summaryRows = append(summaryRows, summaryRow{"Department ID", *filters.DepartmentID})
	}
	if filters.EmploymentType != "" {
		summaryRows = append(summaryRows, summaryRow{"Employment Type", filters.EmploymentType})
	}
	if err := createSummarySheet(f, summaryRows); err != nil {
		return nil, fmt.Errorf("failed to create summary sheet: %w", err)
	}

	bucketSheets := []bucketSheet{
		{byDepartmentSheetName, "Department", stats.ByDepartment},
		{byEmploymentSheetName, "Type", stats.ByEmploymentType},
		{byPositionSheetName, "Position", stats.ByPosition},
	}
	if err := createBucketSheets(f, bucketSheets); err != nil {
		return nil, err
	}

	return workbookBytes(f, r.logger, len(rows))
}

// StudentSheetName is the detail sheet of the student workbook.
const StudentSheetName = "Students"

// FacultySheetName is the detail sheet of the faculty workbook.
const FacultySheetName = "Faculty"

func (r *ExcelRenderer) createStudentSheet(f *excelize.File, rows []models.StudentRow) error {
	if _, err := f.NewSheet(StudentSheetName); err != nil {
		return err
	}

	headers := []string{"ID", "Student ID", "Name", "Course Code", "Department", "Academic Year", "Contact"}
	widths := []float64{10, 15, 25, 15, 20, 15, 15}
	writeHeaderRow(f, StudentSheetName, headers, widths)

	for i, row := range rows {
		rowNum := i + 2
		setCell(f, StudentSheetName, 1, rowNum, row.ID)
		setCell(f, StudentSheetName, 2, rowNum, row.StudentID)
		setCell(f, StudentSheetName, 3, rowNum, row.Name)
		setCell(f, StudentSheetName, 4, rowNum, row.CourseCode)
		setCell(f, StudentSheetName, 5, rowNum, row.DepartmentName)
		setCell(f, StudentSheetName, 6, rowNum, row.AcademicYear)
		setCell(f, StudentSheetName, 7, rowNum, row.ContactNumber)
	}

	return nil
}

func (r *ExcelRenderer) createFacultySheet(f *excelize.File, rows []models.FacultyRow) error {
	if _, err := f.NewSheet(FacultySheetName); err != nil {
		return err
	}

	headers := []string{"ID", "Employee ID", "Name", "Department", "Position", "Employment Type", "Salary"}
	widths := []float64{10, 15, 25, 20, 20, 15, 15}
	writeHeaderRow(f, FacultySheetName, headers, widths)

	for i, row := range rows {
		rowNum := i + 2
		setCell(f, FacultySheetName, 1, rowNum, row.ID)
		setCell(f, FacultySheetName, 2, rowNum, row.EmployeeID)
		setCell(f, FacultySheetName, 3, rowNum, row.Name)
		setCell(f, FacultySheetName, 4, rowNum, row.DepartmentName)
		setCell(f, FacultySheetName, 5, rowNum, row.Position)
		setCell(f, FacultySheetName, 6, rowNum, row.EmploymentType)
		setCell(f, FacultySheetName, 7, rowNum, row.Salary)
	}

	return nil
}

type summaryRow struct {
	metric string
	value  interface{}
}

func createSummarySheet(f *excelize.File, rows []summaryRow) error {
	if _, err := f.NewSheet(summarySheetName); err != nil {
		return err
	}

	writeHeaderRow(f, summarySheetName, []string{"Metric", "Value"}, []float64{30, 20})
	for i, row := range rows {
		setCell(f, summarySheetName, 1, i+2, row.metric)
		setCell(f, summarySheetName, 2, i+2, row.value)
	}

	return nil
}

type bucketSheet struct {
	name        string
	labelHeader string
	buckets     []Bucket
}

// createBucketSheets adds one sheet per populated statistics dimension.
// Dimensions with no buckets get no sheet.
func createBucketSheets(f *excelize.File, sheets []bucketSheet) error {
	for _, sheet := range sheets {
		if len(sheet.buckets) == 0 {
			continue
		}

		if _, err := f.NewSheet(sheet.name); err != nil {
			return fmt.Errorf("failed to create sheet %s: %w", sheet.name, err)
		}

		writeHeaderRow(f, sheet.name, []string{sheet.labelHeader, "Count"}, []float64{30, 15})
		for i, bucket := range sheet.buckets {
			setCell(f, sheet.name, 1, i+2, bucket.Label)
			setCell(f, sheet.name, 2, i+2, bucket.Count)
		}
	}

	return nil
}

func writeHeaderRow(f *excelize.File, sheet string, headers []string, widths []float64) {
	for i, header := range headers {
		setCell(f, sheet, i+1, 1, header)
		col := colLetter(i + 1)
		f.SetColWidth(sheet, col, col, widths[i])
	}
}

func workbookBytes(f *excelize.File, lgr zerolog.Logger, rowCount int) ([]byte, error) {
	f.DeleteSheet("Sheet1")

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook to buffer: %w", err)
	}

	lgr.Debug().Int("rows", rowCount).Msg("Workbook generated")
	return buf.Bytes(), nil
}

func setCell(f *excelize.File, sheet string, col, row int, value interface{}) {
	cell, _ := excelize.CoordinatesToCellName(col, row)
	f.SetCellValue(sheet, cell, value)
}

func colLetter(col int) string {
	letter, _ := excelize.ColumnNumberToName(col)
	return letter
}
