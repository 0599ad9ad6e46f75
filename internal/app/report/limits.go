package report

// Rendering limits. The JSON preview and PDF detail table are samples; the
// spreadsheet renderer is the canonical complete export.
const (
	// PreviewRowLimit caps the row sample returned in the JSON payload.
	PreviewRowLimit = 10

	// PDFDetailRowCap caps the detail table in the PDF export. Callers that
	// need every row must use the spreadsheet export or statistics.total.
	PDFDetailRowCap = 15
)

// Per-column character limits for the PDF detail tables. Cell text is
// truncated to these so it fits the fixed column widths.
const (
	studentNameChars   = 12
	studentDeptChars   = 16
	studentCourseChars = 16
	studentYearChars   = 10

	facultyNameChars     = 11
	facultyDeptChars     = 16
	facultyPositionChars = 18
	facultyTypeChars     = 10
)
