package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yusuf/campushub/internal/app/models"
	"github.com/yusuf/campushub/internal/pkg/helpers"
)

// StudentRepository reads denormalized student report rows. Display labels
// for course, department and academic year are resolved in SQL; a missing
// relation resolves to the "Unknown" label here, at the scan boundary, so the
// aggregation and rendering layers never see empty keys.
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{db: db}
}

// FindAll retrieves a page of student rows with display labels joined.
// departmentID and courseID restrict the query when non-nil; search matches
// the student name.
func (r *StudentRepository) FindAll(ctx context.Context, page, pageSize int, search string, departmentID, courseID *int64) ([]models.StudentRow, int, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, pageSize)

	baseQuery := `
		FROM students s
		LEFT JOIN courses c ON c.id = s.course_id
		LEFT JOIN departments d ON d.id = s.department_id
		LEFT JOIN academic_years ay ON ay.id = s.academic_year_id
		WHERE ($1::bigint IS NULL OR s.department_id = $1)
		  AND ($2::bigint IS NULL OR s.course_id = $2)
		  AND ($3::text = '' OR s.name ILIKE '%' || $3 || '%')
	`

	var total int
	countQuery := "SELECT COUNT(*) " + baseQuery
	if err := r.db.QueryRow(ctx, countQuery, departmentID, courseID, search).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting students: %w", err)
	}

	query := `
		SELECT
			s.id,
			COALESCE(s.student_no, 'N/A'),
			COALESCE(s.name, 'N/A'),
			COALESCE(c.code, 'Unknown'),
			COALESCE(d.name, 'Unknown'),
			COALESCE(ay.name, 'Unknown'),
			COALESCE(s.contact_number, 'N/A')
	` + baseQuery + `
		ORDER BY s.id
		LIMIT $4 OFFSET $5
	`

	rows, err := r.db.Query(ctx, query, departmentID, courseID, search, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("error retrieving students: %w", err)
	}
	defer rows.Close()

	var students []models.StudentRow
	for rows.Next() {
		var row models.StudentRow
		if err := rows.Scan(
			&row.ID,
			&row.StudentID,
			&row.Name,
			&row.CourseCode,
			&row.DepartmentName,
			&row.AcademicYear,
			&row.ContactNumber,
		); err != nil {
			return nil, 0, fmt.Errorf("error scanning student row: %w", err)
		}
		students = append(students, row)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return students, total, nil
}

// Count returns the total number of students
func (r *StudentRepository) Count(ctx context.Context) (int, error) {
	var total int
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM students").Scan(&total); err != nil {
		return 0, fmt.Errorf("error counting students: %w", err)
	}
	return total, nil
}
