package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yusuf/campushub/internal/app/models"
	"github.com/yusuf/campushub/internal/pkg/helpers"
)

// FacultyRepository reads denormalized faculty report rows. Salary is scanned
// as text so the statistics aggregator owns the numeric coercion rules.
type FacultyRepository struct {
	db *pgxpool.Pool
}

// NewFacultyRepository creates a new faculty repository
func NewFacultyRepository(db *pgxpool.Pool) *FacultyRepository {
	return &FacultyRepository{db: db}
}

// FindAll retrieves a page of faculty rows with display labels joined.
func (r *FacultyRepository) FindAll(ctx context.Context, page, pageSize int, search string, departmentID *int64) ([]models.FacultyRow, int, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, pageSize)

	baseQuery := `
		FROM faculty f
		LEFT JOIN departments d ON d.id = f.department_id
		WHERE ($1::bigint IS NULL OR f.department_id = $1)
		  AND ($2::text = '' OR f.name ILIKE '%' || $2 || '%')
	`

	var total int
	countQuery := "SELECT COUNT(*) " + baseQuery
	if err := r.db.QueryRow(ctx, countQuery, departmentID, search).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting faculty: %w", err)
	}

	query := `
		SELECT
			f.id,
			COALESCE(f.employee_no, 'N/A'),
			COALESCE(f.name, 'N/A'),
			COALESCE(d.name, 'Unknown'),
			COALESCE(f.position, 'Unknown'),
			COALESCE(f.employment_type, 'Unknown'),
			COALESCE(f.salary::text, '')
	` + baseQuery + `
		ORDER BY f.id
		LIMIT $3 OFFSET $4
	`

	rows, err := r.db.Query(ctx, query, departmentID, search, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("error retrieving faculty: %w", err)
	}
	defer rows.Close()

	var faculty []models.FacultyRow
	for rows.Next() {
		var row models.FacultyRow
		if err := rows.Scan(
			&row.ID,
			&row.EmployeeID,
			&row.Name,
			&row.DepartmentName,
			&row.Position,
			&row.EmploymentType,
			&row.Salary,
		); err != nil {
			return nil, 0, fmt.Errorf("error scanning faculty row: %w", err)
		}
		faculty = append(faculty, row)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return faculty, total, nil
}

// Count returns the total number of faculty members
func (r *FacultyRepository) Count(ctx context.Context) (int, error) {
	var total int
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM faculty").Scan(&total); err != nil {
		return 0, fmt.Errorf("error counting faculty: %w", err)
	}
	return total, nil
}
