package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yusuf/campushub/internal/app/models"
	"github.com/yusuf/campushub/internal/pkg/apperrors"
)

// DepartmentRepository handles database operations for departments
type DepartmentRepository struct {
	db *pgxpool.Pool
}

// NewDepartmentRepository creates a new department repository
func NewDepartmentRepository(db *pgxpool.Pool) *DepartmentRepository {
	return &DepartmentRepository{db: db}
}

// GetAll retrieves all departments
func (r *DepartmentRepository) GetAll(ctx context.Context) ([]*models.Department, error) {
	query := `
		SELECT id, name, code
		FROM departments
		ORDER BY name
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var departments []*models.Department
	for rows.Next() {
		var department models.Department
		if err := rows.Scan(&department.ID, &department.Name, &department.Code); err != nil {
			return nil, err
		}
		departments = append(departments, &department)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return departments, nil
}

// GetByID retrieves a department by ID
func (r *DepartmentRepository) GetByID(ctx context.Context, id int64) (*models.Department, error) {
	query := `
		SELECT id, name, code
		FROM departments
		WHERE id = $1
	`

	var department models.Department
	err := r.db.QueryRow(ctx, query, id).Scan(&department.ID, &department.Name, &department.Code)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewCustomError(apperrors.ErrDepartmentNotFound, "Department not found")
		}
		return nil, fmt.Errorf("error retrieving department: %w", err)
	}

	return &department, nil
}

// Count returns the total number of departments
func (r *DepartmentRepository) Count(ctx context.Context) (int, error) {
	var total int
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM departments").Scan(&total); err != nil {
		return 0, fmt.Errorf("error counting departments: %w", err)
	}
	return total, nil
}

// CourseRepository handles database operations for courses
type CourseRepository struct {
	db *pgxpool.Pool
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{db: db}
}

// GetAll retrieves all courses, optionally restricted to one department
func (r *CourseRepository) GetAll(ctx context.Context, departmentID *int64) ([]*models.Course, error) {
	query := `
		SELECT id, department_id, code, name
		FROM courses
		WHERE ($1::bigint IS NULL OR department_id = $1)
		ORDER BY code
	`

	rows, err := r.db.Query(ctx, query, departmentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []*models.Course
	for rows.Next() {
		var course models.Course
		if err := rows.Scan(&course.ID, &course.DepartmentID, &course.Code, &course.Name); err != nil {
			return nil, err
		}
		courses = append(courses, &course)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return courses, nil
}

// Count returns the total number of courses
func (r *CourseRepository) Count(ctx context.Context) (int, error) {
	var total int
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM courses").Scan(&total); err != nil {
		return 0, fmt.Errorf("error counting courses: %w", err)
	}
	return total, nil
}

// AcademicYearRepository handles database operations for academic years
type AcademicYearRepository struct {
	db *pgxpool.Pool
}

// NewAcademicYearRepository creates a new academic year repository
func NewAcademicYearRepository(db *pgxpool.Pool) *AcademicYearRepository {
	return &AcademicYearRepository{db: db}
}

// GetAll retrieves all academic years, newest first
func (r *AcademicYearRepository) GetAll(ctx context.Context) ([]*models.AcademicYear, error) {
	query := `
		SELECT id, name, active
		FROM academic_years
		ORDER BY name DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var years []*models.AcademicYear
	for rows.Next() {
		var year models.AcademicYear
		if err := rows.Scan(&year.ID, &year.Name, &year.Active); err != nil {
			return nil, err
		}
		years = append(years, &year)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return years, nil
}
