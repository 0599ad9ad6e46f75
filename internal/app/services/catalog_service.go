package services

import (
	"context"
	"fmt"

	"github.com/yusuf/campushub/internal/app/models"
	"github.com/yusuf/campushub/internal/app/repositories"
)

// CatalogService serves the reference data the report filters are built
// from: departments, courses and academic years.
type CatalogService struct {
	departmentRepo   *repositories.DepartmentRepository
	courseRepo       *repositories.CourseRepository
	academicYearRepo *repositories.AcademicYearRepository
}

// NewCatalogService creates a new catalog service
func NewCatalogService(
	departmentRepo *repositories.DepartmentRepository,
	courseRepo *repositories.CourseRepository,
	academicYearRepo *repositories.AcademicYearRepository,
) *CatalogService {
	return &CatalogService{
		departmentRepo:   departmentRepo,
		courseRepo:       courseRepo,
		academicYearRepo: academicYearRepo,
	}
}

// GetAllDepartments retrieves all departments
func (s *CatalogService) GetAllDepartments(ctx context.Context) ([]*models.Department, error) {
	departments, err := s.departmentRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving departments: %w", err)
	}
	return departments, nil
}

// GetDepartmentByID retrieves a department by ID
func (s *CatalogService) GetDepartmentByID(ctx context.Context, id int64) (*models.Department, error) {
	return s.departmentRepo.GetByID(ctx, id)
}

// GetAllCourses retrieves all courses, optionally restricted to a department
func (s *CatalogService) GetAllCourses(ctx context.Context, departmentID *int64) ([]*models.Course, error) {
	courses, err := s.courseRepo.GetAll(ctx, departmentID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving courses: %w", err)
	}
	return courses, nil
}

// GetAllAcademicYears retrieves all academic years
func (s *CatalogService) GetAllAcademicYears(ctx context.Context) ([]*models.AcademicYear, error) {
	years, err := s.academicYearRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving academic years: %w", err)
	}
	return years, nil
}
