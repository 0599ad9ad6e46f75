package services

import (
	"context"
	"fmt"

	"github.com/yusuf/campushub/internal/app/models/dto"
	"github.com/yusuf/campushub/internal/app/report"
	"github.com/yusuf/campushub/internal/app/repositories"
)

// EntityCounter counts rows of one entity kind
type EntityCounter interface {
	Count(ctx context.Context) (int, error)
}

// DashboardService aggregates the landing page summary. Distributions reuse
// the report statistics aggregator so the dashboard and the reports can
// never disagree on grouping rules.
type DashboardService struct {
	students    StudentDataSource
	studentN    EntityCounter
	facultyN    EntityCounter
	departments *repositories.DepartmentRepository
	courses     *repositories.CourseRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	students StudentDataSource,
	studentN EntityCounter,
	facultyN EntityCounter,
	departments *repositories.DepartmentRepository,
	courses *repositories.CourseRepository,
) *DashboardService {
	return &DashboardService{
		students:    students,
		studentN:    studentN,
		facultyN:    facultyN,
		departments: departments,
		courses:     courses,
	}
}

// GetSummary collects the dashboard counts and distributions
func (s *DashboardService) GetSummary(ctx context.Context) (*dto.DashboardData, error) {
	studentTotal, err := s.studentN.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("error counting students: %w", err)
	}

	facultyTotal, err := s.facultyN.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("error counting faculty: %w", err)
	}

	departmentTotal, err := s.departments.Count(ctx)
	if err != nil {
		return nil, err
	}

	courseTotal, err := s.courses.Count(ctx)
	if err != nil {
		return nil, err
	}

	rows, _, err := s.students.FindAll(ctx, 1, fetchPageSize, "", nil, nil)
	if err != nil {
		return nil, fmt.Errorf("error retrieving student distribution: %w", err)
	}

	stats := dto.NewStudentStatisticsData(report.GroupStudents(rows))

	return &dto.DashboardData{
		TotalStudents:        studentTotal,
		TotalFaculty:         facultyTotal,
		TotalDepartments:     departmentTotal,
		TotalCourses:         courseTotal,
		StudentsByDepartment: stats.ByDepartment,
		StudentsByCourse:     stats.ByCourse,
	}, nil
}
