package repositories

import "github.com/jackc/pgx/v5/pgxpool"

// Repositories bundles all repository instances
type Repositories struct {
	StudentRepository      *StudentRepository
	FacultyRepository      *FacultyRepository
	DepartmentRepository   *DepartmentRepository
	CourseRepository       *CourseRepository
	AcademicYearRepository *AcademicYearRepository
	UserRepository         *UserRepository
}

// NewRepositories creates all repositories sharing one connection pool
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		StudentRepository:      NewStudentRepository(db),
		FacultyRepository:      NewFacultyRepository(db),
		DepartmentRepository:   NewDepartmentRepository(db),
		CourseRepository:       NewCourseRepository(db),
		AcademicYearRepository: NewAcademicYearRepository(db),
		UserRepository:         NewUserRepository(db),
	}
}
