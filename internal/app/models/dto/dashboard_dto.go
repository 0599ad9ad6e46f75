package dto

// DashboardData carries the entity counts and distributions shown on the
// dashboard landing page
type DashboardData struct {
	TotalStudents        int               `json:"totalStudents"`
	TotalFaculty         int               `json:"totalFaculty"`
	TotalDepartments     int               `json:"totalDepartments"`
	TotalCourses         int               `json:"totalCourses"`
	StudentsByDepartment []DepartmentCount `json:"studentsByDepartment"`
	StudentsByCourse     []CourseCount     `json:"studentsByCourse"`
}
