package models

// Department represents an academic department
type Department struct {
	ID   int64  `json:"id"`
	Name string `json:"name" binding:"required"`
	Code string `json:"code" binding:"required"`
}

// Course represents a course offered by a department
type Course struct {
	ID           int64  `json:"id"`
	DepartmentID int64  `json:"departmentId"`
	Code         string `json:"code" binding:"required"`
	Name         string `json:"name" binding:"required"`
}

// AcademicYear represents a school year, e.g. "2024-2025"
type AcademicYear struct {
	ID     int64  `json:"id"`
	Name   string `json:"name" binding:"required"`
	Active bool   `json:"active"`
}

// User represents an application account
type User struct {
	ID           int64  `json:"id"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Role         string `json:"role"`
}
