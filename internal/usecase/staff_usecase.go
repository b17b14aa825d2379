package usecase

import (
	"context"

	"sippec/internal/domain/entity"
)

// StaffUsecase defines the interface for browsing the teaching-staff
// reference data and the live timetable lookups keyed by it.
type StaffUsecase interface {
	// Faculties lists the distinct faculty names.
	Faculties(ctx context.Context) ([]string, error)

	// Departments lists the distinct department names within a faculty.
	Departments(ctx context.Context, faculty string) ([]string, error)

	// Teachers lists the staff records for a faculty and department pair.
	Teachers(ctx context.Context, faculty, department string) ([]*entity.TeachingStaff, error)

	// TeacherCourses lists the distinct course names a staff member teaches,
	// resolved live against the timetable feed.
	TeacherCourses(ctx context.Context, staffID int64) ([]string, error)
}
