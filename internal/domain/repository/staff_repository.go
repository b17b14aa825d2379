package repository

import (
	"context"
	"errors"

	"sippec/internal/domain/entity"
)

// ErrStaffNotFound is returned when a teaching-staff record is not found.
var ErrStaffNotFound = errors.New("teaching staff not found")

// StaffRepository defines the operations for teaching-staff reference data.
type StaffRepository interface {
	// FindByID retrieves a single staff record by ID.
	FindByID(ctx context.Context, id int64) (*entity.TeachingStaff, error)

	// FindByFacultyAndDepartment retrieves staff records for a faculty and
	// department pair.
	FindByFacultyAndDepartment(ctx context.Context, faculty, department string) ([]*entity.TeachingStaff, error)

	// Faculties retrieves the distinct non-empty faculty names.
	Faculties(ctx context.Context) ([]string, error)

	// DepartmentsByFaculty retrieves the distinct non-empty department names
	// within a faculty.
	DepartmentsByFaculty(ctx context.Context, faculty string) ([]string, error)

	// CreateBatch persists multiple staff records in one statement.
	CreateBatch(ctx context.Context, staff []*entity.TeachingStaff) error

	// DeleteAll removes every staff row.
	DeleteAll(ctx context.Context) error
}
