package impl

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	deliverycontext "sippec/internal/delivery/context"
	"sippec/internal/domain/entity"
	domainerrors "sippec/internal/domain/errors"
	"sippec/internal/domain/repository"
	"sippec/internal/domain/service"
	"sippec/internal/usecase"
)

// staffService implements the StaffUsecase interface.
type staffService struct {
	staffRepo repository.StaffRepository
	timetable service.TimetableClient
	logger    *slog.Logger
}

// StaffServiceParams holds dependencies for staffService, injected by Fx.
type StaffServiceParams struct {
	fx.In

	StaffRepo repository.StaffRepository
	Timetable service.TimetableClient
	Logger    *slog.Logger
}

// NewStaffService is the constructor for staffService.
func NewStaffService(params StaffServiceParams) usecase.StaffUsecase {
	return &staffService{
		staffRepo: params.StaffRepo,
		timetable: params.Timetable,
		logger:    params.Logger,
	}
}

func (srv *staffService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Faculties lists the distinct faculty names.
func (srv *staffService) Faculties(ctx context.Context) ([]string, error) {
	faculties, err := srv.staffRepo.Faculties(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list faculties")
	}

	return faculties, nil
}

// Departments lists the distinct department names within a faculty.
func (srv *staffService) Departments(ctx context.Context, faculty string) ([]string, error) {
	departments, err := srv.staffRepo.DepartmentsByFaculty(ctx, faculty)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list departments")
	}

	return departments, nil
}

// Teachers lists the staff records for a faculty and department pair.
func (srv *staffService) Teachers(ctx context.Context, faculty, department string) ([]*entity.TeachingStaff, error) {
	teachers, err := srv.staffRepo.FindByFacultyAndDepartment(ctx, faculty, department)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list teachers")
	}

	return teachers, nil
}

// TeacherCourses resolves the distinct course names a staff member teaches
// against the live timetable feed, keyed by the record's feed identifier.
func (srv *staffService) TeacherCourses(ctx context.Context, staffID int64) ([]string, error) {
	staff, err := srv.staffRepo.FindByID(ctx, staffID)
	if err != nil {
		if errors.Is(err, repository.ErrStaffNotFound) {
			return nil, errors.Wrap(domainerrors.ErrStaffNotFound, "teacher course lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find staff record")
	}

	// A record without a feed identifier cannot be resolved in the timetable.
	if staff.ExternalID == "" {
		return nil, errors.Wrap(domainerrors.ErrStaffNotFound, "teacher has no timetable identifier")
	}

	courses, err := srv.timetable.FetchStaffCourses(ctx, staff.ExternalID)
	if err != nil {
		srv.log(ctx).Error("Timetable lookup failed",
			slog.Int64("staffID", staffID),
			slog.String("externalID", staff.ExternalID),
			slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrTimetableUnavailable, "teacher course lookup failed")
	}

	return courses, nil
}
