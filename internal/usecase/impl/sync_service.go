package impl

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	deliverycontext "sippec/internal/delivery/context"
	"sippec/internal/domain/entity"
	"sippec/internal/domain/repository"
	"sippec/internal/domain/service"
	"sippec/internal/usecase"
)

// defaultTeacherPassword is the initial credential for accounts created from
// the staff feed. Staff are expected to change it on first login.
const defaultTeacherPassword = "teacher"

// syncService implements the SyncUsecase interface. Each sync run mirrors
// one reference-data feed into the local database.
type syncService struct {
	txManager     repository.TransactionManager
	classroomRepo repository.ClassroomRepository
	timetable     service.TimetableClient
	hasher        service.PasswordHasher
	logger        *slog.Logger
}

// SyncServiceParams holds dependencies for syncService, injected by Fx.
type SyncServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	ClassroomRepo repository.ClassroomRepository
	Timetable     service.TimetableClient
	Hasher        service.PasswordHasher
	Logger        *slog.Logger
}

// NewSyncService is the constructor for syncService.
func NewSyncService(params SyncServiceParams) usecase.SyncUsecase {
	return &syncService{
		txManager:     params.TxManager,
		classroomRepo: params.ClassroomRepo,
		timetable:     params.Timetable,
		hasher:        params.Hasher,
		logger:        params.Logger,
	}
}

func (srv *syncService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SyncGroups replaces the groups table with the current subgroup feed.
// Duplicate group names keep their first occurrence; delete and reload run
// in one transaction so a failed import never leaves the table empty.
func (srv *syncService) SyncGroups(ctx context.Context) (*usecase.SyncResult, error) {
	records, err := srv.timetable.FetchGroups(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch group feed")
	}

	seen := make(map[string]struct{}, len(records))
	groups := make([]*entity.Group, 0, len(records))
	for _, record := range records {
		name := strings.TrimSpace(record.GroupName)
		if name == "" || strings.TrimSpace(record.Specialization) == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}

		groups = append(groups, &entity.Group{
			GroupNumber:      name,
			Specialization:   record.Specialization,
			UniversitaryYear: atoiOrZero(record.StudyYear),
			Subgroup:         record.SubgroupIndex,
			Faculty:          record.FacultyID,
			Type:             record.Type,
		})
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		groupRepo := repoFactory.GroupRepo()

		if err := groupRepo.DeleteAll(ctx); err != nil {
			return errors.Wrap(err, "failed to clear groups")
		}

		return groupRepo.CreateBatch(ctx, groups)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute group sync transaction")
	}

	result := &usecase.SyncResult{
		Fetched:  len(records),
		Imported: len(groups),
		Skipped:  len(records) - len(groups),
	}
	srv.log(ctx).Info("Group sync completed",
		slog.Int("fetched", result.Fetched),
		slog.Int("imported", result.Imported),
		slog.Int("skipped", result.Skipped))

	return result, nil
}

// SyncClassrooms imports rooms from the room feed. Entries with an empty
// name and rooms already present locally are skipped; existing rows are
// never touched.
func (srv *syncService) SyncClassrooms(ctx context.Context) (*usecase.SyncResult, error) {
	records, err := srv.timetable.FetchClassrooms(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch classroom feed")
	}

	result := &usecase.SyncResult{Fetched: len(records)}
	for _, record := range records {
		name := strings.TrimSpace(record.Name)
		if name == "" {
			result.Skipped++

			continue
		}

		exists, err := srv.classroomRepo.ExistsByName(ctx, name)
		if err != nil {
			return nil, errors.Wrap(err, "failed to check classroom existence")
		}
		if exists {
			result.Skipped++

			continue
		}

		classroom := &entity.Classroom{
			Name:         name,
			ShortName:    record.ShortName,
			BuildingName: record.BuildingName,
			Capacity:     atoiOrZero(record.Capacity),
			Computers:    atoiOrZero(record.Computers),
		}
		if err := srv.classroomRepo.Create(ctx, classroom); err != nil {
			return nil, errors.Wrap(err, "failed to create classroom")
		}
		result.Imported++
	}

	srv.log(ctx).Info("Classroom sync completed",
		slog.Int("fetched", result.Fetched),
		slog.Int("imported", result.Imported),
		slog.Int("skipped", result.Skipped))

	return result, nil
}

// SyncTeachers replaces the teaching-staff table with the staff feed and
// creates teacher accounts for records with both names and an email not yet
// registered. The staff replacement and the account creation run in one
// transaction.
func (srv *syncService) SyncTeachers(ctx context.Context) (*usecase.SyncResult, error) {
	records, err := srv.timetable.FetchStaff(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch staff feed")
	}

	staff := make([]*entity.TeachingStaff, 0, len(records))
	for _, record := range records {
		staff = append(staff, &entity.TeachingStaff{
			ExternalID: record.ID,
			LastName:   record.LastName,
			FirstName:  record.FirstName,
			Email:      record.Email,
			Phone:      record.Phone,
			Faculty:    record.Faculty,
			Department: record.Department,
		})
	}

	// All created accounts share the same initial password, so hash it once.
	passwordHash, err := srv.hasher.Hash(defaultTeacherPassword)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash default teacher password")
	}

	result := &usecase.SyncResult{Fetched: len(records)}
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		staffRepo := repoFactory.StaffRepo()
		userRepo := repoFactory.UserRepo()

		if err := staffRepo.DeleteAll(ctx); err != nil {
			return errors.Wrap(err, "failed to clear staff records")
		}
		if err := staffRepo.CreateBatch(ctx, staff); err != nil {
			return errors.Wrap(err, "failed to create staff records")
		}

		for _, record := range staff {
			// Accounts need both names and an email; the staff row itself
			// is kept either way.
			if record.Email == "" || record.FirstName == "" || record.LastName == "" {
				result.Skipped++

				continue
			}

			_, err := userRepo.FindByEmail(ctx, record.Email)
			if err == nil {
				result.Skipped++

				continue
			}
			if !errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(err, "failed to check teacher account")
			}

			newUser := &entity.User{
				FirstName:    record.FirstName,
				LastName:     record.LastName,
				Email:        record.Email,
				PasswordHash: passwordHash,
				Role:         "teacher",
				Type:         entity.UserTypeTeacher,
			}
			if err := userRepo.Create(ctx, newUser); err != nil {
				return errors.Wrap(err, "failed to create teacher account")
			}
			result.Imported++
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute staff sync transaction")
	}

	srv.log(ctx).Info("Staff sync completed",
		slog.Int("fetched", result.Fetched),
		slog.Int("accountsCreated", result.Imported),
		slog.Int("skipped", result.Skipped))

	return result, nil
}

// atoiOrZero parses feed numerics, which arrive as strings and are
// occasionally empty or malformed.
func atoiOrZero(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}

	return n
}
