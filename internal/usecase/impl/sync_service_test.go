package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"sippec/internal/domain/entity"
	"sippec/internal/domain/repository"
	"sippec/internal/domain/service"
	mockRepo "sippec/internal/mocks/repository"
	mockSvc "sippec/internal/mocks/service"
	"sippec/internal/usecase"
)

type syncServiceFixtures struct {
	service       usecase.SyncUsecase
	txManager     *mockRepo.MockTransactionManager
	classroomRepo *mockRepo.MockClassroomRepository
	txGroupRepo   *mockRepo.MockGroupRepository
	txStaffRepo   *mockRepo.MockStaffRepository
	txUserRepo    *mockRepo.MockUserRepository
	timetable     *mockSvc.MockTimetableClient
	hasher        *mockSvc.MockPasswordHasher
}

func createTestSyncService(t *testing.T) syncServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	classroomRepo := mockRepo.NewMockClassroomRepository(t)
	txGroupRepo := mockRepo.NewMockGroupRepository(t)
	txStaffRepo := mockRepo.NewMockStaffRepository(t)
	txUserRepo := mockRepo.NewMockUserRepository(t)
	timetable := mockSvc.NewMockTimetableClient(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	txManager.Factory = &mockRepo.MockRepositoryFactory{
		GroupRepository: txGroupRepo,
		StaffRepository: txStaffRepo,
		UserRepository:  txUserRepo,
	}

	svc := NewSyncService(SyncServiceParams{
		TxManager:     txManager,
		ClassroomRepo: classroomRepo,
		Timetable:     timetable,
		Hasher:        hasher,
		Logger:        logger,
	})

	return syncServiceFixtures{
		service:       svc,
		txManager:     txManager,
		classroomRepo: classroomRepo,
		txGroupRepo:   txGroupRepo,
		txStaffRepo:   txStaffRepo,
		txUserRepo:    txUserRepo,
		timetable:     timetable,
		hasher:        hasher,
	}
}

func TestSyncService_SyncGroups_ReplacesTableAndDeduplicates(t *testing.T) {
	f := createTestSyncService(t)

	f.timetable.On("FetchGroups", mock.Anything).Return([]service.GroupRecord{
		{GroupName: "3131", Specialization: "C", StudyYear: "3", SubgroupIndex: "a"},
		{GroupName: "3131", Specialization: "C", StudyYear: "3", SubgroupIndex: "b"},
		{GroupName: "3132", Specialization: "C", StudyYear: "3"},
		{GroupName: "3133", Specialization: "", StudyYear: "3"},
		{GroupName: ""},
	}, nil)
	f.txGroupRepo.On("DeleteAll", mock.Anything).Return(nil)
	f.txGroupRepo.On("CreateBatch", mock.Anything, mock.MatchedBy(func(groups []*entity.Group) bool {
		// First occurrence of a duplicated name wins; records without a
		// group name or specialization never make it in.
		return len(groups) == 2 &&
			groups[0].GroupNumber == "3131" &&
			groups[0].Subgroup == "a" &&
			groups[0].UniversitaryYear == 3 &&
			groups[1].GroupNumber == "3132"
	})).Return(nil)

	result, err := f.service.SyncGroups(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 5, result.Fetched)
	assert.Equal(t, 2, result.Imported)
	assert.Equal(t, 3, result.Skipped)
}

func TestSyncService_SyncGroups_FeedFailureLeavesTableAlone(t *testing.T) {
	f := createTestSyncService(t)

	f.timetable.On("FetchGroups", mock.Anything).Return(nil, errors.New("connection refused"))

	_, err := f.service.SyncGroups(context.Background())
	assert.Error(t, err)
	f.txGroupRepo.AssertNotCalled(t, "DeleteAll", mock.Anything)
}

func TestSyncService_SyncClassrooms_SkipsEmptyAndExisting(t *testing.T) {
	f := createTestSyncService(t)

	f.timetable.On("FetchClassrooms", mock.Anything).Return([]service.ClassroomRecord{
		{Name: "C201", Capacity: "30", Computers: "15"},
		{Name: ""},
		{Name: "C202", Capacity: "not-a-number"},
	}, nil)
	f.classroomRepo.On("ExistsByName", mock.Anything, "C201").Return(true, nil)
	f.classroomRepo.On("ExistsByName", mock.Anything, "C202").Return(false, nil)
	f.classroomRepo.On("Create", mock.Anything, mock.MatchedBy(func(c *entity.Classroom) bool {
		return c.Name == "C202" && c.Capacity == 0
	})).Return(nil)

	result, err := f.service.SyncClassrooms(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, result.Fetched)
	assert.Equal(t, 1, result.Imported)
	assert.Equal(t, 2, result.Skipped)
}

func TestSyncService_SyncTeachers_CreatesAccountsForNewEmails(t *testing.T) {
	f := createTestSyncService(t)

	f.timetable.On("FetchStaff", mock.Anything).Return([]service.StaffRecord{
		{ID: "42", LastName: "Pop", FirstName: "Ana", Email: "ana.pop@usv.ro", Faculty: "FIESC", Department: "Calculatoare"},
		{ID: "43", LastName: "Ionescu", FirstName: "Ion", Email: "ion.ionescu@usv.ro", Faculty: "FIESC", Department: "Calculatoare"},
		{ID: "44", LastName: "Anonim", FirstName: "Fara", Email: "", Faculty: "FIESC", Department: "Calculatoare"},
		{ID: "45", LastName: "", FirstName: "", Email: "mystery@usv.ro", Faculty: "FIESC", Department: "Calculatoare"},
	}, nil)
	f.hasher.On("Hash", "teacher").Return("$2a$12$teacher", nil)
	f.txStaffRepo.On("DeleteAll", mock.Anything).Return(nil)
	f.txStaffRepo.On("CreateBatch", mock.Anything, mock.MatchedBy(func(staff []*entity.TeachingStaff) bool {
		// Every feed row becomes a staff record, names or not.
		return len(staff) == 4 && staff[0].ExternalID == "42"
	})).Return(nil)

	// First email already has an account, second does not.
	f.txUserRepo.On("FindByEmail", mock.Anything, "ana.pop@usv.ro").Return(&entity.User{ID: 1}, nil)
	f.txUserRepo.On("FindByEmail", mock.Anything, "ion.ionescu@usv.ro").Return(nil, repository.ErrUserNotFound)
	f.txUserRepo.On("Create", mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
		return u.Email == "ion.ionescu@usv.ro" &&
			u.Role == "teacher" &&
			u.Type == entity.UserTypeTeacher &&
			u.PasswordHash == "$2a$12$teacher"
	})).Return(nil)

	result, err := f.service.SyncTeachers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, result.Fetched)
	assert.Equal(t, 1, result.Imported)
	assert.Equal(t, 3, result.Skipped)
	// A record without names never gets an account, even with an email.
	f.txUserRepo.AssertNotCalled(t, "FindByEmail", mock.Anything, "mystery@usv.ro")
	f.txUserRepo.AssertNotCalled(t, "Create", mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
		return u.Email == "mystery@usv.ro"
	}))
}

func TestSyncService_SyncTeachers_AccountFailureRollsBackStaff(t *testing.T) {
	f := createTestSyncService(t)

	f.timetable.On("FetchStaff", mock.Anything).Return([]service.StaffRecord{
		{ID: "42", LastName: "Pop", FirstName: "Ana", Email: "ana.pop@usv.ro"},
	}, nil)
	f.hasher.On("Hash", "teacher").Return("$2a$12$teacher", nil)
	f.txStaffRepo.On("DeleteAll", mock.Anything).Return(nil)
	f.txStaffRepo.On("CreateBatch", mock.Anything, mock.Anything).Return(nil)
	f.txUserRepo.On("FindByEmail", mock.Anything, "ana.pop@usv.ro").Return(nil, repository.ErrUserNotFound)
	f.txUserRepo.On("Create", mock.Anything, mock.Anything).Return(errors.New("insert failed"))

	_, err := f.service.SyncTeachers(context.Background())
	assert.Error(t, err)
}
