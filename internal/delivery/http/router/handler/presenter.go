package handler

import (
	"time"

	"sippec/internal/domain/entity"
)

// examDateLayout is the wire form of exam dates; start times travel as
// "HH:MM" strings already.
const examDateLayout = time.DateOnly

// userResponse is the public shape of an account. The password hash never
// leaves the service.
type userResponse struct {
	ID          int64  `json:"id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	Role        string `json:"role"`
	Type        string `json:"type"`
	DeviceToken string `json:"device_token,omitempty"`
}

func presentUser(user *entity.User) userResponse {
	return userResponse{
		ID:          user.ID,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		Email:       user.Email,
		Role:        user.Role,
		Type:        user.Type.String(),
		DeviceToken: user.DeviceToken,
	}
}

func presentUsers(users []*entity.User) []userResponse {
	out := make([]userResponse, 0, len(users))
	for _, user := range users {
		out = append(out, presentUser(user))
	}

	return out
}

type groupResponse struct {
	ID               int64  `json:"id"`
	GroupNumber      string `json:"group_nr"`
	Specialization   string `json:"specialization"`
	UniversitaryYear int    `json:"universitary_year"`
	Subgroup         string `json:"subgroup,omitempty"`
	Faculty          string `json:"faculty,omitempty"`
	Type             string `json:"type,omitempty"`
}

func presentGroup(group *entity.Group) groupResponse {
	return groupResponse{
		ID:               group.ID,
		GroupNumber:      group.GroupNumber,
		Specialization:   group.Specialization,
		UniversitaryYear: group.UniversitaryYear,
		Subgroup:         group.Subgroup,
		Faculty:          group.Faculty,
		Type:             group.Type,
	}
}

func presentGroups(groups []*entity.Group) []groupResponse {
	out := make([]groupResponse, 0, len(groups))
	for _, group := range groups {
		out = append(out, presentGroup(group))
	}

	return out
}

type courseResponse struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	OwnerUserID      int64  `json:"owner_user_id"`
	Specialization   string `json:"specialization"`
	UniversitaryYear int    `json:"universitary_year"`
}

func presentCourse(course *entity.Course) courseResponse {
	return courseResponse{
		ID:               course.ID,
		Name:             course.Name,
		OwnerUserID:      course.OwnerUserID,
		Specialization:   course.Specialization,
		UniversitaryYear: course.UniversitaryYear,
	}
}

func presentCourses(courses []*entity.Course) []courseResponse {
	out := make([]courseResponse, 0, len(courses))
	for _, course := range courses {
		out = append(out, presentCourse(course))
	}

	return out
}

type classroomResponse struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	ShortName    string `json:"short_name,omitempty"`
	BuildingName string `json:"building_name,omitempty"`
	Capacity     int    `json:"capacity"`
	Computers    int    `json:"computers"`
}

func presentClassroom(classroom *entity.Classroom) classroomResponse {
	return classroomResponse{
		ID:           classroom.ID,
		Name:         classroom.Name,
		ShortName:    classroom.ShortName,
		BuildingName: classroom.BuildingName,
		Capacity:     classroom.Capacity,
		Computers:    classroom.Computers,
	}
}

func presentClassrooms(classrooms []*entity.Classroom) []classroomResponse {
	out := make([]classroomResponse, 0, len(classrooms))
	for _, classroom := range classrooms {
		out = append(out, presentClassroom(classroom))
	}

	return out
}

type examResponse struct {
	ID         int64  `json:"id"`
	Group      string `json:"group"`
	Discipline string `json:"discipline"`
	Examiner   string `json:"examiner"`
	Assistant  string `json:"assistant,omitempty"`
	Date       string `json:"date"`
	StartTime  string `json:"start"`
	Room       string `json:"room"`
	StudentID  int64  `json:"student_id"`
}

func presentExam(exam *entity.ExamSchedule) examResponse {
	return examResponse{
		ID:         exam.ID,
		Group:      exam.Group,
		Discipline: exam.Discipline,
		Examiner:   exam.Examiner,
		Assistant:  exam.Assistant,
		Date:       exam.Date.Format(examDateLayout),
		StartTime:  exam.StartTime,
		Room:       exam.Room,
		StudentID:  exam.StudentID,
	}
}

func presentExams(exams []*entity.ExamSchedule) []examResponse {
	out := make([]examResponse, 0, len(exams))
	for _, exam := range exams {
		out = append(out, presentExam(exam))
	}

	return out
}

type notificationResponse struct {
	ID             int64     `json:"id"`
	SenderUserID   int64     `json:"sender_user_id"`
	ReceiverUserID int64     `json:"receiver_user_id"`
	Message        string    `json:"message"`
	Date           time.Time `json:"date"`
}

func presentNotification(notification *entity.Notification) notificationResponse {
	return notificationResponse{
		ID:             notification.ID,
		SenderUserID:   notification.SenderUserID,
		ReceiverUserID: notification.ReceiverUserID,
		Message:        notification.Message,
		Date:           notification.Date,
	}
}

func presentNotifications(notifications []*entity.Notification) []notificationResponse {
	out := make([]notificationResponse, 0, len(notifications))
	for _, notification := range notifications {
		out = append(out, presentNotification(notification))
	}

	return out
}

type staffResponse struct {
	ID         int64  `json:"id"`
	ExternalID string `json:"external_id,omitempty"`
	LastName   string `json:"last_name"`
	FirstName  string `json:"first_name"`
	Email      string `json:"email,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Faculty    string `json:"faculty"`
	Department string `json:"department"`
}

func presentStaff(staff *entity.TeachingStaff) staffResponse {
	return staffResponse{
		ID:         staff.ID,
		ExternalID: staff.ExternalID,
		LastName:   staff.LastName,
		FirstName:  staff.FirstName,
		Email:      staff.Email,
		Phone:      staff.Phone,
		Faculty:    staff.Faculty,
		Department: staff.Department,
	}
}

func presentStaffList(staff []*entity.TeachingStaff) []staffResponse {
	out := make([]staffResponse, 0, len(staff))
	for _, member := range staff {
		out = append(out, presentStaff(member))
	}

	return out
}
