package service

import "context"

// GroupRecord is one student-group entry from the timetable feed. The feed
// serves every field as a string.
type GroupRecord struct {
	GroupName      string `json:"groupName"`
	Specialization string `json:"specializationShortName"`
	StudyYear      string `json:"studyYear"`
	SubgroupIndex  string `json:"subgroupIndex"`
	FacultyID      string `json:"facultyId"`
	Type           string `json:"type"`
}

// ClassroomRecord is one room entry from the timetable feed.
type ClassroomRecord struct {
	Name         string `json:"name"`
	ShortName    string `json:"shortName"`
	BuildingName string `json:"buildingName"`
	Capacity     string `json:"capacitate"`
	Computers    string `json:"computers"`
}

// StaffRecord is one teaching-staff entry from the timetable feed.
type StaffRecord struct {
	ID         string `json:"id"`
	LastName   string `json:"lastName"`
	FirstName  string `json:"firstName"`
	Email      string `json:"emailAddress"`
	Phone      string `json:"phoneNumber"`
	Faculty    string `json:"facultyName"`
	Department string `json:"departmentName"`
}

// TimetableClient reads the university's public timetable feeds. All calls
// are simple synchronous HTTP GETs; timeouts are a configuration concern of
// the concrete client.
type TimetableClient interface {
	// FetchGroups retrieves the subgroup feed.
	FetchGroups(ctx context.Context) ([]GroupRecord, error)

	// FetchClassrooms retrieves the room feed.
	FetchClassrooms(ctx context.Context) ([]ClassroomRecord, error)

	// FetchStaff retrieves the teaching-staff feed.
	FetchStaff(ctx context.Context) ([]StaffRecord, error)

	// FetchStaffCourses retrieves the distinct course names a staff member
	// teaches, keyed by the feed's own staff identifier.
	FetchStaffCourses(ctx context.Context, staffFeedID string) ([]string, error)
}
