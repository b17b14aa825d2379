package entity

// TeachingStaff is a teaching-staff reference record imported from the
// university staff feed, used to browse faculties, departments and teachers.
// ExternalID is the feed's own identifier and keys live timetable lookups.
type TeachingStaff struct {
	ID         int64  // Numeric identity assigned by the database.
	ExternalID string // Identifier in the timetable feed; empty when unknown.
	LastName   string // Family name.
	FirstName  string // Given name.
	Email      string // Contact email, may be empty.
	Phone      string // Contact phone, may be empty.
	Faculty    string // Faculty name.
	Department string // Department name within the faculty.
}
