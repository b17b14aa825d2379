// Package entity contains the core business objects of the project.
package entity

// UserType represents the kind of account a user holds.
type UserType string

const (
	// UserTypeUser indicates a plain account with no academic affiliation.
	UserTypeUser UserType = "user"
	// UserTypeStudent indicates a student account.
	UserTypeStudent UserType = "student"
	// UserTypeTeacher indicates a teaching-staff account.
	UserTypeTeacher UserType = "teacher"
)

// String returns the string representation of the UserType.
func (t UserType) String() string {
	return string(t)
}

// IsValid checks if the UserType is a known value.
func (t UserType) IsValid() bool {
	switch t {
	case UserTypeUser, UserTypeStudent, UserTypeTeacher:
		return true
	default:
		return false
	}
}
