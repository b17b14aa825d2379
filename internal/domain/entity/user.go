// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is the core identity record of the system. A user can be a plain
// account, a student, or a teacher depending on Type; Role is a free-text
// label used by the frontend for authorization hints ("admin", "teacher",
// "student").
type User struct {
	ID           int64     // Numeric identity assigned by the database.
	FirstName    string    // Given name.
	LastName     string    // Family name.
	Email        string    // Unique login identifier.
	PasswordHash string    // bcrypt digest; never the plaintext password.
	Role         string    // Free-text role label.
	Type         UserType  // Account type: user, student, or teacher.
	DeviceToken  string    // Optional FCM device token for push notifications.
	CreatedAt    time.Time // Timestamp of account creation.
	UpdatedAt    time.Time // Timestamp of the last modification.
}

// FullName returns the display name composed of the first and last name.
func (u *User) FullName() string {
	if u.FirstName == "" {
		return u.LastName
	}
	if u.LastName == "" {
		return u.FirstName
	}

	return u.FirstName + " " + u.LastName
}
