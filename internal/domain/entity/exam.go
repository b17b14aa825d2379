package entity

import "time"

// ExamSchedule is a single scheduled exam: a discipline examined for a group
// on a given date and time in a given room, recorded by a student account.
type ExamSchedule struct {
	ID         int64     // Numeric identity assigned by the database.
	Group      string    // Group label the exam applies to.
	Discipline string    // Examined discipline name.
	Examiner   string    // Main examiner's name.
	Assistant  string    // Optional assistant examiner's name.
	Date       time.Time // Calendar date of the exam (time part unused).
	StartTime  string    // Start time in "HH:MM" wall-clock form.
	Room       string    // Room label.
	StudentID  int64     // User ID of the student who recorded the entry.
}
