package entity

// Group is a student group as published by the university timetable,
// identified by its group number within a specialization and study year.
type Group struct {
	ID               int64  // Numeric identity assigned by the database.
	GroupNumber      string // Group label from the timetable feed, e.g. "3131".
	Specialization   string // Short specialization name, e.g. "C".
	UniversitaryYear int    // Study year (1-4).
	Subgroup         string // Optional subgroup index, e.g. "a"/"b".
	Faculty          string // Optional faculty identifier from the feed.
	Type             string // Optional group type from the feed.
}
