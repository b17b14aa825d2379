package entity

// Course is a taught discipline owned by a teacher account, tied to a
// specialization and study year.
type Course struct {
	ID               int64  // Numeric identity assigned by the database.
	Name             string // Course name.
	OwnerUserID      int64  // Owning teacher's user ID.
	Specialization   string // Specialization the course belongs to.
	UniversitaryYear int    // Study year the course is taught in.
}
