package entity

// Classroom is an examination room imported from the university room feed.
type Classroom struct {
	ID           int64  // Numeric identity assigned by the database.
	Name         string // Full room name, e.g. "C201".
	ShortName    string // Optional short label.
	BuildingName string // Optional building name.
	Capacity     int    // Seat count.
	Computers    int    // Number of workstations, zero for plain rooms.
}
