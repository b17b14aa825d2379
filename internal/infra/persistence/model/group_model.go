package model

// GroupModel mirrors the 'groups' table. Rows are replaced wholesale on each
// timetable sync, so there are no audit timestamps.
type GroupModel struct {
	ID               int64  `gorm:"primaryKey;autoIncrement"`
	GroupNumber      string `gorm:"type:varchar(50);not null"`
	Specialization   string `gorm:"type:varchar(100)"`
	UniversitaryYear int    `gorm:"not null"`
	Subgroup         string `gorm:"type:varchar(10)"`
	Faculty          string `gorm:"type:varchar(100)"`
	Type             string `gorm:"type:varchar(50)"`
}

// TableName explicitly sets the table name for GORM.
func (GroupModel) TableName() string {
	return "groups"
}
