package model

// ClassroomModel mirrors the 'classrooms' table.
type ClassroomModel struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	Name         string `gorm:"type:varchar(100);not null;index"`
	ShortName    string `gorm:"type:varchar(50)"`
	BuildingName string `gorm:"type:varchar(100)"`
	Capacity     int
	Computers    int
}

// TableName explicitly sets the table name for GORM.
func (ClassroomModel) TableName() string {
	return "classrooms"
}
