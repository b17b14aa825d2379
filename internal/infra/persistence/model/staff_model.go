package model

// TeachingStaffModel mirrors the 'teaching_staff' table. ExternalID is the
// timetable feed's own identifier, kept so live lookups can be keyed by it.
type TeachingStaffModel struct {
	ID         int64  `gorm:"primaryKey;autoIncrement"`
	ExternalID string `gorm:"type:varchar(50);index"`
	LastName   string `gorm:"type:varchar(100);not null"`
	FirstName  string `gorm:"type:varchar(100);not null"`
	Email      string `gorm:"type:varchar(255)"`
	Phone      string `gorm:"type:varchar(50)"`
	Faculty    string `gorm:"type:varchar(150);index"`
	Department string `gorm:"type:varchar(150);index"`
}

// TableName explicitly sets the table name for GORM.
func (TeachingStaffModel) TableName() string {
	return "teaching_staff"
}
