package model

// CourseModel mirrors the 'courses' table. OwnerUserID references users.id.
type CourseModel struct {
	ID               int64  `gorm:"primaryKey;autoIncrement"`
	Name             string `gorm:"type:varchar(255);not null"`
	OwnerUserID      int64  `gorm:"column:user_id;not null;index"`
	Specialization   string `gorm:"type:varchar(100)"`
	UniversitaryYear int
}

// TableName explicitly sets the table name for GORM.
func (CourseModel) TableName() string {
	return "courses"
}
