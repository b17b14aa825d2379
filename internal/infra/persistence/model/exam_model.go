package model

import "time"

// ExamScheduleModel mirrors the 'exams_schedule' table. The start time is
// stored as wall-clock text because the feed and the clients exchange it as
// "HH:MM" with no timezone attached.
type ExamScheduleModel struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	Group      string    `gorm:"column:group_name;type:varchar(50);not null"`
	Discipline string    `gorm:"type:varchar(255);not null"`
	Examiner   string    `gorm:"type:varchar(255)"`
	Assistant  string    `gorm:"type:varchar(255)"`
	Date       time.Time `gorm:"type:date;not null"`
	StartTime  string    `gorm:"column:start;type:varchar(5);not null"`
	Room       string    `gorm:"type:varchar(100)"`
	StudentID  int64     `gorm:"not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (ExamScheduleModel) TableName() string {
	return "exams_schedule"
}
