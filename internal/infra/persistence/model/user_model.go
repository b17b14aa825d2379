// Package model contains the GORM persistence models mirroring the database
// schema. The models are kept separate from the domain entities so schema
// concerns never leak into the domain layer.
package model

import "time"

// UserModel mirrors the 'users' table.
type UserModel struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	FirstName    string `gorm:"type:varchar(100);not null"`
	LastName     string `gorm:"type:varchar(100);not null"`
	Email        string `gorm:"type:varchar(255);unique;not null"`
	PasswordHash string `gorm:"column:password;type:varchar(255);not null"`
	Role         string `gorm:"type:varchar(50);not null"`
	Type         string `gorm:"type:varchar(50);not null"`
	DeviceToken  string `gorm:"type:varchar(255)"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
