package model

import "time"

type User struct {
	Id           uint      `gorm:"primaryKey;autoIncrement"`
	UserID       string    `gorm:"type:varchar(20);uniqueIndex;not null"`
	FirstName    string    `gorm:"type:varchar(100);not null"`
	LastName     string    `gorm:"type:varchar(100);not null"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Department   string    `gorm:"type:varchar(50);not null"`
	Position     string    `gorm:"type:varchar(100);not null"`
	Role         string    `gorm:"type:varchar(50);not null;default:'Contract Manager'"`
	IsActive     bool      `gorm:"default:true"`
	PasswordHash *string   `gorm:"type:varchar(255)"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

func (User) TableName() string {
	return "users"
}
