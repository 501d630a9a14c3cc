package entity

import "time"

type User struct {
	Id           uint
	UserID       string
	FirstName    string
	LastName     string
	Email        string
	Department   string
	Position     string
	Role         string
	IsActive     bool
	PasswordHash *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
