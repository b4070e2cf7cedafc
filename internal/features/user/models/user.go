package models

import "time"

// User is the stored user record.
type User struct {
	ID               int64     `json:"id" gorm:"primaryKey;autoIncrement:false"`
	Email            string    `json:"email" gorm:"not null;index"`
	Username         string    `json:"username"`
	Password         string    `json:"password"`
	RegistrationDate time.Time `json:"registrationDate" gorm:"not null"`
}

// UserResponse представляет публичную информацию о пользователе
// @Description Public user information
type UserResponse struct {
	ID               int64     `json:"id" example:"1"`
	Email            string    `json:"email" example:"cat@example.com"`
	Username         string    `json:"username,omitempty" example:"whiskers"`
	RegistrationDate time.Time `json:"registrationDate" example:"2024-03-15T14:30:00Z"`
}

// CreateUserRequest is the body of POST /users.
type CreateUserRequest struct {
	Email    string `json:"email" example:"cat@example.com"`
	Username string `json:"username,omitempty" example:"whiskers"`
	Password string `json:"password,omitempty" example:"secret"`
}

// UpdateUserRequest is the body of PUT /users. A nil field keeps the stored value.
type UpdateUserRequest struct {
	ID       *int64  `json:"id" example:"1"`
	Email    *string `json:"email,omitempty" example:"cat@example.com"`
	Username *string `json:"username,omitempty" example:"whiskers"`
	Password *string `json:"password,omitempty" example:"secret"`
}

// Clone returns a copy that shares no state with u.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	c := *u
	return &c
}
