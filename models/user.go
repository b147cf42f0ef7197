package models

import (
	"strconv"
	"time"

	"restaurant-pos/access"
)

type User struct {
	ID           uint        `json:"id" gorm:"primaryKey"`
	Username     string      `json:"username" gorm:"uniqueIndex;not null"`
	FullName     string      `json:"full_name" gorm:"not null"`
	PasswordHash string      `json:"-" gorm:"not null"`
	Role         access.Role `json:"role" gorm:"not null;default:'server'"`
	Email        *string     `json:"email"`
	Phone        *string     `json:"phone"`
	Active       bool        `json:"active" gorm:"not null;default:true"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

// Principal strips a user down to what access control needs
func (u *User) Principal() access.Principal {
	return access.Principal{
		ID:       strconv.FormatUint(uint64(u.ID), 10),
		Username: u.Username,
		FullName: u.FullName,
		Role:     u.Role,
	}
}
