package models

import (
	"time"
)

// User represents a registered account. Field names keep the wire contract
// the mobile client speaks (Portuguese JSON keys).
type User struct {
	ID                uint      `gorm:"primarykey" json:"id"`
	Nome              string    `gorm:"not null" json:"nome"`
	Email             string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash      string    `gorm:"not null" json:"-"`
	Nascimento        *string   `json:"nascimento"`
	Telefone          *string   `json:"telefone"`
	InstagramUsername *string   `json:"instagram_username"`
	CreatedAt         time.Time `json:"created_at"`
}

// TableName overrides the table name
func (User) TableName() string {
	return "users"
}
