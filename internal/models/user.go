package models

import (
	"strings"
	"time"
)

type Role string

const (
	RoleClient Role = "client"
	RoleWorker Role = "worker"
	RoleAdmin  Role = "admin"
)

// ParseRole maps a token claim to a Role. Unknown values are rejected.
func ParseRole(s string) (Role, bool) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleClient:
		return RoleClient, true
	case RoleWorker:
		return RoleWorker, true
	case RoleAdmin:
		return RoleAdmin, true
	default:
		return "", false
	}
}

// Identity is the authenticated caller, resolved once per request.
type Identity struct {
	UserID string `json:"user_id"`
	Role   Role   `json:"role"`
}

// User mirrors the auth provider's account row.
type User struct {
	ID           string     `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Email        string     `gorm:"column:email;type:text;uniqueIndex" json:"email"`
	Role         Role       `gorm:"column:role;type:text" json:"role"`
	CreatedAt    time.Time  `gorm:"column:created_at;type:timestamptz" json:"created_at"`
	LastSignInAt *time.Time `gorm:"column:last_sign_in_at;type:timestamptz" json:"last_sign_in_at,omitempty"`
}

func (User) TableName() string { return "users" }
