package model

import (
	"time"
)

// RoleAdmin 管理员角色
const RoleAdmin = "admin"

// User 后台用户
type User struct {
	ID           int       `json:"id"`
	Email        string    `json:"email" gorm:"unique"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
}

// SessionUser 专门用于 Session 存储的用户信息结构
type SessionUser struct {
	ID    int    `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}
