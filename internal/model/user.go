package model

import (
	"time"
)

const (
	UserStatusOrdinary uint8 = 1
	UserStatusManager  uint8 = 2
)

const (
	RoleUser    = "USER"
	RoleManager = "MANAGER"
	RoleAdmin   = "ADMIN"
)

type User struct {
	ID        uint64  `gorm:"primaryKey"`
	Username  string  `gorm:"type:varchar(123);not null;uniqueIndex:idx_username"`
	Email     *string `gorm:"type:varchar(255)"`
	Password  string  `gorm:"type:varchar(255);not null"`
	Cover     string  `gorm:"type:varchar(512);not null;default:''"`
	Status    uint8   `gorm:"not null;default:1"`
	IsAdmin   bool    `gorm:"not null;default:false"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (User) TableName() string {
	return "users"
}

// Roles 根据状态与管理员标记推导角色
func (u *User) Roles() []string {
	roles := []string{RoleUser}
	if u.Status == UserStatusManager {
		roles = append(roles, RoleManager)
	}
	if u.IsAdmin {
		roles = append(roles, RoleAdmin)
	}
	return roles
}
