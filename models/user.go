package models

import (
	"time"
)

// Role của tài khoản nội bộ
const (
	RoleAdmin = 1
	RoleStaff = 2
)

// User là tài khoản admin/lễ tân dùng cho các route quản trị. Khách đặt
// phòng không cần tài khoản.
type User struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name"`
	Email       string    `json:"email" gorm:"unique;size:100"`
	Password    string    `json:"-"`
	PhoneNumber string    `json:"phoneNumber,omitempty"`
	Role        int       `json:"role" gorm:"default:2"`
	Status      int       `json:"status" gorm:"default:0"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
