package models

import (
	"time"
)

type User struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	Name          string    `gorm:"default:New User" json:"name"`
	Email         string    `gorm:"unique" json:"email"`
	Password      string    `json:"password"`
	IsVerified    bool      `gorm:"default:false" json:"is_verified"`
	Code          string    `json:"code"`
	CodeCreatedAt time.Time `gorm:"autoCreateTime" json:"codeCreatedAt"`
	Avatar        string    `gorm:"default:''" json:"avatar"`
	Role          int       `gorm:"default:0" json:"role"`
	Status        int       `gorm:"default:1" json:"status"`
	AdminId       *uint     `json:"adminId,omitempty"`
	Children      []User    `gorm:"foreignKey:AdminId" json:"children,omitempty"`

	Attendances []Attendance `json:"attendances,omitempty" gorm:"foreignKey:UserID"`
	Salaries    []Salary     `json:"salaries,omitempty" gorm:"foreignKey:UserID"`
}
