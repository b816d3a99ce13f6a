package models

import "time"

type Attendance struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	UserID         uint      `json:"userId" gorm:"not null;uniqueIndex:idx_attendance_user_date"`
	Date           time.Time `json:"date" gorm:"type:date;not null;uniqueIndex:idx_attendance_user_date"` // Ngày chấm công
	AttendanceType string    `json:"attendanceType" gorm:"type:varchar(20);not null"`
	Notes          string    `json:"notes" gorm:"type:varchar(200);default:''"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updatedAt"`

	User User `json:"-" gorm:"foreignKey:UserID;references:ID"`
}
