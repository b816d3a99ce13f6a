package dto

import "time"

// AddAttendanceRequest là DTO cho yêu cầu chấm công
type AddAttendanceRequest struct {
	Date           string `json:"date"`
	AttendanceType string `json:"attendanceType"`
	Notes          string `json:"notes"`
}

// UpdateAttendanceRequest là DTO cho yêu cầu cập nhật chấm công.
// Chỉ cho phép sửa loại chấm công và ghi chú, ngày và user là bất biến.
type UpdateAttendanceRequest struct {
	AttendanceType *string `json:"attendanceType"`
	Notes          *string `json:"notes"`
}

// AttendanceResponse là DTO cho response của bản ghi chấm công
type AttendanceResponse struct {
	ID             uint      `json:"id"`
	Date           string    `json:"date"`
	AttendanceType string    `json:"attendanceType"`
	Notes          string    `json:"notes"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}
