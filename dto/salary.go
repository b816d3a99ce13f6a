package dto

import "time"

// AddSalaryRequest là DTO cho yêu cầu tạo bản ghi lương
type AddSalaryRequest struct {
	Month      string   `json:"month"`
	BaseSalary *float64 `json:"baseSalary"`
	Deductions *float64 `json:"deductions"`
	Notes      string   `json:"notes"`
}

// UpdateSalaryRequest là DTO cho yêu cầu cập nhật bản ghi lương
type UpdateSalaryRequest struct {
	Month      *string  `json:"month"`
	BaseSalary *float64 `json:"baseSalary"`
	Deductions *float64 `json:"deductions"`
	Notes      *string  `json:"notes"`
}

// SalaryResponse là DTO cho response của bản ghi lương
type SalaryResponse struct {
	ID          uint      `json:"id"`
	UserID      uint      `json:"userId"`
	Month       string    `json:"month"`
	BaseSalary  float64   `json:"baseSalary"`
	Deductions  float64   `json:"deductions"`
	TotalSalary float64   `json:"totalSalary"`
	Notes       string    `json:"notes"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
