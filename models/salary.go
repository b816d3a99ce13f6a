package models

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

type Salary struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	UserID      uint      `json:"userId" gorm:"not null;uniqueIndex:idx_salary_user_month"`
	Month       string    `json:"month" gorm:"type:varchar(20);not null;uniqueIndex:idx_salary_user_month" validate:"required"` // Ví dụ: "December-2024"
	BaseSalary  float64   `json:"baseSalary" gorm:"not null" validate:"gt=0"`
	Deductions  float64   `json:"deductions" gorm:"default:0" validate:"gte=0"`
	TotalSalary float64   `json:"totalSalary" gorm:"default:0"` // Lương tính theo chấm công, do engine ghi đè
	Notes       string    `json:"notes" gorm:"type:varchar(200);default:''"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`

	User User `json:"-" gorm:"foreignKey:UserID;references:ID"`
}

// Validate kiểm tra dữ liệu bản ghi lương trước khi lưu
func (s *Salary) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return err
	}

	if _, err := time.Parse("January-2006", s.Month); err != nil {
		return fmt.Errorf("tháng không hợp lệ: %s", s.Month)
	}

	return nil
}
