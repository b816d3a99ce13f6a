package services

import (
	"context"
	"errors"
	"math"
	"time"

	"chamcong/constants"
	apperrors "chamcong/errors"
	"chamcong/models"
	"chamcong/services/logger"
	"chamcong/validator"

	"gorm.io/gorm"
)

// AttendanceTally đếm số ngày theo từng loại chấm công trong một tháng
type AttendanceTally struct {
	Present     int
	ExtraDay    int
	CancelLeave int
	Leave       int
}

// TallyAttendance đếm số bản ghi theo từng loại chấm công
func TallyAttendance(records []models.Attendance) AttendanceTally {
	var tally AttendanceTally
	for _, record := range records {
		switch record.AttendanceType {
		case constants.AttendancePresent:
			tally.Present++
		case constants.AttendanceExtraDay:
			tally.ExtraDay++
		case constants.AttendanceCancelLeave:
			tally.CancelLeave++
		case constants.AttendanceLeave:
			tally.Leave++
		}
	}
	return tally
}

// PaidDays trả về số ngày công được trả lương. Present, ExtraDay và
// CancelLeave (nghỉ phép đã hủy, tính như ngày làm bình thường) là ngày có
// lương; Leave trừ thẳng một ngày lương.
func (t AttendanceTally) PaidDays() int {
	return t.Present + t.ExtraDay + t.CancelLeave - t.Leave
}

// MonthInterval đổi token tháng (ví dụ "December-2024") thành khoảng
// [đầu tháng, đầu tháng sau) và số ngày thực tế của tháng đó
func MonthInterval(month string) (time.Time, time.Time, int, error) {
	startOfMonth, err := time.Parse(validator.MonthLayout, month)
	if err != nil {
		return time.Time{}, time.Time{}, 0, apperrors.NewAppError(apperrors.ErrCodeInvalidMonth, "Định dạng tháng không hợp lệ: "+month, err)
	}
	startOfNextMonth := startOfMonth.AddDate(0, 1, 0)
	daysInMonth := startOfNextMonth.AddDate(0, 0, -1).Day()
	return startOfMonth, startOfNextMonth, daysInMonth, nil
}

// MonthOf trả về token tháng của một ngày, ví dụ "December-2024"
func MonthOf(date time.Time) string {
	return date.Format(validator.MonthLayout)
}

// ComputeMonthlySalary áp dụng công thức lương theo chấm công:
// (present + extraDay + cancelLeave - leave) * lương ngày - khấu trừ.
// Chỉ làm tròn 2 chữ số thập phân ở bước cuối trước khi lưu.
func ComputeMonthlySalary(tally AttendanceTally, baseSalary, deductions float64, daysInMonth int) float64 {
	dailyRate := baseSalary / float64(daysInMonth)
	total := float64(tally.PaidDays())*dailyRate - deductions
	return round2(total)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// SalaryCalculator tính lại lương tháng dựa trên dữ liệu chấm công
type SalaryCalculator struct {
	db     *gorm.DB
	logger logger.Logger
}

func NewSalaryCalculator(db *gorm.DB, log logger.Logger) *SalaryCalculator {
	return &SalaryCalculator{
		db:     db,
		logger: log,
	}
}

// Recalculate đọc toàn bộ chấm công trong tháng của user và ghi đè
// totalSalary lên bản ghi lương của tháng đó. Tháng chưa có bản ghi lương
// thì bỏ qua, không phải lỗi.
func (s *SalaryCalculator) Recalculate(ctx context.Context, userID uint, month string) error {
	var salary models.Salary
	if err := s.db.WithContext(ctx).Where("user_id = ? AND month = ?", userID, month).First(&salary).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return apperrors.NewAppError(apperrors.ErrCodeDBError, "Lỗi khi truy vấn bản ghi lương", err)
	}

	total, err := s.computeForRecord(ctx, &salary)
	if err != nil {
		return err
	}

	if err := s.db.WithContext(ctx).Model(&models.Salary{}).
		Where("id = ?", salary.ID).
		Update("total_salary", total).Error; err != nil {
		return apperrors.NewAppError(apperrors.ErrCodeDBError, "Lỗi khi cập nhật lương tháng", err)
	}

	s.logger.Info("Đã tính lại lương tháng %s cho user %d: %.2f", month, userID, total)
	return nil
}

// computeForRecord tính totalSalary cho một bản ghi lương mà không ghi DB
func (s *SalaryCalculator) computeForRecord(ctx context.Context, salary *models.Salary) (float64, error) {
	startOfMonth, startOfNextMonth, daysInMonth, err := MonthInterval(salary.Month)
	if err != nil {
		return 0, err
	}

	var records []models.Attendance
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date < ?", salary.UserID, startOfMonth, startOfNextMonth).
		Find(&records).Error; err != nil {
		return 0, apperrors.NewAppError(apperrors.ErrCodeDBError, "Lỗi khi truy vấn chấm công của tháng", err)
	}

	tally := TallyAttendance(records)
	return ComputeMonthlySalary(tally, salary.BaseSalary, salary.Deductions, daysInMonth), nil
}

// RecalculateCurrentMonth quét lại lương tháng hiện tại cho mọi bản ghi lương.
// Dùng cho cron job chạy hằng đêm để sửa các lần tính lại bị lỗi trước đó.
func (s *SalaryCalculator) RecalculateCurrentMonth(ctx context.Context) error {
	month := MonthOf(time.Now())

	var salaries []models.Salary
	if err := s.db.WithContext(ctx).Where("month = ?", month).Find(&salaries).Error; err != nil {
		return apperrors.NewAppError(apperrors.ErrCodeDBError, "Lỗi khi truy vấn bản ghi lương của tháng", err)
	}

	for _, salary := range salaries {
		if err := s.Recalculate(ctx, salary.UserID, month); err != nil {
			s.logger.Error("Lỗi khi tính lại lương cho user %d tháng %s: %v", salary.UserID, month, err)
		}
	}

	s.logger.Info("Hoàn tất quét lại lương tháng %s cho %d user", month, len(salaries))
	return nil
}
