package validator

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"chamcong/constants"
	"chamcong/dto"
	"chamcong/errors"
)

const (
	// DateLayout là định dạng ngày ISO8601 dùng cho chấm công
	DateLayout = "2006-01-02"
	// MonthLayout là định dạng tháng của bản ghi lương, ví dụ "December-2024"
	MonthLayout = "January-2006"

	maxNotesLength = 200
)

// ValidateAddAttendance kiểm tra dữ liệu chấm công, trả về map lỗi theo từng field
func ValidateAddAttendance(req *dto.AddAttendanceRequest) map[string]string {
	fields := map[string]string{}

	if req.Date == "" {
		fields["date"] = "Ngày không được để trống"
	} else if _, err := time.Parse(DateLayout, req.Date); err != nil {
		fields["date"] = "Định dạng ngày không hợp lệ. Dùng định dạng ISO8601 (YYYY-MM-DD)"
	}

	if req.AttendanceType == "" {
		fields["attendanceType"] = "Loại chấm công không được để trống"
	} else if !constants.IsValidAttendanceType(req.AttendanceType) {
		fields["attendanceType"] = fmt.Sprintf("Loại chấm công không hợp lệ. Phải là một trong: %s",
			strings.Join(constants.AttendanceTypes, ", "))
	}

	if utf8.RuneCountInString(req.Notes) > maxNotesLength {
		fields["notes"] = "Ghi chú không được vượt quá 200 ký tự"
	}

	return fields
}

// ValidateUpdateAttendance kiểm tra dữ liệu cập nhật chấm công
func ValidateUpdateAttendance(req *dto.UpdateAttendanceRequest) map[string]string {
	fields := map[string]string{}

	if req.AttendanceType != nil && !constants.IsValidAttendanceType(*req.AttendanceType) {
		fields["attendanceType"] = fmt.Sprintf("Loại chấm công không hợp lệ. Phải là một trong: %s",
			strings.Join(constants.AttendanceTypes, ", "))
	}

	if req.Notes != nil && utf8.RuneCountInString(*req.Notes) > maxNotesLength {
		fields["notes"] = "Ghi chú không được vượt quá 200 ký tự"
	}

	return fields
}

// ValidateAddSalary kiểm tra dữ liệu tạo bản ghi lương
func ValidateAddSalary(req *dto.AddSalaryRequest) map[string]string {
	fields := map[string]string{}

	validateMonth(req.Month, fields)

	if req.BaseSalary == nil {
		fields["baseSalary"] = "Lương cơ bản không được để trống"
	} else if *req.BaseSalary <= 0 {
		fields["baseSalary"] = "Lương cơ bản phải lớn hơn 0"
	}

	if req.Deductions != nil && *req.Deductions < 0 {
		fields["deductions"] = "Khoản khấu trừ không được âm"
	}

	if utf8.RuneCountInString(req.Notes) > maxNotesLength {
		fields["notes"] = "Ghi chú không được vượt quá 200 ký tự"
	}

	return fields
}

// ValidateUpdateSalary kiểm tra dữ liệu cập nhật bản ghi lương
func ValidateUpdateSalary(req *dto.UpdateSalaryRequest) map[string]string {
	fields := map[string]string{}

	if req.Month != nil {
		validateMonth(*req.Month, fields)
	}

	if req.BaseSalary != nil && *req.BaseSalary <= 0 {
		fields["baseSalary"] = "Lương cơ bản phải lớn hơn 0"
	}

	if req.Deductions != nil && *req.Deductions < 0 {
		fields["deductions"] = "Khoản khấu trừ không được âm"
	}

	if req.Notes != nil && utf8.RuneCountInString(*req.Notes) > maxNotesLength {
		fields["notes"] = "Ghi chú không được vượt quá 200 ký tự"
	}

	return fields
}

func validateMonth(month string, fields map[string]string) {
	if month == "" {
		fields["month"] = "Tháng không được để trống"
		return
	}
	if _, err := time.Parse(MonthLayout, month); err != nil {
		fields["month"] = "Định dạng tháng không hợp lệ. Ví dụ: December-2024"
	}
}

var recordIDRegex = regexp.MustCompile(`^[0-9]+$`)

// ValidateRecordID kiểm tra id bản ghi là số nguyên dương hợp lệ
func ValidateRecordID(id string) (uint, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return 0, errors.NewValidationError(map[string]string{"id": "ID bản ghi không được để trống"})
	}
	if !recordIDRegex.MatchString(id) {
		return 0, errors.NewValidationError(map[string]string{"id": "ID bản ghi không hợp lệ"})
	}
	parsed, err := strconv.ParseUint(id, 10, 32)
	if err != nil || parsed == 0 {
		return 0, errors.NewValidationError(map[string]string{"id": "ID bản ghi không hợp lệ"})
	}
	return uint(parsed), nil
}

// isValidEmail kiểm tra email hợp lệ
var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// ValidateEmail kiểm tra email hợp lệ
func ValidateEmail(email string) error {
	if !emailRegex.MatchString(email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Email không hợp lệ", nil)
	}
	return nil
}

// ValidatePassword kiểm tra mật khẩu hợp lệ
func ValidatePassword(password string) error {
	if len(password) < 6 {
		return errors.NewAppError(errors.ErrCodeInvalidPassword, "Mật khẩu phải có ít nhất 6 ký tự", nil)
	}
	return nil
}
