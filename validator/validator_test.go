package validator

import (
	"strings"
	"testing"

	"chamcong/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string {
	return &s
}

func floatPtr(v float64) *float64 {
	return &v
}

func TestValidateAddAttendance(t *testing.T) {
	tests := []struct {
		name       string
		req        *dto.AddAttendanceRequest
		wantFields []string
	}{
		{
			name: "hợp lệ",
			req:  &dto.AddAttendanceRequest{Date: "2024-12-02", AttendanceType: "Present"},
		},
		{
			name:       "thiếu cả hai field bắt buộc",
			req:        &dto.AddAttendanceRequest{},
			wantFields: []string{"date", "attendanceType"},
		},
		{
			name:       "ngày không theo ISO8601",
			req:        &dto.AddAttendanceRequest{Date: "02/12/2024", AttendanceType: "Present"},
			wantFields: []string{"date"},
		},
		{
			name:       "loại chấm công lạ",
			req:        &dto.AddAttendanceRequest{Date: "2024-12-02", AttendanceType: "Sick"},
			wantFields: []string{"attendanceType"},
		},
		{
			name:       "ghi chú quá dài",
			req:        &dto.AddAttendanceRequest{Date: "2024-12-02", AttendanceType: "Present", Notes: strings.Repeat("a", 201)},
			wantFields: []string{"notes"},
		},
		{
			// Giới hạn ghi chú đếm theo ký tự, không theo byte
			name: "ghi chú tiếng Việt 150 ký tự hợp lệ",
			req:  &dto.AddAttendanceRequest{Date: "2024-12-02", AttendanceType: "Present", Notes: strings.Repeat("ế", 150)},
		},
		{
			name: "ghi chú tiếng Việt đúng 200 ký tự hợp lệ",
			req:  &dto.AddAttendanceRequest{Date: "2024-12-02", AttendanceType: "Present", Notes: strings.Repeat("ế", 200)},
		},
		{
			name:       "ghi chú tiếng Việt 201 ký tự quá dài",
			req:        &dto.AddAttendanceRequest{Date: "2024-12-02", AttendanceType: "Present", Notes: strings.Repeat("ế", 201)},
			wantFields: []string{"notes"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields := ValidateAddAttendance(tt.req)
			assert.Len(t, fields, len(tt.wantFields))
			for _, field := range tt.wantFields {
				assert.Contains(t, fields, field)
			}
		})
	}
}

func TestValidateAddAttendance_TypeMessageListsAllowedValues(t *testing.T) {
	fields := ValidateAddAttendance(&dto.AddAttendanceRequest{Date: "2024-12-02", AttendanceType: "Sick"})
	require.Contains(t, fields, "attendanceType")

	message := fields["attendanceType"]
	for _, allowed := range []string{"Present", "Leave", "CancelLeave", "ExtraDay"} {
		assert.Contains(t, message, allowed)
	}
}

func TestValidateUpdateAttendance(t *testing.T) {
	// Không gửi field nào cũng hợp lệ, update là partial
	assert.Empty(t, ValidateUpdateAttendance(&dto.UpdateAttendanceRequest{}))

	fields := ValidateUpdateAttendance(&dto.UpdateAttendanceRequest{AttendanceType: strPtr("Holiday")})
	assert.Contains(t, fields, "attendanceType")

	fields = ValidateUpdateAttendance(&dto.UpdateAttendanceRequest{Notes: strPtr(strings.Repeat("b", 201))})
	assert.Contains(t, fields, "notes")

	// Ghi chú có dấu đếm theo ký tự
	assert.Empty(t, ValidateUpdateAttendance(&dto.UpdateAttendanceRequest{Notes: strPtr(strings.Repeat("ồ", 200))}))
	fields = ValidateUpdateAttendance(&dto.UpdateAttendanceRequest{Notes: strPtr(strings.Repeat("ồ", 201))})
	assert.Contains(t, fields, "notes")
}

func TestValidateAddSalary(t *testing.T) {
	tests := []struct {
		name       string
		req        *dto.AddSalaryRequest
		wantFields []string
	}{
		{
			name: "hợp lệ",
			req:  &dto.AddSalaryRequest{Month: "December-2024", BaseSalary: floatPtr(31000)},
		},
		{
			name: "hợp lệ với khấu trừ bằng 0",
			req:  &dto.AddSalaryRequest{Month: "December-2024", BaseSalary: floatPtr(31000), Deductions: floatPtr(0)},
		},
		{
			name:       "thiếu tháng và lương",
			req:        &dto.AddSalaryRequest{},
			wantFields: []string{"month", "baseSalary"},
		},
		{
			name:       "tháng sai định dạng",
			req:        &dto.AddSalaryRequest{Month: "12-2024", BaseSalary: floatPtr(31000)},
			wantFields: []string{"month"},
		},
		{
			name:       "lương âm",
			req:        &dto.AddSalaryRequest{Month: "December-2024", BaseSalary: floatPtr(-1)},
			wantFields: []string{"baseSalary"},
		},
		{
			name:       "khấu trừ âm",
			req:        &dto.AddSalaryRequest{Month: "December-2024", BaseSalary: floatPtr(31000), Deductions: floatPtr(-0.5)},
			wantFields: []string{"deductions"},
		},
		{
			name: "ghi chú tiếng Việt 200 ký tự hợp lệ",
			req:  &dto.AddSalaryRequest{Month: "December-2024", BaseSalary: floatPtr(31000), Notes: strings.Repeat("ư", 200)},
		},
		{
			name:       "ghi chú tiếng Việt 201 ký tự quá dài",
			req:        &dto.AddSalaryRequest{Month: "December-2024", BaseSalary: floatPtr(31000), Notes: strings.Repeat("ư", 201)},
			wantFields: []string{"notes"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields := ValidateAddSalary(tt.req)
			assert.Len(t, fields, len(tt.wantFields))
			for _, field := range tt.wantFields {
				assert.Contains(t, fields, field)
			}
		})
	}
}

func TestValidateUpdateSalary(t *testing.T) {
	assert.Empty(t, ValidateUpdateSalary(&dto.UpdateSalaryRequest{}))

	fields := ValidateUpdateSalary(&dto.UpdateSalaryRequest{Month: strPtr("Dec-24")})
	assert.Contains(t, fields, "month")

	fields = ValidateUpdateSalary(&dto.UpdateSalaryRequest{BaseSalary: floatPtr(0)})
	assert.Contains(t, fields, "baseSalary")

	assert.Empty(t, ValidateUpdateSalary(&dto.UpdateSalaryRequest{Notes: strPtr(strings.Repeat("ạ", 200))}))
	fields = ValidateUpdateSalary(&dto.UpdateSalaryRequest{Notes: strPtr(strings.Repeat("ạ", 201))})
	assert.Contains(t, fields, "notes")
}

func TestValidateRecordID(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		want    uint
		wantErr bool
	}{
		{name: "số hợp lệ", id: "12", want: 12},
		{name: "có khoảng trắng", id: " 7 ", want: 7},
		{name: "rỗng", id: "", wantErr: true},
		{name: "bằng không", id: "0", wantErr: true},
		{name: "âm", id: "-1", wantErr: true},
		{name: "không phải số", id: "abc", wantErr: true},
		{name: "số thập phân", id: "12.5", wantErr: true},
		{name: "quá lớn cho uint32", id: "99999999999999999999", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateRecordID(tt.id)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidateEmail(t *testing.T) {
	assert.NoError(t, ValidateEmail("a@example.com"))
	assert.Error(t, ValidateEmail("not-an-email"))
	assert.Error(t, ValidateEmail("a@b"))
}

func TestValidatePassword(t *testing.T) {
	assert.NoError(t, ValidatePassword("123456"))
	assert.Error(t, ValidatePassword("12345"))
}
