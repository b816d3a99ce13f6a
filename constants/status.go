package constants

// User status
const (
	UserStatusActive   = 1
	UserStatusInactive = 0
)

// User role
const (
	RoleEmployee = 0
	RoleAdmin    = 1
)

// Attendance type
const (
	AttendancePresent     = "Present"
	AttendanceLeave       = "Leave"
	AttendanceCancelLeave = "CancelLeave"
	AttendanceExtraDay    = "ExtraDay"
)

// AttendanceTypes là danh sách các loại chấm công hợp lệ
var AttendanceTypes = []string{
	AttendancePresent,
	AttendanceLeave,
	AttendanceCancelLeave,
	AttendanceExtraDay,
}

// IsValidAttendanceType kiểm tra loại chấm công có hợp lệ không
func IsValidAttendanceType(attendanceType string) bool {
	for _, t := range AttendanceTypes {
		if t == attendanceType {
			return true
		}
	}
	return false
}
