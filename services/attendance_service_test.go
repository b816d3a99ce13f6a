package services

import (
	"context"
	"testing"

	"chamcong/constants"
	"chamcong/dto"
	apperrors "chamcong/errors"
	"chamcong/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAttendanceService(db *gorm.DB) *AttendanceService {
	return NewAttendanceService(AttendanceServiceOptions{
		DB:     db,
		Logger: newTestLogger(),
	})
}

func strPtr(s string) *string {
	return &s
}

func TestRecordAttendance_Success(t *testing.T) {
	db := newTestDB(t)
	service := newAttendanceService(db)
	user := createTestUser(t, db, "a@example.com")

	record, err := service.RecordAttendance(context.Background(), user.ID, &dto.AddAttendanceRequest{
		Date:           "2024-12-02",
		AttendanceType: constants.AttendancePresent,
		Notes:          "đi làm bình thường",
	})
	require.NoError(t, err)
	assert.NotZero(t, record.ID)
	assert.Equal(t, user.ID, record.UserID)
	assert.Equal(t, constants.AttendancePresent, record.AttendanceType)
	assert.Equal(t, "2024-12-02", record.Date.Format("2006-01-02"))

	records, err := service.ListAttendance(context.Background(), user.ID, "", "")
	require.NoError(t, err)
	require.Len(t, records, 1)
}

func TestRecordAttendance_ValidationErrors(t *testing.T) {
	db := newTestDB(t)
	service := newAttendanceService(db)
	user := createTestUser(t, db, "a@example.com")

	tests := []struct {
		name      string
		req       *dto.AddAttendanceRequest
		wantField string
	}{
		{
			name:      "thiếu ngày",
			req:       &dto.AddAttendanceRequest{AttendanceType: constants.AttendancePresent},
			wantField: "date",
		},
		{
			name:      "ngày sai định dạng",
			req:       &dto.AddAttendanceRequest{Date: "02-12-2024", AttendanceType: constants.AttendancePresent},
			wantField: "date",
		},
		{
			name:      "loại chấm công không hợp lệ",
			req:       &dto.AddAttendanceRequest{Date: "2024-12-02", AttendanceType: "Sick"},
			wantField: "attendanceType",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.RecordAttendance(context.Background(), user.ID, tt.req)
			require.Error(t, err)
			appErr := apperrors.GetAppError(err)
			require.NotNil(t, appErr)
			assert.Equal(t, apperrors.ErrCodeValidation, appErr.Code)
			assert.Contains(t, appErr.Fields, tt.wantField)
		})
	}
}

func TestRecordAttendance_DuplicateDate(t *testing.T) {
	db := newTestDB(t)
	service := newAttendanceService(db)
	user := createTestUser(t, db, "a@example.com")
	other := createTestUser(t, db, "b@example.com")

	req := &dto.AddAttendanceRequest{Date: "2024-12-02", AttendanceType: constants.AttendancePresent}

	_, err := service.RecordAttendance(context.Background(), user.ID, req)
	require.NoError(t, err)

	// Cùng user cùng ngày bị từ chối, kể cả khi đổi loại chấm công
	_, err = service.RecordAttendance(context.Background(), user.ID, &dto.AddAttendanceRequest{
		Date:           "2024-12-02",
		AttendanceType: constants.AttendanceLeave,
	})
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeDuplicateRecord))

	// User khác cùng ngày thì vẫn được
	_, err = service.RecordAttendance(context.Background(), other.ID, req)
	require.NoError(t, err)
}

func TestRecordAttendance_RecalculatesMonthlySalary(t *testing.T) {
	db := newTestDB(t)
	service := newAttendanceService(db)
	user := createTestUser(t, db, "a@example.com")

	salary := models.Salary{UserID: user.ID, Month: "December-2024", BaseSalary: 31000}
	require.NoError(t, db.Create(&salary).Error)

	_, err := service.RecordAttendance(context.Background(), user.ID, &dto.AddAttendanceRequest{
		Date:           "2024-12-02",
		AttendanceType: constants.AttendancePresent,
	})
	require.NoError(t, err)

	var updated models.Salary
	require.NoError(t, db.First(&updated, salary.ID).Error)
	assert.InDelta(t, 1000, updated.TotalSalary, 0.001)
}

func TestRecordAttendance_KeepsRecordWhenRecalculationFails(t *testing.T) {
	db := newTestDB(t)
	service := newAttendanceService(db)
	user := createTestUser(t, db, "a@example.com")

	// Làm hỏng phần tính lương, chấm công vẫn phải được giữ
	require.NoError(t, db.Exec("DROP TABLE salaries").Error)

	record, err := service.RecordAttendance(context.Background(), user.ID, &dto.AddAttendanceRequest{
		Date:           "2024-12-02",
		AttendanceType: constants.AttendancePresent,
	})
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.NotZero(t, record.ID)

	var count int64
	require.NoError(t, db.Model(&models.Attendance{}).Where("id = ?", record.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestUpdateAttendance_NotFoundBeforeForbidden(t *testing.T) {
	db := newTestDB(t)
	service := newAttendanceService(db)
	user := createTestUser(t, db, "a@example.com")
	other := createTestUser(t, db, "b@example.com")

	record, err := service.RecordAttendance(context.Background(), user.ID, &dto.AddAttendanceRequest{
		Date:           "2024-12-02",
		AttendanceType: constants.AttendancePresent,
	})
	require.NoError(t, err)

	// Bản ghi không tồn tại trả về not found, bất kể caller là ai
	_, err = service.UpdateAttendance(context.Background(), record.ID+1000, other.ID, &dto.UpdateAttendanceRequest{
		Notes: strPtr("x"),
	})
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeRecordNotFound))

	// Bản ghi tồn tại nhưng không phải của caller thì bị cấm
	_, err = service.UpdateAttendance(context.Background(), record.ID, other.ID, &dto.UpdateAttendanceRequest{
		Notes: strPtr("x"),
	})
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeForbidden))
}

func TestUpdateAttendance_PartialUpdate(t *testing.T) {
	db := newTestDB(t)
	service := newAttendanceService(db)
	user := createTestUser(t, db, "a@example.com")

	record, err := service.RecordAttendance(context.Background(), user.ID, &dto.AddAttendanceRequest{
		Date:           "2024-12-02",
		AttendanceType: constants.AttendancePresent,
		Notes:          "ghi chú cũ",
	})
	require.NoError(t, err)

	// Chỉ đổi notes, loại chấm công giữ nguyên
	updated, err := service.UpdateAttendance(context.Background(), record.ID, user.ID, &dto.UpdateAttendanceRequest{
		Notes: strPtr("ghi chú mới"),
	})
	require.NoError(t, err)
	assert.Equal(t, constants.AttendancePresent, updated.AttendanceType)
	assert.Equal(t, "ghi chú mới", updated.Notes)

	// Chỉ đổi loại chấm công, notes giữ nguyên
	updated, err = service.UpdateAttendance(context.Background(), record.ID, user.ID, &dto.UpdateAttendanceRequest{
		AttendanceType: strPtr(constants.AttendanceLeave),
	})
	require.NoError(t, err)
	assert.Equal(t, constants.AttendanceLeave, updated.AttendanceType)
	assert.Equal(t, "ghi chú mới", updated.Notes)
}

func TestUpdateAttendance_InvalidType(t *testing.T) {
	db := newTestDB(t)
	service := newAttendanceService(db)
	user := createTestUser(t, db, "a@example.com")

	record, err := service.RecordAttendance(context.Background(), user.ID, &dto.AddAttendanceRequest{
		Date:           "2024-12-02",
		AttendanceType: constants.AttendancePresent,
	})
	require.NoError(t, err)

	_, err = service.UpdateAttendance(context.Background(), record.ID, user.ID, &dto.UpdateAttendanceRequest{
		AttendanceType: strPtr("Holiday"),
	})
	require.Error(t, err)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Contains(t, appErr.Fields, "attendanceType")
}

func TestListAttendance_OrderAndRange(t *testing.T) {
	db := newTestDB(t)
	service := newAttendanceService(db)
	user := createTestUser(t, db, "a@example.com")

	for _, date := range []string{"2024-12-01", "2024-12-05", "2024-12-03"} {
		_, err := service.RecordAttendance(context.Background(), user.ID, &dto.AddAttendanceRequest{
			Date:           date,
			AttendanceType: constants.AttendancePresent,
		})
		require.NoError(t, err)
	}

	records, err := service.ListAttendance(context.Background(), user.ID, "", "")
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "2024-12-05", records[0].Date.Format("2006-01-02"))
	assert.Equal(t, "2024-12-03", records[1].Date.Format("2006-01-02"))
	assert.Equal(t, "2024-12-01", records[2].Date.Format("2006-01-02"))

	// Lọc theo khoảng, bao gồm cả hai đầu
	records, err = service.ListAttendance(context.Background(), user.ID, "2024-12-03", "2024-12-05")
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "2024-12-05", records[0].Date.Format("2006-01-02"))
	assert.Equal(t, "2024-12-03", records[1].Date.Format("2006-01-02"))
}

func TestListAttendance_InvalidRange(t *testing.T) {
	db := newTestDB(t)
	service := newAttendanceService(db)
	user := createTestUser(t, db, "a@example.com")

	_, err := service.ListAttendance(context.Background(), user.ID, "01-12-2024", "2024-12-05")
	require.Error(t, err)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Contains(t, appErr.Fields, "startDate")
}
