package services

import (
	"context"
	"errors"
	"time"

	"chamcong/dto"
	apperrors "chamcong/errors"
	"chamcong/models"
	"chamcong/services/logger"
	"chamcong/services/notification"
	"chamcong/validator"

	"gorm.io/gorm"
)

// AttendanceService xử lý nghiệp vụ chấm công: mỗi user mỗi ngày chỉ có một
// bản ghi, chấm công xong thì tính lại lương tháng tương ứng
type AttendanceService struct {
	db         *gorm.DB
	logger     logger.Logger
	calculator *SalaryCalculator
	notifier   notification.Service
}

type AttendanceServiceOptions struct {
	DB       *gorm.DB
	Logger   logger.Logger
	Notifier notification.Service
}

func NewAttendanceService(opts AttendanceServiceOptions) *AttendanceService {
	return &AttendanceService{
		db:         opts.DB,
		logger:     opts.Logger,
		calculator: NewSalaryCalculator(opts.DB, opts.Logger),
		notifier:   opts.Notifier,
	}
}

// RecordAttendance tạo bản ghi chấm công cho một ngày, sau đó tính lại lương
// của tháng đó. Tính lại lương lỗi thì chỉ log, bản ghi chấm công vẫn giữ;
// lần chấm công kế tiếp trong tháng hoặc cron hằng đêm sẽ sửa lại.
func (s *AttendanceService) RecordAttendance(ctx context.Context, userID uint, req *dto.AddAttendanceRequest) (*models.Attendance, error) {
	if fields := validator.ValidateAddAttendance(req); len(fields) > 0 {
		return nil, apperrors.NewValidationError(fields)
	}

	date, err := time.Parse(validator.DateLayout, req.Date)
	if err != nil {
		return nil, apperrors.NewValidationError(map[string]string{
			"date": "Định dạng ngày không hợp lệ. Dùng định dạng ISO8601 (YYYY-MM-DD)",
		})
	}

	// Kiểm tra trùng trước khi ghi, unique index (user_id, date) trong DB
	// vẫn là ràng buộc chính thức
	var existing models.Attendance
	err = s.db.WithContext(ctx).Where("user_id = ? AND date = ?", userID, date).First(&existing).Error
	if err == nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDuplicateRecord, "Đã tồn tại bản ghi chấm công cho ngày này", nil)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Lỗi khi kiểm tra bản ghi chấm công", err)
	}

	attendance := models.Attendance{
		UserID:         userID,
		Date:           date,
		AttendanceType: req.AttendanceType,
		Notes:          req.Notes,
	}

	if err := s.db.WithContext(ctx).Create(&attendance).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.NewAppError(apperrors.ErrCodeDuplicateRecord, "Đã tồn tại bản ghi chấm công cho ngày này", nil)
		}
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Lỗi khi lưu bản ghi chấm công", err)
	}

	month := MonthOf(date)
	if err := s.calculator.Recalculate(ctx, userID, month); err != nil {
		s.logger.Error("Lỗi khi tính lại lương tháng %s cho user %d, giữ nguyên bản ghi chấm công: %v", month, userID, err)
	}

	if s.notifier != nil {
		message := notification.NewMessageBuilder(userID, req.Date, req.AttendanceType).Build()
		if err := s.notifier.SendMessage(message); err != nil {
			s.logger.Error("Lỗi gửi thông báo chấm công: %v", err)
		}
	}

	return &attendance, nil
}

// UpdateAttendance cập nhật loại chấm công hoặc ghi chú của một bản ghi.
// Kiểm tra tồn tại trước, quyền sở hữu sau.
func (s *AttendanceService) UpdateAttendance(ctx context.Context, recordID, callerUserID uint, req *dto.UpdateAttendanceRequest) (*models.Attendance, error) {
	if fields := validator.ValidateUpdateAttendance(req); len(fields) > 0 {
		return nil, apperrors.NewValidationError(fields)
	}

	var attendance models.Attendance
	if err := s.db.WithContext(ctx).First(&attendance, recordID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewAppError(apperrors.ErrCodeRecordNotFound, "Không tìm thấy bản ghi chấm công", nil)
		}
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Lỗi khi truy vấn bản ghi chấm công", err)
	}

	if attendance.UserID != callerUserID {
		return nil, apperrors.NewAppError(apperrors.ErrCodeForbidden, "Không có quyền cập nhật bản ghi này", nil)
	}

	if req.AttendanceType != nil {
		attendance.AttendanceType = *req.AttendanceType
	}
	if req.Notes != nil {
		attendance.Notes = *req.Notes
	}

	if err := s.db.WithContext(ctx).Save(&attendance).Error; err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Lỗi khi cập nhật bản ghi chấm công", err)
	}

	return &attendance, nil
}

// ListAttendance trả về chấm công của user, mới nhất trước. Có đủ cả hai mốc
// thì lọc theo [startDate, endDate] (bao gồm hai đầu).
func (s *AttendanceService) ListAttendance(ctx context.Context, userID uint, startDate, endDate string) ([]models.Attendance, error) {
	query := s.db.WithContext(ctx).Where("user_id = ?", userID)

	if startDate != "" && endDate != "" {
		start, err := time.Parse(validator.DateLayout, startDate)
		if err != nil {
			return nil, apperrors.NewValidationError(map[string]string{
				"startDate": "Định dạng ngày không hợp lệ. Dùng định dạng ISO8601 (YYYY-MM-DD)",
			})
		}
		end, err := time.Parse(validator.DateLayout, endDate)
		if err != nil {
			return nil, apperrors.NewValidationError(map[string]string{
				"endDate": "Định dạng ngày không hợp lệ. Dùng định dạng ISO8601 (YYYY-MM-DD)",
			})
		}
		query = query.Where("date >= ? AND date <= ?", start, end)
	}

	var records []models.Attendance
	if err := query.Order("date desc").Find(&records).Error; err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Lỗi khi truy vấn chấm công", err)
	}

	return records, nil
}
