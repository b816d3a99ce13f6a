package services

import (
	"context"
	"errors"

	"chamcong/dto"
	apperrors "chamcong/errors"
	"chamcong/models"
	"chamcong/services/logger"
	"chamcong/validator"

	"gorm.io/gorm"
)

// SalaryService xử lý CRUD bản ghi lương tháng, mỗi user mỗi tháng một bản
// ghi. Phần tính totalSalary ủy quyền cho SalaryCalculator.
type SalaryService struct {
	db         *gorm.DB
	logger     logger.Logger
	calculator *SalaryCalculator
}

type SalaryServiceOptions struct {
	DB     *gorm.DB
	Logger logger.Logger
}

func NewSalaryService(opts SalaryServiceOptions) *SalaryService {
	return &SalaryService{
		db:         opts.DB,
		logger:     opts.Logger,
		calculator: NewSalaryCalculator(opts.DB, opts.Logger),
	}
}

// AddSalary tạo bản ghi lương cho một tháng rồi tính ngay totalSalary theo
// chấm công đã có của tháng đó
func (s *SalaryService) AddSalary(ctx context.Context, userID uint, req *dto.AddSalaryRequest) (*models.Salary, error) {
	if fields := validator.ValidateAddSalary(req); len(fields) > 0 {
		return nil, apperrors.NewValidationError(fields)
	}

	// Kiểm tra trùng trước khi ghi, unique index (user_id, month) trong DB
	// vẫn là ràng buộc chính thức
	var existing models.Salary
	err := s.db.WithContext(ctx).Where("user_id = ? AND month = ?", userID, req.Month).First(&existing).Error
	if err == nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDuplicateRecord, "Đã tồn tại bản ghi lương cho tháng này", nil)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Lỗi khi kiểm tra bản ghi lương", err)
	}

	salary := models.Salary{
		UserID:     userID,
		Month:      req.Month,
		BaseSalary: *req.BaseSalary,
		Notes:      req.Notes,
	}
	if req.Deductions != nil {
		salary.Deductions = *req.Deductions
	}

	if err := salary.Validate(); err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeValidation, "Dữ liệu bản ghi lương không hợp lệ", err)
	}

	if err := s.db.WithContext(ctx).Create(&salary).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.NewAppError(apperrors.ErrCodeDuplicateRecord, "Đã tồn tại bản ghi lương cho tháng này", nil)
		}
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Lỗi khi lưu bản ghi lương", err)
	}

	// Tháng có thể đã có chấm công từ trước, tính luôn thay vì để 0
	total, err := s.calculator.computeForRecord(ctx, &salary)
	if err != nil {
		s.logger.Error("Lỗi khi tính lương ban đầu cho user %d tháng %s: %v", userID, salary.Month, err)
		return &salary, nil
	}
	if err := s.db.WithContext(ctx).Model(&models.Salary{}).
		Where("id = ?", salary.ID).
		Update("total_salary", total).Error; err != nil {
		s.logger.Error("Lỗi khi lưu lương ban đầu cho user %d tháng %s: %v", userID, salary.Month, err)
		return &salary, nil
	}
	salary.TotalSalary = total

	return &salary, nil
}

// UpdateSalary cập nhật các field được cung cấp rồi tính lại totalSalary
// theo tháng và mức lương mới
func (s *SalaryService) UpdateSalary(ctx context.Context, recordID uint, req *dto.UpdateSalaryRequest) (*models.Salary, error) {
	if fields := validator.ValidateUpdateSalary(req); len(fields) > 0 {
		return nil, apperrors.NewValidationError(fields)
	}

	var salary models.Salary
	if err := s.db.WithContext(ctx).First(&salary, recordID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewAppError(apperrors.ErrCodeRecordNotFound, "Không tìm thấy bản ghi lương", nil)
		}
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Lỗi khi truy vấn bản ghi lương", err)
	}

	if req.Month != nil {
		salary.Month = *req.Month
	}
	if req.BaseSalary != nil {
		salary.BaseSalary = *req.BaseSalary
	}
	if req.Deductions != nil {
		salary.Deductions = *req.Deductions
	}
	if req.Notes != nil {
		salary.Notes = *req.Notes
	}

	if err := salary.Validate(); err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeValidation, "Dữ liệu bản ghi lương không hợp lệ", err)
	}

	total, err := s.calculator.computeForRecord(ctx, &salary)
	if err != nil {
		return nil, err
	}
	salary.TotalSalary = total

	if err := s.db.WithContext(ctx).Save(&salary).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.NewAppError(apperrors.ErrCodeDuplicateRecord, "Đã tồn tại bản ghi lương cho tháng này", nil)
		}
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Lỗi khi cập nhật bản ghi lương", err)
	}

	return &salary, nil
}

// ListSalaries trả về bản ghi lương của user, bản ghi tạo sau trước. Có
// month thì chỉ lấy tháng đó.
func (s *SalaryService) ListSalaries(ctx context.Context, userID uint, month string) ([]models.Salary, error) {
	query := s.db.WithContext(ctx).Where("user_id = ?", userID)
	if month != "" {
		query = query.Where("month = ?", month)
	}

	var salaries []models.Salary
	if err := query.Order("created_at desc").Find(&salaries).Error; err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Lỗi khi truy vấn bản ghi lương", err)
	}

	return salaries, nil
}

// DeleteSalary xóa bản ghi lương của chính user và trả về bản ghi đã xóa.
// Bản ghi của user khác trả về not found, không để lộ là bị cấm quyền.
func (s *SalaryService) DeleteSalary(ctx context.Context, recordID, callerUserID uint) (*models.Salary, error) {
	var salary models.Salary
	if err := s.db.WithContext(ctx).Where("id = ? AND user_id = ?", recordID, callerUserID).First(&salary).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewAppError(apperrors.ErrCodeRecordNotFound, "Không tìm thấy bản ghi lương hoặc bạn không có quyền xóa bản ghi này", nil)
		}
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Lỗi khi truy vấn bản ghi lương", err)
	}

	if err := s.db.WithContext(ctx).Delete(&models.Salary{}, salary.ID).Error; err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Lỗi khi xóa bản ghi lương", err)
	}

	return &salary, nil
}
