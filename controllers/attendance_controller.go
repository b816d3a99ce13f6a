package controllers

import (
	"fmt"
	"log"
	"time"

	"chamcong/config"
	"chamcong/dto"
	"chamcong/errors"
	"chamcong/models"
	"chamcong/response"
	"chamcong/services"
	"chamcong/services/logger"
	"chamcong/services/notification"
	"chamcong/validator"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const listCacheTTL = 5 * time.Minute

type AttendanceController struct {
	DB      *gorm.DB
	Redis   *redis.Client
	Service *services.AttendanceService
}

func NewAttendanceController(db *gorm.DB, redisCli *redis.Client, m *melody.Melody) AttendanceController {
	service := services.NewAttendanceService(services.AttendanceServiceOptions{
		DB:       db,
		Logger:   logger.NewDefaultLogger(logger.InfoLevel),
		Notifier: notification.NewMelodyService(m),
	})
	return AttendanceController{
		DB:      db,
		Redis:   redisCli,
		Service: service,
	}
}

// handleServiceError ánh xạ AppError sang response HTTP tương ứng
func handleServiceError(c *gin.Context, err error) {
	appErr := errors.GetAppError(err)
	if appErr == nil {
		response.ServerError(c)
		return
	}

	switch appErr.Code {
	case errors.ErrCodeValidation:
		if len(appErr.Fields) > 0 {
			response.ValidationErrors(c, appErr.Fields)
		} else {
			response.ValidationError(c, appErr.Message)
		}
	case errors.ErrCodeDuplicateRecord:
		response.Conflict(c, appErr.Message)
	case errors.ErrCodeRecordNotFound:
		response.NotFound(c)
	case errors.ErrCodeForbidden:
		response.Forbidden(c)
	case errors.ErrCodeInvalidMonth, errors.ErrCodeInvalidDate:
		response.BadRequest(c, appErr.Message)
	default:
		response.ServerError(c)
	}
}

// getUserID lấy userID do AuthMiddleware gán vào context
func getUserID(c *gin.Context) (uint, bool) {
	value, exists := c.Get("userID")
	if !exists {
		response.Unauthorized(c)
		return 0, false
	}
	userID, ok := value.(uint)
	if !ok {
		response.Unauthorized(c)
		return 0, false
	}
	return userID, true
}

func attendanceCacheKey(userID uint) string {
	return fmt.Sprintf("attendance:user:%d", userID)
}

func salaryCacheKey(userID uint) string {
	return fmt.Sprintf("salaries:user:%d", userID)
}

// invalidateAttendanceCache xóa cache chấm công và lương của user sau khi ghi
func (a AttendanceController) invalidateCache(userID uint) {
	if a.Redis == nil {
		return
	}
	if err := services.DeleteFromRedis(config.Ctx, a.Redis, attendanceCacheKey(userID)); err != nil {
		log.Printf("Không thể xóa cache chấm công của user %d: %v", userID, err)
	}
	// Chấm công đổi thì lương tháng cũng đổi theo
	if err := services.DeleteFromRedis(config.Ctx, a.Redis, salaryCacheKey(userID)); err != nil {
		log.Printf("Không thể xóa cache lương của user %d: %v", userID, err)
	}
}

func toAttendanceResponse(record *models.Attendance) dto.AttendanceResponse {
	return dto.AttendanceResponse{
		ID:             record.ID,
		Date:           record.Date.Format(validator.DateLayout),
		AttendanceType: record.AttendanceType,
		Notes:          record.Notes,
		CreatedAt:      record.CreatedAt,
		UpdatedAt:      record.UpdatedAt,
	}
}

// AddAttendance chấm công cho một ngày
func (a AttendanceController) AddAttendance(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	var request dto.AddAttendanceRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	record, err := a.Service.RecordAttendance(c.Request.Context(), userID, &request)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	a.invalidateCache(userID)

	response.Created(c, toAttendanceResponse(record))
}

// UpdateAttendance cập nhật loại chấm công hoặc ghi chú của một bản ghi
func (a AttendanceController) UpdateAttendance(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	recordID, err := validator.ValidateRecordID(c.Param("id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	var request dto.UpdateAttendanceRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	record, err := a.Service.UpdateAttendance(c.Request.Context(), recordID, userID, &request)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	a.invalidateCache(userID)

	response.Success(c, toAttendanceResponse(record))
}

// ListAttendance trả về chấm công của user, mới nhất trước
func (a AttendanceController) ListAttendance(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	startDate := c.Query("startDate")
	endDate := c.Query("endDate")

	// Chỉ cache danh sách không lọc
	cacheable := startDate == "" && endDate == "" && a.Redis != nil
	cacheKey := attendanceCacheKey(userID)

	if cacheable {
		var cached []dto.AttendanceResponse
		if err := services.GetFromRedis(config.Ctx, a.Redis, cacheKey, &cached); err == nil && len(cached) > 0 {
			response.SuccessWithTotal(c, cached, len(cached))
			return
		}
	}

	records, err := a.Service.ListAttendance(c.Request.Context(), userID, startDate, endDate)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	attendanceResponses := make([]dto.AttendanceResponse, 0, len(records))
	for i := range records {
		attendanceResponses = append(attendanceResponses, toAttendanceResponse(&records[i]))
	}

	if cacheable {
		if err := services.SetToRedis(config.Ctx, a.Redis, cacheKey, attendanceResponses, listCacheTTL); err != nil {
			log.Printf("Không thể lưu cache chấm công của user %d: %v", userID, err)
		}
	}

	response.SuccessWithTotal(c, attendanceResponses, len(attendanceResponses))
}
