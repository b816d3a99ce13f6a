package controllers

import (
	"log"

	"chamcong/config"
	"chamcong/dto"
	"chamcong/models"
	"chamcong/response"
	"chamcong/services"
	"chamcong/services/logger"
	"chamcong/validator"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type SalaryController struct {
	DB      *gorm.DB
	Redis   *redis.Client
	Service *services.SalaryService
}

func NewSalaryController(db *gorm.DB, redisCli *redis.Client) SalaryController {
	service := services.NewSalaryService(services.SalaryServiceOptions{
		DB:     db,
		Logger: logger.NewDefaultLogger(logger.InfoLevel),
	})
	return SalaryController{
		DB:      db,
		Redis:   redisCli,
		Service: service,
	}
}

func (s SalaryController) invalidateCache(userID uint) {
	if s.Redis == nil {
		return
	}
	if err := services.DeleteFromRedis(config.Ctx, s.Redis, salaryCacheKey(userID)); err != nil {
		log.Printf("Không thể xóa cache lương của user %d: %v", userID, err)
	}
}

func toSalaryResponse(record *models.Salary) dto.SalaryResponse {
	return dto.SalaryResponse{
		ID:          record.ID,
		UserID:      record.UserID,
		Month:       record.Month,
		BaseSalary:  record.BaseSalary,
		Deductions:  record.Deductions,
		TotalSalary: record.TotalSalary,
		Notes:       record.Notes,
		CreatedAt:   record.CreatedAt,
		UpdatedAt:   record.UpdatedAt,
	}
}

// AddSalary tạo bản ghi lương cho một tháng
func (s SalaryController) AddSalary(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	var request dto.AddSalaryRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	record, err := s.Service.AddSalary(c.Request.Context(), userID, &request)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	s.invalidateCache(userID)

	response.Created(c, toSalaryResponse(record))
}

// UpdateSalary cập nhật bản ghi lương, totalSalary được tính lại trong response
func (s SalaryController) UpdateSalary(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	recordID, err := validator.ValidateRecordID(c.Param("id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	var request dto.UpdateSalaryRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	record, err := s.Service.UpdateSalary(c.Request.Context(), recordID, &request)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	s.invalidateCache(userID)

	response.Success(c, toSalaryResponse(record))
}

// ListSalaries trả về bản ghi lương của user, bản ghi tạo sau trước
func (s SalaryController) ListSalaries(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	month := c.Query("month")

	// Chỉ cache danh sách không lọc
	cacheable := month == "" && s.Redis != nil
	cacheKey := salaryCacheKey(userID)

	if cacheable {
		var cached []dto.SalaryResponse
		if err := services.GetFromRedis(config.Ctx, s.Redis, cacheKey, &cached); err == nil && len(cached) > 0 {
			response.SuccessWithTotal(c, cached, len(cached))
			return
		}
	}

	records, err := s.Service.ListSalaries(c.Request.Context(), userID, month)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	salaryResponses := make([]dto.SalaryResponse, 0, len(records))
	for i := range records {
		salaryResponses = append(salaryResponses, toSalaryResponse(&records[i]))
	}

	if cacheable {
		if err := services.SetToRedis(config.Ctx, s.Redis, cacheKey, salaryResponses, listCacheTTL); err != nil {
			log.Printf("Không thể lưu cache lương của user %d: %v", userID, err)
		}
	}

	response.SuccessWithTotal(c, salaryResponses, len(salaryResponses))
}

// DeleteSalary xóa bản ghi lương của chính user, trả về bản ghi đã xóa
func (s SalaryController) DeleteSalary(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	recordID, err := validator.ValidateRecordID(c.Param("id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	record, err := s.Service.DeleteSalary(c.Request.Context(), recordID, userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	s.invalidateCache(userID)

	response.Success(c, toSalaryResponse(record))
}
