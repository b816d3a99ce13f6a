package controllers

import (
	"log"
	"strconv"

	"chamcong/config"
	"chamcong/dto"
	"chamcong/models"
	"chamcong/response"
	"chamcong/services"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const usersCacheKey = "users:all"

type UserController struct {
	DB    *gorm.DB
	Redis *redis.Client
}

func NewUserController(db *gorm.DB, redisCli *redis.Client) UserController {
	return UserController{DB: db, Redis: redisCli}
}

// GetUsers trả về danh sách user phân trang, hỗ trợ tìm kiếm gần đúng theo
// tên qua ?name=
func (u UserController) GetUsers(c *gin.Context) {
	name := c.Query("name")

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit < 1 || limit > 100 {
		limit = 20
	}

	// Cache và tìm kiếm đều làm việc trên projection, không đưa password
	// hash hay mã xác thực vào Redis
	var userResponses []dto.UserResponse

	cacheable := u.Redis != nil
	if cacheable {
		if err := services.GetFromRedis(config.Ctx, u.Redis, usersCacheKey, &userResponses); err != nil || len(userResponses) == 0 {
			userResponses = nil
		}
	}

	if userResponses == nil {
		var users []models.User
		if err := u.DB.Order("created_at desc").Find(&users).Error; err != nil {
			response.ServerError(c)
			return
		}
		userResponses = make([]dto.UserResponse, 0, len(users))
		for i := range users {
			userResponses = append(userResponses, toUserResponse(&users[i]))
		}
		if cacheable {
			if err := services.SetToRedis(config.Ctx, u.Redis, usersCacheKey, userResponses, listCacheTTL); err != nil {
				log.Printf("Không thể lưu cache danh sách user: %v", err)
			}
		}
	}

	if name != "" {
		userResponses = services.SearchUsersByName(name, userResponses)
	}

	total := len(userResponses)

	// Phân trang sau khi lọc để tổng phản ánh kết quả tìm kiếm
	offset := (page - 1) * limit
	if offset > total {
		offset = total
	}
	end := offset + limit
	if end > total {
		end = total
	}
	userResponses = userResponses[offset:end]

	response.SuccessWithPagination(c, userResponses, page, limit, total)
}

// GetProfile trả về thông tin user đang đăng nhập
func (u UserController) GetProfile(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	var user models.User
	if err := u.DB.First(&user, userID).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, toUserResponse(&user))
}
