package routes

import (
	"context"
	"net/http"

	"chamcong/constants"
	"chamcong/controllers"
	middlewares "chamcong/middleware"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"

	"github.com/redis/go-redis/v9"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"gorm.io/gorm"
)

func SetupRoutes(router *gin.Engine, db *gorm.DB, redisCli *redis.Client, cld *cloudinary.Cloudinary, m *melody.Melody) {

	router.Use(middlewares.SessionMiddleware())
	router.Use(middlewares.ErrorHandler())

	attendanceController := controllers.NewAttendanceController(db, redisCli, m)
	salaryController := controllers.NewSalaryController(db, redisCli)
	userController := controllers.NewUserController(db, redisCli)

	v1 := router.Group("/api/v1")

	v1.POST("/auth/register", controllers.RegisterUser)
	v1.POST("/auth/login", controllers.Login)
	v1.DELETE("/auth/logout", controllers.Logout)
	v1.POST("/auth/google", controllers.AuthGoogle)
	v1.POST("/verifyCode", controllers.VerifyCode)

	v1.GET("/users", middlewares.AuthMiddleware(constants.RoleAdmin), userController.GetUsers)
	v1.GET("/profile", middlewares.AuthMiddleware(), userController.GetProfile)

	v1.POST("/attendance", middlewares.AuthMiddleware(), attendanceController.AddAttendance)
	v1.GET("/attendance", middlewares.AuthMiddleware(), attendanceController.ListAttendance)
	v1.PUT("/attendance/:id", middlewares.AuthMiddleware(), attendanceController.UpdateAttendance)

	v1.POST("/salary", middlewares.AuthMiddleware(), salaryController.AddSalary)
	v1.GET("/salary", middlewares.AuthMiddleware(), salaryController.ListSalaries)
	v1.PUT("/salary/:id", middlewares.AuthMiddleware(), salaryController.UpdateSalary)
	v1.DELETE("/salary/:id", middlewares.AuthMiddleware(), salaryController.DeleteSalary)

	v1.POST("/img/upload", func(c *gin.Context) {
		file, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Không có file"})
			return
		}

		src, err := file.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Lỗi khi mở file"})
			return
		}
		defer src.Close()

		ctx := context.Background()
		resp, err := cld.Upload.Upload(ctx, src, uploader.UploadParams{Folder: "avatars"})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload thất bại"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Upload avatar thành công",
			"url":     resp.SecureURL,
		})
	})

	//ws
	v1.GET("/test-broadcast", middlewares.AuthMiddleware(constants.RoleAdmin), func(c *gin.Context) {
		message := []byte("Thông báo từ backend: Tin nhắn mới!")
		m.Broadcast(message)
		c.String(200, "Broadcast message sent!")
	})
}
