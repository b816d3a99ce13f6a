package controllers

import (
	"context"
	"time"

	"chamcong/config"
	"chamcong/constants"
	"chamcong/dto"
	"chamcong/models"
	"chamcong/response"
	"chamcong/services"
	"chamcong/validator"

	"github.com/gin-gonic/gin"
	"google.golang.org/api/idtoken"
)

const (
	accessTokenExpiry  = 60 * 24 * 3 // phút
	refreshTokenExpiry = 60 * 24 * 30
)

func toUserResponse(user *models.User) dto.UserResponse {
	return dto.UserResponse{
		ID:         user.ID,
		Name:       user.Name,
		Email:      user.Email,
		Avatar:     user.Avatar,
		Role:       user.Role,
		Status:     user.Status,
		IsVerified: user.IsVerified,
	}
}

func issueTokens(c *gin.Context, user *models.User) (dto.LoginResponse, bool) {
	userInfo := services.UserInfo{UserId: user.ID, Role: user.Role}

	accessToken, err := services.GenerateToken(userInfo, accessTokenExpiry, true)
	if err != nil {
		response.ServerError(c)
		return dto.LoginResponse{}, false
	}

	refreshToken, err := services.GenerateToken(userInfo, refreshTokenExpiry, false)
	if err != nil {
		response.ServerError(c)
		return dto.LoginResponse{}, false
	}

	services.SetTokenCookies(c, accessToken)

	return dto.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         toUserResponse(user),
	}, true
}

// RegisterUser đăng ký tài khoản mới và gửi email mã xác thực
func RegisterUser(c *gin.Context) {
	var request dto.RegisterRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	if err := validator.ValidateEmail(request.Email); err != nil {
		response.BadRequest(c, "Email không hợp lệ")
		return
	}
	if err := validator.ValidatePassword(request.Password); err != nil {
		response.BadRequest(c, "Mật khẩu phải có ít nhất 6 ký tự")
		return
	}

	user, err := services.CreateUser(models.User{
		Name:     request.Name,
		Email:    request.Email,
		Password: request.Password,
		Role:     constants.RoleEmployee,
	})
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	response.Created(c, toUserResponse(&user))
}

// Login đăng nhập bằng email và mật khẩu
func Login(c *gin.Context) {
	var request dto.LoginRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	user, err := services.GetUserByEmail(request.Email)
	if err != nil {
		response.BadRequest(c, "Email hoặc mật khẩu không đúng")
		return
	}

	if err := services.CheckPassword(user.Password, request.Password); err != nil {
		response.BadRequest(c, "Email hoặc mật khẩu không đúng")
		return
	}

	if user.Status == constants.UserStatusInactive {
		response.Forbidden(c)
		return
	}

	loginResponse, ok := issueTokens(c, &user)
	if !ok {
		return
	}

	response.Success(c, loginResponse)
}

// Logout đăng xuất, xóa cookie access token
func Logout(c *gin.Context) {
	c.SetCookie("access_token", "", -1, "/", "", true, false)
	response.Success(c, nil)
}

// AuthGoogle đăng nhập bằng Google ID token
func AuthGoogle(c *gin.Context) {
	var request dto.GoogleAuthRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	payload, err := idtoken.Validate(context.Background(), request.Token, config.GetEnv("GOOGLE_CLIENT_ID"))
	if err != nil {
		response.Unauthorized(c)
		return
	}

	email, _ := payload.Claims["email"].(string)
	name, _ := payload.Claims["name"].(string)
	avatar, _ := payload.Claims["picture"].(string)
	if email == "" {
		response.Unauthorized(c)
		return
	}

	user, err := services.GetUserByEmail(email)
	if err != nil {
		user, err = services.CreateGoogleUser(name, email, avatar)
		if err != nil {
			response.ServerError(c)
			return
		}
	}

	loginResponse, ok := issueTokens(c, &user)
	if !ok {
		return
	}

	response.Success(c, loginResponse)
}

// VerifyCode xác thực tài khoản bằng mã gửi qua email
func VerifyCode(c *gin.Context) {
	var request struct {
		Email string `json:"email" binding:"required"`
		Code  string `json:"code" binding:"required"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	user, err := services.GetUserByEmail(request.Email)
	if err != nil {
		response.NotFound(c)
		return
	}

	if user.Code != request.Code {
		response.BadRequest(c, "Mã xác thực không đúng")
		return
	}

	// Mã chỉ có hiệu lực trong 15 phút
	if time.Since(user.CodeCreatedAt) > 15*time.Minute {
		response.BadRequest(c, "Mã xác thực đã hết hạn")
		return
	}

	user.IsVerified = true
	user.Code = ""
	if err := config.DB.Save(&user).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, toUserResponse(&user))
}
