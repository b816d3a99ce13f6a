package dto

// RegisterRequest là DTO cho yêu cầu đăng ký
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginRequest là DTO cho yêu cầu đăng nhập
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// GoogleAuthRequest là DTO cho đăng nhập bằng Google
type GoogleAuthRequest struct {
	Token string `json:"token" binding:"required"`
}

// LoginResponse là DTO cho response đăng nhập
type LoginResponse struct {
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
	User         UserResponse `json:"user"`
}

// UserResponse là DTO cho thông tin user trả về
type UserResponse struct {
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Avatar     string `json:"avatar"`
	Role       int    `json:"role"`
	Status     int    `json:"status"`
	IsVerified bool   `json:"is_verified"`
}
