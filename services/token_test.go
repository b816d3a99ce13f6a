package services

import (
	"testing"

	"chamcong/errors"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateTokenAndDecode(t *testing.T) {
	userInfo := UserInfo{UserId: 42, Role: 1}

	token, err := GenerateToken(userInfo, 60, true)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, role, err := GetUserIDFromToken(token)
	require.NoError(t, err)
	assert.EqualValues(t, 42, userID)
	assert.Equal(t, 1, role)
}

func TestGetUserIDFromToken_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{name: "rỗng", token: ""},
		{name: "thiếu phần", token: "abc.def"},
		{name: "payload không phải base64", token: "abc.%%%.def"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := GetUserIDFromToken(tt.token)
			require.Error(t, err)
			assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidToken))
		})
	}
}

func TestGenerateToken_ReadsSigningKeyAtCallTime(t *testing.T) {
	// Khóa ký đặt sau khi package đã khởi tạo vẫn phải có hiệu lực,
	// vì .env chỉ được nạp trong main
	t.Setenv("SECRET_KEY_ACCESS_TOKEN", "khoa-ky-moi")

	token, err := GenerateToken(UserInfo{UserId: 7, Role: 0}, 60, true)
	require.NoError(t, err)

	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(tk *jwt.Token) (interface{}, error) {
		return []byte("khoa-ky-moi"), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	claims, ok := parsed.Claims.(*Claims)
	require.True(t, ok)
	assert.EqualValues(t, 7, claims.UserInfo.UserId)
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("mat-khau-123")
	require.NoError(t, err)
	assert.NotEqual(t, "mat-khau-123", hash)

	assert.NoError(t, CheckPassword(hash, "mat-khau-123"))
	assert.Error(t, CheckPassword(hash, "sai-mat-khau"))
}

func TestGenerateVerificationCode(t *testing.T) {
	code, err := generateVerificationCode()
	require.NoError(t, err)
	assert.Len(t, code, 6)
	for _, r := range code {
		assert.True(t, r >= '0' && r <= '9')
	}
}
