package services

import (
	"testing"

	"chamcong/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func searchTestUsers() []dto.UserResponse {
	return []dto.UserResponse{
		{Name: "Nguyễn Văn An", Email: "an.nguyen@example.com"},
		{Name: "Trần Thị Bình", Email: "binh.tran@example.com"},
		{Name: "Lê Hoàng Cường", Email: "cuong.le@example.com"},
		{Name: "Phạm Anh Dũng", Email: "dung.pham@example.com"},
	}
}

func TestNormalizeInput(t *testing.T) {
	assert.Equal(t, "nguyen van an", normalizeInput("  Nguyễn Văn An "))
	assert.Equal(t, "cuong", normalizeInput("Cường"))
}

func TestSearchUsersByName_AccentInsensitive(t *testing.T) {
	users := searchTestUsers()

	// Tìm không dấu vẫn khớp tên có dấu
	results := SearchUsersByName("cuong", users)
	require.NotEmpty(t, results)
	assert.Equal(t, "Lê Hoàng Cường", results[0].Name)

	// Tìm có dấu cũng khớp
	results = SearchUsersByName("Cường", users)
	require.NotEmpty(t, results)
	assert.Equal(t, "Lê Hoàng Cường", results[0].Name)
}

func TestSearchUsersByName_EmptyQueryReturnsAll(t *testing.T) {
	users := searchTestUsers()
	results := SearchUsersByName("   ", users)
	assert.Len(t, results, len(users))
}

func TestSearchUsersByName_MatchesEmailLocalPart(t *testing.T) {
	users := searchTestUsers()
	results := SearchUsersByName("binh.tran", users)
	require.NotEmpty(t, results)
	assert.Equal(t, "Trần Thị Bình", results[0].Name)
}

func TestSearchUsersByName_NoMatch(t *testing.T) {
	users := searchTestUsers()
	results := SearchUsersByName("zzzzzz", users)
	assert.Empty(t, results)
}

func TestCalculateSimilarity(t *testing.T) {
	assert.InDelta(t, 1.0, calculateSimilarity("abc", "abc"), 0.001)
	assert.InDelta(t, 0.0, calculateSimilarity("abc", "xyz"), 0.001)
	assert.InDelta(t, 1.0, calculateSimilarity("", ""), 0.001)
}
