package services

import (
	"sort"
	"strings"

	"chamcong/dto"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
)

// Hàm chuẩn hóa chuỗi, bỏ dấu tiếng Việt để tìm kiếm gần đúng
func normalizeInput(input string) string {
	input = strings.TrimSpace(input)
	input = strings.ToLower(unidecode.Unidecode(input))
	return input
}

// Tạo đối tượng closestmatch cho danh sách từ khóa
func createMatcher(keywords []string) *closestmatch.ClosestMatch {
	return closestmatch.New(keywords, []int{2, 3})
}

// Tính độ tương đồng giữa hai chuỗi
func calculateSimilarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := float64(len(a))
	if float64(len(b)) > maxLen {
		maxLen = float64(len(b))
	}

	if maxLen == 0 {
		return 1.0
	}

	return 1.0 - float64(distance)/maxLen
}

// Tạo danh sách tên duy nhất đã chuẩn hóa cho closestmatch
func prepareNameList(users []dto.UserResponse) []string {
	uniqueNames := make(map[string]bool)

	for _, user := range users {
		if user.Name != "" {
			uniqueNames[normalizeInput(user.Name)] = true
		}
	}

	nameList := make([]string, 0, len(uniqueNames))
	for name := range uniqueNames {
		nameList = append(nameList, name)
	}
	return nameList
}

// Tính điểm phù hợp của một user với từ khóa tìm kiếm
func scoreUser(query string, user dto.UserResponse, cmNames *closestmatch.ClosestMatch) int {
	normalizedName := normalizeInput(user.Name)
	score := 0

	if strings.Contains(normalizedName, query) {
		score += 20
	}
	if cmNames.Closest(query) == normalizedName {
		score += 13
	}
	if calculateSimilarity(query, normalizedName) > 0.7 {
		score += 10
	}
	if emailLocal := strings.SplitN(normalizeInput(user.Email), "@", 2)[0]; strings.Contains(emailLocal, query) {
		score += 5
	}

	return score
}

type scoredUser struct {
	user  dto.UserResponse
	score int
}

// SearchUsersByName tìm user theo tên gần đúng, không phân biệt dấu,
// kết quả xếp theo điểm phù hợp giảm dần
func SearchUsersByName(query string, users []dto.UserResponse) []dto.UserResponse {
	normalizedQuery := normalizeInput(query)
	if normalizedQuery == "" {
		return users
	}

	cmNames := createMatcher(prepareNameList(users))

	scored := make([]scoredUser, 0, len(users))
	for _, user := range users {
		score := scoreUser(normalizedQuery, user, cmNames)
		if score > 0 {
			scored = append(scored, scoredUser{user: user, score: score})
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	results := make([]dto.UserResponse, 0, len(scored))
	for _, s := range scored {
		results = append(results, s.user)
	}
	return results
}
