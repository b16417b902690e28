package auth

import (
	"GamifyPlanner/backend/internal/database"
	"GamifyPlanner/backend/internal/models"
	"fmt"
	"strings"
)

func normalizeNickname(base string) string {
	base = strings.TrimSpace(base)
	base = strings.ToLower(base)
	base = strings.ReplaceAll(base, " ", "_")
	if len(base) > 14 {
		base = base[:14]
	}
	if base == "" {
		base = "hero"
	}
	return base
}

// generateUniqueNickname picks base, base_1, base_2, ... until one is free.
func generateUniqueNickname(base string) string {
	base = normalizeNickname(base)

	nickname := base
	var count int64
	database.DB.Model(&models.User{}).
		Where("nickname = ?", nickname).
		Count(&count)
	if count == 0 {
		return nickname
	}

	for i := 1; i <= 50; i++ {
		candidate := fmt.Sprintf("%s_%d", base, i)
		count = 0
		database.DB.Model(&models.User{}).
			Where("nickname = ?", candidate).
			Count(&count)
		if count == 0 {
			return candidate
		}
	}

	return fmt.Sprintf("%s_%d", base, count+1)
}
