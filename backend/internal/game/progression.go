package game

import (
	"fmt"

	"GamifyPlanner/backend/internal/models"

	"gorm.io/gorm"
)

// ApplyGoldAndExperience adds the deltas to the user and resolves level-ups
// eagerly: a single large reward can cross several level boundaries, so this
// loops until points < maxPoints again. MaxPoints is always 100 times the
// current level, recomputed from the level just reached.
func ApplyGoldAndExperience(db *gorm.DB, userID uint, goldDelta, pointsDelta int) (*models.User, error) {
	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		return nil, err
	}

	user.Gold += goldDelta
	user.Points += pointsDelta

	if user.MaxPoints <= 0 {
		// corrupt row, refuse to loop on it
		return nil, fmt.Errorf("user %d has invalid maxPoints %d", user.ID, user.MaxPoints)
	}
	for user.Points >= user.MaxPoints {
		user.Points -= user.MaxPoints
		user.Level++
		user.MaxPoints = 100 * user.Level
	}

	if err := db.Save(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
