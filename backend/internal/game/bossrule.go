package game

import (
	"errors"
	"log"
	"math"

	"GamifyPlanner/backend/internal/models"

	"gorm.io/gorm"
)

// SelectBossTier maps a team's average member level to a boss tier (1..8).
// The average is rounded half away from zero first, so 10.5 already falls
// into tier 2.
func SelectBossTier(averageLevel float64) int {
	rounded := int(math.Round(averageLevel))
	switch {
	case rounded <= 10:
		return 1
	case rounded <= 20:
		return 2
	case rounded <= 30:
		return 3
	case rounded <= 40:
		return 4
	case rounded <= 50:
		return 5
	case rounded <= 60:
		return 6
	case rounded <= 70:
		return 7
	default:
		return 8
	}
}

// ReevaluateBoss derives the team's boss from its current membership. Teams
// with fewer than two members fight nothing. When the tier a team should face
// changes, the new boss starts at full BaseLives; when it stays the same,
// mid-fight progress is preserved unless forceReset is set (used after a
// defeat, where the re-fight always starts fresh).
func ReevaluateBoss(db *gorm.DB, team *models.Team, forceReset bool) error {
	var members []models.User
	if err := db.Where("team_id = ?", team.ID).Find(&members).Error; err != nil {
		return err
	}

	if len(members) < 2 {
		team.BossID = nil
		team.Boss = nil
		team.BossLives = 0
		return db.Model(&models.Team{}).Where("id = ?", team.ID).
			Updates(map[string]interface{}{"boss_id": nil, "boss_lives": 0}).Error
	}

	total := 0
	for _, m := range members {
		total += m.Level
	}
	tier := SelectBossTier(float64(total) / float64(len(members)))

	currentTier := 0
	if team.BossID != nil {
		var current models.Boss
		if err := db.First(&current, *team.BossID).Error; err != nil {
			return err
		}
		currentTier = current.Level
	}
	if tier == currentTier && !forceReset {
		return nil
	}

	var boss models.Boss
	if err := db.Where("level = ?", tier).First(&boss).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("[BOSS RULE] No boss seeded for tier %d", tier)
		}
		return err
	}
	team.BossID = &boss.ID
	team.Boss = &boss
	team.BossLives = boss.BaseLives
	return db.Model(&models.Team{}).Where("id = ?", team.ID).
		Updates(map[string]interface{}{"boss_id": boss.ID, "boss_lives": boss.BaseLives}).Error
}
