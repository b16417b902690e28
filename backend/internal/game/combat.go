package game

import (
	"log"
	"math"

	"GamifyPlanner/backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ComplexityMultiplier returns the damage multiplier for a task complexity.
// Unknown values count as easy.
func ComplexityMultiplier(complexity string) float64 {
	switch complexity {
	case models.ComplexityHard:
		return 2.0
	case models.ComplexityNormal:
		return 1.5
	default:
		return 1.0
	}
}

// CompleteTask flips a task's completion flag and resolves the combat side
// effects. Damage is dealt only on a genuine false to true transition, by the
// acting user, against their team's live boss: repeating a completion call on
// an already-completed task changes nothing, and un-completing never refunds
// damage. On defeat every current member receives the boss's gold reward and
// the next boss is assigned at full health (possibly the same tier again).
// The whole transition, flag write included, is one transaction; the team row
// is locked so two simultaneous defeats cannot both pay out.
func CompleteTask(db *gorm.DB, taskID, actingUserID uint, completed bool) (*models.Task, error) {
	var task models.Task
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&task, taskID).Error; err != nil {
			return err
		}
		wasCompleted := task.Completed
		task.Completed = completed
		if err := tx.Model(&models.Task{}).Where("id = ?", task.ID).
			Update("completed", completed).Error; err != nil {
			return err
		}
		if !completed || wasCompleted {
			return nil
		}

		var user models.User
		if err := tx.First(&user, actingUserID).Error; err != nil {
			return err
		}
		if user.TeamID == nil {
			return nil
		}

		var team models.Team
		if err := lockForUpdate(tx).First(&team, *user.TeamID).Error; err != nil {
			return err
		}
		if team.BossID == nil || team.BossLives <= 0 {
			// no fight in progress, or another request already finished it
			return nil
		}

		damage := int(math.Floor(float64(user.Attack) * ComplexityMultiplier(task.Complexity)))
		newLives := team.BossLives - damage
		if newLives < 0 {
			newLives = 0
		}
		log.Printf("[COMBAT] user=%d task=%d damage=%d bossLives %d -> %d",
			user.ID, task.ID, damage, team.BossLives, newLives)

		if newLives > 0 {
			team.BossLives = newLives
			return tx.Model(&models.Team{}).Where("id = ?", team.ID).
				Update("boss_lives", newLives).Error
		}
		team.BossLives = 0
		return resolveDefeat(tx, &team)
	})
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// resolveDefeat pays out the downed boss and assigns the next one. Runs
// inside the completion transaction, with the team row already locked.
func resolveDefeat(tx *gorm.DB, team *models.Team) error {
	var boss models.Boss
	if err := tx.First(&boss, *team.BossID).Error; err != nil {
		return err
	}
	var members []models.User
	if err := tx.Where("team_id = ?", team.ID).Find(&members).Error; err != nil {
		return err
	}
	for _, m := range members {
		if _, err := ApplyGoldAndExperience(tx, m.ID, boss.GoldReward, 0); err != nil {
			return err
		}
	}
	log.Printf("[COMBAT][DEFEAT] team=%d boss=%s reward=%d members=%d",
		team.ID, boss.Name, boss.GoldReward, len(members))
	return ReevaluateBoss(tx, team, true)
}

// lockForUpdate takes a row lock where the database supports it. SQLite has
// no FOR UPDATE; its single-writer model covers the same race in tests.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "postgres" {
		return tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return tx
}
