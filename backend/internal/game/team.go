package game

import (
	"log"

	"GamifyPlanner/backend/internal/models"

	"gorm.io/gorm"
)

// CreateTeam creates a team with the owner as its only member.
func CreateTeam(db *gorm.DB, ownerID uint, name, information string) (*models.Team, error) {
	var team *models.Team
	err := db.Transaction(func(tx *gorm.DB) error {
		var owner models.User
		if err := tx.First(&owner, ownerID).Error; err != nil {
			return err
		}
		if owner.TeamID != nil {
			return ErrAlreadyInTeam
		}

		t := models.Team{Name: name, OwnerID: ownerID, Information: information}
		if err := tx.Create(&t).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.User{}).Where("id = ?", ownerID).
			Update("team_id", t.ID).Error; err != nil {
			return err
		}
		team = &t
		return nil
	})
	if err != nil {
		return nil, err
	}
	return team, nil
}

// JoinTeam adds a user to a team. Users on any team already are rejected.
// Membership changed, so the boss assignment is reevaluated.
func JoinTeam(db *gorm.DB, teamID, userID uint) (*models.User, error) {
	var joined *models.User
	err := db.Transaction(func(tx *gorm.DB) error {
		var team models.Team
		if err := tx.First(&team, teamID).Error; err != nil {
			return err
		}
		var user models.User
		if err := tx.First(&user, userID).Error; err != nil {
			return err
		}
		if user.TeamID != nil {
			return ErrAlreadyInTeam
		}

		if err := tx.Model(&models.User{}).Where("id = ?", userID).
			Update("team_id", team.ID).Error; err != nil {
			return err
		}
		user.TeamID = &team.ID
		if err := ReevaluateBoss(tx, &team, false); err != nil {
			return err
		}
		joined = &user
		return nil
	})
	if err != nil {
		return nil, err
	}
	return joined, nil
}

// LeaveTeam removes the user from their team. The last member leaving
// dissolves the team; an owner with members still around must disband or
// remove them first, so the team is never left ownerless.
func LeaveTeam(db *gorm.DB, userID uint) (*models.User, error) {
	var left *models.User
	err := db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, userID).Error; err != nil {
			return err
		}
		if user.TeamID == nil {
			return ErrNotInTeam
		}
		var team models.Team
		if err := tx.First(&team, *user.TeamID).Error; err != nil {
			return err
		}

		var others int64
		if err := tx.Model(&models.User{}).
			Where("team_id = ? AND id <> ?", team.ID, userID).
			Count(&others).Error; err != nil {
			return err
		}
		if team.OwnerID == userID && others > 0 {
			return ErrOwnerMustDisband
		}

		if err := tx.Model(&models.User{}).Where("id = ?", userID).
			Update("team_id", nil).Error; err != nil {
			return err
		}
		user.TeamID = nil

		if others == 0 {
			if err := dissolveTeam(tx, &team); err != nil {
				return err
			}
		} else if err := ReevaluateBoss(tx, &team, false); err != nil {
			return err
		}
		left = &user
		return nil
	})
	if err != nil {
		return nil, err
	}
	return left, nil
}

// RemoveMember kicks a member out of the team. Only the owner may do it, and
// the owner cannot be the target.
func RemoveMember(db *gorm.DB, teamID, targetID, actingID uint) (*models.User, error) {
	var removed *models.User
	err := db.Transaction(func(tx *gorm.DB) error {
		var team models.Team
		if err := tx.First(&team, teamID).Error; err != nil {
			return err
		}
		if team.OwnerID != actingID {
			return ErrNotTeamOwner
		}
		if targetID == team.OwnerID {
			return ErrOwnerCannotBeRemoved
		}
		var target models.User
		if err := tx.First(&target, targetID).Error; err != nil {
			return err
		}
		if target.TeamID == nil || *target.TeamID != teamID {
			return ErrNotInTeam
		}

		if err := tx.Model(&models.User{}).Where("id = ?", targetID).
			Update("team_id", nil).Error; err != nil {
			return err
		}
		target.TeamID = nil
		if err := ReevaluateBoss(tx, &team, false); err != nil {
			return err
		}
		removed = &target
		return nil
	})
	if err != nil {
		return nil, err
	}
	return removed, nil
}

// DeleteTeam disbands a team on the owner's request: every member's team
// reference is cleared, the chat history is purged and the team row removed,
// all in one transaction so no member is ever left pointing at a dead team.
func DeleteTeam(db *gorm.DB, teamID, actingID uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var team models.Team
		if err := tx.First(&team, teamID).Error; err != nil {
			return err
		}
		if team.OwnerID != actingID {
			return ErrNotTeamOwner
		}
		return dissolveTeam(tx, &team)
	})
}

func dissolveTeam(tx *gorm.DB, team *models.Team) error {
	if err := tx.Model(&models.User{}).Where("team_id = ?", team.ID).
		Update("team_id", nil).Error; err != nil {
		return err
	}
	if err := tx.Unscoped().Where("team_id = ?", team.ID).
		Delete(&models.ChatMessage{}).Error; err != nil {
		return err
	}
	if err := tx.Unscoped().Delete(&models.Team{}, team.ID).Error; err != nil {
		return err
	}
	log.Printf("[TEAM][DISSOLVE] id=%d name=%s", team.ID, team.Name)
	return nil
}
