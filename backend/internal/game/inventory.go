package game

import (
	"errors"

	"GamifyPlanner/backend/internal/models"

	"gorm.io/gorm"
)

// MaxActiveItems is the number of items a user can have active at once.
const MaxActiveItems = 3

// TypeExclusive makes activating an item deactivate any other active item of
// the same item type first. Deliberate switch rather than hard-wired
// behavior: with the stock catalog of two item types it caps effective
// actives at two, so operators may prefer the bare slot cap.
var TypeExclusive = true

// AddItem puts an item into a user's inventory. Adding an item the user
// already owns returns the existing record unchanged.
func AddItem(db *gorm.DB, userID, itemID uint) (*models.UserItem, error) {
	var existing models.UserItem
	err := db.Where("user_id = ? AND item_id = ?", userID, itemID).First(&existing).Error
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if err := db.First(&models.Item{}, itemID).Error; err != nil {
		return nil, err
	}
	userItem := models.UserItem{UserID: userID, ItemID: itemID, Active: false}
	if err := db.Create(&userItem).Error; err != nil {
		return nil, err
	}
	return &userItem, nil
}

// SetItemActive toggles an owned item's active flag. Activating first
// deactivates any other active item of the same item type, then enforces the
// active-slot cap against what remains; a full set of slots rejects the
// activation without touching anything. Deactivation always succeeds.
func SetItemActive(db *gorm.DB, userID, itemID uint, active bool) (*models.UserItem, error) {
	var userItem models.UserItem
	if err := db.Where("user_id = ? AND item_id = ?", userID, itemID).First(&userItem).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotOwned
		}
		return nil, err
	}

	if !active {
		userItem.Active = false
		if err := db.Save(&userItem).Error; err != nil {
			return nil, err
		}
		return &userItem, nil
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		var item models.Item
		if err := tx.First(&item, itemID).Error; err != nil {
			return err
		}

		// one active item per type
		if TypeExclusive {
			var sameType []models.UserItem
			if err := tx.Joins("JOIN items ON items.id = user_items.item_id").
				Where("user_items.user_id = ? AND user_items.active = ? AND items.type = ? AND user_items.item_id <> ?",
					userID, true, item.Type, itemID).
				Find(&sameType).Error; err != nil {
				return err
			}
			for i := range sameType {
				sameType[i].Active = false
				if err := tx.Save(&sameType[i]).Error; err != nil {
					return err
				}
			}
		}

		var activeCount int64
		if err := tx.Model(&models.UserItem{}).
			Where("user_id = ? AND active = ?", userID, true).
			Count(&activeCount).Error; err != nil {
			return err
		}
		if activeCount >= MaxActiveItems {
			return ErrInventoryFull
		}

		return tx.Model(&models.UserItem{}).Where("id = ?", userItem.ID).
			Update("active", true).Error
	})
	if err != nil {
		return nil, err
	}
	userItem.Active = true
	return &userItem, nil
}

// BuyItem exchanges gold for a shop item and places it in the inventory.
func BuyItem(db *gorm.DB, userID, itemID uint) (*models.UserItem, error) {
	var bought *models.UserItem
	err := db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, userID).Error; err != nil {
			return err
		}
		var item models.Item
		if err := tx.First(&item, itemID).Error; err != nil {
			return err
		}

		var owned int64
		if err := tx.Model(&models.UserItem{}).
			Where("user_id = ? AND item_id = ?", userID, itemID).
			Count(&owned).Error; err != nil {
			return err
		}
		if owned > 0 {
			return ErrAlreadyOwned
		}
		if item.ClassID != nil && (user.ClassID == nil || *user.ClassID != *item.ClassID) {
			return ErrClassRestricted
		}
		if user.Gold < item.Price {
			return ErrNotEnoughGold
		}

		if err := tx.Model(&models.User{}).Where("id = ?", user.ID).
			Update("gold", user.Gold-item.Price).Error; err != nil {
			return err
		}
		userItem := models.UserItem{UserID: userID, ItemID: itemID, Active: false}
		if err := tx.Create(&userItem).Error; err != nil {
			return err
		}
		bought = &userItem
		return nil
	})
	if err != nil {
		return nil, err
	}
	return bought, nil
}
