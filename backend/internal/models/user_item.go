package models

import "gorm.io/gorm"

type UserItem struct {
	gorm.Model
	UserID uint `gorm:"not null;uniqueIndex:user_item_idx" json:"userId"`
	ItemID uint `gorm:"not null;uniqueIndex:user_item_idx" json:"itemId"`
	Active bool `gorm:"not null; default:false" json:"active"`
	Item   Item `gorm:"foreignKey:ItemID" json:"item,omitempty"`
}
