package models

import "gorm.io/gorm"

type ChatMessage struct {
	gorm.Model
	TeamID   uint   `gorm:"not null; index" json:"teamId"`
	UserID   uint   `gorm:"not null" json:"userId"`
	Nickname string `gorm:"not null" json:"nickname"`
	Text     string `gorm:"not null" json:"text"`
}
