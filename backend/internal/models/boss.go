package models

import "gorm.io/gorm"

// Boss is reference data: combat only mutates the team's BossLives copy,
// never BaseLives here.
type Boss struct {
	gorm.Model
	Name        string `gorm:"not null" json:"name"`
	BaseLives   int    `gorm:"not null" json:"baseLives"`
	GoldReward  int    `gorm:"not null; default:0" json:"goldReward"`
	Information string `json:"information"`
	Level       int    `gorm:"not null; default:1" json:"level"`
	Img         string `json:"img"`
}
