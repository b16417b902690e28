package models

import "gorm.io/gorm"

type Team struct {
	gorm.Model
	Name        string `gorm:"unique; not null" json:"name"`
	OwnerID     uint   `gorm:"not null" json:"ownerId"`
	Information string `json:"information"`
	BossID      *uint  `json:"bossId"`
	BossLives   int    `gorm:"not null; default:0" json:"bossLives"`
	Boss        *Boss  `gorm:"foreignKey:BossID" json:"boss,omitempty"`
	Members     []User `gorm:"foreignKey:TeamID" json:"members,omitempty"`
}
