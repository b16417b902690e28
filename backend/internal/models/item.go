package models

import "gorm.io/gorm"

const (
	ItemTypeCommon = "com"
	ItemTypeRare   = "rare"
)

type Item struct {
	gorm.Model
	Name        string `gorm:"not null" json:"name"`
	Price       int    `gorm:"not null; default:0" json:"price"`
	Information string `json:"information"`
	Type        string `gorm:"not null" json:"type"`
	ClassID     *uint  `json:"classId"`
	BonusType   string `json:"bonusType"`
	BonusData   int    `gorm:"not null; default:0" json:"bonusData"`
	Class       *Class `gorm:"foreignKey:ClassID" json:"classInfo,omitempty"`
}
