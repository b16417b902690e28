package models

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Login        string     `gorm:"unique; not null" json:"login"`
	Password     string     `gorm:"not null" json:"-"`
	Nickname     string     `gorm:"unique; not null" json:"nickname"`
	ClassID      *uint      `json:"classId"`
	Information  string     `json:"information"`
	Level        int        `gorm:"not null; default:1" json:"level"`
	Lives        int        `gorm:"not null; default:100" json:"lives"`
	MaxLives     int        `gorm:"not null; default:100" json:"maxLives"`
	Points       int        `gorm:"not null; default:0" json:"points"`
	MaxPoints    int        `gorm:"not null; default:100" json:"maxPoints"`
	Gold         int        `gorm:"not null; default:0" json:"gold"`
	Attack       int        `gorm:"not null; default:10" json:"attack"`
	TeamID       *uint      `json:"teamId"`
	Img          string     `json:"img"`
	Role         string     `gorm:"not null; default:user" json:"role"`
	AuthProvider string     `gorm:"not null; default:local" json:"authProvider"`
	Class        *Class     `gorm:"foreignKey:ClassID" json:"classInfo,omitempty"`
	Items        []UserItem `gorm:"foreignKey:UserID" json:"items,omitempty"`
	Catalogs     []Catalog  `gorm:"foreignKey:UserID" json:"catalogs,omitempty"`
	Tokens       []Token    `gorm:"foreignKey:UserID" json:"tokens,omitempty"`
}
