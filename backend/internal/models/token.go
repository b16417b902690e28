package models

import (
	"time"

	"gorm.io/gorm"
)

type Token struct {
	gorm.Model
	UserID           uint      `gorm:"not null; index" json:"userId"`
	RefreshTokenHash string    `gorm:"not null; index" json:"refreshTokenHash"`
	Device           string    `json:"device"`
	IpAddress        string    `json:"ipAddress"`
	UserAgent        string    `json:"userAgent"`
	IsRevoked        bool      `gorm:"not null;default:false" json:"isRevoked"`
	Expires          time.Time `gorm:"not null" json:"expires"`
	LastUsed         time.Time `json:"lastUsed"`
}
