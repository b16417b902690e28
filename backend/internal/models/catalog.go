package models

import "gorm.io/gorm"

type Catalog struct {
	gorm.Model
	UserID uint   `gorm:"not null" json:"userId"`
	Name   string `gorm:"not null" json:"name"`
	Tasks  []Task `gorm:"foreignKey:CatalogID; constraint:OnDelete:CASCADE" json:"tasks,omitempty"`
}
