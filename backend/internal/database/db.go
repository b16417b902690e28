package database

import (
	"GamifyPlanner/backend/internal/config"
	"GamifyPlanner/backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Connect(cfg *config.Config) {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}

	//migrations
	if err := db.AutoMigrate(
		&models.Class{},
		&models.User{},
		&models.Token{},
		&models.Item{},
		&models.UserItem{},
		&models.Boss{},
		&models.Team{},
		&models.Catalog{},
		&models.Task{},
		&models.DailyTask{},
		&models.ChatMessage{},
	); err != nil {
		panic("failed to migrate database")
	}
	DB = db
}
