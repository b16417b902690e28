package main

import (
	"GamifyPlanner/backend/internal/chat"
	"GamifyPlanner/backend/internal/config"
	"GamifyPlanner/backend/internal/database"
	"GamifyPlanner/backend/internal/middleware"
	"GamifyPlanner/backend/internal/seed"
	"GamifyPlanner/backend/internal/services/auth"
	"GamifyPlanner/backend/internal/services/boss"
	"GamifyPlanner/backend/internal/services/catalog"
	"GamifyPlanner/backend/internal/services/item"
	"GamifyPlanner/backend/internal/services/task"
	"GamifyPlanner/backend/internal/services/team"
	"GamifyPlanner/backend/internal/services/user"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	database.Connect(cfg)
	if cfg.SeedOnStart {
		seed.Run(database.DB)
	}
	r := gin.Default()
	api := r.Group("/api")

	//Handlers
	authHandler := auth.NewHandler(cfg)
	userHandler := user.NewHandler(cfg)
	catalogHandler := catalog.NewHandler(cfg)
	taskHandler := task.NewHandler(cfg)
	teamHandler := team.NewHandler(cfg)
	itemHandler := item.NewHandler(cfg)
	bossHandler := boss.NewHandler(cfg)
	chatHandler := chat.NewHandler(chat.NewHub())

	//Groups
	authGroup := api.Group("/auth")
	userGroup := api.Group("/users", middleware.AuthMiddleware(cfg))
	catalogGroup := api.Group("/catalogs", middleware.AuthMiddleware(cfg))
	taskGroup := api.Group("/tasks", middleware.AuthMiddleware(cfg))
	teamGroup := api.Group("/teams", middleware.AuthMiddleware(cfg))
	itemGroup := api.Group("/items", middleware.AuthMiddleware(cfg))
	bossGroup := api.Group("/bosses", middleware.AuthMiddleware(cfg))
	chatGroup := api.Group("/chat", middleware.AuthMiddleware(cfg))

	auth.RegisterRoutes(authGroup, authHandler)
	user.RegisterRoutes(userGroup, userHandler)
	catalog.RegisterRoutes(catalogGroup, catalogHandler)
	task.RegisterRoutes(taskGroup, taskHandler)
	team.RegisterRoutes(teamGroup, teamHandler)
	item.RegisterRoutes(itemGroup, itemHandler)
	boss.RegisterRoutes(bossGroup, bossHandler)
	chat.RegisterRoutes(chatGroup, chatHandler)

	log.Printf("server started on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
