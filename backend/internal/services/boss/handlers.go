package boss

import (
	"GamifyPlanner/backend/internal/config"
	"GamifyPlanner/backend/internal/database"
	"GamifyPlanner/backend/internal/models"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	cfg *config.Config
}

func NewHandler(cfg *config.Config) *Handler {
	return &Handler{cfg: cfg}
}

func (h *Handler) GetBosses(c *gin.Context) {
	var bosses []models.Boss
	if err := database.DB.Order("level").Find(&bosses).Error; err != nil {
		log.Printf("[BOSS][GET ALL] DB error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, bosses)
}

type CreateBossRequest struct {
	Name        string `json:"name" binding:"required"`
	BaseLives   int    `json:"baseLives" binding:"required,gt=0"`
	GoldReward  int    `json:"goldReward" binding:"gte=0"`
	Information string `json:"information"`
	Level       int    `json:"level" binding:"required,gte=1,lte=8"`
	Img         string `json:"img"`
}

// CreateBoss is admin-only; bosses are reference data and normally arrive
// through the seed.
func (h *Handler) CreateBoss(c *gin.Context) {
	var body CreateBossRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	boss := models.Boss{
		Name:        body.Name,
		BaseLives:   body.BaseLives,
		GoldReward:  body.GoldReward,
		Information: body.Information,
		Level:       body.Level,
		Img:         body.Img,
	}
	if err := database.DB.Create(&boss).Error; err != nil {
		log.Printf("[BOSS][CREATE] DB error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	log.Printf("[BOSS][CREATE] Success: id=%d tier=%d", boss.ID, boss.Level)
	c.JSON(http.StatusCreated, boss)
}
