package chat

import (
	"GamifyPlanner/backend/internal/database"
	"GamifyPlanner/backend/internal/middleware"
	"GamifyPlanner/backend/internal/models"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	hub *Hub
}

func NewHandler(hub *Hub) *Handler {
	return &Handler{hub: hub}
}

func (h *Handler) ServeWS(c *gin.Context) {
	user, err := middleware.GetCurrentUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "No user in context"})
		return
	}
	h.hub.ServeWS(c.Writer, c.Request, user)
}

func (h *Handler) GetHistory(c *gin.Context) {
	user, err := middleware.GetCurrentUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "No user in context"})
		return
	}
	if user.TeamID == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "you are not on a team"})
		return
	}

	var messages []models.ChatMessage
	if err := database.DB.Where("team_id = ?", *user.TeamID).
		Order("created_at").Find(&messages).Error; err != nil {
		log.Printf("[CHAT][HISTORY] DB error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, messages)
}

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	r.GET("/ws", h.ServeWS)
	r.GET("/history", h.GetHistory)
}
