package team

import (
	"GamifyPlanner/backend/internal/config"
	"GamifyPlanner/backend/internal/database"
	"GamifyPlanner/backend/internal/game"
	"GamifyPlanner/backend/internal/middleware"
	"GamifyPlanner/backend/internal/models"
	"GamifyPlanner/backend/internal/utils"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Handler struct {
	cfg *config.Config
}

func NewHandler(cfg *config.Config) *Handler {
	return &Handler{cfg: cfg}
}

type CreateTeamRequest struct {
	Name        string `json:"name" binding:"required,max=63"`
	Information string `json:"information" binding:"max=255"`
}

type JoinTeamRequest struct {
	TeamName string `json:"team_name" binding:"required"`
}

// respondGameError translates rules-engine refusals into client errors
// instead of the generic 500.
func respondGameError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, game.ErrAlreadyInTeam),
		errors.Is(err, game.ErrNotInTeam),
		errors.Is(err, game.ErrOwnerMustDisband),
		errors.Is(err, game.ErrOwnerCannotBeRemoved):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, game.ErrNotTeamOwner):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	default:
		log.Printf("[TEAM] Unexpected error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

func (h *Handler) CreateTeam(c *gin.Context) {
	log.Println("[TEAM][CREATE] Incoming request")

	user, err := middleware.GetCurrentUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "No user in context"})
		return
	}

	var body CreateTeamRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		log.Printf("[TEAM][CREATE] Bind error: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	team, err := game.CreateTeam(database.DB, user.ID, body.Name, body.Information)
	if err != nil {
		respondGameError(c, err)
		return
	}
	log.Printf("[TEAM][CREATE] Success: id=%d name=%s owner=%d", team.ID, team.Name, user.ID)
	c.JSON(http.StatusCreated, team)
}

func (h *Handler) GetMyTeam(c *gin.Context) {
	user, err := middleware.GetCurrentUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "No user in context"})
		return
	}
	if user.TeamID == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "you are not on a team"})
		return
	}

	var team models.Team
	if err := database.DB.Preload("Boss").Preload("Members").
		First(&team, *user.TeamID).Error; err != nil {
		respondGameError(c, err)
		return
	}
	c.JSON(http.StatusOK, team)
}

func (h *Handler) JoinTeam(c *gin.Context) {
	user, err := middleware.GetCurrentUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "No user in context"})
		return
	}

	var body JoinTeamRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "team_name is required"})
		return
	}
	log.Printf("[TEAM][JOIN] user=%d team=%s", user.ID, body.TeamName)

	var team models.Team
	if err := database.DB.Where("name = ?", body.TeamName).First(&team).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "team not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	joined, err := game.JoinTeam(database.DB, team.ID, user.ID)
	if err != nil {
		respondGameError(c, err)
		return
	}
	log.Printf("[TEAM][JOIN] Success: user=%d team=%d", joined.ID, team.ID)
	c.JSON(http.StatusOK, gin.H{"message": "Joined the team", "user": joined})
}

func (h *Handler) LeaveTeam(c *gin.Context) {
	user, err := middleware.GetCurrentUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "No user in context"})
		return
	}
	log.Printf("[TEAM][LEAVE] user=%d", user.ID)

	left, err := game.LeaveTeam(database.DB, user.ID)
	if err != nil {
		respondGameError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Left the team", "user": left})
}

func (h *Handler) RemoveMember(c *gin.Context) {
	targetID, err := utils.ToUint(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}
	acting, err := middleware.GetCurrentUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "No user in context"})
		return
	}
	if acting.TeamID == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "you are not on a team"})
		return
	}
	log.Printf("[TEAM][REMOVE] acting=%d target=%d team=%d", acting.ID, targetID, *acting.TeamID)

	removed, err := game.RemoveMember(database.DB, *acting.TeamID, targetID, acting.ID)
	if err != nil {
		respondGameError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Member removed", "user": removed})
}

func (h *Handler) DeleteTeam(c *gin.Context) {
	user, err := middleware.GetCurrentUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "No user in context"})
		return
	}
	if user.TeamID == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "you are not on a team"})
		return
	}
	log.Printf("[TEAM][DELETE] user=%d team=%d", user.ID, *user.TeamID)

	if err := game.DeleteTeam(database.DB, *user.TeamID, user.ID); err != nil {
		respondGameError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Team deleted"})
}
