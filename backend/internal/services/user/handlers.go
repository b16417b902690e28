package user

import (
	"GamifyPlanner/backend/internal/config"
	"GamifyPlanner/backend/internal/database"
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

// Profile fields a user may change about themselves. Progression stats
// (level, points, gold, attack) only move through the game rules.
type UpdatableFields struct {
	Nickname    *string `json:"nickname"`
	Information *string `json:"information"`
	ClassID     *uint   `json:"classId"`
	Img         *string `json:"img"`
}

func (h *Handler) GetMe(c *gin.Context) {
	user, err := middleware.GetCurrentUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "No user in context"})
		return
	}
	if err := database.DB.Preload("Class").First(user, user.ID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

func (h *Handler) GetUserById(c *gin.Context) {
	id, err := utils.ToUint(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	log.Printf("[USER][GET BY ID] id=%d", id)

	var user models.User
	if err := database.DB.Preload("Class").First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *Handler) GetAllUsers(c *gin.Context) {
	log.Printf("[USER][GET ALL] Start")
	var users []models.User
	if err := database.DB.Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *Handler) UpdateMe(c *gin.Context) {
	var body UpdatableFields
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	user, err := middleware.GetCurrentUser(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	log.Printf("[USER][UPDATE] id: %d, Body: %+v", user.ID, body)

	if body.Nickname != nil {
		user.Nickname = *body.Nickname
	}
	if body.Information != nil {
		user.Information = *body.Information
	}
	if body.Img != nil {
		user.Img = *body.Img
	}
	if body.ClassID != nil {
		if err := database.DB.First(&models.Class{}, *body.ClassID).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown class"})
			return
		}
		user.ClassID = body.ClassID
	}
	if err := database.DB.Save(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusConflict, gin.H{"error": "nickname already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *Handler) GetClasses(c *gin.Context) {
	var classes []models.Class
	if err := database.DB.Find(&classes).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, classes)
}
