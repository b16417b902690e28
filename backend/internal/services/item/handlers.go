package item

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

type BuyItemRequest struct {
	ItemID uint `json:"itemId" binding:"required"`
}

type SetActiveRequest struct {
	Active *bool `json:"active" binding:"required"`
}

func (h *Handler) GetShop(c *gin.Context) {
	var items []models.Item
	if err := database.DB.Preload("Class").Find(&items).Error; err != nil {
		log.Printf("[ITEM][SHOP] DB error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) GetMyInventory(c *gin.Context) {
	user, err := middleware.GetCurrentUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "No user in context"})
		return
	}

	var inventory []models.UserItem
	if err := database.DB.Preload("Item").
		Where("user_id = ?", user.ID).Find(&inventory).Error; err != nil {
		log.Printf("[ITEM][INVENTORY] DB error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, inventory)
}

func (h *Handler) BuyItem(c *gin.Context) {
	user, err := middleware.GetCurrentUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "No user in context"})
		return
	}

	var body BuyItemRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "itemId is required"})
		return
	}
	log.Printf("[ITEM][BUY] user=%d item=%d", user.ID, body.ItemID)

	bought, err := game.BuyItem(database.DB, user.ID, body.ItemID)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "item not found"})
		case errors.Is(err, game.ErrAlreadyOwned),
			errors.Is(err, game.ErrNotEnoughGold),
			errors.Is(err, game.ErrClassRestricted):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			log.Printf("[ITEM][BUY] Error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	var refreshed models.User
	if err := database.DB.First(&refreshed, user.ID).Error; err == nil {
		user = &refreshed
	}
	c.JSON(http.StatusOK, gin.H{
		"message":  "Item purchased",
		"userGold": user.Gold,
		"item":     bought,
	})
}

// SetActive toggles an inventory item. A full set of active slots or a
// second active item of the same type is a business refusal, not a failure.
func (h *Handler) SetActive(c *gin.Context) {
	itemID, err := utils.ToUint(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	user, err := middleware.GetCurrentUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "No user in context"})
		return
	}

	var body SetActiveRequest
	if err := c.ShouldBindJSON(&body); err != nil || body.Active == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "active is required"})
		return
	}
	log.Printf("[ITEM][SET ACTIVE] user=%d item=%d active=%v", user.ID, itemID, *body.Active)

	userItem, err := game.SetItemActive(database.DB, user.ID, itemID, *body.Active)
	if err != nil {
		switch {
		case errors.Is(err, game.ErrItemNotOwned):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, game.ErrInventoryFull):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			log.Printf("[ITEM][SET ACTIVE] Error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}
	c.JSON(http.StatusOK, userItem)
}
