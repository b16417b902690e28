package catalog

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

type CreateCatalogRequest struct {
	Name string `json:"name" binding:"required,max=63"`
}

func (h *Handler) CreateCatalog(c *gin.Context) {
	log.Println("[CATALOG][CREATE] Incoming request")

	user, err := middleware.GetCurrentUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "No user in context"})
		return
	}

	var body CreateCatalogRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		log.Printf("[CATALOG][CREATE] Bind error: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	catalog := models.Catalog{UserID: user.ID, Name: body.Name}
	if err := database.DB.Create(&catalog).Error; err != nil {
		log.Printf("[CATALOG][CREATE] DB error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	log.Printf("[CATALOG][CREATE] Success: id=%v", catalog.ID)
	c.JSON(http.StatusCreated, catalog)
}

func (h *Handler) GetMyCatalogs(c *gin.Context) {
	user, err := middleware.GetCurrentUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "No user in context"})
		return
	}

	var catalogs []models.Catalog
	if err := database.DB.Preload("Tasks").Preload("Tasks.DailyTasks").
		Where("user_id = ?", user.ID).Find(&catalogs).Error; err != nil {
		log.Printf("[CATALOG][GET ALL] DB error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	log.Printf("[CATALOG][GET ALL] Count=%d", len(catalogs))
	c.JSON(http.StatusOK, catalogs)
}

func (h *Handler) GetCatalogById(c *gin.Context) {
	id, err := utils.ToUint(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	user, err := middleware.GetCurrentUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "No user in context"})
		return
	}

	var catalog models.Catalog
	if err := database.DB.Preload("Tasks").Preload("Tasks.DailyTasks").
		Where("id = ? AND user_id = ?", id, user.ID).First(&catalog).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "catalog not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, catalog)
}

func (h *Handler) UpdateCatalog(c *gin.Context) {
	id, err := utils.ToUint(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	user, err := middleware.GetCurrentUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "No user in context"})
		return
	}

	var body CreateCatalogRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	var catalog models.Catalog
	if err := database.DB.Where("id = ? AND user_id = ?", id, user.ID).First(&catalog).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "catalog not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	catalog.Name = body.Name
	if err := database.DB.Save(&catalog).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, catalog)
}

// DeleteCatalog removes the catalog together with its tasks and their daily
// rows in one transaction.
func (h *Handler) DeleteCatalog(c *gin.Context) {
	id, err := utils.ToUint(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	user, err := middleware.GetCurrentUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "No user in context"})
		return
	}
	log.Printf("[CATALOG][DELETE] id=%d", id)

	var catalog models.Catalog
	if err := database.DB.Where("id = ? AND user_id = ?", id, user.ID).First(&catalog).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "catalog not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		var taskIDs []uint
		if err := tx.Model(&models.Task{}).Where("catalog_id = ?", catalog.ID).
			Pluck("id", &taskIDs).Error; err != nil {
			return err
		}
		if len(taskIDs) > 0 {
			if err := tx.Unscoped().Where("task_id IN ?", taskIDs).
				Delete(&models.DailyTask{}).Error; err != nil {
				return err
			}
			if err := tx.Unscoped().Where("catalog_id = ?", catalog.ID).
				Delete(&models.Task{}).Error; err != nil {
				return err
			}
		}
		return tx.Unscoped().Delete(&models.Catalog{}, catalog.ID).Error
	})
	if err != nil {
		log.Printf("[CATALOG][DELETE] DB error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	log.Printf("[CATALOG][DELETE] Success: id=%d", id)
	c.JSON(http.StatusOK, gin.H{"message": "Record deleted"})
}
