package task

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
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Handler struct {
	cfg *config.Config
}

func NewHandler(cfg *config.Config) *Handler {
	return &Handler{cfg: cfg}
}

var validComplexity = map[string]bool{
	models.ComplexityEasy:   true,
	models.ComplexityNormal: true,
	models.ComplexityHard:   true,
}

var validDayWeek = map[string]bool{
	"mon": true, "tue": true, "wed": true, "thu": true,
	"fri": true, "sat": true, "sun": true,
}

type CreateTaskRequest struct {
	CatalogID  uint       `json:"catalogId" binding:"required"`
	Name       string     `json:"name" binding:"required,max=127"`
	Complexity string     `json:"complexity" binding:"required"`
	Deadline   *time.Time `json:"deadline"`
	RepeatDays []string   `json:"repeatDays"`
}

type UpdateTaskRequest struct {
	Name       *string    `json:"name"`
	Complexity *string    `json:"complexity"`
	Deadline   *time.Time `json:"deadline"`
}

type CompleteTaskRequest struct {
	Completed *bool `json:"completed" binding:"required"`
}

// loadOwnedTask fetches a task and checks it sits in one of the current
// user's catalogs.
func loadOwnedTask(c *gin.Context, taskID uint) (*models.Task, *models.User, bool) {
	user, err := middleware.GetCurrentUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "No user in context"})
		return nil, nil, false
	}
	var task models.Task
	if err := database.DB.Preload("DailyTasks").First(&task, taskID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
			return nil, nil, false
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return nil, nil, false
	}
	var catalog models.Catalog
	if err := database.DB.Where("id = ? AND user_id = ?", task.CatalogID, user.ID).
		First(&catalog).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
		return nil, nil, false
	}
	return &task, user, true
}

func (h *Handler) CreateTask(c *gin.Context) {
	log.Println("[TASK][CREATE] Incoming request")

	user, err := middleware.GetCurrentUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "No user in context"})
		return
	}

	var body CreateTaskRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		log.Printf("[TASK][CREATE] Bind error: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if !validComplexity[body.Complexity] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid complexity"})
		return
	}
	for _, day := range body.RepeatDays {
		if !validDayWeek[day] {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid repeat day"})
			return
		}
	}

	var catalog models.Catalog
	if err := database.DB.Where("id = ? AND user_id = ?", body.CatalogID, user.ID).
		First(&catalog).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "catalog not found"})
		return
	}

	task := models.Task{
		CatalogID:  catalog.ID,
		Name:       body.Name,
		Complexity: body.Complexity,
		Deadline:   body.Deadline,
	}
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&task).Error; err != nil {
			return err
		}
		for _, day := range body.RepeatDays {
			daily := models.DailyTask{TaskID: task.ID, DayWeek: day}
			if err := tx.Create(&daily).Error; err != nil {
				return err
			}
			task.DailyTasks = append(task.DailyTasks, daily)
		}
		return nil
	})
	if err != nil {
		log.Printf("[TASK][CREATE] DB error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	log.Printf("[TASK][CREATE] Success: id=%v", task.ID)
	c.JSON(http.StatusCreated, task)
}

func (h *Handler) GetTaskById(c *gin.Context) {
	id, err := utils.ToUint(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	task, _, ok := loadOwnedTask(c, id)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, task)
}

func (h *Handler) UpdateTask(c *gin.Context) {
	id, err := utils.ToUint(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	task, _, ok := loadOwnedTask(c, id)
	if !ok {
		return
	}

	var body UpdateTaskRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if body.Name != nil {
		task.Name = *body.Name
	}
	if body.Complexity != nil {
		if !validComplexity[*body.Complexity] {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid complexity"})
			return
		}
		task.Complexity = *body.Complexity
	}
	if body.Deadline != nil {
		task.Deadline = body.Deadline
	}

	if err := database.DB.Save(task).Error; err != nil {
		log.Printf("[TASK][UPDATE] DB error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, task)
}

// CompleteTask flips the completion flag and lets the combat rules resolve
// damage, defeat and rewards.
func (h *Handler) CompleteTask(c *gin.Context) {
	id, err := utils.ToUint(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	task, user, ok := loadOwnedTask(c, id)
	if !ok {
		return
	}

	var body CompleteTaskRequest
	if err := c.ShouldBindJSON(&body); err != nil || body.Completed == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "completed is required"})
		return
	}
	log.Printf("[TASK][COMPLETE] id=%d user=%d completed=%v", task.ID, user.ID, *body.Completed)

	updated, err := game.CompleteTask(database.DB, task.ID, user.ID, *body.Completed)
	if err != nil {
		log.Printf("[TASK][COMPLETE] Error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *Handler) DeleteTask(c *gin.Context) {
	id, err := utils.ToUint(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	task, _, ok := loadOwnedTask(c, id)
	if !ok {
		return
	}
	log.Printf("[TASK][DELETE] id=%d", task.ID)

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("task_id = ?", task.ID).
			Delete(&models.DailyTask{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&models.Task{}, task.ID).Error
	})
	if err != nil {
		log.Printf("[TASK][DELETE] DB error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Record deleted"})
}
