package task

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	r.POST("", h.CreateTask)
	r.GET("/:id", h.GetTaskById)
	r.PATCH("/:id", h.UpdateTask)
	r.PATCH("/:id/complete", h.CompleteTask)
	r.DELETE("/:id", h.DeleteTask)
}
