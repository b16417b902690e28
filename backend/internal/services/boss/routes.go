package boss

import (
	"GamifyPlanner/backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	r.GET("", h.GetBosses)
	r.POST("", middleware.RequireRole("admin"), h.CreateBoss)
}
