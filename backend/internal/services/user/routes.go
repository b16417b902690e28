package user

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	r.GET("/me", h.GetMe)
	r.PATCH("/me", h.UpdateMe)
	r.GET("/classes", h.GetClasses)
	r.GET("/:id", h.GetUserById)
	r.GET("", h.GetAllUsers)
}
