package team

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	r.POST("", h.CreateTeam)
	r.GET("/my", h.GetMyTeam)
	r.POST("/join", h.JoinTeam)
	r.POST("/leave", h.LeaveTeam)
	r.DELETE("/members/:userId", h.RemoveMember)
	r.DELETE("", h.DeleteTeam)
}
