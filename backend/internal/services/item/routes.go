package item

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	r.GET("/shop", h.GetShop)
	r.GET("/inventory", h.GetMyInventory)
	r.POST("/buy", h.BuyItem)
	r.PATCH("/:id/active", h.SetActive)
}
