package catalog

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	r.POST("", h.CreateCatalog)
	r.GET("", h.GetMyCatalogs)
	r.GET("/:id", h.GetCatalogById)
	r.PATCH("/:id", h.UpdateCatalog)
	r.DELETE("/:id", h.DeleteCatalog)
}
