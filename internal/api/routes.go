package api

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.Engine, h *Handler) {
	api := r.Group("/api")
	{
		api.GET("/health", health)
		api.GET("/fonts", h.fonts)
		api.GET("/fonts/:name/preview", h.fontPreview)
		api.GET("/release", h.latestRelease)
		api.POST("/post/image", h.postImage)
		api.POST("/post/release", h.postFromRelease)
		api.GET("/qr", h.qr)
	}
}
