package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hyeonwoo/placepick/internal/controller"
	"github.com/hyeonwoo/placepick/internal/middleware"
)

func V1_File(r *gin.RouterGroup, fileController *controller.FileController, middleware *middleware.Middleware) {
	v1 := r.Group("/v1/files")
	v1.Use(middleware.AuthMiddleware)
	{
		v1.POST("/image", fileController.UploadImage)
	}
}
