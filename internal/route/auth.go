package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hyeonwoo/placepick/internal/controller"
	"github.com/hyeonwoo/placepick/internal/middleware"
)

func V1_Auth(r *gin.RouterGroup, authController *controller.AuthController, middleware *middleware.Middleware) {
	v1 := r.Group("/v1/auth")
	v1.Use(middleware.AuthMiddleware)
	{
		v1.POST("/logout", authController.Logout)
		v1.POST("/force-signout", authController.LogoutAll)
	}
}
