package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hyeonwoo/placepick/internal/controller"
	"github.com/hyeonwoo/placepick/internal/middleware"
)

func V1_Me(r *gin.RouterGroup, _controller *controller.Controller, middleware *middleware.Middleware) {
	v1 := r.Group("/v1/me")
	v1.Use(middleware.AuthMiddleware)
	{
		v1.GET("", _controller.Auth.GetMe)
		v1.GET("/profile", _controller.User.GetOwnProfile)
		v1.PATCH("/profile", _controller.User.UpdateOwnProfile)
		v1.GET("/favorites", _controller.Favorite.GetOwnFavorites)
		v1.GET("/notifications", _controller.Notification.GetOwnNotifications)
		// PATCH on the collection marks everything read.
		v1.PATCH("/notifications", _controller.Notification.MarkAllNotificationsRead)
		v1.PATCH("/notifications/:notificationId/read", _controller.Notification.MarkNotificationRead)
	}
}
