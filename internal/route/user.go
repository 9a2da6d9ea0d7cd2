package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hyeonwoo/placepick/internal/controller"
)

// Deletion endpoints authenticate inline because they answer in their own wire
// format, so no auth middleware here.
func V1_Users(r *gin.RouterGroup, userController *controller.UserController) {
	v1 := r.Group("/v1/users")
	{
		v1.POST("/delete", userController.DeleteOwnAccount)
		v1.DELETE("/delete", userController.DeleteAccount)
	}
}
