package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hyeonwoo/placepick/internal/controller"
	"github.com/hyeonwoo/placepick/internal/middleware"
)

func V1_Reviews(r *gin.RouterGroup, reviewController *controller.ReviewController, middleware *middleware.Middleware) {
	v1 := r.Group("/v1/reviews")
	{
		v1.GET("/:reviewId/replies", reviewController.GetReviewReplies)
	}

	protected := r.Group("/v1/reviews")
	protected.Use(middleware.AuthMiddleware)
	{
		protected.DELETE("/:reviewId", reviewController.DeleteReview)
		protected.POST("/:reviewId/helpful", reviewController.MarkReviewHelpful)
		protected.POST("/:reviewId/replies", reviewController.CreateReviewReply)
	}
}
