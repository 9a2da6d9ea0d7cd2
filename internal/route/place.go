package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hyeonwoo/placepick/internal/controller"
	"github.com/hyeonwoo/placepick/internal/middleware"
)

func V1_Places(r *gin.RouterGroup, _controller *controller.Controller, middleware *middleware.Middleware) {
	v1 := r.Group("/v1/places")
	{
		v1.GET("", _controller.Place.GetPlaces)
		v1.GET("/:placeId", _controller.Place.GetPlaceById)
		v1.GET("/:placeId/reviews", _controller.Review.GetReviewsByPlace)
	}

	protected := r.Group("/v1/places")
	protected.Use(middleware.AuthMiddleware)
	{
		protected.POST("", _controller.Place.CreatePlace)
		protected.PATCH("/:placeId", _controller.Place.UpdatePlace)
		protected.DELETE("/:placeId", _controller.Place.DeletePlace)

		protected.POST("/:placeId/vote", _controller.Vote.CastVote)
		protected.GET("/:placeId/vote", _controller.Vote.GetOwnVote)

		protected.POST("/:placeId/favorite", _controller.Favorite.AddFavorite)
		protected.DELETE("/:placeId/favorite", _controller.Favorite.RemoveFavorite)

		protected.POST("/:placeId/reviews", _controller.Review.CreateReview)
	}
}
