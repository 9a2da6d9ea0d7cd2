package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hyeonwoo/placepick/internal/controller"
)

func V1_OAuth(r *gin.RouterGroup, oauthController *controller.OAuthController) {
	v1 := r.Group("/v1/oauth")
	{
		v1.GET("/google", oauthController.ContinueWithGoogle)
		v1.GET("/google/callback", oauthController.ContinueWithGoogleCallback)
		v1.GET("/kakao", oauthController.ContinueWithKakao)
		v1.GET("/kakao/callback", oauthController.ContinueWithKakaoCallback)
		v1.GET("/naver", oauthController.ContinueWithNaver)
		v1.GET("/naver/callback", oauthController.ContinueWithNaverCallback)
	}
}
