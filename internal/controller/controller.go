package controller

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hyeonwoo/placepick/internal/account"
	appcontext "github.com/hyeonwoo/placepick/internal/app_context"
	"github.com/hyeonwoo/placepick/internal/constant"
	"github.com/hyeonwoo/placepick/internal/model"
	"github.com/hyeonwoo/placepick/internal/oauth"
)

type baseController struct {
	app *appcontext.Application
}

type Controller struct {
	Index        *IndexController
	OAuth        *OAuthController
	Auth         *AuthController
	User         *UserController
	Place        *PlaceController
	Vote         *VoteController
	Favorite     *FavoriteController
	Review       *ReviewController
	Notification *NotificationController
	File         *FileController
}

func newBaseController(app *appcontext.Application) *baseController {
	return &baseController{app: app}
}

func NewController(app *appcontext.Application) *Controller {
	bc := newBaseController(app)

	unlinker := oauth.NewUnlinkOrchestrator(app.Config.Auth, app.Logger)
	resolver := account.NewResolver(app.Repository, app.Logger)
	deleter := account.NewDeleter(app.Repository, unlinker, app.Logger)

	return &Controller{
		Index: &IndexController{baseController: bc},
		OAuth: &OAuthController{
			baseController:    bc,
			resolver:          resolver,
			googleOAuthConfig: oauth.NewGoogleOAuthConfig(app.Config.Auth.Google),
			kakaoOAuthConfig:  oauth.NewKakaoOAuthConfig(app.Config.Auth.Kakao),
			naverOAuthConfig:  oauth.NewNaverOAuthConfig(app.Config.Auth.Naver),
		},
		Auth:         &AuthController{baseController: bc},
		User:         &UserController{baseController: bc, deleter: deleter},
		Place:        &PlaceController{baseController: bc},
		Vote:         &VoteController{baseController: bc},
		Favorite:     &FavoriteController{baseController: bc},
		Review:       &ReviewController{baseController: bc},
		Notification: &NotificationController{baseController: bc},
		File:         &FileController{baseController: bc},
	}
}

func (b *baseController) getAuthUser(ctx *gin.Context) (*model.User, error) {
	user, exists := ctx.Get("user")
	if !exists {
		return nil, errors.New("user not found in context")
	}

	authUser, ok := user.(*model.User)
	if !ok {
		return nil, errors.New("invalid user in context")
	}

	return authUser, nil
}

func (b *baseController) getAuthSession(ctx *gin.Context) (*model.Session, error) {
	session, exists := ctx.Get("session")
	if !exists {
		return nil, errors.New("session not found in context")
	}

	authSession, ok := session.(*model.Session)
	if !ok {
		return nil, errors.New("invalid session in context")
	}

	return authSession, nil
}

// setSessionCookie writes the opaque session token. maxAge <= 0 clears the
// cookie.
func (b *baseController) setSessionCookie(ctx *gin.Context, token string, maxAge int) {
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(constant.SESSION_COOKIE_NAME, token, maxAge, "/", "", b.app.Config.IsProduction(), true)
}

func (b *baseController) clearSessionCookie(ctx *gin.Context) {
	b.setSessionCookie(ctx, "", -1)
}

// objectURL builds the public URL of an object stored in the app bucket.
func (b *baseController) objectURL(key string) string {
	scheme := "http"
	if b.app.Config.Minio.USE_SSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, b.app.Config.Minio.ENDPOINT, b.app.Config.Minio.BUCKET, key)
}
