package controller

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hyeonwoo/placepick/internal/account"
	"github.com/hyeonwoo/placepick/internal/constant"
	"github.com/hyeonwoo/placepick/internal/model"
	appoauth "github.com/hyeonwoo/placepick/internal/oauth"
	"github.com/hyeonwoo/placepick/internal/util"
	"golang.org/x/oauth2"
)

const (
	oauthStateCookie = "placepick_oauth_state"
	oauthStateMaxAge = 600
)

type OAuthController struct {
	*baseController
	resolver          *account.Resolver
	googleOAuthConfig *oauth2.Config
	kakaoOAuthConfig  *oauth2.Config
	naverOAuthConfig  *oauth2.Config
}

type claimsFetcher func(ctx context.Context, conf *oauth2.Config, code string) (*appoauth.Claims, error)

// redirectError sends the browser to the frontend error page with the failure
// collapsed into one of the fixed categories.
func (oc OAuthController) redirectError(ctx *gin.Context, category constant.OAuthErrorCategory) {
	ctx.Redirect(http.StatusTemporaryRedirect,
		fmt.Sprintf("%s/auth/error?error=%s", oc.app.Config.FrontURL, category))
}

func (oc OAuthController) continueWith(ctx *gin.Context, provider string, conf *oauth2.Config, opts ...oauth2.AuthCodeOption) {
	oc.app.Logger.Debugf("OAuth: %s logic", provider)

	if conf.ClientID == "" || conf.ClientSecret == "" {
		oc.app.Logger.Errorf("OAuth: %s is not configured", provider)
		oc.redirectError(ctx, constant.OAuthErrorConfiguration)
		return
	}

	state, err := util.GenerateNChar(16)
	if err != nil {
		oc.redirectError(ctx, constant.OAuthErrorConfiguration)
		return
	}

	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(oauthStateCookie, state, oauthStateMaxAge, "/", "", oc.app.Config.IsProduction(), true)

	url := conf.AuthCodeURL(state, opts...)
	oc.app.Logger.Debugf("OAuth: %s, Redirect to: %s", provider, url)
	ctx.Redirect(http.StatusTemporaryRedirect, url)
}

func (oc OAuthController) continueCallback(ctx *gin.Context, provider string, conf *oauth2.Config, fetch claimsFetcher) {
	oc.app.Logger.Debugf("OAuth: %s callback logic", provider)

	if errParam := ctx.Query("error"); errParam != "" {
		oc.app.Logger.Debugf("OAuth: %s, provider returned error: %s", provider, errParam)
		if errParam == "access_denied" {
			oc.redirectError(ctx, constant.OAuthErrorAccessDenied)
		} else {
			oc.redirectError(ctx, constant.OAuthErrorCallback)
		}
		return
	}

	stateCookie, err := ctx.Cookie(oauthStateCookie)
	if err != nil || stateCookie == "" || stateCookie != ctx.Query("state") {
		oc.app.Logger.Debugf("OAuth: %s, state mismatch", provider)
		oc.redirectError(ctx, constant.OAuthErrorVerification)
		return
	}
	ctx.SetCookie(oauthStateCookie, "", -1, "/", "", oc.app.Config.IsProduction(), true)

	code := ctx.Query("code")
	if code == "" {
		oc.redirectError(ctx, constant.OAuthErrorCallback)
		return
	}

	claims, err := fetch(ctx, conf, code)
	if err != nil {
		oc.app.Logger.Errorf("OAuth: %s, failed to fetch user: %v", provider, err)
		oc.redirectError(ctx, constant.OAuthErrorCallback)
		return
	}

	user, err := oc.resolver.Resolve(ctx, *claims)
	if err != nil {
		oc.app.Logger.Errorf("OAuth: %s, failed to resolve identity: %v", provider, err)
		oc.redirectError(ctx, constant.OAuthErrorCallback)
		return
	}

	// Terms and privacy are accepted on the consent screen before the provider
	// redirects back, so record them here. Failure must not block login.
	if user.Email != "" {
		if err := oc.app.Repository.Consent.Upsert(ctx, nil, model.Consent{
			Email:         user.Email,
			TermsAgreed:   true,
			PrivacyAgreed: true,
		}); err != nil {
			oc.app.Logger.Errorf("OAuth: %s, failed to record consent: %v", provider, err)
		}
	}

	session, err := oc.app.SessionService.Issue(ctx, user.ID)
	if err != nil {
		oc.app.Logger.Errorf("OAuth: %s, failed to issue session: %v", provider, err)
		oc.redirectError(ctx, constant.OAuthErrorCallback)
		return
	}

	oc.setSessionCookie(ctx, session.Token, int(constant.SESSION_LIFETIME.Seconds()))
	ctx.Redirect(http.StatusTemporaryRedirect, oc.app.Config.FrontURL)
}

func (oc OAuthController) ContinueWithGoogle(ctx *gin.Context) {
	oc.continueWith(ctx, constant.OAUTH_PROVIDER_GOOGLE, oc.googleOAuthConfig, oauth2.AccessTypeOffline)
}

func (oc OAuthController) ContinueWithGoogleCallback(ctx *gin.Context) {
	oc.continueCallback(ctx, constant.OAUTH_PROVIDER_GOOGLE, oc.googleOAuthConfig, appoauth.FetchGoogleUser)
}

func (oc OAuthController) ContinueWithKakao(ctx *gin.Context) {
	oc.continueWith(ctx, constant.OAUTH_PROVIDER_KAKAO, oc.kakaoOAuthConfig)
}

func (oc OAuthController) ContinueWithKakaoCallback(ctx *gin.Context) {
	oc.continueCallback(ctx, constant.OAUTH_PROVIDER_KAKAO, oc.kakaoOAuthConfig, appoauth.FetchKakaoUser)
}

func (oc OAuthController) ContinueWithNaver(ctx *gin.Context) {
	oc.continueWith(ctx, constant.OAUTH_PROVIDER_NAVER, oc.naverOAuthConfig)
}

func (oc OAuthController) ContinueWithNaverCallback(ctx *gin.Context) {
	oc.continueCallback(ctx, constant.OAUTH_PROVIDER_NAVER, oc.naverOAuthConfig, appoauth.FetchNaverUser)
}
