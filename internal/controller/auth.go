package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hyeonwoo/placepick/internal/util"
	"gorm.io/gorm"
)

type AuthController struct {
	*baseController
}

// GetMe returns the authenticated user with their profile and the providers
// currently linked to the account.
func (ac AuthController) GetMe(ctx *gin.Context) {
	user, err := ac.getAuthUser(ctx)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "", util.GenerateErrorMessages(err, "unauthorized"), nil)
		return
	}

	profile, err := ac.app.Repository.Profile.GetById(ctx, nil, user.ID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "", util.GenerateErrorMessages(err), nil)
		return
	}

	accounts, err := ac.app.Repository.LinkedAccount.GetAllByUserId(ctx, nil, user.ID)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "", util.GenerateErrorMessages(err), nil)
		return
	}

	providers := make([]string, 0, len(accounts))
	for _, account := range accounts {
		providers = append(providers, account.Provider)
	}

	util.ResponseSuccess(ctx, gin.H{
		"user":      user,
		"profile":   profile,
		"providers": providers,
	})
}

// Logout revokes the current session only.
func (ac AuthController) Logout(ctx *gin.Context) {
	session, err := ac.getAuthSession(ctx)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "", util.GenerateErrorMessages(err, "unauthorized"), nil)
		return
	}

	if err := ac.app.SessionService.Revoke(ctx, session.Token); err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "", util.GenerateErrorMessages(err), nil)
		return
	}

	ac.clearSessionCookie(ctx)
	util.ResponseSuccess(ctx, nil)
}

// LogoutAll force-signs the user out of every device by revoking all of their
// sessions.
func (ac AuthController) LogoutAll(ctx *gin.Context) {
	user, err := ac.getAuthUser(ctx)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "", util.GenerateErrorMessages(err, "unauthorized"), nil)
		return
	}

	if err := ac.app.SessionService.RevokeAll(ctx, user.ID); err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "", util.GenerateErrorMessages(err), nil)
		return
	}

	ac.clearSessionCookie(ctx)
	util.ResponseSuccess(ctx, nil)
}
