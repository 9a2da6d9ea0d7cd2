package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/hyeonwoo/placepick/internal/auth"
	"github.com/hyeonwoo/placepick/internal/util"
)

func (m Middleware) AuthMiddleware(ctx *gin.Context) {
	token, err := util.ReadSessionToken(ctx)
	if err != nil {
		m.app.Logger.Debugf("Failed to read session token: %v", err)
		util.ResponseFailed(ctx, 401, "", util.GenerateErrorMessages(err, "unauthorized"), nil)
		ctx.Abort()
		return
	}

	user, session, err := m.app.SessionService.Validate(ctx, token)
	if err != nil {
		if errors.Is(err, auth.ErrSessionExpired) {
			m.app.Logger.Debug("Session expired")
			util.ResponseFailed(ctx, 401, "Session expired", util.GenerateErrorMessages(err, "unauthorized"), nil)
		} else {
			m.app.Logger.Debugf("Failed to validate session: %v", err)
			util.ResponseFailed(ctx, 401, "Invalid session", util.GenerateErrorMessages(err, "unauthorized"), nil)
		}
		ctx.Abort()
		return
	}

	ctx.Set("user", user)
	ctx.Set("session", session)
	ctx.Next()
}
