package util

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/hyeonwoo/placepick/internal/constant"
)

// Read Authorization header from the request and return the token type and token
func ReadAuthorizationHeader(ctx *gin.Context) (string, string, error) {
	header := ctx.GetHeader("Authorization")
	if header == "" {
		return "", "", errors.New("no authorization header specified")
	}

	headerParts := strings.SplitN(header, " ", 2)
	if len(headerParts) != 2 {
		return "", "", errors.New("wrong authorization header format")
	}

	tokenType := strings.ToUpper(headerParts[0])
	token := headerParts[1]

	if token == "" {
		return "", "", errors.New("token is empty")
	}

	return tokenType, token, nil
}

// Read Bearer token from the request Authorization header and return the token
func ReadBearerToken(ctx *gin.Context) (string, error) {
	tokenType, token, err := ReadAuthorizationHeader(ctx)
	if err != nil {
		return "", err
	}

	if !strings.EqualFold(tokenType, "BEARER") {
		return "", errors.New("invalid token type; expected 'Bearer'")
	}

	return token, nil
}

// ReadSessionToken reads the opaque session token, preferring the session
// cookie and falling back to a Bearer header for non-browser clients.
func ReadSessionToken(ctx *gin.Context) (string, error) {
	if cookie, err := ctx.Cookie(constant.SESSION_COOKIE_NAME); err == nil && cookie != "" {
		return cookie, nil
	}

	return ReadBearerToken(ctx)
}
