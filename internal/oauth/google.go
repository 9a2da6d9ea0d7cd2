package oauth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hyeonwoo/placepick/internal/config"
	"github.com/hyeonwoo/placepick/internal/constant"
	"github.com/hyeonwoo/placepick/internal/model"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const (
	googleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"
	googleRevokeURL   = "https://oauth2.googleapis.com/revoke"
)

func NewGoogleOAuthConfig(cfg config.OAuthProviderConfig) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		RedirectURL:  cfg.RedirectURL,
		Scopes:       []string{"https://www.googleapis.com/auth/userinfo.email", "https://www.googleapis.com/auth/userinfo.profile"},
		Endpoint:     google.Endpoint,
	}
}

type googleUser struct {
	Email         string `json:"email"`
	ID            string `json:"id"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
	VerifiedEmail bool   `json:"verified_email"`
}

// FetchGoogleUser exchanges the authorization code and reads the userinfo
// endpoint, returning normalized claims.
func FetchGoogleUser(ctx context.Context, conf *oauth2.Config, code string) (*Claims, error) {
	token, err := conf.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange token: %w", err)
	}

	client := conf.Client(ctx, token)
	resp, err := client.Get(googleUserInfoURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user info: %w", err)
	}
	defer resp.Body.Close()

	var userInfo googleUser
	if err := json.NewDecoder(resp.Body).Decode(&userInfo); err != nil {
		return nil, fmt.Errorf("failed to decode user info: %w", err)
	}

	return &Claims{
		Provider:          constant.OAUTH_PROVIDER_GOOGLE,
		ProviderAccountID: userInfo.ID,
		Email:             userInfo.Email,
		Name:              userInfo.Name,
		AvatarURL:         userInfo.Picture,
		AccessToken:       token.AccessToken,
		RefreshToken:      token.RefreshToken,
		ExpiresAt:         token.Expiry.Unix(),
	}, nil
}

type GoogleUnlinker struct {
	RevokeURL  string
	HTTPClient *http.Client
	logger     *zap.SugaredLogger
}

func NewGoogleUnlinker(logger *zap.SugaredLogger) *GoogleUnlinker {
	return &GoogleUnlinker{
		RevokeURL:  googleRevokeURL,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
		logger:     logger,
	}
}

// Unlink posts the access token to Google's revocation endpoint. A non-success
// status means the token is already revoked or unrecoverable, which is fine
// for our purpose, so only transport errors are reported.
func (g GoogleUnlinker) Unlink(ctx context.Context, account model.LinkedAccount) error {
	form := url.Values{"token": {account.AccessToken}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.RevokeURL, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := g.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		g.logger.Debugf("Google revoke returned %d, treating as already revoked", resp.StatusCode)
	}

	return nil
}
