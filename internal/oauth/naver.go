package oauth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/hyeonwoo/placepick/internal/config"
	"github.com/hyeonwoo/placepick/internal/constant"
	"github.com/hyeonwoo/placepick/internal/model"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
)

const (
	naverAuthURL     = "https://nid.naver.com/oauth2.0/authorize"
	naverTokenURL    = "https://nid.naver.com/oauth2.0/token"
	naverUserInfoURL = "https://openapi.naver.com/v1/nid/me"
)

func NewNaverOAuthConfig(cfg config.OAuthProviderConfig) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		RedirectURL:  cfg.RedirectURL,
		Endpoint: oauth2.Endpoint{
			AuthURL:  naverAuthURL,
			TokenURL: naverTokenURL,
		},
	}
}

type naverUser struct {
	ResultCode string `json:"resultcode"`
	Message    string `json:"message"`
	Response   struct {
		ID           string `json:"id"`
		Email        string `json:"email"`
		Nickname     string `json:"nickname"`
		ProfileImage string `json:"profile_image"`
	} `json:"response"`
}

func FetchNaverUser(ctx context.Context, conf *oauth2.Config, code string) (*Claims, error) {
	token, err := conf.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange token: %w", err)
	}

	client := conf.Client(ctx, token)
	resp, err := client.Get(naverUserInfoURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user info: %w", err)
	}
	defer resp.Body.Close()

	var userInfo naverUser
	if err := json.NewDecoder(resp.Body).Decode(&userInfo); err != nil {
		return nil, fmt.Errorf("failed to decode user info: %w", err)
	}

	if userInfo.ResultCode != "00" {
		return nil, fmt.Errorf("naver userinfo returned %s: %s", userInfo.ResultCode, userInfo.Message)
	}

	return &Claims{
		Provider:          constant.OAUTH_PROVIDER_NAVER,
		ProviderAccountID: userInfo.Response.ID,
		Email:             userInfo.Response.Email,
		Name:              userInfo.Response.Nickname,
		AvatarURL:         userInfo.Response.ProfileImage,
		AccessToken:       token.AccessToken,
		RefreshToken:      token.RefreshToken,
		ExpiresAt:         token.Expiry.Unix(),
	}, nil
}

type NaverUnlinker struct {
	ClientID     string
	ClientSecret string
	TokenURL     string
	HTTPClient   *http.Client
	logger       *zap.SugaredLogger
}

func NewNaverUnlinker(cfg config.OAuthProviderConfig, logger *zap.SugaredLogger) *NaverUnlinker {
	return &NaverUnlinker{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		TokenURL:     naverTokenURL,
		HTTPClient:   &http.Client{Timeout: 10 * time.Second},
		logger:       logger,
	}
}

// Unlink asks Naver's token endpoint to delete the grant.
func (n NaverUnlinker) Unlink(ctx context.Context, account model.LinkedAccount) error {
	query := url.Values{
		"grant_type":       {"delete"},
		"client_id":        {n.ClientID},
		"client_secret":    {n.ClientSecret},
		"access_token":     {account.AccessToken},
		"service_provider": {"NAVER"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.TokenURL+"?"+query.Encode(), nil)
	if err != nil {
		return err
	}

	resp, err := n.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("naver token delete returned %d", resp.StatusCode)
	}

	return nil
}
