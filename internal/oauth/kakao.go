package oauth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/hyeonwoo/placepick/internal/config"
	"github.com/hyeonwoo/placepick/internal/constant"
	"github.com/hyeonwoo/placepick/internal/model"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/kakao"
)

const (
	kakaoUserInfoURL = "https://kapi.kakao.com/v2/user/me"
	kakaoUnlinkURL   = "https://kapi.kakao.com/v1/user/unlink"
	kakaoTokenURL    = "https://kauth.kakao.com/oauth/token"
)

func NewKakaoOAuthConfig(cfg config.OAuthProviderConfig) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		RedirectURL:  cfg.RedirectURL,
		Scopes:       []string{"account_email", "profile_nickname", "profile_image"},
		Endpoint:     kakao.Endpoint,
	}
}

type kakaoUser struct {
	ID           int64 `json:"id"`
	KakaoAccount struct {
		Email   string `json:"email"`
		Profile struct {
			Nickname        string `json:"nickname"`
			ProfileImageURL string `json:"profile_image_url"`
		} `json:"profile"`
	} `json:"kakao_account"`
	Properties struct {
		Nickname     string `json:"nickname"`
		ProfileImage string `json:"profile_image"`
	} `json:"properties"`
}

func FetchKakaoUser(ctx context.Context, conf *oauth2.Config, code string) (*Claims, error) {
	token, err := conf.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange token: %w", err)
	}

	client := conf.Client(ctx, token)
	resp, err := client.Get(kakaoUserInfoURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user info: %w", err)
	}
	defer resp.Body.Close()

	var userInfo kakaoUser
	if err := json.NewDecoder(resp.Body).Decode(&userInfo); err != nil {
		return nil, fmt.Errorf("failed to decode user info: %w", err)
	}

	name := userInfo.KakaoAccount.Profile.Nickname
	if name == "" {
		name = userInfo.Properties.Nickname
	}
	avatar := userInfo.KakaoAccount.Profile.ProfileImageURL
	if avatar == "" {
		avatar = userInfo.Properties.ProfileImage
	}

	return &Claims{
		Provider:          constant.OAUTH_PROVIDER_KAKAO,
		ProviderAccountID: strconv.FormatInt(userInfo.ID, 10),
		Email:             userInfo.KakaoAccount.Email,
		Name:              name,
		AvatarURL:         avatar,
		AccessToken:       token.AccessToken,
		RefreshToken:      token.RefreshToken,
		ExpiresAt:         token.Expiry.Unix(),
	}, nil
}

type KakaoUnlinker struct {
	ClientID     string
	ClientSecret string
	UnlinkURL    string
	TokenURL     string
	HTTPClient   *http.Client
	logger       *zap.SugaredLogger
}

func NewKakaoUnlinker(cfg config.OAuthProviderConfig, logger *zap.SugaredLogger) *KakaoUnlinker {
	return &KakaoUnlinker{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		UnlinkURL:    kakaoUnlinkURL,
		TokenURL:     kakaoTokenURL,
		HTTPClient:   &http.Client{Timeout: 10 * time.Second},
		logger:       logger,
	}
}

// Unlink calls Kakao's unlink endpoint with the stored access token. On an
// authorization failure with a refresh token on file, the token is refreshed
// and the unlink retried exactly once.
func (k KakaoUnlinker) Unlink(ctx context.Context, account model.LinkedAccount) error {
	status, err := k.callUnlink(ctx, account.AccessToken)
	if err != nil {
		return err
	}
	if status < http.StatusBadRequest {
		return nil
	}

	if status != http.StatusUnauthorized || account.RefreshToken == "" {
		return fmt.Errorf("kakao unlink returned %d", status)
	}

	k.logger.Debugf("Kakao access token expired, refreshing before unlink retry")
	newToken, err := k.refreshAccessToken(ctx, account.RefreshToken)
	if err != nil {
		return fmt.Errorf("kakao token refresh failed: %w", err)
	}

	status, err = k.callUnlink(ctx, newToken)
	if err != nil {
		return err
	}
	if status >= http.StatusBadRequest {
		return fmt.Errorf("kakao unlink retry returned %d", status)
	}

	return nil
}

func (k KakaoUnlinker) callUnlink(ctx context.Context, accessToken string) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, k.UnlinkURL, nil)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := k.HTTPClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	return resp.StatusCode, nil
}

func (k KakaoUnlinker) refreshAccessToken(ctx context.Context, refreshToken string) (string, error) {
	form := url.Values{
		"grant_type":    {"refresh_token"},
		"client_id":     {k.ClientID},
		"client_secret": {k.ClientSecret},
		"refresh_token": {refreshToken},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, k.TokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := k.HTTPClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("token endpoint returned %d", resp.StatusCode)
	}

	var body struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", err
	}
	if body.AccessToken == "" {
		return "", fmt.Errorf("token endpoint returned no access token")
	}

	return body.AccessToken, nil
}
