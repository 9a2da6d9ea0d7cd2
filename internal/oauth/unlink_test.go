package oauth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hyeonwoo/placepick/internal/model"
	"github.com/hyeonwoo/placepick/internal/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoogleUnlinkToleratesNonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer server.Close()

	unlinker := &GoogleUnlinker{
		RevokeURL:  server.URL,
		HTTPClient: server.Client(),
		logger:     util.NewLogger(""),
	}

	// Google answers 400 for already revoked tokens; that still counts as done.
	err := unlinker.Unlink(context.Background(), model.LinkedAccount{AccessToken: "tok"})
	assert.NoError(t, err)
}

func TestGoogleUnlinkReportsTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	unlinker := &GoogleUnlinker{
		RevokeURL:  server.URL,
		HTTPClient: &http.Client{},
		logger:     util.NewLogger(""),
	}

	err := unlinker.Unlink(context.Background(), model.LinkedAccount{AccessToken: "tok"})
	assert.Error(t, err)
}

func TestKakaoUnlinkSucceedsFirstTry(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		assert.Equal(t, "Bearer access-tok", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	unlinker := &KakaoUnlinker{
		UnlinkURL:  server.URL,
		HTTPClient: server.Client(),
		logger:     util.NewLogger(""),
	}

	err := unlinker.Unlink(context.Background(), model.LinkedAccount{AccessToken: "access-tok"})
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestKakaoUnlinkRefreshesExpiredTokenAndRetriesOnce(t *testing.T) {
	var unlinkCalls, refreshCalls int

	unlinkServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		unlinkCalls++
		if r.Header.Get("Authorization") == "Bearer fresh-tok" {
			w.WriteHeader(http.StatusOK)
			return
		}
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer unlinkServer.Close()

	tokenServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		refreshCalls++
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "refresh_token", r.FormValue("grant_type"))
		assert.Equal(t, "refresh-tok", r.FormValue("refresh_token"))
		json.NewEncoder(w).Encode(map[string]string{"access_token": "fresh-tok"})
	}))
	defer tokenServer.Close()

	unlinker := &KakaoUnlinker{
		ClientID:   "cid",
		UnlinkURL:  unlinkServer.URL,
		TokenURL:   tokenServer.URL,
		HTTPClient: &http.Client{},
		logger:     util.NewLogger(""),
	}

	err := unlinker.Unlink(context.Background(), model.LinkedAccount{
		AccessToken:  "stale-tok",
		RefreshToken: "refresh-tok",
	})
	require.NoError(t, err)
	assert.Equal(t, 2, unlinkCalls)
	assert.Equal(t, 1, refreshCalls)
}

func TestKakaoUnlinkFailsWithoutRefreshToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	unlinker := &KakaoUnlinker{
		UnlinkURL:  server.URL,
		HTTPClient: server.Client(),
		logger:     util.NewLogger(""),
	}

	err := unlinker.Unlink(context.Background(), model.LinkedAccount{AccessToken: "stale-tok"})
	assert.Error(t, err)
}

func TestNaverUnlinkSendsDeleteGrant(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		assert.Equal(t, "delete", query.Get("grant_type"))
		assert.Equal(t, "NAVER", query.Get("service_provider"))
		assert.Equal(t, "access-tok", query.Get("access_token"))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	unlinker := &NaverUnlinker{
		ClientID:     "cid",
		ClientSecret: "secret",
		TokenURL:     server.URL,
		HTTPClient:   server.Client(),
		logger:       util.NewLogger(""),
	}

	err := unlinker.Unlink(context.Background(), model.LinkedAccount{AccessToken: "access-tok"})
	assert.NoError(t, err)
}

func TestNaverUnlinkReportsFailureStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	unlinker := &NaverUnlinker{
		TokenURL:   server.URL,
		HTTPClient: server.Client(),
		logger:     util.NewLogger(""),
	}

	err := unlinker.Unlink(context.Background(), model.LinkedAccount{AccessToken: "access-tok"})
	assert.Error(t, err)
}
