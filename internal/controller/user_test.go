package controller_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	appcontext "github.com/hyeonwoo/placepick/internal/app_context"
	"github.com/hyeonwoo/placepick/internal/auth"
	"github.com/hyeonwoo/placepick/internal/config"
	"github.com/hyeonwoo/placepick/internal/constant"
	"github.com/hyeonwoo/placepick/internal/controller"
	"github.com/hyeonwoo/placepick/internal/model"
	"github.com/hyeonwoo/placepick/internal/repository"
	"github.com/hyeonwoo/placepick/internal/route"
	"github.com/hyeonwoo/placepick/internal/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestApp(t *testing.T) (*gin.Engine, *appcontext.Application) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.LinkedAccount{},
		&model.Session{},
		&model.Profile{},
		&model.Consent{},
		&model.Place{},
		&model.Vote{},
		&model.Favorite{},
		&model.Review{},
		&model.ReviewReply{},
		&model.Notification{},
	))

	repo := repository.NewRepository(db, nil)
	cfg := config.Config{}

	app := &appcontext.Application{
		Config:         &cfg,
		Logger:         util.NewLogger(""),
		Repository:     repo,
		SessionService: auth.NewSessionService(repo, nil),
	}

	r := gin.New()
	rApi := r.Group("/api")
	route.V1_Users(rApi, controller.NewController(app).User)

	return r, app
}

func loginTestUser(t *testing.T, app *appcontext.Application) (*model.User, *model.Session) {
	t.Helper()
	ctx := context.Background()

	user, err := app.Repository.User.Create(ctx, nil, model.User{
		Email: "leaver@example.com",
		Name:  "leaver",
	})
	require.NoError(t, err)

	session, err := app.SessionService.Issue(ctx, user.ID)
	require.NoError(t, err)

	return user, session
}

func doDeleteRequest(r *gin.Engine, method string, path string, token string, body any) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.AddCookie(&http.Cookie{Name: constant.SESSION_COOKIE_NAME, Value: token})
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestDeleteOwnAccountRequiresSession(t *testing.T) {
	r, _ := newTestApp(t)

	w := doDeleteRequest(r, http.MethodPost, "/api/v1/users/delete", "",
		gin.H{"confirmText": constant.WITHDRAWAL_CONFIRM_TEXT})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestDeleteOwnAccountRejectsWrongConfirmText(t *testing.T) {
	r, app := newTestApp(t)
	user, session := loginTestUser(t, app)
	ctx := context.Background()

	w := doDeleteRequest(r, http.MethodPost, "/api/v1/users/delete", session.Token,
		gin.H{"confirmText": "wrong"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Nothing was mutated: the identity and the session both survive.
	_, err := app.Repository.User.GetById(ctx, nil, user.ID)
	assert.NoError(t, err)
	_, err = app.Repository.Session.GetByToken(ctx, nil, session.Token)
	assert.NoError(t, err)
}

func TestDeleteOwnAccountWithExactPhrase(t *testing.T) {
	r, app := newTestApp(t)
	user, session := loginTestUser(t, app)
	ctx := context.Background()

	w := doDeleteRequest(r, http.MethodPost, "/api/v1/users/delete", session.Token,
		gin.H{"confirmText": constant.WITHDRAWAL_CONFIRM_TEXT})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success     bool           `json:"success"`
		DeletedUser map[string]any `json:"deletedUser"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, user.ID, resp.DeletedUser["id"])

	_, err := app.Repository.User.GetById(ctx, nil, user.ID)
	assert.Error(t, err)
	_, err = app.Repository.Session.GetByToken(ctx, nil, session.Token)
	assert.Error(t, err)
}

func TestDeleteAccountForbidsOtherUsers(t *testing.T) {
	r, app := newTestApp(t)
	user, session := loginTestUser(t, app)
	ctx := context.Background()

	w := doDeleteRequest(r, http.MethodDelete, "/api/v1/users/delete", session.Token,
		gin.H{"userId": "someone-else"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doDeleteRequest(r, http.MethodDelete, "/api/v1/users/delete", session.Token,
		gin.H{"userEmail": "other@example.com"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	_, err := app.Repository.User.GetById(ctx, nil, user.ID)
	assert.NoError(t, err)
}

func TestDeleteAccountByMatchingEmail(t *testing.T) {
	r, app := newTestApp(t)
	user, session := loginTestUser(t, app)
	ctx := context.Background()

	w := doDeleteRequest(r, http.MethodDelete, "/api/v1/users/delete", session.Token,
		gin.H{"userEmail": "LEAVER@example.com"})
	assert.Equal(t, http.StatusOK, w.Code)

	_, err := app.Repository.User.GetById(ctx, nil, user.ID)
	assert.Error(t, err)
}
