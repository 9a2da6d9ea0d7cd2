package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/hyeonwoo/placepick/internal/account"
	"github.com/hyeonwoo/placepick/internal/constant"
	"github.com/hyeonwoo/placepick/internal/mailer"
	"github.com/hyeonwoo/placepick/internal/model"
	"github.com/hyeonwoo/placepick/internal/queue"
	"github.com/hyeonwoo/placepick/internal/util"
)

type UserController struct {
	*baseController
	deleter *account.Deleter
}

type deleteAccountRequest struct {
	ConfirmText string `json:"confirmText"`
}

type deleteAccountTarget struct {
	UserID    string `json:"userId"`
	UserEmail string `json:"userEmail"`
}

// authenticateForDeletion performs session auth inline because the deletion
// endpoints use their own wire format rather than the standard envelope.
func (uc UserController) authenticateForDeletion(ctx *gin.Context) (*model.User, bool) {
	token, err := util.ReadSessionToken(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return nil, false
	}

	user, _, err := uc.app.SessionService.Validate(ctx, token)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return nil, false
	}

	return user, true
}

// DeleteOwnAccount removes the caller's account after they re-type the
// withdrawal phrase exactly.
func (uc UserController) DeleteOwnAccount(ctx *gin.Context) {
	user, ok := uc.authenticateForDeletion(ctx)
	if !ok {
		return
	}

	var req deleteAccountRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if req.ConfirmText != constant.WITHDRAWAL_CONFIRM_TEXT {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "confirmation text does not match",
			"details": "type the withdrawal phrase exactly to delete the account",
		})
		return
	}

	uc.performDeletion(ctx, user)
}

// DeleteAccount is the variant that names its target by id or email in the
// body. A caller may only delete their own account.
func (uc UserController) DeleteAccount(ctx *gin.Context) {
	user, ok := uc.authenticateForDeletion(ctx)
	if !ok {
		return
	}

	var target deleteAccountTarget
	if err := ctx.ShouldBindJSON(&target); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if target.UserID == "" && target.UserEmail == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "userId or userEmail is required"})
		return
	}

	if (target.UserID != "" && target.UserID != user.ID) ||
		(target.UserEmail != "" && !strings.EqualFold(target.UserEmail, user.Email)) {
		ctx.JSON(http.StatusForbidden, gin.H{"error": "cannot delete another user's account"})
		return
	}

	uc.performDeletion(ctx, user)
}

func (uc UserController) performDeletion(ctx *gin.Context, user *model.User) {
	// Snapshot identity fields before the rows are gone.
	deletedUser := gin.H{
		"id":    user.ID,
		"email": user.Email,
		"name":  user.Name,
	}

	outcomes, err := uc.deleter.Delete(ctx, user)
	if err != nil {
		var stageErr *account.StageError
		details := err.Error()
		if errors.As(err, &stageErr) {
			details = string(stageErr.Stage) + " failed"
		}

		uc.app.Logger.Errorf("Account deletion failed for %s: %v", user.ID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error":   "account deletion failed",
			"details": details,
		})
		return
	}

	for _, outcome := range outcomes {
		if !outcome.Ok {
			uc.app.Logger.Warnf("Provider %s unlink incomplete for deleted account %s: %s",
				outcome.Provider, user.ID, outcome.Detail)
		}
	}

	uc.publishDeletionMail(user)
	uc.clearSessionCookie(ctx)

	ctx.JSON(http.StatusOK, gin.H{
		"success":     true,
		"message":     "account deleted",
		"deletedUser": deletedUser,
	})
}

// publishDeletionMail queues the goodbye email. Best-effort: the account is
// already gone, so a queue failure is only logged.
func (uc UserController) publishDeletionMail(user *model.User) {
	if uc.app.Queue == nil || user.Email == "" {
		return
	}

	job, err := queue.NewAccountDeletedMailJob(user.Email, mailer.AccountDeletedData{
		Name:  user.Name,
		Email: user.Email,
	})
	if err != nil {
		uc.app.Logger.Errorf("Failed to build deletion mail job: %v", err)
		return
	}

	body, err := json.Marshal(job)
	if err != nil {
		uc.app.Logger.Errorf("Failed to marshal deletion mail job: %v", err)
		return
	}

	if err := uc.app.Queue.Publish(queue.QueueMail, body); err != nil {
		uc.app.Logger.Errorf("Failed to publish deletion mail job: %v", err)
	}
}

type updateProfileRequest struct {
	Username             *string  `json:"username" form:"username"`
	PreferredLanguage    *string  `json:"preferredLanguage" form:"preferredLanguage"`
	InterestedCategories *string  `json:"interestedCategories" form:"interestedCategories"`
	LocationRadius       *float64 `json:"locationRadius" form:"locationRadius"`
}

func (uc UserController) GetOwnProfile(ctx *gin.Context) {
	user, err := uc.getAuthUser(ctx)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "", util.GenerateErrorMessages(err, "unauthorized"), nil)
		return
	}

	if err := uc.app.Repository.Profile.EnsureExists(ctx, nil, user.ID, user.Name); err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "", util.GenerateErrorMessages(err), nil)
		return
	}

	profile, err := uc.app.Repository.Profile.GetById(ctx, nil, user.ID)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{"profile": profile})
}

func (uc UserController) UpdateOwnProfile(ctx *gin.Context) {
	user, err := uc.getAuthUser(ctx)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "", util.GenerateErrorMessages(err, "unauthorized"), nil)
		return
	}

	var req updateProfileRequest
	if err := ctx.ShouldBind(&req); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "", util.GenerateErrorMessages(err), nil)
		return
	}

	updates := map[string]any{}
	if req.Username != nil {
		updates["username"] = *req.Username
	}
	if req.PreferredLanguage != nil {
		updates["preferred_language"] = *req.PreferredLanguage
	}
	if req.InterestedCategories != nil {
		updates["interested_categories"] = *req.InterestedCategories
	}
	if req.LocationRadius != nil {
		updates["location_radius"] = *req.LocationRadius
	}

	if len(updates) == 0 {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Nothing to update", nil, nil)
		return
	}

	if err := uc.app.Repository.Profile.EnsureExists(ctx, nil, user.ID, user.Name); err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "", util.GenerateErrorMessages(err), nil)
		return
	}

	if err := uc.app.Repository.Profile.Update(ctx, nil, user.ID, updates); err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "", util.GenerateErrorMessages(err), nil)
		return
	}

	profile, err := uc.app.Repository.Profile.GetById(ctx, nil, user.ID)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{"profile": profile})
}
