package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hyeonwoo/placepick/internal/constant"
	"github.com/hyeonwoo/placepick/internal/util"
	"gorm.io/gorm"
)

type VoteController struct {
	*baseController
}

type castVoteRequest struct {
	Type string `json:"type" form:"type" binding:"required"`
}

// CastVote records or replaces the caller's vote on a place. A like also
// favorites the place; switching away from like withdraws that favorite.
func (vc VoteController) CastVote(ctx *gin.Context) {
	user, err := vc.getAuthUser(ctx)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "", util.GenerateErrorMessages(err, "unauthorized"), nil)
		return
	}

	var req castVoteRequest
	if err := ctx.ShouldBind(&req); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "", util.GenerateErrorMessages(err), nil)
		return
	}

	voteType := constant.VoteType(req.Type)
	if !voteType.Valid() {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid vote type", nil, nil)
		return
	}

	placeId := ctx.Param("placeId")
	if _, err := vc.app.Repository.Place.GetById(ctx, nil, placeId); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.ResponseFailed(ctx, http.StatusNotFound, "Place not found", nil, nil)
			return
		}
		util.ResponseFailed(ctx, http.StatusInternalServerError, "", util.GenerateErrorMessages(err), nil)
		return
	}

	vote, err := vc.app.Repository.Vote.Cast(ctx, nil, user.ID, placeId, voteType)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{"vote": vote})
}

// GetOwnVote returns the caller's current vote on a place, if any.
func (vc VoteController) GetOwnVote(ctx *gin.Context) {
	user, err := vc.getAuthUser(ctx)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "", util.GenerateErrorMessages(err, "unauthorized"), nil)
		return
	}

	vote, err := vc.app.Repository.Vote.GetByUserAndPlace(ctx, nil, user.ID, ctx.Param("placeId"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.ResponseSuccess(ctx, gin.H{"vote": nil})
			return
		}
		util.ResponseFailed(ctx, http.StatusInternalServerError, "", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{"vote": vote})
}
