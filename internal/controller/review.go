package controller

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hyeonwoo/placepick/internal/constant"
	"github.com/hyeonwoo/placepick/internal/model"
	"github.com/hyeonwoo/placepick/internal/util"
	"gorm.io/gorm"
)

type ReviewController struct {
	*baseController
}

func (rc ReviewController) GetReviewsByPlace(ctx *gin.Context) {
	page, pageSize := util.ReadPageQuery(ctx)

	reviews, total, err := rc.app.Repository.Review.ListByPlaceId(ctx, nil, ctx.Param("placeId"), page, pageSize)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"reviews":   reviews,
		"total":     total,
		"totalPage": util.CalculateTotalPage(total, pageSize),
		"page":      page,
		"pageSize":  pageSize,
	})
}

// CreateReview adds a length-capped review to a place and notifies the place
// owner.
func (rc ReviewController) CreateReview(ctx *gin.Context) {
	user, err := rc.getAuthUser(ctx)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "", util.GenerateErrorMessages(err, "unauthorized"), nil)
		return
	}

	place, err := rc.app.Repository.Place.GetById(ctx, nil, ctx.Param("placeId"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.ResponseFailed(ctx, http.StatusNotFound, "Place not found", nil, nil)
			return
		}
		util.ResponseFailed(ctx, http.StatusInternalServerError, "", util.GenerateErrorMessages(err), nil)
		return
	}

	var newReview model.Review
	if err := ctx.ShouldBind(&newReview); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "", util.GenerateErrorMessages(err), nil)
		return
	}

	if fileHeader, err := ctx.FormFile("image"); err == nil {
		info, err := util.UploadFileToS3ByFileHeader(fileHeader, &util.FileUploadOptions{
			DirectoryPath: "reviews",
			UniquePrefix:  true,
			Bucket:        rc.app.Config.Minio.BUCKET,
			S3:            rc.app.S3,
		})
		if err != nil {
			util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to upload image", util.GenerateErrorMessages(err), nil)
			return
		}
		newReview.ImageURL = rc.objectURL(info.Key)
	}

	newReview.UserID = user.ID
	newReview.PlaceID = place.ID

	review, err := rc.app.Repository.Review.Create(ctx, nil, newReview)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "", util.GenerateErrorMessages(err), nil)
		return
	}

	// Notify the place owner about the new review. Best-effort.
	if place.CreatedBy != user.ID {
		if err := rc.app.Repository.Notification.Create(ctx, nil, model.Notification{
			UserID:  place.CreatedBy,
			Type:    constant.NotificationTypeReview,
			Message: fmt.Sprintf("%s left a review on %s", user.Name, place.Name),
			URL:     fmt.Sprintf("/places/%s", place.ID),
		}); err != nil {
			rc.app.Logger.Errorf("Failed to create review notification: %v", err)
		}
	}

	util.ResponseSuccess(ctx, gin.H{"review": review})
}

func (rc ReviewController) DeleteReview(ctx *gin.Context) {
	user, err := rc.getAuthUser(ctx)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "", util.GenerateErrorMessages(err, "unauthorized"), nil)
		return
	}

	review, err := rc.app.Repository.Review.GetById(ctx, nil, ctx.Param("reviewId"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.ResponseFailed(ctx, http.StatusNotFound, "Review not found", nil, nil)
			return
		}
		util.ResponseFailed(ctx, http.StatusInternalServerError, "", util.GenerateErrorMessages(err), nil)
		return
	}

	if review.UserID != user.ID {
		util.ResponseFailed(ctx, http.StatusForbidden, "Only the author can delete this review", nil, nil)
		return
	}

	if err := rc.app.Repository.Review.DeleteById(ctx, nil, review.ID); err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, nil)
}

// MarkReviewHelpful bumps the helpful counter and notifies the review author.
func (rc ReviewController) MarkReviewHelpful(ctx *gin.Context) {
	user, err := rc.getAuthUser(ctx)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "", util.GenerateErrorMessages(err, "unauthorized"), nil)
		return
	}

	reviewId := ctx.Param("reviewId")
	if err := rc.app.Repository.Review.MarkHelpful(ctx, nil, reviewId, user.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.ResponseFailed(ctx, http.StatusNotFound, "Review not found", nil, nil)
			return
		}
		util.ResponseFailed(ctx, http.StatusInternalServerError, "", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, nil)
}

func (rc ReviewController) CreateReviewReply(ctx *gin.Context) {
	user, err := rc.getAuthUser(ctx)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "", util.GenerateErrorMessages(err, "unauthorized"), nil)
		return
	}

	var newReply model.ReviewReply
	if err := ctx.ShouldBind(&newReply); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "", util.GenerateErrorMessages(err), nil)
		return
	}

	newReply.ReviewID = ctx.Param("reviewId")
	newReply.UserID = user.ID

	reply, err := rc.app.Repository.Review.CreateReply(ctx, nil, newReply)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.ResponseFailed(ctx, http.StatusNotFound, "Review not found", nil, nil)
			return
		}
		util.ResponseFailed(ctx, http.StatusInternalServerError, "", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{"reply": reply})
}

func (rc ReviewController) GetReviewReplies(ctx *gin.Context) {
	replies, err := rc.app.Repository.Review.ListReplies(ctx, nil, ctx.Param("reviewId"))
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{"replies": replies})
}
