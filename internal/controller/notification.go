package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hyeonwoo/placepick/internal/util"
)

type NotificationController struct {
	*baseController
}

func (nc NotificationController) GetOwnNotifications(ctx *gin.Context) {
	user, err := nc.getAuthUser(ctx)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "", util.GenerateErrorMessages(err, "unauthorized"), nil)
		return
	}

	page, pageSize := util.ReadPageQuery(ctx)

	notifications, total, err := nc.app.Repository.Notification.ListByUserId(ctx, nil, user.ID, page, pageSize)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "", util.GenerateErrorMessages(err), nil)
		return
	}

	unread, err := nc.app.Repository.Notification.CountUnread(ctx, nil, user.ID)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"notifications": notifications,
		"unreadCount":   unread,
		"total":         total,
		"totalPage":     util.CalculateTotalPage(total, pageSize),
		"page":          page,
		"pageSize":      pageSize,
	})
}

func (nc NotificationController) MarkNotificationRead(ctx *gin.Context) {
	user, err := nc.getAuthUser(ctx)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "", util.GenerateErrorMessages(err, "unauthorized"), nil)
		return
	}

	if err := nc.app.Repository.Notification.MarkRead(ctx, nil, ctx.Param("notificationId"), user.ID); err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, nil)
}

func (nc NotificationController) MarkAllNotificationsRead(ctx *gin.Context) {
	user, err := nc.getAuthUser(ctx)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "", util.GenerateErrorMessages(err, "unauthorized"), nil)
		return
	}

	if err := nc.app.Repository.Notification.MarkAllRead(ctx, nil, user.ID); err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, nil)
}
