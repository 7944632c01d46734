package controller

import (
	"errors"
	"lms_backend/internal/service"
	"lms_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type NotificationController struct {
	NotificationService *service.NotificationService
}

func NewNotificationController(notificationService *service.NotificationService) *NotificationController {
	return &NotificationController{NotificationService: notificationService}
}

// List godoc
// @Summary List the caller's notifications, newest first
// @Tags notifications
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.Notification}
// @Router /api/notifications [get]
func (c *NotificationController) List(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	notifications, err := c.NotificationService.ListByUser(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, notifications)
}

// UnreadCount godoc
// @Summary Count the caller's unread notifications
// @Tags notifications
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=object}
// @Router /api/notifications/unread-count [get]
func (c *NotificationController) UnreadCount(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	count, err := c.NotificationService.UnreadCount(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"count": count})
}

// MarkRead godoc
// @Summary Mark one notification as read
// @Tags notifications
// @Security ApiKeyAuth
// @Param id path int true "notification id"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/notifications/{id}/read [post]
func (c *NotificationController) MarkRead(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	if err := c.NotificationService.MarkRead(claims.UserID, util.ParseUintOrZero(ctx.Param("id"))); err != nil {
		if errors.Is(err, util.ErrNotificationNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, nil)
}

// MarkAllRead godoc
// @Summary Mark all of the caller's notifications as read
// @Tags notifications
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/notifications/read-all [post]
func (c *NotificationController) MarkAllRead(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	if err := c.NotificationService.MarkAllRead(claims.UserID); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// Delete godoc
// @Summary Delete one of the caller's notifications
// @Tags notifications
// @Security ApiKeyAuth
// @Param id path int true "notification id"
// @Success 204
// @Failure 404 {object} util.Response
// @Router /api/notifications/{id} [delete]
func (c *NotificationController) Delete(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	if err := c.NotificationService.Delete(claims.UserID, util.ParseUintOrZero(ctx.Param("id"))); err != nil {
		if errors.Is(err, util.ErrNotificationNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.NoContent(ctx)
}
