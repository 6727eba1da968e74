package v1

import (
	"fmt"
	"net/http"

	"github.com/StianAK82/regnskapsky/internal/domain/notifications"

	"github.com/gin-gonic/gin"
)

// NotificationHandler defines the interface for handling in-app notification operations
type NotificationHandler interface {
	List(ctx *gin.Context)
	MarkRead(ctx *gin.Context)
	MarkAllRead(ctx *gin.Context)
}

type notificationHandler struct {
	notificationService notifications.NotificationService
}

// NewNotificationHandler creates a new NotificationHandler
func NewNotificationHandler(notificationService notifications.NotificationService) NotificationHandler {
	return &notificationHandler{
		notificationService: notificationService,
	}
}

// List handles the GET request to list the caller's notifications
// @Summary List notifications for the caller
// @Description Fetch the caller's notifications, unread first, optionally restricted to unread only.
// @Tags Notification
// @Accept json
// @Produce json
// @Param unread query bool false "Unread only"
// @Success 200 {array} NotificationResponse
// @Failure 400 {object} ErrorResponse
// @Router /notifications [get]
func (handler *notificationHandler) List(ctx *gin.Context) {
	identity := currentIdentity(ctx)
	unreadOnly := ctx.Query("unread") == "true"

	listed, err := handler.notificationService.ListForUser(ctx.Request.Context(), identity.LicenseID, identity.UserID, unreadOnly)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("list query failed: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	var listResponse = []NotificationResponse{}
	for _, notification := range listed {
		listResponse = append(listResponse, newNotificationResponse(notification))
	}

	ctx.JSON(http.StatusOK, listResponse)
}

// MarkRead handles the POST request to mark one notification read
// @Summary Mark a notification read
// @Description Mark one of the caller's notifications read. Marking an already read notification is a no-op.
// @Tags Notification
// @Accept json
// @Produce json
// @Param id path string true "Notification ID"
// @Success 204 {object} InfoResponse
// @Failure 404 {object} ErrorResponse
// @Router /notifications/{id}/read [post]
func (handler *notificationHandler) MarkRead(ctx *gin.Context) {
	notificationID := ctx.Param("id")
	identity := currentIdentity(ctx)

	if err := handler.notificationService.MarkRead(ctx.Request.Context(), identity.LicenseID, identity.UserID, notificationID); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("notification with id %s not found", notificationID)
		ctx.JSON(http.StatusNotFound, errorResponse)
		return
	}

	var infoResponse InfoResponse
	infoResponse.Message = fmt.Sprintf("marked notification %s read", notificationID)
	ctx.JSON(http.StatusNoContent, infoResponse)
}

// MarkAllRead handles the POST request to mark all notifications read
// @Summary Mark all notifications read
// @Description Mark all of the caller's unread notifications read.
// @Tags Notification
// @Accept json
// @Produce json
// @Success 204 {object} InfoResponse
// @Failure 400 {object} ErrorResponse
// @Router /notifications/read-all [post]
func (handler *notificationHandler) MarkAllRead(ctx *gin.Context) {
	identity := currentIdentity(ctx)

	if err := handler.notificationService.MarkAllRead(ctx.Request.Context(), identity.LicenseID, identity.UserID); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("error marking notifications read: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	var infoResponse InfoResponse
	infoResponse.Message = "marked all notifications read"
	ctx.JSON(http.StatusNoContent, infoResponse)
}
