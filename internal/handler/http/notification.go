package http

import (
	"encoding/json"
	"net/http"

	"github.com/viniciussvasques/innexar-hr/internal/domain/notification"
	"github.com/viniciussvasques/innexar-hr/internal/handler/http/response"
)

type NotificationHandler interface {
	ListNotifications(w http.ResponseWriter, r *http.Request)
	UnreadCount(w http.ResponseWriter, r *http.Request)
	MarkRead(w http.ResponseWriter, r *http.Request)
	MarkAllRead(w http.ResponseWriter, r *http.Request)
	RunSweep(w http.ResponseWriter, r *http.Request)
}

type notificationHandlerImpl struct {
	notificationService notification.Service
}

func NewNotificationHandler(notificationService notification.Service) NotificationHandler {
	return &notificationHandlerImpl{notificationService: notificationService}
}

func (h *notificationHandlerImpl) ListNotifications(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := claimEmployeeID(r)
	if !ok {
		response.Unauthorized(w, "Missing employee claim")
		return
	}

	filter := notification.Filter{
		EmployeeID: &employeeID,
		Page:       queryInt(r, "page", 1),
		Limit:      queryInt(r, "limit", 20),
	}
	if u := r.URL.Query().Get("unread"); u == "true" {
		unread := true
		filter.Unread = &unread
	}

	result, err := h.notificationService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *notificationHandlerImpl) UnreadCount(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := claimEmployeeID(r)
	if !ok {
		response.Unauthorized(w, "Missing employee claim")
		return
	}

	count, err := h.notificationService.UnreadCount(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, map[string]int{"unread": count})
}

func (h *notificationHandlerImpl) MarkRead(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := claimEmployeeID(r)
	if !ok {
		response.Unauthorized(w, "Missing employee claim")
		return
	}

	var req notification.MarkReadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.notificationService.MarkRead(r.Context(), employeeID, req.IDs); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Notifications marked read", nil)
}

func (h *notificationHandlerImpl) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := claimEmployeeID(r)
	if !ok {
		response.Unauthorized(w, "Missing employee claim")
		return
	}

	if err := h.notificationService.MarkAllRead(r.Context(), employeeID); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Notifications marked read", nil)
}

// RunSweep triggers the alert checks on demand. Normally the cron
// scheduler runs them.
func (h *notificationHandlerImpl) RunSweep(w http.ResponseWriter, r *http.Request) {
	result, err := h.notificationService.Sweep(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}
