package httpapi

import (
	"context"
	"net/http"

	"github.com/orgball2608/socialhub/internal/notification"
	"github.com/orgball2608/socialhub/pkg/errors"
)

type sendRequest struct {
	Content string `json:"content"`
}

func (h *Handler) listNotifications(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("filter")
	filter, ok := notification.ParseFilter(raw)
	if !ok {
		h.writeError(w, r, errors.Invalid("unknown filter "+raw))
		return
	}
	items, err := h.notifications.List(r.Context(), filter)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, items)
}

func (h *Handler) unreadNotifications(w http.ResponseWriter, r *http.Request) {
	unread, err := h.notifications.UnreadCount(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]int{"unread": unread})
}

func (h *Handler) readAllNotifications(w http.ResponseWriter, r *http.Request) {
	marked, err := h.notifications.MarkAllRead(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]int{"marked": marked})
}

func (h *Handler) readNotification(ctx context.Context, id int) (any, error) {
	return h.notifications.MarkRead(ctx, id)
}

func (h *Handler) listConversations(w http.ResponseWriter, r *http.Request) {
	conversations, err := h.messages.ListConversations(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, conversations)
}

func (h *Handler) conversationMessages(ctx context.Context, id int) (any, error) {
	return h.messages.Messages(ctx, id)
}

func (h *Handler) sendMessage(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var req sendRequest
	if err := decode(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	sent, err := h.messages.Send(r.Context(), id, req.Content)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, sent)
}
