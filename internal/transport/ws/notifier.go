package ws

import (
	"log/slog"

	"github.com/vportella/agora/internal/domain"
)

// HubNotifier implements service.Notifier using the WebSocket Hub.
type HubNotifier struct {
	hub    *Hub
	logger *slog.Logger
}

func NewHubNotifier(hub *Hub) *HubNotifier {
	return &HubNotifier{
		hub:    hub,
		logger: hub.logger.With("module", "ws-notifier"),
	}
}

func (n *HubNotifier) NotifyNewPost(post *domain.Post) {
	evt, err := NewEvent(EventTypePostNew, post)
	if err != nil {
		n.logger.Error("marshal post event", "error", err)
		return
	}
	n.hub.Broadcast(evt)
}

func (n *HubNotifier) NotifyNewLike(like *domain.Like) {
	evt, err := NewEvent(EventTypePostLiked, like)
	if err != nil {
		n.logger.Error("marshal like event", "error", err)
		return
	}
	n.hub.Broadcast(evt)
}

func (n *HubNotifier) NotifyNewFollow(follow *domain.Follow) {
	evt, err := NewEvent(EventTypeUserFollowed, follow)
	if err != nil {
		n.logger.Error("marshal follow event", "error", err)
		return
	}
	n.hub.Broadcast(evt)
}
