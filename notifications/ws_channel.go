package notifications

import (
	"strconv"

	"github.com/jwchung/staffdesk/ws"
)

const eventNotification = "notification"

// WebSocketChannel pushes notifications to the recipient's open browser
// sessions through the hub. The recipient user id travels in the context
// map; a user with no open sockets is a successful no-op.
type WebSocketChannel struct {
	hub *ws.Hub
}

func NewWebSocketChannel(hub *ws.Hub) *WebSocketChannel {
	return &WebSocketChannel{hub: hub}
}

func (w *WebSocketChannel) Send(recipient, title, message string, context map[string]string) error {
	userID, err := strconv.ParseUint(context["user_id"], 10, 64)
	if err != nil {
		return err
	}

	payload := map[string]string{
		"title":   title,
		"message": message,
		"type":    context["type"],
	}
	if refID := context["reference_id"]; refID != "" {
		payload["reference_id"] = refID
		payload["reference_type"] = context["reference_type"]
	}

	return w.hub.SendToUser(uint(userID), ws.Message{
		Event: eventNotification,
		Data:  payload,
	})
}
