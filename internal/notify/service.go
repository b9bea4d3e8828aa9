// Package notify delivers app notifications: the weekly mojlis reminder,
// the post-install welcome, test notifications and relayed push payloads.
// Delivery is a broadcast over the websocket hub; every delivery is also
// recorded as an event.
package notify

import (
	"encoding/json"

	"github.com/rs/zerolog/log"

	ws "github.com/Abubakar-88/jugjiggasha/internal/websocket"
)

// EventRecorder records deliveries in the event log.
type EventRecorder interface {
	CreateEvent(eventType, level, message string, subjectID *string) error
}

// NotifierProvider defines the interface for notification delivery.
type NotifierProvider interface {
	Deliver(n Notification)
}

// Notifier broadcasts notifications to all connected clients.
type Notifier struct {
	hub    *ws.Hub
	events EventRecorder
}

// NewNotifier creates a Notifier over the given hub.
func NewNotifier(hub *ws.Hub, events EventRecorder) *Notifier {
	return &Notifier{hub: hub, events: events}
}

// Deliver broadcasts the notification. Failures are logged and swallowed;
// a missed notification never propagates an error to the triggering flow.
func (n *Notifier) Deliver(notification Notification) {
	data, err := json.Marshal(notification)
	if err != nil {
		log.Error().Err(err).Str("kind", notification.Kind).Msg("Failed to encode notification")
		return
	}

	n.hub.Broadcast <- data

	if err := n.events.CreateEvent("notification.sent", "info", notification.Title, nil); err != nil {
		log.Error().Err(err).Str("kind", notification.Kind).Msg("Failed to record notification event")
	}
	log.Info().Str("kind", notification.Kind).Str("tag", notification.Tag).Msg("Notification delivered")
}
