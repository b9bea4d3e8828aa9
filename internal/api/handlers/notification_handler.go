package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/Abubakar-88/jugjiggasha/internal/notify"
	"github.com/Abubakar-88/jugjiggasha/internal/offline"
	"github.com/Abubakar-88/jugjiggasha/internal/services"
	ws "github.com/Abubakar-88/jugjiggasha/internal/websocket"
)

// NotificationHandler handles the notification command and push endpoints.
type NotificationHandler struct {
	notifier  notify.NotifierProvider
	engine    *offline.Engine
	schedules services.ScheduleServiceProvider
}

// NewNotificationHandler creates a new NotificationHandler.
func NewNotificationHandler(notifier notify.NotifierProvider, engine *offline.Engine, schedules services.ScheduleServiceProvider) *NotificationHandler {
	return &NotificationHandler{notifier: notifier, engine: engine, schedules: schedules}
}

// Message accepts the client command vocabulary over HTTP: SKIP_WAITING,
// SHOW_WELCOME_NOTIFICATION and TEST_NOTIFICATION.
func (h *NotificationHandler) Message(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	command, err := ws.ParseCommand(body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	switch cmd := command.(type) {
	case ws.SkipWaiting:
		if err := h.engine.SkipWaiting(); err != nil {
			log.Error().Err(err).Msg("Failed to activate cache engine")
			http.Error(w, "Failed to activate", http.StatusInternalServerError)
			return
		}
	case ws.ShowWelcomeNotification:
		h.notifier.Deliver(notify.Welcome())
	case ws.TestNotification:
		h.notifier.Deliver(notify.Test(cmd.Title, cmd.Body))
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// PushPayload is an inbound push message.
type PushPayload struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	URL   string `json:"url"`
}

// Push relays an externally pushed payload to connected clients. Malformed
// payloads are logged and rejected without disturbing anything else.
func (h *NotificationHandler) Push(w http.ResponseWriter, r *http.Request) {
	var payload PushPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Error().Err(err).Msg("Error processing push payload")
		http.Error(w, "Invalid push payload", http.StatusBadRequest)
		return
	}
	if payload.Title == "" {
		http.Error(w, "Push payload requires a title", http.StatusBadRequest)
		return
	}

	h.notifier.Deliver(notify.Push(payload.Title, payload.Body, payload.URL))

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// Schedule reports the active notification schedules, including the next
// fire time of the weekly reminder.
func (h *NotificationHandler) Schedule(w http.ResponseWriter, r *http.Request) {
	schedules, err := h.schedules.GetActiveSchedules()
	if err != nil {
		http.Error(w, "Failed to retrieve schedules", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(schedules)
}
