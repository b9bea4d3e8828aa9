package handlers

import (
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/Abubakar-88/jugjiggasha/internal/notify"
	"github.com/Abubakar-88/jugjiggasha/internal/offline"
	ws "github.com/Abubakar-88/jugjiggasha/internal/websocket"
)

// WebSocketHandler upgrades HTTP connections and dispatches the client
// command vocabulary received over them.
type WebSocketHandler struct {
	hub      *ws.Hub
	notifier notify.NotifierProvider
	engine   *offline.Engine
}

// NewWebSocketHandler creates a new WebSocketHandler.
func NewWebSocketHandler(hub *ws.Hub, notifier notify.NotifierProvider, engine *offline.Engine) *WebSocketHandler {
	return &WebSocketHandler{hub: hub, notifier: notifier, engine: engine}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Allow all origins (consider tightening this in production).
		return true
	},
}

// Serve handles the WebSocket connection request.
func (h *WebSocketHandler) Serve(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error().Err(err).Msg("Failed to upgrade websocket connection")
		return
	}

	client := ws.NewClient(h.hub, conn)
	h.hub.Register <- client

	go client.WritePump()
	go func() {
		client.ReadPump(h.handleIncomingWSMessage)
		h.hub.Unregister <- client
	}()
}

// handleIncomingWSMessage processes commands received from a websocket client.
func (h *WebSocketHandler) handleIncomingWSMessage(client *ws.Client, message []byte) {
	command, err := ws.ParseCommand(message)
	if err != nil {
		log.Warn().Err(err).Bytes("message", message).Msg("Unknown websocket command received")
		client.Send <- ws.NewErrorMessage(err.Error())
		return
	}

	switch cmd := command.(type) {
	case ws.SkipWaiting:
		if err := h.engine.SkipWaiting(); err != nil {
			log.Error().Err(err).Msg("Failed to activate cache engine")
			client.Send <- ws.NewErrorMessage("Failed to activate")
		}
	case ws.ShowWelcomeNotification:
		h.notifier.Deliver(notify.Welcome())
	case ws.TestNotification:
		h.notifier.Deliver(notify.Test(cmd.Title, cmd.Body))
	}
}
