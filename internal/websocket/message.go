package websocket

import (
	"encoding/json"
	"fmt"
)

// Wire type values of the client command vocabulary.
const (
	TypeSkipWaiting             = "SKIP_WAITING"
	TypeShowWelcomeNotification = "SHOW_WELCOME_NOTIFICATION"
	TypeTestNotification        = "TEST_NOTIFICATION"
)

// Command is one message from a client, a closed set: SkipWaiting,
// ShowWelcomeNotification or TestNotification.
type Command interface {
	commandType() string
}

// SkipWaiting asks the cache engine to activate immediately.
type SkipWaiting struct{}

// ShowWelcomeNotification asks for the post-install welcome notification.
type ShowWelcomeNotification struct{}

// TestNotification asks for a test notification, optionally overriding the
// default title and body.
type TestNotification struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

func (SkipWaiting) commandType() string             { return TypeSkipWaiting }
func (ShowWelcomeNotification) commandType() string { return TypeShowWelcomeNotification }
func (TestNotification) commandType() string        { return TypeTestNotification }

// ParseCommand decodes a raw client message into its Command variant.
func ParseCommand(data []byte) (Command, error) {
	var envelope struct {
		Type  string `json:"type"`
		Title string `json:"title"`
		Body  string `json:"body"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, fmt.Errorf("malformed command: %w", err)
	}

	switch envelope.Type {
	case TypeSkipWaiting:
		return SkipWaiting{}, nil
	case TypeShowWelcomeNotification:
		return ShowWelcomeNotification{}, nil
	case TypeTestNotification:
		return TestNotification{Title: envelope.Title, Body: envelope.Body}, nil
	default:
		return nil, fmt.Errorf("unknown command type %q", envelope.Type)
	}
}

// ErrorMessage is sent back to a client whose command could not be handled.
type ErrorMessage struct {
	Action string `json:"action"`
	Error  string `json:"error"`
}

// NewErrorMessage renders an error message for the wire.
func NewErrorMessage(msg string) []byte {
	data, _ := json.Marshal(ErrorMessage{Action: "error", Error: msg})
	return data
}
