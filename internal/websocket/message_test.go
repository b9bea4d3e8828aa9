package websocket

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommandSkipWaiting(t *testing.T) {
	cmd, err := ParseCommand([]byte(`{"type": "SKIP_WAITING"}`))
	require.NoError(t, err)
	assert.IsType(t, SkipWaiting{}, cmd)
}

func TestParseCommandWelcome(t *testing.T) {
	cmd, err := ParseCommand([]byte(`{"type": "SHOW_WELCOME_NOTIFICATION"}`))
	require.NoError(t, err)
	assert.IsType(t, ShowWelcomeNotification{}, cmd)
}

func TestParseCommandTestNotification(t *testing.T) {
	cmd, err := ParseCommand([]byte(`{"type": "TEST_NOTIFICATION", "title": "শিরোনাম", "body": "বার্তা"}`))
	require.NoError(t, err)

	test, ok := cmd.(TestNotification)
	require.True(t, ok)
	assert.Equal(t, "শিরোনাম", test.Title)
	assert.Equal(t, "বার্তা", test.Body)
}

func TestParseCommandUnknownType(t *testing.T) {
	_, err := ParseCommand([]byte(`{"type": "NOPE"}`))
	assert.Error(t, err)
}

func TestParseCommandMalformedJSON(t *testing.T) {
	_, err := ParseCommand([]byte(`{`))
	assert.Error(t, err)
}
