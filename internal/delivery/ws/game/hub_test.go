package ws_game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHubClient(room, player string, buffer int) *Client {
	return &Client{
		send:       make(chan Event, buffer),
		roomCode:   room,
		playerName: player,
	}
}

func TestBroadcastEvictsSlowClient(t *testing.T) {
	h := NewHub()
	fast := newHubClient("R", "alice", 16)
	slow := newHubClient("R", "bob", 0)
	h.handleRegister(fast)
	h.handleRegister(slow)

	h.broadcastToRoom("R", Event{Type: EventGameUpdated})

	event := <-fast.send
	assert.Equal(t, EventGameUpdated, event.Type)

	_, open := <-slow.send
	assert.False(t, open, "evicted client channel is closed")
	assert.NotContains(t, h.rooms["R"], slow)

	// The evicted client's read pump will still unregister it; the channel
	// must not be closed a second time.
	assert.NotPanics(t, func() { h.handleUnregister(slow) })
}

func TestSendToPlayerTargetsOneClient(t *testing.T) {
	h := NewHub()
	alice := newHubClient("R", "alice", 16)
	bob := newHubClient("R", "bob", 16)
	h.handleRegister(alice)
	h.handleRegister(bob)

	h.sendToPlayer("R", "alice", Event{Type: EventYourHand})

	require.Len(t, alice.send, 1)
	assert.Empty(t, bob.send)
}

func TestInitialFrameSurvivesRegistration(t *testing.T) {
	h := NewHub()
	client := newHubClient("R", "alice", 16)

	// Connection setup queues the private hand before the hub picks the
	// client up; it must be the first frame the write pump sees.
	client.send <- Event{Type: EventYourHand}
	h.handleRegister(client)
	h.broadcastToRoom("R", Event{Type: EventGameUpdated})

	first := <-client.send
	second := <-client.send
	assert.Equal(t, EventYourHand, first.Type)
	assert.Equal(t, EventGameUpdated, second.Type)
}
