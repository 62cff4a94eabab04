// Package ws_game is the broadcast gateway for the tile game. Moves travel
// over HTTP; the hub only fans resulting state out to the room's connected
// clients, plus a private hand frame per player.
package ws_game

import (
	"log/slog"
	"sync"
	"time"

	"github.com/IRaudaS/games-backend/internal/model"
)

const (
	EventPlayerJoined = "PLAYER_JOINED"
	EventGameUpdated  = "GAME_UPDATED"
	EventYourHand     = "YOUR_HAND"
	EventError        = "ERROR"
)

type Event struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

type roomEvent struct {
	roomCode string
	event    Event
}

type Hub struct {
	logger     *slog.Logger
	clients    map[*Client]bool
	rooms      map[string]map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan roomEvent
	mu         sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		logger:     slog.Default(),
		clients:    make(map[*Client]bool),
		rooms:      make(map[string]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan roomEvent),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.handleRegister(client)

		case client := <-h.unregister:
			h.handleUnregister(client)

		case roomEvent := <-h.broadcast:
			h.broadcastToRoom(roomEvent.roomCode, roomEvent.event)
		}
	}
}

func (h *Hub) handleRegister(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.clients[client] = true
	if _, exists := h.rooms[client.roomCode]; !exists {
		h.rooms[client.roomCode] = make(map[*Client]bool)
	}
	h.rooms[client.roomCode][client] = true

	h.logger.Info("client registered",
		"player", client.playerName,
		"room", client.roomCode)
}

func (h *Hub) handleUnregister(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[client]; ok {
		delete(h.clients, client)
		close(client.send)

		if roomClients, exists := h.rooms[client.roomCode]; exists {
			delete(roomClients, client)
			if len(roomClients) == 0 {
				delete(h.rooms, client.roomCode)
			}
		}
	}

	h.logger.Info("client unregistered",
		"player", client.playerName,
		"room", client.roomCode)
}

// broadcastToRoom delivers event to every client of the room, evicting any
// client whose send buffer is full. Eviction mutates the room maps and
// closes the client channel, so both senders take the write lock.
func (h *Hub) broadcastToRoom(roomCode string, event Event) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if roomClients, exists := h.rooms[roomCode]; exists {
		for client := range roomClients {
			select {
			case client.send <- event:
			default:
				h.evict(roomCode, client)
			}
		}
	}
}

func (h *Hub) sendToPlayer(roomCode, player string, event Event) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if roomClients, exists := h.rooms[roomCode]; exists {
		for client := range roomClients {
			if client.playerName != player {
				continue
			}
			select {
			case client.send <- event:
			default:
				h.evict(roomCode, client)
			}
		}
	}
}

// evict drops a client whose send buffer is full. Caller holds the write
// lock. Removing it from clients keeps a later unregister from closing the
// channel twice.
func (h *Hub) evict(roomCode string, client *Client) {
	close(client.send)
	delete(h.clients, client)
	delete(h.rooms[roomCode], client)
}

// NotifyPlayerJoined announces the second participant to the room.
func (h *Hub) NotifyPlayerJoined(code, player string) {
	h.broadcast <- roomEvent{
		roomCode: code,
		event: Event{
			Type: EventPlayerJoined,
			Payload: map[string]interface{}{
				"player":  player,
				"message": player + " joined the game. Let's play!",
			},
		},
	}
}

// NotifyGameUpdated fans the post-move state out to the room and refreshes
// each participant's private hand.
func (h *Hub) NotifyGameUpdated(g *model.RummyGame, mover, moveType, message string) {
	h.broadcast <- roomEvent{
		roomCode: g.Code,
		event: Event{
			Type: EventGameUpdated,
			Payload: map[string]interface{}{
				"status":     g.Status,
				"game_state": publicState(g),
				"move": map[string]interface{}{
					"player": mover,
					"type":   moveType,
					"result": message,
				},
				"timestamp": time.Now().Unix(),
			},
		},
	}

	for _, player := range []string{g.Player1, g.Player2} {
		if player == "" {
			continue
		}
		h.sendToPlayer(g.Code, player, Event{
			Type:    EventYourHand,
			Payload: g.HandOf(player),
		})
	}
}

// publicState is the room-wide view of a rummy game: everything but the
// private hands, which travel on per-player frames.
func publicState(g *model.RummyGame) map[string]interface{} {
	return map[string]interface{}{
		"current_player":      g.State.CurrentPlayer,
		"current_tip":         g.State.CurrentTip,
		"table_melds":         g.State.TableMelds,
		"pile_count":          len(g.State.Pile),
		"player1_hand_count":  len(g.State.Player1Hand),
		"player2_hand_count":  len(g.State.Player2Hand),
		"player1_score":       g.State.Player1Score,
		"player2_score":       g.State.Player2Score,
		"player1_opened":      g.State.Player1Opened,
		"player2_opened":      g.State.Player2Opened,
		"meld_points":         g.State.MeldPoints,
		"has_drawn_this_turn": g.State.HasDrawnThisTurn,
	}
}
