package ws_game

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	http_common "github.com/IRaudaS/games-backend/internal/delivery/http/common"
	usecase_rummy "github.com/IRaudaS/games-backend/internal/usecase/rummy"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

type Client struct {
	hub        *Hub
	conn       *websocket.Conn
	send       chan Event
	playerName string
	roomCode   string
}

type Controller struct {
	hub     *Hub
	usecase *usecase_rummy.Usecase
	logger  *slog.Logger
}

func NewController(hub *Hub, usecase *usecase_rummy.Usecase) *Controller {
	return &Controller{
		hub:     hub,
		usecase: usecase,
		logger:  slog.Default(),
	}
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/rummy/games/:game_id/ws", c.connect)
}

// connect authorizes the player for the room, upgrades the connection and
// hands the client to the hub.
func (c *Controller) connect(ctx *gin.Context) {
	code := ctx.Param("game_id")
	player := ctx.Query("player")

	game, err := c.usecase.Game(ctx, code)
	if err != nil {
		ctx.JSON(http.StatusNotFound, http_common.ErrorResponse{
			Message: "not found",
		})
		return
	}
	if !game.IsParticipant(player) {
		ctx.JSON(http.StatusForbidden, http_common.ErrorResponse{
			Message: "you are not part of this game",
		})
		return
	}

	conn, err := upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		c.logger.Error("websocket upgrade failed",
			slog.String("room", code),
			slog.String("error", err.Error()))
		return
	}

	client := &Client{
		hub:        c.hub,
		conn:       conn,
		send:       make(chan Event, 16),
		playerName: player,
		roomCode:   code,
	}
	// Late joiners get their hand immediately instead of waiting for the
	// next move. Queued on the client's own channel so it cannot race the
	// hub picking up the registration.
	client.send <- Event{
		Type:    EventYourHand,
		Payload: game.HandOf(player),
	}

	c.hub.register <- client

	go client.writePump()
	go client.readPump()
}

// readPump discards inbound frames; moves travel over HTTP. Its only job is
// noticing the close.
func (client *Client) readPump() {
	defer func() {
		client.hub.unregister <- client
		client.conn.Close()
	}()

	for {
		if _, _, err := client.conn.ReadMessage(); err != nil {
			break
		}
	}
}

func (client *Client) writePump() {
	defer client.conn.Close()

	for event := range client.send {
		if err := client.conn.WriteJSON(event); err != nil {
			break
		}
	}
}
