package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/quizboard/quizboard-backend/internal/config"
	ws "github.com/quizboard/quizboard-backend/internal/websocket"
)

// buildUpgrader creates a WebSocket upgrader with origin validation.
// An empty allowedOrigins slice permits all origins (development mode).
func buildUpgrader(allowedOrigins []string) websocket.Upgrader {
	return websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			if len(allowedOrigins) == 0 {
				return true
			}
			origin := r.Header.Get("Origin")
			for _, allowed := range allowedOrigins {
				if strings.EqualFold(allowed, origin) {
					return true
				}
			}
			return false
		},
	}
}

// WSHandler streams game events to spectator dashboards.
type WSHandler struct {
	rdb      *redis.Client
	log      zerolog.Logger
	upgrader websocket.Upgrader
}

// NewWSHandler creates a new WSHandler.
func NewWSHandler(rdb *redis.Client, log zerolog.Logger, allowedOrigins []string) *WSHandler {
	return &WSHandler{
		rdb:      rdb,
		log:      log.With().Str("component", "ws_handler").Logger(),
		upgrader: buildUpgrader(allowedOrigins),
	}
}

// GameStream godoc
// WS /ws/v1/game/stream
// Upgrades to WebSocket and forwards every event published on the game
// events channel. The stream is read-only; clients may only ping.
func (h *WSHandler) GameStream(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warn().Err(err).Msg("WebSocket upgrade failed")
		return
	}
	defer conn.Close()

	ctx := c.Request.Context()
	pubsub := h.rdb.Subscribe(ctx, config.StateKey.GameEventsChannel())
	defer pubsub.Close()

	// Reader goroutine: consume pings, detect close.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			var envelope ws.RequestEnvelope
			if err := ws.ReadJSON(conn, &envelope); err != nil {
				return
			}
			if envelope.Action == ws.ActionPing {
				if err := ws.WriteTyped(conn, ws.PongResponse{Event: ws.EventPong}); err != nil {
					return
				}
			}
		}
	}()

	ch := pubsub.Channel()
	for {
		select {
		case <-done:
			return
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			if err := ws.WriteRaw(conn, []byte(msg.Payload)); err != nil {
				h.log.Debug().Err(err).Msg("Spectator write failed, closing")
				return
			}
		}
	}
}
