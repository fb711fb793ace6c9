package events

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	httperrors "github.com/gokatarajesh/trivia-api/pkg/http/errors"
	ws "github.com/gokatarajesh/trivia-api/pkg/http/ws"
)

// FeedHandler serves GET /ws/questions. Clients receive question events and
// may send ping messages; anything else is answered with an error message.
type FeedHandler struct {
	hub      *ws.Hub
	upgrader websocket.Upgrader
	logger   zerolog.Logger
}

// NewFeedHandler builds the feed endpoint. A nil hub disables the feed.
func NewFeedHandler(hub *ws.Hub, allowedOrigins []string, logger zerolog.Logger) *FeedHandler {
	return &FeedHandler{
		hub: hub,
		upgrader: websocket.Upgrader{
			CheckOrigin:     originChecker(allowedOrigins),
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		logger: logger.With().Str("component", "question_feed").Logger(),
	}
}

func (h *FeedHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.hub == nil {
		httperrors.RespondServiceUnavailable(w)
		return
	}
	if r.Method != http.MethodGet {
		httperrors.RespondMethodNotAllowed(w)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written the HTTP error.
		h.logger.Debug().Err(err).Msg("websocket upgrade failed")
		return
	}

	id := uuid.New()
	client := ws.NewConnection(conn, h.logger.With().Str("conn_id", id.String()).Logger())
	h.hub.Register(id, client)
	defer h.hub.Unregister(id)

	go client.WritePump()
	client.ReadPump(func(msg ws.Message) error {
		if msg.Type == ws.TypePing {
			return client.Send(ws.Message{Type: ws.TypePong, RequestID: msg.RequestID})
		}
		reply, err := ws.NewMessage(ws.TypeError, ws.ErrorPayload{
			Code:    "unknown_message_type",
			Message: "the question feed only accepts ping messages",
		})
		if err != nil {
			return err
		}
		reply.RequestID = msg.RequestID
		return client.Send(reply)
	})
}

func originChecker(allowed []string) func(r *http.Request) bool {
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		for _, o := range allowed {
			if o == "*" || o == origin {
				return true
			}
		}
		return false
	}
}
