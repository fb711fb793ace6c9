package events

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gokatarajesh/trivia-api/internal/question"
	ws "github.com/gokatarajesh/trivia-api/pkg/http/ws"
)

func startFeed(t *testing.T, hub *ws.Hub) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(NewFeedHandler(hub, []string{"*"}, zerolog.New(io.Discard)))
	t.Cleanup(srv.Close)
	return srv
}

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readMessage(t *testing.T, conn *websocket.Conn) ws.Message {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var msg ws.Message
	require.NoError(t, conn.ReadJSON(&msg))
	return msg
}

func TestBroadcasterForwardsEventsToFeedClients(t *testing.T) {
	hub := ws.NewHub(zerolog.New(io.Discard))
	srv := startFeed(t, hub)
	first := dial(t, srv)
	second := dial(t, srv)

	require.Eventually(t, func() bool { return hub.Count() == 2 }, 2*time.Second, 10*time.Millisecond)

	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	payload, err := json.Marshal(question.Event{Type: question.EventQuestionCreated, QuestionID: 20, CategoryID: 3, At: at})
	require.NoError(t, err)

	b := NewBroadcaster(nil, hub, "", zerolog.New(io.Discard))
	b.forward(string(payload))

	for _, conn := range []*websocket.Conn{first, second} {
		msg := readMessage(t, conn)
		assert.Equal(t, ws.TypeQuestionEvent, msg.Type)

		var evt question.Event
		require.NoError(t, json.Unmarshal(msg.Payload, &evt))
		assert.Equal(t, question.EventQuestionCreated, evt.Type)
		assert.Equal(t, int64(20), evt.QuestionID)
		assert.Equal(t, int64(3), evt.CategoryID)
		assert.True(t, at.Equal(evt.At))
	}
}

func TestBroadcasterDropsMalformedPayload(t *testing.T) {
	hub := ws.NewHub(zerolog.New(io.Discard))
	b := NewBroadcaster(nil, hub, "", zerolog.New(io.Discard))
	assert.NotPanics(t, func() { b.forward("{not json") })
}

func TestBroadcasterRunWithoutRedisReturns(t *testing.T) {
	b := NewBroadcaster(nil, ws.NewHub(zerolog.New(io.Discard)), "", zerolog.New(io.Discard))
	assert.NoError(t, b.Run(context.Background()))
}

func TestFeedAnswersPing(t *testing.T) {
	hub := ws.NewHub(zerolog.New(io.Discard))
	conn := dial(t, startFeed(t, hub))

	require.NoError(t, conn.WriteJSON(ws.Message{Type: ws.TypePing, RequestID: "r-1"}))
	msg := readMessage(t, conn)
	assert.Equal(t, ws.TypePong, msg.Type)
	assert.Equal(t, "r-1", msg.RequestID)

	require.NoError(t, conn.WriteJSON(ws.Message{Type: "subscribe", RequestID: "r-2"}))
	msg = readMessage(t, conn)
	assert.Equal(t, ws.TypeError, msg.Type)
	assert.Equal(t, "r-2", msg.RequestID)
}

func TestFeedUnregistersOnDisconnect(t *testing.T) {
	hub := ws.NewHub(zerolog.New(io.Discard))
	conn := dial(t, startFeed(t, hub))
	require.Eventually(t, func() bool { return hub.Count() == 1 }, 2*time.Second, 10*time.Millisecond)

	conn.Close()
	assert.Eventually(t, func() bool { return hub.Count() == 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestFeedDisabledWithoutHub(t *testing.T) {
	rec := httptest.NewRecorder()
	NewFeedHandler(nil, nil, zerolog.New(io.Discard)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ws/questions", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestOriginChecker(t *testing.T) {
	check := originChecker([]string{"http://localhost:3000"})

	req := httptest.NewRequest(http.MethodGet, "/ws/questions", nil)
	assert.True(t, check(req), "same-origin requests carry no Origin header")

	req.Header.Set("Origin", "http://localhost:3000")
	assert.True(t, check(req))

	req.Header.Set("Origin", "http://evil.example")
	assert.False(t, check(req))
}

func TestPublisherWithoutRedisIsNoop(t *testing.T) {
	var p *Publisher
	assert.NoError(t, p.Publish(context.Background(), question.Event{Type: question.EventQuestionDeleted}))

	p = NewPublisher(nil, "", zerolog.New(io.Discard))
	assert.Equal(t, defaultChannel, p.channel)
	assert.NoError(t, p.Publish(context.Background(), question.Event{Type: question.EventQuestionDeleted}))
}
