package ws

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
)

var testUpgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// dialTestConn spins up a server that registers the accepted connection
// in the hub and returns the client side.
func dialTestConn(t *testing.T, hub *Hub, userID uint) *websocket.Conn {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := testUpgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade failed: %v", err)
			return
		}
		hub.Register(userID, conn)
	}))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	client, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial failed: %v", err)
	}
	t.Cleanup(func() { client.Close() })
	return client
}

func TestSendToUserDeliversToAllConnections(t *testing.T) {
	hub := NewHub()
	first := dialTestConn(t, hub, 7)
	second := dialTestConn(t, hub, 7)

	waitForConnections(t, hub, 7, 2)

	err := hub.SendToUser(7, Message{Event: "notification", Data: map[string]string{"title": "hi"}})
	assert.NoError(t, err)

	for _, client := range []*websocket.Conn{first, second} {
		client.SetReadDeadline(time.Now().Add(2 * time.Second))
		_, raw, err := client.ReadMessage()
		assert.NoError(t, err)

		var msg Message
		assert.NoError(t, json.Unmarshal(raw, &msg))
		assert.Equal(t, "notification", msg.Event)
	}
}

func TestSendToUserWithoutConnections(t *testing.T) {
	hub := NewHub()
	// No connections is not an error.
	assert.NoError(t, hub.SendToUser(99, Message{Event: "notification"}))
}

func TestUnregisterDropsConnection(t *testing.T) {
	hub := NewHub()
	dialTestConn(t, hub, 7)
	waitForConnections(t, hub, 7, 1)

	hub.mu.Lock()
	conn := hub.clients[7][0]
	hub.mu.Unlock()

	hub.Unregister(7, conn)
	assert.Equal(t, 0, hub.ConnectionCount(7))
}

// waitForConnections blocks until the server side of each dial has
// registered, since Register runs in the handler goroutine.
func waitForConnections(t *testing.T, hub *Hub, userID uint, want int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for hub.ConnectionCount(userID) < want {
		if time.Now().After(deadline) {
			t.Fatalf("expected %d connections for user %d, have %d", want, userID, hub.ConnectionCount(userID))
		}
		time.Sleep(10 * time.Millisecond)
	}
}
