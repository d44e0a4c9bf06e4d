package notifier

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const hubAddress = "0x71c7656ec7ab88b098defb751b7401b5f6d8976f"

var testUpgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// dialHub starts a server that registers every incoming connection under
// hubAddress and returns a connected client
func dialHub(t *testing.T, hub *Hub) *websocket.Conn {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := testUpgrader.Upgrade(w, r, nil)
		require.NoError(t, err)
		hub.Register(hubAddress, conn)
	}))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	client, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	// Wait for the server side to register
	require.Eventually(t, func() bool {
		return hub.Connected(hubAddress)
	}, time.Second, 10*time.Millisecond)

	return client
}

func TestHubDeliversToRegisteredSession(t *testing.T) {
	hub := NewHub()
	client := dialHub(t, hub)

	hub.Deliver(hubAddress, PushEnvelope{
		Type: "notification",
		Data: NotificationView{ID: 1, Message: "minted your post"},
	})

	_ = client.SetReadDeadline(time.Now().Add(time.Second))
	var envelope PushEnvelope
	require.NoError(t, client.ReadJSON(&envelope))
	assert.Equal(t, "notification", envelope.Type)
	assert.Equal(t, uint64(1), envelope.Data.ID)
	assert.Equal(t, "minted your post", envelope.Data.Message)
}

func TestHubDeliverWithoutSessionIsNoop(t *testing.T) {
	hub := NewHub()

	// Must not panic or block
	hub.Deliver(hubAddress, PushEnvelope{Type: "notification"})
	assert.False(t, hub.Connected(hubAddress))
}

func TestHubNewestConnectionWins(t *testing.T) {
	hub := NewHub()

	first := dialHub(t, hub)

	hub.mu.RLock()
	firstConn := hub.sessions[hubAddress].conn
	hub.mu.RUnlock()

	second := dialHub(t, hub)

	// Connected was already true, so wait for the session to actually swap
	require.Eventually(t, func() bool {
		hub.mu.RLock()
		defer hub.mu.RUnlock()
		return hub.sessions[hubAddress] != nil && hub.sessions[hubAddress].conn != firstConn
	}, time.Second, 10*time.Millisecond)

	hub.Deliver(hubAddress, PushEnvelope{
		Type: "notification",
		Data: NotificationView{ID: 2},
	})

	_ = second.SetReadDeadline(time.Now().Add(time.Second))
	var envelope PushEnvelope
	require.NoError(t, second.ReadJSON(&envelope))
	assert.Equal(t, uint64(2), envelope.Data.ID)

	// The replaced connection was closed by the hub
	_ = first.SetReadDeadline(time.Now().Add(time.Second))
	_, _, err := first.ReadMessage()
	assert.Error(t, err)
}

func TestHubUnregisterOnlyEvictsOwnConnection(t *testing.T) {
	hub := NewHub()

	first := dialHub(t, hub)
	_ = first

	// Simulate the replaced connection unregistering late
	hub.mu.RLock()
	current := hub.sessions[hubAddress].conn
	hub.mu.RUnlock()

	stale := &websocket.Conn{}
	hub.Unregister(hubAddress, stale)
	assert.True(t, hub.Connected(hubAddress))

	hub.Unregister(hubAddress, current)
	assert.False(t, hub.Connected(hubAddress))
}

func TestHubClose(t *testing.T) {
	hub := NewHub()
	client := dialHub(t, hub)

	hub.Close()
	assert.False(t, hub.Connected(hubAddress))

	_ = client.SetReadDeadline(time.Now().Add(time.Second))
	_, _, err := client.ReadMessage()
	assert.Error(t, err)
}
