package server

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

func dialHub(t *testing.T, ts *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(ts.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func waitForClients(t *testing.T, hub *ReloadHub, want int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for hub.ClientCount() != want {
		if time.Now().After(deadline) {
			t.Fatalf("ClientCount = %d, want %d", hub.ClientCount(), want)
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestReloadHubBroadcast(t *testing.T) {
	hub := NewReloadHub()
	ts := httptest.NewServer(http.HandlerFunc(hub.ServeWebSocket))
	defer ts.Close()

	a := dialHub(t, ts)
	b := dialHub(t, ts)
	waitForClients(t, hub, 2)

	hub.NotifyReload()
	assert.Equal(t, 1, hub.Generation())

	for _, conn := range []*websocket.Conn{a, b} {
		conn.SetReadDeadline(time.Now().Add(2 * time.Second))
		_, msg, err := conn.ReadMessage()
		require.NoError(t, err)
		assert.Equal(t, "reload", string(msg))
	}
}

func TestReloadHubDisconnect(t *testing.T) {
	hub := NewReloadHub()
	ts := httptest.NewServer(http.HandlerFunc(hub.ServeWebSocket))
	defer ts.Close()

	conn := dialHub(t, ts)
	waitForClients(t, hub, 1)

	conn.Close()
	waitForClients(t, hub, 0)
}

func TestReloadHubGenerationStartsAtZero(t *testing.T) {
	hub := NewReloadHub()
	assert.Equal(t, 0, hub.Generation())
	assert.Equal(t, 0, hub.ClientCount())
}
