package server

import (
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/vellum-dev/vellum/pkg/markup"
	"github.com/vellum-dev/vellum/pkg/render"
)

// reloadPath is where dev-mode pages connect for reload notices.
const reloadPath = "/.vellum/reload"

// ReloadHub tracks live-reload websocket connections and tells every
// connected page to refresh when the server restarts with new content.
type ReloadHub struct {
	mu         sync.RWMutex
	clients    map[*websocket.Conn]bool
	generation int
	upgrader   websocket.Upgrader
}

// NewReloadHub creates an empty hub.
func NewReloadHub() *ReloadHub {
	return &ReloadHub{
		clients: make(map[*websocket.Conn]bool),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true // dev only
			},
		},
	}
}

// ServeWebSocket upgrades the connection and parks it until the
// client goes away.
func (h *ReloadHub) ServeWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}

	h.mu.Lock()
	h.clients[conn] = true
	h.mu.Unlock()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	h.mu.Lock()
	delete(h.clients, conn)
	h.mu.Unlock()
	conn.Close()
}

// NotifyReload bumps the generation and tells every client to reload.
func (h *ReloadHub) NotifyReload() {
	h.mu.Lock()
	h.generation++
	h.mu.Unlock()
	h.broadcast([]byte("reload"))
}

// Generation returns the current reload generation.
func (h *ReloadHub) Generation() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.generation
}

// ClientCount returns the number of connected pages.
func (h *ReloadHub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *ReloadHub) broadcast(msg []byte) {
	h.mu.RLock()
	clients := make([]*websocket.Conn, 0, len(h.clients))
	for client := range h.clients {
		clients = append(clients, client)
	}
	h.mu.RUnlock()

	for _, client := range clients {
		if err := client.WriteMessage(websocket.TextMessage, msg); err != nil {
			h.mu.Lock()
			delete(h.clients, client)
			h.mu.Unlock()
			client.Close()
		}
	}
}

// reloadScript reconnects forever and reloads the page when the
// server comes back with a new generation.
const reloadScript = `(function() {
  var proto = location.protocol === "https:" ? "wss://" : "ws://";
  function connect(wasOpen) {
    var ws = new WebSocket(proto + location.host + "` + reloadPath + `");
    ws.onopen = function() { if (wasOpen) location.reload(); };
    ws.onmessage = function(ev) { if (ev.data === "reload") location.reload(); };
    ws.onclose = function() { setTimeout(function() { connect(true); }, 500); };
  }
  connect(false);
})();`

// withReloadScript returns a copy of doc whose head also carries the
// live-reload client script. The original document is not mutated.
func withReloadScript(doc *render.Document) *render.Document {
	script := markup.Script(markup.Raw(reloadScript))

	out := *doc
	if doc.Head != nil {
		out.Head = markup.Fragment(doc.Head, script)
	} else {
		out.Head = script
	}
	return &out
}
