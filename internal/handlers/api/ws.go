package api

import (
	"log/slog"
	"net/http"
	"sync"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"github.com/The-Night7/bofuri-mj/internal/entities"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Table clients connect from whatever host the GM serves the
	// sheet UI from.
	CheckOrigin: func(_ *http.Request) bool { return true },
}

// hub fans combat log entries out to watchers, one group of
// connections per encounter.
type hub struct {
	mu       sync.Mutex
	watchers map[string]map[*websocket.Conn]struct{}
}

func newHub() *hub {
	return &hub{watchers: make(map[string]map[*websocket.Conn]struct{})}
}

func (h *hub) add(encounterID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.watchers[encounterID] == nil {
		h.watchers[encounterID] = make(map[*websocket.Conn]struct{})
	}
	h.watchers[encounterID][conn] = struct{}{}
}

func (h *hub) remove(encounterID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.watchers[encounterID], conn)
	if len(h.watchers[encounterID]) == 0 {
		delete(h.watchers, encounterID)
	}
}

// broadcast sends the record to every watcher of the encounter.
// Connections that fail to write are dropped.
func (h *hub) broadcast(encounterID string, record entities.ActionRecord) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.watchers[encounterID] {
		if err := conn.WriteJSON(record); err != nil {
			slog.Warn("dropping watcher",
				"encounter_id", encounterID,
				"error", err)
			_ = conn.Close()
			delete(h.watchers[encounterID], conn)
		}
	}
}

// close disconnects every watcher of a finished encounter.
func (h *hub) close(encounterID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.watchers[encounterID] {
		_ = conn.Close()
	}
	delete(h.watchers, encounterID)
}

func (h *Handler) handleWatch(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Warn("websocket upgrade failed", "error", err)
		return
	}
	h.hub.add(id, conn)
	defer func() {
		h.hub.remove(id, conn)
		_ = conn.Close()
	}()

	// Watchers only receive; reads just detect disconnects.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
