package httpserver

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

const wsIdlePingInterval = 30 * time.Second

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

// handleStream polls the session once per frame and pushes a "state" message
// whenever its version moves. Clients never have to poll /api/state while the
// computer thinks.
func (h *Handler) handleStream(w http.ResponseWriter, r *http.Request) {
	s, err := h.games.Get(r.URL.Query().Get("game_id"))
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Debugw("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	// Reads only detect the client going away.
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	frame := time.NewTicker(h.pollInterval)
	defer frame.Stop()
	ping := mustMarshal(wsMessage{Type: "ping"})
	lastWrite := time.Now()
	var version uint64
	first := true

	for {
		snap := s.Poll()
		if first || snap.Version != version {
			msg := mustMarshal(wsMessage{Type: "state", Payload: mustMarshal(snapshotToDTO(snap))})
			if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
			version, first, lastWrite = snap.Version, false, time.Now()
		} else if time.Since(lastWrite) >= wsIdlePingInterval {
			if err := conn.WriteMessage(websocket.TextMessage, ping); err != nil {
				return
			}
			lastWrite = time.Now()
		}

		select {
		case <-closed:
			return
		case <-frame.C:
		}
	}
}
