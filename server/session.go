package server

import (
	"sync"

	"github.com/gorilla/websocket"

	"patzer/game"
)

// session is one hosted game plus the sockets watching it. mu serializes
// game access, the client set, and every socket write.
type session struct {
	id   string
	game *game.Game

	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}
}

func newSession(id string, g *game.Game) *session {
	return &session{
		id:      id,
		game:    g,
		clients: make(map[*websocket.Conn]struct{}),
	}
}

// wsMessage is the envelope pushed over game sockets.
type wsMessage struct {
	Type  string         `json:"type"`
	Error string         `json:"error,omitempty"`
	State *game.Snapshot `json:"state,omitempty"`
}

// broadcastLocked pushes the current state to every watcher, dropping
// sockets that fail. Callers hold mu.
func (s *session) broadcastLocked() {
	snap := s.game.Snapshot()
	for conn := range s.clients {
		if err := conn.WriteJSON(wsMessage{Type: "state", State: &snap}); err != nil {
			delete(s.clients, conn)
			_ = conn.Close()
		}
	}
}

// closeLocked disconnects every watcher. Callers hold mu.
func (s *session) closeLocked() {
	for conn := range s.clients {
		_ = conn.Close()
	}
	s.clients = make(map[*websocket.Conn]struct{})
}
