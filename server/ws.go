package server

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"patzer/position"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// wsRequest is what clients send over a game socket: select carries
// square, move carries from and to, auto carries nothing.
type wsRequest struct {
	Type   string `json:"type"`
	Square string `json:"square"`
	From   string `json:"from"`
	To     string `json:"to"`
}

func (s *Server) handleWebSocket(c *gin.Context) {
	sess, ok := s.lookup(c)
	if !ok {
		return
	}
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		s.logger("websocket upgrade failed:", err)
		return
	}
	defer func() {
		sess.mu.Lock()
		delete(sess.clients, conn)
		sess.mu.Unlock()
		_ = conn.Close()
	}()

	sess.mu.Lock()
	sess.clients[conn] = struct{}{}
	snap := sess.game.Snapshot()
	err = conn.WriteJSON(wsMessage{Type: "state", State: &snap})
	sess.mu.Unlock()
	if err != nil {
		return
	}

	for {
		var req wsRequest
		if err := conn.ReadJSON(&req); err != nil {
			return
		}
		sess.dispatch(conn, req)
	}
}

func (sess *session) dispatch(conn *websocket.Conn, req wsRequest) {
	sess.mu.Lock()
	defer sess.mu.Unlock()

	fail := func(format string, a ...any) {
		_ = conn.WriteJSON(wsMessage{Type: "error", Error: fmt.Sprintf(format, a...)})
	}

	switch req.Type {
	case "select":
		sq, err := position.NewSquareFromNotation(req.Square)
		if err != nil {
			fail("bad square %q", req.Square)
			return
		}
		if cur, selected := sess.game.Selected(); selected && cur == sq {
			sess.game.Deselect()
			sess.broadcastLocked()
			return
		}
		if !sess.game.Select(sq) {
			fail("cannot select %s", sq.Notation())
			return
		}
		sess.broadcastLocked()
	case "move":
		from, err := position.NewSquareFromNotation(req.From)
		if err != nil {
			fail("bad square %q", req.From)
			return
		}
		to, err := position.NewSquareFromNotation(req.To)
		if err != nil {
			fail("bad square %q", req.To)
			return
		}
		if !sess.game.Select(from) {
			fail("cannot select %s", from.Notation())
			return
		}
		if !sess.game.Move(to) {
			sess.game.Deselect()
			fail("illegal move to %s", to.Notation())
			return
		}
		if sess.game.AutomatedToMove() {
			sess.game.AutoMove()
		}
		sess.broadcastLocked()
	case "auto":
		if !sess.game.AutoMove() {
			fail("no legal moves")
			return
		}
		sess.broadcastLocked()
	default:
		fail("unknown message type %q", req.Type)
	}
}
