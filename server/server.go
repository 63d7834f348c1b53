package server

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/exp/maps"

	"patzer/game"
	"patzer/position"
	"patzer/render"
)

// DefaultLogger prints events through the standard log package.
func DefaultLogger(a ...any) {
	log.Println(a...)
}

// Server hosts games over a JSON API and websockets. Every game lives in
// its own session keyed by a generated id, and on single player games the
// automated side answers within the same request.
type Server struct {
	mu       sync.Mutex
	sessions map[string]*session
	logger   func(...any)

	srvMu sync.Mutex
	srv   *http.Server
}

type ServerOption func(*Server)

// WithLogger replaces the event logger.
func WithLogger(logger func(...any)) ServerOption {
	return func(s *Server) {
		s.logger = logger
	}
}

func NewServer(opts ...ServerOption) *Server {
	s := &Server{
		sessions: make(map[string]*session),
		logger:   DefaultLogger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Router builds the gin engine with every route attached.
func (s *Server) Router() *gin.Engine {
	r := gin.Default()

	api := r.Group("/api")
	api.POST("/games", s.handleCreate)
	api.GET("/games", s.handleList)
	api.GET("/games/:id", s.handleState)
	api.DELETE("/games/:id", s.handleDelete)
	api.POST("/games/:id/select", s.handleSelect)
	api.POST("/games/:id/move", s.handleMove)
	api.POST("/games/:id/auto", s.handleAuto)
	api.POST("/games/:id/save", s.handleSave)
	api.POST("/games/:id/load", s.handleLoad)
	api.GET("/games/:id/svg", s.handleSVG)
	api.GET("/games/:id/ws", s.handleWebSocket)
	return r
}

// Listen serves the API on addr until Close is called or the listener
// fails.
func (s *Server) Listen(addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	s.srvMu.Lock()
	s.srv = srv
	s.srvMu.Unlock()
	defer func() {
		s.srvMu.Lock()
		s.srv = nil
		s.srvMu.Unlock()
	}()

	s.logger(fmt.Sprintf("listening on %s", addr))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Close shuts the listener down gracefully.
func (s *Server) Close(ctx context.Context) error {
	s.srvMu.Lock()
	srv := s.srv
	s.srvMu.Unlock()
	if srv == nil {
		return nil
	}
	return srv.Shutdown(ctx)
}

type createRequest struct {
	Mode string `json:"mode" binding:"required"`
}

type squareRequest struct {
	Square string `json:"square" binding:"required"`
}

type fileRequest struct {
	Path string `json:"path"`
}

func (s *Server) handleCreate(c *gin.Context) {
	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	mode, err := game.NewModeFromName(req.Mode)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sess := newSession(uuid.NewString(), game.NewGame(mode))
	s.mu.Lock()
	s.sessions[sess.id] = sess
	s.mu.Unlock()

	c.JSON(http.StatusCreated, gin.H{"id": sess.id, "state": sess.game.Snapshot()})
}

func (s *Server) handleList(c *gin.Context) {
	s.mu.Lock()
	ids := maps.Keys(s.sessions)
	s.mu.Unlock()
	sort.Strings(ids)

	c.JSON(http.StatusOK, gin.H{"games": ids})
}

func (s *Server) handleState(c *gin.Context) {
	sess, ok := s.lookup(c)
	if !ok {
		return
	}
	sess.mu.Lock()
	snap := sess.game.Snapshot()
	sess.mu.Unlock()

	c.JSON(http.StatusOK, gin.H{"id": sess.id, "state": snap})
}

func (s *Server) handleDelete(c *gin.Context) {
	s.mu.Lock()
	sess, ok := s.sessions[c.Param("id")]
	delete(s.sessions, c.Param("id"))
	s.mu.Unlock()
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown game"})
		return
	}

	sess.mu.Lock()
	sess.closeLocked()
	sess.mu.Unlock()

	c.Status(http.StatusNoContent)
}

func (s *Server) handleSelect(c *gin.Context) {
	sess, ok := s.lookup(c)
	if !ok {
		return
	}
	sq, ok := s.bindSquare(c)
	if !ok {
		return
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	// picking the selected square again puts it down
	if cur, selected := sess.game.Selected(); selected && cur == sq {
		sess.game.Deselect()
		c.JSON(http.StatusOK, gin.H{"id": sess.id, "state": sess.game.Snapshot()})
		return
	}
	if !sess.game.Select(sq) {
		c.JSON(http.StatusConflict, gin.H{"error": fmt.Sprintf("cannot select %s", sq.Notation())})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": sess.id, "state": sess.game.Snapshot()})
}

func (s *Server) handleMove(c *gin.Context) {
	sess, ok := s.lookup(c)
	if !ok {
		return
	}
	sq, ok := s.bindSquare(c)
	if !ok {
		return
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if !sess.game.Move(sq) {
		c.JSON(http.StatusConflict, gin.H{"error": fmt.Sprintf("illegal move to %s", sq.Notation())})
		return
	}
	if sess.game.AutomatedToMove() {
		sess.game.AutoMove()
	}
	sess.broadcastLocked()
	c.JSON(http.StatusOK, gin.H{"id": sess.id, "state": sess.game.Snapshot()})
}

func (s *Server) handleAuto(c *gin.Context) {
	sess, ok := s.lookup(c)
	if !ok {
		return
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if !sess.game.AutoMove() {
		c.JSON(http.StatusConflict, gin.H{"error": "no legal moves"})
		return
	}
	sess.broadcastLocked()
	c.JSON(http.StatusOK, gin.H{"id": sess.id, "state": sess.game.Snapshot()})
}

func (s *Server) handleSave(c *gin.Context) {
	sess, ok := s.lookup(c)
	if !ok {
		return
	}
	path := s.bindPath(c)

	sess.mu.Lock()
	err := sess.game.Save(path)
	sess.mu.Unlock()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": sess.id, "path": path})
}

func (s *Server) handleLoad(c *gin.Context) {
	sess, ok := s.lookup(c)
	if !ok {
		return
	}
	path := s.bindPath(c)

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if err := sess.game.Load(path); err != nil {
		switch {
		case errors.Is(err, os.ErrNotExist):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, game.ErrInvalidSave):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	sess.broadcastLocked()
	c.JSON(http.StatusOK, gin.H{"id": sess.id, "state": sess.game.Snapshot()})
}

func (s *Server) handleSVG(c *gin.Context) {
	sess, ok := s.lookup(c)
	if !ok {
		return
	}
	sess.mu.Lock()
	snap := sess.game.Snapshot()
	sess.mu.Unlock()

	var buf bytes.Buffer
	render.SVG(&buf, snap)
	c.Data(http.StatusOK, "image/svg+xml", buf.Bytes())
}

func (s *Server) lookup(c *gin.Context) (*session, bool) {
	s.mu.Lock()
	sess, ok := s.sessions[c.Param("id")]
	s.mu.Unlock()
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown game"})
	}
	return sess, ok
}

func (s *Server) bindSquare(c *gin.Context) (position.Square, bool) {
	var req squareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return position.Square{}, false
	}
	sq, err := position.NewSquareFromNotation(req.Square)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return position.Square{}, false
	}
	return sq, true
}

// bindPath reads the optional request body; an absent path falls back to
// the default save file.
func (s *Server) bindPath(c *gin.Context) string {
	var req fileRequest
	_ = c.ShouldBindJSON(&req)
	if req.Path == "" {
		return game.DefaultSaveFile
	}
	return req.Path
}
