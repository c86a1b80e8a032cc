package server

import (
	"context"
	"net/http"
	"time"

	"github.com/iorran/impostor/internal/config"

	"gorm.io/gorm"
)

type Server struct {
	store *Store
	db    *gorm.DB
	ws    *wsHub
	cfg   config.Config
}

func New(conn *gorm.DB, cfg config.Config) *Server {
	return &Server{
		store: NewStore(cfg.CodeAttempts),
		db:    conn,
		ws:    newWSHub(),
		cfg:   cfg,
	}
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/rooms", s.handleCreateRoom)
	mux.HandleFunc("GET /api/rooms", s.handleListRooms)
	mux.HandleFunc("GET /api/rooms/", s.handleRoomSubroutes)
	mux.HandleFunc("POST /api/rooms/", s.handleRoomSubroutes)
	mux.HandleFunc("GET /api/categories", s.handleCategories)
	mux.HandleFunc("GET /ws/rooms/", s.handleWebsocket)
	return mux
}

// backendContext bounds a row-store call; on expiry the operation surfaces
// ErrBackendUnavailable instead of blocking.
func (s *Server) backendContext() (context.Context, context.CancelFunc) {
	timeout := time.Duration(s.cfg.BackendTimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return context.WithTimeout(context.Background(), timeout)
}
