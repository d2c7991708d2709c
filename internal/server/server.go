// Package server exposes the scroller over HTTP: status, message updates, a
// PNG of the current frame and a WebSocket stream of published frames.
package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/fkcurrie/ledscroll-golang/internal/preview"
	"github.com/fkcurrie/ledscroll-golang/internal/types"
	"github.com/fkcurrie/ledscroll-golang/pkg/frame"
	"github.com/fkcurrie/ledscroll-golang/pkg/scroll"
)

const requestTimeout = 10 * time.Second

// Source is what the server needs from the scheduler
type Source interface {
	Status() types.Status
	Snapshot() *frame.Frame
	SetMessage(msg []byte)
}

// Server represents the HTTP front end
type Server struct {
	source   Source
	renderer *preview.Renderer
	hub      *Hub
	upgrader websocket.Upgrader
	router   chi.Router
}

// New creates a server. Frames reach WebSocket clients through Hub().
func New(source Source, renderer *preview.Renderer) *Server {
	s := &Server{
		source:   source,
		renderer: renderer,
		hub:      NewHub(),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.NoCache)

	// The stream outlives any request timeout
	r.Get("/ws", s.handleWS)

	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(requestTimeout))
		r.Get("/health", s.handleHealth)
		r.Get("/status", s.handleStatus)
		r.Put("/message", s.handleMessage)
		r.Get("/frame.png", s.handleFrame)
	})
	s.router = r
	return s
}

// Hub returns the WebSocket hub
func (s *Server) Hub() *Hub {
	return s.hub
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe serves on addr until ctx is cancelled
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: requestTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", addr).Msg("http server listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server failed: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	s.hub.closeAll()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shutdown http server: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server failed: %w", err)
	}
	return nil
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(s.source.Status()); err != nil {
		log.Error().Err(err).Msg("failed to write status")
	}
}

// handleMessage replaces the message with the request body. Bytes beyond the
// scroller capacity are dropped, as is a trailing line break.
func (s *Server) handleMessage(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, scroll.Capacity+2))
	if err != nil {
		http.Error(w, "failed to read body", http.StatusBadRequest)
		return
	}
	body = bytes.TrimRight(body, "\r\n")
	if len(body) > scroll.Capacity {
		body = body[:scroll.Capacity]
	}

	s.source.SetMessage(body)
	log.Info().Str("message", string(body)).Msg("message updated over http")
	w.WriteHeader(http.StatusAccepted)
}

func (s *Server) handleFrame(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := s.renderer.WritePNG(&buf, s.source.Snapshot()); err != nil {
		log.Error().Err(err).Msg("failed to render frame")
		http.Error(w, "failed to render frame", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(buf.Bytes())
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}
	c := s.hub.add(conn)
	log.Debug().Str("remote", r.RemoteAddr).Msg("websocket client connected")

	go s.hub.writePump(c)
	go s.hub.readPump(c)
}
