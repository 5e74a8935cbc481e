// Package server exposes the formatter over HTTP.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/toyinlola/fmtai/pkg/formatter"
	"github.com/toyinlola/fmtai/pkg/interfaces"
)

// MaxBodyBytes caps the size of a format request body.
const MaxBodyBytes = 1 << 20

// Formatter is the subset of formatter.Formatter the server needs.
type Formatter interface {
	Format(ctx context.Context, req interfaces.FormatRequest) (*interfaces.FormatResult, error)
	Available(ctx context.Context) bool
}

// errorResponse is the JSON body returned for failed requests.
type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Server serves the format API.
type Server struct {
	svc      Formatter
	defaults interfaces.FormatConfig
	mux      *http.ServeMux
}

// New creates a Server. defaults fills config fields a request leaves out.
func New(f Formatter, defaults interfaces.FormatConfig) *Server {
	s := &Server{svc: f, defaults: defaults, mux: http.NewServeMux()}
	s.mux.HandleFunc("POST /api/format", s.handleFormat)
	s.mux.HandleFunc("GET /api/languages", s.handleLanguages)
	s.mux.HandleFunc("GET /healthz", s.handleHealth)
	return s
}

// Handler returns the HTTP handler with CORS applied.
func (s *Server) Handler() http.Handler {
	return CORS(s.mux)
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("server: listening on %s: %w", addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server listening", "addr", ln.Addr().String())
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server: %w", err)
	case <-ctx.Done():
		slog.Info("server shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server: shutdown: %w", err)
		}
		return nil
	}
}

func (s *Server) handleFormat(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodyBytes)

	req := interfaces.FormatRequest{Config: s.defaults}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid json body", Message: err.Error()})
		return
	}

	res, err := s.svc.Format(r.Context(), req)
	if err != nil {
		var vErr *formatter.ValidationError
		if errors.As(err, &vErr) {
			msg := vErr.Msg
			if vErr.Field == "code" || vErr.Field == "language" {
				msg = "Missing required fields: code and language"
			}
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: msg})
			return
		}

		slog.Error("format request failed", "language", req.Language, "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{
			Error:   "Failed to format code",
			Message: err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleLanguages(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, interfaces.Languages)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	status := map[string]any{"ok": true}
	if r.URL.Query().Get("upstream") == "1" {
		up := s.svc.Available(r.Context())
		status["upstream"] = up
		if !up {
			writeJSON(w, http.StatusServiceUnavailable, status)
			return
		}
	}
	writeJSON(w, http.StatusOK, status)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Debug("server: writing response", "error", err)
	}
}

// CORS allows browser callers from any origin.
func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := strings.TrimSpace(r.Header.Get("Origin"))
		if origin != "" {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Vary", "Origin")
		} else {
			w.Header().Set("Access-Control-Allow-Origin", "*")
		}
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Accept, Content-Type, Content-Length")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
