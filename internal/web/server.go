// Package web serves the public site and the anonymous message
// intake API.
package web

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/KOSMOS-DESIGN/kosmos-design/internal/config"
	"github.com/KOSMOS-DESIGN/kosmos-design/internal/logger"
	"github.com/KOSMOS-DESIGN/kosmos-design/internal/texts"
	"github.com/KOSMOS-DESIGN/kosmos-design/internal/tokens"
)

// Server is the public-facing HTTP server: static pages plus the
// form submission endpoint that hands messages off to Telegram.
type Server struct {
	httpServer  *http.Server
	tokens      *tokens.Store
	botUsername string
	publicDir   string
	mediaDir    string
}

type submitRequest struct {
	Message string `json:"message"`
}

type submitResponse struct {
	Success      bool   `json:"success"`
	Token        string `json:"token,omitempty"`
	TelegramLink string `json:"telegram_link,omitempty"`
	Message      string `json:"message,omitempty"`
	Error        string `json:"error,omitempty"`
}

// NewServer builds the server with its routes
func NewServer(cfg *config.Config, tokenStore *tokens.Store) *Server {
	s := &Server{
		tokens:      tokenStore,
		botUsername: cfg.Bot.Username,
		publicDir:   cfg.Server.PublicDir,
		mediaDir:    cfg.Server.MediaDir,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger)

	r.Post("/api/submit-message", s.handleSubmit)

	r.Get("/", s.servePage("index.html"))
	r.Get("/portfolio", s.servePage("portfolio.html"))
	r.Get("/about", s.servePage("about.html"))
	r.Get("/mission-control", s.servePage("mission-control.html"))

	fileServer(r, "/public", http.Dir(s.publicDir))
	fileServer(r, "/media", http.Dir(s.mediaDir))

	// Unknown paths go back to the landing page
	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, "/", http.StatusFound)
	})

	s.httpServer = &http.Server{
		Addr:         cfg.Server.ListenAddr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}
	return s
}

// Start starts the server, blocking until shutdown
func (s *Server) Start() error {
	logger.Infof("Starting public web server on %s", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// handleSubmit accepts a form message, parks it under a one-time
// token and returns the Telegram deep link that redeems it.
func (s *Server) handleSubmit(w http.ResponseWriter, req *http.Request) {
	var body submitRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, submitResponse{Success: false, Error: texts.WebBadRequest})
		return
	}

	text := strings.TrimSpace(body.Message)
	if text == "" {
		writeJSON(w, http.StatusBadRequest, submitResponse{Success: false, Error: texts.WebEmptyMessage})
		return
	}

	token := s.tokens.Put(text)
	link := fmt.Sprintf("https://t.me/%s?start=%s", s.botUsername, token)

	logger.Infof("Form submission parked under token %s (%d pending)", token, s.tokens.Len())

	writeJSON(w, http.StatusOK, submitResponse{
		Success:      true,
		Token:        token,
		TelegramLink: link,
		Message:      texts.WebSubmitted,
	})
}

func (s *Server) servePage(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		http.ServeFile(w, req, filepath.Join(s.publicDir, name))
	}
}

// fileServer mounts a static directory under a route prefix
func fileServer(r chi.Router, path string, root http.FileSystem) {
	fs := http.StripPrefix(path, http.FileServer(root))
	r.Get(path+"/*", func(w http.ResponseWriter, req *http.Request) {
		fs.ServeHTTP(w, req)
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Warningf("Error writing response: %v", err)
	}
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, req)
		logger.Debugf("%s %s (%s)", req.Method, req.URL.Path, time.Since(start))
	})
}
