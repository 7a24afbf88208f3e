// Package server exposes single-title generation over a small JSON API, for
// previewing prompt/template changes without running the whole batch.
package server

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"io/fs"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"auto_blog_generator/generator"
	"auto_blog_generator/writer"
)

//go:embed web/dist web/dist/*
var embeddedStatic embed.FS

// Article is one generated preview, kept in memory only.
type Article struct {
	Title     string    `json:"title"`
	Slug      string    `json:"slug"`
	HTML      string    `json:"html"`
	CreatedAt time.Time `json:"created_at"`
}

type Server struct {
	agent    *generator.Agent
	store    *articleStore
	staticFS http.Handler
}

type articleStore struct {
	mu       sync.Mutex
	articles map[string]Article
}

func newStore() *articleStore {
	return &articleStore{articles: make(map[string]Article)}
}

func (s *articleStore) set(slug string, a Article) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.articles[slug] = a
}

func (s *articleStore) get(slug string) (Article, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.articles[slug]
	return a, ok
}

func New(agent *generator.Agent) (*Server, error) {
	if agent == nil {
		return nil, errors.New("generator agent required")
	}

	sub, err := fs.Sub(embeddedStatic, "web/dist")
	if err != nil {
		return nil, err
	}

	return &Server{
		agent:    agent,
		store:    newStore(),
		staticFS: http.FileServer(http.FS(sub)),
	}, nil
}

func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/articles", s.handleArticleCreate)
	mux.HandleFunc("/api/articles/", s.handleArticleBySlug)
	mux.Handle("/", s.staticHandler())
	return logMiddleware(mux)
}

func (s *Server) staticHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/api/") {
			http.NotFound(w, r)
			return
		}
		// FileServer serves index.html for directory requests itself;
		// rewriting "/" to "/index.html" would hit its canonical redirect
		// back to "./" and loop.
		s.staticFS.ServeHTTP(w, r)
	})
}

// --- Handlers ---

type articleCreateReq struct {
	Title string `json:"title"`
}

func (s *Server) handleArticleCreate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req articleCreateReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	title := strings.TrimSpace(req.Title)
	if title == "" {
		http.Error(w, "title is required", http.StatusBadRequest)
		return
	}

	// Generation may retry on the backlink gate, so the budget is generous.
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Minute)
	defer cancel()

	html, err := s.agent.Generate(ctx, title)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}

	art := Article{
		Title:     title,
		Slug:      writer.Slugify(title),
		HTML:      html,
		CreatedAt: time.Now(),
	}
	s.store.set(art.Slug, art)
	writeJSON(w, art)
}

func (s *Server) handleArticleBySlug(w http.ResponseWriter, r *http.Request) {
	slug := strings.TrimPrefix(r.URL.Path, "/api/articles/")
	if slug == "" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	art, ok := s.store.get(slug)
	if !ok {
		http.Error(w, "article not found", http.StatusNotFound)
		return
	}
	writeJSON(w, art)
}

// --- Helpers ---

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func logMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("[http] %s %s %s", r.Method, r.URL.Path, time.Since(start))
	})
}
