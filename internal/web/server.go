// Package web serves the local editing UI: a static single page plus a
// JSON API that is a thin adapter over the shared card operations.
package web

import (
	"embed"
	"encoding/json"
	"errors"
	"io/fs"
	"log"
	"net/http"
	"strconv"

	"github.com/cardctl/cardctl/internal/assets"
	"github.com/cardctl/cardctl/internal/cards"
	"github.com/cardctl/cardctl/internal/config"
	"github.com/cardctl/cardctl/internal/git"
	"github.com/cardctl/cardctl/internal/store"
)

//go:embed static
var staticFiles embed.FS

// Server is the HTTP front end. Every request loads the card file
// fresh and rewrites it whole; there is no in-process state between
// requests, so the last writer wins.
type Server struct {
	site   config.Site
	store  *store.Store
	runner git.Runner
}

// NewServer builds a server for the given site. The runner backs the
// publish endpoint and is swappable for tests.
func NewServer(site config.Site, runner git.Runner) *Server {
	return &Server{
		site:   site,
		store:  store.New(site.CardsFile()),
		runner: runner,
	}
}

// Handler constructs the route table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	staticFS, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(err)
	}
	mux.Handle("GET /{$}", http.FileServerFS(staticFS))
	mux.Handle("GET /assets/", http.StripPrefix("/assets/", http.FileServer(http.Dir(s.site.AssetsDir()))))

	mux.HandleFunc("GET /api/cards", s.handleCardsList)
	mux.HandleFunc("POST /api/cards", s.handleCardsAdd)
	mux.HandleFunc("PUT /api/cards/{index}", s.handleCardsUpdate)
	mux.HandleFunc("DELETE /api/cards/{index}", s.handleCardsDelete)
	mux.HandleFunc("POST /api/cards/reorder", s.handleCardsReorder)
	mux.HandleFunc("POST /api/publish", s.handlePublish)
	mux.HandleFunc("GET /api/images", s.handleImages)

	return logRequests(mux)
}

// ListenAndServe starts the server on addr and blocks.
func (s *Server) ListenAndServe(addr string) error {
	log.Printf("editing %s", s.store.Path)
	log.Printf("listening on http://%s", addr)
	return http.ListenAndServe(addr, s.Handler())
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Printf("%s %s", r.Method, r.URL.Path)
		next.ServeHTTP(w, r)
	})
}

type cardRequest struct {
	Logo      *string `json:"logo"`
	Title     *string `json:"title"`
	Content   *string `json:"content"`
	Center    *bool   `json:"center"`
	Partition *bool   `json:"partition"`
}

type reorderRequest struct {
	From *int `json:"from"`
	To   *int `json:"to"`
}

type publishRequest struct {
	Message string `json:"message"`
}

func (s *Server) handleCardsList(w http.ResponseWriter, r *http.Request) {
	list, err := s.store.Load()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, list.Data())
}

func (s *Server) handleCardsAdd(w http.ResponseWriter, r *http.Request) {
	var req cardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	list, err := s.store.Load()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	list.Add(strOr(req.Logo), strOr(req.Title), strOr(req.Content), boolOr(req.Center), boolOr(req.Partition))
	if err := s.store.Save(list); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, map[string]any{"ok": true, "count": list.Len()})
}

func (s *Server) handleCardsUpdate(w http.ResponseWriter, r *http.Request) {
	index, ok := pathIndex(w, r)
	if !ok {
		return
	}

	var req cardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	list, err := s.store.Load()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	fields := cards.Fields{
		Logo:      req.Logo,
		Title:     req.Title,
		Content:   req.Content,
		Center:    req.Center,
		Partition: req.Partition,
	}
	if err := list.Update(index, fields); err != nil {
		writeOpError(w, err)
		return
	}
	if err := s.store.Save(list); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, map[string]any{"ok": true})
}

func (s *Server) handleCardsDelete(w http.ResponseWriter, r *http.Request) {
	index, ok := pathIndex(w, r)
	if !ok {
		return
	}

	list, err := s.store.Load()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	if _, err := list.Remove(index); err != nil {
		writeOpError(w, err)
		return
	}
	if err := s.store.Save(list); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, map[string]any{"ok": true})
}

func (s *Server) handleCardsReorder(w http.ResponseWriter, r *http.Request) {
	var req reorderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if req.From == nil || req.To == nil {
		writeError(w, http.StatusBadRequest, errors.New("missing from/to indices"))
		return
	}

	list, err := s.store.Load()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	if err := list.Reorder(*req.From, *req.To); err != nil {
		writeOpError(w, err)
		return
	}
	if err := s.store.Save(list); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, map[string]any{"ok": true})
}

func (s *Server) handlePublish(w http.ResponseWriter, r *http.Request) {
	var req publishRequest
	// An empty body means the default message.
	_ = json.NewDecoder(r.Body).Decode(&req)
	if req.Message == "" {
		req.Message = "Update cards"
	}

	publisher := git.Publisher{Runner: s.runner, Dir: s.site.Root}
	if err := publisher.Publish(config.CardsRelPath, req.Message); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, map[string]any{"ok": true})
}

func (s *Server) handleImages(w http.ResponseWriter, r *http.Request) {
	images, err := assets.ListImages(s.site.ImagesDir())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, images)
}

// pathIndex parses the {index} path segment, rejecting non-numeric
// values with a 400 before any file access happens.
func pathIndex(w http.ResponseWriter, r *http.Request) (int, bool) {
	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil {
		writeError(w, http.StatusBadRequest, errors.New("invalid card index"))
		return 0, false
	}
	return index, true
}

// writeOpError maps card operation failures onto status codes: bad
// indices are the caller's fault, everything else is ours.
func writeOpError(w http.ResponseWriter, err error) {
	if errors.Is(err, cards.ErrIndexOutOfRange) {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeError(w, http.StatusInternalServerError, err)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("write response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}

func strOr(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func boolOr(p *bool) bool {
	if p == nil {
		return false
	}
	return *p
}
