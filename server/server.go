// Package server exposes the analysis engine, the critique orchestrator,
// and the session store over HTTP.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"

	"draftlens/internal/critique"
	"draftlens/internal/engine"
	"draftlens/internal/ingest"
	"draftlens/internal/report"
	"draftlens/internal/store"
	"draftlens/internal/workspace"
)

const maxUploadBytes = 16 << 20

type Server struct {
	orch          *critique.Orchestrator
	store         *store.Store
	workspaceRoot string

	// One critique in flight at a time. No queueing, no cancellation; a
	// second trigger while one is outstanding gets 409.
	critiqueBusy atomic.Bool
}

func New(orch *critique.Orchestrator, st *store.Store, workspaceRoot string) (*Server, error) {
	if orch == nil {
		return nil, errors.New("critique orchestrator required")
	}
	if st == nil {
		return nil, errors.New("session store required")
	}
	return &Server{orch: orch, store: st, workspaceRoot: workspaceRoot}, nil
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(logMiddleware)
	r.Post("/api/analyze", s.handleAnalyze)
	r.Post("/api/critique", s.handleCritique)
	r.Get("/api/session", s.handleSessionGet)
	r.Put("/api/session", s.handleSessionPut)
	r.Get("/api/theme", s.handleThemeGet)
	r.Put("/api/theme", s.handleThemePut)
	r.Post("/api/import", s.handleImport)
	r.Post("/api/export", s.handleExport)
	return r
}

type analyzeRequest struct {
	Draft string `json:"draft"`
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, &critique.ValidationError{Reason: "malformed JSON body"})
		return
	}
	writeJSON(w, http.StatusOK, engine.Analyze(req.Draft))
}

func (s *Server) handleCritique(w http.ResponseWriter, r *http.Request) {
	if !s.critiqueBusy.CompareAndSwap(false, true) {
		writeJSON(w, http.StatusConflict, errorBody{Error: "a critique is already in progress", Kind: "busy"})
		return
	}
	defer s.critiqueBusy.Store(false)

	var req critique.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, &critique.ValidationError{Reason: "malformed JSON body"})
		return
	}
	result, err := s.orch.Evaluate(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleSessionGet(w http.ResponseWriter, _ *http.Request) {
	sess, ok, err := s.store.LoadSession()
	if err != nil {
		writeError(w, err)
		return
	}
	if !ok {
		writeJSON(w, http.StatusNotFound, errorBody{Error: "no saved session", Kind: "not_found"})
		return
	}
	writeJSON(w, http.StatusOK, sess)
}

func (s *Server) handleSessionPut(w http.ResponseWriter, r *http.Request) {
	var sess store.Session
	if err := json.NewDecoder(r.Body).Decode(&sess); err != nil {
		writeError(w, &critique.ValidationError{Reason: "malformed JSON body"})
		return
	}
	if err := s.store.SaveSession(sess); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type themeBody struct {
	Theme string `json:"theme"`
}

func (s *Server) handleThemeGet(w http.ResponseWriter, _ *http.Request) {
	theme, err := s.store.LoadTheme()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, themeBody{Theme: theme})
}

func (s *Server) handleThemePut(w http.ResponseWriter, r *http.Request) {
	var body themeBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || strings.TrimSpace(body.Theme) == "" {
		writeError(w, &critique.ValidationError{Reason: "theme is required"})
		return
	}
	if err := s.store.SaveTheme(body.Theme); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type importResponse struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, &critique.ValidationError{Reason: "malformed multipart upload"})
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, &critique.ValidationError{Reason: "missing file field"})
		return
	}
	defer file.Close()

	// Extraction works on paths, so stage the upload in a scratch file
	// keeping the original extension.
	tmp := filepath.Join(os.TempDir(), fmt.Sprintf("draftlens-upload-%d%s", time.Now().UnixNano(), filepath.Ext(header.Filename)))
	out, err := os.Create(tmp)
	if err != nil {
		writeError(w, fmt.Errorf("stage upload: %w", err))
		return
	}
	if _, err := io.Copy(out, file); err != nil {
		_ = out.Close()
		_ = os.Remove(tmp)
		writeError(w, fmt.Errorf("stage upload: %w", err))
		return
	}
	_ = out.Close()
	defer os.Remove(tmp)

	draft, err := ingest.ParseFile(tmp)
	if err != nil {
		writeError(w, &critique.ValidationError{Reason: err.Error()})
		return
	}

	title := strings.TrimSuffix(header.Filename, filepath.Ext(header.Filename))
	if s.workspaceRoot != "" {
		if _, err := workspace.CreateProject(s.workspaceRoot, title, header.Filename, draft.SourceBytes); err != nil {
			log.Warn("project creation failed", "title", title, "error", err)
		}
	}
	writeJSON(w, http.StatusOK, importResponse{Title: title, Text: draft.Text})
}

type exportRequest struct {
	Title  string           `json:"title"`
	Draft  string           `json:"draft"`
	Result *critique.Result `json:"result,omitempty"`
}

type exportResponse struct {
	Path    string `json:"path"`
	Content string `json:"content"`
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	var req exportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, &critique.ValidationError{Reason: "malformed JSON body"})
		return
	}
	if strings.TrimSpace(req.Draft) == "" {
		writeError(w, &critique.ValidationError{Reason: "draft is empty"})
		return
	}

	now := time.Now()
	content := report.Render(req.Title, req.Draft, engine.Analyze(req.Draft), req.Result, now)

	path := ""
	if s.workspaceRoot != "" {
		path = filepath.Join(workspace.ExportsDir(s.workspaceRoot), "feedback-"+now.Format("20060102-150405")+".txt")
		if err := report.Write(path, content); err != nil {
			writeError(w, err)
			return
		}
	}
	writeJSON(w, http.StatusOK, exportResponse{Path: path, Content: content})
}

type errorBody struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

// writeError maps the critique error taxonomy onto status codes. Protocol
// diagnostics stay in the logs; the response carries only the reason.
func writeError(w http.ResponseWriter, err error) {
	var (
		verr *critique.ValidationError
		perr *critique.ProtocolError
		terr *critique.TransportError
		aerr *critique.AuthError
	)
	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, errorBody{Error: verr.Error(), Kind: "validation"})
	case errors.As(err, &aerr):
		writeJSON(w, http.StatusUnauthorized, errorBody{Error: aerr.Error(), Kind: "auth"})
	case errors.As(err, &perr):
		writeJSON(w, http.StatusBadGateway, errorBody{Error: perr.Error(), Kind: "protocol"})
	case errors.As(err, &terr):
		writeJSON(w, http.StatusBadGateway, errorBody{Error: terr.Error(), Kind: "transport"})
	default:
		log.Error("internal error", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: "internal error", Kind: "internal"})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func logMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Debug("request", "method", r.Method, "path", r.URL.Path, "duration", time.Since(start))
	})
}
