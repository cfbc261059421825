// Package web serves the list as an HTML form page.
package web

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/idilsaglam/todolist/internal/notify"
	"github.com/idilsaglam/todolist/internal/todo"
	"github.com/idilsaglam/todolist/internal/view"
)

const shutdownTimeout = 5 * time.Second

// Options tune the page.
type Options struct {
	NotifyDelay time.Duration
	Logger      *log.Logger
	Clock       func() time.Time
}

// Server owns one controller shared by every request. Requests are
// serialized by the controller's lock.
type Server struct {
	ctrl   *todo.Controller
	rows   *view.Rows
	notes  *notify.Timer
	logger *log.Logger
	router chi.Router
}

func New(st todo.Store, opt Options) *Server {
	logger := opt.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	s := &Server{
		rows:   view.New(),
		logger: logger,
	}
	s.notes = notify.NewTimer(opt.NotifyDelay, func(n notify.Notice) {
		if n.IsZero() {
			logger.Debug("notice dismissed")
			return
		}
		logger.Debug("notice", "text", n.Text, "severity", n.Severity)
	})
	s.ctrl = todo.NewController(st, s.rows, s.notes,
		todo.WithLogger(logger),
		todo.WithClock(opt.Clock),
	)
	s.ctrl.Setup()
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(requestLogger(s.logger))
	r.Use(middleware.Recoverer)

	r.Get("/", s.handleIndex)
	r.Get("/items.json", s.handleItems)
	r.Post("/submit", s.handleSubmit)
	r.Post("/reset", s.handleReset)
	r.Post("/clear", s.handleClear)
	r.Route("/items/{id}", func(r chi.Router) {
		r.Post("/edit", s.handleEdit)
		r.Post("/delete", s.handleDelete)
	})
	return r
}

func (s *Server) Handler() http.Handler { return s.router }

// Close cancels a pending notice dismissal.
func (s *Server) Close() { s.notes.Stop() }

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	errc := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	defer s.Close()
	return srv.Shutdown(shutdownCtx)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.ctrl.Refresh()

	ed := s.ctrl.Editor()
	n := s.notes.Current()
	data := pageData{
		Label:   ed.SubmitLabel(),
		Input:   ed.Input(),
		Notice:  noticeData{Text: n.Text, Severity: string(n.Severity)},
		Visible: s.rows.Visible(),
	}
	for _, row := range s.rows.Rows() {
		data.Rows = append(data.Rows, rowData{ID: row.ID, Value: row.Value})
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := page.Execute(w, data); err != nil {
		s.logger.Error("render page", "err", err)
	}
}

func (s *Server) handleItems(w http.ResponseWriter, r *http.Request) {
	s.ctrl.Refresh()
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(s.ctrl.Records()); err != nil {
		s.logger.Error("encode items", "err", err)
	}
}

func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	// The empty-value notice is already on the banner; storage errors
	// are logged by the controller.
	_ = s.ctrl.Submit(r.PostForm.Get("value"))
	back(w, r)
}

func (s *Server) handleEdit(w http.ResponseWriter, r *http.Request) {
	s.ctrl.BeginEdit(chi.URLParam(r, "id"))
	back(w, r)
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	_ = s.ctrl.Delete(chi.URLParam(r, "id"))
	back(w, r)
}

func (s *Server) handleClear(w http.ResponseWriter, r *http.Request) {
	_ = s.ctrl.Clear()
	back(w, r)
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	s.ctrl.Reset()
	back(w, r)
}

func back(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func requestLogger(logger *log.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			logger.Info("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"dur", time.Since(start),
				"req_id", middleware.GetReqID(r.Context()),
			)
		})
	}
}
