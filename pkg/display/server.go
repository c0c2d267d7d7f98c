package display

import (
	"bytes"
	"context"
	"html/template"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/disintegration/imaging"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/datastripes/pkg/errors"
	"github.com/matzehuels/datastripes/pkg/observability"
	"github.com/matzehuels/datastripes/pkg/pipeline"
)

// Server shows the composite in a browser. Every request re-reads the data
// files, so edits show up on reload.
type Server struct {
	Runner  *pipeline.Runner
	Options pipeline.Options
	Logger  *log.Logger
}

// NewServer creates a server rendering with opts.
func NewServer(runner *pipeline.Runner, opts pipeline.Options, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	if runner == nil {
		runner = pipeline.NewRunner(logger)
	}
	return &Server{Runner: runner, Options: opts, Logger: logger}
}

// Handler returns the HTTP routes.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(observe)

	r.Get("/", s.handleIndex)
	r.Get("/composite.png", s.handleComposite)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok\n"))
	})
	return r
}

// ListenAndServe serves until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) run(r *http.Request) (*pipeline.Result, error) {
	opts := s.Options
	opts.Logger = s.Logger.With("request_id", middleware.GetReqID(r.Context()))
	return s.Runner.Execute(r.Context(), opts)
}

func (s *Server) handleComposite(w http.ResponseWriter, r *http.Request) {
	result, err := s.run(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, result.Image.Image(), imaging.PNG); err != nil {
		s.fail(w, r, errors.Wrap(errors.ErrCodeInternal, err, "encode png"))
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write(buf.Bytes())
}

var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>datastripes</title></head>
<body style="background:#111;color:#ddd;font-family:sans-serif">
<img src="/composite.png" alt="composite" style="display:block">
<ol start="0">
{{- range .Bars}}
<li><b>{{.Description}}</b> <small>{{.File}} &middot; {{.Stripes}} stripes of {{.StripeWidth}}px</small></li>
{{- end}}
</ol>
</body>
</html>
`))

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	result, err := s.run(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTemplate.Execute(w, result); err != nil {
		s.Logger.Error("render index", "err", err)
	}
}

// observe reports each request to the registered HTTP hooks.
func observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hooks := observability.HTTP()
		hooks.OnRequest(r.Context(), r.Method, r.URL.Path)
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		hooks.OnResponse(r.Context(), r.Method, r.URL.Path, status, time.Since(start))
	})
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	s.Logger.Error("request failed",
		"path", r.URL.Path,
		"request_id", middleware.GetReqID(r.Context()),
		"code", errors.GetCode(err),
		"err", err)
	http.Error(w, errors.UserMessage(err), http.StatusInternalServerError)
}
