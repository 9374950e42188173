package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rdraksharam/portfolio/internal/content"
	"github.com/rdraksharam/portfolio/internal/dom"
	"github.com/rdraksharam/portfolio/internal/logger"
	"github.com/rdraksharam/portfolio/internal/page"
	"github.com/rdraksharam/portfolio/web"
)

type server struct {
	content  *content.Model
	log      *logger.Logger
	mode     string
	template []byte
	now      func() time.Time
}

func newServer(a *app) (*server, error) {
	tmpl, err := fs.ReadFile(web.ContentFS, web.IndexTemplate)
	if err != nil {
		return nil, fmt.Errorf("reading page template: %w", err)
	}
	return &server{
		content:  a.content,
		log:      a.log,
		mode:     a.cfg.Mode,
		template: tmpl,
		now:      time.Now,
	}, nil
}

// renderPage builds a fresh document per call so requests never share DOM state.
func (s *server) renderPage(w io.Writer) error {
	doc, err := dom.Parse(bytes.NewReader(s.template))
	if err != nil {
		return err
	}
	page.Mount(doc, s.content, page.Options{Now: s.now()})
	return doc.Render(w)
}

func (s *server) router() *gin.Engine {
	gin.SetMode(s.mode)

	r := gin.New()
	r.Use(requestLogger(s.log), gin.Recovery())

	r.StaticFS("/static", http.FS(web.Static()))

	// Home page route
	r.GET("/", func(c *gin.Context) {
		var buf bytes.Buffer
		if err := s.renderPage(&buf); err != nil {
			s.log.Error(err, "rendering page")
			c.String(http.StatusInternalServerError, "Sorry, the page could not be rendered.")
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
	})

	// Raw content for anything that wants the data without the markup
	r.GET("/api/content", func(c *gin.Context) {
		c.JSON(http.StatusOK, s.content)
	})

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return r
}

// run serves until ctx is cancelled, then drains in-flight requests.
func (s *server) run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.WithFields(map[string]any{"addr": addr}).Info("listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	s.log.Info("shutting down")
	return srv.Shutdown(shutdownCtx)
}

// export writes index.html and the static assets under dir.
func (s *server) export(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}

	var buf bytes.Buffer
	if err := s.renderPage(&buf); err != nil {
		return fmt.Errorf("rendering page: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "index.html"), buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing index.html: %w", err)
	}

	static := web.Static()
	return fs.WalkDir(static, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		target := filepath.Join(dir, "static", filepath.FromSlash(path))
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		data, err := fs.ReadFile(static, path)
		if err != nil {
			return err
		}
		return os.WriteFile(target, data, 0o644)
	})
}
