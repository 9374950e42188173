package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rdraksharam/portfolio/internal/config"
	"github.com/rdraksharam/portfolio/internal/content"
	"github.com/rdraksharam/portfolio/internal/dom"
	"github.com/rdraksharam/portfolio/internal/logger"
	"github.com/rdraksharam/portfolio/internal/render"
)

func newTestServer(t *testing.T, m *content.Model, logs *bytes.Buffer) *server {
	t.Helper()
	cfg := config.Default()
	cfg.Mode = "test"

	log := logger.Nop()
	if logs != nil {
		var err error
		log, err = logger.New(logger.Options{Writer: logs, Level: "info"})
		require.NoError(t, err)
	}

	s, err := newServer(&app{cfg: cfg, log: log, content: m})
	require.NoError(t, err)
	s.now = func() time.Time { return time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC) }
	return s
}

func get(t *testing.T, s *server, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	s.router().ServeHTTP(w, req)
	return w
}

func TestIndexRendersContent(t *testing.T) {
	var logs bytes.Buffer
	m := content.Default()
	s := newTestServer(t, m, &logs)

	w := get(t, s, "/")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))

	doc, err := dom.Parse(w.Body)
	require.NoError(t, err)

	assert.Len(t, dom.Children(doc.ByID(render.ExperienceID)), len(m.Experiences))
	assert.Len(t, dom.Children(doc.ByID(render.ProjectsID)), len(m.Projects))
	assert.Equal(t, "© 2026 Raghuveer Draksharam. All rights reserved.", dom.TextContent(doc.ByID(render.FooterID)))

	theme, _ := dom.Attr(doc.HTML(), "data-theme")
	assert.Equal(t, "dark", theme)

	assert.Contains(t, logs.String(), `"path":"/"`)
}

func TestIndexIsRenderedPerRequest(t *testing.T) {
	s := newTestServer(t, content.Default(), nil)

	first := get(t, s, "/").Body.String()
	second := get(t, s, "/").Body.String()
	assert.Equal(t, first, second)
	assert.Equal(t, 1, strings.Count(second, `class="experience-item border-blue slide-left"`))
}

func TestContentAPI(t *testing.T) {
	s := newTestServer(t, content.Default(), nil)

	w := get(t, s, "/api/content")
	require.Equal(t, http.StatusOK, w.Code)

	var got content.Model
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, content.Default(), &got)
}

func TestHealthz(t *testing.T) {
	var logs bytes.Buffer
	s := newTestServer(t, content.Default(), &logs)

	w := get(t, s, "/healthz")
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.Empty(t, logs.String())
}

func TestStaticAssets(t *testing.T) {
	s := newTestServer(t, content.Default(), nil)

	for _, path := range []string{"/static/app.js", "/static/style.css", "/static/images/project1.svg"} {
		w := get(t, s, path)
		assert.Equal(t, http.StatusOK, w.Code, path)
	}
	assert.Equal(t, http.StatusNotFound, get(t, s, "/static/missing.js").Code)
}

func TestExport(t *testing.T) {
	s := newTestServer(t, content.Default(), nil)
	dir := filepath.Join(t.TempDir(), "dist")

	require.NoError(t, s.export(dir))

	index, err := os.ReadFile(filepath.Join(dir, "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(index), "Jokes Meet AI")

	for _, rel := range []string{"static/app.js", "static/style.css", "static/images/project3.svg"} {
		_, err := os.Stat(filepath.Join(dir, filepath.FromSlash(rel)))
		assert.NoError(t, err, rel)
	}
}
