package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCommandWithContentOverride(t *testing.T) {
	t.Setenv("PORTFOLIO_LOG_LEVEL", "error")
	dir := t.TempDir()
	contentPath := filepath.Join(dir, "content.yaml")
	require.NoError(t, os.WriteFile(contentPath, []byte(`person:
  name: Ada Lovelace
projects:
  - name: Analytical Engine
    date: "1843"
    image: static/images/project1.svg
`), 0o644))

	out := filepath.Join(dir, "site")
	cmd := newRootCmd()
	cmd.SetArgs([]string{"build", "--out", out, "--content", contentPath})
	require.NoError(t, cmd.Execute())

	index, err := os.ReadFile(filepath.Join(out, "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(index), "Analytical Engine")
	assert.Contains(t, string(index), "Ada Lovelace. All rights reserved.")
	assert.NotContains(t, string(index), "project-award")
}

func TestBuildCommandRejectsBadContent(t *testing.T) {
	t.Setenv("PORTFOLIO_LOG_LEVEL", "error")
	contentPath := filepath.Join(t.TempDir(), "content.yaml")
	require.NoError(t, os.WriteFile(contentPath, []byte("person: {}\n"), 0o644))

	cmd := newRootCmd()
	cmd.SetArgs([]string{"build", "--out", t.TempDir(), "--content", contentPath})
	require.Error(t, cmd.Execute())
}
