// Package web embeds the page template and static assets.
package web

import (
	"embed"
	"io/fs"
)

//go:embed templates/* static/*
var ContentFS embed.FS

// IndexTemplate is the page shell the renderers fill.
const IndexTemplate = "templates/index.html"

// Static returns the static asset tree rooted at static/.
func Static() fs.FS {
	sub, err := fs.Sub(ContentFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
