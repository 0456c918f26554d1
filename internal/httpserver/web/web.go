// Package web embeds the landing page that renders the activity feed.
package web

import (
	"embed"
	"io/fs"
)

//go:embed index.html static
var files embed.FS

// IndexHTML returns the landing page.
func IndexHTML() []byte {
	b, err := files.ReadFile("index.html")
	if err != nil {
		panic("web: index.html missing from embed: " + err.Error())
	}
	return b
}

// Static returns the static asset tree rooted at static/.
func Static() fs.FS {
	sub, err := fs.Sub(files, "static")
	if err != nil {
		panic("web: static missing from embed: " + err.Error())
	}
	return sub
}
