// Package web embeds the server-rendered views and static assets.
package web

import (
	"embed"
	"io/fs"
)

//go:embed views static
var files embed.FS

// Views returns the template tree rooted at views/.
func Views() fs.FS {
	sub, err := fs.Sub(files, "views")
	if err != nil {
		panic(err)
	}
	return sub
}

// Static returns the asset tree rooted at static/.
func Static() fs.FS {
	sub, err := fs.Sub(files, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
