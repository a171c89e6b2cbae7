// Package assets embeds the demo level data. go-tiled reads the TMX
// through the embedded filesystem, the same way the client would read it
// from disk.
package assets

import (
	"embed"
)

//go:embed all:levels
var FS embed.FS
