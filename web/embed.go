// Package web provides the embedded static assets for the service,
// currently just the index page served at /.
package web

import "embed"

// StaticFS embeds the web/static/ directory tree so no external files are
// needed at runtime.
//
//go:embed static
var StaticFS embed.FS
