// Package views embeds the HTML templates rendered by the handlers.
package views

import "embed"

//go:embed *.html
var FS embed.FS
