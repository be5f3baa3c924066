// Package web holds the embedded UI pages served by the relay.
package web

import "embed"

//go:embed templates/*.html
var Templates embed.FS
