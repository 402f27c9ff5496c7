// Package ui embeds the console's HTML templates into the binary.
package ui

import "embed"

//go:embed "html"
var Files embed.FS
