// Package page holds the static HTML document served by the site listener.
package page

import (
	_ "embed"
)

// ContentType is sent with every response carrying Index.
const ContentType = "text/html; charset=utf-8"

// Index is the demo website document, fixed at build time.
//
//go:embed index.html
var Index string

// Bytes returns Index as a byte slice for response writers.
func Bytes() []byte {
	return []byte(Index)
}
