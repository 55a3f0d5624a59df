// Package assets holds static files compiled into the server binary.
package assets

import _ "embed"

// Stylesheet is the swipe-deck stylesheet served at /v1/themes/stylesheet.
//
//go:embed theme.css
var Stylesheet []byte
