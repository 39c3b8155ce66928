// Package tileset provides embedded render data for tile kinds.
package tileset

import "embed"

// dataFS embeds all JSON files from this directory at build time.
//
//go:embed *.json
var dataFS embed.FS
