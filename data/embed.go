// Package data provides embedded sample maps and utilities for loading them.
package data

import "embed"

// dataFS embeds all YAML map files from this directory at build time.
//
//go:embed *.yaml
var dataFS embed.FS

// FS returns the embedded filesystem containing the sample maps.
func FS() embed.FS {
	return dataFS
}
