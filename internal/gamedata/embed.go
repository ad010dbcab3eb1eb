// Package gamedata provides embedded game data and utilities for loading it.
package gamedata

import "embed"

// dataFS embeds enemy definitions and terrain maps at build time.
//
//go:embed *.json
var dataFS embed.FS
