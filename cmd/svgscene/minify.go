package main

import (
	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/svg"
)

const svgMediaType = "image/svg+xml"

// minifySVG returns a smaller equivalent of `doc`.
func minifySVG(doc string) (string, error) {
	m := minify.New()
	m.AddFunc(svgMediaType, svg.Minify)
	return m.String(svgMediaType, doc)
}
