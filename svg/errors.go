package svg

import (
	"github.com/benoitkugler/svgwrite/attrs"
	"github.com/benoitkugler/svgwrite/svgpath"
)

// Errors returned by the package, so that callers
// don't have to import the lower level packages.
var (
	ErrKeyNotFound      = attrs.ErrKeyNotFound
	ErrInvalidPathState = svgpath.ErrInvalidPathState
	ErrMalformedInput   = svgpath.ErrMalformedInput
)
