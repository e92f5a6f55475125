// Package render computes floor-plan layouts and composes them into SVG
// documents. Room geometry arrives as SVG path data with relative polyline
// deltas and no coordinate metadata; everything drawn on top (icons,
// labels) is derived from the path's bounding box.
package render

import (
	"math"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// BoundingBox is the axis-aligned box enclosing every point traced by a
// path's coordinate deltas. A box computed from zero valid pairs is
// degenerate (±Inf limits); callers must check Empty before using it.
type BoundingBox struct {
	MinX float64
	MaxX float64
	MinY float64
	MaxY float64
}

// Empty reports whether the box encloses no points.
func (b BoundingBox) Empty() bool {
	return b.MinX > b.MaxX || b.MinY > b.MaxY
}

// CenterX returns the horizontal center of the box.
func (b BoundingBox) CenterX() float64 { return (b.MinX + b.MaxX) / 2 }

// CenterY returns the vertical center of the box.
func (b BoundingBox) CenterY() float64 { return (b.MinY + b.MaxY) / 2 }

// Width returns MaxX-MinX.
func (b BoundingBox) Width() float64 { return b.MaxX - b.MinX }

// Height returns MaxY-MinY.
func (b BoundingBox) Height() float64 { return b.MaxY - b.MinY }

// ComputeBoundingBox derives the bounding box of an SVG path "d" attribute
// by walking its numeric tokens as relative (dx, dy) pairs from the origin.
//
// Every character that is not a digit, decimal point, or minus sign acts as
// a token separator, so path command letters are discarded and ALL pairs
// are treated as relative deltas regardless of the original command. This
// only yields the correct box for the hand-authored relative polyline paths
// used by the floor definitions; absolute or curved commands are not
// handled.
//
// Unparseable tokens are skipped and an odd trailing token is dropped, both
// with a warning. Neither condition is fatal.
func ComputeBoundingBox(pathData string, log *zap.Logger) BoundingBox {
	if log == nil {
		log = zap.NewNop()
	}

	var sb strings.Builder
	for _, c := range pathData {
		if (c >= '0' && c <= '9') || c == '.' || c == '-' {
			sb.WriteRune(c)
		} else {
			sb.WriteByte(' ')
		}
	}

	var coords []float64
	for _, tok := range strings.Fields(sb.String()) {
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			log.Warn("non-numeric token in SVG path data", zap.String("token", tok))
			continue
		}
		coords = append(coords, v)
	}

	if len(coords)%2 != 0 {
		log.Warn("odd coordinate count in SVG path data, dropping trailing value",
			zap.Int("count", len(coords)))
		coords = coords[:len(coords)-1]
	}

	box := BoundingBox{
		MinX: math.Inf(1),
		MaxX: math.Inf(-1),
		MinY: math.Inf(1),
		MaxY: math.Inf(-1),
	}

	var curX, curY float64
	for i := 0; i+1 < len(coords); i += 2 {
		curX += coords[i]
		curY += coords[i+1]

		box.MinX = math.Min(box.MinX, curX)
		box.MaxX = math.Max(box.MaxX, curX)
		box.MinY = math.Min(box.MinY, curY)
		box.MaxY = math.Max(box.MaxY, curY)
	}

	return box
}
