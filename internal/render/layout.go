package render

import (
	"strings"

	"github.com/campus-visualizer/backend/internal/models"
)

// RoomLayout holds everything the layout engine places over a room outline.
// Nil members mean the element is omitted from the composed document.
type RoomLayout struct {
	Icon  *IconPlacement
	Title *TextLabel
	Desc  *TextLabel
}

// LayoutRoom computes icon placement and label positions for a room from
// its bounding box.
//
// Rooms with an empty type get no overlay at all (the outline is emitted as
// a plain path). A degenerate bounding box also yields an empty layout so
// that infinities never reach the SVG output. Rooms with an unrecognized
// type get labels but no icon, with the label offset derived from the base
// icon dimension instead of the room height. That inconsistency is kept for
// output compatibility.
func LayoutRoom(box BoundingBox, room models.RoomOutline, cfg RenderConfig) RoomLayout {
	if room.Type == "" || box.Empty() {
		return RoomLayout{}
	}

	centerX := box.CenterX()
	centerY := box.CenterY()
	width := box.Width()

	cat, recognized := CategoryOf(room.Type)

	textDistance := box.Height() * cfg.TextDistanceRatio
	if !recognized {
		textDistance = cfg.BaseIconDim * cfg.TextDistanceRatio
	}

	layout := RoomLayout{}

	if recognized {
		scaled := cfg.BaseIconDim * cfg.IconScale
		layout.Icon = &IconPlacement{
			AssetID: iconAssets[cat],
			Width:   cfg.BaseIconDim,
			Height:  cfg.BaseIconDim,
			OriginX: centerX - scaled/2,
			OriginY: centerY - scaled/2,
			Scale:   cfg.IconScale,
		}
	}

	if room.Title != "" {
		layout.Title = &TextLabel{
			Content:  strings.ToUpper(room.Title),
			X:        centerX,
			Y:        centerY - textDistance - labelGap(room.Title, room.Type, cfg),
			FontSize: FitFontSize(cfg.TitleFontSize, room.Title, width),
			Weight:   "bold",
		}
	}

	if room.Description != "" {
		layout.Desc = &TextLabel{
			Content:  strings.ToUpper(room.Description),
			X:        centerX,
			Y:        centerY + textDistance + labelGap(room.Description, room.Type, cfg),
			FontSize: FitFontSize(cfg.DescFontSize, room.Description, width),
			Weight:   "bold",
		}
	}

	return layout
}

// labelGap returns the extra offset between the room center and a label.
// The gap is suppressed only for an empty label on a "none"-typed room, a
// combination that never produces a visible label anyway.
func labelGap(content, roomType string, cfg RenderConfig) float64 {
	if content == "" && roomType == "none" {
		return 0
	}
	return cfg.TextGap
}
