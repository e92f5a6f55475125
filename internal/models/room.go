// Package models contains domain types for the Campus Map Visualizer.
package models

// RoomOutline represents one room's footprint on a floor plan, as loaded
// from a per-floor JSON definition file. Every field but PathData is
// optional; absent fields decode to the empty string.
type RoomOutline struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	PathData      string `json:"d"` // SVG path "d" attribute, relative polyline deltas
	Fill          string `json:"fill"`
	FillRule      string `json:"fillRule"`
	Stroke        string `json:"stroke"`
	StrokeWidth   string `json:"strokeWidth"`
	StrokeLinecap string `json:"strokeLinecap"`
	StrokeLinejoin string `json:"strokeLinejoin"`
	Type          string `json:"type"` // room category, selects the icon asset
	Color         string `json:"color"`
	ColorOnHover  string `json:"colorOnHover"`
}

// Selector returns the identifier used for the room's anchor element and
// hover style rule: the id, or the title when the id is empty. An empty
// selector means the room gets no hover rule.
func (r RoomOutline) Selector() string {
	if r.ID != "" {
		return r.ID
	}
	return r.Title
}
