package render

// RenderConfig gathers the layout constants that the composer and layout
// engine depend on. Tests can substitute alternate values; production use
// starts from DefaultRenderConfig.
type RenderConfig struct {
	CanvasWidth  float64 // viewport width in user-space units
	CanvasHeight float64 // viewport height in user-space units

	BaseIconDim float64 // square dimension icons are normalized to before scaling
	IconScale   float64 // scale factor applied when placing an icon

	TitleFontSize float64 // base font size for the title label
	DescFontSize  float64 // base font size for the description label
	TextGap       float64 // extra vertical gap between box center and labels

	TextDistanceRatio float64 // label offset as a fraction of room height

	DefaultHoverColor string // hover fill used when a room specifies none
}

// DefaultRenderConfig returns the canonical rendering parameters.
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		CanvasWidth:       960,
		CanvasHeight:      540,
		BaseIconDim:       200,
		IconScale:         0.25,
		TitleFontSize:     16,
		DescFontSize:      12,
		TextGap:           15,
		TextDistanceRatio: 0.15,
		DefaultHoverColor: "#B2BCBE",
	}
}

// EffectiveHoverColor resolves the hover fill for a room without mutating
// the room record: the room's own color when set, the configured default
// otherwise.
func (c RenderConfig) EffectiveHoverColor(colorOnHover string) string {
	if colorOnHover != "" {
		return colorOnHover
	}
	return c.DefaultHoverColor
}
