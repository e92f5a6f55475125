package render

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/campus-visualizer/backend/internal/models"
)

// Composer assembles room outlines, icons, and labels into one interactive
// SVG document per floor. Output is deterministic for identical input: the
// same rooms in the same order always produce byte-identical documents.
type Composer struct {
	cfg   RenderConfig
	icons *IconSet
	log   *zap.Logger
}

// NewComposer creates a Composer with the given rendering parameters.
func NewComposer(cfg RenderConfig, log *zap.Logger) *Composer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Composer{
		cfg:   cfg,
		icons: NewIconSet(),
		log:   log,
	}
}

// LoadFloorDefinition reads a per-floor JSON definition file. A missing or
// malformed file is an error: the floor cannot be built without it.
func LoadFloorDefinition(path string) ([]models.RoomOutline, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading floor definition %s: %w", path, err)
	}

	var rooms []models.RoomOutline
	if err := json.Unmarshal(data, &rooms); err != nil {
		return nil, fmt.Errorf("decoding floor definition %s: %w", path, err)
	}

	return rooms, nil
}

// BuildFloor loads a floor definition file and composes its SVG document.
func (c *Composer) BuildFloor(floorName, definitionPath string) (string, error) {
	rooms, err := LoadFloorDefinition(definitionPath)
	if err != nil {
		return "", err
	}
	return c.ComposeFloor(floorName, rooms)
}

// ComposeFloor renders all rooms of a floor, in input order, into a single
// SVG document with hover styling.
func (c *Composer) ComposeFloor(floorName string, rooms []models.RoomOutline) (string, error) {
	var elements []string
	var styles []string

	for _, room := range rooms {
		el, err := c.roomElement(room)
		if err != nil {
			return "", fmt.Errorf("rendering room %q on floor %s: %w", room.Selector(), floorName, err)
		}
		elements = append(elements, el)

		if rule := c.hoverRule(room); rule != "" {
			styles = append(styles, rule)
		}
	}

	var doc strings.Builder
	fmt.Fprintf(&doc,
		`<svg version="1.1" viewBox="0 0 %s %s" fill="none" stroke="none" stroke-linecap="square" stroke-miterlimit="10" xmlns:xlink="http://www.w3.org/1999/xlink" xmlns="http://www.w3.org/2000/svg">`,
		num(c.cfg.CanvasWidth), num(c.cfg.CanvasHeight))
	doc.WriteString("\n<style>\n")
	doc.WriteString(strings.Join(styles, "\n"))
	doc.WriteString("\n</style>\n<defs />\n")
	fmt.Fprintf(&doc,
		`<clipPath id="canvas-clip"><path d="m0 0l%s 0l0 %sl-%s 0l0 -%sz" clip-rule="nonzero" /></clipPath>`,
		num(c.cfg.CanvasWidth), num(c.cfg.CanvasHeight), num(c.cfg.CanvasWidth), num(c.cfg.CanvasHeight))
	doc.WriteString("\n<g clip-path=\"url(#canvas-clip)\">\n")
	doc.WriteString(strings.Join(elements, "\n"))
	doc.WriteString("\n</g>\n</svg>")

	return doc.String(), nil
}

// roomElement renders one room: its anchor-wrapped outline path plus
// whatever the layout engine placed over it.
func (c *Composer) roomElement(room models.RoomOutline) (string, error) {
	box := ComputeBoundingBox(room.PathData, c.log)
	layout := LayoutRoom(box, room, c.cfg)

	var parts []string
	parts = append(parts, c.pathElement(room))

	if layout.Icon != nil {
		svg, err := c.icons.Load(RoomCategory(room.Type), layout.Icon.Width)
		if err != nil {
			return "", err
		}
		parts = append(parts, fmt.Sprintf(`<g transform="%s">%s</g>`, layout.Icon.Transform(), svg))
	}
	if layout.Title != nil {
		parts = append(parts, textElement(*layout.Title))
	}
	if layout.Desc != nil {
		parts = append(parts, textElement(*layout.Desc))
	}

	sel := room.Selector()
	if sel == "" {
		return fmt.Sprintf(`<a href="#">%s</a>`, strings.Join(parts, "")), nil
	}
	return fmt.Sprintf(`<a id="%s" href="#">%s</a>`, sel, strings.Join(parts, "")), nil
}

// pathElement renders the room outline. Untyped rooms keep their full
// stroke styling; typed rooms carry the category as a class and fall back
// to the title when the id is empty. Attribute order is fixed so output
// stays reproducible.
func (c *Composer) pathElement(room models.RoomOutline) string {
	type attr struct{ key, value string }

	var attrs []attr
	if room.Type == "" {
		attrs = []attr{
			{"fill", room.Fill},
			{"d", room.PathData},
			{"fill-rule", room.FillRule},
			{"id", room.ID},
			{"stroke", room.Stroke},
			{"stroke-width", room.StrokeWidth},
			{"stroke-linecap", room.StrokeLinecap},
			{"stroke-linejoin", room.StrokeLinejoin},
		}
	} else {
		attrs = []attr{
			{"fill", room.Fill},
			{"d", room.PathData},
			{"fill-rule", room.FillRule},
			{"id", room.Selector()},
			{"class", room.Type},
		}
	}

	var sb strings.Builder
	sb.WriteString("<path")
	for _, a := range attrs {
		if a.value != "" {
			fmt.Fprintf(&sb, ` %s="%s"`, a.key, a.value)
		}
	}
	sb.WriteString(" />")
	return sb.String()
}

// hoverRule emits the CSS hover rule for a room, or "" when the room has
// neither id nor title to select on.
func (c *Composer) hoverRule(room models.RoomOutline) string {
	sel := room.Selector()
	if sel == "" {
		return ""
	}
	hover := c.cfg.EffectiveHoverColor(room.ColorOnHover)
	return fmt.Sprintf(
		"#%s { transition: fill 0.3s ease; }\na:hover #%s { fill: %s; stroke: black; stroke-width: 5px; transition: fill 0.4s; }",
		sel, sel, hover)
}
