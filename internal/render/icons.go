package render

import (
	"embed"
	"fmt"

	"github.com/beevik/etree"
)

//go:embed assets/icons/*.svg
var iconFiles embed.FS

// IconPlacement describes where and how large an icon is drawn inside a
// room's bounding box.
type IconPlacement struct {
	AssetID string
	Width   float64
	Height  float64
	OriginX float64
	OriginY float64
	Scale   float64
}

// Transform returns the SVG transform that centers the scaled icon at the
// placement's origin.
func (p IconPlacement) Transform() string {
	return fmt.Sprintf("translate(%s, %s) scale(%s)",
		num(p.OriginX), num(p.OriginY), num(p.Scale))
}

// IconSet loads embedded icon assets and rewrites their dimensions for
// inlining into a floor document. Loaded markup is cached per asset and
// dimension since every room of a category uses the same normalized icon.
type IconSet struct {
	cache map[string]string
}

// NewIconSet returns an empty icon cache.
func NewIconSet() *IconSet {
	return &IconSet{cache: make(map[string]string)}
}

// Load returns the SVG markup of the icon for a category, with its
// width/height attributes rewritten to the given square dimension. The
// returned string is a complete <svg> element ready for inlining.
func (s *IconSet) Load(cat RoomCategory, dim float64) (string, error) {
	asset, ok := iconAssets[cat]
	if !ok {
		return "", fmt.Errorf("no icon asset for category %q", cat)
	}

	key := fmt.Sprintf("%s@%s", asset, num(dim))
	if svg, ok := s.cache[key]; ok {
		return svg, nil
	}

	data, err := iconFiles.ReadFile("assets/icons/" + asset)
	if err != nil {
		return "", fmt.Errorf("reading icon asset %s: %w", asset, err)
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return "", fmt.Errorf("parsing icon asset %s: %w", asset, err)
	}

	root := doc.Root()
	if root == nil {
		return "", fmt.Errorf("icon asset %s has no root element", asset)
	}
	root.CreateAttr("width", num(dim))
	root.CreateAttr("height", num(dim))

	// Strip any XML declaration so the fragment can be inlined.
	var decls []etree.Token
	for _, child := range doc.Child {
		if _, ok := child.(*etree.ProcInst); ok {
			decls = append(decls, child)
		}
	}
	for _, d := range decls {
		doc.RemoveChild(d)
	}

	svg, err := doc.WriteToString()
	if err != nil {
		return "", fmt.Errorf("serializing icon asset %s: %w", asset, err)
	}

	s.cache[key] = svg
	return svg, nil
}
