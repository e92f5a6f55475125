package render

import (
	"fmt"
	"strconv"
	"unicode/utf8"
)

// TextLabel is a positioned piece of text to draw over a room outline.
type TextLabel struct {
	Content  string
	X        float64
	Y        float64
	FontSize float64
	Weight   string
}

// fontWidthFactor estimates a character's width as a fraction of the font
// size when fitting text into a room.
const fontWidthFactor = 0.8

// FitFontSize shrinks a base font size so that text fits inside maxWidth.
// The needed width is estimated as one character-width per rune; when it
// exceeds maxWidth the size is scaled down proportionally, otherwise the
// base size is kept. Accented titles count characters, not bytes.
func FitFontSize(base float64, text string, maxWidth float64) float64 {
	chars := utf8.RuneCountInString(text)
	if chars == 0 {
		return base
	}
	needed := float64(chars) * base * fontWidthFactor
	if needed > maxWidth {
		return maxWidth / (float64(chars) * fontWidthFactor)
	}
	return base
}

// num formats a coordinate or size for SVG output. FormatFloat with -1
// precision keeps the shortest exact representation, which keeps composed
// documents byte-identical across runs.
func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// textElement renders a TextLabel as an SVG <text> element. All labels are
// centered on their anchor point in Arial.
func textElement(l TextLabel) string {
	return fmt.Sprintf(
		`<text x="%s" y="%s" font-family="Arial" font-size="%s" fill="black" text-anchor="middle" alignment-baseline="central" font-weight="%s">%s</text>`,
		num(l.X), num(l.Y), num(l.FontSize), l.Weight, escapeText(l.Content))
}

// escapeText escapes the characters that terminate SVG character data.
func escapeText(s string) string {
	var out []byte
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '&':
			out = append(out, "&amp;"...)
		case '<':
			out = append(out, "&lt;"...)
		case '>':
			out = append(out, "&gt;"...)
		default:
			out = append(out, s[i])
		}
	}
	return string(out)
}
