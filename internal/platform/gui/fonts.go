package gui

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/text/language"
)

// Font sizes in canvas pixels for the wide canvas; the narrow canvas scales
// them down.
const (
	bodySize  = 16
	titleSize = 26
	hudSize   = 18
)

// Fonts holds the faces the window draws with.
type Fonts struct {
	Body  *text.GoTextFace
	Title *text.GoTextFace
	HUD   *text.GoTextFace
}

// LoadFonts builds the faces for a language. An empty path uses the bundled
// Go Regular font, which has no Arabic or emoji glyphs; pass a TTF/OTF that
// covers them to show those.
func LoadFonts(path string, tag language.Tag, scale float64) (Fonts, error) {
	data := goregular.TTF
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return Fonts{}, fmt.Errorf("gui: failed to read font file %s: %w", path, err)
		}
		data = b
	}

	source, err := text.NewGoTextFaceSource(bytes.NewReader(data))
	if err != nil {
		return Fonts{}, fmt.Errorf("gui: failed to create font source: %w", err)
	}

	face := func(size float64) *text.GoTextFace {
		return &text.GoTextFace{
			Source:    source,
			Size:      size * scale,
			Direction: direction(tag),
			Language:  tag,
		}
	}
	return Fonts{
		Body:  face(bodySize),
		Title: face(titleSize),
		HUD:   face(hudSize),
	}, nil
}

func direction(tag language.Tag) text.Direction {
	base, _ := tag.Base()
	switch base.String() {
	case "ar", "fa", "he", "ur":
		return text.DirectionRightToLeft
	default:
		return text.DirectionLeftToRight
	}
}

// wrap breaks s into lines no wider than maxW pixels when drawn with face.
// A single word wider than maxW gets a line of its own.
func wrap(s string, face text.Face, maxW float64) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		candidate := line + " " + w
		if text.Advance(candidate, face) <= maxW {
			line = candidate
			continue
		}
		lines = append(lines, line)
		line = w
	}
	return append(lines, line)
}
