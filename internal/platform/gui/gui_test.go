package gui

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/text/language"

	"github.com/vovakirdan/dropcatch/internal/core"
)

func TestCanvasSize(t *testing.T) {
	tests := []struct {
		outside      int
		wantW, wantH int
	}{
		{1280, 600, 500},
		{700, 600, 500},
		{699, 320, 400},
		{360, 320, 400},
		{0, 320, 400},
	}

	for _, tc := range tests {
		w, h := CanvasSize(tc.outside)
		if w != tc.wantW || h != tc.wantH {
			t.Errorf("CanvasSize(%d) = %dx%d, expected %dx%d", tc.outside, w, h, tc.wantW, tc.wantH)
		}
	}
}

func TestInitialWindowIsWide(t *testing.T) {
	if w, _ := CanvasSize(WideW + 2*windowPadding); w != WideW {
		t.Errorf("default window opens on the %dpx canvas, expected %d", w, WideW)
	}
}

func TestRepeats(t *testing.T) {
	tests := []struct {
		duration int
		want     bool
	}{
		{0, false},
		{1, true},
		{2, false},
		{29, false},
		{30, true},
		{31, false},
		{33, true},
	}

	for _, tc := range tests {
		if got := repeats(tc.duration); got != tc.want {
			t.Errorf("repeats(%d) = %v, expected %v", tc.duration, got, tc.want)
		}
	}
}

func TestPaletteCoversColors(t *testing.T) {
	for c := core.ColorDefault; c <= core.ColorGray; c++ {
		if _, ok := palette[c]; !ok {
			t.Errorf("no window color for %d", c)
		}
	}
	if rgba(core.Color(200)) != defaultColor {
		t.Error("unknown colors should fall back to the default")
	}
}

func TestLoadFontsDirection(t *testing.T) {
	en, err := LoadFonts("", language.English, 1)
	if err != nil {
		t.Fatalf("LoadFonts() failed: %v", err)
	}
	if en.Body.Direction != text.DirectionLeftToRight {
		t.Error("English should lay out left to right")
	}
	if en.Title.Size != titleSize {
		t.Errorf("title size = %v, expected %v", en.Title.Size, titleSize)
	}

	ar, err := LoadFonts("", language.Arabic, narrowScale)
	if err != nil {
		t.Fatalf("LoadFonts() failed: %v", err)
	}
	if ar.Body.Direction != text.DirectionRightToLeft {
		t.Error("Arabic should lay out right to left")
	}
	if ar.Body.Size != bodySize*narrowScale {
		t.Errorf("narrow body size = %v, expected %v", ar.Body.Size, bodySize*narrowScale)
	}

	if _, err := LoadFonts("/nonexistent/font.ttf", language.English, 1); err == nil {
		t.Error("missing font file should fail")
	}
}

func TestWrap(t *testing.T) {
	fonts, err := LoadFonts("", language.English, 1)
	if err != nil {
		t.Fatal(err)
	}
	face := fonts.Body
	s := "Help collect clean water and avoid pollutants! Every drop counts for communities in need."
	maxW := 200.0

	lines := wrap(s, face, maxW)
	if len(lines) < 2 {
		t.Fatalf("wrap() = %q, expected several lines", lines)
	}
	for _, l := range lines {
		if w := text.Advance(l, face); w > maxW {
			t.Errorf("line %q is %.1fpx wide, max %.1f", l, w, maxW)
		}
	}

	if got := wrap("   ", face, maxW); got != nil {
		t.Errorf("wrap(blank) = %q, expected nil", got)
	}
	if got := wrap("Supercalifragilistic", face, 10); len(got) != 1 {
		t.Errorf("a long word should stay on one line, got %q", got)
	}
}
