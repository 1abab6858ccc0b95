package gui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/dropcatch/internal/config"
	"github.com/vovakirdan/dropcatch/internal/core"
	"github.com/vovakirdan/dropcatch/internal/games/catch"
)

const (
	hudMargin   = 10
	lineSpacing = 1.35 // multiple of the face size
	panelPad    = 16
)

func drawView(dst *ebiten.Image, v catch.View, f Fonts) {
	dst.Fill(skyColor)

	switch v.Phase {
	case catch.PhaseRunning:
		drawEntities(dst, v)
		drawCatcher(dst, v)
		drawHUD(dst, v, f)
		if v.Paused {
			drawPanel(dst, f, []panelLine{
				{v.Text.Paused, f.Title, core.ColorBrightBlue},
				{v.Text.Resume, f.Body, core.ColorGray},
			})
		}
	case catch.PhaseEnded:
		drawCatcher(dst, v)
		drawHUD(dst, v, f)
		drawPanel(dst, f, []panelLine{
			{v.Text.Title, f.Title, core.ColorBrightCyan},
			{v.Text.Final + fmt.Sprint(v.Final), f.Body, core.ColorDefault},
			{v.Text.Prev + fmt.Sprint(v.Prev), f.Body, core.ColorDefault},
			{v.Text.Restart, f.Body, core.ColorGreen},
		})
		drawConfetti(dst, v)
	default:
		drawStart(dst, v, f)
	}
}

func drawEntities(dst *ebiten.Image, v catch.View) {
	r := float32(v.Radius)
	for _, e := range v.Entities {
		c := dropColor
		if e.Kind == catch.Harmful {
			c = pollutColor
		}
		vector.DrawFilledCircle(dst, float32(e.X), float32(e.Y), r, c, true)
	}
}

func drawCatcher(dst *ebiten.Image, v catch.View) {
	b := v.Catcher
	x, y, w, h := float32(b.X), float32(b.Y), float32(b.W), float32(b.H)
	vector.DrawFilledRect(dst, x, y, w, h, bucketColor, true)
	vector.StrokeRect(dst, x, y, w, h, 2, rimColor, true)
	// handle
	vector.StrokeLine(dst, x+w*0.2, y, x+w*0.5, y-h*0.4, 2, rimColor, true)
	vector.StrokeLine(dst, x+w*0.5, y-h*0.4, x+w*0.8, y, 2, rimColor, true)
}

func drawConfetti(dst *ebiten.Image, v catch.View) {
	u := v.ConfettiUnit
	for _, p := range v.Confetti {
		x := p.X + p.Tilt*u
		r := p.R * u
		vector.StrokeLine(dst,
			float32(x+r/4), float32(p.Y),
			float32(x), float32(p.Y+p.Tilt*u+r/4),
			float32(r/2), rgba(p.Color), true)
	}
}

func drawHUD(dst *ebiten.Image, v catch.View, f Fonts) {
	w := float64(dst.Bounds().Dx())
	h := float64(dst.Bounds().Dy())

	drawText(dst, v.Text.Score(v.Score), f.HUD, hudMargin, hudMargin, text.AlignStart, rgba(core.ColorDefault))

	timerColor := rgba(core.ColorDefault)
	if v.TimeLeft <= 5 {
		timerColor = rgba(core.ColorRed)
	}
	drawText(dst, v.Text.Timer(v.TimeLeft), f.HUD, w-hudMargin, hudMargin, text.AlignEnd, timerColor)

	if v.Feedback != "" {
		y := hudMargin + f.HUD.Size*lineSpacing
		drawText(dst, v.Feedback, f.Body, w/2, y, text.AlignCenter, rgba(feedbackColor(v.FeedbackKind)))
	}
	if v.Muted {
		drawText(dst, v.Text.Muted, f.Body, hudMargin, h-hudMargin-f.Body.Size, text.AlignStart, rgba(core.ColorGray))
	}
}

func feedbackColor(k catch.EventKind) core.Color {
	switch k {
	case catch.EventCollected:
		return core.ColorGreen
	case catch.EventMilestone:
		return core.ColorMagenta
	default:
		return core.ColorRed
	}
}

func drawStart(dst *ebiten.Image, v catch.View, f Fonts) {
	maxW := float64(dst.Bounds().Dx()) - 4*panelPad

	lines := []panelLine{{v.Text.Title, f.Title, core.ColorBrightCyan}}
	for _, l := range wrap(v.Text.Mission, f.Body, maxW) {
		lines = append(lines, panelLine{l, f.Body, core.ColorDefault})
	}
	for _, l := range wrap(v.Text.Instructions, f.Body, maxW) {
		lines = append(lines, panelLine{l, f.Body, core.ColorBlue})
	}
	for _, l := range wrap(v.Text.Controls, f.Body, maxW) {
		lines = append(lines, panelLine{l, f.Body, core.ColorGray})
	}
	lines = append(lines,
		panelLine{v.Text.Difficulty + difficultyLabel(v), f.Body, core.ColorDefault},
		panelLine{v.Text.Prev + fmt.Sprint(v.Prev), f.Body, core.ColorDefault},
		panelLine{v.Text.Start, f.Title, core.ColorGreen},
	)
	drawPanel(dst, f, lines)
}

func difficultyLabel(v catch.View) string {
	switch v.Difficulty {
	case config.DifficultyEasy:
		return v.Text.Easy
	case config.DifficultyHard:
		return v.Text.Hard
	default:
		return v.Text.Medium
	}
}

type panelLine struct {
	text  string
	face  *text.GoTextFace
	color core.Color
}

// drawPanel shades the canvas and draws a centered card holding lines.
func drawPanel(dst *ebiten.Image, f Fonts, lines []panelLine) {
	cw := float64(dst.Bounds().Dx())
	ch := float64(dst.Bounds().Dy())

	inner, height := 0.0, 0.0
	for _, l := range lines {
		inner = max(inner, text.Advance(l.text, l.face))
		height += l.face.Size * lineSpacing
	}
	w := min(inner+2*panelPad, cw-panelPad)
	h := min(height+2*panelPad, ch-panelPad)
	x := (cw - w) / 2
	y := (ch - h) / 2

	vector.DrawFilledRect(dst, 0, 0, float32(cw), float32(ch), shadeColor, false)
	vector.DrawFilledRect(dst, float32(x), float32(y), float32(w), float32(h), panelColor, true)
	vector.StrokeRect(dst, float32(x), float32(y), float32(w), float32(h), 2, rgba(core.ColorCyan), true)

	ty := y + panelPad
	for _, l := range lines {
		drawText(dst, l.text, l.face, cw/2, ty, text.AlignCenter, rgba(l.color))
		ty += l.face.Size * lineSpacing
	}
}

func drawText(dst *ebiten.Image, s string, face *text.GoTextFace, x, y float64, align text.Align, c color.Color) {
	if s == "" {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	op.PrimaryAlign = align
	text.Draw(dst, s, face, op)
}
