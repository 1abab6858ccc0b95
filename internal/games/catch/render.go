package catch

import (
	"fmt"
	"math"

	"github.com/vovakirdan/dropcatch/internal/config"
	"github.com/vovakirdan/dropcatch/internal/core"
)

// Glyphs for the terminal front end.
const (
	DropChar      = '●'
	PollutantChar = '◆'
	BucketChar    = '▀'
	ConfettiChar  = '▪'
	FloorChar     = '─'
)

// Render draws the current view into a cell screen whose size matches the
// viewport. Entities are drawn at their leading edge, the row where they
// meet the catcher.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	v := g.View()

	switch v.Phase {
	case PhaseRunning:
		drawPlayfield(dst, v)
		drawHUD(dst, v)
		if v.Paused {
			drawPanel(dst, []panelLine{
				{v.Text.Paused, core.ColorBrightYellow},
				{v.Text.Resume, core.ColorGray},
			})
		}
	case PhaseEnded:
		drawHUD(dst, v)
		drawConfetti(dst, v)
		drawPanel(dst, []panelLine{
			{v.Text.Title, core.ColorBrightCyan},
			{v.Text.Final + fmt.Sprint(v.Final), core.ColorBrightYellow},
			{v.Text.Prev + fmt.Sprint(v.Prev), core.ColorWhite},
			{"", core.ColorDefault},
			{"[Enter] " + v.Text.Restart + "   [Esc] " + v.Text.Start, core.ColorGreen},
		})
	default:
		drawStart(dst, v)
	}
}

func drawPlayfield(dst *core.Screen, v View) {
	floor := int(math.Round(v.Catcher.Bottom()))
	dst.DrawHLine(0, floor, dst.Width(), FloorChar, core.ColorGray)

	for _, e := range v.Entities {
		x := int(e.X)
		y := int(e.Y + v.Radius)
		if e.Kind == Harmful {
			dst.SetColored(x, y, PollutantChar, core.ColorBrown)
		} else {
			dst.SetColored(x, y, DropChar, core.ColorBrightCyan)
		}
	}

	cx := int(math.Round(v.Catcher.X))
	cw := max(1, int(math.Round(v.Catcher.W)))
	cy := int(v.Catcher.Y)
	for dy := 0; dy < max(1, int(v.Catcher.H)); dy++ {
		dst.DrawHLine(cx, cy+dy, cw, BucketChar, core.ColorBlue)
	}
}

func drawHUD(dst *core.Screen, v View) {
	dst.DrawHLine(0, 0, dst.Width(), ' ', core.ColorDefault)
	dst.DrawTextColored(1, 0, v.Text.Score(v.Score), core.ColorBrightYellow)

	timer := v.Text.Timer(v.TimeLeft)
	timerColor := core.ColorWhite
	if v.TimeLeft <= 5 {
		timerColor = core.ColorRed
	}
	dst.DrawTextColored(dst.Width()-core.TextWidth(timer)-1, 0, timer, timerColor)

	if v.Feedback != "" {
		dst.DrawTextCentered(0, v.Feedback, feedbackColor(v.FeedbackKind))
	}
	if v.Muted {
		dst.DrawTextColored(1, dst.Height()-1, v.Text.Muted, core.ColorGray)
	}
}

func feedbackColor(k EventKind) core.Color {
	switch k {
	case EventCollected:
		return core.ColorGreen
	case EventMilestone:
		return core.ColorMagenta
	default:
		return core.ColorRed
	}
}

func drawConfetti(dst *core.Screen, v View) {
	for _, p := range v.Confetti {
		x := int(p.X + p.Tilt*v.ConfettiUnit)
		dst.SetColored(x, int(p.Y), ConfettiChar, p.Color)
	}
}

func drawStart(dst *core.Screen, v View) {
	lines := []panelLine{
		{v.Text.Title, core.ColorBrightCyan},
		{"", core.ColorDefault},
	}
	width := min(dst.Width()-6, 60)
	for _, l := range core.Wrap(v.Text.Mission, width) {
		lines = append(lines, panelLine{l, core.ColorWhite})
	}
	lines = append(lines, panelLine{"", core.ColorDefault})
	for _, l := range core.Wrap(v.Text.Instructions, width) {
		lines = append(lines, panelLine{l, core.ColorBlue})
	}
	lines = append(lines,
		panelLine{v.Text.Controls, core.ColorGray},
		panelLine{"", core.ColorDefault},
		panelLine{v.Text.Difficulty + difficultyLabel(v), core.ColorWhite},
		panelLine{v.Text.Prev + fmt.Sprint(v.Prev), core.ColorWhite},
		panelLine{"", core.ColorDefault},
		panelLine{"[Enter] " + v.Text.Start, core.ColorGreen},
	)
	drawPanel(dst, lines)
}

func difficultyLabel(v View) string {
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
	color core.Color
}

// drawPanel draws a centered box sized to its lines.
func drawPanel(dst *core.Screen, lines []panelLine) {
	inner := 0
	for _, l := range lines {
		inner = max(inner, core.TextWidth(l.text))
	}
	w := min(inner+4, dst.Width())
	h := min(len(lines)+2, dst.Height())
	x := (dst.Width() - w) / 2
	y := (dst.Height() - h) / 2

	box := core.NewRect(x, y, w, h)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorCyan)
	for i, l := range lines {
		if i+1 >= h-1 {
			break
		}
		dst.DrawTextCentered(y+1+i, l.text, l.color)
	}
}
