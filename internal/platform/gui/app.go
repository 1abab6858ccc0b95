// Package gui runs the catcher game in a desktop or mobile window with
// ebiten. The play area is 600x500, or 320x400 when the window is narrower
// than 700 pixels.
package gui

import (
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/dropcatch/internal/core"
	"github.com/vovakirdan/dropcatch/internal/games/catch"
	"github.com/vovakirdan/dropcatch/internal/locale"
)

// Canvas sizes in pixels.
const (
	WideW         = 600
	WideH         = 500
	NarrowW       = 320
	NarrowH       = 400
	narrowBelow   = 700 // outside width under which the narrow canvas is used
	narrowScale   = 0.8 // font scale on the narrow canvas
	windowPadding = 60
)

// CanvasSize picks the play area for a window of the given outside width.
func CanvasSize(outsideW int) (w, h int) {
	if outsideW < narrowBelow {
		return NarrowW, NarrowH
	}
	return WideW, WideH
}

// Options configure the window front end.
type Options struct {
	Runtime  core.RuntimeConfig // ScreenW/ScreenH are ignored
	FontPath string
	Logger   *log.Logger
}

// App adapts a catch.Game to ebiten.Game.
type App struct {
	game   *catch.Game
	rc     core.RuntimeConfig
	logger *log.Logger
	input  *inputReader
	frame  core.InputFrame

	wide   Fonts
	narrow Fonts

	// Canvas size requested by the latest Layout, applied on the next
	// Update so the game is only touched from Update.
	wantW, wantH int
}

// NewApp creates the window front end and resets the game to its start
// screen on the wide canvas.
func NewApp(game *catch.Game, opts Options) (*App, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	rc := opts.Runtime
	if rc.Seed == 0 {
		rc.Seed = time.Now().UnixNano()
	}
	rc.TickRate = ebiten.DefaultTPS
	rc.ScreenW, rc.ScreenH = WideW, WideH

	tag := locale.Match(rc.Locale)
	wide, err := LoadFonts(opts.FontPath, tag, 1)
	if err != nil {
		return nil, err
	}
	narrow, err := LoadFonts(opts.FontPath, tag, narrowScale)
	if err != nil {
		return nil, err
	}

	game.Reset(rc)
	return &App{
		game:   game,
		rc:     rc,
		logger: logger,
		input:  newInputReader(ebitenTouches{}),
		frame:  core.NewInputFrame(),
		wide:   wide,
		narrow: narrow,
		wantW:  rc.ScreenW,
		wantH:  rc.ScreenH,
	}, nil
}

// Update advances the game by one tick.
func (a *App) Update() error {
	if a.wantW != a.rc.ScreenW || a.wantH != a.rc.ScreenH {
		a.rc.ScreenW, a.rc.ScreenH = a.wantW, a.wantH
		a.game.Resize(a.rc.ScreenW, a.rc.ScreenH)
		a.logger.Debug("canvas resized", "w", a.rc.ScreenW, "h", a.rc.ScreenH)
	}

	a.input.read(&a.frame, a.rc.ScreenW, a.rc.ScreenH, a.game.State().Running)
	quit := a.frame.Has(core.ActionQuit)
	a.game.Step(a.frame)
	a.frame.Clear()
	if quit {
		return ebiten.Termination
	}
	return nil
}

// Draw renders the current view.
func (a *App) Draw(screen *ebiten.Image) {
	fonts := a.wide
	if a.rc.ScreenW == NarrowW {
		fonts = a.narrow
	}
	drawView(screen, a.game.View(), fonts)
}

// Layout returns the responsive canvas size.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	a.wantW, a.wantH = CanvasSize(outsideWidth)
	return a.wantW, a.wantH
}

// Run opens the window and blocks until it is closed or the player quits.
func Run(game *catch.Game, opts Options) error {
	app, err := NewApp(game, opts)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(WideW+2*windowPadding, WideH+2*windowPadding)
	ebiten.SetWindowTitle(game.Text().Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(app); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
