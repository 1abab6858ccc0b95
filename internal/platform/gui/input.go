package gui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/dropcatch/internal/core"
)

// Held arrow keys repeat like a desktop keyboard: once on press, then every
// third tick after half a second.
const (
	repeatDelay    = 30
	repeatInterval = 3
)

// repeats reports whether a key held for the given number of ticks fires.
func repeats(duration int) bool {
	return duration == 1 || (duration >= repeatDelay && duration%repeatInterval == 0)
}

var (
	leftKeys  = []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}
	rightKeys = []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}
)

var pressActions = []struct {
	keys   []ebiten.Key
	action core.Action
}{
	{[]ebiten.Key{ebiten.KeyEnter, ebiten.KeySpace}, core.ActionConfirm},
	{[]ebiten.Key{ebiten.KeyP}, core.ActionPause},
	{[]ebiten.Key{ebiten.KeyM}, core.ActionMute},
	{[]ebiten.Key{ebiten.KeyEscape, ebiten.KeyB}, core.ActionBack},
	{[]ebiten.Key{ebiten.KeyQ}, core.ActionQuit},
}

// touchSource is the polled touch state for one tick.
type touchSource interface {
	AppendJustPressed(ids []ebiten.TouchID) []ebiten.TouchID
	AppendJustReleased(ids []ebiten.TouchID) []ebiten.TouchID
	AppendActive(ids []ebiten.TouchID) []ebiten.TouchID
	Position(id ebiten.TouchID) (x, y int)
	PreviousPosition(id ebiten.TouchID) (x, y int)
}

type ebitenTouches struct{}

func (ebitenTouches) AppendJustPressed(ids []ebiten.TouchID) []ebiten.TouchID {
	return inpututil.AppendJustPressedTouchIDs(ids)
}

func (ebitenTouches) AppendJustReleased(ids []ebiten.TouchID) []ebiten.TouchID {
	return inpututil.AppendJustReleasedTouchIDs(ids)
}

func (ebitenTouches) AppendActive(ids []ebiten.TouchID) []ebiten.TouchID {
	return ebiten.AppendTouchIDs(ids)
}

func (ebitenTouches) Position(id ebiten.TouchID) (int, int) {
	return ebiten.TouchPosition(id)
}

func (ebitenTouches) PreviousPosition(id ebiten.TouchID) (int, int) {
	return inpututil.TouchPositionInPreviousTick(id)
}

// inputReader turns ebiten's polled input state into discrete events.
// Only one finger steers: the first one down. Other fingers are ignored
// until it lifts, then the next finger still down takes over.
type inputReader struct {
	cursorX  int
	cursorY  int
	hasMouse bool

	touches    touchSource
	primary    ebiten.TouchID
	hasPrimary bool
	lastX      int // primary's x at the last reported event
	ids        []ebiten.TouchID
	active     []ebiten.TouchID
}

func newInputReader(src touchSource) *inputReader {
	return &inputReader{touches: src}
}

// read appends this tick's events to frame. Coordinates are already in
// canvas space because the canvas size comes from Layout. Outside a round a
// click or tap presses the start button instead.
func (r *inputReader) read(frame *core.InputFrame, canvasW, canvasH int, running bool) {
	for _, k := range leftKeys {
		if repeats(inpututil.KeyPressDuration(k)) {
			frame.Set(core.ActionLeft)
		}
	}
	for _, k := range rightKeys {
		if repeats(inpututil.KeyPressDuration(k)) {
			frame.Set(core.ActionRight)
		}
	}
	for _, pa := range pressActions {
		for _, k := range pa.keys {
			if inpututil.IsKeyJustPressed(k) {
				frame.Set(pa.action)
				break
			}
		}
	}

	r.readCursor(frame, canvasW, canvasH)
	if !running && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		frame.Set(core.ActionConfirm)
	}
	r.readTouches(frame, running)
}

// readCursor reports a pointer move when the mouse moved inside the canvas.
func (r *inputReader) readCursor(frame *core.InputFrame, canvasW, canvasH int) {
	x, y := ebiten.CursorPosition()
	if r.hasMouse && x == r.cursorX && y == r.cursorY {
		return
	}
	first := !r.hasMouse
	r.cursorX, r.cursorY, r.hasMouse = x, y, true
	if first || x < 0 || y < 0 || x >= canvasW || y >= canvasH {
		return
	}
	frame.Push(core.PointerEvent(core.PointerMove, float64(x)))
}

// readTouches follows the primary finger. While no round runs a new touch
// presses the start button and becomes the primary, so a tap that starts
// the round can keep dragging the catcher.
func (r *inputReader) readTouches(frame *core.InputFrame, running bool) {
	r.ids = r.touches.AppendJustReleased(r.ids[:0])
	for _, id := range r.ids {
		if !r.hasPrimary || id != r.primary {
			continue
		}
		r.hasPrimary = false
		if running {
			x, _ := r.touches.PreviousPosition(id)
			frame.Push(core.PointerEvent(core.TouchEnd, float64(x)))
		}
		r.adoptHeld(id)
	}

	r.ids = r.touches.AppendJustPressed(r.ids[:0])
	if len(r.ids) > 0 && !running {
		frame.Set(core.ActionConfirm)
	}
	if !r.hasPrimary && len(r.ids) > 0 {
		r.primary, r.hasPrimary = r.ids[0], true
		r.lastX, _ = r.touches.Position(r.primary)
		if running {
			frame.Push(core.PointerEvent(core.TouchStart, float64(r.lastX)))
		}
		return
	}

	if !r.hasPrimary || !running {
		return
	}
	if x, _ := r.touches.Position(r.primary); x != r.lastX {
		r.lastX = x
		frame.Push(core.PointerEvent(core.TouchMove, float64(x)))
	}
}

// adoptHeld hands steering to the first finger still down after the
// primary lifted. It moves the catcher only once that finger moves.
func (r *inputReader) adoptHeld(released ebiten.TouchID) {
	r.active = r.touches.AppendActive(r.active[:0])
	for _, id := range r.active {
		if id == released {
			continue
		}
		r.primary, r.hasPrimary = id, true
		r.lastX, _ = r.touches.Position(id)
		return
	}
}
