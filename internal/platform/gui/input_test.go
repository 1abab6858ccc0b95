package gui

import (
	"reflect"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/dropcatch/internal/core"
)

// fakeTouches is one tick of touch state. next moves it to the following
// tick, keeping positions as the previous ones.
type fakeTouches struct {
	pressed  []ebiten.TouchID
	released []ebiten.TouchID
	active   []ebiten.TouchID
	pos      map[ebiten.TouchID]int
	prev     map[ebiten.TouchID]int
}

func newFakeTouches() *fakeTouches {
	return &fakeTouches{pos: map[ebiten.TouchID]int{}, prev: map[ebiten.TouchID]int{}}
}

func (f *fakeTouches) AppendJustPressed(ids []ebiten.TouchID) []ebiten.TouchID {
	return append(ids, f.pressed...)
}

func (f *fakeTouches) AppendJustReleased(ids []ebiten.TouchID) []ebiten.TouchID {
	return append(ids, f.released...)
}

func (f *fakeTouches) AppendActive(ids []ebiten.TouchID) []ebiten.TouchID {
	return append(ids, f.active...)
}

func (f *fakeTouches) Position(id ebiten.TouchID) (int, int) { return f.pos[id], 0 }

func (f *fakeTouches) PreviousPosition(id ebiten.TouchID) (int, int) { return f.prev[id], 0 }

func (f *fakeTouches) next() {
	f.pressed, f.released = nil, nil
	for id, x := range f.pos {
		f.prev[id] = x
	}
}

func (f *fakeTouches) down(id ebiten.TouchID, x int) {
	f.pressed = append(f.pressed, id)
	f.active = append(f.active, id)
	f.pos[id] = x
}

func (f *fakeTouches) up(id ebiten.TouchID) {
	f.released = append(f.released, id)
	for i, a := range f.active {
		if a == id {
			f.active = append(f.active[:i], f.active[i+1:]...)
			break
		}
	}
	delete(f.pos, id)
}

func touchTick(r *inputReader, src *fakeTouches, running bool) []core.InputEvent {
	frame := core.NewInputFrame()
	r.readTouches(&frame, running)
	src.next()
	return frame.Events()
}

func pointer(kind core.PointerKind, x float64) core.InputEvent {
	return core.PointerEvent(kind, x)
}

func TestTapToStartThenDrag(t *testing.T) {
	src := newFakeTouches()
	r := newInputReader(src)

	src.down(1, 100)
	if got := touchTick(r, src, false); !reflect.DeepEqual(got, []core.InputEvent{core.KeyEvent(core.ActionConfirm)}) {
		t.Fatalf("tap on the start screen = %v, expected only Confirm", got)
	}

	// The round is running now and the same finger drags.
	if got := touchTick(r, src, true); len(got) != 0 {
		t.Errorf("held finger without motion = %v, expected nothing", got)
	}
	src.pos[1] = 140
	if got := touchTick(r, src, true); !reflect.DeepEqual(got, []core.InputEvent{pointer(core.TouchMove, 140)}) {
		t.Errorf("drag after the starting tap = %v, expected TouchMove to 140", got)
	}

	src.up(1)
	if got := touchTick(r, src, true); !reflect.DeepEqual(got, []core.InputEvent{pointer(core.TouchEnd, 140)}) {
		t.Errorf("lift = %v, expected TouchEnd at 140", got)
	}
}

func TestSecondFingerIgnored(t *testing.T) {
	src := newFakeTouches()
	r := newInputReader(src)

	src.down(1, 50)
	if got := touchTick(r, src, true); !reflect.DeepEqual(got, []core.InputEvent{pointer(core.TouchStart, 50)}) {
		t.Fatalf("first finger = %v, expected TouchStart at 50", got)
	}

	src.down(2, 300)
	if got := touchTick(r, src, true); len(got) != 0 {
		t.Errorf("second finger down = %v, expected nothing", got)
	}
	src.pos[2] = 320
	src.pos[1] = 60
	if got := touchTick(r, src, true); !reflect.DeepEqual(got, []core.InputEvent{pointer(core.TouchMove, 60)}) {
		t.Errorf("both fingers moved = %v, expected only the first to steer", got)
	}

	// The first finger lifts; the second takes over once it moves.
	src.up(1)
	if got := touchTick(r, src, true); !reflect.DeepEqual(got, []core.InputEvent{pointer(core.TouchEnd, 60)}) {
		t.Errorf("first finger lifted = %v, expected TouchEnd at 60", got)
	}
	src.pos[2] = 250
	if got := touchTick(r, src, true); !reflect.DeepEqual(got, []core.InputEvent{pointer(core.TouchMove, 250)}) {
		t.Errorf("remaining finger moved = %v, expected TouchMove to 250", got)
	}
}

func TestTouchIgnoredOffRoundExceptTap(t *testing.T) {
	src := newFakeTouches()
	r := newInputReader(src)

	src.down(3, 10)
	touchTick(r, src, false)
	src.pos[3] = 90
	if got := touchTick(r, src, false); len(got) != 0 {
		t.Errorf("drag on the end screen = %v, expected nothing", got)
	}
	src.up(3)
	if got := touchTick(r, src, false); len(got) != 0 {
		t.Errorf("lift on the end screen = %v, expected nothing", got)
	}
	if r.hasPrimary {
		t.Error("lifted finger should no longer steer")
	}
}
