package catch

import "github.com/vovakirdan/dropcatch/internal/core"

func catcherBox(x float64, g Geometry) core.Box {
	return core.Box{X: x, Y: g.CatcherY, W: g.CatcherW, H: g.CatcherH}
}

// ClampCatcher keeps a catcher position inside [0, W-catcherW].
func ClampCatcher(x float64, g Geometry) float64 {
	return core.ClampF(x, 0, g.MaxCatcherX())
}

// CenterCatcher returns the position that centers the catcher.
func CenterCatcher(g Geometry) float64 {
	return ClampCatcher(g.W/2-g.CatcherW/2, g)
}

// ApplyInput moves the catcher for one input event. Keys nudge by the
// catcher speed; pointer motion and touch start/move center the catcher on
// the reported x. Touch end and non-movement actions are ignored, as is
// any input outside a running round.
func ApplyInput(rs *RoundState, ev core.InputEvent, g Geometry) {
	if rs.Phase != PhaseRunning {
		return
	}

	switch ev.Pointer {
	case core.PointerMove, core.TouchStart, core.TouchMove:
		rs.CatcherX = ClampCatcher(ev.X-g.CatcherW/2, g)
		return
	case core.TouchEnd:
		return
	}

	switch ev.Action {
	case core.ActionLeft:
		rs.CatcherX = ClampCatcher(rs.CatcherX-g.CatcherSpeed, g)
	case core.ActionRight:
		rs.CatcherX = ClampCatcher(rs.CatcherX+g.CatcherSpeed, g)
	}
}
