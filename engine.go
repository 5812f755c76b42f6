package genji

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/edwinsyarief/lazyecs"
	"github.com/gogpu/gogpu"
	"github.com/gogpu/gpucontext"

	"github.com/genji-engine/genji/audio"
	"github.com/genji-engine/genji/graphics"
	"github.com/genji-engine/genji/input"
	"github.com/genji-engine/genji/internal/logging"
)

// scrollLine is how many engine units one scroll wheel line moves.
const scrollLine = 40

// Run opens the window and drives the game loop until the game ends.
//
// init runs once before the window opens and builds the engine state
// and the ECS world. onloop runs once per frame; returning true ends
// the game. closeFn runs exactly once on shutdown, whether the game
// ended itself or the window was closed.
//
// Run blocks until shutdown and must be called from the main
// goroutine.
func Run[T any](
	init func() (*State[T], *lazyecs.World),
	onloop func(*State[T], *lazyecs.World, *audio.Player) bool,
	closeFn func(*State[T], *lazyecs.World),
) error {
	RegisterComponents()

	state, world := init()
	if state == nil {
		return fmt.Errorf("genji: init returned nil state")
	}

	// Fail fast on shader breakage before any window appears.
	if _, err := graphics.CompileShaders(); err != nil {
		return fmt.Errorf("genji: compile shaders: %w", err)
	}
	logging.Logger().Info("shaders compiled")

	// A broken audio device should not stop the game. Play on a nil
	// player is a logged no-op.
	player, err := audio.NewPlayer()
	if err != nil {
		logging.Logger().Warn("audio unavailable", "err", err)
		player = nil
	}

	app := gogpu.NewApp(gogpu.DefaultConfig().
		WithTitle(state.Title).
		WithSize(state.Width, state.Height).
		WithContinuousRender(true))

	frame := graphics.NewFrame(state.Width, state.Height)
	presenter := graphics.NewPresenter()

	wireInput(app, state)

	// The window system honors OS close requests unconditionally, so a
	// shutdown not started by the game loop was the OS asking.
	quitViaLoop := false

	var closeOnce sync.Once
	shutdown := func() {
		closeOnce.Do(func() {
			if !quitViaLoop {
				state.AskedToClose = true
			}
			closeFn(state, world)
			presenter.Close()
			logging.Logger().Info("engine shut down")
		})
	}
	app.OnClose(shutdown)

	last := time.Now()
	app.OnDraw(func(dc *gogpu.Context) {
		if w, h := dc.Width(), dc.Height(); w != state.Width || h != state.Height {
			state.Width, state.Height = w, h
			frame.Resize(w, h)
		}

		if state.ClearColor != nil {
			frame.Clear(state.ClearColor.Floats())
		}

		quit := onloop(state, world, player)

		drawWorld(frame, world)
		if err := presenter.Present(dc.AsTextureDrawer(), frame.Pixmap()); err != nil {
			logging.Logger().Warn("frame present failed", "err", err)
		}
		state.endFrame()

		// Sleep out the frame budget. Delta never reads below it, so a
		// fast frame and an on-budget frame look the same to the game.
		elapsed := time.Since(last)
		if elapsed < state.frameBudget {
			time.Sleep(state.frameBudget - elapsed)
			elapsed = state.frameBudget
		}
		state.Delta = elapsed.Milliseconds()
		last = time.Now()

		if quit {
			quitViaLoop = true
			app.Quit()
		}
	})

	err = app.Run()
	shutdown()
	return err
}

// wireInput connects window events to the state's input fields.
func wireInput[T any](app *gogpu.App, state *State[T]) {
	es := app.EventSource()

	es.OnKeyPress(func(key gpucontext.Key, _ gpucontext.Modifiers) {
		for _, k := range input.FromWindow(key) {
			state.press(k)
		}
	})
	es.OnKeyRelease(func(key gpucontext.Key, _ gpucontext.Modifiers) {
		for _, k := range input.FromWindow(key) {
			state.release(k)
		}
	})
	es.OnMousePress(func(button gpucontext.MouseButton, _, _ float64) {
		state.press(input.MouseButton(button))
	})
	es.OnMouseRelease(func(button gpucontext.MouseButton, _, _ float64) {
		state.release(input.MouseButton(button))
	})
	es.OnMouseMove(func(x, y float64) {
		state.MouseX, state.MouseY = graphics.MouseCoords(x, y, state.Width, state.Height)
	})

	// Detailed scroll events carry the delta unit; without them assume
	// line deltas.
	if ses, ok := es.(gpucontext.ScrollEventSource); ok {
		ses.OnScrollEvent(func(ev gpucontext.ScrollEvent) {
			state.Scroll += scrollUnits(ev, state.Height)
		})
	} else {
		es.OnScroll(func(_, dy float64) {
			state.Scroll += int(math.Round(-dy * scrollLine))
		})
	}
}

// scrollUnits converts a scroll delta to engine units, positive away
// from the user. Line and page deltas move a whole line's worth;
// pixel deltas convert through the window height.
func scrollUnits(ev gpucontext.ScrollEvent, height int) int {
	if ev.DeltaMode == gpucontext.ScrollDeltaPixel {
		return graphics.PxCoord(-ev.DeltaY, height)
	}
	return int(math.Round(-ev.DeltaY * scrollLine))
}
