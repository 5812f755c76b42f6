package genji

import (
	"time"

	"github.com/genji-engine/genji/input"
)

// State carries everything the engine tracks between frames, plus the
// game's own data. The engine hands the same State to every callback;
// games read input and window fields from it and keep their world
// state in Data.
type State[T any] struct {
	// Title is the window title. Changing it after Run has no effect.
	Title string

	// Width and Height are the window dimensions in pixels, kept
	// current when the window is resized.
	Width  int
	Height int

	// ClearColor fills the window before each frame. When nil the
	// screen is never cleared and frames draw over each other.
	ClearColor *Color

	// Data is the game's own state.
	Data T

	// Keys are the keys and mouse buttons currently held. Pressed
	// holds only those that went down this frame, and resets after
	// every frame.
	Keys    input.Keys
	Pressed input.Keys

	// Delta is the previous frame's duration in milliseconds. It
	// never reads below the frame budget, since the loop sleeps out
	// the remainder.
	Delta int64

	// MouseX and MouseY are the cursor position in engine
	// coordinates: origin at the window center, y up.
	MouseX int
	MouseY int

	// Scroll is the scroll wheel movement this frame in engine units,
	// positive away from the user. Resets after every frame.
	Scroll int

	// AskedToClose reports that shutdown was started by the OS closing
	// the window rather than by the game loop. The window system honors
	// close requests unconditionally, so this is only readable in the
	// close callback.
	AskedToClose bool

	frameBudget time.Duration
}

// NewState creates engine state around the game's data, applying any
// options over the defaults: an untitled 640x480 window at 30 FPS
// that never clears the screen.
func NewState[T any](data T, opts ...Option) *State[T] {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &State[T]{
		Title:       cfg.title,
		Width:       cfg.width,
		Height:      cfg.height,
		ClearColor:  cfg.clearColor,
		Data:        data,
		Keys:        input.NewKeys(),
		Pressed:     input.NewKeys(),
		frameBudget: time.Second / time.Duration(cfg.fps),
	}
}

// FrameBudget is the target duration of one frame.
func (s *State[T]) FrameBudget() time.Duration {
	return s.frameBudget
}

// press records a key or button going down.
func (s *State[T]) press(k input.Key) {
	s.Keys.Set(k, true)
	s.Pressed.Set(k, true)
}

// release records a key or button going up. A release within the
// frame also retracts the press edge.
func (s *State[T]) release(k input.Key) {
	s.Keys.Set(k, false)
	s.Pressed.Set(k, false)
}

// endFrame resets the per-frame input accumulators.
func (s *State[T]) endFrame() {
	s.Pressed.Reset()
	s.Scroll = 0
}
