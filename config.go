package genji

// Defaults for window configuration.
const (
	// DefaultWidth is the window width used when WithSize is not given.
	DefaultWidth = 640

	// DefaultHeight is the window height used when WithSize is not given.
	DefaultHeight = 480

	// DefaultFPS is the frame rate target used when WithFPS is not given.
	DefaultFPS = 30
)

// Option configures a State during creation.
// Use functional options to customize window and loop behavior.
//
// Example:
//
//	state := genji.NewState(game{},
//	    genji.WithTitle("asteroids"),
//	    genji.WithSize(800, 600),
//	    genji.WithFPS(60),
//	    genji.WithClearColor(genji.Black),
//	)
type Option func(*config)

// config holds optional configuration applied by NewState.
type config struct {
	title      string
	width      int
	height     int
	fps        int
	clearColor *Color
}

// defaultConfig returns the documented defaults: an untitled 640x480
// window at 30 FPS that never clears the screen.
func defaultConfig() config {
	return config{
		title:  "genji",
		width:  DefaultWidth,
		height: DefaultHeight,
		fps:    DefaultFPS,
	}
}

// WithTitle sets the window title.
func WithTitle(title string) Option {
	return func(c *config) {
		c.title = title
	}
}

// WithSize sets the window dimensions in pixels.
// Non-positive values keep the defaults.
func WithSize(width, height int) Option {
	return func(c *config) {
		if width > 0 {
			c.width = width
		}
		if height > 0 {
			c.height = height
		}
	}
}

// WithFPS sets the frame rate target. The loop sleeps out the remainder
// of each frame budget; it does not compensate for slow frames.
// Non-positive values keep the default.
func WithFPS(fps int) Option {
	return func(c *config) {
		if fps > 0 {
			c.fps = fps
		}
	}
}

// WithClearColor sets the color the screen is cleared to before each
// frame. Without this option the screen is never cleared, and each
// frame draws over the last.
func WithClearColor(col Color) Option {
	return func(c *config) {
		cc := col
		c.clearColor = &cc
	}
}
