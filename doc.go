// Package genji is a small 2D game engine for Go.
//
// # Overview
//
// genji owns the window and render loop, a minimal entity/sprite model on
// top of an external ECS, shader-based primitive rendering, asset loading
// (images, fonts, sounds), and input polling. A game is expressed as three
// callbacks: init builds the game state and the ECS world, onloop runs once
// per frame, and close runs exactly once on shutdown.
//
// # Quick Start
//
//	type pong struct{ score int }
//
//	func main() {
//	    err := genji.Run(
//	        func() (*genji.State[pong], *lazyecs.World) {
//	            state := genji.NewState(pong{},
//	                genji.WithTitle("pong"),
//	                genji.WithSize(800, 600),
//	                genji.WithClearColor(genji.Black),
//	            )
//	            world := lazyecs.NewWorld()
//	            ball := world.CreateEntity()
//	            lazyecs.SetComponent(world, ball, shape.NewCircle(20))
//	            lazyecs.SetComponent(world, ball, shape.Pt(0, 0))
//	            return state, world
//	        },
//	        func(state *genji.State[pong], world *lazyecs.World, player *audio.Player) bool {
//	            return state.Keys.Down(input.KeyEsc)
//	        },
//	        func(state *genji.State[pong], world *lazyecs.World) {},
//	    )
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	}
//
// # Architecture
//
// The module is organized into:
//   - Public API: Run, State, Config options, Color
//   - shape: primitive shapes, points, containment tests
//   - sprite: sprite components, textures, fonts, spritemaps
//   - input: key and mouse state tables
//   - graphics: vertex buffers, matrices, WGSL shaders, rasterizer
//   - audio: sound and music playback
//   - store: named asset registries
//
// # Coordinate System
//
// genji uses a centered coordinate system:
//   - Origin (0,0) at window center
//   - X increases right, Y increases up
//   - The logical range -400..400 maps to clip space -1..1
//   - Angles in degrees, rotating clockwise
//
// # Caveats
//
// The frame loop is single-threaded and not framerate independent: game
// logic runs at the configured FPS target, and a slow frame slows the
// whole game down.
package genji

// Version information
const (
	// Version is the current version of the engine.
	Version = "0.2.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 2

	// VersionPatch is the patch version
	VersionPatch = 0
)
