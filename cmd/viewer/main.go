// Command viewer generates a world and shows the chunk meshes in an orbit
// view. Drag with the left mouse button to orbit, scroll to zoom, right
// click to remove a block (shift+right click to place one), press Space to
// dig the column under the target and Esc to quit.
package main

import (
	"flag"
	"log"
	"math"
	"runtime"
	"time"

	"voxel-mesher/internal/config"
	"voxel-mesher/internal/graphics"
	"voxel-mesher/internal/meshing"
	"voxel-mesher/internal/physics"
	"voxel-mesher/internal/profiling"
	"voxel-mesher/internal/world"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/xlab/closer"
)

const (
	winW = 1280
	winH = 720
)

var placeColor = mgl32.Vec4{0.85, 0.3, 0.25, 1}

func init() {
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "", "world config (YAML); defaults when empty")
	flag.Parse()

	defer closer.Close()

	cfg, err := config.Load(*configPath)
	if err != nil {
		closer.Fatalln(err)
	}

	w, err := world.New(cfg.ChunkSize)
	if err != nil {
		closer.Fatalln(err)
	}
	n := w.Generate(world.NewGenerator(cfg.World.Heights()), cfg.World.From(), cfg.World.To(), cfg.World.Seed)
	log.Printf("generated %d chunks of %d^3", n, cfg.ChunkSize)

	// GL state belongs to this locked thread, so its cleanup stays in
	// plain defers rather than closer hooks.
	if err := glfw.Init(); err != nil {
		panic(err)
	}
	defer glfw.Terminate()

	window, err := setupWindow(winW, winH)
	if err != nil {
		panic(err)
	}

	chunks, err := graphics.NewChunkRenderer(cfg.ChunkSize)
	if err != nil {
		panic(err)
	}
	defer chunks.Dispose()

	cam := graphics.NewOrbitCamera(worldCenter(cfg), float32(cfg.ChunkSize*4), winW, winH)
	fbW, fbH := window.GetFramebufferSize()
	gl.Viewport(0, 0, int32(fbW), int32(fbH))

	v := &viewer{
		world:  w,
		camera: cam,
		top:    (cfg.World.To().Y+1)*cfg.ChunkSize - 1,
		bottom: cfg.World.From().Y * cfg.ChunkSize,
	}
	setupInputHandlers(window, v)

	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.FrontFace(gl.CCW)
	gl.ClearColor(0.53, 0.71, 0.92, 1.0)

	fpsTicker := time.NewTicker(time.Second)
	defer fpsTicker.Stop()
	frames := 0

	for !window.ShouldClose() {
		if built := meshing.RemeshDirty(w, chunks); built > 0 {
			log.Printf("remeshed %d chunks", built)
		}

		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
		chunks.Draw(cam)

		window.SwapBuffers()
		glfw.PollEvents()
		frames++

		select {
		case <-fpsTicker.C:
			window.SetTitle(title(frames, chunks))
			frames = 0
		default:
		}
	}
	log.Printf("profile: %s", profiling.TopN(5))
}

// viewer is the state touched by input callbacks.
type viewer struct {
	world    *world.World
	camera   *graphics.OrbitCamera
	top      int // highest and lowest generated block Y
	bottom   int
	dragging bool
	lastX    float64
	lastY    float64
}

// pick removes the block under the cursor, or with place set puts a block
// against the face the cursor points at.
func (v *viewer) pick(window *glfw.Window, place bool) {
	x, y := window.GetCursorPos()
	width, height := window.GetSize()
	origin, dir := v.camera.Ray(x, y, width, height)
	hit := physics.Raycast(origin, dir, physics.MinReachDistance, physics.MaxReachDistance, v.world)
	if !hit.Hit {
		return
	}
	if place {
		v.world.SetBlock(hit.AdjacentPosition, world.NewSolid(placeColor))
		return
	}
	v.world.SetBlock(hit.HitPosition, world.Air)
}

// dig clears the topmost solid block in the column under the camera target.
func (v *viewer) dig() {
	t := v.camera.Target
	x := int(math.Floor(float64(t.X()) + 0.5))
	z := int(math.Floor(float64(t.Z()) + 0.5))
	for y := v.top; y >= v.bottom; y-- {
		pos := world.BlockPos{X: x, Y: y, Z: z}
		if b, ok := v.world.Block(pos); ok && b.IsSolid() {
			v.world.SetBlock(pos, world.Air)
			return
		}
	}
}

func worldCenter(cfg config.Config) mgl32.Vec3 {
	lo := cfg.World.From().Origin(cfg.ChunkSize).Vec3()
	to := cfg.World.To()
	hi := world.ChunkCoord{X: to.X + 1, Y: to.Y + 1, Z: to.Z + 1}.Origin(cfg.ChunkSize).Vec3()
	c := lo.Add(hi).Mul(0.5)
	c[1] = float32(cfg.World.MinHeight+cfg.World.MaxHeight) / 2
	return c
}
