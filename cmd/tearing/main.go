// Command tearing renders a tessellated colored cube to a
// very-high-resolution display as fast as the swap chain allows, to
// reproduce a display tearing artifact under specific
// GPU/driver/cable combinations.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"runtime"
	"time"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/pborman/getopt/v2"
	log "github.com/sirupsen/logrus"

	"github.com/ReliaSolve/Reproduce-8K-Tearing/core"
	"github.com/ReliaSolve/Reproduce-8K-Tearing/mat"
	"github.com/ReliaSolve/Reproduce-8K-Tearing/model"
)

func init() {
	// The window, its context and event polling must share one OS
	// thread.
	runtime.LockOSThread()
}

func parseFlags() core.Configuration {
	cfg := core.DefaultConfiguration()

	fullScreenDisplay := getopt.IntLong("fullScreenDisplay", 'd', cfg.Display.FullScreenDisplay,
		"index of the display to go full screen on, -1 for windowed")
	width := getopt.IntLong("width", 'w', cfg.Display.Width, "window width in pixels")
	height := getopt.IntLong("height", 'h', cfg.Display.Height, "window height in pixels")
	getopt.FlagLong(&cfg.Display.RefreshRate, "fps", 'f', "refresh rate hint for full-screen mode")
	getopt.Parse()

	cfg.Display.FullScreenDisplay = *fullScreenDisplay
	cfg.Display.Width = *width
	cfg.Display.Height = *height
	return cfg
}

func main() {
	cfg := parseFlags()

	fmt.Println("FullScreen display (-1 for none):", cfg.Display.FullScreenDisplay)

	if err := glfw.Init(); err != nil {
		log.Errorln("glfw.Init():", err)
		os.Exit(core.ExitWindowCreateFailed)
	}
	defer glfw.Terminate()

	window, err := core.OpenWindow(cfg.Display)
	if err != nil {
		log.Errorln(err)
		os.Exit(core.ExitCode(err))
	}
	defer window.Destroy()

	program, err := core.NewProgram()
	if err != nil {
		log.Fatalln(err)
	}
	defer program.Destroy()

	program.Use()
	gl.Disable(gl.CULL_FACE)

	// Ten quads per edge on each of the six faces.
	const quadsPerEdge = 10
	numTriangles := 6 * 2 * quadsPerEdge * quadsPerEdge
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	roomCube := model.NewCube(0.25, numTriangles, rng)
	defer roomCube.Destroy()

	clock := core.NewClock()

	fmt.Println("Use the OS-specific close button or full-screen quit (Alt-F4 or Apple-Q) to close the window.")
	for {
		gl.ClearColor(0.6, 0.8, 1.0, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

		program.SetModelViewProjection(mat.Identity())
		roomCube.Draw()

		// Swap and wait for the swap to finish. The blocking wait is
		// part of what exposes the artifact, so it stays.
		window.SwapBuffers()
		gl.Finish()

		clock.Tick()

		glfw.PollEvents()
		if window.ShouldClose() {
			fmt.Println("Closing window")
			break
		}
	}

	fmt.Printf("Elapsed time: %g seconds\n", clock.Elapsed().Seconds())
	fmt.Printf("Frames per second: %g\n", clock.Fps())
}
