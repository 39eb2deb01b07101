// Command tearingroom is the room variant of the tearing diagnostic:
// the camera sits inside the tessellated cube, a perspective
// projection and a slowly swaying view are composed each frame, and a
// second plane mesh rotates in the middle of the room. The moving
// geometry makes a mid-scan buffer swap stand out as a visible seam.
package main

import (
	"fmt"
	"math"
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

const (
	roomRadius  = 2.0
	planeRadius = 0.5

	// Sway amplitudes in radians.
	yawAmplitude   = 0.5
	pitchAmplitude = 0.2
)

func init() {
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
	gl.Enable(gl.DEPTH_TEST)

	const quadsPerEdge = 15
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	room := model.NewCube(roomRadius, 6*2*quadsPerEdge*quadsPerEdge, rng)
	defer room.Destroy()
	plane := model.NewPlane(planeRadius, 2*quadsPerEdge*quadsPerEdge, rng)
	defer plane.Destroy()

	aspect := float32(cfg.Display.Width) / float32(cfg.Display.Height)
	projection := mat.Perspective(90, aspect, 0.1, 100)

	clock := core.NewClock()

	fmt.Println("Use the OS-specific close button or full-screen quit (Alt-F4 or Apple-Q) to close the window.")
	for {
		gl.ClearColor(0.6, 0.8, 1.0, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

		// The camera sways as a sinusoid of elapsed wall-clock time.
		elapsed := clock.Elapsed().Seconds()
		yaw := float32(yawAmplitude * math.Sin(elapsed))
		pitch := float32(pitchAmplitude * math.Sin(0.7*elapsed))
		view := mat.Chain(mat.RotateY(yaw), mat.RotateX(pitch))

		program.SetModelViewProjection(mat.Chain(view, projection))
		room.Draw()

		planeModel := mat.Chain(
			mat.RotateY(float32(0.3*elapsed)),
			mat.Translate(0, 0, -roomRadius/2),
		)
		program.SetModelViewProjection(mat.Chain(planeModel, view, projection))
		plane.Draw()

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
