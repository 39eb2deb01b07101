// Command monitors dumps the attached displays as JSON, so the right
// --fullScreenDisplay index can be picked before running the
// diagnostic.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
	log "github.com/sirupsen/logrus"

	"github.com/ReliaSolve/Reproduce-8K-Tearing/core"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := glfw.Init(); err != nil {
		log.Errorln("glfw.Init():", err)
		os.Exit(core.ExitWindowCreateFailed)
	}
	defer glfw.Terminate()

	monitors := core.Monitors()
	if len(monitors) == 0 {
		log.Errorln("no monitors detected")
		os.Exit(core.ExitNoMonitors)
	}

	if bytes, err := json.Marshal(monitors); err == nil {
		fmt.Printf("%s\n", bytes)
	} else {
		log.Fatalln(err)
	}
}
