package core

import "github.com/go-gl/glfw/v3.3/glfw"

// MonitorInfo describes a physical display enumerated by the
// windowing system
type MonitorInfo struct {
	Index         int
	Name          string
	Width         int
	Height        int
	RefreshRateHz int
}

// Monitors lists the attached displays. The windowing system must be
// initialized on the calling thread.
func Monitors() []MonitorInfo {
	var infos []MonitorInfo
	for idx, monitor := range glfw.GetMonitors() {
		info := MonitorInfo{Index: idx, Name: monitor.GetName()}
		if mode := monitor.GetVideoMode(); mode != nil {
			info.Width = mode.Width
			info.Height = mode.Height
			info.RefreshRateHz = mode.RefreshRate
		}
		infos = append(infos, info)
	}
	return infos
}

// checkMonitorIndex validates a requested full-screen monitor index
// against the number of attached monitors.
func checkMonitorIndex(count, index int) error {
	if count == 0 {
		return startupErrorf(ExitNoMonitors, "no monitors for fullscreen")
	}
	if index >= count {
		return startupErrorf(ExitInvalidMonitor, "invalid monitor requested (index larger than available monitors)")
	}
	return nil
}
