package core

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/gobuffalo/packr"

	"github.com/ReliaSolve/Reproduce-8K-Tearing/mat"
)

// shaderBox embeds the fixed GLSL sources shipped with the tool.
var shaderBox = packr.NewBox("../shaders")

// Window owns the diagnostic's only window and OpenGL context.
type Window struct {
	*glfw.Window
}

// OpenWindow creates the window, engages full screen when a monitor
// index is selected, makes the context current and initializes the
// OpenGL function loader. It must run on the thread that will poll
// window events, which is a platform constraint rather than a choice.
// Failures carry the exit status of their class as a StartupError.
func OpenWindow(cfg DisplayConfiguration) (*Window, error) {
	// Resolve the full-screen monitor up front, so a bad index fails
	// before any window exists.
	var fullScreenMonitor *glfw.Monitor
	if cfg.FullScreenDisplay >= 0 {
		monitors := glfw.GetMonitors()
		if err := checkMonitorIndex(len(monitors), cfg.FullScreenDisplay); err != nil {
			return nil, err
		}
		fullScreenMonitor = monitors[cfg.FullScreenDisplay]
	}

	// Tell it not to iconify full-screen windows that lose focus.
	glfw.WindowHint(glfw.AutoIconify, glfw.False)

	window, err := glfw.CreateWindow(cfg.Width, cfg.Height, "Reproduce_8K_Tearing", nil, nil)
	if err != nil {
		return nil, &StartupError{ExitWindowCreateFailed, errors.New("glfw.CreateWindow(): " + err.Error())}
	}

	if fullScreenMonitor != nil {
		window.SetMonitor(fullScreenMonitor, 0, 0, cfg.Width, cfg.Height, int(cfg.RefreshRate))
	}

	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		window.Destroy()
		return nil, &StartupError{ExitLoaderFailed, errors.New("gl.Init(): " + err.Error())}
	}
	// The loader can leave a spurious error flag behind on some
	// platforms.
	gl.GetError()

	return &Window{window}, nil
}

// Destroy releases the context and the window.
func (w *Window) Destroy() {
	glfw.DetachCurrentContext()
	w.Window.Destroy()
}

// GLProgram is the fixed pass-through-color pipeline.
type GLProgram struct {
	id                  uint32
	modelViewProjection int32
}

// NewProgram compiles and links the embedded vertex and fragment
// shaders. A failed compile or link returns the driver's info log in
// the error; there is no recovery from either.
func NewProgram() (Program, error) {
	vertexSource, fragmentSource, err := shaderSources()
	if err != nil {
		return nil, err
	}

	vertexID, err := compileShader(vertexSource, gl.VERTEX_SHADER)
	if err != nil {
		return nil, err
	}
	fragmentID, err := compileShader(fragmentSource, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vertexID)
		return nil, err
	}

	id := gl.CreateProgram()
	gl.AttachShader(id, vertexID)
	gl.AttachShader(id, fragmentID)
	gl.LinkProgram(id)

	// Once linked into a program, the shaders are no longer needed.
	gl.DeleteShader(vertexID)
	gl.DeleteShader(fragmentID)

	var status int32
	gl.GetProgramiv(id, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		defer gl.DeleteProgram(id)
		return nil, errors.New("gl.LinkProgram(): " + programInfoLog(id))
	}

	return &GLProgram{
		id:                  id,
		modelViewProjection: gl.GetUniformLocation(id, gl.Str("modelViewProjection\x00")),
	}, nil
}

// Use implements interface
func (p *GLProgram) Use() {
	gl.UseProgram(p.id)
}

// SetModelViewProjection implements interface
func (p *GLProgram) SetModelViewProjection(m mat.Mat4) {
	gl.UniformMatrix4fv(p.modelViewProjection, 1, false, &m[0])
}

// Destroy implements interface
func (p *GLProgram) Destroy() {
	gl.DeleteProgram(p.id)
}

// shaderSources pulls the vertex and fragment sources out of the
// shader box, identified by their file suffixes.
func shaderSources() (vertex, fragment string, err error) {
	for _, name := range shaderBox.List() {
		source, findErr := shaderBox.FindString(name)
		if findErr != nil {
			return "", "", findErr
		}
		switch shaderTypeFor(name) {
		case VertexShaderType:
			vertex = source
		case FragmentShaderType:
			fragment = source
		}
	}
	if vertex == "" || fragment == "" {
		return "", "", errors.New("shader box is missing a vertex or fragment source")
	}
	return vertex, fragment, nil
}

// shaderTypeFor identifies a shader source by its file suffix.
func shaderTypeFor(name string) ShaderType {
	switch {
	case strings.HasSuffix(name, ".vert"):
		return VertexShaderType
	case strings.HasSuffix(name, ".frag"):
		return FragmentShaderType
	default:
		return UnknownShaderType
	}
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)

	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		infoLog := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(infoLog))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("gl.CompileShader(type %d): %s", shaderType, infoLog)
	}

	return shader, nil
}

func programInfoLog(id uint32) string {
	var logLength int32
	gl.GetProgramiv(id, gl.INFO_LOG_LENGTH, &logLength)
	infoLog := strings.Repeat("\x00", int(logLength+1))
	gl.GetProgramInfoLog(id, logLength, nil, gl.Str(infoLog))
	return infoLog
}
