package core

import (
	"strings"
	"testing"
)

func TestShaderSourcesPresent(t *testing.T) {
	vertex, fragment, err := shaderSources()
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(vertex, "uniform mat4 modelViewProjection") {
		t.Error("vertex shader does not declare the modelViewProjection uniform")
	}
	if !strings.Contains(vertex, "#version 330") || !strings.Contains(fragment, "#version 330") {
		t.Error("shader sources are not GLSL 330")
	}
	if !strings.Contains(fragment, "fragmentColor") {
		t.Error("fragment shader does not consume the interpolated color")
	}
}

func TestShaderTypeFor(t *testing.T) {
	cases := []struct {
		name string
		want ShaderType
	}{
		{"tearing.vert", VertexShaderType},
		{"tearing.frag", FragmentShaderType},
		{"notes.txt", UnknownShaderType},
	}
	for _, tc := range cases {
		if got := shaderTypeFor(tc.name); got != tc.want {
			t.Errorf("shaderTypeFor(%q) = %d, want %d", tc.name, got, tc.want)
		}
	}
}
