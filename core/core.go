package core

import "github.com/ReliaSolve/Reproduce-8K-Tearing/mat"

// Program describes a linked shader pipeline.
// Once created it is ready to use.
type Program interface {
	// Use makes the program current for subsequent draws
	Use()

	// SetModelViewProjection uploads the composed transform
	// applied to every vertex
	SetModelViewProjection(mat.Mat4)

	// Destroy destroys internal members
	Destroy()
}

// ShaderType represents the type of shader thats loaded
type ShaderType int

// Identifies shader sources with their types
const (
	VertexShaderType ShaderType = iota
	FragmentShaderType
	UnknownShaderType
)
