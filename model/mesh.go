// Package model generates the procedurally tessellated geometry the
// diagnostic draws: a quad grid covering a square plane, and a cube
// whose six faces are derived from one reference grid by coordinate
// swizzling. Meshes own their GPU buffer pair and draw themselves.
package model

import (
	"math"
	"math/rand"

	"github.com/go-gl/gl/v3.3-core/gl"
	glm "github.com/go-gl/mathgl/mgl32"
)

const floatsPerVertex = 3

// Mesh holds a flat vertex/color array pair and the GPU buffers they
// are uploaded into. Buffers are allocated lazily on the first Draw so
// construction does not need a current context, and freed by Destroy.
type Mesh struct {
	initialized  bool
	vertexBuffer uint32
	colorBuffer  uint32

	vertices []float32
	colors   []float32
}

// Vertices returns the flat position array, three floats per vertex.
func (m *Mesh) Vertices() []float32 {
	return m.vertices
}

// Colors returns the flat color array, one RGB triple per vertex.
func (m *Mesh) Colors() []float32 {
	return m.colors
}

// VertexCount returns the number of vertices in the mesh.
func (m *Mesh) VertexCount() int {
	return len(m.vertices) / floatsPerVertex
}

func (m *Mesh) init() {
	if m.initialized {
		return
	}

	// No vertex array objects: the buffers may be drawn from more than
	// one context and VAOs are not shared between contexts.
	gl.BindVertexArray(0)

	gl.GenBuffers(1, &m.vertexBuffer)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vertexBuffer)
	gl.BufferData(gl.ARRAY_BUFFER, 4*len(m.vertices), gl.Ptr(m.vertices), gl.STATIC_DRAW)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	gl.GenBuffers(1, &m.colorBuffer)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.colorBuffer)
	gl.BufferData(gl.ARRAY_BUFFER, 4*len(m.colors), gl.Ptr(m.colors), gl.STATIC_DRAW)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	m.initialized = true
}

// Draw issues one draw call for the whole mesh, uploading the buffers
// first if this is the first use.
func (m *Mesh) Draw() {
	m.init()

	gl.BindVertexArray(0)

	gl.EnableVertexAttribArray(0)
	gl.EnableVertexAttribArray(1)

	gl.BindBuffer(gl.ARRAY_BUFFER, m.vertexBuffer)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 0, nil)

	gl.BindBuffer(gl.ARRAY_BUFFER, m.colorBuffer)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, 0, nil)

	gl.DrawArrays(gl.TRIANGLES, 0, int32(m.VertexCount()))
}

// Destroy releases the GPU buffers if they were allocated.
func (m *Mesh) Destroy() {
	if !m.initialized {
		return
	}
	gl.DeleteBuffers(1, &m.vertexBuffer)
	gl.DeleteBuffers(1, &m.colorBuffer)
	m.initialized = false
}

// QuadsPerEdge returns the edge size of the largest square quad grid
// whose triangle count does not exceed numTriangles, with a floor of
// one quad per edge.
func QuadsPerEdge(numTriangles int) int {
	numQuads := numTriangles / 2
	edge := int(math.Sqrt(float64(numQuads)))
	if edge < 1 {
		edge = 1
	}
	return edge
}

// NewPlane builds a square grid of quads covering [-scale, scale] in X
// and Y at Z = 0, with at most numTriangles triangles. Each quad gets
// a constant luminance drawn from rng in [0.5, 1.0), shared by all six
// of its vertices.
func NewPlane(scale float32, numTriangles int, rng *rand.Rand) *Mesh {
	edge := QuadsPerEdge(numTriangles)
	vertices, colors := faceGrid(scale, 0, edge, rng)
	return &Mesh{vertices: vertices, colors: colors}
}

// cubeFace derives one cube face from the reference +Z face: each
// vertex coordinate p takes reference coordinate swizzle[p] times
// sign[p], and the grid's luminances are modulated by the face tint.
type cubeFace struct {
	tint    glm.Vec3
	swizzle [3]int
	sign    glm.Vec3
}

// The conventional cube coloring: +Z blue, -Z cyan, +X red, -X magenta,
// +Y green, -Y yellow.
var cubeFaces = [6]cubeFace{
	{glm.Vec3{0, 0, 1}, [3]int{0, 1, 2}, glm.Vec3{1, 1, 1}},    // +Z
	{glm.Vec3{0, 1, 1}, [3]int{0, 1, 2}, glm.Vec3{-1, -1, -1}}, // -Z
	{glm.Vec3{1, 0, 0}, [3]int{2, 1, 0}, glm.Vec3{1, 1, -1}},   // +X
	{glm.Vec3{1, 0, 1}, [3]int{2, 1, 0}, glm.Vec3{-1, 1, 1}},   // -X
	{glm.Vec3{0, 1, 0}, [3]int{0, 2, 1}, glm.Vec3{1, 1, -1}},   // +Y
	{glm.Vec3{1, 1, 0}, [3]int{0, 2, 1}, glm.Vec3{1, -1, 1}},   // -Y
}

// NewCube builds a cube spanning [-scale, scale] on each axis whose
// faces are tessellated into quad grids, with at most numTriangles
// triangles in total. One reference face is generated and the other
// five are derived from it, so the random luminance pattern repeats on
// every face under that face's tint.
func NewCube(scale float32, numTriangles int, rng *rand.Rand) *Mesh {
	edge := QuadsPerEdge(numTriangles / 6)
	refVertices, refColors := faceGrid(scale, scale, edge, rng)

	var mesh Mesh
	for _, face := range cubeFaces {
		mesh.vertices = append(mesh.vertices, vertexSwizzle(refVertices, face.swizzle, face.sign)...)
		mesh.colors = append(mesh.colors, colorModulate(refColors, face.tint)...)
	}
	return &mesh
}

// faceGrid emits an edge-by-edge grid of quads covering [-scale, scale]
// in X and Y at the given Z, two triangles per quad, six unshared
// vertices each. Colors are a grey luminance per quad; faces get their
// tint applied afterwards.
func faceGrid(scale, z float32, edge int, rng *rand.Rand) (vertices, colors []float32) {
	step := 2 * scale / float32(edge)
	for i := 0; i < edge; i++ {
		for j := 0; j < edge; j++ {
			luminance := 0.5 + rng.Float32()*0.5
			for c := 0; c < 3*2*3; c++ {
				colors = append(colors, luminance)
			}

			minX := -scale + float32(i)*step
			maxX := -scale + float32(i+1)*step
			minY := -scale + float32(j)*step
			maxY := -scale + float32(j+1)*step
			vertices = append(vertices,
				minX, maxY, z,
				minX, minY, z,
				maxX, minY, z,

				maxX, maxY, z,
				minX, maxY, z,
				maxX, minY, z,
			)
		}
	}
	return vertices, colors
}

// colorModulate multiplies every color triple by the given tint.
func colorModulate(in []float32, tint glm.Vec3) []float32 {
	out := make([]float32, len(in))
	for i := 0; i < len(in)/3; i++ {
		for c := 0; c < 3; c++ {
			out[3*i+c] = in[3*i+c] * tint[c]
		}
	}
	return out
}

// vertexSwizzle permutes and flips each coordinate triple, a poor
// man's axis-aligned rotation.
func vertexSwizzle(in []float32, swizzle [3]int, sign glm.Vec3) []float32 {
	out := make([]float32, len(in))
	for i := 0; i < len(in)/3; i++ {
		for p := 0; p < 3; p++ {
			out[3*i+p] = in[3*i+swizzle[p]] * sign[p]
		}
	}
	return out
}
