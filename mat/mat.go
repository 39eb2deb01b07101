// Package mat provides the small set of 4x4 transform utilities the
// diagnostic needs: composition, axis rotations, translation and a
// perspective projection. Matrices use the mathematical row convention
// (a vertex is a row vector multiplied from the left, v' = v*M) and are
// flattened row-major. That flattening is byte-identical to OpenGL's
// column-major storage of the transposed matrix, so uploads pass the
// array straight through with no transpose flag.
package mat

import "math"

// Mat4 is a 4x4 transform flattened row-major.
type Mat4 [16]float32

// Identity returns the identity transform.
func Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Multiply returns the matrix product a*b.
func Multiply(a, b Mat4) Mat4 {
	var out Mat4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += a[4*row+k] * b[4*k+col]
			}
			out[4*row+col] = sum
		}
	}
	return out
}

// Chain multiplies the given matrices strictly left to right, so
// Chain(a, b, c) is a*b*c. Under the row convention the leftmost
// matrix applies to a vertex first; callers supply them in
// model, view, projection order. With no arguments it returns the
// identity.
func Chain(ms ...Mat4) Mat4 {
	out := Identity()
	for i, m := range ms {
		if i == 0 {
			out = m
			continue
		}
		out = Multiply(out, m)
	}
	return out
}

// Translate returns a transform moving points by (x, y, z).
func Translate(x, y, z float32) Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		x, y, z, 1,
	}
}

// RotateX returns a rotation of angle radians about the X axis.
func RotateX(angle float32) Mat4 {
	s, c := sincos(angle)
	return Mat4{
		1, 0, 0, 0,
		0, c, s, 0,
		0, -s, c, 0,
		0, 0, 0, 1,
	}
}

// RotateY returns a rotation of angle radians about the Y axis.
func RotateY(angle float32) Mat4 {
	s, c := sincos(angle)
	return Mat4{
		c, 0, -s, 0,
		0, 1, 0, 0,
		s, 0, c, 0,
		0, 0, 0, 1,
	}
}

// Perspective returns the standard OpenGL perspective projection for a
// vertical field of view given in degrees, mapping the view frustum to
// the [-1, 1] clip cube.
func Perspective(fovYDegrees, aspect, near, far float32) Mat4 {
	f := float32(1.0 / math.Tan(float64(fovYDegrees)*math.Pi/360.0))
	return Mat4{
		f / aspect, 0, 0, 0,
		0, f, 0, 0,
		0, 0, (far + near) / (near - far), -1,
		0, 0, 2 * far * near / (near - far), 0,
	}
}

func sincos(angle float32) (float32, float32) {
	s, c := math.Sincos(float64(angle))
	return float32(s), float32(c)
}
