package model

import (
	"math/rand"
	"testing"
)

func TestQuadsPerEdge(t *testing.T) {
	cases := []struct {
		triangles int
		edge      int
	}{
		{2, 1},
		{3, 1},
		{7, 1},
		{8, 2},
		{17, 2},
		{18, 3},
		{50, 5},
		{450, 15},
	}
	for _, tc := range cases {
		if got := QuadsPerEdge(tc.triangles); got != tc.edge {
			t.Errorf("QuadsPerEdge(%d) = %d, want %d", tc.triangles, got, tc.edge)
		}
	}
}

func TestPlaneGeometry(t *testing.T) {
	for _, triangles := range []int{2, 8, 50, 200, 450} {
		rng := rand.New(rand.NewSource(1))
		mesh := NewPlane(0.25, triangles, rng)

		edge := QuadsPerEdge(triangles)
		wantVerts := 6 * edge * edge
		if mesh.VertexCount() != wantVerts {
			t.Errorf("plane with %d triangles: %d vertices, want %d",
				triangles, mesh.VertexCount(), wantVerts)
		}
		if len(mesh.Colors()) != len(mesh.Vertices()) {
			t.Errorf("plane with %d triangles: color array length %d does not match vertex array length %d",
				triangles, len(mesh.Colors()), len(mesh.Vertices()))
		}

		for i, v := range mesh.Vertices() {
			if i%3 == 2 {
				if v != 0 {
					t.Fatalf("plane vertex %d has Z = %f, want 0", i/3, v)
				}
			} else if v < -0.25 || v > 0.25 {
				t.Fatalf("plane vertex %d has coordinate %f outside [-scale, scale]", i/3, v)
			}
		}
	}
}

func TestPlaneQuadLuminance(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	mesh := NewPlane(1, 50, rng)

	colors := mesh.Colors()
	// One luminance per quad, identical across the quad's six vertices
	// and their three channels.
	for quad := 0; quad < len(colors)/18; quad++ {
		l := colors[18*quad]
		if l < 0.5 || l >= 1.0 {
			t.Errorf("quad %d luminance %f outside [0.5, 1.0)", quad, l)
		}
		for c := 1; c < 18; c++ {
			if colors[18*quad+c] != l {
				t.Fatalf("quad %d is not uniformly colored", quad)
			}
		}
	}
}

func TestPlaneReproducibleWithSeed(t *testing.T) {
	first := NewPlane(1, 50, rand.New(rand.NewSource(42)))
	second := NewPlane(1, 50, rand.New(rand.NewSource(42)))

	for i := range first.Colors() {
		if first.Colors()[i] != second.Colors()[i] {
			t.Fatal("same seed produced different quad luminances")
		}
	}
}

func TestCubeFacesCoverAllSixDirections(t *testing.T) {
	const scale = 0.25
	rng := rand.New(rand.NewSource(3))
	mesh := NewCube(scale, 6*2*10*10, rng)

	if mesh.VertexCount()%6 != 0 {
		t.Fatalf("cube vertex count %d is not divisible into six faces", mesh.VertexCount())
	}
	perFace := mesh.VertexCount() / 6
	if perFace != 6*10*10 {
		t.Errorf("cube face has %d vertices, want %d", perFace, 6*10*10)
	}

	seen := map[[2]int]bool{}
	for face := 0; face < 6; face++ {
		chunk := mesh.Vertices()[face*perFace*3 : (face+1)*perFace*3]

		// Exactly one axis must be pinned at +scale or -scale across
		// the whole face; that is the face's outward direction.
		axis, sign := -1, 0
		for p := 0; p < 3; p++ {
			constant := true
			for v := 0; v < perFace; v++ {
				if chunk[3*v+p] != chunk[p] {
					constant = false
					break
				}
			}
			if !constant {
				continue
			}
			if axis != -1 {
				t.Fatalf("face %d has more than one constant axis", face)
			}
			axis = p
			if chunk[p] == scale {
				sign = 1
			} else if chunk[p] == -scale {
				sign = -1
			} else {
				t.Fatalf("face %d is pinned at %f, want +/-scale", face, chunk[p])
			}
		}
		if axis == -1 {
			t.Fatalf("face %d has no constant axis", face)
		}
		key := [2]int{axis, sign}
		if seen[key] {
			t.Fatalf("two faces share direction axis=%d sign=%d", axis, sign)
		}
		seen[key] = true
	}
	if len(seen) != 6 {
		t.Errorf("cube covers %d distinct directions, want 6", len(seen))
	}
}

func TestCubeFaceTints(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	mesh := NewCube(0.25, 6*2*4*4, rng)

	perFace := len(mesh.Colors()) / 6
	for face, want := range cubeFaces {
		chunk := mesh.Colors()[face*perFace : (face+1)*perFace]
		for v := 0; v < len(chunk)/3; v++ {
			for c := 0; c < 3; c++ {
				val := chunk[3*v+c]
				if want.tint[c] == 0 {
					if val != 0 {
						t.Fatalf("face %d channel %d should be tinted out, got %f", face, c, val)
					}
				} else if val < 0.5 || val >= 1.0 {
					t.Fatalf("face %d channel %d luminance %f outside [0.5, 1.0)", face, c, val)
				}
			}
		}
	}
}

func TestCubeRepeatsReferencePattern(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	mesh := NewCube(1, 6*2*3*3, rng)

	// Every face reuses the reference face's luminance pattern, so the
	// untinted channel values match across faces.
	perFace := len(mesh.Colors()) / 6
	blue := mesh.Colors()[:perFace]             // +Z face, tint (0, 0, 1)
	red := mesh.Colors()[perFace*2 : perFace*3] // +X face, tint (1, 0, 0)
	for v := 0; v < perFace/3; v++ {
		if blue[3*v+2] != red[3*v] {
			t.Fatal("faces do not share the reference luminance pattern")
		}
	}
}
