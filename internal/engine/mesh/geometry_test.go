package mesh

import (
	"testing"

	"github.com/chewxy/math32"
)

func TestGenerateAllKinds(t *testing.T) {
	for _, kind := range Kinds {
		t.Run(kind.String(), func(t *testing.T) {
			geo := Generate(kind)

			if len(geo.Indices) == 0 {
				t.Fatal("no indices generated")
			}
			if len(geo.Indices)%3 != 0 {
				t.Errorf("index count %d not a multiple of 3", len(geo.Indices))
			}
			if len(geo.Vertices)%8 != 0 {
				t.Errorf("vertex data length %d not a multiple of the stride", len(geo.Vertices))
			}

			// Every index must address a real vertex.
			vcount := uint32(geo.VertexCount())
			for _, idx := range geo.Indices {
				if idx >= vcount {
					t.Fatalf("index %d out of range (%d vertices)", idx, vcount)
				}
			}

			// Normals are unit length.
			for i := 0; i < geo.VertexCount(); i++ {
				nx, ny, nz := geo.Vertices[i*8+3], geo.Vertices[i*8+4], geo.Vertices[i*8+5]
				length := math32.Sqrt(nx*nx + ny*ny + nz*nz)
				if math32.Abs(length-1) > 0.001 {
					t.Fatalf("vertex %d normal length %f, want 1", i, length)
				}
			}
		})
	}
}

func TestBoxCounts(t *testing.T) {
	geo := Generate(Box)
	if geo.VertexCount() != 24 {
		t.Errorf("box vertices: got %d, want 24", geo.VertexCount())
	}
	if len(geo.Indices) != 36 {
		t.Errorf("box indices: got %d, want 36", len(geo.Indices))
	}
	if geo.HasParts() {
		t.Error("box should not carry cap/side ranges")
	}
}

func TestCylinderRangesPartitionIndices(t *testing.T) {
	for _, kind := range []Primitive{Cylinder, TaperedCylinder} {
		geo := Generate(kind)
		if !geo.HasParts() {
			t.Fatalf("%s should carry cap/side ranges", kind)
		}

		total := geo.Sides.Count + geo.Top.Count + geo.Bottom.Count
		if total != int32(len(geo.Indices)) {
			t.Errorf("%s: ranges cover %d indices, want %d", kind, total, len(geo.Indices))
		}
		if geo.Sides.Start != 0 {
			t.Errorf("%s: sides should start at 0, got %d", kind, geo.Sides.Start)
		}
		if geo.Top.Start != geo.Sides.Count {
			t.Errorf("%s: top range should follow sides", kind)
		}
		if geo.Bottom.Start != geo.Top.Start+geo.Top.Count {
			t.Errorf("%s: bottom range should follow top", kind)
		}
	}
}

func TestCylinderUnitDimensions(t *testing.T) {
	geo := Generate(Cylinder)
	for i := 0; i < geo.VertexCount(); i++ {
		y := geo.Vertices[i*8+1]
		if y < 0 || y > 1 {
			t.Fatalf("cylinder vertex %d has y=%f, want [0,1]", i, y)
		}
		x, z := geo.Vertices[i*8], geo.Vertices[i*8+2]
		r := math32.Sqrt(x*x + z*z)
		if r > 1.001 {
			t.Fatalf("cylinder vertex %d has radius %f, want <= 1", i, r)
		}
	}
}

func TestSphereRadius(t *testing.T) {
	geo := Generate(Sphere)
	for i := 0; i < geo.VertexCount(); i++ {
		x, y, z := geo.Vertices[i*8], geo.Vertices[i*8+1], geo.Vertices[i*8+2]
		r := math32.Sqrt(x*x + y*y + z*z)
		if math32.Abs(r-1) > 0.001 {
			t.Fatalf("sphere vertex %d at radius %f, want 1", i, r)
		}
	}
}

func TestHalfSphereStaysAboveEquator(t *testing.T) {
	geo := Generate(HalfSphere)
	for i := 0; i < geo.VertexCount(); i++ {
		if y := geo.Vertices[i*8+1]; y < -0.001 {
			t.Fatalf("half-sphere vertex %d below the equator: y=%f", i, y)
		}
	}
}

func TestTorusTubeRadius(t *testing.T) {
	geo := Generate(Torus)
	for i := 0; i < geo.VertexCount(); i++ {
		x, y, z := geo.Vertices[i*8], geo.Vertices[i*8+1], geo.Vertices[i*8+2]
		// Distance from the major ring (radius 1 in the XY plane).
		ring := math32.Sqrt(x*x+y*y) - 1
		d := math32.Sqrt(ring*ring + z*z)
		if math32.Abs(d-0.25) > 0.001 {
			t.Fatalf("torus vertex %d at tube distance %f, want 0.25", i, d)
		}
	}
}
