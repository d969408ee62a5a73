package camera

import (
	"testing"

	"github.com/chewxy/math32"

	"github.com/bkendal2/OpenGLScene/pkg/math"
)

func TestPositionAtZeroAnglesIsBehindCenter(t *testing.T) {
	c := New()
	c.Pitch = 0
	c.Yaw = 0

	p := c.Position()
	want := c.Center.Add(math.Vec3{Z: c.Distance})
	if math32.Abs(p.X-want.X) > 0.001 || math32.Abs(p.Y-want.Y) > 0.001 || math32.Abs(p.Z-want.Z) > 0.001 {
		t.Errorf("position = %+v, want %+v", p, want)
	}
}

func TestViewMatrixPutsCenterOnViewAxis(t *testing.T) {
	c := New()
	view := c.ViewMatrix()

	p := view.TransformPoint(c.Center)
	if math32.Abs(p.X) > 0.001 || math32.Abs(p.Y) > 0.001 {
		t.Errorf("center off the view axis: (%f,%f,%f)", p.X, p.Y, p.Z)
	}
	if math32.Abs(-p.Z-c.Distance) > 0.001 {
		t.Errorf("center at view depth %f, want %f", -p.Z, c.Distance)
	}
}

func TestHandleDragClampsPitch(t *testing.T) {
	c := New()

	c.HandleDrag(0, 10000)
	if c.Pitch != c.MaxPitch {
		t.Errorf("pitch = %f, want clamp at %f", c.Pitch, c.MaxPitch)
	}

	c.HandleDrag(0, -20000)
	if c.Pitch != c.MinPitch {
		t.Errorf("pitch = %f, want clamp at %f", c.Pitch, c.MinPitch)
	}
}

func TestHandleZoomClampsDistance(t *testing.T) {
	c := New()

	for i := 0; i < 100; i++ {
		c.HandleZoom(10)
	}
	if c.Distance != c.MinDistance {
		t.Errorf("distance = %f, want clamp at %f", c.Distance, c.MinDistance)
	}

	for i := 0; i < 100; i++ {
		c.HandleZoom(-10)
	}
	if c.Distance != c.MaxDistance {
		t.Errorf("distance = %f, want clamp at %f", c.Distance, c.MaxDistance)
	}
}
