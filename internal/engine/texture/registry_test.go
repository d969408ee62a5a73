package texture

import (
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// fakeBackend records create/bind/delete calls and issues sequential handles.
type fakeBackend struct {
	nextHandle Handle
	created    []Handle
	bound      map[int]Handle
	deleted    []Handle
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{nextHandle: 100, bound: make(map[int]Handle)}
}

func (f *fakeBackend) Create(img *image.RGBA) Handle {
	h := f.nextHandle
	f.nextHandle++
	f.created = append(f.created, h)
	return h
}

func (f *fakeBackend) Bind(unit int, h Handle) {
	f.bound[unit] = h
}

func (f *fakeBackend) Delete(h Handle) {
	f.deleted = append(f.deleted, h)
}

func writePNG(t *testing.T, dir, name string) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for i := range img.Pix {
		img.Pix[i] = byte(i)
	}
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode %s: %v", path, err)
	}
	return path
}

func writeJPEG(t *testing.T, dir, name string) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()
	if err := jpeg.Encode(f, img, nil); err != nil {
		t.Fatalf("encode %s: %v", path, err)
	}
	return path
}

func writeGrayPNG(t *testing.T, dir, name string) string {
	t.Helper()
	img := image.NewGray(image.Rect(0, 0, 4, 4))
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode %s: %v", path, err)
	}
	return path
}

func TestLoadAssignsSlotsInOrder(t *testing.T) {
	dir := t.TempDir()
	backend := newFakeBackend()
	r := NewRegistry(backend)

	paths := []string{
		writePNG(t, dir, "a.png"),
		writeJPEG(t, dir, "b.jpg"),
		writePNG(t, dir, "c.png"),
	}
	tags := []string{"wood", "cheese", "glass"}

	for i, path := range paths {
		if err := r.Load(path, tags[i]); err != nil {
			t.Fatalf("load %s: %v", path, err)
		}
	}

	if r.Len() != 3 {
		t.Fatalf("expected 3 slots, got %d", r.Len())
	}
	for i, tag := range tags {
		if slot := r.FindSlot(tag); slot != i {
			t.Errorf("FindSlot(%q): got %d, want %d", tag, slot, i)
		}
		if h := r.FindHandle(tag); h != backend.created[i] {
			t.Errorf("FindHandle(%q): got %d, want %d", tag, h, backend.created[i])
		}
	}
}

func TestLoadRejectsUnsupportedChannels(t *testing.T) {
	dir := t.TempDir()
	r := NewRegistry(newFakeBackend())

	path := writeGrayPNG(t, dir, "gray.png")
	if err := r.Load(path, "gray"); err == nil {
		t.Error("expected error loading grayscale image")
	}
	if r.Len() != 0 {
		t.Errorf("registry should be unchanged after failed load, got %d slots", r.Len())
	}
}

func TestLoadMissingFile(t *testing.T) {
	r := NewRegistry(newFakeBackend())
	if err := r.Load("/nonexistent/missing.jpg", "missing"); err == nil {
		t.Error("expected error loading missing file")
	}
	if r.Len() != 0 {
		t.Errorf("registry should be unchanged, got %d slots", r.Len())
	}
}

func TestFindUnknownTag(t *testing.T) {
	dir := t.TempDir()
	r := NewRegistry(newFakeBackend())
	if err := r.Load(writePNG(t, dir, "a.png"), "known"); err != nil {
		t.Fatalf("load: %v", err)
	}

	if h := r.FindHandle("unknown"); h != HandleUnset {
		t.Errorf("FindHandle(unknown): got %d, want %d", h, HandleUnset)
	}
	if slot := r.FindSlot("unknown"); slot != -1 {
		t.Errorf("FindSlot(unknown): got %d, want -1", slot)
	}
}

func TestDuplicateTagFirstMatchWins(t *testing.T) {
	dir := t.TempDir()
	backend := newFakeBackend()
	r := NewRegistry(backend)

	if err := r.Load(writePNG(t, dir, "a.png"), "dup"); err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := r.Load(writePNG(t, dir, "b.png"), "dup"); err != nil {
		t.Fatalf("load: %v", err)
	}

	if slot := r.FindSlot("dup"); slot != 0 {
		t.Errorf("FindSlot(dup): got %d, want 0 (first match)", slot)
	}
	if h := r.FindHandle("dup"); h != backend.created[0] {
		t.Errorf("FindHandle(dup): got %d, want %d (first match)", h, backend.created[0])
	}
}

func TestCapacityFailsClosed(t *testing.T) {
	dir := t.TempDir()
	r := NewRegistry(newFakeBackend())
	path := writePNG(t, dir, "a.png")

	for i := 0; i < MaxSlots; i++ {
		if err := r.Load(path, "tex"); err != nil {
			t.Fatalf("load %d: %v", i, err)
		}
	}
	if err := r.Load(path, "overflow"); err == nil {
		t.Error("expected error on 17th load")
	}
	if r.Len() != MaxSlots {
		t.Errorf("expected %d slots, got %d", MaxSlots, r.Len())
	}
}

func TestBindAllMatchesSlotIndices(t *testing.T) {
	dir := t.TempDir()
	backend := newFakeBackend()
	r := NewRegistry(backend)

	for i, name := range []string{"a.png", "b.png", "c.png"} {
		if err := r.Load(writePNG(t, dir, name), name); err != nil {
			t.Fatalf("load %d: %v", i, err)
		}
	}

	r.BindAll()

	if len(backend.bound) != 3 {
		t.Fatalf("expected 3 bound units, got %d", len(backend.bound))
	}
	for i := 0; i < 3; i++ {
		if backend.bound[i] != backend.created[i] {
			t.Errorf("unit %d: bound %d, want %d", i, backend.bound[i], backend.created[i])
		}
	}
}

func TestDestroyAll(t *testing.T) {
	dir := t.TempDir()
	backend := newFakeBackend()
	r := NewRegistry(backend)

	if err := r.Load(writePNG(t, dir, "a.png"), "wood"); err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := r.Load(writePNG(t, dir, "b.png"), "glass"); err != nil {
		t.Fatalf("load: %v", err)
	}

	r.DestroyAll()

	if len(backend.deleted) != 2 {
		t.Errorf("expected 2 deletes, got %d", len(backend.deleted))
	}
	if r.Len() != 0 {
		t.Errorf("expected empty registry, got %d slots", r.Len())
	}
	if h := r.FindHandle("wood"); h != HandleUnset {
		t.Errorf("FindHandle after destroy: got %d, want %d", h, HandleUnset)
	}
	if slot := r.FindSlot("glass"); slot != -1 {
		t.Errorf("FindSlot after destroy: got %d, want -1", slot)
	}

	// Registry stays usable after destruction
	if err := r.Load(writePNG(t, dir, "c.png"), "again"); err != nil {
		t.Fatalf("load after destroy: %v", err)
	}
	if slot := r.FindSlot("again"); slot != 0 {
		t.Errorf("FindSlot after reload: got %d, want 0", slot)
	}
}

func TestDecodeFlipsVertically(t *testing.T) {
	dir := t.TempDir()

	// Two rows: red on top, blue on the bottom.
	img := image.NewNRGBA(image.Rect(0, 0, 1, 2))
	img.Set(0, 0, color.NRGBA{R: 255, A: 255})
	img.Set(0, 1, color.NRGBA{B: 255, A: 255})

	path := filepath.Join(dir, "flip.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode: %v", err)
	}
	f.Close()

	decoded, ch, err := DecodeFile(path)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if ch != 4 {
		t.Errorf("channels: got %d, want 4", ch)
	}

	// After the flip, row 0 must be the original bottom (blue) row.
	if decoded.Pix[2] != 255 {
		t.Errorf("row 0 should be blue after flip, pix = %v", decoded.Pix[:4])
	}
	if decoded.Pix[decoded.Stride] != 255 {
		t.Errorf("row 1 should be red after flip, pix = %v", decoded.Pix[decoded.Stride:decoded.Stride+4])
	}
}

func TestDecodeReportsThreeChannelsForJPEG(t *testing.T) {
	dir := t.TempDir()
	path := writeJPEG(t, dir, "rgb.jpg")

	_, ch, err := DecodeFile(path)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if ch != 3 {
		t.Errorf("channels: got %d, want 3", ch)
	}
}
