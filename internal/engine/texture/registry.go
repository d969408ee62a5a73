package texture

import (
	"fmt"
	"image"
	"log/slog"
)

// MaxSlots is the number of texture slots the scene shader exposes. Slot i
// is always bound to texture unit i.
const MaxSlots = 16

// Handle identifies a GPU texture. HandleUnset marks a slot with no texture.
type Handle int32

// HandleUnset is the sentinel for "no texture here".
const HandleUnset Handle = -1

// Backend is the GPU surface the registry drives. The GL implementation
// lives in this package; tests substitute an in-memory fake.
type Backend interface {
	// Create uploads the image as a 2D texture with repeat wrapping, linear
	// filtering and mipmaps, and returns its handle.
	Create(img *image.RGBA) Handle
	// Bind binds the texture to the given texture unit.
	Bind(unit int, h Handle)
	// Delete releases the texture.
	Delete(h Handle)
}

// Slot associates a tag with a loaded texture. Tags are not required to be
// unique; lookups return the earliest match.
type Slot struct {
	Tag    string
	Handle Handle
}

// Registry is the bounded, append-only table of scene textures. It is
// populated once during scene preparation and read-only afterwards.
type Registry struct {
	backend Backend
	slots   []Slot
}

// NewRegistry creates an empty registry over the given backend.
func NewRegistry(backend Backend) *Registry {
	return &Registry{
		backend: backend,
		slots:   make([]Slot, 0, MaxSlots),
	}
}

// Load decodes the image file at path and appends it under tag. Failures
// (unreadable file, unsupported channel count, full table) leave the
// registry unchanged; the caller is expected to continue with the next
// texture.
func (r *Registry) Load(path, tag string) error {
	if len(r.slots) >= MaxSlots {
		return fmt.Errorf("texture registry full (%d slots), cannot load %s", MaxSlots, path)
	}

	img, ch, err := DecodeFile(path)
	if err != nil {
		return err
	}
	if ch != 3 && ch != 4 {
		return fmt.Errorf("image %s has %d channels, want 3 or 4", path, ch)
	}

	handle := r.backend.Create(img)
	r.slots = append(r.slots, Slot{Tag: tag, Handle: handle})

	slog.Info("loaded texture",
		"path", path,
		"tag", tag,
		"slot", len(r.slots)-1,
		"width", img.Bounds().Dx(),
		"height", img.Bounds().Dy(),
		"channels", ch,
	)
	return nil
}

// BindAll binds slot i to texture unit i for every loaded slot. This is what
// makes FindSlot indices valid sampler values.
func (r *Registry) BindAll() {
	for i, slot := range r.slots {
		r.backend.Bind(i, slot.Handle)
	}
}

// FindHandle returns the handle of the first slot registered under tag, or
// HandleUnset if the tag is unknown.
func (r *Registry) FindHandle(tag string) Handle {
	for _, slot := range r.slots {
		if slot.Tag == tag {
			return slot.Handle
		}
	}
	return HandleUnset
}

// FindSlot returns the index of the first slot registered under tag, or -1.
// The index, not the handle, is what the shader's sampler selection wants.
func (r *Registry) FindSlot(tag string) int {
	for i, slot := range r.slots {
		if slot.Tag == tag {
			return i
		}
	}
	return -1
}

// Len returns the number of loaded slots.
func (r *Registry) Len() int {
	return len(r.slots)
}

// DestroyAll releases every texture and empties the table. The registry is
// reusable afterwards.
func (r *Registry) DestroyAll() {
	for i := range r.slots {
		r.backend.Delete(r.slots[i].Handle)
		r.slots[i].Handle = HandleUnset
	}
	r.slots = r.slots[:0]
}
