package graphics

import (
	"fmt"
	"log"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// MaxTextures is the number of texture units the scene shader can sample from.
const MaxTextures = 16

type textureEntry struct {
	tag    string
	handle uint32
}

// TextureRegistry holds loaded GL textures keyed by tag. Insertion order is
// the contract: a texture's registry index is the texture unit BindAll binds
// it to, and the slot value pushed into the shader. Tags are not checked for
// uniqueness; lookups return the first match in registration order.
type TextureRegistry struct {
	entries []textureEntry
}

func NewTextureRegistry() *TextureRegistry {
	return &TextureRegistry{entries: make([]textureEntry, 0, MaxTextures)}
}

// GL calls are routed through these so registry logic can be exercised in
// tests, which run without a GL context.
var (
	bindTextureUnit = func(unit int, handle uint32) {
		gl.ActiveTexture(gl.TEXTURE0 + uint32(unit))
		gl.BindTexture(gl.TEXTURE_2D, handle)
	}
	deleteTexture = func(handle uint32) {
		gl.DeleteTextures(1, &handle)
	}
)

// Load decodes the image file at path and uploads it to GPU memory as a
// mipmapped, repeat-wrapped texture registered under tag. Only 3- and
// 4-channel images are accepted; a failed decode or an unsupported channel
// count leaves the registry untouched.
func (r *TextureRegistry) Load(path, tag string) error {
	if len(r.entries) >= MaxTextures {
		return fmt.Errorf("texture registry is full (%d entries), cannot load %s", MaxTextures, path)
	}

	img, channels, err := decodeImage(path)
	if err != nil {
		return err
	}
	log.Printf("loaded image %s: %dx%d, %d channels",
		path, img.Rect.Dx(), img.Rect.Dy(), channels)

	return r.Add(tag, uploadTexture(img))
}

// Add registers an already-created GL texture under tag.
func (r *TextureRegistry) Add(tag string, handle uint32) error {
	if len(r.entries) >= MaxTextures {
		return fmt.Errorf("texture registry is full (%d entries), cannot add %q", MaxTextures, tag)
	}
	r.entries = append(r.entries, textureEntry{tag: tag, handle: handle})
	return nil
}

// Len returns the number of registered textures.
func (r *TextureRegistry) Len() int {
	return len(r.entries)
}

// BindAll binds every registered texture to the texture unit equal to its
// registry index. Call once after loading, before any textured draw.
func (r *TextureRegistry) BindAll() {
	for i, e := range r.entries {
		bindTextureUnit(i, e.handle)
	}
}

// FindSlot returns the texture unit for tag, or -1 if tag is not registered.
func (r *TextureRegistry) FindSlot(tag string) int32 {
	for i, e := range r.entries {
		if e.tag == tag {
			return int32(i)
		}
	}
	return -1
}

// FindHandle returns the GL handle registered under tag.
func (r *TextureRegistry) FindHandle(tag string) (uint32, bool) {
	for _, e := range r.entries {
		if e.tag == tag {
			return e.handle, true
		}
	}
	return 0, false
}

// DestroyAll deletes every registered GL texture and empties the registry,
// so calling it again is a no-op.
func (r *TextureRegistry) DestroyAll() {
	for _, e := range r.entries {
		deleteTexture(e.handle)
	}
	r.entries = r.entries[:0]
}
