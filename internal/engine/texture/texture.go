// Package texture manages OpenGL textures for generated images.
package texture

import (
	"github.com/go-gl/gl/v4.1-core/gl"
)

// borderColor is sampled outside [0, 1] texture coordinates.
var borderColor = [4]float32{1, 1, 1, 1}

// Texture is a 2D RGB texture. It satisfies explorer.TextureSink.
type Texture struct {
	ID     uint32
	Width  int
	Height int
}

// New creates an empty texture clamped to a white border with linear
// filtering. Requires a current OpenGL context.
func New() *Texture {
	t := &Texture{}
	gl.GenTextures(1, &t.ID)
	gl.BindTexture(gl.TEXTURE_2D, t.ID)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_BORDER)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_BORDER)
	gl.TexParameterfv(gl.TEXTURE_2D, gl.TEXTURE_BORDER_COLOR, &borderColor[0])
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	gl.BindTexture(gl.TEXTURE_2D, 0)
	return t
}

// Upload replaces the texture contents with tightly packed RGB bytes.
// Storage is reallocated only when the size changes.
func (t *Texture) Upload(width, height int, rgb []byte) {
	if len(rgb) < width*height*3 {
		return
	}

	gl.BindTexture(gl.TEXTURE_2D, t.ID)
	// Rows of 3-byte pixels are not 4-byte aligned for odd widths.
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)

	if width != t.Width || height != t.Height {
		gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGB8, int32(width), int32(height), 0,
			gl.RGB, gl.UNSIGNED_BYTE, gl.Ptr(rgb))
		t.Width, t.Height = width, height
	} else {
		gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, int32(width), int32(height),
			gl.RGB, gl.UNSIGNED_BYTE, gl.Ptr(rgb))
	}

	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 4)
	gl.BindTexture(gl.TEXTURE_2D, 0)
}

// Bind binds the texture to the given texture unit.
func (t *Texture) Bind(unit uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(gl.TEXTURE_2D, t.ID)
}

// Delete releases the texture.
func (t *Texture) Delete() {
	if t.ID != 0 {
		gl.DeleteTextures(1, &t.ID)
		t.ID = 0
	}
}
