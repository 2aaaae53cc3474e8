// Package renderer draws generated textures on a screen-space quad.
package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/noisetex/internal/engine/shader"
	"github.com/Faultbox/noisetex/internal/engine/texture"
	"github.com/Faultbox/noisetex/internal/logger"
)

// quadExtent is the half-size of the quad in normalized device coordinates.
const quadExtent = 0.9

// floatsPerVertex is position (3) + color (3) + uv (2).
const floatsPerVertex = 8

// quadVertices holds the four corners with position, color and texture coordinates.
var quadVertices = []float32{
	// position                        // color     // uv
	quadExtent, quadExtent, 0.0, 1.0, 0.0, 0.0, 1.0, 1.0, // top right
	quadExtent, -quadExtent, 0.0, 0.0, 1.0, 0.0, 1.0, 0.0, // bottom right
	-quadExtent, -quadExtent, 0.0, 0.0, 0.0, 1.0, 0.0, 0.0, // bottom left
	-quadExtent, quadExtent, 0.0, 1.0, 1.0, 0.0, 0.0, 1.0, // top left
}

var quadIndices = []uint32{
	0, 1, 3,
	1, 2, 3,
}

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int
	// ClearColor is the RGBA background.
	ClearColor [4]float32
	// Tint multiplies the texture by the vertex colors.
	Tint bool
}

// Renderer draws a texture on a quad that keeps a square aspect.
type Renderer struct {
	config  Config
	program *shader.Program

	vao, vbo, ebo uint32
	transform     mgl32.Mat4
}

// New creates a renderer. Must be called after the OpenGL context exists.
func New(cfg Config, vertexSrc, fragmentSrc string) (*Renderer, error) {
	r := &Renderer{
		config:    cfg,
		transform: mgl32.Ident4(),
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	c := cfg.ClearColor
	gl.ClearColor(c[0], c[1], c[2], c[3])

	var err error
	r.program, err = shader.New(vertexSrc, fragmentSrc)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader program: %w", err)
	}

	r.createQuad()
	r.Resize(cfg.Width, cfg.Height)

	return r, nil
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.ebo != 0 {
		gl.DeleteBuffers(1, &r.ebo)
	}
	if r.program != nil {
		r.program.Delete()
	}
}

// Resize updates the viewport and the quad's aspect correction.
func (r *Renderer) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	r.transform = AspectTransform(width, height)
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Begin clears the frame.
func (r *Renderer) Begin() {
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// DrawTexture draws tex on the quad.
func (r *Renderer) DrawTexture(tex *texture.Texture) {
	r.program.Use()
	r.program.SetMat4("uTransform", r.transform)
	r.program.SetInt("uTexture", 0)
	r.program.SetBool("uTint", r.config.Tint)

	tex.Bind(0)
	gl.BindVertexArray(r.vao)
	gl.DrawElements(gl.TRIANGLES, int32(len(quadIndices)), gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}

// AspectTransform scales the unit quad so it stays square in a
// width x height viewport.
func AspectTransform(width, height int) mgl32.Mat4 {
	if width <= 0 || height <= 0 {
		return mgl32.Ident4()
	}
	aspect := float32(width) / float32(height)
	if aspect > 1 {
		return mgl32.Scale3D(1/aspect, 1, 1)
	}
	return mgl32.Scale3D(1, aspect, 1)
}

func (r *Renderer) createQuad() {
	gl.GenVertexArrays(1, &r.vao)
	gl.GenBuffers(1, &r.vbo)
	gl.GenBuffers(1, &r.ebo)

	gl.BindVertexArray(r.vao)

	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(quadVertices)*4, gl.Ptr(quadVertices), gl.STATIC_DRAW)

	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(quadIndices)*4, gl.Ptr(quadIndices), gl.STATIC_DRAW)

	stride := int32(floatsPerVertex * 4)

	// Position (location = 0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)

	// Color (location = 1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(1)

	// Texture coordinates (location = 2)
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, stride, 6*4)
	gl.EnableVertexAttribArray(2)

	gl.BindVertexArray(0)

	logger.Debug("quad created",
		zap.Uint32("vao", r.vao),
		zap.Uint32("vbo", r.vbo),
		zap.Uint32("ebo", r.ebo),
	)
}
