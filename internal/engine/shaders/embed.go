// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// QuadVertexShader transforms the textured quad.
//
//go:embed quad.vert
var QuadVertexShader string

// QuadFragmentShader samples the noise texture, optionally tinted by the
// vertex colors.
//
//go:embed quad.frag
var QuadFragmentShader string

// Names of the embedded sources, used to look up on-disk overrides.
const (
	QuadVertexName   = "quad.vert"
	QuadFragmentName = "quad.frag"
)
