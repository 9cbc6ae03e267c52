// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// PhongVertexShader is the vertex shader for lit, untextured objects.
//
//go:embed phong.vert
var PhongVertexShader string

// PhongFragmentShader is the fragment shader for lit, untextured objects.
//
//go:embed phong.frag
var PhongFragmentShader string

// TextureVertexShader is the vertex shader for textured objects.
//
//go:embed texture.vert
var TextureVertexShader string

// TextureFragmentShader is the fragment shader for textured objects.
//
//go:embed texture.frag
var TextureFragmentShader string

// GlassFragmentShader is the fragment shader for translucent objects.
// It pairs with PhongVertexShader.
//
//go:embed glass.frag
var GlassFragmentShader string
