// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// LitVertexShader is the vertex shader for textured meshes lit by the orbit lights.
//
//go:embed lit.vert
var LitVertexShader string

// LitFragmentShader applies the three point lights with attenuation and an alpha multiplier.
//
//go:embed lit.frag
var LitFragmentShader string

// LampVertexShader is the vertex shader for unlit, colored meshes.
//
//go:embed lamp.vert
var LampVertexShader string

// LampFragmentShader tints an optional texture by lightColor.
//
//go:embed lamp.frag
var LampFragmentShader string

// SkyboxVertexShader places the cube at the far plane.
//
//go:embed skybox.vert
var SkyboxVertexShader string

// SkyboxFragmentShader samples the cube map.
//
//go:embed skybox.frag
var SkyboxFragmentShader string
