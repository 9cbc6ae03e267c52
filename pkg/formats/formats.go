// Package formats provides parsers for mesh file formats.
//
// Wavefront OBJ is implemented in obj.go: vertex positions, texture
// coordinates, normals and triangular faces.
package formats
