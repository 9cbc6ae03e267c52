// Package model turns parsed OBJ files into accumulated meshes.
package model

// Stats summarizes one OBJ file and the mesh built from it.
type Stats struct {
	Positions int // v records
	Normals   int // vn records
	TexCoords int // vt records
	Faces     int // f records
	Vertices  int // vertices appended to the builder

	HasNormals   bool
	HasTexCoords bool
}
