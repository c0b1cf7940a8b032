// Package render exports a fixture model as a solid STL mesh, a shaded
// preview image and a top view placement diagram.
package render
