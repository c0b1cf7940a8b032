// Package chuck implements the placement geometry of a chuck fixture model:
// unit conversion to SI, polar transforms, rotation about an arbitrary axis
// and the radial placement of jaws around a cylindrical workpiece.
//
// Functions panic with a *PreconditionError on degenerate input.
package chuck
