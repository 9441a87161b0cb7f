// Package imaging holds the image operations behind the paint tools server:
// loading and caching files, sampling pixel colors, dominant colors,
// cropping, canvas resizing, color wheel rendering and PNG output.
//
// # Coordinate System
//
// Pixel coordinates are 0-based with the origin at the top-left corner, X
// growing rightward and Y downward. Regions use an inclusive top-left
// corner (x1, y1) and an exclusive bottom-right corner (x2, y2).
//
// # Immutability
//
// Images returned by ImageCache are shared and must not be modified.
// Operations that change pixels (Crop, ResizeCanvas) allocate a new
// *image.NRGBA.
//
// # Colors
//
// Colors are reported through colormodel.Describe: an eight digit RRGGBBAA
// hex string, 8-bit channels, HSV, HSL and Lab.
//
// # Errors
//
// Out-of-bounds coordinates wrap ErrOutOfBounds; bad canvas or wheel sizes
// wrap ErrInvalidSize. I/O and codec errors are wrapped with context.
package imaging
