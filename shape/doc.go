// Package shape binds a stroke style to a geometric description and draws it onto a render.Surface.
//
// Variants:
//   - Line: two endpoints
//   - Polygon: ordered vertices, open or closed (NewRectangle and NewTriangle build closed polygons)
//   - Ellipse: center, radii and tessellation count, drawn as a closed N-gon
//
// Every shape is immutable after construction. Its rasterized cells are computed on first use
// and reused on every later draw; moving a shape means constructing a new one.
// The cache is populated without locking, so a shape must not be drawn from two goroutines
// before its first draw completes.
package shape
