// Package selection computes selection rectangles for the rectangle select
// tool: a drag between two points, optionally constrained to a square, and
// the automatic "select content" bounds that trim a uniform border.
package selection
