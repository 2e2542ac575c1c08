// Package shapes has shapes.
package shapes

// Kind is a shape kind.
type Kind int
