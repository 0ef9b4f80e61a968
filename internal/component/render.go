// internal/component/render.go
package component

import "image/color"

// Renderable describes how a round object is drawn.
type Renderable struct {
	Color  color.RGBA
	Radius float64
}
