// internal/component/bounds.go
package component

// Bounds is the size of the global frame. A point is inside when
// 0 <= x < Width and 0 <= y < Height.
type Bounds struct {
	Width, Height float64
}

// Contains reports whether (x, y) lies inside the half-open box.
func (b Bounds) Contains(x, y float64) bool {
	return x >= 0 && x < b.Width && y >= 0 && y < b.Height
}
