// internal/ui/button.go
package ui

import (
	"image/color"

	"coriolis-view/internal/config"
	"coriolis-view/pkg/render"
)

// Button is a clickable HUD rectangle with a text label.
type Button struct {
	X, Y          float64
	Width, Height float64
	Text          string
	BgColor       color.RGBA
	TextColor     color.RGBA
	hovered       bool
}

func NewButton(x, y, width, height float64, text string) *Button {
	return &Button{
		X:         x,
		Y:         y,
		Width:     width,
		Height:    height,
		Text:      text,
		BgColor:   config.ButtonColor,
		TextColor: config.TextLightColor,
	}
}

// Update tracks hover and reports a click on this frame.
func (b *Button) Update(cursorX, cursorY int, justPressed bool) bool {
	b.hovered = b.contains(float64(cursorX), float64(cursorY))
	return b.hovered && justPressed
}

func (b *Button) contains(mx, my float64) bool {
	return mx >= b.X && mx < b.X+b.Width && my >= b.Y && my < b.Y+b.Height
}

// Draw paints the button, darker while hovered.
func (b *Button) Draw(surface render.Surface) {
	bg := b.BgColor
	if b.hovered {
		bg = render.DarkenColor(bg)
	}
	surface.FillRect(b.X, b.Y, b.Width, b.Height, bg)
	surface.Text(b.Text, b.X+8, b.Y+b.Height/2+config.FontSize/2-2, b.TextColor)
}
