package render

import (
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

var (
	goRegular     *opentype.Font
	goRegularErr  error
	goRegularOnce sync.Once
)

// NewFace returns a Go Regular face of the given size.
func NewFace(size float64) (font.Face, error) {
	goRegularOnce.Do(func() {
		goRegular, goRegularErr = opentype.Parse(goregular.TTF)
	})
	if goRegularErr != nil {
		return nil, fmt.Errorf("failed to parse embedded font: %w", goRegularErr)
	}
	face, err := opentype.NewFace(goRegular, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create font face: %w", err)
	}
	return face, nil
}
