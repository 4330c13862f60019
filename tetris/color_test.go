package tetris_test

import (
	"image/color"
	"testing"

	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/assert"
)

func TestColorHSB(t *testing.T) {
	tests := []struct {
		name       string
		color      tetris.Color
		saturation float32
		brightness float32
		want       color.RGBA
	}{
		{"pure red", tetris.Red, 1, 1, color.RGBA{R: 255, G: 0, B: 0, A: 255}},
		{"cyan", tetris.Cyan, 1, 1, color.RGBA{R: 0, G: 102, B: 255, A: 255}},
		{"no saturation is grey", tetris.Cyan, 0, 0.5, color.RGBA{R: 128, G: 128, B: 128, A: 255}},
		{"no brightness is black", tetris.Magenta, 1, 0, color.RGBA{R: 0, G: 0, B: 0, A: 255}},
		{"pale red", tetris.Red, 0.4, 1, color.RGBA{R: 255, G: 153, B: 153, A: 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.color.HSB(tt.saturation, tt.brightness))
		})
	}
}
