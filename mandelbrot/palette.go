package mandelbrot

import (
	"image/color"

	"FractalZoom/misc"
)

type generatePaletteSettings struct {
	StartColor   color.RGBA
	EndColor     color.RGBA
	NumberColors int
}

func (gps *generatePaletteSettings) GeneratePalette() []color.RGBA {
	if gps.NumberColors <= 0 {
		return nil
	}
	palette := make([]color.RGBA, 0, gps.NumberColors)
	for j := 0; j < gps.NumberColors; j++ {
		// The last step lands on EndColor so a 256 entry gray ramp reaches white
		fraction := 1.0
		if gps.NumberColors > 1 {
			fraction = float64(j) / float64(gps.NumberColors-1)
		}
		palette = append(palette, misc.LinearInterpolationRGB(gps.StartColor, gps.EndColor, fraction))
	}
	return palette
}

// ColorPalette converts the palette for paletted images. Depth values past the end of a short
// palette wrap around it.
func (m *Mandelbrot) ColorPalette() color.Palette {
	palette := make(color.Palette, 256)
	for i := range palette {
		palette[i] = m.settings.Palette[i%len(m.settings.Palette)]
	}
	return palette
}
