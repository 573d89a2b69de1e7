package mandelbrot

import (
	"fmt"
	"image/color"

	"github.com/BrugadaSyndrome/bslogger"
)

type Settings struct {
	logger bslogger.Logger

	Boundary                float64
	CenterX                 float64
	CenterY                 float64
	Delta                   float64
	GeneratePaletteSettings []generatePaletteSettings
	MaxDepth                int
	Palette                 []color.RGBA
	ZoomFactor              float64
}

// NewSettings returns the settings the zoom sequence is rendered with when nothing overrides them.
func NewSettings() Settings {
	s := Settings{}
	_ = s.Verify()
	return s
}

func (s *Settings) String() string {
	output := "\nMandelbrot settings\n"
	output += fmt.Sprintf("Boundary: %f\n", s.Boundary)
	output += fmt.Sprintf("Center: (%f, %f)\n", s.CenterX, s.CenterY)
	output += fmt.Sprintf("Delta: %f\n", s.Delta)
	output += fmt.Sprintf("Max Depth: %d\n", s.MaxDepth)
	output += fmt.Sprintf("Palette Colors: %d\n", len(s.Palette))
	output += fmt.Sprintf("Zoom Factor: %f\n", s.ZoomFactor)
	return output
}

func (s *Settings) Verify() error {
	s.logger = bslogger.NewLogger("MandelbrotSettings", bslogger.Normal, nil)

	if s.Boundary <= 0 {
		s.Boundary = 5.0
	}
	if s.CenterX == 0 && s.CenterY == 0 {
		s.CenterX = 0.232997
		s.CenterY = 0.550325
	}
	if s.CenterX > 4.0 || s.CenterX < -4.0 || s.CenterY > 4.0 || s.CenterY < -4.0 {
		return fmt.Errorf("center (%f, %f) lies outside [-4, 4]", s.CenterX, s.CenterY)
	}
	if s.Delta <= 0 {
		s.Delta = 0.006
	}
	// Depth values are stored as single bytes
	if s.MaxDepth <= 0 || s.MaxDepth > 256 {
		s.MaxDepth = 256
	}
	if s.ZoomFactor <= 0 || s.ZoomFactor > 1 {
		s.ZoomFactor = 0.985
	}
	if len(s.GeneratePaletteSettings) > 0 {
		s.Palette = make([]color.RGBA, 0)
		for i, gps := range s.GeneratePaletteSettings {
			if gps.NumberColors < 0 {
				return fmt.Errorf("palette %d: NumberColors must be positive, got %d", i, gps.NumberColors)
			}
			s.Palette = append(s.Palette, gps.GeneratePalette()...)
		}
	}
	if len(s.Palette) == 0 {
		gray := generatePaletteSettings{
			StartColor:   color.RGBA{R: 0, G: 0, B: 0, A: 255},
			EndColor:     color.RGBA{R: 255, G: 255, B: 255, A: 255},
			NumberColors: 256,
		}
		s.Palette = gray.GeneratePalette()
	}
	if len(s.Palette) > 256 {
		s.logger.Warning(fmt.Sprintf("Palette has %d colors, only the first 256 are used", len(s.Palette)))
		s.Palette = s.Palette[:256]
	}

	return nil
}
