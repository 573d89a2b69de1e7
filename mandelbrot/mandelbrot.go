package mandelbrot

import (
	"fmt"
	"math"
)

type Mandelbrot struct {
	settings Settings
}

func NewMandelbrot(settings Settings) Mandelbrot {
	return Mandelbrot{settings: settings}
}

func (m *Mandelbrot) Settings() Settings {
	return m.settings
}

// Geometry maps the pixels of one square frame onto the complex plane.
type Geometry struct {
	Delta float64
	Step  float64
	XMin  float64
	YMin  float64
}

func (g Geometry) String() string {
	output := "{Geometry "
	output += fmt.Sprintf("Delta: %g ", g.Delta)
	output += fmt.Sprintf("Step: %g ", g.Step)
	output += fmt.Sprintf("XMin: %f ", g.XMin)
	output += fmt.Sprintf("YMin: %f}", g.YMin)
	return output
}

// Coordinate converts the (row, column) pixel into the (cx, cy) point on the complex plane.
func (g Geometry) Coordinate(row int, column int) (float64, float64) {
	return g.XMin + float64(column)*g.Step, g.YMin + float64(row)*g.Step
}

// FrameGeometry zooms toward the center by ZoomFactor once per frame.
func (m *Mandelbrot) FrameGeometry(frame int, width int) Geometry {
	delta := m.settings.Delta * math.Pow(m.settings.ZoomFactor, float64(frame))
	return Geometry{
		Delta: delta,
		Step:  2.0 * delta / float64(width),
		XMin:  m.settings.CenterX - delta,
		YMin:  m.settings.CenterY - delta,
	}
}

func (m *Mandelbrot) EscapeTime(cx float64, cy float64) uint8 {
	return EscapeDepth(cx, cy, m.settings.MaxDepth, m.settings.Boundary)
}

// RenderFrame fills pixels, a width*width row-major block, with the escape depth of every pixel.
func (m *Mandelbrot) RenderFrame(geometry Geometry, width int, pixels []byte) {
	for row := 0; row < width; row++ {
		line := pixels[row*width : (row+1)*width]
		for column := range line {
			cx, cy := geometry.Coordinate(row, column)
			line[column] = m.EscapeTime(cx, cy)
		}
	}
}

// EscapeDepth iterates z = z² + c starting from z = c and returns the depth left when the orbit
// leaves the boundary or the budget runs out. The boundary test uses the squares from the top of
// the iteration, so at least one step is always taken and the result is at most maxDepth-1.
func EscapeDepth(cx float64, cy float64, maxDepth int, boundary float64) uint8 {
	x, y := cx, cy
	depth := maxDepth
	for {
		x2 := x * x
		y2 := y * y
		y = 2*x*y + cy
		x = x2 - y2 + cx
		depth--
		if depth <= 0 || x2+y2 >= boundary {
			break
		}
	}
	return uint8(depth)
}
