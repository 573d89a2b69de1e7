// Package frame holds the contiguous byte arena every frame of a run is rendered into.
//
// The arena is split into Count square blocks of Width*Width bytes, one per frame. Writers that
// each own a disjoint set of frame indices may fill their blocks concurrently without locking;
// readers must wait until every writer has finished.
package frame

import (
	"errors"
	"fmt"
	"math"
)

var ErrFrameOutOfRange = errors.New("frame index out of range")

type Buffer struct {
	Count  int
	Width  int
	Pixels []byte
}

func NewBuffer(width int, count int) (Buffer, error) {
	if width < 1 || count < 1 {
		return Buffer{}, fmt.Errorf("cannot allocate %d frames of width %d", count, width)
	}
	if width > math.MaxInt/width/count {
		return Buffer{}, fmt.Errorf("cannot allocate %d frames of width %d: size overflows", count, width)
	}
	return Buffer{
		Count:  count,
		Width:  width,
		Pixels: make([]byte, count*width*width),
	}, nil
}

func (b Buffer) String() string {
	return fmt.Sprintf("{Buffer Count: %d Width: %d Bytes: %d}", b.Count, b.Width, len(b.Pixels))
}

// FrameSize is the number of bytes in one frame.
func (b Buffer) FrameSize() int {
	return b.Width * b.Width
}

// Offset is the position of pixel (row, column) of frame f within Pixels.
func (b Buffer) Offset(f int, row int, column int) int {
	return f*b.FrameSize() + row*b.Width + column
}

// Frame returns the block of frame f. The returned slice aliases Pixels and is capped so writes
// cannot spill into the next frame.
func (b Buffer) Frame(f int) ([]byte, error) {
	if f < 0 || f >= b.Count {
		return nil, fmt.Errorf("%w: %d not in [0, %d)", ErrFrameOutOfRange, f, b.Count)
	}
	start := f * b.FrameSize()
	end := start + b.FrameSize()
	if end > len(b.Pixels) {
		return nil, fmt.Errorf("%w: frame %d ends at byte %d of %d", ErrFrameOutOfRange, f, end, len(b.Pixels))
	}
	return b.Pixels[start:end:end], nil
}
