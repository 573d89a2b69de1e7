package frame

import (
	"errors"
	"math"
	"testing"
)

func TestNewBuffer(t *testing.T) {
	b, err := NewBuffer(10, 3)
	if err != nil {
		t.Fatalf("NewBuffer(10, 3) error = %v", err)
	}
	if len(b.Pixels) != 300 {
		t.Errorf("len(Pixels) = %d, want 300", len(b.Pixels))
	}
	if b.FrameSize() != 100 {
		t.Errorf("FrameSize() = %d, want 100", b.FrameSize())
	}
}

func TestNewBufferRejectsEmpty(t *testing.T) {
	for _, tt := range []struct{ width, count int }{{0, 1}, {10, 0}, {-1, -1}} {
		if _, err := NewBuffer(tt.width, tt.count); err == nil {
			t.Errorf("NewBuffer(%d, %d) error = nil, want error", tt.width, tt.count)
		}
	}
}

func TestFrameViews(t *testing.T) {
	b, _ := NewBuffer(4, 3)
	for f := 0; f < b.Count; f++ {
		pixels, err := b.Frame(f)
		if err != nil {
			t.Fatalf("Frame(%d) error = %v", f, err)
		}
		if len(pixels) != 16 || cap(pixels) != 16 {
			t.Errorf("Frame(%d) len/cap = %d/%d, want 16/16", f, len(pixels), cap(pixels))
		}
		for i := range pixels {
			pixels[i] = byte(f + 1)
		}
	}
	for i, v := range b.Pixels {
		if want := byte(i/16 + 1); v != want {
			t.Fatalf("Pixels[%d] = %d, want %d", i, v, want)
		}
	}
}

func TestFrameOutOfRange(t *testing.T) {
	b, _ := NewBuffer(4, 2)
	for _, f := range []int{-1, 2, 10} {
		if _, err := b.Frame(f); !errors.Is(err, ErrFrameOutOfRange) {
			t.Errorf("Frame(%d) error = %v, want ErrFrameOutOfRange", f, err)
		}
	}
}

func TestOffset(t *testing.T) {
	b, _ := NewBuffer(10, 5)
	tests := []struct {
		f, row, column int
		want           int
	}{
		{0, 0, 0, 0},
		{0, 1, 0, 10},
		{0, 9, 9, 99},
		{1, 0, 0, 100},
		{4, 2, 3, 423},
	}
	for _, tt := range tests {
		if got := b.Offset(tt.f, tt.row, tt.column); got != tt.want {
			t.Errorf("Offset(%d, %d, %d) = %d, want %d", tt.f, tt.row, tt.column, got, tt.want)
		}
	}
}

func TestFrameShortBuffer(t *testing.T) {
	b := Buffer{Count: 3, Width: 4, Pixels: make([]byte, 20)}
	if _, err := b.Frame(0); err != nil {
		t.Errorf("Frame(0) error = %v, want nil", err)
	}
	if _, err := b.Frame(1); !errors.Is(err, ErrFrameOutOfRange) {
		t.Errorf("Frame(1) error = %v, want ErrFrameOutOfRange", err)
	}
}

func TestNewBufferRejectsOverflow(t *testing.T) {
	for _, tt := range []struct{ width, count int }{{math.MaxInt / 2, 1}, {math.MaxInt / 4, 4}, {1 << 15, math.MaxInt >> 29}} {
		b, err := NewBuffer(tt.width, tt.count)
		if err == nil {
			t.Errorf("NewBuffer(%d, %d) = %v, nil; want overflow error", tt.width, tt.count, b)
		}
	}
}
