package coordinator

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func validSettings(t *testing.T) Settings {
	t.Helper()
	s, err := NewSettings("")
	if err != nil {
		t.Fatalf("NewSettings(\"\") error = %v", err)
	}
	s.Width = 10
	s.FrameCount = 1
	s.ThreadCount = 1
	s.SavePath = t.TempDir()
	return s
}

func TestVerifyConstraints(t *testing.T) {
	tests := []struct {
		name                  string
		width, frames, thread int
		want                  error
	}{
		{"valid", 10, 1, 1, nil},
		{"narrow", 5, 1, 1, ErrWidth},
		{"no frames", 10, 0, 1, ErrFrameCount},
		{"no threads", 10, 1, 0, ErrThreadCount},
		{"width reported first", 9, 0, 0, ErrWidth},
		{"frames before threads", 10, -3, 0, ErrFrameCount},
	}
	for _, tt := range tests {
		s := validSettings(t)
		s.Width, s.FrameCount, s.ThreadCount = tt.width, tt.frames, tt.thread
		err := s.Verify()
		if tt.want == nil {
			if err != nil {
				t.Errorf("%s: Verify() = %v, want nil", tt.name, err)
			}
			continue
		}
		if !errors.Is(err, tt.want) {
			t.Errorf("%s: Verify() = %v, want %v", tt.name, err, tt.want)
		}
	}
}

func TestVerifyDefaults(t *testing.T) {
	s := validSettings(t)
	if err := s.Verify(); err != nil {
		t.Fatalf("Verify() = %v", err)
	}
	if s.FilePrefix != "fractal" || s.FileIndexOffset != 1000 {
		t.Errorf("file naming = %q/%d, want fractal/1000", s.FilePrefix, s.FileIndexOffset)
	}
	if s.ExportMaxWidth != 256 || s.ExportMaxFrames != 100 {
		t.Errorf("export limits = %d/%d, want 256/100", s.ExportMaxWidth, s.ExportMaxFrames)
	}
	if s.MandelbrotSettings.Boundary != 5.0 {
		t.Errorf("boundary = %g, want 5", s.MandelbrotSettings.Boundary)
	}
}

func TestShouldExport(t *testing.T) {
	tests := []struct {
		width, frames int
		skip          bool
		want          bool
	}{
		{256, 100, false, true},
		{257, 100, false, false},
		{256, 101, false, false},
		{10, 1, true, false},
	}
	for _, tt := range tests {
		s := validSettings(t)
		s.Width, s.FrameCount, s.SkipExport = tt.width, tt.frames, tt.skip
		if err := s.Verify(); err != nil {
			t.Fatalf("Verify() = %v", err)
		}
		if got := s.ShouldExport(); got != tt.want {
			t.Errorf("ShouldExport() width=%d frames=%d skip=%t = %t, want %t", tt.width, tt.frames, tt.skip, got, tt.want)
		}
	}
}

func TestNewSettingsFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	contents := `{"FilePrefix": "zoom", "FileIndexOffset": 0, "RunName": "deep", "MandelbrotSettings": {"MaxDepth": 64}}`
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := NewSettings(path)
	if err != nil {
		t.Fatalf("NewSettings() error = %v", err)
	}
	s.Width, s.FrameCount, s.ThreadCount = 10, 1, 1
	if err := s.Verify(); err != nil {
		t.Fatalf("Verify() = %v", err)
	}
	if s.FilePrefix != "zoom" || s.FileIndexOffset != 0 || s.RunName != "deep" {
		t.Errorf("file settings = %q/%d/%q", s.FilePrefix, s.FileIndexOffset, s.RunName)
	}
	if s.MandelbrotSettings.MaxDepth != 64 {
		t.Errorf("MaxDepth = %d, want 64", s.MandelbrotSettings.MaxDepth)
	}
}

func TestNewSettingsBadFile(t *testing.T) {
	if _, err := NewSettings(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("NewSettings(missing) error = nil, want error")
	}

	path := filepath.Join(t.TempDir(), "broken.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := NewSettings(path); err == nil {
		t.Error("NewSettings(broken) error = nil, want error")
	}
}

func TestNewSettingsNegativePaletteCount(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	contents := `{"MandelbrotSettings": {"GeneratePaletteSettings": [{"NumberColors": -1}]}}`
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := NewSettings(path)
	if err != nil {
		t.Fatalf("NewSettings() error = %v", err)
	}
	s.Width, s.FrameCount, s.ThreadCount = 10, 1, 1
	if err := s.Verify(); err == nil {
		t.Error("Verify() = nil, want error for negative NumberColors")
	}
}
