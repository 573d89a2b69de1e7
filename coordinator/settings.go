package coordinator

import (
	"errors"
	"fmt"
	"os"

	"FractalZoom/mandelbrot"
	"FractalZoom/misc"

	"github.com/BrugadaSyndrome/bslogger"
	"github.com/bytedance/sonic"
)

const (
	MinWidth       = 10
	MinFrameCount  = 1
	MinThreadCount = 1
)

var (
	ErrWidth       = errors.New("frame_width must be at least 10")
	ErrFrameCount  = errors.New("num_frames must be at least 1")
	ErrThreadCount = errors.New("num_threads must be at least 1")
)

type Settings struct {
	logger bslogger.Logger

	ExportMaxFrames    int
	ExportMaxWidth     int
	FileIndexOffset    int
	FilePrefix         string
	FrameCount         int
	LogFile            string
	MandelbrotSettings mandelbrot.Settings
	RunName            string
	SavePath           string
	SkipExport         bool
	ThreadCount        int
	Width              int
}

// NewSettings loads settingsFile when one is given. The result still needs the frame dimensions
// and a call to Verify.
func NewSettings(settingsFile string) (Settings, error) {
	s := Settings{
		logger:          bslogger.NewLogger("CoordinatorSettings", bslogger.Normal, nil),
		FileIndexOffset: -1,
	}
	if settingsFile == "" {
		return s, nil
	}

	fileBytes, err := misc.ReadFile(settingsFile)
	if err != nil {
		return s, err
	}
	if err := sonic.Unmarshal(fileBytes, &s); err != nil {
		return s, fmt.Errorf("unable to parse %s: %w", settingsFile, err)
	}
	return s, nil
}

func (s *Settings) String() string {
	output := "\nCoordinator settings\n"
	output += fmt.Sprintf("Width: %d\n", s.Width)
	output += fmt.Sprintf("Frame Count: %d\n", s.FrameCount)
	output += fmt.Sprintf("Thread Count: %d\n", s.ThreadCount)
	output += fmt.Sprintf("Save Path: %s\n", s.SavePath)
	output += fmt.Sprintf("Run Name: %s\n", s.RunName)
	output += fmt.Sprintf("Export: %t\n", s.ShouldExport())
	output += s.MandelbrotSettings.String()
	return output
}

// Verify rejects frame dimensions the renderer cannot work with and fills defaults for
// everything else. Constraints are checked in argument order.
func (s *Settings) Verify() error {
	s.logger = bslogger.NewLogger("CoordinatorSettings", bslogger.Normal, nil)

	if s.Width < MinWidth {
		return fmt.Errorf("%w, got %d", ErrWidth, s.Width)
	}
	if s.FrameCount < MinFrameCount {
		return fmt.Errorf("%w, got %d", ErrFrameCount, s.FrameCount)
	}
	if s.ThreadCount < MinThreadCount {
		return fmt.Errorf("%w, got %d", ErrThreadCount, s.ThreadCount)
	}

	if err := s.MandelbrotSettings.Verify(); err != nil {
		return err
	}
	if s.ExportMaxFrames <= 0 {
		s.ExportMaxFrames = 100
	}
	if s.ExportMaxWidth <= 0 {
		s.ExportMaxWidth = 256
	}
	if s.FileIndexOffset < 0 {
		s.FileIndexOffset = 1000
	}
	if s.FilePrefix == "" {
		s.FilePrefix = "fractal"
	}
	if s.SavePath == "" {
		var err error
		s.SavePath, err = os.Getwd()
		if err != nil {
			return fmt.Errorf("unable to determine working directory: %w", err)
		}
	}
	if s.ThreadCount > s.FrameCount {
		s.logger.Info(fmt.Sprintf("%d of %d threads will have no frames to render", s.ThreadCount-s.FrameCount, s.ThreadCount))
	}

	return nil
}

// ShouldExport limits how many image files a run may produce. Larger runs are still computed.
func (s *Settings) ShouldExport() bool {
	return !s.SkipExport && s.Width <= s.ExportMaxWidth && s.FrameCount <= s.ExportMaxFrames
}
