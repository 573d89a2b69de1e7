package coordinator

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"FractalZoom/frame"
	"FractalZoom/misc"

	"github.com/bytedance/sonic"
	"golang.org/x/image/bmp"
)

const manifestName = "settings.json"

// manifest records how a run was produced so it can be repeated.
type manifest struct {
	ComputeSeconds float64
	Files          []string
	Settings       Settings
}

// RunPath is the directory exported frames are written to.
func (c *Coordinator) RunPath() string {
	return filepath.Join(c.settings.SavePath, c.settings.RunName)
}

// FrameFileName names the image file of frame f.
func (c *Coordinator) FrameFileName(f int) string {
	return fmt.Sprintf("%s%d.bmp", c.settings.FilePrefix, f+c.settings.FileIndexOffset)
}

// Export writes every frame of buffer as an 8 bit paletted BMP, followed by the run manifest.
// Runs past the export limits are skipped and return no files.
func (c *Coordinator) Export(buffer frame.Buffer) ([]string, error) {
	if !c.settings.ShouldExport() {
		c.logger.Info(fmt.Sprintf("Skipping export of %d frames of width %d", buffer.Count, buffer.Width))
		return nil, nil
	}

	if err := misc.EnsureDirectory(c.RunPath()); err != nil {
		return nil, err
	}

	palette := c.mandelbrot.ColorPalette()
	files := make([]string, 0, buffer.Count)
	for f := 0; f < buffer.Count; f++ {
		pixels, err := buffer.Frame(f)
		if err != nil {
			return files, err
		}
		img := &image.Paletted{
			Pix:     pixels,
			Stride:  buffer.Width,
			Rect:    image.Rect(0, 0, buffer.Width, buffer.Width),
			Palette: palette,
		}

		path := filepath.Join(c.RunPath(), c.FrameFileName(f))
		if err := writeBMP(path, img); err != nil {
			return files, err
		}
		c.logger.Debug(fmt.Sprintf("Saved frame %d to %s", f, path))
		files = append(files, path)
	}
	c.logger.Info(fmt.Sprintf("Saved %d frames to %s", len(files), c.RunPath()))

	if err := c.writeManifest(files); err != nil {
		return files, err
	}
	return files, nil
}

func writeBMP(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("unable to create image %s: %w", path, err)
	}
	if err := bmp.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("unable to save image %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("unable to close image %s: %w", path, err)
	}
	return nil
}

func (c *Coordinator) writeManifest(files []string) error {
	bytes, err := sonic.Marshal(manifest{
		ComputeSeconds: c.stopwatch.Elapsed().Seconds(),
		Files:          files,
		Settings:       c.settings,
	})
	if err != nil {
		return fmt.Errorf("unable to encode run manifest: %w", err)
	}
	bytesWritten, err := misc.WriteFile(filepath.Join(c.RunPath(), manifestName), bytes)
	if err != nil {
		return fmt.Errorf("unable to write run manifest: %w", err)
	}
	if bytesWritten != len(bytes) {
		return fmt.Errorf("run manifest truncated at %d of %d bytes", bytesWritten, len(bytes))
	}
	return nil
}
