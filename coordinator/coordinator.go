package coordinator

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"FractalZoom/frame"
	"FractalZoom/mandelbrot"
	"FractalZoom/misc"
	"FractalZoom/task"
	"FractalZoom/worker"

	"github.com/BrugadaSyndrome/bslogger"
	"golang.org/x/sync/errgroup"
)

type Coordinator struct {
	framesCompleted []int
	logFile         *os.File
	logger          bslogger.Logger
	mandelbrot      mandelbrot.Mandelbrot
	settings        Settings
	stopwatch       misc.Stopwatch
}

func NewCoordinator(settings Settings) (Coordinator, error) {
	coordinator := Coordinator{
		logger: bslogger.NewLogger("Coordinator", bslogger.Normal, nil),
	}
	if err := settings.Verify(); err != nil {
		return coordinator, err
	}
	coordinator.settings = settings
	coordinator.mandelbrot = mandelbrot.NewMandelbrot(settings.MandelbrotSettings)

	// Mirror the log into a file so the run can be reviewed later
	if settings.LogFile != "" {
		if err := misc.EnsureDirectory(filepath.Dir(settings.LogFile)); err != nil {
			return coordinator, err
		}
		logFile, err := os.Create(settings.LogFile)
		if err != nil {
			return coordinator, fmt.Errorf("unable to create log file: %w", err)
		}
		coordinator.logFile = logFile
		coordinator.logger = bslogger.NewLogger("Coordinator", bslogger.Normal, logFile)
	}
	coordinator.logger.Debug(settings.String())

	return coordinator, nil
}

func (c *Coordinator) Settings() Settings {
	return c.settings
}

// Close releases the log file, if any.
func (c *Coordinator) Close() error {
	if c.logFile == nil {
		return nil
	}
	err := c.logFile.Close()
	c.logFile = nil
	return err
}

// ComputeTime is how long the last Run spent rendering, excluding allocation and export.
func (c *Coordinator) ComputeTime() *misc.Stopwatch {
	return &c.stopwatch
}

// FramesCompleted reports how many frames each rank rendered during the last Run.
func (c *Coordinator) FramesCompleted() []int {
	return c.framesCompleted
}

// Run renders every frame with ThreadCount workers. The workers of ranks 0 to ThreadCount-2 run
// on their own goroutines, the last rank runs on the caller. Each worker writes only the frames
// it owns, so nothing is locked while rendering; the buffer is returned only after every worker
// has finished. Any worker error fails the whole run.
func (c *Coordinator) Run() (frame.Buffer, error) {
	threads := c.settings.ThreadCount
	c.logger.Info(fmt.Sprintf("Rendering %d frames of %dx%d with %d threads", c.settings.FrameCount, c.settings.Width, c.settings.Width, threads))

	if checkPartition {
		if err := task.VerifyPartition(c.settings.FrameCount, threads); err != nil {
			return frame.Buffer{}, fmt.Errorf("frame partition: %w", err)
		}
	}

	buffer, err := frame.NewBuffer(c.settings.Width, c.settings.FrameCount)
	if err != nil {
		return frame.Buffer{}, err
	}

	workers := make([]worker.Worker, threads)
	for rank := range workers {
		context := worker.Context{
			Rank:        rank,
			ThreadCount: threads,
			Width:       c.settings.Width,
		}
		workers[rank], err = worker.NewWorker(context, c.mandelbrot, buffer)
		if err != nil {
			return frame.Buffer{}, fmt.Errorf("unable to create worker %d: %w", rank, err)
		}
	}

	c.stopwatch.Start()

	var group errgroup.Group
	for rank := 0; rank < threads-1; rank++ {
		group.Go(workers[rank].ProcessTasks)
	}
	callerErr := workers[threads-1].ProcessTasks()
	groupErr := group.Wait()

	c.stopwatch.Stop()

	c.framesCompleted = make([]int, threads)
	for rank := range workers {
		c.framesCompleted[rank] = workers[rank].FramesCompleted()
	}

	if err := errors.Join(groupErr, callerErr); err != nil {
		c.logger.Error(fmt.Sprintf("Rendering failed after %s: %s", c.stopwatch.String(), err))
		return frame.Buffer{}, err
	}

	c.logger.Info(fmt.Sprintf("compute time: %s", c.stopwatch.String()))
	return buffer, nil
}
