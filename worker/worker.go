package worker

import (
	"errors"
	"fmt"
	"time"

	"FractalZoom/frame"
	"FractalZoom/mandelbrot"
	"FractalZoom/task"

	"github.com/BrugadaSyndrome/bslogger"
)

type Worker struct {
	buffer          frame.Buffer
	context         Context
	framesCompleted int
	logger          bslogger.Logger
	mandelbrot      mandelbrot.Mandelbrot
	task            task.Task
}

func NewWorker(context Context, m mandelbrot.Mandelbrot, buffer frame.Buffer) (Worker, error) {
	worker := Worker{
		buffer:     buffer,
		context:    context,
		logger:     bslogger.NewLogger(fmt.Sprintf("Worker %d", context.Rank), bslogger.Normal, nil),
		mandelbrot: m,
		task:       task.NewTask(context.Rank, context.ThreadCount, buffer.Count),
	}
	if err := context.Verify(); err != nil {
		return Worker{}, err
	}
	if context.Width != buffer.Width {
		return Worker{}, fmt.Errorf("worker width %d does not match buffer width %d", context.Width, buffer.Width)
	}
	return worker, nil
}

func (w *Worker) FramesCompleted() int {
	return w.framesCompleted
}

// ProcessTasks renders every frame the worker owns straight into the shared buffer. Only the
// blocks of those frames are written.
func (w *Worker) ProcessTasks() error {
	w.logger.Debug(fmt.Sprintf("Processing %d frames", w.task.Len()))

	var startTime = time.Now()

	for {
		f, err := w.task.GetNextFrame()
		if errors.Is(err, task.ErrNoMoreFrames) {
			break
		}

		pixels, err := w.buffer.Frame(f)
		if err != nil {
			return fmt.Errorf("worker %d: %w", w.context.Rank, err)
		}

		geometry := w.mandelbrot.FrameGeometry(f, w.context.Width)
		w.mandelbrot.RenderFrame(geometry, w.context.Width, pixels)
		w.framesCompleted++
	}

	w.logger.Debug(fmt.Sprintf("Processed %d frames in %s", w.framesCompleted, time.Since(startTime)))
	return nil
}
