package task

import (
	"errors"
	"fmt"
)

var ErrNoMoreFrames = errors.New("no more frames")

// Task is the set of frames one worker renders. Frames are handed out cyclically: the worker of
// rank r owns every frame f with f mod threadCount == r. The set is never stored, only walked.
type Task struct {
	CurrentFrame int
	FrameCount   int
	Rank         int
	ThreadCount  int
}

func NewTask(rank int, threadCount int, frameCount int) Task {
	return Task{
		CurrentFrame: rank,
		FrameCount:   frameCount,
		Rank:         rank,
		ThreadCount:  threadCount,
	}
}

func (t *Task) String() string {
	output := "{Task "
	output += fmt.Sprintf("Rank: %d ", t.Rank)
	output += fmt.Sprintf("Thread Count: %d ", t.ThreadCount)
	output += fmt.Sprintf("Frame Count: %d ", t.FrameCount)
	output += fmt.Sprintf("Frames: %d}", t.Len())
	return output
}

// GetNextFrame returns the next frame this task owns, or ErrNoMoreFrames once all of them have
// been handed out.
func (t *Task) GetNextFrame() (int, error) {
	if t.ThreadCount < 1 || t.CurrentFrame >= t.FrameCount {
		return 0, ErrNoMoreFrames
	}
	frame := t.CurrentFrame
	t.CurrentFrame += t.ThreadCount
	return frame, nil
}

// Len is how many frames the task owns in total.
func (t *Task) Len() int {
	if t.ThreadCount < 1 || t.Rank >= t.FrameCount {
		return 0
	}
	return (t.FrameCount-t.Rank-1)/t.ThreadCount + 1
}

// Frames lists every frame the task owns without advancing it.
func (t *Task) Frames() []int {
	frames := make([]int, 0, t.Len())
	for f := t.Rank; t.ThreadCount > 0 && f < t.FrameCount; f += t.ThreadCount {
		frames = append(frames, f)
	}
	return frames
}

// Partition builds the task of every rank.
func Partition(frameCount int, threadCount int) []Task {
	tasks := make([]Task, threadCount)
	for rank := range tasks {
		tasks[rank] = NewTask(rank, threadCount, frameCount)
	}
	return tasks
}

// VerifyPartition checks that the tasks of all ranks cover every frame exactly once.
func VerifyPartition(frameCount int, threadCount int) error {
	if threadCount < 1 {
		return fmt.Errorf("thread count %d leaves frames unassigned", threadCount)
	}
	owner := make([]int, frameCount)
	for i := range owner {
		owner[i] = -1
	}
	for _, t := range Partition(frameCount, threadCount) {
		for _, f := range t.Frames() {
			if f < 0 || f >= frameCount {
				return fmt.Errorf("rank %d owns frame %d outside [0, %d)", t.Rank, f, frameCount)
			}
			if owner[f] != -1 {
				return fmt.Errorf("frame %d owned by ranks %d and %d", f, owner[f], t.Rank)
			}
			owner[f] = t.Rank
		}
	}
	for f, rank := range owner {
		if rank == -1 {
			return fmt.Errorf("frame %d owned by no rank", f)
		}
	}
	return nil
}
