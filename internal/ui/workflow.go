package ui

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// TaskStatus is the state of one workflow line.
type TaskStatus int

const (
	TaskPending TaskStatus = iota
	TaskRunning
	TaskDone
	TaskFailed
	TaskSkipped
)

// Task is a single line in a Workflow, e.g. "Loading featured datasets".
type Task struct {
	Name    string
	Status  TaskStatus
	Message string
	Details string
}

// Workflow renders a list of tasks with a spinner on the running ones. The home page
// uses it for its independently loading sections. In plain mode nothing animates and
// only the final state is printed.
type Workflow struct {
	writer     io.Writer
	tasks      []*Task
	mu         sync.Mutex
	spinnerIdx int
	stopChan   chan struct{}
	doneChan   chan struct{}
	running    bool
	lastLines  int
}

// NewWorkflow creates a workflow writing to w.
func NewWorkflow(w io.Writer) *Workflow {
	return &Workflow{
		writer:   w,
		stopChan: make(chan struct{}),
		doneChan: make(chan struct{}),
	}
}

// AddTask appends a pending task and returns its index.
func (wf *Workflow) AddTask(name string) int {
	wf.mu.Lock()
	defer wf.mu.Unlock()
	wf.tasks = append(wf.tasks, &Task{Name: name})
	return len(wf.tasks) - 1
}

func (wf *Workflow) set(idx int, fn func(*Task)) {
	wf.mu.Lock()
	defer wf.mu.Unlock()
	if idx >= 0 && idx < len(wf.tasks) {
		fn(wf.tasks[idx])
	}
}

func (wf *Workflow) StartTask(idx int, message string) {
	wf.set(idx, func(t *Task) { t.Status, t.Message = TaskRunning, message })
}

func (wf *Workflow) CompleteTask(idx int, details string) {
	wf.set(idx, func(t *Task) { t.Status, t.Details = TaskDone, details })
}

func (wf *Workflow) FailTask(idx int, errMsg string) {
	wf.set(idx, func(t *Task) { t.Status, t.Message = TaskFailed, errMsg })
}

func (wf *Workflow) SkipTask(idx int, reason string) {
	wf.set(idx, func(t *Task) { t.Status, t.Message = TaskSkipped, reason })
}

// Tasks returns a snapshot of the tasks.
func (wf *Workflow) Tasks() []Task {
	wf.mu.Lock()
	defer wf.mu.Unlock()
	out := make([]Task, len(wf.tasks))
	for i, t := range wf.tasks {
		out[i] = *t
	}
	return out
}

// Start begins the spinner animation.
func (wf *Workflow) Start() {
	wf.mu.Lock()
	if wf.running {
		wf.mu.Unlock()
		return
	}
	wf.running = true
	wf.mu.Unlock()

	if plain {
		close(wf.doneChan)
		return
	}

	go func() {
		defer close(wf.doneChan)
		ticker := time.NewTicker(80 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-wf.stopChan:
				return
			case <-ticker.C:
				wf.mu.Lock()
				wf.spinnerIdx = (wf.spinnerIdx + 1) % len(spinnerFrames)
				wf.mu.Unlock()
				wf.render(false)
			}
		}
	}()
}

// Stop ends the animation and prints the final state.
func (wf *Workflow) Stop() {
	wf.mu.Lock()
	if !wf.running {
		wf.mu.Unlock()
		return
	}
	wf.running = false
	wf.mu.Unlock()

	close(wf.stopChan)
	<-wf.doneChan
	wf.render(true)
}

func (wf *Workflow) render(final bool) {
	wf.mu.Lock()
	defer wf.mu.Unlock()

	var b strings.Builder
	for i := 0; i < wf.lastLines; i++ {
		b.WriteString("\033[A\033[K")
	}
	for _, t := range wf.tasks {
		b.WriteString(wf.renderTask(t, final))
		b.WriteString("\n")
	}
	wf.lastLines = len(wf.tasks)
	fmt.Fprint(wf.writer, b.String())
}

func (wf *Workflow) renderTask(t *Task, final bool) string {
	var icon string
	switch t.Status {
	case TaskRunning:
		if final {
			icon = Muted.Render("○")
		} else {
			icon = Secondary.Render(spinnerFrames[wf.spinnerIdx])
		}
	case TaskDone:
		icon = GetCheckMark()
	case TaskFailed:
		icon = GetCrossMark()
	case TaskSkipped:
		icon = Warning.Render("⊘")
	default:
		icon = Muted.Render("○")
	}

	line := icon + " " + t.Name
	switch {
	case t.Status == TaskDone && t.Details != "":
		line += " " + Dim.Render("→ "+t.Details)
	case t.Status == TaskFailed && t.Message != "":
		line += " " + Error.Render("→ "+t.Message)
	case t.Status == TaskSkipped && t.Message != "":
		line += " " + Warning.Render("→ "+t.Message)
	case t.Status == TaskRunning && t.Message != "" && !final:
		line += " " + Dim.Render(t.Message)
	}
	return line
}

// Spinner is an inline loading indicator for a single request.
type Spinner struct {
	writer   io.Writer
	message  string
	stopChan chan struct{}
	doneChan chan struct{}
	running  bool
	mu       sync.Mutex
	idx      int
}

// NewSpinner creates a spinner showing message.
func NewSpinner(w io.Writer, message string) *Spinner {
	return &Spinner{
		writer:   w,
		message:  message,
		stopChan: make(chan struct{}),
		doneChan: make(chan struct{}),
	}
}

// Start begins the animation. In plain mode it is a no-op.
func (s *Spinner) Start() {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return
	}
	s.running = true
	s.mu.Unlock()

	if plain {
		close(s.doneChan)
		return
	}

	go func() {
		ticker := time.NewTicker(80 * time.Millisecond)
		defer ticker.Stop()
		defer close(s.doneChan)
		for {
			select {
			case <-s.stopChan:
				return
			case <-ticker.C:
				s.mu.Lock()
				s.idx = (s.idx + 1) % len(spinnerFrames)
				frame, msg := spinnerFrames[s.idx], s.message
				s.mu.Unlock()
				fmt.Fprintf(s.writer, "\r\033[K%s %s", Secondary.Render(frame), msg)
			}
		}
	}()
}

// Stop clears the spinner line. A non-empty final message is printed with a
// check or cross mark.
func (s *Spinner) Stop(success bool, final string) {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	s.mu.Unlock()

	close(s.stopChan)
	<-s.doneChan

	if !plain {
		fmt.Fprint(s.writer, "\r\033[K")
	}
	if final == "" {
		return
	}
	if success {
		fmt.Fprintf(s.writer, "%s %s\n", GetCheckMark(), final)
	} else {
		fmt.Fprintf(s.writer, "%s %s\n", GetCrossMark(), Error.Render(final))
	}
}
