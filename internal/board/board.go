package board

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Persister receives a full snapshot of the task list after every list
// mutation (add, toggle, delete). Filter and pending-input changes are not
// persisted.
type Persister interface {
	Persist(ctx context.Context, tasks []Task)
}

// PersisterFunc adapts a function to Persister.
type PersisterFunc func(ctx context.Context, tasks []Task)

// Persist implements Persister.
func (f PersisterFunc) Persist(ctx context.Context, tasks []Task) { f(ctx, tasks) }

// Option configures a Board.
type Option func(*Board)

// WithClock overrides the clock used for creation timestamps.
func WithClock(now func() time.Time) Option {
	return func(b *Board) { b.now = now }
}

// WithIDFunc overrides the task id generator.
func WithIDFunc(newID func() string) Option {
	return func(b *Board) { b.newID = newID }
}

// NewID returns a time-ordered unique task id.
func NewID() string {
	return uuid.Must(uuid.NewV7()).String()
}

// Board is the single source of truth for the task list, the pending input
// and the filter. Mutations are serialized; the write-through to the
// persister happens before a mutation returns.
type Board struct {
	mu      sync.Mutex
	tasks   []Task
	pending string
	filter  Filter

	persister Persister
	now       func() time.Time
	newID     func() string
}

// New creates an empty board. p may be nil for a board that is never persisted.
func New(p Persister, opts ...Option) *Board {
	b := &Board{
		filter:    FilterAll,
		persister: p,
		now:       time.Now,
		newID:     NewID,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Hydrate replaces the task list wholesale. Used once at startup with the
// persisted list; it does not write back.
func (b *Board) Hydrate(tasks []Task) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.tasks = append([]Task(nil), tasks...)
}

// AddTask appends a new task with the trimmed text and clears the pending
// input. Blank text is ignored and reported as false.
func (b *Board) AddTask(ctx context.Context, text string) (Task, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.addLocked(ctx, text)
}

// Submit adds the pending input as a task.
func (b *Board) Submit(ctx context.Context) (Task, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.addLocked(ctx, b.pending)
}

func (b *Board) addLocked(ctx context.Context, text string) (Task, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Task{}, false
	}

	id := b.newID()
	for b.indexLocked(id) >= 0 {
		id = b.newID()
	}

	t := Task{
		ID:        id,
		Text:      text,
		CreatedAt: b.now().Format(CreatedAtLayout),
	}
	b.tasks = append(b.tasks, t)
	b.pending = ""
	b.persistLocked(ctx)
	return t, true
}

// ToggleTask flips the completed flag of the task with the given id.
// Unknown ids are ignored.
func (b *Board) ToggleTask(ctx context.Context, id string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	i := b.indexLocked(id)
	if i < 0 {
		return false
	}
	b.tasks[i].Completed = !b.tasks[i].Completed
	b.persistLocked(ctx)
	return true
}

// DeleteTask removes the task with the given id. Unknown ids are ignored.
func (b *Board) DeleteTask(ctx context.Context, id string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	i := b.indexLocked(id)
	if i < 0 {
		return false
	}
	b.tasks = append(b.tasks[:i:i], b.tasks[i+1:]...)
	b.persistLocked(ctx)
	return true
}

// SetFilter sets the active filter.
func (b *Board) SetFilter(f Filter) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.filter = f
}

// Filter returns the active filter.
func (b *Board) Filter() Filter {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.filter
}

// SetPendingInput records the not-yet-submitted input text.
func (b *Board) SetPendingInput(s string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.pending = s
}

// PendingInput returns the not-yet-submitted input text.
func (b *Board) PendingInput() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.pending
}

// Tasks returns a copy of the task list in display order.
func (b *Board) Tasks() []Task {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]Task(nil), b.tasks...)
}

// Find returns the task with the given id.
func (b *Board) Find(id string) (Task, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	i := b.indexLocked(id)
	if i < 0 {
		return Task{}, false
	}
	return b.tasks[i], true
}

func (b *Board) indexLocked(id string) int {
	for i, t := range b.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

func (b *Board) persistLocked(ctx context.Context) {
	if b.persister == nil {
		return
	}
	b.persister.Persist(ctx, append([]Task(nil), b.tasks...))
}
