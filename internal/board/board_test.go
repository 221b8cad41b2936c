package board

import (
	"context"
	"fmt"
	"testing"
	"time"
)

// recorder captures every snapshot handed to the persister.
type recorder struct {
	snapshots [][]Task
}

func (r *recorder) Persist(ctx context.Context, tasks []Task) {
	r.snapshots = append(r.snapshots, tasks)
}

func (r *recorder) last() []Task {
	if len(r.snapshots) == 0 {
		return nil
	}
	return r.snapshots[len(r.snapshots)-1]
}

func newTestBoard(r *recorder) *Board {
	n := 0
	clock := time.Date(2026, 3, 14, 9, 26, 53, 0, time.Local)
	return New(r,
		WithIDFunc(func() string {
			n++
			return fmt.Sprintf("id-%d", n)
		}),
		WithClock(func() time.Time { return clock }),
	)
}

func TestAddTask(t *testing.T) {
	r := &recorder{}
	b := newTestBoard(r)
	ctx := context.Background()

	task, ok := b.AddTask(ctx, "  Buy milk  ")
	if !ok {
		t.Fatal("expected task to be added")
	}
	if task.Text != "Buy milk" {
		t.Errorf("expected trimmed text, got %q", task.Text)
	}
	if task.Completed {
		t.Error("new task should not be completed")
	}
	if task.CreatedAt != "2026-03-14 09:26:53" {
		t.Errorf("unexpected createdAt %q", task.CreatedAt)
	}

	tasks := b.Tasks()
	if len(tasks) != 1 || tasks[0] != task {
		t.Errorf("unexpected task list %+v", tasks)
	}
	if len(r.snapshots) != 1 {
		t.Fatalf("expected 1 write, got %d", len(r.snapshots))
	}
	if len(r.last()) != 1 {
		t.Errorf("expected persisted snapshot of 1 task, got %d", len(r.last()))
	}
}

func TestAddTask_GrowsByOne(t *testing.T) {
	b := newTestBoard(&recorder{})
	ctx := context.Background()

	for i, s := range []string{"a", "b c", " d ", "ünïcode", "x\ty"} {
		before := len(b.Tasks())
		task, ok := b.AddTask(ctx, s)
		if !ok {
			t.Fatalf("add %q: expected ok", s)
		}
		if got := len(b.Tasks()); got != before+1 {
			t.Errorf("add #%d: expected length %d, got %d", i, before+1, got)
		}
		if task.Completed {
			t.Errorf("add %q: new task completed", s)
		}
	}
}

func TestAddTask_BlankIgnored(t *testing.T) {
	r := &recorder{}
	b := newTestBoard(r)
	ctx := context.Background()

	for _, s := range []string{"", "   ", "\t\n"} {
		if _, ok := b.AddTask(ctx, s); ok {
			t.Errorf("expected %q to be ignored", s)
		}
	}
	if len(b.Tasks()) != 0 {
		t.Errorf("expected empty list, got %d tasks", len(b.Tasks()))
	}
	if len(r.snapshots) != 0 {
		t.Errorf("expected no writes, got %d", len(r.snapshots))
	}
}

func TestSubmit_ClearsPendingInput(t *testing.T) {
	b := newTestBoard(&recorder{})
	ctx := context.Background()

	b.SetPendingInput("Write report")
	task, ok := b.Submit(ctx)
	if !ok {
		t.Fatal("expected submit to add a task")
	}
	if task.Text != "Write report" {
		t.Errorf("unexpected text %q", task.Text)
	}
	if b.PendingInput() != "" {
		t.Errorf("expected pending input cleared, got %q", b.PendingInput())
	}

	b.SetPendingInput("   ")
	if _, ok := b.Submit(ctx); ok {
		t.Error("blank submit should be ignored")
	}
	if b.PendingInput() != "   " {
		t.Errorf("blank submit should keep pending input, got %q", b.PendingInput())
	}
}

func TestToggleTask_FlipsOnlyTarget(t *testing.T) {
	r := &recorder{}
	b := newTestBoard(r)
	ctx := context.Background()

	b.AddTask(ctx, "A")
	b.AddTask(ctx, "B")
	b.AddTask(ctx, "C")

	for _, target := range b.Tasks() {
		before := b.Tasks()
		if !b.ToggleTask(ctx, target.ID) {
			t.Fatalf("toggle %s: expected ok", target.ID)
		}
		after := b.Tasks()
		for i := range before {
			want := before[i]
			if want.ID == target.ID {
				want.Completed = !want.Completed
			}
			if after[i] != want {
				t.Errorf("toggle %s: task %d is %+v, want %+v", target.ID, i, after[i], want)
			}
		}
	}
	if len(r.snapshots) != 6 {
		t.Errorf("expected 6 writes, got %d", len(r.snapshots))
	}
}

func TestToggleTask_UnknownID(t *testing.T) {
	r := &recorder{}
	b := newTestBoard(r)
	ctx := context.Background()
	b.AddTask(ctx, "A")

	if b.ToggleTask(ctx, "missing") {
		t.Error("expected toggle of unknown id to report false")
	}
	if len(r.snapshots) != 1 {
		t.Errorf("expected no extra write, got %d writes", len(r.snapshots))
	}
}

func TestDeleteTask(t *testing.T) {
	r := &recorder{}
	b := newTestBoard(r)
	ctx := context.Background()

	a, _ := b.AddTask(ctx, "A")
	b.AddTask(ctx, "B")

	if b.DeleteTask(ctx, "missing") {
		t.Error("expected delete of unknown id to report false")
	}
	if len(b.Tasks()) != 2 {
		t.Errorf("expected 2 tasks, got %d", len(b.Tasks()))
	}

	if !b.DeleteTask(ctx, a.ID) {
		t.Fatal("expected delete to succeed")
	}
	tasks := b.Tasks()
	if len(tasks) != 1 || tasks[0].Text != "B" {
		t.Errorf("unexpected tasks after delete: %+v", tasks)
	}
	if len(r.last()) != 1 {
		t.Errorf("expected persisted snapshot of 1 task, got %d", len(r.last()))
	}
}

func TestAddThenDelete_PersistsEmptyList(t *testing.T) {
	r := &recorder{}
	b := newTestBoard(r)
	ctx := context.Background()

	task, _ := b.AddTask(ctx, "temporary")
	b.DeleteTask(ctx, task.ID)

	if len(r.snapshots) != 2 {
		t.Fatalf("expected 2 writes, got %d", len(r.snapshots))
	}
	if len(r.last()) != 0 {
		t.Errorf("expected empty snapshot, got %+v", r.last())
	}
}

func TestFilterAndPendingInput_DoNotPersist(t *testing.T) {
	r := &recorder{}
	b := newTestBoard(r)

	b.SetFilter(FilterCompleted)
	b.SetPendingInput("draft")
	b.Hydrate([]Task{{ID: "1", Text: "restored"}})

	if len(r.snapshots) != 0 {
		t.Errorf("expected no writes, got %d", len(r.snapshots))
	}
	if b.Filter() != FilterCompleted {
		t.Errorf("expected completed filter, got %s", b.Filter())
	}
	if len(b.Tasks()) != 1 {
		t.Errorf("expected hydrated list, got %+v", b.Tasks())
	}
}

func TestHydrate_CopiesInput(t *testing.T) {
	b := New(nil)
	in := []Task{{ID: "1", Text: "one"}}
	b.Hydrate(in)
	in[0].Text = "changed"

	if got, _ := b.Find("1"); got.Text != "one" {
		t.Errorf("hydrate should copy its input, got %q", got.Text)
	}
}

func TestAddTask_RegeneratesDuplicateID(t *testing.T) {
	ids := []string{"dup", "dup", "fresh"}
	b := New(nil, WithIDFunc(func() string {
		id := ids[0]
		ids = ids[1:]
		return id
	}))
	ctx := context.Background()

	first, _ := b.AddTask(ctx, "one")
	second, _ := b.AddTask(ctx, "two")
	if first.ID == second.ID {
		t.Fatalf("expected distinct ids, both %q", first.ID)
	}
	if second.ID != "fresh" {
		t.Errorf("expected regenerated id, got %q", second.ID)
	}
}

func TestNewID_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := NewID()
		if seen[id] {
			t.Fatalf("duplicate id %s", id)
		}
		seen[id] = true
	}
}

func TestParseFilter(t *testing.T) {
	cases := map[string]Filter{
		"":           FilterAll,
		"all":        FilterAll,
		" Active ":   FilterActive,
		"COMPLETED":  FilterCompleted,
		"completed ": FilterCompleted,
	}
	for in, want := range cases {
		got, err := ParseFilter(in)
		if err != nil {
			t.Errorf("ParseFilter(%q): unexpected error %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("ParseFilter(%q) = %s, want %s", in, got, want)
		}
	}

	if _, err := ParseFilter("done"); err == nil || err.Error() != "unknown filter: done" {
		t.Errorf("expected unknown filter error, got %v", err)
	}
}
