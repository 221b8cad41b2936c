package persist_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"

	"taskboard/internal/board"
	"taskboard/internal/persist"
	"taskboard/internal/testutil"
)

func newBridge(t *testing.T) (*persist.Bridge, *testutil.FakeSlot, *logtest.Hook, *persist.Metrics) {
	t.Helper()
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	fs := testutil.NewFakeSlot()
	m := persist.NewMetrics(prometheus.NewRegistry())
	return persist.NewBridge(fs, persist.DefaultKey, logger, m), fs, hook, m
}

func warnings(hook *logtest.Hook) []string {
	var out []string
	for _, e := range hook.AllEntries() {
		if e.Level == logrus.WarnLevel {
			out = append(out, e.Message)
		}
	}
	return out
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	lists := [][]board.Task{
		{},
		{{ID: "1", Text: "Buy milk", CreatedAt: "2026-01-02 03:04:05"}},
		{
			{ID: board.NewID(), Text: "<b>tags</b> & \"quotes\"", Completed: true, CreatedAt: "x"},
			{ID: board.NewID(), Text: "ünïcode ✓", CreatedAt: ""},
			{ID: "42", Text: "multi\nline"},
		},
	}
	for i, tasks := range lists {
		data, err := persist.Encode(tasks)
		if err != nil {
			t.Fatalf("list %d: encode: %v", i, err)
		}
		got, err := persist.Decode(data)
		if err != nil {
			t.Fatalf("list %d: decode: %v", i, err)
		}
		if len(got) != len(tasks) {
			t.Fatalf("list %d: got %d tasks, want %d", i, len(got), len(tasks))
		}
		for j := range tasks {
			if got[j] != tasks[j] {
				t.Errorf("list %d task %d: got %+v, want %+v", i, j, got[j], tasks[j])
			}
		}
	}
}

func TestEncode_NilIsEmptyArray(t *testing.T) {
	data, err := persist.Encode(nil)
	if err != nil {
		t.Fatal(err)
	}
	if data != "[]" {
		t.Errorf("expected [], got %s", data)
	}
}

func TestDecode_NumericIDs(t *testing.T) {
	data := `[{"id":1712345678901,"text":"Legacy","completed":true,"createdAt":"4/5/2024, 10:14:38 AM"}]`
	tasks, err := persist.Decode(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := board.Task{ID: "1712345678901", Text: "Legacy", Completed: true, CreatedAt: "4/5/2024, 10:14:38 AM"}
	if len(tasks) != 1 || tasks[0] != want {
		t.Errorf("got %+v, want %+v", tasks, want)
	}
}

func TestDecode_DropsDuplicateIDs(t *testing.T) {
	data := `[{"id":"a","text":"first"},{"id":"a","text":"second"},{"id":"b","text":"third"}]`
	tasks, err := persist.Decode(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(tasks) != 2 || tasks[0].Text != "first" || tasks[1].Text != "third" {
		t.Errorf("unexpected tasks %+v", tasks)
	}
}

func TestDecode_Rejects(t *testing.T) {
	cases := map[string]string{
		"not json": `{not json`,
		"object":   `{"id":"1"}`,
		"scalar":   `"tasks"`,
	}
	for name, data := range cases {
		if _, err := persist.Decode(data); !errors.Is(err, persist.ErrMalformed) {
			t.Errorf("%s: expected ErrMalformed, got %v", name, err)
		}
	}
}

func TestDecodeRecords_SkipsUnusableRecords(t *testing.T) {
	data := `[
		{"id":"1","text":"keep"},
		1,
		{"text":"no id"},
		{"id":"3","completed":false},
		{"id":"4","text":"x","completed":"yes"},
		{"id":"5","text":"also keep","completed":true}
	]`
	tasks, skipped, err := persist.DecodeRecords(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(skipped) != 4 {
		t.Errorf("expected 4 skipped records, got %v", skipped)
	}
	if len(tasks) != 2 || tasks[0].ID != "1" || tasks[1].ID != "5" {
		t.Errorf("unexpected tasks %+v", tasks)
	}
}

func TestDecode_KeepsBlankText(t *testing.T) {
	tasks, skipped, err := persist.DecodeRecords(`[{"id":"1","text":"  "}]`)
	if err != nil || len(skipped) != 0 {
		t.Fatalf("decode: %v %v", err, skipped)
	}
	if len(tasks) != 1 || tasks[0].Text != "  " {
		t.Errorf("expected blank task kept, got %+v", tasks)
	}
}

func TestBridge_LoadAbsent(t *testing.T) {
	b, _, hook, _ := newBridge(t)
	tasks := b.Load(context.Background())
	if tasks == nil || len(tasks) != 0 {
		t.Errorf("expected empty non-nil list, got %#v", tasks)
	}
	if len(warnings(hook)) != 0 {
		t.Errorf("absent data should not warn, got %v", warnings(hook))
	}
}

func TestBridge_LoadMalformed(t *testing.T) {
	b, fs, hook, m := newBridge(t)
	fs.Put(persist.DefaultKey, `[{"id":1,"text":"ok"}, garbage`)

	tasks := b.Load(context.Background())
	if len(tasks) != 0 {
		t.Errorf("expected empty list, got %+v", tasks)
	}
	if w := warnings(hook); len(w) != 1 || w[0] != "discarding unreadable task list" {
		t.Errorf("expected one decode warning, got %v", w)
	}
	if got := promtest.ToFloat64(m.DecodeFailures); got != 1 {
		t.Errorf("expected 1 decode failure, got %v", got)
	}
}

func TestBridge_LoadKeepsValidSiblings(t *testing.T) {
	b, fs, hook, m := newBridge(t)
	fs.Put(persist.DefaultKey, `[{"id":1,"text":"Buy milk","completed":false,"createdAt":"x"},`+
		`{"id":2,"text":"bad","completed":"no"},`+
		`{"id":3,"text":"  ","completed":false,"createdAt":"y"}]`)
	ctx := context.Background()

	bd := board.New(b)
	bd.Hydrate(b.Load(ctx))
	if got := len(bd.Tasks()); got != 2 {
		t.Fatalf("expected 2 tasks hydrated, got %d", got)
	}
	if w := warnings(hook); len(w) != 1 || w[0] != "skipping unreadable task" {
		t.Errorf("expected one skip warning, got %v", w)
	}
	if got := promtest.ToFloat64(m.DecodeFailures); got != 1 {
		t.Errorf("expected 1 decode failure, got %v", got)
	}

	bd.AddTask(ctx, "new")
	data, _ := fs.Value(persist.DefaultKey)
	stored, err := persist.Decode(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(stored) != 3 || stored[0].Text != "Buy milk" || stored[2].Text != "new" {
		t.Errorf("expected existing tasks kept after a mutation, got %+v", stored)
	}
}

func TestBridge_LoadReadError(t *testing.T) {
	b, fs, hook, _ := newBridge(t)
	fs.GetErr = errors.New("disk on fire")

	if tasks := b.Load(context.Background()); len(tasks) != 0 {
		t.Errorf("expected empty list, got %+v", tasks)
	}
	if w := warnings(hook); len(w) != 1 || w[0] != "failed to read slot" {
		t.Errorf("expected read warning, got %v", w)
	}
}

func TestBridge_PersistThenLoad(t *testing.T) {
	b, fs, _, m := newBridge(t)
	ctx := context.Background()
	tasks := []board.Task{
		{ID: "1", Text: "A", Completed: true, CreatedAt: "2026-01-01 00:00:00"},
		{ID: "2", Text: "B", CreatedAt: "2026-01-01 00:00:01"},
	}

	b.Persist(ctx, tasks)
	if fs.Writes(persist.DefaultKey) != 1 {
		t.Fatalf("expected 1 write, got %d", fs.Writes(persist.DefaultKey))
	}
	if got := promtest.ToFloat64(m.Writes); got != 1 {
		t.Errorf("expected writes counter 1, got %v", got)
	}

	loaded := b.Load(ctx)
	if len(loaded) != len(tasks) {
		t.Fatalf("got %d tasks, want %d", len(loaded), len(tasks))
	}
	for i := range tasks {
		if loaded[i] != tasks[i] {
			t.Errorf("task %d: got %+v, want %+v", i, loaded[i], tasks[i])
		}
	}
}

func TestBridge_PersistFailureIsLogged(t *testing.T) {
	b, fs, hook, m := newBridge(t)
	fs.SetErr = errors.New("read-only")

	b.Persist(context.Background(), []board.Task{{ID: "1", Text: "A"}})

	if w := warnings(hook); len(w) != 1 || w[0] != "failed to write slot" {
		t.Errorf("expected write warning, got %v", w)
	}
	if got := promtest.ToFloat64(m.WriteFailures); got != 1 {
		t.Errorf("expected 1 write failure, got %v", got)
	}
	if got := promtest.ToFloat64(m.Writes); got != 0 {
		t.Errorf("expected no successful writes, got %v", got)
	}
}

func TestBridge_WriteThroughPerMutation(t *testing.T) {
	b, fs, _, m := newBridge(t)
	ctx := context.Background()
	bd := board.New(b)

	a, _ := bd.AddTask(ctx, "A")
	bd.AddTask(ctx, "B")
	bd.ToggleTask(ctx, a.ID)
	bd.SetFilter(board.FilterActive)
	bd.SetPendingInput("draft")
	bd.ToggleTask(ctx, "missing")

	if got := fs.Writes(persist.DefaultKey); got != 3 {
		t.Errorf("expected 3 writes, got %d", got)
	}
	if got := promtest.ToFloat64(m.Writes); got != 3 {
		t.Errorf("expected writes counter 3, got %v", got)
	}
}

func TestBridge_AddThenDeleteLeavesEmptyList(t *testing.T) {
	b, fs, _, _ := newBridge(t)
	ctx := context.Background()
	bd := board.New(b)

	task, _ := bd.AddTask(ctx, "Buy milk")
	bd.DeleteTask(ctx, task.ID)

	data, ok := fs.Value(persist.DefaultKey)
	if !ok {
		t.Fatal("expected slot to be written")
	}
	tasks, err := persist.Decode(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(tasks) != 0 {
		t.Errorf("expected empty list, got %+v", tasks)
	}
}

func TestBridge_HydrateAcrossSessions(t *testing.T) {
	b, _, _, _ := newBridge(t)
	ctx := context.Background()

	first := board.New(b)
	for i := 0; i < 5; i++ {
		first.AddTask(ctx, fmt.Sprintf("task %d", i))
	}
	first.ToggleTask(ctx, first.Tasks()[2].ID)

	second := board.New(b)
	second.Hydrate(b.Load(ctx))

	want, got := first.Tasks(), second.Tasks()
	if len(got) != len(want) {
		t.Fatalf("got %d tasks, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("task %d: got %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestBridge_Counter(t *testing.T) {
	b, fs, hook, _ := newBridge(t)
	ctx := context.Background()

	if got := b.LoadCounter(ctx, 10); got != 10 {
		t.Errorf("expected default 10, got %d", got)
	}

	b.PersistCounter(ctx, -3)
	if v, _ := fs.Value(persist.CounterKey); v != "-3" {
		t.Errorf("expected stored -3, got %q", v)
	}
	if got := b.LoadCounter(ctx, 10); got != -3 {
		t.Errorf("expected -3, got %d", got)
	}

	fs.Put(persist.CounterKey, "eleven")
	if got := b.LoadCounter(ctx, 10); got != 10 {
		t.Errorf("expected fallback 10, got %d", got)
	}
	if w := warnings(hook); len(w) != 1 || !strings.Contains(w[0], "counter") {
		t.Errorf("expected counter warning, got %v", w)
	}
}
