package output

import (
	"bytes"
	"testing"

	"github.com/fatih/color"

	"taskboard/internal/board"
	"taskboard/internal/testutil"
	"taskboard/internal/view"
)

func init() {
	color.NoColor = true
}

func TestFormatBoard_Mixed(t *testing.T) {
	tasks := []board.Task{
		{ID: "1", Text: "Buy milk", Completed: true},
		{ID: "2", Text: "Walk\nthe dog"},
		{ID: "3", Text: "Write report"},
	}
	var buf bytes.Buffer
	FormatBoard(&buf, view.Project(tasks, board.FilterAll))
	testutil.GoldenString(t, "board_mixed", buf.String())
}

func TestFormatBoard_EmptyCompletedFilter(t *testing.T) {
	tasks := []board.Task{{ID: "1", Text: "Buy milk"}}
	var buf bytes.Buffer
	FormatBoard(&buf, view.Project(tasks, board.FilterCompleted))

	expected := "------------\ncompleted\n------------\n" +
		"No completed tasks yet!\n" +
		"------------\ntotal 1  active 1  completed 0\n" +
		"[--------------------]   0%\n"
	if buf.String() != expected {
		t.Errorf("expected %q, got %q", expected, buf.String())
	}
}

func TestFormatBoard_EmptyHidesProgress(t *testing.T) {
	var buf bytes.Buffer
	FormatBoard(&buf, view.Project(nil, board.FilterAll))

	expected := "No tasks yet. Add one above!\n------------\ntotal 0  active 0  completed 0\n"
	if buf.String() != expected {
		t.Errorf("expected %q, got %q", expected, buf.String())
	}
}

func TestProgressBar(t *testing.T) {
	cases := map[int]string{
		0:   "[----------]",
		50:  "[#####-----]",
		67:  "[######----]",
		100: "[##########]",
		150: "[##########]",
	}
	for pct, want := range cases {
		if got := ProgressBar(pct, 10); got != want {
			t.Errorf("ProgressBar(%d) = %q, want %q", pct, got, want)
		}
	}
}

func TestFormatCounter(t *testing.T) {
	var buf bytes.Buffer
	FormatCounter(&buf, 12, []string{"You added 12 time(s)!", "Wow! You reached 12!"})
	expected := "12\nYou added 12 time(s)!\nWow! You reached 12!\n"
	if buf.String() != expected {
		t.Errorf("expected %q, got %q", expected, buf.String())
	}
}
