// Package view derives the renderable board from the task list and filter.
// Nothing here mutates its input.
package view

import (
	"math"

	"taskboard/internal/board"
)

// Empty-state messages, one per filter.
const (
	EmptyAll       = "No tasks yet. Add one above!"
	EmptyActive    = "No active tasks!"
	EmptyCompleted = "No completed tasks yet!"
)

// Item is a task as displayed.
type Item struct {
	board.Task

	// Number is the 1-based position of the task in the unfiltered list.
	Number int
}

// Board is the projected view.
type Board struct {
	Filter board.Filter
	Items  []Item

	Total          int
	CompletedCount int
	ActiveCount    int

	// ProgressPercent is only meaningful when ShowProgress is true.
	ProgressPercent int
	ShowProgress    bool

	// EmptyMessage is set when Items is empty.
	EmptyMessage string
}

// Project builds the view of tasks under filter f.
func Project(tasks []board.Task, f board.Filter) Board {
	v := Board{
		Filter: f,
		Total:  len(tasks),
	}

	for i, t := range tasks {
		if t.Completed {
			v.CompletedCount++
		}
		if f.Match(t) {
			v.Items = append(v.Items, Item{Task: t, Number: i + 1})
		}
	}
	v.ActiveCount = v.Total - v.CompletedCount

	if v.Total > 0 {
		v.ShowProgress = true
		v.ProgressPercent = Percent(v.CompletedCount, v.Total)
	}

	if len(v.Items) == 0 {
		v.EmptyMessage = EmptyMessage(f)
	}
	return v
}

// Percent returns part/total as a whole percentage, rounded half up.
func Percent(part, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}

// EmptyMessage returns the empty-state text for a filter.
func EmptyMessage(f board.Filter) string {
	switch f {
	case board.FilterActive:
		return EmptyActive
	case board.FilterCompleted:
		return EmptyCompleted
	default:
		return EmptyAll
	}
}
