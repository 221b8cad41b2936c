// Package board holds the task board state: the task list, the pending
// input text and the active filter.
package board

import (
	"fmt"
	"strings"
)

// CreatedAtLayout is the display layout of Task.CreatedAt.
const CreatedAtLayout = "2006-01-02 15:04:05"

// Task is a single to-do item.
type Task struct {
	ID        string `json:"id" yaml:"id"`
	Text      string `json:"text" yaml:"text"`
	Completed bool   `json:"completed" yaml:"completed"`
	CreatedAt string `json:"createdAt" yaml:"createdAt"`
}

// Filter selects which tasks the view shows.
type Filter string

const (
	FilterAll       Filter = "all"
	FilterActive    Filter = "active"
	FilterCompleted Filter = "completed"
)

// Filters lists the filters in display order.
var Filters = []Filter{FilterAll, FilterActive, FilterCompleted}

// Match reports whether t passes the filter.
func (f Filter) Match(t Task) bool {
	switch f {
	case FilterActive:
		return !t.Completed
	case FilterCompleted:
		return t.Completed
	default:
		return true
	}
}

func (f Filter) String() string { return string(f) }

// ParseFilter maps a user-supplied name (case-insensitive, trimmed) to a Filter.
func ParseFilter(s string) (Filter, error) {
	switch Filter(strings.ToLower(strings.TrimSpace(s))) {
	case FilterAll, "":
		return FilterAll, nil
	case FilterActive:
		return FilterActive, nil
	case FilterCompleted:
		return FilterCompleted, nil
	}
	return "", fmt.Errorf("unknown filter: %s", s)
}
