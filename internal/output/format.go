// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"taskboard/internal/board"
	"taskboard/internal/view"
)

const (
	// ListSeparator is the separator line for list sections.
	ListSeparator = "------------"

	// ProgressWidth is the number of cells in the progress bar.
	ProgressWidth = 20
)

var (
	green = color.New(color.FgGreen).SprintFunc()
	dim   = color.New(color.Faint).SprintFunc()
	bold  = color.New(color.Bold).SprintFunc()
	cyan  = color.New(color.FgCyan).SprintFunc()
)

// FormatTask formats a task line.
// Format: "{N:>4}  [x] {TEXT}\n" (4-wide right-aligned number, two spaces, checkbox, text)
func FormatTask(w io.Writer, item view.Item) {
	text := normalizeText(item.Text)
	if item.Completed {
		fmt.Fprintf(w, "%4d  %s %s\n", item.Number, green("[x]"), dim(text))
		return
	}
	fmt.Fprintf(w, "%4d  [ ] %s\n", item.Number, text)
}

// FormatFilterHeader formats the section header shown for a non-default filter.
func FormatFilterHeader(w io.Writer, f board.Filter) {
	fmt.Fprintln(w, ListSeparator)
	fmt.Fprintln(w, bold(f.String()))
	fmt.Fprintln(w, ListSeparator)
}

// FormatSummary formats the counts and, for a non-empty list, the progress bar.
func FormatSummary(w io.Writer, v view.Board) {
	fmt.Fprintln(w, ListSeparator)
	fmt.Fprintf(w, "total %d  active %d  completed %d\n", v.Total, v.ActiveCount, v.CompletedCount)
	if v.ShowProgress {
		fmt.Fprintf(w, "%s %3d%%\n", ProgressBar(v.ProgressPercent, ProgressWidth), v.ProgressPercent)
	}
}

// FormatEmpty formats the empty-state message.
func FormatEmpty(w io.Writer, msg string) {
	fmt.Fprintln(w, dim(msg))
}

// FormatBoard writes the full list view: optional filter header, items or
// empty message, then the summary.
func FormatBoard(w io.Writer, v view.Board) {
	if v.Filter != board.FilterAll {
		FormatFilterHeader(w, v.Filter)
	}
	if len(v.Items) == 0 {
		FormatEmpty(w, v.EmptyMessage)
	}
	for _, item := range v.Items {
		FormatTask(w, item)
	}
	FormatSummary(w, v)
}

// FormatCounter formats the counter value and its messages.
func FormatCounter(w io.Writer, value int, messages []string) {
	fmt.Fprintln(w, bold(fmt.Sprintf("%d", value)))
	for _, m := range messages {
		fmt.Fprintln(w, cyan(m))
	}
}

// ProgressBar renders percent as a bar of width cells.
func ProgressBar(percent, width int) string {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	filled := percent * width / 100
	return "[" + green(strings.Repeat("#", filled)) + strings.Repeat("-", width-filled) + "]"
}

// normalizeText normalizes task text for display.
// Newlines are replaced with spaces.
func normalizeText(text string) string {
	text = strings.ReplaceAll(text, "\r", " ")
	return strings.ReplaceAll(text, "\n", " ")
}
