// Package persist keeps the durable slot in step with the board: the task
// list is read once at startup and written back after every mutation.
package persist

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tidwall/gjson"

	"taskboard/internal/board"
)

// ErrMalformed is returned by Decode when the stored value is not valid JSON.
var ErrMalformed = errors.New("malformed task list")

// Encode serializes the full task list.
func Encode(tasks []board.Task) (string, error) {
	if tasks == nil {
		tasks = []board.Task{}
	}
	data, err := json.Marshal(tasks)
	if err != nil {
		return "", fmt.Errorf("encode tasks: %w", err)
	}
	return string(data), nil
}

// Decode parses a stored task list, dropping records it cannot use. Only a
// value that is not a JSON array fails as a whole.
func Decode(data string) ([]board.Task, error) {
	tasks, _, err := DecodeRecords(data)
	return tasks, err
}

// DecodeRecords is Decode that also reports each skipped record. Ids may be
// JSON numbers (older data used creation timestamps) or strings. Records
// repeating an earlier id are dropped without error.
func DecodeRecords(data string) ([]board.Task, []error, error) {
	if !gjson.Valid(data) {
		return nil, nil, ErrMalformed
	}
	root := gjson.Parse(data)
	if !root.IsArray() {
		return nil, nil, fmt.Errorf("%w: expected an array", ErrMalformed)
	}

	tasks := []board.Task{}
	seen := make(map[string]bool)
	var skipped []error
	root.ForEach(func(idx, rec gjson.Result) bool {
		t, err := decodeRecord(rec)
		if err != nil {
			skipped = append(skipped, fmt.Errorf("record %d: %w", idx.Int(), err))
			return true
		}
		if seen[t.ID] {
			return true
		}
		seen[t.ID] = true
		tasks = append(tasks, t)
		return true
	})
	return tasks, skipped, nil
}

func decodeRecord(rec gjson.Result) (board.Task, error) {
	if !rec.IsObject() {
		return board.Task{}, errors.New("not an object")
	}

	var t board.Task
	id := rec.Get("id")
	switch id.Type {
	case gjson.Number:
		t.ID = id.Raw
	case gjson.String:
		t.ID = id.Str
	}
	if t.ID == "" {
		return board.Task{}, errors.New("missing id")
	}

	text := rec.Get("text")
	if text.Type != gjson.String {
		return board.Task{}, errors.New("missing text")
	}
	t.Text = text.Str

	switch completed := rec.Get("completed"); completed.Type {
	case gjson.True:
		t.Completed = true
	case gjson.False, gjson.Null:
	default:
		return board.Task{}, fmt.Errorf("completed is not a boolean: %s", completed.Raw)
	}

	t.CreatedAt = rec.Get("createdAt").String()
	return t, nil
}
