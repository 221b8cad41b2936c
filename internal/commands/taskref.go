package commands

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"taskboard/internal/board"
)

// TaskRef represents a parsed task reference.
type TaskRef struct {
	Number int    // 1-based position in the list, 0 if the reference is an id
	ID     string // task id or id prefix, empty if the reference is a number
}

// ErrTaskRefRequired indicates no task reference was provided.
var ErrTaskRefRequired = errors.New("task reference required")

// minIDPrefix is the shortest id prefix accepted as a reference.
const minIDPrefix = 4

// ParseTaskRef parses a task reference from args.
//
// Parsing rules:
// 1. No args or a blank first arg → error: task reference required
// 2. More than one arg → error: too many arguments
// 3. All digits → position reference (also tried as a legacy numeric id)
// 4. Otherwise → id reference
func ParseTaskRef(args []string) (TaskRef, error) {
	if len(args) == 0 || strings.TrimSpace(args[0]) == "" {
		return TaskRef{}, ErrTaskRefRequired
	}
	if len(args) > 1 {
		return TaskRef{}, fmt.Errorf("too many arguments: %s", strings.Join(args[1:], " "))
	}

	arg := strings.TrimSpace(args[0])
	if isAllDigits(arg) {
		num, err := strconv.Atoi(arg)
		if err != nil {
			// Too large for a position; only usable as an id.
			return TaskRef{ID: arg}, nil
		}
		return TaskRef{Number: num, ID: arg}, nil
	}
	return TaskRef{ID: arg}, nil
}

// ResolveTask finds the task a reference points at in tasks, which must be
// in board order. A number inside the list range wins over an id match.
// Otherwise the reference matches an id exactly, or by a unique prefix of at
// least four characters; digit-only references included.
func ResolveTask(tasks []board.Task, ref TaskRef) (board.Task, error) {
	if ref.Number >= 1 && ref.Number <= len(tasks) {
		return tasks[ref.Number-1], nil
	}

	for _, t := range tasks {
		if t.ID == ref.ID {
			return t, nil
		}
	}

	if len(ref.ID) >= minIDPrefix {
		var found []board.Task
		for _, t := range tasks {
			if strings.HasPrefix(t.ID, ref.ID) {
				found = append(found, t)
			}
		}
		switch len(found) {
		case 1:
			return found[0], nil
		case 0:
		default:
			return board.Task{}, fmt.Errorf("ambiguous task id: %s", ref.ID)
		}
	}

	if ref.Number != 0 || ref.ID == "0" {
		return board.Task{}, fmt.Errorf("task number out of range: %d", ref.Number)
	}
	return board.Task{}, fmt.Errorf("task not found: %s", ref.ID)
}

// isAllDigits returns true if s consists only of ASCII digits and is non-empty.
func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r > unicode.MaxASCII || !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
