package testutil

import (
	"context"
	"fmt"
	"testing"
	"time"

	"taskboard/internal/board"
	"taskboard/internal/logging"
	"taskboard/internal/persist"
	"taskboard/internal/session"
)

// FixedTime is the clock used by sessions built with NewSession.
var FixedTime = time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)

// NewSession starts a session on fs with ids "id-1", "id-2", ... and a
// fixed clock, then adds texts as tasks.
func NewSession(t testing.TB, fs *FakeSlot, texts ...string) *session.Session {
	t.Helper()
	ctx := context.Background()
	n := 0
	sess := session.New(ctx, fs, persist.DefaultKey, logging.Discard(),
		board.WithIDFunc(func() string {
			n++
			return fmt.Sprintf("id-%d", n)
		}),
		board.WithClock(func() time.Time { return FixedTime }),
	)
	for _, text := range texts {
		if _, ok := sess.Board.AddTask(ctx, text); !ok {
			t.Fatalf("add %q failed", text)
		}
	}
	return sess
}
