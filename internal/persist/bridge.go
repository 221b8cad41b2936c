package persist

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"taskboard/internal/board"
	"taskboard/internal/slot"
)

const (
	// DefaultKey is the slot key holding the task list.
	DefaultKey = "tasks"

	// CounterKey is the slot key holding the counter value.
	CounterKey = "counter"

	// SlotTimeout bounds every slot call.
	SlotTimeout = 5 * time.Second
)

// Bridge reads the task list from a slot and writes it back on every
// mutation. All failures are logged and swallowed.
type Bridge struct {
	slot    slot.Slot
	key     string
	log     logrus.FieldLogger
	metrics *Metrics
}

var _ board.Persister = (*Bridge)(nil)

// NewBridge creates a bridge for key. m may be nil.
func NewBridge(s slot.Slot, key string, log logrus.FieldLogger, m *Metrics) *Bridge {
	if key == "" {
		key = DefaultKey
	}
	if m == nil {
		m = NewMetrics(nil)
	}
	return &Bridge{slot: s, key: key, log: log, metrics: m}
}

// Key returns the slot key the bridge reads and writes.
func (b *Bridge) Key() string { return b.key }

// Load returns the persisted task list. A missing, unreadable or malformed
// value yields an empty list; unusable records are skipped.
func (b *Bridge) Load(ctx context.Context) []board.Task {
	data, ok := b.read(ctx, b.key)
	if !ok {
		return []board.Task{}
	}

	tasks, skipped, err := DecodeRecords(data)
	if err != nil {
		b.metrics.DecodeFailures.Inc()
		b.log.WithError(err).WithField("key", b.key).Warn("discarding unreadable task list")
		return []board.Task{}
	}
	for _, err := range skipped {
		b.metrics.DecodeFailures.Inc()
		b.log.WithError(err).WithField("key", b.key).Warn("skipping unreadable task")
	}
	b.log.WithField("tasks", len(tasks)).Debug("task list loaded")
	return tasks
}

// Persist writes the full task list.
func (b *Bridge) Persist(ctx context.Context, tasks []board.Task) {
	data, err := Encode(tasks)
	if err != nil {
		b.metrics.WriteFailures.Inc()
		b.log.WithError(err).Warn("failed to encode task list")
		return
	}
	b.write(ctx, b.key, data)
}

// LoadCounter returns the persisted counter value, or def if none is stored
// or the stored value is not an integer.
func (b *Bridge) LoadCounter(ctx context.Context, def int) int {
	data, ok := b.read(ctx, CounterKey)
	if !ok {
		return def
	}
	n, err := strconv.Atoi(strings.TrimSpace(data))
	if err != nil {
		b.metrics.DecodeFailures.Inc()
		b.log.WithError(err).WithField("key", CounterKey).Warn("discarding unreadable counter")
		return def
	}
	return n
}

// PersistCounter writes the counter value.
func (b *Bridge) PersistCounter(ctx context.Context, n int) {
	b.write(ctx, CounterKey, strconv.Itoa(n))
}

func (b *Bridge) read(ctx context.Context, key string) (string, bool) {
	ctx, cancel := context.WithTimeout(ctx, SlotTimeout)
	defer cancel()

	b.metrics.Reads.Inc()
	data, ok, err := b.slot.Get(ctx, key)
	if err != nil {
		b.log.WithError(err).WithField("key", key).Warn("failed to read slot")
		return "", false
	}
	return data, ok
}

func (b *Bridge) write(ctx context.Context, key, data string) {
	ctx, cancel := context.WithTimeout(ctx, SlotTimeout)
	defer cancel()

	if err := b.slot.Set(ctx, key, data); err != nil {
		b.metrics.WriteFailures.Inc()
		b.log.WithError(err).WithField("key", key).Warn("failed to write slot")
		return
	}
	b.metrics.Writes.Inc()
	b.log.WithField("key", key).WithField("bytes", len(data)).Debug("slot written")
}
