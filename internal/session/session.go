// Package session wires a board to its durable slot: it opens the
// configured backend, hydrates the board once and keeps the counter.
package session

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"

	"taskboard/internal/board"
	"taskboard/internal/config"
	"taskboard/internal/counter"
	"taskboard/internal/logging"
	"taskboard/internal/persist"
	"taskboard/internal/slot"
)

// Session is one run of the application against one slot.
type Session struct {
	Board   *board.Board
	Counter *counter.Counter
	Bridge  *persist.Bridge
	Metrics *persist.Metrics
	Log     logrus.FieldLogger

	registry *prometheus.Registry
	slot     slot.Slot
}

// Open opens the slot selected by cfg and starts a session on it.
func Open(ctx context.Context, cfg *config.Config, log logrus.FieldLogger) (*Session, error) {
	s, err := slot.Open(ctx, slot.Options{
		Backend: cfg.Storage.Backend,
		Path:    cfg.StoragePath(),
		DSN:     cfg.Storage.DSN,
		Key:     cfg.Storage.Key,
	})
	if err != nil {
		return nil, err
	}
	log.WithField("backend", cfg.Storage.Backend).Debug("slot opened")
	return New(ctx, s, cfg.Storage.Key, log), nil
}

// New starts a session on an open slot: the task list and the counter are
// read once and the board writes back through the bridge.
func New(ctx context.Context, s slot.Slot, key string, log logrus.FieldLogger, boardOpts ...board.Option) *Session {
	reg := prometheus.NewRegistry()
	m := persist.NewMetrics(reg)
	bridge := persist.NewBridge(s, key, logging.Component(log, "persist"), m)

	b := board.New(bridge, boardOpts...)
	b.Hydrate(bridge.Load(ctx))

	return &Session{
		Board:    b,
		Counter:  counter.From(bridge.LoadCounter(ctx, counter.Start)),
		Bridge:   bridge,
		Metrics:  m,
		Log:      log,
		registry: reg,
		slot:     s,
	}
}

// Increment, Decrement and Reset change the counter and persist it.
func (s *Session) Increment(ctx context.Context) {
	s.Counter.Increment()
	s.Bridge.PersistCounter(ctx, s.Counter.Value())
}

func (s *Session) Decrement(ctx context.Context) {
	s.Counter.Decrement()
	s.Bridge.PersistCounter(ctx, s.Counter.Value())
}

func (s *Session) Reset(ctx context.Context) {
	s.Counter.Reset()
	s.Bridge.PersistCounter(ctx, s.Counter.Value())
}

// Registry returns the registry holding the persistence metrics.
func (s *Session) Registry() *prometheus.Registry {
	return s.registry
}

// WriteMetrics writes the persistence metrics to path in the Prometheus
// text format.
func (s *Session) WriteMetrics(path string) error {
	if err := prometheus.WriteToTextfile(path, s.registry); err != nil {
		return fmt.Errorf("write metrics: %w", err)
	}
	return nil
}

// Close releases the slot.
func (s *Session) Close() error {
	return s.slot.Close()
}
