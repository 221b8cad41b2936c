// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"sync"
)

// FakeSlot is an in-memory implementation of slot.Slot for testing.
type FakeSlot struct {
	mu     sync.RWMutex
	values map[string]string
	writes map[string]int
	closed bool

	// Error injection for testing
	GetErr error
	SetErr error
}

// NewFakeSlot creates an empty FakeSlot.
func NewFakeSlot() *FakeSlot {
	return &FakeSlot{
		values: make(map[string]string),
		writes: make(map[string]int),
	}
}

// Put stores a value directly, bypassing error injection and write counting.
func (f *FakeSlot) Put(key, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values[key] = value
}

// Value returns the stored value for key.
func (f *FakeSlot) Value(key string) (string, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	v, ok := f.values[key]
	return v, ok
}

// Writes returns how many successful Set calls were made for key.
func (f *FakeSlot) Writes(key string) int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.writes[key]
}

// Closed reports whether Close was called.
func (f *FakeSlot) Closed() bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.closed
}

// Get implements slot.Slot.
func (f *FakeSlot) Get(ctx context.Context, key string) (string, bool, error) {
	if f.GetErr != nil {
		return "", false, f.GetErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	v, ok := f.values[key]
	return v, ok, nil
}

// Set implements slot.Slot.
func (f *FakeSlot) Set(ctx context.Context, key, value string) error {
	if f.SetErr != nil {
		return f.SetErr
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values[key] = value
	f.writes[key]++
	return nil
}

// Close implements slot.Slot.
func (f *FakeSlot) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}
