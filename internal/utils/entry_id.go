package utils

import (
	"strconv"
	"sync"
	"time"
)

// EntryIDGenerator issues journal entry IDs derived from the current Unix time
// in milliseconds. IDs from one generator are strictly increasing: a clash with
// the previous ID is resolved by advancing one millisecond.
type EntryIDGenerator struct {
	mu   sync.Mutex
	last int64
	now  func() time.Time
}

// NewEntryIDGenerator creates a generator reading time from now.
func NewEntryIDGenerator(now func() time.Time) *EntryIDGenerator {
	if now == nil {
		now = time.Now
	}
	return &EntryIDGenerator{now: now}
}

// Next returns a fresh ID that is not taken according to taken.
// taken may be nil.
func (g *EntryIDGenerator) Next(taken func(id string) bool) string {
	g.mu.Lock()
	defer g.mu.Unlock()

	candidate := g.now().UnixMilli()
	if candidate <= g.last {
		candidate = g.last + 1
	}
	for taken != nil && taken(strconv.FormatInt(candidate, 10)) {
		candidate++
	}
	g.last = candidate
	return strconv.FormatInt(candidate, 10)
}
