package service

import (
	"context"
	"sync"
)

type viewIDKey struct{}

// WithViewID tags ctx with the client view a report is drawn into. Report
// requests sharing a user, report kind and view supersede each other; requests
// without a view never do.
func WithViewID(ctx context.Context, viewID string) context.Context {
	return context.WithValue(ctx, viewIDKey{}, viewID)
}

func ViewIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(viewIDKey{}).(string)
	return id
}

// inflight keeps at most one live request per key. Starting a request for a
// key cancels the one already running under it. An empty key is untracked.
type inflight struct {
	mu    sync.Mutex
	seq   uint64
	slots map[string]*slot
}

type slot struct {
	seq    uint64
	cancel context.CancelFunc
}

type ticket struct {
	key string
	seq uint64
}

func newInflight() *inflight {
	return &inflight{slots: make(map[string]*slot)}
}

func (f *inflight) begin(ctx context.Context, key string) (context.Context, ticket) {
	if key == "" {
		return ctx, ticket{}
	}
	ctx, cancel := context.WithCancel(ctx)
	f.mu.Lock()
	defer f.mu.Unlock()
	if prev, ok := f.slots[key]; ok {
		prev.cancel()
	}
	f.seq++
	f.slots[key] = &slot{seq: f.seq, cancel: cancel}
	return ctx, ticket{key: key, seq: f.seq}
}

// current reports whether t is still the newest request for its key.
func (f *inflight) current(t ticket) bool {
	if t.key == "" {
		return true
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.slots[t.key]
	return ok && s.seq == t.seq
}

func (f *inflight) finish(t ticket) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.slots[t.key]
	if !ok || s.seq != t.seq {
		return
	}
	s.cancel()
	delete(f.slots, t.key)
}
