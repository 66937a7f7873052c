package runtime

import (
	"chat-view/contract"
	"sort"
	"sync"

	"github.com/samber/lo"
)

// Registry maps viewers to the sink rendering their chat view.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]contract.EventSink // map viewer -> Sink
}

var _ contract.IRegistry = (*Registry)(nil)

func NewRegistry() *Registry {
	return &Registry{
		sessions: make(map[string]contract.EventSink),
	}
}

// Sinks returns every subscribed sink ordered by viewer id so fan-out is deterministic.
func (r *Registry) Sinks() []contract.EventSink {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(r.sessions) == 0 {
		return nil
	}
	viewers := lo.Keys(r.sessions)
	sort.Strings(viewers)
	return lo.Map(viewers, func(id string, _ int) contract.EventSink {
		return r.sessions[id]
	})
}

// Subscribe registers a viewer's sink, replacing a previous one.
func (r *Registry) Subscribe(viewerID string, sink contract.EventSink) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[viewerID] = sink
}

func (r *Registry) Unsubscribe(viewerID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, viewerID)
}
