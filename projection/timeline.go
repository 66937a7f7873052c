// Package projection builds the local view of one chat from poll results.
// Handles ordering, deduplication, pagination and presence reconciliation.
// Does not talk to the network or render anything.
package projection

import (
	"chat-view/domain"
	"cmp"
	"slices"
	"sync"
)

// DefaultMaxRetained bounds the number of messages kept in memory.
const DefaultMaxRetained = 1000

// Timeline holds the ordered message history of one chat view.
// Messages are strictly ascending by ID with no duplicates.
type Timeline struct {
	mu          sync.RWMutex
	messages    []domain.ChatMessage
	ids         map[domain.MessageID]struct{}
	hasMore     bool
	maxRetained int
}

func NewTimeline(maxRetained int) *Timeline {
	if maxRetained <= 0 {
		maxRetained = DefaultMaxRetained
	}
	return &Timeline{
		ids:         make(map[domain.MessageID]struct{}),
		maxRetained: maxRetained,
	}
}

// LoadInitial replaces the contents with page and returns what was stored.
func (t *Timeline) LoadInitial(page []domain.ChatMessage) []domain.ChatMessage {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.messages = uniqueSorted(page, nil)
	t.ids = make(map[domain.MessageID]struct{}, len(t.messages))
	for _, m := range t.messages {
		t.ids[m.ID] = struct{}{}
	}
	t.trim()
	t.hasMore = t.minAbove(1)
	return slices.Clone(t.messages)
}

// AppendNewer merges a batch from an incremental poll. Messages already stored are
// dropped so overlapping polls are harmless; an ID below the current minimum is
// sorted into place. It returns the admitted messages in ascending order.
func (t *Timeline) AppendNewer(batch []domain.ChatMessage) []domain.ChatMessage {
	t.mu.Lock()
	defer t.mu.Unlock()

	fresh := uniqueSorted(batch, t.ids)
	if len(fresh) == 0 {
		return nil
	}
	wasEmpty := len(t.messages) == 0
	lowered := !wasEmpty && fresh[0].ID < t.messages[0].ID
	t.merge(fresh)
	if t.trim() || wasEmpty || lowered {
		t.hasMore = t.minAbove(1)
	}
	return slices.DeleteFunc(fresh, func(m domain.ChatMessage) bool {
		_, kept := t.ids[m.ID]
		return !kept
	})
}

// PrependOlder merges a page of older history. An empty page, or one holding only
// known messages, means the source has nothing older.
func (t *Timeline) PrependOlder(page []domain.ChatMessage) []domain.ChatMessage {
	t.mu.Lock()
	defer t.mu.Unlock()

	fresh := uniqueSorted(page, t.ids)
	if len(fresh) == 0 {
		t.hasMore = false
		return nil
	}
	t.merge(fresh)
	t.hasMore = t.minAbove(1)
	return fresh
}

// Reset drops the whole history, as after a "clear history" on the source.
func (t *Timeline) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.messages = nil
	t.ids = make(map[domain.MessageID]struct{})
	t.hasMore = false
}

// MaxID returns the newest stored ID, false on an empty timeline.
func (t *Timeline) MaxID() (domain.MessageID, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if len(t.messages) == 0 {
		return 0, false
	}
	return t.messages[len(t.messages)-1].ID, true
}

// MinID returns the oldest stored ID, false on an empty timeline.
func (t *Timeline) MinID() (domain.MessageID, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if len(t.messages) == 0 {
		return 0, false
	}
	return t.messages[0].ID, true
}

func (t *Timeline) HasMore() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.hasMore
}

func (t *Timeline) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.messages)
}

// Messages returns a copy of the history, oldest first.
func (t *Timeline) Messages() []domain.ChatMessage {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return slices.Clone(t.messages)
}

// merge inserts sorted, unknown messages. The common case, all newer than the
// current maximum, is a plain append.
func (t *Timeline) merge(fresh []domain.ChatMessage) {
	for _, m := range fresh {
		t.ids[m.ID] = struct{}{}
	}
	n := len(t.messages)
	if n == 0 || fresh[0].ID > t.messages[n-1].ID {
		t.messages = append(t.messages, fresh...)
		return
	}
	merged := make([]domain.ChatMessage, 0, n+len(fresh))
	i, j := 0, 0
	for i < n && j < len(fresh) {
		if t.messages[i].ID < fresh[j].ID {
			merged = append(merged, t.messages[i])
			i++
		} else {
			merged = append(merged, fresh[j])
			j++
		}
	}
	merged = append(merged, t.messages[i:]...)
	t.messages = append(merged, fresh[j:]...)
}

// trim drops the oldest messages past maxRetained and reports whether it did.
func (t *Timeline) trim() bool {
	excess := len(t.messages) - t.maxRetained
	if excess <= 0 {
		return false
	}
	for _, m := range t.messages[:excess] {
		delete(t.ids, m.ID)
	}
	t.messages = slices.Clone(t.messages[excess:])
	return true
}

func (t *Timeline) minAbove(id domain.MessageID) bool {
	return len(t.messages) > 0 && t.messages[0].ID > id
}

// uniqueSorted returns batch sorted ascending, without IDs in known and without
// repeated IDs. The first occurrence of a repeated ID wins.
func uniqueSorted(batch []domain.ChatMessage, known map[domain.MessageID]struct{}) []domain.ChatMessage {
	seen := make(map[domain.MessageID]struct{}, len(batch))
	out := make([]domain.ChatMessage, 0, len(batch))
	for _, m := range batch {
		if _, ok := known[m.ID]; ok {
			continue
		}
		if _, ok := seen[m.ID]; ok {
			continue
		}
		seen[m.ID] = struct{}{}
		out = append(out, m)
	}
	slices.SortStableFunc(out, func(a, b domain.ChatMessage) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return out
}
