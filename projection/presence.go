package projection

import (
	"chat-view/contract"
	"chat-view/domain"
	"cmp"
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

// Presence reconciles the online set reported by the chat source with a locally
// retained set of recently offline members. A name is never in both.
type Presence struct {
	mu        sync.Mutex
	log       *slog.Logger
	store     contract.OfflineStore
	retention time.Duration
	now       func() time.Time
	online    domain.PresenceSnapshot
	offline   map[string]domain.OfflineMemberRecord
	refs      map[string]*uuid.UUID // last external ref seen per sender
}

// NewPresence builds a reconciler. A nil store disables persistence and a nil now
// uses the wall clock.
func NewPresence(log *slog.Logger, store contract.OfflineStore, retention time.Duration, now func() time.Time) *Presence {
	if retention <= 0 {
		retention = domain.OfflineRetention
	}
	if now == nil {
		now = time.Now
	}
	return &Presence{
		log:       log,
		store:     store,
		retention: retention,
		now:       now,
		offline:   make(map[string]domain.OfflineMemberRecord),
		refs:      make(map[string]*uuid.UUID),
	}
}

// Restore loads the persisted offline set, discarding expired records.
func (p *Presence) Restore(ctx context.Context) error {
	if p.store == nil {
		return nil
	}
	records, err := p.store.Load(ctx)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	now := p.now()
	restored := 0
	for _, r := range records {
		if r.Name == "" || r.Expired(now, p.retention) || p.online.Contains(r.Name) {
			continue
		}
		if existing, ok := p.offline[r.Name]; ok && existing.LastSeen.After(r.LastSeen) {
			continue
		}
		p.offline[r.Name] = r
		if r.ExternalRef != nil {
			p.refs[r.Name] = r.ExternalRef
		}
		restored++
	}
	p.log.Debug("Offline members restored", "restored", restored, "discarded", len(records)-restored)
	return nil
}

// Reconcile applies a presence snapshot and the messages received since the last call.
// A nil snapshot keeps the previous online set and only runs expiry and message
// activity. The resulting offline set is persisted before returning.
func (p *Presence) Reconcile(ctx context.Context, snapshot *domain.PresenceSnapshot, messagesSinceLast []domain.ChatMessage) domain.PresenceView {
	p.mu.Lock()
	defer p.mu.Unlock()

	now := p.now()
	p.rememberRefs(messagesSinceLast)

	if snapshot != nil {
		next := domain.NewPresenceSnapshot(snapshot.Game, snapshot.Web, snapshot.Bot)
		p.markDeparted(next, now)
		p.online = next
		for name := range p.offline {
			if next.Contains(name) {
				delete(p.offline, name)
			}
		}
	}

	for name, r := range p.offline {
		if r.Expired(now, p.retention) {
			delete(p.offline, name)
		}
	}

	for _, m := range latestPerSender(messagesSinceLast) {
		if p.online.Contains(m.SenderID) {
			continue
		}
		if _, ok := p.offline[m.SenderID]; ok {
			continue
		}
		r := domain.OfflineMemberRecord{
			Name:        m.SenderID,
			LastSeen:    m.At,
			Kind:        domain.KindOffline,
			ExternalRef: p.refs[m.SenderID],
		}
		if r.Expired(now, p.retention) {
			continue
		}
		p.offline[m.SenderID] = r
	}

	p.forgetRefs()
	view := p.view()
	if p.store != nil {
		if err := p.store.Save(ctx, view.Offline); err != nil {
			p.log.Warn("Failed to persist offline members", "error", err)
		}
	}
	return view
}

// View returns the current state without reconciling.
func (p *Presence) View() domain.PresenceView {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.view()
}

// markDeparted turns members missing from next into offline records stamped now.
func (p *Presence) markDeparted(next domain.PresenceSnapshot, now time.Time) {
	for _, name := range p.online.Union() {
		if next.Contains(name) {
			continue
		}
		if _, ok := p.offline[name]; ok {
			continue
		}
		kind := domain.KindOffline
		if p.online.IsBot(name) {
			kind = domain.KindBot
		}
		p.offline[name] = domain.OfflineMemberRecord{
			Name:        name,
			LastSeen:    now,
			Kind:        kind,
			ExternalRef: p.refs[name],
		}
	}
}

func (p *Presence) rememberRefs(messages []domain.ChatMessage) {
	for _, m := range messages {
		if m.ExternalRef != nil && m.SenderID != "" {
			p.refs[m.SenderID] = m.ExternalRef
		}
	}
}

// forgetRefs keeps refs only for members still tracked.
func (p *Presence) forgetRefs() {
	for name := range p.refs {
		if _, ok := p.offline[name]; ok {
			continue
		}
		if !p.online.Contains(name) {
			delete(p.refs, name)
		}
	}
}

func (p *Presence) view() domain.PresenceView {
	records := lo.Values(p.offline)
	slices.SortFunc(records, func(a, b domain.OfflineMemberRecord) int {
		if c := b.LastSeen.Compare(a.LastSeen); c != 0 {
			return c
		}
		return cmp.Compare(a.Name, b.Name)
	})
	return domain.PresenceView{
		Online: domain.PresenceSnapshot{
			Game: slices.Clone(p.online.Game),
			Web:  slices.Clone(p.online.Web),
			Bot:  slices.Clone(p.online.Bot),
		},
		Offline: records,
	}
}

// latestPerSender keeps the newest message of each member, ignoring system messages.
func latestPerSender(messages []domain.ChatMessage) []domain.ChatMessage {
	latest := make(map[string]domain.ChatMessage)
	for _, m := range messages {
		if m.SenderID == "" || m.IsSystem() {
			continue
		}
		if prev, ok := latest[m.SenderID]; !ok || m.ID > prev.ID {
			latest[m.SenderID] = m
		}
	}
	return lo.Values(latest)
}
