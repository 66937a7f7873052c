// Package domain contains core concepts of the chat view.
// This file defines presence snapshots and offline member records.
package domain

import (
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

// OfflineRetention is how long a member stays listed as recently offline.
const OfflineRetention = 5 * time.Minute

type MemberKind string

const (
	KindOffline MemberKind = "offline"
	KindBot     MemberKind = "bot"
)

// PresenceSnapshot is a point-in-time view of connected members per channel.
// The three sets are disjoint.
type PresenceSnapshot struct {
	Game []string
	Web  []string
	Bot  []string
}

// NewPresenceSnapshot dedups each set and enforces disjointness, game first, then web, then bot.
func NewPresenceSnapshot(game, web, bot []string) PresenceSnapshot {
	game = lo.Uniq(lo.Compact(game))
	web = lo.Without(lo.Uniq(lo.Compact(web)), game...)
	bot = lo.Without(lo.Uniq(lo.Compact(bot)), append(slices.Clone(game), web...)...)
	return PresenceSnapshot{Game: game, Web: web, Bot: bot}
}

// Union returns every online name.
func (p PresenceSnapshot) Union() []string {
	return lo.Uniq(slices.Concat(p.Game, p.Web, p.Bot))
}

func (p PresenceSnapshot) Contains(name string) bool {
	return slices.Contains(p.Game, name) || slices.Contains(p.Web, name) || slices.Contains(p.Bot, name)
}

func (p PresenceSnapshot) IsBot(name string) bool {
	return slices.Contains(p.Bot, name)
}

func (p PresenceSnapshot) Len() int {
	return len(p.Game) + len(p.Web) + len(p.Bot)
}

// OfflineMemberRecord keeps a member visible for OfflineRetention after they left.
type OfflineMemberRecord struct {
	Name        string
	LastSeen    time.Time
	Kind        MemberKind
	ExternalRef *uuid.UUID
}

// Expired reports whether the record outlived the retention window.
func (r OfflineMemberRecord) Expired(now time.Time, retention time.Duration) bool {
	return now.Sub(r.LastSeen) > retention
}

// PresenceView is what a reconciliation exposes to rendering.
type PresenceView struct {
	Online  PresenceSnapshot
	Offline []OfflineMemberRecord
}
