// Package domain contains core concepts of the chat view.
// This file defines chat messages as delivered by the chat source.
// Messages are immutable once ingested; only the source assigns their ID.
package domain

import (
	"chat-view/domain/textcomponent"
	"time"

	"github.com/google/uuid"
)

// MessageID is strictly increasing per chat instance.
type MessageID int64

// Origin tells where a message was written. It affects rendering only.
type Origin string

const (
	OriginGame   Origin = "game"
	OriginWeb    Origin = "web"
	OriginPlugin Origin = "plugin"
)

// PluginSender is the reserved sender of system messages.
const PluginSender = "plugin"

// ParseOrigin maps a wire value to an Origin, defaulting to game.
func ParseOrigin(value string) Origin {
	switch Origin(value) {
	case OriginWeb:
		return OriginWeb
	case OriginPlugin:
		return OriginPlugin
	default:
		return OriginGame
	}
}

// Content is either PlainText or StructuredText.
type Content interface {
	isContent()
	String() string
}

type PlainText string

func (PlainText) isContent() {}

func (p PlainText) String() string { return string(p) }

type StructuredText struct {
	Component textcomponent.Component
}

func (StructuredText) isContent() {}

func (s StructuredText) String() string {
	if s.Component == nil {
		return ""
	}
	return textcomponent.PlainText(s.Component)
}

// ChatMessage represents an immutable chat entry.
type ChatMessage struct {
	ID          MessageID
	SenderID    string
	At          time.Time
	Content     Content
	Origin      Origin
	ExternalRef *uuid.UUID // stable player id when the source knows it
}

// IsSystem reports whether the message was emitted by a plugin rather than a member.
func (m ChatMessage) IsSystem() bool {
	return m.Origin == OriginPlugin || m.SenderID == PluginSender
}

// Segments interprets the content for rendering.
func (m ChatMessage) Segments(actions textcomponent.Actions) []textcomponent.Segment {
	switch c := m.Content.(type) {
	case StructuredText:
		return textcomponent.Interpret(c.Component, actions)
	case PlainText:
		return textcomponent.Interpret(textcomponent.Text(c), actions)
	default:
		return nil
	}
}
