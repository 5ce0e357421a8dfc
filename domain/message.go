// Package domain contains core concepts of the responder engine.
// This file defines inbound Message events and related rules.
// No runtime, network, or UI logic should be added here.
package domain

import (
	"maps"
	"time"

	"github.com/google/uuid"
	"hearsay/pattern"
)

// Message represents one inbound chat event. It lives for a single dispatch:
// no message state persists once all responder units have settled.
//
// Fields carries platform-specific data untouched; the engine never
// interprets it.
type Message struct {
	ID         uuid.UUID
	Kind       string // optional discriminator, e.g. "message" or "reaction"
	Text       string
	Fields     map[string]any
	Matches    *pattern.Captures // populated on a per-handler copy only
	ReceivedAt time.Time
}

func NewMessage(kind, text string) Message {
	return Message{
		ID:         uuid.New(),
		Kind:       kind,
		Text:       text,
		Fields:     make(map[string]any),
		ReceivedAt: time.Now().UTC(),
	}
}

// WithMatches returns a copy of the message carrying the capture mapping.
// The original shared across concurrent responder units is never touched,
// so two handlers matching the same message each see their own mapping.
func (m Message) WithMatches(caps pattern.Captures) Message {
	m.Fields = maps.Clone(m.Fields)
	m.Matches = &caps
	return m
}

// WithField returns a copy of the message with one passthrough field set.
// Used by filter stages that annotate rather than reject.
func (m Message) WithField(key string, value any) Message {
	m.Fields = maps.Clone(m.Fields)
	if m.Fields == nil {
		m.Fields = make(map[string]any)
	}
	m.Fields[key] = value
	return m
}
