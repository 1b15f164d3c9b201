// Package transcripts stores recently resolved dialogue lines so an
// operator can inspect what players were shown and which source produced
// it. The log is best-effort: the dialogue service logs append failures
// and moves on.
package transcripts

import (
	"context"
	"time"
)

// Entry is one resolved dialogue line as recorded in the transcript log
type Entry struct {
	ID          string    `json:"id"`
	ArchetypeID string    `json:"archetype_id"`
	Trigger     string    `json:"trigger"`
	Text        string    `json:"text"`
	Source      string    `json:"source"`
	CreatedAt   time.Time `json:"created_at"`
}

// Repository defines the interface for transcript storage
type Repository interface {
	// Append records an entry, evicting the oldest once the per-archetype
	// cap is reached
	Append(ctx context.Context, entry *Entry) error

	// Recent returns up to limit entries for an archetype, newest first
	Recent(ctx context.Context, archetypeID string, limit int) ([]*Entry, error)
}
