package transcripts

import (
	"context"
	"sync"

	engerr "github.com/wizardwars/engine/internal/errors"
)

// InMemoryRepository keeps transcripts in process memory. Used when no
// redis is configured and in tests.
type InMemoryRepository struct {
	mu           sync.RWMutex
	entries      map[string][]*Entry // archetype id -> newest first
	timeProvider TimeProvider
	cap          int
}

// NewInMemoryRepository creates a new in-memory transcript repository
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		entries:      make(map[string][]*Entry),
		timeProvider: UTCTimeProvider{},
		cap:          DefaultCap,
	}
}

// Append records an entry, evicting the oldest beyond the cap
func (r *InMemoryRepository) Append(ctx context.Context, entry *Entry) error {
	if entry == nil {
		return engerr.InvalidArgument("entry cannot be nil")
	}
	if entry.ArchetypeID == "" {
		return engerr.InvalidArgument("entry archetype id is required")
	}

	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = r.timeProvider.Now()
	}

	// Copy to shield the log from later mutation by the caller
	stored := *entry

	r.mu.Lock()
	defer r.mu.Unlock()

	list := append([]*Entry{&stored}, r.entries[entry.ArchetypeID]...)
	if len(list) > r.cap {
		list = list[:r.cap]
	}
	r.entries[entry.ArchetypeID] = list

	return nil
}

// Recent returns up to limit entries, newest first
func (r *InMemoryRepository) Recent(ctx context.Context, archetypeID string, limit int) ([]*Entry, error) {
	if archetypeID == "" {
		return nil, engerr.InvalidArgument("archetype id is required")
	}
	if limit <= 0 {
		limit = r.cap
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	list := r.entries[archetypeID]
	if limit > len(list) {
		limit = len(list)
	}

	result := make([]*Entry, limit)
	for i := 0; i < limit; i++ {
		copied := *list[i]
		result[i] = &copied
	}
	return result, nil
}
