package transcripts

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	engerr "github.com/wizardwars/engine/internal/errors"
)

// DefaultCap bounds the per-archetype transcript list
const DefaultCap = 100

type redisRepo struct {
	client       redis.UniversalClient
	timeProvider TimeProvider
	cap          int64
}

// RedisConfig holds configuration for the redis repository
type RedisConfig struct {
	Client       redis.UniversalClient // Required
	TimeProvider TimeProvider          // Optional: defaults to UTC clock
	Cap          int64                 // Optional: defaults to DefaultCap
}

// NewRedis creates a redis-backed transcript repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if cfg == nil || cfg.Client == nil {
		return nil, engerr.InvalidArgument("redis client is required")
	}

	repo := &redisRepo{
		client:       cfg.Client,
		timeProvider: cfg.TimeProvider,
		cap:          cfg.Cap,
	}
	if repo.timeProvider == nil {
		repo.timeProvider = UTCTimeProvider{}
	}
	if repo.cap <= 0 {
		repo.cap = DefaultCap
	}

	return repo, nil
}

func transcriptKey(archetypeID string) string {
	return fmt.Sprintf("transcript:%s", archetypeID)
}

// Append records an entry under the archetype's capped list
func (r *redisRepo) Append(ctx context.Context, entry *Entry) error {
	if entry == nil {
		return engerr.InvalidArgument("entry cannot be nil")
	}
	if entry.ArchetypeID == "" {
		return engerr.InvalidArgument("entry archetype id is required")
	}

	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = r.timeProvider.Now()
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return engerr.Wrap(err, "failed to marshal transcript entry")
	}

	key := transcriptKey(entry.ArchetypeID)
	pipe := r.client.Pipeline()
	pipe.LPush(ctx, key, string(data))
	pipe.LTrim(ctx, key, 0, r.cap-1)
	if _, err := pipe.Exec(ctx); err != nil {
		return engerr.Wrapf(err, "failed to append transcript for '%s'", entry.ArchetypeID)
	}

	return nil
}

// Recent returns up to limit entries, newest first
func (r *redisRepo) Recent(ctx context.Context, archetypeID string, limit int) ([]*Entry, error) {
	if archetypeID == "" {
		return nil, engerr.InvalidArgument("archetype id is required")
	}
	if limit <= 0 {
		limit = int(r.cap)
	}

	raw, err := r.client.LRange(ctx, transcriptKey(archetypeID), 0, int64(limit)-1).Result()
	if err != nil {
		return nil, engerr.Wrapf(err, "failed to read transcript for '%s'", archetypeID)
	}

	entries := make([]*Entry, 0, len(raw))
	for _, item := range raw {
		var entry Entry
		if err := json.Unmarshal([]byte(item), &entry); err != nil {
			return nil, engerr.Wrap(err, "failed to unmarshal transcript entry")
		}
		entries = append(entries, &entry)
	}

	return entries, nil
}
