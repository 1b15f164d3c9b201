package transcripts

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryRepository_AppendAndRecent(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		err := repo.Append(ctx, &Entry{
			ID:          fmt.Sprintf("req-%d", i),
			ArchetypeID: "sage",
			Trigger:     "greet",
			Text:        fmt.Sprintf("line %d", i),
			Source:      "fallback",
		})
		require.NoError(t, err)
	}

	entries, err := repo.Recent(ctx, "sage", 2)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "req-3", entries[0].ID, "newest first")
	assert.Equal(t, "req-2", entries[1].ID)
	assert.False(t, entries[0].CreatedAt.IsZero(), "zero timestamps are stamped")

	entries, err = repo.Recent(ctx, "sage", 0)
	require.NoError(t, err)
	assert.Len(t, entries, 3)

	entries, err = repo.Recent(ctx, "npc_wizard", 5)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestInMemoryRepository_CapEvictsOldest(t *testing.T) {
	repo := NewInMemoryRepository()
	repo.cap = 2
	ctx := context.Background()

	for i := 1; i <= 4; i++ {
		require.NoError(t, repo.Append(ctx, &Entry{
			ID:          fmt.Sprintf("req-%d", i),
			ArchetypeID: "sage",
			Source:      "fallback",
		}))
	}

	entries, err := repo.Recent(ctx, "sage", 10)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "req-4", entries[0].ID)
	assert.Equal(t, "req-3", entries[1].ID)
}

func TestInMemoryRepository_CopiesEntries(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	entry := &Entry{ID: "req-1", ArchetypeID: "sage", Text: "original"}
	require.NoError(t, repo.Append(ctx, entry))
	entry.Text = "mutated after append"

	entries, err := repo.Recent(ctx, "sage", 1)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "original", entries[0].Text)

	entries[0].Text = "mutated after read"
	entries, err = repo.Recent(ctx, "sage", 1)
	require.NoError(t, err)
	assert.Equal(t, "original", entries[0].Text)
}

func TestInMemoryRepository_Validation(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	assert.Error(t, repo.Append(ctx, nil))
	assert.Error(t, repo.Append(ctx, &Entry{}))

	_, err := repo.Recent(ctx, "", 1)
	assert.Error(t, err)
}
