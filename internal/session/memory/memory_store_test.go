package memory_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skema/internal/domain"
	"skema/internal/session/memory"
)

func TestMemoryStore_GetUnknownSession_ReturnsEmptyHistory(t *testing.T) {
	store := memory.NewStore(4)

	turns, err := store.Get(context.Background(), "never-seen")

	require.NoError(t, err)
	assert.Empty(t, turns)
}

func TestMemoryStore_AppendAndGet_PreservesOrder(t *testing.T) {
	store := memory.NewStore(10)
	ctx := context.Background()

	require.NoError(t, store.Append(ctx, "s1", domain.Turn{Role: domain.RoleUser, Content: "first"}))
	require.NoError(t, store.Append(ctx, "s1", domain.Turn{Role: domain.RoleAssistant, Content: "second"}))
	require.NoError(t, store.Append(ctx, "s1", domain.Turn{Role: domain.RoleUser, Content: "third"}))

	turns, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, turns, 3)
	assert.Equal(t, "first", turns[0].Content)
	assert.Equal(t, domain.RoleAssistant, turns[1].Role)
	assert.Equal(t, "third", turns[2].Content)
}

func TestMemoryStore_AppendBeyondCap_DropsOldestFirst(t *testing.T) {
	store := memory.NewStore(4)
	ctx := context.Background()

	for i := 1; i <= 5; i++ {
		err := store.Append(ctx, "s1", domain.Turn{
			Role:    domain.RoleUser,
			Content: fmt.Sprintf("turn %d", i),
		})
		require.NoError(t, err)
	}

	turns, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, turns, 4)
	assert.Equal(t, "turn 2", turns[0].Content)
	assert.Equal(t, "turn 5", turns[3].Content)
}

func TestMemoryStore_Clear_RemovesSession(t *testing.T) {
	store := memory.NewStore(4)
	ctx := context.Background()

	require.NoError(t, store.Append(ctx, "s1", domain.Turn{Role: domain.RoleUser, Content: "hello"}))
	require.NoError(t, store.Clear(ctx, "s1"))

	turns, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, turns)
}

func TestMemoryStore_Clear_UnknownSession_IsNoop(t *testing.T) {
	store := memory.NewStore(4)

	assert.NoError(t, store.Clear(context.Background(), "never-seen"))
}

func TestMemoryStore_SessionsAreIndependent(t *testing.T) {
	store := memory.NewStore(4)
	ctx := context.Background()

	require.NoError(t, store.Append(ctx, "a", domain.Turn{Role: domain.RoleUser, Content: "for a"}))
	require.NoError(t, store.Append(ctx, "b", domain.Turn{Role: domain.RoleUser, Content: "for b"}))
	require.NoError(t, store.Clear(ctx, "a"))

	aTurns, err := store.Get(ctx, "a")
	require.NoError(t, err)
	assert.Empty(t, aTurns)

	bTurns, err := store.Get(ctx, "b")
	require.NoError(t, err)
	require.Len(t, bTurns, 1)
	assert.Equal(t, "for b", bTurns[0].Content)
}

func TestMemoryStore_GetReturnsCopy(t *testing.T) {
	store := memory.NewStore(4)
	ctx := context.Background()

	require.NoError(t, store.Append(ctx, "s1", domain.Turn{Role: domain.RoleUser, Content: "original"}))

	turns, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	turns[0].Content = "mutated"

	again, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "original", again[0].Content)
}

func TestMemoryStore_ConcurrentAppends_StayWithinCap(t *testing.T) {
	store := memory.NewStore(20)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 10; j++ {
				_ = store.Append(ctx, "shared", domain.Turn{
					Role:    domain.RoleUser,
					Content: fmt.Sprintf("g%d-%d", n, j),
				})
			}
		}(i)
	}
	wg.Wait()

	turns, err := store.Get(ctx, "shared")
	require.NoError(t, err)
	assert.Len(t, turns, 20)
}
