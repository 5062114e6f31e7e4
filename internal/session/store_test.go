package session

import (
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/vosokin/ledgerbot/internal/model"
)

func TestStoreLifecycle(t *testing.T) {
	t.Parallel()
	store := NewStore()

	_, ok := store.Get(1)
	require.False(t, ok)

	store.Put(1, model.UserSession{State: model.StateAwaitingEntryType})
	sess, ok := store.Get(1)
	require.True(t, ok)
	require.Equal(t, int64(1), sess.UserID)
	require.Equal(t, model.StateAwaitingEntryType, sess.State)
	require.False(t, sess.CreatedAt.IsZero())
	require.False(t, sess.UpdatedAt.IsZero())

	store.Delete(1)
	_, ok = store.Get(1)
	require.False(t, ok)
	require.Equal(t, 0, store.Len())
}

func TestGetReturnsCopy(t *testing.T) {
	t.Parallel()
	store := NewStore()

	store.Put(1, model.UserSession{State: model.StateAwaitingComment, Category: "salary"})
	sess, _ := store.Get(1)
	sess.Category = "mutated"

	stored, _ := store.Get(1)
	require.Equal(t, "salary", stored.Category)
}

func TestPutKeepsCreatedAt(t *testing.T) {
	t.Parallel()
	store := NewStore()

	store.Put(1, model.UserSession{State: model.StateAwaitingEntryType})
	first, _ := store.Get(1)

	first.State = model.StateAwaitingComment
	store.Put(1, first)
	second, _ := store.Get(1)
	require.Equal(t, first.CreatedAt, second.CreatedAt)
}

func TestSweep(t *testing.T) {
	t.Parallel()
	store := NewStore()

	store.Put(1, model.UserSession{State: model.StateAwaitingAmount})
	store.Put(2, model.UserSession{State: model.StateAwaitingComment})

	// Backdate one session past the idle cutoff.
	store.mu.Lock()
	stale := store.sessions[1]
	stale.UpdatedAt = time.Now().Add(-2 * time.Hour)
	store.sessions[1] = stale
	store.mu.Unlock()

	require.Equal(t, 1, store.Sweep(time.Hour))
	_, ok := store.Get(1)
	require.False(t, ok)
	_, ok = store.Get(2)
	require.True(t, ok)
}

func TestLockSerializesSameUser(t *testing.T) {
	t.Parallel()
	store := NewStore()
	store.Put(1, model.UserSession{State: model.StateAwaitingComment, Comment: "0"})

	const workers = 4
	const iterations = 250

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < iterations; i++ {
				unlock := store.Lock(1)
				sess, _ := store.Get(1)
				n, _ := strconv.Atoi(sess.Comment)
				sess.Comment = strconv.Itoa(n + 1)
				store.Put(1, sess)
				unlock()
			}
		}()
	}
	wg.Wait()

	sess, _ := store.Get(1)
	require.Equal(t, strconv.Itoa(workers*iterations), sess.Comment)
}

func TestLockIndependentUsers(t *testing.T) {
	t.Parallel()
	store := NewStore()

	unlockA := store.Lock(1)
	defer unlockA()

	done := make(chan struct{})
	go func() {
		unlockB := store.Lock(2)
		unlockB()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("lock for a different user blocked")
	}
}
