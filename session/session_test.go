package session

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetOrCreate_SameInstance(t *testing.T) {
	store := NewStore()

	a := store.GetOrCreate("s1")
	b := store.GetOrCreate("s1")
	c := store.GetOrCreate("s2")

	assert.Same(t, a, b)
	assert.NotSame(t, a, c)
}

func TestGetOrCreate_Defaults(t *testing.T) {
	sess := NewStore().GetOrCreate("s1")

	sess.Lock()
	defer sess.Unlock()
	assert.Equal(t, "s1", sess.ID)
	assert.Empty(t, sess.Cart)
	assert.NotNil(t, sess.Wishlist)
	assert.False(t, sess.Authenticated())
}

func TestGetOrCreate_Concurrent(t *testing.T) {
	store := NewStore()

	var wg sync.WaitGroup
	results := make([]*Session, 50)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = store.GetOrCreate("shared")
		}(i)
	}
	wg.Wait()

	for _, s := range results {
		assert.Same(t, results[0], s)
	}
}
