package catalog

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreReplaceSwapsWholeCatalog(t *testing.T) {
	s := NewStore()
	assert.Empty(t, s.Items())

	s.Replace([]Item{{Name: "Towel"}, {Name: "Soap"}})
	require.Equal(t, 2, s.Len())

	s.Replace([]Item{{Name: "Mug"}})
	items := s.Items()
	require.Len(t, items, 1, "ingest replaces, never merges")
	assert.Equal(t, "Mug", items[0].Name)
}

func TestStoreConcurrentReplaceIsAllOrNothing(t *testing.T) {
	s := NewStore()

	catalogs := make([][]Item, 8)
	for i := range catalogs {
		batch := make([]Item, i+1)
		for j := range batch {
			batch[j] = Item{Name: fmt.Sprintf("item-%d-%d", i, j)}
		}
		catalogs[i] = batch
	}

	var wg sync.WaitGroup
	for _, c := range catalogs {
		wg.Add(1)
		go func(c []Item) {
			defer wg.Done()
			s.Replace(c)
		}(c)
	}
	done := make(chan struct{})
	go func() {
		defer close(done)
		// readers racing the writers must always see one complete catalog
		for i := 0; i < 1000; i++ {
			items := s.Items()
			if len(items) == 0 {
				continue
			}
			prefix := items[0].Name[:len("item-0")]
			for _, it := range items {
				if it.Name[:len(prefix)] != prefix {
					t.Errorf("mixed catalogs observed: %q vs %q", prefix, it.Name)
					return
				}
			}
		}
	}()
	wg.Wait()
	<-done

	final := s.Items()
	require.NotEmpty(t, final)
	assert.Contains(t, []int{1, 2, 3, 4, 5, 6, 7, 8}, len(final))
}
