package repository

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIDAllocatorStartsAtOne(t *testing.T) {
	alloc := NewIDAllocator()

	assert.Equal(t, 0, alloc.Last())
	assert.Equal(t, 1, alloc.Next())
	assert.Equal(t, 2, alloc.Next())
	assert.Equal(t, 2, alloc.Last())
}

func TestIDAllocatorConcurrentIDsAreUnique(t *testing.T) {
	alloc := NewIDAllocator()
	const workers, perWorker = 8, 250

	results := make(chan int, workers*perWorker)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			last := 0
			for i := 0; i < perWorker; i++ {
				id := alloc.Next()
				// each caller observes a strictly increasing sequence
				assert.Greater(t, id, last)
				last = id
				results <- id
			}
		}()
	}
	wg.Wait()
	close(results)

	seen := make(map[int]bool, workers*perWorker)
	for id := range results {
		assert.False(t, seen[id], "id %d issued twice", id)
		seen[id] = true
	}
	assert.Len(t, seen, workers*perWorker)
	assert.Equal(t, workers*perWorker, alloc.Last())
}

func BenchmarkIDAllocatorNext(b *testing.B) {
	alloc := NewIDAllocator()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		alloc.Next()
	}
}
