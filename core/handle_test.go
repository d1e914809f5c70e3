package core

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHandles_Sequence(t *testing.T) {
	h := NewHandles()
	assert.Equal(t, "1", h.Peek())

	var got []string
	for i := 0; i < 16; i++ {
		got = append(got, h.Next())
	}
	assert.Equal(t, "1", got[0])
	assert.Equal(t, "A", got[9])
	assert.Equal(t, "F", got[14])
	assert.Equal(t, "10", got[15])
	assert.Equal(t, "11", h.Peek())

	h.Reset()
	assert.Equal(t, "1", h.Next())
}

func TestHandles_Concurrent(t *testing.T) {
	var (
		h    = NewHandles()
		wg   sync.WaitGroup
		mu   sync.Mutex
		seen = make(map[string]bool)
	)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				handle := h.Next()
				mu.Lock()
				seen[handle] = true
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Len(t, seen, 800)
	assert.Equal(t, "321", h.Peek())
}
