package list

import (
	"sync"
	"testing"

	"github.com/Asutorufa/flist/pkg/utils/assert"
)

func TestSyncList(t *testing.T) {
	l := NewSyncList[int]()

	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range 100 {
				l.PushFront(i*100 + j)
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 800, l.Len())

	snap := l.Snapshot()
	assert.Equal(t, 800, snap.Len())

	count := 0
	l.Range(func(int) bool {
		count++
		return count < 10
	})
	assert.Equal(t, 10, count)

	v, ok := l.PopFront()
	assert.True(t, ok)
	front, _ := snap.Front()
	assert.Equal(t, front, v)
	assert.Equal(t, 799, l.Len())

	other := Of(1, 2)
	l.Swap(other)
	assert.Equal(t, 2, l.Len())
	assert.Equal(t, 799, other.Len())

	l.Clear()
	_, ok = l.Front()
	assert.False(t, ok)
	assert.Equal(t, 0, l.Len())
}
