package list

import (
	"sync"
)

// SyncList guards a List with a RWMutex. Positions are not exposed since
// they would outlive the lock.
type SyncList[T any] struct {
	l  List[T]
	mu sync.RWMutex
}

func NewSyncList[T any]() *SyncList[T] { return &SyncList[T]{} }

func (s *SyncList[T]) PushFront(v T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.l.PushFront(v)
}

func (s *SyncList[T]) PopFront() (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.l.PopFront()
}

func (s *SyncList[T]) Front() (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.l.Front()
}

func (s *SyncList[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.l.Len()
}

func (s *SyncList[T]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.l.Clear()
}

// Snapshot returns a copy of the guarded list.
func (s *SyncList[T]) Snapshot() *List[T] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.l.Clone()
}

// Swap exchanges the guarded elements with those of other. other must not
// be shared with another goroutine.
func (s *SyncList[T]) Swap(other *List[T]) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.l.Swap(other)
}

// Range calls ranger for every element under the read lock until it
// returns false.
func (s *SyncList[T]) Range(ranger func(T) bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for v := range s.l.All() {
		if !ranger(v) {
			break
		}
	}
}
