package memory

import (
	"context"
	"sync"
)

// keyedLocker hands out one exclusive lock per key. Entries are dropped
// once nobody holds or waits on them.
type keyedLocker[K comparable] struct {
	mu    sync.Mutex
	locks map[K]*keyLock
}

type keyLock struct {
	ch   chan struct{}
	refs int
}

func newKeyedLocker[K comparable]() *keyedLocker[K] {
	return &keyedLocker[K]{locks: make(map[K]*keyLock)}
}

// Lock blocks until key is free or ctx is done. The returned func releases it.
func (l *keyedLocker[K]) Lock(ctx context.Context, key K) (func(), error) {
	l.mu.Lock()
	kl, ok := l.locks[key]
	if !ok {
		kl = &keyLock{ch: make(chan struct{}, 1)}
		l.locks[key] = kl
	}
	kl.refs++
	l.mu.Unlock()

	select {
	case kl.ch <- struct{}{}:
	case <-ctx.Done():
		l.drop(key, kl)
		return nil, ctx.Err()
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			<-kl.ch
			l.drop(key, kl)
		})
	}, nil
}

func (l *keyedLocker[K]) drop(key K, kl *keyLock) {
	l.mu.Lock()
	defer l.mu.Unlock()
	kl.refs--
	if kl.refs == 0 {
		delete(l.locks, key)
	}
}
