package dedup

import (
	"context"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

type entry struct {
	delivered bool
	expiresAt time.Time
}

// memoryGuard keeps claims in a bounded LRU. It only de-duplicates within
// one process.
type memoryGuard struct {
	mu      sync.Mutex
	entries *lru.Cache[string, entry]
	now     func() time.Time
}

var _ Guard = (*memoryGuard)(nil)

// NewMemoryGuard creates an in-process guard holding at most size ids.
func NewMemoryGuard(size int) (*memoryGuard, error) {
	entries, err := lru.New[string, entry](size)
	if err != nil {
		return nil, err
	}

	return &memoryGuard{
		entries: entries,
		now:     time.Now,
	}, nil
}

func (g *memoryGuard) Claim(_ context.Context, id string, ttl time.Duration) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.now()
	if e, ok := g.entries.Get(id); ok && now.Before(e.expiresAt) {
		if e.delivered {
			return ErrAlreadyDelivered
		}
		return ErrInFlight
	}

	g.entries.Add(id, entry{expiresAt: now.Add(ttl)})
	return nil
}

func (g *memoryGuard) MarkDelivered(_ context.Context, id string, ttl time.Duration) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.entries.Add(id, entry{delivered: true, expiresAt: g.now().Add(ttl)})
	return nil
}

func (g *memoryGuard) Release(_ context.Context, id string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.entries.Remove(id)
	return nil
}
