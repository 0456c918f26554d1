package webhook

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// deliveryCache remembers X-GitHub-Delivery ids that were claimed by a request, so a
// redelivered webhook is acknowledged without a second write. An id is claimed before
// the insert and released again if the insert fails. Ids evicted by size or TTL can be
// stored again.
type deliveryCache struct {
	mu   sync.Mutex
	seen *expirable.LRU[string, struct{}]
}

// newDeliveryCache returns nil when size is not positive; a nil cache never matches.
func newDeliveryCache(size int, ttl time.Duration) *deliveryCache {
	if size <= 0 {
		return nil
	}
	return &deliveryCache{
		seen: expirable.NewLRU[string, struct{}](size, nil, ttl),
	}
}

// Reserve claims id and reports whether this caller got it. Only one of several
// concurrent requests with the same id wins. Empty ids and a nil cache always win.
func (d *deliveryCache) Reserve(id string) bool {
	if d == nil || id == "" {
		return true
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.seen.Contains(id) {
		return false
	}
	d.seen.Add(id, struct{}{})
	return true
}

// Release forgets id so a failed delivery can be retried.
func (d *deliveryCache) Release(id string) {
	if d == nil || id == "" {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.seen.Remove(id)
}
