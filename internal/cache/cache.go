// Package cache provides the in-process read-through cache used by list
// queries. Entries expire after a configurable window; in the sliding
// variant the window is recomputed on every successful access. Expired
// entries are dropped lazily on access and swept periodically by the cache
// janitor worker.
package cache

import (
	"strconv"
	"sync"
	"time"

	"github.com/MKhiriev/user-management-api/models"
)

// DefaultTTL is the expiration window applied when no TTL is configured.
const DefaultTTL = 5 * time.Minute

// absentSentinel marks an omitted filter parameter in cache keys, so that
// omission is distinguishable from any explicit filter value.
const absentSentinel = "*"

// entry is a single cached list-query result.
type entry struct {
	users []models.User

	// expiresAt is the moment the entry becomes stale. In the sliding
	// variant it is pushed forward on every hit.
	expiresAt time.Time
}

// Users is a mutex-guarded key-value cache of list-query results.
// All methods are safe for concurrent use.
type Users struct {
	mu      sync.Mutex
	entries map[string]entry

	ttl     time.Duration
	sliding bool

	// now is the clock source; replaced in tests.
	now func() time.Time
}

// NewUsers constructs a cache with the given expiration window.
// A non-positive ttl falls back to [DefaultTTL]. When sliding is true the
// window restarts on every hit; otherwise it counts down from insertion only.
func NewUsers(ttl time.Duration, sliding bool) *Users {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	return &Users{
		entries: make(map[string]entry),
		ttl:     ttl,
		sliding: sliding,
		now:     time.Now,
	}
}

// Key derives the deterministic cache key for a list-query filter.
// Absent parameters map to a stable sentinel.
func Key(filter models.UserFilter) string {
	department := absentSentinel
	if filter.Department != nil {
		department = *filter.Department
	}

	active := absentSentinel
	if filter.IsActive != nil {
		active = strconv.FormatBool(*filter.IsActive)
	}

	return "users|department=" + department + "|active=" + active
}

// Get returns the cached result for key, if present and not expired.
// An expired entry is removed and reported as a miss. On a hit in the
// sliding variant the expiration window is restarted.
//
// The returned slice is shared with the cache; callers must not mutate it.
func (c *Users) Get(key string) ([]models.User, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}

	now := c.now()
	if !e.expiresAt.After(now) {
		delete(c.entries, key)
		return nil, false
	}

	if c.sliding {
		e.expiresAt = now.Add(c.ttl)
		c.entries[key] = e
	}

	return e.users, true
}

// Set stores the result for key with a fresh expiration window, replacing
// any previous entry.
func (c *Users) Set(key string, users []models.User) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = entry{
		users:     users,
		expiresAt: c.now().Add(c.ttl),
	}
}

// Clear removes every entry. Called after any successful mutation of the
// user set; dropping the whole cache is the conservative invalidation
// policy, since every list key may cover the mutated record.
func (c *Users) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]entry)
}

// DeleteExpired removes all entries whose window has elapsed and returns the
// number of entries dropped. Invoked periodically by the janitor worker.
func (c *Users) DeleteExpired() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	dropped := 0
	for key, e := range c.entries {
		if !e.expiresAt.After(now) {
			delete(c.entries, key)
			dropped++
		}
	}

	return dropped
}

// Len reports the number of entries currently stored, expired or not.
func (c *Users) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries)
}
