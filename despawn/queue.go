// Package despawn removes transient entities once their time is up, so
// whoever spawns them does not have to keep a timer around.
package despawn

import "time"

// Queue maps keys to absolute expiry times.
type Queue[K comparable] struct {
	expiry map[K]time.Time
}

func New[K comparable]() *Queue[K] {
	return &Queue[K]{expiry: make(map[K]time.Time)}
}

// Register schedules k for removal at now+ttl. Registering a key again
// replaces its expiry.
func (q *Queue[K]) Register(k K, now time.Time, ttl time.Duration) {
	q.expiry[k] = now.Add(ttl)
}

// Sweep calls remove once for every key whose expiry is at or before now
// and drops it from the queue. The order among expired keys is unspecified.
// It returns how many keys were removed.
func (q *Queue[K]) Sweep(now time.Time, remove func(K)) int {
	var expired []K
	for k, at := range q.expiry {
		if !at.After(now) {
			expired = append(expired, k)
		}
	}
	for _, k := range expired {
		delete(q.expiry, k)
		if remove != nil {
			remove(k)
		}
	}
	return len(expired)
}

// Forget drops k without removing it. Use it when k was destroyed some other
// way. Forgetting an unknown key is a no-op.
func (q *Queue[K]) Forget(k K) {
	delete(q.expiry, k)
}

// Expiry returns when k is due.
func (q *Queue[K]) Expiry(k K) (time.Time, bool) {
	at, ok := q.expiry[k]
	return at, ok
}

func (q *Queue[K]) Len() int {
	return len(q.expiry)
}

// Clear drops every entry without removing anything.
func (q *Queue[K]) Clear() {
	clear(q.expiry)
}
