package utils

import (
	"sync"
	"time"
)

// OneTimeCredentialStore is an in-process, time-boxed key-value cache used
// during short authentication handshakes. Entries expire independently and
// the whole store is lost on restart, which is acceptable for one-time
// credentials. It satisfies services.CredentialCache; a multi-process
// deployment swaps in a shared store behind the same interface.
type OneTimeCredentialStore struct {
	mu      sync.Mutex
	entries map[string]otcEntry
}

type otcEntry struct {
	value     string
	expiresAt time.Time
}

// NewOneTimeCredentialStore creates an empty store.
func NewOneTimeCredentialStore() *OneTimeCredentialStore {
	return &OneTimeCredentialStore{entries: make(map[string]otcEntry)}
}

// Set stores value under key for ttl.
func (s *OneTimeCredentialStore) Set(key, value string, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = otcEntry{value: value, expiresAt: time.Now().Add(ttl)}
	s.sweepLocked()
}

// Get returns the value for key if present and not expired.
func (s *OneTimeCredentialStore) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.entries[key]
	if !ok {
		return "", false
	}
	if time.Now().After(entry.expiresAt) {
		delete(s.entries, key)
		return "", false
	}
	return entry.value, true
}

// Delete removes key.
func (s *OneTimeCredentialStore) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
}

// sweepLocked drops expired entries. Called with the lock held.
func (s *OneTimeCredentialStore) sweepLocked() {
	now := time.Now()
	for key, entry := range s.entries {
		if now.After(entry.expiresAt) {
			delete(s.entries, key)
		}
	}
}
