// pkg/memcache/credential_cache.go
package mem

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// CredentialCache remembers which account a credential key belongs to so
// that token resolution can skip the credential lookup.
type CredentialCache interface {
	Set(key string, accountID uuid.UUID, ttl time.Duration)

	// Get returns the account bound to key if present and not expired.
	Get(key string) (uuid.UUID, bool)

	// Delete evicts key; used when the key is rotated.
	Delete(key string)
}

type entry struct {
	accountID uuid.UUID
	expiresAt time.Time
}

type CredentialKeys struct {
	mu   sync.RWMutex
	data map[string]entry
	now  func() time.Time
}

func NewCredentialKeys() *CredentialKeys {
	return &CredentialKeys{
		data: make(map[string]entry),
		now:  time.Now,
	}
}

func (s *CredentialKeys) Set(key string, accountID uuid.UUID, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = entry{
		accountID: accountID,
		expiresAt: s.now().Add(ttl),
	}
}

func (s *CredentialKeys) Get(key string) (uuid.UUID, bool) {
	s.mu.RLock()
	e, ok := s.data[key]
	s.mu.RUnlock()

	if !ok {
		return uuid.Nil, false
	}
	if s.now().After(e.expiresAt) {
		s.Delete(key) // cleanup expired
		return uuid.Nil, false
	}
	return e.accountID, true
}

func (s *CredentialKeys) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
}

// Len reports the number of stored keys, expired ones included.
func (s *CredentialKeys) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}
