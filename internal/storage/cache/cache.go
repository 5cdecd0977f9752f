package cache

import (
	"sync"

	"github.com/arthur12320/flash-cards-simple/internal/session"
	"github.com/google/uuid"
)

// Cache holds the active study session per user. A session lives here for
// the duration of one sitting; it is never shared between users and a new
// session for the same user replaces the old one.
type Cache struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*session.Session
}

func NewCache() *Cache {
	return &Cache{
		sessions: make(map[uuid.UUID]*session.Session),
	}
}

func (c *Cache) SetSession(userID uuid.UUID, s *session.Session) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sessions[userID] = s
}

func (c *Cache) Session(userID uuid.UUID) (*session.Session, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	s, exists := c.sessions[userID]
	return s, exists
}

func (c *Cache) DeleteSession(userID uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.sessions, userID)
}
