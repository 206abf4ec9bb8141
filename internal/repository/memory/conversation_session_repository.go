package memory

import (
	"time"

	"github.com/patrickmn/go-cache"

	"pest-assess-be/pkg/conversation"
)

// ConversationSessionRepository stores chat sessions in process memory.
// Save refreshes the TTL so an active conversation never expires mid-turn.
type ConversationSessionRepository struct {
	cache *cache.Cache
}

func NewConversationSessionRepository(ttl time.Duration) *ConversationSessionRepository {
	c := cache.New(ttl, 10*time.Minute)
	return &ConversationSessionRepository{
		cache: c,
	}
}

func (r *ConversationSessionRepository) Save(session *conversation.Session) {
	r.cache.Set(session.ID.String(), session, cache.DefaultExpiration)
}

func (r *ConversationSessionRepository) Get(sessionID string) (*conversation.Session, bool) {
	if x, found := r.cache.Get(sessionID); found {
		return x.(*conversation.Session), true
	}
	return nil, false
}

func (r *ConversationSessionRepository) Delete(sessionID string) {
	r.cache.Delete(sessionID)
}
