package memory

import (
	"time"

	"github.com/patrickmn/go-cache"

	"pest-assess-be/pkg/assessment"
)

// AssessmentSessionRepository keeps in-flight structured assessments in
// process memory. Sessions expire on the TTL; a completed assessment that
// matters has already been turned into a lead.
type AssessmentSessionRepository struct {
	cache *cache.Cache
}

func NewAssessmentSessionRepository(ttl time.Duration) *AssessmentSessionRepository {
	c := cache.New(ttl, 10*time.Minute)
	return &AssessmentSessionRepository{
		cache: c,
	}
}

func (r *AssessmentSessionRepository) Save(session *assessment.Session) {
	r.cache.Set(session.ID.String(), session, cache.DefaultExpiration)
}

func (r *AssessmentSessionRepository) Get(sessionID string) (*assessment.Session, bool) {
	if x, found := r.cache.Get(sessionID); found {
		return x.(*assessment.Session), true
	}
	return nil, false
}

func (r *AssessmentSessionRepository) Delete(sessionID string) {
	r.cache.Delete(sessionID)
}
