package memory

import (
	"crypto/sha1"
	"fmt"
	"time"

	"hireup-be/internal/entity"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// RankingCache keeps recent provider results so a recruiter re-running the
// same query does not re-pay provider latency. Entries expire quickly; the
// pool of applicants changes as new applications arrive.
type RankingCache struct {
	cache *cache.Cache
}

func NewRankingCache(ttl time.Duration) *RankingCache {
	return &RankingCache{
		cache: cache.New(ttl, 2*ttl),
	}
}

func key(jobId uuid.UUID, prompt string, limit int) string {
	return fmt.Sprintf("%s:%x:%d", jobId, sha1.Sum([]byte(prompt)), limit)
}

func (c *RankingCache) Get(jobId uuid.UUID, prompt string, limit int) ([]entity.RankedCandidate, bool) {
	if x, found := c.cache.Get(key(jobId, prompt, limit)); found {
		return x.([]entity.RankedCandidate), true
	}
	return nil, false
}

func (c *RankingCache) Set(jobId uuid.UUID, prompt string, limit int, ranked []entity.RankedCandidate) {
	c.cache.Set(key(jobId, prompt, limit), ranked, cache.DefaultExpiration)
}
