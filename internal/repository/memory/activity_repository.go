package memory

import (
	"sync"
	"time"

	"hireup-be/internal/entity"

	"github.com/google/uuid"
)

const maxActivitiesPerCompany = 50

// ActivityRepository holds the per-company recent-activity feed. The feed is
// a projection rebuilt from events on restart, so memory is acceptable here.
type ActivityRepository struct {
	mu         sync.RWMutex
	activities map[uuid.UUID][]entity.Activity
}

func NewActivityRepository() *ActivityRepository {
	return &ActivityRepository{
		activities: make(map[uuid.UUID][]entity.Activity),
	}
}

func (r *ActivityRepository) Add(companyId uuid.UUID, action, detail string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	feed := append(r.activities[companyId], entity.Activity{
		Action:    action,
		Detail:    detail,
		Timestamp: time.Now(),
	})
	if len(feed) > maxActivitiesPerCompany {
		feed = feed[len(feed)-maxActivitiesPerCompany:]
	}
	r.activities[companyId] = feed
}

// Recent returns up to limit activities, newest first.
func (r *ActivityRepository) Recent(companyId uuid.UUID, limit int) []entity.Activity {
	r.mu.RLock()
	defer r.mu.RUnlock()

	feed := r.activities[companyId]
	out := make([]entity.Activity, 0, limit)
	for i := len(feed) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, feed[i])
	}
	return out
}
