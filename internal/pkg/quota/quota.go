package quota

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// DailyApplyQuota caps how many applications a user may submit per UTC day.
// The counter lives in Redis so the cap holds across instances; keys expire
// at the next UTC midnight.
type DailyApplyQuota struct {
	client *redis.Client
	limit  int
}

// NewDailyApplyQuota builds a quota with the given daily limit. A limit of 0
// disables the cap.
func NewDailyApplyQuota(client *redis.Client, limit int) *DailyApplyQuota {
	return &DailyApplyQuota{
		client: client,
		limit:  limit,
	}
}

func applyKey(userId uuid.UUID, now time.Time) string {
	return fmt.Sprintf("apply_quota:%s:%s", userId, now.UTC().Format("2006-01-02"))
}

// Allow consumes one application slot. Returns false when the user has hit
// today's cap. The increment happens first so two racing requests cannot
// both slip under the limit.
func (q *DailyApplyQuota) Allow(ctx context.Context, userId uuid.UUID) (bool, error) {
	if q.limit <= 0 || q.client == nil {
		return true, nil
	}

	now := time.Now()
	key := applyKey(userId, now)

	count, err := q.client.Incr(ctx, key).Result()
	if err != nil {
		return false, err
	}
	if count == 1 {
		midnight := now.UTC().Truncate(24 * time.Hour).Add(24 * time.Hour)
		q.client.ExpireAt(ctx, key, midnight)
	}

	return count <= int64(q.limit), nil
}
