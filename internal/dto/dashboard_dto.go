package dto

import (
	"time"

	"github.com/google/uuid"
)

type ActivityItem struct {
	Action    string    `json:"action"`
	Detail    string    `json:"detail"`
	Timestamp time.Time `json:"timestamp"`
}

type DashboardStatsResponse struct {
	TotalApplications   int64            `json:"total_applications"`
	ApplicationsByState map[string]int64 `json:"applications_by_status"`
	OpenJobs            int64            `json:"open_jobs"`
	UnreadNotifications int64            `json:"unread_notifications"`
	RecentActivity      []ActivityItem   `json:"recent_activity"`
}

// PublishActivityMessage travels over the in-process bus to the activity
// consumer, which feeds the dashboard activity list.
type PublishActivityMessage struct {
	CompanyId uuid.UUID `json:"company_id"`
	Action    string    `json:"action"`
	Detail    string    `json:"detail"`
}

type NotificationResponse struct {
	Id        uuid.UUID              `json:"id"`
	Type      string                 `json:"type"`
	Title     string                 `json:"title"`
	Body      string                 `json:"body"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	IsRead    bool                   `json:"is_read"`
	CreatedAt time.Time              `json:"created_at"`
}
