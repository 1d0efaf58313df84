package entity

import (
	"time"

	"github.com/google/uuid"
)

// Notification is a persisted dashboard notification delivered to a company
// account, optionally pushed in real time over the websocket hub.
type Notification struct {
	Id        uuid.UUID              `json:"id"`
	CompanyId uuid.UUID              `json:"company_id"`
	TypeCode  string                 `json:"type_code"`
	Title     string                 `json:"title"`
	Message   string                 `json:"message"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	IsRead    bool                   `json:"is_read"`
	CreatedAt time.Time              `json:"created_at"`
}

// Activity is an in-memory dashboard feed entry projected from domain events.
type Activity struct {
	Action    string    `json:"action"`
	Detail    string    `json:"detail"`
	Timestamp time.Time `json:"timestamp"`
}
