package events

import "time"

const CompanyLifecycleTopic = "fieldservice.company.lifecycle.v1"

const (
	CompanyCreated = "company.created"
	CompanyJoined  = "company.joined"
)

type CompanyLifecycleEvent struct {
	EventType  string    `json:"event_type"`
	CompanyID  string    `json:"company_id"`
	ActorUID   string    `json:"actor_uid"`
	OccurredAt time.Time `json:"occurred_at"`
}
