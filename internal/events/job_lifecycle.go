package events

import "time"

const JobLifecycleTopic = "fieldservice.job.lifecycle.v1"

const (
	JobCreated = "job.created"
	JobUpdated = "job.updated"
	JobDone    = "job.done"
)

type JobLifecycleEvent struct {
	EventType  string    `json:"event_type"`
	JobID      string    `json:"job_id"`
	CompanyID  string    `json:"company_id"`
	ActorUID   string    `json:"actor_uid"`
	OccurredAt time.Time `json:"occurred_at"`
}
