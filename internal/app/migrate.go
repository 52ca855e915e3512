package app

import (
	"go-jobtracker/internal/company"
	"go-jobtracker/internal/job"
	"go-jobtracker/internal/profile"

	"gorm.io/gorm"
)

const outboxTableDDL = `
CREATE TABLE IF NOT EXISTS outbox_events (
	id UUID PRIMARY KEY,
	request_id VARCHAR(64),
	aggregate_type VARCHAR(50) NOT NULL,
	aggregate_id VARCHAR(128) NOT NULL,
	event_type VARCHAR(100) NOT NULL,
	topic VARCHAR(200) NOT NULL,
	payload JSONB NOT NULL,
	status VARCHAR(20) NOT NULL DEFAULT 'pending',
	retry_count INT NOT NULL DEFAULT 0,
	error_message TEXT,
	next_retry_at TIMESTAMPTZ,
	processed_at TIMESTAMPTZ,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

func runMigrations(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&profile.Profile{},
		&company.Company{},
		&job.Document{},
	); err != nil {
		return err
	}

	// The outbox table is written through raw SQL, so its DDL lives here too.
	return db.Exec(outboxTableDDL).Error
}
