package job

import (
	"time"

	"github.com/google/uuid"
)

// Document is one job document under a company. The payload is loosely typed
// on purpose: the collection evolved through two assignment schemas and
// heterogeneous createdAt encodings, so rows are decoded field by field
// through Normalize instead of being trusted as a fixed shape.
type Document struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID uuid.UUID `gorm:"type:uuid;not null;index"`
	OwnerUID  string    `gorm:"type:varchar(128);not null"`
	Doc       []byte    `gorm:"type:jsonb;not null"`
	CreatedAt time.Time `gorm:"not null;default:now()"`
	UpdatedAt time.Time `gorm:"not null;default:now()"`
}

func (Document) TableName() string {
	return "job_documents"
}
