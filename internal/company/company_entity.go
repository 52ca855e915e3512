package company

import (
	"time"

	"github.com/google/uuid"
)

// Company is the tenant boundary: it owns a set of jobs and the roster of
// employees attached through its join code.
type Company struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `gorm:"type:varchar(150);not null"`
	JoinCode  string    `gorm:"type:varchar(12);not null;uniqueIndex:uq_company_join_code"`
	OwnerUID  string    `gorm:"type:varchar(128);not null;index"`
	CreatedAt time.Time `gorm:"not null;default:now()"`
	UpdatedAt time.Time `gorm:"not null;default:now()"`
}

func (Company) TableName() string {
	return "companies"
}
