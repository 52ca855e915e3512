package profile

import (
	"time"

	"github.com/google/uuid"
)

// Profile is the authoritative per-user record. The local session cache keeps
// a possibly-stale copy of a subset of these fields; this row always wins.
type Profile struct {
	UID       string     `gorm:"type:varchar(128);primaryKey"`
	Email     string     `gorm:"type:varchar(255);index"`
	Name      string     `gorm:"type:varchar(255)"`
	PhotoURL  string     `gorm:"type:text"`
	Role      string     `gorm:"type:varchar(32);not null;default:'independent'"`
	CompanyID *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt time.Time  `gorm:"not null;default:now()"`
	UpdatedAt time.Time  `gorm:"not null;default:now()"`
}

func (Profile) TableName() string {
	return "profiles"
}

// CompanyIDString returns the bound company id or "" when the profile has
// not attached to a company yet.
func (p *Profile) CompanyIDString() string {
	if p.CompanyID == nil {
		return ""
	}
	return p.CompanyID.String()
}
