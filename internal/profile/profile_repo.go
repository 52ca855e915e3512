package profile

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=profile_repo.go -destination=mock/profile_repo_mock.go -package=mock
type Repository interface {
	GetByUID(ctx context.Context, uid string) (*Profile, error)
	Save(ctx context.Context, p *Profile) error
	SetCompanyID(ctx context.Context, uid string, companyID uuid.UUID) error
	WithTx(tx *gorm.DB) Repository
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

func (r *repository) GetByUID(ctx context.Context, uid string) (*Profile, error) {
	var p Profile
	err := r.db.WithContext(ctx).First(&p, "uid = ?", uid).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) Save(ctx context.Context, p *Profile) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "uid"}},
			UpdateAll: true,
		}).
		Create(p).Error
}

func (r *repository) SetCompanyID(ctx context.Context, uid string, companyID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&Profile{}).
		Where("uid = ?", uid).
		Update("company_id", companyID).Error
}
