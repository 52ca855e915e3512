package job

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Store is the remote job document store. Reads return raw documents; all
// shaping happens in Normalize so both query paths share one code path.
//
//go:generate mockgen -source=job_store.go -destination=mock/job_store_mock.go -package=mock
type Store interface {
	FindAllByCompany(ctx context.Context, companyID uuid.UUID) ([]map[string]any, error)
	FindByLegacyAssignee(ctx context.Context, companyID uuid.UUID, uid string) ([]map[string]any, error)
	FindByAssigneeMember(ctx context.Context, companyID uuid.UUID, uid string) ([]map[string]any, error)
	GetByID(ctx context.Context, companyID, id uuid.UUID) (map[string]any, error)
	Create(ctx context.Context, companyID uuid.UUID, ownerUID string, doc map[string]any) (uuid.UUID, error)
	Update(ctx context.Context, companyID, id uuid.UUID, doc map[string]any) error
	WithTx(tx *gorm.DB) Store
}

type store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) Store {
	return &store{db: db}
}

func (s *store) WithTx(tx *gorm.DB) Store {
	return &store{db: tx}
}

func (s *store) FindAllByCompany(ctx context.Context, companyID uuid.UUID) ([]map[string]any, error) {
	var rows []Document
	err := s.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return docsFromRows(rows)
}

// FindByLegacyAssignee matches the legacy scalar assignment field.
func (s *store) FindByLegacyAssignee(ctx context.Context, companyID uuid.UUID, uid string) ([]map[string]any, error) {
	var rows []Document
	err := s.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Where("doc->>'assignedToUid' = ?", uid).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return docsFromRows(rows)
}

// FindByAssigneeMember matches membership in the current set-valued
// assignment field.
func (s *store) FindByAssigneeMember(ctx context.Context, companyID uuid.UUID, uid string) ([]map[string]any, error) {
	var rows []Document
	err := s.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Where("doc->'assignedToUids' @> to_jsonb(?::text)", uid).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return docsFromRows(rows)
}

func (s *store) GetByID(ctx context.Context, companyID, id uuid.UUID) (map[string]any, error) {
	var row Document
	err := s.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		First(&row, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return docFromRow(row)
}

func (s *store) Create(ctx context.Context, companyID uuid.UUID, ownerUID string, doc map[string]any) (uuid.UUID, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return uuid.Nil, err
	}

	row := Document{
		ID:        uuid.New(),
		CompanyID: companyID,
		OwnerUID:  ownerUID,
		Doc:       raw,
	}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return uuid.Nil, err
	}
	return row.ID, nil
}

func (s *store) Update(ctx context.Context, companyID, id uuid.UUID, doc map[string]any) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return err
	}

	res := s.db.WithContext(ctx).
		Model(&Document{}).
		Where("company_id = ?", companyID).
		Where("id = ?", id).
		Update("doc", raw)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func docsFromRows(rows []Document) ([]map[string]any, error) {
	docs := make([]map[string]any, 0, len(rows))
	for _, row := range rows {
		doc, err := docFromRow(row)
		if err != nil {
			// One corrupt payload must not sink the whole result set.
			continue
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

func docFromRow(row Document) (map[string]any, error) {
	doc := map[string]any{}
	if err := json.Unmarshal(row.Doc, &doc); err != nil {
		return nil, err
	}

	// The row id is authoritative; payloads may predate it or disagree.
	doc["id"] = row.ID.String()
	if _, ok := doc["ownerUid"]; !ok {
		doc["ownerUid"] = row.OwnerUID
	}
	return doc, nil
}
