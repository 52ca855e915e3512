package job

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"time"

	"go-jobtracker/internal/events"
	joberrors "go-jobtracker/internal/job/errors"
	"go-jobtracker/internal/messaging/kafka"
	"go-jobtracker/internal/rbac"
	"go-jobtracker/internal/session"
	"go-jobtracker/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service is the job repository: given a resolved session it selects one of
// three fetch strategies and returns a normalized, de-duplicated result.
// Mutations are split by mode: cloud writes go to the remote document store,
// local writes rewrite the device's whole-list blob.
//
//go:generate mockgen -source=job_service.go -destination=mock/job_service_mock.go -package=mock
type Service interface {
	FetchForSession(ctx context.Context, sess session.ResolvedSession, deviceID string) (FetchResult, error)

	Create(ctx context.Context, sess session.ResolvedSession, req UpsertJobRequest) (JobRecord, error)
	Update(ctx context.Context, sess session.ResolvedSession, jobID string, req UpsertJobRequest) (JobRecord, error)
	MarkDone(ctx context.Context, sess session.ResolvedSession, jobID string, done bool) (JobRecord, error)

	CreateLocal(ctx context.Context, deviceID string, req UpsertJobRequest) (JobRecord, error)
	UpdateLocal(ctx context.Context, deviceID, jobID string, req UpsertJobRequest) (JobRecord, error)
	MarkDoneLocal(ctx context.Context, deviceID, jobID string, done bool) (JobRecord, error)
	DeleteLocal(ctx context.Context, deviceID, jobID string) error
	ListTrash(ctx context.Context, deviceID string) ([]JobRecord, error)
	RestoreLocal(ctx context.Context, deviceID, jobID string) (JobRecord, error)
	PurgeLocal(ctx context.Context, deviceID, jobID string) error
}

type service struct {
	db     *gorm.DB
	store  Store
	local  LocalStore
	outbox kafka.OutboxRepository
	rbac   rbac.Service
	logger *zap.Logger
}

func NewService(
	db *gorm.DB,
	store Store,
	local LocalStore,
	outbox kafka.OutboxRepository,
	rbacService rbac.Service,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("job.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("job.service")
	}
	return &service{db: db, store: store, local: local, outbox: outbox, rbac: rbacService, logger: l}
}

// FetchForSession never lets a storage failure cross the boundary: every
// failure path resolves to an empty (or partial) list plus the Partial flag
// so the screen layer renders an empty state instead of crashing. Cloud
// strategies are read-only with respect to the local cache.
func (s *service) FetchForSession(ctx context.Context, sess session.ResolvedSession, deviceID string) (FetchResult, error) {
	switch sess.Role {
	case session.RoleOwner:
		return s.fetchOwner(ctx, sess), nil
	case session.RoleEmployee:
		return s.fetchEmployee(ctx, sess), nil
	default:
		return s.fetchIndependent(ctx, deviceID), nil
	}
}

// fetchOwner returns every job under the company, unfiltered by assignee.
func (s *service) fetchOwner(ctx context.Context, sess session.ResolvedSession) FetchResult {
	companyID, err := uuid.Parse(sess.CompanyID)
	if err != nil {
		return FetchResult{Jobs: []JobRecord{}, Partial: false}
	}

	docs, err := s.store.FindAllByCompany(ctx, companyID)
	if err != nil {
		s.logger.Warn("owner job fetch failed",
			zap.String("company_id", sess.CompanyID),
			zap.Error(err),
		)
		return FetchResult{Jobs: []JobRecord{}, Partial: true}
	}

	jobs := make([]JobRecord, 0, len(docs))
	for _, doc := range docs {
		jobs = append(jobs, Normalize(doc))
	}
	return FetchResult{Jobs: jobs}
}

// fetchEmployee issues the legacy-scalar and set-membership queries
// concurrently and merges them by document id, so total latency is bounded
// by the slower query rather than their sum. A failure in one query never
// aborts the other.
func (s *service) fetchEmployee(ctx context.Context, sess session.ResolvedSession) FetchResult {
	companyID, err := uuid.Parse(sess.CompanyID)
	if err != nil {
		return FetchResult{Jobs: []JobRecord{}, Partial: false}
	}

	var (
		legacyDocs, memberDocs []map[string]any
		legacyErr, memberErr   error
	)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		legacyDocs, legacyErr = s.store.FindByLegacyAssignee(ctx, companyID, sess.UID)
	}()
	go func() {
		defer wg.Done()
		memberDocs, memberErr = s.store.FindByAssigneeMember(ctx, companyID, sess.UID)
	}()
	wg.Wait()

	if legacyErr != nil {
		s.logger.Warn("legacy assignee query failed, proceeding with membership results",
			zap.String("uid", sess.UID),
			zap.Error(legacyErr),
		)
	}
	if memberErr != nil {
		s.logger.Warn("assignee membership query failed, proceeding with legacy results",
			zap.String("uid", sess.UID),
			zap.Error(memberErr),
		)
	}

	return FetchResult{
		Jobs:    mergeByID(legacyDocs, memberDocs),
		Partial: legacyErr != nil || memberErr != nil,
	}
}

// mergeByID performs the union-by-document-id merge: all of the first result
// set, then all of the second, later insert winning on an id collision. In
// practice the two sets are disjoint since a document uses one assignment
// schema, but the merge must hold either way.
func mergeByID(first, second []map[string]any) []JobRecord {
	index := make(map[string]int)
	merged := make([]JobRecord, 0, len(first)+len(second))

	insert := func(docs []map[string]any) {
		for _, doc := range docs {
			rec := Normalize(doc)
			if pos, seen := index[rec.ID]; seen && rec.ID != "" {
				merged[pos] = rec
				continue
			}
			index[rec.ID] = len(merged)
			merged = append(merged, rec)
		}
	}

	insert(first)
	insert(second)
	return merged
}

// fetchIndependent reads the local list blob. A device that has never stored
// a list gets seeded with exactly one example record, persisted before the
// result is returned.
func (s *service) fetchIndependent(ctx context.Context, deviceID string) FetchResult {
	jobs, existed, err := s.local.LoadList(ctx, deviceID)
	if err != nil {
		s.logger.Warn("local job list read failed", zap.String("device_id", deviceID), zap.Error(err))
		return FetchResult{Jobs: []JobRecord{}, Partial: true}
	}

	if !existed {
		jobs = []JobRecord{seedRecord()}
		if err := s.local.SaveList(ctx, deviceID, jobs); err != nil {
			s.logger.Warn("seeding local job list failed", zap.String("device_id", deviceID), zap.Error(err))
		}
	}

	return FetchResult{Jobs: jobs}
}

func seedRecord() JobRecord {
	return JobRecord{
		ID:          uuid.NewString(),
		Title:       "Sample job: panel inspection",
		Address:     "123 Main St",
		Description: "This is an example job to get you started. Edit it or create your own.",
		ClientName:  "Sample Client",
		CreatedAt:   time.Now().UTC().Format(time.RFC3339),
		Photos:      []string{},
	}
}

// --- cloud mutations (owner) ---

func (s *service) Create(ctx context.Context, sess session.ResolvedSession, req UpsertJobRequest) (JobRecord, error) {
	companyID, err := s.authorizeCloudWrite(sess, "create")
	if err != nil {
		return JobRecord{}, err
	}

	photos, err := cloudPhotos(req.Photos)
	if err != nil {
		return JobRecord{}, err
	}

	doc := docFromRequest(req, photos)
	doc["isDone"] = false
	doc["createdAt"] = time.Now().UTC().Format(time.RFC3339)
	doc["ownerUid"] = sess.UID
	doc["createdByUid"] = sess.UID

	var id uuid.UUID
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		id, err = s.store.WithTx(tx).Create(ctx, companyID, sess.UID, doc)
		if err != nil {
			return err
		}
		return s.enqueueJobEvent(ctx, tx, events.JobCreated, id.String(), sess)
	})
	if err != nil {
		s.logger.Error("create cloud job failed", zap.String("company_id", sess.CompanyID), zap.Error(err))
		return JobRecord{}, mapStoreError(err)
	}

	doc["id"] = id.String()
	return Normalize(doc), nil
}

func (s *service) Update(ctx context.Context, sess session.ResolvedSession, jobID string, req UpsertJobRequest) (JobRecord, error) {
	companyID, err := s.authorizeCloudWrite(sess, "update")
	if err != nil {
		return JobRecord{}, err
	}

	id, err := uuid.Parse(jobID)
	if err != nil {
		return JobRecord{}, joberrors.ErrInvalidJobID
	}

	photos, err := cloudPhotos(req.Photos)
	if err != nil {
		return JobRecord{}, err
	}

	doc, err := s.store.GetByID(ctx, companyID, id)
	if err != nil {
		return JobRecord{}, mapStoreError(err)
	}

	// Editable fields overwrite; lineage fields (createdAt, ownerUid,
	// createdByUid, isDone, legacy assignedToUid) are preserved as stored.
	for k, v := range docFromRequest(req, photos) {
		doc[k] = v
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.store.WithTx(tx).Update(ctx, companyID, id, doc); err != nil {
			return err
		}
		return s.enqueueJobEvent(ctx, tx, events.JobUpdated, id.String(), sess)
	})
	if err != nil {
		s.logger.Error("update cloud job failed", zap.String("job_id", jobID), zap.Error(err))
		return JobRecord{}, mapStoreError(err)
	}

	return Normalize(doc), nil
}

func (s *service) MarkDone(ctx context.Context, sess session.ResolvedSession, jobID string, done bool) (JobRecord, error) {
	companyID, err := s.authorizeCloudWrite(sess, "update")
	if err != nil {
		return JobRecord{}, err
	}

	id, err := uuid.Parse(jobID)
	if err != nil {
		return JobRecord{}, joberrors.ErrInvalidJobID
	}

	doc, err := s.store.GetByID(ctx, companyID, id)
	if err != nil {
		return JobRecord{}, mapStoreError(err)
	}
	doc["isDone"] = done

	eventType := events.JobUpdated
	if done {
		eventType = events.JobDone
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.store.WithTx(tx).Update(ctx, companyID, id, doc); err != nil {
			return err
		}
		return s.enqueueJobEvent(ctx, tx, eventType, id.String(), sess)
	})
	if err != nil {
		s.logger.Error("mark cloud job done failed", zap.String("job_id", jobID), zap.Error(err))
		return JobRecord{}, mapStoreError(err)
	}

	return Normalize(doc), nil
}

func (s *service) authorizeCloudWrite(sess session.ResolvedSession, action string) (uuid.UUID, error) {
	allowed, err := s.rbac.Enforce(string(sess.Role), "job", action)
	if err != nil {
		return uuid.Nil, err
	}
	if !allowed {
		return uuid.Nil, joberrors.ErrNotPermitted
	}

	companyID, err := uuid.Parse(sess.CompanyID)
	if err != nil {
		return uuid.Nil, joberrors.ErrNoCompany
	}
	return companyID, nil
}

// cloudPhotos validates that a cloud-bound photo list carries locators only.
// Inline image data is a structural violation of the remote document shape,
// so it is rejected rather than silently dropped.
func cloudPhotos(photos []string) ([]string, error) {
	out := make([]string, 0, len(photos))
	for _, p := range photos {
		if isInlineImage(p) {
			return nil, joberrors.ErrInlinePhotoData
		}
		if p != "" {
			out = append(out, p)
		}
	}
	return out, nil
}

func docFromRequest(req UpsertJobRequest, photos []string) map[string]any {
	uids := make([]any, 0, len(req.AssignedToUIDs))
	for _, uid := range req.AssignedToUIDs {
		uids = append(uids, uid)
	}

	return map[string]any{
		"title":          strings.TrimSpace(req.Title),
		"address":        strings.TrimSpace(req.Address),
		"description":    req.Description,
		"clientName":     strings.TrimSpace(req.ClientName),
		"clientPhone":    strings.TrimSpace(req.ClientPhone),
		"clientNotes":    req.ClientNotes,
		"photos":         photos,
		"laborHours":     req.LaborHours,
		"hourlyRate":     req.HourlyRate,
		"materialCost":   req.MaterialCost,
		"assignedToUids": uids,
	}
}

func (s *service) enqueueJobEvent(ctx context.Context, tx *gorm.DB, eventType, jobID string, sess session.ResolvedSession) error {
	payload, err := json.Marshal(events.JobLifecycleEvent{
		EventType:  eventType,
		JobID:      jobID,
		CompanyID:  sess.CompanyID,
		ActorUID:   sess.UID,
		OccurredAt: time.Now().UTC(),
	})
	if err != nil {
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: "job",
		AggregateID:   jobID,
		EventType:     eventType,
		Topic:         events.JobLifecycleTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

// --- local mutations (independent) ---
//
// Every state-changing action below persists the full updated list before
// returning control. The blob has no fine-grained locking; concurrent
// mutations serialize through whole-list read-modify-write and the last
// writer wins.

func (s *service) CreateLocal(ctx context.Context, deviceID string, req UpsertJobRequest) (JobRecord, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return JobRecord{}, joberrors.ErrTitleRequired
	}

	jobs, _, err := s.local.LoadList(ctx, deviceID)
	if err != nil {
		return JobRecord{}, joberrors.ErrLocalStoreUnavailable
	}

	rec := recordFromRequest(req)
	rec.ID = uuid.NewString()
	rec.CreatedAt = time.Now().UTC().Format(time.RFC3339)

	jobs = append(jobs, rec)
	if err := s.local.SaveList(ctx, deviceID, jobs); err != nil {
		return JobRecord{}, joberrors.ErrLocalStoreUnavailable
	}
	return rec, nil
}

func (s *service) UpdateLocal(ctx context.Context, deviceID, jobID string, req UpsertJobRequest) (JobRecord, error) {
	jobs, _, err := s.local.LoadList(ctx, deviceID)
	if err != nil {
		return JobRecord{}, joberrors.ErrLocalStoreUnavailable
	}

	pos := findRecord(jobs, jobID)
	if pos < 0 {
		return JobRecord{}, joberrors.ErrJobNotFound
	}

	rec := recordFromRequest(req)
	rec.ID = jobs[pos].ID
	rec.CreatedAt = jobs[pos].CreatedAt
	rec.IsDone = jobs[pos].IsDone
	jobs[pos] = rec

	if err := s.local.SaveList(ctx, deviceID, jobs); err != nil {
		return JobRecord{}, joberrors.ErrLocalStoreUnavailable
	}
	return rec, nil
}

func (s *service) MarkDoneLocal(ctx context.Context, deviceID, jobID string, done bool) (JobRecord, error) {
	jobs, _, err := s.local.LoadList(ctx, deviceID)
	if err != nil {
		return JobRecord{}, joberrors.ErrLocalStoreUnavailable
	}

	pos := findRecord(jobs, jobID)
	if pos < 0 {
		return JobRecord{}, joberrors.ErrJobNotFound
	}

	jobs[pos].IsDone = done
	if err := s.local.SaveList(ctx, deviceID, jobs); err != nil {
		return JobRecord{}, joberrors.ErrLocalStoreUnavailable
	}
	return jobs[pos], nil
}

// DeleteLocal soft-deletes: the record moves to the parallel trash blob and
// can be restored until it is purged.
func (s *service) DeleteLocal(ctx context.Context, deviceID, jobID string) error {
	jobs, _, err := s.local.LoadList(ctx, deviceID)
	if err != nil {
		return joberrors.ErrLocalStoreUnavailable
	}

	pos := findRecord(jobs, jobID)
	if pos < 0 {
		return joberrors.ErrJobNotFound
	}

	trash, err := s.local.LoadTrash(ctx, deviceID)
	if err != nil {
		return joberrors.ErrLocalStoreUnavailable
	}

	rec := jobs[pos]
	rec.DeletedAt = time.Now().UTC().Format(time.RFC3339)

	// Trash first: if the list save then fails the worst case is a record
	// present in both blobs, never a lost record.
	if err := s.local.SaveTrash(ctx, deviceID, append(trash, rec)); err != nil {
		return joberrors.ErrLocalStoreUnavailable
	}

	jobs = append(jobs[:pos], jobs[pos+1:]...)
	if err := s.local.SaveList(ctx, deviceID, jobs); err != nil {
		return joberrors.ErrLocalStoreUnavailable
	}
	return nil
}

func (s *service) ListTrash(ctx context.Context, deviceID string) ([]JobRecord, error) {
	trash, err := s.local.LoadTrash(ctx, deviceID)
	if err != nil {
		return nil, joberrors.ErrLocalStoreUnavailable
	}
	return trash, nil
}

func (s *service) RestoreLocal(ctx context.Context, deviceID, jobID string) (JobRecord, error) {
	trash, err := s.local.LoadTrash(ctx, deviceID)
	if err != nil {
		return JobRecord{}, joberrors.ErrLocalStoreUnavailable
	}

	pos := findRecord(trash, jobID)
	if pos < 0 {
		return JobRecord{}, joberrors.ErrJobNotFound
	}

	jobs, _, err := s.local.LoadList(ctx, deviceID)
	if err != nil {
		return JobRecord{}, joberrors.ErrLocalStoreUnavailable
	}

	rec := trash[pos]
	rec.DeletedAt = ""

	if err := s.local.SaveList(ctx, deviceID, append(jobs, rec)); err != nil {
		return JobRecord{}, joberrors.ErrLocalStoreUnavailable
	}

	trash = append(trash[:pos], trash[pos+1:]...)
	if err := s.local.SaveTrash(ctx, deviceID, trash); err != nil {
		return JobRecord{}, joberrors.ErrLocalStoreUnavailable
	}
	return rec, nil
}

// PurgeLocal removes a trashed record forever.
func (s *service) PurgeLocal(ctx context.Context, deviceID, jobID string) error {
	trash, err := s.local.LoadTrash(ctx, deviceID)
	if err != nil {
		return joberrors.ErrLocalStoreUnavailable
	}

	pos := findRecord(trash, jobID)
	if pos < 0 {
		return joberrors.ErrJobNotFound
	}

	trash = append(trash[:pos], trash[pos+1:]...)
	if err := s.local.SaveTrash(ctx, deviceID, trash); err != nil {
		return joberrors.ErrLocalStoreUnavailable
	}
	return nil
}

func findRecord(jobs []JobRecord, id string) int {
	for i, rec := range jobs {
		if rec.ID == id {
			return i
		}
	}
	return -1
}

func recordFromRequest(req UpsertJobRequest) JobRecord {
	photos := req.Photos
	if photos == nil {
		photos = []string{}
	}
	uids := req.AssignedToUIDs
	if uids == nil {
		uids = []string{}
	}
	return JobRecord{
		Title:          strings.TrimSpace(req.Title),
		Address:        strings.TrimSpace(req.Address),
		Description:    req.Description,
		ClientName:     strings.TrimSpace(req.ClientName),
		ClientPhone:    strings.TrimSpace(req.ClientPhone),
		ClientNotes:    req.ClientNotes,
		Photos:         photos,
		LaborHours:     req.LaborHours,
		HourlyRate:     req.HourlyRate,
		MaterialCost:   req.MaterialCost,
		AssignedToUIDs: uids,
	}
}
