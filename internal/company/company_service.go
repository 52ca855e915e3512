package company

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"errors"
	"strings"
	"time"

	companyerrors "go-jobtracker/internal/company/errors"
	"go-jobtracker/internal/events"
	"go-jobtracker/internal/messaging/kafka"
	"go-jobtracker/internal/profile"
	"go-jobtracker/internal/session"
	"go-jobtracker/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=company_service.go -destination=mock/company_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, principal session.Principal, deviceID string, req CreateCompanyRequest) (CompanyResponse, error)
	Join(ctx context.Context, principal session.Principal, deviceID string, req JoinCompanyRequest) (JoinCompanyResponse, error)
	GetMine(ctx context.Context, uid string) (CompanyResponse, error)
}

type service struct {
	db       *gorm.DB
	repo     Repository
	profiles profile.Repository
	cache    session.Cache
	outbox   kafka.OutboxRepository
	logger   *zap.Logger
}

func NewService(
	db *gorm.DB,
	repo Repository,
	profiles profile.Repository,
	cache session.Cache,
	outbox kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("company.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("company.service")
	}
	return &service{db: db, repo: repo, profiles: profiles, cache: cache, outbox: outbox, logger: l}
}

// Create durably creates the company and binds the owner's remote profile to
// it before the local session cache is touched, so the next resolution pass
// cannot race back to CREATE_COMPANY.
func (s *service) Create(ctx context.Context, principal session.Principal, deviceID string, req CreateCompanyRequest) (CompanyResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return CompanyResponse{}, companyerrors.ErrNameRequired
	}

	s.logger.Debug("create company requested",
		zap.String("uid", principal.UID),
		zap.String("name", name),
	)

	prof, err := s.loadOrInitProfile(ctx, principal)
	if err != nil {
		return CompanyResponse{}, mapRepositoryError(err)
	}
	if prof.CompanyID != nil {
		return CompanyResponse{}, companyerrors.ErrAlreadyInCompany
	}

	comp := &Company{
		ID:       uuid.New(),
		Name:     name,
		JoinCode: generateJoinCode(),
		OwnerUID: principal.UID,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.repo.WithTx(tx).Create(ctx, comp); err != nil {
			return err
		}

		prof.Role = string(session.RoleOwner)
		prof.CompanyID = &comp.ID
		if err := s.profiles.WithTx(tx).Save(ctx, prof); err != nil {
			return err
		}

		return s.enqueueCompanyEvent(ctx, tx, events.CompanyCreated, comp.ID.String(), principal.UID)
	})
	if err != nil {
		s.logger.Error("create company tx failed", zap.Error(err))
		return CompanyResponse{}, mapRepositoryError(err)
	}

	s.writeThroughSession(ctx, deviceID, principal, prof)

	return CompanyResponse{
		ID:       comp.ID.String(),
		Name:     comp.Name,
		JoinCode: comp.JoinCode,
		OwnerUID: comp.OwnerUID,
	}, nil
}

// Join attaches an account to the company matching the presented join code.
// The code is case-normalized before lookup. A missing code is a user-facing
// "not found", never conflated with a store fault.
func (s *service) Join(ctx context.Context, principal session.Principal, deviceID string, req JoinCompanyRequest) (JoinCompanyResponse, error) {
	code := strings.ToUpper(strings.TrimSpace(req.JoinCode))
	if code == "" {
		return JoinCompanyResponse{}, companyerrors.ErrJoinCodeRequired
	}

	s.logger.Debug("join company requested",
		zap.String("uid", principal.UID),
		zap.String("join_code", code),
	)

	comp, err := s.repo.GetByJoinCode(ctx, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return JoinCompanyResponse{}, companyerrors.ErrJoinCodeNotFound
		}
		s.logger.Error("join code lookup failed", zap.Error(err))
		return JoinCompanyResponse{}, mapRepositoryError(err)
	}

	prof, err := s.loadOrInitProfile(ctx, principal)
	if err != nil {
		return JoinCompanyResponse{}, mapRepositoryError(err)
	}
	if prof.Role == "" || prof.Role == string(session.RoleIndependent) {
		prof.Role = string(session.RoleEmployee)
	}
	prof.CompanyID = &comp.ID

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.profiles.WithTx(tx).Save(ctx, prof); err != nil {
			return err
		}
		return s.enqueueCompanyEvent(ctx, tx, events.CompanyJoined, comp.ID.String(), principal.UID)
	})
	if err != nil {
		s.logger.Error("join company tx failed", zap.Error(err))
		return JoinCompanyResponse{}, mapRepositoryError(err)
	}

	s.writeThroughSession(ctx, deviceID, principal, prof)

	return JoinCompanyResponse{
		CompanyID: comp.ID.String(),
		Name:      comp.Name,
	}, nil
}

func (s *service) GetMine(ctx context.Context, uid string) (CompanyResponse, error) {
	prof, err := s.profiles.GetByUID(ctx, uid)
	if err != nil {
		return CompanyResponse{}, mapRepositoryError(err)
	}
	if prof.CompanyID == nil {
		return CompanyResponse{}, companyerrors.ErrNotCompanyMember
	}

	comp, err := s.repo.GetByID(ctx, *prof.CompanyID)
	if err != nil {
		return CompanyResponse{}, mapRepositoryError(err)
	}

	resp := CompanyResponse{
		ID:       comp.ID.String(),
		Name:     comp.Name,
		OwnerUID: comp.OwnerUID,
	}
	// Only the owner gets to see (and share) the join code.
	if comp.OwnerUID == uid {
		resp.JoinCode = comp.JoinCode
	}
	return resp, nil
}

func (s *service) loadOrInitProfile(ctx context.Context, principal session.Principal) (*profile.Profile, error) {
	prof, err := s.profiles.GetByUID(ctx, principal.UID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &profile.Profile{
			UID:   principal.UID,
			Email: principal.Email,
			Role:  string(session.RoleIndependent),
		}, nil
	}
	if err != nil {
		return nil, err
	}
	return prof, nil
}

func (s *service) enqueueCompanyEvent(ctx context.Context, tx *gorm.DB, eventType, companyID, actorUID string) error {
	payload, err := json.Marshal(events.CompanyLifecycleEvent{
		EventType:  eventType,
		CompanyID:  companyID,
		ActorUID:   actorUID,
		OccurredAt: time.Now().UTC(),
	})
	if err != nil {
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: "company",
		AggregateID:   companyID,
		EventType:     eventType,
		Topic:         events.CompanyLifecycleTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

// writeThroughSession refreshes the local session cache after companyId has
// been durably recorded remotely. Failing here is logged, not fatal: the next
// resolution pass repairs the cache from the remote record anyway.
func (s *service) writeThroughSession(ctx context.Context, deviceID string, principal session.Principal, prof *profile.Profile) {
	if deviceID == "" {
		deviceID = principal.UID
	}

	email := prof.Email
	if email == "" {
		email = principal.Email
	}

	if err := s.cache.SaveSession(ctx, deviceID, session.CachedSession{
		UID:       principal.UID,
		Email:     email,
		Name:      prof.Name,
		Role:      prof.Role,
		CompanyID: prof.CompanyIDString(),
	}); err != nil {
		s.logger.Error("session write-through failed",
			zap.String("uid", principal.UID),
			zap.Error(err),
		)
	}
}

const joinCodeCharset = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

func generateJoinCode() string {
	buf := make([]byte, 6)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand failing is effectively unreachable; fall back to a
		// uuid-derived code rather than panicking.
		return strings.ToUpper(uuid.NewString()[:6])
	}
	for i, b := range buf {
		buf[i] = joinCodeCharset[int(b)%len(joinCodeCharset)]
	}
	return string(buf)
}
