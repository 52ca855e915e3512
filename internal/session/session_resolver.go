package session

import (
	"context"
	"errors"

	"go-jobtracker/internal/profile"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Resolver reconciles the local session cache against the authoritative
// remote profile record and computes where the screen layer should route.
//
//go:generate mockgen -source=session_resolver.go -destination=mock/session_resolver_mock.go -package=mock
type Resolver interface {
	Resolve(ctx context.Context, principal *Principal, deviceID string) (ResolvedSession, RoutingTarget, error)
}

type resolver struct {
	cache    Cache
	profiles profile.Repository
	logger   *zap.Logger
}

func NewResolver(cache Cache, profiles profile.Repository, logger ...*zap.Logger) Resolver {
	l := zap.L().Named("session.resolver")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("session.resolver")
	}
	return &resolver{cache: cache, profiles: profiles, logger: l}
}

func (r *resolver) Resolve(ctx context.Context, principal *Principal, deviceID string) (ResolvedSession, RoutingTarget, error) {
	// 1. No authenticated identity at all
	if principal == nil || principal.UID == "" {
		return ResolvedSession{}, TargetLogin, nil
	}

	// 2. Remote is authoritative: always attempt the point lookup, the cache
	// may be stale or absent.
	remote, err := r.profiles.GetByUID(ctx, principal.UID)

	switch {
	case err == nil:
		sess := r.fromRemote(principal, remote)

		// Write-through refresh: remote fields win unconditionally. Must
		// complete before we return so a second resolution in the same
		// lifecycle cannot observe the old value. A canceled context means
		// the screen has moved on, so the stale result is discarded instead
		// of applied.
		if ctx.Err() != nil {
			return ResolvedSession{}, TargetLogin, ctx.Err()
		}
		if err := r.cache.SaveSession(ctx, deviceID, CachedSession{
			UID:       sess.UID,
			Email:     sess.Email,
			Name:      sess.Name,
			Role:      string(sess.Role),
			CompanyID: sess.CompanyID,
		}); err != nil {
			// Non-fatal: the resolved session is still correct, the next
			// resolution pass will repair the cache.
			r.logger.Error("session write-through failed",
				zap.String("uid", sess.UID),
				zap.Error(err),
			)
		}

		return sess, r.route(ctx, sess, true), nil

	case errors.Is(err, gorm.ErrRecordNotFound):
		// No remote record. Fall back to the cached copy or synthesize an
		// independent session; never fail the flow here.
		sess := r.fromCacheOrSynthesize(ctx, principal, deviceID)
		return sess, r.route(ctx, sess, false), nil

	default:
		// Remote unreachable: availability over strict consistency. Degrade
		// to the cached copy; only the absence of both remote and local
		// identity sends the user back to LOGIN.
		r.logger.Warn("remote profile read failed, degrading to cache",
			zap.String("uid", principal.UID),
			zap.Error(err),
		)

		cached, cerr := r.cache.GetSession(ctx, deviceID)
		if cerr != nil || cached == nil {
			return ResolvedSession{}, TargetLogin, nil
		}

		sess := r.fromCache(principal, cached)
		return sess, r.route(ctx, sess, false), nil
	}
}

func (r *resolver) fromRemote(principal *Principal, p *profile.Profile) ResolvedSession {
	email := p.Email
	if email == "" {
		email = principal.Email
	}
	return ResolvedSession{
		UID:       principal.UID,
		Email:     email,
		Name:      p.Name,
		Role:      NormalizeRole(p.Role),
		CompanyID: p.CompanyIDString(),
	}
}

func (r *resolver) fromCache(principal *Principal, cached *CachedSession) ResolvedSession {
	email := cached.Email
	if email == "" {
		email = principal.Email
	}
	return ResolvedSession{
		UID:       principal.UID,
		Email:     email,
		Name:      cached.Name,
		Role:      NormalizeRole(cached.Role),
		CompanyID: cached.CompanyID,
	}
}

func (r *resolver) fromCacheOrSynthesize(ctx context.Context, principal *Principal, deviceID string) ResolvedSession {
	cached, err := r.cache.GetSession(ctx, deviceID)
	if err != nil {
		r.logger.Warn("session cache read failed", zap.Error(err))
	}
	if cached != nil {
		return r.fromCache(principal, cached)
	}

	return ResolvedSession{
		UID:   principal.UID,
		Email: principal.Email,
		Role:  RoleIndependent,
	}
}

// route computes the routing target for an already-resolved session.
// remoteOK reports whether the authoritative profile read succeeded; the
// employee first-run gate needs a secondary profile read and a failure there
// keeps the user out of HOME rather than letting a partially configured
// employee see cloud data.
func (r *resolver) route(ctx context.Context, sess ResolvedSession, remoteOK bool) RoutingTarget {
	switch {
	case sess.Role == RoleOwner && sess.CompanyID == "":
		return TargetCreateCompany

	case sess.Role == RoleEmployee && sess.CompanyID == "":
		return TargetJoinCompany

	case sess.Role == RoleEmployee:
		p, err := r.profiles.GetByUID(ctx, sess.UID)
		if err != nil {
			r.logger.Warn("employee profile completeness check failed",
				zap.String("uid", sess.UID),
				zap.Bool("remote_ok", remoteOK),
				zap.Error(err),
			)
			return TargetProfileSetup
		}
		if p.Name == "" && p.PhotoURL == "" {
			return TargetProfileSetup
		}
		return TargetHome

	default:
		return TargetHome
	}
}
