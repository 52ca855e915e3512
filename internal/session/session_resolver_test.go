package session_test

import (
	"context"
	"errors"
	"testing"

	"go-jobtracker/internal/profile"
	profileMock "go-jobtracker/internal/profile/mock"
	"go-jobtracker/internal/session"
	sessionMock "go-jobtracker/internal/session/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

const testDeviceID = "device-1"

func TestResolver_Resolve_NoPrincipal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCache := sessionMock.NewMockCache(ctrl)
	mockProfiles := profileMock.NewMockRepository(ctrl)
	resolver := session.NewResolver(mockCache, mockProfiles)

	sess, target, err := resolver.Resolve(context.Background(), nil, testDeviceID)

	assert.NoError(t, err)
	assert.Equal(t, session.TargetLogin, target)
	assert.Empty(t, sess.UID)
}

func TestResolver_Resolve_RemoteWinsAndWritesThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCache := sessionMock.NewMockCache(ctrl)
	mockProfiles := profileMock.NewMockRepository(ctrl)
	resolver := session.NewResolver(mockCache, mockProfiles)
	ctx := context.Background()

	principal := &session.Principal{UID: "uid-1", Email: "owner@acme.test"}
	companyID := uuid.New()

	t.Run("remote fields overwrite a stale cache entry", func(t *testing.T) {
		mockProfiles.EXPECT().GetByUID(ctx, "uid-1").Return(&profile.Profile{
			UID:       "uid-1",
			Email:     "owner@acme.test",
			Name:      "Ada",
			Role:      "owner",
			CompanyID: &companyID,
		}, nil)

		// The cache write must carry the remote values, not the cached ones.
		mockCache.EXPECT().
			SaveSession(ctx, testDeviceID, session.CachedSession{
				UID:       "uid-1",
				Email:     "owner@acme.test",
				Name:      "Ada",
				Role:      "owner",
				CompanyID: companyID.String(),
			}).
			Return(nil)

		sess, target, err := resolver.Resolve(ctx, principal, testDeviceID)

		assert.NoError(t, err)
		assert.Equal(t, session.TargetHome, target)
		assert.Equal(t, session.RoleOwner, sess.Role)
		assert.Equal(t, companyID.String(), sess.CompanyID)
	})

	t.Run("write-through failure is non-fatal", func(t *testing.T) {
		mockProfiles.EXPECT().GetByUID(ctx, "uid-1").Return(&profile.Profile{
			UID:  "uid-1",
			Name: "Ada",
			Role: "independent",
		}, nil)
		mockCache.EXPECT().
			SaveSession(ctx, testDeviceID, gomock.Any()).
			Return(errors.New("redis down"))

		sess, target, err := resolver.Resolve(ctx, principal, testDeviceID)

		assert.NoError(t, err)
		assert.Equal(t, session.TargetHome, target)
		assert.Equal(t, session.RoleIndependent, sess.Role)
	})

	t.Run("repeated resolution yields the same session", func(t *testing.T) {
		p := &profile.Profile{UID: "uid-1", Email: "owner@acme.test", Name: "Ada", Role: "owner", CompanyID: &companyID}
		mockProfiles.EXPECT().GetByUID(ctx, "uid-1").Return(p, nil).Times(2)
		mockCache.EXPECT().SaveSession(ctx, testDeviceID, gomock.Any()).Return(nil).Times(2)

		first, firstTarget, err := resolver.Resolve(ctx, principal, testDeviceID)
		assert.NoError(t, err)
		second, secondTarget, err := resolver.Resolve(ctx, principal, testDeviceID)
		assert.NoError(t, err)

		assert.Equal(t, first, second)
		assert.Equal(t, firstTarget, secondTarget)
	})
}

func TestResolver_Resolve_CanceledContextDiscardsResult(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCache := sessionMock.NewMockCache(ctrl)
	mockProfiles := profileMock.NewMockRepository(ctrl)
	resolver := session.NewResolver(mockCache, mockProfiles)

	ctx, cancel := context.WithCancel(context.Background())
	principal := &session.Principal{UID: "uid-1"}

	mockProfiles.EXPECT().
		GetByUID(gomock.Any(), "uid-1").
		DoAndReturn(func(context.Context, string) (*profile.Profile, error) {
			cancel()
			return &profile.Profile{UID: "uid-1", Role: "independent"}, nil
		})

	_, target, err := resolver.Resolve(ctx, principal, testDeviceID)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, session.TargetLogin, target)
}

func TestResolver_Resolve_RecordNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCache := sessionMock.NewMockCache(ctrl)
	mockProfiles := profileMock.NewMockRepository(ctrl)
	resolver := session.NewResolver(mockCache, mockProfiles)
	ctx := context.Background()

	principal := &session.Principal{UID: "uid-2", Email: "new@acme.test"}

	t.Run("falls back to the cached copy", func(t *testing.T) {
		mockProfiles.EXPECT().GetByUID(ctx, "uid-2").Return(nil, gorm.ErrRecordNotFound)
		mockCache.EXPECT().GetSession(ctx, testDeviceID).Return(&session.CachedSession{
			UID:   "uid-2",
			Email: "new@acme.test",
			Name:  "Grace",
			Role:  "independent",
		}, nil)

		sess, target, err := resolver.Resolve(ctx, principal, testDeviceID)

		assert.NoError(t, err)
		assert.Equal(t, session.TargetHome, target)
		assert.Equal(t, "Grace", sess.Name)
	})

	t.Run("synthesizes an independent session on a cold device", func(t *testing.T) {
		mockProfiles.EXPECT().GetByUID(ctx, "uid-2").Return(nil, gorm.ErrRecordNotFound)
		mockCache.EXPECT().GetSession(ctx, testDeviceID).Return(nil, nil)

		sess, target, err := resolver.Resolve(ctx, principal, testDeviceID)

		assert.NoError(t, err)
		assert.Equal(t, session.TargetHome, target)
		assert.Equal(t, session.RoleIndependent, sess.Role)
		assert.Equal(t, "new@acme.test", sess.Email)
	})
}

func TestResolver_Resolve_RemoteUnreachable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCache := sessionMock.NewMockCache(ctrl)
	mockProfiles := profileMock.NewMockRepository(ctrl)
	resolver := session.NewResolver(mockCache, mockProfiles)
	ctx := context.Background()

	principal := &session.Principal{UID: "uid-3"}
	netErr := errors.New("connection refused")

	t.Run("degrades to the cached session", func(t *testing.T) {
		mockProfiles.EXPECT().GetByUID(ctx, "uid-3").Return(nil, netErr)
		mockCache.EXPECT().GetSession(ctx, testDeviceID).Return(&session.CachedSession{
			UID:  "uid-3",
			Name: "Linus",
			Role: "independent",
		}, nil)

		sess, target, err := resolver.Resolve(ctx, principal, testDeviceID)

		assert.NoError(t, err)
		assert.Equal(t, session.TargetHome, target)
		assert.Equal(t, "Linus", sess.Name)
	})

	t.Run("empty cache routes back to login", func(t *testing.T) {
		mockProfiles.EXPECT().GetByUID(ctx, "uid-3").Return(nil, netErr)
		mockCache.EXPECT().GetSession(ctx, testDeviceID).Return(nil, nil)

		_, target, err := resolver.Resolve(ctx, principal, testDeviceID)

		assert.NoError(t, err)
		assert.Equal(t, session.TargetLogin, target)
	})

	t.Run("cache read failure also routes back to login", func(t *testing.T) {
		mockProfiles.EXPECT().GetByUID(ctx, "uid-3").Return(nil, netErr)
		mockCache.EXPECT().GetSession(ctx, testDeviceID).Return(nil, errors.New("redis down"))

		_, target, err := resolver.Resolve(ctx, principal, testDeviceID)

		assert.NoError(t, err)
		assert.Equal(t, session.TargetLogin, target)
	})
}

func TestResolver_Route_CompanyGates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCache := sessionMock.NewMockCache(ctrl)
	mockProfiles := profileMock.NewMockRepository(ctrl)
	resolver := session.NewResolver(mockCache, mockProfiles)
	ctx := context.Background()

	t.Run("owner without a company goes to create company", func(t *testing.T) {
		principal := &session.Principal{UID: "owner-1"}
		mockProfiles.EXPECT().GetByUID(ctx, "owner-1").Return(&profile.Profile{
			UID:  "owner-1",
			Role: "owner",
		}, nil)
		mockCache.EXPECT().SaveSession(ctx, testDeviceID, gomock.Any()).Return(nil)

		_, target, err := resolver.Resolve(ctx, principal, testDeviceID)

		assert.NoError(t, err)
		assert.Equal(t, session.TargetCreateCompany, target)
	})

	t.Run("employee without a company goes to join company", func(t *testing.T) {
		principal := &session.Principal{UID: "emp-1"}
		mockProfiles.EXPECT().GetByUID(ctx, "emp-1").Return(&profile.Profile{
			UID:  "emp-1",
			Role: "employee",
		}, nil)
		mockCache.EXPECT().SaveSession(ctx, testDeviceID, gomock.Any()).Return(nil)

		_, target, err := resolver.Resolve(ctx, principal, testDeviceID)

		assert.NoError(t, err)
		assert.Equal(t, session.TargetJoinCompany, target)
	})
}

func TestResolver_Route_EmployeeProfileGate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCache := sessionMock.NewMockCache(ctrl)
	mockProfiles := profileMock.NewMockRepository(ctrl)
	resolver := session.NewResolver(mockCache, mockProfiles)
	ctx := context.Background()

	companyID := uuid.New()
	principal := &session.Principal{UID: "emp-2"}

	t.Run("blank name and photo forces profile setup", func(t *testing.T) {
		p := &profile.Profile{UID: "emp-2", Role: "employee", CompanyID: &companyID}
		mockProfiles.EXPECT().GetByUID(ctx, "emp-2").Return(p, nil).Times(2)
		mockCache.EXPECT().SaveSession(ctx, testDeviceID, gomock.Any()).Return(nil)

		_, target, err := resolver.Resolve(ctx, principal, testDeviceID)

		assert.NoError(t, err)
		assert.Equal(t, session.TargetProfileSetup, target)
	})

	t.Run("a set photo alone is enough for home", func(t *testing.T) {
		p := &profile.Profile{UID: "emp-2", Role: "employee", CompanyID: &companyID, PhotoURL: "https://cdn.test/p.jpg"}
		mockProfiles.EXPECT().GetByUID(ctx, "emp-2").Return(p, nil).Times(2)
		mockCache.EXPECT().SaveSession(ctx, testDeviceID, gomock.Any()).Return(nil)

		_, target, err := resolver.Resolve(ctx, principal, testDeviceID)

		assert.NoError(t, err)
		assert.Equal(t, session.TargetHome, target)
	})

	t.Run("a failed completeness check keeps the employee out of home", func(t *testing.T) {
		p := &profile.Profile{UID: "emp-2", Role: "employee", CompanyID: &companyID, Name: "Eve"}
		first := mockProfiles.EXPECT().GetByUID(ctx, "emp-2").Return(p, nil)
		mockProfiles.EXPECT().GetByUID(ctx, "emp-2").Return(nil, errors.New("timeout")).After(first)
		mockCache.EXPECT().SaveSession(ctx, testDeviceID, gomock.Any()).Return(nil)

		_, target, err := resolver.Resolve(ctx, principal, testDeviceID)

		assert.NoError(t, err)
		assert.Equal(t, session.TargetProfileSetup, target)
	})
}

func TestNormalizeRole(t *testing.T) {
	assert.Equal(t, session.RoleOwner, session.NormalizeRole("owner"))
	assert.Equal(t, session.RoleEmployee, session.NormalizeRole("employee"))
	assert.Equal(t, session.RoleIndependent, session.NormalizeRole("independent"))
	assert.Equal(t, session.RoleIndependent, session.NormalizeRole(""))
	assert.Equal(t, session.RoleIndependent, session.NormalizeRole("admin"))
}
