package company_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"go-jobtracker/internal/company"
	companyerrors "go-jobtracker/internal/company/errors"
	companyMock "go-jobtracker/internal/company/mock"
	kafkaMock "go-jobtracker/internal/messaging/kafka/mock"
	"go-jobtracker/internal/profile"
	profileMock "go-jobtracker/internal/profile/mock"
	"go-jobtracker/internal/session"
	sessionMock "go-jobtracker/internal/session/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type serviceDeps struct {
	db       *sql.DB
	sqlMock  sqlmock.Sqlmock
	repo     *companyMock.MockRepository
	profiles *profileMock.MockRepository
	cache    *sessionMock.MockCache
	outbox   *kafkaMock.MockOutboxRepository
	service  company.Service
}

func setupServiceTest(t *testing.T) *serviceDeps {
	t.Helper()
	ctrl := gomock.NewController(t)

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 db,
		PreferSimpleProtocol: true,
	}), &gorm.Config{SkipDefaultTransaction: true})
	assert.NoError(t, err)

	repo := companyMock.NewMockRepository(ctrl)
	profiles := profileMock.NewMockRepository(ctrl)
	cache := sessionMock.NewMockCache(ctrl)
	outbox := kafkaMock.NewMockOutboxRepository(ctrl)

	return &serviceDeps{
		db:       db,
		sqlMock:  sqlMock,
		repo:     repo,
		profiles: profiles,
		cache:    cache,
		outbox:   outbox,
		service:  company.NewService(gormDB, repo, profiles, cache, outbox),
	}
}

func TestCompanyService_Create(t *testing.T) {
	deps := setupServiceTest(t)
	defer deps.db.Close()

	ctx := context.Background()
	principal := session.Principal{UID: "owner-1", Email: "owner@acme.test"}

	t.Run("creates the company then refreshes the session cache", func(t *testing.T) {
		deps.profiles.EXPECT().GetByUID(ctx, "owner-1").Return(&profile.Profile{
			UID:   "owner-1",
			Email: "owner@acme.test",
			Role:  "independent",
		}, nil)

		deps.sqlMock.ExpectBegin()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, comp *company.Company) error {
				assert.Equal(t, "Acme Field Services", comp.Name)
				assert.Equal(t, "owner-1", comp.OwnerUID)
				assert.Len(t, comp.JoinCode, 6)
				return nil
			})
		deps.profiles.EXPECT().WithTx(gomock.Any()).Return(deps.profiles)
		deps.profiles.EXPECT().
			Save(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, p *profile.Profile) error {
				assert.Equal(t, "owner", p.Role)
				assert.NotNil(t, p.CompanyID)
				return nil
			})
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().Create(ctx, gomock.Any()).Return(nil)
		deps.sqlMock.ExpectCommit()

		// The cache refresh happens only after the transaction commits.
		deps.cache.EXPECT().
			SaveSession(ctx, "device-1", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, s session.CachedSession) error {
				assert.Equal(t, "owner", s.Role)
				assert.NotEmpty(t, s.CompanyID)
				return nil
			})

		resp, err := deps.service.Create(ctx, principal, "device-1", company.CreateCompanyRequest{
			Name: "  Acme Field Services  ",
		})

		assert.NoError(t, err)
		assert.Equal(t, "Acme Field Services", resp.Name)
		assert.NotEmpty(t, resp.JoinCode)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("a blank name is rejected", func(t *testing.T) {
		_, err := deps.service.Create(ctx, principal, "device-1", company.CreateCompanyRequest{Name: "   "})
		assert.ErrorIs(t, err, companyerrors.ErrNameRequired)
	})

	t.Run("an account already in a company cannot create another", func(t *testing.T) {
		existing := uuid.New()
		deps.profiles.EXPECT().GetByUID(ctx, "owner-1").Return(&profile.Profile{
			UID:       "owner-1",
			Role:      "owner",
			CompanyID: &existing,
		}, nil)

		_, err := deps.service.Create(ctx, principal, "device-1", company.CreateCompanyRequest{Name: "Second Co"})

		assert.ErrorIs(t, err, companyerrors.ErrAlreadyInCompany)
	})

	t.Run("a first-time account gets an initialized profile", func(t *testing.T) {
		deps.profiles.EXPECT().GetByUID(ctx, "owner-1").Return(nil, gorm.ErrRecordNotFound)

		deps.sqlMock.ExpectBegin()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)
		deps.profiles.EXPECT().WithTx(gomock.Any()).Return(deps.profiles)
		deps.profiles.EXPECT().
			Save(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, p *profile.Profile) error {
				assert.Equal(t, "owner-1", p.UID)
				assert.Equal(t, "owner@acme.test", p.Email)
				assert.Equal(t, "owner", p.Role)
				return nil
			})
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().Create(ctx, gomock.Any()).Return(nil)
		deps.sqlMock.ExpectCommit()
		deps.cache.EXPECT().SaveSession(ctx, "device-1", gomock.Any()).Return(nil)

		_, err := deps.service.Create(ctx, principal, "device-1", company.CreateCompanyRequest{Name: "Acme"})

		assert.NoError(t, err)
	})

	t.Run("a failed cache refresh does not fail the operation", func(t *testing.T) {
		deps.profiles.EXPECT().GetByUID(ctx, "owner-1").Return(nil, gorm.ErrRecordNotFound)

		deps.sqlMock.ExpectBegin()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)
		deps.profiles.EXPECT().WithTx(gomock.Any()).Return(deps.profiles)
		deps.profiles.EXPECT().Save(ctx, gomock.Any()).Return(nil)
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().Create(ctx, gomock.Any()).Return(nil)
		deps.sqlMock.ExpectCommit()
		deps.cache.EXPECT().SaveSession(ctx, "device-1", gomock.Any()).Return(errors.New("redis down"))

		_, err := deps.service.Create(ctx, principal, "device-1", company.CreateCompanyRequest{Name: "Acme"})

		assert.NoError(t, err)
	})
}

func TestCompanyService_Join(t *testing.T) {
	deps := setupServiceTest(t)
	defer deps.db.Close()

	ctx := context.Background()
	principal := session.Principal{UID: "emp-1", Email: "emp@acme.test"}
	companyID := uuid.New()
	comp := &company.Company{ID: companyID, Name: "Acme", JoinCode: "AB12CD", OwnerUID: "owner-1"}

	t.Run("the presented code is trimmed and uppercased before lookup", func(t *testing.T) {
		deps.repo.EXPECT().GetByJoinCode(ctx, "AB12CD").Return(comp, nil)
		deps.profiles.EXPECT().GetByUID(ctx, "emp-1").Return(nil, gorm.ErrRecordNotFound)

		deps.sqlMock.ExpectBegin()
		deps.profiles.EXPECT().WithTx(gomock.Any()).Return(deps.profiles)
		deps.profiles.EXPECT().
			Save(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, p *profile.Profile) error {
				assert.Equal(t, "employee", p.Role)
				assert.Equal(t, companyID, *p.CompanyID)
				return nil
			})
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().Create(ctx, gomock.Any()).Return(nil)
		deps.sqlMock.ExpectCommit()
		deps.cache.EXPECT().SaveSession(ctx, "device-1", gomock.Any()).Return(nil)

		resp, err := deps.service.Join(ctx, principal, "device-1", company.JoinCompanyRequest{
			JoinCode: "  ab12cd ",
		})

		assert.NoError(t, err)
		assert.Equal(t, companyID.String(), resp.CompanyID)
		assert.Equal(t, "Acme", resp.Name)
	})

	t.Run("an unknown code is not found, not a fault", func(t *testing.T) {
		deps.repo.EXPECT().GetByJoinCode(ctx, "ZZZZZZ").Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.Join(ctx, principal, "device-1", company.JoinCompanyRequest{JoinCode: "zzzzzz"})

		assert.ErrorIs(t, err, companyerrors.ErrJoinCodeNotFound)
	})

	t.Run("a store fault is not reported as an unknown code", func(t *testing.T) {
		deps.repo.EXPECT().GetByJoinCode(ctx, "AB12CD").Return(nil, errors.New("connection refused"))

		_, err := deps.service.Join(ctx, principal, "device-1", company.JoinCompanyRequest{JoinCode: "AB12CD"})

		assert.Error(t, err)
		assert.NotErrorIs(t, err, companyerrors.ErrJoinCodeNotFound)
	})

	t.Run("a blank code is rejected before lookup", func(t *testing.T) {
		_, err := deps.service.Join(ctx, principal, "device-1", company.JoinCompanyRequest{JoinCode: "  "})
		assert.ErrorIs(t, err, companyerrors.ErrJoinCodeRequired)
	})

	t.Run("an existing owner role is not downgraded on join", func(t *testing.T) {
		deps.repo.EXPECT().GetByJoinCode(ctx, "AB12CD").Return(comp, nil)
		deps.profiles.EXPECT().GetByUID(ctx, "emp-1").Return(&profile.Profile{
			UID:  "emp-1",
			Role: "owner",
		}, nil)

		deps.sqlMock.ExpectBegin()
		deps.profiles.EXPECT().WithTx(gomock.Any()).Return(deps.profiles)
		deps.profiles.EXPECT().
			Save(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, p *profile.Profile) error {
				assert.Equal(t, "owner", p.Role)
				return nil
			})
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().Create(ctx, gomock.Any()).Return(nil)
		deps.sqlMock.ExpectCommit()
		deps.cache.EXPECT().SaveSession(ctx, "device-1", gomock.Any()).Return(nil)

		_, err := deps.service.Join(ctx, principal, "device-1", company.JoinCompanyRequest{JoinCode: "AB12CD"})

		assert.NoError(t, err)
	})
}

func TestCompanyService_GetMine(t *testing.T) {
	deps := setupServiceTest(t)
	defer deps.db.Close()

	ctx := context.Background()
	companyID := uuid.New()
	comp := &company.Company{ID: companyID, Name: "Acme", JoinCode: "AB12CD", OwnerUID: "owner-1"}

	t.Run("the owner sees the join code", func(t *testing.T) {
		deps.profiles.EXPECT().GetByUID(ctx, "owner-1").Return(&profile.Profile{
			UID:       "owner-1",
			CompanyID: &companyID,
		}, nil)
		deps.repo.EXPECT().GetByID(ctx, companyID).Return(comp, nil)

		resp, err := deps.service.GetMine(ctx, "owner-1")

		assert.NoError(t, err)
		assert.Equal(t, "AB12CD", resp.JoinCode)
	})

	t.Run("an employee does not see the join code", func(t *testing.T) {
		deps.profiles.EXPECT().GetByUID(ctx, "emp-1").Return(&profile.Profile{
			UID:       "emp-1",
			CompanyID: &companyID,
		}, nil)
		deps.repo.EXPECT().GetByID(ctx, companyID).Return(comp, nil)

		resp, err := deps.service.GetMine(ctx, "emp-1")

		assert.NoError(t, err)
		assert.Empty(t, resp.JoinCode)
		assert.Equal(t, "Acme", resp.Name)
	})

	t.Run("an account without a company is not a member", func(t *testing.T) {
		deps.profiles.EXPECT().GetByUID(ctx, "ind-1").Return(&profile.Profile{UID: "ind-1"}, nil)

		_, err := deps.service.GetMine(ctx, "ind-1")

		assert.ErrorIs(t, err, companyerrors.ErrNotCompanyMember)
	})
}
