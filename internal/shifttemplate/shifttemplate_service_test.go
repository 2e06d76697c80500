package shifttemplate_test

import (
	"context"
	"testing"

	"go-dispo/internal/shifttemplate"
	shifttemplateerrors "go-dispo/internal/shifttemplate/errors"
	templateMock "go-dispo/internal/shifttemplate/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type serviceDeps struct {
	sqlMock sqlmock.Sqlmock
	repo    *templateMock.MockRepository
	service shifttemplate.Service
}

func setupServiceTest(t *testing.T) *serviceDeps {
	t.Helper()
	ctrl := gomock.NewController(t)

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 db,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	assert.NoError(t, err)

	repo := templateMock.NewMockRepository(ctrl)

	return &serviceDeps{
		sqlMock: sqlMock,
		repo:    repo,
		service: shifttemplate.NewService(gormDB, repo),
	}
}

func TestShiftTemplateService_Create(t *testing.T) {
	deps := setupServiceTest(t)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		req := shifttemplate.CreateShiftTemplateRequest{
			Name:        "Frueh",
			WeekdayMask: shifttemplate.MaskMonday | shifttemplate.MaskFriday,
			StartTime:   "06:00",
			EndTime:     "14:00",
		}

		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, tpl *shifttemplate.ShiftTemplate) error {
				assert.Equal(t, req.Name, tpl.Name)
				assert.True(t, tpl.Active)
				return nil
			})

		resp, err := deps.service.Create(ctx, req)

		assert.NoError(t, err)
		assert.Equal(t, "06:00", resp.StartTime)
	})

	t.Run("end before start rejected", func(t *testing.T) {
		req := shifttemplate.CreateShiftTemplateRequest{
			Name:        "Broken",
			WeekdayMask: shifttemplate.MaskMonday,
			StartTime:   "14:00",
			EndTime:     "06:00",
		}

		_, err := deps.service.Create(ctx, req)

		assert.ErrorIs(t, err, shifttemplateerrors.ErrInvalidTimeRange)
	})

	t.Run("wrapped window allowed with cross midnight", func(t *testing.T) {
		req := shifttemplate.CreateShiftTemplateRequest{
			Name:          "Nacht",
			WeekdayMask:   shifttemplate.MaskMonday,
			StartTime:     "22:00",
			EndTime:       "06:00",
			CrossMidnight: true,
		}

		deps.repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)

		_, err := deps.service.Create(ctx, req)

		assert.NoError(t, err)
	})

	t.Run("empty weekday mask rejected", func(t *testing.T) {
		req := shifttemplate.CreateShiftTemplateRequest{
			Name:        "Never",
			WeekdayMask: 0,
			StartTime:   "06:00",
			EndTime:     "14:00",
		}

		_, err := deps.service.Create(ctx, req)

		assert.ErrorIs(t, err, shifttemplateerrors.ErrInvalidWeekdayMask)
	})
}

func TestShiftTemplateService_SoftDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("deactivates instances in the same transaction", func(t *testing.T) {
		deps := setupServiceTest(t)
		id := uuid.New().String()

		deps.repo.EXPECT().
			FindByID(ctx, id).
			Return(&shifttemplate.ShiftTemplate{ID: uuid.MustParse(id)}, nil)

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().SoftDelete(ctx, id).Return(nil)
		deps.repo.EXPECT().DeactivateInstances(ctx, id).Return(int64(7), nil)

		resp, err := deps.service.SoftDelete(ctx, id)

		assert.NoError(t, err)
		assert.True(t, resp.Deleted)
		assert.Equal(t, int64(7), resp.InstancesDeactivated)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("cascade failure rolls back the template delete", func(t *testing.T) {
		deps := setupServiceTest(t)
		id := uuid.New().String()

		deps.repo.EXPECT().
			FindByID(ctx, id).
			Return(&shifttemplate.ShiftTemplate{ID: uuid.MustParse(id)}, nil)

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectRollback()

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().SoftDelete(ctx, id).Return(nil)
		deps.repo.EXPECT().DeactivateInstances(ctx, id).Return(int64(0), gorm.ErrInvalidTransaction)

		_, err := deps.service.SoftDelete(ctx, id)

		assert.Error(t, err)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestShiftTemplateService_HardDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("blocked while instances reference the template", func(t *testing.T) {
		deps := setupServiceTest(t)
		id := uuid.New().String()

		deps.repo.EXPECT().
			FindByIDIncludingDeleted(ctx, id).
			Return(&shifttemplate.ShiftTemplate{ID: uuid.MustParse(id)}, nil)

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectRollback()

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().CountInstances(ctx, id).Return(int64(12), nil)

		err := deps.service.HardDelete(ctx, id)

		assert.ErrorIs(t, err, shifttemplateerrors.ErrTemplateHasInstances)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}
