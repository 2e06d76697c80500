package shift_test

import (
	"context"
	"testing"
	"time"

	"go-dispo/internal/shift"
	shifterrors "go-dispo/internal/shift/errors"
	shiftMock "go-dispo/internal/shift/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func setupShiftTest(t *testing.T) (*shiftMock.MockRepository, shift.Service) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := shiftMock.NewMockRepository(ctrl)
	return repo, shift.NewService(repo)
}

func TestShiftService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		repo, svc := setupShiftTest(t)

		repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, inst *shift.Shift) error {
				assert.Equal(t, "2025-03-03", inst.Date)
				assert.True(t, inst.Active)
				return nil
			})

		resp, err := svc.Create(ctx, shift.CreateShiftRequest{
			Date:    "2025-03-03",
			StartDT: "2025-03-03T06:00:00Z",
			EndDT:   "2025-03-03T14:00:00Z",
		})

		assert.NoError(t, err)
		assert.Equal(t, "2025-03-03", resp.Date)
		assert.True(t, resp.Active)
	})

	t.Run("malformed date", func(t *testing.T) {
		_, svc := setupShiftTest(t)

		_, err := svc.Create(ctx, shift.CreateShiftRequest{
			Date:    "03.03.2025",
			StartDT: "2025-03-03T06:00:00Z",
			EndDT:   "2025-03-03T14:00:00Z",
		})

		assert.ErrorIs(t, err, shifterrors.ErrInvalidDate)
	})

	t.Run("end not after start", func(t *testing.T) {
		_, svc := setupShiftTest(t)

		_, err := svc.Create(ctx, shift.CreateShiftRequest{
			Date:    "2025-03-03",
			StartDT: "2025-03-03T14:00:00Z",
			EndDT:   "2025-03-03T14:00:00Z",
		})

		assert.ErrorIs(t, err, shifterrors.ErrInvalidTimeRange)
	})

	t.Run("malformed template id", func(t *testing.T) {
		_, svc := setupShiftTest(t)
		bad := "not-a-uuid"

		_, err := svc.Create(ctx, shift.CreateShiftRequest{
			Date:       "2025-03-03",
			StartDT:    "2025-03-03T06:00:00Z",
			EndDT:      "2025-03-03T14:00:00Z",
			TemplateID: &bad,
		})

		assert.ErrorIs(t, err, shifterrors.ErrInvalidShiftID)
	})
}

func TestShiftService_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid id", func(t *testing.T) {
		_, svc := setupShiftTest(t)

		_, err := svc.GetByID(ctx, "42")

		assert.ErrorIs(t, err, shifterrors.ErrInvalidShiftID)
	})

	t.Run("missing row maps to not found", func(t *testing.T) {
		repo, svc := setupShiftTest(t)
		id := uuid.New().String()

		repo.EXPECT().FindByID(ctx, id).Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.GetByID(ctx, id)

		assert.ErrorIs(t, err, shifterrors.ErrShiftNotFound)
	})
}

func TestShiftService_Update(t *testing.T) {
	ctx := context.Background()

	existing := func() *shift.Shift {
		return &shift.Shift{
			ID:      uuid.New(),
			Date:    "2025-03-03",
			StartDT: time.Date(2025, 3, 3, 6, 0, 0, 0, time.UTC),
			EndDT:   time.Date(2025, 3, 3, 14, 0, 0, 0, time.UTC),
			Active:  true,
		}
	}

	t.Run("patches only the provided fields", func(t *testing.T) {
		repo, svc := setupShiftTest(t)
		inst := existing()
		loc := "Leitstelle Nord"
		inactive := false

		repo.EXPECT().FindByID(ctx, inst.ID.String()).Return(inst, nil)
		repo.EXPECT().Update(ctx, inst).Return(nil)

		resp, err := svc.Update(ctx, inst.ID.String(), shift.UpdateShiftRequest{
			Location: &loc,
			Active:   &inactive,
		})

		assert.NoError(t, err)
		assert.Equal(t, &loc, resp.Location)
		assert.False(t, resp.Active)
		assert.Equal(t, "2025-03-03", resp.Date)
	})

	t.Run("merged window is revalidated", func(t *testing.T) {
		repo, svc := setupShiftTest(t)
		inst := existing()
		start := "2025-03-03T15:00:00Z"

		repo.EXPECT().FindByID(ctx, inst.ID.String()).Return(inst, nil)

		_, err := svc.Update(ctx, inst.ID.String(), shift.UpdateShiftRequest{
			StartDT: &start,
		})

		assert.ErrorIs(t, err, shifterrors.ErrInvalidTimeRange)
	})

	t.Run("missing row maps to not found", func(t *testing.T) {
		repo, svc := setupShiftTest(t)
		id := uuid.New().String()

		repo.EXPECT().FindByID(ctx, id).Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.Update(ctx, id, shift.UpdateShiftRequest{})

		assert.ErrorIs(t, err, shifterrors.ErrShiftNotFound)
	})
}
