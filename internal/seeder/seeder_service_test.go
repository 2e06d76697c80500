package seeder_test

import (
	"context"
	"errors"
	"testing"

	"go-dispo/internal/seeder"
	"go-dispo/internal/shift"
	shiftMock "go-dispo/internal/shift/mock"
	"go-dispo/internal/shifttemplate"
	templateMock "go-dispo/internal/shifttemplate/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type seederDeps struct {
	templateRepo *templateMock.MockRepository
	shiftRepo    *shiftMock.MockRepository
	service      seeder.Service
}

func setupSeederTest(t *testing.T) *seederDeps {
	ctrl := gomock.NewController(t)
	templateRepo := templateMock.NewMockRepository(ctrl)
	shiftRepo := shiftMock.NewMockRepository(ctrl)

	return &seederDeps{
		templateRepo: templateRepo,
		shiftRepo:    shiftRepo,
		service:      seeder.NewService(templateRepo, shiftRepo),
	}
}

func weekdayTemplate() shifttemplate.ShiftTemplate {
	return shifttemplate.ShiftTemplate{
		ID:   uuid.New(),
		Name: "Frueh",
		WeekdayMask: shifttemplate.MaskMonday | shifttemplate.MaskTuesday |
			shifttemplate.MaskWednesday | shifttemplate.MaskThursday | shifttemplate.MaskFriday,
		StartTime: "06:00",
		EndTime:   "14:00",
		Active:    true,
	}
}

func TestSeeder_WeekdayTemplateOneWeek(t *testing.T) {
	deps := setupSeederTest(t)
	ctx := context.Background()
	tpl := weekdayTemplate()

	deps.templateRepo.EXPECT().
		FindAllActive(ctx).
		Return([]shifttemplate.ShiftTemplate{tpl}, nil)

	var created []shift.Shift
	deps.shiftRepo.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, inst *shift.Shift) error {
			created = append(created, *inst)
			return nil
		}).
		Times(5)

	// 2025-01-06 is a Monday.
	result, err := deps.service.GenerateShiftInstances(ctx, "2025-01-06", 1)

	assert.NoError(t, err)
	assert.Empty(t, result.Errors)
	assert.Len(t, result.Created, 5)

	dates := make([]string, len(created))
	for i, inst := range created {
		dates[i] = inst.Date
		assert.Equal(t, 6, inst.StartDT.Hour())
		assert.Equal(t, 14, inst.EndDT.Hour())
		assert.Equal(t, inst.StartDT.Format("2006-01-02"), inst.EndDT.Format("2006-01-02"))
	}
	assert.Equal(t, []string{
		"2025-01-06", "2025-01-07", "2025-01-08", "2025-01-09", "2025-01-10",
	}, dates)
}

func TestSeeder_CrossMidnightEndsNextDay(t *testing.T) {
	deps := setupSeederTest(t)
	ctx := context.Background()

	tpl := weekdayTemplate()
	tpl.WeekdayMask = shifttemplate.MaskMonday
	tpl.StartTime = "22:00"
	tpl.EndTime = "06:00"
	tpl.CrossMidnight = true

	deps.templateRepo.EXPECT().
		FindAllActive(ctx).
		Return([]shifttemplate.ShiftTemplate{tpl}, nil)

	var inst shift.Shift
	deps.shiftRepo.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, s *shift.Shift) error {
			inst = *s
			return nil
		})

	result, err := deps.service.GenerateShiftInstances(ctx, "2025-01-06", 1)

	assert.NoError(t, err)
	assert.Len(t, result.Created, 1)
	assert.Equal(t, "2025-01-06", inst.Date)
	assert.Equal(t, "2025-01-06", inst.StartDT.Format("2006-01-02"))
	assert.Equal(t, "2025-01-07", inst.EndDT.Format("2006-01-02"))
	assert.True(t, inst.StartDT.Before(inst.EndDT))
}

func TestSeeder_DeterministicIDs(t *testing.T) {
	tpl := uuid.New()

	first := seeder.InstanceID(tpl, "2025-01-06")
	second := seeder.InstanceID(tpl, "2025-01-06")
	other := seeder.InstanceID(tpl, "2025-01-07")

	assert.Equal(t, first, second)
	assert.NotEqual(t, first, other)
}

func TestSeeder_RowFailuresAreCollectedNotFatal(t *testing.T) {
	deps := setupSeederTest(t)
	ctx := context.Background()
	tpl := weekdayTemplate()

	deps.templateRepo.EXPECT().
		FindAllActive(ctx).
		Return([]shifttemplate.ShiftTemplate{tpl}, nil)

	calls := 0
	deps.shiftRepo.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *shift.Shift) error {
			calls++
			if calls == 2 {
				return errors.New("duplicate key value violates unique constraint")
			}
			return nil
		}).
		Times(5)

	result, err := deps.service.GenerateShiftInstances(ctx, "2025-01-06", 1)

	assert.NoError(t, err)
	assert.Len(t, result.Created, 4)
	assert.Len(t, result.Errors, 1)
	assert.Equal(t, "2025-01-07", result.Errors[0].Date)
	assert.Equal(t, tpl.ID.String(), result.Errors[0].TemplateID)
}

func TestSeeder_InputValidation(t *testing.T) {
	deps := setupSeederTest(t)
	ctx := context.Background()

	_, err := deps.service.GenerateShiftInstances(ctx, "06.01.2025", 1)
	assert.Error(t, err)

	_, err = deps.service.GenerateShiftInstances(ctx, "2025-01-06", 0)
	assert.Error(t, err)

	_, err = deps.service.GenerateShiftInstances(ctx, "2025-01-06", 53)
	assert.Error(t, err)
}
