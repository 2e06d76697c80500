package planner_test

import (
	"context"
	"testing"
	"time"

	"go-dispo/internal/assignment"
	assignmentMock "go-dispo/internal/assignment/mock"
	"go-dispo/internal/person"
	personMock "go-dispo/internal/person/mock"
	"go-dispo/internal/planner"
	"go-dispo/internal/shared/apperror"
	"go-dispo/internal/shift"
	shiftMock "go-dispo/internal/shift/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type plannerDeps struct {
	shiftRepo      *shiftMock.MockRepository
	assignmentRepo *assignmentMock.MockRepository
	personRepo     *personMock.MockRepository
	service        planner.Service
}

func setupPlannerTest(t *testing.T) *plannerDeps {
	t.Helper()
	ctrl := gomock.NewController(t)

	shiftRepo := shiftMock.NewMockRepository(ctrl)
	assignmentRepo := assignmentMock.NewMockRepository(ctrl)
	personRepo := personMock.NewMockRepository(ctrl)

	return &plannerDeps{
		shiftRepo:      shiftRepo,
		assignmentRepo: assignmentRepo,
		personRepo:     personRepo,
		service:        planner.NewService(shiftRepo, assignmentRepo, personRepo),
	}
}

func instanceOn(date string, startHour, endHour int) shift.Shift {
	day, _ := time.Parse("2006-01-02", date)
	return shift.Shift{
		ID:      uuid.New(),
		Date:    date,
		StartDT: time.Date(day.Year(), day.Month(), day.Day(), startHour, 0, 0, 0, time.UTC),
		EndDT:   time.Date(day.Year(), day.Month(), day.Day(), endHour, 0, 0, 0, time.UTC),
		Active:  true,
	}
}

func TestPlannerService_AutoAssign(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid window", func(t *testing.T) {
		deps := setupPlannerTest(t)

		for _, req := range []planner.AutoAssignRequest{
			{DateFrom: "2025-03-10", DateTo: "2025-03-03"},
			{DateFrom: "bad", DateTo: "2025-03-03"},
			{DateFrom: "2025-03-03", DateTo: "bad"},
		} {
			_, err := deps.service.AutoAssign(ctx, req)

			var appErr *apperror.AppError
			assert.ErrorAs(t, err, &appErr)
			assert.Equal(t, apperror.CodeInvalidInput, appErr.Code)
		}
	})

	t.Run("recommends only unassigned shifts inside the window", func(t *testing.T) {
		deps := setupPlannerTest(t)

		inWindow := instanceOn("2025-03-03", 6, 14)
		taken := instanceOn("2025-03-03", 14, 22)
		outside := instanceOn("2025-04-01", 6, 14)

		disponent := person.Person{
			ID:     uuid.New(),
			Name:   "Mara Vogel",
			Role:   person.RoleDisponent,
			Active: true,
		}

		deps.shiftRepo.EXPECT().
			FindAll(ctx, gomock.Any()).
			Return([]shift.Shift{inWindow, taken, outside}, nil)
		deps.assignmentRepo.EXPECT().
			FindAll(ctx, assignment.ListFilter{}).
			Return([]assignment.Assignment{{
				ID:              uuid.New(),
				ShiftInstanceID: taken.ID,
				DisponentID:     uuid.New(),
				Status:          assignment.StatusAssigned,
			}}, nil)
		deps.personRepo.EXPECT().
			FindAll(ctx, gomock.Any()).
			Return([]person.Person{disponent}, nil)

		resp, err := deps.service.AutoAssign(ctx, planner.AutoAssignRequest{
			DateFrom: "2025-03-01",
			DateTo:   "2025-03-31",
		})

		assert.NoError(t, err)
		assert.Len(t, resp.Recommendations, 1)

		rec := resp.Recommendations[0]
		assert.Equal(t, inWindow.ID.String(), rec.ShiftInstanceID)
		if assert.NotNil(t, rec.PersonID) {
			assert.Equal(t, disponent.ID.String(), *rec.PersonID)
		}
		assert.Equal(t, 1, resp.Stats.Assigned)
		assert.Equal(t, 0, resp.Stats.Unassigned)
	})

	t.Run("history on a deactivated instance still blocks the same day", func(t *testing.T) {
		deps := setupPlannerTest(t)

		open := instanceOn("2025-03-03", 14, 22)
		held := instanceOn("2025-03-03", 6, 14)
		held.Active = false

		disponent := person.Person{
			ID:     uuid.New(),
			Name:   "Lena Hartmann",
			Role:   person.RoleDisponent,
			Active: true,
		}

		deps.shiftRepo.EXPECT().
			FindAll(ctx, shift.ListFilter{}).
			Return([]shift.Shift{open, held}, nil)
		deps.assignmentRepo.EXPECT().
			FindAll(ctx, assignment.ListFilter{}).
			Return([]assignment.Assignment{{
				ID:              uuid.New(),
				ShiftInstanceID: held.ID,
				DisponentID:     disponent.ID,
				Status:          assignment.StatusAssigned,
			}}, nil)
		deps.personRepo.EXPECT().
			FindAll(ctx, gomock.Any()).
			Return([]person.Person{disponent}, nil)

		resp, err := deps.service.AutoAssign(ctx, planner.AutoAssignRequest{
			DateFrom: "2025-03-03",
			DateTo:   "2025-03-03",
		})

		assert.NoError(t, err)
		assert.Len(t, resp.Recommendations, 1)
		assert.Nil(t, resp.Recommendations[0].PersonID)
		assert.Equal(t, planner.ReasonConflicts, resp.Recommendations[0].Reason)
	})

	t.Run("released assignment reopens the shift", func(t *testing.T) {
		deps := setupPlannerTest(t)

		open := instanceOn("2025-03-03", 6, 14)

		disponent := person.Person{
			ID:     uuid.New(),
			Name:   "Timo Berger",
			Role:   person.RoleDisponent,
			Active: true,
		}

		deps.shiftRepo.EXPECT().
			FindAll(ctx, shift.ListFilter{}).
			Return([]shift.Shift{open}, nil)
		deps.assignmentRepo.EXPECT().
			FindAll(ctx, assignment.ListFilter{}).
			Return([]assignment.Assignment{{
				ID:              uuid.New(),
				ShiftInstanceID: open.ID,
				DisponentID:     uuid.New(),
				Status:          assignment.StatusReleased,
			}}, nil)
		deps.personRepo.EXPECT().
			FindAll(ctx, gomock.Any()).
			Return([]person.Person{disponent}, nil)

		resp, err := deps.service.AutoAssign(ctx, planner.AutoAssignRequest{
			DateFrom: "2025-03-03",
			DateTo:   "2025-03-03",
		})

		assert.NoError(t, err)
		assert.Len(t, resp.Recommendations, 1)
		if assert.NotNil(t, resp.Recommendations[0].PersonID) {
			assert.Equal(t, disponent.ID.String(), *resp.Recommendations[0].PersonID)
		}
	})

	t.Run("existing load outside the window still blocks the same day", func(t *testing.T) {
		deps := setupPlannerTest(t)

		// Window covers only the open shift, but the disponent already works
		// another shift that calendar day.
		open := instanceOn("2025-03-03", 14, 22)
		held := instanceOn("2025-03-03", 6, 14)

		disponent := person.Person{
			ID:     uuid.New(),
			Name:   "Jonas Brandt",
			Role:   person.RoleDisponent,
			Active: true,
		}

		deps.shiftRepo.EXPECT().
			FindAll(ctx, gomock.Any()).
			Return([]shift.Shift{open, held}, nil)
		deps.assignmentRepo.EXPECT().
			FindAll(ctx, assignment.ListFilter{}).
			Return([]assignment.Assignment{{
				ID:              uuid.New(),
				ShiftInstanceID: held.ID,
				DisponentID:     disponent.ID,
				Status:          assignment.StatusAssigned,
			}}, nil)
		deps.personRepo.EXPECT().
			FindAll(ctx, gomock.Any()).
			Return([]person.Person{disponent}, nil)

		resp, err := deps.service.AutoAssign(ctx, planner.AutoAssignRequest{
			DateFrom: "2025-03-03",
			DateTo:   "2025-03-03",
		})

		assert.NoError(t, err)
		assert.Len(t, resp.Recommendations, 1)
		assert.Nil(t, resp.Recommendations[0].PersonID)
		assert.Equal(t, planner.ReasonConflicts, resp.Recommendations[0].Reason)
	})
}
