package seeder

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go-dispo/internal/shared/apperror"
	"go-dispo/internal/shift"
	"go-dispo/internal/shifttemplate"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// instanceNamespace scopes the deterministic instance IDs so a
// (template, date) pair always seeds the same row. Re-running a window
// hits the primary key instead of inserting duplicates.
var instanceNamespace = uuid.MustParse("8f9c1a52-4f6e-4c2b-9a0d-6d1f3ab2c4e7")

var (
	errInvalidStartDate = apperror.New(
		apperror.CodeInvalidInput,
		"start_date must be YYYY-MM-DD",
		http.StatusBadRequest,
	)

	errInvalidWeeks = apperror.New(
		apperror.CodeInvalidInput,
		"weeks must be between 1 and 52",
		http.StatusBadRequest,
	)
)

// SeedError records one row that could not be created. Seeding is
// best-effort; the remaining rows are still attempted.
type SeedError struct {
	TemplateID string `json:"template_id"`
	Date       string `json:"date"`
	Message    string `json:"message"`
}

type Result struct {
	Created []shift.Shift
	Errors  []SeedError
}

//go:generate mockgen -source=seeder_service.go -destination=mock/seeder_service_mock.go -package=mock
type Service interface {
	GenerateShiftInstances(ctx context.Context, startDate string, weeks int) (Result, error)
}

type service struct {
	templateRepo shifttemplate.Repository
	shiftRepo    shift.Repository
	logger       *zap.Logger
}

func NewService(templateRepo shifttemplate.Repository, shiftRepo shift.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("seeder.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("seeder.service")
	}
	return &service{templateRepo: templateRepo, shiftRepo: shiftRepo, logger: l}
}

// GenerateShiftInstances expands every active template over the window
// [startDate, startDate+weeks*7). Each (template, day) covered by the
// template's weekday mask yields one instance; cross-midnight templates
// end on the following day.
func (s *service) GenerateShiftInstances(ctx context.Context, startDate string, weeks int) (Result, error) {
	start, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		return Result{}, errInvalidStartDate
	}
	if weeks < 1 || weeks > 52 {
		return Result{}, errInvalidWeeks
	}

	templates, err := s.templateRepo.FindAllActive(ctx)
	if err != nil {
		return Result{}, err
	}

	var result Result
	days := weeks * 7
	for d := 0; d < days; d++ {
		day := start.AddDate(0, 0, d)
		for _, tpl := range templates {
			if !tpl.AppliesOn(day.Weekday()) {
				continue
			}

			inst, err := buildInstance(tpl, day)
			if err != nil {
				result.Errors = append(result.Errors, SeedError{
					TemplateID: tpl.ID.String(),
					Date:       day.Format("2006-01-02"),
					Message:    err.Error(),
				})
				continue
			}

			if err := s.shiftRepo.Create(ctx, inst); err != nil {
				result.Errors = append(result.Errors, SeedError{
					TemplateID: tpl.ID.String(),
					Date:       inst.Date,
					Message:    err.Error(),
				})
				continue
			}
			result.Created = append(result.Created, *inst)
		}
	}

	s.logger.Info("shift instances generated",
		zap.String("start_date", startDate),
		zap.Int("weeks", weeks),
		zap.Int("created", len(result.Created)),
		zap.Int("errors", len(result.Errors)),
	)
	return result, nil
}

func buildInstance(tpl shifttemplate.ShiftTemplate, day time.Time) (*shift.Shift, error) {
	startClock, err := time.Parse("15:04", tpl.StartTime)
	if err != nil {
		return nil, fmt.Errorf("template start time %q: %w", tpl.StartTime, err)
	}
	endClock, err := time.Parse("15:04", tpl.EndTime)
	if err != nil {
		return nil, fmt.Errorf("template end time %q: %w", tpl.EndTime, err)
	}

	startDT := time.Date(day.Year(), day.Month(), day.Day(),
		startClock.Hour(), startClock.Minute(), 0, 0, time.UTC)
	endDay := day
	if tpl.CrossMidnight {
		endDay = day.AddDate(0, 0, 1)
	}
	endDT := time.Date(endDay.Year(), endDay.Month(), endDay.Day(),
		endClock.Hour(), endClock.Minute(), 0, 0, time.UTC)

	date := day.Format("2006-01-02")
	tid := tpl.ID
	return &shift.Shift{
		ID:         InstanceID(tpl.ID, date),
		Date:       date,
		StartDT:    startDT,
		EndDT:      endDT,
		TemplateID: &tid,
		Location:   tpl.Location,
		Active:     true,
	}, nil
}

// InstanceID derives the stable ID for a (template, date) pair.
func InstanceID(templateID uuid.UUID, date string) uuid.UUID {
	return uuid.NewSHA1(instanceNamespace, []byte(templateID.String()+"|"+date))
}
