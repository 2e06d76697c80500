package planner

import (
	"context"
	"net/http"
	"time"

	"go-dispo/internal/assignment"
	"go-dispo/internal/person"
	"go-dispo/internal/shared/apperror"
	"go-dispo/internal/shift"

	"go.uber.org/zap"
)

var errInvalidWindow = apperror.New(
	apperror.CodeInvalidInput,
	"date_from and date_to must be YYYY-MM-DD with date_from <= date_to",
	http.StatusBadRequest,
)

// Service loads the planning inputs from the store, runs the engine and
// reports recommendations plus stats. Nothing is persisted; callers
// confirm recommendations through the assignment endpoints.
//
//go:generate mockgen -source=planner_service.go -destination=mock/planner_service_mock.go -package=mock
type Service interface {
	AutoAssign(ctx context.Context, req AutoAssignRequest) (AutoAssignResponse, error)
}

type service struct {
	shiftRepo      shift.Repository
	assignmentRepo assignment.Repository
	personRepo     person.Repository
	logger         *zap.Logger
}

func NewService(
	shiftRepo shift.Repository,
	assignmentRepo assignment.Repository,
	personRepo person.Repository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("planner.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("planner.service")
	}
	return &service{
		shiftRepo:      shiftRepo,
		assignmentRepo: assignmentRepo,
		personRepo:     personRepo,
		logger:         l,
	}
}

func (s *service) AutoAssign(ctx context.Context, req AutoAssignRequest) (AutoAssignResponse, error) {
	from, errFrom := time.Parse("2006-01-02", req.DateFrom)
	to, errTo := time.Parse("2006-01-02", req.DateTo)
	if errFrom != nil || errTo != nil || to.Before(from) {
		return AutoAssignResponse{}, errInvalidWindow
	}

	// The whole calendar, deactivated instances included: history outside
	// the window still counts toward workload and same-day eligibility.
	// Only the open-shift candidates below are restricted to active rows.
	shifts, err := s.shiftRepo.FindAll(ctx, shift.ListFilter{})
	if err != nil {
		return AutoAssignResponse{}, err
	}

	active := true

	assignments, err := s.assignmentRepo.FindAll(ctx, assignment.ListFilter{})
	if err != nil {
		return AutoAssignResponse{}, err
	}

	persons, err := s.personRepo.FindAll(ctx, person.ListFilter{Active: &active})
	if err != nil {
		return AutoAssignResponse{}, err
	}

	shiftByID := make(map[string]ShiftRef, len(shifts))
	for _, inst := range shifts {
		shiftByID[inst.ID.String()] = toShiftRef(inst)
	}

	// A RELEASED assignment frees the slot: the shift is open again and
	// the row no longer counts toward the holder's workload.
	assignedShifts := make(map[string]bool, len(assignments))
	existing := make([]PersonShift, 0, len(assignments))
	for _, a := range assignments {
		if a.Status == assignment.StatusReleased {
			continue
		}
		sid := a.ShiftInstanceID.String()
		assignedShifts[sid] = true
		if ref, ok := shiftByID[sid]; ok {
			existing = append(existing, PersonShift{
				PersonID: a.DisponentID.String(),
				Shift:    ref,
			})
		}
	}

	var open []ShiftRef
	for _, inst := range shifts {
		if !inst.Active {
			continue
		}
		if inst.Date < req.DateFrom || inst.Date > req.DateTo {
			continue
		}
		if assignedShifts[inst.ID.String()] {
			continue
		}
		open = append(open, toShiftRef(inst))
	}

	candidates := make([]Candidate, len(persons))
	for i, p := range persons {
		candidates[i] = Candidate{
			ID:           p.ID.String(),
			Name:         p.Name,
			Role:         p.Role,
			HomeLocation: p.HomeLocation,
		}
	}

	applications := make([]Application, len(req.Applications))
	for i, app := range req.Applications {
		applications[i] = Application{
			ShiftInstanceID: app.ShiftInstanceID,
			PersonID:        app.PersonID,
		}
	}

	recs := AutoAssignShifts(open, existing, applications, candidates)
	stats := AssignmentStats(recs)

	s.logger.Info("auto-assign run completed",
		zap.String("date_from", req.DateFrom),
		zap.String("date_to", req.DateTo),
		zap.Int("open_shifts", len(open)),
		zap.Int("assigned", stats.Assigned),
		zap.Int("unassigned", stats.Unassigned),
	)

	resp := AutoAssignResponse{
		Recommendations: make([]RecommendationResponse, len(recs)),
		Stats:           stats,
	}
	for i, r := range recs {
		resp.Recommendations[i] = RecommendationResponse{
			ShiftInstanceID: r.ShiftInstanceID,
			PersonID:        r.PersonID,
			PersonName:      r.PersonName,
			Score:           r.Score,
			Confidence:      r.Confidence,
			Reason:          r.Reason,
		}
	}
	return resp, nil
}

func toShiftRef(inst shift.Shift) ShiftRef {
	return ShiftRef{
		ID:       inst.ID.String(),
		Date:     inst.Date,
		StartDT:  inst.StartDT,
		EndDT:    inst.EndDT,
		Location: inst.Location,
	}
}
