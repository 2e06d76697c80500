package shift

import (
	"context"
	"errors"
	"time"

	shifterrors "go-dispo/internal/shift/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=shift_service.go -destination=mock/shift_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateShiftRequest) (ShiftResponse, error)
	GetAll(ctx context.Context, filter ListFilter) ([]ShiftResponse, error)
	GetByID(ctx context.Context, id string) (ShiftResponse, error)
	Update(ctx context.Context, id string, req UpdateShiftRequest) (ShiftResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("shift.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("shift.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateShiftRequest) (ShiftResponse, error) {
	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		return ShiftResponse{}, shifterrors.ErrInvalidDate
	}

	start, err := time.Parse(time.RFC3339, req.StartDT)
	if err != nil {
		return ShiftResponse{}, shifterrors.ErrInvalidTimeRange
	}
	end, err := time.Parse(time.RFC3339, req.EndDT)
	if err != nil {
		return ShiftResponse{}, shifterrors.ErrInvalidTimeRange
	}
	if !start.Before(end) {
		return ShiftResponse{}, shifterrors.ErrInvalidTimeRange
	}

	inst := &Shift{
		ID:       uuid.New(),
		Date:     req.Date,
		StartDT:  start,
		EndDT:    end,
		Location: req.Location,
		Active:   true,
		Notes:    req.Notes,
	}
	if req.TemplateID != nil {
		tid, err := uuid.Parse(*req.TemplateID)
		if err != nil {
			return ShiftResponse{}, shifterrors.ErrInvalidShiftID
		}
		inst.TemplateID = &tid
	}

	if err := s.repo.Create(ctx, inst); err != nil {
		s.logger.Error("create shift persist failed", zap.Error(err))
		return ShiftResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("shift created",
		zap.String("shift_id", inst.ID.String()),
		zap.String("date", inst.Date),
	)
	return mapToResponse(*inst), nil
}

func (s *service) GetAll(ctx context.Context, filter ListFilter) ([]ShiftResponse, error) {
	shifts, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	resp := make([]ShiftResponse, len(shifts))
	for i, inst := range shifts {
		resp[i] = mapToResponse(inst)
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, id string) (ShiftResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return ShiftResponse{}, shifterrors.ErrInvalidShiftID
	}

	inst, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return ShiftResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*inst), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateShiftRequest) (ShiftResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return ShiftResponse{}, shifterrors.ErrInvalidShiftID
	}

	inst, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return ShiftResponse{}, mapRepositoryError(err)
	}

	if req.Date != nil {
		if _, err := time.Parse("2006-01-02", *req.Date); err != nil {
			return ShiftResponse{}, shifterrors.ErrInvalidDate
		}
		inst.Date = *req.Date
	}
	if req.StartDT != nil {
		start, err := time.Parse(time.RFC3339, *req.StartDT)
		if err != nil {
			return ShiftResponse{}, shifterrors.ErrInvalidTimeRange
		}
		inst.StartDT = start
	}
	if req.EndDT != nil {
		end, err := time.Parse(time.RFC3339, *req.EndDT)
		if err != nil {
			return ShiftResponse{}, shifterrors.ErrInvalidTimeRange
		}
		inst.EndDT = end
	}
	if !inst.StartDT.Before(inst.EndDT) {
		return ShiftResponse{}, shifterrors.ErrInvalidTimeRange
	}
	if req.Location != nil {
		inst.Location = req.Location
	}
	if req.Active != nil {
		inst.Active = *req.Active
	}
	if req.Notes != nil {
		inst.Notes = req.Notes
	}

	if err := s.repo.Update(ctx, inst); err != nil {
		s.logger.Error("update shift persist failed", zap.String("shift_id", id), zap.Error(err))
		return ShiftResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*inst), nil
}

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return shifterrors.ErrShiftNotFound
	}
	return err
}

func mapToResponse(inst Shift) ShiftResponse {
	resp := ShiftResponse{
		ID:        inst.ID.String(),
		Date:      inst.Date,
		StartDT:   inst.StartDT.Format(time.RFC3339),
		EndDT:     inst.EndDT.Format(time.RFC3339),
		Location:  inst.Location,
		Active:    inst.Active,
		Notes:     inst.Notes,
		CreatedAt: inst.CreatedAt.Format(time.RFC3339),
		UpdatedAt: inst.UpdatedAt.Format(time.RFC3339),
	}
	if inst.TemplateID != nil {
		tid := inst.TemplateID.String()
		resp.TemplateID = &tid
	}
	return resp
}
