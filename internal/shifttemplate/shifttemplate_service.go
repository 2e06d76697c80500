package shifttemplate

import (
	"context"
	"errors"
	"time"

	"go-dispo/internal/shared/contextutil"
	shifttemplateerrors "go-dispo/internal/shifttemplate/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=shifttemplate_service.go -destination=mock/shifttemplate_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateShiftTemplateRequest) (ShiftTemplateResponse, error)
	GetAll(ctx context.Context, filter ListFilter) ([]ShiftTemplateResponse, error)
	GetByID(ctx context.Context, id string) (ShiftTemplateResponse, error)
	Update(ctx context.Context, id string, req UpdateShiftTemplateRequest) (ShiftTemplateResponse, error)
	SoftDelete(ctx context.Context, id string) (SoftDeleteShiftTemplateResponse, error)
	Restore(ctx context.Context, id string) (ShiftTemplateResponse, error)
	HardDelete(ctx context.Context, id string) error
}

type service struct {
	db     *gorm.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("shifttemplate.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("shifttemplate.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func validateWindow(weekdayMask int, startTime, endTime string, crossMidnight bool) error {
	if weekdayMask <= 0 || weekdayMask > MaskAll {
		return shifttemplateerrors.ErrInvalidWeekdayMask
	}

	start, err := time.Parse("15:04", startTime)
	if err != nil {
		return shifttemplateerrors.ErrInvalidTimeRange
	}
	end, err := time.Parse("15:04", endTime)
	if err != nil {
		return shifttemplateerrors.ErrInvalidTimeRange
	}

	// A same-day window must be non-empty; a cross-midnight window wraps,
	// so end <= start is expected there.
	if !crossMidnight && !end.After(start) {
		return shifttemplateerrors.ErrInvalidTimeRange
	}

	return nil
}

func (s *service) Create(ctx context.Context, req CreateShiftTemplateRequest) (ShiftTemplateResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create shift template requested",
		zap.String("request_id", rid),
		zap.String("name", req.Name),
		zap.Int("weekday_mask", req.WeekdayMask),
	)

	if err := validateWindow(req.WeekdayMask, req.StartTime, req.EndTime, req.CrossMidnight); err != nil {
		return ShiftTemplateResponse{}, err
	}

	t := &ShiftTemplate{
		ID:            uuid.New(),
		Name:          req.Name,
		WeekdayMask:   req.WeekdayMask,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
		CrossMidnight: req.CrossMidnight,
		Color:         req.Color,
		Location:      req.Location,
		Active:        true,
	}

	if err := s.repo.Create(ctx, t); err != nil {
		s.logger.Error("create shift template persist failed", zap.String("request_id", rid), zap.Error(err))
		return ShiftTemplateResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("create shift template success",
		zap.String("request_id", rid),
		zap.String("template_id", t.ID.String()),
	)
	return mapToResponse(*t), nil
}

func (s *service) GetAll(ctx context.Context, filter ListFilter) ([]ShiftTemplateResponse, error) {
	templates, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	resp := make([]ShiftTemplateResponse, len(templates))
	for i, t := range templates {
		resp[i] = mapToResponse(t)
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, id string) (ShiftTemplateResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return ShiftTemplateResponse{}, shifttemplateerrors.ErrInvalidTemplateID
	}

	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return ShiftTemplateResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*t), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateShiftTemplateRequest) (ShiftTemplateResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return ShiftTemplateResponse{}, shifttemplateerrors.ErrInvalidTemplateID
	}

	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return ShiftTemplateResponse{}, mapRepositoryError(err)
	}

	if req.Name != nil {
		t.Name = *req.Name
	}
	if req.WeekdayMask != nil {
		t.WeekdayMask = *req.WeekdayMask
	}
	if req.StartTime != nil {
		t.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		t.EndTime = *req.EndTime
	}
	if req.CrossMidnight != nil {
		t.CrossMidnight = *req.CrossMidnight
	}
	if req.Color != nil {
		t.Color = *req.Color
	}
	if req.Location != nil {
		t.Location = req.Location
	}
	if req.Active != nil {
		t.Active = *req.Active
	}

	if err := validateWindow(t.WeekdayMask, t.StartTime, t.EndTime, t.CrossMidnight); err != nil {
		return ShiftTemplateResponse{}, err
	}

	if err := s.repo.Update(ctx, t); err != nil {
		s.logger.Error("update shift template persist failed", zap.String("template_id", id), zap.Error(err))
		return ShiftTemplateResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*t), nil
}

// SoftDelete deactivates the template and every instance generated from it
// in one transaction. Instances survive so past rosters stay intact.
func (s *service) SoftDelete(ctx context.Context, id string) (SoftDeleteShiftTemplateResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return SoftDeleteShiftTemplateResponse{}, shifttemplateerrors.ErrInvalidTemplateID
	}

	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return SoftDeleteShiftTemplateResponse{}, mapRepositoryError(err)
	}

	var deactivated int64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		if err := qtx.SoftDelete(ctx, id); err != nil {
			return err
		}

		n, err := qtx.DeactivateInstances(ctx, id)
		if err != nil {
			return err
		}
		deactivated = n
		return nil
	})
	if err != nil {
		s.logger.Error("soft delete shift template failed", zap.String("template_id", id), zap.Error(err))
		return SoftDeleteShiftTemplateResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("shift template soft-deleted",
		zap.String("template_id", id),
		zap.Int64("instances_deactivated", deactivated),
	)
	return SoftDeleteShiftTemplateResponse{Deleted: true, InstancesDeactivated: deactivated}, nil
}

func (s *service) Restore(ctx context.Context, id string) (ShiftTemplateResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return ShiftTemplateResponse{}, shifttemplateerrors.ErrInvalidTemplateID
	}

	if _, err := s.repo.FindByIDIncludingDeleted(ctx, id); err != nil {
		return ShiftTemplateResponse{}, mapRepositoryError(err)
	}

	if err := s.repo.Restore(ctx, id); err != nil {
		return ShiftTemplateResponse{}, mapRepositoryError(err)
	}

	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return ShiftTemplateResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("shift template restored", zap.String("template_id", id))
	return mapToResponse(*t), nil
}

func (s *service) HardDelete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return shifttemplateerrors.ErrInvalidTemplateID
	}

	if _, err := s.repo.FindByIDIncludingDeleted(ctx, id); err != nil {
		return mapRepositoryError(err)
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		count, err := qtx.CountInstances(ctx, id)
		if err != nil {
			return err
		}
		if count > 0 {
			return shifttemplateerrors.ErrTemplateHasInstances
		}

		return qtx.HardDelete(ctx, id)
	})
	if err != nil {
		s.logger.Warn("hard delete shift template rejected or failed",
			zap.String("template_id", id),
			zap.Error(err),
		)
		return mapRepositoryError(err)
	}

	s.logger.Info("shift template hard-deleted", zap.String("template_id", id))
	return nil
}

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return shifttemplateerrors.ErrTemplateNotFound
	}
	return err
}

func mapToResponse(t ShiftTemplate) ShiftTemplateResponse {
	resp := ShiftTemplateResponse{
		ID:            t.ID.String(),
		Name:          t.Name,
		WeekdayMask:   t.WeekdayMask,
		StartTime:     t.StartTime,
		EndTime:       t.EndTime,
		CrossMidnight: t.CrossMidnight,
		Color:         t.Color,
		Location:      t.Location,
		Active:        t.Active,
		CreatedAt:     t.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     t.UpdatedAt.Format(time.RFC3339),
	}
	if t.DeletedAt.Valid {
		v := t.DeletedAt.Time.Format(time.RFC3339)
		resp.DeletedAt = &v
	}
	return resp
}
