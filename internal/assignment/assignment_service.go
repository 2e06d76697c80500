package assignment

import (
	"context"
	"encoding/json"
	"time"

	assignmenterrors "go-dispo/internal/assignment/errors"
	"go-dispo/internal/events"
	"go-dispo/internal/messaging/kafka"
	"go-dispo/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=assignment_service.go -destination=mock/assignment_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateAssignmentRequest) (AssignmentResponse, error)
	GetAll(ctx context.Context, filter ListFilter) ([]AssignmentResponse, error)
	GetByID(ctx context.Context, id string) (AssignmentResponse, error)
	Update(ctx context.Context, id string, req UpdateAssignmentRequest) (AssignmentResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db     *gorm.DB
	repo   Repository
	outbox kafka.OutboxRepository
	logger *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, outbox kafka.OutboxRepository, logger ...*zap.Logger) Service {
	l := zap.L().Named("assignment.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("assignment.service")
	}
	return &service{db: db, repo: repo, outbox: outbox, logger: l}
}

// Create persists the assignment and its lifecycle event in one
// transaction; the outbox worker delivers the event after commit.
func (s *service) Create(ctx context.Context, req CreateAssignmentRequest) (AssignmentResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	shiftID, err := uuid.Parse(req.ShiftInstanceID)
	if err != nil {
		return AssignmentResponse{}, assignmenterrors.ErrInvalidAssignmentID
	}
	disponentID, err := uuid.Parse(req.DisponentID)
	if err != nil {
		return AssignmentResponse{}, assignmenterrors.ErrInvalidAssignmentID
	}

	status := StatusAssigned
	if req.Status != nil {
		if !IsValidStatus(*req.Status) {
			return AssignmentResponse{}, assignmenterrors.ErrInvalidStatus
		}
		status = *req.Status
	}

	a := &Assignment{
		ID:              uuid.New(),
		ShiftInstanceID: shiftID,
		DisponentID:     disponentID,
		Status:          status,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.repo.WithTx(tx).Create(ctx, a); err != nil {
			return err
		}

		payload, err := json.Marshal(events.AssignmentCreatedEvent{
			EventType:       "assignment_created",
			RequestID:       rid,
			AssignmentID:    a.ID.String(),
			ShiftInstanceID: a.ShiftInstanceID.String(),
			DisponentID:     a.DisponentID.String(),
			Status:          a.Status,
			OccurredAt:      time.Now().UTC(),
		})
		if err != nil {
			return err
		}

		return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
			ID:            uuid.NewString(),
			RequestID:     rid,
			AggregateType: "assignment",
			AggregateID:   a.ID.String(),
			EventType:     "assignment_created",
			Topic:         events.AssignmentLifecycleTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		})
	})
	if err != nil {
		s.logger.Error("create assignment failed",
			zap.String("request_id", rid),
			zap.String("shift_instance_id", req.ShiftInstanceID),
			zap.String("disponent_id", req.DisponentID),
			zap.Error(err),
		)
		return AssignmentResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("assignment created",
		zap.String("request_id", rid),
		zap.String("assignment_id", a.ID.String()),
	)
	return mapToResponse(*a), nil
}

func (s *service) GetAll(ctx context.Context, filter ListFilter) ([]AssignmentResponse, error) {
	assignments, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	resp := make([]AssignmentResponse, len(assignments))
	for i, a := range assignments {
		resp[i] = mapToResponse(a)
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, id string) (AssignmentResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return AssignmentResponse{}, assignmenterrors.ErrInvalidAssignmentID
	}

	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return AssignmentResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*a), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateAssignmentRequest) (AssignmentResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return AssignmentResponse{}, assignmenterrors.ErrInvalidAssignmentID
	}

	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return AssignmentResponse{}, mapRepositoryError(err)
	}

	if req.Status != nil {
		if !IsValidStatus(*req.Status) {
			return AssignmentResponse{}, assignmenterrors.ErrInvalidStatus
		}
		a.Status = *req.Status
	}

	if err := s.repo.Update(ctx, a); err != nil {
		s.logger.Error("update assignment persist failed", zap.String("assignment_id", id), zap.Error(err))
		return AssignmentResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*a), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return assignmenterrors.ErrInvalidAssignmentID
	}

	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return mapRepositoryError(err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("delete assignment failed", zap.String("assignment_id", id), zap.Error(err))
		return mapRepositoryError(err)
	}

	s.logger.Info("assignment deleted", zap.String("assignment_id", id))
	return nil
}

func mapToResponse(a Assignment) AssignmentResponse {
	return AssignmentResponse{
		ID:              a.ID.String(),
		ShiftInstanceID: a.ShiftInstanceID.String(),
		DisponentID:     a.DisponentID.String(),
		Status:          a.Status,
		CreatedAt:       a.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       a.UpdatedAt.Format(time.RFC3339),
	}
}
