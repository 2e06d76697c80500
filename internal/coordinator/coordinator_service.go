package coordinator

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"go-dispo/internal/assignment"
	assignmenterrors "go-dispo/internal/assignment/errors"
	"go-dispo/internal/events"
	"go-dispo/internal/messaging/kafka"
	"go-dispo/internal/shared/apperror"
	"go-dispo/internal/shared/contextutil"
	"go-dispo/internal/shift"
	shifterrors "go-dispo/internal/shift/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service groups the multi-row operations that must commit or roll back
// as a unit: swapping two assignments, applying a batch of patches, and
// removing a shift instance together with everything assigned to it.
//
//go:generate mockgen -source=coordinator_service.go -destination=mock/coordinator_service_mock.go -package=mock
type Service interface {
	SwapAssignments(ctx context.Context, idA, idB string) (SwapAssignmentsResponse, error)
	BulkUpdateAssignments(ctx context.Context, updates []BulkUpdateEntry) (BulkUpdateAssignmentsResponse, error)
	CascadeDeleteShiftInstance(ctx context.Context, id string) (CascadeDeleteResponse, error)
}

type service struct {
	db             *gorm.DB
	assignmentRepo assignment.Repository
	shiftRepo      shift.Repository
	outbox         kafka.OutboxRepository
	logger         *zap.Logger
}

func NewService(
	db *gorm.DB,
	assignmentRepo assignment.Repository,
	shiftRepo shift.Repository,
	outbox kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("coordinator.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("coordinator.service")
	}
	return &service{
		db:             db,
		assignmentRepo: assignmentRepo,
		shiftRepo:      shiftRepo,
		outbox:         outbox,
		logger:         l,
	}
}

// SwapAssignments exchanges the shift references of two assignments.
// Both rows are read first so a missing target aborts before any write.
func (s *service) SwapAssignments(ctx context.Context, idA, idB string) (SwapAssignmentsResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	if _, err := uuid.Parse(idA); err != nil {
		return SwapAssignmentsResponse{}, assignmenterrors.ErrInvalidAssignmentID
	}
	if _, err := uuid.Parse(idB); err != nil {
		return SwapAssignmentsResponse{}, assignmenterrors.ErrInvalidAssignmentID
	}
	if idA == idB {
		return SwapAssignmentsResponse{}, apperror.New(
			apperror.CodeInvalidInput,
			"Cannot swap an assignment with itself",
			http.StatusBadRequest,
		)
	}

	var a, b *assignment.Assignment
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := s.assignmentRepo.WithTx(tx)

		var err error
		if a, err = repo.FindByID(ctx, idA); err != nil {
			return err
		}
		if b, err = repo.FindByID(ctx, idB); err != nil {
			return err
		}

		if err := repo.SwapShiftInstanceIDs(ctx, a, b); err != nil {
			return err
		}
		a.ShiftInstanceID, b.ShiftInstanceID = b.ShiftInstanceID, a.ShiftInstanceID

		payload, err := json.Marshal(events.AssignmentSwappedEvent{
			EventType:   "assignment_swapped",
			RequestID:   rid,
			AssignmentA: a.ID.String(),
			AssignmentB: b.ID.String(),
			ShiftAAfter: a.ShiftInstanceID.String(),
			ShiftBAfter: b.ShiftInstanceID.String(),
			OccurredAt:  time.Now().UTC(),
		})
		if err != nil {
			return err
		}

		return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
			ID:            uuid.NewString(),
			RequestID:     rid,
			AggregateType: "assignment",
			AggregateID:   a.ID.String(),
			EventType:     "assignment_swapped",
			Topic:         events.AssignmentLifecycleTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		})
	})
	if err != nil {
		s.logger.Error("swap assignments rolled back",
			zap.String("request_id", rid),
			zap.String("assignment_a", idA),
			zap.String("assignment_b", idB),
			zap.Error(err),
		)
		return SwapAssignmentsResponse{}, wrapTxError(err, assignmenterrors.ErrAssignmentNotFound)
	}

	s.logger.Info("assignments swapped",
		zap.String("request_id", rid),
		zap.String("assignment_a", idA),
		zap.String("assignment_b", idB),
	)
	return SwapAssignmentsResponse{
		AssignmentA: swappedOf(a),
		AssignmentB: swappedOf(b),
	}, nil
}

// BulkUpdateAssignments applies every patch or none. A single missing
// target rolls the whole batch back.
func (s *service) BulkUpdateAssignments(ctx context.Context, updates []BulkUpdateEntry) (BulkUpdateAssignmentsResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	for _, u := range updates {
		if _, err := uuid.Parse(u.ID); err != nil {
			return BulkUpdateAssignmentsResponse{}, assignmenterrors.ErrInvalidAssignmentID
		}
		if u.Status != nil && !assignment.IsValidStatus(*u.Status) {
			return BulkUpdateAssignmentsResponse{}, assignmenterrors.ErrInvalidStatus
		}
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := s.assignmentRepo.WithTx(tx)

		for _, u := range updates {
			a, err := repo.FindByID(ctx, u.ID)
			if err != nil {
				return err
			}
			if u.Status != nil {
				a.Status = *u.Status
			}
			if err := repo.Update(ctx, a); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		s.logger.Error("bulk update rolled back",
			zap.String("request_id", rid),
			zap.Int("batch_size", len(updates)),
			zap.Error(err),
		)
		return BulkUpdateAssignmentsResponse{}, wrapTxError(err, assignmenterrors.ErrAssignmentNotFound)
	}

	s.logger.Info("bulk update applied",
		zap.String("request_id", rid),
		zap.Int("batch_size", len(updates)),
	)
	return BulkUpdateAssignmentsResponse{Updated: len(updates)}, nil
}

// CascadeDeleteShiftInstance removes the instance and every assignment
// that references it in one transaction, so no orphan can survive.
func (s *service) CascadeDeleteShiftInstance(ctx context.Context, id string) (CascadeDeleteResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	if _, err := uuid.Parse(id); err != nil {
		return CascadeDeleteResponse{}, shifterrors.ErrInvalidShiftID
	}

	var deleted int64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		shiftRepo := s.shiftRepo.WithTx(tx)

		if _, err := shiftRepo.FindByID(ctx, id); err != nil {
			return err
		}

		var err error
		deleted, err = s.assignmentRepo.WithTx(tx).DeleteByShiftInstance(ctx, id)
		if err != nil {
			return err
		}

		if err := shiftRepo.Delete(ctx, id); err != nil {
			return err
		}

		payload, err := json.Marshal(events.ShiftCascadeDeletedEvent{
			EventType:          "shift_cascade_deleted",
			RequestID:          rid,
			ShiftInstanceID:    id,
			AssignmentsDeleted: int(deleted),
			OccurredAt:         time.Now().UTC(),
		})
		if err != nil {
			return err
		}

		return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
			ID:            uuid.NewString(),
			RequestID:     rid,
			AggregateType: "shift_instance",
			AggregateID:   id,
			EventType:     "shift_cascade_deleted",
			Topic:         events.ShiftLifecycleTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		})
	})
	if err != nil {
		s.logger.Error("cascade delete rolled back",
			zap.String("request_id", rid),
			zap.String("shift_instance_id", id),
			zap.Error(err),
		)
		return CascadeDeleteResponse{}, wrapTxError(err, shifterrors.ErrShiftNotFound)
	}

	s.logger.Info("shift instance cascade-deleted",
		zap.String("request_id", rid),
		zap.String("shift_instance_id", id),
		zap.Int64("assignments_deleted", deleted),
	)
	return CascadeDeleteResponse{
		ShiftInstanceID:    id,
		AssignmentsDeleted: deleted,
	}, nil
}

// wrapTxError keeps typed errors intact, maps a bare record miss onto the
// caller's not-found sentinel, and folds everything else into the abort
// error so the caller sees one rollback code.
func wrapTxError(err error, notFound *apperror.AppError) error {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	return apperror.Wrap(err,
		apperror.CodeTransactionAbort,
		apperror.ErrTransactionAbort.Message,
		http.StatusConflict,
	)
}

func swappedOf(a *assignment.Assignment) SwappedAssignment {
	return SwappedAssignment{
		ID:              a.ID.String(),
		ShiftInstanceID: a.ShiftInstanceID.String(),
		DisponentID:     a.DisponentID.String(),
	}
}
