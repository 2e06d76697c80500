package person

import (
	"context"
	"encoding/json"
	"time"

	personerrors "go-dispo/internal/person/errors"
	"go-dispo/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const PersonOptionsKey = "persons:options"

//go:generate mockgen -source=person_service.go -destination=mock/person_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreatePersonRequest) (PersonResponse, error)
	GetAll(ctx context.Context, filter ListFilter) ([]PersonResponse, error)
	GetByID(ctx context.Context, id string) (PersonResponse, error)
	GetOptions(ctx context.Context) ([]PersonOptionResponse, error)
	Update(ctx context.Context, id string, req UpdatePersonRequest) (PersonResponse, error)
	SoftDelete(ctx context.Context, id string) error
	Restore(ctx context.Context, id string) (PersonResponse, error)
	HardDelete(ctx context.Context, id string) error
}

type service struct {
	db     *gorm.DB
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("person.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("person.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

func (s *service) Create(ctx context.Context, req CreatePersonRequest) (PersonResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create person requested",
		zap.String("request_id", rid),
		zap.String("email", req.Email),
		zap.String("role", req.Role),
	)

	if !IsValidRole(req.Role) {
		return PersonResponse{}, personerrors.ErrInvalidRole
	}

	p := &Person{
		ID:           uuid.New(),
		Name:         req.Name,
		Email:        req.Email,
		Role:         req.Role,
		Active:       true,
		HomeLocation: req.HomeLocation,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		s.logger.Error("create person persist failed", zap.String("request_id", rid), zap.Error(err))
		return PersonResponse{}, mapRepositoryError(err)
	}

	s.invalidateOptionsCache(ctx)

	s.logger.Info("create person success",
		zap.String("request_id", rid),
		zap.String("person_id", p.ID.String()),
	)
	return mapToResponse(*p), nil
}

func (s *service) GetAll(ctx context.Context, filter ListFilter) ([]PersonResponse, error) {
	persons, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	resp := make([]PersonResponse, len(persons))
	for i, p := range persons {
		resp[i] = mapToResponse(p)
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, id string) (PersonResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return PersonResponse{}, personerrors.ErrInvalidPersonID
	}

	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return PersonResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*p), nil
}

func (s *service) GetOptions(ctx context.Context) ([]PersonOptionResponse, error) {
	// Redis first
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, PersonOptionsKey).Result(); err == nil {
			var resp []PersonOptionResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	// Singleflight so a cold cache does not stampede the database when
	// several planners open at once.
	v, err, _ := s.sf.Do(PersonOptionsKey, func() (interface{}, error) {
		persons, err := s.repo.FindOptions(ctx)
		if err != nil {
			return nil, mapRepositoryError(err)
		}

		resp := make([]PersonOptionResponse, len(persons))
		for i, p := range persons {
			resp[i] = PersonOptionResponse{
				ID:           p.ID.String(),
				Name:         p.Name,
				Role:         p.Role,
				HomeLocation: p.HomeLocation,
			}
		}

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, PersonOptionsKey, jsonData, 1*time.Hour)
			}
		}

		return resp, nil
	})

	if err != nil {
		return nil, err
	}

	return v.([]PersonOptionResponse), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdatePersonRequest) (PersonResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return PersonResponse{}, personerrors.ErrInvalidPersonID
	}

	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return PersonResponse{}, mapRepositoryError(err)
	}

	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Email != nil {
		p.Email = *req.Email
	}
	if req.Role != nil {
		if !IsValidRole(*req.Role) {
			return PersonResponse{}, personerrors.ErrInvalidRole
		}
		p.Role = *req.Role
	}
	if req.Active != nil {
		p.Active = *req.Active
	}
	if req.HomeLocation != nil {
		p.HomeLocation = req.HomeLocation
	}

	if err := s.repo.Update(ctx, p); err != nil {
		s.logger.Error("update person persist failed", zap.String("person_id", id), zap.Error(err))
		return PersonResponse{}, mapRepositoryError(err)
	}

	s.invalidateOptionsCache(ctx)

	return mapToResponse(*p), nil
}

func (s *service) SoftDelete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return personerrors.ErrInvalidPersonID
	}

	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return mapRepositoryError(err)
	}

	if err := s.repo.SoftDelete(ctx, id); err != nil {
		s.logger.Error("soft delete person failed", zap.String("person_id", id), zap.Error(err))
		return mapRepositoryError(err)
	}

	s.invalidateOptionsCache(ctx)

	s.logger.Info("person soft-deleted", zap.String("person_id", id))
	return nil
}

func (s *service) Restore(ctx context.Context, id string) (PersonResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return PersonResponse{}, personerrors.ErrInvalidPersonID
	}

	if _, err := s.repo.FindByIDIncludingDeleted(ctx, id); err != nil {
		return PersonResponse{}, mapRepositoryError(err)
	}

	if err := s.repo.Restore(ctx, id); err != nil {
		s.logger.Error("restore person failed", zap.String("person_id", id), zap.Error(err))
		return PersonResponse{}, mapRepositoryError(err)
	}

	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return PersonResponse{}, mapRepositoryError(err)
	}

	s.invalidateOptionsCache(ctx)

	s.logger.Info("person restored", zap.String("person_id", id))
	return mapToResponse(*p), nil
}

// HardDelete physically removes a person. Blocked while any assignment
// still references them; the check and the delete share one transaction,
// with the assignments FK as the backstop.
func (s *service) HardDelete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return personerrors.ErrInvalidPersonID
	}

	if _, err := s.repo.FindByIDIncludingDeleted(ctx, id); err != nil {
		return mapRepositoryError(err)
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		count, err := qtx.CountAssignments(ctx, id)
		if err != nil {
			return err
		}
		if count > 0 {
			return personerrors.ErrPersonHasAssignments
		}

		return qtx.HardDelete(ctx, id)
	})
	if err != nil {
		s.logger.Warn("hard delete person rejected or failed",
			zap.String("person_id", id),
			zap.Error(err),
		)
		return mapRepositoryError(err)
	}

	s.invalidateOptionsCache(ctx)

	s.logger.Info("person hard-deleted", zap.String("person_id", id))
	return nil
}

func (s *service) invalidateOptionsCache(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, PersonOptionsKey).Err(); err != nil {
		s.logger.Error("failed to invalidate person options cache",
			zap.Error(err),
			zap.String("key", PersonOptionsKey),
		)
	}
}

func mapToResponse(p Person) PersonResponse {
	resp := PersonResponse{
		ID:           p.ID.String(),
		Name:         p.Name,
		Email:        p.Email,
		Role:         p.Role,
		Active:       p.Active,
		HomeLocation: p.HomeLocation,
		CreatedAt:    p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    p.UpdatedAt.Format(time.RFC3339),
	}
	if p.DeletedAt.Valid {
		v := p.DeletedAt.Time.Format(time.RFC3339)
		resp.DeletedAt = &v
	}
	return resp
}
