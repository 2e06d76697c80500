package shift

import (
	"context"

	"gorm.io/gorm"
)

// ListFilter enumerates the predicates supported by FindAll. Dates are
// YYYY-MM-DD strings compared lexicographically, matching the column.
type ListFilter struct {
	DateFrom   *string
	DateTo     *string
	TemplateID *string
	Active     *bool
}

//go:generate mockgen -source=shift_repo.go -destination=mock/shift_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, s *Shift) error
	FindByID(ctx context.Context, id string) (*Shift, error)
	FindAll(ctx context.Context, filter ListFilter) ([]Shift, error)
	Update(ctx context.Context, s *Shift) error
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, s *Shift) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Shift, error) {
	var s Shift
	err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error
	return &s, err
}

func (r *repository) FindAll(ctx context.Context, filter ListFilter) ([]Shift, error) {
	db := r.db.WithContext(ctx)
	if filter.DateFrom != nil {
		db = db.Where("date >= ?", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		db = db.Where("date <= ?", *filter.DateTo)
	}
	if filter.TemplateID != nil {
		db = db.Where("template_id = ?", *filter.TemplateID)
	}
	if filter.Active != nil {
		db = db.Where("active = ?", *filter.Active)
	}

	var shifts []Shift
	err := db.Order("start_dt ASC").Find(&shifts).Error
	return shifts, err
}

func (r *repository) Update(ctx context.Context, s *Shift) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Shift{}, "id = ?", id).Error
}
